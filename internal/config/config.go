// Package config loads the clock configuration from file, environment and
// flags. Precedence, highest first: flags, BAERNUHR_ env vars, YAML config
// file, built-in defaults.
package config

import (
	"fmt"
	"time"

	"github.com/sgerber/baernuhr/internal/render"
	"github.com/sgerber/baernuhr/pkg/hub75"
)

// Config holds all clock settings.
type Config struct {
	// Color of lit letters: palette name or #RRGGBB.
	Color string `koanf:"color"`
	// Brightness of the panel, 1-100.
	Brightness int `koanf:"brightness"`
	// Dim is the 0-255 intensity for unlit letters; 0 disables them.
	Dim int `koanf:"dim"`
	// Simulate renders to the terminal instead of the panel.
	Simulate bool `koanf:"simulate"`
	// Refresh is the poll interval of the clock loop.
	Refresh time.Duration `koanf:"refresh"`
	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`

	GPIO GPIOConfig `koanf:"gpio"`
}

// GPIOConfig selects the panel wiring.
type GPIOConfig struct {
	// Mapping is the wiring preset: regular or adafruit-hat.
	Mapping string `koanf:"mapping"`
	// Chip is the GPIO character device.
	Chip string `koanf:"chip"`
}

// Default configuration values.
const (
	DefaultColor      = "white"
	DefaultBrightness = 50
	DefaultDim        = 0
	DefaultRefresh    = time.Second
	DefaultMapping    = "adafruit-hat"
	DefaultChip       = "gpiochip0"
)

// Validate checks ranges and that color and wiring resolve.
func (c *Config) Validate() error {
	if c.Brightness < 1 || c.Brightness > 100 {
		return fmt.Errorf("brightness must be between 1 and 100, got %d", c.Brightness)
	}
	if c.Dim < 0 || c.Dim > 255 {
		return fmt.Errorf("dim must be between 0 and 255, got %d", c.Dim)
	}
	if c.Refresh < 100*time.Millisecond {
		return fmt.Errorf("refresh interval %s is below 100ms", c.Refresh)
	}
	if _, err := render.ParseColor(c.Color); err != nil {
		return err
	}
	if _, err := hub75.Mapping(c.GPIO.Mapping); err != nil {
		return err
	}
	return nil
}
