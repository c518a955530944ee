package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "baernuhr.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.String("color", DefaultColor, "")
	fs.Int("brightness", DefaultBrightness, "")
	fs.Int("dim", DefaultDim, "")
	fs.Bool("simulate", false, "")
	fs.Duration("refresh", DefaultRefresh, "")
	fs.Bool("verbose", false, "")
	fs.String("gpio-mapping", DefaultMapping, "")
	fs.String("gpio-chip", DefaultChip, "")
	return fs
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultColor, cfg.Color)
	assert.Equal(t, DefaultBrightness, cfg.Brightness)
	assert.Equal(t, DefaultDim, cfg.Dim)
	assert.False(t, cfg.Simulate)
	assert.Equal(t, time.Second, cfg.Refresh)
	assert.Equal(t, DefaultMapping, cfg.GPIO.Mapping)
	assert.Equal(t, DefaultChip, cfg.GPIO.Chip)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
color: warm
brightness: 80
dim: 40
gpio:
  mapping: regular
  chip: gpiochip4
`)

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "warm", cfg.Color)
	assert.Equal(t, 80, cfg.Brightness)
	assert.Equal(t, 40, cfg.Dim)
	assert.Equal(t, "regular", cfg.GPIO.Mapping)
	assert.Equal(t, "gpiochip4", cfg.GPIO.Chip)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "color: warm\n")
	t.Setenv("BAERNUHR_COLOR", "blue")
	t.Setenv("BAERNUHR_GPIO_MAPPING", "regular")

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "blue", cfg.Color)
	assert.Equal(t, "regular", cfg.GPIO.Mapping)
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	t.Setenv("BAERNUHR_BRIGHTNESS", "90")

	fs := newFlags()
	require.NoError(t, fs.Parse([]string{"--brightness", "25", "--simulate", "--refresh", "500ms"}))

	cfg, err := Load("", fs)
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Brightness)
	assert.True(t, cfg.Simulate)
	assert.Equal(t, 500*time.Millisecond, cfg.Refresh)
}

func TestLoadUnchangedFlagsDoNotOverride(t *testing.T) {
	path := writeConfig(t, "brightness: 70\n")

	cfg, err := Load(path, newFlags())
	require.NoError(t, err)

	// The flag default of 50 must not clobber the file value.
	assert.Equal(t, 70, cfg.Brightness)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"brightness too high", "brightness: 150\n"},
		{"brightness zero", "brightness: 0\n"},
		{"dim too high", "dim: 300\n"},
		{"bad color", "color: mauve\n"},
		{"bad mapping", "gpio:\n  mapping: bonnet\n"},
		{"refresh too fast", "refresh: 10ms\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.yaml), nil)
			assert.Error(t, err)
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := &Config{
		Color:      DefaultColor,
		Brightness: DefaultBrightness,
		Refresh:    DefaultRefresh,
		GPIO:       GPIOConfig{Mapping: DefaultMapping, Chip: DefaultChip},
	}
	assert.NoError(t, cfg.Validate())
}
