// Command gpio-test toggles the HUB75 signal pins one at a time so panel
// wiring can be checked with a multimeter or probe LED before running the
// clock.
package main

import (
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/warthog618/go-gpiocdev"

	"github.com/sgerber/baernuhr/pkg/hub75"
)

func main() {
	chip := flag.String("chip", "gpiochip0", "GPIO character device")
	mapping := flag.String("mapping", "adafruit-hat", "panel wiring: regular, adafruit-hat")
	interval := flag.Duration("interval", time.Second, "toggle interval per pin")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	pins, err := hub75.Mapping(*mapping)
	if err != nil {
		logger.Error("resolving mapping", "error", err)
		os.Exit(1)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("toggling HUB75 pins", "chip", *chip, "mapping", *mapping)

	for _, pin := range pins.Pins() {
		line, err := gpiocdev.RequestLine(*chip, pin, gpiocdev.AsOutput(0))
		if err != nil {
			logger.Error("requesting line", "pin", pin, "error", err)
			os.Exit(1)
		}

		logger.Info("toggling", "pin", pin)
		if done := togglePin(line, *interval, sigChan, logger); done {
			line.Close()
			logger.Info("shutting down")
			return
		}
		line.Close()
	}

	logger.Info("all pins toggled")
}

// togglePin flips the line high and low twice, reporting true if a shutdown
// signal arrived.
func togglePin(line *gpiocdev.Line, interval time.Duration, sigChan chan os.Signal, logger *slog.Logger) bool {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	value := 0
	for i := 0; i < 4; i++ {
		select {
		case <-sigChan:
			return true
		case <-ticker.C:
			value ^= 1
			if err := line.SetValue(value); err != nil {
				logger.Error("setting value", "error", err)
			}
		}
	}
	_ = line.SetValue(0)
	return false
}
