package cli

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sgerber/baernuhr/internal/app"
	"github.com/sgerber/baernuhr/internal/config"
	"github.com/sgerber/baernuhr/internal/render"
	"github.com/sgerber/baernuhr/internal/sim"
	"github.com/sgerber/baernuhr/pkg/hub75"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the clock",
		Long: `Run the clock loop: poll the wall clock and redraw the display whenever
the minute changes. Drives the HUB75 panel unless --simulate is set.

Driving the panel requires access to the GPIO character device, which
usually means running as root.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := getConfig()

			disp, err := newDisplay(cmd, cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("starting clock",
				"simulate", cfg.Simulate,
				"color", cfg.Color,
				"brightness", cfg.Brightness,
			)

			if err := app.New(disp, logger, cfg.Refresh).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			logger.Info("shutting down")
			return nil
		},
	}
}

// newDisplay builds the display for the run command: the terminal simulator
// or a renderer on the HUB75 panel.
func newDisplay(cmd *cobra.Command, cfg *config.Config) (app.Display, error) {
	on, err := render.ParseColor(cfg.Color)
	if err != nil {
		return nil, err
	}

	if cfg.Simulate {
		return sim.New(cmd.OutOrStdout(), sim.WithColor(on)), nil
	}

	pcfg := hub75.DefaultConfig()
	pcfg.Brightness = cfg.Brightness
	pcfg.Mapping = cfg.GPIO.Mapping
	pcfg.Chip = cfg.GPIO.Chip

	panel, err := hub75.Open(pcfg)
	if err != nil {
		return nil, fmt.Errorf("opening panel: %w", err)
	}

	rcfg := render.DefaultConfig()
	rcfg.ColorOn = on
	rcfg.ColorDot = on
	rcfg.DimLetters = cfg.Dim > 0
	dim := uint8(cfg.Dim)
	rcfg.ColorDim = color.RGBA{R: dim, G: dim, B: dim, A: 255}

	return render.New(rcfg, panel), nil
}
