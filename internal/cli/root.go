// Package cli provides the baernuhr command-line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sgerber/baernuhr/internal/config"
	"github.com/sgerber/baernuhr/internal/render"
	"github.com/sgerber/baernuhr/pkg/hub75"
)

// Version is set at build time.
var Version = "0.1.0"

var (
	cfgFile string
	cfg     *config.Config
	logger  = slog.New(slog.DiscardHandler)
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "baernuhr",
		Short: "Bärndütsch word clock for a 64x64 RGB LED matrix",
		Long: `Baernuhr drives a QLOCKTWO-style word clock in Bärndütsch (Bernese German)
on a 64x64 HUB75 RGB matrix attached to a Raspberry Pi.

The time is shown as a phrase on an 11x10 letter grid ("ES ISCH FÜF VOR
HAUBI ACHTI"), with up to four corner dots marking the minutes between
the 5-minute steps.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			var err error
			cfg, err = config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			level := slog.LevelInfo
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./baernuhr.yaml)")
	rootCmd.PersistentFlags().StringP("color", "c", config.DefaultColor, "letter color: palette name or #RRGGBB")
	rootCmd.PersistentFlags().IntP("brightness", "b", config.DefaultBrightness, "panel brightness (1-100)")
	rootCmd.PersistentFlags().Int("dim", config.DefaultDim, "intensity of unlit letters (0-255, 0 = off)")
	rootCmd.PersistentFlags().BoolP("simulate", "s", false, "render to the terminal instead of the panel")
	rootCmd.PersistentFlags().Duration("refresh", config.DefaultRefresh, "clock poll interval")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().String("gpio-mapping", config.DefaultMapping, "panel wiring: regular, adafruit-hat")
	rootCmd.PersistentFlags().String("gpio-chip", config.DefaultChip, "GPIO character device")

	_ = rootCmd.RegisterFlagCompletionFunc("color", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return render.ColorNames(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("gpio-mapping", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return hub75.MappingNames(), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// getConfig returns the loaded configuration, or defaults when a command is
// executed outside the root command (tests mostly).
func getConfig() *config.Config {
	if cfg != nil {
		return cfg
	}
	return &config.Config{
		Color:      config.DefaultColor,
		Brightness: config.DefaultBrightness,
		Refresh:    config.DefaultRefresh,
		GPIO: config.GPIOConfig{
			Mapping: config.DefaultMapping,
			Chip:    config.DefaultChip,
		},
	}
}
