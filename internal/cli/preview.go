package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sgerber/baernuhr/internal/clock"
	"github.com/sgerber/baernuhr/internal/render"
	"github.com/sgerber/baernuhr/internal/sim"
)

func newPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview [HH:MM]",
		Short: "Print one clock face to the terminal",
		Long: `Print the clock face for a given time (default: now) without touching
any hardware.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			hour, minute := now.Hour(), now.Minute()

			if len(args) == 1 {
				var err error
				hour, minute, err = parseClockTime(args[0])
				if err != nil {
					return err
				}
			}

			return printFace(cmd, hour, minute)
		},
	}
}

// parseClockTime parses and validates a HH:MM argument.
func parseClockTime(s string) (hour, minute int, err error) {
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	hour, err = strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour %q, expected 0-23", h)
	}
	minute, err = strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute %q, expected 0-59", m)
	}
	return hour, minute, nil
}

// printFace renders one clock face for the given time to the command output.
func printFace(cmd *cobra.Command, hour, minute int) error {
	cfg := getConfig()
	on, err := render.ParseColor(cfg.Color)
	if err != nil {
		return err
	}

	fixed := time.Date(0, 1, 1, hour, minute, 0, 0, time.Local)
	r := sim.New(cmd.OutOrStdout(),
		sim.WithColor(on),
		sim.WithNow(func() time.Time { return fixed }),
	)

	words := clock.WordsForTime(hour, minute)
	return r.Render(words, clock.LitPositions(words), clock.MinuteDots(minute))
}
