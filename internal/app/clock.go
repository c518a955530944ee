// Package app runs the word clock loop against a display.
package app

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/sgerber/baernuhr/internal/clock"
)

// Display shows one clock face. The panel renderer and the terminal
// simulator both implement it.
type Display interface {
	Render(words []string, cells []clock.Cell, dots int) error
	Close() error
}

// Clock polls the wall clock and redraws the display when the minute turns.
type Clock struct {
	disp     Display
	log      *slog.Logger
	interval time.Duration
	now      func() time.Time

	lastMinute int
}

// New creates a clock loop polling at the given interval.
func New(disp Display, logger *slog.Logger, interval time.Duration) *Clock {
	return &Clock{
		disp:       disp,
		log:        logger,
		interval:   interval,
		now:        time.Now,
		lastMinute: -1,
	}
}

// Run renders once immediately and then on every minute change until the
// context is canceled. The display is closed on exit.
func (c *Clock) Run(ctx context.Context) error {
	defer func() {
		if err := c.disp.Close(); err != nil {
			c.log.Error("closing display", "error", err)
		}
	}()

	if err := c.tick(); err != nil {
		return err
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := c.tick(); err != nil {
				// A failed frame is retried on the next minute change.
				c.log.Error("rendering frame", "error", err)
			}
		}
	}
}

// tick redraws the display if the minute changed since the last frame.
func (c *Clock) tick() error {
	now := c.now()
	if now.Minute() == c.lastMinute {
		return nil
	}

	hour, minute := now.Hour(), now.Minute()
	words := clock.WordsForTime(hour, minute)
	cells := clock.LitPositions(words)
	dots := clock.MinuteDots(minute)

	c.log.Debug("updating display",
		"time", now.Format("15:04"),
		"phrase", strings.Join(words, " "),
		"dots", dots,
	)

	if err := c.disp.Render(words, cells, dots); err != nil {
		return err
	}
	c.lastMinute = minute
	return nil
}
