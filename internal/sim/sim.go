// Package sim renders the clock face to a terminal instead of LED hardware.
package sim

import (
	"fmt"
	"image/color"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/sgerber/baernuhr/internal/clock"
)

// Renderer prints the letter grid to a writer, styling lit letters in the
// configured color and leaving the rest faint.
type Renderer struct {
	w      io.Writer
	now    func() time.Time
	lit    lipgloss.Style
	unlit  lipgloss.Style
	phrase lipgloss.Style
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithColor sets the color used for lit letters.
func WithColor(c color.RGBA) Option {
	return func(r *Renderer) {
		hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
		r.lit = r.lit.Foreground(lipgloss.Color(hex))
	}
}

// WithNow overrides the clock used for the header line.
func WithNow(now func() time.Time) Option {
	return func(r *Renderer) {
		r.now = now
	}
}

// New creates a terminal renderer writing to w. Color support is detected
// from the writer, so piped output degrades to plain text.
func New(w io.Writer, opts ...Option) *Renderer {
	// The same handful of styles is rendered 110 times per frame, one per
	// letter, so cache the resolved colors.
	lr := lipgloss.NewRenderer(w, termenv.WithColorCache(true))
	r := &Renderer{
		w:      w,
		now:    time.Now,
		lit:    lr.NewStyle().Bold(true),
		unlit:  lr.NewStyle().Faint(true),
		phrase: lr.NewStyle().Bold(true),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render prints one clock face.
func (r *Renderer) Render(words []string, cells []clock.Cell, dots int) error {
	lit := make(map[clock.Cell]bool, len(cells))
	for _, c := range cells {
		lit[c] = true
	}

	// Dot order on the panel is TL, TR, BR, BL.
	mark := [4]string{"○", "○", "○", "○"}
	for i := 0; i < dots && i < 4; i++ {
		mark[i] = "●"
	}

	var b strings.Builder
	now := r.now()
	fmt.Fprintf(&b, "  BÄRNER WORT-UHR  %02d:%02d\n\n", now.Hour(), now.Minute())
	fmt.Fprintf(&b, "  %s %19s\n", mark[0], mark[1])

	for row := 0; row < clock.Rows; row++ {
		b.WriteString("  ")
		for col, letter := range []rune(clock.Grid[row]) {
			style := r.unlit
			if lit[clock.Cell{Row: row, Col: col}] {
				style = r.lit
			}
			b.WriteString(style.Render(string(letter)))
			if col < clock.Cols-1 {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "  %s %19s\n\n", mark[3], mark[2])
	fmt.Fprintf(&b, "  %s\n", r.phrase.Render(strings.Join(words, " ")))

	_, err := io.WriteString(r.w, b.String())
	return err
}

// Close is a no-op; the terminal needs no teardown.
func (r *Renderer) Close() error {
	return nil
}
