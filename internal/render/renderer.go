package render

import (
	"fmt"
	"image/color"

	"github.com/sgerber/baernuhr/internal/clock"
	"github.com/sgerber/baernuhr/internal/display"
	"github.com/sgerber/baernuhr/internal/font"
)

// Renderer draws clock frames onto a display matrix.
type Renderer struct {
	cfg    Config
	layout Layout
	matrix display.Matrix
	grid   [][]rune
}

// New creates a renderer for the given matrix.
func New(cfg Config, matrix display.Matrix) *Renderer {
	grid := make([][]rune, len(clock.Grid))
	for i, row := range clock.Grid {
		grid[i] = []rune(row)
	}
	return &Renderer{
		cfg:    cfg,
		layout: NewLayout(cfg),
		matrix: matrix,
		grid:   grid,
	}
}

// Render draws one full frame: lit letters, optional dim letters and the
// corner dots, then pushes the buffer to the panel.
func (r *Renderer) Render(words []string, cells []clock.Cell, dots int) error {
	if err := r.matrix.Clear(); err != nil {
		return fmt.Errorf("clearing matrix: %w", err)
	}

	lit := make(map[clock.Cell]bool, len(cells))
	for _, c := range cells {
		lit[c] = true
	}

	for row := 0; row < clock.Rows; row++ {
		for col := 0; col < clock.Cols; col++ {
			on := lit[clock.Cell{Row: row, Col: col}]
			if !on && !r.cfg.DimLetters {
				continue
			}
			c := r.cfg.ColorOn
			if !on {
				c = r.cfg.ColorDim
			}
			if err := r.drawGlyph(row, col, c); err != nil {
				return err
			}
		}
	}

	for _, b := range r.layout.DotBounds(dots) {
		if err := r.fill(b, r.cfg.ColorDot); err != nil {
			return err
		}
	}

	return r.matrix.Show()
}

// Close clears the panel and releases it.
func (r *Renderer) Close() error {
	if err := r.matrix.Clear(); err == nil {
		_ = r.matrix.Show()
	}
	return r.matrix.Close()
}

// drawGlyph draws the grid letter at (row, col) in the given color.
func (r *Renderer) drawGlyph(row, col int, c color.Color) error {
	b := r.layout.CharBounds(row, col)
	letter := r.grid[row][col]
	for y := 0; y < r.cfg.CharHeight; y++ {
		for x := 0; x < r.cfg.CharWidth; x++ {
			if !font.Lit(letter, x, y) {
				continue
			}
			if err := r.setPixel(b.X1+x, b.Y1+y, c); err != nil {
				return err
			}
		}
	}
	return nil
}

// fill paints an inclusive rectangle.
func (r *Renderer) fill(b Bounds, c color.Color) error {
	for y := b.Y1; y <= b.Y2; y++ {
		for x := b.X1; x <= b.X2; x++ {
			if err := r.setPixel(x, y, c); err != nil {
				return err
			}
		}
	}
	return nil
}

// setPixel clips against the panel edges; the grid overhangs by one pixel
// column on each side when centered.
func (r *Renderer) setPixel(x, y int, c color.Color) error {
	if x < 0 || x >= r.cfg.PanelWidth || y < 0 || y >= r.cfg.PanelHeight {
		return nil
	}
	if err := r.matrix.SetPixel(x, y, c); err != nil {
		return fmt.Errorf("pixel (%d, %d): %w", x, y, err)
	}
	return nil
}
