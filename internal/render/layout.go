package render

import "github.com/sgerber/baernuhr/internal/clock"

// Bounds is an inclusive pixel rectangle.
type Bounds struct {
	X1, Y1, X2, Y2 int
}

// Layout holds the computed grid-to-pixel geometry for a panel.
type Layout struct {
	cfg     Config
	offsetX int
	offsetY int
}

// NewLayout centers the letter grid on the panel. An 11-column grid at 5 px
// glyphs and 1 px spacing is 65 px wide, one more than the panel; the offset
// then goes to -1 and the outermost pixel column is clipped at render time.
func NewLayout(cfg Config) Layout {
	gridW := clock.Cols*cfg.CharWidth + (clock.Cols-1)*cfg.SpacingX
	gridH := clock.Rows*cfg.CharHeight + (clock.Rows-1)*cfg.SpacingY
	return Layout{
		cfg:     cfg,
		offsetX: floorDiv(cfg.PanelWidth-gridW, 2),
		offsetY: floorDiv(cfg.PanelHeight-gridH, 2),
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// CharBounds returns the pixel rectangle of the grid cell at (row, col).
func (l Layout) CharBounds(row, col int) Bounds {
	x := l.offsetX + col*(l.cfg.CharWidth+l.cfg.SpacingX)
	y := l.offsetY + row*(l.cfg.CharHeight+l.cfg.SpacingY)
	return Bounds{
		X1: x,
		Y1: y,
		X2: x + l.cfg.CharWidth - 1,
		Y2: y + l.cfg.CharHeight - 1,
	}
}

// DotBounds returns the rectangles for the first n corner dots, in order
// top-left, top-right, bottom-right, bottom-left.
func (l Layout) DotBounds(n int) []Bounds {
	m, s := l.cfg.DotMargin, l.cfg.DotSize
	corners := [4][2]int{
		{m, m},
		{l.cfg.PanelWidth - m - s, m},
		{l.cfg.PanelWidth - m - s, l.cfg.PanelHeight - m - s},
		{m, l.cfg.PanelHeight - m - s},
	}

	if n > 4 {
		n = 4
	}
	bounds := make([]Bounds, 0, n)
	for i := 0; i < n; i++ {
		x, y := corners[i][0], corners[i][1]
		bounds = append(bounds, Bounds{X1: x, Y1: y, X2: x + s - 1, Y2: y + s - 1})
	}
	return bounds
}
