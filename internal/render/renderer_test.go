package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgerber/baernuhr/internal/clock"
)

// fakeMatrix records pixel writes for inspection.
type fakeMatrix struct {
	pixels map[[2]int]color.Color
	clears int
	shows  int
	closed bool
}

func newFakeMatrix() *fakeMatrix {
	return &fakeMatrix{pixels: make(map[[2]int]color.Color)}
}

func (m *fakeMatrix) Clear() error {
	m.clears++
	m.pixels = make(map[[2]int]color.Color)
	return nil
}

func (m *fakeMatrix) SetPixel(x, y int, c color.Color) error {
	m.pixels[[2]int{x, y}] = c
	return nil
}

func (m *fakeMatrix) Show() error {
	m.shows++
	return nil
}

func (m *fakeMatrix) Close() error {
	m.closed = true
	return nil
}

func renderTime(t *testing.T, m *fakeMatrix, cfg Config, hour, minute int) {
	t.Helper()
	r := New(cfg, m)
	words := clock.WordsForTime(hour, minute)
	cells := clock.LitPositions(words)
	require.NoError(t, r.Render(words, cells, clock.MinuteDots(minute)))
}

func TestRenderLitGlyphs(t *testing.T) {
	m := newFakeMatrix()
	renderTime(t, m, DefaultConfig(), 7, 0)

	assert.Equal(t, 1, m.clears)
	assert.Equal(t, 1, m.shows)
	assert.NotEmpty(t, m.pixels)

	// Every pixel stays on the panel even though the grid overhangs.
	for p := range m.pixels {
		assert.GreaterOrEqual(t, p[0], 0)
		assert.Less(t, p[0], 64)
		assert.GreaterOrEqual(t, p[1], 0)
		assert.Less(t, p[1], 64)
	}
}

func TestRenderCornerDots(t *testing.T) {
	cfg := DefaultConfig()
	m := newFakeMatrix()
	renderTime(t, m, cfg, 7, 47) // quarter to eight plus two dots

	// Top-left and top-right dots lit, bottom corners dark.
	assert.Contains(t, m.pixels, [2]int{1, 1})
	assert.Contains(t, m.pixels, [2]int{61, 1})
	assert.NotContains(t, m.pixels, [2]int{61, 61})
	assert.NotContains(t, m.pixels, [2]int{1, 61})
}

func TestRenderNoDotsOnInterval(t *testing.T) {
	m := newFakeMatrix()
	renderTime(t, m, DefaultConfig(), 7, 45)

	assert.NotContains(t, m.pixels, [2]int{1, 1})
	assert.NotContains(t, m.pixels, [2]int{61, 1})
}

func TestRenderDimLetters(t *testing.T) {
	cfg := DefaultConfig()
	dark := newFakeMatrix()
	renderTime(t, dark, cfg, 7, 0)

	cfg.DimLetters = true
	dim := newFakeMatrix()
	renderTime(t, dim, cfg, 7, 0)

	// Dim mode draws strictly more pixels than lit-only mode.
	assert.Greater(t, len(dim.pixels), len(dark.pixels))

	// The lit words keep the on-color in both modes.
	for p, c := range dark.pixels {
		assert.Equal(t, c, dim.pixels[p], "pixel %v", p)
	}
}

func TestRendererClose(t *testing.T) {
	m := newFakeMatrix()
	r := New(DefaultConfig(), m)
	require.NoError(t, r.Close())
	assert.True(t, m.closed)
}
