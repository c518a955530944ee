// Package render turns lit grid cells into pixels on a 64x64 panel.
package render

import "image/color"

// Config describes how the letter grid maps onto the panel.
type Config struct {
	// Panel size in pixels.
	PanelWidth  int
	PanelHeight int

	// Character cell size and spacing in pixels.
	CharWidth  int
	CharHeight int
	SpacingX   int
	SpacingY   int

	// Colors for lit letters, unlit letters and the corner dots.
	ColorOn  color.RGBA
	ColorDim color.RGBA
	ColorDot color.RGBA

	// DimLetters draws unlit letters in ColorDim instead of leaving them off.
	DimLetters bool

	// Corner dot geometry.
	DotMargin int
	DotSize   int
}

// DefaultConfig returns the layout for the Seengreat 64x64 P3.0 panel.
func DefaultConfig() Config {
	white := color.RGBA{255, 255, 255, 255}
	return Config{
		PanelWidth:  64,
		PanelHeight: 64,
		CharWidth:   5,
		CharHeight:  5,
		SpacingX:    1,
		SpacingY:    1,
		ColorOn:     white,
		ColorDim:    color.RGBA{20, 20, 20, 255},
		ColorDot:    white,
		DotMargin:   1,
		DotSize:     2,
	}
}
