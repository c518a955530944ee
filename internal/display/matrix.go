// Package display defines the pixel matrix the renderer draws on.
package display

import "image/color"

// Matrix is a pixel-addressable display panel.
type Matrix interface {
	// Clear turns every pixel off.
	Clear() error
	// SetPixel sets the pixel at the given coordinates to the given color.
	SetPixel(x, y int, c color.Color) error
	// Show pushes the current buffer to the panel.
	Show() error
	// Close releases the panel.
	Close() error
}
