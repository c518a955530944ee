package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Named letter colors selectable from the CLI.
var palette = map[string]color.RGBA{
	"white":  {255, 255, 255, 255},
	"warm":   {255, 200, 150, 255},
	"cool":   {200, 220, 255, 255},
	"red":    {255, 0, 0, 255},
	"green":  {0, 255, 0, 255},
	"blue":   {0, 0, 255, 255},
	"orange": {255, 140, 0, 255},
	"yellow": {255, 255, 0, 255},
}

// ParseColor resolves a palette name or a #RRGGBB hex value.
func ParseColor(s string) (color.RGBA, error) {
	if c, ok := palette[strings.ToLower(s)]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 6 {
		v, err := strconv.ParseUint(hex, 16, 32)
		if err == nil {
			return color.RGBA{
				R: uint8(v >> 16),
				G: uint8(v >> 8),
				B: uint8(v),
				A: 255,
			}, nil
		}
	}

	return color.RGBA{}, fmt.Errorf("unknown color %q (use a palette name or #RRGGBB)", s)
}

// ColorNames lists the palette names, for flag help and completion.
func ColorNames() []string {
	return []string{"white", "warm", "cool", "red", "green", "blue", "orange", "yellow"}
}
