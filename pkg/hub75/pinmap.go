// Package hub75 drives HUB75 RGB matrix panels by bit-banging the Linux GPIO
// character device. It scans the panel row pair by row pair: address lines
// select the pair, pixel data is clocked in for the upper and lower half at
// once, then latched with output briefly disabled.
package hub75

import "fmt"

// PinMap assigns BCM GPIO numbers to the HUB75 signals.
type PinMap struct {
	R1, G1, B1 int // color data, upper half
	R2, G2, B2 int // color data, lower half

	Clk int // pixel clock
	Lat int // latch
	OE  int // output enable, active low

	Addr [5]int // row address bits A-E
}

// Pins returns every GPIO number in the map.
func (m PinMap) Pins() []int {
	pins := []int{m.R1, m.G1, m.B1, m.R2, m.G2, m.B2, m.Clk, m.Lat, m.OE}
	return append(pins, m.Addr[:]...)
}

// Wiring presets. "regular" matches a directly wired panel, "adafruit-hat"
// the Adafruit RGB Matrix Bonnet/HAT.
var mappings = map[string]PinMap{
	"regular": {
		R1: 11, G1: 27, B1: 7,
		R2: 8, G2: 9, B2: 10,
		Clk: 17, Lat: 4, OE: 18,
		Addr: [5]int{22, 23, 24, 25, 15},
	},
	"adafruit-hat": {
		R1: 5, G1: 13, B1: 6,
		R2: 12, G2: 16, B2: 23,
		Clk: 17, Lat: 21, OE: 4,
		Addr: [5]int{22, 26, 27, 20, 24},
	},
}

// Mapping resolves a wiring preset by name.
func Mapping(name string) (PinMap, error) {
	m, ok := mappings[name]
	if !ok {
		return PinMap{}, fmt.Errorf("unknown GPIO mapping %q (regular, adafruit-hat)", name)
	}
	return m, nil
}

// MappingNames lists the wiring presets, for flag help and completion.
func MappingNames() []string {
	return []string{"regular", "adafruit-hat"}
}
