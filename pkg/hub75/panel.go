package hub75

import (
	"fmt"
	"image/color"
	"sync"
	"time"

	"github.com/warthog618/go-gpiocdev"
)

// Config describes the panel and how it is wired.
type Config struct {
	Chip       string // GPIO character device, e.g. "gpiochip0"
	Width      int
	Height     int
	Brightness int    // 1-100
	Mapping    string // wiring preset name

	// ScanDelay is the pause between row pairs during scanout.
	ScanDelay time.Duration
}

// DefaultConfig returns the configuration for a 64x64 panel on a Bonnet.
func DefaultConfig() Config {
	return Config{
		Chip:       "gpiochip0",
		Width:      64,
		Height:     64,
		Brightness: 50,
		Mapping:    "adafruit-hat",
		ScanDelay:  50 * time.Microsecond,
	}
}

// Validate checks the panel geometry and brightness range.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 || c.Height%2 != 0 {
		return fmt.Errorf("invalid panel size %dx%d", c.Width, c.Height)
	}
	if c.Height/2 > 1<<len(PinMap{}.Addr) {
		return fmt.Errorf("panel height %d needs more than %d address bits", c.Height, len(PinMap{}.Addr))
	}
	if c.Brightness < 1 || c.Brightness > 100 {
		return fmt.Errorf("brightness must be between 1 and 100, got %d", c.Brightness)
	}
	if _, err := Mapping(c.Mapping); err != nil {
		return err
	}
	return nil
}

// Panel is an open HUB75 panel. It implements display.Matrix.
type Panel struct {
	cfg   Config
	pins  PinMap
	lines map[int]*gpiocdev.Line

	mu  sync.Mutex
	buf []color.RGBA
}

// Open requests all GPIO lines for the panel and returns it with a dark
// framebuffer. Requires access to the GPIO character device (typically root).
func Open(cfg Config) (*Panel, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pins, _ := Mapping(cfg.Mapping)

	p := &Panel{
		cfg:   cfg,
		pins:  pins,
		lines: make(map[int]*gpiocdev.Line),
		buf:   make([]color.RGBA, cfg.Width*cfg.Height),
	}

	for _, pin := range pins.Pins() {
		line, err := gpiocdev.RequestLine(cfg.Chip, pin, gpiocdev.AsOutput(0))
		if err != nil {
			p.Close()
			return nil, fmt.Errorf("requesting GPIO %d on %s: %w", pin, cfg.Chip, err)
		}
		p.lines[pin] = line
	}

	return p, nil
}

// SetPixel writes a pixel into the framebuffer. The panel updates on Show.
func (p *Panel) SetPixel(x, y int, c color.Color) error {
	i, err := p.index(x, y)
	if err != nil {
		return err
	}
	r, g, b, _ := c.RGBA()

	p.mu.Lock()
	p.buf[i] = color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 255}
	p.mu.Unlock()
	return nil
}

// Clear darkens the framebuffer.
func (p *Panel) Clear() error {
	p.mu.Lock()
	for i := range p.buf {
		p.buf[i] = color.RGBA{}
	}
	p.mu.Unlock()
	return nil
}

// Show scans the framebuffer out to the panel once per call. The word clock
// changes at most once a minute, so a static image between Shows is fine for
// panels with their own PWM; others are rescanned by the refresh loop.
func (p *Panel) Show() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	half := p.cfg.Height / 2
	for row := 0; row < half; row++ {
		if err := p.scanRow(row); err != nil {
			return err
		}
		time.Sleep(p.cfg.ScanDelay)
	}
	return nil
}

// Close releases all GPIO lines.
func (p *Panel) Close() error {
	var firstErr error
	for pin, line := range p.lines {
		if line == nil {
			continue
		}
		if err := line.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closing GPIO %d: %w", pin, err)
		}
	}
	p.lines = make(map[int]*gpiocdev.Line)
	return firstErr
}

// scanRow clocks one upper/lower row pair into the panel.
func (p *Panel) scanRow(row int) error {
	for bit, pin := range p.pins.Addr {
		if err := p.set(pin, (row>>bit)&1); err != nil {
			return err
		}
	}

	// Blank the output while shifting new data.
	if err := p.set(p.pins.OE, 1); err != nil {
		return err
	}

	half := p.cfg.Height / 2
	for x := 0; x < p.cfg.Width; x++ {
		upper := p.buf[row*p.cfg.Width+x]
		lower := p.buf[(row+half)*p.cfg.Width+x]

		ur, ug, ub := channelBits(upper, p.cfg.Brightness)
		lr, lg, lb := channelBits(lower, p.cfg.Brightness)

		for _, pv := range [6]struct{ pin, v int }{
			{p.pins.R1, ur}, {p.pins.G1, ug}, {p.pins.B1, ub},
			{p.pins.R2, lr}, {p.pins.G2, lg}, {p.pins.B2, lb},
		} {
			if err := p.set(pv.pin, pv.v); err != nil {
				return err
			}
		}

		if err := p.pulse(p.pins.Clk); err != nil {
			return err
		}
	}

	if err := p.pulse(p.pins.Lat); err != nil {
		return err
	}
	return p.set(p.pins.OE, 0)
}

func (p *Panel) set(pin, value int) error {
	line, ok := p.lines[pin]
	if !ok {
		return fmt.Errorf("GPIO %d not requested", pin)
	}
	return line.SetValue(value)
}

func (p *Panel) pulse(pin int) error {
	if err := p.set(pin, 1); err != nil {
		return err
	}
	time.Sleep(time.Microsecond)
	return p.set(pin, 0)
}

// index maps panel coordinates to the framebuffer offset.
func (p *Panel) index(x, y int) (int, error) {
	if x < 0 || x >= p.cfg.Width || y < 0 || y >= p.cfg.Height {
		return 0, fmt.Errorf("coordinates out of bounds: (%d, %d)", x, y)
	}
	return y*p.cfg.Width + x, nil
}

// channelBits reduces an RGB pixel to the three 1-bit HUB75 data lines.
// Each channel is scaled by brightness and thresholded at quarter scale, so
// full-intensity colors stay visible down to low brightness while dim filler
// shades stay dark.
func channelBits(c color.RGBA, brightness int) (r, g, b int) {
	on := func(v uint8) int {
		if int(v)*brightness/100 >= 64 {
			return 1
		}
		return 0
	}
	return on(c.R), on(c.G), on(c.B)
}
