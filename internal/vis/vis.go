package vis

import (
	"fmt"
	"io"
)

// Glyph ramp, brightest first.
const (
	dense  = '~' // bright water glow
	medium = '=' // water body
	sparse = '_' // dim edge
	blank  = ' ' // off
)

// Glyph maps a pixel's peak channel brightness to its console glyph.
func Glyph(brightness uint8) byte {
	switch {
	case brightness > 180:
		return dense
	case brightness > 50:
		return medium
	case brightness > 10:
		return sparse
	default:
		return blank
	}
}

// Console renders each frame as a fixed-width glyph bar with telemetry,
// overwriting a single output line per frame.
type Console struct {
	w   io.Writer
	bar []byte
}

func NewConsole(w io.Writer, length int) *Console {
	return &Console{w: w, bar: make([]byte, length)}
}

// Bar returns the glyph bar for the last rendered frame.
func (c *Console) Bar() string { return string(c.bar) }

// Frame overwrites the current line with the frame's state. rgb must hold
// 3 bytes per bar glyph.
func (c *Console) Frame(rgb []byte, hardware bool, tilt, pos float64) error {
	if len(rgb) < len(c.bar)*3 {
		return fmt.Errorf("rgb length %d does not cover %d glyphs", len(rgb), len(c.bar))
	}
	for i := range c.bar {
		b := rgb[i*3]
		if g := rgb[i*3+1]; g > b {
			b = g
		}
		if bl := rgb[i*3+2]; bl > b {
			b = bl
		}
		c.bar[i] = Glyph(b)
	}
	tag := "[SIM]"
	if hardware {
		tag = "[H/W]"
	}
	_, err := fmt.Fprintf(c.w, "\r%s Tilt (X): %.2f | Pos: %.2f | Flow: [%s] ", tag, tilt, pos, c.bar)
	return err
}
