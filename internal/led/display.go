package led

import (
	"fmt"
	"image"
	"image/color"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/extra/devices/screen"
)

// Opts configures the strip transport.
type Opts struct {
	// Port is the spireg port name; "" opens the first available port.
	Port string
	// Count is the number of pixels on the strip.
	Count int
	// Brightness in [0,1], folded into every frame. Applied once here,
	// never rescaled at runtime.
	Brightness float64
	// RefreshKHz is the strip refresh basis; the NRZ bit clock becomes
	// (RefreshKHz*3 + 100) kHz. 800 suits WS2812B.
	RefreshKHz int
}

// Display adapts a periph display.Drawer to Driver, converting RGB byte
// frames to images and scaling channels by a fixed brightness.
type Display struct {
	drawer display.Drawer
	count  int
	scale  uint32 // 8.8 fixed point
	img    *image.NRGBA
}

// NewStrip opens the SPI port and drives a WS2812B strip with the NRZ
// encoder. Callers wanting a console fallback select NewScreen themselves.
func NewStrip(o Opts) (*Display, error) {
	if o.Count <= 0 {
		return nil, fmt.Errorf("invalid led count: %d", o.Count)
	}
	if o.RefreshKHz <= 0 {
		o.RefreshKHz = 800
	}
	port, err := spireg.Open(o.Port)
	if err != nil {
		return nil, fmt.Errorf("open spi port %q: %w", o.Port, err)
	}
	d, err := nrzled.NewSPI(port, &nrzled.Opts{
		NumPixels: o.Count,
		Channels:  3,
		Freq:      physic.Frequency(o.RefreshKHz*3+100) * physic.KiloHertz,
	})
	if err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("nrzled: %w", err)
	}
	return Wrap(d, o.Count, o.Brightness), nil
}

// NewScreen draws frames as ANSI colors on the console, for dev machines
// without an SPI port.
func NewScreen(count int, brightness float64) *Display {
	return Wrap(screen.New(count), count, brightness)
}

// Wrap adapts any drawer to Driver with the given pixel count and
// brightness.
func Wrap(d display.Drawer, count int, brightness float64) *Display {
	if brightness < 0 {
		brightness = 0
	} else if brightness > 1 {
		brightness = 1
	}
	return &Display{
		drawer: d,
		count:  count,
		scale:  uint32(brightness * 256),
		img:    image.NewNRGBA(image.Rect(0, 0, count, 1)),
	}
}

func (d *Display) Write(rgb []byte) error {
	if len(rgb) != d.count*3 {
		return fmt.Errorf("rgb length %d does not match count %d", len(rgb), d.count)
	}
	for i := 0; i < d.count; i++ {
		d.img.SetNRGBA(i, 0, color.NRGBA{
			R: uint8(uint32(rgb[i*3+0]) * d.scale >> 8),
			G: uint8(uint32(rgb[i*3+1]) * d.scale >> 8),
			B: uint8(uint32(rgb[i*3+2]) * d.scale >> 8),
			A: 255,
		})
	}
	return d.drawer.Draw(d.drawer.Bounds(), d.img, image.Point{})
}

func (d *Display) Close() error {
	return d.drawer.Halt()
}
