package flow

import "math"

const (
	// GlowDecay is the exponential falloff rate of intensity with pixel
	// distance from the water mass.
	GlowDecay = 0.5

	phaseStep = 0.05
)

// Color is an 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

// WaterBlue is the default hue of the glow.
var WaterBlue = Color{B: 255}

// Raster paints the glow around the water mass into an RGB frame, carrying
// the shimmer phase between frames.
type Raster struct {
	Base  Color
	phase float64
}

// Next advances the shimmer phase by one frame and paints into rgb.
// len(rgb) must be 3*N for a strip of N pixels.
func (r *Raster) Next(rgb []byte, pos float64) {
	r.phase += phaseStep
	Paint(rgb, pos, r.phase, r.Base)
}

// Phase returns the current shimmer phase.
func (r *Raster) Phase() float64 { return r.phase }

// Paint renders one full frame: an exponential glow centered on pos,
// modulated per pixel by a shimmer wave sin(i*0.3 + phase)*0.2 + 0.8.
// Pure function of its arguments.
func Paint(rgb []byte, pos, phase float64, base Color) {
	n := len(rgb) / 3
	for i := 0; i < n; i++ {
		dist := math.Abs(float64(i) - pos)
		intensity := math.Exp(-dist * GlowDecay)
		intensity *= math.Sin(float64(i)*0.3+phase)*0.2 + 0.8
		if intensity < 0 {
			intensity = 0
		} else if intensity > 1 {
			intensity = 1
		}
		rgb[i*3+0] = uint8(float64(base.R) * intensity)
		rgb[i*3+1] = uint8(float64(base.G) * intensity)
		rgb[i*3+2] = uint8(float64(base.B) * intensity)
	}
}
