package flow

import "fmt"

// Sink receives finished RGB frames. led.Driver satisfies it.
type Sink interface {
	Write(rgb []byte) error
}

// Engine owns the per-tick animation pipeline: physics step, glow paint,
// frame push. The frame buffer is allocated once and reused; no partial
// frames are ever presented.
type Engine struct {
	Particle *Particle
	Raster   Raster

	drv Sink
	out []byte
}

// NewEngine allocates the frame buffer for a strip of length pixels and
// starts the water mass centered.
func NewEngine(length int, drv Sink, base Color) (*Engine, error) {
	if length <= 0 {
		return nil, fmt.Errorf("invalid strip length: %d", length)
	}
	return &Engine{
		Particle: NewParticle(length),
		Raster:   Raster{Base: base},
		drv:      drv,
		out:      make([]byte, length*3),
	}, nil
}

// Step advances one animation tick under the given tilt and pushes the
// frame to the sink. The returned slice aliases the internal buffer and is
// valid until the next Step.
func (e *Engine) Step(tilt float64) ([]byte, error) {
	e.Particle.Step(tilt)
	e.Raster.Next(e.out, e.Particle.Pos)
	if e.drv != nil {
		if err := e.drv.Write(e.out); err != nil {
			return e.out, err
		}
	}
	return e.out, nil
}
