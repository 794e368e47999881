package sensor

import (
	"math"
	"sync/atomic"
)

// Cell is the mailbox shared between the sensor loop and the animation
// loop: one tilt scalar, written only by the sensor loop, read only by
// the animation loop, plus the connected flag decided once at boot.
// Loads never observe a torn value.
type Cell struct {
	bits atomic.Uint64
	hw   atomic.Bool
}

// Store publishes a tilt sample in G.
func (c *Cell) Store(tilt float64) { c.bits.Store(math.Float64bits(tilt)) }

// Load returns the most recently published tilt sample.
func (c *Cell) Load() float64 { return math.Float64frombits(c.bits.Load()) }

// SetHardware records the boot-time probe outcome. Set once; never
// revisited at runtime.
func (c *Cell) SetHardware(ok bool) { c.hw.Store(ok) }

// Hardware reports whether a real accelerometer answered at boot.
func (c *Cell) Hardware() bool { return c.hw.Load() }
