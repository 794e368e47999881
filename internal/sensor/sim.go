package sensor

import (
	"math"
	"time"
)

// Sim synthesizes a slow, gentle tilt oscillation for rigs without an
// accelerometer attached: 0.8 * sin(0.5 * t), t in seconds since start.
type Sim struct {
	start time.Time
	now   func() time.Time
}

// NewSim starts the oscillation on the wall clock.
func NewSim() *Sim {
	return NewSimAt(time.Now(), time.Now)
}

// NewSimAt pins the oscillation to a caller-controlled clock.
func NewSimAt(start time.Time, now func() time.Time) *Sim {
	return &Sim{start: start, now: now}
}

func (s *Sim) Tilt() (float64, error) {
	t := s.now().Sub(s.start).Seconds()
	return math.Sin(t*0.5) * 0.8, nil
}
