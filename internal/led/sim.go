package led

import "sync/atomic"

// Sim discards frames while counting them, for headless runs and tests.
type Sim struct {
	frames atomic.Uint64
}

func NewSim() *Sim { return &Sim{} }

func (s *Sim) Write(rgb []byte) error {
	s.frames.Add(1)
	return nil
}

func (s *Sim) Close() error { return nil }

// Frames returns how many frames have been written.
func (s *Sim) Frames() uint64 { return s.frames.Load() }
