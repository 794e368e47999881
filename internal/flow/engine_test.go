package flow

import "testing"

// fakeSink captures every frame written.
type fakeSink struct {
	frames [][]byte
}

func (f *fakeSink) Write(rgb []byte) error {
	f.frames = append(f.frames, append([]byte{}, rgb...))
	return nil
}

func TestEnginePushesWholeFrames(t *testing.T) {
	drv := &fakeSink{}
	e, err := NewEngine(30, drv, WaterBlue)
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	for i := 0; i < 10; i++ {
		if _, err := e.Step(0.5); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if len(drv.frames) != 10 {
		t.Fatalf("expected 10 frames, got %d", len(drv.frames))
	}
	for i, f := range drv.frames {
		if len(f) != 30*3 {
			t.Fatalf("frame %d: length %d, want %d", i, len(f), 30*3)
		}
	}
}

func TestEngineRejectsBadLength(t *testing.T) {
	if _, err := NewEngine(0, nil, WaterBlue); err == nil {
		t.Fatal("expected error for zero-length strip")
	}
}

func TestEngineFrameTracksWaterMass(t *testing.T) {
	e, err := NewEngine(30, nil, WaterBlue)
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	frame, err := e.Step(1.0)
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	// the brightest pixel sits at the mass' position
	peakIdx, peak := 0, uint8(0)
	for i := 0; i < 30; i++ {
		if b := frame[i*3+2]; b > peak {
			peak, peakIdx = b, i
		}
	}
	if got := int(e.Particle.Pos + 0.5); peakIdx != got && peakIdx != got-1 && peakIdx != got+1 {
		t.Fatalf("peak pixel %d far from mass at %.2f", peakIdx, e.Particle.Pos)
	}
}
