package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/coreman2200/funtimes-aquaflow/internal/flow"
	"github.com/coreman2200/funtimes-aquaflow/internal/vis"
)

// Offline simulator: steps the water physics without tickers or hardware
// and prints one glyph bar per frame. Handy for eyeballing tuning changes.
func main() {
	var (
		leds   = flag.Int("leds", 30, "strip length")
		frames = flag.Int("frames", 120, "frames to simulate")
		tilt   = flag.Float64("tilt", 0, "fixed tilt in G, used when -wave=false")
		wave   = flag.Bool("wave", true, "drive with the synthetic 0.8*sin(0.5t) oscillation")
		fps    = flag.Float64("fps", 30, "simulated frame rate (drives the oscillation clock)")
	)
	flag.Parse()

	eng, err := flow.NewEngine(*leds, nil, flow.WaterBlue)
	if err != nil {
		log.Fatalf("engine: %v", err)
	}
	con := vis.NewConsole(os.Stdout, *leds)

	for i := 0; i < *frames; i++ {
		in := *tilt
		if *wave {
			t := float64(i) / *fps
			in = math.Sin(t*0.5) * 0.8
		}
		frame, _ := eng.Step(in)
		_ = con.Frame(frame, false, in, eng.Particle.Pos)
		fmt.Println()
	}
}
