package app

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"

	"github.com/coreman2200/funtimes-aquaflow/internal/config"
	"github.com/coreman2200/funtimes-aquaflow/internal/flow"
	"github.com/coreman2200/funtimes-aquaflow/internal/led"
	"github.com/coreman2200/funtimes-aquaflow/internal/sensor"
	"github.com/coreman2200/funtimes-aquaflow/internal/stream"
	"github.com/coreman2200/funtimes-aquaflow/internal/vis"
)

// Core holds the wired pipeline: sensor source -> cell -> engine ->
// driver/console/stream.
type Core struct {
	Cfg    *config.Config
	Cell   *sensor.Cell
	Src    sensor.Source
	Eng    *flow.Engine
	Con    *vis.Console
	Stream *stream.State // optional

	drv led.Driver
}

// InitCore probes the accelerometer once and builds the pipeline. A failed
// probe permanently selects the synthetic tilt source; it is decided here
// and never re-evaluated.
func InitCore(cfg *config.Config, drv led.Driver, console io.Writer, st *stream.State) (*Core, error) {
	c := &Core{
		Cfg:    cfg,
		Cell:   &sensor.Cell{},
		Con:    vis.NewConsole(console, cfg.Leds),
		Stream: st,
		drv:    drv,
	}

	base := flow.Color{R: cfg.Color.R, G: cfg.Color.G, B: cfg.Color.B}
	eng, err := flow.NewEngine(cfg.Leds, drv, base)
	if err != nil {
		return nil, err
	}
	c.Eng = eng

	c.Src = probeSource(cfg)
	_, hw := c.Src.(*sensor.MPU6050)
	c.Cell.SetHardware(hw)
	if st != nil {
		st.SetHardware(hw)
	}
	return c, nil
}

func probeSource(cfg *config.Config) sensor.Source {
	if cfg.SimOnly {
		log.Info().Msg("simulated tilt source selected")
		return sensor.NewSim()
	}
	bus, err := i2creg.Open(cfg.I2C.Bus)
	if err != nil {
		log.Warn().Err(err).Str("bus", cfg.I2C.Bus).Msg("no I2C bus; falling back to simulated tilt")
		return sensor.NewSim()
	}
	mpu, err := hardwareSource(bus, cfg.I2C.Addr)
	if err != nil {
		log.Warn().Err(err).Msg("accelerometer probe failed; falling back to simulated tilt")
		return sensor.NewSim()
	}
	log.Info().Uint16("addr", cfg.I2C.Addr).Msg("accelerometer awake")
	return mpu
}

// hardwareSource wakes the accelerometer, closing the bus when the probe
// fails so the handle is not pinned for the rest of a simulated run.
func hardwareSource(bus i2c.BusCloser, addr uint16) (sensor.Source, error) {
	mpu, err := sensor.NewMPU6050(bus, addr)
	if err != nil {
		_ = bus.Close()
		return nil, err
	}
	return mpu, nil
}

// Run drives both periodic loops until ctx is cancelled: the sensor loop
// publishing into the cell, and the animation loop stepping physics and
// presenting frames. Frame write errors are non-fatal; the loop keeps
// going regardless of sink health.
func (c *Core) Run(ctx context.Context) {
	sensorPeriod := time.Second / time.Duration(max(1, c.Cfg.SensorHz))
	go sensor.Run(ctx, c.Src, c.Cell, sensorPeriod)

	ticker := time.NewTicker(time.Second / time.Duration(max(1, c.Cfg.FPS)))
	defer ticker.Stop()
	hw := c.Cell.Hardware()
	for {
		select {
		case <-ctx.Done():
			if c.drv != nil {
				_ = c.drv.Close()
			}
			return
		case <-ticker.C:
			tilt := c.Cell.Load()
			frame, _ := c.Eng.Step(tilt)
			_ = c.Con.Frame(frame, hw, tilt, c.Eng.Particle.Pos)
			if c.Stream != nil {
				c.Stream.Broadcast(frame, tilt, c.Eng.Particle.Pos)
			}
		}
	}
}
