package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"periph.io/x/host/v3"

	"github.com/coreman2200/funtimes-aquaflow/internal/app"
	"github.com/coreman2200/funtimes-aquaflow/internal/config"
	"github.com/coreman2200/funtimes-aquaflow/internal/led"
	"github.com/coreman2200/funtimes-aquaflow/internal/stream"
)

func main() {
	var (
		leds       = flag.Int("leds", 30, "number of pixels on the strip")
		brightness = flag.Float64("brightness", 150.0/255.0, "global brightness 0..1, applied once at startup")
		fps        = flag.Int("fps", 30, "animation frames per second")
		sensorHz   = flag.Int("sensor-hz", 50, "tilt sample rate")
		driver     = flag.String("driver", "strip", "driver: strip | screen | sim")
		simOnly    = flag.Bool("sim-only", false, "skip the accelerometer probe; always synthesize tilt")
		addr       = flag.String("addr", "", "frame stream listen address; empty disables")
		configPath = flag.String("config", "config.yaml", "path to config.yaml")
		debug      = flag.Bool("debug", false, "verbose logging")
	)
	flag.Parse()

	// Status line owns stdout; logs go to stderr.
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := config.Default()
	if c, err := config.Load(*configPath); err != nil {
		log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; proceeding with flags")
	} else {
		cfg = c
	}

	// Flags override defaults only where the config file left gaps.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "leds":
			cfg.Leds = *leds
		case "brightness":
			cfg.Brightness = *brightness
		case "fps":
			cfg.FPS = *fps
		case "sensor-hz":
			cfg.SensorHz = *sensorHz
		case "driver":
			cfg.Driver = *driver
		case "sim-only":
			cfg.SimOnly = *simOnly
		case "addr":
			cfg.Addr = *addr
		}
	})

	if _, err := host.Init(); err != nil {
		log.Fatal().Err(err).Msg("periph host init failed")
	}

	var drv led.Driver
	switch cfg.Driver {
	case "strip":
		d, err := led.NewStrip(led.Opts{
			Port:       cfg.SPI.Port,
			Count:      cfg.Leds,
			Brightness: cfg.Brightness,
			RefreshKHz: cfg.SPI.RefreshKHz,
		})
		if err != nil {
			log.Warn().Err(err).Msg("strip init failed; discarding frames")
			drv = led.NewSim()
		} else {
			drv = d
		}
	case "screen":
		drv = led.NewScreen(cfg.Leds, cfg.Brightness)
	case "sim":
		drv = led.NewSim()
	default:
		log.Warn().Str("driver", cfg.Driver).Msg("unknown driver; discarding frames")
		drv = led.NewSim()
	}

	var st *stream.State
	if cfg.Addr != "" {
		st = stream.NewState(cfg.Leds)
		mux := http.NewServeMux()
		mux.HandleFunc("/ws", st.HandleFrames)
		mux.HandleFunc("/health", st.HandleHealth)
		go func() {
			log.Info().Str("addr", cfg.Addr).Msg("frame stream listening")
			if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
				log.Error().Err(err).Msg("frame stream server stopped")
			}
		}()
	}

	core, err := app.InitCore(cfg, drv, os.Stdout, st)
	if err != nil {
		log.Fatal().Err(err).Msg("init failed")
	}

	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-ch
		log.Info().Str("signal", s.String()).Msg("shutting down")
		cancel()
	}()

	log.Info().Int("leds", cfg.Leds).Int("fps", cfg.FPS).Int("sensor_hz", cfg.SensorHz).
		Str("driver", cfg.Driver).Msg("aquaflow starting")
	core.Run(ctx)
}
