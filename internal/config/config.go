package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type SPI struct {
	Port       string `yaml:"port"`        // spireg name, "" for first available
	RefreshKHz int    `yaml:"refresh_khz"` // e.g. 800 for WS2812B
}

type I2C struct {
	Bus  string `yaml:"bus"`  // i2creg name, "" for first available
	Addr uint16 `yaml:"addr"` // accelerometer address, e.g. 0x68
}

type Color struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

type Config struct {
	Leds       int     `yaml:"leds"`
	Brightness float64 `yaml:"brightness"` // 0..1, applied once at startup
	FPS        int     `yaml:"fps"`        // animation rate
	SensorHz   int     `yaml:"sensor_hz"`  // tilt sample rate
	SimOnly    bool    `yaml:"sim_only"`   // skip the sensor probe entirely
	Driver     string  `yaml:"driver"`     // "strip" | "screen" | "sim"
	Color      Color   `yaml:"color"`
	Addr       string  `yaml:"addr,omitempty"` // frame stream listen address; "" disables

	SPI SPI `yaml:"spi,omitempty"`
	I2C I2C `yaml:"i2c,omitempty"`
}

// Default mirrors the classic 30-pixel rig: blue water, brightness 150/255,
// 30 FPS animation, 50 Hz sensor.
func Default() *Config {
	return &Config{
		Leds:       30,
		Brightness: 150.0 / 255.0,
		FPS:        30,
		SensorHz:   50,
		Driver:     "strip",
		Color:      Color{B: 255},
		SPI:        SPI{RefreshKHz: 800},
		I2C:        I2C{Addr: 0x68},
	}
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	return c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
