package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesClassicRig(t *testing.T) {
	c := Default()
	assert.Equal(t, 30, c.Leds)
	assert.InDelta(t, 150.0/255.0, c.Brightness, 1e-9)
	assert.Equal(t, 30, c.FPS)
	assert.Equal(t, 50, c.SensorHz)
	assert.Equal(t, uint16(0x68), c.I2C.Addr)
	assert.Equal(t, uint8(255), c.Color.B)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("leds: 60\nsim_only: true\naddr: :8080\n"), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 60, c.Leds)
	assert.True(t, c.SimOnly)
	assert.Equal(t, ":8080", c.Addr)
	// untouched keys keep their defaults
	assert.Equal(t, 50, c.SensorHz)
	assert.Equal(t, 800, c.SPI.RefreshKHz)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	c := Default()
	c.Leds = 144
	c.Driver = "screen"
	require.NoError(t, Save(path, c))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 144, got.Leds)
	assert.Equal(t, "screen", got.Driver)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
