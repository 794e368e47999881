package vis

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

var glyphTable = []struct {
	Brightness uint8
	Expect     byte
}{
	{255, '~'},
	{200, '~'},
	{181, '~'},
	{180, '='},
	{100, '='},
	{51, '='},
	{50, '_'},
	{20, '_'},
	{11, '_'},
	{10, ' '},
	{5, ' '},
	{0, ' '},
}

func TestGlyphThresholds(t *testing.T) {
	for _, v := range glyphTable {
		assert.Equalf(t, v.Expect, Glyph(v.Brightness), "brightness %d", v.Brightness)
	}
}

func TestConsoleFrameLine(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, 4)

	// peak channel per pixel: 200, 100, 20, 5
	rgb := []byte{
		200, 0, 0,
		0, 100, 0,
		0, 0, 20,
		5, 5, 5,
	}
	err := c.Frame(rgb, false, -0.5, 15.0)
	assert.NoError(t, err)
	assert.Equal(t, "\r[SIM] Tilt (X): -0.50 | Pos: 15.00 | Flow: [~=_ ] ", buf.String())
	assert.Equal(t, "~=_ ", c.Bar())

	buf.Reset()
	err = c.Frame(rgb, true, 1.0, 29.99)
	assert.NoError(t, err)
	assert.Equal(t, "\r[H/W] Tilt (X): 1.00 | Pos: 29.99 | Flow: [~=_ ] ", buf.String())
}

func TestConsoleRejectsShortFrame(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, 4)
	err := c.Frame(make([]byte, 9), false, 0, 0)
	assert.Error(t, err)
	assert.Zero(t, buf.Len(), "nothing may be written for a short frame")
}

func TestConsoleOverwritesInPlace(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, 2)
	rgb := []byte{0, 0, 255, 0, 0, 0}
	_ = c.Frame(rgb, true, 0, 0)
	_ = c.Frame(rgb, true, 0, 0)
	// each frame starts with a carriage return, never a newline
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte{'\r'}))
	assert.NotContains(t, buf.String(), "\n")
}
