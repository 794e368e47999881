package sensor

import (
	"encoding/binary"
	"fmt"

	"periph.io/x/conn/v3/i2c"
)

// Source produces one tilt sample, in G of lateral acceleration, per call.
type Source interface {
	Tilt() (float64, error)
}

// MPU-6050 register map (subset).
const (
	// DefaultAddr is the chip's 7-bit I2C address with AD0 low.
	DefaultAddr uint16 = 0x68

	regAccelXOutH byte = 0x3B
	regPwrMgmt1   byte = 0x6B

	// ±2G full-scale range, 16384 LSB per G.
	lsbPerG = 16384.0
)

// MPU6050 reads X-axis acceleration from an InvenSense MPU-6050.
type MPU6050 struct {
	dev i2c.Dev
}

// NewMPU6050 probes the accelerometer and clears its sleep bit. The chip
// powers up asleep, so a device that answers the probe still needs the
// wake write before it produces samples. An error here means no sensor;
// the caller decides the fallback once and for all.
func NewMPU6050(bus i2c.Bus, addr uint16) (*MPU6050, error) {
	if addr == 0 {
		addr = DefaultAddr
	}
	d := i2c.Dev{Bus: bus, Addr: addr}
	var pm [1]byte
	if err := d.Tx([]byte{regPwrMgmt1}, pm[:]); err != nil {
		return nil, fmt.Errorf("mpu6050 probe at %#x: %w", addr, err)
	}
	if err := d.Tx([]byte{regPwrMgmt1, 0x00}, nil); err != nil {
		return nil, fmt.Errorf("mpu6050 wake: %w", err)
	}
	return &MPU6050{dev: d}, nil
}

// Tilt reads the 2-byte big-endian signed sample from ACCEL_XOUT_H and
// converts it to G.
func (m *MPU6050) Tilt() (float64, error) {
	var raw [2]byte
	if err := m.dev.Tx([]byte{regAccelXOutH}, raw[:]); err != nil {
		return 0, err
	}
	return float64(int16(binary.BigEndian.Uint16(raw[:]))) / lsbPerG, nil
}
