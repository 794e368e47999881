package led

// Driver abstracts an LED output sink. Frames are whole-strip only.
type Driver interface {
	// Write pushes an RGB frame. len(rgb) must be 3*N.
	Write(rgb []byte) error
	// Close halts the output and releases resources.
	Close() error
}
