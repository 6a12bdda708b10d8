// Package adc reads the analog position sensor with hardware abstraction.
// The real implementation uses an ADS1115 on the I2C bus.
// The fake implementation allows testing without hardware.
package adc

// FullScale is the top of the 12-bit sample range the thresholds are
// calibrated against.
const FullScale = 4095

// Reader returns raw position samples in the 0..FullScale range.
type Reader interface {
	// Read returns the current raw sensor value.
	Read() (int, error)

	// Close releases sensor resources.
	Close() error
}
