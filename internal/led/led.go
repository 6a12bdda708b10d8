// Package led drives the red/green indicator outputs with hardware
// abstraction. The real implementation uses the Linux GPIO character device.
package led

// Output sets the two indicator levels.
type Output interface {
	// Set drives both channels to the given levels.
	Set(red, green bool) error

	// Close turns the indicators off and releases GPIO resources.
	Close() error
}

// Default BCM pin numbers for the indicator LEDs.
const (
	DefaultPinRed   = 23
	DefaultPinGreen = 24
)
