// Package canbus provides CAN transport for safety frames with hardware
// abstraction. The real implementation uses SocketCAN; the fake allows
// testing without a bus.
package canbus

// FrameID is the fixed 11-bit identifier all safety frames share. Receivers
// distinguish devices by the first payload byte, not by identifier.
const FrameID uint32 = 0x005

// Transport sends safety frames and exposes bus-off recovery control.
type Transport interface {
	// Send transmits one payload (1..8 bytes) on the shared identifier.
	// Returns error if the frame could not be queued on the bus.
	Send(data []byte) error

	// BusOff reports whether the controller is in the bus-off state.
	BusOff() bool

	// Recover requests controller recovery from bus-off.
	Recover() error

	// Close releases bus resources.
	Close() error
}
