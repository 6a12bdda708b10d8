//go:build linux

package canbus

import (
	"context"
	"fmt"
	"log"
	"net"
	"time"

	"go.einride.tech/can"
	"go.einride.tech/can/pkg/candevice"
	"go.einride.tech/can/pkg/socketcan"
)

// SocketCAN is a Transport backed by a Linux SocketCAN interface.
//
// The interface is expected to have restart-ms left at zero, so a bus-off
// controller stays down until Recover restarts it. That makes "interface
// not operationally up" the observable bus-off signal.
type SocketCAN struct {
	name      string
	conn      net.Conn
	tx        *socketcan.Transmitter
	dev       *candevice.Device
	txTimeout time.Duration
}

// NewSocketCAN configures the named interface for the given bitrate, brings
// it up, and opens a raw CAN connection on it.
func NewSocketCAN(ifname string, bitrate uint32, txTimeout time.Duration) (*SocketCAN, error) {
	dev, err := candevice.New(ifname)
	if err != nil {
		return nil, fmt.Errorf("open can device %s: %w", ifname, err)
	}

	// Bitrate changes require the interface down.
	if err := dev.SetDown(); err != nil {
		return nil, fmt.Errorf("set %s down: %w", ifname, err)
	}
	if err := dev.SetBitrate(bitrate); err != nil {
		return nil, fmt.Errorf("set %s bitrate %d: %w", ifname, bitrate, err)
	}
	if err := dev.SetUp(); err != nil {
		return nil, fmt.Errorf("set %s up: %w", ifname, err)
	}

	conn, err := socketcan.DialContext(context.Background(), "can", ifname)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", ifname, err)
	}

	return &SocketCAN{
		name:      ifname,
		conn:      conn,
		tx:        socketcan.NewTransmitter(conn),
		dev:       dev,
		txTimeout: txTimeout,
	}, nil
}

// Send transmits one payload on the shared identifier.
func (c *SocketCAN) Send(data []byte) error {
	if len(data) == 0 || len(data) > 8 {
		return fmt.Errorf("payload must be 1..8 bytes, got %d", len(data))
	}

	frame := can.Frame{ID: FrameID, Length: uint8(len(data))}
	copy(frame.Data[:], data)

	ctx, cancel := context.WithTimeout(context.Background(), c.txTimeout)
	defer cancel()
	if err := c.tx.TransmitFrame(ctx, frame); err != nil {
		return fmt.Errorf("transmit: %w", err)
	}
	return nil
}

// BusOff reports whether the controller has dropped off the bus.
func (c *SocketCAN) BusOff() bool {
	up, err := c.dev.IsUp()
	if err != nil {
		log.Printf("canbus: query %s state: %v", c.name, err)
		return false
	}
	return !up
}

// Recover restarts the controller with a down/up cycle, the userspace
// equivalent of `ip link set <dev> type can restart`.
func (c *SocketCAN) Recover() error {
	if err := c.dev.SetDown(); err != nil {
		return fmt.Errorf("set down: %w", err)
	}
	if err := c.dev.SetUp(); err != nil {
		return fmt.Errorf("set up: %w", err)
	}
	return nil
}

// Close releases the raw CAN connection. The interface itself is left up.
func (c *SocketCAN) Close() error {
	return c.conn.Close()
}
