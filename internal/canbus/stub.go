//go:build !linux

package canbus

import (
	"errors"
	"time"
)

var errUnsupported = errors.New("canbus: not supported on this platform (requires Linux SocketCAN)")

// SocketCAN is not available on non-Linux platforms.
type SocketCAN struct{}

// NewSocketCAN returns an error on non-Linux platforms.
func NewSocketCAN(ifname string, bitrate uint32, txTimeout time.Duration) (*SocketCAN, error) {
	return nil, errUnsupported
}

func (c *SocketCAN) Send(data []byte) error { return errUnsupported }

func (c *SocketCAN) BusOff() bool { return false }

func (c *SocketCAN) Recover() error { return errUnsupported }

func (c *SocketCAN) Close() error { return nil }
