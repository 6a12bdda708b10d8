// Package watchdog feeds the host liveness watchdog. The daemon feeds once
// per poll cycle, unconditionally; the watchdog timeout budget must exceed
// the poll interval plus the bus-off recovery settle delay.
package watchdog

import (
	"time"

	"github.com/coreos/go-systemd/v22/daemon"
)

// Feeder resets the external watchdog. Implementations must be cheap: the
// feed happens on every poll cycle.
type Feeder interface {
	Feed() error
}

// New returns a systemd feeder and its timeout when the service watchdog is
// armed (WatchdogSec= in the unit), or a Noop feeder when it is not.
func New() (Feeder, time.Duration, error) {
	interval, err := daemon.SdWatchdogEnabled(false)
	if err != nil {
		return nil, 0, err
	}
	if interval == 0 {
		return Noop{}, 0, nil
	}
	return Systemd{}, interval, nil
}

// Systemd feeds the systemd service watchdog.
type Systemd struct{}

// Feed sends WATCHDOG=1 to the service manager.
func (Systemd) Feed() error {
	_, err := daemon.SdNotify(false, daemon.SdNotifyWatchdog)
	return err
}

// Noop is used when no watchdog is armed.
type Noop struct{}

func (Noop) Feed() error { return nil }
