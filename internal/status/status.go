// Package status provides a thread-safe status tracker for the safety-node
// daemon. The poll loop writes it; the HTTP handlers read it.
package status

import (
	"sync"
	"time"

	"github.com/sweeney/safety-node/internal/logic"
)

// Config contains daemon configuration for display.
type Config struct {
	DeviceID    uint8
	PollMs      int64
	HeartbeatMs int64
	BlinkHalfMs int64
	Interface   string
	Bitrate     uint32
	Broker      string // empty = telemetry mirror disabled
	HTTPAddr    string
}

// Snapshot is a point-in-time view of daemon state.
// It is a value type — safe to use after the lock is released.
type Snapshot struct {
	Zone      logic.Zone
	ErrorMode bool
	Failures  int
	Red       bool
	Green     bool
	Counts    logic.EventCounts
	StartTime time.Time
	Now       time.Time
	Config    Config
}

// Uptime returns the duration since the daemon started.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// Tracker holds mutable daemon state behind an RWMutex.
type Tracker struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewTracker creates a Tracker with the given start time and config.
func NewTracker(startTime time.Time, cfg Config) *Tracker {
	return &Tracker{
		snap: Snapshot{
			Zone:      logic.ZoneNeutral,
			StartTime: startTime,
			Config:    cfg,
		},
	}
}

// Update sets the per-cycle state. Called from the poll loop on every tick.
func (t *Tracker) Update(zone logic.Zone, errorMode bool, failures int, red, green bool, counts logic.EventCounts) {
	t.mu.Lock()
	t.snap.Zone = zone
	t.snap.ErrorMode = errorMode
	t.snap.Failures = failures
	t.snap.Red = red
	t.snap.Green = green
	t.snap.Counts = counts
	t.mu.Unlock()
}

// Snapshot returns a point-in-time copy of the daemon state.
// The Now field is set to the current time at the moment of the call.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	s := t.snap
	t.mu.RUnlock()
	s.Now = time.Now()
	return s
}
