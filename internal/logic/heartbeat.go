package logic

import "time"

// Heartbeat schedules periodic liveness frames. The interval is measured
// from the previous send, not wall-clock aligned.
type Heartbeat struct {
	interval time.Duration
	last     time.Time
}

// NewHeartbeat returns a scheduler whose first heartbeat is due immediately:
// the node announces itself on its first cycle.
func NewHeartbeat(interval time.Duration, start time.Time) *Heartbeat {
	return &Heartbeat{
		interval: interval,
		last:     start.Add(-interval),
	}
}

// Due reports whether a heartbeat should be sent now and records the send
// time when it is. A non-positive interval disables the heartbeat.
func (h *Heartbeat) Due(now time.Time) bool {
	if h.interval <= 0 {
		return false
	}
	if now.Sub(h.last) < h.interval {
		return false
	}
	h.last = now
	return true
}
