package logic

import (
	"testing"
	"time"
)

func TestHeartbeatFirstCycleDue(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	h := NewHeartbeat(5*time.Second, start)

	if !h.Due(start) {
		t.Fatal("first heartbeat should be due immediately")
	}
	if h.Due(start.Add(time.Second)) {
		t.Error("heartbeat due again before the interval elapsed")
	}
}

func TestHeartbeatMeasuredFromLastSend(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	h := NewHeartbeat(5*time.Second, start)

	h.Due(start)

	// The loop is late checking; the send happens at +6s.
	if !h.Due(start.Add(6 * time.Second)) {
		t.Fatal("heartbeat should be due at +6s")
	}

	// The next one is measured from the +6s send, not aligned to +10s.
	if h.Due(start.Add(10 * time.Second)) {
		t.Error("heartbeat at +10s is only 4s after the last send")
	}
	if !h.Due(start.Add(11 * time.Second)) {
		t.Error("heartbeat should be due at +11s")
	}
}

func TestHeartbeatDisabled(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	h := NewHeartbeat(0, start)
	for i := 0; i < 5; i++ {
		if h.Due(start.Add(time.Duration(i) * time.Hour)) {
			t.Fatal("disabled heartbeat must never be due")
		}
	}
}
