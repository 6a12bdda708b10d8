package logic

import "testing"

// Fault law: exactly 3 consecutive failures enter error mode; any single
// success clears it and resets the counter.
func TestFaultThreshold(t *testing.T) {
	var m FaultMonitor

	m.Record(false)
	m.Record(false)
	if m.ErrorMode() {
		t.Fatal("error mode after 2 failures")
	}
	if m.ConsecutiveFailures() != 2 {
		t.Errorf("failures = %d, want 2", m.ConsecutiveFailures())
	}

	m.Record(false)
	if !m.ErrorMode() {
		t.Fatal("expected error mode after 3 failures")
	}

	m.Record(true)
	if m.ErrorMode() {
		t.Error("success should clear error mode")
	}
	if m.ConsecutiveFailures() != 0 {
		t.Errorf("failures = %d, want 0 after success", m.ConsecutiveFailures())
	}
}

func TestFaultCounterSaturates(t *testing.T) {
	var m FaultMonitor
	for i := 0; i < 10; i++ {
		m.Record(false)
	}
	if m.ConsecutiveFailures() != 3 {
		t.Errorf("failures = %d, want saturation at 3", m.ConsecutiveFailures())
	}
	if !m.ErrorMode() {
		t.Error("expected error mode to persist")
	}
}

func TestFaultInterveningSuccessResets(t *testing.T) {
	var m FaultMonitor
	m.Record(false)
	m.Record(false)
	m.Record(true)
	m.Record(false)
	m.Record(false)
	if m.ErrorMode() {
		t.Error("2 failures after a success must not enter error mode")
	}
	m.Record(false)
	if !m.ErrorMode() {
		t.Error("3rd consecutive failure must enter error mode")
	}
}
