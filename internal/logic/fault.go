package logic

// failureThreshold is the number of consecutive transmit failures that flips
// the node into error display mode.
const failureThreshold = 3

// FaultMonitor tracks consecutive transmit failures and the resulting
// error-display state. Error mode is entered on the attempt that brings the
// counter to the threshold and cleared by the next successful transmission,
// which also resets the counter.
type FaultMonitor struct {
	failures  int
	errorMode bool
}

// Record feeds one transmit outcome into the monitor.
func (m *FaultMonitor) Record(ok bool) {
	if ok {
		m.failures = 0
		m.errorMode = false
		return
	}
	if m.failures < failureThreshold {
		m.failures++
	}
	if m.failures >= failureThreshold {
		m.errorMode = true
	}
}

// ErrorMode reports whether the node is in error display mode.
func (m *FaultMonitor) ErrorMode() bool { return m.errorMode }

// ConsecutiveFailures returns the saturating failure counter.
func (m *FaultMonitor) ConsecutiveFailures() int { return m.failures }
