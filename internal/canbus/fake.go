package canbus

// FakeTransport is a test double that records sent payloads and returns
// scripted outcomes.
type FakeTransport struct {
	// Sent contains every payload passed to Send, in order, including
	// payloads whose send was scripted to fail.
	Sent [][]byte

	// SendErrs holds scripted Send results; each call consumes one.
	// When exhausted, Send succeeds.
	SendErrs []error

	// Off controls BusOff.
	Off bool

	// RecoverClears makes Recover set Off to false, simulating a
	// successful controller restart.
	RecoverClears bool

	// RecoverErr, if set, is returned by Recover.
	RecoverErr error

	// RecoverCalls counts Recover invocations.
	RecoverCalls int

	// Closed tracks if Close was called.
	Closed bool

	errIndex int
}

// NewFakeTransport creates a FakeTransport that succeeds every send.
func NewFakeTransport() *FakeTransport {
	return &FakeTransport{}
}

// Send records the payload and returns the next scripted outcome.
func (f *FakeTransport) Send(data []byte) error {
	cp := make([]byte, len(data))
	copy(cp, data)
	f.Sent = append(f.Sent, cp)

	if f.errIndex < len(f.SendErrs) {
		err := f.SendErrs[f.errIndex]
		f.errIndex++
		return err
	}
	return nil
}

// BusOff returns the scripted bus-off state.
func (f *FakeTransport) BusOff() bool { return f.Off }

// Recover counts the call and optionally clears the bus-off state.
func (f *FakeTransport) Recover() error {
	f.RecoverCalls++
	if f.RecoverErr != nil {
		return f.RecoverErr
	}
	if f.RecoverClears {
		f.Off = false
	}
	return nil
}

// Close marks the transport as closed.
func (f *FakeTransport) Close() error {
	f.Closed = true
	return nil
}
