package led

// Levels is one recorded output state.
type Levels struct {
	Red   bool
	Green bool
}

// FakeOutput records every Set call for test assertions.
type FakeOutput struct {
	// History contains every level pair passed to Set, in order.
	History []Levels

	// SetError, if set, will be returned by Set.
	SetError error

	// Closed tracks if Close was called.
	Closed bool
}

// NewFakeOutput creates a FakeOutput.
func NewFakeOutput() *FakeOutput {
	return &FakeOutput{}
}

// Set records the levels.
func (f *FakeOutput) Set(red, green bool) error {
	if f.SetError != nil {
		return f.SetError
	}
	f.History = append(f.History, Levels{Red: red, Green: green})
	return nil
}

// Current returns the most recent levels, or both off if Set was never called.
func (f *FakeOutput) Current() Levels {
	if len(f.History) == 0 {
		return Levels{}
	}
	return f.History[len(f.History)-1]
}

// Close marks the output as closed.
func (f *FakeOutput) Close() error {
	f.Closed = true
	return nil
}
