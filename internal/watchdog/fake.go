package watchdog

// Fake counts feeds for test assertions.
type Fake struct {
	// Feeds counts Feed calls.
	Feeds int

	// Err, if set, will be returned by Feed.
	Err error
}

// Feed counts the call.
func (f *Fake) Feed() error {
	f.Feeds++
	return f.Err
}
