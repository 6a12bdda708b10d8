package logic

// Dispatcher turns zone-entry edges into status messages, applying one-shot
// suppression for the two approach zones: entering an approach zone is
// reported once per unbroken stay, rearmed the moment the sample leaves the
// zone in either direction.
type Dispatcher struct {
	deviceID byte

	minApproachReported bool
	maxApproachReported bool
}

func NewDispatcher(deviceID byte) *Dispatcher {
	return &Dispatcher{deviceID: deviceID}
}

// SyncFlags rearms a suppression flag once the sample is no longer in its
// approach zone. Runs every cycle, independent of edge detection, so leaving
// a zone without producing an edge still rearms reporting.
func (d *Dispatcher) SyncFlags(current Zone) {
	if current != ZoneApproachingMin {
		d.minApproachReported = false
	}
	if current != ZoneApproachingMax {
		d.maxApproachReported = false
	}
}

// OnEdge returns the status message for an edge, or nil when the approach
// suppression flag swallows it. Limit entries always emit and rearm the
// adjacent approach flag.
func (d *Dispatcher) OnEdge(edge Edge) *Message {
	switch edge {
	case EdgeEnteredMin:
		d.minApproachReported = false
		return d.status(StatusMinLimit)
	case EdgeEnteredApproachMin:
		if d.minApproachReported {
			return nil
		}
		d.minApproachReported = true
		return d.status(StatusApproachMin)
	case EdgeEnteredApproachMax:
		if d.maxApproachReported {
			return nil
		}
		d.maxApproachReported = true
		return d.status(StatusApproachMax)
	case EdgeEnteredMax:
		d.maxApproachReported = false
		return d.status(StatusMaxLimit)
	default:
		return nil
	}
}

func (d *Dispatcher) status(code byte) *Message {
	return &Message{
		Kind: MessageStatus,
		Data: []byte{d.deviceID, code},
	}
}

// MinApproachReported reports the min-side suppression flag. Test hook.
func (d *Dispatcher) MinApproachReported() bool { return d.minApproachReported }

// MaxApproachReported reports the max-side suppression flag. Test hook.
func (d *Dispatcher) MaxApproachReported() bool { return d.maxApproachReported }
