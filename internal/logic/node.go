package logic

import "time"

// Node owns all per-cycle decision state for the safety node: zone tracking,
// edge dispatch, fault monitoring, indicator phases, and the heartbeat
// schedule. It performs no I/O; the caller transmits the returned messages
// and reports each outcome back through RecordTransmit before rendering.
type Node struct {
	deviceID   byte
	thresholds Thresholds

	dispatcher *Dispatcher
	fault      FaultMonitor
	indicator  *Indicator
	heartbeat  *Heartbeat

	prevSample int
	primed     bool
	zone       Zone
	counts     EventCounts
}

// NewNode creates the node state for one device. startTime anchors the
// heartbeat schedule; the first cycle at or after startTime emits one.
func NewNode(deviceID byte, thresholds Thresholds, heartbeatInterval, blinkHalf time.Duration, startTime time.Time) *Node {
	return &Node{
		deviceID:   deviceID,
		thresholds: thresholds,
		dispatcher: NewDispatcher(deviceID),
		indicator:  NewIndicator(blinkHalf),
		heartbeat:  NewHeartbeat(heartbeatInterval, startTime),
		zone:       ZoneNeutral,
	}
}

// Cycle processes one sample and returns the messages to transmit this
// cycle, heartbeat first. The first cycle only establishes the baseline
// sample; no edge can fire against a sample that was never observed.
func (n *Node) Cycle(in Input) []Message {
	var msgs []Message

	if n.heartbeat.Due(in.Time) {
		msgs = append(msgs, Message{Kind: MessageHeartbeat, Data: []byte{n.deviceID}})
		n.counts.Heartbeats++
	}

	n.zone = n.thresholds.Classify(in.Sample)
	n.dispatcher.SyncFlags(n.zone)

	if !n.primed {
		n.primed = true
		n.prevSample = in.Sample
		return msgs
	}

	if edge, ok := n.thresholds.DetectEdge(n.prevSample, in.Sample); ok {
		if m := n.dispatcher.OnEdge(edge); m != nil {
			msgs = append(msgs, *m)
			n.countStatus(m.Data[1])
		}
	}
	n.prevSample = in.Sample

	return msgs
}

// RecordTransmit feeds one transmit outcome into the fault monitor. Call it
// once per message returned by Cycle, in order.
func (n *Node) RecordTransmit(ok bool) {
	n.fault.Record(ok)
	if !ok {
		n.counts.TxFailures++
	}
}

// Render computes the LED levels from the current zone and fault state.
func (n *Node) Render(now time.Time) (red, green bool) {
	return n.indicator.Render(n.zone, n.fault.ErrorMode(), now)
}

// DeviceID returns the identifier this node writes into every frame.
func (n *Node) DeviceID() byte { return n.deviceID }

// Zone returns the zone of the most recent sample.
func (n *Node) Zone() Zone { return n.zone }

// ErrorMode reports whether the fault monitor is in error display mode.
func (n *Node) ErrorMode() bool { return n.fault.ErrorMode() }

// ConsecutiveFailures returns the fault monitor's failure counter.
func (n *Node) ConsecutiveFailures() int { return n.fault.ConsecutiveFailures() }

// Counts returns a snapshot of the event counters.
func (n *Node) Counts() EventCounts { return n.counts }

func (n *Node) countStatus(code byte) {
	switch code {
	case StatusMinLimit:
		n.counts.MinLimit++
	case StatusApproachMin:
		n.counts.ApproachMin++
	case StatusApproachMax:
		n.counts.ApproachMax++
	case StatusMaxLimit:
		n.counts.MaxLimit++
	}
}
