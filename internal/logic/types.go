// Package logic contains pure decision logic for the safety node.
// This package has NO external dependencies (no CAN, GPIO, OS, or time.Sleep).
// Time is always injectable via time.Time parameters.
package logic

import (
	"fmt"
	"time"
)

// Zone classifies a raw sensor sample against the hysteresis thresholds.
// Variants are ordered by ascending sample value.
type Zone int

const (
	ZoneAtMinLimit Zone = iota
	ZoneApproachingMin
	ZoneNeutral
	ZoneApproachingMax
	ZoneAtMaxLimit
)

func (z Zone) String() string {
	switch z {
	case ZoneAtMinLimit:
		return "AT_MIN_LIMIT"
	case ZoneApproachingMin:
		return "APPROACHING_MIN"
	case ZoneNeutral:
		return "NEUTRAL"
	case ZoneApproachingMax:
		return "APPROACHING_MAX"
	case ZoneAtMaxLimit:
		return "AT_MAX_LIMIT"
	default:
		return fmt.Sprintf("Zone(%d)", int(z))
	}
}

// Status codes carried in the second byte of a status frame.
const (
	StatusMinLimit    byte = 0x10
	StatusApproachMin byte = 0x11
	StatusApproachMax byte = 0x12
	StatusMaxLimit    byte = 0x20
)

// Edge identifies entry into one of the four non-neutral zones. Entering
// Neutral never fires an edge.
type Edge int

const (
	EdgeEnteredMin Edge = iota
	EdgeEnteredApproachMin
	EdgeEnteredApproachMax
	EdgeEnteredMax
)

func (e Edge) String() string {
	switch e {
	case EdgeEnteredMin:
		return "ENTERED_MIN"
	case EdgeEnteredApproachMin:
		return "ENTERED_APPROACH_MIN"
	case EdgeEnteredApproachMax:
		return "ENTERED_APPROACH_MAX"
	case EdgeEnteredMax:
		return "ENTERED_MAX"
	default:
		return fmt.Sprintf("Edge(%d)", int(e))
	}
}

// MessageKind distinguishes the two frame types on the shared identifier.
type MessageKind int

const (
	MessageHeartbeat MessageKind = iota
	MessageStatus
)

// Message is a payload bound for the shared bus identifier.
// Heartbeats carry [device_id]; status frames carry [device_id, code].
type Message struct {
	Kind MessageKind
	Data []byte
}

// Input represents a single poll-cycle observation.
type Input struct {
	Sample int
	Time   time.Time
}

// EventCounts tracks emitted frames and transmit outcomes since startup.
type EventCounts struct {
	MinLimit    int
	ApproachMin int
	ApproachMax int
	MaxLimit    int
	Heartbeats  int
	TxFailures  int
}
