// Package telemetry mirrors bus activity to MQTT for monitoring. The mirror
// is best effort: publish failures are logged by the caller and never feed
// the bus fault monitor.
package telemetry

import (
	"encoding/json"
	"fmt"
	"time"
)

// Topic is the MQTT topic for mirrored safety-node events.
const Topic = "machines/safety-node/events"

// Publisher mirrors safety-node events to a broker.
type Publisher interface {
	// Publish sends one event to the broker.
	Publish(event Event) error

	// Close disconnects from the broker.
	Close() error
}

// Event is one mirrored occurrence: a status frame, a heartbeat, or a
// fault-state transition.
type Event struct {
	Timestamp time.Time
	Kind      string // "STATUS", "HEARTBEAT", "FAULT"
	DeviceID  byte
	Zone      string // status events: zone entered
	Code      byte   // status events: bus status code
	ErrorMode bool   // fault events: new fault state
}

// Event kinds.
const (
	KindStatus    = "STATUS"
	KindHeartbeat = "HEARTBEAT"
	KindFault     = "FAULT"
)

// Payload is the MQTT message envelope.
type Payload struct {
	Safety SafetyPayload `json:"safety"`
}

// SafetyPayload contains the mirrored event details.
type SafetyPayload struct {
	Timestamp string `json:"timestamp"`
	Event     string `json:"event"`
	DeviceID  uint8  `json:"device_id"`
	Zone      string `json:"zone,omitempty"`
	Code      string `json:"code,omitempty"`
	ErrorMode *bool  `json:"error_mode,omitempty"`
}

// FormatPayload creates the JSON payload for an event.
func FormatPayload(event Event) ([]byte, error) {
	p := Payload{
		Safety: SafetyPayload{
			Timestamp: event.Timestamp.UTC().Format(time.RFC3339),
			Event:     event.Kind,
			DeviceID:  event.DeviceID,
		},
	}
	switch event.Kind {
	case KindStatus:
		p.Safety.Zone = event.Zone
		p.Safety.Code = fmt.Sprintf("0x%02X", event.Code)
	case KindFault:
		mode := event.ErrorMode
		p.Safety.ErrorMode = &mode
	}
	return json.Marshal(p)
}
