package telemetry

import (
	"encoding/json"
	"testing"
	"time"
)

func TestFormatStatusPayload(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	data, err := FormatPayload(Event{
		Timestamp: ts,
		Kind:      KindStatus,
		DeviceID:  0x01,
		Zone:      "APPROACHING_MIN",
		Code:      0x11,
	})
	if err != nil {
		t.Fatalf("format: %v", err)
	}

	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Safety.Event != "STATUS" {
		t.Errorf("event = %q, want STATUS", p.Safety.Event)
	}
	if p.Safety.DeviceID != 1 {
		t.Errorf("device_id = %d, want 1", p.Safety.DeviceID)
	}
	if p.Safety.Zone != "APPROACHING_MIN" {
		t.Errorf("zone = %q, want APPROACHING_MIN", p.Safety.Zone)
	}
	if p.Safety.Code != "0x11" {
		t.Errorf("code = %q, want 0x11", p.Safety.Code)
	}
	if p.Safety.Timestamp != "2026-03-14T09:26:53Z" {
		t.Errorf("timestamp = %q", p.Safety.Timestamp)
	}
	if p.Safety.ErrorMode != nil {
		t.Error("status event should not carry error_mode")
	}
}

func TestFormatFaultPayload(t *testing.T) {
	data, err := FormatPayload(Event{
		Timestamp: time.Now(),
		Kind:      KindFault,
		DeviceID:  0x02,
		ErrorMode: true,
	})
	if err != nil {
		t.Fatalf("format: %v", err)
	}

	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Safety.ErrorMode == nil || !*p.Safety.ErrorMode {
		t.Error("expected error_mode=true")
	}
	if p.Safety.Zone != "" || p.Safety.Code != "" {
		t.Error("fault event should not carry zone or code")
	}
}

func TestFormatHeartbeatPayloadOmitsStatusFields(t *testing.T) {
	data, err := FormatPayload(Event{
		Timestamp: time.Now(),
		Kind:      KindHeartbeat,
		DeviceID:  0x01,
	})
	if err != nil {
		t.Fatalf("format: %v", err)
	}

	var raw map[string]map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	inner := raw["safety"]
	for _, field := range []string{"zone", "code", "error_mode"} {
		if _, ok := inner[field]; ok {
			t.Errorf("heartbeat payload should omit %q", field)
		}
	}
}

func TestFakePublisherRecords(t *testing.T) {
	f := NewFakePublisher()
	if err := f.Publish(Event{Kind: KindHeartbeat, DeviceID: 0x01, Timestamp: time.Now()}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if len(f.Events) != 1 || len(f.Payloads) != 1 {
		t.Errorf("recorded %d events, %d payloads; want 1 each", len(f.Events), len(f.Payloads))
	}
}
