package status

import (
	"encoding/json"
	"fmt"
	"time"
)

// StatusJSON is the top-level JSON envelope for status output.
type StatusJSON struct {
	Status StatusInner `json:"status"`
}

// StatusInner contains the status details.
type StatusInner struct {
	Zone          string     `json:"zone"`
	ErrorMode     bool       `json:"error_mode"`
	Failures      int        `json:"consecutive_failures"`
	Red           bool       `json:"led_red"`
	Green         bool       `json:"led_green"`
	UptimeSeconds int64      `json:"uptime_seconds"`
	StartTime     string     `json:"start_time"`
	Timestamp     string     `json:"timestamp"`
	Counts        CountsJSON `json:"event_counts"`
	Config        ConfigJSON `json:"config"`
}

// CountsJSON is the JSON representation of event counts.
type CountsJSON struct {
	MinLimit    int `json:"min_limit"`
	ApproachMin int `json:"approach_min"`
	ApproachMax int `json:"approach_max"`
	MaxLimit    int `json:"max_limit"`
	Heartbeats  int `json:"heartbeats"`
	TxFailures  int `json:"tx_failures"`
}

// ConfigJSON is the JSON representation of daemon config.
type ConfigJSON struct {
	DeviceID    string `json:"device_id"`
	PollMs      int64  `json:"poll_ms"`
	HeartbeatMs int64  `json:"heartbeat_ms"`
	BlinkHalfMs int64  `json:"blink_half_ms"`
	Interface   string `json:"can_interface"`
	Bitrate     uint32 `json:"bitrate"`
	Broker      string `json:"broker,omitempty"`
	HTTPAddr    string `json:"http_addr"`
}

func buildInner(snap Snapshot) StatusInner {
	return StatusInner{
		Zone:          snap.Zone.String(),
		ErrorMode:     snap.ErrorMode,
		Failures:      snap.Failures,
		Red:           snap.Red,
		Green:         snap.Green,
		UptimeSeconds: int64(snap.Uptime().Truncate(time.Second).Seconds()),
		StartTime:     snap.StartTime.UTC().Format(time.RFC3339),
		Timestamp:     snap.Now.UTC().Format(time.RFC3339),
		Counts: CountsJSON{
			MinLimit:    snap.Counts.MinLimit,
			ApproachMin: snap.Counts.ApproachMin,
			ApproachMax: snap.Counts.ApproachMax,
			MaxLimit:    snap.Counts.MaxLimit,
			Heartbeats:  snap.Counts.Heartbeats,
			TxFailures:  snap.Counts.TxFailures,
		},
		Config: ConfigJSON{
			DeviceID:    fmt.Sprintf("0x%02X", snap.Config.DeviceID),
			PollMs:      snap.Config.PollMs,
			HeartbeatMs: snap.Config.HeartbeatMs,
			BlinkHalfMs: snap.Config.BlinkHalfMs,
			Interface:   snap.Config.Interface,
			Bitrate:     snap.Config.Bitrate,
			Broker:      snap.Config.Broker,
			HTTPAddr:    snap.Config.HTTPAddr,
		},
	}
}

// FormatJSON returns the JSON status for the web endpoint.
func FormatJSON(snap Snapshot) []byte {
	data, _ := json.MarshalIndent(StatusJSON{Status: buildInner(snap)}, "", "  ")
	return data
}
