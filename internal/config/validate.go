package config

import "fmt"

// maxSample is the top of the 12-bit converter range the thresholds are
// calibrated against.
const maxSample = 4095

// minPollMs is the sampling floor. Below this the hall readings are noise.
const minPollMs = 50

var supportedBitrates = map[uint32]bool{
	125000:  true,
	250000:  true,
	500000:  true,
	1000000: true,
}

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg.Device.ID != 0x01 && cfg.Device.ID != 0x02 {
		return fmt.Errorf("device.id must be 0x01 or 0x02, got 0x%02X", cfg.Device.ID)
	}

	t := cfg.Thresholds
	if t.RedOn < 0 || t.GreenOn > maxSample {
		return fmt.Errorf("thresholds must lie within 0..%d, got %d..%d", maxSample, t.RedOn, t.GreenOn)
	}
	if !(t.RedOn < t.RedBlink && t.RedBlink < t.GreenBlink && t.GreenBlink < t.GreenOn) {
		return fmt.Errorf(
			"thresholds must be strictly increasing: red_on=%d red_blink=%d green_blink=%d green_on=%d",
			t.RedOn, t.RedBlink, t.GreenBlink, t.GreenOn,
		)
	}

	if cfg.Bus.Interface == "" {
		return fmt.Errorf("bus.interface must not be empty")
	}
	if !supportedBitrates[cfg.Bus.Bitrate] {
		return fmt.Errorf("bus.bitrate %d is not supported", cfg.Bus.Bitrate)
	}
	if cfg.Bus.TxTimeoutMs <= 0 {
		return fmt.Errorf("bus.tx_timeout_ms must be positive, got %d", cfg.Bus.TxTimeoutMs)
	}
	if cfg.Bus.RecoverySettleMs <= 0 {
		return fmt.Errorf("bus.recovery_settle_ms must be positive, got %d", cfg.Bus.RecoverySettleMs)
	}

	if cfg.Timing.PollMs < minPollMs {
		return fmt.Errorf("timing.poll_ms must be at least %d, got %d", minPollMs, cfg.Timing.PollMs)
	}
	if cfg.Timing.HeartbeatMs <= 0 {
		return fmt.Errorf("timing.heartbeat_ms must be positive, got %d", cfg.Timing.HeartbeatMs)
	}
	if cfg.Timing.BlinkHalfMs <= 0 {
		return fmt.Errorf("timing.blink_half_ms must be positive, got %d", cfg.Timing.BlinkHalfMs)
	}

	return nil
}
