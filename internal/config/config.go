// Package config defines the safety-node configuration and its validation.
// Configuration is fixed at deploy time: it is loaded and validated once at
// startup and never mutated afterwards.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Device     DeviceConfig     `yaml:"device"`
	Thresholds ThresholdsConfig `yaml:"thresholds"`
	Bus        BusConfig        `yaml:"bus"`
	Timing     TimingConfig     `yaml:"timing"`
}

// ---- DEVICE ----

type DeviceConfig struct {
	// ID distinguishes the two physical installations: 0x01 or 0x02.
	ID uint8 `yaml:"id"`
}

// ---- THRESHOLDS ----

// ThresholdsConfig holds the four hysteresis boundaries against the 12-bit
// sample range. They must be strictly increasing:
// RedOn < RedBlink < GreenBlink < GreenOn.
type ThresholdsConfig struct {
	RedOn      int `yaml:"red_on"`
	RedBlink   int `yaml:"red_blink"`
	GreenBlink int `yaml:"green_blink"`
	GreenOn    int `yaml:"green_on"`
}

// ---- BUS ----

type BusConfig struct {
	Interface        string `yaml:"interface"`
	Bitrate          uint32 `yaml:"bitrate"`
	TxTimeoutMs      int    `yaml:"tx_timeout_ms"`
	RecoverySettleMs int    `yaml:"recovery_settle_ms"`
}

// ---- TIMING ----

type TimingConfig struct {
	PollMs      int `yaml:"poll_ms"`
	HeartbeatMs int `yaml:"heartbeat_ms"`
	BlinkHalfMs int `yaml:"blink_half_ms"`
}

func (t TimingConfig) Poll() time.Duration      { return time.Duration(t.PollMs) * time.Millisecond }
func (t TimingConfig) Heartbeat() time.Duration { return time.Duration(t.HeartbeatMs) * time.Millisecond }
func (t TimingConfig) BlinkHalf() time.Duration { return time.Duration(t.BlinkHalfMs) * time.Millisecond }

func (b BusConfig) TxTimeout() time.Duration { return time.Duration(b.TxTimeoutMs) * time.Millisecond }
func (b BusConfig) RecoverySettle() time.Duration {
	return time.Duration(b.RecoverySettleMs) * time.Millisecond
}

// Default returns the configuration the nodes ship with.
func Default() Config {
	return Config{
		Device: DeviceConfig{ID: 0x01},
		Thresholds: ThresholdsConfig{
			RedOn:      2160,
			RedBlink:   2460,
			GreenBlink: 2860,
			GreenOn:    3360,
		},
		Bus: BusConfig{
			Interface:        "can0",
			Bitrate:          500000,
			TxTimeoutMs:      100,
			RecoverySettleMs: 100,
		},
		Timing: TimingConfig{
			PollMs:      50,
			HeartbeatMs: 5000,
			BlinkHalfMs: 250,
		},
	}
}

// Load reads a YAML file over the defaults. Fields absent from the file keep
// their default values. Validation is the caller's responsibility.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
