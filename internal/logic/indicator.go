package logic

import "time"

// blinkPhase tracks one blink channel. The phase advances only when the
// half-period has elapsed since its last toggle; otherwise it holds.
type blinkPhase struct {
	on         bool
	lastToggle time.Time
}

func (p *blinkPhase) tick(now time.Time, half time.Duration) bool {
	if p.lastToggle.IsZero() || now.Sub(p.lastToggle) >= half {
		p.on = !p.on
		p.lastToggle = now
	}
	return p.on
}

// Indicator renders zone and fault state onto the two LED channels.
// Phase state persists across cycles per channel.
type Indicator struct {
	half  time.Duration
	red   blinkPhase
	green blinkPhase
	fault blinkPhase
}

func NewIndicator(half time.Duration) *Indicator {
	return &Indicator{half: half}
}

// Render computes the LED levels for this cycle. Error mode overrides zone
// rendering entirely with an alternating red/green pattern; otherwise the
// limit zones are solid, the approach zones blink their channel, and
// Neutral turns both off.
func (i *Indicator) Render(zone Zone, errorMode bool, now time.Time) (red, green bool) {
	if errorMode {
		on := i.fault.tick(now, i.half)
		return on, !on
	}

	switch zone {
	case ZoneAtMinLimit:
		return true, false
	case ZoneApproachingMin:
		return i.red.tick(now, i.half), false
	case ZoneApproachingMax:
		return false, i.green.tick(now, i.half)
	case ZoneAtMaxLimit:
		return false, true
	default: // ZoneNeutral
		return false, false
	}
}
