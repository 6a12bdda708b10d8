package logic

import (
	"testing"
	"time"
)

const testHalf = 250 * time.Millisecond

func TestRenderSolidZones(t *testing.T) {
	ind := NewIndicator(testHalf)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	red, green := ind.Render(ZoneAtMinLimit, false, now)
	if !red || green {
		t.Errorf("min limit: got red=%v green=%v, want red solid", red, green)
	}

	red, green = ind.Render(ZoneAtMaxLimit, false, now)
	if red || !green {
		t.Errorf("max limit: got red=%v green=%v, want green solid", red, green)
	}

	red, green = ind.Render(ZoneNeutral, false, now)
	if red || green {
		t.Errorf("neutral: got red=%v green=%v, want both off", red, green)
	}
}

func TestRenderApproachBlink(t *testing.T) {
	ind := NewIndicator(testHalf)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	// First render starts the phase on.
	red, green := ind.Render(ZoneApproachingMin, false, now)
	if !red || green {
		t.Fatalf("t=0: got red=%v green=%v, want red on", red, green)
	}

	// Before the half-period the phase holds.
	red, _ = ind.Render(ZoneApproachingMin, false, now.Add(100*time.Millisecond))
	if !red {
		t.Error("t=100ms: phase should hold, red still on")
	}

	// At the half-period it toggles.
	red, _ = ind.Render(ZoneApproachingMin, false, now.Add(250*time.Millisecond))
	if red {
		t.Error("t=250ms: red should have toggled off")
	}

	// And toggles back after another half-period.
	red, _ = ind.Render(ZoneApproachingMin, false, now.Add(500*time.Millisecond))
	if !red {
		t.Error("t=500ms: red should have toggled on again")
	}
}

func TestRenderGreenBlinkIndependent(t *testing.T) {
	ind := NewIndicator(testHalf)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	red, green := ind.Render(ZoneApproachingMax, false, now)
	if red || !green {
		t.Fatalf("got red=%v green=%v, want green blinking, red off", red, green)
	}

	_, green = ind.Render(ZoneApproachingMax, false, now.Add(250*time.Millisecond))
	if green {
		t.Error("green should have toggled off at the half-period")
	}
}

func TestRenderErrorModeOverrides(t *testing.T) {
	ind := NewIndicator(testHalf)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	// Error mode alternates the channels regardless of zone.
	red, green := ind.Render(ZoneAtMaxLimit, true, now)
	if red == green {
		t.Fatalf("error mode: got red=%v green=%v, want alternation", red, green)
	}
	firstRed := red

	// Holds within the half-period.
	red, green = ind.Render(ZoneAtMaxLimit, true, now.Add(100*time.Millisecond))
	if red != firstRed || red == green {
		t.Error("error pattern should hold within the half-period")
	}

	// Swaps at the half-period.
	red, green = ind.Render(ZoneAtMaxLimit, true, now.Add(250*time.Millisecond))
	if red == firstRed || red == green {
		t.Error("error pattern should swap at the half-period")
	}
}

// Scenario: after error mode clears, rendering returns to the zone.
func TestRenderRecoversToZone(t *testing.T) {
	ind := NewIndicator(testHalf)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	ind.Render(ZoneAtMaxLimit, true, now)
	red, green := ind.Render(ZoneAtMaxLimit, false, now.Add(50*time.Millisecond))
	if red || !green {
		t.Errorf("after recovery: got red=%v green=%v, want green solid", red, green)
	}
}
