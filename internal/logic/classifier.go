package logic

// Thresholds holds the four hysteresis boundaries, strictly increasing:
// RedOn < RedBlink < GreenBlink < GreenOn. Validation happens once at
// startup (see internal/config); the logic layer trusts the ordering.
type Thresholds struct {
	RedOn      int
	RedBlink   int
	GreenBlink int
	GreenOn    int
}

// Classify maps a raw sample onto a zone. Pure and total: the same sample
// always yields the same zone. Boundary samples fall into the lower-adjacent
// zone exactly as commented on each case.
func (t Thresholds) Classify(sample int) Zone {
	switch {
	case sample < t.RedOn:
		return ZoneAtMinLimit
	case sample < t.RedBlink: // RedOn <= sample < RedBlink
		return ZoneApproachingMin
	case sample <= t.GreenBlink: // RedBlink <= sample <= GreenBlink
		return ZoneNeutral
	case sample <= t.GreenOn: // GreenBlink < sample <= GreenOn
		return ZoneApproachingMax
	default: // sample > GreenOn
		return ZoneAtMaxLimit
	}
}

// DetectEdge reports entry into a non-neutral zone between two consecutive
// samples. At most one edge fires per cycle. If sampling stalls long enough
// for a poll to jump two zones (e.g. Neutral straight to AtMaxLimit), only
// the edge for the zone landed in fires; the skipped approach zone is not
// synthesized.
func (t Thresholds) DetectEdge(prev, cur int) (Edge, bool) {
	prevZone := t.Classify(prev)
	curZone := t.Classify(cur)
	if curZone == prevZone || curZone == ZoneNeutral {
		return 0, false
	}

	switch curZone {
	case ZoneAtMinLimit:
		return EdgeEnteredMin, true
	case ZoneApproachingMin:
		return EdgeEnteredApproachMin, true
	case ZoneApproachingMax:
		return EdgeEnteredApproachMax, true
	default: // ZoneAtMaxLimit
		return EdgeEnteredMax, true
	}
}
