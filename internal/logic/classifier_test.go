package logic

import "testing"

// Deployment thresholds: 2160 / 2460 / 2860 / 3360.
func testThresholds() Thresholds {
	return Thresholds{RedOn: 2160, RedBlink: 2460, GreenBlink: 2860, GreenOn: 3360}
}

func TestClassifyBoundaries(t *testing.T) {
	th := testThresholds()

	tests := []struct {
		sample int
		want   Zone
	}{
		{0, ZoneAtMinLimit},
		{2159, ZoneAtMinLimit},
		{2160, ZoneApproachingMin}, // sample == RedOn falls upward
		{2300, ZoneApproachingMin},
		{2459, ZoneApproachingMin},
		{2460, ZoneNeutral}, // sample == RedBlink is neutral
		{2660, ZoneNeutral},
		{2860, ZoneNeutral}, // sample == GreenBlink is still neutral
		{2861, ZoneApproachingMax},
		{3360, ZoneApproachingMax}, // sample == GreenOn is still approaching
		{3361, ZoneAtMaxLimit},
		{4095, ZoneAtMaxLimit},
	}

	for _, tc := range tests {
		if got := th.Classify(tc.sample); got != tc.want {
			t.Errorf("Classify(%d): got %s, want %s", tc.sample, got, tc.want)
		}
	}
}

func TestClassifyIdempotent(t *testing.T) {
	th := testThresholds()
	for _, sample := range []int{0, 2159, 2160, 2460, 2860, 2861, 3360, 3361, 4095} {
		first := th.Classify(sample)
		second := th.Classify(sample)
		if first != second {
			t.Errorf("Classify(%d) not idempotent: %s then %s", sample, first, second)
		}
	}
}

func TestDetectEdgeIdenticalSamples(t *testing.T) {
	th := testThresholds()
	for _, sample := range []int{100, 2160, 2660, 3000, 4000} {
		if edge, ok := th.DetectEdge(sample, sample); ok {
			t.Errorf("DetectEdge(%d, %d): unexpected edge %s", sample, sample, edge)
		}
	}
}

func TestDetectEdgeEntries(t *testing.T) {
	th := testThresholds()

	tests := []struct {
		name     string
		prev     int
		cur      int
		want     Edge
		wantEdge bool
	}{
		{"neutral to approach min", 2660, 2300, EdgeEnteredApproachMin, true},
		{"min to approach min", 2000, 2300, EdgeEnteredApproachMin, true},
		{"approach min to min", 2300, 2000, EdgeEnteredMin, true},
		{"neutral to approach max", 2660, 3000, EdgeEnteredApproachMax, true},
		{"max to approach max", 3500, 3000, EdgeEnteredApproachMax, true},
		{"approach max to max", 3000, 3500, EdgeEnteredMax, true},
		{"approach min to neutral", 2300, 2660, 0, false},
		{"approach max to neutral", 3000, 2660, 0, false},
		{"within neutral", 2500, 2800, 0, false},
		{"within approach min", 2200, 2400, 0, false},
		{"within min", 100, 2000, 0, false},
	}

	for _, tc := range tests {
		edge, ok := th.DetectEdge(tc.prev, tc.cur)
		if ok != tc.wantEdge {
			t.Errorf("%s: DetectEdge(%d, %d) fired=%v, want %v", tc.name, tc.prev, tc.cur, ok, tc.wantEdge)
			continue
		}
		if ok && edge != tc.want {
			t.Errorf("%s: DetectEdge(%d, %d) = %s, want %s", tc.name, tc.prev, tc.cur, edge, tc.want)
		}
	}
}

// A poll that jumps two zones fires only the edge for the zone landed in.
func TestDetectEdgeDoubleJump(t *testing.T) {
	th := testThresholds()

	edge, ok := th.DetectEdge(2660, 3500) // neutral straight to max
	if !ok {
		t.Fatal("expected an edge for neutral -> max jump")
	}
	if edge != EdgeEnteredMax {
		t.Errorf("got %s, want %s (no synthesized approach edge)", edge, EdgeEnteredMax)
	}

	edge, ok = th.DetectEdge(3500, 2000) // max straight to min
	if !ok {
		t.Fatal("expected an edge for max -> min jump")
	}
	if edge != EdgeEnteredMin {
		t.Errorf("got %s, want %s", edge, EdgeEnteredMin)
	}
}
