package analytics

import "testing"

func TestClassifyQuadrant(t *testing.T) {
	tests := []struct {
		name          string
		rate          float64
		inconsistent  int
		hasCompliance bool
		want          Quadrant
	}{
		{"no compliance profile", 90, 0, false, QuadrantNone},
		{"clean and high approval", 70, 0, true, QuadrantGreenLight},
		{"dirty and high approval", 70, 2, true, QuadrantPaperTiger},
		{"clean and low approval", 40, 0, true, QuadrantPipelineProblem},
		{"dirty and low approval", 40, 3, true, QuadrantWalledOff},
		{"threshold is inclusive", 65, 0, true, QuadrantGreenLight},
		{"just under threshold", 64.9, 0, true, QuadrantPipelineProblem},
	}
	for _, tt := range tests {
		got := ClassifyQuadrant(tt.rate, tt.inconsistent, tt.hasCompliance)
		if got != tt.want {
			t.Errorf("%s: ClassifyQuadrant(%.1f, %d, %v) = %q, want %q",
				tt.name, tt.rate, tt.inconsistent, tt.hasCompliance, got, tt.want)
		}
	}
}

func TestClassifyQuadrantExhaustive(t *testing.T) {
	// Every flag combination yields exactly one of the four labels.
	valid := make(map[Quadrant]bool)
	for _, q := range Quadrants {
		valid[q] = true
	}
	for _, rate := range []float64{0, 64, 65, 100} {
		for _, inc := range []int{0, 1, 7} {
			got := ClassifyQuadrant(rate, inc, true)
			if !valid[got] {
				t.Errorf("ClassifyQuadrant(%.0f, %d, true) = %q, not a quadrant", rate, inc, got)
			}
		}
	}
}
