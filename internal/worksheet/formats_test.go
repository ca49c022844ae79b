package worksheet

import (
	"testing"

	"github.com/nirajyt2022-source/edTech-sub001/internal/mastery"
	"github.com/nirajyt2022-source/edTech-sub001/internal/planner"
)

func makePlan(n int) []planner.SlotSpec {
	plan := make([]planner.SlotSpec, n)
	for i := range plan {
		plan[i] = planner.SlotSpec{Type: planner.SlotRecall, SkillTag: "count-objects"}
	}
	return plan
}

func hintCounts(plan []planner.SlotSpec) map[string]int {
	counts := make(map[string]int)
	for _, s := range plan {
		if s.FormatHint != "" {
			counts[s.FormatHint]++
		}
	}
	return counts
}

func TestAssignFormatHints_MatchesMix(t *testing.T) {
	tests := []struct {
		name string
		n    int
		mix  map[string]int
		want map[string]int
	}{
		{
			name: "baseline ten at default mix",
			n:    10,
			mix:  map[string]int{mastery.FormatMCQ: 40, mastery.FormatFillBlank: 30, mastery.FormatWordProblem: 30},
			want: map[string]int{mastery.FormatMCQ: 4, mastery.FormatFillBlank: 3, mastery.FormatWordProblem: 3},
		},
		{
			name: "mastered mix at five, remainder to fill_blank",
			n:    5,
			mix:  map[string]int{mastery.FormatMCQ: 20, mastery.FormatFillBlank: 30, mastery.FormatWordProblem: 50},
			want: map[string]int{mastery.FormatMCQ: 1, mastery.FormatFillBlank: 2, mastery.FormatWordProblem: 2},
		},
		{
			name: "single slot goes to the heaviest format",
			n:    1,
			mix:  map[string]int{mastery.FormatMCQ: 20, mastery.FormatFillBlank: 30, mastery.FormatWordProblem: 50},
			want: map[string]int{mastery.FormatWordProblem: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := makePlan(tt.n)
			assignFormatHints(plan, tt.mix)

			got := hintCounts(plan)
			for f, n := range tt.want {
				if got[f] != n {
					t.Errorf("format %s count = %d, want %d (got %v)", f, got[f], n, got)
				}
			}
			for _, s := range plan {
				if s.FormatHint == "" {
					t.Error("slot left without a format hint")
				}
			}
		})
	}
}

func TestAssignFormatHints_EmptyMixLeavesHintsUnset(t *testing.T) {
	plan := makePlan(3)
	assignFormatHints(plan, nil)
	for _, s := range plan {
		if s.FormatHint != "" {
			t.Errorf("hint %q set from an empty mix", s.FormatHint)
		}
	}
}
