package mastery

import "testing"

func mixTotal(mix map[string]int) int {
	total := 0
	for _, v := range mix {
		total += v
	}
	return total
}

func TestFormatMix_FixedLevels(t *testing.T) {
	tests := []struct {
		level Level
		want  map[string]int
	}{
		{LevelUnknown, map[string]int{FormatMCQ: 50, FormatFillBlank: 30, FormatWordProblem: 20}},
		{LevelImproving, map[string]int{FormatMCQ: 30, FormatFillBlank: 30, FormatWordProblem: 40}},
		{LevelMastered, map[string]int{FormatMCQ: 20, FormatFillBlank: 30, FormatWordProblem: 50}},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			got := FormatMix(tt.level, nil)
			for f, want := range tt.want {
				if got[f] != want {
					t.Errorf("%s: %s = %d, want %d", tt.level, f, got[f], want)
				}
			}
		})
	}
}

func TestFormatMix_SumsNear100(t *testing.T) {
	stats := map[string]FormatStat{
		FormatMCQ:       {Correct: 1, Total: 4},
		FormatFillBlank: {Correct: 3, Total: 4},
	}
	for _, level := range []Level{LevelUnknown, LevelLearning, LevelImproving, LevelMastered} {
		total := mixTotal(FormatMix(level, stats))
		if total < 98 || total > 102 {
			t.Errorf("%s: mix sums to %d", level, total)
		}
	}
}

func TestFormatMix_LearningBoostsWeakest(t *testing.T) {
	stats := map[string]FormatStat{
		FormatMCQ:         {Correct: 4, Total: 4},
		FormatFillBlank:   {Correct: 1, Total: 4},
		FormatWordProblem: {Correct: 3, Total: 4},
	}
	mix := FormatMix(LevelLearning, stats)
	if mix[FormatFillBlank] <= mix[FormatMCQ] || mix[FormatFillBlank] <= mix[FormatWordProblem] {
		t.Errorf("weakest format not boosted: %+v", mix)
	}
}

func TestFormatMix_LearningNoAttempts(t *testing.T) {
	mix := FormatMix(LevelLearning, nil)
	if total := mixTotal(mix); total < 98 || total > 102 {
		t.Errorf("mix sums to %d", total)
	}
	// Near-even: no format deviates from a third by more than 2.
	for f, v := range mix {
		if v < 31 || v > 35 {
			t.Errorf("%s = %d, want near-even", f, v)
		}
	}
}

func TestWeakestFormat(t *testing.T) {
	tests := []struct {
		name   string
		stats  map[string]FormatStat
		want   string
		wantOK bool
	}{
		{"no attempts", nil, "", false},
		{"zero totals ignored", map[string]FormatStat{FormatMCQ: {Total: 0}}, "", false},
		{
			"lowest ratio wins",
			map[string]FormatStat{
				FormatMCQ:         {Correct: 3, Total: 4},
				FormatWordProblem: {Correct: 1, Total: 4},
			},
			FormatWordProblem, true,
		},
		{
			"tie breaks by format order",
			map[string]FormatStat{
				FormatMCQ:       {Correct: 1, Total: 2},
				FormatFillBlank: {Correct: 1, Total: 2},
			},
			FormatMCQ, true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := WeakestFormat(tt.stats)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("WeakestFormat = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
