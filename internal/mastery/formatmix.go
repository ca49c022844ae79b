package mastery

// FormatMix returns the target percentage split across question
// formats for a mastery level. The split shifts weight from recognition
// formats toward word problems as mastery grows. For the learning
// level the split is near-even with the student's weakest format
// boosted above baseline.
func FormatMix(level Level, stats map[string]FormatStat) map[string]int {
	switch level {
	case LevelImproving:
		return map[string]int{FormatMCQ: 30, FormatFillBlank: 30, FormatWordProblem: 40}
	case LevelMastered:
		return map[string]int{FormatMCQ: 20, FormatFillBlank: 30, FormatWordProblem: 50}
	case LevelLearning:
		return learningMix(stats)
	default:
		return map[string]int{FormatMCQ: 50, FormatFillBlank: 30, FormatWordProblem: 20}
	}
}

// learningMix builds the near-even learning split. The weakest format
// gets extra practice weight; without attempt data the split stays
// even.
func learningMix(stats map[string]FormatStat) map[string]int {
	weakest, ok := WeakestFormat(stats)
	if !ok {
		return map[string]int{FormatMCQ: 34, FormatFillBlank: 33, FormatWordProblem: 33}
	}

	mix := make(map[string]int, len(FormatOrder))
	for _, f := range FormatOrder {
		if f == weakest {
			mix[f] = 40
		} else {
			mix[f] = 30
		}
	}
	return mix
}

// WeakestFormat returns the format with the lowest correct/total ratio
// among formats with at least one attempt. Ties break by FormatOrder.
// Returns ok=false when no format has any attempts.
func WeakestFormat(stats map[string]FormatStat) (string, bool) {
	weakest := ""
	worst := 2.0 // above any real ratio

	for _, f := range FormatOrder {
		st, found := stats[f]
		if !found || st.Total == 0 {
			continue
		}
		ratio := float64(st.Correct) / float64(st.Total)
		if ratio < worst {
			worst = ratio
			weakest = f
		}
	}

	if weakest == "" {
		return "", false
	}
	return weakest, true
}
