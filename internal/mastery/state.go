package mastery

// Level is a coarse competency bucket for one (student, skill) pair.
type Level string

const (
	LevelUnknown   Level = "unknown"
	LevelLearning  Level = "learning"
	LevelImproving Level = "improving"
	LevelMastered  Level = "mastered"
)

// levelOrder positions levels for promotion and demotion.
var levelOrder = []Level{LevelUnknown, LevelLearning, LevelImproving, LevelMastered}

func levelIndex(l Level) int {
	for i, v := range levelOrder {
		if v == l {
			return i
		}
	}
	return 0
}

// nextLevel returns the level one step up, capped at mastered.
func nextLevel(l Level) Level {
	i := levelIndex(l)
	if i >= len(levelOrder)-1 {
		return LevelMastered
	}
	return levelOrder[i+1]
}

// prevLevel returns the level one step down, floored at unknown.
func prevLevel(l Level) Level {
	i := levelIndex(l)
	if i <= 0 {
		return LevelUnknown
	}
	return levelOrder[i-1]
}

// promotionStreak returns the streak length required to advance out of
// a level. Unknown has no threshold: a single passing attempt promotes
// immediately, since the first success carries more signal than an
// idle unknown.
func promotionStreak(l Level) int {
	switch l {
	case LevelLearning:
		return 3
	case LevelImproving:
		return 5
	default:
		return 0
	}
}

// Transition records a mastery level change for logging and display.
type Transition struct {
	StudentID string
	SkillTag  string
	From      Level
	To        Level
	Trigger   string // "first-pass", "streak-promotion", "demotion", "decay"
}
