package mastery

import "time"

// Question format identifiers. The adaptive format mix is keyed by
// these values; the generation pipeline uses the same strings.
const (
	FormatMCQ         = "mcq"
	FormatFillBlank   = "fill_blank"
	FormatWordProblem = "word_problem"
)

// FormatOrder is the deterministic iteration order for format maps.
var FormatOrder = []string{FormatMCQ, FormatFillBlank, FormatWordProblem}

// FormatStat tracks attempts for one question format.
type FormatStat struct {
	Correct int
	Total   int
}

// Record holds the mastery state for one (student, skill tag) pair.
// Created lazily on the first attempt; deleted only by explicit reset.
type Record struct {
	StudentID       string
	SkillTag        string
	Level           Level
	Streak          int
	TotalAttempts   int
	CorrectAttempts int
	LastErrorType   string
	FormatStats     map[string]FormatStat
	LastPracticedAt *time.Time
	UpdatedAt       time.Time
}

// NewRecord returns a fresh unknown-level record.
func NewRecord(studentID, skillTag string) *Record {
	return &Record{
		StudentID:   studentID,
		SkillTag:    skillTag,
		Level:       LevelUnknown,
		FormatStats: make(map[string]FormatStat),
	}
}

// Accuracy returns the lifetime correct ratio, 0 when unattempted.
func (r *Record) Accuracy() float64 {
	if r.TotalAttempts == 0 {
		return 0
	}
	return float64(r.CorrectAttempts) / float64(r.TotalAttempts)
}
