package worksheet

import (
	"strings"
	"time"

	"github.com/nirajyt2022-source/edTech-sub001/internal/curriculum"
)

// Question is one generated worksheet item.
type Question struct {
	// Text is the question prompt shown to the learner.
	Text string

	// Format is one of "mcq", "fill_blank", "word_problem".
	Format string

	// SkillTag is the skill this question targets.
	SkillTag string

	// SlotType is the pedagogical role the question fills.
	SlotType string

	// Answer is the canonical correct answer as a string.
	Answer string

	// Choices is populated only for the mcq format. Exactly 4 options,
	// one of which matches Answer.
	Choices []string

	// Hint is an optional one-line hint. Empty if none was generated
	// or injected.
	Hint string

	// Context is the story setting the generator used, if any
	// (e.g. "cricket match", "fruit shop"). Feeds anti-repetition.
	Context string

	// ErrorID labels the planted mistake in an error-detection
	// question. Feeds anti-repetition.
	ErrorID string

	// ThinkingStyle labels the reasoning pattern of a multi-step
	// question. Feeds anti-repetition.
	ThinkingStyle string

	// IsFallback marks a stub substituted after generation exhausted
	// its retries.
	IsFallback bool

	// IsBonus marks the extra challenge-mode question. Bonus questions
	// are exempt from slot-plan validation.
	IsBonus bool
}

// WordCount returns the number of whitespace-separated words in the
// question text.
func (q Question) WordCount() int {
	return len(strings.Fields(q.Text))
}

// Rejected pairs a question with the reviewer reasons that rejected it.
type Rejected struct {
	Question Question
	Reasons  []string
}

// Worksheet is the assembled output of one generation request.
type Worksheet struct {
	ID        string
	StudentID string
	Grade     int
	Subject   curriculum.Subject
	Topic     string
	Questions []Question

	// Audit is the quality-gate result. Advisory only.
	Audit AuditResult

	CreatedAt time.Time
}

// AnswerKey returns the answer for each question by position.
func (w *Worksheet) AnswerKey() []string {
	key := make([]string, len(w.Questions))
	for i, q := range w.Questions {
		key[i] = q.Answer
	}
	return key
}
