package worksheet

import (
	"github.com/nirajyt2022-source/edTech-sub001/internal/curriculum"
	"github.com/nirajyt2022-source/edTech-sub001/internal/history"
	"github.com/nirajyt2022-source/edTech-sub001/internal/mastery"
)

// Bloom levels target the cognitive demand of generated questions.
const (
	BloomRecall      = "recall"
	BloomApplication = "application"
	BloomReasoning   = "reasoning"
)

// GenerationContext carries everything the prompt builder needs to
// instruct the generator for one worksheet. Built fresh per request,
// never persisted.
type GenerationContext struct {
	Topic     string
	Subject   curriculum.Subject
	Grade     int
	Chapter   string
	Subtopics []string

	// Objectives are the curriculum learning objectives, capped at 3
	// in the rendered context block.
	Objectives []string

	// BloomLevel is the targeted cognitive demand for this learner.
	BloomLevel string

	// FormatMix is the target percentage split across formats.
	FormatMix map[string]int

	// Scaffolding biases ordering and hinting toward an easier
	// experience. Challenge adds one bonus question.
	Scaffolding bool
	Challenge   bool

	// ValidSkillTags are the only tags questions may target.
	ValidSkillTags []string

	// ChildContext is optional free text about the learner, included
	// in the prompt when present.
	ChildContext string

	// Avoid holds the anti-repetition signals from recent worksheets.
	Avoid history.AvoidState
}

// defaultFormatMix is the format split used when no mastery data is
// available.
func defaultFormatMix() map[string]int {
	return map[string]int{
		mastery.FormatMCQ:         40,
		mastery.FormatFillBlank:   30,
		mastery.FormatWordProblem: 30,
	}
}

// DefaultContext returns the safe-default context for a topic: recall
// bloom, default format mix, scaffolding on, challenge off. Used
// whenever curriculum or mastery lookups cannot contribute.
func DefaultContext(topic curriculum.CanonicalTopic) GenerationContext {
	return GenerationContext{
		Topic:          topic.Name,
		Subject:        topic.Subject,
		Grade:          topic.Grade,
		BloomLevel:     BloomRecall,
		FormatMix:      defaultFormatMix(),
		Scaffolding:    true,
		Challenge:      false,
		ValidSkillTags: nil,
	}
}

// bloomForLevel maps a mastery level to the targeted bloom level.
func bloomForLevel(level mastery.Level) string {
	switch level {
	case mastery.LevelImproving:
		return BloomApplication
	case mastery.LevelMastered:
		return BloomReasoning
	default:
		return BloomRecall
	}
}
