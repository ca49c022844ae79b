package planner

// SlotType is the pedagogical role of a planned question.
type SlotType string

const (
	SlotRecall         SlotType = "recall"
	SlotApplication    SlotType = "application"
	SlotRepresentation SlotType = "representation"
	SlotErrorDetection SlotType = "error_detection"
	SlotThinking       SlotType = "thinking"
)

// AllSlotTypes returns the five slot types in display order.
func AllSlotTypes() []SlotType {
	return []SlotType{
		SlotRecall,
		SlotApplication,
		SlotRepresentation,
		SlotErrorDetection,
		SlotThinking,
	}
}

// remainderPriority orders slot types for leftover-unit distribution
// when scaling a recipe. Harder-to-satisfy types come first so that
// thinking and error-detection slots survive small plans.
var remainderPriority = map[SlotType]int{
	SlotThinking:       0,
	SlotErrorDetection: 1,
	SlotApplication:    2,
	SlotRecall:         3,
	SlotRepresentation: 4,
}

// Priority returns the remainder-distribution rank of a slot type
// (lower ranks receive leftover units first).
func (s SlotType) Priority() int {
	if p, ok := remainderPriority[s]; ok {
		return p
	}
	return len(remainderPriority)
}

// DisplayName returns a human-readable label for a slot type.
func (s SlotType) DisplayName() string {
	switch s {
	case SlotRecall:
		return "Recall"
	case SlotApplication:
		return "Application"
	case SlotRepresentation:
		return "Representation"
	case SlotErrorDetection:
		return "Error Detection"
	case SlotThinking:
		return "Thinking"
	default:
		return string(s)
	}
}

// SlotSpec is one planned question position: a pedagogical role, the
// skill it targets, and an optional format preference.
type SlotSpec struct {
	Type       SlotType
	SkillTag   string
	FormatHint string
}
