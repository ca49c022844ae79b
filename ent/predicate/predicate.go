// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// MasteryRecord is the predicate function for masteryrecord builders.
type MasteryRecord func(*sql.Selector)

// WorksheetRecord is the predicate function for worksheetrecord builders.
type WorksheetRecord func(*sql.Selector)
