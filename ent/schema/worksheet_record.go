package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorksheetRecord stores one completed worksheet's anti-repetition
// signals. Rows form a rolling window per (grade, topic) stream:
// appends prune anything beyond the most recent 30.
type WorksheetRecord struct {
	ent.Schema
}

func (WorksheetRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("worksheet_id").
			Comment("UUID of the generated worksheet"),
		field.Int("grade"),
		field.String("topic").
			NotEmpty().
			Comment("Canonical topic name"),
		field.JSON("used_contexts", []string{}).
			Optional().
			Comment("Story settings that appeared in questions"),
		field.JSON("used_error_ids", []string{}).
			Optional().
			Comment("Planted-mistake identifiers from error-detection slots"),
		field.JSON("used_thinking_styles", []string{}).
			Optional().
			Comment("Multi-step reasoning patterns from thinking slots"),
		field.JSON("used_number_pairs", []string{}).
			Optional().
			Comment("Operand pairs from numeric questions"),
		field.JSON("used_question_hashes", []string{}).
			Optional().
			Comment("Exact and structural question digests"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (WorksheetRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("grade", "topic"),
		index.Fields("created_at"),
	}
}
