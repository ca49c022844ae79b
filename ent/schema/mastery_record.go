package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryRecord is the persisted mastery state for one
// (student, skill tag) pair. One row per pair, enforced by a unique
// index so concurrent writers on the same key conflict at the
// database rather than duplicating state.
type MasteryRecord struct {
	ent.Schema
}

func (MasteryRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").NotEmpty(),
		field.String("skill_tag").NotEmpty(),
		field.String("level").
			Default("unknown").
			Comment("unknown, learning, improving or mastered"),
		field.Int("streak").
			Default(0).
			Comment("Consecutive qualifying attempts at the current level"),
		field.Int("total_attempts").Default(0),
		field.Int("correct_attempts").Default(0),
		field.String("last_error_type").
			Default("").
			Comment("Most recent error classifier label, if any"),
		field.JSON("format_stats", map[string]any{}).
			Optional().
			Comment("Per-format correct/total counters"),
		field.Time("last_practiced_at").
			Optional().
			Nillable().
			Comment("Drives time-based decay; unset until first attempt"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (MasteryRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "skill_tag").Unique(),
		index.Fields("student_id"),
	}
}
