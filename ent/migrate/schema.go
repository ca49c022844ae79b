// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// MasteryRecordsColumns holds the columns for the "mastery_records" table.
	MasteryRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "skill_tag", Type: field.TypeString},
		{Name: "level", Type: field.TypeString, Default: "unknown"},
		{Name: "streak", Type: field.TypeInt, Default: 0},
		{Name: "total_attempts", Type: field.TypeInt, Default: 0},
		{Name: "correct_attempts", Type: field.TypeInt, Default: 0},
		{Name: "last_error_type", Type: field.TypeString, Default: ""},
		{Name: "format_stats", Type: field.TypeJSON, Nullable: true},
		{Name: "last_practiced_at", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// MasteryRecordsTable holds the schema information for the "mastery_records" table.
	MasteryRecordsTable = &schema.Table{
		Name:       "mastery_records",
		Columns:    MasteryRecordsColumns,
		PrimaryKey: []*schema.Column{MasteryRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryrecord_student_id_skill_tag",
				Unique:  true,
				Columns: []*schema.Column{MasteryRecordsColumns[1], MasteryRecordsColumns[2]},
			},
			{
				Name:    "masteryrecord_student_id",
				Unique:  false,
				Columns: []*schema.Column{MasteryRecordsColumns[1]},
			},
		},
	}
	// WorksheetRecordsColumns holds the columns for the "worksheet_records" table.
	WorksheetRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "worksheet_id", Type: field.TypeString},
		{Name: "grade", Type: field.TypeInt},
		{Name: "topic", Type: field.TypeString},
		{Name: "used_contexts", Type: field.TypeJSON, Nullable: true},
		{Name: "used_error_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "used_thinking_styles", Type: field.TypeJSON, Nullable: true},
		{Name: "used_number_pairs", Type: field.TypeJSON, Nullable: true},
		{Name: "used_question_hashes", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// WorksheetRecordsTable holds the schema information for the "worksheet_records" table.
	WorksheetRecordsTable = &schema.Table{
		Name:       "worksheet_records",
		Columns:    WorksheetRecordsColumns,
		PrimaryKey: []*schema.Column{WorksheetRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "worksheetrecord_grade_topic",
				Unique:  false,
				Columns: []*schema.Column{WorksheetRecordsColumns[2], WorksheetRecordsColumns[3]},
			},
			{
				Name:    "worksheetrecord_created_at",
				Unique:  false,
				Columns: []*schema.Column{WorksheetRecordsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		MasteryRecordsTable,
		WorksheetRecordsTable,
	}
)

func init() {
}
