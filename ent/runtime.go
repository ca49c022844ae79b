// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/nirajyt2022-source/edTech-sub001/ent/llmrequestevent"
	"github.com/nirajyt2022-source/edTech-sub001/ent/masteryrecord"
	"github.com/nirajyt2022-source/edTech-sub001/ent/schema"
	"github.com/nirajyt2022-source/edTech-sub001/ent/worksheetrecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	masteryrecordFields := schema.MasteryRecord{}.Fields()
	_ = masteryrecordFields
	// masteryrecordDescStudentID is the schema descriptor for student_id field.
	masteryrecordDescStudentID := masteryrecordFields[0].Descriptor()
	// masteryrecord.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	masteryrecord.StudentIDValidator = masteryrecordDescStudentID.Validators[0].(func(string) error)
	// masteryrecordDescSkillTag is the schema descriptor for skill_tag field.
	masteryrecordDescSkillTag := masteryrecordFields[1].Descriptor()
	// masteryrecord.SkillTagValidator is a validator for the "skill_tag" field. It is called by the builders before save.
	masteryrecord.SkillTagValidator = masteryrecordDescSkillTag.Validators[0].(func(string) error)
	// masteryrecordDescLevel is the schema descriptor for level field.
	masteryrecordDescLevel := masteryrecordFields[2].Descriptor()
	// masteryrecord.DefaultLevel holds the default value on creation for the level field.
	masteryrecord.DefaultLevel = masteryrecordDescLevel.Default.(string)
	// masteryrecordDescStreak is the schema descriptor for streak field.
	masteryrecordDescStreak := masteryrecordFields[3].Descriptor()
	// masteryrecord.DefaultStreak holds the default value on creation for the streak field.
	masteryrecord.DefaultStreak = masteryrecordDescStreak.Default.(int)
	// masteryrecordDescTotalAttempts is the schema descriptor for total_attempts field.
	masteryrecordDescTotalAttempts := masteryrecordFields[4].Descriptor()
	// masteryrecord.DefaultTotalAttempts holds the default value on creation for the total_attempts field.
	masteryrecord.DefaultTotalAttempts = masteryrecordDescTotalAttempts.Default.(int)
	// masteryrecordDescCorrectAttempts is the schema descriptor for correct_attempts field.
	masteryrecordDescCorrectAttempts := masteryrecordFields[5].Descriptor()
	// masteryrecord.DefaultCorrectAttempts holds the default value on creation for the correct_attempts field.
	masteryrecord.DefaultCorrectAttempts = masteryrecordDescCorrectAttempts.Default.(int)
	// masteryrecordDescLastErrorType is the schema descriptor for last_error_type field.
	masteryrecordDescLastErrorType := masteryrecordFields[6].Descriptor()
	// masteryrecord.DefaultLastErrorType holds the default value on creation for the last_error_type field.
	masteryrecord.DefaultLastErrorType = masteryrecordDescLastErrorType.Default.(string)
	// masteryrecordDescUpdatedAt is the schema descriptor for updated_at field.
	masteryrecordDescUpdatedAt := masteryrecordFields[9].Descriptor()
	// masteryrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	masteryrecord.DefaultUpdatedAt = masteryrecordDescUpdatedAt.Default.(func() time.Time)
	// masteryrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	masteryrecord.UpdateDefaultUpdatedAt = masteryrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	worksheetrecordFields := schema.WorksheetRecord{}.Fields()
	_ = worksheetrecordFields
	// worksheetrecordDescTopic is the schema descriptor for topic field.
	worksheetrecordDescTopic := worksheetrecordFields[2].Descriptor()
	// worksheetrecord.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	worksheetrecord.TopicValidator = worksheetrecordDescTopic.Validators[0].(func(string) error)
	// worksheetrecordDescCreatedAt is the schema descriptor for created_at field.
	worksheetrecordDescCreatedAt := worksheetrecordFields[8].Descriptor()
	// worksheetrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	worksheetrecord.DefaultCreatedAt = worksheetrecordDescCreatedAt.Default.(func() time.Time)
}
