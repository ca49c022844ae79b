// Code generated by ent, DO NOT EDIT.

package worksheetrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/nirajyt2022-source/edTech-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldLTE(FieldID, id))
}

// WorksheetID applies equality check predicate on the "worksheet_id" field. It's identical to WorksheetIDEQ.
func WorksheetID(v string) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldEQ(FieldWorksheetID, v))
}

// Grade applies equality check predicate on the "grade" field. It's identical to GradeEQ.
func Grade(v int) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldEQ(FieldGrade, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldEQ(FieldTopic, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// WorksheetIDEQ applies the EQ predicate on the "worksheet_id" field.
func WorksheetIDEQ(v string) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldEQ(FieldWorksheetID, v))
}

// WorksheetIDNEQ applies the NEQ predicate on the "worksheet_id" field.
func WorksheetIDNEQ(v string) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldNEQ(FieldWorksheetID, v))
}

// WorksheetIDIn applies the In predicate on the "worksheet_id" field.
func WorksheetIDIn(vs ...string) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldIn(FieldWorksheetID, vs...))
}

// WorksheetIDNotIn applies the NotIn predicate on the "worksheet_id" field.
func WorksheetIDNotIn(vs ...string) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldNotIn(FieldWorksheetID, vs...))
}

// WorksheetIDGT applies the GT predicate on the "worksheet_id" field.
func WorksheetIDGT(v string) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldGT(FieldWorksheetID, v))
}

// WorksheetIDGTE applies the GTE predicate on the "worksheet_id" field.
func WorksheetIDGTE(v string) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldGTE(FieldWorksheetID, v))
}

// WorksheetIDLT applies the LT predicate on the "worksheet_id" field.
func WorksheetIDLT(v string) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldLT(FieldWorksheetID, v))
}

// WorksheetIDLTE applies the LTE predicate on the "worksheet_id" field.
func WorksheetIDLTE(v string) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldLTE(FieldWorksheetID, v))
}

// WorksheetIDContains applies the Contains predicate on the "worksheet_id" field.
func WorksheetIDContains(v string) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldContains(FieldWorksheetID, v))
}

// WorksheetIDHasPrefix applies the HasPrefix predicate on the "worksheet_id" field.
func WorksheetIDHasPrefix(v string) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldHasPrefix(FieldWorksheetID, v))
}

// WorksheetIDHasSuffix applies the HasSuffix predicate on the "worksheet_id" field.
func WorksheetIDHasSuffix(v string) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldHasSuffix(FieldWorksheetID, v))
}

// WorksheetIDEqualFold applies the EqualFold predicate on the "worksheet_id" field.
func WorksheetIDEqualFold(v string) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldEqualFold(FieldWorksheetID, v))
}

// WorksheetIDContainsFold applies the ContainsFold predicate on the "worksheet_id" field.
func WorksheetIDContainsFold(v string) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldContainsFold(FieldWorksheetID, v))
}

// GradeEQ applies the EQ predicate on the "grade" field.
func GradeEQ(v int) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldEQ(FieldGrade, v))
}

// GradeNEQ applies the NEQ predicate on the "grade" field.
func GradeNEQ(v int) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldNEQ(FieldGrade, v))
}

// GradeIn applies the In predicate on the "grade" field.
func GradeIn(vs ...int) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldIn(FieldGrade, vs...))
}

// GradeNotIn applies the NotIn predicate on the "grade" field.
func GradeNotIn(vs ...int) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldNotIn(FieldGrade, vs...))
}

// GradeGT applies the GT predicate on the "grade" field.
func GradeGT(v int) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldGT(FieldGrade, v))
}

// GradeGTE applies the GTE predicate on the "grade" field.
func GradeGTE(v int) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldGTE(FieldGrade, v))
}

// GradeLT applies the LT predicate on the "grade" field.
func GradeLT(v int) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldLT(FieldGrade, v))
}

// GradeLTE applies the LTE predicate on the "grade" field.
func GradeLTE(v int) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldLTE(FieldGrade, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldContainsFold(FieldTopic, v))
}

// UsedContextsIsNil applies the IsNil predicate on the "used_contexts" field.
func UsedContextsIsNil() predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldIsNull(FieldUsedContexts))
}

// UsedContextsNotNil applies the NotNil predicate on the "used_contexts" field.
func UsedContextsNotNil() predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldNotNull(FieldUsedContexts))
}

// UsedErrorIdsIsNil applies the IsNil predicate on the "used_error_ids" field.
func UsedErrorIdsIsNil() predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldIsNull(FieldUsedErrorIds))
}

// UsedErrorIdsNotNil applies the NotNil predicate on the "used_error_ids" field.
func UsedErrorIdsNotNil() predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldNotNull(FieldUsedErrorIds))
}

// UsedThinkingStylesIsNil applies the IsNil predicate on the "used_thinking_styles" field.
func UsedThinkingStylesIsNil() predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldIsNull(FieldUsedThinkingStyles))
}

// UsedThinkingStylesNotNil applies the NotNil predicate on the "used_thinking_styles" field.
func UsedThinkingStylesNotNil() predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldNotNull(FieldUsedThinkingStyles))
}

// UsedNumberPairsIsNil applies the IsNil predicate on the "used_number_pairs" field.
func UsedNumberPairsIsNil() predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldIsNull(FieldUsedNumberPairs))
}

// UsedNumberPairsNotNil applies the NotNil predicate on the "used_number_pairs" field.
func UsedNumberPairsNotNil() predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldNotNull(FieldUsedNumberPairs))
}

// UsedQuestionHashesIsNil applies the IsNil predicate on the "used_question_hashes" field.
func UsedQuestionHashesIsNil() predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldIsNull(FieldUsedQuestionHashes))
}

// UsedQuestionHashesNotNil applies the NotNil predicate on the "used_question_hashes" field.
func UsedQuestionHashesNotNil() predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldNotNull(FieldUsedQuestionHashes))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WorksheetRecord) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WorksheetRecord) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WorksheetRecord) predicate.WorksheetRecord {
	return predicate.WorksheetRecord(sql.NotPredicates(p))
}
