// Code generated by ent, DO NOT EDIT.

package masteryrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/nirajyt2022-source/edTech-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldID, id))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldStudentID, v))
}

// SkillTag applies equality check predicate on the "skill_tag" field. It's identical to SkillTagEQ.
func SkillTag(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldSkillTag, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldLevel, v))
}

// Streak applies equality check predicate on the "streak" field. It's identical to StreakEQ.
func Streak(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldStreak, v))
}

// TotalAttempts applies equality check predicate on the "total_attempts" field. It's identical to TotalAttemptsEQ.
func TotalAttempts(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldTotalAttempts, v))
}

// CorrectAttempts applies equality check predicate on the "correct_attempts" field. It's identical to CorrectAttemptsEQ.
func CorrectAttempts(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldCorrectAttempts, v))
}

// LastErrorType applies equality check predicate on the "last_error_type" field. It's identical to LastErrorTypeEQ.
func LastErrorType(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldLastErrorType, v))
}

// LastPracticedAt applies equality check predicate on the "last_practiced_at" field. It's identical to LastPracticedAtEQ.
func LastPracticedAt(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldLastPracticedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldContainsFold(FieldStudentID, v))
}

// SkillTagEQ applies the EQ predicate on the "skill_tag" field.
func SkillTagEQ(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldSkillTag, v))
}

// SkillTagNEQ applies the NEQ predicate on the "skill_tag" field.
func SkillTagNEQ(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldSkillTag, v))
}

// SkillTagIn applies the In predicate on the "skill_tag" field.
func SkillTagIn(vs ...string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldSkillTag, vs...))
}

// SkillTagNotIn applies the NotIn predicate on the "skill_tag" field.
func SkillTagNotIn(vs ...string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldSkillTag, vs...))
}

// SkillTagGT applies the GT predicate on the "skill_tag" field.
func SkillTagGT(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldSkillTag, v))
}

// SkillTagGTE applies the GTE predicate on the "skill_tag" field.
func SkillTagGTE(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldSkillTag, v))
}

// SkillTagLT applies the LT predicate on the "skill_tag" field.
func SkillTagLT(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldSkillTag, v))
}

// SkillTagLTE applies the LTE predicate on the "skill_tag" field.
func SkillTagLTE(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldSkillTag, v))
}

// SkillTagContains applies the Contains predicate on the "skill_tag" field.
func SkillTagContains(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldContains(FieldSkillTag, v))
}

// SkillTagHasPrefix applies the HasPrefix predicate on the "skill_tag" field.
func SkillTagHasPrefix(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldHasPrefix(FieldSkillTag, v))
}

// SkillTagHasSuffix applies the HasSuffix predicate on the "skill_tag" field.
func SkillTagHasSuffix(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldHasSuffix(FieldSkillTag, v))
}

// SkillTagEqualFold applies the EqualFold predicate on the "skill_tag" field.
func SkillTagEqualFold(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEqualFold(FieldSkillTag, v))
}

// SkillTagContainsFold applies the ContainsFold predicate on the "skill_tag" field.
func SkillTagContainsFold(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldContainsFold(FieldSkillTag, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldLevel, v))
}

// LevelContains applies the Contains predicate on the "level" field.
func LevelContains(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldContains(FieldLevel, v))
}

// LevelHasPrefix applies the HasPrefix predicate on the "level" field.
func LevelHasPrefix(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldHasPrefix(FieldLevel, v))
}

// LevelHasSuffix applies the HasSuffix predicate on the "level" field.
func LevelHasSuffix(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldHasSuffix(FieldLevel, v))
}

// LevelEqualFold applies the EqualFold predicate on the "level" field.
func LevelEqualFold(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEqualFold(FieldLevel, v))
}

// LevelContainsFold applies the ContainsFold predicate on the "level" field.
func LevelContainsFold(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldContainsFold(FieldLevel, v))
}

// StreakEQ applies the EQ predicate on the "streak" field.
func StreakEQ(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldStreak, v))
}

// StreakNEQ applies the NEQ predicate on the "streak" field.
func StreakNEQ(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldStreak, v))
}

// StreakIn applies the In predicate on the "streak" field.
func StreakIn(vs ...int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldStreak, vs...))
}

// StreakNotIn applies the NotIn predicate on the "streak" field.
func StreakNotIn(vs ...int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldStreak, vs...))
}

// StreakGT applies the GT predicate on the "streak" field.
func StreakGT(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldStreak, v))
}

// StreakGTE applies the GTE predicate on the "streak" field.
func StreakGTE(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldStreak, v))
}

// StreakLT applies the LT predicate on the "streak" field.
func StreakLT(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldStreak, v))
}

// StreakLTE applies the LTE predicate on the "streak" field.
func StreakLTE(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldStreak, v))
}

// TotalAttemptsEQ applies the EQ predicate on the "total_attempts" field.
func TotalAttemptsEQ(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldTotalAttempts, v))
}

// TotalAttemptsNEQ applies the NEQ predicate on the "total_attempts" field.
func TotalAttemptsNEQ(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldTotalAttempts, v))
}

// TotalAttemptsIn applies the In predicate on the "total_attempts" field.
func TotalAttemptsIn(vs ...int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldTotalAttempts, vs...))
}

// TotalAttemptsNotIn applies the NotIn predicate on the "total_attempts" field.
func TotalAttemptsNotIn(vs ...int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldTotalAttempts, vs...))
}

// TotalAttemptsGT applies the GT predicate on the "total_attempts" field.
func TotalAttemptsGT(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldTotalAttempts, v))
}

// TotalAttemptsGTE applies the GTE predicate on the "total_attempts" field.
func TotalAttemptsGTE(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldTotalAttempts, v))
}

// TotalAttemptsLT applies the LT predicate on the "total_attempts" field.
func TotalAttemptsLT(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldTotalAttempts, v))
}

// TotalAttemptsLTE applies the LTE predicate on the "total_attempts" field.
func TotalAttemptsLTE(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldTotalAttempts, v))
}

// CorrectAttemptsEQ applies the EQ predicate on the "correct_attempts" field.
func CorrectAttemptsEQ(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldCorrectAttempts, v))
}

// CorrectAttemptsNEQ applies the NEQ predicate on the "correct_attempts" field.
func CorrectAttemptsNEQ(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldCorrectAttempts, v))
}

// CorrectAttemptsIn applies the In predicate on the "correct_attempts" field.
func CorrectAttemptsIn(vs ...int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldCorrectAttempts, vs...))
}

// CorrectAttemptsNotIn applies the NotIn predicate on the "correct_attempts" field.
func CorrectAttemptsNotIn(vs ...int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldCorrectAttempts, vs...))
}

// CorrectAttemptsGT applies the GT predicate on the "correct_attempts" field.
func CorrectAttemptsGT(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldCorrectAttempts, v))
}

// CorrectAttemptsGTE applies the GTE predicate on the "correct_attempts" field.
func CorrectAttemptsGTE(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldCorrectAttempts, v))
}

// CorrectAttemptsLT applies the LT predicate on the "correct_attempts" field.
func CorrectAttemptsLT(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldCorrectAttempts, v))
}

// CorrectAttemptsLTE applies the LTE predicate on the "correct_attempts" field.
func CorrectAttemptsLTE(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldCorrectAttempts, v))
}

// LastErrorTypeEQ applies the EQ predicate on the "last_error_type" field.
func LastErrorTypeEQ(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldLastErrorType, v))
}

// LastErrorTypeNEQ applies the NEQ predicate on the "last_error_type" field.
func LastErrorTypeNEQ(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldLastErrorType, v))
}

// LastErrorTypeIn applies the In predicate on the "last_error_type" field.
func LastErrorTypeIn(vs ...string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldLastErrorType, vs...))
}

// LastErrorTypeNotIn applies the NotIn predicate on the "last_error_type" field.
func LastErrorTypeNotIn(vs ...string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldLastErrorType, vs...))
}

// LastErrorTypeGT applies the GT predicate on the "last_error_type" field.
func LastErrorTypeGT(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldLastErrorType, v))
}

// LastErrorTypeGTE applies the GTE predicate on the "last_error_type" field.
func LastErrorTypeGTE(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldLastErrorType, v))
}

// LastErrorTypeLT applies the LT predicate on the "last_error_type" field.
func LastErrorTypeLT(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldLastErrorType, v))
}

// LastErrorTypeLTE applies the LTE predicate on the "last_error_type" field.
func LastErrorTypeLTE(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldLastErrorType, v))
}

// LastErrorTypeContains applies the Contains predicate on the "last_error_type" field.
func LastErrorTypeContains(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldContains(FieldLastErrorType, v))
}

// LastErrorTypeHasPrefix applies the HasPrefix predicate on the "last_error_type" field.
func LastErrorTypeHasPrefix(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldHasPrefix(FieldLastErrorType, v))
}

// LastErrorTypeHasSuffix applies the HasSuffix predicate on the "last_error_type" field.
func LastErrorTypeHasSuffix(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldHasSuffix(FieldLastErrorType, v))
}

// LastErrorTypeEqualFold applies the EqualFold predicate on the "last_error_type" field.
func LastErrorTypeEqualFold(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEqualFold(FieldLastErrorType, v))
}

// LastErrorTypeContainsFold applies the ContainsFold predicate on the "last_error_type" field.
func LastErrorTypeContainsFold(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldContainsFold(FieldLastErrorType, v))
}

// FormatStatsIsNil applies the IsNil predicate on the "format_stats" field.
func FormatStatsIsNil() predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIsNull(FieldFormatStats))
}

// FormatStatsNotNil applies the NotNil predicate on the "format_stats" field.
func FormatStatsNotNil() predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotNull(FieldFormatStats))
}

// LastPracticedAtEQ applies the EQ predicate on the "last_practiced_at" field.
func LastPracticedAtEQ(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldLastPracticedAt, v))
}

// LastPracticedAtNEQ applies the NEQ predicate on the "last_practiced_at" field.
func LastPracticedAtNEQ(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldLastPracticedAt, v))
}

// LastPracticedAtIn applies the In predicate on the "last_practiced_at" field.
func LastPracticedAtIn(vs ...time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldLastPracticedAt, vs...))
}

// LastPracticedAtNotIn applies the NotIn predicate on the "last_practiced_at" field.
func LastPracticedAtNotIn(vs ...time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldLastPracticedAt, vs...))
}

// LastPracticedAtGT applies the GT predicate on the "last_practiced_at" field.
func LastPracticedAtGT(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldLastPracticedAt, v))
}

// LastPracticedAtGTE applies the GTE predicate on the "last_practiced_at" field.
func LastPracticedAtGTE(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldLastPracticedAt, v))
}

// LastPracticedAtLT applies the LT predicate on the "last_practiced_at" field.
func LastPracticedAtLT(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldLastPracticedAt, v))
}

// LastPracticedAtLTE applies the LTE predicate on the "last_practiced_at" field.
func LastPracticedAtLTE(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldLastPracticedAt, v))
}

// LastPracticedAtIsNil applies the IsNil predicate on the "last_practiced_at" field.
func LastPracticedAtIsNil() predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIsNull(FieldLastPracticedAt))
}

// LastPracticedAtNotNil applies the NotNil predicate on the "last_practiced_at" field.
func LastPracticedAtNotNil() predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotNull(FieldLastPracticedAt))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MasteryRecord) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MasteryRecord) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MasteryRecord) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.NotPredicates(p))
}
