// Code generated by ent, DO NOT EDIT.

package masteryrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the masteryrecord type in the database.
	Label = "mastery_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldSkillTag holds the string denoting the skill_tag field in the database.
	FieldSkillTag = "skill_tag"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldStreak holds the string denoting the streak field in the database.
	FieldStreak = "streak"
	// FieldTotalAttempts holds the string denoting the total_attempts field in the database.
	FieldTotalAttempts = "total_attempts"
	// FieldCorrectAttempts holds the string denoting the correct_attempts field in the database.
	FieldCorrectAttempts = "correct_attempts"
	// FieldLastErrorType holds the string denoting the last_error_type field in the database.
	FieldLastErrorType = "last_error_type"
	// FieldFormatStats holds the string denoting the format_stats field in the database.
	FieldFormatStats = "format_stats"
	// FieldLastPracticedAt holds the string denoting the last_practiced_at field in the database.
	FieldLastPracticedAt = "last_practiced_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the masteryrecord in the database.
	Table = "mastery_records"
)

// Columns holds all SQL columns for masteryrecord fields.
var Columns = []string{
	FieldID,
	FieldStudentID,
	FieldSkillTag,
	FieldLevel,
	FieldStreak,
	FieldTotalAttempts,
	FieldCorrectAttempts,
	FieldLastErrorType,
	FieldFormatStats,
	FieldLastPracticedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	StudentIDValidator func(string) error
	// SkillTagValidator is a validator for the "skill_tag" field. It is called by the builders before save.
	SkillTagValidator func(string) error
	// DefaultLevel holds the default value on creation for the "level" field.
	DefaultLevel string
	// DefaultStreak holds the default value on creation for the "streak" field.
	DefaultStreak int
	// DefaultTotalAttempts holds the default value on creation for the "total_attempts" field.
	DefaultTotalAttempts int
	// DefaultCorrectAttempts holds the default value on creation for the "correct_attempts" field.
	DefaultCorrectAttempts int
	// DefaultLastErrorType holds the default value on creation for the "last_error_type" field.
	DefaultLastErrorType string
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the MasteryRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// BySkillTag orders the results by the skill_tag field.
func BySkillTag(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillTag, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByStreak orders the results by the streak field.
func ByStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreak, opts...).ToFunc()
}

// ByTotalAttempts orders the results by the total_attempts field.
func ByTotalAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAttempts, opts...).ToFunc()
}

// ByCorrectAttempts orders the results by the correct_attempts field.
func ByCorrectAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAttempts, opts...).ToFunc()
}

// ByLastErrorType orders the results by the last_error_type field.
func ByLastErrorType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastErrorType, opts...).ToFunc()
}

// ByLastPracticedAt orders the results by the last_practiced_at field.
func ByLastPracticedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastPracticedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
