// Code generated by ent, DO NOT EDIT.

package worksheetrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the worksheetrecord type in the database.
	Label = "worksheet_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldWorksheetID holds the string denoting the worksheet_id field in the database.
	FieldWorksheetID = "worksheet_id"
	// FieldGrade holds the string denoting the grade field in the database.
	FieldGrade = "grade"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldUsedContexts holds the string denoting the used_contexts field in the database.
	FieldUsedContexts = "used_contexts"
	// FieldUsedErrorIds holds the string denoting the used_error_ids field in the database.
	FieldUsedErrorIds = "used_error_ids"
	// FieldUsedThinkingStyles holds the string denoting the used_thinking_styles field in the database.
	FieldUsedThinkingStyles = "used_thinking_styles"
	// FieldUsedNumberPairs holds the string denoting the used_number_pairs field in the database.
	FieldUsedNumberPairs = "used_number_pairs"
	// FieldUsedQuestionHashes holds the string denoting the used_question_hashes field in the database.
	FieldUsedQuestionHashes = "used_question_hashes"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the worksheetrecord in the database.
	Table = "worksheet_records"
)

// Columns holds all SQL columns for worksheetrecord fields.
var Columns = []string{
	FieldID,
	FieldWorksheetID,
	FieldGrade,
	FieldTopic,
	FieldUsedContexts,
	FieldUsedErrorIds,
	FieldUsedThinkingStyles,
	FieldUsedNumberPairs,
	FieldUsedQuestionHashes,
	FieldCreatedAt,
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
	// TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	TopicValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the WorksheetRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorksheetID orders the results by the worksheet_id field.
func ByWorksheetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorksheetID, opts...).ToFunc()
}

// ByGrade orders the results by the grade field.
func ByGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrade, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
