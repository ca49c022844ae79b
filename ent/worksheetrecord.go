// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/nirajyt2022-source/edTech-sub001/ent/worksheetrecord"
)

// WorksheetRecord is the model entity for the WorksheetRecord schema.
type WorksheetRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID of the generated worksheet
	WorksheetID string `json:"worksheet_id,omitempty"`
	// Grade holds the value of the "grade" field.
	Grade int `json:"grade,omitempty"`
	// Canonical topic name
	Topic string `json:"topic,omitempty"`
	// Story settings that appeared in questions
	UsedContexts []string `json:"used_contexts,omitempty"`
	// Planted-mistake identifiers from error-detection slots
	UsedErrorIds []string `json:"used_error_ids,omitempty"`
	// Multi-step reasoning patterns from thinking slots
	UsedThinkingStyles []string `json:"used_thinking_styles,omitempty"`
	// Operand pairs from numeric questions
	UsedNumberPairs []string `json:"used_number_pairs,omitempty"`
	// Exact and structural question digests
	UsedQuestionHashes []string `json:"used_question_hashes,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WorksheetRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case worksheetrecord.FieldUsedContexts, worksheetrecord.FieldUsedErrorIds, worksheetrecord.FieldUsedThinkingStyles, worksheetrecord.FieldUsedNumberPairs, worksheetrecord.FieldUsedQuestionHashes:
			values[i] = new([]byte)
		case worksheetrecord.FieldID, worksheetrecord.FieldGrade:
			values[i] = new(sql.NullInt64)
		case worksheetrecord.FieldWorksheetID, worksheetrecord.FieldTopic:
			values[i] = new(sql.NullString)
		case worksheetrecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WorksheetRecord fields.
func (_m *WorksheetRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case worksheetrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case worksheetrecord.FieldWorksheetID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field worksheet_id", values[i])
			} else if value.Valid {
				_m.WorksheetID = value.String
			}
		case worksheetrecord.FieldGrade:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field grade", values[i])
			} else if value.Valid {
				_m.Grade = int(value.Int64)
			}
		case worksheetrecord.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case worksheetrecord.FieldUsedContexts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field used_contexts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.UsedContexts); err != nil {
					return fmt.Errorf("unmarshal field used_contexts: %w", err)
				}
			}
		case worksheetrecord.FieldUsedErrorIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field used_error_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.UsedErrorIds); err != nil {
					return fmt.Errorf("unmarshal field used_error_ids: %w", err)
				}
			}
		case worksheetrecord.FieldUsedThinkingStyles:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field used_thinking_styles", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.UsedThinkingStyles); err != nil {
					return fmt.Errorf("unmarshal field used_thinking_styles: %w", err)
				}
			}
		case worksheetrecord.FieldUsedNumberPairs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field used_number_pairs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.UsedNumberPairs); err != nil {
					return fmt.Errorf("unmarshal field used_number_pairs: %w", err)
				}
			}
		case worksheetrecord.FieldUsedQuestionHashes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field used_question_hashes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.UsedQuestionHashes); err != nil {
					return fmt.Errorf("unmarshal field used_question_hashes: %w", err)
				}
			}
		case worksheetrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WorksheetRecord.
// This includes values selected through modifiers, order, etc.
func (_m *WorksheetRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this WorksheetRecord.
// Note that you need to call WorksheetRecord.Unwrap() before calling this method if this WorksheetRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WorksheetRecord) Update() *WorksheetRecordUpdateOne {
	return NewWorksheetRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WorksheetRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WorksheetRecord) Unwrap() *WorksheetRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WorksheetRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WorksheetRecord) String() string {
	var builder strings.Builder
	builder.WriteString("WorksheetRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("worksheet_id=")
	builder.WriteString(_m.WorksheetID)
	builder.WriteString(", ")
	builder.WriteString("grade=")
	builder.WriteString(fmt.Sprintf("%v", _m.Grade))
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("used_contexts=")
	builder.WriteString(fmt.Sprintf("%v", _m.UsedContexts))
	builder.WriteString(", ")
	builder.WriteString("used_error_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.UsedErrorIds))
	builder.WriteString(", ")
	builder.WriteString("used_thinking_styles=")
	builder.WriteString(fmt.Sprintf("%v", _m.UsedThinkingStyles))
	builder.WriteString(", ")
	builder.WriteString("used_number_pairs=")
	builder.WriteString(fmt.Sprintf("%v", _m.UsedNumberPairs))
	builder.WriteString(", ")
	builder.WriteString("used_question_hashes=")
	builder.WriteString(fmt.Sprintf("%v", _m.UsedQuestionHashes))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WorksheetRecords is a parsable slice of WorksheetRecord.
type WorksheetRecords []*WorksheetRecord
