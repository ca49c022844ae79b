// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/nirajyt2022-source/edTech-sub001/ent/masteryrecord"
)

// MasteryRecord is the model entity for the MasteryRecord schema.
type MasteryRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID string `json:"student_id,omitempty"`
	// SkillTag holds the value of the "skill_tag" field.
	SkillTag string `json:"skill_tag,omitempty"`
	// unknown, learning, improving or mastered
	Level string `json:"level,omitempty"`
	// Consecutive qualifying attempts at the current level
	Streak int `json:"streak,omitempty"`
	// TotalAttempts holds the value of the "total_attempts" field.
	TotalAttempts int `json:"total_attempts,omitempty"`
	// CorrectAttempts holds the value of the "correct_attempts" field.
	CorrectAttempts int `json:"correct_attempts,omitempty"`
	// Most recent error classifier label, if any
	LastErrorType string `json:"last_error_type,omitempty"`
	// Per-format correct/total counters
	FormatStats map[string]interface{} `json:"format_stats,omitempty"`
	// Drives time-based decay; unset until first attempt
	LastPracticedAt *time.Time `json:"last_practiced_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MasteryRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case masteryrecord.FieldFormatStats:
			values[i] = new([]byte)
		case masteryrecord.FieldID, masteryrecord.FieldStreak, masteryrecord.FieldTotalAttempts, masteryrecord.FieldCorrectAttempts:
			values[i] = new(sql.NullInt64)
		case masteryrecord.FieldStudentID, masteryrecord.FieldSkillTag, masteryrecord.FieldLevel, masteryrecord.FieldLastErrorType:
			values[i] = new(sql.NullString)
		case masteryrecord.FieldLastPracticedAt, masteryrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MasteryRecord fields.
func (_m *MasteryRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case masteryrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case masteryrecord.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case masteryrecord.FieldSkillTag:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_tag", values[i])
			} else if value.Valid {
				_m.SkillTag = value.String
			}
		case masteryrecord.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = value.String
			}
		case masteryrecord.FieldStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field streak", values[i])
			} else if value.Valid {
				_m.Streak = int(value.Int64)
			}
		case masteryrecord.FieldTotalAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_attempts", values[i])
			} else if value.Valid {
				_m.TotalAttempts = int(value.Int64)
			}
		case masteryrecord.FieldCorrectAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_attempts", values[i])
			} else if value.Valid {
				_m.CorrectAttempts = int(value.Int64)
			}
		case masteryrecord.FieldLastErrorType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error_type", values[i])
			} else if value.Valid {
				_m.LastErrorType = value.String
			}
		case masteryrecord.FieldFormatStats:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field format_stats", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FormatStats); err != nil {
					return fmt.Errorf("unmarshal field format_stats: %w", err)
				}
			}
		case masteryrecord.FieldLastPracticedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_practiced_at", values[i])
			} else if value.Valid {
				_m.LastPracticedAt = new(time.Time)
				*_m.LastPracticedAt = value.Time
			}
		case masteryrecord.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MasteryRecord.
// This includes values selected through modifiers, order, etc.
func (_m *MasteryRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MasteryRecord.
// Note that you need to call MasteryRecord.Unwrap() before calling this method if this MasteryRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MasteryRecord) Update() *MasteryRecordUpdateOne {
	return NewMasteryRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MasteryRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MasteryRecord) Unwrap() *MasteryRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MasteryRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MasteryRecord) String() string {
	var builder strings.Builder
	builder.WriteString("MasteryRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("student_id=")
	builder.WriteString(_m.StudentID)
	builder.WriteString(", ")
	builder.WriteString("skill_tag=")
	builder.WriteString(_m.SkillTag)
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(_m.Level)
	builder.WriteString(", ")
	builder.WriteString("streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.Streak))
	builder.WriteString(", ")
	builder.WriteString("total_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalAttempts))
	builder.WriteString(", ")
	builder.WriteString("correct_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectAttempts))
	builder.WriteString(", ")
	builder.WriteString("last_error_type=")
	builder.WriteString(_m.LastErrorType)
	builder.WriteString(", ")
	builder.WriteString("format_stats=")
	builder.WriteString(fmt.Sprintf("%v", _m.FormatStats))
	builder.WriteString(", ")
	if v := _m.LastPracticedAt; v != nil {
		builder.WriteString("last_practiced_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MasteryRecords is a parsable slice of MasteryRecord.
type MasteryRecords []*MasteryRecord
