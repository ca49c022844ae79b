// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nirajyt2022-source/edTech-sub001/ent/masteryrecord"
	"github.com/nirajyt2022-source/edTech-sub001/ent/predicate"
)

// MasteryRecordUpdate is the builder for updating MasteryRecord entities.
type MasteryRecordUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryRecordMutation
}

// Where appends a list predicates to the MasteryRecordUpdate builder.
func (_u *MasteryRecordUpdate) Where(ps ...predicate.MasteryRecord) *MasteryRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *MasteryRecordUpdate) SetStudentID(v string) *MasteryRecordUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableStudentID(v *string) *MasteryRecordUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetSkillTag sets the "skill_tag" field.
func (_u *MasteryRecordUpdate) SetSkillTag(v string) *MasteryRecordUpdate {
	_u.mutation.SetSkillTag(v)
	return _u
}

// SetNillableSkillTag sets the "skill_tag" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableSkillTag(v *string) *MasteryRecordUpdate {
	if v != nil {
		_u.SetSkillTag(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *MasteryRecordUpdate) SetLevel(v string) *MasteryRecordUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableLevel(v *string) *MasteryRecordUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetStreak sets the "streak" field.
func (_u *MasteryRecordUpdate) SetStreak(v int) *MasteryRecordUpdate {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableStreak(v *int) *MasteryRecordUpdate {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *MasteryRecordUpdate) AddStreak(v int) *MasteryRecordUpdate {
	_u.mutation.AddStreak(v)
	return _u
}

// SetTotalAttempts sets the "total_attempts" field.
func (_u *MasteryRecordUpdate) SetTotalAttempts(v int) *MasteryRecordUpdate {
	_u.mutation.ResetTotalAttempts()
	_u.mutation.SetTotalAttempts(v)
	return _u
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableTotalAttempts(v *int) *MasteryRecordUpdate {
	if v != nil {
		_u.SetTotalAttempts(*v)
	}
	return _u
}

// AddTotalAttempts adds value to the "total_attempts" field.
func (_u *MasteryRecordUpdate) AddTotalAttempts(v int) *MasteryRecordUpdate {
	_u.mutation.AddTotalAttempts(v)
	return _u
}

// SetCorrectAttempts sets the "correct_attempts" field.
func (_u *MasteryRecordUpdate) SetCorrectAttempts(v int) *MasteryRecordUpdate {
	_u.mutation.ResetCorrectAttempts()
	_u.mutation.SetCorrectAttempts(v)
	return _u
}

// SetNillableCorrectAttempts sets the "correct_attempts" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableCorrectAttempts(v *int) *MasteryRecordUpdate {
	if v != nil {
		_u.SetCorrectAttempts(*v)
	}
	return _u
}

// AddCorrectAttempts adds value to the "correct_attempts" field.
func (_u *MasteryRecordUpdate) AddCorrectAttempts(v int) *MasteryRecordUpdate {
	_u.mutation.AddCorrectAttempts(v)
	return _u
}

// SetLastErrorType sets the "last_error_type" field.
func (_u *MasteryRecordUpdate) SetLastErrorType(v string) *MasteryRecordUpdate {
	_u.mutation.SetLastErrorType(v)
	return _u
}

// SetNillableLastErrorType sets the "last_error_type" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableLastErrorType(v *string) *MasteryRecordUpdate {
	if v != nil {
		_u.SetLastErrorType(*v)
	}
	return _u
}

// SetFormatStats sets the "format_stats" field.
func (_u *MasteryRecordUpdate) SetFormatStats(v map[string]interface{}) *MasteryRecordUpdate {
	_u.mutation.SetFormatStats(v)
	return _u
}

// ClearFormatStats clears the value of the "format_stats" field.
func (_u *MasteryRecordUpdate) ClearFormatStats() *MasteryRecordUpdate {
	_u.mutation.ClearFormatStats()
	return _u
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_u *MasteryRecordUpdate) SetLastPracticedAt(v time.Time) *MasteryRecordUpdate {
	_u.mutation.SetLastPracticedAt(v)
	return _u
}

// SetNillableLastPracticedAt sets the "last_practiced_at" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableLastPracticedAt(v *time.Time) *MasteryRecordUpdate {
	if v != nil {
		_u.SetLastPracticedAt(*v)
	}
	return _u
}

// ClearLastPracticedAt clears the value of the "last_practiced_at" field.
func (_u *MasteryRecordUpdate) ClearLastPracticedAt() *MasteryRecordUpdate {
	_u.mutation.ClearLastPracticedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MasteryRecordUpdate) SetUpdatedAt(v time.Time) *MasteryRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (_u *MasteryRecordUpdate) Mutation() *MasteryRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MasteryRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MasteryRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MasteryRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := masteryrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryRecordUpdate) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := masteryrecord.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillTag(); ok {
		if err := masteryrecord.SkillTagValidator(v); err != nil {
			return &ValidationError{Name: "skill_tag", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.skill_tag": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryrecord.Table, masteryrecord.Columns, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(masteryrecord.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillTag(); ok {
		_spec.SetField(masteryrecord.FieldSkillTag, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(masteryrecord.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(masteryrecord.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(masteryrecord.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalAttempts(); ok {
		_spec.SetField(masteryrecord.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAttempts(); ok {
		_spec.AddField(masteryrecord.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAttempts(); ok {
		_spec.SetField(masteryrecord.FieldCorrectAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAttempts(); ok {
		_spec.AddField(masteryrecord.FieldCorrectAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastErrorType(); ok {
		_spec.SetField(masteryrecord.FieldLastErrorType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FormatStats(); ok {
		_spec.SetField(masteryrecord.FieldFormatStats, field.TypeJSON, value)
	}
	if _u.mutation.FormatStatsCleared() {
		_spec.ClearField(masteryrecord.FieldFormatStats, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastPracticedAt(); ok {
		_spec.SetField(masteryrecord.FieldLastPracticedAt, field.TypeTime, value)
	}
	if _u.mutation.LastPracticedAtCleared() {
		_spec.ClearField(masteryrecord.FieldLastPracticedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(masteryrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MasteryRecordUpdateOne is the builder for updating a single MasteryRecord entity.
type MasteryRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryRecordMutation
}

// SetStudentID sets the "student_id" field.
func (_u *MasteryRecordUpdateOne) SetStudentID(v string) *MasteryRecordUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableStudentID(v *string) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetSkillTag sets the "skill_tag" field.
func (_u *MasteryRecordUpdateOne) SetSkillTag(v string) *MasteryRecordUpdateOne {
	_u.mutation.SetSkillTag(v)
	return _u
}

// SetNillableSkillTag sets the "skill_tag" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableSkillTag(v *string) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetSkillTag(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *MasteryRecordUpdateOne) SetLevel(v string) *MasteryRecordUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableLevel(v *string) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetStreak sets the "streak" field.
func (_u *MasteryRecordUpdateOne) SetStreak(v int) *MasteryRecordUpdateOne {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableStreak(v *int) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *MasteryRecordUpdateOne) AddStreak(v int) *MasteryRecordUpdateOne {
	_u.mutation.AddStreak(v)
	return _u
}

// SetTotalAttempts sets the "total_attempts" field.
func (_u *MasteryRecordUpdateOne) SetTotalAttempts(v int) *MasteryRecordUpdateOne {
	_u.mutation.ResetTotalAttempts()
	_u.mutation.SetTotalAttempts(v)
	return _u
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableTotalAttempts(v *int) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetTotalAttempts(*v)
	}
	return _u
}

// AddTotalAttempts adds value to the "total_attempts" field.
func (_u *MasteryRecordUpdateOne) AddTotalAttempts(v int) *MasteryRecordUpdateOne {
	_u.mutation.AddTotalAttempts(v)
	return _u
}

// SetCorrectAttempts sets the "correct_attempts" field.
func (_u *MasteryRecordUpdateOne) SetCorrectAttempts(v int) *MasteryRecordUpdateOne {
	_u.mutation.ResetCorrectAttempts()
	_u.mutation.SetCorrectAttempts(v)
	return _u
}

// SetNillableCorrectAttempts sets the "correct_attempts" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableCorrectAttempts(v *int) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetCorrectAttempts(*v)
	}
	return _u
}

// AddCorrectAttempts adds value to the "correct_attempts" field.
func (_u *MasteryRecordUpdateOne) AddCorrectAttempts(v int) *MasteryRecordUpdateOne {
	_u.mutation.AddCorrectAttempts(v)
	return _u
}

// SetLastErrorType sets the "last_error_type" field.
func (_u *MasteryRecordUpdateOne) SetLastErrorType(v string) *MasteryRecordUpdateOne {
	_u.mutation.SetLastErrorType(v)
	return _u
}

// SetNillableLastErrorType sets the "last_error_type" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableLastErrorType(v *string) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetLastErrorType(*v)
	}
	return _u
}

// SetFormatStats sets the "format_stats" field.
func (_u *MasteryRecordUpdateOne) SetFormatStats(v map[string]interface{}) *MasteryRecordUpdateOne {
	_u.mutation.SetFormatStats(v)
	return _u
}

// ClearFormatStats clears the value of the "format_stats" field.
func (_u *MasteryRecordUpdateOne) ClearFormatStats() *MasteryRecordUpdateOne {
	_u.mutation.ClearFormatStats()
	return _u
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_u *MasteryRecordUpdateOne) SetLastPracticedAt(v time.Time) *MasteryRecordUpdateOne {
	_u.mutation.SetLastPracticedAt(v)
	return _u
}

// SetNillableLastPracticedAt sets the "last_practiced_at" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableLastPracticedAt(v *time.Time) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetLastPracticedAt(*v)
	}
	return _u
}

// ClearLastPracticedAt clears the value of the "last_practiced_at" field.
func (_u *MasteryRecordUpdateOne) ClearLastPracticedAt() *MasteryRecordUpdateOne {
	_u.mutation.ClearLastPracticedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MasteryRecordUpdateOne) SetUpdatedAt(v time.Time) *MasteryRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (_u *MasteryRecordUpdateOne) Mutation() *MasteryRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the MasteryRecordUpdate builder.
func (_u *MasteryRecordUpdateOne) Where(ps ...predicate.MasteryRecord) *MasteryRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MasteryRecordUpdateOne) Select(field string, fields ...string) *MasteryRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MasteryRecord entity.
func (_u *MasteryRecordUpdateOne) Save(ctx context.Context) (*MasteryRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryRecordUpdateOne) SaveX(ctx context.Context) *MasteryRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MasteryRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MasteryRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := masteryrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryRecordUpdateOne) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := masteryrecord.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillTag(); ok {
		if err := masteryrecord.SkillTagValidator(v); err != nil {
			return &ValidationError{Name: "skill_tag", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.skill_tag": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryRecordUpdateOne) sqlSave(ctx context.Context) (_node *MasteryRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryrecord.Table, masteryrecord.Columns, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MasteryRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, masteryrecord.FieldID)
		for _, f := range fields {
			if !masteryrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != masteryrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(masteryrecord.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillTag(); ok {
		_spec.SetField(masteryrecord.FieldSkillTag, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(masteryrecord.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(masteryrecord.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(masteryrecord.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalAttempts(); ok {
		_spec.SetField(masteryrecord.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAttempts(); ok {
		_spec.AddField(masteryrecord.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAttempts(); ok {
		_spec.SetField(masteryrecord.FieldCorrectAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAttempts(); ok {
		_spec.AddField(masteryrecord.FieldCorrectAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastErrorType(); ok {
		_spec.SetField(masteryrecord.FieldLastErrorType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FormatStats(); ok {
		_spec.SetField(masteryrecord.FieldFormatStats, field.TypeJSON, value)
	}
	if _u.mutation.FormatStatsCleared() {
		_spec.ClearField(masteryrecord.FieldFormatStats, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastPracticedAt(); ok {
		_spec.SetField(masteryrecord.FieldLastPracticedAt, field.TypeTime, value)
	}
	if _u.mutation.LastPracticedAtCleared() {
		_spec.ClearField(masteryrecord.FieldLastPracticedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(masteryrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &MasteryRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
