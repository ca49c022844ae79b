// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/nirajyt2022-source/edTech-sub001/ent/predicate"
	"github.com/nirajyt2022-source/edTech-sub001/ent/worksheetrecord"
)

// WorksheetRecordUpdate is the builder for updating WorksheetRecord entities.
type WorksheetRecordUpdate struct {
	config
	hooks    []Hook
	mutation *WorksheetRecordMutation
}

// Where appends a list predicates to the WorksheetRecordUpdate builder.
func (_u *WorksheetRecordUpdate) Where(ps ...predicate.WorksheetRecord) *WorksheetRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorksheetID sets the "worksheet_id" field.
func (_u *WorksheetRecordUpdate) SetWorksheetID(v string) *WorksheetRecordUpdate {
	_u.mutation.SetWorksheetID(v)
	return _u
}

// SetNillableWorksheetID sets the "worksheet_id" field if the given value is not nil.
func (_u *WorksheetRecordUpdate) SetNillableWorksheetID(v *string) *WorksheetRecordUpdate {
	if v != nil {
		_u.SetWorksheetID(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *WorksheetRecordUpdate) SetGrade(v int) *WorksheetRecordUpdate {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *WorksheetRecordUpdate) SetNillableGrade(v *int) *WorksheetRecordUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *WorksheetRecordUpdate) AddGrade(v int) *WorksheetRecordUpdate {
	_u.mutation.AddGrade(v)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *WorksheetRecordUpdate) SetTopic(v string) *WorksheetRecordUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *WorksheetRecordUpdate) SetNillableTopic(v *string) *WorksheetRecordUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetUsedContexts sets the "used_contexts" field.
func (_u *WorksheetRecordUpdate) SetUsedContexts(v []string) *WorksheetRecordUpdate {
	_u.mutation.SetUsedContexts(v)
	return _u
}

// AppendUsedContexts appends value to the "used_contexts" field.
func (_u *WorksheetRecordUpdate) AppendUsedContexts(v []string) *WorksheetRecordUpdate {
	_u.mutation.AppendUsedContexts(v)
	return _u
}

// ClearUsedContexts clears the value of the "used_contexts" field.
func (_u *WorksheetRecordUpdate) ClearUsedContexts() *WorksheetRecordUpdate {
	_u.mutation.ClearUsedContexts()
	return _u
}

// SetUsedErrorIds sets the "used_error_ids" field.
func (_u *WorksheetRecordUpdate) SetUsedErrorIds(v []string) *WorksheetRecordUpdate {
	_u.mutation.SetUsedErrorIds(v)
	return _u
}

// AppendUsedErrorIds appends value to the "used_error_ids" field.
func (_u *WorksheetRecordUpdate) AppendUsedErrorIds(v []string) *WorksheetRecordUpdate {
	_u.mutation.AppendUsedErrorIds(v)
	return _u
}

// ClearUsedErrorIds clears the value of the "used_error_ids" field.
func (_u *WorksheetRecordUpdate) ClearUsedErrorIds() *WorksheetRecordUpdate {
	_u.mutation.ClearUsedErrorIds()
	return _u
}

// SetUsedThinkingStyles sets the "used_thinking_styles" field.
func (_u *WorksheetRecordUpdate) SetUsedThinkingStyles(v []string) *WorksheetRecordUpdate {
	_u.mutation.SetUsedThinkingStyles(v)
	return _u
}

// AppendUsedThinkingStyles appends value to the "used_thinking_styles" field.
func (_u *WorksheetRecordUpdate) AppendUsedThinkingStyles(v []string) *WorksheetRecordUpdate {
	_u.mutation.AppendUsedThinkingStyles(v)
	return _u
}

// ClearUsedThinkingStyles clears the value of the "used_thinking_styles" field.
func (_u *WorksheetRecordUpdate) ClearUsedThinkingStyles() *WorksheetRecordUpdate {
	_u.mutation.ClearUsedThinkingStyles()
	return _u
}

// SetUsedNumberPairs sets the "used_number_pairs" field.
func (_u *WorksheetRecordUpdate) SetUsedNumberPairs(v []string) *WorksheetRecordUpdate {
	_u.mutation.SetUsedNumberPairs(v)
	return _u
}

// AppendUsedNumberPairs appends value to the "used_number_pairs" field.
func (_u *WorksheetRecordUpdate) AppendUsedNumberPairs(v []string) *WorksheetRecordUpdate {
	_u.mutation.AppendUsedNumberPairs(v)
	return _u
}

// ClearUsedNumberPairs clears the value of the "used_number_pairs" field.
func (_u *WorksheetRecordUpdate) ClearUsedNumberPairs() *WorksheetRecordUpdate {
	_u.mutation.ClearUsedNumberPairs()
	return _u
}

// SetUsedQuestionHashes sets the "used_question_hashes" field.
func (_u *WorksheetRecordUpdate) SetUsedQuestionHashes(v []string) *WorksheetRecordUpdate {
	_u.mutation.SetUsedQuestionHashes(v)
	return _u
}

// AppendUsedQuestionHashes appends value to the "used_question_hashes" field.
func (_u *WorksheetRecordUpdate) AppendUsedQuestionHashes(v []string) *WorksheetRecordUpdate {
	_u.mutation.AppendUsedQuestionHashes(v)
	return _u
}

// ClearUsedQuestionHashes clears the value of the "used_question_hashes" field.
func (_u *WorksheetRecordUpdate) ClearUsedQuestionHashes() *WorksheetRecordUpdate {
	_u.mutation.ClearUsedQuestionHashes()
	return _u
}

// Mutation returns the WorksheetRecordMutation object of the builder.
func (_u *WorksheetRecordUpdate) Mutation() *WorksheetRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorksheetRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorksheetRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorksheetRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorksheetRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorksheetRecordUpdate) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := worksheetrecord.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "WorksheetRecord.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *WorksheetRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(worksheetrecord.Table, worksheetrecord.Columns, sqlgraph.NewFieldSpec(worksheetrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorksheetID(); ok {
		_spec.SetField(worksheetrecord.FieldWorksheetID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(worksheetrecord.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(worksheetrecord.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(worksheetrecord.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.UsedContexts(); ok {
		_spec.SetField(worksheetrecord.FieldUsedContexts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUsedContexts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, worksheetrecord.FieldUsedContexts, value)
		})
	}
	if _u.mutation.UsedContextsCleared() {
		_spec.ClearField(worksheetrecord.FieldUsedContexts, field.TypeJSON)
	}
	if value, ok := _u.mutation.UsedErrorIds(); ok {
		_spec.SetField(worksheetrecord.FieldUsedErrorIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUsedErrorIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, worksheetrecord.FieldUsedErrorIds, value)
		})
	}
	if _u.mutation.UsedErrorIdsCleared() {
		_spec.ClearField(worksheetrecord.FieldUsedErrorIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.UsedThinkingStyles(); ok {
		_spec.SetField(worksheetrecord.FieldUsedThinkingStyles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUsedThinkingStyles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, worksheetrecord.FieldUsedThinkingStyles, value)
		})
	}
	if _u.mutation.UsedThinkingStylesCleared() {
		_spec.ClearField(worksheetrecord.FieldUsedThinkingStyles, field.TypeJSON)
	}
	if value, ok := _u.mutation.UsedNumberPairs(); ok {
		_spec.SetField(worksheetrecord.FieldUsedNumberPairs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUsedNumberPairs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, worksheetrecord.FieldUsedNumberPairs, value)
		})
	}
	if _u.mutation.UsedNumberPairsCleared() {
		_spec.ClearField(worksheetrecord.FieldUsedNumberPairs, field.TypeJSON)
	}
	if value, ok := _u.mutation.UsedQuestionHashes(); ok {
		_spec.SetField(worksheetrecord.FieldUsedQuestionHashes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUsedQuestionHashes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, worksheetrecord.FieldUsedQuestionHashes, value)
		})
	}
	if _u.mutation.UsedQuestionHashesCleared() {
		_spec.ClearField(worksheetrecord.FieldUsedQuestionHashes, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{worksheetrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorksheetRecordUpdateOne is the builder for updating a single WorksheetRecord entity.
type WorksheetRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorksheetRecordMutation
}

// SetWorksheetID sets the "worksheet_id" field.
func (_u *WorksheetRecordUpdateOne) SetWorksheetID(v string) *WorksheetRecordUpdateOne {
	_u.mutation.SetWorksheetID(v)
	return _u
}

// SetNillableWorksheetID sets the "worksheet_id" field if the given value is not nil.
func (_u *WorksheetRecordUpdateOne) SetNillableWorksheetID(v *string) *WorksheetRecordUpdateOne {
	if v != nil {
		_u.SetWorksheetID(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *WorksheetRecordUpdateOne) SetGrade(v int) *WorksheetRecordUpdateOne {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *WorksheetRecordUpdateOne) SetNillableGrade(v *int) *WorksheetRecordUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *WorksheetRecordUpdateOne) AddGrade(v int) *WorksheetRecordUpdateOne {
	_u.mutation.AddGrade(v)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *WorksheetRecordUpdateOne) SetTopic(v string) *WorksheetRecordUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *WorksheetRecordUpdateOne) SetNillableTopic(v *string) *WorksheetRecordUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetUsedContexts sets the "used_contexts" field.
func (_u *WorksheetRecordUpdateOne) SetUsedContexts(v []string) *WorksheetRecordUpdateOne {
	_u.mutation.SetUsedContexts(v)
	return _u
}

// AppendUsedContexts appends value to the "used_contexts" field.
func (_u *WorksheetRecordUpdateOne) AppendUsedContexts(v []string) *WorksheetRecordUpdateOne {
	_u.mutation.AppendUsedContexts(v)
	return _u
}

// ClearUsedContexts clears the value of the "used_contexts" field.
func (_u *WorksheetRecordUpdateOne) ClearUsedContexts() *WorksheetRecordUpdateOne {
	_u.mutation.ClearUsedContexts()
	return _u
}

// SetUsedErrorIds sets the "used_error_ids" field.
func (_u *WorksheetRecordUpdateOne) SetUsedErrorIds(v []string) *WorksheetRecordUpdateOne {
	_u.mutation.SetUsedErrorIds(v)
	return _u
}

// AppendUsedErrorIds appends value to the "used_error_ids" field.
func (_u *WorksheetRecordUpdateOne) AppendUsedErrorIds(v []string) *WorksheetRecordUpdateOne {
	_u.mutation.AppendUsedErrorIds(v)
	return _u
}

// ClearUsedErrorIds clears the value of the "used_error_ids" field.
func (_u *WorksheetRecordUpdateOne) ClearUsedErrorIds() *WorksheetRecordUpdateOne {
	_u.mutation.ClearUsedErrorIds()
	return _u
}

// SetUsedThinkingStyles sets the "used_thinking_styles" field.
func (_u *WorksheetRecordUpdateOne) SetUsedThinkingStyles(v []string) *WorksheetRecordUpdateOne {
	_u.mutation.SetUsedThinkingStyles(v)
	return _u
}

// AppendUsedThinkingStyles appends value to the "used_thinking_styles" field.
func (_u *WorksheetRecordUpdateOne) AppendUsedThinkingStyles(v []string) *WorksheetRecordUpdateOne {
	_u.mutation.AppendUsedThinkingStyles(v)
	return _u
}

// ClearUsedThinkingStyles clears the value of the "used_thinking_styles" field.
func (_u *WorksheetRecordUpdateOne) ClearUsedThinkingStyles() *WorksheetRecordUpdateOne {
	_u.mutation.ClearUsedThinkingStyles()
	return _u
}

// SetUsedNumberPairs sets the "used_number_pairs" field.
func (_u *WorksheetRecordUpdateOne) SetUsedNumberPairs(v []string) *WorksheetRecordUpdateOne {
	_u.mutation.SetUsedNumberPairs(v)
	return _u
}

// AppendUsedNumberPairs appends value to the "used_number_pairs" field.
func (_u *WorksheetRecordUpdateOne) AppendUsedNumberPairs(v []string) *WorksheetRecordUpdateOne {
	_u.mutation.AppendUsedNumberPairs(v)
	return _u
}

// ClearUsedNumberPairs clears the value of the "used_number_pairs" field.
func (_u *WorksheetRecordUpdateOne) ClearUsedNumberPairs() *WorksheetRecordUpdateOne {
	_u.mutation.ClearUsedNumberPairs()
	return _u
}

// SetUsedQuestionHashes sets the "used_question_hashes" field.
func (_u *WorksheetRecordUpdateOne) SetUsedQuestionHashes(v []string) *WorksheetRecordUpdateOne {
	_u.mutation.SetUsedQuestionHashes(v)
	return _u
}

// AppendUsedQuestionHashes appends value to the "used_question_hashes" field.
func (_u *WorksheetRecordUpdateOne) AppendUsedQuestionHashes(v []string) *WorksheetRecordUpdateOne {
	_u.mutation.AppendUsedQuestionHashes(v)
	return _u
}

// ClearUsedQuestionHashes clears the value of the "used_question_hashes" field.
func (_u *WorksheetRecordUpdateOne) ClearUsedQuestionHashes() *WorksheetRecordUpdateOne {
	_u.mutation.ClearUsedQuestionHashes()
	return _u
}

// Mutation returns the WorksheetRecordMutation object of the builder.
func (_u *WorksheetRecordUpdateOne) Mutation() *WorksheetRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorksheetRecordUpdate builder.
func (_u *WorksheetRecordUpdateOne) Where(ps ...predicate.WorksheetRecord) *WorksheetRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorksheetRecordUpdateOne) Select(field string, fields ...string) *WorksheetRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorksheetRecord entity.
func (_u *WorksheetRecordUpdateOne) Save(ctx context.Context) (*WorksheetRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorksheetRecordUpdateOne) SaveX(ctx context.Context) *WorksheetRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorksheetRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorksheetRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorksheetRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := worksheetrecord.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "WorksheetRecord.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *WorksheetRecordUpdateOne) sqlSave(ctx context.Context) (_node *WorksheetRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(worksheetrecord.Table, worksheetrecord.Columns, sqlgraph.NewFieldSpec(worksheetrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorksheetRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, worksheetrecord.FieldID)
		for _, f := range fields {
			if !worksheetrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != worksheetrecord.FieldID {
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
	if value, ok := _u.mutation.WorksheetID(); ok {
		_spec.SetField(worksheetrecord.FieldWorksheetID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(worksheetrecord.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(worksheetrecord.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(worksheetrecord.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.UsedContexts(); ok {
		_spec.SetField(worksheetrecord.FieldUsedContexts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUsedContexts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, worksheetrecord.FieldUsedContexts, value)
		})
	}
	if _u.mutation.UsedContextsCleared() {
		_spec.ClearField(worksheetrecord.FieldUsedContexts, field.TypeJSON)
	}
	if value, ok := _u.mutation.UsedErrorIds(); ok {
		_spec.SetField(worksheetrecord.FieldUsedErrorIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUsedErrorIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, worksheetrecord.FieldUsedErrorIds, value)
		})
	}
	if _u.mutation.UsedErrorIdsCleared() {
		_spec.ClearField(worksheetrecord.FieldUsedErrorIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.UsedThinkingStyles(); ok {
		_spec.SetField(worksheetrecord.FieldUsedThinkingStyles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUsedThinkingStyles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, worksheetrecord.FieldUsedThinkingStyles, value)
		})
	}
	if _u.mutation.UsedThinkingStylesCleared() {
		_spec.ClearField(worksheetrecord.FieldUsedThinkingStyles, field.TypeJSON)
	}
	if value, ok := _u.mutation.UsedNumberPairs(); ok {
		_spec.SetField(worksheetrecord.FieldUsedNumberPairs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUsedNumberPairs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, worksheetrecord.FieldUsedNumberPairs, value)
		})
	}
	if _u.mutation.UsedNumberPairsCleared() {
		_spec.ClearField(worksheetrecord.FieldUsedNumberPairs, field.TypeJSON)
	}
	if value, ok := _u.mutation.UsedQuestionHashes(); ok {
		_spec.SetField(worksheetrecord.FieldUsedQuestionHashes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUsedQuestionHashes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, worksheetrecord.FieldUsedQuestionHashes, value)
		})
	}
	if _u.mutation.UsedQuestionHashesCleared() {
		_spec.ClearField(worksheetrecord.FieldUsedQuestionHashes, field.TypeJSON)
	}
	_node = &WorksheetRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{worksheetrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
