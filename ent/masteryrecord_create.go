// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nirajyt2022-source/edTech-sub001/ent/masteryrecord"
)

// MasteryRecordCreate is the builder for creating a MasteryRecord entity.
type MasteryRecordCreate struct {
	config
	mutation *MasteryRecordMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *MasteryRecordCreate) SetStudentID(v string) *MasteryRecordCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetSkillTag sets the "skill_tag" field.
func (_c *MasteryRecordCreate) SetSkillTag(v string) *MasteryRecordCreate {
	_c.mutation.SetSkillTag(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *MasteryRecordCreate) SetLevel(v string) *MasteryRecordCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableLevel(v *string) *MasteryRecordCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetStreak sets the "streak" field.
func (_c *MasteryRecordCreate) SetStreak(v int) *MasteryRecordCreate {
	_c.mutation.SetStreak(v)
	return _c
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableStreak(v *int) *MasteryRecordCreate {
	if v != nil {
		_c.SetStreak(*v)
	}
	return _c
}

// SetTotalAttempts sets the "total_attempts" field.
func (_c *MasteryRecordCreate) SetTotalAttempts(v int) *MasteryRecordCreate {
	_c.mutation.SetTotalAttempts(v)
	return _c
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableTotalAttempts(v *int) *MasteryRecordCreate {
	if v != nil {
		_c.SetTotalAttempts(*v)
	}
	return _c
}

// SetCorrectAttempts sets the "correct_attempts" field.
func (_c *MasteryRecordCreate) SetCorrectAttempts(v int) *MasteryRecordCreate {
	_c.mutation.SetCorrectAttempts(v)
	return _c
}

// SetNillableCorrectAttempts sets the "correct_attempts" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableCorrectAttempts(v *int) *MasteryRecordCreate {
	if v != nil {
		_c.SetCorrectAttempts(*v)
	}
	return _c
}

// SetLastErrorType sets the "last_error_type" field.
func (_c *MasteryRecordCreate) SetLastErrorType(v string) *MasteryRecordCreate {
	_c.mutation.SetLastErrorType(v)
	return _c
}

// SetNillableLastErrorType sets the "last_error_type" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableLastErrorType(v *string) *MasteryRecordCreate {
	if v != nil {
		_c.SetLastErrorType(*v)
	}
	return _c
}

// SetFormatStats sets the "format_stats" field.
func (_c *MasteryRecordCreate) SetFormatStats(v map[string]interface{}) *MasteryRecordCreate {
	_c.mutation.SetFormatStats(v)
	return _c
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_c *MasteryRecordCreate) SetLastPracticedAt(v time.Time) *MasteryRecordCreate {
	_c.mutation.SetLastPracticedAt(v)
	return _c
}

// SetNillableLastPracticedAt sets the "last_practiced_at" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableLastPracticedAt(v *time.Time) *MasteryRecordCreate {
	if v != nil {
		_c.SetLastPracticedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MasteryRecordCreate) SetUpdatedAt(v time.Time) *MasteryRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableUpdatedAt(v *time.Time) *MasteryRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (_c *MasteryRecordCreate) Mutation() *MasteryRecordMutation {
	return _c.mutation
}

// Save creates the MasteryRecord in the database.
func (_c *MasteryRecordCreate) Save(ctx context.Context) (*MasteryRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MasteryRecordCreate) SaveX(ctx context.Context) *MasteryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MasteryRecordCreate) defaults() {
	if _, ok := _c.mutation.Level(); !ok {
		v := masteryrecord.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.Streak(); !ok {
		v := masteryrecord.DefaultStreak
		_c.mutation.SetStreak(v)
	}
	if _, ok := _c.mutation.TotalAttempts(); !ok {
		v := masteryrecord.DefaultTotalAttempts
		_c.mutation.SetTotalAttempts(v)
	}
	if _, ok := _c.mutation.CorrectAttempts(); !ok {
		v := masteryrecord.DefaultCorrectAttempts
		_c.mutation.SetCorrectAttempts(v)
	}
	if _, ok := _c.mutation.LastErrorType(); !ok {
		v := masteryrecord.DefaultLastErrorType
		_c.mutation.SetLastErrorType(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := masteryrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MasteryRecordCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "MasteryRecord.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := masteryrecord.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkillTag(); !ok {
		return &ValidationError{Name: "skill_tag", err: errors.New(`ent: missing required field "MasteryRecord.skill_tag"`)}
	}
	if v, ok := _c.mutation.SkillTag(); ok {
		if err := masteryrecord.SkillTagValidator(v); err != nil {
			return &ValidationError{Name: "skill_tag", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.skill_tag": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "MasteryRecord.level"`)}
	}
	if _, ok := _c.mutation.Streak(); !ok {
		return &ValidationError{Name: "streak", err: errors.New(`ent: missing required field "MasteryRecord.streak"`)}
	}
	if _, ok := _c.mutation.TotalAttempts(); !ok {
		return &ValidationError{Name: "total_attempts", err: errors.New(`ent: missing required field "MasteryRecord.total_attempts"`)}
	}
	if _, ok := _c.mutation.CorrectAttempts(); !ok {
		return &ValidationError{Name: "correct_attempts", err: errors.New(`ent: missing required field "MasteryRecord.correct_attempts"`)}
	}
	if _, ok := _c.mutation.LastErrorType(); !ok {
		return &ValidationError{Name: "last_error_type", err: errors.New(`ent: missing required field "MasteryRecord.last_error_type"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MasteryRecord.updated_at"`)}
	}
	return nil
}

func (_c *MasteryRecordCreate) sqlSave(ctx context.Context) (*MasteryRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MasteryRecordCreate) createSpec() (*MasteryRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &MasteryRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(masteryrecord.Table, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(masteryrecord.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.SkillTag(); ok {
		_spec.SetField(masteryrecord.FieldSkillTag, field.TypeString, value)
		_node.SkillTag = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(masteryrecord.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Streak(); ok {
		_spec.SetField(masteryrecord.FieldStreak, field.TypeInt, value)
		_node.Streak = value
	}
	if value, ok := _c.mutation.TotalAttempts(); ok {
		_spec.SetField(masteryrecord.FieldTotalAttempts, field.TypeInt, value)
		_node.TotalAttempts = value
	}
	if value, ok := _c.mutation.CorrectAttempts(); ok {
		_spec.SetField(masteryrecord.FieldCorrectAttempts, field.TypeInt, value)
		_node.CorrectAttempts = value
	}
	if value, ok := _c.mutation.LastErrorType(); ok {
		_spec.SetField(masteryrecord.FieldLastErrorType, field.TypeString, value)
		_node.LastErrorType = value
	}
	if value, ok := _c.mutation.FormatStats(); ok {
		_spec.SetField(masteryrecord.FieldFormatStats, field.TypeJSON, value)
		_node.FormatStats = value
	}
	if value, ok := _c.mutation.LastPracticedAt(); ok {
		_spec.SetField(masteryrecord.FieldLastPracticedAt, field.TypeTime, value)
		_node.LastPracticedAt = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(masteryrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// MasteryRecordCreateBulk is the builder for creating many MasteryRecord entities in bulk.
type MasteryRecordCreateBulk struct {
	config
	err      error
	builders []*MasteryRecordCreate
}

// Save creates the MasteryRecord entities in the database.
func (_c *MasteryRecordCreateBulk) Save(ctx context.Context) ([]*MasteryRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MasteryRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MasteryRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MasteryRecordCreateBulk) SaveX(ctx context.Context) []*MasteryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
