// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nirajyt2022-source/edTech-sub001/ent/worksheetrecord"
)

// WorksheetRecordCreate is the builder for creating a WorksheetRecord entity.
type WorksheetRecordCreate struct {
	config
	mutation *WorksheetRecordMutation
	hooks    []Hook
}

// SetWorksheetID sets the "worksheet_id" field.
func (_c *WorksheetRecordCreate) SetWorksheetID(v string) *WorksheetRecordCreate {
	_c.mutation.SetWorksheetID(v)
	return _c
}

// SetGrade sets the "grade" field.
func (_c *WorksheetRecordCreate) SetGrade(v int) *WorksheetRecordCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *WorksheetRecordCreate) SetTopic(v string) *WorksheetRecordCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetUsedContexts sets the "used_contexts" field.
func (_c *WorksheetRecordCreate) SetUsedContexts(v []string) *WorksheetRecordCreate {
	_c.mutation.SetUsedContexts(v)
	return _c
}

// SetUsedErrorIds sets the "used_error_ids" field.
func (_c *WorksheetRecordCreate) SetUsedErrorIds(v []string) *WorksheetRecordCreate {
	_c.mutation.SetUsedErrorIds(v)
	return _c
}

// SetUsedThinkingStyles sets the "used_thinking_styles" field.
func (_c *WorksheetRecordCreate) SetUsedThinkingStyles(v []string) *WorksheetRecordCreate {
	_c.mutation.SetUsedThinkingStyles(v)
	return _c
}

// SetUsedNumberPairs sets the "used_number_pairs" field.
func (_c *WorksheetRecordCreate) SetUsedNumberPairs(v []string) *WorksheetRecordCreate {
	_c.mutation.SetUsedNumberPairs(v)
	return _c
}

// SetUsedQuestionHashes sets the "used_question_hashes" field.
func (_c *WorksheetRecordCreate) SetUsedQuestionHashes(v []string) *WorksheetRecordCreate {
	_c.mutation.SetUsedQuestionHashes(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorksheetRecordCreate) SetCreatedAt(v time.Time) *WorksheetRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorksheetRecordCreate) SetNillableCreatedAt(v *time.Time) *WorksheetRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the WorksheetRecordMutation object of the builder.
func (_c *WorksheetRecordCreate) Mutation() *WorksheetRecordMutation {
	return _c.mutation
}

// Save creates the WorksheetRecord in the database.
func (_c *WorksheetRecordCreate) Save(ctx context.Context) (*WorksheetRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorksheetRecordCreate) SaveX(ctx context.Context) *WorksheetRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorksheetRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorksheetRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorksheetRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := worksheetrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorksheetRecordCreate) check() error {
	if _, ok := _c.mutation.WorksheetID(); !ok {
		return &ValidationError{Name: "worksheet_id", err: errors.New(`ent: missing required field "WorksheetRecord.worksheet_id"`)}
	}
	if _, ok := _c.mutation.Grade(); !ok {
		return &ValidationError{Name: "grade", err: errors.New(`ent: missing required field "WorksheetRecord.grade"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "WorksheetRecord.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := worksheetrecord.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "WorksheetRecord.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorksheetRecord.created_at"`)}
	}
	return nil
}

func (_c *WorksheetRecordCreate) sqlSave(ctx context.Context) (*WorksheetRecord, error) {
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

func (_c *WorksheetRecordCreate) createSpec() (*WorksheetRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &WorksheetRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(worksheetrecord.Table, sqlgraph.NewFieldSpec(worksheetrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.WorksheetID(); ok {
		_spec.SetField(worksheetrecord.FieldWorksheetID, field.TypeString, value)
		_node.WorksheetID = value
	}
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(worksheetrecord.FieldGrade, field.TypeInt, value)
		_node.Grade = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(worksheetrecord.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.UsedContexts(); ok {
		_spec.SetField(worksheetrecord.FieldUsedContexts, field.TypeJSON, value)
		_node.UsedContexts = value
	}
	if value, ok := _c.mutation.UsedErrorIds(); ok {
		_spec.SetField(worksheetrecord.FieldUsedErrorIds, field.TypeJSON, value)
		_node.UsedErrorIds = value
	}
	if value, ok := _c.mutation.UsedThinkingStyles(); ok {
		_spec.SetField(worksheetrecord.FieldUsedThinkingStyles, field.TypeJSON, value)
		_node.UsedThinkingStyles = value
	}
	if value, ok := _c.mutation.UsedNumberPairs(); ok {
		_spec.SetField(worksheetrecord.FieldUsedNumberPairs, field.TypeJSON, value)
		_node.UsedNumberPairs = value
	}
	if value, ok := _c.mutation.UsedQuestionHashes(); ok {
		_spec.SetField(worksheetrecord.FieldUsedQuestionHashes, field.TypeJSON, value)
		_node.UsedQuestionHashes = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(worksheetrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// WorksheetRecordCreateBulk is the builder for creating many WorksheetRecord entities in bulk.
type WorksheetRecordCreateBulk struct {
	config
	err      error
	builders []*WorksheetRecordCreate
}

// Save creates the WorksheetRecord entities in the database.
func (_c *WorksheetRecordCreateBulk) Save(ctx context.Context) ([]*WorksheetRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorksheetRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorksheetRecordMutation)
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
func (_c *WorksheetRecordCreateBulk) SaveX(ctx context.Context) []*WorksheetRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorksheetRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorksheetRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
