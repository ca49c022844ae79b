// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nirajyt2022-source/edTech-sub001/ent/predicate"
	"github.com/nirajyt2022-source/edTech-sub001/ent/worksheetrecord"
)

// WorksheetRecordDelete is the builder for deleting a WorksheetRecord entity.
type WorksheetRecordDelete struct {
	config
	hooks    []Hook
	mutation *WorksheetRecordMutation
}

// Where appends a list predicates to the WorksheetRecordDelete builder.
func (_d *WorksheetRecordDelete) Where(ps ...predicate.WorksheetRecord) *WorksheetRecordDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *WorksheetRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *WorksheetRecordDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *WorksheetRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(worksheetrecord.Table, sqlgraph.NewFieldSpec(worksheetrecord.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// WorksheetRecordDeleteOne is the builder for deleting a single WorksheetRecord entity.
type WorksheetRecordDeleteOne struct {
	_d *WorksheetRecordDelete
}

// Where appends a list predicates to the WorksheetRecordDelete builder.
func (_d *WorksheetRecordDeleteOne) Where(ps ...predicate.WorksheetRecord) *WorksheetRecordDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *WorksheetRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{worksheetrecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *WorksheetRecordDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
