// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"a11ysentinel.io/sentinel/ent/aiqueueentry"
	"a11ysentinel.io/sentinel/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// AiQueueEntryDelete is the builder for deleting a AiQueueEntry entity.
type AiQueueEntryDelete struct {
	config
	hooks    []Hook
	mutation *AiQueueEntryMutation
}

// Where appends a list predicates to the AiQueueEntryDelete builder.
func (_d *AiQueueEntryDelete) Where(ps ...predicate.AiQueueEntry) *AiQueueEntryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AiQueueEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AiQueueEntryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AiQueueEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(aiqueueentry.Table, sqlgraph.NewFieldSpec(aiqueueentry.FieldID, field.TypeString))
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

// AiQueueEntryDeleteOne is the builder for deleting a single AiQueueEntry entity.
type AiQueueEntryDeleteOne struct {
	_d *AiQueueEntryDelete
}

// Where appends a list predicates to the AiQueueEntryDelete builder.
func (_d *AiQueueEntryDeleteOne) Where(ps ...predicate.AiQueueEntry) *AiQueueEntryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AiQueueEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{aiqueueentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AiQueueEntryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
