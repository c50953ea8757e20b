// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"a11ysentinel.io/sentinel/ent/aiqueueentry"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// AiQueueEntryCreate is the builder for creating a AiQueueEntry entity.
type AiQueueEntryCreate struct {
	config
	mutation *AiQueueEntryMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *AiQueueEntryCreate) SetCreatedAt(v time.Time) *AiQueueEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AiQueueEntryCreate) SetNillableCreatedAt(v *time.Time) *AiQueueEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AiQueueEntryCreate) SetUpdatedAt(v time.Time) *AiQueueEntryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AiQueueEntryCreate) SetNillableUpdatedAt(v *time.Time) *AiQueueEntryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetScanID sets the "scan_id" field.
func (_c *AiQueueEntryCreate) SetScanID(v string) *AiQueueEntryCreate {
	_c.mutation.SetScanID(v)
	return _c
}

// SetReservationID sets the "reservation_id" field.
func (_c *AiQueueEntryCreate) SetReservationID(v string) *AiQueueEntryCreate {
	_c.mutation.SetReservationID(v)
	return _c
}

// SetAiStatus sets the "ai_status" field.
func (_c *AiQueueEntryCreate) SetAiStatus(v aiqueueentry.AiStatus) *AiQueueEntryCreate {
	_c.mutation.SetAiStatus(v)
	return _c
}

// SetNillableAiStatus sets the "ai_status" field if the given value is not nil.
func (_c *AiQueueEntryCreate) SetNillableAiStatus(v *aiqueueentry.AiStatus) *AiQueueEntryCreate {
	if v != nil {
		_c.SetAiStatus(*v)
	}
	return _c
}

// SetAiInputTokens sets the "ai_input_tokens" field.
func (_c *AiQueueEntryCreate) SetAiInputTokens(v int64) *AiQueueEntryCreate {
	_c.mutation.SetAiInputTokens(v)
	return _c
}

// SetNillableAiInputTokens sets the "ai_input_tokens" field if the given value is not nil.
func (_c *AiQueueEntryCreate) SetNillableAiInputTokens(v *int64) *AiQueueEntryCreate {
	if v != nil {
		_c.SetAiInputTokens(*v)
	}
	return _c
}

// SetAiOutputTokens sets the "ai_output_tokens" field.
func (_c *AiQueueEntryCreate) SetAiOutputTokens(v int64) *AiQueueEntryCreate {
	_c.mutation.SetAiOutputTokens(v)
	return _c
}

// SetNillableAiOutputTokens sets the "ai_output_tokens" field if the given value is not nil.
func (_c *AiQueueEntryCreate) SetNillableAiOutputTokens(v *int64) *AiQueueEntryCreate {
	if v != nil {
		_c.SetAiOutputTokens(*v)
	}
	return _c
}

// SetAiTotalTokens sets the "ai_total_tokens" field.
func (_c *AiQueueEntryCreate) SetAiTotalTokens(v int64) *AiQueueEntryCreate {
	_c.mutation.SetAiTotalTokens(v)
	return _c
}

// SetNillableAiTotalTokens sets the "ai_total_tokens" field if the given value is not nil.
func (_c *AiQueueEntryCreate) SetNillableAiTotalTokens(v *int64) *AiQueueEntryCreate {
	if v != nil {
		_c.SetAiTotalTokens(*v)
	}
	return _c
}

// SetAiModel sets the "ai_model" field.
func (_c *AiQueueEntryCreate) SetAiModel(v string) *AiQueueEntryCreate {
	_c.mutation.SetAiModel(v)
	return _c
}

// SetNillableAiModel sets the "ai_model" field if the given value is not nil.
func (_c *AiQueueEntryCreate) SetNillableAiModel(v *string) *AiQueueEntryCreate {
	if v != nil {
		_c.SetAiModel(*v)
	}
	return _c
}

// SetAiProcessingMs sets the "ai_processing_ms" field.
func (_c *AiQueueEntryCreate) SetAiProcessingMs(v int64) *AiQueueEntryCreate {
	_c.mutation.SetAiProcessingMs(v)
	return _c
}

// SetNillableAiProcessingMs sets the "ai_processing_ms" field if the given value is not nil.
func (_c *AiQueueEntryCreate) SetNillableAiProcessingMs(v *int64) *AiQueueEntryCreate {
	if v != nil {
		_c.SetAiProcessingMs(*v)
	}
	return _c
}

// SetAiProcessedAt sets the "ai_processed_at" field.
func (_c *AiQueueEntryCreate) SetAiProcessedAt(v time.Time) *AiQueueEntryCreate {
	_c.mutation.SetAiProcessedAt(v)
	return _c
}

// SetNillableAiProcessedAt sets the "ai_processed_at" field if the given value is not nil.
func (_c *AiQueueEntryCreate) SetNillableAiProcessedAt(v *time.Time) *AiQueueEntryCreate {
	if v != nil {
		_c.SetAiProcessedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AiQueueEntryCreate) SetID(v string) *AiQueueEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AiQueueEntryMutation object of the builder.
func (_c *AiQueueEntryCreate) Mutation() *AiQueueEntryMutation {
	return _c.mutation
}

// Save creates the AiQueueEntry in the database.
func (_c *AiQueueEntryCreate) Save(ctx context.Context) (*AiQueueEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AiQueueEntryCreate) SaveX(ctx context.Context) *AiQueueEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AiQueueEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AiQueueEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AiQueueEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := aiqueueentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := aiqueueentry.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.AiStatus(); !ok {
		v := aiqueueentry.DefaultAiStatus
		_c.mutation.SetAiStatus(v)
	}
	if _, ok := _c.mutation.AiInputTokens(); !ok {
		v := aiqueueentry.DefaultAiInputTokens
		_c.mutation.SetAiInputTokens(v)
	}
	if _, ok := _c.mutation.AiOutputTokens(); !ok {
		v := aiqueueentry.DefaultAiOutputTokens
		_c.mutation.SetAiOutputTokens(v)
	}
	if _, ok := _c.mutation.AiTotalTokens(); !ok {
		v := aiqueueentry.DefaultAiTotalTokens
		_c.mutation.SetAiTotalTokens(v)
	}
	if _, ok := _c.mutation.AiProcessingMs(); !ok {
		v := aiqueueentry.DefaultAiProcessingMs
		_c.mutation.SetAiProcessingMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AiQueueEntryCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AiQueueEntry.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AiQueueEntry.updated_at"`)}
	}
	if _, ok := _c.mutation.ScanID(); !ok {
		return &ValidationError{Name: "scan_id", err: errors.New(`ent: missing required field "AiQueueEntry.scan_id"`)}
	}
	if _, ok := _c.mutation.ReservationID(); !ok {
		return &ValidationError{Name: "reservation_id", err: errors.New(`ent: missing required field "AiQueueEntry.reservation_id"`)}
	}
	if v, ok := _c.mutation.ReservationID(); ok {
		if err := aiqueueentry.ReservationIDValidator(v); err != nil {
			return &ValidationError{Name: "reservation_id", err: fmt.Errorf(`ent: validator failed for field "AiQueueEntry.reservation_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AiStatus(); !ok {
		return &ValidationError{Name: "ai_status", err: errors.New(`ent: missing required field "AiQueueEntry.ai_status"`)}
	}
	if v, ok := _c.mutation.AiStatus(); ok {
		if err := aiqueueentry.AiStatusValidator(v); err != nil {
			return &ValidationError{Name: "ai_status", err: fmt.Errorf(`ent: validator failed for field "AiQueueEntry.ai_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AiInputTokens(); !ok {
		return &ValidationError{Name: "ai_input_tokens", err: errors.New(`ent: missing required field "AiQueueEntry.ai_input_tokens"`)}
	}
	if v, ok := _c.mutation.AiInputTokens(); ok {
		if err := aiqueueentry.AiInputTokensValidator(v); err != nil {
			return &ValidationError{Name: "ai_input_tokens", err: fmt.Errorf(`ent: validator failed for field "AiQueueEntry.ai_input_tokens": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AiOutputTokens(); !ok {
		return &ValidationError{Name: "ai_output_tokens", err: errors.New(`ent: missing required field "AiQueueEntry.ai_output_tokens"`)}
	}
	if v, ok := _c.mutation.AiOutputTokens(); ok {
		if err := aiqueueentry.AiOutputTokensValidator(v); err != nil {
			return &ValidationError{Name: "ai_output_tokens", err: fmt.Errorf(`ent: validator failed for field "AiQueueEntry.ai_output_tokens": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AiTotalTokens(); !ok {
		return &ValidationError{Name: "ai_total_tokens", err: errors.New(`ent: missing required field "AiQueueEntry.ai_total_tokens"`)}
	}
	if v, ok := _c.mutation.AiTotalTokens(); ok {
		if err := aiqueueentry.AiTotalTokensValidator(v); err != nil {
			return &ValidationError{Name: "ai_total_tokens", err: fmt.Errorf(`ent: validator failed for field "AiQueueEntry.ai_total_tokens": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AiProcessingMs(); !ok {
		return &ValidationError{Name: "ai_processing_ms", err: errors.New(`ent: missing required field "AiQueueEntry.ai_processing_ms"`)}
	}
	if v, ok := _c.mutation.AiProcessingMs(); ok {
		if err := aiqueueentry.AiProcessingMsValidator(v); err != nil {
			return &ValidationError{Name: "ai_processing_ms", err: fmt.Errorf(`ent: validator failed for field "AiQueueEntry.ai_processing_ms": %w`, err)}
		}
	}
	return nil
}

func (_c *AiQueueEntryCreate) sqlSave(ctx context.Context) (*AiQueueEntry, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AiQueueEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AiQueueEntryCreate) createSpec() (*AiQueueEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &AiQueueEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(aiqueueentry.Table, sqlgraph.NewFieldSpec(aiqueueentry.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(aiqueueentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(aiqueueentry.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ScanID(); ok {
		_spec.SetField(aiqueueentry.FieldScanID, field.TypeString, value)
		_node.ScanID = value
	}
	if value, ok := _c.mutation.ReservationID(); ok {
		_spec.SetField(aiqueueentry.FieldReservationID, field.TypeString, value)
		_node.ReservationID = value
	}
	if value, ok := _c.mutation.AiStatus(); ok {
		_spec.SetField(aiqueueentry.FieldAiStatus, field.TypeEnum, value)
		_node.AiStatus = value
	}
	if value, ok := _c.mutation.AiInputTokens(); ok {
		_spec.SetField(aiqueueentry.FieldAiInputTokens, field.TypeInt64, value)
		_node.AiInputTokens = value
	}
	if value, ok := _c.mutation.AiOutputTokens(); ok {
		_spec.SetField(aiqueueentry.FieldAiOutputTokens, field.TypeInt64, value)
		_node.AiOutputTokens = value
	}
	if value, ok := _c.mutation.AiTotalTokens(); ok {
		_spec.SetField(aiqueueentry.FieldAiTotalTokens, field.TypeInt64, value)
		_node.AiTotalTokens = value
	}
	if value, ok := _c.mutation.AiModel(); ok {
		_spec.SetField(aiqueueentry.FieldAiModel, field.TypeString, value)
		_node.AiModel = value
	}
	if value, ok := _c.mutation.AiProcessingMs(); ok {
		_spec.SetField(aiqueueentry.FieldAiProcessingMs, field.TypeInt64, value)
		_node.AiProcessingMs = value
	}
	if value, ok := _c.mutation.AiProcessedAt(); ok {
		_spec.SetField(aiqueueentry.FieldAiProcessedAt, field.TypeTime, value)
		_node.AiProcessedAt = &value
	}
	return _node, _spec
}

// AiQueueEntryCreateBulk is the builder for creating many AiQueueEntry entities in bulk.
type AiQueueEntryCreateBulk struct {
	config
	err      error
	builders []*AiQueueEntryCreate
}

// Save creates the AiQueueEntry entities in the database.
func (_c *AiQueueEntryCreateBulk) Save(ctx context.Context) ([]*AiQueueEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AiQueueEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AiQueueEntryMutation)
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
func (_c *AiQueueEntryCreateBulk) SaveX(ctx context.Context) []*AiQueueEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AiQueueEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AiQueueEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
