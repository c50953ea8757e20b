// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"a11ysentinel.io/sentinel/ent/aiqueueentry"
	"a11ysentinel.io/sentinel/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// AiQueueEntryUpdate is the builder for updating AiQueueEntry entities.
type AiQueueEntryUpdate struct {
	config
	hooks    []Hook
	mutation *AiQueueEntryMutation
}

// Where appends a list predicates to the AiQueueEntryUpdate builder.
func (_u *AiQueueEntryUpdate) Where(ps ...predicate.AiQueueEntry) *AiQueueEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AiQueueEntryUpdate) SetUpdatedAt(v time.Time) *AiQueueEntryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetReservationID sets the "reservation_id" field.
func (_u *AiQueueEntryUpdate) SetReservationID(v string) *AiQueueEntryUpdate {
	_u.mutation.SetReservationID(v)
	return _u
}

// SetNillableReservationID sets the "reservation_id" field if the given value is not nil.
func (_u *AiQueueEntryUpdate) SetNillableReservationID(v *string) *AiQueueEntryUpdate {
	if v != nil {
		_u.SetReservationID(*v)
	}
	return _u
}

// SetAiStatus sets the "ai_status" field.
func (_u *AiQueueEntryUpdate) SetAiStatus(v aiqueueentry.AiStatus) *AiQueueEntryUpdate {
	_u.mutation.SetAiStatus(v)
	return _u
}

// SetNillableAiStatus sets the "ai_status" field if the given value is not nil.
func (_u *AiQueueEntryUpdate) SetNillableAiStatus(v *aiqueueentry.AiStatus) *AiQueueEntryUpdate {
	if v != nil {
		_u.SetAiStatus(*v)
	}
	return _u
}

// SetAiInputTokens sets the "ai_input_tokens" field.
func (_u *AiQueueEntryUpdate) SetAiInputTokens(v int64) *AiQueueEntryUpdate {
	_u.mutation.ResetAiInputTokens()
	_u.mutation.SetAiInputTokens(v)
	return _u
}

// SetNillableAiInputTokens sets the "ai_input_tokens" field if the given value is not nil.
func (_u *AiQueueEntryUpdate) SetNillableAiInputTokens(v *int64) *AiQueueEntryUpdate {
	if v != nil {
		_u.SetAiInputTokens(*v)
	}
	return _u
}

// AddAiInputTokens adds value to the "ai_input_tokens" field.
func (_u *AiQueueEntryUpdate) AddAiInputTokens(v int64) *AiQueueEntryUpdate {
	_u.mutation.AddAiInputTokens(v)
	return _u
}

// SetAiOutputTokens sets the "ai_output_tokens" field.
func (_u *AiQueueEntryUpdate) SetAiOutputTokens(v int64) *AiQueueEntryUpdate {
	_u.mutation.ResetAiOutputTokens()
	_u.mutation.SetAiOutputTokens(v)
	return _u
}

// SetNillableAiOutputTokens sets the "ai_output_tokens" field if the given value is not nil.
func (_u *AiQueueEntryUpdate) SetNillableAiOutputTokens(v *int64) *AiQueueEntryUpdate {
	if v != nil {
		_u.SetAiOutputTokens(*v)
	}
	return _u
}

// AddAiOutputTokens adds value to the "ai_output_tokens" field.
func (_u *AiQueueEntryUpdate) AddAiOutputTokens(v int64) *AiQueueEntryUpdate {
	_u.mutation.AddAiOutputTokens(v)
	return _u
}

// SetAiTotalTokens sets the "ai_total_tokens" field.
func (_u *AiQueueEntryUpdate) SetAiTotalTokens(v int64) *AiQueueEntryUpdate {
	_u.mutation.ResetAiTotalTokens()
	_u.mutation.SetAiTotalTokens(v)
	return _u
}

// SetNillableAiTotalTokens sets the "ai_total_tokens" field if the given value is not nil.
func (_u *AiQueueEntryUpdate) SetNillableAiTotalTokens(v *int64) *AiQueueEntryUpdate {
	if v != nil {
		_u.SetAiTotalTokens(*v)
	}
	return _u
}

// AddAiTotalTokens adds value to the "ai_total_tokens" field.
func (_u *AiQueueEntryUpdate) AddAiTotalTokens(v int64) *AiQueueEntryUpdate {
	_u.mutation.AddAiTotalTokens(v)
	return _u
}

// SetAiModel sets the "ai_model" field.
func (_u *AiQueueEntryUpdate) SetAiModel(v string) *AiQueueEntryUpdate {
	_u.mutation.SetAiModel(v)
	return _u
}

// SetNillableAiModel sets the "ai_model" field if the given value is not nil.
func (_u *AiQueueEntryUpdate) SetNillableAiModel(v *string) *AiQueueEntryUpdate {
	if v != nil {
		_u.SetAiModel(*v)
	}
	return _u
}

// ClearAiModel clears the value of the "ai_model" field.
func (_u *AiQueueEntryUpdate) ClearAiModel() *AiQueueEntryUpdate {
	_u.mutation.ClearAiModel()
	return _u
}

// SetAiProcessingMs sets the "ai_processing_ms" field.
func (_u *AiQueueEntryUpdate) SetAiProcessingMs(v int64) *AiQueueEntryUpdate {
	_u.mutation.ResetAiProcessingMs()
	_u.mutation.SetAiProcessingMs(v)
	return _u
}

// SetNillableAiProcessingMs sets the "ai_processing_ms" field if the given value is not nil.
func (_u *AiQueueEntryUpdate) SetNillableAiProcessingMs(v *int64) *AiQueueEntryUpdate {
	if v != nil {
		_u.SetAiProcessingMs(*v)
	}
	return _u
}

// AddAiProcessingMs adds value to the "ai_processing_ms" field.
func (_u *AiQueueEntryUpdate) AddAiProcessingMs(v int64) *AiQueueEntryUpdate {
	_u.mutation.AddAiProcessingMs(v)
	return _u
}

// SetAiProcessedAt sets the "ai_processed_at" field.
func (_u *AiQueueEntryUpdate) SetAiProcessedAt(v time.Time) *AiQueueEntryUpdate {
	_u.mutation.SetAiProcessedAt(v)
	return _u
}

// SetNillableAiProcessedAt sets the "ai_processed_at" field if the given value is not nil.
func (_u *AiQueueEntryUpdate) SetNillableAiProcessedAt(v *time.Time) *AiQueueEntryUpdate {
	if v != nil {
		_u.SetAiProcessedAt(*v)
	}
	return _u
}

// ClearAiProcessedAt clears the value of the "ai_processed_at" field.
func (_u *AiQueueEntryUpdate) ClearAiProcessedAt() *AiQueueEntryUpdate {
	_u.mutation.ClearAiProcessedAt()
	return _u
}

// Mutation returns the AiQueueEntryMutation object of the builder.
func (_u *AiQueueEntryUpdate) Mutation() *AiQueueEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AiQueueEntryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AiQueueEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AiQueueEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AiQueueEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AiQueueEntryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := aiqueueentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AiQueueEntryUpdate) check() error {
	if v, ok := _u.mutation.ReservationID(); ok {
		if err := aiqueueentry.ReservationIDValidator(v); err != nil {
			return &ValidationError{Name: "reservation_id", err: fmt.Errorf(`ent: validator failed for field "AiQueueEntry.reservation_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AiStatus(); ok {
		if err := aiqueueentry.AiStatusValidator(v); err != nil {
			return &ValidationError{Name: "ai_status", err: fmt.Errorf(`ent: validator failed for field "AiQueueEntry.ai_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AiInputTokens(); ok {
		if err := aiqueueentry.AiInputTokensValidator(v); err != nil {
			return &ValidationError{Name: "ai_input_tokens", err: fmt.Errorf(`ent: validator failed for field "AiQueueEntry.ai_input_tokens": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AiOutputTokens(); ok {
		if err := aiqueueentry.AiOutputTokensValidator(v); err != nil {
			return &ValidationError{Name: "ai_output_tokens", err: fmt.Errorf(`ent: validator failed for field "AiQueueEntry.ai_output_tokens": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AiTotalTokens(); ok {
		if err := aiqueueentry.AiTotalTokensValidator(v); err != nil {
			return &ValidationError{Name: "ai_total_tokens", err: fmt.Errorf(`ent: validator failed for field "AiQueueEntry.ai_total_tokens": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AiProcessingMs(); ok {
		if err := aiqueueentry.AiProcessingMsValidator(v); err != nil {
			return &ValidationError{Name: "ai_processing_ms", err: fmt.Errorf(`ent: validator failed for field "AiQueueEntry.ai_processing_ms": %w`, err)}
		}
	}
	return nil
}

func (_u *AiQueueEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(aiqueueentry.Table, aiqueueentry.Columns, sqlgraph.NewFieldSpec(aiqueueentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(aiqueueentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ReservationID(); ok {
		_spec.SetField(aiqueueentry.FieldReservationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AiStatus(); ok {
		_spec.SetField(aiqueueentry.FieldAiStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AiInputTokens(); ok {
		_spec.SetField(aiqueueentry.FieldAiInputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAiInputTokens(); ok {
		_spec.AddField(aiqueueentry.FieldAiInputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AiOutputTokens(); ok {
		_spec.SetField(aiqueueentry.FieldAiOutputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAiOutputTokens(); ok {
		_spec.AddField(aiqueueentry.FieldAiOutputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AiTotalTokens(); ok {
		_spec.SetField(aiqueueentry.FieldAiTotalTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAiTotalTokens(); ok {
		_spec.AddField(aiqueueentry.FieldAiTotalTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AiModel(); ok {
		_spec.SetField(aiqueueentry.FieldAiModel, field.TypeString, value)
	}
	if _u.mutation.AiModelCleared() {
		_spec.ClearField(aiqueueentry.FieldAiModel, field.TypeString)
	}
	if value, ok := _u.mutation.AiProcessingMs(); ok {
		_spec.SetField(aiqueueentry.FieldAiProcessingMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAiProcessingMs(); ok {
		_spec.AddField(aiqueueentry.FieldAiProcessingMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AiProcessedAt(); ok {
		_spec.SetField(aiqueueentry.FieldAiProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.AiProcessedAtCleared() {
		_spec.ClearField(aiqueueentry.FieldAiProcessedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{aiqueueentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AiQueueEntryUpdateOne is the builder for updating a single AiQueueEntry entity.
type AiQueueEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AiQueueEntryMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AiQueueEntryUpdateOne) SetUpdatedAt(v time.Time) *AiQueueEntryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetReservationID sets the "reservation_id" field.
func (_u *AiQueueEntryUpdateOne) SetReservationID(v string) *AiQueueEntryUpdateOne {
	_u.mutation.SetReservationID(v)
	return _u
}

// SetNillableReservationID sets the "reservation_id" field if the given value is not nil.
func (_u *AiQueueEntryUpdateOne) SetNillableReservationID(v *string) *AiQueueEntryUpdateOne {
	if v != nil {
		_u.SetReservationID(*v)
	}
	return _u
}

// SetAiStatus sets the "ai_status" field.
func (_u *AiQueueEntryUpdateOne) SetAiStatus(v aiqueueentry.AiStatus) *AiQueueEntryUpdateOne {
	_u.mutation.SetAiStatus(v)
	return _u
}

// SetNillableAiStatus sets the "ai_status" field if the given value is not nil.
func (_u *AiQueueEntryUpdateOne) SetNillableAiStatus(v *aiqueueentry.AiStatus) *AiQueueEntryUpdateOne {
	if v != nil {
		_u.SetAiStatus(*v)
	}
	return _u
}

// SetAiInputTokens sets the "ai_input_tokens" field.
func (_u *AiQueueEntryUpdateOne) SetAiInputTokens(v int64) *AiQueueEntryUpdateOne {
	_u.mutation.ResetAiInputTokens()
	_u.mutation.SetAiInputTokens(v)
	return _u
}

// SetNillableAiInputTokens sets the "ai_input_tokens" field if the given value is not nil.
func (_u *AiQueueEntryUpdateOne) SetNillableAiInputTokens(v *int64) *AiQueueEntryUpdateOne {
	if v != nil {
		_u.SetAiInputTokens(*v)
	}
	return _u
}

// AddAiInputTokens adds value to the "ai_input_tokens" field.
func (_u *AiQueueEntryUpdateOne) AddAiInputTokens(v int64) *AiQueueEntryUpdateOne {
	_u.mutation.AddAiInputTokens(v)
	return _u
}

// SetAiOutputTokens sets the "ai_output_tokens" field.
func (_u *AiQueueEntryUpdateOne) SetAiOutputTokens(v int64) *AiQueueEntryUpdateOne {
	_u.mutation.ResetAiOutputTokens()
	_u.mutation.SetAiOutputTokens(v)
	return _u
}

// SetNillableAiOutputTokens sets the "ai_output_tokens" field if the given value is not nil.
func (_u *AiQueueEntryUpdateOne) SetNillableAiOutputTokens(v *int64) *AiQueueEntryUpdateOne {
	if v != nil {
		_u.SetAiOutputTokens(*v)
	}
	return _u
}

// AddAiOutputTokens adds value to the "ai_output_tokens" field.
func (_u *AiQueueEntryUpdateOne) AddAiOutputTokens(v int64) *AiQueueEntryUpdateOne {
	_u.mutation.AddAiOutputTokens(v)
	return _u
}

// SetAiTotalTokens sets the "ai_total_tokens" field.
func (_u *AiQueueEntryUpdateOne) SetAiTotalTokens(v int64) *AiQueueEntryUpdateOne {
	_u.mutation.ResetAiTotalTokens()
	_u.mutation.SetAiTotalTokens(v)
	return _u
}

// SetNillableAiTotalTokens sets the "ai_total_tokens" field if the given value is not nil.
func (_u *AiQueueEntryUpdateOne) SetNillableAiTotalTokens(v *int64) *AiQueueEntryUpdateOne {
	if v != nil {
		_u.SetAiTotalTokens(*v)
	}
	return _u
}

// AddAiTotalTokens adds value to the "ai_total_tokens" field.
func (_u *AiQueueEntryUpdateOne) AddAiTotalTokens(v int64) *AiQueueEntryUpdateOne {
	_u.mutation.AddAiTotalTokens(v)
	return _u
}

// SetAiModel sets the "ai_model" field.
func (_u *AiQueueEntryUpdateOne) SetAiModel(v string) *AiQueueEntryUpdateOne {
	_u.mutation.SetAiModel(v)
	return _u
}

// SetNillableAiModel sets the "ai_model" field if the given value is not nil.
func (_u *AiQueueEntryUpdateOne) SetNillableAiModel(v *string) *AiQueueEntryUpdateOne {
	if v != nil {
		_u.SetAiModel(*v)
	}
	return _u
}

// ClearAiModel clears the value of the "ai_model" field.
func (_u *AiQueueEntryUpdateOne) ClearAiModel() *AiQueueEntryUpdateOne {
	_u.mutation.ClearAiModel()
	return _u
}

// SetAiProcessingMs sets the "ai_processing_ms" field.
func (_u *AiQueueEntryUpdateOne) SetAiProcessingMs(v int64) *AiQueueEntryUpdateOne {
	_u.mutation.ResetAiProcessingMs()
	_u.mutation.SetAiProcessingMs(v)
	return _u
}

// SetNillableAiProcessingMs sets the "ai_processing_ms" field if the given value is not nil.
func (_u *AiQueueEntryUpdateOne) SetNillableAiProcessingMs(v *int64) *AiQueueEntryUpdateOne {
	if v != nil {
		_u.SetAiProcessingMs(*v)
	}
	return _u
}

// AddAiProcessingMs adds value to the "ai_processing_ms" field.
func (_u *AiQueueEntryUpdateOne) AddAiProcessingMs(v int64) *AiQueueEntryUpdateOne {
	_u.mutation.AddAiProcessingMs(v)
	return _u
}

// SetAiProcessedAt sets the "ai_processed_at" field.
func (_u *AiQueueEntryUpdateOne) SetAiProcessedAt(v time.Time) *AiQueueEntryUpdateOne {
	_u.mutation.SetAiProcessedAt(v)
	return _u
}

// SetNillableAiProcessedAt sets the "ai_processed_at" field if the given value is not nil.
func (_u *AiQueueEntryUpdateOne) SetNillableAiProcessedAt(v *time.Time) *AiQueueEntryUpdateOne {
	if v != nil {
		_u.SetAiProcessedAt(*v)
	}
	return _u
}

// ClearAiProcessedAt clears the value of the "ai_processed_at" field.
func (_u *AiQueueEntryUpdateOne) ClearAiProcessedAt() *AiQueueEntryUpdateOne {
	_u.mutation.ClearAiProcessedAt()
	return _u
}

// Mutation returns the AiQueueEntryMutation object of the builder.
func (_u *AiQueueEntryUpdateOne) Mutation() *AiQueueEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the AiQueueEntryUpdate builder.
func (_u *AiQueueEntryUpdateOne) Where(ps ...predicate.AiQueueEntry) *AiQueueEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AiQueueEntryUpdateOne) Select(field string, fields ...string) *AiQueueEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AiQueueEntry entity.
func (_u *AiQueueEntryUpdateOne) Save(ctx context.Context) (*AiQueueEntry, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AiQueueEntryUpdateOne) SaveX(ctx context.Context) *AiQueueEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AiQueueEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AiQueueEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AiQueueEntryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := aiqueueentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AiQueueEntryUpdateOne) check() error {
	if v, ok := _u.mutation.ReservationID(); ok {
		if err := aiqueueentry.ReservationIDValidator(v); err != nil {
			return &ValidationError{Name: "reservation_id", err: fmt.Errorf(`ent: validator failed for field "AiQueueEntry.reservation_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AiStatus(); ok {
		if err := aiqueueentry.AiStatusValidator(v); err != nil {
			return &ValidationError{Name: "ai_status", err: fmt.Errorf(`ent: validator failed for field "AiQueueEntry.ai_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AiInputTokens(); ok {
		if err := aiqueueentry.AiInputTokensValidator(v); err != nil {
			return &ValidationError{Name: "ai_input_tokens", err: fmt.Errorf(`ent: validator failed for field "AiQueueEntry.ai_input_tokens": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AiOutputTokens(); ok {
		if err := aiqueueentry.AiOutputTokensValidator(v); err != nil {
			return &ValidationError{Name: "ai_output_tokens", err: fmt.Errorf(`ent: validator failed for field "AiQueueEntry.ai_output_tokens": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AiTotalTokens(); ok {
		if err := aiqueueentry.AiTotalTokensValidator(v); err != nil {
			return &ValidationError{Name: "ai_total_tokens", err: fmt.Errorf(`ent: validator failed for field "AiQueueEntry.ai_total_tokens": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AiProcessingMs(); ok {
		if err := aiqueueentry.AiProcessingMsValidator(v); err != nil {
			return &ValidationError{Name: "ai_processing_ms", err: fmt.Errorf(`ent: validator failed for field "AiQueueEntry.ai_processing_ms": %w`, err)}
		}
	}
	return nil
}

func (_u *AiQueueEntryUpdateOne) sqlSave(ctx context.Context) (_node *AiQueueEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(aiqueueentry.Table, aiqueueentry.Columns, sqlgraph.NewFieldSpec(aiqueueentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AiQueueEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, aiqueueentry.FieldID)
		for _, f := range fields {
			if !aiqueueentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != aiqueueentry.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(aiqueueentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ReservationID(); ok {
		_spec.SetField(aiqueueentry.FieldReservationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AiStatus(); ok {
		_spec.SetField(aiqueueentry.FieldAiStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AiInputTokens(); ok {
		_spec.SetField(aiqueueentry.FieldAiInputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAiInputTokens(); ok {
		_spec.AddField(aiqueueentry.FieldAiInputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AiOutputTokens(); ok {
		_spec.SetField(aiqueueentry.FieldAiOutputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAiOutputTokens(); ok {
		_spec.AddField(aiqueueentry.FieldAiOutputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AiTotalTokens(); ok {
		_spec.SetField(aiqueueentry.FieldAiTotalTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAiTotalTokens(); ok {
		_spec.AddField(aiqueueentry.FieldAiTotalTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AiModel(); ok {
		_spec.SetField(aiqueueentry.FieldAiModel, field.TypeString, value)
	}
	if _u.mutation.AiModelCleared() {
		_spec.ClearField(aiqueueentry.FieldAiModel, field.TypeString)
	}
	if value, ok := _u.mutation.AiProcessingMs(); ok {
		_spec.SetField(aiqueueentry.FieldAiProcessingMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAiProcessingMs(); ok {
		_spec.AddField(aiqueueentry.FieldAiProcessingMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AiProcessedAt(); ok {
		_spec.SetField(aiqueueentry.FieldAiProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.AiProcessedAtCleared() {
		_spec.ClearField(aiqueueentry.FieldAiProcessedAt, field.TypeTime)
	}
	_node = &AiQueueEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{aiqueueentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
