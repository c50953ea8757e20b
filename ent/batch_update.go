// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"a11ysentinel.io/sentinel/ent/batch"
	"a11ysentinel.io/sentinel/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// BatchUpdate is the builder for updating Batch entities.
type BatchUpdate struct {
	config
	hooks    []Hook
	mutation *BatchMutation
}

// Where appends a list predicates to the BatchUpdate builder.
func (_u *BatchUpdate) Where(ps ...predicate.Batch) *BatchUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BatchUpdate) SetUpdatedAt(v time.Time) *BatchUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *BatchUpdate) SetStatus(v batch.Status) *BatchUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableStatus(v *batch.Status) *BatchUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedCount sets the "completed_count" field.
func (_u *BatchUpdate) SetCompletedCount(v int) *BatchUpdate {
	_u.mutation.ResetCompletedCount()
	_u.mutation.SetCompletedCount(v)
	return _u
}

// SetNillableCompletedCount sets the "completed_count" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableCompletedCount(v *int) *BatchUpdate {
	if v != nil {
		_u.SetCompletedCount(*v)
	}
	return _u
}

// AddCompletedCount adds value to the "completed_count" field.
func (_u *BatchUpdate) AddCompletedCount(v int) *BatchUpdate {
	_u.mutation.AddCompletedCount(v)
	return _u
}

// SetFailedCount sets the "failed_count" field.
func (_u *BatchUpdate) SetFailedCount(v int) *BatchUpdate {
	_u.mutation.ResetFailedCount()
	_u.mutation.SetFailedCount(v)
	return _u
}

// SetNillableFailedCount sets the "failed_count" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableFailedCount(v *int) *BatchUpdate {
	if v != nil {
		_u.SetFailedCount(*v)
	}
	return _u
}

// AddFailedCount adds value to the "failed_count" field.
func (_u *BatchUpdate) AddFailedCount(v int) *BatchUpdate {
	_u.mutation.AddFailedCount(v)
	return _u
}

// SetTotalIssues sets the "total_issues" field.
func (_u *BatchUpdate) SetTotalIssues(v int) *BatchUpdate {
	_u.mutation.ResetTotalIssues()
	_u.mutation.SetTotalIssues(v)
	return _u
}

// SetNillableTotalIssues sets the "total_issues" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableTotalIssues(v *int) *BatchUpdate {
	if v != nil {
		_u.SetTotalIssues(*v)
	}
	return _u
}

// AddTotalIssues adds value to the "total_issues" field.
func (_u *BatchUpdate) AddTotalIssues(v int) *BatchUpdate {
	_u.mutation.AddTotalIssues(v)
	return _u
}

// SetCriticalIssues sets the "critical_issues" field.
func (_u *BatchUpdate) SetCriticalIssues(v int) *BatchUpdate {
	_u.mutation.ResetCriticalIssues()
	_u.mutation.SetCriticalIssues(v)
	return _u
}

// SetNillableCriticalIssues sets the "critical_issues" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableCriticalIssues(v *int) *BatchUpdate {
	if v != nil {
		_u.SetCriticalIssues(*v)
	}
	return _u
}

// AddCriticalIssues adds value to the "critical_issues" field.
func (_u *BatchUpdate) AddCriticalIssues(v int) *BatchUpdate {
	_u.mutation.AddCriticalIssues(v)
	return _u
}

// SetSeriousIssues sets the "serious_issues" field.
func (_u *BatchUpdate) SetSeriousIssues(v int) *BatchUpdate {
	_u.mutation.ResetSeriousIssues()
	_u.mutation.SetSeriousIssues(v)
	return _u
}

// SetNillableSeriousIssues sets the "serious_issues" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableSeriousIssues(v *int) *BatchUpdate {
	if v != nil {
		_u.SetSeriousIssues(*v)
	}
	return _u
}

// AddSeriousIssues adds value to the "serious_issues" field.
func (_u *BatchUpdate) AddSeriousIssues(v int) *BatchUpdate {
	_u.mutation.AddSeriousIssues(v)
	return _u
}

// SetModerateIssues sets the "moderate_issues" field.
func (_u *BatchUpdate) SetModerateIssues(v int) *BatchUpdate {
	_u.mutation.ResetModerateIssues()
	_u.mutation.SetModerateIssues(v)
	return _u
}

// SetNillableModerateIssues sets the "moderate_issues" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableModerateIssues(v *int) *BatchUpdate {
	if v != nil {
		_u.SetModerateIssues(*v)
	}
	return _u
}

// AddModerateIssues adds value to the "moderate_issues" field.
func (_u *BatchUpdate) AddModerateIssues(v int) *BatchUpdate {
	_u.mutation.AddModerateIssues(v)
	return _u
}

// SetMinorIssues sets the "minor_issues" field.
func (_u *BatchUpdate) SetMinorIssues(v int) *BatchUpdate {
	_u.mutation.ResetMinorIssues()
	_u.mutation.SetMinorIssues(v)
	return _u
}

// SetNillableMinorIssues sets the "minor_issues" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableMinorIssues(v *int) *BatchUpdate {
	if v != nil {
		_u.SetMinorIssues(*v)
	}
	return _u
}

// AddMinorIssues adds value to the "minor_issues" field.
func (_u *BatchUpdate) AddMinorIssues(v int) *BatchUpdate {
	_u.mutation.AddMinorIssues(v)
	return _u
}

// SetPassedChecks sets the "passed_checks" field.
func (_u *BatchUpdate) SetPassedChecks(v int) *BatchUpdate {
	_u.mutation.ResetPassedChecks()
	_u.mutation.SetPassedChecks(v)
	return _u
}

// SetNillablePassedChecks sets the "passed_checks" field if the given value is not nil.
func (_u *BatchUpdate) SetNillablePassedChecks(v *int) *BatchUpdate {
	if v != nil {
		_u.SetPassedChecks(*v)
	}
	return _u
}

// AddPassedChecks adds value to the "passed_checks" field.
func (_u *BatchUpdate) AddPassedChecks(v int) *BatchUpdate {
	_u.mutation.AddPassedChecks(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *BatchUpdate) SetCompletedAt(v time.Time) *BatchUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableCompletedAt(v *time.Time) *BatchUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *BatchUpdate) ClearCompletedAt() *BatchUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *BatchUpdate) SetCancelledAt(v time.Time) *BatchUpdate {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableCancelledAt(v *time.Time) *BatchUpdate {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *BatchUpdate) ClearCancelledAt() *BatchUpdate {
	_u.mutation.ClearCancelledAt()
	return _u
}

// Mutation returns the BatchMutation object of the builder.
func (_u *BatchUpdate) Mutation() *BatchMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BatchUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BatchUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BatchUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BatchUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BatchUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := batch.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BatchUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := batch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Batch.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompletedCount(); ok {
		if err := batch.CompletedCountValidator(v); err != nil {
			return &ValidationError{Name: "completed_count", err: fmt.Errorf(`ent: validator failed for field "Batch.completed_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailedCount(); ok {
		if err := batch.FailedCountValidator(v); err != nil {
			return &ValidationError{Name: "failed_count", err: fmt.Errorf(`ent: validator failed for field "Batch.failed_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalIssues(); ok {
		if err := batch.TotalIssuesValidator(v); err != nil {
			return &ValidationError{Name: "total_issues", err: fmt.Errorf(`ent: validator failed for field "Batch.total_issues": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CriticalIssues(); ok {
		if err := batch.CriticalIssuesValidator(v); err != nil {
			return &ValidationError{Name: "critical_issues", err: fmt.Errorf(`ent: validator failed for field "Batch.critical_issues": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SeriousIssues(); ok {
		if err := batch.SeriousIssuesValidator(v); err != nil {
			return &ValidationError{Name: "serious_issues", err: fmt.Errorf(`ent: validator failed for field "Batch.serious_issues": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModerateIssues(); ok {
		if err := batch.ModerateIssuesValidator(v); err != nil {
			return &ValidationError{Name: "moderate_issues", err: fmt.Errorf(`ent: validator failed for field "Batch.moderate_issues": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MinorIssues(); ok {
		if err := batch.MinorIssuesValidator(v); err != nil {
			return &ValidationError{Name: "minor_issues", err: fmt.Errorf(`ent: validator failed for field "Batch.minor_issues": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PassedChecks(); ok {
		if err := batch.PassedChecksValidator(v); err != nil {
			return &ValidationError{Name: "passed_checks", err: fmt.Errorf(`ent: validator failed for field "Batch.passed_checks": %w`, err)}
		}
	}
	return nil
}

func (_u *BatchUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(batch.Table, batch.Columns, sqlgraph.NewFieldSpec(batch.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(batch.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(batch.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedCount(); ok {
		_spec.SetField(batch.FieldCompletedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedCount(); ok {
		_spec.AddField(batch.FieldCompletedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedCount(); ok {
		_spec.SetField(batch.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedCount(); ok {
		_spec.AddField(batch.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalIssues(); ok {
		_spec.SetField(batch.FieldTotalIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalIssues(); ok {
		_spec.AddField(batch.FieldTotalIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CriticalIssues(); ok {
		_spec.SetField(batch.FieldCriticalIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCriticalIssues(); ok {
		_spec.AddField(batch.FieldCriticalIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SeriousIssues(); ok {
		_spec.SetField(batch.FieldSeriousIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeriousIssues(); ok {
		_spec.AddField(batch.FieldSeriousIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ModerateIssues(); ok {
		_spec.SetField(batch.FieldModerateIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedModerateIssues(); ok {
		_spec.AddField(batch.FieldModerateIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MinorIssues(); ok {
		_spec.SetField(batch.FieldMinorIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinorIssues(); ok {
		_spec.AddField(batch.FieldMinorIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PassedChecks(); ok {
		_spec.SetField(batch.FieldPassedChecks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPassedChecks(); ok {
		_spec.AddField(batch.FieldPassedChecks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(batch.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(batch.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(batch.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(batch.FieldCancelledAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{batch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BatchUpdateOne is the builder for updating a single Batch entity.
type BatchUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BatchMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BatchUpdateOne) SetUpdatedAt(v time.Time) *BatchUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *BatchUpdateOne) SetStatus(v batch.Status) *BatchUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableStatus(v *batch.Status) *BatchUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedCount sets the "completed_count" field.
func (_u *BatchUpdateOne) SetCompletedCount(v int) *BatchUpdateOne {
	_u.mutation.ResetCompletedCount()
	_u.mutation.SetCompletedCount(v)
	return _u
}

// SetNillableCompletedCount sets the "completed_count" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableCompletedCount(v *int) *BatchUpdateOne {
	if v != nil {
		_u.SetCompletedCount(*v)
	}
	return _u
}

// AddCompletedCount adds value to the "completed_count" field.
func (_u *BatchUpdateOne) AddCompletedCount(v int) *BatchUpdateOne {
	_u.mutation.AddCompletedCount(v)
	return _u
}

// SetFailedCount sets the "failed_count" field.
func (_u *BatchUpdateOne) SetFailedCount(v int) *BatchUpdateOne {
	_u.mutation.ResetFailedCount()
	_u.mutation.SetFailedCount(v)
	return _u
}

// SetNillableFailedCount sets the "failed_count" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableFailedCount(v *int) *BatchUpdateOne {
	if v != nil {
		_u.SetFailedCount(*v)
	}
	return _u
}

// AddFailedCount adds value to the "failed_count" field.
func (_u *BatchUpdateOne) AddFailedCount(v int) *BatchUpdateOne {
	_u.mutation.AddFailedCount(v)
	return _u
}

// SetTotalIssues sets the "total_issues" field.
func (_u *BatchUpdateOne) SetTotalIssues(v int) *BatchUpdateOne {
	_u.mutation.ResetTotalIssues()
	_u.mutation.SetTotalIssues(v)
	return _u
}

// SetNillableTotalIssues sets the "total_issues" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableTotalIssues(v *int) *BatchUpdateOne {
	if v != nil {
		_u.SetTotalIssues(*v)
	}
	return _u
}

// AddTotalIssues adds value to the "total_issues" field.
func (_u *BatchUpdateOne) AddTotalIssues(v int) *BatchUpdateOne {
	_u.mutation.AddTotalIssues(v)
	return _u
}

// SetCriticalIssues sets the "critical_issues" field.
func (_u *BatchUpdateOne) SetCriticalIssues(v int) *BatchUpdateOne {
	_u.mutation.ResetCriticalIssues()
	_u.mutation.SetCriticalIssues(v)
	return _u
}

// SetNillableCriticalIssues sets the "critical_issues" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableCriticalIssues(v *int) *BatchUpdateOne {
	if v != nil {
		_u.SetCriticalIssues(*v)
	}
	return _u
}

// AddCriticalIssues adds value to the "critical_issues" field.
func (_u *BatchUpdateOne) AddCriticalIssues(v int) *BatchUpdateOne {
	_u.mutation.AddCriticalIssues(v)
	return _u
}

// SetSeriousIssues sets the "serious_issues" field.
func (_u *BatchUpdateOne) SetSeriousIssues(v int) *BatchUpdateOne {
	_u.mutation.ResetSeriousIssues()
	_u.mutation.SetSeriousIssues(v)
	return _u
}

// SetNillableSeriousIssues sets the "serious_issues" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableSeriousIssues(v *int) *BatchUpdateOne {
	if v != nil {
		_u.SetSeriousIssues(*v)
	}
	return _u
}

// AddSeriousIssues adds value to the "serious_issues" field.
func (_u *BatchUpdateOne) AddSeriousIssues(v int) *BatchUpdateOne {
	_u.mutation.AddSeriousIssues(v)
	return _u
}

// SetModerateIssues sets the "moderate_issues" field.
func (_u *BatchUpdateOne) SetModerateIssues(v int) *BatchUpdateOne {
	_u.mutation.ResetModerateIssues()
	_u.mutation.SetModerateIssues(v)
	return _u
}

// SetNillableModerateIssues sets the "moderate_issues" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableModerateIssues(v *int) *BatchUpdateOne {
	if v != nil {
		_u.SetModerateIssues(*v)
	}
	return _u
}

// AddModerateIssues adds value to the "moderate_issues" field.
func (_u *BatchUpdateOne) AddModerateIssues(v int) *BatchUpdateOne {
	_u.mutation.AddModerateIssues(v)
	return _u
}

// SetMinorIssues sets the "minor_issues" field.
func (_u *BatchUpdateOne) SetMinorIssues(v int) *BatchUpdateOne {
	_u.mutation.ResetMinorIssues()
	_u.mutation.SetMinorIssues(v)
	return _u
}

// SetNillableMinorIssues sets the "minor_issues" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableMinorIssues(v *int) *BatchUpdateOne {
	if v != nil {
		_u.SetMinorIssues(*v)
	}
	return _u
}

// AddMinorIssues adds value to the "minor_issues" field.
func (_u *BatchUpdateOne) AddMinorIssues(v int) *BatchUpdateOne {
	_u.mutation.AddMinorIssues(v)
	return _u
}

// SetPassedChecks sets the "passed_checks" field.
func (_u *BatchUpdateOne) SetPassedChecks(v int) *BatchUpdateOne {
	_u.mutation.ResetPassedChecks()
	_u.mutation.SetPassedChecks(v)
	return _u
}

// SetNillablePassedChecks sets the "passed_checks" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillablePassedChecks(v *int) *BatchUpdateOne {
	if v != nil {
		_u.SetPassedChecks(*v)
	}
	return _u
}

// AddPassedChecks adds value to the "passed_checks" field.
func (_u *BatchUpdateOne) AddPassedChecks(v int) *BatchUpdateOne {
	_u.mutation.AddPassedChecks(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *BatchUpdateOne) SetCompletedAt(v time.Time) *BatchUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableCompletedAt(v *time.Time) *BatchUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *BatchUpdateOne) ClearCompletedAt() *BatchUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *BatchUpdateOne) SetCancelledAt(v time.Time) *BatchUpdateOne {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableCancelledAt(v *time.Time) *BatchUpdateOne {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *BatchUpdateOne) ClearCancelledAt() *BatchUpdateOne {
	_u.mutation.ClearCancelledAt()
	return _u
}

// Mutation returns the BatchMutation object of the builder.
func (_u *BatchUpdateOne) Mutation() *BatchMutation {
	return _u.mutation
}

// Where appends a list predicates to the BatchUpdate builder.
func (_u *BatchUpdateOne) Where(ps ...predicate.Batch) *BatchUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BatchUpdateOne) Select(field string, fields ...string) *BatchUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Batch entity.
func (_u *BatchUpdateOne) Save(ctx context.Context) (*Batch, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BatchUpdateOne) SaveX(ctx context.Context) *Batch {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BatchUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BatchUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BatchUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := batch.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BatchUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := batch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Batch.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompletedCount(); ok {
		if err := batch.CompletedCountValidator(v); err != nil {
			return &ValidationError{Name: "completed_count", err: fmt.Errorf(`ent: validator failed for field "Batch.completed_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailedCount(); ok {
		if err := batch.FailedCountValidator(v); err != nil {
			return &ValidationError{Name: "failed_count", err: fmt.Errorf(`ent: validator failed for field "Batch.failed_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalIssues(); ok {
		if err := batch.TotalIssuesValidator(v); err != nil {
			return &ValidationError{Name: "total_issues", err: fmt.Errorf(`ent: validator failed for field "Batch.total_issues": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CriticalIssues(); ok {
		if err := batch.CriticalIssuesValidator(v); err != nil {
			return &ValidationError{Name: "critical_issues", err: fmt.Errorf(`ent: validator failed for field "Batch.critical_issues": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SeriousIssues(); ok {
		if err := batch.SeriousIssuesValidator(v); err != nil {
			return &ValidationError{Name: "serious_issues", err: fmt.Errorf(`ent: validator failed for field "Batch.serious_issues": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModerateIssues(); ok {
		if err := batch.ModerateIssuesValidator(v); err != nil {
			return &ValidationError{Name: "moderate_issues", err: fmt.Errorf(`ent: validator failed for field "Batch.moderate_issues": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MinorIssues(); ok {
		if err := batch.MinorIssuesValidator(v); err != nil {
			return &ValidationError{Name: "minor_issues", err: fmt.Errorf(`ent: validator failed for field "Batch.minor_issues": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PassedChecks(); ok {
		if err := batch.PassedChecksValidator(v); err != nil {
			return &ValidationError{Name: "passed_checks", err: fmt.Errorf(`ent: validator failed for field "Batch.passed_checks": %w`, err)}
		}
	}
	return nil
}

func (_u *BatchUpdateOne) sqlSave(ctx context.Context) (_node *Batch, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(batch.Table, batch.Columns, sqlgraph.NewFieldSpec(batch.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Batch.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, batch.FieldID)
		for _, f := range fields {
			if !batch.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != batch.FieldID {
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
		_spec.SetField(batch.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(batch.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedCount(); ok {
		_spec.SetField(batch.FieldCompletedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedCount(); ok {
		_spec.AddField(batch.FieldCompletedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedCount(); ok {
		_spec.SetField(batch.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedCount(); ok {
		_spec.AddField(batch.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalIssues(); ok {
		_spec.SetField(batch.FieldTotalIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalIssues(); ok {
		_spec.AddField(batch.FieldTotalIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CriticalIssues(); ok {
		_spec.SetField(batch.FieldCriticalIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCriticalIssues(); ok {
		_spec.AddField(batch.FieldCriticalIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SeriousIssues(); ok {
		_spec.SetField(batch.FieldSeriousIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeriousIssues(); ok {
		_spec.AddField(batch.FieldSeriousIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ModerateIssues(); ok {
		_spec.SetField(batch.FieldModerateIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedModerateIssues(); ok {
		_spec.AddField(batch.FieldModerateIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MinorIssues(); ok {
		_spec.SetField(batch.FieldMinorIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinorIssues(); ok {
		_spec.AddField(batch.FieldMinorIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PassedChecks(); ok {
		_spec.SetField(batch.FieldPassedChecks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPassedChecks(); ok {
		_spec.AddField(batch.FieldPassedChecks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(batch.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(batch.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(batch.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(batch.FieldCancelledAt, field.TypeTime)
	}
	_node = &Batch{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{batch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
