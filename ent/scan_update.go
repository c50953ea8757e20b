// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"a11ysentinel.io/sentinel/ent/predicate"
	"a11ysentinel.io/sentinel/ent/scan"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
)

// ScanUpdate is the builder for updating Scan entities.
type ScanUpdate struct {
	config
	hooks    []Hook
	mutation *ScanMutation
}

// Where appends a list predicates to the ScanUpdate builder.
func (_u *ScanUpdate) Where(ps ...predicate.Scan) *ScanUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScanUpdate) SetUpdatedAt(v time.Time) *ScanUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *ScanUpdate) SetBatchID(v string) *ScanUpdate {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *ScanUpdate) SetNillableBatchID(v *string) *ScanUpdate {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// ClearBatchID clears the value of the "batch_id" field.
func (_u *ScanUpdate) ClearBatchID() *ScanUpdate {
	_u.mutation.ClearBatchID()
	return _u
}

// SetPageTitle sets the "page_title" field.
func (_u *ScanUpdate) SetPageTitle(v string) *ScanUpdate {
	_u.mutation.SetPageTitle(v)
	return _u
}

// SetNillablePageTitle sets the "page_title" field if the given value is not nil.
func (_u *ScanUpdate) SetNillablePageTitle(v *string) *ScanUpdate {
	if v != nil {
		_u.SetPageTitle(*v)
	}
	return _u
}

// ClearPageTitle clears the value of the "page_title" field.
func (_u *ScanUpdate) ClearPageTitle() *ScanUpdate {
	_u.mutation.ClearPageTitle()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScanUpdate) SetStatus(v scan.Status) *ScanUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScanUpdate) SetNillableStatus(v *scan.Status) *ScanUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalIssues sets the "total_issues" field.
func (_u *ScanUpdate) SetTotalIssues(v int) *ScanUpdate {
	_u.mutation.ResetTotalIssues()
	_u.mutation.SetTotalIssues(v)
	return _u
}

// SetNillableTotalIssues sets the "total_issues" field if the given value is not nil.
func (_u *ScanUpdate) SetNillableTotalIssues(v *int) *ScanUpdate {
	if v != nil {
		_u.SetTotalIssues(*v)
	}
	return _u
}

// AddTotalIssues adds value to the "total_issues" field.
func (_u *ScanUpdate) AddTotalIssues(v int) *ScanUpdate {
	_u.mutation.AddTotalIssues(v)
	return _u
}

// SetCriticalIssues sets the "critical_issues" field.
func (_u *ScanUpdate) SetCriticalIssues(v int) *ScanUpdate {
	_u.mutation.ResetCriticalIssues()
	_u.mutation.SetCriticalIssues(v)
	return _u
}

// SetNillableCriticalIssues sets the "critical_issues" field if the given value is not nil.
func (_u *ScanUpdate) SetNillableCriticalIssues(v *int) *ScanUpdate {
	if v != nil {
		_u.SetCriticalIssues(*v)
	}
	return _u
}

// AddCriticalIssues adds value to the "critical_issues" field.
func (_u *ScanUpdate) AddCriticalIssues(v int) *ScanUpdate {
	_u.mutation.AddCriticalIssues(v)
	return _u
}

// SetSeriousIssues sets the "serious_issues" field.
func (_u *ScanUpdate) SetSeriousIssues(v int) *ScanUpdate {
	_u.mutation.ResetSeriousIssues()
	_u.mutation.SetSeriousIssues(v)
	return _u
}

// SetNillableSeriousIssues sets the "serious_issues" field if the given value is not nil.
func (_u *ScanUpdate) SetNillableSeriousIssues(v *int) *ScanUpdate {
	if v != nil {
		_u.SetSeriousIssues(*v)
	}
	return _u
}

// AddSeriousIssues adds value to the "serious_issues" field.
func (_u *ScanUpdate) AddSeriousIssues(v int) *ScanUpdate {
	_u.mutation.AddSeriousIssues(v)
	return _u
}

// SetModerateIssues sets the "moderate_issues" field.
func (_u *ScanUpdate) SetModerateIssues(v int) *ScanUpdate {
	_u.mutation.ResetModerateIssues()
	_u.mutation.SetModerateIssues(v)
	return _u
}

// SetNillableModerateIssues sets the "moderate_issues" field if the given value is not nil.
func (_u *ScanUpdate) SetNillableModerateIssues(v *int) *ScanUpdate {
	if v != nil {
		_u.SetModerateIssues(*v)
	}
	return _u
}

// AddModerateIssues adds value to the "moderate_issues" field.
func (_u *ScanUpdate) AddModerateIssues(v int) *ScanUpdate {
	_u.mutation.AddModerateIssues(v)
	return _u
}

// SetMinorIssues sets the "minor_issues" field.
func (_u *ScanUpdate) SetMinorIssues(v int) *ScanUpdate {
	_u.mutation.ResetMinorIssues()
	_u.mutation.SetMinorIssues(v)
	return _u
}

// SetNillableMinorIssues sets the "minor_issues" field if the given value is not nil.
func (_u *ScanUpdate) SetNillableMinorIssues(v *int) *ScanUpdate {
	if v != nil {
		_u.SetMinorIssues(*v)
	}
	return _u
}

// AddMinorIssues adds value to the "minor_issues" field.
func (_u *ScanUpdate) AddMinorIssues(v int) *ScanUpdate {
	_u.mutation.AddMinorIssues(v)
	return _u
}

// SetPassedChecks sets the "passed_checks" field.
func (_u *ScanUpdate) SetPassedChecks(v int) *ScanUpdate {
	_u.mutation.ResetPassedChecks()
	_u.mutation.SetPassedChecks(v)
	return _u
}

// SetNillablePassedChecks sets the "passed_checks" field if the given value is not nil.
func (_u *ScanUpdate) SetNillablePassedChecks(v *int) *ScanUpdate {
	if v != nil {
		_u.SetPassedChecks(*v)
	}
	return _u
}

// AddPassedChecks adds value to the "passed_checks" field.
func (_u *ScanUpdate) AddPassedChecks(v int) *ScanUpdate {
	_u.mutation.AddPassedChecks(v)
	return _u
}

// SetIssues sets the "issues" field.
func (_u *ScanUpdate) SetIssues(v []map[string]interface{}) *ScanUpdate {
	_u.mutation.SetIssues(v)
	return _u
}

// AppendIssues appends value to the "issues" field.
func (_u *ScanUpdate) AppendIssues(v []map[string]interface{}) *ScanUpdate {
	_u.mutation.AppendIssues(v)
	return _u
}

// ClearIssues clears the value of the "issues" field.
func (_u *ScanUpdate) ClearIssues() *ScanUpdate {
	_u.mutation.ClearIssues()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ScanUpdate) SetErrorMessage(v string) *ScanUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ScanUpdate) SetNillableErrorMessage(v *string) *ScanUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ScanUpdate) ClearErrorMessage() *ScanUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *ScanUpdate) SetJobID(v string) *ScanUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *ScanUpdate) SetNillableJobID(v *string) *ScanUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// ClearJobID clears the value of the "job_id" field.
func (_u *ScanUpdate) ClearJobID() *ScanUpdate {
	_u.mutation.ClearJobID()
	return _u
}

// SetContentSnapshot sets the "content_snapshot" field.
func (_u *ScanUpdate) SetContentSnapshot(v string) *ScanUpdate {
	_u.mutation.SetContentSnapshot(v)
	return _u
}

// SetNillableContentSnapshot sets the "content_snapshot" field if the given value is not nil.
func (_u *ScanUpdate) SetNillableContentSnapshot(v *string) *ScanUpdate {
	if v != nil {
		_u.SetContentSnapshot(*v)
	}
	return _u
}

// ClearContentSnapshot clears the value of the "content_snapshot" field.
func (_u *ScanUpdate) ClearContentSnapshot() *ScanUpdate {
	_u.mutation.ClearContentSnapshot()
	return _u
}

// SetAiEnabled sets the "ai_enabled" field.
func (_u *ScanUpdate) SetAiEnabled(v bool) *ScanUpdate {
	_u.mutation.SetAiEnabled(v)
	return _u
}

// SetNillableAiEnabled sets the "ai_enabled" field if the given value is not nil.
func (_u *ScanUpdate) SetNillableAiEnabled(v *bool) *ScanUpdate {
	if v != nil {
		_u.SetAiEnabled(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ScanUpdate) SetCompletedAt(v time.Time) *ScanUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ScanUpdate) SetNillableCompletedAt(v *time.Time) *ScanUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ScanUpdate) ClearCompletedAt() *ScanUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the ScanMutation object of the builder.
func (_u *ScanUpdate) Mutation() *ScanMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScanUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScanUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScanUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScanUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScanUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := scan.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScanUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := scan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Scan.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalIssues(); ok {
		if err := scan.TotalIssuesValidator(v); err != nil {
			return &ValidationError{Name: "total_issues", err: fmt.Errorf(`ent: validator failed for field "Scan.total_issues": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CriticalIssues(); ok {
		if err := scan.CriticalIssuesValidator(v); err != nil {
			return &ValidationError{Name: "critical_issues", err: fmt.Errorf(`ent: validator failed for field "Scan.critical_issues": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SeriousIssues(); ok {
		if err := scan.SeriousIssuesValidator(v); err != nil {
			return &ValidationError{Name: "serious_issues", err: fmt.Errorf(`ent: validator failed for field "Scan.serious_issues": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModerateIssues(); ok {
		if err := scan.ModerateIssuesValidator(v); err != nil {
			return &ValidationError{Name: "moderate_issues", err: fmt.Errorf(`ent: validator failed for field "Scan.moderate_issues": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MinorIssues(); ok {
		if err := scan.MinorIssuesValidator(v); err != nil {
			return &ValidationError{Name: "minor_issues", err: fmt.Errorf(`ent: validator failed for field "Scan.minor_issues": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PassedChecks(); ok {
		if err := scan.PassedChecksValidator(v); err != nil {
			return &ValidationError{Name: "passed_checks", err: fmt.Errorf(`ent: validator failed for field "Scan.passed_checks": %w`, err)}
		}
	}
	return nil
}

func (_u *ScanUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scan.Table, scan.Columns, sqlgraph.NewFieldSpec(scan.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(scan.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.BatchID(); ok {
		_spec.SetField(scan.FieldBatchID, field.TypeString, value)
	}
	if _u.mutation.BatchIDCleared() {
		_spec.ClearField(scan.FieldBatchID, field.TypeString)
	}
	if value, ok := _u.mutation.PageTitle(); ok {
		_spec.SetField(scan.FieldPageTitle, field.TypeString, value)
	}
	if _u.mutation.PageTitleCleared() {
		_spec.ClearField(scan.FieldPageTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scan.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalIssues(); ok {
		_spec.SetField(scan.FieldTotalIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalIssues(); ok {
		_spec.AddField(scan.FieldTotalIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CriticalIssues(); ok {
		_spec.SetField(scan.FieldCriticalIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCriticalIssues(); ok {
		_spec.AddField(scan.FieldCriticalIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SeriousIssues(); ok {
		_spec.SetField(scan.FieldSeriousIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeriousIssues(); ok {
		_spec.AddField(scan.FieldSeriousIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ModerateIssues(); ok {
		_spec.SetField(scan.FieldModerateIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedModerateIssues(); ok {
		_spec.AddField(scan.FieldModerateIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MinorIssues(); ok {
		_spec.SetField(scan.FieldMinorIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinorIssues(); ok {
		_spec.AddField(scan.FieldMinorIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PassedChecks(); ok {
		_spec.SetField(scan.FieldPassedChecks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPassedChecks(); ok {
		_spec.AddField(scan.FieldPassedChecks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Issues(); ok {
		_spec.SetField(scan.FieldIssues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIssues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scan.FieldIssues, value)
		})
	}
	if _u.mutation.IssuesCleared() {
		_spec.ClearField(scan.FieldIssues, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(scan.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(scan.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(scan.FieldJobID, field.TypeString, value)
	}
	if _u.mutation.JobIDCleared() {
		_spec.ClearField(scan.FieldJobID, field.TypeString)
	}
	if value, ok := _u.mutation.ContentSnapshot(); ok {
		_spec.SetField(scan.FieldContentSnapshot, field.TypeString, value)
	}
	if _u.mutation.ContentSnapshotCleared() {
		_spec.ClearField(scan.FieldContentSnapshot, field.TypeString)
	}
	if value, ok := _u.mutation.AiEnabled(); ok {
		_spec.SetField(scan.FieldAiEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(scan.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(scan.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScanUpdateOne is the builder for updating a single Scan entity.
type ScanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScanMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScanUpdateOne) SetUpdatedAt(v time.Time) *ScanUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *ScanUpdateOne) SetBatchID(v string) *ScanUpdateOne {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *ScanUpdateOne) SetNillableBatchID(v *string) *ScanUpdateOne {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// ClearBatchID clears the value of the "batch_id" field.
func (_u *ScanUpdateOne) ClearBatchID() *ScanUpdateOne {
	_u.mutation.ClearBatchID()
	return _u
}

// SetPageTitle sets the "page_title" field.
func (_u *ScanUpdateOne) SetPageTitle(v string) *ScanUpdateOne {
	_u.mutation.SetPageTitle(v)
	return _u
}

// SetNillablePageTitle sets the "page_title" field if the given value is not nil.
func (_u *ScanUpdateOne) SetNillablePageTitle(v *string) *ScanUpdateOne {
	if v != nil {
		_u.SetPageTitle(*v)
	}
	return _u
}

// ClearPageTitle clears the value of the "page_title" field.
func (_u *ScanUpdateOne) ClearPageTitle() *ScanUpdateOne {
	_u.mutation.ClearPageTitle()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScanUpdateOne) SetStatus(v scan.Status) *ScanUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScanUpdateOne) SetNillableStatus(v *scan.Status) *ScanUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalIssues sets the "total_issues" field.
func (_u *ScanUpdateOne) SetTotalIssues(v int) *ScanUpdateOne {
	_u.mutation.ResetTotalIssues()
	_u.mutation.SetTotalIssues(v)
	return _u
}

// SetNillableTotalIssues sets the "total_issues" field if the given value is not nil.
func (_u *ScanUpdateOne) SetNillableTotalIssues(v *int) *ScanUpdateOne {
	if v != nil {
		_u.SetTotalIssues(*v)
	}
	return _u
}

// AddTotalIssues adds value to the "total_issues" field.
func (_u *ScanUpdateOne) AddTotalIssues(v int) *ScanUpdateOne {
	_u.mutation.AddTotalIssues(v)
	return _u
}

// SetCriticalIssues sets the "critical_issues" field.
func (_u *ScanUpdateOne) SetCriticalIssues(v int) *ScanUpdateOne {
	_u.mutation.ResetCriticalIssues()
	_u.mutation.SetCriticalIssues(v)
	return _u
}

// SetNillableCriticalIssues sets the "critical_issues" field if the given value is not nil.
func (_u *ScanUpdateOne) SetNillableCriticalIssues(v *int) *ScanUpdateOne {
	if v != nil {
		_u.SetCriticalIssues(*v)
	}
	return _u
}

// AddCriticalIssues adds value to the "critical_issues" field.
func (_u *ScanUpdateOne) AddCriticalIssues(v int) *ScanUpdateOne {
	_u.mutation.AddCriticalIssues(v)
	return _u
}

// SetSeriousIssues sets the "serious_issues" field.
func (_u *ScanUpdateOne) SetSeriousIssues(v int) *ScanUpdateOne {
	_u.mutation.ResetSeriousIssues()
	_u.mutation.SetSeriousIssues(v)
	return _u
}

// SetNillableSeriousIssues sets the "serious_issues" field if the given value is not nil.
func (_u *ScanUpdateOne) SetNillableSeriousIssues(v *int) *ScanUpdateOne {
	if v != nil {
		_u.SetSeriousIssues(*v)
	}
	return _u
}

// AddSeriousIssues adds value to the "serious_issues" field.
func (_u *ScanUpdateOne) AddSeriousIssues(v int) *ScanUpdateOne {
	_u.mutation.AddSeriousIssues(v)
	return _u
}

// SetModerateIssues sets the "moderate_issues" field.
func (_u *ScanUpdateOne) SetModerateIssues(v int) *ScanUpdateOne {
	_u.mutation.ResetModerateIssues()
	_u.mutation.SetModerateIssues(v)
	return _u
}

// SetNillableModerateIssues sets the "moderate_issues" field if the given value is not nil.
func (_u *ScanUpdateOne) SetNillableModerateIssues(v *int) *ScanUpdateOne {
	if v != nil {
		_u.SetModerateIssues(*v)
	}
	return _u
}

// AddModerateIssues adds value to the "moderate_issues" field.
func (_u *ScanUpdateOne) AddModerateIssues(v int) *ScanUpdateOne {
	_u.mutation.AddModerateIssues(v)
	return _u
}

// SetMinorIssues sets the "minor_issues" field.
func (_u *ScanUpdateOne) SetMinorIssues(v int) *ScanUpdateOne {
	_u.mutation.ResetMinorIssues()
	_u.mutation.SetMinorIssues(v)
	return _u
}

// SetNillableMinorIssues sets the "minor_issues" field if the given value is not nil.
func (_u *ScanUpdateOne) SetNillableMinorIssues(v *int) *ScanUpdateOne {
	if v != nil {
		_u.SetMinorIssues(*v)
	}
	return _u
}

// AddMinorIssues adds value to the "minor_issues" field.
func (_u *ScanUpdateOne) AddMinorIssues(v int) *ScanUpdateOne {
	_u.mutation.AddMinorIssues(v)
	return _u
}

// SetPassedChecks sets the "passed_checks" field.
func (_u *ScanUpdateOne) SetPassedChecks(v int) *ScanUpdateOne {
	_u.mutation.ResetPassedChecks()
	_u.mutation.SetPassedChecks(v)
	return _u
}

// SetNillablePassedChecks sets the "passed_checks" field if the given value is not nil.
func (_u *ScanUpdateOne) SetNillablePassedChecks(v *int) *ScanUpdateOne {
	if v != nil {
		_u.SetPassedChecks(*v)
	}
	return _u
}

// AddPassedChecks adds value to the "passed_checks" field.
func (_u *ScanUpdateOne) AddPassedChecks(v int) *ScanUpdateOne {
	_u.mutation.AddPassedChecks(v)
	return _u
}

// SetIssues sets the "issues" field.
func (_u *ScanUpdateOne) SetIssues(v []map[string]interface{}) *ScanUpdateOne {
	_u.mutation.SetIssues(v)
	return _u
}

// AppendIssues appends value to the "issues" field.
func (_u *ScanUpdateOne) AppendIssues(v []map[string]interface{}) *ScanUpdateOne {
	_u.mutation.AppendIssues(v)
	return _u
}

// ClearIssues clears the value of the "issues" field.
func (_u *ScanUpdateOne) ClearIssues() *ScanUpdateOne {
	_u.mutation.ClearIssues()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ScanUpdateOne) SetErrorMessage(v string) *ScanUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ScanUpdateOne) SetNillableErrorMessage(v *string) *ScanUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ScanUpdateOne) ClearErrorMessage() *ScanUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *ScanUpdateOne) SetJobID(v string) *ScanUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *ScanUpdateOne) SetNillableJobID(v *string) *ScanUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// ClearJobID clears the value of the "job_id" field.
func (_u *ScanUpdateOne) ClearJobID() *ScanUpdateOne {
	_u.mutation.ClearJobID()
	return _u
}

// SetContentSnapshot sets the "content_snapshot" field.
func (_u *ScanUpdateOne) SetContentSnapshot(v string) *ScanUpdateOne {
	_u.mutation.SetContentSnapshot(v)
	return _u
}

// SetNillableContentSnapshot sets the "content_snapshot" field if the given value is not nil.
func (_u *ScanUpdateOne) SetNillableContentSnapshot(v *string) *ScanUpdateOne {
	if v != nil {
		_u.SetContentSnapshot(*v)
	}
	return _u
}

// ClearContentSnapshot clears the value of the "content_snapshot" field.
func (_u *ScanUpdateOne) ClearContentSnapshot() *ScanUpdateOne {
	_u.mutation.ClearContentSnapshot()
	return _u
}

// SetAiEnabled sets the "ai_enabled" field.
func (_u *ScanUpdateOne) SetAiEnabled(v bool) *ScanUpdateOne {
	_u.mutation.SetAiEnabled(v)
	return _u
}

// SetNillableAiEnabled sets the "ai_enabled" field if the given value is not nil.
func (_u *ScanUpdateOne) SetNillableAiEnabled(v *bool) *ScanUpdateOne {
	if v != nil {
		_u.SetAiEnabled(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ScanUpdateOne) SetCompletedAt(v time.Time) *ScanUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ScanUpdateOne) SetNillableCompletedAt(v *time.Time) *ScanUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ScanUpdateOne) ClearCompletedAt() *ScanUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the ScanMutation object of the builder.
func (_u *ScanUpdateOne) Mutation() *ScanMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScanUpdate builder.
func (_u *ScanUpdateOne) Where(ps ...predicate.Scan) *ScanUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScanUpdateOne) Select(field string, fields ...string) *ScanUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Scan entity.
func (_u *ScanUpdateOne) Save(ctx context.Context) (*Scan, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScanUpdateOne) SaveX(ctx context.Context) *Scan {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScanUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScanUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScanUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := scan.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScanUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := scan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Scan.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalIssues(); ok {
		if err := scan.TotalIssuesValidator(v); err != nil {
			return &ValidationError{Name: "total_issues", err: fmt.Errorf(`ent: validator failed for field "Scan.total_issues": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CriticalIssues(); ok {
		if err := scan.CriticalIssuesValidator(v); err != nil {
			return &ValidationError{Name: "critical_issues", err: fmt.Errorf(`ent: validator failed for field "Scan.critical_issues": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SeriousIssues(); ok {
		if err := scan.SeriousIssuesValidator(v); err != nil {
			return &ValidationError{Name: "serious_issues", err: fmt.Errorf(`ent: validator failed for field "Scan.serious_issues": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModerateIssues(); ok {
		if err := scan.ModerateIssuesValidator(v); err != nil {
			return &ValidationError{Name: "moderate_issues", err: fmt.Errorf(`ent: validator failed for field "Scan.moderate_issues": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MinorIssues(); ok {
		if err := scan.MinorIssuesValidator(v); err != nil {
			return &ValidationError{Name: "minor_issues", err: fmt.Errorf(`ent: validator failed for field "Scan.minor_issues": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PassedChecks(); ok {
		if err := scan.PassedChecksValidator(v); err != nil {
			return &ValidationError{Name: "passed_checks", err: fmt.Errorf(`ent: validator failed for field "Scan.passed_checks": %w`, err)}
		}
	}
	return nil
}

func (_u *ScanUpdateOne) sqlSave(ctx context.Context) (_node *Scan, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scan.Table, scan.Columns, sqlgraph.NewFieldSpec(scan.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Scan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scan.FieldID)
		for _, f := range fields {
			if !scan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scan.FieldID {
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
		_spec.SetField(scan.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.BatchID(); ok {
		_spec.SetField(scan.FieldBatchID, field.TypeString, value)
	}
	if _u.mutation.BatchIDCleared() {
		_spec.ClearField(scan.FieldBatchID, field.TypeString)
	}
	if value, ok := _u.mutation.PageTitle(); ok {
		_spec.SetField(scan.FieldPageTitle, field.TypeString, value)
	}
	if _u.mutation.PageTitleCleared() {
		_spec.ClearField(scan.FieldPageTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scan.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalIssues(); ok {
		_spec.SetField(scan.FieldTotalIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalIssues(); ok {
		_spec.AddField(scan.FieldTotalIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CriticalIssues(); ok {
		_spec.SetField(scan.FieldCriticalIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCriticalIssues(); ok {
		_spec.AddField(scan.FieldCriticalIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SeriousIssues(); ok {
		_spec.SetField(scan.FieldSeriousIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeriousIssues(); ok {
		_spec.AddField(scan.FieldSeriousIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ModerateIssues(); ok {
		_spec.SetField(scan.FieldModerateIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedModerateIssues(); ok {
		_spec.AddField(scan.FieldModerateIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MinorIssues(); ok {
		_spec.SetField(scan.FieldMinorIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinorIssues(); ok {
		_spec.AddField(scan.FieldMinorIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PassedChecks(); ok {
		_spec.SetField(scan.FieldPassedChecks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPassedChecks(); ok {
		_spec.AddField(scan.FieldPassedChecks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Issues(); ok {
		_spec.SetField(scan.FieldIssues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIssues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scan.FieldIssues, value)
		})
	}
	if _u.mutation.IssuesCleared() {
		_spec.ClearField(scan.FieldIssues, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(scan.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(scan.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(scan.FieldJobID, field.TypeString, value)
	}
	if _u.mutation.JobIDCleared() {
		_spec.ClearField(scan.FieldJobID, field.TypeString)
	}
	if value, ok := _u.mutation.ContentSnapshot(); ok {
		_spec.SetField(scan.FieldContentSnapshot, field.TypeString, value)
	}
	if _u.mutation.ContentSnapshotCleared() {
		_spec.ClearField(scan.FieldContentSnapshot, field.TypeString)
	}
	if value, ok := _u.mutation.AiEnabled(); ok {
		_spec.SetField(scan.FieldAiEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(scan.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(scan.FieldCompletedAt, field.TypeTime)
	}
	_node = &Scan{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
