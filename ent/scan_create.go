// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"a11ysentinel.io/sentinel/ent/scan"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ScanCreate is the builder for creating a Scan entity.
type ScanCreate struct {
	config
	mutation *ScanMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScanCreate) SetCreatedAt(v time.Time) *ScanCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScanCreate) SetNillableCreatedAt(v *time.Time) *ScanCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ScanCreate) SetUpdatedAt(v time.Time) *ScanCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ScanCreate) SetNillableUpdatedAt(v *time.Time) *ScanCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetBatchID sets the "batch_id" field.
func (_c *ScanCreate) SetBatchID(v string) *ScanCreate {
	_c.mutation.SetBatchID(v)
	return _c
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_c *ScanCreate) SetNillableBatchID(v *string) *ScanCreate {
	if v != nil {
		_c.SetBatchID(*v)
	}
	return _c
}

// SetURL sets the "url" field.
func (_c *ScanCreate) SetURL(v string) *ScanCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetPageTitle sets the "page_title" field.
func (_c *ScanCreate) SetPageTitle(v string) *ScanCreate {
	_c.mutation.SetPageTitle(v)
	return _c
}

// SetNillablePageTitle sets the "page_title" field if the given value is not nil.
func (_c *ScanCreate) SetNillablePageTitle(v *string) *ScanCreate {
	if v != nil {
		_c.SetPageTitle(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ScanCreate) SetStatus(v scan.Status) *ScanCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ScanCreate) SetNillableStatus(v *scan.Status) *ScanCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTotalIssues sets the "total_issues" field.
func (_c *ScanCreate) SetTotalIssues(v int) *ScanCreate {
	_c.mutation.SetTotalIssues(v)
	return _c
}

// SetNillableTotalIssues sets the "total_issues" field if the given value is not nil.
func (_c *ScanCreate) SetNillableTotalIssues(v *int) *ScanCreate {
	if v != nil {
		_c.SetTotalIssues(*v)
	}
	return _c
}

// SetCriticalIssues sets the "critical_issues" field.
func (_c *ScanCreate) SetCriticalIssues(v int) *ScanCreate {
	_c.mutation.SetCriticalIssues(v)
	return _c
}

// SetNillableCriticalIssues sets the "critical_issues" field if the given value is not nil.
func (_c *ScanCreate) SetNillableCriticalIssues(v *int) *ScanCreate {
	if v != nil {
		_c.SetCriticalIssues(*v)
	}
	return _c
}

// SetSeriousIssues sets the "serious_issues" field.
func (_c *ScanCreate) SetSeriousIssues(v int) *ScanCreate {
	_c.mutation.SetSeriousIssues(v)
	return _c
}

// SetNillableSeriousIssues sets the "serious_issues" field if the given value is not nil.
func (_c *ScanCreate) SetNillableSeriousIssues(v *int) *ScanCreate {
	if v != nil {
		_c.SetSeriousIssues(*v)
	}
	return _c
}

// SetModerateIssues sets the "moderate_issues" field.
func (_c *ScanCreate) SetModerateIssues(v int) *ScanCreate {
	_c.mutation.SetModerateIssues(v)
	return _c
}

// SetNillableModerateIssues sets the "moderate_issues" field if the given value is not nil.
func (_c *ScanCreate) SetNillableModerateIssues(v *int) *ScanCreate {
	if v != nil {
		_c.SetModerateIssues(*v)
	}
	return _c
}

// SetMinorIssues sets the "minor_issues" field.
func (_c *ScanCreate) SetMinorIssues(v int) *ScanCreate {
	_c.mutation.SetMinorIssues(v)
	return _c
}

// SetNillableMinorIssues sets the "minor_issues" field if the given value is not nil.
func (_c *ScanCreate) SetNillableMinorIssues(v *int) *ScanCreate {
	if v != nil {
		_c.SetMinorIssues(*v)
	}
	return _c
}

// SetPassedChecks sets the "passed_checks" field.
func (_c *ScanCreate) SetPassedChecks(v int) *ScanCreate {
	_c.mutation.SetPassedChecks(v)
	return _c
}

// SetNillablePassedChecks sets the "passed_checks" field if the given value is not nil.
func (_c *ScanCreate) SetNillablePassedChecks(v *int) *ScanCreate {
	if v != nil {
		_c.SetPassedChecks(*v)
	}
	return _c
}

// SetIssues sets the "issues" field.
func (_c *ScanCreate) SetIssues(v []map[string]interface{}) *ScanCreate {
	_c.mutation.SetIssues(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ScanCreate) SetErrorMessage(v string) *ScanCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ScanCreate) SetNillableErrorMessage(v *string) *ScanCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetJobID sets the "job_id" field.
func (_c *ScanCreate) SetJobID(v string) *ScanCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_c *ScanCreate) SetNillableJobID(v *string) *ScanCreate {
	if v != nil {
		_c.SetJobID(*v)
	}
	return _c
}

// SetContentSnapshot sets the "content_snapshot" field.
func (_c *ScanCreate) SetContentSnapshot(v string) *ScanCreate {
	_c.mutation.SetContentSnapshot(v)
	return _c
}

// SetNillableContentSnapshot sets the "content_snapshot" field if the given value is not nil.
func (_c *ScanCreate) SetNillableContentSnapshot(v *string) *ScanCreate {
	if v != nil {
		_c.SetContentSnapshot(*v)
	}
	return _c
}

// SetAiEnabled sets the "ai_enabled" field.
func (_c *ScanCreate) SetAiEnabled(v bool) *ScanCreate {
	_c.mutation.SetAiEnabled(v)
	return _c
}

// SetNillableAiEnabled sets the "ai_enabled" field if the given value is not nil.
func (_c *ScanCreate) SetNillableAiEnabled(v *bool) *ScanCreate {
	if v != nil {
		_c.SetAiEnabled(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ScanCreate) SetCompletedAt(v time.Time) *ScanCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ScanCreate) SetNillableCompletedAt(v *time.Time) *ScanCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScanCreate) SetID(v string) *ScanCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ScanMutation object of the builder.
func (_c *ScanCreate) Mutation() *ScanMutation {
	return _c.mutation
}

// Save creates the Scan in the database.
func (_c *ScanCreate) Save(ctx context.Context) (*Scan, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScanCreate) SaveX(ctx context.Context) *Scan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScanCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScanCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScanCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := scan.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := scan.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := scan.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TotalIssues(); !ok {
		v := scan.DefaultTotalIssues
		_c.mutation.SetTotalIssues(v)
	}
	if _, ok := _c.mutation.CriticalIssues(); !ok {
		v := scan.DefaultCriticalIssues
		_c.mutation.SetCriticalIssues(v)
	}
	if _, ok := _c.mutation.SeriousIssues(); !ok {
		v := scan.DefaultSeriousIssues
		_c.mutation.SetSeriousIssues(v)
	}
	if _, ok := _c.mutation.ModerateIssues(); !ok {
		v := scan.DefaultModerateIssues
		_c.mutation.SetModerateIssues(v)
	}
	if _, ok := _c.mutation.MinorIssues(); !ok {
		v := scan.DefaultMinorIssues
		_c.mutation.SetMinorIssues(v)
	}
	if _, ok := _c.mutation.PassedChecks(); !ok {
		v := scan.DefaultPassedChecks
		_c.mutation.SetPassedChecks(v)
	}
	if _, ok := _c.mutation.AiEnabled(); !ok {
		v := scan.DefaultAiEnabled
		_c.mutation.SetAiEnabled(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScanCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Scan.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Scan.updated_at"`)}
	}
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "Scan.url"`)}
	}
	if v, ok := _c.mutation.URL(); ok {
		if err := scan.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "Scan.url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Scan.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := scan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Scan.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalIssues(); !ok {
		return &ValidationError{Name: "total_issues", err: errors.New(`ent: missing required field "Scan.total_issues"`)}
	}
	if v, ok := _c.mutation.TotalIssues(); ok {
		if err := scan.TotalIssuesValidator(v); err != nil {
			return &ValidationError{Name: "total_issues", err: fmt.Errorf(`ent: validator failed for field "Scan.total_issues": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CriticalIssues(); !ok {
		return &ValidationError{Name: "critical_issues", err: errors.New(`ent: missing required field "Scan.critical_issues"`)}
	}
	if v, ok := _c.mutation.CriticalIssues(); ok {
		if err := scan.CriticalIssuesValidator(v); err != nil {
			return &ValidationError{Name: "critical_issues", err: fmt.Errorf(`ent: validator failed for field "Scan.critical_issues": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SeriousIssues(); !ok {
		return &ValidationError{Name: "serious_issues", err: errors.New(`ent: missing required field "Scan.serious_issues"`)}
	}
	if v, ok := _c.mutation.SeriousIssues(); ok {
		if err := scan.SeriousIssuesValidator(v); err != nil {
			return &ValidationError{Name: "serious_issues", err: fmt.Errorf(`ent: validator failed for field "Scan.serious_issues": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModerateIssues(); !ok {
		return &ValidationError{Name: "moderate_issues", err: errors.New(`ent: missing required field "Scan.moderate_issues"`)}
	}
	if v, ok := _c.mutation.ModerateIssues(); ok {
		if err := scan.ModerateIssuesValidator(v); err != nil {
			return &ValidationError{Name: "moderate_issues", err: fmt.Errorf(`ent: validator failed for field "Scan.moderate_issues": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MinorIssues(); !ok {
		return &ValidationError{Name: "minor_issues", err: errors.New(`ent: missing required field "Scan.minor_issues"`)}
	}
	if v, ok := _c.mutation.MinorIssues(); ok {
		if err := scan.MinorIssuesValidator(v); err != nil {
			return &ValidationError{Name: "minor_issues", err: fmt.Errorf(`ent: validator failed for field "Scan.minor_issues": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PassedChecks(); !ok {
		return &ValidationError{Name: "passed_checks", err: errors.New(`ent: missing required field "Scan.passed_checks"`)}
	}
	if v, ok := _c.mutation.PassedChecks(); ok {
		if err := scan.PassedChecksValidator(v); err != nil {
			return &ValidationError{Name: "passed_checks", err: fmt.Errorf(`ent: validator failed for field "Scan.passed_checks": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AiEnabled(); !ok {
		return &ValidationError{Name: "ai_enabled", err: errors.New(`ent: missing required field "Scan.ai_enabled"`)}
	}
	return nil
}

func (_c *ScanCreate) sqlSave(ctx context.Context) (*Scan, error) {
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
			return nil, fmt.Errorf("unexpected Scan.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScanCreate) createSpec() (*Scan, *sqlgraph.CreateSpec) {
	var (
		_node = &Scan{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scan.Table, sqlgraph.NewFieldSpec(scan.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(scan.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(scan.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.BatchID(); ok {
		_spec.SetField(scan.FieldBatchID, field.TypeString, value)
		_node.BatchID = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(scan.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.PageTitle(); ok {
		_spec.SetField(scan.FieldPageTitle, field.TypeString, value)
		_node.PageTitle = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(scan.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TotalIssues(); ok {
		_spec.SetField(scan.FieldTotalIssues, field.TypeInt, value)
		_node.TotalIssues = value
	}
	if value, ok := _c.mutation.CriticalIssues(); ok {
		_spec.SetField(scan.FieldCriticalIssues, field.TypeInt, value)
		_node.CriticalIssues = value
	}
	if value, ok := _c.mutation.SeriousIssues(); ok {
		_spec.SetField(scan.FieldSeriousIssues, field.TypeInt, value)
		_node.SeriousIssues = value
	}
	if value, ok := _c.mutation.ModerateIssues(); ok {
		_spec.SetField(scan.FieldModerateIssues, field.TypeInt, value)
		_node.ModerateIssues = value
	}
	if value, ok := _c.mutation.MinorIssues(); ok {
		_spec.SetField(scan.FieldMinorIssues, field.TypeInt, value)
		_node.MinorIssues = value
	}
	if value, ok := _c.mutation.PassedChecks(); ok {
		_spec.SetField(scan.FieldPassedChecks, field.TypeInt, value)
		_node.PassedChecks = value
	}
	if value, ok := _c.mutation.Issues(); ok {
		_spec.SetField(scan.FieldIssues, field.TypeJSON, value)
		_node.Issues = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(scan.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.JobID(); ok {
		_spec.SetField(scan.FieldJobID, field.TypeString, value)
		_node.JobID = value
	}
	if value, ok := _c.mutation.ContentSnapshot(); ok {
		_spec.SetField(scan.FieldContentSnapshot, field.TypeString, value)
		_node.ContentSnapshot = value
	}
	if value, ok := _c.mutation.AiEnabled(); ok {
		_spec.SetField(scan.FieldAiEnabled, field.TypeBool, value)
		_node.AiEnabled = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(scan.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// ScanCreateBulk is the builder for creating many Scan entities in bulk.
type ScanCreateBulk struct {
	config
	err      error
	builders []*ScanCreate
}

// Save creates the Scan entities in the database.
func (_c *ScanCreateBulk) Save(ctx context.Context) ([]*Scan, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Scan, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScanMutation)
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
func (_c *ScanCreateBulk) SaveX(ctx context.Context) []*Scan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScanCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScanCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
