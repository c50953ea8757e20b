// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"a11ysentinel.io/sentinel/ent/batch"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// BatchCreate is the builder for creating a Batch entity.
type BatchCreate struct {
	config
	mutation *BatchMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *BatchCreate) SetCreatedAt(v time.Time) *BatchCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BatchCreate) SetNillableCreatedAt(v *time.Time) *BatchCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BatchCreate) SetUpdatedAt(v time.Time) *BatchCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BatchCreate) SetNillableUpdatedAt(v *time.Time) *BatchCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetHomepageURL sets the "homepage_url" field.
func (_c *BatchCreate) SetHomepageURL(v string) *BatchCreate {
	_c.mutation.SetHomepageURL(v)
	return _c
}

// SetWcagLevel sets the "wcag_level" field.
func (_c *BatchCreate) SetWcagLevel(v batch.WcagLevel) *BatchCreate {
	_c.mutation.SetWcagLevel(v)
	return _c
}

// SetNillableWcagLevel sets the "wcag_level" field if the given value is not nil.
func (_c *BatchCreate) SetNillableWcagLevel(v *batch.WcagLevel) *BatchCreate {
	if v != nil {
		_c.SetWcagLevel(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *BatchCreate) SetStatus(v batch.Status) *BatchCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *BatchCreate) SetNillableStatus(v *batch.Status) *BatchCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTotalUrls sets the "total_urls" field.
func (_c *BatchCreate) SetTotalUrls(v int) *BatchCreate {
	_c.mutation.SetTotalUrls(v)
	return _c
}

// SetCompletedCount sets the "completed_count" field.
func (_c *BatchCreate) SetCompletedCount(v int) *BatchCreate {
	_c.mutation.SetCompletedCount(v)
	return _c
}

// SetNillableCompletedCount sets the "completed_count" field if the given value is not nil.
func (_c *BatchCreate) SetNillableCompletedCount(v *int) *BatchCreate {
	if v != nil {
		_c.SetCompletedCount(*v)
	}
	return _c
}

// SetFailedCount sets the "failed_count" field.
func (_c *BatchCreate) SetFailedCount(v int) *BatchCreate {
	_c.mutation.SetFailedCount(v)
	return _c
}

// SetNillableFailedCount sets the "failed_count" field if the given value is not nil.
func (_c *BatchCreate) SetNillableFailedCount(v *int) *BatchCreate {
	if v != nil {
		_c.SetFailedCount(*v)
	}
	return _c
}

// SetTotalIssues sets the "total_issues" field.
func (_c *BatchCreate) SetTotalIssues(v int) *BatchCreate {
	_c.mutation.SetTotalIssues(v)
	return _c
}

// SetNillableTotalIssues sets the "total_issues" field if the given value is not nil.
func (_c *BatchCreate) SetNillableTotalIssues(v *int) *BatchCreate {
	if v != nil {
		_c.SetTotalIssues(*v)
	}
	return _c
}

// SetCriticalIssues sets the "critical_issues" field.
func (_c *BatchCreate) SetCriticalIssues(v int) *BatchCreate {
	_c.mutation.SetCriticalIssues(v)
	return _c
}

// SetNillableCriticalIssues sets the "critical_issues" field if the given value is not nil.
func (_c *BatchCreate) SetNillableCriticalIssues(v *int) *BatchCreate {
	if v != nil {
		_c.SetCriticalIssues(*v)
	}
	return _c
}

// SetSeriousIssues sets the "serious_issues" field.
func (_c *BatchCreate) SetSeriousIssues(v int) *BatchCreate {
	_c.mutation.SetSeriousIssues(v)
	return _c
}

// SetNillableSeriousIssues sets the "serious_issues" field if the given value is not nil.
func (_c *BatchCreate) SetNillableSeriousIssues(v *int) *BatchCreate {
	if v != nil {
		_c.SetSeriousIssues(*v)
	}
	return _c
}

// SetModerateIssues sets the "moderate_issues" field.
func (_c *BatchCreate) SetModerateIssues(v int) *BatchCreate {
	_c.mutation.SetModerateIssues(v)
	return _c
}

// SetNillableModerateIssues sets the "moderate_issues" field if the given value is not nil.
func (_c *BatchCreate) SetNillableModerateIssues(v *int) *BatchCreate {
	if v != nil {
		_c.SetModerateIssues(*v)
	}
	return _c
}

// SetMinorIssues sets the "minor_issues" field.
func (_c *BatchCreate) SetMinorIssues(v int) *BatchCreate {
	_c.mutation.SetMinorIssues(v)
	return _c
}

// SetNillableMinorIssues sets the "minor_issues" field if the given value is not nil.
func (_c *BatchCreate) SetNillableMinorIssues(v *int) *BatchCreate {
	if v != nil {
		_c.SetMinorIssues(*v)
	}
	return _c
}

// SetPassedChecks sets the "passed_checks" field.
func (_c *BatchCreate) SetPassedChecks(v int) *BatchCreate {
	_c.mutation.SetPassedChecks(v)
	return _c
}

// SetNillablePassedChecks sets the "passed_checks" field if the given value is not nil.
func (_c *BatchCreate) SetNillablePassedChecks(v *int) *BatchCreate {
	if v != nil {
		_c.SetPassedChecks(*v)
	}
	return _c
}

// SetAiEnabled sets the "ai_enabled" field.
func (_c *BatchCreate) SetAiEnabled(v bool) *BatchCreate {
	_c.mutation.SetAiEnabled(v)
	return _c
}

// SetNillableAiEnabled sets the "ai_enabled" field if the given value is not nil.
func (_c *BatchCreate) SetNillableAiEnabled(v *bool) *BatchCreate {
	if v != nil {
		_c.SetAiEnabled(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *BatchCreate) SetCreatedBy(v string) *BatchCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *BatchCreate) SetCompletedAt(v time.Time) *BatchCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *BatchCreate) SetNillableCompletedAt(v *time.Time) *BatchCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCancelledAt sets the "cancelled_at" field.
func (_c *BatchCreate) SetCancelledAt(v time.Time) *BatchCreate {
	_c.mutation.SetCancelledAt(v)
	return _c
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_c *BatchCreate) SetNillableCancelledAt(v *time.Time) *BatchCreate {
	if v != nil {
		_c.SetCancelledAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BatchCreate) SetID(v string) *BatchCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the BatchMutation object of the builder.
func (_c *BatchCreate) Mutation() *BatchMutation {
	return _c.mutation
}

// Save creates the Batch in the database.
func (_c *BatchCreate) Save(ctx context.Context) (*Batch, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BatchCreate) SaveX(ctx context.Context) *Batch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BatchCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BatchCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BatchCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := batch.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := batch.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.WcagLevel(); !ok {
		v := batch.DefaultWcagLevel
		_c.mutation.SetWcagLevel(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := batch.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CompletedCount(); !ok {
		v := batch.DefaultCompletedCount
		_c.mutation.SetCompletedCount(v)
	}
	if _, ok := _c.mutation.FailedCount(); !ok {
		v := batch.DefaultFailedCount
		_c.mutation.SetFailedCount(v)
	}
	if _, ok := _c.mutation.TotalIssues(); !ok {
		v := batch.DefaultTotalIssues
		_c.mutation.SetTotalIssues(v)
	}
	if _, ok := _c.mutation.CriticalIssues(); !ok {
		v := batch.DefaultCriticalIssues
		_c.mutation.SetCriticalIssues(v)
	}
	if _, ok := _c.mutation.SeriousIssues(); !ok {
		v := batch.DefaultSeriousIssues
		_c.mutation.SetSeriousIssues(v)
	}
	if _, ok := _c.mutation.ModerateIssues(); !ok {
		v := batch.DefaultModerateIssues
		_c.mutation.SetModerateIssues(v)
	}
	if _, ok := _c.mutation.MinorIssues(); !ok {
		v := batch.DefaultMinorIssues
		_c.mutation.SetMinorIssues(v)
	}
	if _, ok := _c.mutation.PassedChecks(); !ok {
		v := batch.DefaultPassedChecks
		_c.mutation.SetPassedChecks(v)
	}
	if _, ok := _c.mutation.AiEnabled(); !ok {
		v := batch.DefaultAiEnabled
		_c.mutation.SetAiEnabled(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BatchCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Batch.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Batch.updated_at"`)}
	}
	if _, ok := _c.mutation.HomepageURL(); !ok {
		return &ValidationError{Name: "homepage_url", err: errors.New(`ent: missing required field "Batch.homepage_url"`)}
	}
	if v, ok := _c.mutation.HomepageURL(); ok {
		if err := batch.HomepageURLValidator(v); err != nil {
			return &ValidationError{Name: "homepage_url", err: fmt.Errorf(`ent: validator failed for field "Batch.homepage_url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WcagLevel(); !ok {
		return &ValidationError{Name: "wcag_level", err: errors.New(`ent: missing required field "Batch.wcag_level"`)}
	}
	if v, ok := _c.mutation.WcagLevel(); ok {
		if err := batch.WcagLevelValidator(v); err != nil {
			return &ValidationError{Name: "wcag_level", err: fmt.Errorf(`ent: validator failed for field "Batch.wcag_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Batch.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := batch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Batch.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalUrls(); !ok {
		return &ValidationError{Name: "total_urls", err: errors.New(`ent: missing required field "Batch.total_urls"`)}
	}
	if v, ok := _c.mutation.TotalUrls(); ok {
		if err := batch.TotalUrlsValidator(v); err != nil {
			return &ValidationError{Name: "total_urls", err: fmt.Errorf(`ent: validator failed for field "Batch.total_urls": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CompletedCount(); !ok {
		return &ValidationError{Name: "completed_count", err: errors.New(`ent: missing required field "Batch.completed_count"`)}
	}
	if v, ok := _c.mutation.CompletedCount(); ok {
		if err := batch.CompletedCountValidator(v); err != nil {
			return &ValidationError{Name: "completed_count", err: fmt.Errorf(`ent: validator failed for field "Batch.completed_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FailedCount(); !ok {
		return &ValidationError{Name: "failed_count", err: errors.New(`ent: missing required field "Batch.failed_count"`)}
	}
	if v, ok := _c.mutation.FailedCount(); ok {
		if err := batch.FailedCountValidator(v); err != nil {
			return &ValidationError{Name: "failed_count", err: fmt.Errorf(`ent: validator failed for field "Batch.failed_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalIssues(); !ok {
		return &ValidationError{Name: "total_issues", err: errors.New(`ent: missing required field "Batch.total_issues"`)}
	}
	if v, ok := _c.mutation.TotalIssues(); ok {
		if err := batch.TotalIssuesValidator(v); err != nil {
			return &ValidationError{Name: "total_issues", err: fmt.Errorf(`ent: validator failed for field "Batch.total_issues": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CriticalIssues(); !ok {
		return &ValidationError{Name: "critical_issues", err: errors.New(`ent: missing required field "Batch.critical_issues"`)}
	}
	if v, ok := _c.mutation.CriticalIssues(); ok {
		if err := batch.CriticalIssuesValidator(v); err != nil {
			return &ValidationError{Name: "critical_issues", err: fmt.Errorf(`ent: validator failed for field "Batch.critical_issues": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SeriousIssues(); !ok {
		return &ValidationError{Name: "serious_issues", err: errors.New(`ent: missing required field "Batch.serious_issues"`)}
	}
	if v, ok := _c.mutation.SeriousIssues(); ok {
		if err := batch.SeriousIssuesValidator(v); err != nil {
			return &ValidationError{Name: "serious_issues", err: fmt.Errorf(`ent: validator failed for field "Batch.serious_issues": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModerateIssues(); !ok {
		return &ValidationError{Name: "moderate_issues", err: errors.New(`ent: missing required field "Batch.moderate_issues"`)}
	}
	if v, ok := _c.mutation.ModerateIssues(); ok {
		if err := batch.ModerateIssuesValidator(v); err != nil {
			return &ValidationError{Name: "moderate_issues", err: fmt.Errorf(`ent: validator failed for field "Batch.moderate_issues": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MinorIssues(); !ok {
		return &ValidationError{Name: "minor_issues", err: errors.New(`ent: missing required field "Batch.minor_issues"`)}
	}
	if v, ok := _c.mutation.MinorIssues(); ok {
		if err := batch.MinorIssuesValidator(v); err != nil {
			return &ValidationError{Name: "minor_issues", err: fmt.Errorf(`ent: validator failed for field "Batch.minor_issues": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PassedChecks(); !ok {
		return &ValidationError{Name: "passed_checks", err: errors.New(`ent: missing required field "Batch.passed_checks"`)}
	}
	if v, ok := _c.mutation.PassedChecks(); ok {
		if err := batch.PassedChecksValidator(v); err != nil {
			return &ValidationError{Name: "passed_checks", err: fmt.Errorf(`ent: validator failed for field "Batch.passed_checks": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AiEnabled(); !ok {
		return &ValidationError{Name: "ai_enabled", err: errors.New(`ent: missing required field "Batch.ai_enabled"`)}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "Batch.created_by"`)}
	}
	if v, ok := _c.mutation.CreatedBy(); ok {
		if err := batch.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "Batch.created_by": %w`, err)}
		}
	}
	return nil
}

func (_c *BatchCreate) sqlSave(ctx context.Context) (*Batch, error) {
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
			return nil, fmt.Errorf("unexpected Batch.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BatchCreate) createSpec() (*Batch, *sqlgraph.CreateSpec) {
	var (
		_node = &Batch{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(batch.Table, sqlgraph.NewFieldSpec(batch.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(batch.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(batch.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.HomepageURL(); ok {
		_spec.SetField(batch.FieldHomepageURL, field.TypeString, value)
		_node.HomepageURL = value
	}
	if value, ok := _c.mutation.WcagLevel(); ok {
		_spec.SetField(batch.FieldWcagLevel, field.TypeEnum, value)
		_node.WcagLevel = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(batch.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TotalUrls(); ok {
		_spec.SetField(batch.FieldTotalUrls, field.TypeInt, value)
		_node.TotalUrls = value
	}
	if value, ok := _c.mutation.CompletedCount(); ok {
		_spec.SetField(batch.FieldCompletedCount, field.TypeInt, value)
		_node.CompletedCount = value
	}
	if value, ok := _c.mutation.FailedCount(); ok {
		_spec.SetField(batch.FieldFailedCount, field.TypeInt, value)
		_node.FailedCount = value
	}
	if value, ok := _c.mutation.TotalIssues(); ok {
		_spec.SetField(batch.FieldTotalIssues, field.TypeInt, value)
		_node.TotalIssues = value
	}
	if value, ok := _c.mutation.CriticalIssues(); ok {
		_spec.SetField(batch.FieldCriticalIssues, field.TypeInt, value)
		_node.CriticalIssues = value
	}
	if value, ok := _c.mutation.SeriousIssues(); ok {
		_spec.SetField(batch.FieldSeriousIssues, field.TypeInt, value)
		_node.SeriousIssues = value
	}
	if value, ok := _c.mutation.ModerateIssues(); ok {
		_spec.SetField(batch.FieldModerateIssues, field.TypeInt, value)
		_node.ModerateIssues = value
	}
	if value, ok := _c.mutation.MinorIssues(); ok {
		_spec.SetField(batch.FieldMinorIssues, field.TypeInt, value)
		_node.MinorIssues = value
	}
	if value, ok := _c.mutation.PassedChecks(); ok {
		_spec.SetField(batch.FieldPassedChecks, field.TypeInt, value)
		_node.PassedChecks = value
	}
	if value, ok := _c.mutation.AiEnabled(); ok {
		_spec.SetField(batch.FieldAiEnabled, field.TypeBool, value)
		_node.AiEnabled = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(batch.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(batch.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CancelledAt(); ok {
		_spec.SetField(batch.FieldCancelledAt, field.TypeTime, value)
		_node.CancelledAt = &value
	}
	return _node, _spec
}

// BatchCreateBulk is the builder for creating many Batch entities in bulk.
type BatchCreateBulk struct {
	config
	err      error
	builders []*BatchCreate
}

// Save creates the Batch entities in the database.
func (_c *BatchCreateBulk) Save(ctx context.Context) ([]*Batch, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Batch, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BatchMutation)
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
func (_c *BatchCreateBulk) SaveX(ctx context.Context) []*Batch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BatchCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BatchCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
