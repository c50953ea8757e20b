// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"a11ysentinel.io/sentinel/ent/campaign"
	"a11ysentinel.io/sentinel/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// CampaignUpdate is the builder for updating Campaign entities.
type CampaignUpdate struct {
	config
	hooks    []Hook
	mutation *CampaignMutation
}

// Where appends a list predicates to the CampaignUpdate builder.
func (_u *CampaignUpdate) Where(ps ...predicate.Campaign) *CampaignUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CampaignUpdate) SetUpdatedAt(v time.Time) *CampaignUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *CampaignUpdate) SetName(v string) *CampaignUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableName(v *string) *CampaignUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTotalTokenBudget sets the "total_token_budget" field.
func (_u *CampaignUpdate) SetTotalTokenBudget(v int64) *CampaignUpdate {
	_u.mutation.ResetTotalTokenBudget()
	_u.mutation.SetTotalTokenBudget(v)
	return _u
}

// SetNillableTotalTokenBudget sets the "total_token_budget" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableTotalTokenBudget(v *int64) *CampaignUpdate {
	if v != nil {
		_u.SetTotalTokenBudget(*v)
	}
	return _u
}

// AddTotalTokenBudget adds value to the "total_token_budget" field.
func (_u *CampaignUpdate) AddTotalTokenBudget(v int64) *CampaignUpdate {
	_u.mutation.AddTotalTokenBudget(v)
	return _u
}

// SetUsedTokens sets the "used_tokens" field.
func (_u *CampaignUpdate) SetUsedTokens(v int64) *CampaignUpdate {
	_u.mutation.ResetUsedTokens()
	_u.mutation.SetUsedTokens(v)
	return _u
}

// SetNillableUsedTokens sets the "used_tokens" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableUsedTokens(v *int64) *CampaignUpdate {
	if v != nil {
		_u.SetUsedTokens(*v)
	}
	return _u
}

// AddUsedTokens adds value to the "used_tokens" field.
func (_u *CampaignUpdate) AddUsedTokens(v int64) *CampaignUpdate {
	_u.mutation.AddUsedTokens(v)
	return _u
}

// SetReservedTokens sets the "reserved_tokens" field.
func (_u *CampaignUpdate) SetReservedTokens(v int64) *CampaignUpdate {
	_u.mutation.ResetReservedTokens()
	_u.mutation.SetReservedTokens(v)
	return _u
}

// SetNillableReservedTokens sets the "reserved_tokens" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableReservedTokens(v *int64) *CampaignUpdate {
	if v != nil {
		_u.SetReservedTokens(*v)
	}
	return _u
}

// AddReservedTokens adds value to the "reserved_tokens" field.
func (_u *CampaignUpdate) AddReservedTokens(v int64) *CampaignUpdate {
	_u.mutation.AddReservedTokens(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *CampaignUpdate) SetStatus(v campaign.Status) *CampaignUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableStatus(v *campaign.Status) *CampaignUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartsAt sets the "starts_at" field.
func (_u *CampaignUpdate) SetStartsAt(v time.Time) *CampaignUpdate {
	_u.mutation.SetStartsAt(v)
	return _u
}

// SetNillableStartsAt sets the "starts_at" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableStartsAt(v *time.Time) *CampaignUpdate {
	if v != nil {
		_u.SetStartsAt(*v)
	}
	return _u
}

// SetEndsAt sets the "ends_at" field.
func (_u *CampaignUpdate) SetEndsAt(v time.Time) *CampaignUpdate {
	_u.mutation.SetEndsAt(v)
	return _u
}

// SetNillableEndsAt sets the "ends_at" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableEndsAt(v *time.Time) *CampaignUpdate {
	if v != nil {
		_u.SetEndsAt(*v)
	}
	return _u
}

// SetCompletedAiScans sets the "completed_ai_scans" field.
func (_u *CampaignUpdate) SetCompletedAiScans(v int) *CampaignUpdate {
	_u.mutation.ResetCompletedAiScans()
	_u.mutation.SetCompletedAiScans(v)
	return _u
}

// SetNillableCompletedAiScans sets the "completed_ai_scans" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableCompletedAiScans(v *int) *CampaignUpdate {
	if v != nil {
		_u.SetCompletedAiScans(*v)
	}
	return _u
}

// AddCompletedAiScans adds value to the "completed_ai_scans" field.
func (_u *CampaignUpdate) AddCompletedAiScans(v int) *CampaignUpdate {
	_u.mutation.AddCompletedAiScans(v)
	return _u
}

// Mutation returns the CampaignMutation object of the builder.
func (_u *CampaignUpdate) Mutation() *CampaignMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CampaignUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CampaignUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CampaignUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CampaignUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CampaignUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := campaign.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CampaignUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := campaign.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Campaign.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalTokenBudget(); ok {
		if err := campaign.TotalTokenBudgetValidator(v); err != nil {
			return &ValidationError{Name: "total_token_budget", err: fmt.Errorf(`ent: validator failed for field "Campaign.total_token_budget": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UsedTokens(); ok {
		if err := campaign.UsedTokensValidator(v); err != nil {
			return &ValidationError{Name: "used_tokens", err: fmt.Errorf(`ent: validator failed for field "Campaign.used_tokens": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReservedTokens(); ok {
		if err := campaign.ReservedTokensValidator(v); err != nil {
			return &ValidationError{Name: "reserved_tokens", err: fmt.Errorf(`ent: validator failed for field "Campaign.reserved_tokens": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := campaign.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Campaign.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompletedAiScans(); ok {
		if err := campaign.CompletedAiScansValidator(v); err != nil {
			return &ValidationError{Name: "completed_ai_scans", err: fmt.Errorf(`ent: validator failed for field "Campaign.completed_ai_scans": %w`, err)}
		}
	}
	return nil
}

func (_u *CampaignUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(campaign.Table, campaign.Columns, sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(campaign.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(campaign.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalTokenBudget(); ok {
		_spec.SetField(campaign.FieldTotalTokenBudget, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalTokenBudget(); ok {
		_spec.AddField(campaign.FieldTotalTokenBudget, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UsedTokens(); ok {
		_spec.SetField(campaign.FieldUsedTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUsedTokens(); ok {
		_spec.AddField(campaign.FieldUsedTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ReservedTokens(); ok {
		_spec.SetField(campaign.FieldReservedTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedReservedTokens(); ok {
		_spec.AddField(campaign.FieldReservedTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(campaign.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartsAt(); ok {
		_spec.SetField(campaign.FieldStartsAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndsAt(); ok {
		_spec.SetField(campaign.FieldEndsAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAiScans(); ok {
		_spec.SetField(campaign.FieldCompletedAiScans, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedAiScans(); ok {
		_spec.AddField(campaign.FieldCompletedAiScans, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{campaign.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CampaignUpdateOne is the builder for updating a single Campaign entity.
type CampaignUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CampaignMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CampaignUpdateOne) SetUpdatedAt(v time.Time) *CampaignUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *CampaignUpdateOne) SetName(v string) *CampaignUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableName(v *string) *CampaignUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTotalTokenBudget sets the "total_token_budget" field.
func (_u *CampaignUpdateOne) SetTotalTokenBudget(v int64) *CampaignUpdateOne {
	_u.mutation.ResetTotalTokenBudget()
	_u.mutation.SetTotalTokenBudget(v)
	return _u
}

// SetNillableTotalTokenBudget sets the "total_token_budget" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableTotalTokenBudget(v *int64) *CampaignUpdateOne {
	if v != nil {
		_u.SetTotalTokenBudget(*v)
	}
	return _u
}

// AddTotalTokenBudget adds value to the "total_token_budget" field.
func (_u *CampaignUpdateOne) AddTotalTokenBudget(v int64) *CampaignUpdateOne {
	_u.mutation.AddTotalTokenBudget(v)
	return _u
}

// SetUsedTokens sets the "used_tokens" field.
func (_u *CampaignUpdateOne) SetUsedTokens(v int64) *CampaignUpdateOne {
	_u.mutation.ResetUsedTokens()
	_u.mutation.SetUsedTokens(v)
	return _u
}

// SetNillableUsedTokens sets the "used_tokens" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableUsedTokens(v *int64) *CampaignUpdateOne {
	if v != nil {
		_u.SetUsedTokens(*v)
	}
	return _u
}

// AddUsedTokens adds value to the "used_tokens" field.
func (_u *CampaignUpdateOne) AddUsedTokens(v int64) *CampaignUpdateOne {
	_u.mutation.AddUsedTokens(v)
	return _u
}

// SetReservedTokens sets the "reserved_tokens" field.
func (_u *CampaignUpdateOne) SetReservedTokens(v int64) *CampaignUpdateOne {
	_u.mutation.ResetReservedTokens()
	_u.mutation.SetReservedTokens(v)
	return _u
}

// SetNillableReservedTokens sets the "reserved_tokens" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableReservedTokens(v *int64) *CampaignUpdateOne {
	if v != nil {
		_u.SetReservedTokens(*v)
	}
	return _u
}

// AddReservedTokens adds value to the "reserved_tokens" field.
func (_u *CampaignUpdateOne) AddReservedTokens(v int64) *CampaignUpdateOne {
	_u.mutation.AddReservedTokens(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *CampaignUpdateOne) SetStatus(v campaign.Status) *CampaignUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableStatus(v *campaign.Status) *CampaignUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartsAt sets the "starts_at" field.
func (_u *CampaignUpdateOne) SetStartsAt(v time.Time) *CampaignUpdateOne {
	_u.mutation.SetStartsAt(v)
	return _u
}

// SetNillableStartsAt sets the "starts_at" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableStartsAt(v *time.Time) *CampaignUpdateOne {
	if v != nil {
		_u.SetStartsAt(*v)
	}
	return _u
}

// SetEndsAt sets the "ends_at" field.
func (_u *CampaignUpdateOne) SetEndsAt(v time.Time) *CampaignUpdateOne {
	_u.mutation.SetEndsAt(v)
	return _u
}

// SetNillableEndsAt sets the "ends_at" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableEndsAt(v *time.Time) *CampaignUpdateOne {
	if v != nil {
		_u.SetEndsAt(*v)
	}
	return _u
}

// SetCompletedAiScans sets the "completed_ai_scans" field.
func (_u *CampaignUpdateOne) SetCompletedAiScans(v int) *CampaignUpdateOne {
	_u.mutation.ResetCompletedAiScans()
	_u.mutation.SetCompletedAiScans(v)
	return _u
}

// SetNillableCompletedAiScans sets the "completed_ai_scans" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableCompletedAiScans(v *int) *CampaignUpdateOne {
	if v != nil {
		_u.SetCompletedAiScans(*v)
	}
	return _u
}

// AddCompletedAiScans adds value to the "completed_ai_scans" field.
func (_u *CampaignUpdateOne) AddCompletedAiScans(v int) *CampaignUpdateOne {
	_u.mutation.AddCompletedAiScans(v)
	return _u
}

// Mutation returns the CampaignMutation object of the builder.
func (_u *CampaignUpdateOne) Mutation() *CampaignMutation {
	return _u.mutation
}

// Where appends a list predicates to the CampaignUpdate builder.
func (_u *CampaignUpdateOne) Where(ps ...predicate.Campaign) *CampaignUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CampaignUpdateOne) Select(field string, fields ...string) *CampaignUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Campaign entity.
func (_u *CampaignUpdateOne) Save(ctx context.Context) (*Campaign, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CampaignUpdateOne) SaveX(ctx context.Context) *Campaign {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CampaignUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CampaignUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CampaignUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := campaign.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CampaignUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := campaign.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Campaign.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalTokenBudget(); ok {
		if err := campaign.TotalTokenBudgetValidator(v); err != nil {
			return &ValidationError{Name: "total_token_budget", err: fmt.Errorf(`ent: validator failed for field "Campaign.total_token_budget": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UsedTokens(); ok {
		if err := campaign.UsedTokensValidator(v); err != nil {
			return &ValidationError{Name: "used_tokens", err: fmt.Errorf(`ent: validator failed for field "Campaign.used_tokens": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReservedTokens(); ok {
		if err := campaign.ReservedTokensValidator(v); err != nil {
			return &ValidationError{Name: "reserved_tokens", err: fmt.Errorf(`ent: validator failed for field "Campaign.reserved_tokens": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := campaign.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Campaign.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompletedAiScans(); ok {
		if err := campaign.CompletedAiScansValidator(v); err != nil {
			return &ValidationError{Name: "completed_ai_scans", err: fmt.Errorf(`ent: validator failed for field "Campaign.completed_ai_scans": %w`, err)}
		}
	}
	return nil
}

func (_u *CampaignUpdateOne) sqlSave(ctx context.Context) (_node *Campaign, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(campaign.Table, campaign.Columns, sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Campaign.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, campaign.FieldID)
		for _, f := range fields {
			if !campaign.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != campaign.FieldID {
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
		_spec.SetField(campaign.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(campaign.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalTokenBudget(); ok {
		_spec.SetField(campaign.FieldTotalTokenBudget, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalTokenBudget(); ok {
		_spec.AddField(campaign.FieldTotalTokenBudget, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UsedTokens(); ok {
		_spec.SetField(campaign.FieldUsedTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUsedTokens(); ok {
		_spec.AddField(campaign.FieldUsedTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ReservedTokens(); ok {
		_spec.SetField(campaign.FieldReservedTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedReservedTokens(); ok {
		_spec.AddField(campaign.FieldReservedTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(campaign.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartsAt(); ok {
		_spec.SetField(campaign.FieldStartsAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndsAt(); ok {
		_spec.SetField(campaign.FieldEndsAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAiScans(); ok {
		_spec.SetField(campaign.FieldCompletedAiScans, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedAiScans(); ok {
		_spec.AddField(campaign.FieldCompletedAiScans, field.TypeInt, value)
	}
	_node = &Campaign{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{campaign.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
