// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"a11ysentinel.io/sentinel/ent/campaign"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// CampaignCreate is the builder for creating a Campaign entity.
type CampaignCreate struct {
	config
	mutation *CampaignMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *CampaignCreate) SetCreatedAt(v time.Time) *CampaignCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableCreatedAt(v *time.Time) *CampaignCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CampaignCreate) SetUpdatedAt(v time.Time) *CampaignCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableUpdatedAt(v *time.Time) *CampaignCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *CampaignCreate) SetName(v string) *CampaignCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetTotalTokenBudget sets the "total_token_budget" field.
func (_c *CampaignCreate) SetTotalTokenBudget(v int64) *CampaignCreate {
	_c.mutation.SetTotalTokenBudget(v)
	return _c
}

// SetUsedTokens sets the "used_tokens" field.
func (_c *CampaignCreate) SetUsedTokens(v int64) *CampaignCreate {
	_c.mutation.SetUsedTokens(v)
	return _c
}

// SetNillableUsedTokens sets the "used_tokens" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableUsedTokens(v *int64) *CampaignCreate {
	if v != nil {
		_c.SetUsedTokens(*v)
	}
	return _c
}

// SetReservedTokens sets the "reserved_tokens" field.
func (_c *CampaignCreate) SetReservedTokens(v int64) *CampaignCreate {
	_c.mutation.SetReservedTokens(v)
	return _c
}

// SetNillableReservedTokens sets the "reserved_tokens" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableReservedTokens(v *int64) *CampaignCreate {
	if v != nil {
		_c.SetReservedTokens(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CampaignCreate) SetStatus(v campaign.Status) *CampaignCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableStatus(v *campaign.Status) *CampaignCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartsAt sets the "starts_at" field.
func (_c *CampaignCreate) SetStartsAt(v time.Time) *CampaignCreate {
	_c.mutation.SetStartsAt(v)
	return _c
}

// SetEndsAt sets the "ends_at" field.
func (_c *CampaignCreate) SetEndsAt(v time.Time) *CampaignCreate {
	_c.mutation.SetEndsAt(v)
	return _c
}

// SetCompletedAiScans sets the "completed_ai_scans" field.
func (_c *CampaignCreate) SetCompletedAiScans(v int) *CampaignCreate {
	_c.mutation.SetCompletedAiScans(v)
	return _c
}

// SetNillableCompletedAiScans sets the "completed_ai_scans" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableCompletedAiScans(v *int) *CampaignCreate {
	if v != nil {
		_c.SetCompletedAiScans(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CampaignCreate) SetID(v string) *CampaignCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CampaignMutation object of the builder.
func (_c *CampaignCreate) Mutation() *CampaignMutation {
	return _c.mutation
}

// Save creates the Campaign in the database.
func (_c *CampaignCreate) Save(ctx context.Context) (*Campaign, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CampaignCreate) SaveX(ctx context.Context) *Campaign {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CampaignCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CampaignCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CampaignCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := campaign.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := campaign.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.UsedTokens(); !ok {
		v := campaign.DefaultUsedTokens
		_c.mutation.SetUsedTokens(v)
	}
	if _, ok := _c.mutation.ReservedTokens(); !ok {
		v := campaign.DefaultReservedTokens
		_c.mutation.SetReservedTokens(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := campaign.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CompletedAiScans(); !ok {
		v := campaign.DefaultCompletedAiScans
		_c.mutation.SetCompletedAiScans(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CampaignCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Campaign.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Campaign.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Campaign.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := campaign.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Campaign.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalTokenBudget(); !ok {
		return &ValidationError{Name: "total_token_budget", err: errors.New(`ent: missing required field "Campaign.total_token_budget"`)}
	}
	if v, ok := _c.mutation.TotalTokenBudget(); ok {
		if err := campaign.TotalTokenBudgetValidator(v); err != nil {
			return &ValidationError{Name: "total_token_budget", err: fmt.Errorf(`ent: validator failed for field "Campaign.total_token_budget": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UsedTokens(); !ok {
		return &ValidationError{Name: "used_tokens", err: errors.New(`ent: missing required field "Campaign.used_tokens"`)}
	}
	if v, ok := _c.mutation.UsedTokens(); ok {
		if err := campaign.UsedTokensValidator(v); err != nil {
			return &ValidationError{Name: "used_tokens", err: fmt.Errorf(`ent: validator failed for field "Campaign.used_tokens": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReservedTokens(); !ok {
		return &ValidationError{Name: "reserved_tokens", err: errors.New(`ent: missing required field "Campaign.reserved_tokens"`)}
	}
	if v, ok := _c.mutation.ReservedTokens(); ok {
		if err := campaign.ReservedTokensValidator(v); err != nil {
			return &ValidationError{Name: "reserved_tokens", err: fmt.Errorf(`ent: validator failed for field "Campaign.reserved_tokens": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Campaign.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := campaign.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Campaign.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartsAt(); !ok {
		return &ValidationError{Name: "starts_at", err: errors.New(`ent: missing required field "Campaign.starts_at"`)}
	}
	if _, ok := _c.mutation.EndsAt(); !ok {
		return &ValidationError{Name: "ends_at", err: errors.New(`ent: missing required field "Campaign.ends_at"`)}
	}
	if _, ok := _c.mutation.CompletedAiScans(); !ok {
		return &ValidationError{Name: "completed_ai_scans", err: errors.New(`ent: missing required field "Campaign.completed_ai_scans"`)}
	}
	if v, ok := _c.mutation.CompletedAiScans(); ok {
		if err := campaign.CompletedAiScansValidator(v); err != nil {
			return &ValidationError{Name: "completed_ai_scans", err: fmt.Errorf(`ent: validator failed for field "Campaign.completed_ai_scans": %w`, err)}
		}
	}
	return nil
}

func (_c *CampaignCreate) sqlSave(ctx context.Context) (*Campaign, error) {
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
			return nil, fmt.Errorf("unexpected Campaign.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CampaignCreate) createSpec() (*Campaign, *sqlgraph.CreateSpec) {
	var (
		_node = &Campaign{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(campaign.Table, sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(campaign.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(campaign.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(campaign.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.TotalTokenBudget(); ok {
		_spec.SetField(campaign.FieldTotalTokenBudget, field.TypeInt64, value)
		_node.TotalTokenBudget = value
	}
	if value, ok := _c.mutation.UsedTokens(); ok {
		_spec.SetField(campaign.FieldUsedTokens, field.TypeInt64, value)
		_node.UsedTokens = value
	}
	if value, ok := _c.mutation.ReservedTokens(); ok {
		_spec.SetField(campaign.FieldReservedTokens, field.TypeInt64, value)
		_node.ReservedTokens = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(campaign.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartsAt(); ok {
		_spec.SetField(campaign.FieldStartsAt, field.TypeTime, value)
		_node.StartsAt = value
	}
	if value, ok := _c.mutation.EndsAt(); ok {
		_spec.SetField(campaign.FieldEndsAt, field.TypeTime, value)
		_node.EndsAt = value
	}
	if value, ok := _c.mutation.CompletedAiScans(); ok {
		_spec.SetField(campaign.FieldCompletedAiScans, field.TypeInt, value)
		_node.CompletedAiScans = value
	}
	return _node, _spec
}

// CampaignCreateBulk is the builder for creating many Campaign entities in bulk.
type CampaignCreateBulk struct {
	config
	err      error
	builders []*CampaignCreate
}

// Save creates the Campaign entities in the database.
func (_c *CampaignCreateBulk) Save(ctx context.Context) ([]*Campaign, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Campaign, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CampaignMutation)
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
func (_c *CampaignCreateBulk) SaveX(ctx context.Context) []*Campaign {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CampaignCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CampaignCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
