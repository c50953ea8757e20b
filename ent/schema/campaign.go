package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Campaign holds the process-wide AI-enhancement promotion window and its
// shared token ledger.
//
// used_tokens + reserved_tokens never exceeds total_token_budget. The
// ledger is mutated only through the admission controller's guarded
// single-statement updates; UI and CRUD code never write these columns.
type Campaign struct {
	ent.Schema
}

// Mixin of the Campaign.
func (Campaign) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Campaign.
func (Campaign) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.Int64("total_token_budget").
			Positive(),
		field.Int64("used_tokens").
			Default(0).
			NonNegative(),
		field.Int64("reserved_tokens").
			Default(0).
			NonNegative(),
		field.Enum("status").
			Values("ACTIVE", "PAUSED", "DEPLETED", "ENDED").
			Default("ACTIVE"),
		field.Time("starts_at"),
		field.Time("ends_at"),
		field.Int("completed_ai_scans").
			Default(0).
			NonNegative(),
	}
}

// Indexes of the Campaign.
func (Campaign) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}
