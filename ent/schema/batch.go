package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Batch holds one logical multi-page scan request with persisted
// aggregate counters over its child Scans.
//
// total_urls is fixed at creation; child Scans are never added afterward.
// completed_count + failed_count never exceeds total_urls, and the issue
// aggregates always equal the sum over COMPLETED children. Both are
// maintained exclusively by the completion writer's single-statement
// updates, never by read-then-write code.
type Batch struct {
	ent.Schema
}

// Mixin of the Batch.
func (Batch) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Batch.
func (Batch) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("homepage_url").
			NotEmpty().
			Immutable(),
		field.Enum("wcag_level").
			Values("A", "AA", "AAA").
			Default("AA").
			Immutable(),
		field.Enum("status").
			Values(
				"PENDING",   // Created, no child scan has started yet
				"RUNNING",   // At least one child scan started
				"COMPLETED", // All children terminal, at least one succeeded
				"FAILED",    // All children terminal, none succeeded
				"CANCELLED", // Cancelled by operator
				"STALE",     // Reclaimed by staleness sweep
			).
			Default("PENDING"),
		field.Int("total_urls").
			Positive().
			Immutable(),
		field.Int("completed_count").
			Default(0).
			NonNegative(),
		field.Int("failed_count").
			Default(0).
			NonNegative(),
		field.Int("total_issues").
			Default(0).
			NonNegative(),
		field.Int("critical_issues").
			Default(0).
			NonNegative(),
		field.Int("serious_issues").
			Default(0).
			NonNegative(),
		field.Int("moderate_issues").
			Default(0).
			NonNegative(),
		field.Int("minor_issues").
			Default(0).
			NonNegative(),
		field.Int("passed_checks").
			Default(0).
			NonNegative(),
		field.Bool("ai_enabled").
			Default(false).
			Immutable(),
		field.String("created_by").
			NotEmpty().
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("cancelled_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Batch.
func (Batch) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("created_by"),
		index.Fields("created_at"),
	}
}
