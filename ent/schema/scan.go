package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Scan holds one page scan, either owned by a Batch (batch_id set) or
// standalone. A Scan's transition to COMPLETED/FAILED is the only event
// that mutates its parent Batch's counters, and that update happens in
// the same transaction as the scan row update.
type Scan struct {
	ent.Schema
}

// Mixin of the Scan.
func (Scan) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Scan.
func (Scan) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("batch_id").
			Optional(), // Empty for standalone scans
		field.String("url").
			NotEmpty().
			Immutable(),
		field.String("page_title").
			Optional(),
		field.Enum("status").
			Values(
				"PENDING",   // Queued, not yet picked up by a scan worker
				"RUNNING",   // Scan worker is processing the page
				"COMPLETED", // Finished, issue counts recorded
				"FAILED",    // Errored, error_message recorded
				"CANCELLED", // Batch cancel reached it before completion
			).
			Default("PENDING"),
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
		field.JSON("issues", []map[string]interface{}{}).
			Optional(), // Rule-level findings, opaque to the lifecycle core
		field.String("error_message").
			Optional(),
		field.String("job_id").
			Optional(), // External scan-execution job id; regenerated on retry
		field.Text("content_snapshot").
			Optional(), // Page text captured for offline AI processing
		field.Bool("ai_enabled").
			Default(false),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Scan.
func (Scan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("batch_id"),
		index.Fields("status"),
		index.Fields("batch_id", "status"),
	}
}
