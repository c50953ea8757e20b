package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AiQueueEntry holds the AI-processing record attached 1:1 to an
// AI-enabled Scan. Created the moment the scan is admitted; destroyed
// only with its Scan.
//
// State machine: PENDING → DOWNLOADED → PROCESSING → {COMPLETED, FAILED};
// FAILED → PENDING only via explicit retry.
type AiQueueEntry struct {
	ent.Schema
}

// Mixin of the AiQueueEntry.
func (AiQueueEntry) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the AiQueueEntry.
func (AiQueueEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("scan_id").
			Unique().
			Immutable(),
		// Rewritten when a retry runs under a fresh reservation.
		field.String("reservation_id").
			NotEmpty(),
		field.Enum("ai_status").
			Values(
				"PENDING",    // Admitted, waiting for export
				"DOWNLOADED", // Claimed by a CSV export
				"PROCESSING", // Offline processing in progress
				"COMPLETED",  // Results imported
				"FAILED",     // Processing failed; eligible for retry
			).
			Default("PENDING"),
		field.Int64("ai_input_tokens").
			Default(0).
			NonNegative(),
		field.Int64("ai_output_tokens").
			Default(0).
			NonNegative(),
		field.Int64("ai_total_tokens").
			Default(0).
			NonNegative(),
		field.String("ai_model").
			Optional(),
		field.Int64("ai_processing_ms").
			Default(0).
			NonNegative(),
		field.Time("ai_processed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the AiQueueEntry.
func (AiQueueEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ai_status"),
		index.Fields("ai_status", "created_at"),
	}
}
