package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Reservation holds budget reserved against one scan's estimated token
// cost until settlement. Settled rows are kept as history; a retried
// scan whose reservation already settled gets a fresh row. At most one
// unsettled reservation may exist per scan, enforced by a partial
// unique index.
type Reservation struct {
	ent.Schema
}

// Mixin of the Reservation.
func (Reservation) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Reservation.
func (Reservation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("campaign_id").
			NotEmpty().
			Immutable(),
		field.String("scan_id").
			Immutable(),
		field.Int64("estimated_tokens").
			Positive().
			Immutable(),
		field.Bool("settled").
			Default(false),
		field.Time("settled_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Reservation.
func (Reservation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("campaign_id"),
		index.Fields("settled"),
		index.Fields("scan_id").
			Unique().
			Annotations(entsql.IndexWhere("NOT settled")),
	}
}
