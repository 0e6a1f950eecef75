package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// MatchReview holds the schema definition for the MatchReview entity.
// An ambiguous raw parameter awaiting human choice between candidate analytes.
type MatchReview struct {
	ent.Schema
}

// Fields of the MatchReview.
func (MatchReview) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.UUID("result_id", uuid.UUID{}).
			Immutable(),
		field.String("parameter_name"),
		field.JSON("candidates", []map[string]interface{}{}).
			Comment("Ordered by similarity: {analyte_id?|proposed_code?, display, similarity}"),
		field.Enum("status").
			Values("pending", "resolved", "skipped").
			Default("pending"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("resolved_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the MatchReview.
func (MatchReview) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("result_id"),
	}
}
