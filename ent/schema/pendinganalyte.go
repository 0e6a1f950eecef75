package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// PendingAnalyte holds the schema definition for the PendingAnalyte entity.
// An LLM-emitted proposal for a new canonical analyte, awaiting admin review.
type PendingAnalyte struct {
	ent.Schema
}

// Fields of the PendingAnalyte.
func (PendingAnalyte) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("proposed_code"),
		field.String("proposed_name"),
		field.JSON("evidence", []map[string]interface{}{}).
			Optional().
			Comment("Result rows that motivated the proposal"),
		field.JSON("variations", []map[string]string{}).
			Optional().
			Comment("Language-tagged parameter spellings, e.g. {text, language}"),
		field.Enum("status").
			Values("pending", "approved", "discarded").
			Default("pending"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("resolved_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the PendingAnalyte.
func (PendingAnalyte) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("proposed_code"),
	}
}
