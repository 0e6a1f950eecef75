package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// AdminAction holds the schema definition for the AdminAction entity.
// Append-only audit of auth and admin operations; write-only from the core.
type AdminAction struct {
	ent.Schema
}

// Fields of the AdminAction.
func (AdminAction) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.UUID("actor_id", uuid.UUID{}).
			Optional().
			Nillable().
			Immutable().
			Comment("Empty for failed-auth rows where no actor resolved"),
		field.String("actor_email").
			Optional().
			Immutable(),
		field.String("action").
			Immutable().
			Comment("e.g. approve_pending_analyte, resolve_review, reset_store, login_failed"),
		field.String("target").
			Optional().
			Immutable().
			Comment("Identifier of the affected entity, when one applies"),
		field.JSON("detail", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AdminAction.
func (AdminAction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("actor_id", "created_at"),
		index.Fields("action"),
	}
}
