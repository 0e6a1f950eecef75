package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Patient holds the schema definition for the Patient entity.
// A subject of reports, scoped to one owning user. Created by ingestion
// when a new (owner, normalized name) tuple appears.
type Patient struct {
	ent.Schema
}

// Fields of the Patient.
func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.UUID("user_id", uuid.UUID{}).
			Immutable(),
		field.String("full_name"),
		field.String("normalized_name").
			Comment("Deterministic alias-normalized form used for upsert identity"),
		field.Time("last_report_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Patient.
func (Patient) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("patients").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
		edge.To("reports", Report.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Patient.
func (Patient) Indexes() []ent.Index {
	return []ent.Index{
		// Upsert identity
		index.Fields("user_id", "normalized_name").
			Unique(),
		index.Fields("user_id"),
	}
}
