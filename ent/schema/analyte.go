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

// Analyte holds the schema definition for the Analyte entity.
// Canonical vocabulary entry, globally shared across users. Created by seed
// or by approval of a pending proposal.
type Analyte struct {
	ent.Schema
}

// Fields of the Analyte.
func (Analyte) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("code").
			Unique().
			Comment("Short stable code, e.g. HGB"),
		field.String("name"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Analyte.
func (Analyte) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("aliases", AnalyteAlias.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("results", LabResult.Type),
	}
}

// Indexes of the Analyte.
func (Analyte) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("code").
			Unique(),
	}
}
