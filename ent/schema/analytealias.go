package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// AnalyteAlias holds the schema definition for the AnalyteAlias entity.
// A raw spelling/language variant mapped to an analyte. The normalized form
// is the match key; (analyte_id, normalized) is unique.
type AnalyteAlias struct {
	ent.Schema
}

// Fields of the AnalyteAlias.
func (AnalyteAlias) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.UUID("analyte_id", uuid.UUID{}).
			Immutable(),
		field.String("normalized").
			Comment("Lowercased, NFKC, punctuation-stripped match key"),
		field.String("display"),
		field.String("language").
			Default("en").
			Comment("BCP 47 tag of the alias spelling"),
		field.Float("confidence").
			Default(1.0),
		field.Enum("source").
			Values("seed", "approval", "manual", "llm_evidence").
			Default("seed"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AnalyteAlias.
func (AnalyteAlias) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("analyte", Analyte.Type).
			Ref("aliases").
			Field("analyte_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AnalyteAlias.
func (AnalyteAlias) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("analyte_id", "normalized").
			Unique(),
		// Exact-tier lookup; the trigram GIN index is added by raw SQL at boot
		index.Fields("normalized"),
	}
}
