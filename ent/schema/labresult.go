package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// LabResult holds the schema definition for the LabResult entity.
// One row per extracted parameter of a report. The analyte binding is
// monotonic: once set, only admin actions may change it.
type LabResult struct {
	ent.Schema
}

// Fields of the LabResult.
func (LabResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.UUID("report_id", uuid.UUID{}).
			Immutable(),
		field.UUID("user_id", uuid.UUID{}).
			Immutable().
			Comment("Denormalized owner for row-level policies"),
		field.UUID("patient_id", uuid.UUID{}).
			Immutable().
			Comment("Denormalized patient for chat-scope filters"),
		field.String("parameter_name").
			Comment("Raw name as printed on the report"),
		field.Float("value_numeric").
			Optional().
			Nillable(),
		field.String("value_text").
			Optional(),
		field.String("unit").
			Optional(),
		field.Float("reference_low").
			Optional().
			Nillable(),
		field.Float("reference_high").
			Optional().
			Nillable(),
		field.String("reference_text").
			Optional(),
		field.Enum("out_of_range").
			Values("above", "below", "within", "flagged_by_lab", "unknown").
			Default("unknown"),
		field.UUID("analyte_id", uuid.UUID{}).
			Optional().
			Nillable(),
		field.Float("mapping_confidence").
			Optional().
			Nillable(),
		field.Enum("mapping_source").
			Values("alias_exact", "fuzzy_auto", "llm_auto", "manual_resolved", "pending_approved", "manual_approved").
			Optional().
			Nillable(),
		field.Time("mapped_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the LabResult.
func (LabResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("report", Report.Type).
			Ref("results").
			Field("report_id").
			Unique().
			Required().
			Immutable(),
		edge.From("analyte", Analyte.Type).
			Ref("results").
			Field("analyte_id").
			Unique(),
	}
}

// Indexes of the LabResult.
func (LabResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("report_id"),
		// Unmapped scan during mapping passes
		index.Fields("user_id", "analyte_id"),
		index.Fields("patient_id"),
		index.Fields("parameter_name"),
	}
}
