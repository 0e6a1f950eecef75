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

// Report holds the schema definition for the Report entity.
// One ingested artifact. Status flows pending → processing → {completed|failed}
// and never regresses; (patient_id, checksum) is unique so the same bytes for
// the same patient cannot be ingested twice.
type Report struct {
	ent.Schema
}

// Fields of the Report.
func (Report) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.UUID("user_id", uuid.UUID{}).
			Immutable(),
		field.UUID("patient_id", uuid.UUID{}).
			Immutable(),
		field.String("filename"),
		field.String("mime_type"),
		field.String("storage_path").
			Comment("Content-addressed artifact location; never the bytes"),
		field.String("checksum").
			Comment("sha256 of the original upload bytes"),
		field.Enum("status").
			Values("pending", "processing", "completed", "failed").
			Default("pending"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.JSON("raw_output", map[string]interface{}{}).
			Optional().
			Comment("Raw model extraction, persisted for replay/debugging"),
		field.String("test_date_text").
			Optional().
			Comment("Free-form date string as printed on the report"),
		field.Time("effective_date").
			Optional().
			Nillable().
			Comment("Derived date when the text parses unambiguously"),
		field.String("patient_name_snapshot").
			Optional(),
		field.String("lab_name").
			Optional(),
		field.String("model_name").
			Optional().
			Comment("Vision model that produced the extraction"),
		field.Time("recognized_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Report.
func (Report) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("reports").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
		edge.From("patient", Patient.Type).
			Ref("reports").
			Field("patient_id").
			Unique().
			Required().
			Immutable(),
		edge.To("results", LabResult.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Report.
func (Report) Indexes() []ent.Index {
	return []ent.Index{
		// Dedup identity
		index.Fields("patient_id", "checksum").
			Unique(),
		index.Fields("user_id", "created_at"),
		index.Fields("status"),
	}
}
