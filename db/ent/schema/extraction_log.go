package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ExtractionLog is an append-only audit record of extraction attempts.
// Rows are never updated or deleted by the application.
type ExtractionLog struct{ ent.Schema }

func (ExtractionLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extraction_logs"},
	}
}

func (ExtractionLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("filename").NotEmpty(),
		field.String("contract_type").NotEmpty(),
		field.String("gpt_prompt").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("gpt_response").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("extracted_data", map[string]interface{}{}).
			Optional(),
		field.Bool("success").Default(true),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (ExtractionLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("contract_type", "created_at"),
	}
}
