package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/aperrin/gardetonor/constants"
	"github.com/aperrin/gardetonor/db/ent/schema/utils"
)

type Comparison struct{ ent.Schema }

func (Comparison) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "comparisons"},
	}
}

func (Comparison) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FK
		field.UUID("contract_id", uuid.UUID{}),
		field.String("comparison_type").NotEmpty().
			Validate(utils.EnumValidator(constants.ComparisonTypes...)),
		field.String("competitor_filename").Optional().Nillable(),
		field.Bytes("competitor_pdf").Optional().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.JSON("competitor_data", map[string]interface{}{}).
			Optional(),
		// Full request/response text, kept for auditing LLM drift.
		field.String("gpt_prompt").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("gpt_response").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("comparison_result", map[string]interface{}{}).
			Optional(),
		field.String("analysis_summary").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Comparison) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY comparisons -> ONE contract (FK: comparisons.contract_id)
		edge.From("contract", Contract.Type).
			Ref("comparisons").
			Field("contract_id").
			Required().
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Comparison) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("contract_id", "created_at"),
	}
}
