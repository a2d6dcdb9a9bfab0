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

type Contract struct{ ent.Schema }

func (Contract) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "contracts"},
	}
}

func (Contract) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("contract_type").NotEmpty().
			Immutable().
			Validate(utils.EnumValidator(constants.ContractTypes()...)),
		field.String("provider").NotEmpty(),
		field.Time("start_date"),
		field.Time("end_date").Optional().Nillable(),
		field.Time("anniversary_date"),
		// Shape depends on contract_type AND on when the record was created;
		// two schema generations coexist (flat legacy vs. nested). Read through
		// internal/resolve, never with a fixed struct.
		field.JSON("contract_data", map[string]interface{}{}),
		field.String("original_filename").Optional().Nillable(),
		field.Bytes("pdf_content").Optional().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.Bool("validated").Default(false),
		field.Bool("is_simulation").Default(false),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Contract) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE contract -> MANY comparisons
		edge.To("comparisons", Comparison.Type),
	}
}

func (Contract) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("contract_type"),
		index.Fields("anniversary_date"),
	}
}
