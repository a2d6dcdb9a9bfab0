// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ComparisonsColumns holds the columns for the "comparisons" table.
	ComparisonsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "comparison_type", Type: field.TypeString},
		{Name: "competitor_filename", Type: field.TypeString, Nullable: true},
		{Name: "competitor_pdf", Type: field.TypeBytes, Nullable: true, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "competitor_data", Type: field.TypeJSON, Nullable: true},
		{Name: "gpt_prompt", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "gpt_response", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "comparison_result", Type: field.TypeJSON, Nullable: true},
		{Name: "analysis_summary", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "contract_id", Type: field.TypeUUID},
	}
	// ComparisonsTable holds the schema information for the "comparisons" table.
	ComparisonsTable = &schema.Table{
		Name:       "comparisons",
		Columns:    ComparisonsColumns,
		PrimaryKey: []*schema.Column{ComparisonsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "comparisons_contracts_comparisons",
				Columns:    []*schema.Column{ComparisonsColumns[10]},
				RefColumns: []*schema.Column{ContractsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "comparison_contract_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ComparisonsColumns[10], ComparisonsColumns[9]},
			},
		},
	}
	// ContractsColumns holds the columns for the "contracts" table.
	ContractsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "contract_type", Type: field.TypeString},
		{Name: "provider", Type: field.TypeString},
		{Name: "start_date", Type: field.TypeTime},
		{Name: "end_date", Type: field.TypeTime, Nullable: true},
		{Name: "anniversary_date", Type: field.TypeTime},
		{Name: "contract_data", Type: field.TypeJSON},
		{Name: "original_filename", Type: field.TypeString, Nullable: true},
		{Name: "pdf_content", Type: field.TypeBytes, Nullable: true, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "validated", Type: field.TypeBool, Default: false},
		{Name: "is_simulation", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ContractsTable holds the schema information for the "contracts" table.
	ContractsTable = &schema.Table{
		Name:       "contracts",
		Columns:    ContractsColumns,
		PrimaryKey: []*schema.Column{ContractsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contract_contract_type",
				Unique:  false,
				Columns: []*schema.Column{ContractsColumns[1]},
			},
			{
				Name:    "contract_anniversary_date",
				Unique:  false,
				Columns: []*schema.Column{ContractsColumns[5]},
			},
		},
	}
	// ExtractionLogsColumns holds the columns for the "extraction_logs" table.
	ExtractionLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "contract_type", Type: field.TypeString},
		{Name: "gpt_prompt", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "gpt_response", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "extracted_data", Type: field.TypeJSON, Nullable: true},
		{Name: "success", Type: field.TypeBool, Default: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ExtractionLogsTable holds the schema information for the "extraction_logs" table.
	ExtractionLogsTable = &schema.Table{
		Name:       "extraction_logs",
		Columns:    ExtractionLogsColumns,
		PrimaryKey: []*schema.Column{ExtractionLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "extractionlog_contract_type_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractionLogsColumns[2], ExtractionLogsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ComparisonsTable,
		ContractsTable,
		ExtractionLogsTable,
	}
)

func init() {
	ComparisonsTable.ForeignKeys[0].RefTable = ContractsTable
	ComparisonsTable.Annotation = &entsql.Annotation{
		Table: "comparisons",
	}
	ContractsTable.Annotation = &entsql.Annotation{
		Table: "contracts",
	}
	ExtractionLogsTable.Annotation = &entsql.Annotation{
		Table: "extraction_logs",
	}
}
