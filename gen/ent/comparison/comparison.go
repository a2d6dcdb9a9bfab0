// Code generated by ent, DO NOT EDIT.

package comparison

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the comparison type in the database.
	Label = "comparison"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldContractID holds the string denoting the contract_id field in the database.
	FieldContractID = "contract_id"
	// FieldComparisonType holds the string denoting the comparison_type field in the database.
	FieldComparisonType = "comparison_type"
	// FieldCompetitorFilename holds the string denoting the competitor_filename field in the database.
	FieldCompetitorFilename = "competitor_filename"
	// FieldCompetitorPdf holds the string denoting the competitor_pdf field in the database.
	FieldCompetitorPdf = "competitor_pdf"
	// FieldCompetitorData holds the string denoting the competitor_data field in the database.
	FieldCompetitorData = "competitor_data"
	// FieldGptPrompt holds the string denoting the gpt_prompt field in the database.
	FieldGptPrompt = "gpt_prompt"
	// FieldGptResponse holds the string denoting the gpt_response field in the database.
	FieldGptResponse = "gpt_response"
	// FieldComparisonResult holds the string denoting the comparison_result field in the database.
	FieldComparisonResult = "comparison_result"
	// FieldAnalysisSummary holds the string denoting the analysis_summary field in the database.
	FieldAnalysisSummary = "analysis_summary"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeContract holds the string denoting the contract edge name in mutations.
	EdgeContract = "contract"
	// Table holds the table name of the comparison in the database.
	Table = "comparisons"
	// ContractTable is the table that holds the contract relation/edge.
	ContractTable = "comparisons"
	// ContractInverseTable is the table name for the Contract entity.
	// It exists in this package in order to avoid circular dependency with the "contract" package.
	ContractInverseTable = "contracts"
	// ContractColumn is the table column denoting the contract relation/edge.
	ContractColumn = "contract_id"
)

// Columns holds all SQL columns for comparison fields.
var Columns = []string{
	FieldID,
	FieldContractID,
	FieldComparisonType,
	FieldCompetitorFilename,
	FieldCompetitorPdf,
	FieldCompetitorData,
	FieldGptPrompt,
	FieldGptResponse,
	FieldComparisonResult,
	FieldAnalysisSummary,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ComparisonTypeValidator is a validator for the "comparison_type" field. It is called by the builders before save.
	ComparisonTypeValidator func(string) error
	// GptPromptValidator is a validator for the "gpt_prompt" field. It is called by the builders before save.
	GptPromptValidator func(string) error
	// GptResponseValidator is a validator for the "gpt_response" field. It is called by the builders before save.
	GptResponseValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Comparison queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByContractID orders the results by the contract_id field.
func ByContractID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContractID, opts...).ToFunc()
}

// ByComparisonType orders the results by the comparison_type field.
func ByComparisonType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComparisonType, opts...).ToFunc()
}

// ByCompetitorFilename orders the results by the competitor_filename field.
func ByCompetitorFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompetitorFilename, opts...).ToFunc()
}

// ByGptPrompt orders the results by the gpt_prompt field.
func ByGptPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGptPrompt, opts...).ToFunc()
}

// ByGptResponse orders the results by the gpt_response field.
func ByGptResponse(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGptResponse, opts...).ToFunc()
}

// ByAnalysisSummary orders the results by the analysis_summary field.
func ByAnalysisSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalysisSummary, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByContractField orders the results by contract field.
func ByContractField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newContractStep(), sql.OrderByField(field, opts...))
	}
}
func newContractStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ContractInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ContractTable, ContractColumn),
	)
}
