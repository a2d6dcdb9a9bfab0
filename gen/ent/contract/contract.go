// Code generated by ent, DO NOT EDIT.

package contract

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the contract type in the database.
	Label = "contract"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldContractType holds the string denoting the contract_type field in the database.
	FieldContractType = "contract_type"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldStartDate holds the string denoting the start_date field in the database.
	FieldStartDate = "start_date"
	// FieldEndDate holds the string denoting the end_date field in the database.
	FieldEndDate = "end_date"
	// FieldAnniversaryDate holds the string denoting the anniversary_date field in the database.
	FieldAnniversaryDate = "anniversary_date"
	// FieldContractData holds the string denoting the contract_data field in the database.
	FieldContractData = "contract_data"
	// FieldOriginalFilename holds the string denoting the original_filename field in the database.
	FieldOriginalFilename = "original_filename"
	// FieldPdfContent holds the string denoting the pdf_content field in the database.
	FieldPdfContent = "pdf_content"
	// FieldValidated holds the string denoting the validated field in the database.
	FieldValidated = "validated"
	// FieldIsSimulation holds the string denoting the is_simulation field in the database.
	FieldIsSimulation = "is_simulation"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeComparisons holds the string denoting the comparisons edge name in mutations.
	EdgeComparisons = "comparisons"
	// Table holds the table name of the contract in the database.
	Table = "contracts"
	// ComparisonsTable is the table that holds the comparisons relation/edge.
	ComparisonsTable = "comparisons"
	// ComparisonsInverseTable is the table name for the Comparison entity.
	// It exists in this package in order to avoid circular dependency with the "comparison" package.
	ComparisonsInverseTable = "comparisons"
	// ComparisonsColumn is the table column denoting the comparisons relation/edge.
	ComparisonsColumn = "contract_id"
)

// Columns holds all SQL columns for contract fields.
var Columns = []string{
	FieldID,
	FieldContractType,
	FieldProvider,
	FieldStartDate,
	FieldEndDate,
	FieldAnniversaryDate,
	FieldContractData,
	FieldOriginalFilename,
	FieldPdfContent,
	FieldValidated,
	FieldIsSimulation,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// ContractTypeValidator is a validator for the "contract_type" field. It is called by the builders before save.
	ContractTypeValidator func(string) error
	// ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	ProviderValidator func(string) error
	// DefaultValidated holds the default value on creation for the "validated" field.
	DefaultValidated bool
	// DefaultIsSimulation holds the default value on creation for the "is_simulation" field.
	DefaultIsSimulation bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Contract queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByContractType orders the results by the contract_type field.
func ByContractType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContractType, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByStartDate orders the results by the start_date field.
func ByStartDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartDate, opts...).ToFunc()
}

// ByEndDate orders the results by the end_date field.
func ByEndDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndDate, opts...).ToFunc()
}

// ByAnniversaryDate orders the results by the anniversary_date field.
func ByAnniversaryDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnniversaryDate, opts...).ToFunc()
}

// ByOriginalFilename orders the results by the original_filename field.
func ByOriginalFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalFilename, opts...).ToFunc()
}

// ByValidated orders the results by the validated field.
func ByValidated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidated, opts...).ToFunc()
}

// ByIsSimulation orders the results by the is_simulation field.
func ByIsSimulation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsSimulation, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByComparisonsCount orders the results by comparisons count.
func ByComparisonsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newComparisonsStep(), opts...)
	}
}

// ByComparisons orders the results by comparisons terms.
func ByComparisons(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newComparisonsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newComparisonsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ComparisonsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ComparisonsTable, ComparisonsColumn),
	)
}
