// Code generated by ent, DO NOT EDIT.

package extractionlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the extractionlog type in the database.
	Label = "extraction_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFilename holds the string denoting the filename field in the database.
	FieldFilename = "filename"
	// FieldContractType holds the string denoting the contract_type field in the database.
	FieldContractType = "contract_type"
	// FieldGptPrompt holds the string denoting the gpt_prompt field in the database.
	FieldGptPrompt = "gpt_prompt"
	// FieldGptResponse holds the string denoting the gpt_response field in the database.
	FieldGptResponse = "gpt_response"
	// FieldExtractedData holds the string denoting the extracted_data field in the database.
	FieldExtractedData = "extracted_data"
	// FieldSuccess holds the string denoting the success field in the database.
	FieldSuccess = "success"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the extractionlog in the database.
	Table = "extraction_logs"
)

// Columns holds all SQL columns for extractionlog fields.
var Columns = []string{
	FieldID,
	FieldFilename,
	FieldContractType,
	FieldGptPrompt,
	FieldGptResponse,
	FieldExtractedData,
	FieldSuccess,
	FieldErrorMessage,
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
	// FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	FilenameValidator func(string) error
	// ContractTypeValidator is a validator for the "contract_type" field. It is called by the builders before save.
	ContractTypeValidator func(string) error
	// GptPromptValidator is a validator for the "gpt_prompt" field. It is called by the builders before save.
	GptPromptValidator func(string) error
	// GptResponseValidator is a validator for the "gpt_response" field. It is called by the builders before save.
	GptResponseValidator func(string) error
	// DefaultSuccess holds the default value on creation for the "success" field.
	DefaultSuccess bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ExtractionLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFilename orders the results by the filename field.
func ByFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilename, opts...).ToFunc()
}

// ByContractType orders the results by the contract_type field.
func ByContractType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContractType, opts...).ToFunc()
}

// ByGptPrompt orders the results by the gpt_prompt field.
func ByGptPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGptPrompt, opts...).ToFunc()
}

// ByGptResponse orders the results by the gpt_response field.
func ByGptResponse(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGptResponse, opts...).ToFunc()
}

// BySuccess orders the results by the success field.
func BySuccess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccess, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
