// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/aperrin/gardetonor/gen/ent/extractionlog"
	"github.com/google/uuid"
)

// ExtractionLog is the model entity for the ExtractionLog schema.
type ExtractionLog struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// ContractType holds the value of the "contract_type" field.
	ContractType string `json:"contract_type,omitempty"`
	// GptPrompt holds the value of the "gpt_prompt" field.
	GptPrompt string `json:"gpt_prompt,omitempty"`
	// GptResponse holds the value of the "gpt_response" field.
	GptResponse string `json:"gpt_response,omitempty"`
	// ExtractedData holds the value of the "extracted_data" field.
	ExtractedData map[string]interface{} `json:"extracted_data,omitempty"`
	// Success holds the value of the "success" field.
	Success bool `json:"success,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractionLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractionlog.FieldExtractedData:
			values[i] = new([]byte)
		case extractionlog.FieldSuccess:
			values[i] = new(sql.NullBool)
		case extractionlog.FieldFilename, extractionlog.FieldContractType, extractionlog.FieldGptPrompt, extractionlog.FieldGptResponse, extractionlog.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case extractionlog.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case extractionlog.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractionLog fields.
func (_m *ExtractionLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractionlog.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case extractionlog.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case extractionlog.FieldContractType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contract_type", values[i])
			} else if value.Valid {
				_m.ContractType = value.String
			}
		case extractionlog.FieldGptPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gpt_prompt", values[i])
			} else if value.Valid {
				_m.GptPrompt = value.String
			}
		case extractionlog.FieldGptResponse:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gpt_response", values[i])
			} else if value.Valid {
				_m.GptResponse = value.String
			}
		case extractionlog.FieldExtractedData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtractedData); err != nil {
					return fmt.Errorf("unmarshal field extracted_data: %w", err)
				}
			}
		case extractionlog.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				_m.Success = value.Bool
			}
		case extractionlog.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case extractionlog.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractionLog.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractionLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ExtractionLog.
// Note that you need to call ExtractionLog.Unwrap() before calling this method if this ExtractionLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractionLog) Update() *ExtractionLogUpdateOne {
	return NewExtractionLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractionLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractionLog) Unwrap() *ExtractionLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractionLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractionLog) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractionLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("contract_type=")
	builder.WriteString(_m.ContractType)
	builder.WriteString(", ")
	builder.WriteString("gpt_prompt=")
	builder.WriteString(_m.GptPrompt)
	builder.WriteString(", ")
	builder.WriteString("gpt_response=")
	builder.WriteString(_m.GptResponse)
	builder.WriteString(", ")
	builder.WriteString("extracted_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractedData))
	builder.WriteString(", ")
	builder.WriteString("success=")
	builder.WriteString(fmt.Sprintf("%v", _m.Success))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractionLogs is a parsable slice of ExtractionLog.
type ExtractionLogs []*ExtractionLog
