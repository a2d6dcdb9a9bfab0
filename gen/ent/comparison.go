// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/aperrin/gardetonor/gen/ent/comparison"
	"github.com/aperrin/gardetonor/gen/ent/contract"
	"github.com/google/uuid"
)

// Comparison is the model entity for the Comparison schema.
type Comparison struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ContractID holds the value of the "contract_id" field.
	ContractID uuid.UUID `json:"contract_id,omitempty"`
	// ComparisonType holds the value of the "comparison_type" field.
	ComparisonType string `json:"comparison_type,omitempty"`
	// CompetitorFilename holds the value of the "competitor_filename" field.
	CompetitorFilename *string `json:"competitor_filename,omitempty"`
	// CompetitorPdf holds the value of the "competitor_pdf" field.
	CompetitorPdf []byte `json:"competitor_pdf,omitempty"`
	// CompetitorData holds the value of the "competitor_data" field.
	CompetitorData map[string]interface{} `json:"competitor_data,omitempty"`
	// GptPrompt holds the value of the "gpt_prompt" field.
	GptPrompt string `json:"gpt_prompt,omitempty"`
	// GptResponse holds the value of the "gpt_response" field.
	GptResponse string `json:"gpt_response,omitempty"`
	// ComparisonResult holds the value of the "comparison_result" field.
	ComparisonResult map[string]interface{} `json:"comparison_result,omitempty"`
	// AnalysisSummary holds the value of the "analysis_summary" field.
	AnalysisSummary *string `json:"analysis_summary,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ComparisonQuery when eager-loading is set.
	Edges        ComparisonEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ComparisonEdges holds the relations/edges for other nodes in the graph.
type ComparisonEdges struct {
	// Contract holds the value of the contract edge.
	Contract *Contract `json:"contract,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ContractOrErr returns the Contract value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ComparisonEdges) ContractOrErr() (*Contract, error) {
	if e.Contract != nil {
		return e.Contract, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: contract.Label}
	}
	return nil, &NotLoadedError{edge: "contract"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Comparison) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case comparison.FieldCompetitorPdf, comparison.FieldCompetitorData, comparison.FieldComparisonResult:
			values[i] = new([]byte)
		case comparison.FieldComparisonType, comparison.FieldCompetitorFilename, comparison.FieldGptPrompt, comparison.FieldGptResponse, comparison.FieldAnalysisSummary:
			values[i] = new(sql.NullString)
		case comparison.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case comparison.FieldID, comparison.FieldContractID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Comparison fields.
func (_m *Comparison) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case comparison.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case comparison.FieldContractID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field contract_id", values[i])
			} else if value != nil {
				_m.ContractID = *value
			}
		case comparison.FieldComparisonType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field comparison_type", values[i])
			} else if value.Valid {
				_m.ComparisonType = value.String
			}
		case comparison.FieldCompetitorFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field competitor_filename", values[i])
			} else if value.Valid {
				_m.CompetitorFilename = new(string)
				*_m.CompetitorFilename = value.String
			}
		case comparison.FieldCompetitorPdf:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field competitor_pdf", values[i])
			} else if value != nil {
				_m.CompetitorPdf = *value
			}
		case comparison.FieldCompetitorData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field competitor_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CompetitorData); err != nil {
					return fmt.Errorf("unmarshal field competitor_data: %w", err)
				}
			}
		case comparison.FieldGptPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gpt_prompt", values[i])
			} else if value.Valid {
				_m.GptPrompt = value.String
			}
		case comparison.FieldGptResponse:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gpt_response", values[i])
			} else if value.Valid {
				_m.GptResponse = value.String
			}
		case comparison.FieldComparisonResult:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field comparison_result", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ComparisonResult); err != nil {
					return fmt.Errorf("unmarshal field comparison_result: %w", err)
				}
			}
		case comparison.FieldAnalysisSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_summary", values[i])
			} else if value.Valid {
				_m.AnalysisSummary = new(string)
				*_m.AnalysisSummary = value.String
			}
		case comparison.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Comparison.
// This includes values selected through modifiers, order, etc.
func (_m *Comparison) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryContract queries the "contract" edge of the Comparison entity.
func (_m *Comparison) QueryContract() *ContractQuery {
	return NewComparisonClient(_m.config).QueryContract(_m)
}

// Update returns a builder for updating this Comparison.
// Note that you need to call Comparison.Unwrap() before calling this method if this Comparison
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Comparison) Update() *ComparisonUpdateOne {
	return NewComparisonClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Comparison entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Comparison) Unwrap() *Comparison {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Comparison is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Comparison) String() string {
	var builder strings.Builder
	builder.WriteString("Comparison(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("contract_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContractID))
	builder.WriteString(", ")
	builder.WriteString("comparison_type=")
	builder.WriteString(_m.ComparisonType)
	builder.WriteString(", ")
	if v := _m.CompetitorFilename; v != nil {
		builder.WriteString("competitor_filename=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("competitor_pdf=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompetitorPdf))
	builder.WriteString(", ")
	builder.WriteString("competitor_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompetitorData))
	builder.WriteString(", ")
	builder.WriteString("gpt_prompt=")
	builder.WriteString(_m.GptPrompt)
	builder.WriteString(", ")
	builder.WriteString("gpt_response=")
	builder.WriteString(_m.GptResponse)
	builder.WriteString(", ")
	builder.WriteString("comparison_result=")
	builder.WriteString(fmt.Sprintf("%v", _m.ComparisonResult))
	builder.WriteString(", ")
	if v := _m.AnalysisSummary; v != nil {
		builder.WriteString("analysis_summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Comparisons is a parsable slice of Comparison.
type Comparisons []*Comparison
