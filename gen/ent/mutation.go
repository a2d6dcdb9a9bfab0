// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/aperrin/gardetonor/gen/ent/comparison"
	"github.com/aperrin/gardetonor/gen/ent/contract"
	"github.com/aperrin/gardetonor/gen/ent/extractionlog"
	"github.com/aperrin/gardetonor/gen/ent/predicate"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeComparison    = "Comparison"
	TypeContract      = "Contract"
	TypeExtractionLog = "ExtractionLog"
)

// ComparisonMutation represents an operation that mutates the Comparison nodes in the graph.
type ComparisonMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	comparison_type     *string
	competitor_filename *string
	competitor_pdf      *[]byte
	competitor_data     *map[string]interface{}
	gpt_prompt          *string
	gpt_response        *string
	comparison_result   *map[string]interface{}
	analysis_summary    *string
	created_at          *time.Time
	clearedFields       map[string]struct{}
	contract            *uuid.UUID
	clearedcontract     bool
	done                bool
	oldValue            func(context.Context) (*Comparison, error)
	predicates          []predicate.Comparison
}

var _ ent.Mutation = (*ComparisonMutation)(nil)

// comparisonOption allows management of the mutation configuration using functional options.
type comparisonOption func(*ComparisonMutation)

// newComparisonMutation creates new mutation for the Comparison entity.
func newComparisonMutation(c config, op Op, opts ...comparisonOption) *ComparisonMutation {
	m := &ComparisonMutation{
		config:        c,
		op:            op,
		typ:           TypeComparison,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withComparisonID sets the ID field of the mutation.
func withComparisonID(id uuid.UUID) comparisonOption {
	return func(m *ComparisonMutation) {
		var (
			err   error
			once  sync.Once
			value *Comparison
		)
		m.oldValue = func(ctx context.Context) (*Comparison, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Comparison.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withComparison sets the old Comparison of the mutation.
func withComparison(node *Comparison) comparisonOption {
	return func(m *ComparisonMutation) {
		m.oldValue = func(context.Context) (*Comparison, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ComparisonMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ComparisonMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Comparison entities.
func (m *ComparisonMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ComparisonMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ComparisonMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Comparison.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContractID sets the "contract_id" field.
func (m *ComparisonMutation) SetContractID(u uuid.UUID) {
	m.contract = &u
}

// ContractID returns the value of the "contract_id" field in the mutation.
func (m *ComparisonMutation) ContractID() (r uuid.UUID, exists bool) {
	v := m.contract
	if v == nil {
		return
	}
	return *v, true
}

// OldContractID returns the old "contract_id" field's value of the Comparison entity.
// If the Comparison object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComparisonMutation) OldContractID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractID: %w", err)
	}
	return oldValue.ContractID, nil
}

// ResetContractID resets all changes to the "contract_id" field.
func (m *ComparisonMutation) ResetContractID() {
	m.contract = nil
}

// SetComparisonType sets the "comparison_type" field.
func (m *ComparisonMutation) SetComparisonType(s string) {
	m.comparison_type = &s
}

// ComparisonType returns the value of the "comparison_type" field in the mutation.
func (m *ComparisonMutation) ComparisonType() (r string, exists bool) {
	v := m.comparison_type
	if v == nil {
		return
	}
	return *v, true
}

// OldComparisonType returns the old "comparison_type" field's value of the Comparison entity.
// If the Comparison object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComparisonMutation) OldComparisonType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComparisonType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComparisonType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComparisonType: %w", err)
	}
	return oldValue.ComparisonType, nil
}

// ResetComparisonType resets all changes to the "comparison_type" field.
func (m *ComparisonMutation) ResetComparisonType() {
	m.comparison_type = nil
}

// SetCompetitorFilename sets the "competitor_filename" field.
func (m *ComparisonMutation) SetCompetitorFilename(s string) {
	m.competitor_filename = &s
}

// CompetitorFilename returns the value of the "competitor_filename" field in the mutation.
func (m *ComparisonMutation) CompetitorFilename() (r string, exists bool) {
	v := m.competitor_filename
	if v == nil {
		return
	}
	return *v, true
}

// OldCompetitorFilename returns the old "competitor_filename" field's value of the Comparison entity.
// If the Comparison object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComparisonMutation) OldCompetitorFilename(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompetitorFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompetitorFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompetitorFilename: %w", err)
	}
	return oldValue.CompetitorFilename, nil
}

// ClearCompetitorFilename clears the value of the "competitor_filename" field.
func (m *ComparisonMutation) ClearCompetitorFilename() {
	m.competitor_filename = nil
	m.clearedFields[comparison.FieldCompetitorFilename] = struct{}{}
}

// CompetitorFilenameCleared returns if the "competitor_filename" field was cleared in this mutation.
func (m *ComparisonMutation) CompetitorFilenameCleared() bool {
	_, ok := m.clearedFields[comparison.FieldCompetitorFilename]
	return ok
}

// ResetCompetitorFilename resets all changes to the "competitor_filename" field.
func (m *ComparisonMutation) ResetCompetitorFilename() {
	m.competitor_filename = nil
	delete(m.clearedFields, comparison.FieldCompetitorFilename)
}

// SetCompetitorPdf sets the "competitor_pdf" field.
func (m *ComparisonMutation) SetCompetitorPdf(b []byte) {
	m.competitor_pdf = &b
}

// CompetitorPdf returns the value of the "competitor_pdf" field in the mutation.
func (m *ComparisonMutation) CompetitorPdf() (r []byte, exists bool) {
	v := m.competitor_pdf
	if v == nil {
		return
	}
	return *v, true
}

// OldCompetitorPdf returns the old "competitor_pdf" field's value of the Comparison entity.
// If the Comparison object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComparisonMutation) OldCompetitorPdf(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompetitorPdf is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompetitorPdf requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompetitorPdf: %w", err)
	}
	return oldValue.CompetitorPdf, nil
}

// ClearCompetitorPdf clears the value of the "competitor_pdf" field.
func (m *ComparisonMutation) ClearCompetitorPdf() {
	m.competitor_pdf = nil
	m.clearedFields[comparison.FieldCompetitorPdf] = struct{}{}
}

// CompetitorPdfCleared returns if the "competitor_pdf" field was cleared in this mutation.
func (m *ComparisonMutation) CompetitorPdfCleared() bool {
	_, ok := m.clearedFields[comparison.FieldCompetitorPdf]
	return ok
}

// ResetCompetitorPdf resets all changes to the "competitor_pdf" field.
func (m *ComparisonMutation) ResetCompetitorPdf() {
	m.competitor_pdf = nil
	delete(m.clearedFields, comparison.FieldCompetitorPdf)
}

// SetCompetitorData sets the "competitor_data" field.
func (m *ComparisonMutation) SetCompetitorData(value map[string]interface{}) {
	m.competitor_data = &value
}

// CompetitorData returns the value of the "competitor_data" field in the mutation.
func (m *ComparisonMutation) CompetitorData() (r map[string]interface{}, exists bool) {
	v := m.competitor_data
	if v == nil {
		return
	}
	return *v, true
}

// OldCompetitorData returns the old "competitor_data" field's value of the Comparison entity.
// If the Comparison object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComparisonMutation) OldCompetitorData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompetitorData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompetitorData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompetitorData: %w", err)
	}
	return oldValue.CompetitorData, nil
}

// ClearCompetitorData clears the value of the "competitor_data" field.
func (m *ComparisonMutation) ClearCompetitorData() {
	m.competitor_data = nil
	m.clearedFields[comparison.FieldCompetitorData] = struct{}{}
}

// CompetitorDataCleared returns if the "competitor_data" field was cleared in this mutation.
func (m *ComparisonMutation) CompetitorDataCleared() bool {
	_, ok := m.clearedFields[comparison.FieldCompetitorData]
	return ok
}

// ResetCompetitorData resets all changes to the "competitor_data" field.
func (m *ComparisonMutation) ResetCompetitorData() {
	m.competitor_data = nil
	delete(m.clearedFields, comparison.FieldCompetitorData)
}

// SetGptPrompt sets the "gpt_prompt" field.
func (m *ComparisonMutation) SetGptPrompt(s string) {
	m.gpt_prompt = &s
}

// GptPrompt returns the value of the "gpt_prompt" field in the mutation.
func (m *ComparisonMutation) GptPrompt() (r string, exists bool) {
	v := m.gpt_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldGptPrompt returns the old "gpt_prompt" field's value of the Comparison entity.
// If the Comparison object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComparisonMutation) OldGptPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGptPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGptPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGptPrompt: %w", err)
	}
	return oldValue.GptPrompt, nil
}

// ResetGptPrompt resets all changes to the "gpt_prompt" field.
func (m *ComparisonMutation) ResetGptPrompt() {
	m.gpt_prompt = nil
}

// SetGptResponse sets the "gpt_response" field.
func (m *ComparisonMutation) SetGptResponse(s string) {
	m.gpt_response = &s
}

// GptResponse returns the value of the "gpt_response" field in the mutation.
func (m *ComparisonMutation) GptResponse() (r string, exists bool) {
	v := m.gpt_response
	if v == nil {
		return
	}
	return *v, true
}

// OldGptResponse returns the old "gpt_response" field's value of the Comparison entity.
// If the Comparison object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComparisonMutation) OldGptResponse(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGptResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGptResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGptResponse: %w", err)
	}
	return oldValue.GptResponse, nil
}

// ResetGptResponse resets all changes to the "gpt_response" field.
func (m *ComparisonMutation) ResetGptResponse() {
	m.gpt_response = nil
}

// SetComparisonResult sets the "comparison_result" field.
func (m *ComparisonMutation) SetComparisonResult(value map[string]interface{}) {
	m.comparison_result = &value
}

// ComparisonResult returns the value of the "comparison_result" field in the mutation.
func (m *ComparisonMutation) ComparisonResult() (r map[string]interface{}, exists bool) {
	v := m.comparison_result
	if v == nil {
		return
	}
	return *v, true
}

// OldComparisonResult returns the old "comparison_result" field's value of the Comparison entity.
// If the Comparison object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComparisonMutation) OldComparisonResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComparisonResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComparisonResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComparisonResult: %w", err)
	}
	return oldValue.ComparisonResult, nil
}

// ClearComparisonResult clears the value of the "comparison_result" field.
func (m *ComparisonMutation) ClearComparisonResult() {
	m.comparison_result = nil
	m.clearedFields[comparison.FieldComparisonResult] = struct{}{}
}

// ComparisonResultCleared returns if the "comparison_result" field was cleared in this mutation.
func (m *ComparisonMutation) ComparisonResultCleared() bool {
	_, ok := m.clearedFields[comparison.FieldComparisonResult]
	return ok
}

// ResetComparisonResult resets all changes to the "comparison_result" field.
func (m *ComparisonMutation) ResetComparisonResult() {
	m.comparison_result = nil
	delete(m.clearedFields, comparison.FieldComparisonResult)
}

// SetAnalysisSummary sets the "analysis_summary" field.
func (m *ComparisonMutation) SetAnalysisSummary(s string) {
	m.analysis_summary = &s
}

// AnalysisSummary returns the value of the "analysis_summary" field in the mutation.
func (m *ComparisonMutation) AnalysisSummary() (r string, exists bool) {
	v := m.analysis_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisSummary returns the old "analysis_summary" field's value of the Comparison entity.
// If the Comparison object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComparisonMutation) OldAnalysisSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisSummary: %w", err)
	}
	return oldValue.AnalysisSummary, nil
}

// ClearAnalysisSummary clears the value of the "analysis_summary" field.
func (m *ComparisonMutation) ClearAnalysisSummary() {
	m.analysis_summary = nil
	m.clearedFields[comparison.FieldAnalysisSummary] = struct{}{}
}

// AnalysisSummaryCleared returns if the "analysis_summary" field was cleared in this mutation.
func (m *ComparisonMutation) AnalysisSummaryCleared() bool {
	_, ok := m.clearedFields[comparison.FieldAnalysisSummary]
	return ok
}

// ResetAnalysisSummary resets all changes to the "analysis_summary" field.
func (m *ComparisonMutation) ResetAnalysisSummary() {
	m.analysis_summary = nil
	delete(m.clearedFields, comparison.FieldAnalysisSummary)
}

// SetCreatedAt sets the "created_at" field.
func (m *ComparisonMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ComparisonMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Comparison entity.
// If the Comparison object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComparisonMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ComparisonMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearContract clears the "contract" edge to the Contract entity.
func (m *ComparisonMutation) ClearContract() {
	m.clearedcontract = true
	m.clearedFields[comparison.FieldContractID] = struct{}{}
}

// ContractCleared reports if the "contract" edge to the Contract entity was cleared.
func (m *ComparisonMutation) ContractCleared() bool {
	return m.clearedcontract
}

// ContractIDs returns the "contract" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ContractID instead. It exists only for internal usage by the builders.
func (m *ComparisonMutation) ContractIDs() (ids []uuid.UUID) {
	if id := m.contract; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetContract resets all changes to the "contract" edge.
func (m *ComparisonMutation) ResetContract() {
	m.contract = nil
	m.clearedcontract = false
}

// Where appends a list predicates to the ComparisonMutation builder.
func (m *ComparisonMutation) Where(ps ...predicate.Comparison) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ComparisonMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ComparisonMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Comparison, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ComparisonMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ComparisonMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Comparison).
func (m *ComparisonMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ComparisonMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.contract != nil {
		fields = append(fields, comparison.FieldContractID)
	}
	if m.comparison_type != nil {
		fields = append(fields, comparison.FieldComparisonType)
	}
	if m.competitor_filename != nil {
		fields = append(fields, comparison.FieldCompetitorFilename)
	}
	if m.competitor_pdf != nil {
		fields = append(fields, comparison.FieldCompetitorPdf)
	}
	if m.competitor_data != nil {
		fields = append(fields, comparison.FieldCompetitorData)
	}
	if m.gpt_prompt != nil {
		fields = append(fields, comparison.FieldGptPrompt)
	}
	if m.gpt_response != nil {
		fields = append(fields, comparison.FieldGptResponse)
	}
	if m.comparison_result != nil {
		fields = append(fields, comparison.FieldComparisonResult)
	}
	if m.analysis_summary != nil {
		fields = append(fields, comparison.FieldAnalysisSummary)
	}
	if m.created_at != nil {
		fields = append(fields, comparison.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ComparisonMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case comparison.FieldContractID:
		return m.ContractID()
	case comparison.FieldComparisonType:
		return m.ComparisonType()
	case comparison.FieldCompetitorFilename:
		return m.CompetitorFilename()
	case comparison.FieldCompetitorPdf:
		return m.CompetitorPdf()
	case comparison.FieldCompetitorData:
		return m.CompetitorData()
	case comparison.FieldGptPrompt:
		return m.GptPrompt()
	case comparison.FieldGptResponse:
		return m.GptResponse()
	case comparison.FieldComparisonResult:
		return m.ComparisonResult()
	case comparison.FieldAnalysisSummary:
		return m.AnalysisSummary()
	case comparison.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ComparisonMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case comparison.FieldContractID:
		return m.OldContractID(ctx)
	case comparison.FieldComparisonType:
		return m.OldComparisonType(ctx)
	case comparison.FieldCompetitorFilename:
		return m.OldCompetitorFilename(ctx)
	case comparison.FieldCompetitorPdf:
		return m.OldCompetitorPdf(ctx)
	case comparison.FieldCompetitorData:
		return m.OldCompetitorData(ctx)
	case comparison.FieldGptPrompt:
		return m.OldGptPrompt(ctx)
	case comparison.FieldGptResponse:
		return m.OldGptResponse(ctx)
	case comparison.FieldComparisonResult:
		return m.OldComparisonResult(ctx)
	case comparison.FieldAnalysisSummary:
		return m.OldAnalysisSummary(ctx)
	case comparison.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Comparison field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ComparisonMutation) SetField(name string, value ent.Value) error {
	switch name {
	case comparison.FieldContractID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractID(v)
		return nil
	case comparison.FieldComparisonType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComparisonType(v)
		return nil
	case comparison.FieldCompetitorFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompetitorFilename(v)
		return nil
	case comparison.FieldCompetitorPdf:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompetitorPdf(v)
		return nil
	case comparison.FieldCompetitorData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompetitorData(v)
		return nil
	case comparison.FieldGptPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGptPrompt(v)
		return nil
	case comparison.FieldGptResponse:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGptResponse(v)
		return nil
	case comparison.FieldComparisonResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComparisonResult(v)
		return nil
	case comparison.FieldAnalysisSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisSummary(v)
		return nil
	case comparison.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Comparison field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ComparisonMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ComparisonMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ComparisonMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Comparison numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ComparisonMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(comparison.FieldCompetitorFilename) {
		fields = append(fields, comparison.FieldCompetitorFilename)
	}
	if m.FieldCleared(comparison.FieldCompetitorPdf) {
		fields = append(fields, comparison.FieldCompetitorPdf)
	}
	if m.FieldCleared(comparison.FieldCompetitorData) {
		fields = append(fields, comparison.FieldCompetitorData)
	}
	if m.FieldCleared(comparison.FieldComparisonResult) {
		fields = append(fields, comparison.FieldComparisonResult)
	}
	if m.FieldCleared(comparison.FieldAnalysisSummary) {
		fields = append(fields, comparison.FieldAnalysisSummary)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ComparisonMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ComparisonMutation) ClearField(name string) error {
	switch name {
	case comparison.FieldCompetitorFilename:
		m.ClearCompetitorFilename()
		return nil
	case comparison.FieldCompetitorPdf:
		m.ClearCompetitorPdf()
		return nil
	case comparison.FieldCompetitorData:
		m.ClearCompetitorData()
		return nil
	case comparison.FieldComparisonResult:
		m.ClearComparisonResult()
		return nil
	case comparison.FieldAnalysisSummary:
		m.ClearAnalysisSummary()
		return nil
	}
	return fmt.Errorf("unknown Comparison nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ComparisonMutation) ResetField(name string) error {
	switch name {
	case comparison.FieldContractID:
		m.ResetContractID()
		return nil
	case comparison.FieldComparisonType:
		m.ResetComparisonType()
		return nil
	case comparison.FieldCompetitorFilename:
		m.ResetCompetitorFilename()
		return nil
	case comparison.FieldCompetitorPdf:
		m.ResetCompetitorPdf()
		return nil
	case comparison.FieldCompetitorData:
		m.ResetCompetitorData()
		return nil
	case comparison.FieldGptPrompt:
		m.ResetGptPrompt()
		return nil
	case comparison.FieldGptResponse:
		m.ResetGptResponse()
		return nil
	case comparison.FieldComparisonResult:
		m.ResetComparisonResult()
		return nil
	case comparison.FieldAnalysisSummary:
		m.ResetAnalysisSummary()
		return nil
	case comparison.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Comparison field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ComparisonMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.contract != nil {
		edges = append(edges, comparison.EdgeContract)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ComparisonMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case comparison.EdgeContract:
		if id := m.contract; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ComparisonMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ComparisonMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ComparisonMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcontract {
		edges = append(edges, comparison.EdgeContract)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ComparisonMutation) EdgeCleared(name string) bool {
	switch name {
	case comparison.EdgeContract:
		return m.clearedcontract
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ComparisonMutation) ClearEdge(name string) error {
	switch name {
	case comparison.EdgeContract:
		m.ClearContract()
		return nil
	}
	return fmt.Errorf("unknown Comparison unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ComparisonMutation) ResetEdge(name string) error {
	switch name {
	case comparison.EdgeContract:
		m.ResetContract()
		return nil
	}
	return fmt.Errorf("unknown Comparison edge %s", name)
}

// ContractMutation represents an operation that mutates the Contract nodes in the graph.
type ContractMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	contract_type      *string
	provider           *string
	start_date         *time.Time
	end_date           *time.Time
	anniversary_date   *time.Time
	contract_data      *map[string]interface{}
	original_filename  *string
	pdf_content        *[]byte
	validated          *bool
	is_simulation      *bool
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	comparisons        map[uuid.UUID]struct{}
	removedcomparisons map[uuid.UUID]struct{}
	clearedcomparisons bool
	done               bool
	oldValue           func(context.Context) (*Contract, error)
	predicates         []predicate.Contract
}

var _ ent.Mutation = (*ContractMutation)(nil)

// contractOption allows management of the mutation configuration using functional options.
type contractOption func(*ContractMutation)

// newContractMutation creates new mutation for the Contract entity.
func newContractMutation(c config, op Op, opts ...contractOption) *ContractMutation {
	m := &ContractMutation{
		config:        c,
		op:            op,
		typ:           TypeContract,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContractID sets the ID field of the mutation.
func withContractID(id uuid.UUID) contractOption {
	return func(m *ContractMutation) {
		var (
			err   error
			once  sync.Once
			value *Contract
		)
		m.oldValue = func(ctx context.Context) (*Contract, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Contract.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContract sets the old Contract of the mutation.
func withContract(node *Contract) contractOption {
	return func(m *ContractMutation) {
		m.oldValue = func(context.Context) (*Contract, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContractMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContractMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Contract entities.
func (m *ContractMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContractMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContractMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Contract.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContractType sets the "contract_type" field.
func (m *ContractMutation) SetContractType(s string) {
	m.contract_type = &s
}

// ContractType returns the value of the "contract_type" field in the mutation.
func (m *ContractMutation) ContractType() (r string, exists bool) {
	v := m.contract_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContractType returns the old "contract_type" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldContractType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractType: %w", err)
	}
	return oldValue.ContractType, nil
}

// ResetContractType resets all changes to the "contract_type" field.
func (m *ContractMutation) ResetContractType() {
	m.contract_type = nil
}

// SetProvider sets the "provider" field.
func (m *ContractMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *ContractMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *ContractMutation) ResetProvider() {
	m.provider = nil
}

// SetStartDate sets the "start_date" field.
func (m *ContractMutation) SetStartDate(t time.Time) {
	m.start_date = &t
}

// StartDate returns the value of the "start_date" field in the mutation.
func (m *ContractMutation) StartDate() (r time.Time, exists bool) {
	v := m.start_date
	if v == nil {
		return
	}
	return *v, true
}

// OldStartDate returns the old "start_date" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldStartDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartDate: %w", err)
	}
	return oldValue.StartDate, nil
}

// ResetStartDate resets all changes to the "start_date" field.
func (m *ContractMutation) ResetStartDate() {
	m.start_date = nil
}

// SetEndDate sets the "end_date" field.
func (m *ContractMutation) SetEndDate(t time.Time) {
	m.end_date = &t
}

// EndDate returns the value of the "end_date" field in the mutation.
func (m *ContractMutation) EndDate() (r time.Time, exists bool) {
	v := m.end_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEndDate returns the old "end_date" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldEndDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndDate: %w", err)
	}
	return oldValue.EndDate, nil
}

// ClearEndDate clears the value of the "end_date" field.
func (m *ContractMutation) ClearEndDate() {
	m.end_date = nil
	m.clearedFields[contract.FieldEndDate] = struct{}{}
}

// EndDateCleared returns if the "end_date" field was cleared in this mutation.
func (m *ContractMutation) EndDateCleared() bool {
	_, ok := m.clearedFields[contract.FieldEndDate]
	return ok
}

// ResetEndDate resets all changes to the "end_date" field.
func (m *ContractMutation) ResetEndDate() {
	m.end_date = nil
	delete(m.clearedFields, contract.FieldEndDate)
}

// SetAnniversaryDate sets the "anniversary_date" field.
func (m *ContractMutation) SetAnniversaryDate(t time.Time) {
	m.anniversary_date = &t
}

// AnniversaryDate returns the value of the "anniversary_date" field in the mutation.
func (m *ContractMutation) AnniversaryDate() (r time.Time, exists bool) {
	v := m.anniversary_date
	if v == nil {
		return
	}
	return *v, true
}

// OldAnniversaryDate returns the old "anniversary_date" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldAnniversaryDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnniversaryDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnniversaryDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnniversaryDate: %w", err)
	}
	return oldValue.AnniversaryDate, nil
}

// ResetAnniversaryDate resets all changes to the "anniversary_date" field.
func (m *ContractMutation) ResetAnniversaryDate() {
	m.anniversary_date = nil
}

// SetContractData sets the "contract_data" field.
func (m *ContractMutation) SetContractData(value map[string]interface{}) {
	m.contract_data = &value
}

// ContractData returns the value of the "contract_data" field in the mutation.
func (m *ContractMutation) ContractData() (r map[string]interface{}, exists bool) {
	v := m.contract_data
	if v == nil {
		return
	}
	return *v, true
}

// OldContractData returns the old "contract_data" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldContractData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractData: %w", err)
	}
	return oldValue.ContractData, nil
}

// ResetContractData resets all changes to the "contract_data" field.
func (m *ContractMutation) ResetContractData() {
	m.contract_data = nil
}

// SetOriginalFilename sets the "original_filename" field.
func (m *ContractMutation) SetOriginalFilename(s string) {
	m.original_filename = &s
}

// OriginalFilename returns the value of the "original_filename" field in the mutation.
func (m *ContractMutation) OriginalFilename() (r string, exists bool) {
	v := m.original_filename
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalFilename returns the old "original_filename" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldOriginalFilename(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalFilename: %w", err)
	}
	return oldValue.OriginalFilename, nil
}

// ClearOriginalFilename clears the value of the "original_filename" field.
func (m *ContractMutation) ClearOriginalFilename() {
	m.original_filename = nil
	m.clearedFields[contract.FieldOriginalFilename] = struct{}{}
}

// OriginalFilenameCleared returns if the "original_filename" field was cleared in this mutation.
func (m *ContractMutation) OriginalFilenameCleared() bool {
	_, ok := m.clearedFields[contract.FieldOriginalFilename]
	return ok
}

// ResetOriginalFilename resets all changes to the "original_filename" field.
func (m *ContractMutation) ResetOriginalFilename() {
	m.original_filename = nil
	delete(m.clearedFields, contract.FieldOriginalFilename)
}

// SetPdfContent sets the "pdf_content" field.
func (m *ContractMutation) SetPdfContent(b []byte) {
	m.pdf_content = &b
}

// PdfContent returns the value of the "pdf_content" field in the mutation.
func (m *ContractMutation) PdfContent() (r []byte, exists bool) {
	v := m.pdf_content
	if v == nil {
		return
	}
	return *v, true
}

// OldPdfContent returns the old "pdf_content" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldPdfContent(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPdfContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPdfContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPdfContent: %w", err)
	}
	return oldValue.PdfContent, nil
}

// ClearPdfContent clears the value of the "pdf_content" field.
func (m *ContractMutation) ClearPdfContent() {
	m.pdf_content = nil
	m.clearedFields[contract.FieldPdfContent] = struct{}{}
}

// PdfContentCleared returns if the "pdf_content" field was cleared in this mutation.
func (m *ContractMutation) PdfContentCleared() bool {
	_, ok := m.clearedFields[contract.FieldPdfContent]
	return ok
}

// ResetPdfContent resets all changes to the "pdf_content" field.
func (m *ContractMutation) ResetPdfContent() {
	m.pdf_content = nil
	delete(m.clearedFields, contract.FieldPdfContent)
}

// SetValidated sets the "validated" field.
func (m *ContractMutation) SetValidated(b bool) {
	m.validated = &b
}

// Validated returns the value of the "validated" field in the mutation.
func (m *ContractMutation) Validated() (r bool, exists bool) {
	v := m.validated
	if v == nil {
		return
	}
	return *v, true
}

// OldValidated returns the old "validated" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldValidated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidated: %w", err)
	}
	return oldValue.Validated, nil
}

// ResetValidated resets all changes to the "validated" field.
func (m *ContractMutation) ResetValidated() {
	m.validated = nil
}

// SetIsSimulation sets the "is_simulation" field.
func (m *ContractMutation) SetIsSimulation(b bool) {
	m.is_simulation = &b
}

// IsSimulation returns the value of the "is_simulation" field in the mutation.
func (m *ContractMutation) IsSimulation() (r bool, exists bool) {
	v := m.is_simulation
	if v == nil {
		return
	}
	return *v, true
}

// OldIsSimulation returns the old "is_simulation" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldIsSimulation(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsSimulation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsSimulation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsSimulation: %w", err)
	}
	return oldValue.IsSimulation, nil
}

// ResetIsSimulation resets all changes to the "is_simulation" field.
func (m *ContractMutation) ResetIsSimulation() {
	m.is_simulation = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ContractMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContractMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContractMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ContractMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ContractMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ContractMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddComparisonIDs adds the "comparisons" edge to the Comparison entity by ids.
func (m *ContractMutation) AddComparisonIDs(ids ...uuid.UUID) {
	if m.comparisons == nil {
		m.comparisons = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.comparisons[ids[i]] = struct{}{}
	}
}

// ClearComparisons clears the "comparisons" edge to the Comparison entity.
func (m *ContractMutation) ClearComparisons() {
	m.clearedcomparisons = true
}

// ComparisonsCleared reports if the "comparisons" edge to the Comparison entity was cleared.
func (m *ContractMutation) ComparisonsCleared() bool {
	return m.clearedcomparisons
}

// RemoveComparisonIDs removes the "comparisons" edge to the Comparison entity by IDs.
func (m *ContractMutation) RemoveComparisonIDs(ids ...uuid.UUID) {
	if m.removedcomparisons == nil {
		m.removedcomparisons = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.comparisons, ids[i])
		m.removedcomparisons[ids[i]] = struct{}{}
	}
}

// RemovedComparisons returns the removed IDs of the "comparisons" edge to the Comparison entity.
func (m *ContractMutation) RemovedComparisonsIDs() (ids []uuid.UUID) {
	for id := range m.removedcomparisons {
		ids = append(ids, id)
	}
	return
}

// ComparisonsIDs returns the "comparisons" edge IDs in the mutation.
func (m *ContractMutation) ComparisonsIDs() (ids []uuid.UUID) {
	for id := range m.comparisons {
		ids = append(ids, id)
	}
	return
}

// ResetComparisons resets all changes to the "comparisons" edge.
func (m *ContractMutation) ResetComparisons() {
	m.comparisons = nil
	m.clearedcomparisons = false
	m.removedcomparisons = nil
}

// Where appends a list predicates to the ContractMutation builder.
func (m *ContractMutation) Where(ps ...predicate.Contract) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContractMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContractMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Contract, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContractMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContractMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Contract).
func (m *ContractMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContractMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.contract_type != nil {
		fields = append(fields, contract.FieldContractType)
	}
	if m.provider != nil {
		fields = append(fields, contract.FieldProvider)
	}
	if m.start_date != nil {
		fields = append(fields, contract.FieldStartDate)
	}
	if m.end_date != nil {
		fields = append(fields, contract.FieldEndDate)
	}
	if m.anniversary_date != nil {
		fields = append(fields, contract.FieldAnniversaryDate)
	}
	if m.contract_data != nil {
		fields = append(fields, contract.FieldContractData)
	}
	if m.original_filename != nil {
		fields = append(fields, contract.FieldOriginalFilename)
	}
	if m.pdf_content != nil {
		fields = append(fields, contract.FieldPdfContent)
	}
	if m.validated != nil {
		fields = append(fields, contract.FieldValidated)
	}
	if m.is_simulation != nil {
		fields = append(fields, contract.FieldIsSimulation)
	}
	if m.created_at != nil {
		fields = append(fields, contract.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, contract.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContractMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contract.FieldContractType:
		return m.ContractType()
	case contract.FieldProvider:
		return m.Provider()
	case contract.FieldStartDate:
		return m.StartDate()
	case contract.FieldEndDate:
		return m.EndDate()
	case contract.FieldAnniversaryDate:
		return m.AnniversaryDate()
	case contract.FieldContractData:
		return m.ContractData()
	case contract.FieldOriginalFilename:
		return m.OriginalFilename()
	case contract.FieldPdfContent:
		return m.PdfContent()
	case contract.FieldValidated:
		return m.Validated()
	case contract.FieldIsSimulation:
		return m.IsSimulation()
	case contract.FieldCreatedAt:
		return m.CreatedAt()
	case contract.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContractMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contract.FieldContractType:
		return m.OldContractType(ctx)
	case contract.FieldProvider:
		return m.OldProvider(ctx)
	case contract.FieldStartDate:
		return m.OldStartDate(ctx)
	case contract.FieldEndDate:
		return m.OldEndDate(ctx)
	case contract.FieldAnniversaryDate:
		return m.OldAnniversaryDate(ctx)
	case contract.FieldContractData:
		return m.OldContractData(ctx)
	case contract.FieldOriginalFilename:
		return m.OldOriginalFilename(ctx)
	case contract.FieldPdfContent:
		return m.OldPdfContent(ctx)
	case contract.FieldValidated:
		return m.OldValidated(ctx)
	case contract.FieldIsSimulation:
		return m.OldIsSimulation(ctx)
	case contract.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case contract.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Contract field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContractMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contract.FieldContractType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractType(v)
		return nil
	case contract.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case contract.FieldStartDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartDate(v)
		return nil
	case contract.FieldEndDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndDate(v)
		return nil
	case contract.FieldAnniversaryDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnniversaryDate(v)
		return nil
	case contract.FieldContractData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractData(v)
		return nil
	case contract.FieldOriginalFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalFilename(v)
		return nil
	case contract.FieldPdfContent:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPdfContent(v)
		return nil
	case contract.FieldValidated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidated(v)
		return nil
	case contract.FieldIsSimulation:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsSimulation(v)
		return nil
	case contract.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case contract.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Contract field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContractMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContractMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContractMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Contract numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContractMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contract.FieldEndDate) {
		fields = append(fields, contract.FieldEndDate)
	}
	if m.FieldCleared(contract.FieldOriginalFilename) {
		fields = append(fields, contract.FieldOriginalFilename)
	}
	if m.FieldCleared(contract.FieldPdfContent) {
		fields = append(fields, contract.FieldPdfContent)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContractMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContractMutation) ClearField(name string) error {
	switch name {
	case contract.FieldEndDate:
		m.ClearEndDate()
		return nil
	case contract.FieldOriginalFilename:
		m.ClearOriginalFilename()
		return nil
	case contract.FieldPdfContent:
		m.ClearPdfContent()
		return nil
	}
	return fmt.Errorf("unknown Contract nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContractMutation) ResetField(name string) error {
	switch name {
	case contract.FieldContractType:
		m.ResetContractType()
		return nil
	case contract.FieldProvider:
		m.ResetProvider()
		return nil
	case contract.FieldStartDate:
		m.ResetStartDate()
		return nil
	case contract.FieldEndDate:
		m.ResetEndDate()
		return nil
	case contract.FieldAnniversaryDate:
		m.ResetAnniversaryDate()
		return nil
	case contract.FieldContractData:
		m.ResetContractData()
		return nil
	case contract.FieldOriginalFilename:
		m.ResetOriginalFilename()
		return nil
	case contract.FieldPdfContent:
		m.ResetPdfContent()
		return nil
	case contract.FieldValidated:
		m.ResetValidated()
		return nil
	case contract.FieldIsSimulation:
		m.ResetIsSimulation()
		return nil
	case contract.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case contract.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Contract field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContractMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.comparisons != nil {
		edges = append(edges, contract.EdgeComparisons)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContractMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case contract.EdgeComparisons:
		ids := make([]ent.Value, 0, len(m.comparisons))
		for id := range m.comparisons {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContractMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedcomparisons != nil {
		edges = append(edges, contract.EdgeComparisons)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContractMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case contract.EdgeComparisons:
		ids := make([]ent.Value, 0, len(m.removedcomparisons))
		for id := range m.removedcomparisons {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContractMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcomparisons {
		edges = append(edges, contract.EdgeComparisons)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContractMutation) EdgeCleared(name string) bool {
	switch name {
	case contract.EdgeComparisons:
		return m.clearedcomparisons
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContractMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Contract unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContractMutation) ResetEdge(name string) error {
	switch name {
	case contract.EdgeComparisons:
		m.ResetComparisons()
		return nil
	}
	return fmt.Errorf("unknown Contract edge %s", name)
}

// ExtractionLogMutation represents an operation that mutates the ExtractionLog nodes in the graph.
type ExtractionLogMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	filename       *string
	contract_type  *string
	gpt_prompt     *string
	gpt_response   *string
	extracted_data *map[string]interface{}
	success        *bool
	error_message  *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*ExtractionLog, error)
	predicates     []predicate.ExtractionLog
}

var _ ent.Mutation = (*ExtractionLogMutation)(nil)

// extractionlogOption allows management of the mutation configuration using functional options.
type extractionlogOption func(*ExtractionLogMutation)

// newExtractionLogMutation creates new mutation for the ExtractionLog entity.
func newExtractionLogMutation(c config, op Op, opts ...extractionlogOption) *ExtractionLogMutation {
	m := &ExtractionLogMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractionLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionLogID sets the ID field of the mutation.
func withExtractionLogID(id uuid.UUID) extractionlogOption {
	return func(m *ExtractionLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractionLog
		)
		m.oldValue = func(ctx context.Context) (*ExtractionLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractionLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractionLog sets the old ExtractionLog of the mutation.
func withExtractionLog(node *ExtractionLog) extractionlogOption {
	return func(m *ExtractionLogMutation) {
		m.oldValue = func(context.Context) (*ExtractionLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractionLog entities.
func (m *ExtractionLogMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionLogMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionLogMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractionLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFilename sets the "filename" field.
func (m *ExtractionLogMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *ExtractionLogMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *ExtractionLogMutation) ResetFilename() {
	m.filename = nil
}

// SetContractType sets the "contract_type" field.
func (m *ExtractionLogMutation) SetContractType(s string) {
	m.contract_type = &s
}

// ContractType returns the value of the "contract_type" field in the mutation.
func (m *ExtractionLogMutation) ContractType() (r string, exists bool) {
	v := m.contract_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContractType returns the old "contract_type" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldContractType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractType: %w", err)
	}
	return oldValue.ContractType, nil
}

// ResetContractType resets all changes to the "contract_type" field.
func (m *ExtractionLogMutation) ResetContractType() {
	m.contract_type = nil
}

// SetGptPrompt sets the "gpt_prompt" field.
func (m *ExtractionLogMutation) SetGptPrompt(s string) {
	m.gpt_prompt = &s
}

// GptPrompt returns the value of the "gpt_prompt" field in the mutation.
func (m *ExtractionLogMutation) GptPrompt() (r string, exists bool) {
	v := m.gpt_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldGptPrompt returns the old "gpt_prompt" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldGptPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGptPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGptPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGptPrompt: %w", err)
	}
	return oldValue.GptPrompt, nil
}

// ResetGptPrompt resets all changes to the "gpt_prompt" field.
func (m *ExtractionLogMutation) ResetGptPrompt() {
	m.gpt_prompt = nil
}

// SetGptResponse sets the "gpt_response" field.
func (m *ExtractionLogMutation) SetGptResponse(s string) {
	m.gpt_response = &s
}

// GptResponse returns the value of the "gpt_response" field in the mutation.
func (m *ExtractionLogMutation) GptResponse() (r string, exists bool) {
	v := m.gpt_response
	if v == nil {
		return
	}
	return *v, true
}

// OldGptResponse returns the old "gpt_response" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldGptResponse(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGptResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGptResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGptResponse: %w", err)
	}
	return oldValue.GptResponse, nil
}

// ResetGptResponse resets all changes to the "gpt_response" field.
func (m *ExtractionLogMutation) ResetGptResponse() {
	m.gpt_response = nil
}

// SetExtractedData sets the "extracted_data" field.
func (m *ExtractionLogMutation) SetExtractedData(value map[string]interface{}) {
	m.extracted_data = &value
}

// ExtractedData returns the value of the "extracted_data" field in the mutation.
func (m *ExtractionLogMutation) ExtractedData() (r map[string]interface{}, exists bool) {
	v := m.extracted_data
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedData returns the old "extracted_data" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldExtractedData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedData: %w", err)
	}
	return oldValue.ExtractedData, nil
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (m *ExtractionLogMutation) ClearExtractedData() {
	m.extracted_data = nil
	m.clearedFields[extractionlog.FieldExtractedData] = struct{}{}
}

// ExtractedDataCleared returns if the "extracted_data" field was cleared in this mutation.
func (m *ExtractionLogMutation) ExtractedDataCleared() bool {
	_, ok := m.clearedFields[extractionlog.FieldExtractedData]
	return ok
}

// ResetExtractedData resets all changes to the "extracted_data" field.
func (m *ExtractionLogMutation) ResetExtractedData() {
	m.extracted_data = nil
	delete(m.clearedFields, extractionlog.FieldExtractedData)
}

// SetSuccess sets the "success" field.
func (m *ExtractionLogMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *ExtractionLogMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *ExtractionLogMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ExtractionLogMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExtractionLogMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExtractionLogMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[extractionlog.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExtractionLogMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[extractionlog.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExtractionLogMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, extractionlog.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractionLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractionLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractionLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ExtractionLogMutation builder.
func (m *ExtractionLogMutation) Where(ps ...predicate.ExtractionLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractionLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractionLog).
func (m *ExtractionLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionLogMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.filename != nil {
		fields = append(fields, extractionlog.FieldFilename)
	}
	if m.contract_type != nil {
		fields = append(fields, extractionlog.FieldContractType)
	}
	if m.gpt_prompt != nil {
		fields = append(fields, extractionlog.FieldGptPrompt)
	}
	if m.gpt_response != nil {
		fields = append(fields, extractionlog.FieldGptResponse)
	}
	if m.extracted_data != nil {
		fields = append(fields, extractionlog.FieldExtractedData)
	}
	if m.success != nil {
		fields = append(fields, extractionlog.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, extractionlog.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, extractionlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractionlog.FieldFilename:
		return m.Filename()
	case extractionlog.FieldContractType:
		return m.ContractType()
	case extractionlog.FieldGptPrompt:
		return m.GptPrompt()
	case extractionlog.FieldGptResponse:
		return m.GptResponse()
	case extractionlog.FieldExtractedData:
		return m.ExtractedData()
	case extractionlog.FieldSuccess:
		return m.Success()
	case extractionlog.FieldErrorMessage:
		return m.ErrorMessage()
	case extractionlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractionlog.FieldFilename:
		return m.OldFilename(ctx)
	case extractionlog.FieldContractType:
		return m.OldContractType(ctx)
	case extractionlog.FieldGptPrompt:
		return m.OldGptPrompt(ctx)
	case extractionlog.FieldGptResponse:
		return m.OldGptResponse(ctx)
	case extractionlog.FieldExtractedData:
		return m.OldExtractedData(ctx)
	case extractionlog.FieldSuccess:
		return m.OldSuccess(ctx)
	case extractionlog.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case extractionlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractionLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractionlog.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case extractionlog.FieldContractType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractType(v)
		return nil
	case extractionlog.FieldGptPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGptPrompt(v)
		return nil
	case extractionlog.FieldGptResponse:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGptResponse(v)
		return nil
	case extractionlog.FieldExtractedData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedData(v)
		return nil
	case extractionlog.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case extractionlog.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case extractionlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ExtractionLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractionlog.FieldExtractedData) {
		fields = append(fields, extractionlog.FieldExtractedData)
	}
	if m.FieldCleared(extractionlog.FieldErrorMessage) {
		fields = append(fields, extractionlog.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionLogMutation) ClearField(name string) error {
	switch name {
	case extractionlog.FieldExtractedData:
		m.ClearExtractedData()
		return nil
	case extractionlog.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown ExtractionLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionLogMutation) ResetField(name string) error {
	switch name {
	case extractionlog.FieldFilename:
		m.ResetFilename()
		return nil
	case extractionlog.FieldContractType:
		m.ResetContractType()
		return nil
	case extractionlog.FieldGptPrompt:
		m.ResetGptPrompt()
		return nil
	case extractionlog.FieldGptResponse:
		m.ResetGptResponse()
		return nil
	case extractionlog.FieldExtractedData:
		m.ResetExtractedData()
		return nil
	case extractionlog.FieldSuccess:
		m.ResetSuccess()
		return nil
	case extractionlog.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case extractionlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractionLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExtractionLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExtractionLog edge %s", name)
}
