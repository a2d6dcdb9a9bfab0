// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aperrin/gardetonor/gen/ent/comparison"
	"github.com/aperrin/gardetonor/gen/ent/contract"
	"github.com/aperrin/gardetonor/gen/ent/predicate"
	"github.com/google/uuid"
)

// ComparisonUpdate is the builder for updating Comparison entities.
type ComparisonUpdate struct {
	config
	hooks    []Hook
	mutation *ComparisonMutation
}

// Where appends a list predicates to the ComparisonUpdate builder.
func (_u *ComparisonUpdate) Where(ps ...predicate.Comparison) *ComparisonUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContractID sets the "contract_id" field.
func (_u *ComparisonUpdate) SetContractID(v uuid.UUID) *ComparisonUpdate {
	_u.mutation.SetContractID(v)
	return _u
}

// SetNillableContractID sets the "contract_id" field if the given value is not nil.
func (_u *ComparisonUpdate) SetNillableContractID(v *uuid.UUID) *ComparisonUpdate {
	if v != nil {
		_u.SetContractID(*v)
	}
	return _u
}

// SetComparisonType sets the "comparison_type" field.
func (_u *ComparisonUpdate) SetComparisonType(v string) *ComparisonUpdate {
	_u.mutation.SetComparisonType(v)
	return _u
}

// SetNillableComparisonType sets the "comparison_type" field if the given value is not nil.
func (_u *ComparisonUpdate) SetNillableComparisonType(v *string) *ComparisonUpdate {
	if v != nil {
		_u.SetComparisonType(*v)
	}
	return _u
}

// SetCompetitorFilename sets the "competitor_filename" field.
func (_u *ComparisonUpdate) SetCompetitorFilename(v string) *ComparisonUpdate {
	_u.mutation.SetCompetitorFilename(v)
	return _u
}

// SetNillableCompetitorFilename sets the "competitor_filename" field if the given value is not nil.
func (_u *ComparisonUpdate) SetNillableCompetitorFilename(v *string) *ComparisonUpdate {
	if v != nil {
		_u.SetCompetitorFilename(*v)
	}
	return _u
}

// ClearCompetitorFilename clears the value of the "competitor_filename" field.
func (_u *ComparisonUpdate) ClearCompetitorFilename() *ComparisonUpdate {
	_u.mutation.ClearCompetitorFilename()
	return _u
}

// SetCompetitorPdf sets the "competitor_pdf" field.
func (_u *ComparisonUpdate) SetCompetitorPdf(v []byte) *ComparisonUpdate {
	_u.mutation.SetCompetitorPdf(v)
	return _u
}

// ClearCompetitorPdf clears the value of the "competitor_pdf" field.
func (_u *ComparisonUpdate) ClearCompetitorPdf() *ComparisonUpdate {
	_u.mutation.ClearCompetitorPdf()
	return _u
}

// SetCompetitorData sets the "competitor_data" field.
func (_u *ComparisonUpdate) SetCompetitorData(v map[string]interface{}) *ComparisonUpdate {
	_u.mutation.SetCompetitorData(v)
	return _u
}

// ClearCompetitorData clears the value of the "competitor_data" field.
func (_u *ComparisonUpdate) ClearCompetitorData() *ComparisonUpdate {
	_u.mutation.ClearCompetitorData()
	return _u
}

// SetGptPrompt sets the "gpt_prompt" field.
func (_u *ComparisonUpdate) SetGptPrompt(v string) *ComparisonUpdate {
	_u.mutation.SetGptPrompt(v)
	return _u
}

// SetNillableGptPrompt sets the "gpt_prompt" field if the given value is not nil.
func (_u *ComparisonUpdate) SetNillableGptPrompt(v *string) *ComparisonUpdate {
	if v != nil {
		_u.SetGptPrompt(*v)
	}
	return _u
}

// SetGptResponse sets the "gpt_response" field.
func (_u *ComparisonUpdate) SetGptResponse(v string) *ComparisonUpdate {
	_u.mutation.SetGptResponse(v)
	return _u
}

// SetNillableGptResponse sets the "gpt_response" field if the given value is not nil.
func (_u *ComparisonUpdate) SetNillableGptResponse(v *string) *ComparisonUpdate {
	if v != nil {
		_u.SetGptResponse(*v)
	}
	return _u
}

// SetComparisonResult sets the "comparison_result" field.
func (_u *ComparisonUpdate) SetComparisonResult(v map[string]interface{}) *ComparisonUpdate {
	_u.mutation.SetComparisonResult(v)
	return _u
}

// ClearComparisonResult clears the value of the "comparison_result" field.
func (_u *ComparisonUpdate) ClearComparisonResult() *ComparisonUpdate {
	_u.mutation.ClearComparisonResult()
	return _u
}

// SetAnalysisSummary sets the "analysis_summary" field.
func (_u *ComparisonUpdate) SetAnalysisSummary(v string) *ComparisonUpdate {
	_u.mutation.SetAnalysisSummary(v)
	return _u
}

// SetNillableAnalysisSummary sets the "analysis_summary" field if the given value is not nil.
func (_u *ComparisonUpdate) SetNillableAnalysisSummary(v *string) *ComparisonUpdate {
	if v != nil {
		_u.SetAnalysisSummary(*v)
	}
	return _u
}

// ClearAnalysisSummary clears the value of the "analysis_summary" field.
func (_u *ComparisonUpdate) ClearAnalysisSummary() *ComparisonUpdate {
	_u.mutation.ClearAnalysisSummary()
	return _u
}

// SetContract sets the "contract" edge to the Contract entity.
func (_u *ComparisonUpdate) SetContract(v *Contract) *ComparisonUpdate {
	return _u.SetContractID(v.ID)
}

// Mutation returns the ComparisonMutation object of the builder.
func (_u *ComparisonUpdate) Mutation() *ComparisonMutation {
	return _u.mutation
}

// ClearContract clears the "contract" edge to the Contract entity.
func (_u *ComparisonUpdate) ClearContract() *ComparisonUpdate {
	_u.mutation.ClearContract()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ComparisonUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ComparisonUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ComparisonUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ComparisonUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ComparisonUpdate) check() error {
	if v, ok := _u.mutation.ComparisonType(); ok {
		if err := comparison.ComparisonTypeValidator(v); err != nil {
			return &ValidationError{Name: "comparison_type", err: fmt.Errorf(`ent: validator failed for field "Comparison.comparison_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GptPrompt(); ok {
		if err := comparison.GptPromptValidator(v); err != nil {
			return &ValidationError{Name: "gpt_prompt", err: fmt.Errorf(`ent: validator failed for field "Comparison.gpt_prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GptResponse(); ok {
		if err := comparison.GptResponseValidator(v); err != nil {
			return &ValidationError{Name: "gpt_response", err: fmt.Errorf(`ent: validator failed for field "Comparison.gpt_response": %w`, err)}
		}
	}
	if _u.mutation.ContractCleared() && len(_u.mutation.ContractIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Comparison.contract"`)
	}
	return nil
}

func (_u *ComparisonUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(comparison.Table, comparison.Columns, sqlgraph.NewFieldSpec(comparison.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ComparisonType(); ok {
		_spec.SetField(comparison.FieldComparisonType, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompetitorFilename(); ok {
		_spec.SetField(comparison.FieldCompetitorFilename, field.TypeString, value)
	}
	if _u.mutation.CompetitorFilenameCleared() {
		_spec.ClearField(comparison.FieldCompetitorFilename, field.TypeString)
	}
	if value, ok := _u.mutation.CompetitorPdf(); ok {
		_spec.SetField(comparison.FieldCompetitorPdf, field.TypeBytes, value)
	}
	if _u.mutation.CompetitorPdfCleared() {
		_spec.ClearField(comparison.FieldCompetitorPdf, field.TypeBytes)
	}
	if value, ok := _u.mutation.CompetitorData(); ok {
		_spec.SetField(comparison.FieldCompetitorData, field.TypeJSON, value)
	}
	if _u.mutation.CompetitorDataCleared() {
		_spec.ClearField(comparison.FieldCompetitorData, field.TypeJSON)
	}
	if value, ok := _u.mutation.GptPrompt(); ok {
		_spec.SetField(comparison.FieldGptPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.GptResponse(); ok {
		_spec.SetField(comparison.FieldGptResponse, field.TypeString, value)
	}
	if value, ok := _u.mutation.ComparisonResult(); ok {
		_spec.SetField(comparison.FieldComparisonResult, field.TypeJSON, value)
	}
	if _u.mutation.ComparisonResultCleared() {
		_spec.ClearField(comparison.FieldComparisonResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.AnalysisSummary(); ok {
		_spec.SetField(comparison.FieldAnalysisSummary, field.TypeString, value)
	}
	if _u.mutation.AnalysisSummaryCleared() {
		_spec.ClearField(comparison.FieldAnalysisSummary, field.TypeString)
	}
	if _u.mutation.ContractCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   comparison.ContractTable,
			Columns: []string{comparison.ContractColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContractIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   comparison.ContractTable,
			Columns: []string{comparison.ContractColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{comparison.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ComparisonUpdateOne is the builder for updating a single Comparison entity.
type ComparisonUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ComparisonMutation
}

// SetContractID sets the "contract_id" field.
func (_u *ComparisonUpdateOne) SetContractID(v uuid.UUID) *ComparisonUpdateOne {
	_u.mutation.SetContractID(v)
	return _u
}

// SetNillableContractID sets the "contract_id" field if the given value is not nil.
func (_u *ComparisonUpdateOne) SetNillableContractID(v *uuid.UUID) *ComparisonUpdateOne {
	if v != nil {
		_u.SetContractID(*v)
	}
	return _u
}

// SetComparisonType sets the "comparison_type" field.
func (_u *ComparisonUpdateOne) SetComparisonType(v string) *ComparisonUpdateOne {
	_u.mutation.SetComparisonType(v)
	return _u
}

// SetNillableComparisonType sets the "comparison_type" field if the given value is not nil.
func (_u *ComparisonUpdateOne) SetNillableComparisonType(v *string) *ComparisonUpdateOne {
	if v != nil {
		_u.SetComparisonType(*v)
	}
	return _u
}

// SetCompetitorFilename sets the "competitor_filename" field.
func (_u *ComparisonUpdateOne) SetCompetitorFilename(v string) *ComparisonUpdateOne {
	_u.mutation.SetCompetitorFilename(v)
	return _u
}

// SetNillableCompetitorFilename sets the "competitor_filename" field if the given value is not nil.
func (_u *ComparisonUpdateOne) SetNillableCompetitorFilename(v *string) *ComparisonUpdateOne {
	if v != nil {
		_u.SetCompetitorFilename(*v)
	}
	return _u
}

// ClearCompetitorFilename clears the value of the "competitor_filename" field.
func (_u *ComparisonUpdateOne) ClearCompetitorFilename() *ComparisonUpdateOne {
	_u.mutation.ClearCompetitorFilename()
	return _u
}

// SetCompetitorPdf sets the "competitor_pdf" field.
func (_u *ComparisonUpdateOne) SetCompetitorPdf(v []byte) *ComparisonUpdateOne {
	_u.mutation.SetCompetitorPdf(v)
	return _u
}

// ClearCompetitorPdf clears the value of the "competitor_pdf" field.
func (_u *ComparisonUpdateOne) ClearCompetitorPdf() *ComparisonUpdateOne {
	_u.mutation.ClearCompetitorPdf()
	return _u
}

// SetCompetitorData sets the "competitor_data" field.
func (_u *ComparisonUpdateOne) SetCompetitorData(v map[string]interface{}) *ComparisonUpdateOne {
	_u.mutation.SetCompetitorData(v)
	return _u
}

// ClearCompetitorData clears the value of the "competitor_data" field.
func (_u *ComparisonUpdateOne) ClearCompetitorData() *ComparisonUpdateOne {
	_u.mutation.ClearCompetitorData()
	return _u
}

// SetGptPrompt sets the "gpt_prompt" field.
func (_u *ComparisonUpdateOne) SetGptPrompt(v string) *ComparisonUpdateOne {
	_u.mutation.SetGptPrompt(v)
	return _u
}

// SetNillableGptPrompt sets the "gpt_prompt" field if the given value is not nil.
func (_u *ComparisonUpdateOne) SetNillableGptPrompt(v *string) *ComparisonUpdateOne {
	if v != nil {
		_u.SetGptPrompt(*v)
	}
	return _u
}

// SetGptResponse sets the "gpt_response" field.
func (_u *ComparisonUpdateOne) SetGptResponse(v string) *ComparisonUpdateOne {
	_u.mutation.SetGptResponse(v)
	return _u
}

// SetNillableGptResponse sets the "gpt_response" field if the given value is not nil.
func (_u *ComparisonUpdateOne) SetNillableGptResponse(v *string) *ComparisonUpdateOne {
	if v != nil {
		_u.SetGptResponse(*v)
	}
	return _u
}

// SetComparisonResult sets the "comparison_result" field.
func (_u *ComparisonUpdateOne) SetComparisonResult(v map[string]interface{}) *ComparisonUpdateOne {
	_u.mutation.SetComparisonResult(v)
	return _u
}

// ClearComparisonResult clears the value of the "comparison_result" field.
func (_u *ComparisonUpdateOne) ClearComparisonResult() *ComparisonUpdateOne {
	_u.mutation.ClearComparisonResult()
	return _u
}

// SetAnalysisSummary sets the "analysis_summary" field.
func (_u *ComparisonUpdateOne) SetAnalysisSummary(v string) *ComparisonUpdateOne {
	_u.mutation.SetAnalysisSummary(v)
	return _u
}

// SetNillableAnalysisSummary sets the "analysis_summary" field if the given value is not nil.
func (_u *ComparisonUpdateOne) SetNillableAnalysisSummary(v *string) *ComparisonUpdateOne {
	if v != nil {
		_u.SetAnalysisSummary(*v)
	}
	return _u
}

// ClearAnalysisSummary clears the value of the "analysis_summary" field.
func (_u *ComparisonUpdateOne) ClearAnalysisSummary() *ComparisonUpdateOne {
	_u.mutation.ClearAnalysisSummary()
	return _u
}

// SetContract sets the "contract" edge to the Contract entity.
func (_u *ComparisonUpdateOne) SetContract(v *Contract) *ComparisonUpdateOne {
	return _u.SetContractID(v.ID)
}

// Mutation returns the ComparisonMutation object of the builder.
func (_u *ComparisonUpdateOne) Mutation() *ComparisonMutation {
	return _u.mutation
}

// ClearContract clears the "contract" edge to the Contract entity.
func (_u *ComparisonUpdateOne) ClearContract() *ComparisonUpdateOne {
	_u.mutation.ClearContract()
	return _u
}

// Where appends a list predicates to the ComparisonUpdate builder.
func (_u *ComparisonUpdateOne) Where(ps ...predicate.Comparison) *ComparisonUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ComparisonUpdateOne) Select(field string, fields ...string) *ComparisonUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Comparison entity.
func (_u *ComparisonUpdateOne) Save(ctx context.Context) (*Comparison, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ComparisonUpdateOne) SaveX(ctx context.Context) *Comparison {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ComparisonUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ComparisonUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ComparisonUpdateOne) check() error {
	if v, ok := _u.mutation.ComparisonType(); ok {
		if err := comparison.ComparisonTypeValidator(v); err != nil {
			return &ValidationError{Name: "comparison_type", err: fmt.Errorf(`ent: validator failed for field "Comparison.comparison_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GptPrompt(); ok {
		if err := comparison.GptPromptValidator(v); err != nil {
			return &ValidationError{Name: "gpt_prompt", err: fmt.Errorf(`ent: validator failed for field "Comparison.gpt_prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GptResponse(); ok {
		if err := comparison.GptResponseValidator(v); err != nil {
			return &ValidationError{Name: "gpt_response", err: fmt.Errorf(`ent: validator failed for field "Comparison.gpt_response": %w`, err)}
		}
	}
	if _u.mutation.ContractCleared() && len(_u.mutation.ContractIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Comparison.contract"`)
	}
	return nil
}

func (_u *ComparisonUpdateOne) sqlSave(ctx context.Context) (_node *Comparison, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(comparison.Table, comparison.Columns, sqlgraph.NewFieldSpec(comparison.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Comparison.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, comparison.FieldID)
		for _, f := range fields {
			if !comparison.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != comparison.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ComparisonType(); ok {
		_spec.SetField(comparison.FieldComparisonType, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompetitorFilename(); ok {
		_spec.SetField(comparison.FieldCompetitorFilename, field.TypeString, value)
	}
	if _u.mutation.CompetitorFilenameCleared() {
		_spec.ClearField(comparison.FieldCompetitorFilename, field.TypeString)
	}
	if value, ok := _u.mutation.CompetitorPdf(); ok {
		_spec.SetField(comparison.FieldCompetitorPdf, field.TypeBytes, value)
	}
	if _u.mutation.CompetitorPdfCleared() {
		_spec.ClearField(comparison.FieldCompetitorPdf, field.TypeBytes)
	}
	if value, ok := _u.mutation.CompetitorData(); ok {
		_spec.SetField(comparison.FieldCompetitorData, field.TypeJSON, value)
	}
	if _u.mutation.CompetitorDataCleared() {
		_spec.ClearField(comparison.FieldCompetitorData, field.TypeJSON)
	}
	if value, ok := _u.mutation.GptPrompt(); ok {
		_spec.SetField(comparison.FieldGptPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.GptResponse(); ok {
		_spec.SetField(comparison.FieldGptResponse, field.TypeString, value)
	}
	if value, ok := _u.mutation.ComparisonResult(); ok {
		_spec.SetField(comparison.FieldComparisonResult, field.TypeJSON, value)
	}
	if _u.mutation.ComparisonResultCleared() {
		_spec.ClearField(comparison.FieldComparisonResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.AnalysisSummary(); ok {
		_spec.SetField(comparison.FieldAnalysisSummary, field.TypeString, value)
	}
	if _u.mutation.AnalysisSummaryCleared() {
		_spec.ClearField(comparison.FieldAnalysisSummary, field.TypeString)
	}
	if _u.mutation.ContractCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   comparison.ContractTable,
			Columns: []string{comparison.ContractColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContractIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   comparison.ContractTable,
			Columns: []string{comparison.ContractColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Comparison{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{comparison.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
