// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aperrin/gardetonor/gen/ent/extractionlog"
	"github.com/aperrin/gardetonor/gen/ent/predicate"
)

// ExtractionLogUpdate is the builder for updating ExtractionLog entities.
type ExtractionLogUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionLogMutation
}

// Where appends a list predicates to the ExtractionLogUpdate builder.
func (_u *ExtractionLogUpdate) Where(ps ...predicate.ExtractionLog) *ExtractionLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *ExtractionLogUpdate) SetFilename(v string) *ExtractionLogUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ExtractionLogUpdate) SetNillableFilename(v *string) *ExtractionLogUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetContractType sets the "contract_type" field.
func (_u *ExtractionLogUpdate) SetContractType(v string) *ExtractionLogUpdate {
	_u.mutation.SetContractType(v)
	return _u
}

// SetNillableContractType sets the "contract_type" field if the given value is not nil.
func (_u *ExtractionLogUpdate) SetNillableContractType(v *string) *ExtractionLogUpdate {
	if v != nil {
		_u.SetContractType(*v)
	}
	return _u
}

// SetGptPrompt sets the "gpt_prompt" field.
func (_u *ExtractionLogUpdate) SetGptPrompt(v string) *ExtractionLogUpdate {
	_u.mutation.SetGptPrompt(v)
	return _u
}

// SetNillableGptPrompt sets the "gpt_prompt" field if the given value is not nil.
func (_u *ExtractionLogUpdate) SetNillableGptPrompt(v *string) *ExtractionLogUpdate {
	if v != nil {
		_u.SetGptPrompt(*v)
	}
	return _u
}

// SetGptResponse sets the "gpt_response" field.
func (_u *ExtractionLogUpdate) SetGptResponse(v string) *ExtractionLogUpdate {
	_u.mutation.SetGptResponse(v)
	return _u
}

// SetNillableGptResponse sets the "gpt_response" field if the given value is not nil.
func (_u *ExtractionLogUpdate) SetNillableGptResponse(v *string) *ExtractionLogUpdate {
	if v != nil {
		_u.SetGptResponse(*v)
	}
	return _u
}

// SetExtractedData sets the "extracted_data" field.
func (_u *ExtractionLogUpdate) SetExtractedData(v map[string]interface{}) *ExtractionLogUpdate {
	_u.mutation.SetExtractedData(v)
	return _u
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (_u *ExtractionLogUpdate) ClearExtractedData() *ExtractionLogUpdate {
	_u.mutation.ClearExtractedData()
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ExtractionLogUpdate) SetSuccess(v bool) *ExtractionLogUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ExtractionLogUpdate) SetNillableSuccess(v *bool) *ExtractionLogUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionLogUpdate) SetErrorMessage(v string) *ExtractionLogUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionLogUpdate) SetNillableErrorMessage(v *string) *ExtractionLogUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionLogUpdate) ClearErrorMessage() *ExtractionLogUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the ExtractionLogMutation object of the builder.
func (_u *ExtractionLogUpdate) Mutation() *ExtractionLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionLogUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := extractionlog.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ExtractionLog.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContractType(); ok {
		if err := extractionlog.ContractTypeValidator(v); err != nil {
			return &ValidationError{Name: "contract_type", err: fmt.Errorf(`ent: validator failed for field "ExtractionLog.contract_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GptPrompt(); ok {
		if err := extractionlog.GptPromptValidator(v); err != nil {
			return &ValidationError{Name: "gpt_prompt", err: fmt.Errorf(`ent: validator failed for field "ExtractionLog.gpt_prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GptResponse(); ok {
		if err := extractionlog.GptResponseValidator(v); err != nil {
			return &ValidationError{Name: "gpt_response", err: fmt.Errorf(`ent: validator failed for field "ExtractionLog.gpt_response": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractionLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionlog.Table, extractionlog.Columns, sqlgraph.NewFieldSpec(extractionlog.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(extractionlog.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContractType(); ok {
		_spec.SetField(extractionlog.FieldContractType, field.TypeString, value)
	}
	if value, ok := _u.mutation.GptPrompt(); ok {
		_spec.SetField(extractionlog.FieldGptPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.GptResponse(); ok {
		_spec.SetField(extractionlog.FieldGptResponse, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedData(); ok {
		_spec.SetField(extractionlog.FieldExtractedData, field.TypeJSON, value)
	}
	if _u.mutation.ExtractedDataCleared() {
		_spec.ClearField(extractionlog.FieldExtractedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(extractionlog.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionlog.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractionlog.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionLogUpdateOne is the builder for updating a single ExtractionLog entity.
type ExtractionLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionLogMutation
}

// SetFilename sets the "filename" field.
func (_u *ExtractionLogUpdateOne) SetFilename(v string) *ExtractionLogUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ExtractionLogUpdateOne) SetNillableFilename(v *string) *ExtractionLogUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetContractType sets the "contract_type" field.
func (_u *ExtractionLogUpdateOne) SetContractType(v string) *ExtractionLogUpdateOne {
	_u.mutation.SetContractType(v)
	return _u
}

// SetNillableContractType sets the "contract_type" field if the given value is not nil.
func (_u *ExtractionLogUpdateOne) SetNillableContractType(v *string) *ExtractionLogUpdateOne {
	if v != nil {
		_u.SetContractType(*v)
	}
	return _u
}

// SetGptPrompt sets the "gpt_prompt" field.
func (_u *ExtractionLogUpdateOne) SetGptPrompt(v string) *ExtractionLogUpdateOne {
	_u.mutation.SetGptPrompt(v)
	return _u
}

// SetNillableGptPrompt sets the "gpt_prompt" field if the given value is not nil.
func (_u *ExtractionLogUpdateOne) SetNillableGptPrompt(v *string) *ExtractionLogUpdateOne {
	if v != nil {
		_u.SetGptPrompt(*v)
	}
	return _u
}

// SetGptResponse sets the "gpt_response" field.
func (_u *ExtractionLogUpdateOne) SetGptResponse(v string) *ExtractionLogUpdateOne {
	_u.mutation.SetGptResponse(v)
	return _u
}

// SetNillableGptResponse sets the "gpt_response" field if the given value is not nil.
func (_u *ExtractionLogUpdateOne) SetNillableGptResponse(v *string) *ExtractionLogUpdateOne {
	if v != nil {
		_u.SetGptResponse(*v)
	}
	return _u
}

// SetExtractedData sets the "extracted_data" field.
func (_u *ExtractionLogUpdateOne) SetExtractedData(v map[string]interface{}) *ExtractionLogUpdateOne {
	_u.mutation.SetExtractedData(v)
	return _u
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (_u *ExtractionLogUpdateOne) ClearExtractedData() *ExtractionLogUpdateOne {
	_u.mutation.ClearExtractedData()
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ExtractionLogUpdateOne) SetSuccess(v bool) *ExtractionLogUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ExtractionLogUpdateOne) SetNillableSuccess(v *bool) *ExtractionLogUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionLogUpdateOne) SetErrorMessage(v string) *ExtractionLogUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionLogUpdateOne) SetNillableErrorMessage(v *string) *ExtractionLogUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionLogUpdateOne) ClearErrorMessage() *ExtractionLogUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the ExtractionLogMutation object of the builder.
func (_u *ExtractionLogUpdateOne) Mutation() *ExtractionLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExtractionLogUpdate builder.
func (_u *ExtractionLogUpdateOne) Where(ps ...predicate.ExtractionLog) *ExtractionLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionLogUpdateOne) Select(field string, fields ...string) *ExtractionLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractionLog entity.
func (_u *ExtractionLogUpdateOne) Save(ctx context.Context) (*ExtractionLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionLogUpdateOne) SaveX(ctx context.Context) *ExtractionLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionLogUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := extractionlog.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ExtractionLog.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContractType(); ok {
		if err := extractionlog.ContractTypeValidator(v); err != nil {
			return &ValidationError{Name: "contract_type", err: fmt.Errorf(`ent: validator failed for field "ExtractionLog.contract_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GptPrompt(); ok {
		if err := extractionlog.GptPromptValidator(v); err != nil {
			return &ValidationError{Name: "gpt_prompt", err: fmt.Errorf(`ent: validator failed for field "ExtractionLog.gpt_prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GptResponse(); ok {
		if err := extractionlog.GptResponseValidator(v); err != nil {
			return &ValidationError{Name: "gpt_response", err: fmt.Errorf(`ent: validator failed for field "ExtractionLog.gpt_response": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractionLogUpdateOne) sqlSave(ctx context.Context) (_node *ExtractionLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionlog.Table, extractionlog.Columns, sqlgraph.NewFieldSpec(extractionlog.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractionLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractionlog.FieldID)
		for _, f := range fields {
			if !extractionlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractionlog.FieldID {
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
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(extractionlog.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContractType(); ok {
		_spec.SetField(extractionlog.FieldContractType, field.TypeString, value)
	}
	if value, ok := _u.mutation.GptPrompt(); ok {
		_spec.SetField(extractionlog.FieldGptPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.GptResponse(); ok {
		_spec.SetField(extractionlog.FieldGptResponse, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedData(); ok {
		_spec.SetField(extractionlog.FieldExtractedData, field.TypeJSON, value)
	}
	if _u.mutation.ExtractedDataCleared() {
		_spec.ClearField(extractionlog.FieldExtractedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(extractionlog.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionlog.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractionlog.FieldErrorMessage, field.TypeString)
	}
	_node = &ExtractionLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
