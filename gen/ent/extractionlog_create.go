// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aperrin/gardetonor/gen/ent/extractionlog"
	"github.com/google/uuid"
)

// ExtractionLogCreate is the builder for creating a ExtractionLog entity.
type ExtractionLogCreate struct {
	config
	mutation *ExtractionLogMutation
	hooks    []Hook
}

// SetFilename sets the "filename" field.
func (_c *ExtractionLogCreate) SetFilename(v string) *ExtractionLogCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetContractType sets the "contract_type" field.
func (_c *ExtractionLogCreate) SetContractType(v string) *ExtractionLogCreate {
	_c.mutation.SetContractType(v)
	return _c
}

// SetGptPrompt sets the "gpt_prompt" field.
func (_c *ExtractionLogCreate) SetGptPrompt(v string) *ExtractionLogCreate {
	_c.mutation.SetGptPrompt(v)
	return _c
}

// SetGptResponse sets the "gpt_response" field.
func (_c *ExtractionLogCreate) SetGptResponse(v string) *ExtractionLogCreate {
	_c.mutation.SetGptResponse(v)
	return _c
}

// SetExtractedData sets the "extracted_data" field.
func (_c *ExtractionLogCreate) SetExtractedData(v map[string]interface{}) *ExtractionLogCreate {
	_c.mutation.SetExtractedData(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *ExtractionLogCreate) SetSuccess(v bool) *ExtractionLogCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_c *ExtractionLogCreate) SetNillableSuccess(v *bool) *ExtractionLogCreate {
	if v != nil {
		_c.SetSuccess(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ExtractionLogCreate) SetErrorMessage(v string) *ExtractionLogCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ExtractionLogCreate) SetNillableErrorMessage(v *string) *ExtractionLogCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractionLogCreate) SetCreatedAt(v time.Time) *ExtractionLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractionLogCreate) SetNillableCreatedAt(v *time.Time) *ExtractionLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractionLogCreate) SetID(v uuid.UUID) *ExtractionLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractionLogCreate) SetNillableID(v *uuid.UUID) *ExtractionLogCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ExtractionLogMutation object of the builder.
func (_c *ExtractionLogCreate) Mutation() *ExtractionLogMutation {
	return _c.mutation
}

// Save creates the ExtractionLog in the database.
func (_c *ExtractionLogCreate) Save(ctx context.Context) (*ExtractionLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionLogCreate) SaveX(ctx context.Context) *ExtractionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionLogCreate) defaults() {
	if _, ok := _c.mutation.Success(); !ok {
		v := extractionlog.DefaultSuccess
		_c.mutation.SetSuccess(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extractionlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractionlog.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionLogCreate) check() error {
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "ExtractionLog.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := extractionlog.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ExtractionLog.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContractType(); !ok {
		return &ValidationError{Name: "contract_type", err: errors.New(`ent: missing required field "ExtractionLog.contract_type"`)}
	}
	if v, ok := _c.mutation.ContractType(); ok {
		if err := extractionlog.ContractTypeValidator(v); err != nil {
			return &ValidationError{Name: "contract_type", err: fmt.Errorf(`ent: validator failed for field "ExtractionLog.contract_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GptPrompt(); !ok {
		return &ValidationError{Name: "gpt_prompt", err: errors.New(`ent: missing required field "ExtractionLog.gpt_prompt"`)}
	}
	if v, ok := _c.mutation.GptPrompt(); ok {
		if err := extractionlog.GptPromptValidator(v); err != nil {
			return &ValidationError{Name: "gpt_prompt", err: fmt.Errorf(`ent: validator failed for field "ExtractionLog.gpt_prompt": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GptResponse(); !ok {
		return &ValidationError{Name: "gpt_response", err: errors.New(`ent: missing required field "ExtractionLog.gpt_response"`)}
	}
	if v, ok := _c.mutation.GptResponse(); ok {
		if err := extractionlog.GptResponseValidator(v); err != nil {
			return &ValidationError{Name: "gpt_response", err: fmt.Errorf(`ent: validator failed for field "ExtractionLog.gpt_response": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "ExtractionLog.success"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractionLog.created_at"`)}
	}
	return nil
}

func (_c *ExtractionLogCreate) sqlSave(ctx context.Context) (*ExtractionLog, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExtractionLogCreate) createSpec() (*ExtractionLog, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractionLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractionlog.Table, sqlgraph.NewFieldSpec(extractionlog.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(extractionlog.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.ContractType(); ok {
		_spec.SetField(extractionlog.FieldContractType, field.TypeString, value)
		_node.ContractType = value
	}
	if value, ok := _c.mutation.GptPrompt(); ok {
		_spec.SetField(extractionlog.FieldGptPrompt, field.TypeString, value)
		_node.GptPrompt = value
	}
	if value, ok := _c.mutation.GptResponse(); ok {
		_spec.SetField(extractionlog.FieldGptResponse, field.TypeString, value)
		_node.GptResponse = value
	}
	if value, ok := _c.mutation.ExtractedData(); ok {
		_spec.SetField(extractionlog.FieldExtractedData, field.TypeJSON, value)
		_node.ExtractedData = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(extractionlog.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionlog.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extractionlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ExtractionLogCreateBulk is the builder for creating many ExtractionLog entities in bulk.
type ExtractionLogCreateBulk struct {
	config
	err      error
	builders []*ExtractionLogCreate
}

// Save creates the ExtractionLog entities in the database.
func (_c *ExtractionLogCreateBulk) Save(ctx context.Context) ([]*ExtractionLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractionLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionLogMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExtractionLogCreateBulk) SaveX(ctx context.Context) []*ExtractionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
