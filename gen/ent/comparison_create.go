// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aperrin/gardetonor/gen/ent/comparison"
	"github.com/aperrin/gardetonor/gen/ent/contract"
	"github.com/google/uuid"
)

// ComparisonCreate is the builder for creating a Comparison entity.
type ComparisonCreate struct {
	config
	mutation *ComparisonMutation
	hooks    []Hook
}

// SetContractID sets the "contract_id" field.
func (_c *ComparisonCreate) SetContractID(v uuid.UUID) *ComparisonCreate {
	_c.mutation.SetContractID(v)
	return _c
}

// SetComparisonType sets the "comparison_type" field.
func (_c *ComparisonCreate) SetComparisonType(v string) *ComparisonCreate {
	_c.mutation.SetComparisonType(v)
	return _c
}

// SetCompetitorFilename sets the "competitor_filename" field.
func (_c *ComparisonCreate) SetCompetitorFilename(v string) *ComparisonCreate {
	_c.mutation.SetCompetitorFilename(v)
	return _c
}

// SetNillableCompetitorFilename sets the "competitor_filename" field if the given value is not nil.
func (_c *ComparisonCreate) SetNillableCompetitorFilename(v *string) *ComparisonCreate {
	if v != nil {
		_c.SetCompetitorFilename(*v)
	}
	return _c
}

// SetCompetitorPdf sets the "competitor_pdf" field.
func (_c *ComparisonCreate) SetCompetitorPdf(v []byte) *ComparisonCreate {
	_c.mutation.SetCompetitorPdf(v)
	return _c
}

// SetCompetitorData sets the "competitor_data" field.
func (_c *ComparisonCreate) SetCompetitorData(v map[string]interface{}) *ComparisonCreate {
	_c.mutation.SetCompetitorData(v)
	return _c
}

// SetGptPrompt sets the "gpt_prompt" field.
func (_c *ComparisonCreate) SetGptPrompt(v string) *ComparisonCreate {
	_c.mutation.SetGptPrompt(v)
	return _c
}

// SetGptResponse sets the "gpt_response" field.
func (_c *ComparisonCreate) SetGptResponse(v string) *ComparisonCreate {
	_c.mutation.SetGptResponse(v)
	return _c
}

// SetComparisonResult sets the "comparison_result" field.
func (_c *ComparisonCreate) SetComparisonResult(v map[string]interface{}) *ComparisonCreate {
	_c.mutation.SetComparisonResult(v)
	return _c
}

// SetAnalysisSummary sets the "analysis_summary" field.
func (_c *ComparisonCreate) SetAnalysisSummary(v string) *ComparisonCreate {
	_c.mutation.SetAnalysisSummary(v)
	return _c
}

// SetNillableAnalysisSummary sets the "analysis_summary" field if the given value is not nil.
func (_c *ComparisonCreate) SetNillableAnalysisSummary(v *string) *ComparisonCreate {
	if v != nil {
		_c.SetAnalysisSummary(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ComparisonCreate) SetCreatedAt(v time.Time) *ComparisonCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ComparisonCreate) SetNillableCreatedAt(v *time.Time) *ComparisonCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ComparisonCreate) SetID(v uuid.UUID) *ComparisonCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ComparisonCreate) SetNillableID(v *uuid.UUID) *ComparisonCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetContract sets the "contract" edge to the Contract entity.
func (_c *ComparisonCreate) SetContract(v *Contract) *ComparisonCreate {
	return _c.SetContractID(v.ID)
}

// Mutation returns the ComparisonMutation object of the builder.
func (_c *ComparisonCreate) Mutation() *ComparisonMutation {
	return _c.mutation
}

// Save creates the Comparison in the database.
func (_c *ComparisonCreate) Save(ctx context.Context) (*Comparison, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ComparisonCreate) SaveX(ctx context.Context) *Comparison {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ComparisonCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ComparisonCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ComparisonCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := comparison.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := comparison.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ComparisonCreate) check() error {
	if _, ok := _c.mutation.ContractID(); !ok {
		return &ValidationError{Name: "contract_id", err: errors.New(`ent: missing required field "Comparison.contract_id"`)}
	}
	if _, ok := _c.mutation.ComparisonType(); !ok {
		return &ValidationError{Name: "comparison_type", err: errors.New(`ent: missing required field "Comparison.comparison_type"`)}
	}
	if v, ok := _c.mutation.ComparisonType(); ok {
		if err := comparison.ComparisonTypeValidator(v); err != nil {
			return &ValidationError{Name: "comparison_type", err: fmt.Errorf(`ent: validator failed for field "Comparison.comparison_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GptPrompt(); !ok {
		return &ValidationError{Name: "gpt_prompt", err: errors.New(`ent: missing required field "Comparison.gpt_prompt"`)}
	}
	if v, ok := _c.mutation.GptPrompt(); ok {
		if err := comparison.GptPromptValidator(v); err != nil {
			return &ValidationError{Name: "gpt_prompt", err: fmt.Errorf(`ent: validator failed for field "Comparison.gpt_prompt": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GptResponse(); !ok {
		return &ValidationError{Name: "gpt_response", err: errors.New(`ent: missing required field "Comparison.gpt_response"`)}
	}
	if v, ok := _c.mutation.GptResponse(); ok {
		if err := comparison.GptResponseValidator(v); err != nil {
			return &ValidationError{Name: "gpt_response", err: fmt.Errorf(`ent: validator failed for field "Comparison.gpt_response": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Comparison.created_at"`)}
	}
	if len(_c.mutation.ContractIDs()) == 0 {
		return &ValidationError{Name: "contract", err: errors.New(`ent: missing required edge "Comparison.contract"`)}
	}
	return nil
}

func (_c *ComparisonCreate) sqlSave(ctx context.Context) (*Comparison, error) {
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

func (_c *ComparisonCreate) createSpec() (*Comparison, *sqlgraph.CreateSpec) {
	var (
		_node = &Comparison{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(comparison.Table, sqlgraph.NewFieldSpec(comparison.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ComparisonType(); ok {
		_spec.SetField(comparison.FieldComparisonType, field.TypeString, value)
		_node.ComparisonType = value
	}
	if value, ok := _c.mutation.CompetitorFilename(); ok {
		_spec.SetField(comparison.FieldCompetitorFilename, field.TypeString, value)
		_node.CompetitorFilename = &value
	}
	if value, ok := _c.mutation.CompetitorPdf(); ok {
		_spec.SetField(comparison.FieldCompetitorPdf, field.TypeBytes, value)
		_node.CompetitorPdf = value
	}
	if value, ok := _c.mutation.CompetitorData(); ok {
		_spec.SetField(comparison.FieldCompetitorData, field.TypeJSON, value)
		_node.CompetitorData = value
	}
	if value, ok := _c.mutation.GptPrompt(); ok {
		_spec.SetField(comparison.FieldGptPrompt, field.TypeString, value)
		_node.GptPrompt = value
	}
	if value, ok := _c.mutation.GptResponse(); ok {
		_spec.SetField(comparison.FieldGptResponse, field.TypeString, value)
		_node.GptResponse = value
	}
	if value, ok := _c.mutation.ComparisonResult(); ok {
		_spec.SetField(comparison.FieldComparisonResult, field.TypeJSON, value)
		_node.ComparisonResult = value
	}
	if value, ok := _c.mutation.AnalysisSummary(); ok {
		_spec.SetField(comparison.FieldAnalysisSummary, field.TypeString, value)
		_node.AnalysisSummary = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(comparison.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ContractIDs(); len(nodes) > 0 {
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
		_node.ContractID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ComparisonCreateBulk is the builder for creating many Comparison entities in bulk.
type ComparisonCreateBulk struct {
	config
	err      error
	builders []*ComparisonCreate
}

// Save creates the Comparison entities in the database.
func (_c *ComparisonCreateBulk) Save(ctx context.Context) ([]*Comparison, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Comparison, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ComparisonMutation)
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
func (_c *ComparisonCreateBulk) SaveX(ctx context.Context) []*Comparison {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ComparisonCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ComparisonCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
