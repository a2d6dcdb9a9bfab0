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

// ContractCreate is the builder for creating a Contract entity.
type ContractCreate struct {
	config
	mutation *ContractMutation
	hooks    []Hook
}

// SetContractType sets the "contract_type" field.
func (_c *ContractCreate) SetContractType(v string) *ContractCreate {
	_c.mutation.SetContractType(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *ContractCreate) SetProvider(v string) *ContractCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *ContractCreate) SetStartDate(v time.Time) *ContractCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetEndDate sets the "end_date" field.
func (_c *ContractCreate) SetEndDate(v time.Time) *ContractCreate {
	_c.mutation.SetEndDate(v)
	return _c
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_c *ContractCreate) SetNillableEndDate(v *time.Time) *ContractCreate {
	if v != nil {
		_c.SetEndDate(*v)
	}
	return _c
}

// SetAnniversaryDate sets the "anniversary_date" field.
func (_c *ContractCreate) SetAnniversaryDate(v time.Time) *ContractCreate {
	_c.mutation.SetAnniversaryDate(v)
	return _c
}

// SetContractData sets the "contract_data" field.
func (_c *ContractCreate) SetContractData(v map[string]interface{}) *ContractCreate {
	_c.mutation.SetContractData(v)
	return _c
}

// SetOriginalFilename sets the "original_filename" field.
func (_c *ContractCreate) SetOriginalFilename(v string) *ContractCreate {
	_c.mutation.SetOriginalFilename(v)
	return _c
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_c *ContractCreate) SetNillableOriginalFilename(v *string) *ContractCreate {
	if v != nil {
		_c.SetOriginalFilename(*v)
	}
	return _c
}

// SetPdfContent sets the "pdf_content" field.
func (_c *ContractCreate) SetPdfContent(v []byte) *ContractCreate {
	_c.mutation.SetPdfContent(v)
	return _c
}

// SetValidated sets the "validated" field.
func (_c *ContractCreate) SetValidated(v bool) *ContractCreate {
	_c.mutation.SetValidated(v)
	return _c
}

// SetNillableValidated sets the "validated" field if the given value is not nil.
func (_c *ContractCreate) SetNillableValidated(v *bool) *ContractCreate {
	if v != nil {
		_c.SetValidated(*v)
	}
	return _c
}

// SetIsSimulation sets the "is_simulation" field.
func (_c *ContractCreate) SetIsSimulation(v bool) *ContractCreate {
	_c.mutation.SetIsSimulation(v)
	return _c
}

// SetNillableIsSimulation sets the "is_simulation" field if the given value is not nil.
func (_c *ContractCreate) SetNillableIsSimulation(v *bool) *ContractCreate {
	if v != nil {
		_c.SetIsSimulation(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContractCreate) SetCreatedAt(v time.Time) *ContractCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContractCreate) SetNillableCreatedAt(v *time.Time) *ContractCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ContractCreate) SetUpdatedAt(v time.Time) *ContractCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ContractCreate) SetNillableUpdatedAt(v *time.Time) *ContractCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContractCreate) SetID(v uuid.UUID) *ContractCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ContractCreate) SetNillableID(v *uuid.UUID) *ContractCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddComparisonIDs adds the "comparisons" edge to the Comparison entity by IDs.
func (_c *ContractCreate) AddComparisonIDs(ids ...uuid.UUID) *ContractCreate {
	_c.mutation.AddComparisonIDs(ids...)
	return _c
}

// AddComparisons adds the "comparisons" edges to the Comparison entity.
func (_c *ContractCreate) AddComparisons(v ...*Comparison) *ContractCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddComparisonIDs(ids...)
}

// Mutation returns the ContractMutation object of the builder.
func (_c *ContractCreate) Mutation() *ContractMutation {
	return _c.mutation
}

// Save creates the Contract in the database.
func (_c *ContractCreate) Save(ctx context.Context) (*Contract, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContractCreate) SaveX(ctx context.Context) *Contract {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContractCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContractCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContractCreate) defaults() {
	if _, ok := _c.mutation.Validated(); !ok {
		v := contract.DefaultValidated
		_c.mutation.SetValidated(v)
	}
	if _, ok := _c.mutation.IsSimulation(); !ok {
		v := contract.DefaultIsSimulation
		_c.mutation.SetIsSimulation(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := contract.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := contract.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := contract.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContractCreate) check() error {
	if _, ok := _c.mutation.ContractType(); !ok {
		return &ValidationError{Name: "contract_type", err: errors.New(`ent: missing required field "Contract.contract_type"`)}
	}
	if v, ok := _c.mutation.ContractType(); ok {
		if err := contract.ContractTypeValidator(v); err != nil {
			return &ValidationError{Name: "contract_type", err: fmt.Errorf(`ent: validator failed for field "Contract.contract_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "Contract.provider"`)}
	}
	if v, ok := _c.mutation.Provider(); ok {
		if err := contract.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "Contract.provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartDate(); !ok {
		return &ValidationError{Name: "start_date", err: errors.New(`ent: missing required field "Contract.start_date"`)}
	}
	if _, ok := _c.mutation.AnniversaryDate(); !ok {
		return &ValidationError{Name: "anniversary_date", err: errors.New(`ent: missing required field "Contract.anniversary_date"`)}
	}
	if _, ok := _c.mutation.ContractData(); !ok {
		return &ValidationError{Name: "contract_data", err: errors.New(`ent: missing required field "Contract.contract_data"`)}
	}
	if _, ok := _c.mutation.Validated(); !ok {
		return &ValidationError{Name: "validated", err: errors.New(`ent: missing required field "Contract.validated"`)}
	}
	if _, ok := _c.mutation.IsSimulation(); !ok {
		return &ValidationError{Name: "is_simulation", err: errors.New(`ent: missing required field "Contract.is_simulation"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Contract.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Contract.updated_at"`)}
	}
	return nil
}

func (_c *ContractCreate) sqlSave(ctx context.Context) (*Contract, error) {
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

func (_c *ContractCreate) createSpec() (*Contract, *sqlgraph.CreateSpec) {
	var (
		_node = &Contract{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contract.Table, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ContractType(); ok {
		_spec.SetField(contract.FieldContractType, field.TypeString, value)
		_node.ContractType = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(contract.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(contract.FieldStartDate, field.TypeTime, value)
		_node.StartDate = value
	}
	if value, ok := _c.mutation.EndDate(); ok {
		_spec.SetField(contract.FieldEndDate, field.TypeTime, value)
		_node.EndDate = &value
	}
	if value, ok := _c.mutation.AnniversaryDate(); ok {
		_spec.SetField(contract.FieldAnniversaryDate, field.TypeTime, value)
		_node.AnniversaryDate = value
	}
	if value, ok := _c.mutation.ContractData(); ok {
		_spec.SetField(contract.FieldContractData, field.TypeJSON, value)
		_node.ContractData = value
	}
	if value, ok := _c.mutation.OriginalFilename(); ok {
		_spec.SetField(contract.FieldOriginalFilename, field.TypeString, value)
		_node.OriginalFilename = &value
	}
	if value, ok := _c.mutation.PdfContent(); ok {
		_spec.SetField(contract.FieldPdfContent, field.TypeBytes, value)
		_node.PdfContent = value
	}
	if value, ok := _c.mutation.Validated(); ok {
		_spec.SetField(contract.FieldValidated, field.TypeBool, value)
		_node.Validated = value
	}
	if value, ok := _c.mutation.IsSimulation(); ok {
		_spec.SetField(contract.FieldIsSimulation, field.TypeBool, value)
		_node.IsSimulation = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(contract.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(contract.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ComparisonsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.ComparisonsTable,
			Columns: []string{contract.ComparisonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(comparison.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ContractCreateBulk is the builder for creating many Contract entities in bulk.
type ContractCreateBulk struct {
	config
	err      error
	builders []*ContractCreate
}

// Save creates the Contract entities in the database.
func (_c *ContractCreateBulk) Save(ctx context.Context) ([]*Contract, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Contract, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContractMutation)
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
func (_c *ContractCreateBulk) SaveX(ctx context.Context) []*Contract {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContractCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContractCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
