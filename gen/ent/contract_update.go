// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aperrin/gardetonor/gen/ent/comparison"
	"github.com/aperrin/gardetonor/gen/ent/contract"
	"github.com/aperrin/gardetonor/gen/ent/predicate"
	"github.com/google/uuid"
)

// ContractUpdate is the builder for updating Contract entities.
type ContractUpdate struct {
	config
	hooks    []Hook
	mutation *ContractMutation
}

// Where appends a list predicates to the ContractUpdate builder.
func (_u *ContractUpdate) Where(ps ...predicate.Contract) *ContractUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *ContractUpdate) SetProvider(v string) *ContractUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableProvider(v *string) *ContractUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *ContractUpdate) SetStartDate(v time.Time) *ContractUpdate {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableStartDate(v *time.Time) *ContractUpdate {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *ContractUpdate) SetEndDate(v time.Time) *ContractUpdate {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableEndDate(v *time.Time) *ContractUpdate {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// ClearEndDate clears the value of the "end_date" field.
func (_u *ContractUpdate) ClearEndDate() *ContractUpdate {
	_u.mutation.ClearEndDate()
	return _u
}

// SetAnniversaryDate sets the "anniversary_date" field.
func (_u *ContractUpdate) SetAnniversaryDate(v time.Time) *ContractUpdate {
	_u.mutation.SetAnniversaryDate(v)
	return _u
}

// SetNillableAnniversaryDate sets the "anniversary_date" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableAnniversaryDate(v *time.Time) *ContractUpdate {
	if v != nil {
		_u.SetAnniversaryDate(*v)
	}
	return _u
}

// SetContractData sets the "contract_data" field.
func (_u *ContractUpdate) SetContractData(v map[string]interface{}) *ContractUpdate {
	_u.mutation.SetContractData(v)
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *ContractUpdate) SetOriginalFilename(v string) *ContractUpdate {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableOriginalFilename(v *string) *ContractUpdate {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// ClearOriginalFilename clears the value of the "original_filename" field.
func (_u *ContractUpdate) ClearOriginalFilename() *ContractUpdate {
	_u.mutation.ClearOriginalFilename()
	return _u
}

// SetPdfContent sets the "pdf_content" field.
func (_u *ContractUpdate) SetPdfContent(v []byte) *ContractUpdate {
	_u.mutation.SetPdfContent(v)
	return _u
}

// ClearPdfContent clears the value of the "pdf_content" field.
func (_u *ContractUpdate) ClearPdfContent() *ContractUpdate {
	_u.mutation.ClearPdfContent()
	return _u
}

// SetValidated sets the "validated" field.
func (_u *ContractUpdate) SetValidated(v bool) *ContractUpdate {
	_u.mutation.SetValidated(v)
	return _u
}

// SetNillableValidated sets the "validated" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableValidated(v *bool) *ContractUpdate {
	if v != nil {
		_u.SetValidated(*v)
	}
	return _u
}

// SetIsSimulation sets the "is_simulation" field.
func (_u *ContractUpdate) SetIsSimulation(v bool) *ContractUpdate {
	_u.mutation.SetIsSimulation(v)
	return _u
}

// SetNillableIsSimulation sets the "is_simulation" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableIsSimulation(v *bool) *ContractUpdate {
	if v != nil {
		_u.SetIsSimulation(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ContractUpdate) SetCreatedAt(v time.Time) *ContractUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableCreatedAt(v *time.Time) *ContractUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContractUpdate) SetUpdatedAt(v time.Time) *ContractUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddComparisonIDs adds the "comparisons" edge to the Comparison entity by IDs.
func (_u *ContractUpdate) AddComparisonIDs(ids ...uuid.UUID) *ContractUpdate {
	_u.mutation.AddComparisonIDs(ids...)
	return _u
}

// AddComparisons adds the "comparisons" edges to the Comparison entity.
func (_u *ContractUpdate) AddComparisons(v ...*Comparison) *ContractUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddComparisonIDs(ids...)
}

// Mutation returns the ContractMutation object of the builder.
func (_u *ContractUpdate) Mutation() *ContractMutation {
	return _u.mutation
}

// ClearComparisons clears all "comparisons" edges to the Comparison entity.
func (_u *ContractUpdate) ClearComparisons() *ContractUpdate {
	_u.mutation.ClearComparisons()
	return _u
}

// RemoveComparisonIDs removes the "comparisons" edge to Comparison entities by IDs.
func (_u *ContractUpdate) RemoveComparisonIDs(ids ...uuid.UUID) *ContractUpdate {
	_u.mutation.RemoveComparisonIDs(ids...)
	return _u
}

// RemoveComparisons removes "comparisons" edges to Comparison entities.
func (_u *ContractUpdate) RemoveComparisons(v ...*Comparison) *ContractUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveComparisonIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContractUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContractUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContractUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContractUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContractUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contract.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContractUpdate) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := contract.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "Contract.provider": %w`, err)}
		}
	}
	return nil
}

func (_u *ContractUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contract.Table, contract.Columns, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(contract.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(contract.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(contract.FieldEndDate, field.TypeTime, value)
	}
	if _u.mutation.EndDateCleared() {
		_spec.ClearField(contract.FieldEndDate, field.TypeTime)
	}
	if value, ok := _u.mutation.AnniversaryDate(); ok {
		_spec.SetField(contract.FieldAnniversaryDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ContractData(); ok {
		_spec.SetField(contract.FieldContractData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(contract.FieldOriginalFilename, field.TypeString, value)
	}
	if _u.mutation.OriginalFilenameCleared() {
		_spec.ClearField(contract.FieldOriginalFilename, field.TypeString)
	}
	if value, ok := _u.mutation.PdfContent(); ok {
		_spec.SetField(contract.FieldPdfContent, field.TypeBytes, value)
	}
	if _u.mutation.PdfContentCleared() {
		_spec.ClearField(contract.FieldPdfContent, field.TypeBytes)
	}
	if value, ok := _u.mutation.Validated(); ok {
		_spec.SetField(contract.FieldValidated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsSimulation(); ok {
		_spec.SetField(contract.FieldIsSimulation, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(contract.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contract.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ComparisonsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedComparisonsIDs(); len(nodes) > 0 && !_u.mutation.ComparisonsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ComparisonsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contract.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContractUpdateOne is the builder for updating a single Contract entity.
type ContractUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContractMutation
}

// SetProvider sets the "provider" field.
func (_u *ContractUpdateOne) SetProvider(v string) *ContractUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableProvider(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *ContractUpdateOne) SetStartDate(v time.Time) *ContractUpdateOne {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableStartDate(v *time.Time) *ContractUpdateOne {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *ContractUpdateOne) SetEndDate(v time.Time) *ContractUpdateOne {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableEndDate(v *time.Time) *ContractUpdateOne {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// ClearEndDate clears the value of the "end_date" field.
func (_u *ContractUpdateOne) ClearEndDate() *ContractUpdateOne {
	_u.mutation.ClearEndDate()
	return _u
}

// SetAnniversaryDate sets the "anniversary_date" field.
func (_u *ContractUpdateOne) SetAnniversaryDate(v time.Time) *ContractUpdateOne {
	_u.mutation.SetAnniversaryDate(v)
	return _u
}

// SetNillableAnniversaryDate sets the "anniversary_date" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableAnniversaryDate(v *time.Time) *ContractUpdateOne {
	if v != nil {
		_u.SetAnniversaryDate(*v)
	}
	return _u
}

// SetContractData sets the "contract_data" field.
func (_u *ContractUpdateOne) SetContractData(v map[string]interface{}) *ContractUpdateOne {
	_u.mutation.SetContractData(v)
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *ContractUpdateOne) SetOriginalFilename(v string) *ContractUpdateOne {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableOriginalFilename(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// ClearOriginalFilename clears the value of the "original_filename" field.
func (_u *ContractUpdateOne) ClearOriginalFilename() *ContractUpdateOne {
	_u.mutation.ClearOriginalFilename()
	return _u
}

// SetPdfContent sets the "pdf_content" field.
func (_u *ContractUpdateOne) SetPdfContent(v []byte) *ContractUpdateOne {
	_u.mutation.SetPdfContent(v)
	return _u
}

// ClearPdfContent clears the value of the "pdf_content" field.
func (_u *ContractUpdateOne) ClearPdfContent() *ContractUpdateOne {
	_u.mutation.ClearPdfContent()
	return _u
}

// SetValidated sets the "validated" field.
func (_u *ContractUpdateOne) SetValidated(v bool) *ContractUpdateOne {
	_u.mutation.SetValidated(v)
	return _u
}

// SetNillableValidated sets the "validated" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableValidated(v *bool) *ContractUpdateOne {
	if v != nil {
		_u.SetValidated(*v)
	}
	return _u
}

// SetIsSimulation sets the "is_simulation" field.
func (_u *ContractUpdateOne) SetIsSimulation(v bool) *ContractUpdateOne {
	_u.mutation.SetIsSimulation(v)
	return _u
}

// SetNillableIsSimulation sets the "is_simulation" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableIsSimulation(v *bool) *ContractUpdateOne {
	if v != nil {
		_u.SetIsSimulation(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ContractUpdateOne) SetCreatedAt(v time.Time) *ContractUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableCreatedAt(v *time.Time) *ContractUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContractUpdateOne) SetUpdatedAt(v time.Time) *ContractUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddComparisonIDs adds the "comparisons" edge to the Comparison entity by IDs.
func (_u *ContractUpdateOne) AddComparisonIDs(ids ...uuid.UUID) *ContractUpdateOne {
	_u.mutation.AddComparisonIDs(ids...)
	return _u
}

// AddComparisons adds the "comparisons" edges to the Comparison entity.
func (_u *ContractUpdateOne) AddComparisons(v ...*Comparison) *ContractUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddComparisonIDs(ids...)
}

// Mutation returns the ContractMutation object of the builder.
func (_u *ContractUpdateOne) Mutation() *ContractMutation {
	return _u.mutation
}

// ClearComparisons clears all "comparisons" edges to the Comparison entity.
func (_u *ContractUpdateOne) ClearComparisons() *ContractUpdateOne {
	_u.mutation.ClearComparisons()
	return _u
}

// RemoveComparisonIDs removes the "comparisons" edge to Comparison entities by IDs.
func (_u *ContractUpdateOne) RemoveComparisonIDs(ids ...uuid.UUID) *ContractUpdateOne {
	_u.mutation.RemoveComparisonIDs(ids...)
	return _u
}

// RemoveComparisons removes "comparisons" edges to Comparison entities.
func (_u *ContractUpdateOne) RemoveComparisons(v ...*Comparison) *ContractUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveComparisonIDs(ids...)
}

// Where appends a list predicates to the ContractUpdate builder.
func (_u *ContractUpdateOne) Where(ps ...predicate.Contract) *ContractUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContractUpdateOne) Select(field string, fields ...string) *ContractUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Contract entity.
func (_u *ContractUpdateOne) Save(ctx context.Context) (*Contract, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContractUpdateOne) SaveX(ctx context.Context) *Contract {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContractUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContractUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContractUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contract.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContractUpdateOne) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := contract.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "Contract.provider": %w`, err)}
		}
	}
	return nil
}

func (_u *ContractUpdateOne) sqlSave(ctx context.Context) (_node *Contract, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contract.Table, contract.Columns, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Contract.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contract.FieldID)
		for _, f := range fields {
			if !contract.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contract.FieldID {
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
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(contract.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(contract.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(contract.FieldEndDate, field.TypeTime, value)
	}
	if _u.mutation.EndDateCleared() {
		_spec.ClearField(contract.FieldEndDate, field.TypeTime)
	}
	if value, ok := _u.mutation.AnniversaryDate(); ok {
		_spec.SetField(contract.FieldAnniversaryDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ContractData(); ok {
		_spec.SetField(contract.FieldContractData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(contract.FieldOriginalFilename, field.TypeString, value)
	}
	if _u.mutation.OriginalFilenameCleared() {
		_spec.ClearField(contract.FieldOriginalFilename, field.TypeString)
	}
	if value, ok := _u.mutation.PdfContent(); ok {
		_spec.SetField(contract.FieldPdfContent, field.TypeBytes, value)
	}
	if _u.mutation.PdfContentCleared() {
		_spec.ClearField(contract.FieldPdfContent, field.TypeBytes)
	}
	if value, ok := _u.mutation.Validated(); ok {
		_spec.SetField(contract.FieldValidated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsSimulation(); ok {
		_spec.SetField(contract.FieldIsSimulation, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(contract.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contract.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ComparisonsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedComparisonsIDs(); len(nodes) > 0 && !_u.mutation.ComparisonsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ComparisonsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Contract{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contract.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
