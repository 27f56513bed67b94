// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cuentaconmigo/conmigo/ent/attemptevent"
	"github.com/cuentaconmigo/conmigo/ent/predicate"
	"github.com/google/uuid"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AttemptEventUpdate) SetUserID(v uuid.UUID) *AttemptEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableUserID(v *uuid.UUID) *AttemptEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetOperation sets the "operation" field.
func (_u *AttemptEventUpdate) SetOperation(v string) *AttemptEventUpdate {
	_u.mutation.SetOperation(v)
	return _u
}

// SetNillableOperation sets the "operation" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableOperation(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetOperation(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AttemptEventUpdate) SetDifficulty(v string) *AttemptEventUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableDifficulty(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetOperand1 sets the "operand1" field.
func (_u *AttemptEventUpdate) SetOperand1(v int) *AttemptEventUpdate {
	_u.mutation.ResetOperand1()
	_u.mutation.SetOperand1(v)
	return _u
}

// SetNillableOperand1 sets the "operand1" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableOperand1(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetOperand1(*v)
	}
	return _u
}

// AddOperand1 adds value to the "operand1" field.
func (_u *AttemptEventUpdate) AddOperand1(v int) *AttemptEventUpdate {
	_u.mutation.AddOperand1(v)
	return _u
}

// SetOperand2 sets the "operand2" field.
func (_u *AttemptEventUpdate) SetOperand2(v int) *AttemptEventUpdate {
	_u.mutation.ResetOperand2()
	_u.mutation.SetOperand2(v)
	return _u
}

// SetNillableOperand2 sets the "operand2" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableOperand2(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetOperand2(*v)
	}
	return _u
}

// AddOperand2 adds value to the "operand2" field.
func (_u *AttemptEventUpdate) AddOperand2(v int) *AttemptEventUpdate {
	_u.mutation.AddOperand2(v)
	return _u
}

// SetGiven sets the "given" field.
func (_u *AttemptEventUpdate) SetGiven(v int) *AttemptEventUpdate {
	_u.mutation.ResetGiven()
	_u.mutation.SetGiven(v)
	return _u
}

// SetNillableGiven sets the "given" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableGiven(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetGiven(*v)
	}
	return _u
}

// AddGiven adds value to the "given" field.
func (_u *AttemptEventUpdate) AddGiven(v int) *AttemptEventUpdate {
	_u.mutation.AddGiven(v)
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *AttemptEventUpdate) SetAnswer(v int) *AttemptEventUpdate {
	_u.mutation.ResetAnswer()
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableAnswer(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// AddAnswer adds value to the "answer" field.
func (_u *AttemptEventUpdate) AddAnswer(v int) *AttemptEventUpdate {
	_u.mutation.AddAnswer(v)
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *AttemptEventUpdate) SetIsCorrect(v bool) *AttemptEventUpdate {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableIsCorrect(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.Operation(); ok {
		if err := attemptevent.OperationValidator(v); err != nil {
			return &ValidationError{Name: "operation", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.operation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := attemptevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(attemptevent.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Operation(); ok {
		_spec.SetField(attemptevent.FieldOperation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(attemptevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Operand1(); ok {
		_spec.SetField(attemptevent.FieldOperand1, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOperand1(); ok {
		_spec.AddField(attemptevent.FieldOperand1, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Operand2(); ok {
		_spec.SetField(attemptevent.FieldOperand2, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOperand2(); ok {
		_spec.AddField(attemptevent.FieldOperand2, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Given(); ok {
		_spec.SetField(attemptevent.FieldGiven, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGiven(); ok {
		_spec.AddField(attemptevent.FieldGiven, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(attemptevent.FieldAnswer, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswer(); ok {
		_spec.AddField(attemptevent.FieldAnswer, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(attemptevent.FieldIsCorrect, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *AttemptEventUpdateOne) SetUserID(v uuid.UUID) *AttemptEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableUserID(v *uuid.UUID) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetOperation sets the "operation" field.
func (_u *AttemptEventUpdateOne) SetOperation(v string) *AttemptEventUpdateOne {
	_u.mutation.SetOperation(v)
	return _u
}

// SetNillableOperation sets the "operation" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableOperation(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetOperation(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AttemptEventUpdateOne) SetDifficulty(v string) *AttemptEventUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableDifficulty(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetOperand1 sets the "operand1" field.
func (_u *AttemptEventUpdateOne) SetOperand1(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetOperand1()
	_u.mutation.SetOperand1(v)
	return _u
}

// SetNillableOperand1 sets the "operand1" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableOperand1(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetOperand1(*v)
	}
	return _u
}

// AddOperand1 adds value to the "operand1" field.
func (_u *AttemptEventUpdateOne) AddOperand1(v int) *AttemptEventUpdateOne {
	_u.mutation.AddOperand1(v)
	return _u
}

// SetOperand2 sets the "operand2" field.
func (_u *AttemptEventUpdateOne) SetOperand2(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetOperand2()
	_u.mutation.SetOperand2(v)
	return _u
}

// SetNillableOperand2 sets the "operand2" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableOperand2(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetOperand2(*v)
	}
	return _u
}

// AddOperand2 adds value to the "operand2" field.
func (_u *AttemptEventUpdateOne) AddOperand2(v int) *AttemptEventUpdateOne {
	_u.mutation.AddOperand2(v)
	return _u
}

// SetGiven sets the "given" field.
func (_u *AttemptEventUpdateOne) SetGiven(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetGiven()
	_u.mutation.SetGiven(v)
	return _u
}

// SetNillableGiven sets the "given" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableGiven(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetGiven(*v)
	}
	return _u
}

// AddGiven adds value to the "given" field.
func (_u *AttemptEventUpdateOne) AddGiven(v int) *AttemptEventUpdateOne {
	_u.mutation.AddGiven(v)
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *AttemptEventUpdateOne) SetAnswer(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetAnswer()
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableAnswer(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// AddAnswer adds value to the "answer" field.
func (_u *AttemptEventUpdateOne) AddAnswer(v int) *AttemptEventUpdateOne {
	_u.mutation.AddAnswer(v)
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *AttemptEventUpdateOne) SetIsCorrect(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableIsCorrect(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.Operation(); ok {
		if err := attemptevent.OperationValidator(v); err != nil {
			return &ValidationError{Name: "operation", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.operation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := attemptevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(attemptevent.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Operation(); ok {
		_spec.SetField(attemptevent.FieldOperation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(attemptevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Operand1(); ok {
		_spec.SetField(attemptevent.FieldOperand1, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOperand1(); ok {
		_spec.AddField(attemptevent.FieldOperand1, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Operand2(); ok {
		_spec.SetField(attemptevent.FieldOperand2, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOperand2(); ok {
		_spec.AddField(attemptevent.FieldOperand2, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Given(); ok {
		_spec.SetField(attemptevent.FieldGiven, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGiven(); ok {
		_spec.AddField(attemptevent.FieldGiven, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(attemptevent.FieldAnswer, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswer(); ok {
		_spec.AddField(attemptevent.FieldAnswer, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(attemptevent.FieldIsCorrect, field.TypeBool, value)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
