// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/bigfive/ent/predicate"
	"github.com/abhisek/bigfive/ent/result"
)

// ResultUpdate is the builder for updating Result entities.
type ResultUpdate struct {
	config
	hooks    []Hook
	mutation *ResultMutation
}

// Where appends a list predicates to the ResultUpdate builder.
func (_u *ResultUpdate) Where(ps ...predicate.Result) *ResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ResultUpdate) SetUpdatedAt(v time.Time) *ResultUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTestID sets the "test_id" field.
func (_u *ResultUpdate) SetTestID(v string) *ResultUpdate {
	_u.mutation.SetTestID(v)
	return _u
}

// SetNillableTestID sets the "test_id" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableTestID(v *string) *ResultUpdate {
	if v != nil {
		_u.SetTestID(*v)
	}
	return _u
}

// SetLang sets the "lang" field.
func (_u *ResultUpdate) SetLang(v string) *ResultUpdate {
	_u.mutation.SetLang(v)
	return _u
}

// SetNillableLang sets the "lang" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableLang(v *string) *ResultUpdate {
	if v != nil {
		_u.SetLang(*v)
	}
	return _u
}

// ClearLang clears the value of the "lang" field.
func (_u *ResultUpdate) ClearLang() *ResultUpdate {
	_u.mutation.ClearLang()
	return _u
}

// SetInvalid sets the "invalid" field.
func (_u *ResultUpdate) SetInvalid(v bool) *ResultUpdate {
	_u.mutation.SetInvalid(v)
	return _u
}

// SetNillableInvalid sets the "invalid" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableInvalid(v *bool) *ResultUpdate {
	if v != nil {
		_u.SetInvalid(*v)
	}
	return _u
}

// SetTimeElapsed sets the "time_elapsed" field.
func (_u *ResultUpdate) SetTimeElapsed(v int) *ResultUpdate {
	_u.mutation.ResetTimeElapsed()
	_u.mutation.SetTimeElapsed(v)
	return _u
}

// SetNillableTimeElapsed sets the "time_elapsed" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableTimeElapsed(v *int) *ResultUpdate {
	if v != nil {
		_u.SetTimeElapsed(*v)
	}
	return _u
}

// AddTimeElapsed adds value to the "time_elapsed" field.
func (_u *ResultUpdate) AddTimeElapsed(v int) *ResultUpdate {
	_u.mutation.AddTimeElapsed(v)
	return _u
}

// SetDateStamp sets the "date_stamp" field.
func (_u *ResultUpdate) SetDateStamp(v time.Time) *ResultUpdate {
	_u.mutation.SetDateStamp(v)
	return _u
}

// SetNillableDateStamp sets the "date_stamp" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableDateStamp(v *time.Time) *ResultUpdate {
	if v != nil {
		_u.SetDateStamp(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *ResultUpdate) SetData(v json.RawMessage) *ResultUpdate {
	_u.mutation.SetData(v)
	return _u
}

// AppendData appends value to the "data" field.
func (_u *ResultUpdate) AppendData(v json.RawMessage) *ResultUpdate {
	_u.mutation.AppendData(v)
	return _u
}

// Mutation returns the ResultMutation object of the builder.
func (_u *ResultUpdate) Mutation() *ResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResultUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ResultUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := result.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(result.Table, result.Columns, sqlgraph.NewFieldSpec(result.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(result.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TestID(); ok {
		_spec.SetField(result.FieldTestID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Lang(); ok {
		_spec.SetField(result.FieldLang, field.TypeString, value)
	}
	if _u.mutation.LangCleared() {
		_spec.ClearField(result.FieldLang, field.TypeString)
	}
	if value, ok := _u.mutation.Invalid(); ok {
		_spec.SetField(result.FieldInvalid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeElapsed(); ok {
		_spec.SetField(result.FieldTimeElapsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeElapsed(); ok {
		_spec.AddField(result.FieldTimeElapsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DateStamp(); ok {
		_spec.SetField(result.FieldDateStamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(result.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, result.FieldData, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{result.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResultUpdateOne is the builder for updating a single Result entity.
type ResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResultMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ResultUpdateOne) SetUpdatedAt(v time.Time) *ResultUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTestID sets the "test_id" field.
func (_u *ResultUpdateOne) SetTestID(v string) *ResultUpdateOne {
	_u.mutation.SetTestID(v)
	return _u
}

// SetNillableTestID sets the "test_id" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableTestID(v *string) *ResultUpdateOne {
	if v != nil {
		_u.SetTestID(*v)
	}
	return _u
}

// SetLang sets the "lang" field.
func (_u *ResultUpdateOne) SetLang(v string) *ResultUpdateOne {
	_u.mutation.SetLang(v)
	return _u
}

// SetNillableLang sets the "lang" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableLang(v *string) *ResultUpdateOne {
	if v != nil {
		_u.SetLang(*v)
	}
	return _u
}

// ClearLang clears the value of the "lang" field.
func (_u *ResultUpdateOne) ClearLang() *ResultUpdateOne {
	_u.mutation.ClearLang()
	return _u
}

// SetInvalid sets the "invalid" field.
func (_u *ResultUpdateOne) SetInvalid(v bool) *ResultUpdateOne {
	_u.mutation.SetInvalid(v)
	return _u
}

// SetNillableInvalid sets the "invalid" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableInvalid(v *bool) *ResultUpdateOne {
	if v != nil {
		_u.SetInvalid(*v)
	}
	return _u
}

// SetTimeElapsed sets the "time_elapsed" field.
func (_u *ResultUpdateOne) SetTimeElapsed(v int) *ResultUpdateOne {
	_u.mutation.ResetTimeElapsed()
	_u.mutation.SetTimeElapsed(v)
	return _u
}

// SetNillableTimeElapsed sets the "time_elapsed" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableTimeElapsed(v *int) *ResultUpdateOne {
	if v != nil {
		_u.SetTimeElapsed(*v)
	}
	return _u
}

// AddTimeElapsed adds value to the "time_elapsed" field.
func (_u *ResultUpdateOne) AddTimeElapsed(v int) *ResultUpdateOne {
	_u.mutation.AddTimeElapsed(v)
	return _u
}

// SetDateStamp sets the "date_stamp" field.
func (_u *ResultUpdateOne) SetDateStamp(v time.Time) *ResultUpdateOne {
	_u.mutation.SetDateStamp(v)
	return _u
}

// SetNillableDateStamp sets the "date_stamp" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableDateStamp(v *time.Time) *ResultUpdateOne {
	if v != nil {
		_u.SetDateStamp(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *ResultUpdateOne) SetData(v json.RawMessage) *ResultUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// AppendData appends value to the "data" field.
func (_u *ResultUpdateOne) AppendData(v json.RawMessage) *ResultUpdateOne {
	_u.mutation.AppendData(v)
	return _u
}

// Mutation returns the ResultMutation object of the builder.
func (_u *ResultUpdateOne) Mutation() *ResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResultUpdate builder.
func (_u *ResultUpdateOne) Where(ps ...predicate.Result) *ResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResultUpdateOne) Select(field string, fields ...string) *ResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Result entity.
func (_u *ResultUpdateOne) Save(ctx context.Context) (*Result, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResultUpdateOne) SaveX(ctx context.Context) *Result {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ResultUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := result.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ResultUpdateOne) sqlSave(ctx context.Context) (_node *Result, err error) {
	_spec := sqlgraph.NewUpdateSpec(result.Table, result.Columns, sqlgraph.NewFieldSpec(result.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Result.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, result.FieldID)
		for _, f := range fields {
			if !result.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != result.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(result.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TestID(); ok {
		_spec.SetField(result.FieldTestID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Lang(); ok {
		_spec.SetField(result.FieldLang, field.TypeString, value)
	}
	if _u.mutation.LangCleared() {
		_spec.ClearField(result.FieldLang, field.TypeString)
	}
	if value, ok := _u.mutation.Invalid(); ok {
		_spec.SetField(result.FieldInvalid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeElapsed(); ok {
		_spec.SetField(result.FieldTimeElapsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeElapsed(); ok {
		_spec.AddField(result.FieldTimeElapsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DateStamp(); ok {
		_spec.SetField(result.FieldDateStamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(result.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, result.FieldData, value)
		})
	}
	_node = &Result{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{result.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
