// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/bigfive/ent/result"
)

// ResultCreate is the builder for creating a Result entity.
type ResultCreate struct {
	config
	mutation *ResultMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ResultCreate) SetCreatedAt(v time.Time) *ResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ResultCreate) SetNillableCreatedAt(v *time.Time) *ResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ResultCreate) SetUpdatedAt(v time.Time) *ResultCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ResultCreate) SetNillableUpdatedAt(v *time.Time) *ResultCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTestID sets the "test_id" field.
func (_c *ResultCreate) SetTestID(v string) *ResultCreate {
	_c.mutation.SetTestID(v)
	return _c
}

// SetLang sets the "lang" field.
func (_c *ResultCreate) SetLang(v string) *ResultCreate {
	_c.mutation.SetLang(v)
	return _c
}

// SetNillableLang sets the "lang" field if the given value is not nil.
func (_c *ResultCreate) SetNillableLang(v *string) *ResultCreate {
	if v != nil {
		_c.SetLang(*v)
	}
	return _c
}

// SetInvalid sets the "invalid" field.
func (_c *ResultCreate) SetInvalid(v bool) *ResultCreate {
	_c.mutation.SetInvalid(v)
	return _c
}

// SetNillableInvalid sets the "invalid" field if the given value is not nil.
func (_c *ResultCreate) SetNillableInvalid(v *bool) *ResultCreate {
	if v != nil {
		_c.SetInvalid(*v)
	}
	return _c
}

// SetTimeElapsed sets the "time_elapsed" field.
func (_c *ResultCreate) SetTimeElapsed(v int) *ResultCreate {
	_c.mutation.SetTimeElapsed(v)
	return _c
}

// SetDateStamp sets the "date_stamp" field.
func (_c *ResultCreate) SetDateStamp(v time.Time) *ResultCreate {
	_c.mutation.SetDateStamp(v)
	return _c
}

// SetData sets the "data" field.
func (_c *ResultCreate) SetData(v json.RawMessage) *ResultCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ResultCreate) SetID(v string) *ResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ResultMutation object of the builder.
func (_c *ResultCreate) Mutation() *ResultMutation {
	return _c.mutation
}

// Save creates the Result in the database.
func (_c *ResultCreate) Save(ctx context.Context) (*Result, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResultCreate) SaveX(ctx context.Context) *Result {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResultCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := result.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := result.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Invalid(); !ok {
		v := result.DefaultInvalid
		_c.mutation.SetInvalid(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResultCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Result.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Result.updated_at"`)}
	}
	if _, ok := _c.mutation.TestID(); !ok {
		return &ValidationError{Name: "test_id", err: errors.New(`ent: missing required field "Result.test_id"`)}
	}
	if _, ok := _c.mutation.Invalid(); !ok {
		return &ValidationError{Name: "invalid", err: errors.New(`ent: missing required field "Result.invalid"`)}
	}
	if _, ok := _c.mutation.TimeElapsed(); !ok {
		return &ValidationError{Name: "time_elapsed", err: errors.New(`ent: missing required field "Result.time_elapsed"`)}
	}
	if _, ok := _c.mutation.DateStamp(); !ok {
		return &ValidationError{Name: "date_stamp", err: errors.New(`ent: missing required field "Result.date_stamp"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "Result.data"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := result.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Result.id": %w`, err)}
		}
	}
	return nil
}

func (_c *ResultCreate) sqlSave(ctx context.Context) (*Result, error) {
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
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Result.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResultCreate) createSpec() (*Result, *sqlgraph.CreateSpec) {
	var (
		_node = &Result{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(result.Table, sqlgraph.NewFieldSpec(result.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(result.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(result.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.TestID(); ok {
		_spec.SetField(result.FieldTestID, field.TypeString, value)
		_node.TestID = value
	}
	if value, ok := _c.mutation.Lang(); ok {
		_spec.SetField(result.FieldLang, field.TypeString, value)
		_node.Lang = value
	}
	if value, ok := _c.mutation.Invalid(); ok {
		_spec.SetField(result.FieldInvalid, field.TypeBool, value)
		_node.Invalid = value
	}
	if value, ok := _c.mutation.TimeElapsed(); ok {
		_spec.SetField(result.FieldTimeElapsed, field.TypeInt, value)
		_node.TimeElapsed = value
	}
	if value, ok := _c.mutation.DateStamp(); ok {
		_spec.SetField(result.FieldDateStamp, field.TypeTime, value)
		_node.DateStamp = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(result.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Result.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ResultUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ResultCreate) OnConflict(opts ...sql.ConflictOption) *ResultUpsertOne {
	_c.conflict = opts
	return &ResultUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Result.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ResultCreate) OnConflictColumns(columns ...string) *ResultUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ResultUpsertOne{
		create: _c,
	}
}

type (
	// ResultUpsertOne is the builder for "upsert"-ing
	//  one Result node.
	ResultUpsertOne struct {
		create *ResultCreate
	}

	// ResultUpsert is the "OnConflict" setter.
	ResultUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ResultUpsert) SetUpdatedAt(v time.Time) *ResultUpsert {
	u.Set(result.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ResultUpsert) UpdateUpdatedAt() *ResultUpsert {
	u.SetExcluded(result.FieldUpdatedAt)
	return u
}

// SetTestID sets the "test_id" field.
func (u *ResultUpsert) SetTestID(v string) *ResultUpsert {
	u.Set(result.FieldTestID, v)
	return u
}

// UpdateTestID sets the "test_id" field to the value that was provided on create.
func (u *ResultUpsert) UpdateTestID() *ResultUpsert {
	u.SetExcluded(result.FieldTestID)
	return u
}

// SetLang sets the "lang" field.
func (u *ResultUpsert) SetLang(v string) *ResultUpsert {
	u.Set(result.FieldLang, v)
	return u
}

// UpdateLang sets the "lang" field to the value that was provided on create.
func (u *ResultUpsert) UpdateLang() *ResultUpsert {
	u.SetExcluded(result.FieldLang)
	return u
}

// ClearLang clears the value of the "lang" field.
func (u *ResultUpsert) ClearLang() *ResultUpsert {
	u.SetNull(result.FieldLang)
	return u
}

// SetInvalid sets the "invalid" field.
func (u *ResultUpsert) SetInvalid(v bool) *ResultUpsert {
	u.Set(result.FieldInvalid, v)
	return u
}

// UpdateInvalid sets the "invalid" field to the value that was provided on create.
func (u *ResultUpsert) UpdateInvalid() *ResultUpsert {
	u.SetExcluded(result.FieldInvalid)
	return u
}

// SetTimeElapsed sets the "time_elapsed" field.
func (u *ResultUpsert) SetTimeElapsed(v int) *ResultUpsert {
	u.Set(result.FieldTimeElapsed, v)
	return u
}

// UpdateTimeElapsed sets the "time_elapsed" field to the value that was provided on create.
func (u *ResultUpsert) UpdateTimeElapsed() *ResultUpsert {
	u.SetExcluded(result.FieldTimeElapsed)
	return u
}

// AddTimeElapsed adds v to the "time_elapsed" field.
func (u *ResultUpsert) AddTimeElapsed(v int) *ResultUpsert {
	u.Add(result.FieldTimeElapsed, v)
	return u
}

// SetDateStamp sets the "date_stamp" field.
func (u *ResultUpsert) SetDateStamp(v time.Time) *ResultUpsert {
	u.Set(result.FieldDateStamp, v)
	return u
}

// UpdateDateStamp sets the "date_stamp" field to the value that was provided on create.
func (u *ResultUpsert) UpdateDateStamp() *ResultUpsert {
	u.SetExcluded(result.FieldDateStamp)
	return u
}

// SetData sets the "data" field.
func (u *ResultUpsert) SetData(v json.RawMessage) *ResultUpsert {
	u.Set(result.FieldData, v)
	return u
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *ResultUpsert) UpdateData() *ResultUpsert {
	u.SetExcluded(result.FieldData)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Result.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(result.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ResultUpsertOne) UpdateNewValues() *ResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(result.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(result.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Result.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ResultUpsertOne) Ignore() *ResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ResultUpsertOne) DoNothing() *ResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ResultCreate.OnConflict
// documentation for more info.
func (u *ResultUpsertOne) Update(set func(*ResultUpsert)) *ResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ResultUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ResultUpsertOne) SetUpdatedAt(v time.Time) *ResultUpsertOne {
	return u.Update(func(s *ResultUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ResultUpsertOne) UpdateUpdatedAt() *ResultUpsertOne {
	return u.Update(func(s *ResultUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetTestID sets the "test_id" field.
func (u *ResultUpsertOne) SetTestID(v string) *ResultUpsertOne {
	return u.Update(func(s *ResultUpsert) {
		s.SetTestID(v)
	})
}

// UpdateTestID sets the "test_id" field to the value that was provided on create.
func (u *ResultUpsertOne) UpdateTestID() *ResultUpsertOne {
	return u.Update(func(s *ResultUpsert) {
		s.UpdateTestID()
	})
}

// SetLang sets the "lang" field.
func (u *ResultUpsertOne) SetLang(v string) *ResultUpsertOne {
	return u.Update(func(s *ResultUpsert) {
		s.SetLang(v)
	})
}

// UpdateLang sets the "lang" field to the value that was provided on create.
func (u *ResultUpsertOne) UpdateLang() *ResultUpsertOne {
	return u.Update(func(s *ResultUpsert) {
		s.UpdateLang()
	})
}

// ClearLang clears the value of the "lang" field.
func (u *ResultUpsertOne) ClearLang() *ResultUpsertOne {
	return u.Update(func(s *ResultUpsert) {
		s.ClearLang()
	})
}

// SetInvalid sets the "invalid" field.
func (u *ResultUpsertOne) SetInvalid(v bool) *ResultUpsertOne {
	return u.Update(func(s *ResultUpsert) {
		s.SetInvalid(v)
	})
}

// UpdateInvalid sets the "invalid" field to the value that was provided on create.
func (u *ResultUpsertOne) UpdateInvalid() *ResultUpsertOne {
	return u.Update(func(s *ResultUpsert) {
		s.UpdateInvalid()
	})
}

// SetTimeElapsed sets the "time_elapsed" field.
func (u *ResultUpsertOne) SetTimeElapsed(v int) *ResultUpsertOne {
	return u.Update(func(s *ResultUpsert) {
		s.SetTimeElapsed(v)
	})
}

// AddTimeElapsed adds v to the "time_elapsed" field.
func (u *ResultUpsertOne) AddTimeElapsed(v int) *ResultUpsertOne {
	return u.Update(func(s *ResultUpsert) {
		s.AddTimeElapsed(v)
	})
}

// UpdateTimeElapsed sets the "time_elapsed" field to the value that was provided on create.
func (u *ResultUpsertOne) UpdateTimeElapsed() *ResultUpsertOne {
	return u.Update(func(s *ResultUpsert) {
		s.UpdateTimeElapsed()
	})
}

// SetDateStamp sets the "date_stamp" field.
func (u *ResultUpsertOne) SetDateStamp(v time.Time) *ResultUpsertOne {
	return u.Update(func(s *ResultUpsert) {
		s.SetDateStamp(v)
	})
}

// UpdateDateStamp sets the "date_stamp" field to the value that was provided on create.
func (u *ResultUpsertOne) UpdateDateStamp() *ResultUpsertOne {
	return u.Update(func(s *ResultUpsert) {
		s.UpdateDateStamp()
	})
}

// SetData sets the "data" field.
func (u *ResultUpsertOne) SetData(v json.RawMessage) *ResultUpsertOne {
	return u.Update(func(s *ResultUpsert) {
		s.SetData(v)
	})
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *ResultUpsertOne) UpdateData() *ResultUpsertOne {
	return u.Update(func(s *ResultUpsert) {
		s.UpdateData()
	})
}

// Exec executes the query.
func (u *ResultUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ResultCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ResultUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ResultUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ResultUpsertOne.ID is not supported by MySQL driver. Use ResultUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ResultUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ResultCreateBulk is the builder for creating many Result entities in bulk.
type ResultCreateBulk struct {
	config
	err      error
	builders []*ResultCreate
	conflict []sql.ConflictOption
}

// Save creates the Result entities in the database.
func (_c *ResultCreateBulk) Save(ctx context.Context) ([]*Result, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Result, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResultMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *ResultCreateBulk) SaveX(ctx context.Context) []*Result {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Result.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ResultUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ResultCreateBulk) OnConflict(opts ...sql.ConflictOption) *ResultUpsertBulk {
	_c.conflict = opts
	return &ResultUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Result.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ResultCreateBulk) OnConflictColumns(columns ...string) *ResultUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ResultUpsertBulk{
		create: _c,
	}
}

// ResultUpsertBulk is the builder for "upsert"-ing
// a bulk of Result nodes.
type ResultUpsertBulk struct {
	create *ResultCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Result.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(result.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ResultUpsertBulk) UpdateNewValues() *ResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(result.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(result.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Result.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ResultUpsertBulk) Ignore() *ResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ResultUpsertBulk) DoNothing() *ResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ResultCreateBulk.OnConflict
// documentation for more info.
func (u *ResultUpsertBulk) Update(set func(*ResultUpsert)) *ResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ResultUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ResultUpsertBulk) SetUpdatedAt(v time.Time) *ResultUpsertBulk {
	return u.Update(func(s *ResultUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ResultUpsertBulk) UpdateUpdatedAt() *ResultUpsertBulk {
	return u.Update(func(s *ResultUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetTestID sets the "test_id" field.
func (u *ResultUpsertBulk) SetTestID(v string) *ResultUpsertBulk {
	return u.Update(func(s *ResultUpsert) {
		s.SetTestID(v)
	})
}

// UpdateTestID sets the "test_id" field to the value that was provided on create.
func (u *ResultUpsertBulk) UpdateTestID() *ResultUpsertBulk {
	return u.Update(func(s *ResultUpsert) {
		s.UpdateTestID()
	})
}

// SetLang sets the "lang" field.
func (u *ResultUpsertBulk) SetLang(v string) *ResultUpsertBulk {
	return u.Update(func(s *ResultUpsert) {
		s.SetLang(v)
	})
}

// UpdateLang sets the "lang" field to the value that was provided on create.
func (u *ResultUpsertBulk) UpdateLang() *ResultUpsertBulk {
	return u.Update(func(s *ResultUpsert) {
		s.UpdateLang()
	})
}

// ClearLang clears the value of the "lang" field.
func (u *ResultUpsertBulk) ClearLang() *ResultUpsertBulk {
	return u.Update(func(s *ResultUpsert) {
		s.ClearLang()
	})
}

// SetInvalid sets the "invalid" field.
func (u *ResultUpsertBulk) SetInvalid(v bool) *ResultUpsertBulk {
	return u.Update(func(s *ResultUpsert) {
		s.SetInvalid(v)
	})
}

// UpdateInvalid sets the "invalid" field to the value that was provided on create.
func (u *ResultUpsertBulk) UpdateInvalid() *ResultUpsertBulk {
	return u.Update(func(s *ResultUpsert) {
		s.UpdateInvalid()
	})
}

// SetTimeElapsed sets the "time_elapsed" field.
func (u *ResultUpsertBulk) SetTimeElapsed(v int) *ResultUpsertBulk {
	return u.Update(func(s *ResultUpsert) {
		s.SetTimeElapsed(v)
	})
}

// AddTimeElapsed adds v to the "time_elapsed" field.
func (u *ResultUpsertBulk) AddTimeElapsed(v int) *ResultUpsertBulk {
	return u.Update(func(s *ResultUpsert) {
		s.AddTimeElapsed(v)
	})
}

// UpdateTimeElapsed sets the "time_elapsed" field to the value that was provided on create.
func (u *ResultUpsertBulk) UpdateTimeElapsed() *ResultUpsertBulk {
	return u.Update(func(s *ResultUpsert) {
		s.UpdateTimeElapsed()
	})
}

// SetDateStamp sets the "date_stamp" field.
func (u *ResultUpsertBulk) SetDateStamp(v time.Time) *ResultUpsertBulk {
	return u.Update(func(s *ResultUpsert) {
		s.SetDateStamp(v)
	})
}

// UpdateDateStamp sets the "date_stamp" field to the value that was provided on create.
func (u *ResultUpsertBulk) UpdateDateStamp() *ResultUpsertBulk {
	return u.Update(func(s *ResultUpsert) {
		s.UpdateDateStamp()
	})
}

// SetData sets the "data" field.
func (u *ResultUpsertBulk) SetData(v json.RawMessage) *ResultUpsertBulk {
	return u.Update(func(s *ResultUpsert) {
		s.SetData(v)
	})
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *ResultUpsertBulk) UpdateData() *ResultUpsertBulk {
	return u.Update(func(s *ResultUpsert) {
		s.UpdateData()
	})
}

// Exec executes the query.
func (u *ResultUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ResultCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ResultCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ResultUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
