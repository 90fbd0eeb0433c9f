// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/bigfive/ent/result"
)

// Result is the model entity for the Result schema.
type Result struct {
	config `json:"-"`
	// ID of the ent.
	// Opaque result identifier (UUID)
	ID string `json:"id,omitempty"`
	// UTC wall-clock time the row was first written
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UTC wall-clock time of the last write
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Instrument identifier, e.g. b5-120
	TestID string `json:"test_id,omitempty"`
	// Lang holds the value of the "lang" field.
	Lang string `json:"lang,omitempty"`
	// Invalid holds the value of the "invalid" field.
	Invalid bool `json:"invalid,omitempty"`
	// Seconds spent answering
	TimeElapsed int `json:"time_elapsed,omitempty"`
	// Client submission time
	DateStamp time.Time `json:"date_stamp,omitempty"`
	// Full result document with answers and scores
	Data         json.RawMessage `json:"data,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Result) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case result.FieldData:
			values[i] = new([]byte)
		case result.FieldInvalid:
			values[i] = new(sql.NullBool)
		case result.FieldTimeElapsed:
			values[i] = new(sql.NullInt64)
		case result.FieldID, result.FieldTestID, result.FieldLang:
			values[i] = new(sql.NullString)
		case result.FieldCreatedAt, result.FieldUpdatedAt, result.FieldDateStamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Result fields.
func (_m *Result) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case result.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case result.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case result.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case result.FieldTestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field test_id", values[i])
			} else if value.Valid {
				_m.TestID = value.String
			}
		case result.FieldLang:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lang", values[i])
			} else if value.Valid {
				_m.Lang = value.String
			}
		case result.FieldInvalid:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field invalid", values[i])
			} else if value.Valid {
				_m.Invalid = value.Bool
			}
		case result.FieldTimeElapsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_elapsed", values[i])
			} else if value.Valid {
				_m.TimeElapsed = int(value.Int64)
			}
		case result.FieldDateStamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date_stamp", values[i])
			} else if value.Valid {
				_m.DateStamp = value.Time
			}
		case result.FieldData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Data); err != nil {
					return fmt.Errorf("unmarshal field data: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Result.
// This includes values selected through modifiers, order, etc.
func (_m *Result) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Result.
// Note that you need to call Result.Unwrap() before calling this method if this Result
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Result) Update() *ResultUpdateOne {
	return NewResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Result entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Result) Unwrap() *Result {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Result is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Result) String() string {
	var builder strings.Builder
	builder.WriteString("Result(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("test_id=")
	builder.WriteString(_m.TestID)
	builder.WriteString(", ")
	builder.WriteString("lang=")
	builder.WriteString(_m.Lang)
	builder.WriteString(", ")
	builder.WriteString("invalid=")
	builder.WriteString(fmt.Sprintf("%v", _m.Invalid))
	builder.WriteString(", ")
	builder.WriteString("time_elapsed=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeElapsed))
	builder.WriteString(", ")
	builder.WriteString("date_stamp=")
	builder.WriteString(_m.DateStamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", _m.Data))
	builder.WriteByte(')')
	return builder.String()
}

// Results is a parsable slice of Result.
type Results []*Result
