// Code generated by ent, DO NOT EDIT.

package result

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the result type in the database.
	Label = "result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldTestID holds the string denoting the test_id field in the database.
	FieldTestID = "test_id"
	// FieldLang holds the string denoting the lang field in the database.
	FieldLang = "lang"
	// FieldInvalid holds the string denoting the invalid field in the database.
	FieldInvalid = "invalid"
	// FieldTimeElapsed holds the string denoting the time_elapsed field in the database.
	FieldTimeElapsed = "time_elapsed"
	// FieldDateStamp holds the string denoting the date_stamp field in the database.
	FieldDateStamp = "date_stamp"
	// FieldData holds the string denoting the data field in the database.
	FieldData = "data"
	// Table holds the table name of the result in the database.
	Table = "results"
)

// Columns holds all SQL columns for result fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldTestID,
	FieldLang,
	FieldInvalid,
	FieldTimeElapsed,
	FieldDateStamp,
	FieldData,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultInvalid holds the default value on creation for the "invalid" field.
	DefaultInvalid bool
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the Result queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTestID orders the results by the test_id field.
func ByTestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestID, opts...).ToFunc()
}

// ByLang orders the results by the lang field.
func ByLang(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLang, opts...).ToFunc()
}

// ByInvalid orders the results by the invalid field.
func ByInvalid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInvalid, opts...).ToFunc()
}

// ByTimeElapsed orders the results by the time_elapsed field.
func ByTimeElapsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeElapsed, opts...).ToFunc()
}

// ByDateStamp orders the results by the date_stamp field.
func ByDateStamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateStamp, opts...).ToFunc()
}
