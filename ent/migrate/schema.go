// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// KvsColumns holds the columns for the "kvs" table.
	KvsColumns = []*schema.Column{
		{Name: "key", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "value", Type: field.TypeString, Size: 2147483647},
	}
	// KvsTable holds the schema information for the "kvs" table.
	KvsTable = &schema.Table{
		Name:       "kvs",
		Columns:    KvsColumns,
		PrimaryKey: []*schema.Column{KvsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "kv_updated_at",
				Unique:  false,
				Columns: []*schema.Column{KvsColumns[2]},
			},
		},
	}
	// ResultsColumns holds the columns for the "results" table.
	ResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "test_id", Type: field.TypeString},
		{Name: "lang", Type: field.TypeString, Nullable: true},
		{Name: "invalid", Type: field.TypeBool, Default: false},
		{Name: "time_elapsed", Type: field.TypeInt},
		{Name: "date_stamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// ResultsTable holds the schema information for the "results" table.
	ResultsTable = &schema.Table{
		Name:       "results",
		Columns:    ResultsColumns,
		PrimaryKey: []*schema.Column{ResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "result_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ResultsColumns[2]},
			},
			{
				Name:    "result_test_id",
				Unique:  false,
				Columns: []*schema.Column{ResultsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		KvsTable,
		ResultsTable,
	}
)

func init() {
}
