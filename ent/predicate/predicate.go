// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// KV is the predicate function for kv builders.
type KV func(*sql.Selector)

// Result is the predicate function for result builders.
type Result func(*sql.Selector)
