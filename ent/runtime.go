// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/bigfive/ent/kv"
	"github.com/abhisek/bigfive/ent/result"
	"github.com/abhisek/bigfive/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	kvMixin := schema.KV{}.Mixin()
	kvMixinFields0 := kvMixin[0].Fields()
	_ = kvMixinFields0
	kvFields := schema.KV{}.Fields()
	_ = kvFields
	// kvDescCreatedAt is the schema descriptor for created_at field.
	kvDescCreatedAt := kvMixinFields0[0].Descriptor()
	// kv.DefaultCreatedAt holds the default value on creation for the created_at field.
	kv.DefaultCreatedAt = kvDescCreatedAt.Default.(func() time.Time)
	// kvDescUpdatedAt is the schema descriptor for updated_at field.
	kvDescUpdatedAt := kvMixinFields0[1].Descriptor()
	// kv.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	kv.DefaultUpdatedAt = kvDescUpdatedAt.Default.(func() time.Time)
	// kv.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	kv.UpdateDefaultUpdatedAt = kvDescUpdatedAt.UpdateDefault.(func() time.Time)
	// kvDescID is the schema descriptor for id field.
	kvDescID := kvFields[0].Descriptor()
	// kv.IDValidator is a validator for the "id" field. It is called by the builders before save.
	kv.IDValidator = kvDescID.Validators[0].(func(string) error)
	resultMixin := schema.Result{}.Mixin()
	resultMixinFields0 := resultMixin[0].Fields()
	_ = resultMixinFields0
	resultFields := schema.Result{}.Fields()
	_ = resultFields
	// resultDescCreatedAt is the schema descriptor for created_at field.
	resultDescCreatedAt := resultMixinFields0[0].Descriptor()
	// result.DefaultCreatedAt holds the default value on creation for the created_at field.
	result.DefaultCreatedAt = resultDescCreatedAt.Default.(func() time.Time)
	// resultDescUpdatedAt is the schema descriptor for updated_at field.
	resultDescUpdatedAt := resultMixinFields0[1].Descriptor()
	// result.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	result.DefaultUpdatedAt = resultDescUpdatedAt.Default.(func() time.Time)
	// result.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	result.UpdateDefaultUpdatedAt = resultDescUpdatedAt.UpdateDefault.(func() time.Time)
	// resultDescInvalid is the schema descriptor for invalid field.
	resultDescInvalid := resultFields[3].Descriptor()
	// result.DefaultInvalid holds the default value on creation for the invalid field.
	result.DefaultInvalid = resultDescInvalid.Default.(bool)
	// resultDescID is the schema descriptor for id field.
	resultDescID := resultFields[0].Descriptor()
	// result.IDValidator is a validator for the "id" field. It is called by the builders before save.
	result.IDValidator = resultDescID.Validators[0].(func(string) error)
}
