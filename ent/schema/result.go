package schema

import (
	"encoding/json"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Result is a scored survey submission stored by the results service.
type Result struct {
	ent.Schema
}

func (Result) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (Result) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Comment("Opaque result identifier (UUID)"),
		field.String("test_id").
			Comment("Instrument identifier, e.g. b5-120"),
		field.String("lang").
			Optional(),
		field.Bool("invalid").
			Default(false),
		field.Int("time_elapsed").
			Comment("Seconds spent answering"),
		field.Time("date_stamp").
			Comment("Client submission time"),
		field.JSON("data", json.RawMessage{}).
			Comment("Full result document with answers and scores"),
	}
}

func (Result) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("test_id"),
	}
}
