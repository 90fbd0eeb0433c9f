package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// KV holds the durable survey progress keys (inProgress, b5data, resultId).
type KV struct {
	ent.Schema
}

func (KV) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (KV) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("key").
			NotEmpty().
			Immutable().
			Comment("Progress key"),
		field.Text("value").
			Comment("Raw string value; b5data holds JSON"),
	}
}
