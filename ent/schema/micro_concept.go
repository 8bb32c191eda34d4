package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MicroConcept is the smallest unit of trackable learning content,
// scoped to a subject and term. Managed by the catalog boundary;
// the engine only reads it.
type MicroConcept struct {
	ent.Schema
}

func (MicroConcept) Fields() []ent.Field {
	return []ent.Field{
		field.String("code").
			NotEmpty().
			Unique().
			Comment("Stable concept identifier, e.g. \"alg-linear-eq-1\""),
		field.String("name").
			NotEmpty(),
		field.String("subject").
			NotEmpty(),
		field.String("term").
			NotEmpty(),
		field.Bool("active").
			Default(true),
	}
}

func (MicroConcept) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject", "term"),
	}
}
