package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PrerequisiteEdge is a directed edge from a concept to one of its
// prerequisites. The relation is not guaranteed acyclic, so consumers
// must only follow direct edges.
type PrerequisiteEdge struct {
	ent.Schema
}

func (PrerequisiteEdge) Fields() []ent.Field {
	return []ent.Field{
		field.String("concept_code").
			NotEmpty(),
		field.String("prerequisite_code").
			NotEmpty(),
	}
}

func (PrerequisiteEdge) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("concept_code", "prerequisite_code").
			Unique(),
		index.Fields("prerequisite_code"),
	}
}
