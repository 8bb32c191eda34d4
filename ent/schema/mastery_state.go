package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryState is the per (student, concept) proficiency estimate.
// Exactly one row per pair; recalculation upserts in place.
type MasteryState struct {
	ent.Schema
}

func (MasteryState) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").
			NotEmpty(),
		field.String("concept_id").
			NotEmpty(),
		field.Float("score").
			Comment("Mastery estimate in [0,1], rounded to 4 decimal places"),
		field.String("status").
			NotEmpty().
			Comment("dominant, in_progress, or at_risk"),
		field.Time("last_practice_at").
			Optional().
			Nillable(),
		field.Time("next_review_at").
			Optional().
			Nillable(),
		field.String("engine_version").
			NotEmpty(),
		field.Time("updated_at"),
	}
}

func (MasteryState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "concept_id").
			Unique(),
		index.Fields("student_id", "status"),
	}
}
