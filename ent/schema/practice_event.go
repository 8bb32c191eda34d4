package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PracticeEvent records a single practice attempt. Events are append-only:
// the recording boundary creates them and nothing in the engine mutates or
// deletes them.
type PracticeEvent struct {
	ent.Schema
}

func (PracticeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").
			NotEmpty(),
		field.String("concept_id").
			Optional().
			Comment("Microconcept code, empty for unscoped drills"),
		field.String("session_id").
			NotEmpty().
			Comment("Links to ActivitySession"),
		field.String("item_id").
			NotEmpty().
			Comment("The exercise item attempted"),
		field.Time("started_at").
			Immutable(),
		field.Time("ended_at").
			Optional().
			Nillable().
			Comment("Unset when the attempt was abandoned"),
		field.Int("duration_ms").
			NonNegative(),
		field.Int("attempt").
			Min(1).
			Comment("1-based attempt number for this item"),
		field.Bool("correct"),
		field.String("hint").
			Default("none").
			Comment("Hint identifier used, or the sentinel \"none\""),
		field.Int("difficulty").
			Range(1, 5),
	}
}

func (PracticeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "started_at"),
		index.Fields("student_id", "concept_id"),
		index.Fields("session_id"),
	}
}
