package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// RecommendationOutcome is the settled before/after measurement of one
// accepted recommendation. One row per recommendation, overwritten only
// under an explicit force recompute.
type RecommendationOutcome struct {
	ent.Schema
}

func (RecommendationOutcome) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Immutable(),
		field.String("recommendation_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.Time("window_start"),
		field.Time("window_end"),
		field.String("success").
			NotEmpty().
			Comment("true, false, or partial"),
		field.Float("delta_mastery").
			Optional().
			Nillable(),
		field.Float("delta_accuracy").
			Optional().
			Nillable(),
		field.Float("delta_hint_rate").
			Optional().
			Nillable(),
		field.Time("computed_at"),
		field.String("engine_version").
			NotEmpty(),
		field.String("ruleset_version").
			NotEmpty(),
	}
}

func (RecommendationOutcome) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("success"),
	}
}
