package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RecommendationEvidence is one ordered evidence item attached to a
// recommendation at creation time. Write-once.
type RecommendationEvidence struct {
	ent.Schema
}

func (RecommendationEvidence) Fields() []ent.Field {
	return []ent.Field{
		field.String("recommendation_id").
			NotEmpty().
			Immutable(),
		field.Int("position").
			NonNegative().
			Immutable(),
		field.String("evidence_type").
			NotEmpty().
			Comment("metric, mastery, prerequisite, session, or count"),
		field.String("key").
			NotEmpty(),
		field.String("value").
			NotEmpty(),
		field.String("description").
			NotEmpty().
			Comment("Human-readable justification shown to the tutor"),
	}
}

func (RecommendationEvidence) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("recommendation_id", "position").
			Unique(),
	}
}
