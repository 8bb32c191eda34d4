package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// TutorDecision records the accept/reject call a tutor made on a
// recommendation. Its timestamp anchors the outcome evaluation window.
type TutorDecision struct {
	ent.Schema
}

func (TutorDecision) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Immutable(),
		field.String("recommendation_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.String("tutor_id").
			NotEmpty(),
		field.String("decision").
			NotEmpty().
			Comment("accepted or rejected"),
		field.Text("notes").
			Optional(),
		field.Time("decided_at"),
	}
}

func (TutorDecision) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tutor_id"),
	}
}
