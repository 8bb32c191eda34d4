package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Recommendation is one pedagogical recommendation emitted by the rule
// engine. Status starts pending; the tutor-decision boundary moves it to
// accepted or rejected. At most one pending row may exist per
// (student, rule, concept) tuple.
type Recommendation struct {
	ent.Schema
}

func (Recommendation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Immutable(),
		field.String("student_id").
			NotEmpty(),
		field.String("concept_id").
			Default("").
			Comment("Target concept, empty for scope-wide recommendations. " +
				"Stored as the empty string, never NULL, so the pending dedupe " +
				"lookup matches scope-wide rows by equality."),
		field.String("rule_code").
			NotEmpty().
			Comment("Catalog rule identifier, e.g. \"R05\""),
		field.String("priority").
			NotEmpty().
			Comment("high, medium, or low"),
		field.String("status").
			Default("pending").
			Comment("pending, accepted, or rejected"),
		field.String("title").
			NotEmpty(),
		field.Text("description").
			NotEmpty(),
		field.Int("window_days").
			Default(14).
			Comment("Outcome evaluation window length in days"),
		field.String("engine_version").
			NotEmpty(),
		field.String("ruleset_version").
			NotEmpty(),
		field.Time("generated_at"),
		field.Time("updated_at"),
	}
}

func (Recommendation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "rule_code", "concept_id", "status"),
		index.Fields("student_id", "status"),
	}
}
