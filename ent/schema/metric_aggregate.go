package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MetricAggregate holds the windowed scope-level metrics for one
// (student, subject, term). One row per scope, upserted on recompute.
type MetricAggregate struct {
	ent.Schema
}

func (MetricAggregate) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").
			NotEmpty(),
		field.String("subject").
			NotEmpty(),
		field.String("term").
			NotEmpty(),
		field.Int("window_days").
			Positive(),
		field.Float("accuracy"),
		field.Float("first_attempt_accuracy"),
		field.Float("error_rate"),
		field.Float("hint_rate"),
		field.Int("median_response_ms"),
		field.Float("attempts_per_item"),
		field.Float("abandon_rate"),
		field.Time("computed_at"),
		field.String("engine_version").
			NotEmpty(),
	}
}

func (MetricAggregate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "subject", "term").
			Unique(),
	}
}
