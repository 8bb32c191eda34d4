package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActivitySession groups the practice events of one sitting.
type ActivitySession struct {
	ent.Schema
}

func (ActivitySession) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique(),
		field.String("student_id").
			NotEmpty(),
		field.String("subject").
			NotEmpty(),
		field.String("term").
			NotEmpty(),
		field.String("activity_type").
			NotEmpty().
			Comment("practice, review, assessment, or lesson"),
		field.Time("started_at"),
		field.Time("ended_at").
			Optional().
			Nillable(),
	}
}

func (ActivitySession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "subject", "term"),
		index.Fields("student_id", "started_at"),
	}
}
