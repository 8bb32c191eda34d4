// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActivitySessionsColumns holds the columns for the "activity_sessions" table.
	ActivitySessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "term", Type: field.TypeString},
		{Name: "activity_type", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
	}
	// ActivitySessionsTable holds the schema information for the "activity_sessions" table.
	ActivitySessionsTable = &schema.Table{
		Name:       "activity_sessions",
		Columns:    ActivitySessionsColumns,
		PrimaryKey: []*schema.Column{ActivitySessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "activitysession_student_id_subject_term",
				Unique:  false,
				Columns: []*schema.Column{ActivitySessionsColumns[2], ActivitySessionsColumns[3], ActivitySessionsColumns[4]},
			},
			{
				Name:    "activitysession_student_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{ActivitySessionsColumns[2], ActivitySessionsColumns[6]},
			},
		},
	}
	// MasteryStatesColumns holds the columns for the "mastery_states" table.
	MasteryStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "status", Type: field.TypeString},
		{Name: "last_practice_at", Type: field.TypeTime, Nullable: true},
		{Name: "next_review_at", Type: field.TypeTime, Nullable: true},
		{Name: "engine_version", Type: field.TypeString},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// MasteryStatesTable holds the schema information for the "mastery_states" table.
	MasteryStatesTable = &schema.Table{
		Name:       "mastery_states",
		Columns:    MasteryStatesColumns,
		PrimaryKey: []*schema.Column{MasteryStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masterystate_student_id_concept_id",
				Unique:  true,
				Columns: []*schema.Column{MasteryStatesColumns[1], MasteryStatesColumns[2]},
			},
			{
				Name:    "masterystate_student_id_status",
				Unique:  false,
				Columns: []*schema.Column{MasteryStatesColumns[1], MasteryStatesColumns[4]},
			},
		},
	}
	// MetricAggregatesColumns holds the columns for the "metric_aggregates" table.
	MetricAggregatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "term", Type: field.TypeString},
		{Name: "window_days", Type: field.TypeInt},
		{Name: "accuracy", Type: field.TypeFloat64},
		{Name: "first_attempt_accuracy", Type: field.TypeFloat64},
		{Name: "error_rate", Type: field.TypeFloat64},
		{Name: "hint_rate", Type: field.TypeFloat64},
		{Name: "median_response_ms", Type: field.TypeInt},
		{Name: "attempts_per_item", Type: field.TypeFloat64},
		{Name: "abandon_rate", Type: field.TypeFloat64},
		{Name: "computed_at", Type: field.TypeTime},
		{Name: "engine_version", Type: field.TypeString},
	}
	// MetricAggregatesTable holds the schema information for the "metric_aggregates" table.
	MetricAggregatesTable = &schema.Table{
		Name:       "metric_aggregates",
		Columns:    MetricAggregatesColumns,
		PrimaryKey: []*schema.Column{MetricAggregatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "metricaggregate_student_id_subject_term",
				Unique:  true,
				Columns: []*schema.Column{MetricAggregatesColumns[1], MetricAggregatesColumns[2], MetricAggregatesColumns[3]},
			},
		},
	}
	// MicroConceptsColumns holds the columns for the "micro_concepts" table.
	MicroConceptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "code", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "term", Type: field.TypeString},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// MicroConceptsTable holds the schema information for the "micro_concepts" table.
	MicroConceptsTable = &schema.Table{
		Name:       "micro_concepts",
		Columns:    MicroConceptsColumns,
		PrimaryKey: []*schema.Column{MicroConceptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "microconcept_subject_term",
				Unique:  false,
				Columns: []*schema.Column{MicroConceptsColumns[3], MicroConceptsColumns[4]},
			},
		},
	}
	// PracticeEventsColumns holds the columns for the "practice_events" table.
	PracticeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt},
		{Name: "attempt", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeBool},
		{Name: "hint", Type: field.TypeString, Default: "none"},
		{Name: "difficulty", Type: field.TypeInt},
	}
	// PracticeEventsTable holds the schema information for the "practice_events" table.
	PracticeEventsTable = &schema.Table{
		Name:       "practice_events",
		Columns:    PracticeEventsColumns,
		PrimaryKey: []*schema.Column{PracticeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "practiceevent_student_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{PracticeEventsColumns[1], PracticeEventsColumns[5]},
			},
			{
				Name:    "practiceevent_student_id_concept_id",
				Unique:  false,
				Columns: []*schema.Column{PracticeEventsColumns[1], PracticeEventsColumns[2]},
			},
			{
				Name:    "practiceevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{PracticeEventsColumns[3]},
			},
		},
	}
	// PrerequisiteEdgesColumns holds the columns for the "prerequisite_edges" table.
	PrerequisiteEdgesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "concept_code", Type: field.TypeString},
		{Name: "prerequisite_code", Type: field.TypeString},
	}
	// PrerequisiteEdgesTable holds the schema information for the "prerequisite_edges" table.
	PrerequisiteEdgesTable = &schema.Table{
		Name:       "prerequisite_edges",
		Columns:    PrerequisiteEdgesColumns,
		PrimaryKey: []*schema.Column{PrerequisiteEdgesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "prerequisiteedge_concept_code_prerequisite_code",
				Unique:  true,
				Columns: []*schema.Column{PrerequisiteEdgesColumns[1], PrerequisiteEdgesColumns[2]},
			},
			{
				Name:    "prerequisiteedge_prerequisite_code",
				Unique:  false,
				Columns: []*schema.Column{PrerequisiteEdgesColumns[2]},
			},
		},
	}
	// RecommendationsColumns holds the columns for the "recommendations" table.
	RecommendationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "student_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString, Default: ""},
		{Name: "rule_code", Type: field.TypeString},
		{Name: "priority", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "window_days", Type: field.TypeInt, Default: 14},
		{Name: "engine_version", Type: field.TypeString},
		{Name: "ruleset_version", Type: field.TypeString},
		{Name: "generated_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// RecommendationsTable holds the schema information for the "recommendations" table.
	RecommendationsTable = &schema.Table{
		Name:       "recommendations",
		Columns:    RecommendationsColumns,
		PrimaryKey: []*schema.Column{RecommendationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "recommendation_student_id_rule_code_concept_id_status",
				Unique:  false,
				Columns: []*schema.Column{RecommendationsColumns[1], RecommendationsColumns[3], RecommendationsColumns[2], RecommendationsColumns[5]},
			},
			{
				Name:    "recommendation_student_id_status",
				Unique:  false,
				Columns: []*schema.Column{RecommendationsColumns[1], RecommendationsColumns[5]},
			},
		},
	}
	// RecommendationEvidencesColumns holds the columns for the "recommendation_evidences" table.
	RecommendationEvidencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "recommendation_id", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt},
		{Name: "evidence_type", Type: field.TypeString},
		{Name: "key", Type: field.TypeString},
		{Name: "value", Type: field.TypeString},
		{Name: "description", Type: field.TypeString},
	}
	// RecommendationEvidencesTable holds the schema information for the "recommendation_evidences" table.
	RecommendationEvidencesTable = &schema.Table{
		Name:       "recommendation_evidences",
		Columns:    RecommendationEvidencesColumns,
		PrimaryKey: []*schema.Column{RecommendationEvidencesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "recommendationevidence_recommendation_id_position",
				Unique:  true,
				Columns: []*schema.Column{RecommendationEvidencesColumns[1], RecommendationEvidencesColumns[2]},
			},
		},
	}
	// RecommendationOutcomesColumns holds the columns for the "recommendation_outcomes" table.
	RecommendationOutcomesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "recommendation_id", Type: field.TypeString, Unique: true},
		{Name: "window_start", Type: field.TypeTime},
		{Name: "window_end", Type: field.TypeTime},
		{Name: "success", Type: field.TypeString},
		{Name: "delta_mastery", Type: field.TypeFloat64, Nullable: true},
		{Name: "delta_accuracy", Type: field.TypeFloat64, Nullable: true},
		{Name: "delta_hint_rate", Type: field.TypeFloat64, Nullable: true},
		{Name: "computed_at", Type: field.TypeTime},
		{Name: "engine_version", Type: field.TypeString},
		{Name: "ruleset_version", Type: field.TypeString},
	}
	// RecommendationOutcomesTable holds the schema information for the "recommendation_outcomes" table.
	RecommendationOutcomesTable = &schema.Table{
		Name:       "recommendation_outcomes",
		Columns:    RecommendationOutcomesColumns,
		PrimaryKey: []*schema.Column{RecommendationOutcomesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "recommendationoutcome_success",
				Unique:  false,
				Columns: []*schema.Column{RecommendationOutcomesColumns[4]},
			},
		},
	}
	// TutorDecisionsColumns holds the columns for the "tutor_decisions" table.
	TutorDecisionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "recommendation_id", Type: field.TypeString, Unique: true},
		{Name: "tutor_id", Type: field.TypeString},
		{Name: "decision", Type: field.TypeString},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "decided_at", Type: field.TypeTime},
	}
	// TutorDecisionsTable holds the schema information for the "tutor_decisions" table.
	TutorDecisionsTable = &schema.Table{
		Name:       "tutor_decisions",
		Columns:    TutorDecisionsColumns,
		PrimaryKey: []*schema.Column{TutorDecisionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tutordecision_tutor_id",
				Unique:  false,
				Columns: []*schema.Column{TutorDecisionsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActivitySessionsTable,
		MasteryStatesTable,
		MetricAggregatesTable,
		MicroConceptsTable,
		PracticeEventsTable,
		PrerequisiteEdgesTable,
		RecommendationsTable,
		RecommendationEvidencesTable,
		RecommendationOutcomesTable,
		TutorDecisionsTable,
	}
)

func init() {
}
