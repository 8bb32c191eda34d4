// Code generated by ent, DO NOT EDIT.

package ent

import (
	"github.com/diversifica/decies-platform-sub000/ent/activitysession"
	"github.com/diversifica/decies-platform-sub000/ent/masterystate"
	"github.com/diversifica/decies-platform-sub000/ent/metricaggregate"
	"github.com/diversifica/decies-platform-sub000/ent/microconcept"
	"github.com/diversifica/decies-platform-sub000/ent/practiceevent"
	"github.com/diversifica/decies-platform-sub000/ent/prerequisiteedge"
	"github.com/diversifica/decies-platform-sub000/ent/recommendation"
	"github.com/diversifica/decies-platform-sub000/ent/recommendationevidence"
	"github.com/diversifica/decies-platform-sub000/ent/recommendationoutcome"
	"github.com/diversifica/decies-platform-sub000/ent/schema"
	"github.com/diversifica/decies-platform-sub000/ent/tutordecision"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activitysessionFields := schema.ActivitySession{}.Fields()
	_ = activitysessionFields
	// activitysessionDescSessionID is the schema descriptor for session_id field.
	activitysessionDescSessionID := activitysessionFields[0].Descriptor()
	// activitysession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	activitysession.SessionIDValidator = activitysessionDescSessionID.Validators[0].(func(string) error)
	// activitysessionDescStudentID is the schema descriptor for student_id field.
	activitysessionDescStudentID := activitysessionFields[1].Descriptor()
	// activitysession.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	activitysession.StudentIDValidator = activitysessionDescStudentID.Validators[0].(func(string) error)
	// activitysessionDescSubject is the schema descriptor for subject field.
	activitysessionDescSubject := activitysessionFields[2].Descriptor()
	// activitysession.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	activitysession.SubjectValidator = activitysessionDescSubject.Validators[0].(func(string) error)
	// activitysessionDescTerm is the schema descriptor for term field.
	activitysessionDescTerm := activitysessionFields[3].Descriptor()
	// activitysession.TermValidator is a validator for the "term" field. It is called by the builders before save.
	activitysession.TermValidator = activitysessionDescTerm.Validators[0].(func(string) error)
	// activitysessionDescActivityType is the schema descriptor for activity_type field.
	activitysessionDescActivityType := activitysessionFields[4].Descriptor()
	// activitysession.ActivityTypeValidator is a validator for the "activity_type" field. It is called by the builders before save.
	activitysession.ActivityTypeValidator = activitysessionDescActivityType.Validators[0].(func(string) error)
	masterystateFields := schema.MasteryState{}.Fields()
	_ = masterystateFields
	// masterystateDescStudentID is the schema descriptor for student_id field.
	masterystateDescStudentID := masterystateFields[0].Descriptor()
	// masterystate.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	masterystate.StudentIDValidator = masterystateDescStudentID.Validators[0].(func(string) error)
	// masterystateDescConceptID is the schema descriptor for concept_id field.
	masterystateDescConceptID := masterystateFields[1].Descriptor()
	// masterystate.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	masterystate.ConceptIDValidator = masterystateDescConceptID.Validators[0].(func(string) error)
	// masterystateDescStatus is the schema descriptor for status field.
	masterystateDescStatus := masterystateFields[3].Descriptor()
	// masterystate.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	masterystate.StatusValidator = masterystateDescStatus.Validators[0].(func(string) error)
	// masterystateDescEngineVersion is the schema descriptor for engine_version field.
	masterystateDescEngineVersion := masterystateFields[6].Descriptor()
	// masterystate.EngineVersionValidator is a validator for the "engine_version" field. It is called by the builders before save.
	masterystate.EngineVersionValidator = masterystateDescEngineVersion.Validators[0].(func(string) error)
	metricaggregateFields := schema.MetricAggregate{}.Fields()
	_ = metricaggregateFields
	// metricaggregateDescStudentID is the schema descriptor for student_id field.
	metricaggregateDescStudentID := metricaggregateFields[0].Descriptor()
	// metricaggregate.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	metricaggregate.StudentIDValidator = metricaggregateDescStudentID.Validators[0].(func(string) error)
	// metricaggregateDescSubject is the schema descriptor for subject field.
	metricaggregateDescSubject := metricaggregateFields[1].Descriptor()
	// metricaggregate.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	metricaggregate.SubjectValidator = metricaggregateDescSubject.Validators[0].(func(string) error)
	// metricaggregateDescTerm is the schema descriptor for term field.
	metricaggregateDescTerm := metricaggregateFields[2].Descriptor()
	// metricaggregate.TermValidator is a validator for the "term" field. It is called by the builders before save.
	metricaggregate.TermValidator = metricaggregateDescTerm.Validators[0].(func(string) error)
	// metricaggregateDescWindowDays is the schema descriptor for window_days field.
	metricaggregateDescWindowDays := metricaggregateFields[3].Descriptor()
	// metricaggregate.WindowDaysValidator is a validator for the "window_days" field. It is called by the builders before save.
	metricaggregate.WindowDaysValidator = metricaggregateDescWindowDays.Validators[0].(func(int) error)
	// metricaggregateDescEngineVersion is the schema descriptor for engine_version field.
	metricaggregateDescEngineVersion := metricaggregateFields[12].Descriptor()
	// metricaggregate.EngineVersionValidator is a validator for the "engine_version" field. It is called by the builders before save.
	metricaggregate.EngineVersionValidator = metricaggregateDescEngineVersion.Validators[0].(func(string) error)
	microconceptFields := schema.MicroConcept{}.Fields()
	_ = microconceptFields
	// microconceptDescCode is the schema descriptor for code field.
	microconceptDescCode := microconceptFields[0].Descriptor()
	// microconcept.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	microconcept.CodeValidator = microconceptDescCode.Validators[0].(func(string) error)
	// microconceptDescName is the schema descriptor for name field.
	microconceptDescName := microconceptFields[1].Descriptor()
	// microconcept.NameValidator is a validator for the "name" field. It is called by the builders before save.
	microconcept.NameValidator = microconceptDescName.Validators[0].(func(string) error)
	// microconceptDescSubject is the schema descriptor for subject field.
	microconceptDescSubject := microconceptFields[2].Descriptor()
	// microconcept.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	microconcept.SubjectValidator = microconceptDescSubject.Validators[0].(func(string) error)
	// microconceptDescTerm is the schema descriptor for term field.
	microconceptDescTerm := microconceptFields[3].Descriptor()
	// microconcept.TermValidator is a validator for the "term" field. It is called by the builders before save.
	microconcept.TermValidator = microconceptDescTerm.Validators[0].(func(string) error)
	// microconceptDescActive is the schema descriptor for active field.
	microconceptDescActive := microconceptFields[4].Descriptor()
	// microconcept.DefaultActive holds the default value on creation for the active field.
	microconcept.DefaultActive = microconceptDescActive.Default.(bool)
	practiceeventFields := schema.PracticeEvent{}.Fields()
	_ = practiceeventFields
	// practiceeventDescStudentID is the schema descriptor for student_id field.
	practiceeventDescStudentID := practiceeventFields[0].Descriptor()
	// practiceevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	practiceevent.StudentIDValidator = practiceeventDescStudentID.Validators[0].(func(string) error)
	// practiceeventDescSessionID is the schema descriptor for session_id field.
	practiceeventDescSessionID := practiceeventFields[2].Descriptor()
	// practiceevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	practiceevent.SessionIDValidator = practiceeventDescSessionID.Validators[0].(func(string) error)
	// practiceeventDescItemID is the schema descriptor for item_id field.
	practiceeventDescItemID := practiceeventFields[3].Descriptor()
	// practiceevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	practiceevent.ItemIDValidator = practiceeventDescItemID.Validators[0].(func(string) error)
	// practiceeventDescDurationMs is the schema descriptor for duration_ms field.
	practiceeventDescDurationMs := practiceeventFields[6].Descriptor()
	// practiceevent.DurationMsValidator is a validator for the "duration_ms" field. It is called by the builders before save.
	practiceevent.DurationMsValidator = practiceeventDescDurationMs.Validators[0].(func(int) error)
	// practiceeventDescAttempt is the schema descriptor for attempt field.
	practiceeventDescAttempt := practiceeventFields[7].Descriptor()
	// practiceevent.AttemptValidator is a validator for the "attempt" field. It is called by the builders before save.
	practiceevent.AttemptValidator = practiceeventDescAttempt.Validators[0].(func(int) error)
	// practiceeventDescHint is the schema descriptor for hint field.
	practiceeventDescHint := practiceeventFields[9].Descriptor()
	// practiceevent.DefaultHint holds the default value on creation for the hint field.
	practiceevent.DefaultHint = practiceeventDescHint.Default.(string)
	// practiceeventDescDifficulty is the schema descriptor for difficulty field.
	practiceeventDescDifficulty := practiceeventFields[10].Descriptor()
	// practiceevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	practiceevent.DifficultyValidator = practiceeventDescDifficulty.Validators[0].(func(int) error)
	prerequisiteedgeFields := schema.PrerequisiteEdge{}.Fields()
	_ = prerequisiteedgeFields
	// prerequisiteedgeDescConceptCode is the schema descriptor for concept_code field.
	prerequisiteedgeDescConceptCode := prerequisiteedgeFields[0].Descriptor()
	// prerequisiteedge.ConceptCodeValidator is a validator for the "concept_code" field. It is called by the builders before save.
	prerequisiteedge.ConceptCodeValidator = prerequisiteedgeDescConceptCode.Validators[0].(func(string) error)
	// prerequisiteedgeDescPrerequisiteCode is the schema descriptor for prerequisite_code field.
	prerequisiteedgeDescPrerequisiteCode := prerequisiteedgeFields[1].Descriptor()
	// prerequisiteedge.PrerequisiteCodeValidator is a validator for the "prerequisite_code" field. It is called by the builders before save.
	prerequisiteedge.PrerequisiteCodeValidator = prerequisiteedgeDescPrerequisiteCode.Validators[0].(func(string) error)
	recommendationFields := schema.Recommendation{}.Fields()
	_ = recommendationFields
	// recommendationDescStudentID is the schema descriptor for student_id field.
	recommendationDescStudentID := recommendationFields[1].Descriptor()
	// recommendation.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	recommendation.StudentIDValidator = recommendationDescStudentID.Validators[0].(func(string) error)
	// recommendationDescConceptID is the schema descriptor for concept_id field.
	recommendationDescConceptID := recommendationFields[2].Descriptor()
	// recommendation.DefaultConceptID holds the default value on creation for the concept_id field.
	recommendation.DefaultConceptID = recommendationDescConceptID.Default.(string)
	// recommendationDescRuleCode is the schema descriptor for rule_code field.
	recommendationDescRuleCode := recommendationFields[3].Descriptor()
	// recommendation.RuleCodeValidator is a validator for the "rule_code" field. It is called by the builders before save.
	recommendation.RuleCodeValidator = recommendationDescRuleCode.Validators[0].(func(string) error)
	// recommendationDescPriority is the schema descriptor for priority field.
	recommendationDescPriority := recommendationFields[4].Descriptor()
	// recommendation.PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	recommendation.PriorityValidator = recommendationDescPriority.Validators[0].(func(string) error)
	// recommendationDescStatus is the schema descriptor for status field.
	recommendationDescStatus := recommendationFields[5].Descriptor()
	// recommendation.DefaultStatus holds the default value on creation for the status field.
	recommendation.DefaultStatus = recommendationDescStatus.Default.(string)
	// recommendationDescTitle is the schema descriptor for title field.
	recommendationDescTitle := recommendationFields[6].Descriptor()
	// recommendation.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	recommendation.TitleValidator = recommendationDescTitle.Validators[0].(func(string) error)
	// recommendationDescDescription is the schema descriptor for description field.
	recommendationDescDescription := recommendationFields[7].Descriptor()
	// recommendation.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	recommendation.DescriptionValidator = recommendationDescDescription.Validators[0].(func(string) error)
	// recommendationDescWindowDays is the schema descriptor for window_days field.
	recommendationDescWindowDays := recommendationFields[8].Descriptor()
	// recommendation.DefaultWindowDays holds the default value on creation for the window_days field.
	recommendation.DefaultWindowDays = recommendationDescWindowDays.Default.(int)
	// recommendationDescEngineVersion is the schema descriptor for engine_version field.
	recommendationDescEngineVersion := recommendationFields[9].Descriptor()
	// recommendation.EngineVersionValidator is a validator for the "engine_version" field. It is called by the builders before save.
	recommendation.EngineVersionValidator = recommendationDescEngineVersion.Validators[0].(func(string) error)
	// recommendationDescRulesetVersion is the schema descriptor for ruleset_version field.
	recommendationDescRulesetVersion := recommendationFields[10].Descriptor()
	// recommendation.RulesetVersionValidator is a validator for the "ruleset_version" field. It is called by the builders before save.
	recommendation.RulesetVersionValidator = recommendationDescRulesetVersion.Validators[0].(func(string) error)
	// recommendationDescID is the schema descriptor for id field.
	recommendationDescID := recommendationFields[0].Descriptor()
	// recommendation.DefaultID holds the default value on creation for the id field.
	recommendation.DefaultID = recommendationDescID.Default.(func() string)
	recommendationevidenceFields := schema.RecommendationEvidence{}.Fields()
	_ = recommendationevidenceFields
	// recommendationevidenceDescRecommendationID is the schema descriptor for recommendation_id field.
	recommendationevidenceDescRecommendationID := recommendationevidenceFields[0].Descriptor()
	// recommendationevidence.RecommendationIDValidator is a validator for the "recommendation_id" field. It is called by the builders before save.
	recommendationevidence.RecommendationIDValidator = recommendationevidenceDescRecommendationID.Validators[0].(func(string) error)
	// recommendationevidenceDescPosition is the schema descriptor for position field.
	recommendationevidenceDescPosition := recommendationevidenceFields[1].Descriptor()
	// recommendationevidence.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	recommendationevidence.PositionValidator = recommendationevidenceDescPosition.Validators[0].(func(int) error)
	// recommendationevidenceDescEvidenceType is the schema descriptor for evidence_type field.
	recommendationevidenceDescEvidenceType := recommendationevidenceFields[2].Descriptor()
	// recommendationevidence.EvidenceTypeValidator is a validator for the "evidence_type" field. It is called by the builders before save.
	recommendationevidence.EvidenceTypeValidator = recommendationevidenceDescEvidenceType.Validators[0].(func(string) error)
	// recommendationevidenceDescKey is the schema descriptor for key field.
	recommendationevidenceDescKey := recommendationevidenceFields[3].Descriptor()
	// recommendationevidence.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	recommendationevidence.KeyValidator = recommendationevidenceDescKey.Validators[0].(func(string) error)
	// recommendationevidenceDescValue is the schema descriptor for value field.
	recommendationevidenceDescValue := recommendationevidenceFields[4].Descriptor()
	// recommendationevidence.ValueValidator is a validator for the "value" field. It is called by the builders before save.
	recommendationevidence.ValueValidator = recommendationevidenceDescValue.Validators[0].(func(string) error)
	// recommendationevidenceDescDescription is the schema descriptor for description field.
	recommendationevidenceDescDescription := recommendationevidenceFields[5].Descriptor()
	// recommendationevidence.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	recommendationevidence.DescriptionValidator = recommendationevidenceDescDescription.Validators[0].(func(string) error)
	recommendationoutcomeFields := schema.RecommendationOutcome{}.Fields()
	_ = recommendationoutcomeFields
	// recommendationoutcomeDescRecommendationID is the schema descriptor for recommendation_id field.
	recommendationoutcomeDescRecommendationID := recommendationoutcomeFields[1].Descriptor()
	// recommendationoutcome.RecommendationIDValidator is a validator for the "recommendation_id" field. It is called by the builders before save.
	recommendationoutcome.RecommendationIDValidator = recommendationoutcomeDescRecommendationID.Validators[0].(func(string) error)
	// recommendationoutcomeDescSuccess is the schema descriptor for success field.
	recommendationoutcomeDescSuccess := recommendationoutcomeFields[4].Descriptor()
	// recommendationoutcome.SuccessValidator is a validator for the "success" field. It is called by the builders before save.
	recommendationoutcome.SuccessValidator = recommendationoutcomeDescSuccess.Validators[0].(func(string) error)
	// recommendationoutcomeDescEngineVersion is the schema descriptor for engine_version field.
	recommendationoutcomeDescEngineVersion := recommendationoutcomeFields[9].Descriptor()
	// recommendationoutcome.EngineVersionValidator is a validator for the "engine_version" field. It is called by the builders before save.
	recommendationoutcome.EngineVersionValidator = recommendationoutcomeDescEngineVersion.Validators[0].(func(string) error)
	// recommendationoutcomeDescRulesetVersion is the schema descriptor for ruleset_version field.
	recommendationoutcomeDescRulesetVersion := recommendationoutcomeFields[10].Descriptor()
	// recommendationoutcome.RulesetVersionValidator is a validator for the "ruleset_version" field. It is called by the builders before save.
	recommendationoutcome.RulesetVersionValidator = recommendationoutcomeDescRulesetVersion.Validators[0].(func(string) error)
	// recommendationoutcomeDescID is the schema descriptor for id field.
	recommendationoutcomeDescID := recommendationoutcomeFields[0].Descriptor()
	// recommendationoutcome.DefaultID holds the default value on creation for the id field.
	recommendationoutcome.DefaultID = recommendationoutcomeDescID.Default.(func() string)
	tutordecisionFields := schema.TutorDecision{}.Fields()
	_ = tutordecisionFields
	// tutordecisionDescRecommendationID is the schema descriptor for recommendation_id field.
	tutordecisionDescRecommendationID := tutordecisionFields[1].Descriptor()
	// tutordecision.RecommendationIDValidator is a validator for the "recommendation_id" field. It is called by the builders before save.
	tutordecision.RecommendationIDValidator = tutordecisionDescRecommendationID.Validators[0].(func(string) error)
	// tutordecisionDescTutorID is the schema descriptor for tutor_id field.
	tutordecisionDescTutorID := tutordecisionFields[2].Descriptor()
	// tutordecision.TutorIDValidator is a validator for the "tutor_id" field. It is called by the builders before save.
	tutordecision.TutorIDValidator = tutordecisionDescTutorID.Validators[0].(func(string) error)
	// tutordecisionDescDecision is the schema descriptor for decision field.
	tutordecisionDescDecision := tutordecisionFields[3].Descriptor()
	// tutordecision.DecisionValidator is a validator for the "decision" field. It is called by the builders before save.
	tutordecision.DecisionValidator = tutordecisionDescDecision.Validators[0].(func(string) error)
	// tutordecisionDescID is the schema descriptor for id field.
	tutordecisionDescID := tutordecisionFields[0].Descriptor()
	// tutordecision.DefaultID holds the default value on creation for the id field.
	tutordecision.DefaultID = tutordecisionDescID.Default.(func() string)
}
