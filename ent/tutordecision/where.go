// Code generated by ent, DO NOT EDIT.

package tutordecision

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/diversifica/decies-platform-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldContainsFold(FieldID, id))
}

// RecommendationID applies equality check predicate on the "recommendation_id" field. It's identical to RecommendationIDEQ.
func RecommendationID(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldEQ(FieldRecommendationID, v))
}

// TutorID applies equality check predicate on the "tutor_id" field. It's identical to TutorIDEQ.
func TutorID(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldEQ(FieldTutorID, v))
}

// Decision applies equality check predicate on the "decision" field. It's identical to DecisionEQ.
func Decision(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldEQ(FieldDecision, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldEQ(FieldNotes, v))
}

// DecidedAt applies equality check predicate on the "decided_at" field. It's identical to DecidedAtEQ.
func DecidedAt(v time.Time) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldEQ(FieldDecidedAt, v))
}

// RecommendationIDEQ applies the EQ predicate on the "recommendation_id" field.
func RecommendationIDEQ(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldEQ(FieldRecommendationID, v))
}

// RecommendationIDNEQ applies the NEQ predicate on the "recommendation_id" field.
func RecommendationIDNEQ(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldNEQ(FieldRecommendationID, v))
}

// RecommendationIDIn applies the In predicate on the "recommendation_id" field.
func RecommendationIDIn(vs ...string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldIn(FieldRecommendationID, vs...))
}

// RecommendationIDNotIn applies the NotIn predicate on the "recommendation_id" field.
func RecommendationIDNotIn(vs ...string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldNotIn(FieldRecommendationID, vs...))
}

// RecommendationIDGT applies the GT predicate on the "recommendation_id" field.
func RecommendationIDGT(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldGT(FieldRecommendationID, v))
}

// RecommendationIDGTE applies the GTE predicate on the "recommendation_id" field.
func RecommendationIDGTE(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldGTE(FieldRecommendationID, v))
}

// RecommendationIDLT applies the LT predicate on the "recommendation_id" field.
func RecommendationIDLT(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldLT(FieldRecommendationID, v))
}

// RecommendationIDLTE applies the LTE predicate on the "recommendation_id" field.
func RecommendationIDLTE(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldLTE(FieldRecommendationID, v))
}

// RecommendationIDContains applies the Contains predicate on the "recommendation_id" field.
func RecommendationIDContains(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldContains(FieldRecommendationID, v))
}

// RecommendationIDHasPrefix applies the HasPrefix predicate on the "recommendation_id" field.
func RecommendationIDHasPrefix(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldHasPrefix(FieldRecommendationID, v))
}

// RecommendationIDHasSuffix applies the HasSuffix predicate on the "recommendation_id" field.
func RecommendationIDHasSuffix(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldHasSuffix(FieldRecommendationID, v))
}

// RecommendationIDEqualFold applies the EqualFold predicate on the "recommendation_id" field.
func RecommendationIDEqualFold(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldEqualFold(FieldRecommendationID, v))
}

// RecommendationIDContainsFold applies the ContainsFold predicate on the "recommendation_id" field.
func RecommendationIDContainsFold(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldContainsFold(FieldRecommendationID, v))
}

// TutorIDEQ applies the EQ predicate on the "tutor_id" field.
func TutorIDEQ(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldEQ(FieldTutorID, v))
}

// TutorIDNEQ applies the NEQ predicate on the "tutor_id" field.
func TutorIDNEQ(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldNEQ(FieldTutorID, v))
}

// TutorIDIn applies the In predicate on the "tutor_id" field.
func TutorIDIn(vs ...string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldIn(FieldTutorID, vs...))
}

// TutorIDNotIn applies the NotIn predicate on the "tutor_id" field.
func TutorIDNotIn(vs ...string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldNotIn(FieldTutorID, vs...))
}

// TutorIDGT applies the GT predicate on the "tutor_id" field.
func TutorIDGT(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldGT(FieldTutorID, v))
}

// TutorIDGTE applies the GTE predicate on the "tutor_id" field.
func TutorIDGTE(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldGTE(FieldTutorID, v))
}

// TutorIDLT applies the LT predicate on the "tutor_id" field.
func TutorIDLT(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldLT(FieldTutorID, v))
}

// TutorIDLTE applies the LTE predicate on the "tutor_id" field.
func TutorIDLTE(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldLTE(FieldTutorID, v))
}

// TutorIDContains applies the Contains predicate on the "tutor_id" field.
func TutorIDContains(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldContains(FieldTutorID, v))
}

// TutorIDHasPrefix applies the HasPrefix predicate on the "tutor_id" field.
func TutorIDHasPrefix(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldHasPrefix(FieldTutorID, v))
}

// TutorIDHasSuffix applies the HasSuffix predicate on the "tutor_id" field.
func TutorIDHasSuffix(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldHasSuffix(FieldTutorID, v))
}

// TutorIDEqualFold applies the EqualFold predicate on the "tutor_id" field.
func TutorIDEqualFold(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldEqualFold(FieldTutorID, v))
}

// TutorIDContainsFold applies the ContainsFold predicate on the "tutor_id" field.
func TutorIDContainsFold(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldContainsFold(FieldTutorID, v))
}

// DecisionEQ applies the EQ predicate on the "decision" field.
func DecisionEQ(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldEQ(FieldDecision, v))
}

// DecisionNEQ applies the NEQ predicate on the "decision" field.
func DecisionNEQ(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldNEQ(FieldDecision, v))
}

// DecisionIn applies the In predicate on the "decision" field.
func DecisionIn(vs ...string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldIn(FieldDecision, vs...))
}

// DecisionNotIn applies the NotIn predicate on the "decision" field.
func DecisionNotIn(vs ...string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldNotIn(FieldDecision, vs...))
}

// DecisionGT applies the GT predicate on the "decision" field.
func DecisionGT(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldGT(FieldDecision, v))
}

// DecisionGTE applies the GTE predicate on the "decision" field.
func DecisionGTE(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldGTE(FieldDecision, v))
}

// DecisionLT applies the LT predicate on the "decision" field.
func DecisionLT(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldLT(FieldDecision, v))
}

// DecisionLTE applies the LTE predicate on the "decision" field.
func DecisionLTE(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldLTE(FieldDecision, v))
}

// DecisionContains applies the Contains predicate on the "decision" field.
func DecisionContains(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldContains(FieldDecision, v))
}

// DecisionHasPrefix applies the HasPrefix predicate on the "decision" field.
func DecisionHasPrefix(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldHasPrefix(FieldDecision, v))
}

// DecisionHasSuffix applies the HasSuffix predicate on the "decision" field.
func DecisionHasSuffix(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldHasSuffix(FieldDecision, v))
}

// DecisionEqualFold applies the EqualFold predicate on the "decision" field.
func DecisionEqualFold(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldEqualFold(FieldDecision, v))
}

// DecisionContainsFold applies the ContainsFold predicate on the "decision" field.
func DecisionContainsFold(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldContainsFold(FieldDecision, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldContainsFold(FieldNotes, v))
}

// DecidedAtEQ applies the EQ predicate on the "decided_at" field.
func DecidedAtEQ(v time.Time) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldEQ(FieldDecidedAt, v))
}

// DecidedAtNEQ applies the NEQ predicate on the "decided_at" field.
func DecidedAtNEQ(v time.Time) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldNEQ(FieldDecidedAt, v))
}

// DecidedAtIn applies the In predicate on the "decided_at" field.
func DecidedAtIn(vs ...time.Time) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldIn(FieldDecidedAt, vs...))
}

// DecidedAtNotIn applies the NotIn predicate on the "decided_at" field.
func DecidedAtNotIn(vs ...time.Time) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldNotIn(FieldDecidedAt, vs...))
}

// DecidedAtGT applies the GT predicate on the "decided_at" field.
func DecidedAtGT(v time.Time) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldGT(FieldDecidedAt, v))
}

// DecidedAtGTE applies the GTE predicate on the "decided_at" field.
func DecidedAtGTE(v time.Time) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldGTE(FieldDecidedAt, v))
}

// DecidedAtLT applies the LT predicate on the "decided_at" field.
func DecidedAtLT(v time.Time) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldLT(FieldDecidedAt, v))
}

// DecidedAtLTE applies the LTE predicate on the "decided_at" field.
func DecidedAtLTE(v time.Time) predicate.TutorDecision {
	return predicate.TutorDecision(sql.FieldLTE(FieldDecidedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TutorDecision) predicate.TutorDecision {
	return predicate.TutorDecision(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TutorDecision) predicate.TutorDecision {
	return predicate.TutorDecision(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TutorDecision) predicate.TutorDecision {
	return predicate.TutorDecision(sql.NotPredicates(p))
}
