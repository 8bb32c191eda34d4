// Code generated by ent, DO NOT EDIT.

package recommendationevidence

import (
	"entgo.io/ent/dialect/sql"
	"github.com/diversifica/decies-platform-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldLTE(FieldID, id))
}

// RecommendationID applies equality check predicate on the "recommendation_id" field. It's identical to RecommendationIDEQ.
func RecommendationID(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldEQ(FieldRecommendationID, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldEQ(FieldPosition, v))
}

// EvidenceType applies equality check predicate on the "evidence_type" field. It's identical to EvidenceTypeEQ.
func EvidenceType(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldEQ(FieldEvidenceType, v))
}

// Key applies equality check predicate on the "key" field. It's identical to KeyEQ.
func Key(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldEQ(FieldKey, v))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldEQ(FieldValue, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldEQ(FieldDescription, v))
}

// RecommendationIDEQ applies the EQ predicate on the "recommendation_id" field.
func RecommendationIDEQ(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldEQ(FieldRecommendationID, v))
}

// RecommendationIDNEQ applies the NEQ predicate on the "recommendation_id" field.
func RecommendationIDNEQ(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldNEQ(FieldRecommendationID, v))
}

// RecommendationIDIn applies the In predicate on the "recommendation_id" field.
func RecommendationIDIn(vs ...string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldIn(FieldRecommendationID, vs...))
}

// RecommendationIDNotIn applies the NotIn predicate on the "recommendation_id" field.
func RecommendationIDNotIn(vs ...string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldNotIn(FieldRecommendationID, vs...))
}

// RecommendationIDGT applies the GT predicate on the "recommendation_id" field.
func RecommendationIDGT(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldGT(FieldRecommendationID, v))
}

// RecommendationIDGTE applies the GTE predicate on the "recommendation_id" field.
func RecommendationIDGTE(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldGTE(FieldRecommendationID, v))
}

// RecommendationIDLT applies the LT predicate on the "recommendation_id" field.
func RecommendationIDLT(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldLT(FieldRecommendationID, v))
}

// RecommendationIDLTE applies the LTE predicate on the "recommendation_id" field.
func RecommendationIDLTE(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldLTE(FieldRecommendationID, v))
}

// RecommendationIDContains applies the Contains predicate on the "recommendation_id" field.
func RecommendationIDContains(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldContains(FieldRecommendationID, v))
}

// RecommendationIDHasPrefix applies the HasPrefix predicate on the "recommendation_id" field.
func RecommendationIDHasPrefix(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldHasPrefix(FieldRecommendationID, v))
}

// RecommendationIDHasSuffix applies the HasSuffix predicate on the "recommendation_id" field.
func RecommendationIDHasSuffix(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldHasSuffix(FieldRecommendationID, v))
}

// RecommendationIDEqualFold applies the EqualFold predicate on the "recommendation_id" field.
func RecommendationIDEqualFold(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldEqualFold(FieldRecommendationID, v))
}

// RecommendationIDContainsFold applies the ContainsFold predicate on the "recommendation_id" field.
func RecommendationIDContainsFold(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldContainsFold(FieldRecommendationID, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldLTE(FieldPosition, v))
}

// EvidenceTypeEQ applies the EQ predicate on the "evidence_type" field.
func EvidenceTypeEQ(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldEQ(FieldEvidenceType, v))
}

// EvidenceTypeNEQ applies the NEQ predicate on the "evidence_type" field.
func EvidenceTypeNEQ(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldNEQ(FieldEvidenceType, v))
}

// EvidenceTypeIn applies the In predicate on the "evidence_type" field.
func EvidenceTypeIn(vs ...string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldIn(FieldEvidenceType, vs...))
}

// EvidenceTypeNotIn applies the NotIn predicate on the "evidence_type" field.
func EvidenceTypeNotIn(vs ...string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldNotIn(FieldEvidenceType, vs...))
}

// EvidenceTypeGT applies the GT predicate on the "evidence_type" field.
func EvidenceTypeGT(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldGT(FieldEvidenceType, v))
}

// EvidenceTypeGTE applies the GTE predicate on the "evidence_type" field.
func EvidenceTypeGTE(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldGTE(FieldEvidenceType, v))
}

// EvidenceTypeLT applies the LT predicate on the "evidence_type" field.
func EvidenceTypeLT(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldLT(FieldEvidenceType, v))
}

// EvidenceTypeLTE applies the LTE predicate on the "evidence_type" field.
func EvidenceTypeLTE(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldLTE(FieldEvidenceType, v))
}

// EvidenceTypeContains applies the Contains predicate on the "evidence_type" field.
func EvidenceTypeContains(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldContains(FieldEvidenceType, v))
}

// EvidenceTypeHasPrefix applies the HasPrefix predicate on the "evidence_type" field.
func EvidenceTypeHasPrefix(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldHasPrefix(FieldEvidenceType, v))
}

// EvidenceTypeHasSuffix applies the HasSuffix predicate on the "evidence_type" field.
func EvidenceTypeHasSuffix(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldHasSuffix(FieldEvidenceType, v))
}

// EvidenceTypeEqualFold applies the EqualFold predicate on the "evidence_type" field.
func EvidenceTypeEqualFold(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldEqualFold(FieldEvidenceType, v))
}

// EvidenceTypeContainsFold applies the ContainsFold predicate on the "evidence_type" field.
func EvidenceTypeContainsFold(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldContainsFold(FieldEvidenceType, v))
}

// KeyEQ applies the EQ predicate on the "key" field.
func KeyEQ(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldEQ(FieldKey, v))
}

// KeyNEQ applies the NEQ predicate on the "key" field.
func KeyNEQ(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldNEQ(FieldKey, v))
}

// KeyIn applies the In predicate on the "key" field.
func KeyIn(vs ...string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldIn(FieldKey, vs...))
}

// KeyNotIn applies the NotIn predicate on the "key" field.
func KeyNotIn(vs ...string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldNotIn(FieldKey, vs...))
}

// KeyGT applies the GT predicate on the "key" field.
func KeyGT(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldGT(FieldKey, v))
}

// KeyGTE applies the GTE predicate on the "key" field.
func KeyGTE(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldGTE(FieldKey, v))
}

// KeyLT applies the LT predicate on the "key" field.
func KeyLT(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldLT(FieldKey, v))
}

// KeyLTE applies the LTE predicate on the "key" field.
func KeyLTE(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldLTE(FieldKey, v))
}

// KeyContains applies the Contains predicate on the "key" field.
func KeyContains(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldContains(FieldKey, v))
}

// KeyHasPrefix applies the HasPrefix predicate on the "key" field.
func KeyHasPrefix(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldHasPrefix(FieldKey, v))
}

// KeyHasSuffix applies the HasSuffix predicate on the "key" field.
func KeyHasSuffix(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldHasSuffix(FieldKey, v))
}

// KeyEqualFold applies the EqualFold predicate on the "key" field.
func KeyEqualFold(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldEqualFold(FieldKey, v))
}

// KeyContainsFold applies the ContainsFold predicate on the "key" field.
func KeyContainsFold(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldContainsFold(FieldKey, v))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldLTE(FieldValue, v))
}

// ValueContains applies the Contains predicate on the "value" field.
func ValueContains(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldContains(FieldValue, v))
}

// ValueHasPrefix applies the HasPrefix predicate on the "value" field.
func ValueHasPrefix(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldHasPrefix(FieldValue, v))
}

// ValueHasSuffix applies the HasSuffix predicate on the "value" field.
func ValueHasSuffix(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldHasSuffix(FieldValue, v))
}

// ValueEqualFold applies the EqualFold predicate on the "value" field.
func ValueEqualFold(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldEqualFold(FieldValue, v))
}

// ValueContainsFold applies the ContainsFold predicate on the "value" field.
func ValueContainsFold(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldContainsFold(FieldValue, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.FieldContainsFold(FieldDescription, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RecommendationEvidence) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RecommendationEvidence) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RecommendationEvidence) predicate.RecommendationEvidence {
	return predicate.RecommendationEvidence(sql.NotPredicates(p))
}
