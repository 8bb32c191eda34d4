// Code generated by ent, DO NOT EDIT.

package prerequisiteedge

import (
	"entgo.io/ent/dialect/sql"
	"github.com/diversifica/decies-platform-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PrerequisiteEdge {
	return predicate.PrerequisiteEdge(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PrerequisiteEdge {
	return predicate.PrerequisiteEdge(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PrerequisiteEdge {
	return predicate.PrerequisiteEdge(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PrerequisiteEdge {
	return predicate.PrerequisiteEdge(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PrerequisiteEdge {
	return predicate.PrerequisiteEdge(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PrerequisiteEdge {
	return predicate.PrerequisiteEdge(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PrerequisiteEdge {
	return predicate.PrerequisiteEdge(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PrerequisiteEdge {
	return predicate.PrerequisiteEdge(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PrerequisiteEdge {
	return predicate.PrerequisiteEdge(sql.FieldLTE(FieldID, id))
}

// ConceptCode applies equality check predicate on the "concept_code" field. It's identical to ConceptCodeEQ.
func ConceptCode(v string) predicate.PrerequisiteEdge {
	return predicate.PrerequisiteEdge(sql.FieldEQ(FieldConceptCode, v))
}

// PrerequisiteCode applies equality check predicate on the "prerequisite_code" field. It's identical to PrerequisiteCodeEQ.
func PrerequisiteCode(v string) predicate.PrerequisiteEdge {
	return predicate.PrerequisiteEdge(sql.FieldEQ(FieldPrerequisiteCode, v))
}

// ConceptCodeEQ applies the EQ predicate on the "concept_code" field.
func ConceptCodeEQ(v string) predicate.PrerequisiteEdge {
	return predicate.PrerequisiteEdge(sql.FieldEQ(FieldConceptCode, v))
}

// ConceptCodeNEQ applies the NEQ predicate on the "concept_code" field.
func ConceptCodeNEQ(v string) predicate.PrerequisiteEdge {
	return predicate.PrerequisiteEdge(sql.FieldNEQ(FieldConceptCode, v))
}

// ConceptCodeIn applies the In predicate on the "concept_code" field.
func ConceptCodeIn(vs ...string) predicate.PrerequisiteEdge {
	return predicate.PrerequisiteEdge(sql.FieldIn(FieldConceptCode, vs...))
}

// ConceptCodeNotIn applies the NotIn predicate on the "concept_code" field.
func ConceptCodeNotIn(vs ...string) predicate.PrerequisiteEdge {
	return predicate.PrerequisiteEdge(sql.FieldNotIn(FieldConceptCode, vs...))
}

// ConceptCodeGT applies the GT predicate on the "concept_code" field.
func ConceptCodeGT(v string) predicate.PrerequisiteEdge {
	return predicate.PrerequisiteEdge(sql.FieldGT(FieldConceptCode, v))
}

// ConceptCodeGTE applies the GTE predicate on the "concept_code" field.
func ConceptCodeGTE(v string) predicate.PrerequisiteEdge {
	return predicate.PrerequisiteEdge(sql.FieldGTE(FieldConceptCode, v))
}

// ConceptCodeLT applies the LT predicate on the "concept_code" field.
func ConceptCodeLT(v string) predicate.PrerequisiteEdge {
	return predicate.PrerequisiteEdge(sql.FieldLT(FieldConceptCode, v))
}

// ConceptCodeLTE applies the LTE predicate on the "concept_code" field.
func ConceptCodeLTE(v string) predicate.PrerequisiteEdge {
	return predicate.PrerequisiteEdge(sql.FieldLTE(FieldConceptCode, v))
}

// ConceptCodeContains applies the Contains predicate on the "concept_code" field.
func ConceptCodeContains(v string) predicate.PrerequisiteEdge {
	return predicate.PrerequisiteEdge(sql.FieldContains(FieldConceptCode, v))
}

// ConceptCodeHasPrefix applies the HasPrefix predicate on the "concept_code" field.
func ConceptCodeHasPrefix(v string) predicate.PrerequisiteEdge {
	return predicate.PrerequisiteEdge(sql.FieldHasPrefix(FieldConceptCode, v))
}

// ConceptCodeHasSuffix applies the HasSuffix predicate on the "concept_code" field.
func ConceptCodeHasSuffix(v string) predicate.PrerequisiteEdge {
	return predicate.PrerequisiteEdge(sql.FieldHasSuffix(FieldConceptCode, v))
}

// ConceptCodeEqualFold applies the EqualFold predicate on the "concept_code" field.
func ConceptCodeEqualFold(v string) predicate.PrerequisiteEdge {
	return predicate.PrerequisiteEdge(sql.FieldEqualFold(FieldConceptCode, v))
}

// ConceptCodeContainsFold applies the ContainsFold predicate on the "concept_code" field.
func ConceptCodeContainsFold(v string) predicate.PrerequisiteEdge {
	return predicate.PrerequisiteEdge(sql.FieldContainsFold(FieldConceptCode, v))
}

// PrerequisiteCodeEQ applies the EQ predicate on the "prerequisite_code" field.
func PrerequisiteCodeEQ(v string) predicate.PrerequisiteEdge {
	return predicate.PrerequisiteEdge(sql.FieldEQ(FieldPrerequisiteCode, v))
}

// PrerequisiteCodeNEQ applies the NEQ predicate on the "prerequisite_code" field.
func PrerequisiteCodeNEQ(v string) predicate.PrerequisiteEdge {
	return predicate.PrerequisiteEdge(sql.FieldNEQ(FieldPrerequisiteCode, v))
}

// PrerequisiteCodeIn applies the In predicate on the "prerequisite_code" field.
func PrerequisiteCodeIn(vs ...string) predicate.PrerequisiteEdge {
	return predicate.PrerequisiteEdge(sql.FieldIn(FieldPrerequisiteCode, vs...))
}

// PrerequisiteCodeNotIn applies the NotIn predicate on the "prerequisite_code" field.
func PrerequisiteCodeNotIn(vs ...string) predicate.PrerequisiteEdge {
	return predicate.PrerequisiteEdge(sql.FieldNotIn(FieldPrerequisiteCode, vs...))
}

// PrerequisiteCodeGT applies the GT predicate on the "prerequisite_code" field.
func PrerequisiteCodeGT(v string) predicate.PrerequisiteEdge {
	return predicate.PrerequisiteEdge(sql.FieldGT(FieldPrerequisiteCode, v))
}

// PrerequisiteCodeGTE applies the GTE predicate on the "prerequisite_code" field.
func PrerequisiteCodeGTE(v string) predicate.PrerequisiteEdge {
	return predicate.PrerequisiteEdge(sql.FieldGTE(FieldPrerequisiteCode, v))
}

// PrerequisiteCodeLT applies the LT predicate on the "prerequisite_code" field.
func PrerequisiteCodeLT(v string) predicate.PrerequisiteEdge {
	return predicate.PrerequisiteEdge(sql.FieldLT(FieldPrerequisiteCode, v))
}

// PrerequisiteCodeLTE applies the LTE predicate on the "prerequisite_code" field.
func PrerequisiteCodeLTE(v string) predicate.PrerequisiteEdge {
	return predicate.PrerequisiteEdge(sql.FieldLTE(FieldPrerequisiteCode, v))
}

// PrerequisiteCodeContains applies the Contains predicate on the "prerequisite_code" field.
func PrerequisiteCodeContains(v string) predicate.PrerequisiteEdge {
	return predicate.PrerequisiteEdge(sql.FieldContains(FieldPrerequisiteCode, v))
}

// PrerequisiteCodeHasPrefix applies the HasPrefix predicate on the "prerequisite_code" field.
func PrerequisiteCodeHasPrefix(v string) predicate.PrerequisiteEdge {
	return predicate.PrerequisiteEdge(sql.FieldHasPrefix(FieldPrerequisiteCode, v))
}

// PrerequisiteCodeHasSuffix applies the HasSuffix predicate on the "prerequisite_code" field.
func PrerequisiteCodeHasSuffix(v string) predicate.PrerequisiteEdge {
	return predicate.PrerequisiteEdge(sql.FieldHasSuffix(FieldPrerequisiteCode, v))
}

// PrerequisiteCodeEqualFold applies the EqualFold predicate on the "prerequisite_code" field.
func PrerequisiteCodeEqualFold(v string) predicate.PrerequisiteEdge {
	return predicate.PrerequisiteEdge(sql.FieldEqualFold(FieldPrerequisiteCode, v))
}

// PrerequisiteCodeContainsFold applies the ContainsFold predicate on the "prerequisite_code" field.
func PrerequisiteCodeContainsFold(v string) predicate.PrerequisiteEdge {
	return predicate.PrerequisiteEdge(sql.FieldContainsFold(FieldPrerequisiteCode, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PrerequisiteEdge) predicate.PrerequisiteEdge {
	return predicate.PrerequisiteEdge(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PrerequisiteEdge) predicate.PrerequisiteEdge {
	return predicate.PrerequisiteEdge(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PrerequisiteEdge) predicate.PrerequisiteEdge {
	return predicate.PrerequisiteEdge(sql.NotPredicates(p))
}
