// Code generated by ent, DO NOT EDIT.

package recommendationoutcome

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/diversifica/decies-platform-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldContainsFold(FieldID, id))
}

// RecommendationID applies equality check predicate on the "recommendation_id" field. It's identical to RecommendationIDEQ.
func RecommendationID(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldEQ(FieldRecommendationID, v))
}

// WindowStart applies equality check predicate on the "window_start" field. It's identical to WindowStartEQ.
func WindowStart(v time.Time) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldEQ(FieldWindowStart, v))
}

// WindowEnd applies equality check predicate on the "window_end" field. It's identical to WindowEndEQ.
func WindowEnd(v time.Time) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldEQ(FieldWindowEnd, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldEQ(FieldSuccess, v))
}

// DeltaMastery applies equality check predicate on the "delta_mastery" field. It's identical to DeltaMasteryEQ.
func DeltaMastery(v float64) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldEQ(FieldDeltaMastery, v))
}

// DeltaAccuracy applies equality check predicate on the "delta_accuracy" field. It's identical to DeltaAccuracyEQ.
func DeltaAccuracy(v float64) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldEQ(FieldDeltaAccuracy, v))
}

// DeltaHintRate applies equality check predicate on the "delta_hint_rate" field. It's identical to DeltaHintRateEQ.
func DeltaHintRate(v float64) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldEQ(FieldDeltaHintRate, v))
}

// ComputedAt applies equality check predicate on the "computed_at" field. It's identical to ComputedAtEQ.
func ComputedAt(v time.Time) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldEQ(FieldComputedAt, v))
}

// EngineVersion applies equality check predicate on the "engine_version" field. It's identical to EngineVersionEQ.
func EngineVersion(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldEQ(FieldEngineVersion, v))
}

// RulesetVersion applies equality check predicate on the "ruleset_version" field. It's identical to RulesetVersionEQ.
func RulesetVersion(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldEQ(FieldRulesetVersion, v))
}

// RecommendationIDEQ applies the EQ predicate on the "recommendation_id" field.
func RecommendationIDEQ(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldEQ(FieldRecommendationID, v))
}

// RecommendationIDNEQ applies the NEQ predicate on the "recommendation_id" field.
func RecommendationIDNEQ(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldNEQ(FieldRecommendationID, v))
}

// RecommendationIDIn applies the In predicate on the "recommendation_id" field.
func RecommendationIDIn(vs ...string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldIn(FieldRecommendationID, vs...))
}

// RecommendationIDNotIn applies the NotIn predicate on the "recommendation_id" field.
func RecommendationIDNotIn(vs ...string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldNotIn(FieldRecommendationID, vs...))
}

// RecommendationIDGT applies the GT predicate on the "recommendation_id" field.
func RecommendationIDGT(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldGT(FieldRecommendationID, v))
}

// RecommendationIDGTE applies the GTE predicate on the "recommendation_id" field.
func RecommendationIDGTE(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldGTE(FieldRecommendationID, v))
}

// RecommendationIDLT applies the LT predicate on the "recommendation_id" field.
func RecommendationIDLT(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldLT(FieldRecommendationID, v))
}

// RecommendationIDLTE applies the LTE predicate on the "recommendation_id" field.
func RecommendationIDLTE(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldLTE(FieldRecommendationID, v))
}

// RecommendationIDContains applies the Contains predicate on the "recommendation_id" field.
func RecommendationIDContains(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldContains(FieldRecommendationID, v))
}

// RecommendationIDHasPrefix applies the HasPrefix predicate on the "recommendation_id" field.
func RecommendationIDHasPrefix(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldHasPrefix(FieldRecommendationID, v))
}

// RecommendationIDHasSuffix applies the HasSuffix predicate on the "recommendation_id" field.
func RecommendationIDHasSuffix(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldHasSuffix(FieldRecommendationID, v))
}

// RecommendationIDEqualFold applies the EqualFold predicate on the "recommendation_id" field.
func RecommendationIDEqualFold(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldEqualFold(FieldRecommendationID, v))
}

// RecommendationIDContainsFold applies the ContainsFold predicate on the "recommendation_id" field.
func RecommendationIDContainsFold(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldContainsFold(FieldRecommendationID, v))
}

// WindowStartEQ applies the EQ predicate on the "window_start" field.
func WindowStartEQ(v time.Time) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldEQ(FieldWindowStart, v))
}

// WindowStartNEQ applies the NEQ predicate on the "window_start" field.
func WindowStartNEQ(v time.Time) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldNEQ(FieldWindowStart, v))
}

// WindowStartIn applies the In predicate on the "window_start" field.
func WindowStartIn(vs ...time.Time) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldIn(FieldWindowStart, vs...))
}

// WindowStartNotIn applies the NotIn predicate on the "window_start" field.
func WindowStartNotIn(vs ...time.Time) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldNotIn(FieldWindowStart, vs...))
}

// WindowStartGT applies the GT predicate on the "window_start" field.
func WindowStartGT(v time.Time) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldGT(FieldWindowStart, v))
}

// WindowStartGTE applies the GTE predicate on the "window_start" field.
func WindowStartGTE(v time.Time) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldGTE(FieldWindowStart, v))
}

// WindowStartLT applies the LT predicate on the "window_start" field.
func WindowStartLT(v time.Time) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldLT(FieldWindowStart, v))
}

// WindowStartLTE applies the LTE predicate on the "window_start" field.
func WindowStartLTE(v time.Time) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldLTE(FieldWindowStart, v))
}

// WindowEndEQ applies the EQ predicate on the "window_end" field.
func WindowEndEQ(v time.Time) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldEQ(FieldWindowEnd, v))
}

// WindowEndNEQ applies the NEQ predicate on the "window_end" field.
func WindowEndNEQ(v time.Time) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldNEQ(FieldWindowEnd, v))
}

// WindowEndIn applies the In predicate on the "window_end" field.
func WindowEndIn(vs ...time.Time) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldIn(FieldWindowEnd, vs...))
}

// WindowEndNotIn applies the NotIn predicate on the "window_end" field.
func WindowEndNotIn(vs ...time.Time) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldNotIn(FieldWindowEnd, vs...))
}

// WindowEndGT applies the GT predicate on the "window_end" field.
func WindowEndGT(v time.Time) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldGT(FieldWindowEnd, v))
}

// WindowEndGTE applies the GTE predicate on the "window_end" field.
func WindowEndGTE(v time.Time) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldGTE(FieldWindowEnd, v))
}

// WindowEndLT applies the LT predicate on the "window_end" field.
func WindowEndLT(v time.Time) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldLT(FieldWindowEnd, v))
}

// WindowEndLTE applies the LTE predicate on the "window_end" field.
func WindowEndLTE(v time.Time) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldLTE(FieldWindowEnd, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldNEQ(FieldSuccess, v))
}

// SuccessIn applies the In predicate on the "success" field.
func SuccessIn(vs ...string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldIn(FieldSuccess, vs...))
}

// SuccessNotIn applies the NotIn predicate on the "success" field.
func SuccessNotIn(vs ...string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldNotIn(FieldSuccess, vs...))
}

// SuccessGT applies the GT predicate on the "success" field.
func SuccessGT(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldGT(FieldSuccess, v))
}

// SuccessGTE applies the GTE predicate on the "success" field.
func SuccessGTE(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldGTE(FieldSuccess, v))
}

// SuccessLT applies the LT predicate on the "success" field.
func SuccessLT(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldLT(FieldSuccess, v))
}

// SuccessLTE applies the LTE predicate on the "success" field.
func SuccessLTE(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldLTE(FieldSuccess, v))
}

// SuccessContains applies the Contains predicate on the "success" field.
func SuccessContains(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldContains(FieldSuccess, v))
}

// SuccessHasPrefix applies the HasPrefix predicate on the "success" field.
func SuccessHasPrefix(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldHasPrefix(FieldSuccess, v))
}

// SuccessHasSuffix applies the HasSuffix predicate on the "success" field.
func SuccessHasSuffix(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldHasSuffix(FieldSuccess, v))
}

// SuccessEqualFold applies the EqualFold predicate on the "success" field.
func SuccessEqualFold(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldEqualFold(FieldSuccess, v))
}

// SuccessContainsFold applies the ContainsFold predicate on the "success" field.
func SuccessContainsFold(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldContainsFold(FieldSuccess, v))
}

// DeltaMasteryEQ applies the EQ predicate on the "delta_mastery" field.
func DeltaMasteryEQ(v float64) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldEQ(FieldDeltaMastery, v))
}

// DeltaMasteryNEQ applies the NEQ predicate on the "delta_mastery" field.
func DeltaMasteryNEQ(v float64) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldNEQ(FieldDeltaMastery, v))
}

// DeltaMasteryIn applies the In predicate on the "delta_mastery" field.
func DeltaMasteryIn(vs ...float64) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldIn(FieldDeltaMastery, vs...))
}

// DeltaMasteryNotIn applies the NotIn predicate on the "delta_mastery" field.
func DeltaMasteryNotIn(vs ...float64) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldNotIn(FieldDeltaMastery, vs...))
}

// DeltaMasteryGT applies the GT predicate on the "delta_mastery" field.
func DeltaMasteryGT(v float64) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldGT(FieldDeltaMastery, v))
}

// DeltaMasteryGTE applies the GTE predicate on the "delta_mastery" field.
func DeltaMasteryGTE(v float64) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldGTE(FieldDeltaMastery, v))
}

// DeltaMasteryLT applies the LT predicate on the "delta_mastery" field.
func DeltaMasteryLT(v float64) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldLT(FieldDeltaMastery, v))
}

// DeltaMasteryLTE applies the LTE predicate on the "delta_mastery" field.
func DeltaMasteryLTE(v float64) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldLTE(FieldDeltaMastery, v))
}

// DeltaMasteryIsNil applies the IsNil predicate on the "delta_mastery" field.
func DeltaMasteryIsNil() predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldIsNull(FieldDeltaMastery))
}

// DeltaMasteryNotNil applies the NotNil predicate on the "delta_mastery" field.
func DeltaMasteryNotNil() predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldNotNull(FieldDeltaMastery))
}

// DeltaAccuracyEQ applies the EQ predicate on the "delta_accuracy" field.
func DeltaAccuracyEQ(v float64) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldEQ(FieldDeltaAccuracy, v))
}

// DeltaAccuracyNEQ applies the NEQ predicate on the "delta_accuracy" field.
func DeltaAccuracyNEQ(v float64) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldNEQ(FieldDeltaAccuracy, v))
}

// DeltaAccuracyIn applies the In predicate on the "delta_accuracy" field.
func DeltaAccuracyIn(vs ...float64) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldIn(FieldDeltaAccuracy, vs...))
}

// DeltaAccuracyNotIn applies the NotIn predicate on the "delta_accuracy" field.
func DeltaAccuracyNotIn(vs ...float64) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldNotIn(FieldDeltaAccuracy, vs...))
}

// DeltaAccuracyGT applies the GT predicate on the "delta_accuracy" field.
func DeltaAccuracyGT(v float64) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldGT(FieldDeltaAccuracy, v))
}

// DeltaAccuracyGTE applies the GTE predicate on the "delta_accuracy" field.
func DeltaAccuracyGTE(v float64) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldGTE(FieldDeltaAccuracy, v))
}

// DeltaAccuracyLT applies the LT predicate on the "delta_accuracy" field.
func DeltaAccuracyLT(v float64) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldLT(FieldDeltaAccuracy, v))
}

// DeltaAccuracyLTE applies the LTE predicate on the "delta_accuracy" field.
func DeltaAccuracyLTE(v float64) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldLTE(FieldDeltaAccuracy, v))
}

// DeltaAccuracyIsNil applies the IsNil predicate on the "delta_accuracy" field.
func DeltaAccuracyIsNil() predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldIsNull(FieldDeltaAccuracy))
}

// DeltaAccuracyNotNil applies the NotNil predicate on the "delta_accuracy" field.
func DeltaAccuracyNotNil() predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldNotNull(FieldDeltaAccuracy))
}

// DeltaHintRateEQ applies the EQ predicate on the "delta_hint_rate" field.
func DeltaHintRateEQ(v float64) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldEQ(FieldDeltaHintRate, v))
}

// DeltaHintRateNEQ applies the NEQ predicate on the "delta_hint_rate" field.
func DeltaHintRateNEQ(v float64) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldNEQ(FieldDeltaHintRate, v))
}

// DeltaHintRateIn applies the In predicate on the "delta_hint_rate" field.
func DeltaHintRateIn(vs ...float64) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldIn(FieldDeltaHintRate, vs...))
}

// DeltaHintRateNotIn applies the NotIn predicate on the "delta_hint_rate" field.
func DeltaHintRateNotIn(vs ...float64) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldNotIn(FieldDeltaHintRate, vs...))
}

// DeltaHintRateGT applies the GT predicate on the "delta_hint_rate" field.
func DeltaHintRateGT(v float64) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldGT(FieldDeltaHintRate, v))
}

// DeltaHintRateGTE applies the GTE predicate on the "delta_hint_rate" field.
func DeltaHintRateGTE(v float64) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldGTE(FieldDeltaHintRate, v))
}

// DeltaHintRateLT applies the LT predicate on the "delta_hint_rate" field.
func DeltaHintRateLT(v float64) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldLT(FieldDeltaHintRate, v))
}

// DeltaHintRateLTE applies the LTE predicate on the "delta_hint_rate" field.
func DeltaHintRateLTE(v float64) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldLTE(FieldDeltaHintRate, v))
}

// DeltaHintRateIsNil applies the IsNil predicate on the "delta_hint_rate" field.
func DeltaHintRateIsNil() predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldIsNull(FieldDeltaHintRate))
}

// DeltaHintRateNotNil applies the NotNil predicate on the "delta_hint_rate" field.
func DeltaHintRateNotNil() predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldNotNull(FieldDeltaHintRate))
}

// ComputedAtEQ applies the EQ predicate on the "computed_at" field.
func ComputedAtEQ(v time.Time) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldEQ(FieldComputedAt, v))
}

// ComputedAtNEQ applies the NEQ predicate on the "computed_at" field.
func ComputedAtNEQ(v time.Time) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldNEQ(FieldComputedAt, v))
}

// ComputedAtIn applies the In predicate on the "computed_at" field.
func ComputedAtIn(vs ...time.Time) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldIn(FieldComputedAt, vs...))
}

// ComputedAtNotIn applies the NotIn predicate on the "computed_at" field.
func ComputedAtNotIn(vs ...time.Time) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldNotIn(FieldComputedAt, vs...))
}

// ComputedAtGT applies the GT predicate on the "computed_at" field.
func ComputedAtGT(v time.Time) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldGT(FieldComputedAt, v))
}

// ComputedAtGTE applies the GTE predicate on the "computed_at" field.
func ComputedAtGTE(v time.Time) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldGTE(FieldComputedAt, v))
}

// ComputedAtLT applies the LT predicate on the "computed_at" field.
func ComputedAtLT(v time.Time) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldLT(FieldComputedAt, v))
}

// ComputedAtLTE applies the LTE predicate on the "computed_at" field.
func ComputedAtLTE(v time.Time) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldLTE(FieldComputedAt, v))
}

// EngineVersionEQ applies the EQ predicate on the "engine_version" field.
func EngineVersionEQ(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldEQ(FieldEngineVersion, v))
}

// EngineVersionNEQ applies the NEQ predicate on the "engine_version" field.
func EngineVersionNEQ(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldNEQ(FieldEngineVersion, v))
}

// EngineVersionIn applies the In predicate on the "engine_version" field.
func EngineVersionIn(vs ...string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldIn(FieldEngineVersion, vs...))
}

// EngineVersionNotIn applies the NotIn predicate on the "engine_version" field.
func EngineVersionNotIn(vs ...string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldNotIn(FieldEngineVersion, vs...))
}

// EngineVersionGT applies the GT predicate on the "engine_version" field.
func EngineVersionGT(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldGT(FieldEngineVersion, v))
}

// EngineVersionGTE applies the GTE predicate on the "engine_version" field.
func EngineVersionGTE(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldGTE(FieldEngineVersion, v))
}

// EngineVersionLT applies the LT predicate on the "engine_version" field.
func EngineVersionLT(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldLT(FieldEngineVersion, v))
}

// EngineVersionLTE applies the LTE predicate on the "engine_version" field.
func EngineVersionLTE(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldLTE(FieldEngineVersion, v))
}

// EngineVersionContains applies the Contains predicate on the "engine_version" field.
func EngineVersionContains(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldContains(FieldEngineVersion, v))
}

// EngineVersionHasPrefix applies the HasPrefix predicate on the "engine_version" field.
func EngineVersionHasPrefix(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldHasPrefix(FieldEngineVersion, v))
}

// EngineVersionHasSuffix applies the HasSuffix predicate on the "engine_version" field.
func EngineVersionHasSuffix(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldHasSuffix(FieldEngineVersion, v))
}

// EngineVersionEqualFold applies the EqualFold predicate on the "engine_version" field.
func EngineVersionEqualFold(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldEqualFold(FieldEngineVersion, v))
}

// EngineVersionContainsFold applies the ContainsFold predicate on the "engine_version" field.
func EngineVersionContainsFold(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldContainsFold(FieldEngineVersion, v))
}

// RulesetVersionEQ applies the EQ predicate on the "ruleset_version" field.
func RulesetVersionEQ(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldEQ(FieldRulesetVersion, v))
}

// RulesetVersionNEQ applies the NEQ predicate on the "ruleset_version" field.
func RulesetVersionNEQ(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldNEQ(FieldRulesetVersion, v))
}

// RulesetVersionIn applies the In predicate on the "ruleset_version" field.
func RulesetVersionIn(vs ...string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldIn(FieldRulesetVersion, vs...))
}

// RulesetVersionNotIn applies the NotIn predicate on the "ruleset_version" field.
func RulesetVersionNotIn(vs ...string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldNotIn(FieldRulesetVersion, vs...))
}

// RulesetVersionGT applies the GT predicate on the "ruleset_version" field.
func RulesetVersionGT(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldGT(FieldRulesetVersion, v))
}

// RulesetVersionGTE applies the GTE predicate on the "ruleset_version" field.
func RulesetVersionGTE(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldGTE(FieldRulesetVersion, v))
}

// RulesetVersionLT applies the LT predicate on the "ruleset_version" field.
func RulesetVersionLT(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldLT(FieldRulesetVersion, v))
}

// RulesetVersionLTE applies the LTE predicate on the "ruleset_version" field.
func RulesetVersionLTE(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldLTE(FieldRulesetVersion, v))
}

// RulesetVersionContains applies the Contains predicate on the "ruleset_version" field.
func RulesetVersionContains(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldContains(FieldRulesetVersion, v))
}

// RulesetVersionHasPrefix applies the HasPrefix predicate on the "ruleset_version" field.
func RulesetVersionHasPrefix(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldHasPrefix(FieldRulesetVersion, v))
}

// RulesetVersionHasSuffix applies the HasSuffix predicate on the "ruleset_version" field.
func RulesetVersionHasSuffix(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldHasSuffix(FieldRulesetVersion, v))
}

// RulesetVersionEqualFold applies the EqualFold predicate on the "ruleset_version" field.
func RulesetVersionEqualFold(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldEqualFold(FieldRulesetVersion, v))
}

// RulesetVersionContainsFold applies the ContainsFold predicate on the "ruleset_version" field.
func RulesetVersionContainsFold(v string) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.FieldContainsFold(FieldRulesetVersion, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RecommendationOutcome) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RecommendationOutcome) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RecommendationOutcome) predicate.RecommendationOutcome {
	return predicate.RecommendationOutcome(sql.NotPredicates(p))
}
