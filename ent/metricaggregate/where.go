// Code generated by ent, DO NOT EDIT.

package metricaggregate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/diversifica/decies-platform-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldLTE(FieldID, id))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldEQ(FieldStudentID, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldEQ(FieldSubject, v))
}

// Term applies equality check predicate on the "term" field. It's identical to TermEQ.
func Term(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldEQ(FieldTerm, v))
}

// WindowDays applies equality check predicate on the "window_days" field. It's identical to WindowDaysEQ.
func WindowDays(v int) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldEQ(FieldWindowDays, v))
}

// Accuracy applies equality check predicate on the "accuracy" field. It's identical to AccuracyEQ.
func Accuracy(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldEQ(FieldAccuracy, v))
}

// FirstAttemptAccuracy applies equality check predicate on the "first_attempt_accuracy" field. It's identical to FirstAttemptAccuracyEQ.
func FirstAttemptAccuracy(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldEQ(FieldFirstAttemptAccuracy, v))
}

// ErrorRate applies equality check predicate on the "error_rate" field. It's identical to ErrorRateEQ.
func ErrorRate(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldEQ(FieldErrorRate, v))
}

// HintRate applies equality check predicate on the "hint_rate" field. It's identical to HintRateEQ.
func HintRate(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldEQ(FieldHintRate, v))
}

// MedianResponseMs applies equality check predicate on the "median_response_ms" field. It's identical to MedianResponseMsEQ.
func MedianResponseMs(v int) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldEQ(FieldMedianResponseMs, v))
}

// AttemptsPerItem applies equality check predicate on the "attempts_per_item" field. It's identical to AttemptsPerItemEQ.
func AttemptsPerItem(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldEQ(FieldAttemptsPerItem, v))
}

// AbandonRate applies equality check predicate on the "abandon_rate" field. It's identical to AbandonRateEQ.
func AbandonRate(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldEQ(FieldAbandonRate, v))
}

// ComputedAt applies equality check predicate on the "computed_at" field. It's identical to ComputedAtEQ.
func ComputedAt(v time.Time) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldEQ(FieldComputedAt, v))
}

// EngineVersion applies equality check predicate on the "engine_version" field. It's identical to EngineVersionEQ.
func EngineVersion(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldEQ(FieldEngineVersion, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldContainsFold(FieldStudentID, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldContainsFold(FieldSubject, v))
}

// TermEQ applies the EQ predicate on the "term" field.
func TermEQ(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldEQ(FieldTerm, v))
}

// TermNEQ applies the NEQ predicate on the "term" field.
func TermNEQ(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldNEQ(FieldTerm, v))
}

// TermIn applies the In predicate on the "term" field.
func TermIn(vs ...string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldIn(FieldTerm, vs...))
}

// TermNotIn applies the NotIn predicate on the "term" field.
func TermNotIn(vs ...string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldNotIn(FieldTerm, vs...))
}

// TermGT applies the GT predicate on the "term" field.
func TermGT(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldGT(FieldTerm, v))
}

// TermGTE applies the GTE predicate on the "term" field.
func TermGTE(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldGTE(FieldTerm, v))
}

// TermLT applies the LT predicate on the "term" field.
func TermLT(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldLT(FieldTerm, v))
}

// TermLTE applies the LTE predicate on the "term" field.
func TermLTE(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldLTE(FieldTerm, v))
}

// TermContains applies the Contains predicate on the "term" field.
func TermContains(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldContains(FieldTerm, v))
}

// TermHasPrefix applies the HasPrefix predicate on the "term" field.
func TermHasPrefix(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldHasPrefix(FieldTerm, v))
}

// TermHasSuffix applies the HasSuffix predicate on the "term" field.
func TermHasSuffix(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldHasSuffix(FieldTerm, v))
}

// TermEqualFold applies the EqualFold predicate on the "term" field.
func TermEqualFold(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldEqualFold(FieldTerm, v))
}

// TermContainsFold applies the ContainsFold predicate on the "term" field.
func TermContainsFold(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldContainsFold(FieldTerm, v))
}

// WindowDaysEQ applies the EQ predicate on the "window_days" field.
func WindowDaysEQ(v int) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldEQ(FieldWindowDays, v))
}

// WindowDaysNEQ applies the NEQ predicate on the "window_days" field.
func WindowDaysNEQ(v int) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldNEQ(FieldWindowDays, v))
}

// WindowDaysIn applies the In predicate on the "window_days" field.
func WindowDaysIn(vs ...int) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldIn(FieldWindowDays, vs...))
}

// WindowDaysNotIn applies the NotIn predicate on the "window_days" field.
func WindowDaysNotIn(vs ...int) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldNotIn(FieldWindowDays, vs...))
}

// WindowDaysGT applies the GT predicate on the "window_days" field.
func WindowDaysGT(v int) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldGT(FieldWindowDays, v))
}

// WindowDaysGTE applies the GTE predicate on the "window_days" field.
func WindowDaysGTE(v int) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldGTE(FieldWindowDays, v))
}

// WindowDaysLT applies the LT predicate on the "window_days" field.
func WindowDaysLT(v int) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldLT(FieldWindowDays, v))
}

// WindowDaysLTE applies the LTE predicate on the "window_days" field.
func WindowDaysLTE(v int) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldLTE(FieldWindowDays, v))
}

// AccuracyEQ applies the EQ predicate on the "accuracy" field.
func AccuracyEQ(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldEQ(FieldAccuracy, v))
}

// AccuracyNEQ applies the NEQ predicate on the "accuracy" field.
func AccuracyNEQ(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldNEQ(FieldAccuracy, v))
}

// AccuracyIn applies the In predicate on the "accuracy" field.
func AccuracyIn(vs ...float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldIn(FieldAccuracy, vs...))
}

// AccuracyNotIn applies the NotIn predicate on the "accuracy" field.
func AccuracyNotIn(vs ...float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldNotIn(FieldAccuracy, vs...))
}

// AccuracyGT applies the GT predicate on the "accuracy" field.
func AccuracyGT(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldGT(FieldAccuracy, v))
}

// AccuracyGTE applies the GTE predicate on the "accuracy" field.
func AccuracyGTE(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldGTE(FieldAccuracy, v))
}

// AccuracyLT applies the LT predicate on the "accuracy" field.
func AccuracyLT(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldLT(FieldAccuracy, v))
}

// AccuracyLTE applies the LTE predicate on the "accuracy" field.
func AccuracyLTE(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldLTE(FieldAccuracy, v))
}

// FirstAttemptAccuracyEQ applies the EQ predicate on the "first_attempt_accuracy" field.
func FirstAttemptAccuracyEQ(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldEQ(FieldFirstAttemptAccuracy, v))
}

// FirstAttemptAccuracyNEQ applies the NEQ predicate on the "first_attempt_accuracy" field.
func FirstAttemptAccuracyNEQ(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldNEQ(FieldFirstAttemptAccuracy, v))
}

// FirstAttemptAccuracyIn applies the In predicate on the "first_attempt_accuracy" field.
func FirstAttemptAccuracyIn(vs ...float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldIn(FieldFirstAttemptAccuracy, vs...))
}

// FirstAttemptAccuracyNotIn applies the NotIn predicate on the "first_attempt_accuracy" field.
func FirstAttemptAccuracyNotIn(vs ...float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldNotIn(FieldFirstAttemptAccuracy, vs...))
}

// FirstAttemptAccuracyGT applies the GT predicate on the "first_attempt_accuracy" field.
func FirstAttemptAccuracyGT(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldGT(FieldFirstAttemptAccuracy, v))
}

// FirstAttemptAccuracyGTE applies the GTE predicate on the "first_attempt_accuracy" field.
func FirstAttemptAccuracyGTE(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldGTE(FieldFirstAttemptAccuracy, v))
}

// FirstAttemptAccuracyLT applies the LT predicate on the "first_attempt_accuracy" field.
func FirstAttemptAccuracyLT(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldLT(FieldFirstAttemptAccuracy, v))
}

// FirstAttemptAccuracyLTE applies the LTE predicate on the "first_attempt_accuracy" field.
func FirstAttemptAccuracyLTE(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldLTE(FieldFirstAttemptAccuracy, v))
}

// ErrorRateEQ applies the EQ predicate on the "error_rate" field.
func ErrorRateEQ(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldEQ(FieldErrorRate, v))
}

// ErrorRateNEQ applies the NEQ predicate on the "error_rate" field.
func ErrorRateNEQ(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldNEQ(FieldErrorRate, v))
}

// ErrorRateIn applies the In predicate on the "error_rate" field.
func ErrorRateIn(vs ...float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldIn(FieldErrorRate, vs...))
}

// ErrorRateNotIn applies the NotIn predicate on the "error_rate" field.
func ErrorRateNotIn(vs ...float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldNotIn(FieldErrorRate, vs...))
}

// ErrorRateGT applies the GT predicate on the "error_rate" field.
func ErrorRateGT(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldGT(FieldErrorRate, v))
}

// ErrorRateGTE applies the GTE predicate on the "error_rate" field.
func ErrorRateGTE(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldGTE(FieldErrorRate, v))
}

// ErrorRateLT applies the LT predicate on the "error_rate" field.
func ErrorRateLT(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldLT(FieldErrorRate, v))
}

// ErrorRateLTE applies the LTE predicate on the "error_rate" field.
func ErrorRateLTE(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldLTE(FieldErrorRate, v))
}

// HintRateEQ applies the EQ predicate on the "hint_rate" field.
func HintRateEQ(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldEQ(FieldHintRate, v))
}

// HintRateNEQ applies the NEQ predicate on the "hint_rate" field.
func HintRateNEQ(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldNEQ(FieldHintRate, v))
}

// HintRateIn applies the In predicate on the "hint_rate" field.
func HintRateIn(vs ...float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldIn(FieldHintRate, vs...))
}

// HintRateNotIn applies the NotIn predicate on the "hint_rate" field.
func HintRateNotIn(vs ...float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldNotIn(FieldHintRate, vs...))
}

// HintRateGT applies the GT predicate on the "hint_rate" field.
func HintRateGT(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldGT(FieldHintRate, v))
}

// HintRateGTE applies the GTE predicate on the "hint_rate" field.
func HintRateGTE(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldGTE(FieldHintRate, v))
}

// HintRateLT applies the LT predicate on the "hint_rate" field.
func HintRateLT(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldLT(FieldHintRate, v))
}

// HintRateLTE applies the LTE predicate on the "hint_rate" field.
func HintRateLTE(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldLTE(FieldHintRate, v))
}

// MedianResponseMsEQ applies the EQ predicate on the "median_response_ms" field.
func MedianResponseMsEQ(v int) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldEQ(FieldMedianResponseMs, v))
}

// MedianResponseMsNEQ applies the NEQ predicate on the "median_response_ms" field.
func MedianResponseMsNEQ(v int) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldNEQ(FieldMedianResponseMs, v))
}

// MedianResponseMsIn applies the In predicate on the "median_response_ms" field.
func MedianResponseMsIn(vs ...int) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldIn(FieldMedianResponseMs, vs...))
}

// MedianResponseMsNotIn applies the NotIn predicate on the "median_response_ms" field.
func MedianResponseMsNotIn(vs ...int) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldNotIn(FieldMedianResponseMs, vs...))
}

// MedianResponseMsGT applies the GT predicate on the "median_response_ms" field.
func MedianResponseMsGT(v int) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldGT(FieldMedianResponseMs, v))
}

// MedianResponseMsGTE applies the GTE predicate on the "median_response_ms" field.
func MedianResponseMsGTE(v int) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldGTE(FieldMedianResponseMs, v))
}

// MedianResponseMsLT applies the LT predicate on the "median_response_ms" field.
func MedianResponseMsLT(v int) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldLT(FieldMedianResponseMs, v))
}

// MedianResponseMsLTE applies the LTE predicate on the "median_response_ms" field.
func MedianResponseMsLTE(v int) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldLTE(FieldMedianResponseMs, v))
}

// AttemptsPerItemEQ applies the EQ predicate on the "attempts_per_item" field.
func AttemptsPerItemEQ(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldEQ(FieldAttemptsPerItem, v))
}

// AttemptsPerItemNEQ applies the NEQ predicate on the "attempts_per_item" field.
func AttemptsPerItemNEQ(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldNEQ(FieldAttemptsPerItem, v))
}

// AttemptsPerItemIn applies the In predicate on the "attempts_per_item" field.
func AttemptsPerItemIn(vs ...float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldIn(FieldAttemptsPerItem, vs...))
}

// AttemptsPerItemNotIn applies the NotIn predicate on the "attempts_per_item" field.
func AttemptsPerItemNotIn(vs ...float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldNotIn(FieldAttemptsPerItem, vs...))
}

// AttemptsPerItemGT applies the GT predicate on the "attempts_per_item" field.
func AttemptsPerItemGT(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldGT(FieldAttemptsPerItem, v))
}

// AttemptsPerItemGTE applies the GTE predicate on the "attempts_per_item" field.
func AttemptsPerItemGTE(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldGTE(FieldAttemptsPerItem, v))
}

// AttemptsPerItemLT applies the LT predicate on the "attempts_per_item" field.
func AttemptsPerItemLT(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldLT(FieldAttemptsPerItem, v))
}

// AttemptsPerItemLTE applies the LTE predicate on the "attempts_per_item" field.
func AttemptsPerItemLTE(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldLTE(FieldAttemptsPerItem, v))
}

// AbandonRateEQ applies the EQ predicate on the "abandon_rate" field.
func AbandonRateEQ(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldEQ(FieldAbandonRate, v))
}

// AbandonRateNEQ applies the NEQ predicate on the "abandon_rate" field.
func AbandonRateNEQ(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldNEQ(FieldAbandonRate, v))
}

// AbandonRateIn applies the In predicate on the "abandon_rate" field.
func AbandonRateIn(vs ...float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldIn(FieldAbandonRate, vs...))
}

// AbandonRateNotIn applies the NotIn predicate on the "abandon_rate" field.
func AbandonRateNotIn(vs ...float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldNotIn(FieldAbandonRate, vs...))
}

// AbandonRateGT applies the GT predicate on the "abandon_rate" field.
func AbandonRateGT(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldGT(FieldAbandonRate, v))
}

// AbandonRateGTE applies the GTE predicate on the "abandon_rate" field.
func AbandonRateGTE(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldGTE(FieldAbandonRate, v))
}

// AbandonRateLT applies the LT predicate on the "abandon_rate" field.
func AbandonRateLT(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldLT(FieldAbandonRate, v))
}

// AbandonRateLTE applies the LTE predicate on the "abandon_rate" field.
func AbandonRateLTE(v float64) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldLTE(FieldAbandonRate, v))
}

// ComputedAtEQ applies the EQ predicate on the "computed_at" field.
func ComputedAtEQ(v time.Time) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldEQ(FieldComputedAt, v))
}

// ComputedAtNEQ applies the NEQ predicate on the "computed_at" field.
func ComputedAtNEQ(v time.Time) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldNEQ(FieldComputedAt, v))
}

// ComputedAtIn applies the In predicate on the "computed_at" field.
func ComputedAtIn(vs ...time.Time) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldIn(FieldComputedAt, vs...))
}

// ComputedAtNotIn applies the NotIn predicate on the "computed_at" field.
func ComputedAtNotIn(vs ...time.Time) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldNotIn(FieldComputedAt, vs...))
}

// ComputedAtGT applies the GT predicate on the "computed_at" field.
func ComputedAtGT(v time.Time) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldGT(FieldComputedAt, v))
}

// ComputedAtGTE applies the GTE predicate on the "computed_at" field.
func ComputedAtGTE(v time.Time) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldGTE(FieldComputedAt, v))
}

// ComputedAtLT applies the LT predicate on the "computed_at" field.
func ComputedAtLT(v time.Time) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldLT(FieldComputedAt, v))
}

// ComputedAtLTE applies the LTE predicate on the "computed_at" field.
func ComputedAtLTE(v time.Time) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldLTE(FieldComputedAt, v))
}

// EngineVersionEQ applies the EQ predicate on the "engine_version" field.
func EngineVersionEQ(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldEQ(FieldEngineVersion, v))
}

// EngineVersionNEQ applies the NEQ predicate on the "engine_version" field.
func EngineVersionNEQ(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldNEQ(FieldEngineVersion, v))
}

// EngineVersionIn applies the In predicate on the "engine_version" field.
func EngineVersionIn(vs ...string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldIn(FieldEngineVersion, vs...))
}

// EngineVersionNotIn applies the NotIn predicate on the "engine_version" field.
func EngineVersionNotIn(vs ...string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldNotIn(FieldEngineVersion, vs...))
}

// EngineVersionGT applies the GT predicate on the "engine_version" field.
func EngineVersionGT(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldGT(FieldEngineVersion, v))
}

// EngineVersionGTE applies the GTE predicate on the "engine_version" field.
func EngineVersionGTE(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldGTE(FieldEngineVersion, v))
}

// EngineVersionLT applies the LT predicate on the "engine_version" field.
func EngineVersionLT(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldLT(FieldEngineVersion, v))
}

// EngineVersionLTE applies the LTE predicate on the "engine_version" field.
func EngineVersionLTE(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldLTE(FieldEngineVersion, v))
}

// EngineVersionContains applies the Contains predicate on the "engine_version" field.
func EngineVersionContains(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldContains(FieldEngineVersion, v))
}

// EngineVersionHasPrefix applies the HasPrefix predicate on the "engine_version" field.
func EngineVersionHasPrefix(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldHasPrefix(FieldEngineVersion, v))
}

// EngineVersionHasSuffix applies the HasSuffix predicate on the "engine_version" field.
func EngineVersionHasSuffix(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldHasSuffix(FieldEngineVersion, v))
}

// EngineVersionEqualFold applies the EqualFold predicate on the "engine_version" field.
func EngineVersionEqualFold(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldEqualFold(FieldEngineVersion, v))
}

// EngineVersionContainsFold applies the ContainsFold predicate on the "engine_version" field.
func EngineVersionContainsFold(v string) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.FieldContainsFold(FieldEngineVersion, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MetricAggregate) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MetricAggregate) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MetricAggregate) predicate.MetricAggregate {
	return predicate.MetricAggregate(sql.NotPredicates(p))
}
