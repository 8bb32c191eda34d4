// Code generated by ent, DO NOT EDIT.

package metricaggregate

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the metricaggregate type in the database.
	Label = "metric_aggregate"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldTerm holds the string denoting the term field in the database.
	FieldTerm = "term"
	// FieldWindowDays holds the string denoting the window_days field in the database.
	FieldWindowDays = "window_days"
	// FieldAccuracy holds the string denoting the accuracy field in the database.
	FieldAccuracy = "accuracy"
	// FieldFirstAttemptAccuracy holds the string denoting the first_attempt_accuracy field in the database.
	FieldFirstAttemptAccuracy = "first_attempt_accuracy"
	// FieldErrorRate holds the string denoting the error_rate field in the database.
	FieldErrorRate = "error_rate"
	// FieldHintRate holds the string denoting the hint_rate field in the database.
	FieldHintRate = "hint_rate"
	// FieldMedianResponseMs holds the string denoting the median_response_ms field in the database.
	FieldMedianResponseMs = "median_response_ms"
	// FieldAttemptsPerItem holds the string denoting the attempts_per_item field in the database.
	FieldAttemptsPerItem = "attempts_per_item"
	// FieldAbandonRate holds the string denoting the abandon_rate field in the database.
	FieldAbandonRate = "abandon_rate"
	// FieldComputedAt holds the string denoting the computed_at field in the database.
	FieldComputedAt = "computed_at"
	// FieldEngineVersion holds the string denoting the engine_version field in the database.
	FieldEngineVersion = "engine_version"
	// Table holds the table name of the metricaggregate in the database.
	Table = "metric_aggregates"
)

// Columns holds all SQL columns for metricaggregate fields.
var Columns = []string{
	FieldID,
	FieldStudentID,
	FieldSubject,
	FieldTerm,
	FieldWindowDays,
	FieldAccuracy,
	FieldFirstAttemptAccuracy,
	FieldErrorRate,
	FieldHintRate,
	FieldMedianResponseMs,
	FieldAttemptsPerItem,
	FieldAbandonRate,
	FieldComputedAt,
	FieldEngineVersion,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	StudentIDValidator func(string) error
	// SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	SubjectValidator func(string) error
	// TermValidator is a validator for the "term" field. It is called by the builders before save.
	TermValidator func(string) error
	// WindowDaysValidator is a validator for the "window_days" field. It is called by the builders before save.
	WindowDaysValidator func(int) error
	// EngineVersionValidator is a validator for the "engine_version" field. It is called by the builders before save.
	EngineVersionValidator func(string) error
)

// OrderOption defines the ordering options for the MetricAggregate queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByTerm orders the results by the term field.
func ByTerm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTerm, opts...).ToFunc()
}

// ByWindowDays orders the results by the window_days field.
func ByWindowDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowDays, opts...).ToFunc()
}

// ByAccuracy orders the results by the accuracy field.
func ByAccuracy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccuracy, opts...).ToFunc()
}

// ByFirstAttemptAccuracy orders the results by the first_attempt_accuracy field.
func ByFirstAttemptAccuracy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstAttemptAccuracy, opts...).ToFunc()
}

// ByErrorRate orders the results by the error_rate field.
func ByErrorRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorRate, opts...).ToFunc()
}

// ByHintRate orders the results by the hint_rate field.
func ByHintRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHintRate, opts...).ToFunc()
}

// ByMedianResponseMs orders the results by the median_response_ms field.
func ByMedianResponseMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMedianResponseMs, opts...).ToFunc()
}

// ByAttemptsPerItem orders the results by the attempts_per_item field.
func ByAttemptsPerItem(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptsPerItem, opts...).ToFunc()
}

// ByAbandonRate orders the results by the abandon_rate field.
func ByAbandonRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAbandonRate, opts...).ToFunc()
}

// ByComputedAt orders the results by the computed_at field.
func ByComputedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComputedAt, opts...).ToFunc()
}

// ByEngineVersion orders the results by the engine_version field.
func ByEngineVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEngineVersion, opts...).ToFunc()
}
