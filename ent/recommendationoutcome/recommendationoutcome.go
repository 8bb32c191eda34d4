// Code generated by ent, DO NOT EDIT.

package recommendationoutcome

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the recommendationoutcome type in the database.
	Label = "recommendation_outcome"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRecommendationID holds the string denoting the recommendation_id field in the database.
	FieldRecommendationID = "recommendation_id"
	// FieldWindowStart holds the string denoting the window_start field in the database.
	FieldWindowStart = "window_start"
	// FieldWindowEnd holds the string denoting the window_end field in the database.
	FieldWindowEnd = "window_end"
	// FieldSuccess holds the string denoting the success field in the database.
	FieldSuccess = "success"
	// FieldDeltaMastery holds the string denoting the delta_mastery field in the database.
	FieldDeltaMastery = "delta_mastery"
	// FieldDeltaAccuracy holds the string denoting the delta_accuracy field in the database.
	FieldDeltaAccuracy = "delta_accuracy"
	// FieldDeltaHintRate holds the string denoting the delta_hint_rate field in the database.
	FieldDeltaHintRate = "delta_hint_rate"
	// FieldComputedAt holds the string denoting the computed_at field in the database.
	FieldComputedAt = "computed_at"
	// FieldEngineVersion holds the string denoting the engine_version field in the database.
	FieldEngineVersion = "engine_version"
	// FieldRulesetVersion holds the string denoting the ruleset_version field in the database.
	FieldRulesetVersion = "ruleset_version"
	// Table holds the table name of the recommendationoutcome in the database.
	Table = "recommendation_outcomes"
)

// Columns holds all SQL columns for recommendationoutcome fields.
var Columns = []string{
	FieldID,
	FieldRecommendationID,
	FieldWindowStart,
	FieldWindowEnd,
	FieldSuccess,
	FieldDeltaMastery,
	FieldDeltaAccuracy,
	FieldDeltaHintRate,
	FieldComputedAt,
	FieldEngineVersion,
	FieldRulesetVersion,
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
	// RecommendationIDValidator is a validator for the "recommendation_id" field. It is called by the builders before save.
	RecommendationIDValidator func(string) error
	// SuccessValidator is a validator for the "success" field. It is called by the builders before save.
	SuccessValidator func(string) error
	// EngineVersionValidator is a validator for the "engine_version" field. It is called by the builders before save.
	EngineVersionValidator func(string) error
	// RulesetVersionValidator is a validator for the "ruleset_version" field. It is called by the builders before save.
	RulesetVersionValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
)

// OrderOption defines the ordering options for the RecommendationOutcome queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRecommendationID orders the results by the recommendation_id field.
func ByRecommendationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecommendationID, opts...).ToFunc()
}

// ByWindowStart orders the results by the window_start field.
func ByWindowStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowStart, opts...).ToFunc()
}

// ByWindowEnd orders the results by the window_end field.
func ByWindowEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowEnd, opts...).ToFunc()
}

// BySuccess orders the results by the success field.
func BySuccess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccess, opts...).ToFunc()
}

// ByDeltaMastery orders the results by the delta_mastery field.
func ByDeltaMastery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeltaMastery, opts...).ToFunc()
}

// ByDeltaAccuracy orders the results by the delta_accuracy field.
func ByDeltaAccuracy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeltaAccuracy, opts...).ToFunc()
}

// ByDeltaHintRate orders the results by the delta_hint_rate field.
func ByDeltaHintRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeltaHintRate, opts...).ToFunc()
}

// ByComputedAt orders the results by the computed_at field.
func ByComputedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComputedAt, opts...).ToFunc()
}

// ByEngineVersion orders the results by the engine_version field.
func ByEngineVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEngineVersion, opts...).ToFunc()
}

// ByRulesetVersion orders the results by the ruleset_version field.
func ByRulesetVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRulesetVersion, opts...).ToFunc()
}
