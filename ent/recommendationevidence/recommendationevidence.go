// Code generated by ent, DO NOT EDIT.

package recommendationevidence

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the recommendationevidence type in the database.
	Label = "recommendation_evidence"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRecommendationID holds the string denoting the recommendation_id field in the database.
	FieldRecommendationID = "recommendation_id"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldEvidenceType holds the string denoting the evidence_type field in the database.
	FieldEvidenceType = "evidence_type"
	// FieldKey holds the string denoting the key field in the database.
	FieldKey = "key"
	// FieldValue holds the string denoting the value field in the database.
	FieldValue = "value"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// Table holds the table name of the recommendationevidence in the database.
	Table = "recommendation_evidences"
)

// Columns holds all SQL columns for recommendationevidence fields.
var Columns = []string{
	FieldID,
	FieldRecommendationID,
	FieldPosition,
	FieldEvidenceType,
	FieldKey,
	FieldValue,
	FieldDescription,
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
	// PositionValidator is a validator for the "position" field. It is called by the builders before save.
	PositionValidator func(int) error
	// EvidenceTypeValidator is a validator for the "evidence_type" field. It is called by the builders before save.
	EvidenceTypeValidator func(string) error
	// KeyValidator is a validator for the "key" field. It is called by the builders before save.
	KeyValidator func(string) error
	// ValueValidator is a validator for the "value" field. It is called by the builders before save.
	ValueValidator func(string) error
	// DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	DescriptionValidator func(string) error
)

// OrderOption defines the ordering options for the RecommendationEvidence queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRecommendationID orders the results by the recommendation_id field.
func ByRecommendationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecommendationID, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByEvidenceType orders the results by the evidence_type field.
func ByEvidenceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvidenceType, opts...).ToFunc()
}

// ByKey orders the results by the key field.
func ByKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKey, opts...).ToFunc()
}

// ByValue orders the results by the value field.
func ByValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValue, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}
