// Code generated by ent, DO NOT EDIT.

package prerequisiteedge

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the prerequisiteedge type in the database.
	Label = "prerequisite_edge"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldConceptCode holds the string denoting the concept_code field in the database.
	FieldConceptCode = "concept_code"
	// FieldPrerequisiteCode holds the string denoting the prerequisite_code field in the database.
	FieldPrerequisiteCode = "prerequisite_code"
	// Table holds the table name of the prerequisiteedge in the database.
	Table = "prerequisite_edges"
)

// Columns holds all SQL columns for prerequisiteedge fields.
var Columns = []string{
	FieldID,
	FieldConceptCode,
	FieldPrerequisiteCode,
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
	// ConceptCodeValidator is a validator for the "concept_code" field. It is called by the builders before save.
	ConceptCodeValidator func(string) error
	// PrerequisiteCodeValidator is a validator for the "prerequisite_code" field. It is called by the builders before save.
	PrerequisiteCodeValidator func(string) error
)

// OrderOption defines the ordering options for the PrerequisiteEdge queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByConceptCode orders the results by the concept_code field.
func ByConceptCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptCode, opts...).ToFunc()
}

// ByPrerequisiteCode orders the results by the prerequisite_code field.
func ByPrerequisiteCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrerequisiteCode, opts...).ToFunc()
}
