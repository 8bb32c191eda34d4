// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/diversifica/decies-platform-sub000/ent/prerequisiteedge"
)

// PrerequisiteEdge is the model entity for the PrerequisiteEdge schema.
type PrerequisiteEdge struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ConceptCode holds the value of the "concept_code" field.
	ConceptCode string `json:"concept_code,omitempty"`
	// PrerequisiteCode holds the value of the "prerequisite_code" field.
	PrerequisiteCode string `json:"prerequisite_code,omitempty"`
	selectValues     sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PrerequisiteEdge) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case prerequisiteedge.FieldID:
			values[i] = new(sql.NullInt64)
		case prerequisiteedge.FieldConceptCode, prerequisiteedge.FieldPrerequisiteCode:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PrerequisiteEdge fields.
func (_m *PrerequisiteEdge) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case prerequisiteedge.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case prerequisiteedge.FieldConceptCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept_code", values[i])
			} else if value.Valid {
				_m.ConceptCode = value.String
			}
		case prerequisiteedge.FieldPrerequisiteCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prerequisite_code", values[i])
			} else if value.Valid {
				_m.PrerequisiteCode = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PrerequisiteEdge.
// This includes values selected through modifiers, order, etc.
func (_m *PrerequisiteEdge) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PrerequisiteEdge.
// Note that you need to call PrerequisiteEdge.Unwrap() before calling this method if this PrerequisiteEdge
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PrerequisiteEdge) Update() *PrerequisiteEdgeUpdateOne {
	return NewPrerequisiteEdgeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PrerequisiteEdge entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PrerequisiteEdge) Unwrap() *PrerequisiteEdge {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PrerequisiteEdge is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PrerequisiteEdge) String() string {
	var builder strings.Builder
	builder.WriteString("PrerequisiteEdge(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("concept_code=")
	builder.WriteString(_m.ConceptCode)
	builder.WriteString(", ")
	builder.WriteString("prerequisite_code=")
	builder.WriteString(_m.PrerequisiteCode)
	builder.WriteByte(')')
	return builder.String()
}

// PrerequisiteEdges is a parsable slice of PrerequisiteEdge.
type PrerequisiteEdges []*PrerequisiteEdge
