// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/diversifica/decies-platform-sub000/ent/recommendationevidence"
)

// RecommendationEvidence is the model entity for the RecommendationEvidence schema.
type RecommendationEvidence struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// RecommendationID holds the value of the "recommendation_id" field.
	RecommendationID string `json:"recommendation_id,omitempty"`
	// Position holds the value of the "position" field.
	Position int `json:"position,omitempty"`
	// metric, mastery, prerequisite, session, or count
	EvidenceType string `json:"evidence_type,omitempty"`
	// Key holds the value of the "key" field.
	Key string `json:"key,omitempty"`
	// Value holds the value of the "value" field.
	Value string `json:"value,omitempty"`
	// Human-readable justification shown to the tutor
	Description  string `json:"description,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RecommendationEvidence) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case recommendationevidence.FieldID, recommendationevidence.FieldPosition:
			values[i] = new(sql.NullInt64)
		case recommendationevidence.FieldRecommendationID, recommendationevidence.FieldEvidenceType, recommendationevidence.FieldKey, recommendationevidence.FieldValue, recommendationevidence.FieldDescription:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RecommendationEvidence fields.
func (_m *RecommendationEvidence) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case recommendationevidence.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case recommendationevidence.FieldRecommendationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recommendation_id", values[i])
			} else if value.Valid {
				_m.RecommendationID = value.String
			}
		case recommendationevidence.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case recommendationevidence.FieldEvidenceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field evidence_type", values[i])
			} else if value.Valid {
				_m.EvidenceType = value.String
			}
		case recommendationevidence.FieldKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key", values[i])
			} else if value.Valid {
				_m.Key = value.String
			}
		case recommendationevidence.FieldValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value.Valid {
				_m.Value = value.String
			}
		case recommendationevidence.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the RecommendationEvidence.
// This includes values selected through modifiers, order, etc.
func (_m *RecommendationEvidence) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RecommendationEvidence.
// Note that you need to call RecommendationEvidence.Unwrap() before calling this method if this RecommendationEvidence
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RecommendationEvidence) Update() *RecommendationEvidenceUpdateOne {
	return NewRecommendationEvidenceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RecommendationEvidence entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RecommendationEvidence) Unwrap() *RecommendationEvidence {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RecommendationEvidence is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RecommendationEvidence) String() string {
	var builder strings.Builder
	builder.WriteString("RecommendationEvidence(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("recommendation_id=")
	builder.WriteString(_m.RecommendationID)
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("evidence_type=")
	builder.WriteString(_m.EvidenceType)
	builder.WriteString(", ")
	builder.WriteString("key=")
	builder.WriteString(_m.Key)
	builder.WriteString(", ")
	builder.WriteString("value=")
	builder.WriteString(_m.Value)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteByte(')')
	return builder.String()
}

// RecommendationEvidences is a parsable slice of RecommendationEvidence.
type RecommendationEvidences []*RecommendationEvidence
