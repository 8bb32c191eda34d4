// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/diversifica/decies-platform-sub000/ent/tutordecision"
)

// TutorDecision is the model entity for the TutorDecision schema.
type TutorDecision struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RecommendationID holds the value of the "recommendation_id" field.
	RecommendationID string `json:"recommendation_id,omitempty"`
	// TutorID holds the value of the "tutor_id" field.
	TutorID string `json:"tutor_id,omitempty"`
	// accepted or rejected
	Decision string `json:"decision,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes string `json:"notes,omitempty"`
	// DecidedAt holds the value of the "decided_at" field.
	DecidedAt    time.Time `json:"decided_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TutorDecision) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tutordecision.FieldID, tutordecision.FieldRecommendationID, tutordecision.FieldTutorID, tutordecision.FieldDecision, tutordecision.FieldNotes:
			values[i] = new(sql.NullString)
		case tutordecision.FieldDecidedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TutorDecision fields.
func (_m *TutorDecision) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tutordecision.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case tutordecision.FieldRecommendationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recommendation_id", values[i])
			} else if value.Valid {
				_m.RecommendationID = value.String
			}
		case tutordecision.FieldTutorID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tutor_id", values[i])
			} else if value.Valid {
				_m.TutorID = value.String
			}
		case tutordecision.FieldDecision:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decision", values[i])
			} else if value.Valid {
				_m.Decision = value.String
			}
		case tutordecision.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case tutordecision.FieldDecidedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field decided_at", values[i])
			} else if value.Valid {
				_m.DecidedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TutorDecision.
// This includes values selected through modifiers, order, etc.
func (_m *TutorDecision) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TutorDecision.
// Note that you need to call TutorDecision.Unwrap() before calling this method if this TutorDecision
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TutorDecision) Update() *TutorDecisionUpdateOne {
	return NewTutorDecisionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TutorDecision entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TutorDecision) Unwrap() *TutorDecision {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TutorDecision is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TutorDecision) String() string {
	var builder strings.Builder
	builder.WriteString("TutorDecision(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("recommendation_id=")
	builder.WriteString(_m.RecommendationID)
	builder.WriteString(", ")
	builder.WriteString("tutor_id=")
	builder.WriteString(_m.TutorID)
	builder.WriteString(", ")
	builder.WriteString("decision=")
	builder.WriteString(_m.Decision)
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteString(", ")
	builder.WriteString("decided_at=")
	builder.WriteString(_m.DecidedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TutorDecisions is a parsable slice of TutorDecision.
type TutorDecisions []*TutorDecision
