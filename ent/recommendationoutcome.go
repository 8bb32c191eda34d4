// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/diversifica/decies-platform-sub000/ent/recommendationoutcome"
)

// RecommendationOutcome is the model entity for the RecommendationOutcome schema.
type RecommendationOutcome struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RecommendationID holds the value of the "recommendation_id" field.
	RecommendationID string `json:"recommendation_id,omitempty"`
	// WindowStart holds the value of the "window_start" field.
	WindowStart time.Time `json:"window_start,omitempty"`
	// WindowEnd holds the value of the "window_end" field.
	WindowEnd time.Time `json:"window_end,omitempty"`
	// true, false, or partial
	Success string `json:"success,omitempty"`
	// DeltaMastery holds the value of the "delta_mastery" field.
	DeltaMastery *float64 `json:"delta_mastery,omitempty"`
	// DeltaAccuracy holds the value of the "delta_accuracy" field.
	DeltaAccuracy *float64 `json:"delta_accuracy,omitempty"`
	// DeltaHintRate holds the value of the "delta_hint_rate" field.
	DeltaHintRate *float64 `json:"delta_hint_rate,omitempty"`
	// ComputedAt holds the value of the "computed_at" field.
	ComputedAt time.Time `json:"computed_at,omitempty"`
	// EngineVersion holds the value of the "engine_version" field.
	EngineVersion string `json:"engine_version,omitempty"`
	// RulesetVersion holds the value of the "ruleset_version" field.
	RulesetVersion string `json:"ruleset_version,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RecommendationOutcome) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case recommendationoutcome.FieldDeltaMastery, recommendationoutcome.FieldDeltaAccuracy, recommendationoutcome.FieldDeltaHintRate:
			values[i] = new(sql.NullFloat64)
		case recommendationoutcome.FieldID, recommendationoutcome.FieldRecommendationID, recommendationoutcome.FieldSuccess, recommendationoutcome.FieldEngineVersion, recommendationoutcome.FieldRulesetVersion:
			values[i] = new(sql.NullString)
		case recommendationoutcome.FieldWindowStart, recommendationoutcome.FieldWindowEnd, recommendationoutcome.FieldComputedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RecommendationOutcome fields.
func (_m *RecommendationOutcome) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case recommendationoutcome.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case recommendationoutcome.FieldRecommendationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recommendation_id", values[i])
			} else if value.Valid {
				_m.RecommendationID = value.String
			}
		case recommendationoutcome.FieldWindowStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field window_start", values[i])
			} else if value.Valid {
				_m.WindowStart = value.Time
			}
		case recommendationoutcome.FieldWindowEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field window_end", values[i])
			} else if value.Valid {
				_m.WindowEnd = value.Time
			}
		case recommendationoutcome.FieldSuccess:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				_m.Success = value.String
			}
		case recommendationoutcome.FieldDeltaMastery:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field delta_mastery", values[i])
			} else if value.Valid {
				_m.DeltaMastery = new(float64)
				*_m.DeltaMastery = value.Float64
			}
		case recommendationoutcome.FieldDeltaAccuracy:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field delta_accuracy", values[i])
			} else if value.Valid {
				_m.DeltaAccuracy = new(float64)
				*_m.DeltaAccuracy = value.Float64
			}
		case recommendationoutcome.FieldDeltaHintRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field delta_hint_rate", values[i])
			} else if value.Valid {
				_m.DeltaHintRate = new(float64)
				*_m.DeltaHintRate = value.Float64
			}
		case recommendationoutcome.FieldComputedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field computed_at", values[i])
			} else if value.Valid {
				_m.ComputedAt = value.Time
			}
		case recommendationoutcome.FieldEngineVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field engine_version", values[i])
			} else if value.Valid {
				_m.EngineVersion = value.String
			}
		case recommendationoutcome.FieldRulesetVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ruleset_version", values[i])
			} else if value.Valid {
				_m.RulesetVersion = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RecommendationOutcome.
// This includes values selected through modifiers, order, etc.
func (_m *RecommendationOutcome) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RecommendationOutcome.
// Note that you need to call RecommendationOutcome.Unwrap() before calling this method if this RecommendationOutcome
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RecommendationOutcome) Update() *RecommendationOutcomeUpdateOne {
	return NewRecommendationOutcomeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RecommendationOutcome entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RecommendationOutcome) Unwrap() *RecommendationOutcome {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RecommendationOutcome is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RecommendationOutcome) String() string {
	var builder strings.Builder
	builder.WriteString("RecommendationOutcome(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("recommendation_id=")
	builder.WriteString(_m.RecommendationID)
	builder.WriteString(", ")
	builder.WriteString("window_start=")
	builder.WriteString(_m.WindowStart.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("window_end=")
	builder.WriteString(_m.WindowEnd.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("success=")
	builder.WriteString(_m.Success)
	builder.WriteString(", ")
	if v := _m.DeltaMastery; v != nil {
		builder.WriteString("delta_mastery=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DeltaAccuracy; v != nil {
		builder.WriteString("delta_accuracy=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DeltaHintRate; v != nil {
		builder.WriteString("delta_hint_rate=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("computed_at=")
	builder.WriteString(_m.ComputedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("engine_version=")
	builder.WriteString(_m.EngineVersion)
	builder.WriteString(", ")
	builder.WriteString("ruleset_version=")
	builder.WriteString(_m.RulesetVersion)
	builder.WriteByte(')')
	return builder.String()
}

// RecommendationOutcomes is a parsable slice of RecommendationOutcome.
type RecommendationOutcomes []*RecommendationOutcome
