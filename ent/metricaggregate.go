// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/diversifica/decies-platform-sub000/ent/metricaggregate"
)

// MetricAggregate is the model entity for the MetricAggregate schema.
type MetricAggregate struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID string `json:"student_id,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// Term holds the value of the "term" field.
	Term string `json:"term,omitempty"`
	// WindowDays holds the value of the "window_days" field.
	WindowDays int `json:"window_days,omitempty"`
	// Accuracy holds the value of the "accuracy" field.
	Accuracy float64 `json:"accuracy,omitempty"`
	// FirstAttemptAccuracy holds the value of the "first_attempt_accuracy" field.
	FirstAttemptAccuracy float64 `json:"first_attempt_accuracy,omitempty"`
	// ErrorRate holds the value of the "error_rate" field.
	ErrorRate float64 `json:"error_rate,omitempty"`
	// HintRate holds the value of the "hint_rate" field.
	HintRate float64 `json:"hint_rate,omitempty"`
	// MedianResponseMs holds the value of the "median_response_ms" field.
	MedianResponseMs int `json:"median_response_ms,omitempty"`
	// AttemptsPerItem holds the value of the "attempts_per_item" field.
	AttemptsPerItem float64 `json:"attempts_per_item,omitempty"`
	// AbandonRate holds the value of the "abandon_rate" field.
	AbandonRate float64 `json:"abandon_rate,omitempty"`
	// ComputedAt holds the value of the "computed_at" field.
	ComputedAt time.Time `json:"computed_at,omitempty"`
	// EngineVersion holds the value of the "engine_version" field.
	EngineVersion string `json:"engine_version,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MetricAggregate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case metricaggregate.FieldAccuracy, metricaggregate.FieldFirstAttemptAccuracy, metricaggregate.FieldErrorRate, metricaggregate.FieldHintRate, metricaggregate.FieldAttemptsPerItem, metricaggregate.FieldAbandonRate:
			values[i] = new(sql.NullFloat64)
		case metricaggregate.FieldID, metricaggregate.FieldWindowDays, metricaggregate.FieldMedianResponseMs:
			values[i] = new(sql.NullInt64)
		case metricaggregate.FieldStudentID, metricaggregate.FieldSubject, metricaggregate.FieldTerm, metricaggregate.FieldEngineVersion:
			values[i] = new(sql.NullString)
		case metricaggregate.FieldComputedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MetricAggregate fields.
func (_m *MetricAggregate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case metricaggregate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case metricaggregate.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case metricaggregate.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case metricaggregate.FieldTerm:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field term", values[i])
			} else if value.Valid {
				_m.Term = value.String
			}
		case metricaggregate.FieldWindowDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field window_days", values[i])
			} else if value.Valid {
				_m.WindowDays = int(value.Int64)
			}
		case metricaggregate.FieldAccuracy:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field accuracy", values[i])
			} else if value.Valid {
				_m.Accuracy = value.Float64
			}
		case metricaggregate.FieldFirstAttemptAccuracy:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field first_attempt_accuracy", values[i])
			} else if value.Valid {
				_m.FirstAttemptAccuracy = value.Float64
			}
		case metricaggregate.FieldErrorRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field error_rate", values[i])
			} else if value.Valid {
				_m.ErrorRate = value.Float64
			}
		case metricaggregate.FieldHintRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field hint_rate", values[i])
			} else if value.Valid {
				_m.HintRate = value.Float64
			}
		case metricaggregate.FieldMedianResponseMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field median_response_ms", values[i])
			} else if value.Valid {
				_m.MedianResponseMs = int(value.Int64)
			}
		case metricaggregate.FieldAttemptsPerItem:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts_per_item", values[i])
			} else if value.Valid {
				_m.AttemptsPerItem = value.Float64
			}
		case metricaggregate.FieldAbandonRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field abandon_rate", values[i])
			} else if value.Valid {
				_m.AbandonRate = value.Float64
			}
		case metricaggregate.FieldComputedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field computed_at", values[i])
			} else if value.Valid {
				_m.ComputedAt = value.Time
			}
		case metricaggregate.FieldEngineVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field engine_version", values[i])
			} else if value.Valid {
				_m.EngineVersion = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MetricAggregate.
// This includes values selected through modifiers, order, etc.
func (_m *MetricAggregate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MetricAggregate.
// Note that you need to call MetricAggregate.Unwrap() before calling this method if this MetricAggregate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MetricAggregate) Update() *MetricAggregateUpdateOne {
	return NewMetricAggregateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MetricAggregate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MetricAggregate) Unwrap() *MetricAggregate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MetricAggregate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MetricAggregate) String() string {
	var builder strings.Builder
	builder.WriteString("MetricAggregate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("student_id=")
	builder.WriteString(_m.StudentID)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("term=")
	builder.WriteString(_m.Term)
	builder.WriteString(", ")
	builder.WriteString("window_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.WindowDays))
	builder.WriteString(", ")
	builder.WriteString("accuracy=")
	builder.WriteString(fmt.Sprintf("%v", _m.Accuracy))
	builder.WriteString(", ")
	builder.WriteString("first_attempt_accuracy=")
	builder.WriteString(fmt.Sprintf("%v", _m.FirstAttemptAccuracy))
	builder.WriteString(", ")
	builder.WriteString("error_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.ErrorRate))
	builder.WriteString(", ")
	builder.WriteString("hint_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.HintRate))
	builder.WriteString(", ")
	builder.WriteString("median_response_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.MedianResponseMs))
	builder.WriteString(", ")
	builder.WriteString("attempts_per_item=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptsPerItem))
	builder.WriteString(", ")
	builder.WriteString("abandon_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.AbandonRate))
	builder.WriteString(", ")
	builder.WriteString("computed_at=")
	builder.WriteString(_m.ComputedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("engine_version=")
	builder.WriteString(_m.EngineVersion)
	builder.WriteByte(')')
	return builder.String()
}

// MetricAggregates is a parsable slice of MetricAggregate.
type MetricAggregates []*MetricAggregate
