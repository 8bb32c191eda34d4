package store

import (
	"context"
	"fmt"

	"github.com/diversifica/decies-platform-sub000/ent"
	"github.com/diversifica/decies-platform-sub000/ent/metricaggregate"
)

type metricsRepo struct {
	client *ent.Client
}

// UpsertAggregate updates the (student, subject, term) row in place,
// creating it on first recompute.
func (r *metricsRepo) UpsertAggregate(ctx context.Context, rec MetricAggregateRecord) error {
	existing, err := r.client.MetricAggregate.Query().
		Where(
			metricaggregate.StudentID(rec.StudentID),
			metricaggregate.Subject(rec.Subject),
			metricaggregate.Term(rec.Term),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query metric aggregate: %w", err)
	}

	if existing == nil {
		_, err := r.client.MetricAggregate.Create().
			SetStudentID(rec.StudentID).
			SetSubject(rec.Subject).
			SetTerm(rec.Term).
			SetWindowDays(rec.WindowDays).
			SetAccuracy(rec.Accuracy).
			SetFirstAttemptAccuracy(rec.FirstAttemptAccuracy).
			SetErrorRate(rec.ErrorRate).
			SetHintRate(rec.HintRate).
			SetMedianResponseMs(rec.MedianResponseMs).
			SetAttemptsPerItem(rec.AttemptsPerItem).
			SetAbandonRate(rec.AbandonRate).
			SetComputedAt(rec.ComputedAt).
			SetEngineVersion(rec.EngineVersion).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create metric aggregate: %w", err)
		}
		return nil
	}

	_, err = existing.Update().
		SetWindowDays(rec.WindowDays).
		SetAccuracy(rec.Accuracy).
		SetFirstAttemptAccuracy(rec.FirstAttemptAccuracy).
		SetErrorRate(rec.ErrorRate).
		SetHintRate(rec.HintRate).
		SetMedianResponseMs(rec.MedianResponseMs).
		SetAttemptsPerItem(rec.AttemptsPerItem).
		SetAbandonRate(rec.AbandonRate).
		SetComputedAt(rec.ComputedAt).
		SetEngineVersion(rec.EngineVersion).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update metric aggregate: %w", err)
	}
	return nil
}

func (r *metricsRepo) LatestAggregate(ctx context.Context, studentID, subject, term string) (*MetricAggregateRecord, error) {
	a, err := r.client.MetricAggregate.Query().
		Where(
			metricaggregate.StudentID(studentID),
			metricaggregate.Subject(subject),
			metricaggregate.Term(term),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query metric aggregate: %w", err)
	}

	return &MetricAggregateRecord{
		StudentID:            a.StudentID,
		Subject:              a.Subject,
		Term:                 a.Term,
		WindowDays:           a.WindowDays,
		Accuracy:             a.Accuracy,
		FirstAttemptAccuracy: a.FirstAttemptAccuracy,
		ErrorRate:            a.ErrorRate,
		HintRate:             a.HintRate,
		MedianResponseMs:     a.MedianResponseMs,
		AttemptsPerItem:      a.AttemptsPerItem,
		AbandonRate:          a.AbandonRate,
		ComputedAt:           a.ComputedAt,
		EngineVersion:        a.EngineVersion,
	}, nil
}
