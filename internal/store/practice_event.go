package store

import (
	"context"
	"fmt"

	"github.com/diversifica/decies-platform-sub000/ent"
	"github.com/diversifica/decies-platform-sub000/ent/activitysession"
	"github.com/diversifica/decies-platform-sub000/ent/practiceevent"
)

type eventRepo struct {
	client *ent.Client
}

func (r *eventRepo) AppendPracticeEvent(ctx context.Context, rec PracticeEventRecord) error {
	builder := r.client.PracticeEvent.Create().
		SetStudentID(rec.StudentID).
		SetSessionID(rec.SessionID).
		SetItemID(rec.ItemID).
		SetStartedAt(rec.StartedAt).
		SetDurationMs(rec.DurationMs).
		SetAttempt(rec.Attempt).
		SetCorrect(rec.Correct).
		SetDifficulty(rec.Difficulty)

	if rec.ConceptID != "" {
		builder = builder.SetConceptID(rec.ConceptID)
	}
	if rec.EndedAt != nil {
		builder = builder.SetEndedAt(*rec.EndedAt)
	}
	if rec.Hint != "" {
		builder = builder.SetHint(rec.Hint)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save practice event: %w", err)
	}
	return nil
}

func (r *eventRepo) EventsByConcept(ctx context.Context, studentID, conceptID string, opts QueryOpts) ([]PracticeEventRecord, error) {
	query := r.client.PracticeEvent.Query().
		Where(
			practiceevent.StudentID(studentID),
			practiceevent.ConceptID(conceptID),
		).
		Order(ent.Asc(practiceevent.FieldStartedAt))

	events, err := applyEventOpts(query, opts).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query concept events: %w", err)
	}
	return eventRecords(events), nil
}

func (r *eventRepo) EventsByScope(ctx context.Context, studentID, subject, term string, opts QueryOpts) ([]PracticeEventRecord, error) {
	// Events carry no scope of their own; scope membership comes from the
	// session they were recorded in.
	sessionIDs, err := r.client.ActivitySession.Query().
		Where(
			activitysession.StudentID(studentID),
			activitysession.Subject(subject),
			activitysession.Term(term),
		).
		Select(activitysession.FieldSessionID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query scope sessions: %w", err)
	}
	if len(sessionIDs) == 0 {
		return nil, nil
	}

	query := r.client.PracticeEvent.Query().
		Where(
			practiceevent.StudentID(studentID),
			practiceevent.SessionIDIn(sessionIDs...),
		).
		Order(ent.Asc(practiceevent.FieldStartedAt))

	events, err := applyEventOpts(query, opts).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query scope events: %w", err)
	}
	return eventRecords(events), nil
}

func applyEventOpts(query *ent.PracticeEventQuery, opts QueryOpts) *ent.PracticeEventQuery {
	if !opts.From.IsZero() {
		query = query.Where(practiceevent.StartedAtGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(practiceevent.StartedAtLT(opts.To))
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	return query
}

func eventRecords(events []*ent.PracticeEvent) []PracticeEventRecord {
	records := make([]PracticeEventRecord, len(events))
	for i, e := range events {
		records[i] = PracticeEventRecord{
			StudentID:  e.StudentID,
			ConceptID:  e.ConceptID,
			SessionID:  e.SessionID,
			ItemID:     e.ItemID,
			StartedAt:  e.StartedAt,
			EndedAt:    e.EndedAt,
			DurationMs: e.DurationMs,
			Attempt:    e.Attempt,
			Correct:    e.Correct,
			Hint:       e.Hint,
			Difficulty: e.Difficulty,
		}
	}
	return records
}
