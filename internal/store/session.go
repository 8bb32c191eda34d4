package store

import (
	"context"
	"fmt"

	"github.com/diversifica/decies-platform-sub000/ent"
	"github.com/diversifica/decies-platform-sub000/ent/activitysession"
)

type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) RecordSession(ctx context.Context, rec SessionRecord) error {
	builder := r.client.ActivitySession.Create().
		SetSessionID(rec.SessionID).
		SetStudentID(rec.StudentID).
		SetSubject(rec.Subject).
		SetTerm(rec.Term).
		SetActivityType(rec.ActivityType).
		SetStartedAt(rec.StartedAt)

	if rec.EndedAt != nil {
		builder = builder.SetEndedAt(*rec.EndedAt)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *sessionRepo) SessionsByScope(ctx context.Context, studentID, subject, term string, opts QueryOpts) ([]SessionRecord, error) {
	query := r.client.ActivitySession.Query().
		Where(
			activitysession.StudentID(studentID),
			activitysession.Subject(subject),
			activitysession.Term(term),
		).
		Order(ent.Desc(activitysession.FieldStartedAt))

	if !opts.From.IsZero() {
		query = query.Where(activitysession.StartedAtGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(activitysession.StartedAtLT(opts.To))
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	sessions, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}

	records := make([]SessionRecord, len(sessions))
	for i, s := range sessions {
		records[i] = SessionRecord{
			SessionID:    s.SessionID,
			StudentID:    s.StudentID,
			Subject:      s.Subject,
			Term:         s.Term,
			ActivityType: s.ActivityType,
			StartedAt:    s.StartedAt,
			EndedAt:      s.EndedAt,
		}
	}
	return records, nil
}
