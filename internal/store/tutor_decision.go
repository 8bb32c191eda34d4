package store

import (
	"context"
	"fmt"

	"github.com/diversifica/decies-platform-sub000/ent"
	"github.com/diversifica/decies-platform-sub000/ent/recommendation"
	"github.com/diversifica/decies-platform-sub000/ent/tutordecision"
	"github.com/google/uuid"
)

type decisionRepo struct {
	client *ent.Client
}

func (r *decisionRepo) CreateDecision(ctx context.Context, rec DecisionRecord) (*DecisionRecord, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	builder := r.client.TutorDecision.Create().
		SetID(rec.ID).
		SetRecommendationID(rec.RecommendationID).
		SetTutorID(rec.TutorID).
		SetDecision(rec.Decision).
		SetDecidedAt(rec.DecidedAt)
	if rec.Notes != "" {
		builder = builder.SetNotes(rec.Notes)
	}

	saved, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create tutor decision: %w", err)
	}
	out := decisionRecord(saved)
	return &out, nil
}

func (r *decisionRepo) DecisionByRecommendation(ctx context.Context, recommendationID string) (*DecisionRecord, error) {
	d, err := r.client.TutorDecision.Query().
		Where(tutordecision.RecommendationID(recommendationID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query tutor decision: %w", err)
	}
	out := decisionRecord(d)
	return &out, nil
}

func (r *decisionRepo) AcceptedForTutor(ctx context.Context, tutorID, studentID string) ([]DecidedRecommendation, error) {
	recs, err := r.client.Recommendation.Query().
		Where(
			recommendation.StudentID(studentID),
			recommendation.Status("accepted"),
		).
		Order(ent.Asc(recommendation.FieldGeneratedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query accepted recommendations: %w", err)
	}
	if len(recs) == 0 {
		return nil, nil
	}

	ids := make([]string, len(recs))
	byID := make(map[string]*ent.Recommendation, len(recs))
	for i, rec := range recs {
		ids[i] = rec.ID
		byID[rec.ID] = rec
	}

	decisions, err := r.client.TutorDecision.Query().
		Where(
			tutordecision.RecommendationIDIn(ids...),
			tutordecision.TutorID(tutorID),
			tutordecision.Decision("accepted"),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query decisions: %w", err)
	}

	out := make([]DecidedRecommendation, 0, len(decisions))
	for _, d := range decisions {
		rec := byID[d.RecommendationID]
		if rec == nil {
			continue
		}
		out = append(out, DecidedRecommendation{
			Recommendation: RecommendationRecord{
				ID:             rec.ID,
				StudentID:      rec.StudentID,
				ConceptID:      rec.ConceptID,
				RuleCode:       rec.RuleCode,
				Priority:       rec.Priority,
				Status:         rec.Status,
				Title:          rec.Title,
				Description:    rec.Description,
				WindowDays:     rec.WindowDays,
				EngineVersion:  rec.EngineVersion,
				RulesetVersion: rec.RulesetVersion,
				GeneratedAt:    rec.GeneratedAt,
				UpdatedAt:      rec.UpdatedAt,
			},
			Decision: decisionRecord(d),
		})
	}
	return out, nil
}

func decisionRecord(d *ent.TutorDecision) DecisionRecord {
	return DecisionRecord{
		ID:               d.ID,
		RecommendationID: d.RecommendationID,
		TutorID:          d.TutorID,
		Decision:         d.Decision,
		Notes:            d.Notes,
		DecidedAt:        d.DecidedAt,
	}
}
