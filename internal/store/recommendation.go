package store

import (
	"context"
	"fmt"
	"time"

	"github.com/diversifica/decies-platform-sub000/ent"
	"github.com/diversifica/decies-platform-sub000/ent/recommendation"
	"github.com/diversifica/decies-platform-sub000/ent/recommendationevidence"
	"github.com/google/uuid"
)

type recommendationRepo struct {
	client *ent.Client
}

func (r *recommendationRepo) FindPending(ctx context.Context, studentID, ruleCode, conceptID string) (*RecommendationRecord, error) {
	rec, err := r.client.Recommendation.Query().
		Where(
			recommendation.StudentID(studentID),
			recommendation.RuleCode(ruleCode),
			recommendation.ConceptID(conceptID),
			recommendation.Status("pending"),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query pending recommendation: %w", err)
	}
	return r.withEvidence(ctx, rec)
}

func (r *recommendationRepo) CreateRecommendation(ctx context.Context, rec RecommendationRecord) (*RecommendationRecord, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	// concept_id is always written, empty string included, so FindPending's
	// equality filter sees scope-wide rows.
	builder := r.client.Recommendation.Create().
		SetID(rec.ID).
		SetStudentID(rec.StudentID).
		SetConceptID(rec.ConceptID).
		SetRuleCode(rec.RuleCode).
		SetPriority(rec.Priority).
		SetStatus(rec.Status).
		SetTitle(rec.Title).
		SetDescription(rec.Description).
		SetWindowDays(rec.WindowDays).
		SetEngineVersion(rec.EngineVersion).
		SetRulesetVersion(rec.RulesetVersion).
		SetGeneratedAt(rec.GeneratedAt).
		SetUpdatedAt(rec.UpdatedAt)

	saved, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create recommendation: %w", err)
	}

	for i, ev := range rec.Evidence {
		_, err := r.client.RecommendationEvidence.Create().
			SetRecommendationID(saved.ID).
			SetPosition(i).
			SetEvidenceType(ev.Type).
			SetKey(ev.Key).
			SetValue(ev.Value).
			SetDescription(ev.Description).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create evidence %d: %w", i, err)
		}
	}

	return r.withEvidence(ctx, saved)
}

func (r *recommendationRepo) GetRecommendation(ctx context.Context, id string) (*RecommendationRecord, error) {
	rec, err := r.client.Recommendation.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get recommendation %q: %w", id, err)
	}
	return r.withEvidence(ctx, rec)
}

func (r *recommendationRepo) ListRecommendations(ctx context.Context, studentID, status string) ([]RecommendationRecord, error) {
	query := r.client.Recommendation.Query().
		Where(recommendation.StudentID(studentID)).
		Order(ent.Desc(recommendation.FieldGeneratedAt))
	if status != "" {
		query = query.Where(recommendation.Status(status))
	}

	recs, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recommendations: %w", err)
	}

	records := make([]RecommendationRecord, 0, len(recs))
	for _, rec := range recs {
		full, err := r.withEvidence(ctx, rec)
		if err != nil {
			return nil, err
		}
		records = append(records, *full)
	}
	return records, nil
}

func (r *recommendationRepo) UpdateStatus(ctx context.Context, id, status string, at time.Time) error {
	err := r.client.Recommendation.UpdateOneID(id).
		SetStatus(status).
		SetUpdatedAt(at).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("update recommendation status: %w", err)
	}
	return nil
}

func (r *recommendationRepo) withEvidence(ctx context.Context, rec *ent.Recommendation) (*RecommendationRecord, error) {
	items, err := r.client.RecommendationEvidence.Query().
		Where(recommendationevidence.RecommendationID(rec.ID)).
		Order(ent.Asc(recommendationevidence.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query evidence: %w", err)
	}

	evidence := make([]EvidenceRecord, len(items))
	for i, ev := range items {
		evidence[i] = EvidenceRecord{
			Type:        ev.EvidenceType,
			Key:         ev.Key,
			Value:       ev.Value,
			Description: ev.Description,
		}
	}

	return &RecommendationRecord{
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
		Evidence:       evidence,
	}, nil
}
