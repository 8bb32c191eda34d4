package store

import (
	"context"
	"fmt"

	"github.com/diversifica/decies-platform-sub000/ent"
	"github.com/diversifica/decies-platform-sub000/ent/recommendationoutcome"
	"github.com/google/uuid"
)

type outcomeRepo struct {
	client *ent.Client
}

func (r *outcomeRepo) OutcomeByRecommendation(ctx context.Context, recommendationID string) (*OutcomeRecord, error) {
	o, err := r.client.RecommendationOutcome.Query().
		Where(recommendationoutcome.RecommendationID(recommendationID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query outcome: %w", err)
	}
	rec := outcomeRecord(o)
	return &rec, nil
}

func (r *outcomeRepo) UpsertOutcome(ctx context.Context, rec OutcomeRecord) (bool, error) {
	existing, err := r.client.RecommendationOutcome.Query().
		Where(recommendationoutcome.RecommendationID(rec.RecommendationID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return false, fmt.Errorf("query outcome: %w", err)
	}

	if existing == nil {
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		builder := r.client.RecommendationOutcome.Create().
			SetID(rec.ID).
			SetRecommendationID(rec.RecommendationID).
			SetWindowStart(rec.WindowStart).
			SetWindowEnd(rec.WindowEnd).
			SetSuccess(rec.Success).
			SetComputedAt(rec.ComputedAt).
			SetEngineVersion(rec.EngineVersion).
			SetRulesetVersion(rec.RulesetVersion)
		builder = builder.SetNillableDeltaMastery(rec.DeltaMastery).
			SetNillableDeltaAccuracy(rec.DeltaAccuracy).
			SetNillableDeltaHintRate(rec.DeltaHintRate)
		if _, err := builder.Save(ctx); err != nil {
			return false, fmt.Errorf("create outcome: %w", err)
		}
		return true, nil
	}

	update := existing.Update().
		SetWindowStart(rec.WindowStart).
		SetWindowEnd(rec.WindowEnd).
		SetSuccess(rec.Success).
		SetComputedAt(rec.ComputedAt).
		SetEngineVersion(rec.EngineVersion).
		SetRulesetVersion(rec.RulesetVersion)
	if rec.DeltaMastery != nil {
		update = update.SetDeltaMastery(*rec.DeltaMastery)
	} else {
		update = update.ClearDeltaMastery()
	}
	if rec.DeltaAccuracy != nil {
		update = update.SetDeltaAccuracy(*rec.DeltaAccuracy)
	} else {
		update = update.ClearDeltaAccuracy()
	}
	if rec.DeltaHintRate != nil {
		update = update.SetDeltaHintRate(*rec.DeltaHintRate)
	} else {
		update = update.ClearDeltaHintRate()
	}
	if _, err := update.Save(ctx); err != nil {
		return false, fmt.Errorf("update outcome: %w", err)
	}
	return false, nil
}

func outcomeRecord(o *ent.RecommendationOutcome) OutcomeRecord {
	return OutcomeRecord{
		ID:               o.ID,
		RecommendationID: o.RecommendationID,
		WindowStart:      o.WindowStart,
		WindowEnd:        o.WindowEnd,
		Success:          o.Success,
		DeltaMastery:     o.DeltaMastery,
		DeltaAccuracy:    o.DeltaAccuracy,
		DeltaHintRate:    o.DeltaHintRate,
		ComputedAt:       o.ComputedAt,
		EngineVersion:    o.EngineVersion,
		RulesetVersion:   o.RulesetVersion,
	}
}
