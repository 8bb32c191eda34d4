package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/diversifica/decies-platform-sub000/internal/store"
)

// Decision values a tutor can record.
const (
	DecisionAccepted = "accepted"
	DecisionRejected = "rejected"
)

// ApplyDecision records a tutor's accept or reject call on a pending
// recommendation and moves the recommendation to the matching status, both
// in one transaction. Each recommendation can be decided exactly once.
func (e *Engine) ApplyDecision(ctx context.Context, recommendationID, tutorID, decision, notes string, now time.Time) (*store.DecisionRecord, error) {
	if decision != DecisionAccepted && decision != DecisionRejected {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDecision, decision)
	}

	var stored *store.DecisionRecord
	err := e.db.WithTx(ctx, func(r *store.Repos) error {
		rec, err := r.Recommendations.GetRecommendation(ctx, recommendationID)
		if err != nil {
			return fmt.Errorf("load recommendation: %w", err)
		}
		if rec.Status != StatusPending {
			return fmt.Errorf("%w: status is %s", ErrAlreadyDecided, rec.Status)
		}

		stored, err = r.Decisions.CreateDecision(ctx, store.DecisionRecord{
			RecommendationID: recommendationID,
			TutorID:          tutorID,
			Decision:         decision,
			Notes:            notes,
			DecidedAt:        now,
		})
		if err != nil {
			return fmt.Errorf("create decision: %w", err)
		}
		if err := r.Recommendations.UpdateStatus(ctx, recommendationID, decision, now); err != nil {
			return fmt.Errorf("update status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.log.Info("applied decision",
		"recommendation", recommendationID,
		"tutor", tutorID,
		"decision", decision,
	)
	return stored, nil
}
