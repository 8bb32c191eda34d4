package store

import (
	"context"
	"fmt"
)

// ResetDerived deletes all derived state: outcomes, decisions,
// recommendations and their evidence, mastery states, and metric
// aggregates. Practice events and sessions are the source of record and
// are never deleted; a recompute rebuilds everything removed here.
func (s *Store) ResetDerived(ctx context.Context) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	client := tx.Client()
	steps := []struct {
		name string
		del  func(context.Context) (int, error)
	}{
		{"outcomes", client.RecommendationOutcome.Delete().Exec},
		{"decisions", client.TutorDecision.Delete().Exec},
		{"evidence", client.RecommendationEvidence.Delete().Exec},
		{"recommendations", client.Recommendation.Delete().Exec},
		{"mastery states", client.MasteryState.Delete().Exec},
		{"metric aggregates", client.MetricAggregate.Delete().Exec},
	}
	for _, step := range steps {
		if _, err := step.del(ctx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("delete %s: %w", step.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
