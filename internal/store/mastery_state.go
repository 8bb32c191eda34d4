package store

import (
	"context"
	"fmt"

	"github.com/diversifica/decies-platform-sub000/ent"
	"github.com/diversifica/decies-platform-sub000/ent/masterystate"
)

type masteryRepo struct {
	client *ent.Client
}

// UpsertState updates the (student, concept) row in place, creating it on
// first recompute. Callers may invoke recalculate-and-save repeatedly.
func (r *masteryRepo) UpsertState(ctx context.Context, rec MasteryStateRecord) error {
	existing, err := r.client.MasteryState.Query().
		Where(
			masterystate.StudentID(rec.StudentID),
			masterystate.ConceptID(rec.ConceptID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query mastery state: %w", err)
	}

	if existing == nil {
		builder := r.client.MasteryState.Create().
			SetStudentID(rec.StudentID).
			SetConceptID(rec.ConceptID).
			SetScore(rec.Score).
			SetStatus(rec.Status).
			SetEngineVersion(rec.EngineVersion).
			SetUpdatedAt(rec.UpdatedAt)
		if rec.LastPracticeAt != nil {
			builder = builder.SetLastPracticeAt(*rec.LastPracticeAt)
		}
		if rec.NextReviewAt != nil {
			builder = builder.SetNextReviewAt(*rec.NextReviewAt)
		}
		if _, err := builder.Save(ctx); err != nil {
			return fmt.Errorf("create mastery state: %w", err)
		}
		return nil
	}

	update := existing.Update().
		SetScore(rec.Score).
		SetStatus(rec.Status).
		SetEngineVersion(rec.EngineVersion).
		SetUpdatedAt(rec.UpdatedAt)
	if rec.LastPracticeAt != nil {
		update = update.SetLastPracticeAt(*rec.LastPracticeAt)
	} else {
		update = update.ClearLastPracticeAt()
	}
	if rec.NextReviewAt != nil {
		update = update.SetNextReviewAt(*rec.NextReviewAt)
	} else {
		update = update.ClearNextReviewAt()
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("update mastery state: %w", err)
	}
	return nil
}

func (r *masteryRepo) StatesForConcepts(ctx context.Context, studentID string, conceptIDs []string) ([]MasteryStateRecord, error) {
	if len(conceptIDs) == 0 {
		return nil, nil
	}
	states, err := r.client.MasteryState.Query().
		Where(
			masterystate.StudentID(studentID),
			masterystate.ConceptIDIn(conceptIDs...),
		).
		Order(ent.Asc(masterystate.FieldConceptID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mastery states: %w", err)
	}

	records := make([]MasteryStateRecord, len(states))
	for i, s := range states {
		records[i] = stateRecord(s)
	}
	return records, nil
}

func (r *masteryRepo) StateFor(ctx context.Context, studentID, conceptID string) (*MasteryStateRecord, error) {
	s, err := r.client.MasteryState.Query().
		Where(
			masterystate.StudentID(studentID),
			masterystate.ConceptID(conceptID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query mastery state: %w", err)
	}
	rec := stateRecord(s)
	return &rec, nil
}

func stateRecord(s *ent.MasteryState) MasteryStateRecord {
	return MasteryStateRecord{
		StudentID:      s.StudentID,
		ConceptID:      s.ConceptID,
		Score:          s.Score,
		Status:         s.Status,
		LastPracticeAt: s.LastPracticeAt,
		NextReviewAt:   s.NextReviewAt,
		EngineVersion:  s.EngineVersion,
		UpdatedAt:      s.UpdatedAt,
	}
}
