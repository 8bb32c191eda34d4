package mastery

import (
	"context"
	"fmt"
	"time"

	"github.com/diversifica/decies-platform-sub000/internal/logger"
	"github.com/diversifica/decies-platform-sub000/internal/store"
)

// Service recomputes and persists mastery states and metric aggregates.
// All scoring is delegated to the pure functions in this package; the
// service only loads events and upserts results.
type Service struct {
	db  store.DB
	cfg Config
	log *logger.Logger
}

// NewService creates a mastery service. log may be nil.
func NewService(db store.DB, cfg Config, log *logger.Logger) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("mastery config: %w", err)
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Service{db: db, cfg: cfg, log: log}, nil
}

// Recalculate refreshes the metric aggregate and every concept's mastery
// state for the scope, as of now. It is idempotent: repeated calls with no
// new events rewrite identical rows, moving only the computed/updated
// timestamps. All writes happen in one transaction.
func (s *Service) Recalculate(ctx context.Context, studentID, subject, term string, windowDays int, now time.Time) (*store.MetricAggregateRecord, []store.MasteryStateRecord, error) {
	if windowDays <= 0 {
		windowDays = DefaultMetricsWindowDays
	}
	repos := s.db.Repos()

	concepts, err := repos.Concepts.ActiveConcepts(ctx, subject, term)
	if err != nil {
		return nil, nil, fmt.Errorf("load concepts: %w", err)
	}

	scopeEvents, err := repos.Events.EventsByScope(ctx, studentID, subject, term, store.QueryOpts{
		From: now.AddDate(0, 0, -windowDays),
		To:   now,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("load scope events: %w", err)
	}

	m := ComputeScopeMetrics(scopeEvents)
	agg := store.MetricAggregateRecord{
		StudentID:            studentID,
		Subject:              subject,
		Term:                 term,
		WindowDays:           windowDays,
		Accuracy:             m.Accuracy,
		FirstAttemptAccuracy: m.FirstAttemptAccuracy,
		ErrorRate:            m.ErrorRate,
		HintRate:             m.HintRate,
		MedianResponseMs:     m.MedianResponseMs,
		AttemptsPerItem:      m.AttemptsPerItem,
		AbandonRate:          m.AbandonRate,
		ComputedAt:           now,
		EngineVersion:        s.cfg.EngineVersion,
	}

	states := make([]store.MasteryStateRecord, 0, len(concepts))
	for _, c := range concepts {
		events, err := repos.Events.EventsByConcept(ctx, studentID, c.Code, store.QueryOpts{To: now})
		if err != nil {
			return nil, nil, fmt.Errorf("load events for %s: %w", c.Code, err)
		}
		cm := ComputeConceptMastery(events, now)
		states = append(states, store.MasteryStateRecord{
			StudentID:      studentID,
			ConceptID:      c.Code,
			Score:          cm.Score,
			Status:         string(cm.Status),
			LastPracticeAt: cm.LastPracticeAt,
			NextReviewAt:   cm.NextReviewAt,
			EngineVersion:  s.cfg.EngineVersion,
			UpdatedAt:      now,
		})
	}

	err = s.db.WithTx(ctx, func(r *store.Repos) error {
		if err := r.Metrics.UpsertAggregate(ctx, agg); err != nil {
			return err
		}
		for _, st := range states {
			if err := r.Mastery.UpsertState(ctx, st); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("persist recalculation: %w", err)
	}

	s.log.Info("recalculated mastery",
		"student", studentID,
		"subject", subject,
		"term", term,
		"concepts", len(states),
		"window_events", m.EventCount,
	)
	return &agg, states, nil
}

// ConceptMasteryAsOf scores one concept from events started before at,
// evaluated at at. Used by the outcome evaluator for historical instants.
func (s *Service) ConceptMasteryAsOf(ctx context.Context, studentID, conceptID string, at time.Time) (ConceptMastery, error) {
	events, err := s.db.Repos().Events.EventsByConcept(ctx, studentID, conceptID, store.QueryOpts{To: at})
	if err != nil {
		return ConceptMastery{}, fmt.Errorf("load events: %w", err)
	}
	return ComputeConceptMastery(events, at), nil
}

// ScopeMasteryAsOf averages per-concept mastery across all active concepts
// in the scope, as of at. Returns nil when the scope has no active
// concepts, since an average over nothing is meaningless.
func (s *Service) ScopeMasteryAsOf(ctx context.Context, studentID, subject, term string, at time.Time) (*float64, error) {
	repos := s.db.Repos()
	concepts, err := repos.Concepts.ActiveConcepts(ctx, subject, term)
	if err != nil {
		return nil, fmt.Errorf("load concepts: %w", err)
	}
	if len(concepts) == 0 {
		return nil, nil
	}

	sum := 0.0
	for _, c := range concepts {
		events, err := repos.Events.EventsByConcept(ctx, studentID, c.Code, store.QueryOpts{To: at})
		if err != nil {
			return nil, fmt.Errorf("load events for %s: %w", c.Code, err)
		}
		sum += ComputeConceptMastery(events, at).Score
	}
	avg := Round4(sum / float64(len(concepts)))
	return &avg, nil
}

// ScopeMetricsBetween computes scope metrics over the half-open interval
// [from, to). Used for outcome pre/post windows.
func (s *Service) ScopeMetricsBetween(ctx context.Context, studentID, subject, term string, from, to time.Time) (ScopeMetrics, error) {
	events, err := s.db.Repos().Events.EventsByScope(ctx, studentID, subject, term, store.QueryOpts{
		From: from,
		To:   to,
	})
	if err != nil {
		return ScopeMetrics{}, fmt.Errorf("load window events: %w", err)
	}
	return ComputeScopeMetrics(events), nil
}
