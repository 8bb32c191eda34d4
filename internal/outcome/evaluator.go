package outcome

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diversifica/decies-platform-sub000/internal/logger"
	"github.com/diversifica/decies-platform-sub000/internal/mastery"
	"github.com/diversifica/decies-platform-sub000/internal/recommend"
	"github.com/diversifica/decies-platform-sub000/internal/store"
)

// Evaluator settles accepted recommendations once their observation window
// has elapsed, comparing pre- and post-decision metrics.
type Evaluator struct {
	db      store.DB
	mastery *mastery.Service
	cfg     recommend.Config
	log     *logger.Logger
}

// NewEvaluator creates an outcome evaluator. log may be nil.
func NewEvaluator(db store.DB, masterySvc *mastery.Service, cfg recommend.Config, log *logger.Logger) (*Evaluator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("outcome config: %w", err)
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Evaluator{db: db, mastery: masterySvc, cfg: cfg, log: log}, nil
}

// Result summarizes one evaluation run. Created, Updated and Pending are
// mutually exclusive counts; recommendations already settled and not
// forced appear in none of them.
type Result struct {
	Outcomes []store.OutcomeRecord
	Created  int
	Updated  int
	Pending  int
}

// ComputeOutcomes settles every accepted recommendation the tutor decided
// for the student whose concept scope is empty or belongs to (subject,
// term). A recommendation whose window has not elapsed is counted pending
// and left alone; one already settled is skipped unless force is set. All
// writes happen in one transaction.
func (e *Evaluator) ComputeOutcomes(ctx context.Context, tutorID, studentID, subject, term string, force bool, now time.Time) (*Result, error) {
	repos := e.db.Repos()

	decided, err := repos.Decisions.AcceptedForTutor(ctx, tutorID, studentID)
	if err != nil {
		return nil, fmt.Errorf("load accepted recommendations: %w", err)
	}

	concepts, err := repos.Concepts.ActiveConcepts(ctx, subject, term)
	if err != nil {
		return nil, fmt.Errorf("load concepts: %w", err)
	}
	inScope := make(map[string]struct{}, len(concepts))
	for _, c := range concepts {
		inScope[c.Code] = struct{}{}
	}

	res := &Result{}
	var records []store.OutcomeRecord
	for _, d := range decided {
		rec := d.Recommendation
		if rec.ConceptID != "" {
			if _, ok := inScope[rec.ConceptID]; !ok {
				continue
			}
		}

		decidedAt := d.Decision.DecidedAt
		windowEnd := decidedAt.AddDate(0, 0, rec.WindowDays)
		if now.Before(windowEnd) {
			res.Pending++
			continue
		}

		_, err := repos.Outcomes.OutcomeByRecommendation(ctx, rec.ID)
		switch {
		case err == nil:
			if !force {
				continue
			}
		case !errors.Is(err, store.ErrNotFound):
			return nil, fmt.Errorf("load outcome for %s: %w", rec.ID, err)
		}

		record, err := e.measure(ctx, rec, studentID, subject, term, decidedAt, windowEnd, now)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	err = e.db.WithTx(ctx, func(r *store.Repos) error {
		for _, rec := range records {
			created, err := r.Outcomes.UpsertOutcome(ctx, rec)
			if err != nil {
				return fmt.Errorf("upsert outcome for %s: %w", rec.RecommendationID, err)
			}
			if created {
				res.Created++
			} else {
				res.Updated++
			}
			res.Outcomes = append(res.Outcomes, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.log.Info("computed outcomes",
		"tutor", tutorID,
		"student", studentID,
		"subject", subject,
		"term", term,
		"created", res.Created,
		"updated", res.Updated,
		"pending", res.Pending,
	)
	return res, nil
}

// measure builds one outcome record: metric deltas over the pre window
// [decidedAt-w, decidedAt) and post window [decidedAt, windowEnd), and a
// mastery delta between the two instants.
func (e *Evaluator) measure(ctx context.Context, rec store.RecommendationRecord, studentID, subject, term string, decidedAt, windowEnd, now time.Time) (store.OutcomeRecord, error) {
	preStart := decidedAt.AddDate(0, 0, -rec.WindowDays)

	pre, err := e.mastery.ScopeMetricsBetween(ctx, studentID, subject, term, preStart, decidedAt)
	if err != nil {
		return store.OutcomeRecord{}, fmt.Errorf("pre metrics for %s: %w", rec.ID, err)
	}
	post, err := e.mastery.ScopeMetricsBetween(ctx, studentID, subject, term, decidedAt, windowEnd)
	if err != nil {
		return store.OutcomeRecord{}, fmt.Errorf("post metrics for %s: %w", rec.ID, err)
	}

	// Metric deltas are undefined when either side of the window is empty.
	var deltaAccuracy, deltaHintRate *float64
	if pre.EventCount > 0 && post.EventCount > 0 {
		da := mastery.Round4(post.Accuracy - pre.Accuracy)
		dh := mastery.Round4(post.HintRate - pre.HintRate)
		deltaAccuracy, deltaHintRate = &da, &dh
	}

	deltaMastery, err := e.masteryDelta(ctx, rec, studentID, subject, term, decidedAt, windowEnd)
	if err != nil {
		return store.OutcomeRecord{}, err
	}

	return store.OutcomeRecord{
		RecommendationID: rec.ID,
		WindowStart:      decidedAt,
		WindowEnd:        windowEnd,
		Success:          Classify(deltaMastery, deltaAccuracy),
		DeltaMastery:     deltaMastery,
		DeltaAccuracy:    deltaAccuracy,
		DeltaHintRate:    deltaHintRate,
		ComputedAt:       now,
		EngineVersion:    e.cfg.EngineVersion,
		RulesetVersion:   e.cfg.RulesetVersion,
	}, nil
}

// masteryDelta compares mastery at the decision instant against the window
// end. Concept-targeted recommendations use that concept's mastery; scope
// recommendations use the average over active concepts, which is undefined
// for an empty scope.
func (e *Evaluator) masteryDelta(ctx context.Context, rec store.RecommendationRecord, studentID, subject, term string, decidedAt, windowEnd time.Time) (*float64, error) {
	if rec.ConceptID != "" {
		before, err := e.mastery.ConceptMasteryAsOf(ctx, studentID, rec.ConceptID, decidedAt)
		if err != nil {
			return nil, fmt.Errorf("pre mastery for %s: %w", rec.ID, err)
		}
		after, err := e.mastery.ConceptMasteryAsOf(ctx, studentID, rec.ConceptID, windowEnd)
		if err != nil {
			return nil, fmt.Errorf("post mastery for %s: %w", rec.ID, err)
		}
		dm := mastery.Round4(after.Score - before.Score)
		return &dm, nil
	}

	before, err := e.mastery.ScopeMasteryAsOf(ctx, studentID, subject, term, decidedAt)
	if err != nil {
		return nil, fmt.Errorf("pre scope mastery for %s: %w", rec.ID, err)
	}
	after, err := e.mastery.ScopeMasteryAsOf(ctx, studentID, subject, term, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("post scope mastery for %s: %w", rec.ID, err)
	}
	if before == nil || after == nil {
		return nil, nil
	}
	dm := mastery.Round4(*after - *before)
	return &dm, nil
}
