package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/diversifica/decies-platform-sub000/internal/conceptgraph"
	"github.com/diversifica/decies-platform-sub000/internal/logger"
	"github.com/diversifica/decies-platform-sub000/internal/mastery"
	"github.com/diversifica/decies-platform-sub000/internal/store"
)

// Engine evaluates the rule catalog against a scope snapshot and persists
// the resulting recommendations.
type Engine struct {
	db      store.DB
	cfg     Config
	rules   []Rule
	catalog *Catalog
	log     *logger.Logger
}

// NewEngine creates an engine running the default rule set. log may be nil.
func NewEngine(db store.DB, cfg Config, log *logger.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("recommend config: %w", err)
	}
	catalog, err := LoadCatalog()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Nop()
	}

	rules := DefaultRules()
	for _, r := range rules {
		if _, ok := catalog.Entry(r.Code()); !ok {
			return nil, fmt.Errorf("rule %s missing from catalog", r.Code())
		}
	}
	return &Engine{db: db, cfg: cfg, rules: rules, catalog: catalog, log: log}, nil
}

// GenerateResult summarizes one generation pass. Reused holds the
// pre-existing pending recommendations whose tuple a proposal matched; on
// an unchanged snapshot a second run returns the same ids with nothing in
// Created.
type GenerateResult struct {
	Created []store.RecommendationRecord
	Reused  []store.RecommendationRecord
}

// Touched returns every recommendation this pass produced or matched.
func (r *GenerateResult) Touched() []store.RecommendationRecord {
	out := make([]store.RecommendationRecord, 0, len(r.Created)+len(r.Reused))
	out = append(out, r.Created...)
	out = append(out, r.Reused...)
	return out
}

// Generate evaluates every rule against the current scope snapshot and
// persists the new recommendations in one transaction. A proposal whose
// (student, rule, concept) tuple already has a pending recommendation is
// skipped, so repeated runs on unchanged data create nothing.
func (e *Engine) Generate(ctx context.Context, studentID, subject, term string, now time.Time) (*GenerateResult, error) {
	snap, err := e.BuildSnapshot(ctx, studentID, subject, term, now)
	if err != nil {
		return nil, err
	}
	proposals := e.evaluate(snap)

	res := &GenerateResult{}
	err = e.db.WithTx(ctx, func(r *store.Repos) error {
		for _, p := range proposals {
			existing, err := r.Recommendations.FindPending(ctx, studentID, p.RuleCode, p.ConceptID)
			switch {
			case err == nil:
				res.Reused = append(res.Reused, *existing)
				continue
			case !errors.Is(err, store.ErrNotFound):
				return fmt.Errorf("dedupe %s: %w", p.RuleCode, err)
			}

			stored, err := r.Recommendations.CreateRecommendation(ctx, e.toRecord(studentID, p, now))
			if err != nil {
				return fmt.Errorf("create %s: %w", p.RuleCode, err)
			}
			res.Created = append(res.Created, *stored)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.log.Info("generated recommendations",
		"student", studentID,
		"subject", subject,
		"term", term,
		"proposed", len(proposals),
		"created", len(res.Created),
		"reused", len(res.Reused),
	)
	return res, nil
}

// BuildSnapshot loads everything one generation pass reads: the concept
// graph, mastery states, the latest metric aggregate, and the trailing 30
// days of sessions.
func (e *Engine) BuildSnapshot(ctx context.Context, studentID, subject, term string, now time.Time) (*Snapshot, error) {
	repos := e.db.Repos()

	concepts, err := repos.Concepts.ActiveConcepts(ctx, subject, term)
	if err != nil {
		return nil, fmt.Errorf("load concepts: %w", err)
	}
	codes := make([]string, len(concepts))
	for i, c := range concepts {
		codes[i] = c.Code
	}

	edges, err := repos.Concepts.EdgesForConcepts(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("load edges: %w", err)
	}

	stateRecs, err := repos.Mastery.StatesForConcepts(ctx, studentID, codes)
	if err != nil {
		return nil, fmt.Errorf("load mastery states: %w", err)
	}
	states := make([]ConceptState, len(stateRecs))
	for i, st := range stateRecs {
		states[i] = ConceptState{
			ConceptID:      st.ConceptID,
			Score:          st.Score,
			Status:         mastery.Status(st.Status),
			LastPracticeAt: st.LastPracticeAt,
			NextReviewAt:   st.NextReviewAt,
		}
	}
	sort.Slice(states, func(i, j int) bool { return states[i].ConceptID < states[j].ConceptID })

	metrics, err := repos.Metrics.LatestAggregate(ctx, studentID, subject, term)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("load aggregate: %w", err)
	}

	sessions, err := repos.Sessions.SessionsByScope(ctx, studentID, subject, term, store.QueryOpts{
		From: now.AddDate(0, 0, -30),
		To:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}

	weekAgo := now.AddDate(0, 0, -7)
	last7 := 0
	typeCounts := make(map[string]int)
	for _, s := range sessions {
		if !s.StartedAt.Before(weekAgo) {
			last7++
		}
		typeCounts[s.ActivityType]++
	}

	return &Snapshot{
		StudentID:          studentID,
		Subject:            subject,
		Term:               term,
		Now:                now,
		Metrics:            metrics,
		States:             states,
		Graph:              conceptgraph.New(concepts, edges),
		SessionsLast7Days:  last7,
		SessionsLast30Days: len(sessions),
		ActivityTypeCounts: typeCounts,
	}, nil
}

// evaluate runs every rule against the snapshot. A misbehaving rule is
// isolated: its panic is logged and the remaining rules still run.
func (e *Engine) evaluate(snap *Snapshot) []Proposal {
	var out []Proposal
	for _, rule := range e.rules {
		out = append(out, e.evaluateOne(rule, snap)...)
	}
	return out
}

func (e *Engine) evaluateOne(rule Rule, snap *Snapshot) (proposals []Proposal) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("rule panicked", "rule", rule.Code(), "panic", r)
			proposals = nil
		}
	}()
	return rule.Evaluate(snap)
}

func (e *Engine) toRecord(studentID string, p Proposal, now time.Time) store.RecommendationRecord {
	window := p.WindowDays
	if window <= 0 {
		window = e.cfg.WindowDays
	}
	return store.RecommendationRecord{
		StudentID:      studentID,
		ConceptID:      p.ConceptID,
		RuleCode:       p.RuleCode,
		Priority:       string(p.Priority),
		Status:         StatusPending,
		Title:          p.Title,
		Description:    p.Description,
		WindowDays:     window,
		EngineVersion:  e.cfg.EngineVersion,
		RulesetVersion: e.cfg.RulesetVersion,
		GeneratedAt:    now,
		UpdatedAt:      now,
		Evidence:       p.Evidence,
	}
}
