package recommend

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/diversifica/decies-platform-sub000/internal/store"
)

// In-memory fakes for the repos the engine touches.

type fakeDB struct {
	repos *store.Repos
}

func (f *fakeDB) Repos() *store.Repos { return f.repos }

func (f *fakeDB) WithTx(ctx context.Context, fn func(*store.Repos) error) error {
	return fn(f.repos)
}

type fakeConceptRepo struct {
	concepts []store.ConceptRecord
	edges    []store.EdgeRecord
}

func (r *fakeConceptRepo) CreateConcept(ctx context.Context, rec store.ConceptRecord) error {
	r.concepts = append(r.concepts, rec)
	return nil
}

func (r *fakeConceptRepo) CreateEdge(ctx context.Context, rec store.EdgeRecord) error {
	r.edges = append(r.edges, rec)
	return nil
}

func (r *fakeConceptRepo) ActiveConcepts(ctx context.Context, subject, term string) ([]store.ConceptRecord, error) {
	var out []store.ConceptRecord
	for _, c := range r.concepts {
		if c.Active && (subject == "" || c.Subject == subject) && (term == "" || c.Term == term) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeConceptRepo) ConceptByCode(ctx context.Context, code string) (*store.ConceptRecord, error) {
	for _, c := range r.concepts {
		if c.Code == code {
			cc := c
			return &cc, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *fakeConceptRepo) EdgesForConcepts(ctx context.Context, codes []string) ([]store.EdgeRecord, error) {
	return r.edges, nil
}

type fakeMasteryRepo struct {
	states []store.MasteryStateRecord
}

func (r *fakeMasteryRepo) UpsertState(ctx context.Context, rec store.MasteryStateRecord) error {
	r.states = append(r.states, rec)
	return nil
}

func (r *fakeMasteryRepo) StatesForConcepts(ctx context.Context, studentID string, conceptIDs []string) ([]store.MasteryStateRecord, error) {
	return r.states, nil
}

func (r *fakeMasteryRepo) StateFor(ctx context.Context, studentID, conceptID string) (*store.MasteryStateRecord, error) {
	for _, st := range r.states {
		if st.StudentID == studentID && st.ConceptID == conceptID {
			cp := st
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

type fakeMetricsRepo struct {
	aggregate *store.MetricAggregateRecord
}

func (r *fakeMetricsRepo) UpsertAggregate(ctx context.Context, rec store.MetricAggregateRecord) error {
	r.aggregate = &rec
	return nil
}

func (r *fakeMetricsRepo) LatestAggregate(ctx context.Context, studentID, subject, term string) (*store.MetricAggregateRecord, error) {
	if r.aggregate == nil {
		return nil, store.ErrNotFound
	}
	return r.aggregate, nil
}

type fakeSessionRepo struct {
	sessions []store.SessionRecord
}

func (r *fakeSessionRepo) RecordSession(ctx context.Context, rec store.SessionRecord) error {
	r.sessions = append(r.sessions, rec)
	return nil
}

func (r *fakeSessionRepo) SessionsByScope(ctx context.Context, studentID, subject, term string, opts store.QueryOpts) ([]store.SessionRecord, error) {
	var out []store.SessionRecord
	for _, s := range r.sessions {
		if s.StudentID != studentID || s.Subject != subject || s.Term != term {
			continue
		}
		if !opts.From.IsZero() && s.StartedAt.Before(opts.From) {
			continue
		}
		if !opts.To.IsZero() && !s.StartedAt.Before(opts.To) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

type fakeRecommendationRepo struct {
	recs   map[string]store.RecommendationRecord
	nextID int
}

func newFakeRecommendationRepo() *fakeRecommendationRepo {
	return &fakeRecommendationRepo{recs: map[string]store.RecommendationRecord{}}
}

func (r *fakeRecommendationRepo) FindPending(ctx context.Context, studentID, ruleCode, conceptID string) (*store.RecommendationRecord, error) {
	for _, rec := range r.recs {
		if rec.StudentID == studentID && rec.RuleCode == ruleCode &&
			rec.ConceptID == conceptID && rec.Status == StatusPending {
			cp := rec
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *fakeRecommendationRepo) CreateRecommendation(ctx context.Context, rec store.RecommendationRecord) (*store.RecommendationRecord, error) {
	if rec.ID == "" {
		r.nextID++
		rec.ID = fmt.Sprintf("rec-%d", r.nextID)
	}
	r.recs[rec.ID] = rec
	cp := rec
	return &cp, nil
}

func (r *fakeRecommendationRepo) GetRecommendation(ctx context.Context, id string) (*store.RecommendationRecord, error) {
	rec, ok := r.recs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := rec
	return &cp, nil
}

func (r *fakeRecommendationRepo) ListRecommendations(ctx context.Context, studentID, status string) ([]store.RecommendationRecord, error) {
	var out []store.RecommendationRecord
	for _, rec := range r.recs {
		if rec.StudentID == studentID && (status == "" || rec.Status == status) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeRecommendationRepo) UpdateStatus(ctx context.Context, id, status string, at time.Time) error {
	rec, ok := r.recs[id]
	if !ok {
		return store.ErrNotFound
	}
	rec.Status = status
	rec.UpdatedAt = at
	r.recs[id] = rec
	return nil
}

type fakeDecisionRepo struct {
	recs      *fakeRecommendationRepo
	decisions []store.DecisionRecord
}

func (r *fakeDecisionRepo) CreateDecision(ctx context.Context, rec store.DecisionRecord) (*store.DecisionRecord, error) {
	rec.ID = fmt.Sprintf("dec-%d", len(r.decisions)+1)
	r.decisions = append(r.decisions, rec)
	cp := rec
	return &cp, nil
}

func (r *fakeDecisionRepo) DecisionByRecommendation(ctx context.Context, recommendationID string) (*store.DecisionRecord, error) {
	for _, d := range r.decisions {
		if d.RecommendationID == recommendationID {
			cp := d
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *fakeDecisionRepo) AcceptedForTutor(ctx context.Context, tutorID, studentID string) ([]store.DecidedRecommendation, error) {
	var out []store.DecidedRecommendation
	for _, d := range r.decisions {
		if d.TutorID != tutorID || d.Decision != DecisionAccepted {
			continue
		}
		rec, ok := r.recs.recs[d.RecommendationID]
		if !ok || rec.StudentID != studentID {
			continue
		}
		out = append(out, store.DecidedRecommendation{Recommendation: rec, Decision: d})
	}
	return out, nil
}

func newEngineFixture() (*fakeDB, *fakeConceptRepo, *fakeMasteryRepo, *fakeMetricsRepo, *fakeSessionRepo, *fakeRecommendationRepo) {
	concepts := &fakeConceptRepo{}
	masteryRepo := &fakeMasteryRepo{}
	metrics := &fakeMetricsRepo{}
	sessions := &fakeSessionRepo{}
	recs := newFakeRecommendationRepo()
	db := &fakeDB{repos: &store.Repos{
		Concepts:        concepts,
		Mastery:         masteryRepo,
		Metrics:         metrics,
		Sessions:        sessions,
		Recommendations: recs,
		Decisions:       &fakeDecisionRepo{recs: recs},
	}}
	return db, concepts, masteryRepo, metrics, sessions, recs
}

func newTestEngine(t *testing.T, db store.DB) *Engine {
	t.Helper()
	engine, err := NewEngine(db, DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return engine
}

func TestGenerate_CreatesPendingRecommendations(t *testing.T) {
	db, concepts, masteryRepo, metrics, _, _ := newEngineFixture()
	concepts.concepts = []store.ConceptRecord{
		{Code: "mat.num.add", Name: "Addition", Subject: "mat", Term: "t1", Active: true},
	}
	last := testNow.AddDate(0, 0, -1)
	masteryRepo.states = []store.MasteryStateRecord{
		{StudentID: "s1", ConceptID: "mat.num.add", Score: 0.3, Status: "at_risk", LastPracticeAt: &last},
	}
	metrics.aggregate = &store.MetricAggregateRecord{
		StudentID: "s1", Subject: "mat", Term: "t1",
		WindowDays: 30, Accuracy: 0.4, FirstAttemptAccuracy: 0.35, ErrorRate: 0.6,
		MedianResponseMs: 20000, ComputedAt: testNow,
	}

	engine := newTestEngine(t, db)
	res, err := engine.Generate(context.Background(), "s1", "mat", "t1", testNow)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(res.Created) == 0 {
		t.Fatal("no recommendations created")
	}
	if len(res.Reused) != 0 {
		t.Errorf("first run reused %d, want 0", len(res.Reused))
	}

	codes := map[string]bool{}
	for _, rec := range res.Created {
		codes[rec.RuleCode] = true
		if rec.Status != StatusPending {
			t.Errorf("%s status = %q, want pending", rec.RuleCode, rec.Status)
		}
		if rec.WindowDays != DefaultWindowDays {
			t.Errorf("%s window = %d, want %d", rec.RuleCode, rec.WindowDays, DefaultWindowDays)
		}
		if rec.RulesetVersion != RulesetVersion {
			t.Errorf("%s ruleset version = %q, want %q", rec.RuleCode, rec.RulesetVersion, RulesetVersion)
		}
	}
	// Low accuracy and the at-risk concept are both unambiguous here.
	if !codes["R01"] {
		t.Error("low global accuracy (R01) did not fire")
	}
	if !codes["R02"] {
		t.Error("at-risk concept (R02) did not fire")
	}
}

func TestGenerate_SecondRunReusesSameIDs(t *testing.T) {
	db, concepts, masteryRepo, metrics, _, recs := newEngineFixture()
	concepts.concepts = []store.ConceptRecord{
		{Code: "mat.num.add", Name: "Addition", Subject: "mat", Term: "t1", Active: true},
	}
	last := testNow.AddDate(0, 0, -1)
	masteryRepo.states = []store.MasteryStateRecord{
		{StudentID: "s1", ConceptID: "mat.num.add", Score: 0.3, Status: "at_risk", LastPracticeAt: &last},
	}
	metrics.aggregate = &store.MetricAggregateRecord{
		StudentID: "s1", Subject: "mat", Term: "t1",
		WindowDays: 30, Accuracy: 0.4, FirstAttemptAccuracy: 0.35,
		ErrorRate: 0.6, MedianResponseMs: 20000, ComputedAt: testNow,
	}

	engine := newTestEngine(t, db)
	first, err := engine.Generate(context.Background(), "s1", "mat", "t1", testNow)
	if err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	rows := len(recs.recs)

	second, err := engine.Generate(context.Background(), "s1", "mat", "t1", testNow)
	if err != nil {
		t.Fatalf("second Generate: %v", err)
	}
	if len(second.Created) != 0 {
		t.Errorf("second run created %d, want 0", len(second.Created))
	}
	if len(recs.recs) != rows {
		t.Errorf("row count grew from %d to %d on unchanged snapshot", rows, len(recs.recs))
	}

	firstIDs := map[string]bool{}
	for _, rec := range first.Created {
		firstIDs[rec.ID] = true
	}
	for _, rec := range second.Reused {
		if !firstIDs[rec.ID] {
			t.Errorf("reused id %s not among first run's ids", rec.ID)
		}
	}
	if len(second.Reused) != len(first.Created) {
		t.Errorf("reused %d, want %d", len(second.Reused), len(first.Created))
	}
}

// panicRule stands in for a rule with a construction bug.
type panicRule struct{}

func (r *panicRule) Code() string { return "R99" }

func (r *panicRule) Evaluate(snap *Snapshot) []Proposal {
	panic("boom")
}

type staticRule struct{}

func (r *staticRule) Code() string { return "R98" }

func (r *staticRule) Evaluate(snap *Snapshot) []Proposal {
	return []Proposal{{
		RuleCode: r.Code(),
		Title:    "static",
		Priority: PriorityLow,
	}}
}

func TestGenerate_PanickingRuleDoesNotAbortOthers(t *testing.T) {
	db, _, _, _, _, _ := newEngineFixture()
	engine := newTestEngine(t, db)
	engine.rules = []Rule{&panicRule{}, &staticRule{}}

	res, err := engine.Generate(context.Background(), "s1", "mat", "t1", testNow)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(res.Created) != 1 || res.Created[0].RuleCode != "R98" {
		t.Fatalf("want the healthy rule's recommendation, got %+v", res.Created)
	}
}

func TestApplyDecision(t *testing.T) {
	db, _, _, _, _, recs := newEngineFixture()
	engine := newTestEngine(t, db)

	stored, err := recs.CreateRecommendation(context.Background(), store.RecommendationRecord{
		StudentID: "s1", RuleCode: "R02", ConceptID: "mat.num.add",
		Priority: "medium", Status: StatusPending, Title: "Reinforce Addition",
		WindowDays: 14, GeneratedAt: testNow, UpdatedAt: testNow,
	})
	if err != nil {
		t.Fatalf("seed recommendation: %v", err)
	}

	dec, err := engine.ApplyDecision(context.Background(), stored.ID, "tutor1", DecisionAccepted, "go for it", testNow)
	if err != nil {
		t.Fatalf("ApplyDecision: %v", err)
	}
	if dec.Decision != DecisionAccepted || dec.TutorID != "tutor1" {
		t.Errorf("decision = %+v", dec)
	}

	rec, _ := recs.GetRecommendation(context.Background(), stored.ID)
	if rec.Status != StatusAccepted {
		t.Errorf("recommendation status = %q, want accepted", rec.Status)
	}

	// Second decision on the same recommendation must fail.
	_, err = engine.ApplyDecision(context.Background(), stored.ID, "tutor1", DecisionRejected, "", testNow)
	if !errors.Is(err, ErrAlreadyDecided) {
		t.Errorf("err = %v, want ErrAlreadyDecided", err)
	}
}

func TestApplyDecision_Validation(t *testing.T) {
	db, _, _, _, _, _ := newEngineFixture()
	engine := newTestEngine(t, db)

	_, err := engine.ApplyDecision(context.Background(), "rec-1", "tutor1", "maybe", "", testNow)
	if !errors.Is(err, ErrInvalidDecision) {
		t.Errorf("err = %v, want ErrInvalidDecision", err)
	}

	_, err = engine.ApplyDecision(context.Background(), "missing", "tutor1", DecisionAccepted, "", testNow)
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
