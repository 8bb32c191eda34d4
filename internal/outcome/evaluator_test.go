package outcome

import (
	"context"
	"testing"
	"time"

	"github.com/diversifica/decies-platform-sub000/internal/mastery"
	"github.com/diversifica/decies-platform-sub000/internal/recommend"
	"github.com/diversifica/decies-platform-sub000/internal/store"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

type fakeDB struct {
	repos *store.Repos
}

func (f *fakeDB) Repos() *store.Repos { return f.repos }

func (f *fakeDB) WithTx(ctx context.Context, fn func(*store.Repos) error) error {
	return fn(f.repos)
}

type fakeEventRepo struct {
	events []store.PracticeEventRecord
}

func (r *fakeEventRepo) AppendPracticeEvent(ctx context.Context, rec store.PracticeEventRecord) error {
	r.events = append(r.events, rec)
	return nil
}

func inRange(startedAt time.Time, opts store.QueryOpts) bool {
	if !opts.From.IsZero() && startedAt.Before(opts.From) {
		return false
	}
	if !opts.To.IsZero() && !startedAt.Before(opts.To) {
		return false
	}
	return true
}

func (r *fakeEventRepo) EventsByConcept(ctx context.Context, studentID, conceptID string, opts store.QueryOpts) ([]store.PracticeEventRecord, error) {
	var out []store.PracticeEventRecord
	for _, e := range r.events {
		if e.StudentID == studentID && e.ConceptID == conceptID && inRange(e.StartedAt, opts) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) EventsByScope(ctx context.Context, studentID, subject, term string, opts store.QueryOpts) ([]store.PracticeEventRecord, error) {
	var out []store.PracticeEventRecord
	for _, e := range r.events {
		if e.StudentID == studentID && inRange(e.StartedAt, opts) {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeConceptRepo struct {
	concepts []store.ConceptRecord
}

func (r *fakeConceptRepo) CreateConcept(ctx context.Context, rec store.ConceptRecord) error {
	r.concepts = append(r.concepts, rec)
	return nil
}

func (r *fakeConceptRepo) CreateEdge(ctx context.Context, rec store.EdgeRecord) error { return nil }

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
	return nil, nil
}

type fakeDecisionRepo struct {
	decided []store.DecidedRecommendation
}

func (r *fakeDecisionRepo) CreateDecision(ctx context.Context, rec store.DecisionRecord) (*store.DecisionRecord, error) {
	return &rec, nil
}

func (r *fakeDecisionRepo) DecisionByRecommendation(ctx context.Context, recommendationID string) (*store.DecisionRecord, error) {
	return nil, store.ErrNotFound
}

func (r *fakeDecisionRepo) AcceptedForTutor(ctx context.Context, tutorID, studentID string) ([]store.DecidedRecommendation, error) {
	return r.decided, nil
}

type fakeOutcomeRepo struct {
	outcomes map[string]store.OutcomeRecord
}

func (r *fakeOutcomeRepo) OutcomeByRecommendation(ctx context.Context, recommendationID string) (*store.OutcomeRecord, error) {
	if o, ok := r.outcomes[recommendationID]; ok {
		return &o, nil
	}
	return nil, store.ErrNotFound
}

func (r *fakeOutcomeRepo) UpsertOutcome(ctx context.Context, rec store.OutcomeRecord) (bool, error) {
	_, existed := r.outcomes[rec.RecommendationID]
	r.outcomes[rec.RecommendationID] = rec
	return !existed, nil
}

type fixture struct {
	db        *fakeDB
	events    *fakeEventRepo
	concepts  *fakeConceptRepo
	decisions *fakeDecisionRepo
	outcomes  *fakeOutcomeRepo
}

func newFixture() *fixture {
	f := &fixture{
		events:    &fakeEventRepo{},
		concepts:  &fakeConceptRepo{},
		decisions: &fakeDecisionRepo{},
		outcomes:  &fakeOutcomeRepo{outcomes: map[string]store.OutcomeRecord{}},
	}
	f.db = &fakeDB{repos: &store.Repos{
		Events:    f.events,
		Concepts:  f.concepts,
		Decisions: f.decisions,
		Outcomes:  f.outcomes,
	}}
	return f
}

func newTestEvaluator(t *testing.T, f *fixture) *Evaluator {
	t.Helper()
	svc, err := mastery.NewService(f.db, mastery.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	eval, err := NewEvaluator(f.db, svc, recommend.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewEvaluator: %v", err)
	}
	return eval
}

func accepted(recID, conceptID string, decidedAt time.Time, windowDays int) store.DecidedRecommendation {
	return store.DecidedRecommendation{
		Recommendation: store.RecommendationRecord{
			ID: recID, StudentID: "s1", ConceptID: conceptID,
			RuleCode: "R02", Priority: "medium", Status: "accepted",
			WindowDays: windowDays,
		},
		Decision: store.DecisionRecord{
			ID: "dec-" + recID, RecommendationID: recID,
			TutorID: "tutor1", Decision: "accepted", DecidedAt: decidedAt,
		},
	}
}

func attempt(conceptID string, startedAt time.Time, correct bool) store.PracticeEventRecord {
	ended := startedAt.Add(30 * time.Second)
	return store.PracticeEventRecord{
		StudentID: "s1", ConceptID: conceptID, SessionID: "sess1", ItemID: "i1",
		StartedAt: startedAt, EndedAt: &ended, DurationMs: 30000,
		Attempt: 1, Correct: correct, Hint: "none", Difficulty: 3,
	}
}

func TestComputeOutcomes_PendingWindow(t *testing.T) {
	f := newFixture()
	f.concepts.concepts = []store.ConceptRecord{
		{Code: "mat.num.add", Subject: "mat", Term: "t1", Active: true},
	}
	// Decided 5 days ago with a 14-day window: not yet due.
	f.decisions.decided = []store.DecidedRecommendation{
		accepted("rec-1", "mat.num.add", testNow.AddDate(0, 0, -5), 14),
	}

	eval := newTestEvaluator(t, f)
	res, err := eval.ComputeOutcomes(context.Background(), "tutor1", "s1", "mat", "t1", false, testNow)
	if err != nil {
		t.Fatalf("ComputeOutcomes: %v", err)
	}
	if res.Pending != 1 || res.Created != 0 || res.Updated != 0 {
		t.Errorf("counts = %d/%d/%d (created/updated/pending), want 0/0/1",
			res.Created, res.Updated, res.Pending)
	}
	if len(f.outcomes.outcomes) != 0 {
		t.Errorf("outcome rows written for a pending window")
	}
}

func TestComputeOutcomes_SettlesElapsedWindow(t *testing.T) {
	f := newFixture()
	f.concepts.concepts = []store.ConceptRecord{
		{Code: "mat.num.add", Subject: "mat", Term: "t1", Active: true},
	}
	decidedAt := testNow.AddDate(0, 0, -20)
	f.decisions.decided = []store.DecidedRecommendation{
		accepted("rec-1", "mat.num.add", decidedAt, 14),
	}
	// Pre window: 1 of 4 correct. Post window: 3 of 4 correct.
	for i := 0; i < 4; i++ {
		f.events.events = append(f.events.events,
			attempt("mat.num.add", decidedAt.AddDate(0, 0, -10).Add(time.Duration(i)*time.Hour), i == 0))
	}
	for i := 0; i < 4; i++ {
		f.events.events = append(f.events.events,
			attempt("mat.num.add", decidedAt.AddDate(0, 0, 5).Add(time.Duration(i)*time.Hour), i != 0))
	}

	eval := newTestEvaluator(t, f)
	res, err := eval.ComputeOutcomes(context.Background(), "tutor1", "s1", "mat", "t1", false, testNow)
	if err != nil {
		t.Fatalf("ComputeOutcomes: %v", err)
	}
	if res.Created != 1 || res.Updated != 0 || res.Pending != 0 {
		t.Fatalf("counts = %d/%d/%d, want 1/0/0", res.Created, res.Updated, res.Pending)
	}

	o := res.Outcomes[0]
	if o.Success != SuccessTrue {
		t.Errorf("Success = %q, want true", o.Success)
	}
	if o.DeltaAccuracy == nil || *o.DeltaAccuracy != 0.5 {
		t.Errorf("DeltaAccuracy = %v, want 0.5", o.DeltaAccuracy)
	}
	if o.DeltaMastery == nil || *o.DeltaMastery <= 0 {
		t.Errorf("DeltaMastery = %v, want positive", o.DeltaMastery)
	}
	if !o.WindowStart.Equal(decidedAt) || !o.WindowEnd.Equal(decidedAt.AddDate(0, 0, 14)) {
		t.Errorf("window = %v..%v", o.WindowStart, o.WindowEnd)
	}
	if o.EngineVersion != mastery.EngineVersion || o.RulesetVersion != recommend.RulesetVersion {
		t.Errorf("version stamps = %q/%q", o.EngineVersion, o.RulesetVersion)
	}
}

func TestComputeOutcomes_SettledSkippedUnlessForced(t *testing.T) {
	f := newFixture()
	f.concepts.concepts = []store.ConceptRecord{
		{Code: "mat.num.add", Subject: "mat", Term: "t1", Active: true},
	}
	decidedAt := testNow.AddDate(0, 0, -20)
	f.decisions.decided = []store.DecidedRecommendation{
		accepted("rec-1", "mat.num.add", decidedAt, 14),
	}

	eval := newTestEvaluator(t, f)
	first, err := eval.ComputeOutcomes(context.Background(), "tutor1", "s1", "mat", "t1", false, testNow)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first.Created != 1 {
		t.Fatalf("first run created = %d, want 1", first.Created)
	}

	second, err := eval.ComputeOutcomes(context.Background(), "tutor1", "s1", "mat", "t1", false, testNow)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if second.Created != 0 || second.Updated != 0 || second.Pending != 0 {
		t.Errorf("unforced rerun counts = %d/%d/%d, want 0/0/0",
			second.Created, second.Updated, second.Pending)
	}

	forced, err := eval.ComputeOutcomes(context.Background(), "tutor1", "s1", "mat", "t1", true, testNow)
	if err != nil {
		t.Fatalf("forced run: %v", err)
	}
	if forced.Created != 0 || forced.Updated != 1 {
		t.Errorf("forced counts = %d/%d, want 0 created, 1 updated", forced.Created, forced.Updated)
	}
}

func TestComputeOutcomes_IgnoresOtherScopes(t *testing.T) {
	f := newFixture()
	f.concepts.concepts = []store.ConceptRecord{
		{Code: "mat.num.add", Subject: "mat", Term: "t1", Active: true},
	}
	decidedAt := testNow.AddDate(0, 0, -20)
	// Concept from another subject's catalog: not in this scope.
	f.decisions.decided = []store.DecidedRecommendation{
		accepted("rec-1", "eng.read.vocab", decidedAt, 14),
	}

	eval := newTestEvaluator(t, f)
	res, err := eval.ComputeOutcomes(context.Background(), "tutor1", "s1", "mat", "t1", false, testNow)
	if err != nil {
		t.Fatalf("ComputeOutcomes: %v", err)
	}
	if res.Created != 0 || res.Updated != 0 || res.Pending != 0 {
		t.Errorf("out-of-scope recommendation was processed: %+v", res)
	}
}

func TestComputeOutcomes_NoEventsEitherSide(t *testing.T) {
	f := newFixture()
	f.concepts.concepts = []store.ConceptRecord{
		{Code: "mat.num.add", Subject: "mat", Term: "t1", Active: true},
	}
	decidedAt := testNow.AddDate(0, 0, -20)
	f.decisions.decided = []store.DecidedRecommendation{
		accepted("rec-1", "mat.num.add", decidedAt, 14),
	}

	eval := newTestEvaluator(t, f)
	res, err := eval.ComputeOutcomes(context.Background(), "tutor1", "s1", "mat", "t1", false, testNow)
	if err != nil {
		t.Fatalf("ComputeOutcomes: %v", err)
	}
	if res.Created != 1 {
		t.Fatalf("created = %d, want 1", res.Created)
	}
	o := res.Outcomes[0]
	if o.DeltaAccuracy != nil || o.DeltaHintRate != nil {
		t.Errorf("metric deltas = %v/%v, want nil with empty windows", o.DeltaAccuracy, o.DeltaHintRate)
	}
	// Mastery is still defined (zero both sides), so the delta is 0 and the
	// classification lands on partial.
	if o.Success != SuccessPartial {
		t.Errorf("Success = %q, want partial", o.Success)
	}
}
