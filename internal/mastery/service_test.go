package mastery

import (
	"context"
	"testing"
	"time"

	"github.com/diversifica/decies-platform-sub000/internal/store"
)

// fakeDB is an in-memory store.DB; WithTx just runs against the same repos.
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
	want := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		want[c] = struct{}{}
	}
	var out []store.EdgeRecord
	for _, e := range r.edges {
		if _, ok := want[e.ConceptCode]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeMasteryRepo struct {
	states map[string]store.MasteryStateRecord
}

func masteryKey(studentID, conceptID string) string { return studentID + "|" + conceptID }

func (r *fakeMasteryRepo) UpsertState(ctx context.Context, rec store.MasteryStateRecord) error {
	if r.states == nil {
		r.states = map[string]store.MasteryStateRecord{}
	}
	r.states[masteryKey(rec.StudentID, rec.ConceptID)] = rec
	return nil
}

func (r *fakeMasteryRepo) StatesForConcepts(ctx context.Context, studentID string, conceptIDs []string) ([]store.MasteryStateRecord, error) {
	var out []store.MasteryStateRecord
	for _, id := range conceptIDs {
		if st, ok := r.states[masteryKey(studentID, id)]; ok {
			out = append(out, st)
		}
	}
	return out, nil
}

func (r *fakeMasteryRepo) StateFor(ctx context.Context, studentID, conceptID string) (*store.MasteryStateRecord, error) {
	if st, ok := r.states[masteryKey(studentID, conceptID)]; ok {
		return &st, nil
	}
	return nil, store.ErrNotFound
}

type fakeMetricsRepo struct {
	aggregates map[string]store.MetricAggregateRecord
}

func scopeKey(studentID, subject, term string) string { return studentID + "|" + subject + "|" + term }

func (r *fakeMetricsRepo) UpsertAggregate(ctx context.Context, rec store.MetricAggregateRecord) error {
	if r.aggregates == nil {
		r.aggregates = map[string]store.MetricAggregateRecord{}
	}
	r.aggregates[scopeKey(rec.StudentID, rec.Subject, rec.Term)] = rec
	return nil
}

func (r *fakeMetricsRepo) LatestAggregate(ctx context.Context, studentID, subject, term string) (*store.MetricAggregateRecord, error) {
	if agg, ok := r.aggregates[scopeKey(studentID, subject, term)]; ok {
		return &agg, nil
	}
	return nil, store.ErrNotFound
}

func newFakeDB() (*fakeDB, *fakeEventRepo, *fakeConceptRepo, *fakeMasteryRepo, *fakeMetricsRepo) {
	events := &fakeEventRepo{}
	concepts := &fakeConceptRepo{}
	masteryRepo := &fakeMasteryRepo{states: map[string]store.MasteryStateRecord{}}
	metrics := &fakeMetricsRepo{aggregates: map[string]store.MetricAggregateRecord{}}
	db := &fakeDB{repos: &store.Repos{
		Events:   events,
		Concepts: concepts,
		Mastery:  masteryRepo,
		Metrics:  metrics,
	}}
	return db, events, concepts, masteryRepo, metrics
}

func newTestService(t *testing.T, db *fakeDB) *Service {
	t.Helper()
	svc, err := NewService(db, DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestRecalculate_PersistsAggregateAndStates(t *testing.T) {
	db, events, concepts, masteryRepo, metrics := newFakeDB()
	concepts.concepts = []store.ConceptRecord{
		{Code: "mat.frac.add", Name: "Adding fractions", Subject: "mat", Term: "t1", Active: true},
		{Code: "mat.frac.cmp", Name: "Comparing fractions", Subject: "mat", Term: "t1", Active: true},
	}
	e := event(testNow.Add(-2*time.Hour), true, "none")
	events.events = []store.PracticeEventRecord{e}

	svc := newTestService(t, db)
	agg, states, err := svc.Recalculate(context.Background(), "s1", "mat", "t1", 0, testNow)
	if err != nil {
		t.Fatalf("Recalculate: %v", err)
	}

	if agg.WindowDays != DefaultMetricsWindowDays {
		t.Errorf("WindowDays = %d, want %d", agg.WindowDays, DefaultMetricsWindowDays)
	}
	if agg.Accuracy != 1.0 {
		t.Errorf("Accuracy = %v, want 1.0", agg.Accuracy)
	}
	if len(states) != 2 {
		t.Fatalf("got %d states, want 2", len(states))
	}

	stored, err := metrics.LatestAggregate(context.Background(), "s1", "mat", "t1")
	if err != nil {
		t.Fatalf("LatestAggregate: %v", err)
	}
	if stored.EngineVersion != EngineVersion {
		t.Errorf("EngineVersion = %q, want %q", stored.EngineVersion, EngineVersion)
	}

	practiced, err := masteryRepo.StateFor(context.Background(), "s1", "mat.frac.add")
	if err != nil {
		t.Fatalf("StateFor practiced concept: %v", err)
	}
	if practiced.Status != string(StatusDominant) {
		t.Errorf("practiced Status = %q, want %q", practiced.Status, StatusDominant)
	}

	untouched, err := masteryRepo.StateFor(context.Background(), "s1", "mat.frac.cmp")
	if err != nil {
		t.Fatalf("StateFor untouched concept: %v", err)
	}
	if untouched.Score != 0 || untouched.Status != string(StatusAtRisk) {
		t.Errorf("untouched concept = %v/%q, want 0/at_risk", untouched.Score, untouched.Status)
	}
	if untouched.LastPracticeAt != nil {
		t.Errorf("untouched LastPracticeAt = %v, want nil", untouched.LastPracticeAt)
	}
}

func TestRecalculate_Idempotent(t *testing.T) {
	db, events, concepts, masteryRepo, _ := newFakeDB()
	concepts.concepts = []store.ConceptRecord{
		{Code: "mat.frac.add", Name: "Adding fractions", Subject: "mat", Term: "t1", Active: true},
	}
	events.events = []store.PracticeEventRecord{
		event(testNow.Add(-2*time.Hour), true, "none"),
		event(testNow.Add(-time.Hour), false, "none"),
	}

	svc := newTestService(t, db)
	agg1, states1, err := svc.Recalculate(context.Background(), "s1", "mat", "t1", 30, testNow)
	if err != nil {
		t.Fatalf("first Recalculate: %v", err)
	}
	agg2, states2, err := svc.Recalculate(context.Background(), "s1", "mat", "t1", 30, testNow)
	if err != nil {
		t.Fatalf("second Recalculate: %v", err)
	}

	if *agg1 != *agg2 {
		t.Errorf("aggregates differ:\n%+v\n%+v", agg1, agg2)
	}
	if len(states1) != len(states2) || states1[0].Score != states2[0].Score {
		t.Errorf("states differ: %+v vs %+v", states1, states2)
	}
	if len(masteryRepo.states) != 1 {
		t.Errorf("got %d state rows, want 1 (upsert, not insert)", len(masteryRepo.states))
	}
}

func TestRecalculate_WindowExcludesOldEvents(t *testing.T) {
	db, events, concepts, _, _ := newFakeDB()
	concepts.concepts = []store.ConceptRecord{
		{Code: "mat.frac.add", Name: "Adding fractions", Subject: "mat", Term: "t1", Active: true},
	}
	// One event inside the 30-day window, one far outside.
	events.events = []store.PracticeEventRecord{
		event(testNow.AddDate(0, 0, -5), true, "none"),
		event(testNow.AddDate(0, 0, -60), false, "none"),
	}

	svc := newTestService(t, db)
	agg, _, err := svc.Recalculate(context.Background(), "s1", "mat", "t1", 30, testNow)
	if err != nil {
		t.Fatalf("Recalculate: %v", err)
	}
	if agg.Accuracy != 1.0 {
		t.Errorf("Accuracy = %v, want 1.0 (old event excluded)", agg.Accuracy)
	}
}

func TestScopeMasteryAsOf_EmptyScope(t *testing.T) {
	db, _, _, _, _ := newFakeDB()
	svc := newTestService(t, db)

	avg, err := svc.ScopeMasteryAsOf(context.Background(), "s1", "mat", "t1", testNow)
	if err != nil {
		t.Fatalf("ScopeMasteryAsOf: %v", err)
	}
	if avg != nil {
		t.Errorf("avg = %v, want nil for empty scope", *avg)
	}
}

func TestConceptMasteryAsOf_ExcludesEventsAtInstant(t *testing.T) {
	db, events, _, _, _ := newFakeDB()
	// Event starting exactly at the instant is not yet visible.
	events.events = []store.PracticeEventRecord{event(testNow, true, "none")}

	svc := newTestService(t, db)
	got, err := svc.ConceptMasteryAsOf(context.Background(), "s1", "mat.frac.add", testNow)
	if err != nil {
		t.Fatalf("ConceptMasteryAsOf: %v", err)
	}
	if got.Score != 0 || got.LastPracticeAt != nil {
		t.Errorf("got %+v, want zero-event default", got)
	}
}
