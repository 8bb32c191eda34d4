package outcome

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/diversifica/decies-platform-sub000/internal/mastery"
	"github.com/diversifica/decies-platform-sub000/internal/recommend"
	"github.com/diversifica/decies-platform-sub000/internal/store"
)

// Exercises the full lifecycle against a real store: recalculation,
// generation with pending dedupe, a tutor decision, and a forced outcome
// run one hour after the window elapses. The student fails every item
// before the decision and solves every item after it.
func TestLifecycle_RecalcGenerateDecideSettle(t *testing.T) {
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	ctx := context.Background()

	decidedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	windowEnd := decidedAt.AddDate(0, 0, 14)
	evalNow := windowEnd.Add(time.Hour)

	if err := s.Repos().Concepts.CreateConcept(ctx, store.ConceptRecord{
		Code: "mat.num.add", Name: "Addition", Subject: "mat", Term: "t1", Active: true,
	}); err != nil {
		t.Fatalf("seed concept: %v", err)
	}

	seedSession := func(id string, startedAt time.Time) {
		t.Helper()
		err := s.Repos().Sessions.RecordSession(ctx, store.SessionRecord{
			SessionID: id, StudentID: "s1", Subject: "mat", Term: "t1",
			ActivityType: "practice", StartedAt: startedAt,
		})
		if err != nil {
			t.Fatalf("seed session %s: %v", id, err)
		}
	}
	seedAttempt := func(sessionID, itemID string, startedAt time.Time, correct bool) {
		t.Helper()
		ended := startedAt.Add(30 * time.Second)
		err := s.Repos().Events.AppendPracticeEvent(ctx, store.PracticeEventRecord{
			StudentID: "s1", ConceptID: "mat.num.add", SessionID: sessionID,
			ItemID: itemID, StartedAt: startedAt, EndedAt: &ended,
			DurationMs: 30000, Attempt: 1, Correct: correct,
			Hint: "none", Difficulty: 3,
		})
		if err != nil {
			t.Fatalf("seed attempt %s: %v", itemID, err)
		}
	}

	seedSession("pre", decidedAt.AddDate(0, 0, -5))
	for i := 0; i < 5; i++ {
		seedAttempt("pre", fmt.Sprintf("item%d", i),
			decidedAt.AddDate(0, 0, -5).Add(time.Duration(i)*time.Hour), false)
	}

	svc, err := mastery.NewService(s, mastery.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	engine, err := recommend.NewEngine(s, recommend.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	if _, _, err := svc.Recalculate(ctx, "s1", "mat", "t1", 0, decidedAt); err != nil {
		t.Fatalf("Recalculate: %v", err)
	}

	first, err := engine.Generate(ctx, "s1", "mat", "t1", decidedAt)
	if err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	var target *store.RecommendationRecord
	for i := range first.Created {
		if first.Created[i].RuleCode == "R02" {
			target = &first.Created[i]
		}
	}
	if target == nil {
		t.Fatalf("no weak-concept recommendation among %d created", len(first.Created))
	}

	// An unchanged snapshot must reuse every pending row, scope-wide rows
	// with an empty concept id included, instead of duplicating them.
	second, err := engine.Generate(ctx, "s1", "mat", "t1", decidedAt)
	if err != nil {
		t.Fatalf("second Generate: %v", err)
	}
	if len(second.Created) != 0 {
		t.Fatalf("second run created %d new rows, want 0", len(second.Created))
	}
	firstIDs := make(map[string]struct{}, len(first.Created))
	for _, rec := range first.Created {
		firstIDs[rec.ID] = struct{}{}
	}
	if len(second.Reused) != len(first.Created) {
		t.Errorf("reused %d rows, want %d", len(second.Reused), len(first.Created))
	}
	for _, rec := range second.Reused {
		if _, ok := firstIDs[rec.ID]; !ok {
			t.Errorf("reused id %q not among the first run's rows", rec.ID)
		}
	}

	if _, err := engine.ApplyDecision(ctx, target.ID, "tutor1", recommend.DecisionAccepted, "", decidedAt); err != nil {
		t.Fatalf("ApplyDecision: %v", err)
	}

	seedSession("post", decidedAt.AddDate(0, 0, 1))
	for i := 0; i < 5; i++ {
		seedAttempt("post", fmt.Sprintf("item%d-retry", i),
			decidedAt.AddDate(0, 0, 1+i), true)
	}

	eval, err := NewEvaluator(s, svc, recommend.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewEvaluator: %v", err)
	}
	res, err := eval.ComputeOutcomes(ctx, "tutor1", "s1", "mat", "t1", true, evalNow)
	if err != nil {
		t.Fatalf("ComputeOutcomes: %v", err)
	}
	if res.Created != 1 || res.Updated != 0 || res.Pending != 0 {
		t.Fatalf("counts = %d/%d/%d (created/updated/pending), want 1/0/0",
			res.Created, res.Updated, res.Pending)
	}

	o := res.Outcomes[0]
	if o.RecommendationID != target.ID {
		t.Errorf("outcome for %q, want %q", o.RecommendationID, target.ID)
	}
	if o.Success != SuccessTrue {
		t.Errorf("Success = %q, want true", o.Success)
	}
	if o.DeltaAccuracy == nil || *o.DeltaAccuracy != 1.0 {
		t.Errorf("DeltaAccuracy = %v, want 1.0 (0 of 5 pre, 5 of 5 post)", o.DeltaAccuracy)
	}
	if o.DeltaMastery == nil || *o.DeltaMastery <= 0 {
		t.Errorf("DeltaMastery = %v, want positive", o.DeltaMastery)
	}
	if !o.WindowStart.Equal(decidedAt) || !o.WindowEnd.Equal(windowEnd) {
		t.Errorf("window = %v..%v, want %v..%v", o.WindowStart, o.WindowEnd, decidedAt, windowEnd)
	}
}
