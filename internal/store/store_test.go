package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func seedSession(t *testing.T, s *Store, sessionID string, startedAt time.Time) {
	t.Helper()
	err := s.Repos().Sessions.RecordSession(context.Background(), SessionRecord{
		SessionID:    sessionID,
		StudentID:    "s1",
		Subject:      "mat",
		Term:         "t1",
		ActivityType: "practice",
		StartedAt:    startedAt,
	})
	if err != nil {
		t.Fatalf("seed session: %v", err)
	}
}

func seedEvent(t *testing.T, s *Store, sessionID string, startedAt time.Time, correct bool) {
	t.Helper()
	ended := startedAt.Add(30 * time.Second)
	err := s.Repos().Events.AppendPracticeEvent(context.Background(), PracticeEventRecord{
		StudentID:  "s1",
		ConceptID:  "mat.num.add",
		SessionID:  sessionID,
		ItemID:     "item1",
		StartedAt:  startedAt,
		EndedAt:    &ended,
		DurationMs: 30000,
		Attempt:    1,
		Correct:    correct,
		Hint:       "none",
		Difficulty: 3,
	})
	if err != nil {
		t.Fatalf("seed event: %v", err)
	}
}

func TestEventsByConcept_TimeBounds(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedSession(t, s, "sess1", testNow.AddDate(0, 0, -10))

	seedEvent(t, s, "sess1", testNow.AddDate(0, 0, -10), true)
	seedEvent(t, s, "sess1", testNow.AddDate(0, 0, -5), true)
	seedEvent(t, s, "sess1", testNow, true) // exactly at To: excluded

	events, err := s.Repos().Events.EventsByConcept(ctx, "s1", "mat.num.add", QueryOpts{
		From: testNow.AddDate(0, 0, -7),
		To:   testNow,
	})
	if err != nil {
		t.Fatalf("EventsByConcept: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1 (From inclusive, To exclusive)", len(events))
	}
	if !events[0].StartedAt.Equal(testNow.AddDate(0, 0, -5)) {
		t.Errorf("wrong event selected: %v", events[0].StartedAt)
	}
}

func TestEventsByScope_JoinsThroughSessions(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	seedSession(t, s, "sess1", testNow.AddDate(0, 0, -2))
	seedEvent(t, s, "sess1", testNow.AddDate(0, 0, -2), true)

	// A session in another scope; its events must not leak in.
	err := s.Repos().Sessions.RecordSession(ctx, SessionRecord{
		SessionID: "sess2", StudentID: "s1", Subject: "eng", Term: "t1",
		ActivityType: "practice", StartedAt: testNow.AddDate(0, 0, -2),
	})
	if err != nil {
		t.Fatalf("seed other session: %v", err)
	}
	seedEvent(t, s, "sess2", testNow.AddDate(0, 0, -1), false)

	events, err := s.Repos().Events.EventsByScope(ctx, "s1", "mat", "t1", QueryOpts{})
	if err != nil {
		t.Fatalf("EventsByScope: %v", err)
	}
	if len(events) != 1 || events[0].SessionID != "sess1" {
		t.Fatalf("got %d events, want only the mat/t1 session's event", len(events))
	}
}

func TestMasteryUpsert_SingleRow(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Repos().Mastery

	rec := MasteryStateRecord{
		StudentID: "s1", ConceptID: "mat.num.add",
		Score: 0.4, Status: "at_risk",
		EngineVersion: "v1.0.0", UpdatedAt: testNow,
	}
	if err := repo.UpsertState(ctx, rec); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	rec.Score = 0.85
	rec.Status = "dominant"
	last := testNow.AddDate(0, 0, -1)
	rec.LastPracticeAt = &last
	if err := repo.UpsertState(ctx, rec); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := repo.StateFor(ctx, "s1", "mat.num.add")
	if err != nil {
		t.Fatalf("StateFor: %v", err)
	}
	if got.Score != 0.85 || got.Status != "dominant" {
		t.Errorf("state = %v/%q, want updated row", got.Score, got.Status)
	}

	states, err := repo.StatesForConcepts(ctx, "s1", []string{"mat.num.add"})
	if err != nil {
		t.Fatalf("StatesForConcepts: %v", err)
	}
	if len(states) != 1 {
		t.Errorf("got %d rows, want 1 (upsert must not duplicate)", len(states))
	}
}

func TestRecommendationRoundTrip_EvidenceOrdered(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Repos().Recommendations

	stored, err := repo.CreateRecommendation(ctx, RecommendationRecord{
		StudentID: "s1", ConceptID: "mat.num.add", RuleCode: "R02",
		Priority: "medium", Status: "pending",
		Title: "Reinforce Addition", Description: "desc",
		WindowDays: 14, EngineVersion: "v1.0.0", RulesetVersion: "v1.0.0",
		GeneratedAt: testNow, UpdatedAt: testNow,
		Evidence: []EvidenceRecord{
			{Type: "mastery", Key: "status", Value: "at_risk", Description: "first"},
			{Type: "mastery", Key: "score", Value: "0.3000", Description: "second"},
		},
	})
	if err != nil {
		t.Fatalf("CreateRecommendation: %v", err)
	}
	if stored.ID == "" {
		t.Fatal("no id assigned")
	}

	got, err := repo.GetRecommendation(ctx, stored.ID)
	if err != nil {
		t.Fatalf("GetRecommendation: %v", err)
	}
	if len(got.Evidence) != 2 {
		t.Fatalf("got %d evidence items, want 2", len(got.Evidence))
	}
	if got.Evidence[0].Key != "status" || got.Evidence[1].Key != "score" {
		t.Errorf("evidence out of order: %+v", got.Evidence)
	}
}

func TestFindPending_MatchesExactTuple(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Repos().Recommendations

	seed := func(ruleCode, conceptID string) string {
		stored, err := repo.CreateRecommendation(ctx, RecommendationRecord{
			StudentID: "s1", ConceptID: conceptID, RuleCode: ruleCode,
			Priority: "low", Status: "pending", Title: "t", Description: "d",
			WindowDays: 14, EngineVersion: "v1.0.0", RulesetVersion: "v1.0.0",
			GeneratedAt: testNow, UpdatedAt: testNow,
		})
		if err != nil {
			t.Fatalf("seed %s/%s: %v", ruleCode, conceptID, err)
		}
		return stored.ID
	}
	conceptID := seed("R02", "mat.num.add")
	scopeID := seed("R01", "")

	got, err := repo.FindPending(ctx, "s1", "R02", "mat.num.add")
	if err != nil {
		t.Fatalf("FindPending concept tuple: %v", err)
	}
	if got.ID != conceptID {
		t.Errorf("got id %q, want %q", got.ID, conceptID)
	}

	// The empty concept id matches only scope-wide records. The row is
	// stored with '' rather than NULL so this equality lookup finds it.
	got, err = repo.FindPending(ctx, "s1", "R01", "")
	if err != nil {
		t.Fatalf("FindPending conceptless: %v", err)
	}
	if got.ID != scopeID {
		t.Errorf("got id %q, want %q", got.ID, scopeID)
	}
	if got.ConceptID != "" {
		t.Errorf("ConceptID = %q, want empty", got.ConceptID)
	}

	if _, err := repo.FindPending(ctx, "s1", "R02", ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("cross-tuple lookup err = %v, want ErrNotFound", err)
	}
}

func TestOutcomeUpsert_CreatedThenUpdated(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Repos().Outcomes

	rec := OutcomeRecord{
		RecommendationID: "rec-1",
		WindowStart:      testNow.AddDate(0, 0, -14),
		WindowEnd:        testNow,
		Success:          "partial",
		ComputedAt:       testNow,
		EngineVersion:    "v1.0.0",
		RulesetVersion:   "v1.0.0",
	}
	created, err := repo.UpsertOutcome(ctx, rec)
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if !created {
		t.Error("first upsert reported update")
	}

	delta := 0.1
	rec.Success = "true"
	rec.DeltaMastery = &delta
	created, err = repo.UpsertOutcome(ctx, rec)
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if created {
		t.Error("second upsert reported create")
	}

	got, err := repo.OutcomeByRecommendation(ctx, "rec-1")
	if err != nil {
		t.Fatalf("OutcomeByRecommendation: %v", err)
	}
	if got.Success != "true" || got.DeltaMastery == nil || *got.DeltaMastery != 0.1 {
		t.Errorf("outcome not overwritten: %+v", got)
	}
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.WithTx(ctx, func(r *Repos) error {
		if err := r.Mastery.UpsertState(ctx, MasteryStateRecord{
			StudentID: "s1", ConceptID: "mat.num.add",
			Score: 0.4, Status: "at_risk",
			EngineVersion: "v1.0.0", UpdatedAt: testNow,
		}); err != nil {
			return err
		}
		return fmt.Errorf("forced failure")
	})
	if err == nil {
		t.Fatal("WithTx swallowed the error")
	}

	if _, err := s.Repos().Mastery.StateFor(ctx, "s1", "mat.num.add"); !errors.Is(err, ErrNotFound) {
		t.Errorf("state visible after rollback, err = %v", err)
	}
}

func TestResetDerived_KeepsEvents(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	seedSession(t, s, "sess1", testNow.AddDate(0, 0, -1))
	seedEvent(t, s, "sess1", testNow.AddDate(0, 0, -1), true)
	if err := s.Repos().Mastery.UpsertState(ctx, MasteryStateRecord{
		StudentID: "s1", ConceptID: "mat.num.add",
		Score: 0.4, Status: "at_risk",
		EngineVersion: "v1.0.0", UpdatedAt: testNow,
	}); err != nil {
		t.Fatalf("seed state: %v", err)
	}

	if err := s.ResetDerived(ctx); err != nil {
		t.Fatalf("ResetDerived: %v", err)
	}

	if _, err := s.Repos().Mastery.StateFor(ctx, "s1", "mat.num.add"); !errors.Is(err, ErrNotFound) {
		t.Errorf("mastery state survived reset, err = %v", err)
	}
	events, err := s.Repos().Events.EventsByConcept(ctx, "s1", "mat.num.add", QueryOpts{})
	if err != nil {
		t.Fatalf("EventsByConcept: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("events were deleted by reset")
	}
}
