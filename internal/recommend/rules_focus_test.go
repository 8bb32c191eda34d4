package recommend

import (
	"testing"
	"time"

	"github.com/diversifica/decies-platform-sub000/internal/conceptgraph"
	"github.com/diversifica/decies-platform-sub000/internal/mastery"
	"github.com/diversifica/decies-platform-sub000/internal/store"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func testGraph(edges ...store.EdgeRecord) *conceptgraph.Graph {
	concepts := []store.ConceptRecord{
		{Code: "mat.num.count", Name: "Counting", Subject: "mat", Term: "t1", Active: true},
		{Code: "mat.num.add", Name: "Addition", Subject: "mat", Term: "t1", Active: true},
		{Code: "mat.num.mul", Name: "Multiplication", Subject: "mat", Term: "t1", Active: true},
		{Code: "mat.frac.add", Name: "Adding fractions", Subject: "mat", Term: "t1", Active: true},
	}
	return conceptgraph.New(concepts, edges)
}

func emptySnapshot() *Snapshot {
	return &Snapshot{
		StudentID:          "s1",
		Subject:            "mat",
		Term:               "t1",
		Now:                testNow,
		Graph:              testGraph(),
		ActivityTypeCounts: map[string]int{},
	}
}

func daysAgo(n int) *time.Time {
	t := testNow.AddDate(0, 0, -n)
	return &t
}

func state(conceptID string, score float64, lastPractice *time.Time) ConceptState {
	return ConceptState{
		ConceptID:      conceptID,
		Score:          score,
		Status:         mastery.StatusForScore(score),
		LastPracticeAt: lastPractice,
	}
}

func aggregate(accuracy float64) *store.MetricAggregateRecord {
	return &store.MetricAggregateRecord{
		StudentID:  "s1",
		Subject:    "mat",
		Term:       "t1",
		WindowDays: 30,
		Accuracy:   accuracy,
		ErrorRate:  1 - accuracy,
		ComputedAt: testNow,
	}
}

func TestLowGlobalAccuracyRule(t *testing.T) {
	rule := &LowGlobalAccuracyRule{}

	snap := emptySnapshot()
	if got := rule.Evaluate(snap); got != nil {
		t.Errorf("no metrics: got %d proposals, want none", len(got))
	}

	snap.Metrics = aggregate(0.5)
	if got := rule.Evaluate(snap); got != nil {
		t.Errorf("accuracy 0.5: got %d proposals, want none (threshold is exclusive)", len(got))
	}

	snap.Metrics = aggregate(0.49)
	got := rule.Evaluate(snap)
	if len(got) != 1 {
		t.Fatalf("accuracy 0.49: got %d proposals, want 1", len(got))
	}
	p := got[0]
	if p.Priority != PriorityHigh {
		t.Errorf("Priority = %q, want high", p.Priority)
	}
	if p.ConceptID != "" {
		t.Errorf("ConceptID = %q, want concept-less", p.ConceptID)
	}
	if len(p.Evidence) != 2 {
		t.Errorf("got %d evidence items, want accuracy and error rate", len(p.Evidence))
	}
}

func TestAtRiskConceptRule(t *testing.T) {
	rule := &AtRiskConceptRule{}
	snap := emptySnapshot()
	snap.States = []ConceptState{
		state("mat.num.add", 0.3, daysAgo(1)),
		state("mat.num.mul", 0.6, daysAgo(1)),
		state("mat.frac.add", 0.45, nil),
	}

	got := rule.Evaluate(snap)
	if len(got) != 2 {
		t.Fatalf("got %d proposals, want 2 (at-risk only)", len(got))
	}
	for _, p := range got {
		if p.ConceptID == "mat.num.mul" {
			t.Errorf("in-progress concept should not fire")
		}
	}
}

func TestPrerequisiteReinforcementRule_UnpracticedNeverFires(t *testing.T) {
	rule := &PrerequisiteReinforcementRule{}
	snap := emptySnapshot()
	snap.Graph = testGraph(store.EdgeRecord{ConceptCode: "mat.frac.add", PrerequisiteCode: "mat.num.add"})
	snap.States = []ConceptState{
		state("mat.frac.add", 0.2, nil),
		state("mat.num.add", 0.3, daysAgo(2)),
	}

	if got := rule.Evaluate(snap); got != nil {
		t.Errorf("unpracticed at-risk target fired: %d proposals", len(got))
	}
}

func TestPrerequisiteReinforcementRule_PracticedWithWeakPrereq(t *testing.T) {
	rule := &PrerequisiteReinforcementRule{}
	snap := emptySnapshot()
	snap.Graph = testGraph(store.EdgeRecord{ConceptCode: "mat.frac.add", PrerequisiteCode: "mat.num.add"})
	snap.States = []ConceptState{
		state("mat.frac.add", 0.4, daysAgo(1)),
		state("mat.num.add", 0.3, daysAgo(2)),
	}

	got := rule.Evaluate(snap)
	if len(got) != 1 {
		t.Fatalf("got %d proposals, want 1", len(got))
	}
	if got[0].ConceptID != "mat.frac.add" {
		t.Errorf("ConceptID = %q, want target concept", got[0].ConceptID)
	}
	if got[0].Priority != PriorityMedium {
		t.Errorf("Priority = %q, want medium for target score 0.4", got[0].Priority)
	}
}

func TestPrerequisiteReinforcementRule_HighPriorityForVeryWeakTarget(t *testing.T) {
	rule := &PrerequisiteReinforcementRule{}
	snap := emptySnapshot()
	snap.Graph = testGraph(store.EdgeRecord{ConceptCode: "mat.frac.add", PrerequisiteCode: "mat.num.add"})
	snap.States = []ConceptState{
		state("mat.frac.add", 0.2, daysAgo(1)),
		state("mat.num.add", 0.3, daysAgo(2)),
	}

	got := rule.Evaluate(snap)
	if len(got) != 1 || got[0].Priority != PriorityHigh {
		t.Fatalf("want one high-priority proposal for target score 0.2, got %+v", got)
	}
}

func TestPrerequisiteReinforcementRule_CapsAtTwoWeakest(t *testing.T) {
	rule := &PrerequisiteReinforcementRule{}
	snap := emptySnapshot()
	snap.Graph = testGraph(
		store.EdgeRecord{ConceptCode: "mat.frac.add", PrerequisiteCode: "mat.num.count"},
		store.EdgeRecord{ConceptCode: "mat.frac.add", PrerequisiteCode: "mat.num.add"},
		store.EdgeRecord{ConceptCode: "mat.frac.add", PrerequisiteCode: "mat.num.mul"},
	)
	snap.States = []ConceptState{
		state("mat.frac.add", 0.4, daysAgo(1)),
		state("mat.num.count", 0.7, daysAgo(2)),
		state("mat.num.add", 0.1, daysAgo(2)),
		state("mat.num.mul", 0.5, daysAgo(2)),
	}

	got := rule.Evaluate(snap)
	if len(got) != 1 {
		t.Fatalf("got %d proposals, want 1", len(got))
	}
	// 2 header items plus the two weakest prerequisites.
	prereqs := 0
	for _, e := range got[0].Evidence {
		if e.Type == EvidencePrerequisite {
			prereqs++
			if e.Key == "mat.num.count" {
				t.Errorf("strongest prerequisite included, want only the two weakest")
			}
		}
	}
	if prereqs != 2 {
		t.Errorf("got %d prerequisite evidence items, want 2", prereqs)
	}
}

func TestPrerequisiteReinforcementRule_UntrackedPrereqCountsAsZero(t *testing.T) {
	rule := &PrerequisiteReinforcementRule{}
	snap := emptySnapshot()
	snap.Graph = testGraph(store.EdgeRecord{ConceptCode: "mat.frac.add", PrerequisiteCode: "mat.num.add"})
	// Prerequisite has no mastery row at all.
	snap.States = []ConceptState{
		state("mat.frac.add", 0.4, daysAgo(1)),
	}

	got := rule.Evaluate(snap)
	if len(got) != 1 {
		t.Fatalf("got %d proposals, want 1 (untracked prereq treated as score 0)", len(got))
	}
}

func TestConsolidationRule_Band(t *testing.T) {
	rule := &ConsolidationRule{}
	snap := emptySnapshot()
	snap.States = []ConceptState{
		state("mat.num.add", 0.6, daysAgo(1)),  // fires
		state("mat.num.mul", 0.85, daysAgo(1)), // dominant, no
		state("mat.num.count", 0.3, daysAgo(1)), // at risk, no
	}

	got := rule.Evaluate(snap)
	if len(got) != 1 || got[0].ConceptID != "mat.num.add" {
		t.Fatalf("want one proposal for mat.num.add, got %+v", got)
	}
}

func TestSpacedReviewDueRule_Aggregates(t *testing.T) {
	rule := &SpacedReviewDueRule{}
	snap := emptySnapshot()
	due := testNow.AddDate(0, 0, -1)
	future := testNow.AddDate(0, 0, 5)
	snap.States = []ConceptState{
		{ConceptID: "mat.num.add", Score: 0.9, Status: mastery.StatusDominant, LastPracticeAt: daysAgo(20), NextReviewAt: &due},
		{ConceptID: "mat.num.mul", Score: 0.85, Status: mastery.StatusDominant, LastPracticeAt: daysAgo(20), NextReviewAt: &due},
		{ConceptID: "mat.num.count", Score: 0.95, Status: mastery.StatusDominant, LastPracticeAt: daysAgo(2), NextReviewAt: &future},
	}

	got := rule.Evaluate(snap)
	if len(got) != 1 {
		t.Fatalf("got %d proposals, want 1 aggregated", len(got))
	}
	if got[0].ConceptID != "" {
		t.Errorf("ConceptID = %q, want concept-less", got[0].ConceptID)
	}
	if got[0].Evidence[0].Value != "2" {
		t.Errorf("due count evidence = %q, want 2", got[0].Evidence[0].Value)
	}
}

func TestColdStartRule(t *testing.T) {
	rule := &ColdStartRule{}

	snap := emptySnapshot()
	if got := rule.Evaluate(snap); len(got) != 1 {
		t.Errorf("empty scope: got %d proposals, want 1", len(got))
	}

	snap.Metrics = aggregate(0.7)
	if got := rule.Evaluate(snap); got != nil {
		t.Errorf("scope with metrics: got %d proposals, want none", len(got))
	}
}

func TestStalledConceptRule(t *testing.T) {
	rule := &StalledConceptRule{}
	snap := emptySnapshot()
	snap.States = []ConceptState{
		state("mat.num.add", 0.6, daysAgo(20)), // stalled
		state("mat.num.mul", 0.6, daysAgo(3)),  // recent
	}

	got := rule.Evaluate(snap)
	if len(got) != 1 || got[0].ConceptID != "mat.num.add" {
		t.Fatalf("want one proposal for the stalled concept, got %+v", got)
	}
}

func TestNearMasteryPushRule(t *testing.T) {
	rule := &NearMasteryPushRule{}
	snap := emptySnapshot()
	snap.States = []ConceptState{
		state("mat.num.add", 0.75, daysAgo(2)),  // fires
		state("mat.num.mul", 0.75, daysAgo(10)), // too cold
		state("mat.num.count", 0.85, daysAgo(2)), // already dominant
	}

	got := rule.Evaluate(snap)
	if len(got) != 1 || got[0].ConceptID != "mat.num.add" {
		t.Fatalf("want one proposal for the warm near-mastery concept, got %+v", got)
	}
}

func TestDominantDecayRiskRule(t *testing.T) {
	rule := &DominantDecayRiskRule{}
	snap := emptySnapshot()
	snap.States = []ConceptState{
		state("mat.num.add", 0.9, daysAgo(25)), // idle past 21d
		state("mat.num.mul", 0.9, daysAgo(10)),
	}

	got := rule.Evaluate(snap)
	if len(got) != 1 || got[0].ConceptID != "mat.num.add" {
		t.Fatalf("want one proposal for the idle dominant concept, got %+v", got)
	}
}

func TestRetryGapRule(t *testing.T) {
	rule := &RetryGapRule{}
	snap := emptySnapshot()

	m := aggregate(0.8)
	m.FirstAttemptAccuracy = 0.65
	snap.Metrics = m
	if got := rule.Evaluate(snap); got != nil {
		t.Errorf("gap 0.15: got %d proposals, want none", len(got))
	}

	m.FirstAttemptAccuracy = 0.6
	got := rule.Evaluate(snap)
	if len(got) != 1 {
		t.Fatalf("gap 0.2: got %d proposals, want 1", len(got))
	}
}
