package recommend

import (
	"testing"

	"github.com/diversifica/decies-platform-sub000/internal/mastery"
)

func TestInactivityRule(t *testing.T) {
	rule := &InactivityRule{}

	snap := emptySnapshot()
	snap.SessionsLast7Days = 0
	snap.SessionsLast30Days = 6
	got := rule.Evaluate(snap)
	if len(got) != 1 || got[0].Priority != PriorityHigh {
		t.Fatalf("quiet week after active month: want one high proposal, got %+v", got)
	}

	// A student with no history at all is a cold start, not inactivity.
	snap.SessionsLast30Days = 0
	if got := rule.Evaluate(snap); got != nil {
		t.Errorf("no history: got %d proposals, want none", len(got))
	}

	snap.SessionsLast7Days = 1
	snap.SessionsLast30Days = 6
	if got := rule.Evaluate(snap); got != nil {
		t.Errorf("active week: got %d proposals, want none", len(got))
	}
}

func TestLowFrequencyRule(t *testing.T) {
	rule := &LowFrequencyRule{}
	snap := emptySnapshot()

	snap.SessionsLast30Days = 3
	if got := rule.Evaluate(snap); len(got) != 1 {
		t.Fatalf("3 sessions: got %d proposals, want 1", len(got))
	}

	snap.SessionsLast30Days = 4
	if got := rule.Evaluate(snap); got != nil {
		t.Errorf("4 sessions: got %d proposals, want none", len(got))
	}

	snap.SessionsLast30Days = 0
	if got := rule.Evaluate(snap); got != nil {
		t.Errorf("0 sessions: got %d proposals, want none (inactivity's job)", len(got))
	}
}

func TestOverloadRule(t *testing.T) {
	rule := &OverloadRule{}
	snap := emptySnapshot()

	snap.SessionsLast7Days = 14
	if got := rule.Evaluate(snap); len(got) != 1 {
		t.Fatalf("14 sessions: got %d proposals, want 1", len(got))
	}

	snap.SessionsLast7Days = 13
	if got := rule.Evaluate(snap); got != nil {
		t.Errorf("13 sessions: got %d proposals, want none", len(got))
	}
}

func TestLoadReductionRule(t *testing.T) {
	rule := &LoadReductionRule{}
	snap := emptySnapshot()
	snap.States = []ConceptState{
		state("a", 0.1, daysAgo(1)),
		state("b", 0.2, daysAgo(1)),
		state("c", 0.3, daysAgo(1)),
		state("d", 0.9, daysAgo(1)),
	}

	got := rule.Evaluate(snap)
	if len(got) != 1 {
		t.Fatalf("3 at risk: got %d proposals, want 1", len(got))
	}
	if got[0].Evidence[0].Value != "3" {
		t.Errorf("at-risk count evidence = %q, want 3", got[0].Evidence[0].Value)
	}

	snap.States = snap.States[:2]
	if got := rule.Evaluate(snap); got != nil {
		t.Errorf("2 at risk: got %d proposals, want none", len(got))
	}
}

func TestReviewBacklogRule(t *testing.T) {
	rule := &ReviewBacklogRule{}
	snap := emptySnapshot()

	due := testNow.AddDate(0, 0, -1)
	for i := 0; i < 10; i++ {
		snap.States = append(snap.States, ConceptState{
			ConceptID:      string(rune('a' + i)),
			Score:          0.9,
			Status:         mastery.StatusDominant,
			LastPracticeAt: daysAgo(30),
			NextReviewAt:   &due,
		})
	}

	if got := rule.Evaluate(snap); len(got) != 1 {
		t.Fatalf("10 due: got %d proposals, want 1", len(got))
	}

	snap.States = snap.States[:9]
	if got := rule.Evaluate(snap); got != nil {
		t.Errorf("9 due: got %d proposals, want none", len(got))
	}
}

func TestScopeSpreadRule(t *testing.T) {
	rule := &ScopeSpreadRule{}
	snap := emptySnapshot()

	// 20 tracked, 4 dominant, 16 not dominant.
	for i := 0; i < 20; i++ {
		score := 0.6
		if i < 4 {
			score = 0.9
		}
		snap.States = append(snap.States, state(string(rune('a'+i)), score, daysAgo(1)))
	}

	if got := rule.Evaluate(snap); len(got) != 1 {
		t.Fatalf("16 unfinished of 20: got %d proposals, want 1", len(got))
	}

	// Mastering one more drops unfinished to 15, under the bar.
	snap.States[4] = state(snap.States[4].ConceptID, 0.9, daysAgo(1))
	if got := rule.Evaluate(snap); got != nil {
		t.Errorf("15 unfinished: got %d proposals, want none", len(got))
	}
}
