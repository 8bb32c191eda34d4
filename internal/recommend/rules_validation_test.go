package recommend

import (
	"testing"
)

func TestActivityMonotonyRule(t *testing.T) {
	rule := &ActivityMonotonyRule{}
	snap := emptySnapshot()

	snap.ActivityTypeCounts = map[string]int{"practice": 4}
	if got := rule.Evaluate(snap); got != nil {
		t.Errorf("only 4 sessions: got %d proposals, want none", len(got))
	}

	snap.ActivityTypeCounts = map[string]int{"practice": 4, "review": 1}
	got := rule.Evaluate(snap)
	if len(got) != 1 {
		t.Fatalf("4 of 5 practice (80%%): got %d proposals, want 1", len(got))
	}
	if got[0].Evidence[0].Value != "practice" {
		t.Errorf("dominant type = %q, want practice", got[0].Evidence[0].Value)
	}

	snap.ActivityTypeCounts = map[string]int{"practice": 3, "review": 2}
	if got := rule.Evaluate(snap); got != nil {
		t.Errorf("60%% share: got %d proposals, want none", len(got))
	}
}

func TestAssessmentGapRule(t *testing.T) {
	rule := &AssessmentGapRule{}
	snap := emptySnapshot()
	snap.SessionsLast30Days = 5
	snap.ActivityTypeCounts = map[string]int{"practice": 5}
	snap.States = []ConceptState{state("mat.num.add", 0.9, daysAgo(1))}

	if got := rule.Evaluate(snap); len(got) != 1 {
		t.Fatalf("dominant without assessment: got %d proposals, want 1", len(got))
	}

	snap.ActivityTypeCounts["assessment"] = 1
	if got := rule.Evaluate(snap); got != nil {
		t.Errorf("recent assessment: got %d proposals, want none", len(got))
	}

	delete(snap.ActivityTypeCounts, "assessment")
	snap.States = []ConceptState{state("mat.num.add", 0.6, daysAgo(1))}
	if got := rule.Evaluate(snap); got != nil {
		t.Errorf("no dominant concepts: got %d proposals, want none", len(got))
	}
}

func TestExternalValidationRule(t *testing.T) {
	rule := &ExternalValidationRule{}
	snap := emptySnapshot()
	snap.ActivityTypeCounts = map[string]int{"practice": 8}
	for i := 0; i < 5; i++ {
		snap.States = append(snap.States, state(string(rune('a'+i)), 0.9, daysAgo(1)))
	}

	got := rule.Evaluate(snap)
	if len(got) != 1 || got[0].Priority != PriorityMedium {
		t.Fatalf("5 dominant unassessed: want one medium proposal, got %+v", got)
	}

	snap.States = snap.States[:4]
	if got := rule.Evaluate(snap); got != nil {
		t.Errorf("4 dominant: got %d proposals, want none", len(got))
	}
}

func TestDefaultRules_CodesMatchCatalog(t *testing.T) {
	catalog, err := LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	seen := map[string]bool{}
	for _, rule := range DefaultRules() {
		code := rule.Code()
		if seen[code] {
			t.Errorf("duplicate rule code %s", code)
		}
		seen[code] = true
		if _, ok := catalog.Entry(code); !ok {
			t.Errorf("rule %s has no catalog entry", code)
		}
	}
	if len(seen) != 26 {
		t.Errorf("got %d rules, want 26", len(seen))
	}
}
