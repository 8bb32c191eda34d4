package recommend

import (
	"testing"
)

func TestHighHintRateRule(t *testing.T) {
	rule := &HighHintRateRule{}
	snap := emptySnapshot()

	m := aggregate(0.7)
	m.HintRate = 0.39
	snap.Metrics = m
	if got := rule.Evaluate(snap); got != nil {
		t.Errorf("hint rate 0.39: got %d proposals, want none", len(got))
	}

	m.HintRate = 0.4
	got := rule.Evaluate(snap)
	if len(got) != 1 || got[0].Priority != PriorityMedium {
		t.Fatalf("hint rate 0.4: want one medium proposal, got %+v", got)
	}
}

func TestSlowResponseRule(t *testing.T) {
	rule := &SlowResponseRule{}
	snap := emptySnapshot()

	m := aggregate(0.7)
	m.MedianResponseMs = 44999
	snap.Metrics = m
	if got := rule.Evaluate(snap); got != nil {
		t.Errorf("median 44999: got %d proposals, want none", len(got))
	}

	m.MedianResponseMs = 45000
	if got := rule.Evaluate(snap); len(got) != 1 {
		t.Fatalf("median 45000: got %d proposals, want 1", len(got))
	}
}

func TestRushingRule(t *testing.T) {
	rule := &RushingRule{}
	snap := emptySnapshot()

	m := aggregate(0.6)
	m.MedianResponseMs = 2500
	snap.Metrics = m
	if got := rule.Evaluate(snap); len(got) != 1 {
		t.Fatalf("fast and wrong: got %d proposals, want 1", len(got))
	}

	m.Accuracy = 0.9
	if got := rule.Evaluate(snap); got != nil {
		t.Errorf("fast but accurate: got %d proposals, want none", len(got))
	}

	// A zeroed aggregate (no events) must not look like rushing.
	m.Accuracy = 0
	m.MedianResponseMs = 0
	if got := rule.Evaluate(snap); got != nil {
		t.Errorf("empty aggregate: got %d proposals, want none", len(got))
	}
}

func TestHighAttemptsPerItemRule(t *testing.T) {
	rule := &HighAttemptsPerItemRule{}
	snap := emptySnapshot()

	m := aggregate(0.7)
	m.AttemptsPerItem = 2.5
	snap.Metrics = m
	if got := rule.Evaluate(snap); len(got) != 1 {
		t.Fatalf("attempts 2.5: got %d proposals, want 1", len(got))
	}

	m.AttemptsPerItem = 2.4
	if got := rule.Evaluate(snap); got != nil {
		t.Errorf("attempts 2.4: got %d proposals, want none", len(got))
	}
}

func TestHighAbandonRateRule(t *testing.T) {
	rule := &HighAbandonRateRule{}
	snap := emptySnapshot()

	m := aggregate(0.7)
	m.AbandonRate = 0.2
	snap.Metrics = m
	got := rule.Evaluate(snap)
	if len(got) != 1 || got[0].Priority != PriorityHigh {
		t.Fatalf("abandon 0.2: want one high proposal, got %+v", got)
	}
}

func TestErrorRateSpikeRule(t *testing.T) {
	rule := &ErrorRateSpikeRule{}
	snap := emptySnapshot()

	snap.Metrics = aggregate(0.4) // error rate 0.6
	got := rule.Evaluate(snap)
	if len(got) != 1 || got[0].Priority != PriorityHigh {
		t.Fatalf("error rate 0.6: want one high proposal, got %+v", got)
	}

	snap.Metrics = aggregate(0.45)
	if got := rule.Evaluate(snap); got != nil {
		t.Errorf("error rate 0.55: got %d proposals, want none", len(got))
	}
}

func TestCarelessSlipsRule(t *testing.T) {
	rule := &CarelessSlipsRule{}
	snap := emptySnapshot()

	m := aggregate(0.85)
	m.FirstAttemptAccuracy = 0.55
	snap.Metrics = m
	if got := rule.Evaluate(snap); len(got) != 1 {
		t.Fatalf("strong retries, weak firsts: got %d proposals, want 1", len(got))
	}

	m.FirstAttemptAccuracy = 0.7
	if got := rule.Evaluate(snap); got != nil {
		t.Errorf("solid first attempts: got %d proposals, want none", len(got))
	}
}
