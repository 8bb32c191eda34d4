package mastery

import (
	"testing"
	"time"

	"github.com/diversifica/decies-platform-sub000/internal/store"
)

func scopeEvent(itemID string, attempt, durationMs int, correct bool, hint string, ended bool) store.PracticeEventRecord {
	startedAt := testNow.Add(-time.Hour)
	e := store.PracticeEventRecord{
		StudentID:  "s1",
		SessionID:  "sess1",
		ItemID:     itemID,
		StartedAt:  startedAt,
		DurationMs: durationMs,
		Attempt:    attempt,
		Correct:    correct,
		Hint:       hint,
		Difficulty: 3,
	}
	if ended {
		endedAt := startedAt.Add(time.Duration(durationMs) * time.Millisecond)
		e.EndedAt = &endedAt
	}
	return e
}

func TestComputeScopeMetrics_ZeroEvents(t *testing.T) {
	got := ComputeScopeMetrics(nil)

	if got.ErrorRate != 1.0 {
		t.Errorf("ErrorRate = %v, want 1.0", got.ErrorRate)
	}
	if got.Accuracy != 0 || got.HintRate != 0 || got.MedianResponseMs != 0 || got.EventCount != 0 {
		t.Errorf("zero-event aggregate not zeroed: %+v", got)
	}
}

func TestComputeScopeMetrics_Accuracy(t *testing.T) {
	events := []store.PracticeEventRecord{
		scopeEvent("a", 1, 10000, true, "none", true),
		scopeEvent("b", 1, 10000, true, "none", true),
		scopeEvent("c", 1, 10000, false, "none", true),
		scopeEvent("d", 1, 10000, false, "none", true),
	}

	got := ComputeScopeMetrics(events)
	if got.Accuracy != 0.5 {
		t.Errorf("Accuracy = %v, want 0.5", got.Accuracy)
	}
	if got.ErrorRate != 0.5 {
		t.Errorf("ErrorRate = %v, want 0.5", got.ErrorRate)
	}
	if got.EventCount != 4 {
		t.Errorf("EventCount = %d, want 4", got.EventCount)
	}
}

func TestComputeScopeMetrics_FirstAttemptAccuracy(t *testing.T) {
	// First attempts: a (wrong), b (right). Retries don't count.
	events := []store.PracticeEventRecord{
		scopeEvent("a", 1, 10000, false, "none", true),
		scopeEvent("a", 2, 10000, true, "none", true),
		scopeEvent("a", 3, 10000, true, "none", true),
		scopeEvent("b", 1, 10000, true, "none", true),
	}

	got := ComputeScopeMetrics(events)
	if got.FirstAttemptAccuracy != 0.5 {
		t.Errorf("FirstAttemptAccuracy = %v, want 0.5", got.FirstAttemptAccuracy)
	}
	if got.Accuracy != 0.75 {
		t.Errorf("Accuracy = %v, want 0.75", got.Accuracy)
	}
}

func TestComputeScopeMetrics_MedianUpperMiddle(t *testing.T) {
	// Even count: the upper-middle element (index n/2) is the median.
	events := []store.PracticeEventRecord{
		scopeEvent("a", 1, 10000, true, "none", true),
		scopeEvent("b", 1, 20000, true, "none", true),
		scopeEvent("c", 1, 30000, true, "none", true),
		scopeEvent("d", 1, 40000, true, "none", true),
	}

	got := ComputeScopeMetrics(events)
	if got.MedianResponseMs != 30000 {
		t.Errorf("MedianResponseMs = %d, want 30000", got.MedianResponseMs)
	}
}

func TestComputeScopeMetrics_AttemptsPerItem(t *testing.T) {
	// 5 events over 2 distinct items.
	events := []store.PracticeEventRecord{
		scopeEvent("a", 1, 10000, false, "none", true),
		scopeEvent("a", 2, 10000, false, "none", true),
		scopeEvent("a", 3, 10000, true, "none", true),
		scopeEvent("b", 1, 10000, false, "none", true),
		scopeEvent("b", 2, 10000, true, "none", true),
	}

	got := ComputeScopeMetrics(events)
	if got.AttemptsPerItem != 2.5 {
		t.Errorf("AttemptsPerItem = %v, want 2.5", got.AttemptsPerItem)
	}
}

func TestComputeScopeMetrics_HintAndAbandonRates(t *testing.T) {
	events := []store.PracticeEventRecord{
		scopeEvent("a", 1, 10000, true, "step-hint", true),
		scopeEvent("b", 1, 10000, true, "none", false),
		scopeEvent("c", 1, 10000, true, "", true),
		scopeEvent("d", 1, 10000, true, "none", true),
	}

	got := ComputeScopeMetrics(events)
	if got.HintRate != 0.25 {
		t.Errorf("HintRate = %v, want 0.25", got.HintRate)
	}
	if got.AbandonRate != 0.25 {
		t.Errorf("AbandonRate = %v, want 0.25", got.AbandonRate)
	}
}
