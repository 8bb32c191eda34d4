package mastery

import (
	"testing"
	"time"

	"github.com/diversifica/decies-platform-sub000/internal/store"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func event(startedAt time.Time, correct bool, hint string) store.PracticeEventRecord {
	ended := startedAt.Add(30 * time.Second)
	return store.PracticeEventRecord{
		StudentID:  "s1",
		ConceptID:  "mat.frac.add",
		SessionID:  "sess1",
		ItemID:     "item1",
		StartedAt:  startedAt,
		EndedAt:    &ended,
		DurationMs: 30000,
		Attempt:    1,
		Correct:    correct,
		Hint:       hint,
		Difficulty: 3,
	}
}

func TestComputeConceptMastery_ZeroEvents(t *testing.T) {
	got := ComputeConceptMastery(nil, testNow)

	if got.Score != 0.0 {
		t.Errorf("Score = %v, want 0.0", got.Score)
	}
	if got.Status != StatusAtRisk {
		t.Errorf("Status = %q, want %q", got.Status, StatusAtRisk)
	}
	if got.LastPracticeAt != nil {
		t.Errorf("LastPracticeAt = %v, want nil", got.LastPracticeAt)
	}
	if got.NextReviewAt == nil || !got.NextReviewAt.Equal(testNow) {
		t.Errorf("NextReviewAt = %v, want %v", got.NextReviewAt, testNow)
	}
}

func TestComputeConceptMastery_FreshPerfect(t *testing.T) {
	// 4 correct, no hints, practiced today: score = 1.0 * 1.0 * 1.0.
	events := []store.PracticeEventRecord{
		event(testNow.Add(-3*time.Hour), true, "none"),
		event(testNow.Add(-2*time.Hour), true, ""),
		event(testNow.Add(-90*time.Minute), true, "none"),
		event(testNow.Add(-time.Hour), true, "none"),
	}

	got := ComputeConceptMastery(events, testNow)
	if got.Score < 0.99 {
		t.Errorf("Score = %v, want ~1.0", got.Score)
	}
	if got.Status != StatusDominant {
		t.Errorf("Status = %q, want %q", got.Status, StatusDominant)
	}
	// Score >= 0.9 clamps the review interval to at least 21 days.
	wantReview := got.LastPracticeAt.AddDate(0, 0, 21)
	if !got.NextReviewAt.Equal(wantReview) {
		t.Errorf("NextReviewAt = %v, want %v", got.NextReviewAt, wantReview)
	}
}

func TestComputeConceptMastery_HintsDiscount(t *testing.T) {
	// 2 of 4 hinted: accuracy 1.0, hint rate 0.5. The last attempt lands
	// exactly at the reference time so recency is 1.0 and the score is
	// exactly the hint discount, right on the in-progress boundary.
	events := []store.PracticeEventRecord{
		event(testNow.Add(-3*time.Hour), true, "none"),
		event(testNow.Add(-2*time.Hour), true, "shown-step"),
		event(testNow.Add(-time.Hour), true, "full-solution"),
		event(testNow, true, ""),
	}

	got := ComputeConceptMastery(events, testNow)
	if got.Score != 0.5 {
		t.Errorf("Score = %v, want 0.5", got.Score)
	}
	if got.Status != StatusInProgress {
		t.Errorf("Status = %q, want %q", got.Status, StatusInProgress)
	}
}

func TestComputeConceptMastery_RecencyDecay(t *testing.T) {
	// Perfect history, last practiced 15 days ago: recency = 1 - 15/30 = 0.5.
	events := []store.PracticeEventRecord{
		event(testNow.AddDate(0, 0, -16), true, "none"),
		event(testNow.AddDate(0, 0, -15), true, "none"),
	}

	got := ComputeConceptMastery(events, testNow)
	if got.Score != 0.5 {
		t.Errorf("Score = %v, want 0.5", got.Score)
	}
}

func TestComputeConceptMastery_RecencyFloor(t *testing.T) {
	// Practiced 90 days ago: decay bottoms out at 0.5, never lower.
	events := []store.PracticeEventRecord{
		event(testNow.AddDate(0, 0, -90), true, "none"),
	}

	got := ComputeConceptMastery(events, testNow)
	if got.Score != 0.5 {
		t.Errorf("Score = %v, want 0.5 (floor)", got.Score)
	}
}

func TestComputeConceptMastery_LastPracticeIsMaxStart(t *testing.T) {
	latest := testNow.Add(-time.Hour)
	events := []store.PracticeEventRecord{
		event(latest, true, "none"),
		event(testNow.AddDate(0, 0, -10), false, "none"),
		event(testNow.AddDate(0, 0, -5), true, "none"),
	}

	got := ComputeConceptMastery(events, testNow)
	if got.LastPracticeAt == nil || !got.LastPracticeAt.Equal(latest) {
		t.Errorf("LastPracticeAt = %v, want %v", got.LastPracticeAt, latest)
	}
}

func TestComputeConceptMastery_WeakScoreReviewsNextDay(t *testing.T) {
	// 0 of 3 correct: score 0, interval clamped to 1 day.
	events := []store.PracticeEventRecord{
		event(testNow.Add(-3*time.Hour), false, "none"),
		event(testNow.Add(-2*time.Hour), false, "none"),
		event(testNow.Add(-time.Hour), false, "none"),
	}

	got := ComputeConceptMastery(events, testNow)
	if got.Score != 0.0 {
		t.Errorf("Score = %v, want 0.0", got.Score)
	}
	wantReview := got.LastPracticeAt.AddDate(0, 0, 1)
	if !got.NextReviewAt.Equal(wantReview) {
		t.Errorf("NextReviewAt = %v, want %v", got.NextReviewAt, wantReview)
	}
}

func TestStatusForScore_Thresholds(t *testing.T) {
	tests := []struct {
		score float64
		want  Status
	}{
		{0.0, StatusAtRisk},
		{0.4999, StatusAtRisk},
		{0.5, StatusInProgress},
		{0.7999, StatusInProgress},
		{0.8, StatusDominant},
		{1.0, StatusDominant},
	}
	for _, tt := range tests {
		if got := StatusForScore(tt.score); got != tt.want {
			t.Errorf("StatusForScore(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestReviewIntervalDays(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		score  float64
		want   int
	}{
		{"dominant base", StatusDominant, 0.85, 14},
		{"in progress base", StatusInProgress, 0.6, 7},
		{"at risk base", StatusAtRisk, 0.3, 2},
		{"weak clamp", StatusAtRisk, 0.1, 1},
		{"strong clamp", StatusDominant, 0.95, 21},
	}
	for _, tt := range tests {
		if got := ReviewIntervalDays(tt.status, tt.score); got != tt.want {
			t.Errorf("%s: ReviewIntervalDays(%q, %v) = %d, want %d",
				tt.name, tt.status, tt.score, got, tt.want)
		}
	}
}
