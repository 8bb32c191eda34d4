package mastery

import "time"

// Status classifies a mastery score.
type Status string

const (
	StatusDominant   Status = "dominant"
	StatusInProgress Status = "in_progress"
	StatusAtRisk     Status = "at_risk"
)

// Status thresholds (closed lower bounds). StatusForScore is the single
// authority; status stored anywhere must agree with it.
const (
	DominantThreshold   = 0.8
	InProgressThreshold = 0.5
)

// StatusForScore maps a mastery score to its status.
func StatusForScore(score float64) Status {
	switch {
	case score >= DominantThreshold:
		return StatusDominant
	case score >= InProgressThreshold:
		return StatusInProgress
	default:
		return StatusAtRisk
	}
}

// Base review intervals in days by status, before score clamps.
const (
	dominantIntervalDays   = 14
	inProgressIntervalDays = 7
	atRiskIntervalDays     = 2
)

// ReviewIntervalDays returns the next-review interval for a score and its
// status. Very weak scores review within a day; very strong ones can wait
// at least three weeks.
func ReviewIntervalDays(status Status, score float64) int {
	var days int
	switch status {
	case StatusDominant:
		days = dominantIntervalDays
	case StatusInProgress:
		days = inProgressIntervalDays
	default:
		days = atRiskIntervalDays
	}
	if score < 0.2 && days > 1 {
		days = 1
	}
	if score >= 0.9 && days < 21 {
		days = 21
	}
	return days
}

// NextReview schedules the next review for a concept. A concept that has
// never been practiced is due immediately.
func NextReview(status Status, score float64, lastPractice *time.Time, now time.Time) time.Time {
	if lastPractice == nil {
		return now
	}
	return lastPractice.AddDate(0, 0, ReviewIntervalDays(status, score))
}
