package mastery

import (
	"math"
	"time"

	"github.com/diversifica/decies-platform-sub000/internal/store"
)

// ConceptMastery is the computed proficiency estimate for one
// (student, concept) pair as of a reference time.
type ConceptMastery struct {
	Score          float64
	Status         Status
	LastPracticeAt *time.Time
	NextReviewAt   *time.Time
}

// recencyFloorDays is the horizon of the recency decay: confidence decays
// linearly over 30 days of inactivity and bottoms out at half weight.
const recencyFloorDays = 30.0

// ComputeConceptMastery scores a concept from its full practice history,
// evaluated as of now. now is explicit so the outcome evaluator can score
// at historical instants; callers must pre-filter events to started_at < now.
//
// With no events the estimate is the zero default: score 0, at_risk, no
// last practice, review due immediately.
func ComputeConceptMastery(events []store.PracticeEventRecord, now time.Time) ConceptMastery {
	if len(events) == 0 {
		due := now
		return ConceptMastery{
			Score:        0.0,
			Status:       StatusAtRisk,
			NextReviewAt: &due,
		}
	}

	total := len(events)
	correct := 0
	hinted := 0
	last := events[0].StartedAt
	for _, e := range events {
		if e.Correct {
			correct++
		}
		if e.HintUsed() {
			hinted++
		}
		if e.StartedAt.After(last) {
			last = e.StartedAt
		}
	}

	accuracy := float64(correct) / float64(total)
	hintRate := float64(hinted) / float64(total)
	daysSince := now.Sub(last).Hours() / 24
	recency := math.Max(0.5, 1.0-daysSince/recencyFloorDays)

	score := Round4(accuracy * (1 - hintRate) * recency)
	status := StatusForScore(score)
	next := NextReview(status, score, &last, now)

	return ConceptMastery{
		Score:          score,
		Status:         status,
		LastPracticeAt: &last,
		NextReviewAt:   &next,
	}
}

// Round4 rounds to 4 decimal places, the storage precision for scores.
func Round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}
