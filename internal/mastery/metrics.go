package mastery

import (
	"sort"

	"github.com/diversifica/decies-platform-sub000/internal/store"
)

// ScopeMetrics are windowed aggregate metrics over one (student, subject,
// term) scope.
type ScopeMetrics struct {
	Accuracy             float64
	FirstAttemptAccuracy float64
	ErrorRate            float64
	HintRate             float64
	MedianResponseMs     int
	AttemptsPerItem      float64
	AbandonRate          float64
	EventCount           int
}

// ComputeScopeMetrics aggregates a window of practice events. Zero events
// is not an error: the result is fully zeroed with error rate 1.0.
//
// The median takes the upper-middle element for even-sized samples
// (index n/2 of the sorted list) rather than averaging the two central
// elements; downstream rule thresholds are tuned to that behavior.
func ComputeScopeMetrics(events []store.PracticeEventRecord) ScopeMetrics {
	total := len(events)
	if total == 0 {
		return ScopeMetrics{ErrorRate: 1.0}
	}

	correct := 0
	hinted := 0
	abandoned := 0
	firstAttempts := 0
	firstAttemptCorrect := 0
	durations := make([]int, 0, total)
	items := make(map[string]struct{})

	for _, e := range events {
		if e.Correct {
			correct++
		}
		if e.HintUsed() {
			hinted++
		}
		if e.EndedAt == nil {
			abandoned++
		}
		if e.Attempt == 1 {
			firstAttempts++
			if e.Correct {
				firstAttemptCorrect++
			}
		}
		durations = append(durations, e.DurationMs)
		items[e.ItemID] = struct{}{}
	}

	accuracy := float64(correct) / float64(total)
	firstAccuracy := 0.0
	if firstAttempts > 0 {
		firstAccuracy = float64(firstAttemptCorrect) / float64(firstAttempts)
	}

	sort.Ints(durations)
	median := durations[len(durations)/2]

	return ScopeMetrics{
		Accuracy:             Round4(accuracy),
		FirstAttemptAccuracy: Round4(firstAccuracy),
		ErrorRate:            Round4(1 - accuracy),
		HintRate:             Round4(float64(hinted) / float64(total)),
		MedianResponseMs:     median,
		AttemptsPerItem:      Round4(float64(total) / float64(len(items))),
		AbandonRate:          Round4(float64(abandoned) / float64(total)),
		EventCount:           total,
	}
}
