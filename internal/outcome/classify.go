package outcome

// Success classifications for a settled outcome.
const (
	SuccessTrue    = "true"
	SuccessFalse   = "false"
	SuccessPartial = "partial"
)

// improvementThreshold is the minimum delta counted as real movement.
const improvementThreshold = 0.05

// Classify maps mastery and accuracy deltas to a success value. A nil
// delta means the metric had no data on one side of the window; it
// participates as 0.0 here but stays nil in storage.
//
// true when either delta improved by at least the threshold, false when
// both degraded by at least the threshold, partial otherwise.
func Classify(deltaMastery, deltaAccuracy *float64) string {
	dm := orZero(deltaMastery)
	da := orZero(deltaAccuracy)

	switch {
	case dm >= improvementThreshold || da >= improvementThreshold:
		return SuccessTrue
	case dm <= -improvementThreshold && da <= -improvementThreshold:
		return SuccessFalse
	default:
		return SuccessPartial
	}
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
