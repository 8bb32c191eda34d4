package recommend

import (
	"fmt"

	"github.com/diversifica/decies-platform-sub000/internal/store"
)

// Strategy rules read the windowed scope metrics and suggest how the
// student should practice, not what.

const (
	highHintRateThreshold  = 0.4
	slowResponseMedianMs   = 45000
	rushingMedianMs        = 3000
	rushingAccuracyCeiling = 0.7
	highAttemptsThreshold  = 2.5
	highAbandonThreshold   = 0.2
	errorSpikeThreshold    = 0.6
	carelessAccuracyFloor  = 0.8
	carelessFirstCeiling   = 0.6
)

// HighHintRateRule fires when hints prop up a large share of answers.
type HighHintRateRule struct{}

func (r *HighHintRateRule) Code() string { return "R11" }

func (r *HighHintRateRule) Evaluate(snap *Snapshot) []Proposal {
	m := snap.Metrics
	if m == nil || m.HintRate < highHintRateThreshold {
		return nil
	}
	return []Proposal{{
		RuleCode: r.Code(),
		Title:    "Reduce hint dependence",
		Description: fmt.Sprintf(
			"Hints were used on %.0f%% of recent items. Try unassisted attempts first and reserve hints for a second pass.",
			m.HintRate*100),
		Priority: PriorityMedium,
		Evidence: []store.EvidenceRecord{
			metricEvidence("hint_rate", m.HintRate, "Windowed hint rate"),
		},
	}}
}

// SlowResponseRule fires when the median response time is very long.
type SlowResponseRule struct{}

func (r *SlowResponseRule) Code() string { return "R12" }

func (r *SlowResponseRule) Evaluate(snap *Snapshot) []Proposal {
	m := snap.Metrics
	if m == nil || m.MedianResponseMs < slowResponseMedianMs {
		return nil
	}
	return []Proposal{{
		RuleCode: r.Code(),
		Title:    "Work on fluency",
		Description: fmt.Sprintf(
			"Median response time is %ds. Mix in shorter timed drills to build automaticity.",
			m.MedianResponseMs/1000),
		Priority: PriorityMedium,
		Evidence: []store.EvidenceRecord{
			countEvidence("median_response_ms", m.MedianResponseMs, "Windowed median response time"),
		},
	}}
}

// RushingRule fires when answers come back almost instantly and are
// frequently wrong.
type RushingRule struct{}

func (r *RushingRule) Code() string { return "R13" }

func (r *RushingRule) Evaluate(snap *Snapshot) []Proposal {
	m := snap.Metrics
	if m == nil || m.MedianResponseMs == 0 {
		return nil
	}
	if m.MedianResponseMs > rushingMedianMs || m.Accuracy >= rushingAccuracyCeiling {
		return nil
	}
	return []Proposal{{
		RuleCode: r.Code(),
		Title:    "Slow down",
		Description: fmt.Sprintf(
			"Median response time is %.1fs with %.0f%% accuracy. Answers are being rushed; ask for one careful read before answering.",
			float64(m.MedianResponseMs)/1000, m.Accuracy*100),
		Priority: PriorityMedium,
		Evidence: []store.EvidenceRecord{
			countEvidence("median_response_ms", m.MedianResponseMs, "Windowed median response time"),
			metricEvidence("accuracy", m.Accuracy, "Windowed scope accuracy"),
		},
	}}
}

// HighAttemptsPerItemRule fires when items take many tries to clear.
type HighAttemptsPerItemRule struct{}

func (r *HighAttemptsPerItemRule) Code() string { return "R14" }

func (r *HighAttemptsPerItemRule) Evaluate(snap *Snapshot) []Proposal {
	m := snap.Metrics
	if m == nil || m.AttemptsPerItem < highAttemptsThreshold {
		return nil
	}
	return []Proposal{{
		RuleCode: r.Code(),
		Title:    "Review worked examples before retrying",
		Description: fmt.Sprintf(
			"Items are taking %.1f attempts on average. Stop after a failed attempt and review a worked example instead of grinding retries.",
			m.AttemptsPerItem),
		Priority: PriorityMedium,
		Evidence: []store.EvidenceRecord{
			metricEvidence("attempts_per_item", m.AttemptsPerItem, "Windowed attempts per item"),
		},
	}}
}

// HighAbandonRateRule fires when many items are started and never finished.
type HighAbandonRateRule struct{}

func (r *HighAbandonRateRule) Code() string { return "R15" }

func (r *HighAbandonRateRule) Evaluate(snap *Snapshot) []Proposal {
	m := snap.Metrics
	if m == nil || m.AbandonRate < highAbandonThreshold {
		return nil
	}
	return []Proposal{{
		RuleCode: r.Code(),
		Title:    "Finish what is started",
		Description: fmt.Sprintf(
			"%.0f%% of recent items were abandoned mid-way. Shorter sessions with easier material may keep the student engaged to the end.",
			m.AbandonRate*100),
		Priority: PriorityHigh,
		Evidence: []store.EvidenceRecord{
			metricEvidence("abandon_rate", m.AbandonRate, "Windowed abandon rate"),
		},
	}}
}

// ErrorRateSpikeRule fires when most recent answers are wrong.
type ErrorRateSpikeRule struct{}

func (r *ErrorRateSpikeRule) Code() string { return "R16" }

func (r *ErrorRateSpikeRule) Evaluate(snap *Snapshot) []Proposal {
	m := snap.Metrics
	if m == nil || m.ErrorRate < errorSpikeThreshold {
		return nil
	}
	return []Proposal{{
		RuleCode: r.Code(),
		Title:    "Lower the difficulty",
		Description: fmt.Sprintf(
			"The error rate is %.0f%%. The current material is too hard; step down a difficulty level until accuracy recovers.",
			m.ErrorRate*100),
		Priority: PriorityHigh,
		Evidence: []store.EvidenceRecord{
			metricEvidence("error_rate", m.ErrorRate, "Windowed scope error rate"),
		},
	}}
}

// CarelessSlipsRule fires when overall accuracy is strong but first
// attempts are not: the student knows the material and slips on execution.
type CarelessSlipsRule struct{}

func (r *CarelessSlipsRule) Code() string { return "R17" }

func (r *CarelessSlipsRule) Evaluate(snap *Snapshot) []Proposal {
	m := snap.Metrics
	if m == nil || m.Accuracy < carelessAccuracyFloor || m.FirstAttemptAccuracy >= carelessFirstCeiling {
		return nil
	}
	return []Proposal{{
		RuleCode: r.Code(),
		Title:    "Check work before submitting",
		Description: fmt.Sprintf(
			"Accuracy ends at %.0f%% but first attempts land at %.0f%%. The errors look like slips, not gaps; add a quick self-check step before each answer.",
			m.Accuracy*100, m.FirstAttemptAccuracy*100),
		Priority: PriorityLow,
		Evidence: []store.EvidenceRecord{
			metricEvidence("accuracy", m.Accuracy, "Windowed scope accuracy"),
			metricEvidence("first_attempt_accuracy", m.FirstAttemptAccuracy, "First-attempt accuracy"),
		},
	}}
}
