package recommend

import (
	"fmt"

	"github.com/diversifica/decies-platform-sub000/internal/mastery"
	"github.com/diversifica/decies-platform-sub000/internal/store"
)

// Validation rules check that the practice mix itself is healthy: variety
// of activity types and external confirmation of mastery estimates.

const (
	monotonyMinSessions    = 5
	monotonyShareThreshold = 0.8
	assessmentActivityType = "assessment"
	externalValidationMin  = 5
)

// ActivityMonotonyRule fires when one activity type dominates recent
// sessions.
type ActivityMonotonyRule struct{}

func (r *ActivityMonotonyRule) Code() string { return "R30" }

func (r *ActivityMonotonyRule) Evaluate(snap *Snapshot) []Proposal {
	total := 0
	for _, n := range snap.ActivityTypeCounts {
		total += n
	}
	if total < monotonyMinSessions {
		return nil
	}

	topType, topCount := "", 0
	for t, n := range snap.ActivityTypeCounts {
		if n > topCount || (n == topCount && t < topType) {
			topType, topCount = t, n
		}
	}
	if float64(topCount)/float64(total) < monotonyShareThreshold {
		return nil
	}

	return []Proposal{{
		RuleCode: r.Code(),
		Title:    "Vary the activity mix",
		Description: fmt.Sprintf(
			"%d of the last %d sessions were %q. Mixing in other activity types strengthens transfer.",
			topCount, total, topType),
		Priority: PriorityLow,
		Evidence: []store.EvidenceRecord{
			{Type: EvidenceSession, Key: "dominant_type", Value: topType, Description: "Most frequent activity type"},
			countEvidence("dominant_count", topCount, "Sessions of the dominant type"),
			countEvidence("session_count", total, "Recent sessions considered"),
		},
	}}
}

// AssessmentGapRule fires when mastery exists but no assessment session
// has confirmed it recently.
type AssessmentGapRule struct{}

func (r *AssessmentGapRule) Code() string { return "R31" }

func (r *AssessmentGapRule) Evaluate(snap *Snapshot) []Proposal {
	if snap.CountByStatus(mastery.StatusDominant) == 0 {
		return nil
	}
	if snap.ActivityTypeCounts[assessmentActivityType] > 0 {
		return nil
	}
	if snap.SessionsLast30Days == 0 {
		return nil
	}
	return []Proposal{{
		RuleCode:    r.Code(),
		Title:       "Schedule an assessment",
		Description: "Concepts have reached mastery but no assessment session has run in the last 30 days. A short assessment will confirm the estimates.",
		Priority:    PriorityLow,
		Evidence: []store.EvidenceRecord{
			countEvidence("dominant_count", snap.CountByStatus(mastery.StatusDominant), "Concepts at dominant mastery"),
			countEvidence("assessment_sessions_30d", 0, "Assessment sessions in the last 30 days"),
		},
	}}
}

// ExternalValidationRule escalates when a large mastered portfolio has
// never been externally validated in the window.
type ExternalValidationRule struct{}

func (r *ExternalValidationRule) Code() string { return "R32" }

func (r *ExternalValidationRule) Evaluate(snap *Snapshot) []Proposal {
	dominant := snap.CountByStatus(mastery.StatusDominant)
	if dominant < externalValidationMin {
		return nil
	}
	if snap.ActivityTypeCounts[assessmentActivityType] > 0 {
		return nil
	}
	return []Proposal{{
		RuleCode: r.Code(),
		Title:    "Validate mastery externally",
		Description: fmt.Sprintf(
			"%d concepts are marked dominant purely from practice data. Run a formal assessment to validate the mastery picture before planning ahead.",
			dominant),
		Priority: PriorityMedium,
		Evidence: []store.EvidenceRecord{
			countEvidence("dominant_count", dominant, "Concepts at dominant mastery"),
			countEvidence("assessment_sessions_30d", 0, "Assessment sessions in the last 30 days"),
		},
	}}
}
