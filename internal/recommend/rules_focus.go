package recommend

import (
	"fmt"
	"sort"
	"time"

	"github.com/diversifica/decies-platform-sub000/internal/mastery"
	"github.com/diversifica/decies-platform-sub000/internal/store"
)

// Focus rules pick what the student should work on next.

const (
	lowAccuracyThreshold   = 0.5
	prereqCandidateCeiling = 0.8
	prereqUrgentTarget     = 0.3
	prereqCandidateCap     = 2
	consolidationFloor     = 0.4
	consolidationCeiling   = 0.8
	reviewListCap          = 5
	stalledIdleDays        = 14
	nearMasteryFloor       = 0.7
	nearMasteryRecentDays  = 7
	decayRiskIdleDays      = 21
	retryGapThreshold      = 0.2
)

// LowGlobalAccuracyRule fires when overall scope accuracy is below half.
type LowGlobalAccuracyRule struct{}

func (r *LowGlobalAccuracyRule) Code() string { return "R01" }

func (r *LowGlobalAccuracyRule) Evaluate(snap *Snapshot) []Proposal {
	m := snap.Metrics
	if m == nil || m.Accuracy >= lowAccuracyThreshold {
		return nil
	}
	return []Proposal{{
		RuleCode: r.Code(),
		Title:    "Revisit fundamentals across the scope",
		Description: fmt.Sprintf(
			"Overall accuracy is %.0f%% over the last %d days. Step back to easier material and rebuild the basics before advancing.",
			m.Accuracy*100, m.WindowDays),
		Priority: PriorityHigh,
		Evidence: []store.EvidenceRecord{
			metricEvidence("accuracy", m.Accuracy, "Windowed scope accuracy"),
			metricEvidence("error_rate", m.ErrorRate, "Windowed scope error rate"),
		},
	}}
}

// AtRiskConceptRule targets every concept currently classified at risk.
type AtRiskConceptRule struct{}

func (r *AtRiskConceptRule) Code() string { return "R02" }

func (r *AtRiskConceptRule) Evaluate(snap *Snapshot) []Proposal {
	var out []Proposal
	for _, st := range snap.States {
		if st.Status != mastery.StatusAtRisk && st.Score >= lowAccuracyThreshold {
			continue
		}
		out = append(out, Proposal{
			RuleCode: r.Code(),
			Title:    fmt.Sprintf("Reinforce %s", snap.Graph.Name(st.ConceptID)),
			Description: fmt.Sprintf(
				"Mastery of %s is at risk (score %.2f). Schedule focused practice on this concept.",
				snap.Graph.Name(st.ConceptID), st.Score),
			Priority:  PriorityMedium,
			ConceptID: st.ConceptID,
			Evidence: []store.EvidenceRecord{
				{Type: EvidenceMastery, Key: "status", Value: string(st.Status), Description: "Current mastery status"},
				{Type: EvidenceMastery, Key: "score", Value: formatRate(st.Score), Description: "Current mastery score"},
			},
		})
	}
	return out
}

// PrerequisiteReinforcementRule redirects practice to the weakest direct
// prerequisites of a struggling concept. It only fires for concepts the
// student has actually attempted: an untouched at-risk concept says
// nothing about its prerequisites.
type PrerequisiteReinforcementRule struct{}

func (r *PrerequisiteReinforcementRule) Code() string { return "R03" }

func (r *PrerequisiteReinforcementRule) Evaluate(snap *Snapshot) []Proposal {
	var out []Proposal
	for _, target := range snap.States {
		if target.Status != mastery.StatusAtRisk || !target.Practiced() {
			continue
		}

		type candidate struct {
			code   string
			score  float64
			status mastery.Status
		}
		var candidates []candidate
		for _, prereq := range snap.Graph.Prerequisites(target.ConceptID) {
			score, status := 0.0, mastery.StatusAtRisk
			if st := snap.StateFor(prereq); st != nil {
				score, status = st.Score, st.Status
			}
			if score < prereqCandidateCeiling {
				candidates = append(candidates, candidate{code: prereq, score: score, status: status})
			}
		}
		if len(candidates) == 0 {
			continue
		}
		sort.Slice(candidates, func(i, j int) bool {
			if candidates[i].score != candidates[j].score {
				return candidates[i].score < candidates[j].score
			}
			return candidates[i].code < candidates[j].code
		})
		if len(candidates) > prereqCandidateCap {
			candidates = candidates[:prereqCandidateCap]
		}

		priority := PriorityMedium
		if target.Score < prereqUrgentTarget {
			priority = PriorityHigh
		}

		evidence := []store.EvidenceRecord{
			{Type: EvidenceMastery, Key: "target_concept", Value: target.ConceptID, Description: "Struggling concept"},
			{Type: EvidenceMastery, Key: "target_score", Value: formatRate(target.Score), Description: "Target mastery score"},
		}
		names := make([]string, len(candidates))
		for i, c := range candidates {
			names[i] = snap.Graph.Name(c.code)
			evidence = append(evidence, store.EvidenceRecord{
				Type:        EvidencePrerequisite,
				Key:         c.code,
				Value:       formatRate(c.score),
				Description: fmt.Sprintf("Prerequisite %s is %s", snap.Graph.Name(c.code), c.status),
			})
		}

		out = append(out, Proposal{
			RuleCode: r.Code(),
			Title:    fmt.Sprintf("Shore up prerequisites of %s", snap.Graph.Name(target.ConceptID)),
			Description: fmt.Sprintf(
				"Progress on %s is blocked by weak prerequisites: %s. Practice those first.",
				snap.Graph.Name(target.ConceptID), joinNames(names)),
			Priority:  priority,
			ConceptID: target.ConceptID,
			Evidence:  evidence,
		})
	}
	return out
}

// ConsolidationRule keeps partially learned concepts moving.
type ConsolidationRule struct{}

func (r *ConsolidationRule) Code() string { return "R04" }

func (r *ConsolidationRule) Evaluate(snap *Snapshot) []Proposal {
	var out []Proposal
	for _, st := range snap.States {
		if st.Status != mastery.StatusInProgress || !st.Practiced() {
			continue
		}
		if st.Score < consolidationFloor || st.Score >= consolidationCeiling {
			continue
		}
		out = append(out, Proposal{
			RuleCode: r.Code(),
			Title:    fmt.Sprintf("Consolidate %s", snap.Graph.Name(st.ConceptID)),
			Description: fmt.Sprintf(
				"%s is partially learned (score %.2f). A short consolidation block should push it to mastery.",
				snap.Graph.Name(st.ConceptID), st.Score),
			Priority:  PriorityMedium,
			ConceptID: st.ConceptID,
			Evidence: []store.EvidenceRecord{
				{Type: EvidenceMastery, Key: "score", Value: formatRate(st.Score), Description: "Current mastery score"},
			},
		})
	}
	return out
}

// SpacedReviewDueRule emits a single aggregated reminder for all dominant
// concepts whose scheduled review has come due.
type SpacedReviewDueRule struct{}

func (r *SpacedReviewDueRule) Code() string { return "R05" }

func (r *SpacedReviewDueRule) Evaluate(snap *Snapshot) []Proposal {
	due := snap.DueDominant()
	if len(due) == 0 {
		return nil
	}

	evidence := []store.EvidenceRecord{
		countEvidence("due_count", len(due), "Dominant concepts due for review"),
	}
	for i, st := range due {
		if i == reviewListCap {
			break
		}
		evidence = append(evidence, store.EvidenceRecord{
			Type:        EvidenceMastery,
			Key:         st.ConceptID,
			Value:       formatRate(st.Score),
			Description: fmt.Sprintf("%s due since %s", snap.Graph.Name(st.ConceptID), st.NextReviewAt.Format("2006-01-02")),
		})
	}

	return []Proposal{{
		RuleCode: r.Code(),
		Title:    "Spaced review due",
		Description: fmt.Sprintf(
			"%d mastered concepts are due for review. A quick review session keeps them from decaying.",
			len(due)),
		Priority: PriorityLow,
		Evidence: evidence,
	}}
}

// ColdStartRule proposes a diagnostic when the scope has no signal at all.
type ColdStartRule struct{}

func (r *ColdStartRule) Code() string { return "R06" }

func (r *ColdStartRule) Evaluate(snap *Snapshot) []Proposal {
	if len(snap.States) > 0 || snap.Metrics != nil {
		return nil
	}
	return []Proposal{{
		RuleCode:    r.Code(),
		Title:       "Run a placement diagnostic",
		Description: "There is no practice history for this scope yet. Start with a short diagnostic to locate the student.",
		Priority:    PriorityMedium,
		Evidence: []store.EvidenceRecord{
			countEvidence("tracked_concepts", 0, "Concepts with mastery data"),
		},
	}}
}

// StalledConceptRule flags in-progress concepts that have gone quiet.
type StalledConceptRule struct{}

func (r *StalledConceptRule) Code() string { return "R07" }

func (r *StalledConceptRule) Evaluate(snap *Snapshot) []Proposal {
	var out []Proposal
	for _, st := range snap.States {
		if st.Status != mastery.StatusInProgress || !st.Practiced() {
			continue
		}
		idle := snap.Now.Sub(*st.LastPracticeAt)
		if idle <= stalledIdleDays*24*time.Hour {
			continue
		}
		out = append(out, Proposal{
			RuleCode: r.Code(),
			Title:    fmt.Sprintf("Resume work on %s", snap.Graph.Name(st.ConceptID)),
			Description: fmt.Sprintf(
				"%s was in progress but has not been practiced for %d days. Pick it back up before the gap widens.",
				snap.Graph.Name(st.ConceptID), int(idle.Hours()/24)),
			Priority:  PriorityMedium,
			ConceptID: st.ConceptID,
			Evidence: []store.EvidenceRecord{
				countEvidence("idle_days", int(idle.Hours()/24), "Days since last practice"),
				{Type: EvidenceMastery, Key: "score", Value: formatRate(st.Score), Description: "Current mastery score"},
			},
		})
	}
	return out
}

// NearMasteryPushRule nudges concepts sitting just under the dominant
// threshold while they are still warm.
type NearMasteryPushRule struct{}

func (r *NearMasteryPushRule) Code() string { return "R08" }

func (r *NearMasteryPushRule) Evaluate(snap *Snapshot) []Proposal {
	var out []Proposal
	for _, st := range snap.States {
		if !st.Practiced() || st.Score < nearMasteryFloor || st.Score >= mastery.DominantThreshold {
			continue
		}
		if snap.Now.Sub(*st.LastPracticeAt) > nearMasteryRecentDays*24*time.Hour {
			continue
		}
		out = append(out, Proposal{
			RuleCode: r.Code(),
			Title:    fmt.Sprintf("Push %s over the line", snap.Graph.Name(st.ConceptID)),
			Description: fmt.Sprintf(
				"%s is close to mastery (score %.2f) and was practiced recently. One more focused session should finish it.",
				snap.Graph.Name(st.ConceptID), st.Score),
			Priority:  PriorityLow,
			ConceptID: st.ConceptID,
			Evidence: []store.EvidenceRecord{
				{Type: EvidenceMastery, Key: "score", Value: formatRate(st.Score), Description: "Current mastery score"},
			},
		})
	}
	return out
}

// DominantDecayRiskRule warns about mastered concepts left idle past the
// longest review interval.
type DominantDecayRiskRule struct{}

func (r *DominantDecayRiskRule) Code() string { return "R09" }

func (r *DominantDecayRiskRule) Evaluate(snap *Snapshot) []Proposal {
	var out []Proposal
	for _, st := range snap.States {
		if st.Status != mastery.StatusDominant || !st.Practiced() {
			continue
		}
		idle := snap.Now.Sub(*st.LastPracticeAt)
		if idle <= decayRiskIdleDays*24*time.Hour {
			continue
		}
		out = append(out, Proposal{
			RuleCode: r.Code(),
			Title:    fmt.Sprintf("Refresh %s", snap.Graph.Name(st.ConceptID)),
			Description: fmt.Sprintf(
				"%s was mastered but has been idle for %d days. Its estimate is decaying; a refresher will confirm retention.",
				snap.Graph.Name(st.ConceptID), int(idle.Hours()/24)),
			Priority:  PriorityLow,
			ConceptID: st.ConceptID,
			Evidence: []store.EvidenceRecord{
				countEvidence("idle_days", int(idle.Hours()/24), "Days since last practice"),
			},
		})
	}
	return out
}

// RetryGapRule fires when overall accuracy leans heavily on retries.
type RetryGapRule struct{}

func (r *RetryGapRule) Code() string { return "R10" }

func (r *RetryGapRule) Evaluate(snap *Snapshot) []Proposal {
	m := snap.Metrics
	if m == nil || m.Accuracy-m.FirstAttemptAccuracy < retryGapThreshold {
		return nil
	}
	return []Proposal{{
		RuleCode: r.Code(),
		Title:    "First attempts lag behind retries",
		Description: fmt.Sprintf(
			"Overall accuracy is %.0f%% but first-attempt accuracy is only %.0f%%. Answers rely on retries; slow the pace and emphasize getting it right the first time.",
			m.Accuracy*100, m.FirstAttemptAccuracy*100),
		Priority: PriorityMedium,
		Evidence: []store.EvidenceRecord{
			metricEvidence("accuracy", m.Accuracy, "Windowed scope accuracy"),
			metricEvidence("first_attempt_accuracy", m.FirstAttemptAccuracy, "First-attempt accuracy"),
		},
	}}
}

func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return names[0] + " and " + names[1]
	}
}
