package recommend

import (
	"fmt"

	"github.com/diversifica/decies-platform-sub000/internal/mastery"
	"github.com/diversifica/decies-platform-sub000/internal/store"
)

// Dosage rules look at session cadence and portfolio size rather than
// answer quality.

const (
	lowFrequencyFloor     = 4
	overloadWeekSessions  = 14
	loadReductionAtRisk   = 3
	reviewBacklogDue      = 10
	scopeSpreadTracked    = 20
	scopeSpreadNotMastery = 15
)

// InactivityRule fires when a previously active student has gone a full
// week without a session.
type InactivityRule struct{}

func (r *InactivityRule) Code() string { return "R20" }

func (r *InactivityRule) Evaluate(snap *Snapshot) []Proposal {
	if snap.SessionsLast7Days > 0 || snap.SessionsLast30Days == 0 {
		return nil
	}
	return []Proposal{{
		RuleCode:    r.Code(),
		Title:       "Get back to practicing",
		Description: "No sessions in the last 7 days despite recent activity before that. Schedule a short session this week to restart the habit.",
		Priority:    PriorityHigh,
		Evidence: []store.EvidenceRecord{
			countEvidence("sessions_7d", snap.SessionsLast7Days, "Sessions in the last 7 days"),
			countEvidence("sessions_30d", snap.SessionsLast30Days, "Sessions in the last 30 days"),
		},
	}}
}

// LowFrequencyRule fires when practice happens, but rarely.
type LowFrequencyRule struct{}

func (r *LowFrequencyRule) Code() string { return "R21" }

func (r *LowFrequencyRule) Evaluate(snap *Snapshot) []Proposal {
	n := snap.SessionsLast30Days
	if n == 0 || n >= lowFrequencyFloor {
		return nil
	}
	return []Proposal{{
		RuleCode: r.Code(),
		Title:    "Practice more often",
		Description: fmt.Sprintf(
			"Only %d sessions in the last 30 days. Aim for at least one short session per week; frequency matters more than length.",
			n),
		Priority: PriorityMedium,
		Evidence: []store.EvidenceRecord{
			countEvidence("sessions_30d", n, "Sessions in the last 30 days"),
		},
	}}
}

// OverloadRule fires when the weekly session count is unsustainably high.
type OverloadRule struct{}

func (r *OverloadRule) Code() string { return "R22" }

func (r *OverloadRule) Evaluate(snap *Snapshot) []Proposal {
	if snap.SessionsLast7Days < overloadWeekSessions {
		return nil
	}
	return []Proposal{{
		RuleCode: r.Code(),
		Title:    "Watch for burnout",
		Description: fmt.Sprintf(
			"%d sessions in the last 7 days is a heavy load. Consider consolidating into fewer, more deliberate sessions.",
			snap.SessionsLast7Days),
		Priority: PriorityLow,
		Evidence: []store.EvidenceRecord{
			countEvidence("sessions_7d", snap.SessionsLast7Days, "Sessions in the last 7 days"),
		},
	}}
}

// LoadReductionRule fires when too many concepts are at risk at once.
type LoadReductionRule struct{}

func (r *LoadReductionRule) Code() string { return "R23" }

func (r *LoadReductionRule) Evaluate(snap *Snapshot) []Proposal {
	atRisk := snap.CountByStatus(mastery.StatusAtRisk)
	if atRisk < loadReductionAtRisk {
		return nil
	}
	return []Proposal{{
		RuleCode: r.Code(),
		Title:    "Narrow the focus",
		Description: fmt.Sprintf(
			"%d concepts are at risk at the same time. Pause new material and concentrate on two of them until they stabilize.",
			atRisk),
		Priority: PriorityMedium,
		Evidence: []store.EvidenceRecord{
			countEvidence("at_risk_count", atRisk, "Concepts currently at risk"),
		},
	}}
}

// ReviewBacklogRule fires when due reviews have piled up.
type ReviewBacklogRule struct{}

func (r *ReviewBacklogRule) Code() string { return "R24" }

func (r *ReviewBacklogRule) Evaluate(snap *Snapshot) []Proposal {
	due := len(snap.DueDominant())
	if due < reviewBacklogDue {
		return nil
	}
	return []Proposal{{
		RuleCode: r.Code(),
		Title:    "Clear the review backlog",
		Description: fmt.Sprintf(
			"%d mastered concepts are overdue for review. Dedicate a full session to reviews before the backlog grows further.",
			due),
		Priority: PriorityMedium,
		Evidence: []store.EvidenceRecord{
			countEvidence("due_count", due, "Dominant concepts due for review"),
		},
	}}
}

// ScopeSpreadRule fires when practice is spread across many concepts
// without finishing them.
type ScopeSpreadRule struct{}

func (r *ScopeSpreadRule) Code() string { return "R25" }

func (r *ScopeSpreadRule) Evaluate(snap *Snapshot) []Proposal {
	tracked := len(snap.States)
	notDominant := tracked - snap.CountByStatus(mastery.StatusDominant)
	if tracked < scopeSpreadTracked || notDominant <= scopeSpreadNotMastery {
		return nil
	}
	return []Proposal{{
		RuleCode: r.Code(),
		Title:    "Finish concepts before starting new ones",
		Description: fmt.Sprintf(
			"%d of %d tracked concepts are still unmastered. Practice is spread too thin; close out a handful before opening more.",
			notDominant, tracked),
		Priority: PriorityMedium,
		Evidence: []store.EvidenceRecord{
			countEvidence("tracked_concepts", tracked, "Concepts with mastery data"),
			countEvidence("not_dominant", notDominant, "Tracked concepts not yet dominant"),
		},
	}}
}
