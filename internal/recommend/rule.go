package recommend

import (
	"fmt"
	"time"

	"github.com/diversifica/decies-platform-sub000/internal/conceptgraph"
	"github.com/diversifica/decies-platform-sub000/internal/mastery"
	"github.com/diversifica/decies-platform-sub000/internal/store"
)

// Priority orders recommendations for tutor attention.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Recommendation statuses.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// Evidence type tags.
const (
	EvidenceMetric       = "metric"
	EvidenceMastery      = "mastery"
	EvidencePrerequisite = "prerequisite"
	EvidenceSession      = "session"
	EvidenceCount        = "count"
)

// ConceptState is the rule engine's view of one mastery state row.
type ConceptState struct {
	ConceptID      string
	Score          float64
	Status         mastery.Status
	LastPracticeAt *time.Time
	NextReviewAt   *time.Time
}

// Practiced reports whether the concept has ever been attempted.
func (c ConceptState) Practiced() bool {
	return c.LastPracticeAt != nil
}

// Snapshot is the shared read-only view one generation pass evaluates
// against. Rules never mutate it and never touch storage.
type Snapshot struct {
	StudentID string
	Subject   string
	Term      string
	Now       time.Time

	// Metrics is the latest aggregate for the scope, nil before the first
	// recalculation.
	Metrics *store.MetricAggregateRecord

	// States holds one entry per active concept with a mastery row, in
	// concept-code order.
	States []ConceptState

	Graph *conceptgraph.Graph

	// Session activity over the trailing 7 and 30 days, and the
	// activity-type distribution over the trailing 30 days.
	SessionsLast7Days  int
	SessionsLast30Days int
	ActivityTypeCounts map[string]int
}

// StateFor returns the state for a concept id, or nil if untracked.
func (s *Snapshot) StateFor(conceptID string) *ConceptState {
	for i := range s.States {
		if s.States[i].ConceptID == conceptID {
			return &s.States[i]
		}
	}
	return nil
}

// CountByStatus counts tracked concepts with the given status.
func (s *Snapshot) CountByStatus(status mastery.Status) int {
	n := 0
	for i := range s.States {
		if s.States[i].Status == status {
			n++
		}
	}
	return n
}

// DueDominant returns dominant concepts whose next review is at or before
// the snapshot time, in concept-code order.
func (s *Snapshot) DueDominant() []ConceptState {
	var due []ConceptState
	for _, st := range s.States {
		if st.Status != mastery.StatusDominant || st.NextReviewAt == nil {
			continue
		}
		if !st.NextReviewAt.After(s.Now) {
			due = append(due, st)
		}
	}
	return due
}

// Proposal is a recommendation request emitted by a rule. ConceptID is
// empty for scope-wide proposals; WindowDays zero means the engine default.
type Proposal struct {
	RuleCode    string
	Title       string
	Description string
	Priority    Priority
	ConceptID   string
	WindowDays  int
	Evidence    []store.EvidenceRecord
}

// Rule is one independently evaluated entry of the recommendation catalog.
// Evaluate reads the snapshot and may emit zero or more proposals; a rule
// must not depend on any other rule having fired.
type Rule interface {
	Code() string
	Evaluate(snap *Snapshot) []Proposal
}

// DefaultRules returns the executable rule set in catalog order.
func DefaultRules() []Rule {
	return []Rule{
		// focus
		&LowGlobalAccuracyRule{},
		&AtRiskConceptRule{},
		&PrerequisiteReinforcementRule{},
		&ConsolidationRule{},
		&SpacedReviewDueRule{},
		&ColdStartRule{},
		&StalledConceptRule{},
		&NearMasteryPushRule{},
		&DominantDecayRiskRule{},
		&RetryGapRule{},
		// strategy
		&HighHintRateRule{},
		&SlowResponseRule{},
		&RushingRule{},
		&HighAttemptsPerItemRule{},
		&HighAbandonRateRule{},
		&ErrorRateSpikeRule{},
		&CarelessSlipsRule{},
		// dosage
		&InactivityRule{},
		&LowFrequencyRule{},
		&OverloadRule{},
		&LoadReductionRule{},
		&ReviewBacklogRule{},
		&ScopeSpreadRule{},
		// validation
		&ActivityMonotonyRule{},
		&AssessmentGapRule{},
		&ExternalValidationRule{},
	}
}

func metricEvidence(key string, value float64, desc string) store.EvidenceRecord {
	return store.EvidenceRecord{
		Type:        EvidenceMetric,
		Key:         key,
		Value:       formatRate(value),
		Description: desc,
	}
}

func countEvidence(key string, value int, desc string) store.EvidenceRecord {
	return store.EvidenceRecord{
		Type:        EvidenceCount,
		Key:         key,
		Value:       fmt.Sprintf("%d", value),
		Description: desc,
	}
}

func formatRate(v float64) string {
	return fmt.Sprintf("%.4f", v)
}
