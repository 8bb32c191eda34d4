package store

import (
	"context"
	"errors"
	"time"

	"github.com/diversifica/decies-platform-sub000/ent"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("store: not found")

// QueryOpts bounds event and session queries.
// From is inclusive, To is exclusive; zero values disable the bound.
type QueryOpts struct {
	Limit int
	From  time.Time
	To    time.Time
}

// PracticeEventRecord is one immutable practice attempt.
// ConceptID is empty for attempts not tied to a microconcept.
// EndedAt is nil when the attempt was abandoned.
type PracticeEventRecord struct {
	StudentID  string
	ConceptID  string
	SessionID  string
	ItemID     string
	StartedAt  time.Time
	EndedAt    *time.Time
	DurationMs int
	Attempt    int
	Correct    bool
	Hint       string
	Difficulty int
}

// HintUsed reports whether a hint was actually consumed. The recording
// boundary writes the sentinel "none" (or nothing) when no hint was shown.
func (e PracticeEventRecord) HintUsed() bool {
	return e.Hint != "" && e.Hint != "none"
}

// SessionRecord is one activity sitting.
type SessionRecord struct {
	SessionID    string
	StudentID    string
	Subject      string
	Term         string
	ActivityType string
	StartedAt    time.Time
	EndedAt      *time.Time
}

// ConceptRecord is a catalog microconcept.
type ConceptRecord struct {
	Code    string
	Name    string
	Subject string
	Term    string
	Active  bool
}

// EdgeRecord is a directed prerequisite edge (concept -> prerequisite).
type EdgeRecord struct {
	ConceptCode      string
	PrerequisiteCode string
}

// MasteryStateRecord is the per (student, concept) proficiency row.
type MasteryStateRecord struct {
	StudentID      string
	ConceptID      string
	Score          float64
	Status         string
	LastPracticeAt *time.Time
	NextReviewAt   *time.Time
	EngineVersion  string
	UpdatedAt      time.Time
}

// MetricAggregateRecord is the per (student, subject, term) metrics row.
type MetricAggregateRecord struct {
	StudentID            string
	Subject              string
	Term                 string
	WindowDays           int
	Accuracy             float64
	FirstAttemptAccuracy float64
	ErrorRate            float64
	HintRate             float64
	MedianResponseMs     int
	AttemptsPerItem      float64
	AbandonRate          float64
	ComputedAt           time.Time
	EngineVersion        string
}

// EvidenceRecord is one evidence item; order within a recommendation is
// the slice order.
type EvidenceRecord struct {
	Type        string
	Key         string
	Value       string
	Description string
}

// RecommendationRecord is one rule-engine recommendation with its evidence.
// ConceptID is empty for scope-wide recommendations.
type RecommendationRecord struct {
	ID             string
	StudentID      string
	ConceptID      string
	RuleCode       string
	Priority       string
	Status         string
	Title          string
	Description    string
	WindowDays     int
	EngineVersion  string
	RulesetVersion string
	GeneratedAt    time.Time
	UpdatedAt      time.Time
	Evidence       []EvidenceRecord
}

// DecisionRecord is a tutor's accept/reject call on a recommendation.
type DecisionRecord struct {
	ID               string
	RecommendationID string
	TutorID          string
	Decision         string
	Notes            string
	DecidedAt        time.Time
}

// DecidedRecommendation pairs an accepted recommendation with its decision.
type DecidedRecommendation struct {
	Recommendation RecommendationRecord
	Decision       DecisionRecord
}

// OutcomeRecord is the settled measurement of an accepted recommendation.
// Delta fields are nil when the underlying metric had no data on either
// side of the window.
type OutcomeRecord struct {
	ID               string
	RecommendationID string
	WindowStart      time.Time
	WindowEnd        time.Time
	Success          string
	DeltaMastery     *float64
	DeltaAccuracy    *float64
	DeltaHintRate    *float64
	ComputedAt       time.Time
	EngineVersion    string
	RulesetVersion   string
}

// EventRepo provides read access to the append-only practice event stream.
// Appends exist for the recording boundary and tests; the engine only reads.
type EventRepo interface {
	AppendPracticeEvent(ctx context.Context, rec PracticeEventRecord) error

	// EventsByConcept returns events for (student, concept) ordered by
	// started_at ascending, bounded by opts.
	EventsByConcept(ctx context.Context, studentID, conceptID string, opts QueryOpts) ([]PracticeEventRecord, error)

	// EventsByScope returns events for the student whose session belongs to
	// (subject, term), ordered by started_at ascending, bounded by opts.
	EventsByScope(ctx context.Context, studentID, subject, term string, opts QueryOpts) ([]PracticeEventRecord, error)
}

// SessionRepo provides access to activity sessions.
type SessionRepo interface {
	RecordSession(ctx context.Context, rec SessionRecord) error
	SessionsByScope(ctx context.Context, studentID, subject, term string, opts QueryOpts) ([]SessionRecord, error)
}

// ConceptRepo reads the concept catalog and prerequisite graph. The catalog
// is owned by an external boundary and may change between calls; nothing
// here is cached.
type ConceptRepo interface {
	CreateConcept(ctx context.Context, rec ConceptRecord) error
	CreateEdge(ctx context.Context, rec EdgeRecord) error

	// ActiveConcepts lists active concepts in code order. An empty subject
	// or term leaves that dimension unfiltered.
	ActiveConcepts(ctx context.Context, subject, term string) ([]ConceptRecord, error)
	ConceptByCode(ctx context.Context, code string) (*ConceptRecord, error)

	// EdgesForConcepts returns prerequisite edges whose source concept is in
	// codes. Direct edges only; the relation may contain cycles.
	EdgesForConcepts(ctx context.Context, codes []string) ([]EdgeRecord, error)
}

// MasteryRepo persists mastery states, one row per (student, concept).
type MasteryRepo interface {
	UpsertState(ctx context.Context, rec MasteryStateRecord) error
	StatesForConcepts(ctx context.Context, studentID string, conceptIDs []string) ([]MasteryStateRecord, error)
	StateFor(ctx context.Context, studentID, conceptID string) (*MasteryStateRecord, error)
}

// MetricsRepo persists metric aggregates, one row per (student, scope).
type MetricsRepo interface {
	UpsertAggregate(ctx context.Context, rec MetricAggregateRecord) error
	LatestAggregate(ctx context.Context, studentID, subject, term string) (*MetricAggregateRecord, error)
}

// RecommendationRepo persists recommendations and their evidence.
type RecommendationRepo interface {
	// FindPending returns the pending recommendation for the exact
	// (student, rule, concept) tuple. An empty conceptID matches only
	// concept-less recommendations. ErrNotFound when absent.
	FindPending(ctx context.Context, studentID, ruleCode, conceptID string) (*RecommendationRecord, error)

	// CreateRecommendation writes the record and its evidence, assigning an
	// id if unset, and returns the stored record.
	CreateRecommendation(ctx context.Context, rec RecommendationRecord) (*RecommendationRecord, error)

	GetRecommendation(ctx context.Context, id string) (*RecommendationRecord, error)
	ListRecommendations(ctx context.Context, studentID, status string) ([]RecommendationRecord, error)
	UpdateStatus(ctx context.Context, id, status string, at time.Time) error
}

// DecisionRepo persists tutor decisions.
type DecisionRepo interface {
	CreateDecision(ctx context.Context, rec DecisionRecord) (*DecisionRecord, error)
	DecisionByRecommendation(ctx context.Context, recommendationID string) (*DecisionRecord, error)

	// AcceptedForTutor returns the student's accepted recommendations whose
	// decision was made by the tutor, paired with the decisions.
	AcceptedForTutor(ctx context.Context, tutorID, studentID string) ([]DecidedRecommendation, error)
}

// OutcomeRepo persists recommendation outcomes.
type OutcomeRepo interface {
	OutcomeByRecommendation(ctx context.Context, recommendationID string) (*OutcomeRecord, error)

	// UpsertOutcome creates or overwrites the outcome for its
	// recommendation. Reports whether a new row was created.
	UpsertOutcome(ctx context.Context, rec OutcomeRecord) (created bool, err error)
}

// Repos bundles all repositories bound to one client (root or tx).
type Repos struct {
	Events          EventRepo
	Sessions        SessionRepo
	Concepts        ConceptRepo
	Mastery         MasteryRepo
	Metrics         MetricsRepo
	Recommendations RecommendationRepo
	Decisions       DecisionRepo
	Outcomes        OutcomeRepo
}

func newRepos(client *ent.Client) *Repos {
	return &Repos{
		Events:          &eventRepo{client: client},
		Sessions:        &sessionRepo{client: client},
		Concepts:        &conceptRepo{client: client},
		Mastery:         &masteryRepo{client: client},
		Metrics:         &metricsRepo{client: client},
		Recommendations: &recommendationRepo{client: client},
		Decisions:       &decisionRepo{client: client},
		Outcomes:        &outcomeRepo{client: client},
	}
}

// DB is the persistence contract the engine components depend on. The
// concrete Store implements it; tests substitute fakes.
type DB interface {
	Repos() *Repos
	WithTx(ctx context.Context, fn func(*Repos) error) error
}
