// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ActivitySession is the predicate function for activitysession builders.
type ActivitySession func(*sql.Selector)

// MasteryState is the predicate function for masterystate builders.
type MasteryState func(*sql.Selector)

// MetricAggregate is the predicate function for metricaggregate builders.
type MetricAggregate func(*sql.Selector)

// MicroConcept is the predicate function for microconcept builders.
type MicroConcept func(*sql.Selector)

// PracticeEvent is the predicate function for practiceevent builders.
type PracticeEvent func(*sql.Selector)

// PrerequisiteEdge is the predicate function for prerequisiteedge builders.
type PrerequisiteEdge func(*sql.Selector)

// Recommendation is the predicate function for recommendation builders.
type Recommendation func(*sql.Selector)

// RecommendationEvidence is the predicate function for recommendationevidence builders.
type RecommendationEvidence func(*sql.Selector)

// RecommendationOutcome is the predicate function for recommendationoutcome builders.
type RecommendationOutcome func(*sql.Selector)

// TutorDecision is the predicate function for tutordecision builders.
type TutorDecision func(*sql.Selector)
