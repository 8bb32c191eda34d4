// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/diversifica/decies-platform-sub000/ent/activitysession"
	"github.com/diversifica/decies-platform-sub000/ent/masterystate"
	"github.com/diversifica/decies-platform-sub000/ent/metricaggregate"
	"github.com/diversifica/decies-platform-sub000/ent/microconcept"
	"github.com/diversifica/decies-platform-sub000/ent/practiceevent"
	"github.com/diversifica/decies-platform-sub000/ent/predicate"
	"github.com/diversifica/decies-platform-sub000/ent/prerequisiteedge"
	"github.com/diversifica/decies-platform-sub000/ent/recommendation"
	"github.com/diversifica/decies-platform-sub000/ent/recommendationevidence"
	"github.com/diversifica/decies-platform-sub000/ent/recommendationoutcome"
	"github.com/diversifica/decies-platform-sub000/ent/tutordecision"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeActivitySession        = "ActivitySession"
	TypeMasteryState           = "MasteryState"
	TypeMetricAggregate        = "MetricAggregate"
	TypeMicroConcept           = "MicroConcept"
	TypePracticeEvent          = "PracticeEvent"
	TypePrerequisiteEdge       = "PrerequisiteEdge"
	TypeRecommendation         = "Recommendation"
	TypeRecommendationEvidence = "RecommendationEvidence"
	TypeRecommendationOutcome  = "RecommendationOutcome"
	TypeTutorDecision          = "TutorDecision"
)

// ActivitySessionMutation represents an operation that mutates the ActivitySession nodes in the graph.
type ActivitySessionMutation struct {
	config
	op            Op
	typ           string
	id            *int
	session_id    *string
	student_id    *string
	subject       *string
	term          *string
	activity_type *string
	started_at    *time.Time
	ended_at      *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ActivitySession, error)
	predicates    []predicate.ActivitySession
}

var _ ent.Mutation = (*ActivitySessionMutation)(nil)

// activitysessionOption allows management of the mutation configuration using functional options.
type activitysessionOption func(*ActivitySessionMutation)

// newActivitySessionMutation creates new mutation for the ActivitySession entity.
func newActivitySessionMutation(c config, op Op, opts ...activitysessionOption) *ActivitySessionMutation {
	m := &ActivitySessionMutation{
		config:        c,
		op:            op,
		typ:           TypeActivitySession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withActivitySessionID sets the ID field of the mutation.
func withActivitySessionID(id int) activitysessionOption {
	return func(m *ActivitySessionMutation) {
		var (
			err   error
			once  sync.Once
			value *ActivitySession
		)
		m.oldValue = func(ctx context.Context) (*ActivitySession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ActivitySession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withActivitySession sets the old ActivitySession of the mutation.
func withActivitySession(node *ActivitySession) activitysessionOption {
	return func(m *ActivitySessionMutation) {
		m.oldValue = func(context.Context) (*ActivitySession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ActivitySessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ActivitySessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ActivitySessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ActivitySessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ActivitySession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ActivitySessionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ActivitySessionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ActivitySession entity.
// If the ActivitySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivitySessionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ActivitySessionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetStudentID sets the "student_id" field.
func (m *ActivitySessionMutation) SetStudentID(s string) {
	m.student_id = &s
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *ActivitySessionMutation) StudentID() (r string, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the ActivitySession entity.
// If the ActivitySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivitySessionMutation) OldStudentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *ActivitySessionMutation) ResetStudentID() {
	m.student_id = nil
}

// SetSubject sets the "subject" field.
func (m *ActivitySessionMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *ActivitySessionMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the ActivitySession entity.
// If the ActivitySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivitySessionMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *ActivitySessionMutation) ResetSubject() {
	m.subject = nil
}

// SetTerm sets the "term" field.
func (m *ActivitySessionMutation) SetTerm(s string) {
	m.term = &s
}

// Term returns the value of the "term" field in the mutation.
func (m *ActivitySessionMutation) Term() (r string, exists bool) {
	v := m.term
	if v == nil {
		return
	}
	return *v, true
}

// OldTerm returns the old "term" field's value of the ActivitySession entity.
// If the ActivitySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivitySessionMutation) OldTerm(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTerm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTerm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTerm: %w", err)
	}
	return oldValue.Term, nil
}

// ResetTerm resets all changes to the "term" field.
func (m *ActivitySessionMutation) ResetTerm() {
	m.term = nil
}

// SetActivityType sets the "activity_type" field.
func (m *ActivitySessionMutation) SetActivityType(s string) {
	m.activity_type = &s
}

// ActivityType returns the value of the "activity_type" field in the mutation.
func (m *ActivitySessionMutation) ActivityType() (r string, exists bool) {
	v := m.activity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldActivityType returns the old "activity_type" field's value of the ActivitySession entity.
// If the ActivitySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivitySessionMutation) OldActivityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivityType: %w", err)
	}
	return oldValue.ActivityType, nil
}

// ResetActivityType resets all changes to the "activity_type" field.
func (m *ActivitySessionMutation) ResetActivityType() {
	m.activity_type = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ActivitySessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ActivitySessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ActivitySession entity.
// If the ActivitySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivitySessionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ActivitySessionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *ActivitySessionMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *ActivitySessionMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the ActivitySession entity.
// If the ActivitySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivitySessionMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *ActivitySessionMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[activitysession.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *ActivitySessionMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[activitysession.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *ActivitySessionMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, activitysession.FieldEndedAt)
}

// Where appends a list predicates to the ActivitySessionMutation builder.
func (m *ActivitySessionMutation) Where(ps ...predicate.ActivitySession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ActivitySessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ActivitySessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ActivitySession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ActivitySessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ActivitySessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ActivitySession).
func (m *ActivitySessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ActivitySessionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.session_id != nil {
		fields = append(fields, activitysession.FieldSessionID)
	}
	if m.student_id != nil {
		fields = append(fields, activitysession.FieldStudentID)
	}
	if m.subject != nil {
		fields = append(fields, activitysession.FieldSubject)
	}
	if m.term != nil {
		fields = append(fields, activitysession.FieldTerm)
	}
	if m.activity_type != nil {
		fields = append(fields, activitysession.FieldActivityType)
	}
	if m.started_at != nil {
		fields = append(fields, activitysession.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, activitysession.FieldEndedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ActivitySessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case activitysession.FieldSessionID:
		return m.SessionID()
	case activitysession.FieldStudentID:
		return m.StudentID()
	case activitysession.FieldSubject:
		return m.Subject()
	case activitysession.FieldTerm:
		return m.Term()
	case activitysession.FieldActivityType:
		return m.ActivityType()
	case activitysession.FieldStartedAt:
		return m.StartedAt()
	case activitysession.FieldEndedAt:
		return m.EndedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ActivitySessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case activitysession.FieldSessionID:
		return m.OldSessionID(ctx)
	case activitysession.FieldStudentID:
		return m.OldStudentID(ctx)
	case activitysession.FieldSubject:
		return m.OldSubject(ctx)
	case activitysession.FieldTerm:
		return m.OldTerm(ctx)
	case activitysession.FieldActivityType:
		return m.OldActivityType(ctx)
	case activitysession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case activitysession.FieldEndedAt:
		return m.OldEndedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ActivitySession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActivitySessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case activitysession.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case activitysession.FieldStudentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case activitysession.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case activitysession.FieldTerm:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTerm(v)
		return nil
	case activitysession.FieldActivityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivityType(v)
		return nil
	case activitysession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case activitysession.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ActivitySession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ActivitySessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ActivitySessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActivitySessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ActivitySession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ActivitySessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(activitysession.FieldEndedAt) {
		fields = append(fields, activitysession.FieldEndedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ActivitySessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ActivitySessionMutation) ClearField(name string) error {
	switch name {
	case activitysession.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	}
	return fmt.Errorf("unknown ActivitySession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ActivitySessionMutation) ResetField(name string) error {
	switch name {
	case activitysession.FieldSessionID:
		m.ResetSessionID()
		return nil
	case activitysession.FieldStudentID:
		m.ResetStudentID()
		return nil
	case activitysession.FieldSubject:
		m.ResetSubject()
		return nil
	case activitysession.FieldTerm:
		m.ResetTerm()
		return nil
	case activitysession.FieldActivityType:
		m.ResetActivityType()
		return nil
	case activitysession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case activitysession.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	}
	return fmt.Errorf("unknown ActivitySession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ActivitySessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ActivitySessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ActivitySessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ActivitySessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ActivitySessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ActivitySessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ActivitySessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ActivitySession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ActivitySessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ActivitySession edge %s", name)
}

// MasteryStateMutation represents an operation that mutates the MasteryState nodes in the graph.
type MasteryStateMutation struct {
	config
	op               Op
	typ              string
	id               *int
	student_id       *string
	concept_id       *string
	score            *float64
	addscore         *float64
	status           *string
	last_practice_at *time.Time
	next_review_at   *time.Time
	engine_version   *string
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*MasteryState, error)
	predicates       []predicate.MasteryState
}

var _ ent.Mutation = (*MasteryStateMutation)(nil)

// masterystateOption allows management of the mutation configuration using functional options.
type masterystateOption func(*MasteryStateMutation)

// newMasteryStateMutation creates new mutation for the MasteryState entity.
func newMasteryStateMutation(c config, op Op, opts ...masterystateOption) *MasteryStateMutation {
	m := &MasteryStateMutation{
		config:        c,
		op:            op,
		typ:           TypeMasteryState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMasteryStateID sets the ID field of the mutation.
func withMasteryStateID(id int) masterystateOption {
	return func(m *MasteryStateMutation) {
		var (
			err   error
			once  sync.Once
			value *MasteryState
		)
		m.oldValue = func(ctx context.Context) (*MasteryState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MasteryState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMasteryState sets the old MasteryState of the mutation.
func withMasteryState(node *MasteryState) masterystateOption {
	return func(m *MasteryStateMutation) {
		m.oldValue = func(context.Context) (*MasteryState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MasteryStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MasteryStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MasteryStateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MasteryStateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MasteryState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudentID sets the "student_id" field.
func (m *MasteryStateMutation) SetStudentID(s string) {
	m.student_id = &s
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *MasteryStateMutation) StudentID() (r string, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the MasteryState entity.
// If the MasteryState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryStateMutation) OldStudentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *MasteryStateMutation) ResetStudentID() {
	m.student_id = nil
}

// SetConceptID sets the "concept_id" field.
func (m *MasteryStateMutation) SetConceptID(s string) {
	m.concept_id = &s
}

// ConceptID returns the value of the "concept_id" field in the mutation.
func (m *MasteryStateMutation) ConceptID() (r string, exists bool) {
	v := m.concept_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptID returns the old "concept_id" field's value of the MasteryState entity.
// If the MasteryState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryStateMutation) OldConceptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptID: %w", err)
	}
	return oldValue.ConceptID, nil
}

// ResetConceptID resets all changes to the "concept_id" field.
func (m *MasteryStateMutation) ResetConceptID() {
	m.concept_id = nil
}

// SetScore sets the "score" field.
func (m *MasteryStateMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *MasteryStateMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the MasteryState entity.
// If the MasteryState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryStateMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *MasteryStateMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *MasteryStateMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *MasteryStateMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetStatus sets the "status" field.
func (m *MasteryStateMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *MasteryStateMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the MasteryState entity.
// If the MasteryState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryStateMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *MasteryStateMutation) ResetStatus() {
	m.status = nil
}

// SetLastPracticeAt sets the "last_practice_at" field.
func (m *MasteryStateMutation) SetLastPracticeAt(t time.Time) {
	m.last_practice_at = &t
}

// LastPracticeAt returns the value of the "last_practice_at" field in the mutation.
func (m *MasteryStateMutation) LastPracticeAt() (r time.Time, exists bool) {
	v := m.last_practice_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastPracticeAt returns the old "last_practice_at" field's value of the MasteryState entity.
// If the MasteryState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryStateMutation) OldLastPracticeAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastPracticeAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastPracticeAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastPracticeAt: %w", err)
	}
	return oldValue.LastPracticeAt, nil
}

// ClearLastPracticeAt clears the value of the "last_practice_at" field.
func (m *MasteryStateMutation) ClearLastPracticeAt() {
	m.last_practice_at = nil
	m.clearedFields[masterystate.FieldLastPracticeAt] = struct{}{}
}

// LastPracticeAtCleared returns if the "last_practice_at" field was cleared in this mutation.
func (m *MasteryStateMutation) LastPracticeAtCleared() bool {
	_, ok := m.clearedFields[masterystate.FieldLastPracticeAt]
	return ok
}

// ResetLastPracticeAt resets all changes to the "last_practice_at" field.
func (m *MasteryStateMutation) ResetLastPracticeAt() {
	m.last_practice_at = nil
	delete(m.clearedFields, masterystate.FieldLastPracticeAt)
}

// SetNextReviewAt sets the "next_review_at" field.
func (m *MasteryStateMutation) SetNextReviewAt(t time.Time) {
	m.next_review_at = &t
}

// NextReviewAt returns the value of the "next_review_at" field in the mutation.
func (m *MasteryStateMutation) NextReviewAt() (r time.Time, exists bool) {
	v := m.next_review_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextReviewAt returns the old "next_review_at" field's value of the MasteryState entity.
// If the MasteryState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryStateMutation) OldNextReviewAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextReviewAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextReviewAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextReviewAt: %w", err)
	}
	return oldValue.NextReviewAt, nil
}

// ClearNextReviewAt clears the value of the "next_review_at" field.
func (m *MasteryStateMutation) ClearNextReviewAt() {
	m.next_review_at = nil
	m.clearedFields[masterystate.FieldNextReviewAt] = struct{}{}
}

// NextReviewAtCleared returns if the "next_review_at" field was cleared in this mutation.
func (m *MasteryStateMutation) NextReviewAtCleared() bool {
	_, ok := m.clearedFields[masterystate.FieldNextReviewAt]
	return ok
}

// ResetNextReviewAt resets all changes to the "next_review_at" field.
func (m *MasteryStateMutation) ResetNextReviewAt() {
	m.next_review_at = nil
	delete(m.clearedFields, masterystate.FieldNextReviewAt)
}

// SetEngineVersion sets the "engine_version" field.
func (m *MasteryStateMutation) SetEngineVersion(s string) {
	m.engine_version = &s
}

// EngineVersion returns the value of the "engine_version" field in the mutation.
func (m *MasteryStateMutation) EngineVersion() (r string, exists bool) {
	v := m.engine_version
	if v == nil {
		return
	}
	return *v, true
}

// OldEngineVersion returns the old "engine_version" field's value of the MasteryState entity.
// If the MasteryState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryStateMutation) OldEngineVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngineVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngineVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngineVersion: %w", err)
	}
	return oldValue.EngineVersion, nil
}

// ResetEngineVersion resets all changes to the "engine_version" field.
func (m *MasteryStateMutation) ResetEngineVersion() {
	m.engine_version = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MasteryStateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MasteryStateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MasteryState entity.
// If the MasteryState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryStateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MasteryStateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the MasteryStateMutation builder.
func (m *MasteryStateMutation) Where(ps ...predicate.MasteryState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MasteryStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MasteryStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MasteryState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MasteryStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MasteryStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MasteryState).
func (m *MasteryStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MasteryStateMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.student_id != nil {
		fields = append(fields, masterystate.FieldStudentID)
	}
	if m.concept_id != nil {
		fields = append(fields, masterystate.FieldConceptID)
	}
	if m.score != nil {
		fields = append(fields, masterystate.FieldScore)
	}
	if m.status != nil {
		fields = append(fields, masterystate.FieldStatus)
	}
	if m.last_practice_at != nil {
		fields = append(fields, masterystate.FieldLastPracticeAt)
	}
	if m.next_review_at != nil {
		fields = append(fields, masterystate.FieldNextReviewAt)
	}
	if m.engine_version != nil {
		fields = append(fields, masterystate.FieldEngineVersion)
	}
	if m.updated_at != nil {
		fields = append(fields, masterystate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MasteryStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case masterystate.FieldStudentID:
		return m.StudentID()
	case masterystate.FieldConceptID:
		return m.ConceptID()
	case masterystate.FieldScore:
		return m.Score()
	case masterystate.FieldStatus:
		return m.Status()
	case masterystate.FieldLastPracticeAt:
		return m.LastPracticeAt()
	case masterystate.FieldNextReviewAt:
		return m.NextReviewAt()
	case masterystate.FieldEngineVersion:
		return m.EngineVersion()
	case masterystate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MasteryStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case masterystate.FieldStudentID:
		return m.OldStudentID(ctx)
	case masterystate.FieldConceptID:
		return m.OldConceptID(ctx)
	case masterystate.FieldScore:
		return m.OldScore(ctx)
	case masterystate.FieldStatus:
		return m.OldStatus(ctx)
	case masterystate.FieldLastPracticeAt:
		return m.OldLastPracticeAt(ctx)
	case masterystate.FieldNextReviewAt:
		return m.OldNextReviewAt(ctx)
	case masterystate.FieldEngineVersion:
		return m.OldEngineVersion(ctx)
	case masterystate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MasteryState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MasteryStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case masterystate.FieldStudentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case masterystate.FieldConceptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptID(v)
		return nil
	case masterystate.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case masterystate.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case masterystate.FieldLastPracticeAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastPracticeAt(v)
		return nil
	case masterystate.FieldNextReviewAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextReviewAt(v)
		return nil
	case masterystate.FieldEngineVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngineVersion(v)
		return nil
	case masterystate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MasteryState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MasteryStateMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, masterystate.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MasteryStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case masterystate.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MasteryStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case masterystate.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown MasteryState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MasteryStateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(masterystate.FieldLastPracticeAt) {
		fields = append(fields, masterystate.FieldLastPracticeAt)
	}
	if m.FieldCleared(masterystate.FieldNextReviewAt) {
		fields = append(fields, masterystate.FieldNextReviewAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MasteryStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MasteryStateMutation) ClearField(name string) error {
	switch name {
	case masterystate.FieldLastPracticeAt:
		m.ClearLastPracticeAt()
		return nil
	case masterystate.FieldNextReviewAt:
		m.ClearNextReviewAt()
		return nil
	}
	return fmt.Errorf("unknown MasteryState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MasteryStateMutation) ResetField(name string) error {
	switch name {
	case masterystate.FieldStudentID:
		m.ResetStudentID()
		return nil
	case masterystate.FieldConceptID:
		m.ResetConceptID()
		return nil
	case masterystate.FieldScore:
		m.ResetScore()
		return nil
	case masterystate.FieldStatus:
		m.ResetStatus()
		return nil
	case masterystate.FieldLastPracticeAt:
		m.ResetLastPracticeAt()
		return nil
	case masterystate.FieldNextReviewAt:
		m.ResetNextReviewAt()
		return nil
	case masterystate.FieldEngineVersion:
		m.ResetEngineVersion()
		return nil
	case masterystate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown MasteryState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MasteryStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MasteryStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MasteryStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MasteryStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MasteryStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MasteryStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MasteryStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MasteryState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MasteryStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MasteryState edge %s", name)
}

// MetricAggregateMutation represents an operation that mutates the MetricAggregate nodes in the graph.
type MetricAggregateMutation struct {
	config
	op                        Op
	typ                       string
	id                        *int
	student_id                *string
	subject                   *string
	term                      *string
	window_days               *int
	addwindow_days            *int
	accuracy                  *float64
	addaccuracy               *float64
	first_attempt_accuracy    *float64
	addfirst_attempt_accuracy *float64
	error_rate                *float64
	adderror_rate             *float64
	hint_rate                 *float64
	addhint_rate              *float64
	median_response_ms        *int
	addmedian_response_ms     *int
	attempts_per_item         *float64
	addattempts_per_item      *float64
	abandon_rate              *float64
	addabandon_rate           *float64
	computed_at               *time.Time
	engine_version            *string
	clearedFields             map[string]struct{}
	done                      bool
	oldValue                  func(context.Context) (*MetricAggregate, error)
	predicates                []predicate.MetricAggregate
}

var _ ent.Mutation = (*MetricAggregateMutation)(nil)

// metricaggregateOption allows management of the mutation configuration using functional options.
type metricaggregateOption func(*MetricAggregateMutation)

// newMetricAggregateMutation creates new mutation for the MetricAggregate entity.
func newMetricAggregateMutation(c config, op Op, opts ...metricaggregateOption) *MetricAggregateMutation {
	m := &MetricAggregateMutation{
		config:        c,
		op:            op,
		typ:           TypeMetricAggregate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMetricAggregateID sets the ID field of the mutation.
func withMetricAggregateID(id int) metricaggregateOption {
	return func(m *MetricAggregateMutation) {
		var (
			err   error
			once  sync.Once
			value *MetricAggregate
		)
		m.oldValue = func(ctx context.Context) (*MetricAggregate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MetricAggregate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMetricAggregate sets the old MetricAggregate of the mutation.
func withMetricAggregate(node *MetricAggregate) metricaggregateOption {
	return func(m *MetricAggregateMutation) {
		m.oldValue = func(context.Context) (*MetricAggregate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MetricAggregateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MetricAggregateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MetricAggregateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MetricAggregateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MetricAggregate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudentID sets the "student_id" field.
func (m *MetricAggregateMutation) SetStudentID(s string) {
	m.student_id = &s
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *MetricAggregateMutation) StudentID() (r string, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the MetricAggregate entity.
// If the MetricAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricAggregateMutation) OldStudentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *MetricAggregateMutation) ResetStudentID() {
	m.student_id = nil
}

// SetSubject sets the "subject" field.
func (m *MetricAggregateMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *MetricAggregateMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the MetricAggregate entity.
// If the MetricAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricAggregateMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *MetricAggregateMutation) ResetSubject() {
	m.subject = nil
}

// SetTerm sets the "term" field.
func (m *MetricAggregateMutation) SetTerm(s string) {
	m.term = &s
}

// Term returns the value of the "term" field in the mutation.
func (m *MetricAggregateMutation) Term() (r string, exists bool) {
	v := m.term
	if v == nil {
		return
	}
	return *v, true
}

// OldTerm returns the old "term" field's value of the MetricAggregate entity.
// If the MetricAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricAggregateMutation) OldTerm(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTerm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTerm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTerm: %w", err)
	}
	return oldValue.Term, nil
}

// ResetTerm resets all changes to the "term" field.
func (m *MetricAggregateMutation) ResetTerm() {
	m.term = nil
}

// SetWindowDays sets the "window_days" field.
func (m *MetricAggregateMutation) SetWindowDays(i int) {
	m.window_days = &i
	m.addwindow_days = nil
}

// WindowDays returns the value of the "window_days" field in the mutation.
func (m *MetricAggregateMutation) WindowDays() (r int, exists bool) {
	v := m.window_days
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowDays returns the old "window_days" field's value of the MetricAggregate entity.
// If the MetricAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricAggregateMutation) OldWindowDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowDays: %w", err)
	}
	return oldValue.WindowDays, nil
}

// AddWindowDays adds i to the "window_days" field.
func (m *MetricAggregateMutation) AddWindowDays(i int) {
	if m.addwindow_days != nil {
		*m.addwindow_days += i
	} else {
		m.addwindow_days = &i
	}
}

// AddedWindowDays returns the value that was added to the "window_days" field in this mutation.
func (m *MetricAggregateMutation) AddedWindowDays() (r int, exists bool) {
	v := m.addwindow_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetWindowDays resets all changes to the "window_days" field.
func (m *MetricAggregateMutation) ResetWindowDays() {
	m.window_days = nil
	m.addwindow_days = nil
}

// SetAccuracy sets the "accuracy" field.
func (m *MetricAggregateMutation) SetAccuracy(f float64) {
	m.accuracy = &f
	m.addaccuracy = nil
}

// Accuracy returns the value of the "accuracy" field in the mutation.
func (m *MetricAggregateMutation) Accuracy() (r float64, exists bool) {
	v := m.accuracy
	if v == nil {
		return
	}
	return *v, true
}

// OldAccuracy returns the old "accuracy" field's value of the MetricAggregate entity.
// If the MetricAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricAggregateMutation) OldAccuracy(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccuracy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccuracy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccuracy: %w", err)
	}
	return oldValue.Accuracy, nil
}

// AddAccuracy adds f to the "accuracy" field.
func (m *MetricAggregateMutation) AddAccuracy(f float64) {
	if m.addaccuracy != nil {
		*m.addaccuracy += f
	} else {
		m.addaccuracy = &f
	}
}

// AddedAccuracy returns the value that was added to the "accuracy" field in this mutation.
func (m *MetricAggregateMutation) AddedAccuracy() (r float64, exists bool) {
	v := m.addaccuracy
	if v == nil {
		return
	}
	return *v, true
}

// ResetAccuracy resets all changes to the "accuracy" field.
func (m *MetricAggregateMutation) ResetAccuracy() {
	m.accuracy = nil
	m.addaccuracy = nil
}

// SetFirstAttemptAccuracy sets the "first_attempt_accuracy" field.
func (m *MetricAggregateMutation) SetFirstAttemptAccuracy(f float64) {
	m.first_attempt_accuracy = &f
	m.addfirst_attempt_accuracy = nil
}

// FirstAttemptAccuracy returns the value of the "first_attempt_accuracy" field in the mutation.
func (m *MetricAggregateMutation) FirstAttemptAccuracy() (r float64, exists bool) {
	v := m.first_attempt_accuracy
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstAttemptAccuracy returns the old "first_attempt_accuracy" field's value of the MetricAggregate entity.
// If the MetricAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricAggregateMutation) OldFirstAttemptAccuracy(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstAttemptAccuracy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstAttemptAccuracy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstAttemptAccuracy: %w", err)
	}
	return oldValue.FirstAttemptAccuracy, nil
}

// AddFirstAttemptAccuracy adds f to the "first_attempt_accuracy" field.
func (m *MetricAggregateMutation) AddFirstAttemptAccuracy(f float64) {
	if m.addfirst_attempt_accuracy != nil {
		*m.addfirst_attempt_accuracy += f
	} else {
		m.addfirst_attempt_accuracy = &f
	}
}

// AddedFirstAttemptAccuracy returns the value that was added to the "first_attempt_accuracy" field in this mutation.
func (m *MetricAggregateMutation) AddedFirstAttemptAccuracy() (r float64, exists bool) {
	v := m.addfirst_attempt_accuracy
	if v == nil {
		return
	}
	return *v, true
}

// ResetFirstAttemptAccuracy resets all changes to the "first_attempt_accuracy" field.
func (m *MetricAggregateMutation) ResetFirstAttemptAccuracy() {
	m.first_attempt_accuracy = nil
	m.addfirst_attempt_accuracy = nil
}

// SetErrorRate sets the "error_rate" field.
func (m *MetricAggregateMutation) SetErrorRate(f float64) {
	m.error_rate = &f
	m.adderror_rate = nil
}

// ErrorRate returns the value of the "error_rate" field in the mutation.
func (m *MetricAggregateMutation) ErrorRate() (r float64, exists bool) {
	v := m.error_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorRate returns the old "error_rate" field's value of the MetricAggregate entity.
// If the MetricAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricAggregateMutation) OldErrorRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorRate: %w", err)
	}
	return oldValue.ErrorRate, nil
}

// AddErrorRate adds f to the "error_rate" field.
func (m *MetricAggregateMutation) AddErrorRate(f float64) {
	if m.adderror_rate != nil {
		*m.adderror_rate += f
	} else {
		m.adderror_rate = &f
	}
}

// AddedErrorRate returns the value that was added to the "error_rate" field in this mutation.
func (m *MetricAggregateMutation) AddedErrorRate() (r float64, exists bool) {
	v := m.adderror_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetErrorRate resets all changes to the "error_rate" field.
func (m *MetricAggregateMutation) ResetErrorRate() {
	m.error_rate = nil
	m.adderror_rate = nil
}

// SetHintRate sets the "hint_rate" field.
func (m *MetricAggregateMutation) SetHintRate(f float64) {
	m.hint_rate = &f
	m.addhint_rate = nil
}

// HintRate returns the value of the "hint_rate" field in the mutation.
func (m *MetricAggregateMutation) HintRate() (r float64, exists bool) {
	v := m.hint_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldHintRate returns the old "hint_rate" field's value of the MetricAggregate entity.
// If the MetricAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricAggregateMutation) OldHintRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHintRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHintRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHintRate: %w", err)
	}
	return oldValue.HintRate, nil
}

// AddHintRate adds f to the "hint_rate" field.
func (m *MetricAggregateMutation) AddHintRate(f float64) {
	if m.addhint_rate != nil {
		*m.addhint_rate += f
	} else {
		m.addhint_rate = &f
	}
}

// AddedHintRate returns the value that was added to the "hint_rate" field in this mutation.
func (m *MetricAggregateMutation) AddedHintRate() (r float64, exists bool) {
	v := m.addhint_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetHintRate resets all changes to the "hint_rate" field.
func (m *MetricAggregateMutation) ResetHintRate() {
	m.hint_rate = nil
	m.addhint_rate = nil
}

// SetMedianResponseMs sets the "median_response_ms" field.
func (m *MetricAggregateMutation) SetMedianResponseMs(i int) {
	m.median_response_ms = &i
	m.addmedian_response_ms = nil
}

// MedianResponseMs returns the value of the "median_response_ms" field in the mutation.
func (m *MetricAggregateMutation) MedianResponseMs() (r int, exists bool) {
	v := m.median_response_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldMedianResponseMs returns the old "median_response_ms" field's value of the MetricAggregate entity.
// If the MetricAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricAggregateMutation) OldMedianResponseMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMedianResponseMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMedianResponseMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMedianResponseMs: %w", err)
	}
	return oldValue.MedianResponseMs, nil
}

// AddMedianResponseMs adds i to the "median_response_ms" field.
func (m *MetricAggregateMutation) AddMedianResponseMs(i int) {
	if m.addmedian_response_ms != nil {
		*m.addmedian_response_ms += i
	} else {
		m.addmedian_response_ms = &i
	}
}

// AddedMedianResponseMs returns the value that was added to the "median_response_ms" field in this mutation.
func (m *MetricAggregateMutation) AddedMedianResponseMs() (r int, exists bool) {
	v := m.addmedian_response_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetMedianResponseMs resets all changes to the "median_response_ms" field.
func (m *MetricAggregateMutation) ResetMedianResponseMs() {
	m.median_response_ms = nil
	m.addmedian_response_ms = nil
}

// SetAttemptsPerItem sets the "attempts_per_item" field.
func (m *MetricAggregateMutation) SetAttemptsPerItem(f float64) {
	m.attempts_per_item = &f
	m.addattempts_per_item = nil
}

// AttemptsPerItem returns the value of the "attempts_per_item" field in the mutation.
func (m *MetricAggregateMutation) AttemptsPerItem() (r float64, exists bool) {
	v := m.attempts_per_item
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptsPerItem returns the old "attempts_per_item" field's value of the MetricAggregate entity.
// If the MetricAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricAggregateMutation) OldAttemptsPerItem(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptsPerItem is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptsPerItem requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptsPerItem: %w", err)
	}
	return oldValue.AttemptsPerItem, nil
}

// AddAttemptsPerItem adds f to the "attempts_per_item" field.
func (m *MetricAggregateMutation) AddAttemptsPerItem(f float64) {
	if m.addattempts_per_item != nil {
		*m.addattempts_per_item += f
	} else {
		m.addattempts_per_item = &f
	}
}

// AddedAttemptsPerItem returns the value that was added to the "attempts_per_item" field in this mutation.
func (m *MetricAggregateMutation) AddedAttemptsPerItem() (r float64, exists bool) {
	v := m.addattempts_per_item
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptsPerItem resets all changes to the "attempts_per_item" field.
func (m *MetricAggregateMutation) ResetAttemptsPerItem() {
	m.attempts_per_item = nil
	m.addattempts_per_item = nil
}

// SetAbandonRate sets the "abandon_rate" field.
func (m *MetricAggregateMutation) SetAbandonRate(f float64) {
	m.abandon_rate = &f
	m.addabandon_rate = nil
}

// AbandonRate returns the value of the "abandon_rate" field in the mutation.
func (m *MetricAggregateMutation) AbandonRate() (r float64, exists bool) {
	v := m.abandon_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldAbandonRate returns the old "abandon_rate" field's value of the MetricAggregate entity.
// If the MetricAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricAggregateMutation) OldAbandonRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAbandonRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAbandonRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAbandonRate: %w", err)
	}
	return oldValue.AbandonRate, nil
}

// AddAbandonRate adds f to the "abandon_rate" field.
func (m *MetricAggregateMutation) AddAbandonRate(f float64) {
	if m.addabandon_rate != nil {
		*m.addabandon_rate += f
	} else {
		m.addabandon_rate = &f
	}
}

// AddedAbandonRate returns the value that was added to the "abandon_rate" field in this mutation.
func (m *MetricAggregateMutation) AddedAbandonRate() (r float64, exists bool) {
	v := m.addabandon_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetAbandonRate resets all changes to the "abandon_rate" field.
func (m *MetricAggregateMutation) ResetAbandonRate() {
	m.abandon_rate = nil
	m.addabandon_rate = nil
}

// SetComputedAt sets the "computed_at" field.
func (m *MetricAggregateMutation) SetComputedAt(t time.Time) {
	m.computed_at = &t
}

// ComputedAt returns the value of the "computed_at" field in the mutation.
func (m *MetricAggregateMutation) ComputedAt() (r time.Time, exists bool) {
	v := m.computed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldComputedAt returns the old "computed_at" field's value of the MetricAggregate entity.
// If the MetricAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricAggregateMutation) OldComputedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComputedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComputedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComputedAt: %w", err)
	}
	return oldValue.ComputedAt, nil
}

// ResetComputedAt resets all changes to the "computed_at" field.
func (m *MetricAggregateMutation) ResetComputedAt() {
	m.computed_at = nil
}

// SetEngineVersion sets the "engine_version" field.
func (m *MetricAggregateMutation) SetEngineVersion(s string) {
	m.engine_version = &s
}

// EngineVersion returns the value of the "engine_version" field in the mutation.
func (m *MetricAggregateMutation) EngineVersion() (r string, exists bool) {
	v := m.engine_version
	if v == nil {
		return
	}
	return *v, true
}

// OldEngineVersion returns the old "engine_version" field's value of the MetricAggregate entity.
// If the MetricAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricAggregateMutation) OldEngineVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngineVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngineVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngineVersion: %w", err)
	}
	return oldValue.EngineVersion, nil
}

// ResetEngineVersion resets all changes to the "engine_version" field.
func (m *MetricAggregateMutation) ResetEngineVersion() {
	m.engine_version = nil
}

// Where appends a list predicates to the MetricAggregateMutation builder.
func (m *MetricAggregateMutation) Where(ps ...predicate.MetricAggregate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MetricAggregateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MetricAggregateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MetricAggregate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MetricAggregateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MetricAggregateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MetricAggregate).
func (m *MetricAggregateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MetricAggregateMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.student_id != nil {
		fields = append(fields, metricaggregate.FieldStudentID)
	}
	if m.subject != nil {
		fields = append(fields, metricaggregate.FieldSubject)
	}
	if m.term != nil {
		fields = append(fields, metricaggregate.FieldTerm)
	}
	if m.window_days != nil {
		fields = append(fields, metricaggregate.FieldWindowDays)
	}
	if m.accuracy != nil {
		fields = append(fields, metricaggregate.FieldAccuracy)
	}
	if m.first_attempt_accuracy != nil {
		fields = append(fields, metricaggregate.FieldFirstAttemptAccuracy)
	}
	if m.error_rate != nil {
		fields = append(fields, metricaggregate.FieldErrorRate)
	}
	if m.hint_rate != nil {
		fields = append(fields, metricaggregate.FieldHintRate)
	}
	if m.median_response_ms != nil {
		fields = append(fields, metricaggregate.FieldMedianResponseMs)
	}
	if m.attempts_per_item != nil {
		fields = append(fields, metricaggregate.FieldAttemptsPerItem)
	}
	if m.abandon_rate != nil {
		fields = append(fields, metricaggregate.FieldAbandonRate)
	}
	if m.computed_at != nil {
		fields = append(fields, metricaggregate.FieldComputedAt)
	}
	if m.engine_version != nil {
		fields = append(fields, metricaggregate.FieldEngineVersion)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MetricAggregateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case metricaggregate.FieldStudentID:
		return m.StudentID()
	case metricaggregate.FieldSubject:
		return m.Subject()
	case metricaggregate.FieldTerm:
		return m.Term()
	case metricaggregate.FieldWindowDays:
		return m.WindowDays()
	case metricaggregate.FieldAccuracy:
		return m.Accuracy()
	case metricaggregate.FieldFirstAttemptAccuracy:
		return m.FirstAttemptAccuracy()
	case metricaggregate.FieldErrorRate:
		return m.ErrorRate()
	case metricaggregate.FieldHintRate:
		return m.HintRate()
	case metricaggregate.FieldMedianResponseMs:
		return m.MedianResponseMs()
	case metricaggregate.FieldAttemptsPerItem:
		return m.AttemptsPerItem()
	case metricaggregate.FieldAbandonRate:
		return m.AbandonRate()
	case metricaggregate.FieldComputedAt:
		return m.ComputedAt()
	case metricaggregate.FieldEngineVersion:
		return m.EngineVersion()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MetricAggregateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case metricaggregate.FieldStudentID:
		return m.OldStudentID(ctx)
	case metricaggregate.FieldSubject:
		return m.OldSubject(ctx)
	case metricaggregate.FieldTerm:
		return m.OldTerm(ctx)
	case metricaggregate.FieldWindowDays:
		return m.OldWindowDays(ctx)
	case metricaggregate.FieldAccuracy:
		return m.OldAccuracy(ctx)
	case metricaggregate.FieldFirstAttemptAccuracy:
		return m.OldFirstAttemptAccuracy(ctx)
	case metricaggregate.FieldErrorRate:
		return m.OldErrorRate(ctx)
	case metricaggregate.FieldHintRate:
		return m.OldHintRate(ctx)
	case metricaggregate.FieldMedianResponseMs:
		return m.OldMedianResponseMs(ctx)
	case metricaggregate.FieldAttemptsPerItem:
		return m.OldAttemptsPerItem(ctx)
	case metricaggregate.FieldAbandonRate:
		return m.OldAbandonRate(ctx)
	case metricaggregate.FieldComputedAt:
		return m.OldComputedAt(ctx)
	case metricaggregate.FieldEngineVersion:
		return m.OldEngineVersion(ctx)
	}
	return nil, fmt.Errorf("unknown MetricAggregate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MetricAggregateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case metricaggregate.FieldStudentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case metricaggregate.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case metricaggregate.FieldTerm:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTerm(v)
		return nil
	case metricaggregate.FieldWindowDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowDays(v)
		return nil
	case metricaggregate.FieldAccuracy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccuracy(v)
		return nil
	case metricaggregate.FieldFirstAttemptAccuracy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstAttemptAccuracy(v)
		return nil
	case metricaggregate.FieldErrorRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorRate(v)
		return nil
	case metricaggregate.FieldHintRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHintRate(v)
		return nil
	case metricaggregate.FieldMedianResponseMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMedianResponseMs(v)
		return nil
	case metricaggregate.FieldAttemptsPerItem:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptsPerItem(v)
		return nil
	case metricaggregate.FieldAbandonRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAbandonRate(v)
		return nil
	case metricaggregate.FieldComputedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComputedAt(v)
		return nil
	case metricaggregate.FieldEngineVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngineVersion(v)
		return nil
	}
	return fmt.Errorf("unknown MetricAggregate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MetricAggregateMutation) AddedFields() []string {
	var fields []string
	if m.addwindow_days != nil {
		fields = append(fields, metricaggregate.FieldWindowDays)
	}
	if m.addaccuracy != nil {
		fields = append(fields, metricaggregate.FieldAccuracy)
	}
	if m.addfirst_attempt_accuracy != nil {
		fields = append(fields, metricaggregate.FieldFirstAttemptAccuracy)
	}
	if m.adderror_rate != nil {
		fields = append(fields, metricaggregate.FieldErrorRate)
	}
	if m.addhint_rate != nil {
		fields = append(fields, metricaggregate.FieldHintRate)
	}
	if m.addmedian_response_ms != nil {
		fields = append(fields, metricaggregate.FieldMedianResponseMs)
	}
	if m.addattempts_per_item != nil {
		fields = append(fields, metricaggregate.FieldAttemptsPerItem)
	}
	if m.addabandon_rate != nil {
		fields = append(fields, metricaggregate.FieldAbandonRate)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MetricAggregateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case metricaggregate.FieldWindowDays:
		return m.AddedWindowDays()
	case metricaggregate.FieldAccuracy:
		return m.AddedAccuracy()
	case metricaggregate.FieldFirstAttemptAccuracy:
		return m.AddedFirstAttemptAccuracy()
	case metricaggregate.FieldErrorRate:
		return m.AddedErrorRate()
	case metricaggregate.FieldHintRate:
		return m.AddedHintRate()
	case metricaggregate.FieldMedianResponseMs:
		return m.AddedMedianResponseMs()
	case metricaggregate.FieldAttemptsPerItem:
		return m.AddedAttemptsPerItem()
	case metricaggregate.FieldAbandonRate:
		return m.AddedAbandonRate()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MetricAggregateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case metricaggregate.FieldWindowDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWindowDays(v)
		return nil
	case metricaggregate.FieldAccuracy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAccuracy(v)
		return nil
	case metricaggregate.FieldFirstAttemptAccuracy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFirstAttemptAccuracy(v)
		return nil
	case metricaggregate.FieldErrorRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddErrorRate(v)
		return nil
	case metricaggregate.FieldHintRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHintRate(v)
		return nil
	case metricaggregate.FieldMedianResponseMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMedianResponseMs(v)
		return nil
	case metricaggregate.FieldAttemptsPerItem:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptsPerItem(v)
		return nil
	case metricaggregate.FieldAbandonRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAbandonRate(v)
		return nil
	}
	return fmt.Errorf("unknown MetricAggregate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MetricAggregateMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MetricAggregateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MetricAggregateMutation) ClearField(name string) error {
	return fmt.Errorf("unknown MetricAggregate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MetricAggregateMutation) ResetField(name string) error {
	switch name {
	case metricaggregate.FieldStudentID:
		m.ResetStudentID()
		return nil
	case metricaggregate.FieldSubject:
		m.ResetSubject()
		return nil
	case metricaggregate.FieldTerm:
		m.ResetTerm()
		return nil
	case metricaggregate.FieldWindowDays:
		m.ResetWindowDays()
		return nil
	case metricaggregate.FieldAccuracy:
		m.ResetAccuracy()
		return nil
	case metricaggregate.FieldFirstAttemptAccuracy:
		m.ResetFirstAttemptAccuracy()
		return nil
	case metricaggregate.FieldErrorRate:
		m.ResetErrorRate()
		return nil
	case metricaggregate.FieldHintRate:
		m.ResetHintRate()
		return nil
	case metricaggregate.FieldMedianResponseMs:
		m.ResetMedianResponseMs()
		return nil
	case metricaggregate.FieldAttemptsPerItem:
		m.ResetAttemptsPerItem()
		return nil
	case metricaggregate.FieldAbandonRate:
		m.ResetAbandonRate()
		return nil
	case metricaggregate.FieldComputedAt:
		m.ResetComputedAt()
		return nil
	case metricaggregate.FieldEngineVersion:
		m.ResetEngineVersion()
		return nil
	}
	return fmt.Errorf("unknown MetricAggregate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MetricAggregateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MetricAggregateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MetricAggregateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MetricAggregateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MetricAggregateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MetricAggregateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MetricAggregateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MetricAggregate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MetricAggregateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MetricAggregate edge %s", name)
}

// MicroConceptMutation represents an operation that mutates the MicroConcept nodes in the graph.
type MicroConceptMutation struct {
	config
	op            Op
	typ           string
	id            *int
	code          *string
	name          *string
	subject       *string
	term          *string
	active        *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*MicroConcept, error)
	predicates    []predicate.MicroConcept
}

var _ ent.Mutation = (*MicroConceptMutation)(nil)

// microconceptOption allows management of the mutation configuration using functional options.
type microconceptOption func(*MicroConceptMutation)

// newMicroConceptMutation creates new mutation for the MicroConcept entity.
func newMicroConceptMutation(c config, op Op, opts ...microconceptOption) *MicroConceptMutation {
	m := &MicroConceptMutation{
		config:        c,
		op:            op,
		typ:           TypeMicroConcept,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMicroConceptID sets the ID field of the mutation.
func withMicroConceptID(id int) microconceptOption {
	return func(m *MicroConceptMutation) {
		var (
			err   error
			once  sync.Once
			value *MicroConcept
		)
		m.oldValue = func(ctx context.Context) (*MicroConcept, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MicroConcept.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMicroConcept sets the old MicroConcept of the mutation.
func withMicroConcept(node *MicroConcept) microconceptOption {
	return func(m *MicroConceptMutation) {
		m.oldValue = func(context.Context) (*MicroConcept, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MicroConceptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MicroConceptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MicroConceptMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MicroConceptMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MicroConcept.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCode sets the "code" field.
func (m *MicroConceptMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *MicroConceptMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the MicroConcept entity.
// If the MicroConcept object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MicroConceptMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ResetCode resets all changes to the "code" field.
func (m *MicroConceptMutation) ResetCode() {
	m.code = nil
}

// SetName sets the "name" field.
func (m *MicroConceptMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *MicroConceptMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the MicroConcept entity.
// If the MicroConcept object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MicroConceptMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *MicroConceptMutation) ResetName() {
	m.name = nil
}

// SetSubject sets the "subject" field.
func (m *MicroConceptMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *MicroConceptMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the MicroConcept entity.
// If the MicroConcept object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MicroConceptMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *MicroConceptMutation) ResetSubject() {
	m.subject = nil
}

// SetTerm sets the "term" field.
func (m *MicroConceptMutation) SetTerm(s string) {
	m.term = &s
}

// Term returns the value of the "term" field in the mutation.
func (m *MicroConceptMutation) Term() (r string, exists bool) {
	v := m.term
	if v == nil {
		return
	}
	return *v, true
}

// OldTerm returns the old "term" field's value of the MicroConcept entity.
// If the MicroConcept object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MicroConceptMutation) OldTerm(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTerm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTerm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTerm: %w", err)
	}
	return oldValue.Term, nil
}

// ResetTerm resets all changes to the "term" field.
func (m *MicroConceptMutation) ResetTerm() {
	m.term = nil
}

// SetActive sets the "active" field.
func (m *MicroConceptMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *MicroConceptMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the MicroConcept entity.
// If the MicroConcept object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MicroConceptMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *MicroConceptMutation) ResetActive() {
	m.active = nil
}

// Where appends a list predicates to the MicroConceptMutation builder.
func (m *MicroConceptMutation) Where(ps ...predicate.MicroConcept) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MicroConceptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MicroConceptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MicroConcept, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MicroConceptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MicroConceptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MicroConcept).
func (m *MicroConceptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MicroConceptMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.code != nil {
		fields = append(fields, microconcept.FieldCode)
	}
	if m.name != nil {
		fields = append(fields, microconcept.FieldName)
	}
	if m.subject != nil {
		fields = append(fields, microconcept.FieldSubject)
	}
	if m.term != nil {
		fields = append(fields, microconcept.FieldTerm)
	}
	if m.active != nil {
		fields = append(fields, microconcept.FieldActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MicroConceptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case microconcept.FieldCode:
		return m.Code()
	case microconcept.FieldName:
		return m.Name()
	case microconcept.FieldSubject:
		return m.Subject()
	case microconcept.FieldTerm:
		return m.Term()
	case microconcept.FieldActive:
		return m.Active()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MicroConceptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case microconcept.FieldCode:
		return m.OldCode(ctx)
	case microconcept.FieldName:
		return m.OldName(ctx)
	case microconcept.FieldSubject:
		return m.OldSubject(ctx)
	case microconcept.FieldTerm:
		return m.OldTerm(ctx)
	case microconcept.FieldActive:
		return m.OldActive(ctx)
	}
	return nil, fmt.Errorf("unknown MicroConcept field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MicroConceptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case microconcept.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case microconcept.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case microconcept.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case microconcept.FieldTerm:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTerm(v)
		return nil
	case microconcept.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	}
	return fmt.Errorf("unknown MicroConcept field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MicroConceptMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MicroConceptMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MicroConceptMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MicroConcept numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MicroConceptMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MicroConceptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MicroConceptMutation) ClearField(name string) error {
	return fmt.Errorf("unknown MicroConcept nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MicroConceptMutation) ResetField(name string) error {
	switch name {
	case microconcept.FieldCode:
		m.ResetCode()
		return nil
	case microconcept.FieldName:
		m.ResetName()
		return nil
	case microconcept.FieldSubject:
		m.ResetSubject()
		return nil
	case microconcept.FieldTerm:
		m.ResetTerm()
		return nil
	case microconcept.FieldActive:
		m.ResetActive()
		return nil
	}
	return fmt.Errorf("unknown MicroConcept field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MicroConceptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MicroConceptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MicroConceptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MicroConceptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MicroConceptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MicroConceptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MicroConceptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MicroConcept unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MicroConceptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MicroConcept edge %s", name)
}

// PracticeEventMutation represents an operation that mutates the PracticeEvent nodes in the graph.
type PracticeEventMutation struct {
	config
	op             Op
	typ            string
	id             *int
	student_id     *string
	concept_id     *string
	session_id     *string
	item_id        *string
	started_at     *time.Time
	ended_at       *time.Time
	duration_ms    *int
	addduration_ms *int
	attempt        *int
	addattempt     *int
	correct        *bool
	hint           *string
	difficulty     *int
	adddifficulty  *int
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*PracticeEvent, error)
	predicates     []predicate.PracticeEvent
}

var _ ent.Mutation = (*PracticeEventMutation)(nil)

// practiceeventOption allows management of the mutation configuration using functional options.
type practiceeventOption func(*PracticeEventMutation)

// newPracticeEventMutation creates new mutation for the PracticeEvent entity.
func newPracticeEventMutation(c config, op Op, opts ...practiceeventOption) *PracticeEventMutation {
	m := &PracticeEventMutation{
		config:        c,
		op:            op,
		typ:           TypePracticeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPracticeEventID sets the ID field of the mutation.
func withPracticeEventID(id int) practiceeventOption {
	return func(m *PracticeEventMutation) {
		var (
			err   error
			once  sync.Once
			value *PracticeEvent
		)
		m.oldValue = func(ctx context.Context) (*PracticeEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PracticeEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPracticeEvent sets the old PracticeEvent of the mutation.
func withPracticeEvent(node *PracticeEvent) practiceeventOption {
	return func(m *PracticeEventMutation) {
		m.oldValue = func(context.Context) (*PracticeEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PracticeEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PracticeEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PracticeEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PracticeEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PracticeEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudentID sets the "student_id" field.
func (m *PracticeEventMutation) SetStudentID(s string) {
	m.student_id = &s
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *PracticeEventMutation) StudentID() (r string, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldStudentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *PracticeEventMutation) ResetStudentID() {
	m.student_id = nil
}

// SetConceptID sets the "concept_id" field.
func (m *PracticeEventMutation) SetConceptID(s string) {
	m.concept_id = &s
}

// ConceptID returns the value of the "concept_id" field in the mutation.
func (m *PracticeEventMutation) ConceptID() (r string, exists bool) {
	v := m.concept_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptID returns the old "concept_id" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldConceptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptID: %w", err)
	}
	return oldValue.ConceptID, nil
}

// ClearConceptID clears the value of the "concept_id" field.
func (m *PracticeEventMutation) ClearConceptID() {
	m.concept_id = nil
	m.clearedFields[practiceevent.FieldConceptID] = struct{}{}
}

// ConceptIDCleared returns if the "concept_id" field was cleared in this mutation.
func (m *PracticeEventMutation) ConceptIDCleared() bool {
	_, ok := m.clearedFields[practiceevent.FieldConceptID]
	return ok
}

// ResetConceptID resets all changes to the "concept_id" field.
func (m *PracticeEventMutation) ResetConceptID() {
	m.concept_id = nil
	delete(m.clearedFields, practiceevent.FieldConceptID)
}

// SetSessionID sets the "session_id" field.
func (m *PracticeEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *PracticeEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *PracticeEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetItemID sets the "item_id" field.
func (m *PracticeEventMutation) SetItemID(s string) {
	m.item_id = &s
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *PracticeEventMutation) ItemID() (r string, exists bool) {
	v := m.item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// ResetItemID resets all changes to the "item_id" field.
func (m *PracticeEventMutation) ResetItemID() {
	m.item_id = nil
}

// SetStartedAt sets the "started_at" field.
func (m *PracticeEventMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *PracticeEventMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *PracticeEventMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *PracticeEventMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *PracticeEventMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *PracticeEventMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[practiceevent.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *PracticeEventMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[practiceevent.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *PracticeEventMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, practiceevent.FieldEndedAt)
}

// SetDurationMs sets the "duration_ms" field.
func (m *PracticeEventMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *PracticeEventMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldDurationMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *PracticeEventMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *PracticeEventMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *PracticeEventMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetAttempt sets the "attempt" field.
func (m *PracticeEventMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *PracticeEventMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *PracticeEventMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *PracticeEventMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *PracticeEventMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetCorrect sets the "correct" field.
func (m *PracticeEventMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *PracticeEventMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *PracticeEventMutation) ResetCorrect() {
	m.correct = nil
}

// SetHint sets the "hint" field.
func (m *PracticeEventMutation) SetHint(s string) {
	m.hint = &s
}

// Hint returns the value of the "hint" field in the mutation.
func (m *PracticeEventMutation) Hint() (r string, exists bool) {
	v := m.hint
	if v == nil {
		return
	}
	return *v, true
}

// OldHint returns the old "hint" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldHint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHint: %w", err)
	}
	return oldValue.Hint, nil
}

// ResetHint resets all changes to the "hint" field.
func (m *PracticeEventMutation) ResetHint() {
	m.hint = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *PracticeEventMutation) SetDifficulty(i int) {
	m.difficulty = &i
	m.adddifficulty = nil
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *PracticeEventMutation) Difficulty() (r int, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldDifficulty(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// AddDifficulty adds i to the "difficulty" field.
func (m *PracticeEventMutation) AddDifficulty(i int) {
	if m.adddifficulty != nil {
		*m.adddifficulty += i
	} else {
		m.adddifficulty = &i
	}
}

// AddedDifficulty returns the value that was added to the "difficulty" field in this mutation.
func (m *PracticeEventMutation) AddedDifficulty() (r int, exists bool) {
	v := m.adddifficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *PracticeEventMutation) ResetDifficulty() {
	m.difficulty = nil
	m.adddifficulty = nil
}

// Where appends a list predicates to the PracticeEventMutation builder.
func (m *PracticeEventMutation) Where(ps ...predicate.PracticeEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PracticeEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PracticeEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PracticeEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PracticeEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PracticeEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PracticeEvent).
func (m *PracticeEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PracticeEventMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.student_id != nil {
		fields = append(fields, practiceevent.FieldStudentID)
	}
	if m.concept_id != nil {
		fields = append(fields, practiceevent.FieldConceptID)
	}
	if m.session_id != nil {
		fields = append(fields, practiceevent.FieldSessionID)
	}
	if m.item_id != nil {
		fields = append(fields, practiceevent.FieldItemID)
	}
	if m.started_at != nil {
		fields = append(fields, practiceevent.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, practiceevent.FieldEndedAt)
	}
	if m.duration_ms != nil {
		fields = append(fields, practiceevent.FieldDurationMs)
	}
	if m.attempt != nil {
		fields = append(fields, practiceevent.FieldAttempt)
	}
	if m.correct != nil {
		fields = append(fields, practiceevent.FieldCorrect)
	}
	if m.hint != nil {
		fields = append(fields, practiceevent.FieldHint)
	}
	if m.difficulty != nil {
		fields = append(fields, practiceevent.FieldDifficulty)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PracticeEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case practiceevent.FieldStudentID:
		return m.StudentID()
	case practiceevent.FieldConceptID:
		return m.ConceptID()
	case practiceevent.FieldSessionID:
		return m.SessionID()
	case practiceevent.FieldItemID:
		return m.ItemID()
	case practiceevent.FieldStartedAt:
		return m.StartedAt()
	case practiceevent.FieldEndedAt:
		return m.EndedAt()
	case practiceevent.FieldDurationMs:
		return m.DurationMs()
	case practiceevent.FieldAttempt:
		return m.Attempt()
	case practiceevent.FieldCorrect:
		return m.Correct()
	case practiceevent.FieldHint:
		return m.Hint()
	case practiceevent.FieldDifficulty:
		return m.Difficulty()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PracticeEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case practiceevent.FieldStudentID:
		return m.OldStudentID(ctx)
	case practiceevent.FieldConceptID:
		return m.OldConceptID(ctx)
	case practiceevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case practiceevent.FieldItemID:
		return m.OldItemID(ctx)
	case practiceevent.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case practiceevent.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case practiceevent.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case practiceevent.FieldAttempt:
		return m.OldAttempt(ctx)
	case practiceevent.FieldCorrect:
		return m.OldCorrect(ctx)
	case practiceevent.FieldHint:
		return m.OldHint(ctx)
	case practiceevent.FieldDifficulty:
		return m.OldDifficulty(ctx)
	}
	return nil, fmt.Errorf("unknown PracticeEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PracticeEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case practiceevent.FieldStudentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case practiceevent.FieldConceptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptID(v)
		return nil
	case practiceevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case practiceevent.FieldItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	case practiceevent.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case practiceevent.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case practiceevent.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case practiceevent.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case practiceevent.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case practiceevent.FieldHint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHint(v)
		return nil
	case practiceevent.FieldDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	}
	return fmt.Errorf("unknown PracticeEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PracticeEventMutation) AddedFields() []string {
	var fields []string
	if m.addduration_ms != nil {
		fields = append(fields, practiceevent.FieldDurationMs)
	}
	if m.addattempt != nil {
		fields = append(fields, practiceevent.FieldAttempt)
	}
	if m.adddifficulty != nil {
		fields = append(fields, practiceevent.FieldDifficulty)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PracticeEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case practiceevent.FieldDurationMs:
		return m.AddedDurationMs()
	case practiceevent.FieldAttempt:
		return m.AddedAttempt()
	case practiceevent.FieldDifficulty:
		return m.AddedDifficulty()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PracticeEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case practiceevent.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	case practiceevent.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	case practiceevent.FieldDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficulty(v)
		return nil
	}
	return fmt.Errorf("unknown PracticeEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PracticeEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(practiceevent.FieldConceptID) {
		fields = append(fields, practiceevent.FieldConceptID)
	}
	if m.FieldCleared(practiceevent.FieldEndedAt) {
		fields = append(fields, practiceevent.FieldEndedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PracticeEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PracticeEventMutation) ClearField(name string) error {
	switch name {
	case practiceevent.FieldConceptID:
		m.ClearConceptID()
		return nil
	case practiceevent.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	}
	return fmt.Errorf("unknown PracticeEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PracticeEventMutation) ResetField(name string) error {
	switch name {
	case practiceevent.FieldStudentID:
		m.ResetStudentID()
		return nil
	case practiceevent.FieldConceptID:
		m.ResetConceptID()
		return nil
	case practiceevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case practiceevent.FieldItemID:
		m.ResetItemID()
		return nil
	case practiceevent.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case practiceevent.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case practiceevent.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case practiceevent.FieldAttempt:
		m.ResetAttempt()
		return nil
	case practiceevent.FieldCorrect:
		m.ResetCorrect()
		return nil
	case practiceevent.FieldHint:
		m.ResetHint()
		return nil
	case practiceevent.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	}
	return fmt.Errorf("unknown PracticeEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PracticeEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PracticeEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PracticeEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PracticeEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PracticeEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PracticeEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PracticeEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PracticeEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PracticeEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PracticeEvent edge %s", name)
}

// PrerequisiteEdgeMutation represents an operation that mutates the PrerequisiteEdge nodes in the graph.
type PrerequisiteEdgeMutation struct {
	config
	op                Op
	typ               string
	id                *int
	concept_code      *string
	prerequisite_code *string
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*PrerequisiteEdge, error)
	predicates        []predicate.PrerequisiteEdge
}

var _ ent.Mutation = (*PrerequisiteEdgeMutation)(nil)

// prerequisiteedgeOption allows management of the mutation configuration using functional options.
type prerequisiteedgeOption func(*PrerequisiteEdgeMutation)

// newPrerequisiteEdgeMutation creates new mutation for the PrerequisiteEdge entity.
func newPrerequisiteEdgeMutation(c config, op Op, opts ...prerequisiteedgeOption) *PrerequisiteEdgeMutation {
	m := &PrerequisiteEdgeMutation{
		config:        c,
		op:            op,
		typ:           TypePrerequisiteEdge,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPrerequisiteEdgeID sets the ID field of the mutation.
func withPrerequisiteEdgeID(id int) prerequisiteedgeOption {
	return func(m *PrerequisiteEdgeMutation) {
		var (
			err   error
			once  sync.Once
			value *PrerequisiteEdge
		)
		m.oldValue = func(ctx context.Context) (*PrerequisiteEdge, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PrerequisiteEdge.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPrerequisiteEdge sets the old PrerequisiteEdge of the mutation.
func withPrerequisiteEdge(node *PrerequisiteEdge) prerequisiteedgeOption {
	return func(m *PrerequisiteEdgeMutation) {
		m.oldValue = func(context.Context) (*PrerequisiteEdge, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PrerequisiteEdgeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PrerequisiteEdgeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PrerequisiteEdgeMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PrerequisiteEdgeMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PrerequisiteEdge.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConceptCode sets the "concept_code" field.
func (m *PrerequisiteEdgeMutation) SetConceptCode(s string) {
	m.concept_code = &s
}

// ConceptCode returns the value of the "concept_code" field in the mutation.
func (m *PrerequisiteEdgeMutation) ConceptCode() (r string, exists bool) {
	v := m.concept_code
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptCode returns the old "concept_code" field's value of the PrerequisiteEdge entity.
// If the PrerequisiteEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrerequisiteEdgeMutation) OldConceptCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptCode: %w", err)
	}
	return oldValue.ConceptCode, nil
}

// ResetConceptCode resets all changes to the "concept_code" field.
func (m *PrerequisiteEdgeMutation) ResetConceptCode() {
	m.concept_code = nil
}

// SetPrerequisiteCode sets the "prerequisite_code" field.
func (m *PrerequisiteEdgeMutation) SetPrerequisiteCode(s string) {
	m.prerequisite_code = &s
}

// PrerequisiteCode returns the value of the "prerequisite_code" field in the mutation.
func (m *PrerequisiteEdgeMutation) PrerequisiteCode() (r string, exists bool) {
	v := m.prerequisite_code
	if v == nil {
		return
	}
	return *v, true
}

// OldPrerequisiteCode returns the old "prerequisite_code" field's value of the PrerequisiteEdge entity.
// If the PrerequisiteEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrerequisiteEdgeMutation) OldPrerequisiteCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrerequisiteCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrerequisiteCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrerequisiteCode: %w", err)
	}
	return oldValue.PrerequisiteCode, nil
}

// ResetPrerequisiteCode resets all changes to the "prerequisite_code" field.
func (m *PrerequisiteEdgeMutation) ResetPrerequisiteCode() {
	m.prerequisite_code = nil
}

// Where appends a list predicates to the PrerequisiteEdgeMutation builder.
func (m *PrerequisiteEdgeMutation) Where(ps ...predicate.PrerequisiteEdge) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PrerequisiteEdgeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PrerequisiteEdgeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PrerequisiteEdge, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PrerequisiteEdgeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PrerequisiteEdgeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PrerequisiteEdge).
func (m *PrerequisiteEdgeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PrerequisiteEdgeMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.concept_code != nil {
		fields = append(fields, prerequisiteedge.FieldConceptCode)
	}
	if m.prerequisite_code != nil {
		fields = append(fields, prerequisiteedge.FieldPrerequisiteCode)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PrerequisiteEdgeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case prerequisiteedge.FieldConceptCode:
		return m.ConceptCode()
	case prerequisiteedge.FieldPrerequisiteCode:
		return m.PrerequisiteCode()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PrerequisiteEdgeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case prerequisiteedge.FieldConceptCode:
		return m.OldConceptCode(ctx)
	case prerequisiteedge.FieldPrerequisiteCode:
		return m.OldPrerequisiteCode(ctx)
	}
	return nil, fmt.Errorf("unknown PrerequisiteEdge field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PrerequisiteEdgeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case prerequisiteedge.FieldConceptCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptCode(v)
		return nil
	case prerequisiteedge.FieldPrerequisiteCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrerequisiteCode(v)
		return nil
	}
	return fmt.Errorf("unknown PrerequisiteEdge field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PrerequisiteEdgeMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PrerequisiteEdgeMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PrerequisiteEdgeMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PrerequisiteEdge numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PrerequisiteEdgeMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PrerequisiteEdgeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PrerequisiteEdgeMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PrerequisiteEdge nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PrerequisiteEdgeMutation) ResetField(name string) error {
	switch name {
	case prerequisiteedge.FieldConceptCode:
		m.ResetConceptCode()
		return nil
	case prerequisiteedge.FieldPrerequisiteCode:
		m.ResetPrerequisiteCode()
		return nil
	}
	return fmt.Errorf("unknown PrerequisiteEdge field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PrerequisiteEdgeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PrerequisiteEdgeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PrerequisiteEdgeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PrerequisiteEdgeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PrerequisiteEdgeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PrerequisiteEdgeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PrerequisiteEdgeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PrerequisiteEdge unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PrerequisiteEdgeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PrerequisiteEdge edge %s", name)
}

// RecommendationMutation represents an operation that mutates the Recommendation nodes in the graph.
type RecommendationMutation struct {
	config
	op              Op
	typ             string
	id              *string
	student_id      *string
	concept_id      *string
	rule_code       *string
	priority        *string
	status          *string
	title           *string
	description     *string
	window_days     *int
	addwindow_days  *int
	engine_version  *string
	ruleset_version *string
	generated_at    *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Recommendation, error)
	predicates      []predicate.Recommendation
}

var _ ent.Mutation = (*RecommendationMutation)(nil)

// recommendationOption allows management of the mutation configuration using functional options.
type recommendationOption func(*RecommendationMutation)

// newRecommendationMutation creates new mutation for the Recommendation entity.
func newRecommendationMutation(c config, op Op, opts ...recommendationOption) *RecommendationMutation {
	m := &RecommendationMutation{
		config:        c,
		op:            op,
		typ:           TypeRecommendation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRecommendationID sets the ID field of the mutation.
func withRecommendationID(id string) recommendationOption {
	return func(m *RecommendationMutation) {
		var (
			err   error
			once  sync.Once
			value *Recommendation
		)
		m.oldValue = func(ctx context.Context) (*Recommendation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Recommendation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRecommendation sets the old Recommendation of the mutation.
func withRecommendation(node *Recommendation) recommendationOption {
	return func(m *RecommendationMutation) {
		m.oldValue = func(context.Context) (*Recommendation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RecommendationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RecommendationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Recommendation entities.
func (m *RecommendationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RecommendationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RecommendationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Recommendation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudentID sets the "student_id" field.
func (m *RecommendationMutation) SetStudentID(s string) {
	m.student_id = &s
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *RecommendationMutation) StudentID() (r string, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldStudentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *RecommendationMutation) ResetStudentID() {
	m.student_id = nil
}

// SetConceptID sets the "concept_id" field.
func (m *RecommendationMutation) SetConceptID(s string) {
	m.concept_id = &s
}

// ConceptID returns the value of the "concept_id" field in the mutation.
func (m *RecommendationMutation) ConceptID() (r string, exists bool) {
	v := m.concept_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptID returns the old "concept_id" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldConceptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptID: %w", err)
	}
	return oldValue.ConceptID, nil
}

// ResetConceptID resets all changes to the "concept_id" field.
func (m *RecommendationMutation) ResetConceptID() {
	m.concept_id = nil
}

// SetRuleCode sets the "rule_code" field.
func (m *RecommendationMutation) SetRuleCode(s string) {
	m.rule_code = &s
}

// RuleCode returns the value of the "rule_code" field in the mutation.
func (m *RecommendationMutation) RuleCode() (r string, exists bool) {
	v := m.rule_code
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleCode returns the old "rule_code" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldRuleCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleCode: %w", err)
	}
	return oldValue.RuleCode, nil
}

// ResetRuleCode resets all changes to the "rule_code" field.
func (m *RecommendationMutation) ResetRuleCode() {
	m.rule_code = nil
}

// SetPriority sets the "priority" field.
func (m *RecommendationMutation) SetPriority(s string) {
	m.priority = &s
}

// Priority returns the value of the "priority" field in the mutation.
func (m *RecommendationMutation) Priority() (r string, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldPriority(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *RecommendationMutation) ResetPriority() {
	m.priority = nil
}

// SetStatus sets the "status" field.
func (m *RecommendationMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *RecommendationMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RecommendationMutation) ResetStatus() {
	m.status = nil
}

// SetTitle sets the "title" field.
func (m *RecommendationMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *RecommendationMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *RecommendationMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *RecommendationMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *RecommendationMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *RecommendationMutation) ResetDescription() {
	m.description = nil
}

// SetWindowDays sets the "window_days" field.
func (m *RecommendationMutation) SetWindowDays(i int) {
	m.window_days = &i
	m.addwindow_days = nil
}

// WindowDays returns the value of the "window_days" field in the mutation.
func (m *RecommendationMutation) WindowDays() (r int, exists bool) {
	v := m.window_days
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowDays returns the old "window_days" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldWindowDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowDays: %w", err)
	}
	return oldValue.WindowDays, nil
}

// AddWindowDays adds i to the "window_days" field.
func (m *RecommendationMutation) AddWindowDays(i int) {
	if m.addwindow_days != nil {
		*m.addwindow_days += i
	} else {
		m.addwindow_days = &i
	}
}

// AddedWindowDays returns the value that was added to the "window_days" field in this mutation.
func (m *RecommendationMutation) AddedWindowDays() (r int, exists bool) {
	v := m.addwindow_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetWindowDays resets all changes to the "window_days" field.
func (m *RecommendationMutation) ResetWindowDays() {
	m.window_days = nil
	m.addwindow_days = nil
}

// SetEngineVersion sets the "engine_version" field.
func (m *RecommendationMutation) SetEngineVersion(s string) {
	m.engine_version = &s
}

// EngineVersion returns the value of the "engine_version" field in the mutation.
func (m *RecommendationMutation) EngineVersion() (r string, exists bool) {
	v := m.engine_version
	if v == nil {
		return
	}
	return *v, true
}

// OldEngineVersion returns the old "engine_version" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldEngineVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngineVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngineVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngineVersion: %w", err)
	}
	return oldValue.EngineVersion, nil
}

// ResetEngineVersion resets all changes to the "engine_version" field.
func (m *RecommendationMutation) ResetEngineVersion() {
	m.engine_version = nil
}

// SetRulesetVersion sets the "ruleset_version" field.
func (m *RecommendationMutation) SetRulesetVersion(s string) {
	m.ruleset_version = &s
}

// RulesetVersion returns the value of the "ruleset_version" field in the mutation.
func (m *RecommendationMutation) RulesetVersion() (r string, exists bool) {
	v := m.ruleset_version
	if v == nil {
		return
	}
	return *v, true
}

// OldRulesetVersion returns the old "ruleset_version" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldRulesetVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRulesetVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRulesetVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRulesetVersion: %w", err)
	}
	return oldValue.RulesetVersion, nil
}

// ResetRulesetVersion resets all changes to the "ruleset_version" field.
func (m *RecommendationMutation) ResetRulesetVersion() {
	m.ruleset_version = nil
}

// SetGeneratedAt sets the "generated_at" field.
func (m *RecommendationMutation) SetGeneratedAt(t time.Time) {
	m.generated_at = &t
}

// GeneratedAt returns the value of the "generated_at" field in the mutation.
func (m *RecommendationMutation) GeneratedAt() (r time.Time, exists bool) {
	v := m.generated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratedAt returns the old "generated_at" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldGeneratedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratedAt: %w", err)
	}
	return oldValue.GeneratedAt, nil
}

// ResetGeneratedAt resets all changes to the "generated_at" field.
func (m *RecommendationMutation) ResetGeneratedAt() {
	m.generated_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RecommendationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RecommendationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RecommendationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the RecommendationMutation builder.
func (m *RecommendationMutation) Where(ps ...predicate.Recommendation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RecommendationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RecommendationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Recommendation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RecommendationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RecommendationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Recommendation).
func (m *RecommendationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RecommendationMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.student_id != nil {
		fields = append(fields, recommendation.FieldStudentID)
	}
	if m.concept_id != nil {
		fields = append(fields, recommendation.FieldConceptID)
	}
	if m.rule_code != nil {
		fields = append(fields, recommendation.FieldRuleCode)
	}
	if m.priority != nil {
		fields = append(fields, recommendation.FieldPriority)
	}
	if m.status != nil {
		fields = append(fields, recommendation.FieldStatus)
	}
	if m.title != nil {
		fields = append(fields, recommendation.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, recommendation.FieldDescription)
	}
	if m.window_days != nil {
		fields = append(fields, recommendation.FieldWindowDays)
	}
	if m.engine_version != nil {
		fields = append(fields, recommendation.FieldEngineVersion)
	}
	if m.ruleset_version != nil {
		fields = append(fields, recommendation.FieldRulesetVersion)
	}
	if m.generated_at != nil {
		fields = append(fields, recommendation.FieldGeneratedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, recommendation.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RecommendationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case recommendation.FieldStudentID:
		return m.StudentID()
	case recommendation.FieldConceptID:
		return m.ConceptID()
	case recommendation.FieldRuleCode:
		return m.RuleCode()
	case recommendation.FieldPriority:
		return m.Priority()
	case recommendation.FieldStatus:
		return m.Status()
	case recommendation.FieldTitle:
		return m.Title()
	case recommendation.FieldDescription:
		return m.Description()
	case recommendation.FieldWindowDays:
		return m.WindowDays()
	case recommendation.FieldEngineVersion:
		return m.EngineVersion()
	case recommendation.FieldRulesetVersion:
		return m.RulesetVersion()
	case recommendation.FieldGeneratedAt:
		return m.GeneratedAt()
	case recommendation.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RecommendationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case recommendation.FieldStudentID:
		return m.OldStudentID(ctx)
	case recommendation.FieldConceptID:
		return m.OldConceptID(ctx)
	case recommendation.FieldRuleCode:
		return m.OldRuleCode(ctx)
	case recommendation.FieldPriority:
		return m.OldPriority(ctx)
	case recommendation.FieldStatus:
		return m.OldStatus(ctx)
	case recommendation.FieldTitle:
		return m.OldTitle(ctx)
	case recommendation.FieldDescription:
		return m.OldDescription(ctx)
	case recommendation.FieldWindowDays:
		return m.OldWindowDays(ctx)
	case recommendation.FieldEngineVersion:
		return m.OldEngineVersion(ctx)
	case recommendation.FieldRulesetVersion:
		return m.OldRulesetVersion(ctx)
	case recommendation.FieldGeneratedAt:
		return m.OldGeneratedAt(ctx)
	case recommendation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Recommendation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecommendationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case recommendation.FieldStudentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case recommendation.FieldConceptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptID(v)
		return nil
	case recommendation.FieldRuleCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleCode(v)
		return nil
	case recommendation.FieldPriority:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case recommendation.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case recommendation.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case recommendation.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case recommendation.FieldWindowDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowDays(v)
		return nil
	case recommendation.FieldEngineVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngineVersion(v)
		return nil
	case recommendation.FieldRulesetVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRulesetVersion(v)
		return nil
	case recommendation.FieldGeneratedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratedAt(v)
		return nil
	case recommendation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Recommendation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RecommendationMutation) AddedFields() []string {
	var fields []string
	if m.addwindow_days != nil {
		fields = append(fields, recommendation.FieldWindowDays)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RecommendationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case recommendation.FieldWindowDays:
		return m.AddedWindowDays()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecommendationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case recommendation.FieldWindowDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWindowDays(v)
		return nil
	}
	return fmt.Errorf("unknown Recommendation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RecommendationMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RecommendationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RecommendationMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Recommendation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RecommendationMutation) ResetField(name string) error {
	switch name {
	case recommendation.FieldStudentID:
		m.ResetStudentID()
		return nil
	case recommendation.FieldConceptID:
		m.ResetConceptID()
		return nil
	case recommendation.FieldRuleCode:
		m.ResetRuleCode()
		return nil
	case recommendation.FieldPriority:
		m.ResetPriority()
		return nil
	case recommendation.FieldStatus:
		m.ResetStatus()
		return nil
	case recommendation.FieldTitle:
		m.ResetTitle()
		return nil
	case recommendation.FieldDescription:
		m.ResetDescription()
		return nil
	case recommendation.FieldWindowDays:
		m.ResetWindowDays()
		return nil
	case recommendation.FieldEngineVersion:
		m.ResetEngineVersion()
		return nil
	case recommendation.FieldRulesetVersion:
		m.ResetRulesetVersion()
		return nil
	case recommendation.FieldGeneratedAt:
		m.ResetGeneratedAt()
		return nil
	case recommendation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Recommendation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RecommendationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RecommendationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RecommendationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RecommendationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RecommendationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RecommendationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RecommendationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Recommendation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RecommendationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Recommendation edge %s", name)
}

// RecommendationEvidenceMutation represents an operation that mutates the RecommendationEvidence nodes in the graph.
type RecommendationEvidenceMutation struct {
	config
	op                Op
	typ               string
	id                *int
	recommendation_id *string
	position          *int
	addposition       *int
	evidence_type     *string
	key               *string
	value             *string
	description       *string
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*RecommendationEvidence, error)
	predicates        []predicate.RecommendationEvidence
}

var _ ent.Mutation = (*RecommendationEvidenceMutation)(nil)

// recommendationevidenceOption allows management of the mutation configuration using functional options.
type recommendationevidenceOption func(*RecommendationEvidenceMutation)

// newRecommendationEvidenceMutation creates new mutation for the RecommendationEvidence entity.
func newRecommendationEvidenceMutation(c config, op Op, opts ...recommendationevidenceOption) *RecommendationEvidenceMutation {
	m := &RecommendationEvidenceMutation{
		config:        c,
		op:            op,
		typ:           TypeRecommendationEvidence,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRecommendationEvidenceID sets the ID field of the mutation.
func withRecommendationEvidenceID(id int) recommendationevidenceOption {
	return func(m *RecommendationEvidenceMutation) {
		var (
			err   error
			once  sync.Once
			value *RecommendationEvidence
		)
		m.oldValue = func(ctx context.Context) (*RecommendationEvidence, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RecommendationEvidence.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRecommendationEvidence sets the old RecommendationEvidence of the mutation.
func withRecommendationEvidence(node *RecommendationEvidence) recommendationevidenceOption {
	return func(m *RecommendationEvidenceMutation) {
		m.oldValue = func(context.Context) (*RecommendationEvidence, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RecommendationEvidenceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RecommendationEvidenceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RecommendationEvidenceMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RecommendationEvidenceMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RecommendationEvidence.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRecommendationID sets the "recommendation_id" field.
func (m *RecommendationEvidenceMutation) SetRecommendationID(s string) {
	m.recommendation_id = &s
}

// RecommendationID returns the value of the "recommendation_id" field in the mutation.
func (m *RecommendationEvidenceMutation) RecommendationID() (r string, exists bool) {
	v := m.recommendation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendationID returns the old "recommendation_id" field's value of the RecommendationEvidence entity.
// If the RecommendationEvidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationEvidenceMutation) OldRecommendationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendationID: %w", err)
	}
	return oldValue.RecommendationID, nil
}

// ResetRecommendationID resets all changes to the "recommendation_id" field.
func (m *RecommendationEvidenceMutation) ResetRecommendationID() {
	m.recommendation_id = nil
}

// SetPosition sets the "position" field.
func (m *RecommendationEvidenceMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *RecommendationEvidenceMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the RecommendationEvidence entity.
// If the RecommendationEvidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationEvidenceMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *RecommendationEvidenceMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *RecommendationEvidenceMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *RecommendationEvidenceMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetEvidenceType sets the "evidence_type" field.
func (m *RecommendationEvidenceMutation) SetEvidenceType(s string) {
	m.evidence_type = &s
}

// EvidenceType returns the value of the "evidence_type" field in the mutation.
func (m *RecommendationEvidenceMutation) EvidenceType() (r string, exists bool) {
	v := m.evidence_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidenceType returns the old "evidence_type" field's value of the RecommendationEvidence entity.
// If the RecommendationEvidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationEvidenceMutation) OldEvidenceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidenceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidenceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidenceType: %w", err)
	}
	return oldValue.EvidenceType, nil
}

// ResetEvidenceType resets all changes to the "evidence_type" field.
func (m *RecommendationEvidenceMutation) ResetEvidenceType() {
	m.evidence_type = nil
}

// SetKey sets the "key" field.
func (m *RecommendationEvidenceMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *RecommendationEvidenceMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the RecommendationEvidence entity.
// If the RecommendationEvidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationEvidenceMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *RecommendationEvidenceMutation) ResetKey() {
	m.key = nil
}

// SetValue sets the "value" field.
func (m *RecommendationEvidenceMutation) SetValue(s string) {
	m.value = &s
}

// Value returns the value of the "value" field in the mutation.
func (m *RecommendationEvidenceMutation) Value() (r string, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the RecommendationEvidence entity.
// If the RecommendationEvidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationEvidenceMutation) OldValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *RecommendationEvidenceMutation) ResetValue() {
	m.value = nil
}

// SetDescription sets the "description" field.
func (m *RecommendationEvidenceMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *RecommendationEvidenceMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the RecommendationEvidence entity.
// If the RecommendationEvidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationEvidenceMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *RecommendationEvidenceMutation) ResetDescription() {
	m.description = nil
}

// Where appends a list predicates to the RecommendationEvidenceMutation builder.
func (m *RecommendationEvidenceMutation) Where(ps ...predicate.RecommendationEvidence) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RecommendationEvidenceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RecommendationEvidenceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RecommendationEvidence, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RecommendationEvidenceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RecommendationEvidenceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RecommendationEvidence).
func (m *RecommendationEvidenceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RecommendationEvidenceMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.recommendation_id != nil {
		fields = append(fields, recommendationevidence.FieldRecommendationID)
	}
	if m.position != nil {
		fields = append(fields, recommendationevidence.FieldPosition)
	}
	if m.evidence_type != nil {
		fields = append(fields, recommendationevidence.FieldEvidenceType)
	}
	if m.key != nil {
		fields = append(fields, recommendationevidence.FieldKey)
	}
	if m.value != nil {
		fields = append(fields, recommendationevidence.FieldValue)
	}
	if m.description != nil {
		fields = append(fields, recommendationevidence.FieldDescription)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RecommendationEvidenceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case recommendationevidence.FieldRecommendationID:
		return m.RecommendationID()
	case recommendationevidence.FieldPosition:
		return m.Position()
	case recommendationevidence.FieldEvidenceType:
		return m.EvidenceType()
	case recommendationevidence.FieldKey:
		return m.Key()
	case recommendationevidence.FieldValue:
		return m.Value()
	case recommendationevidence.FieldDescription:
		return m.Description()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RecommendationEvidenceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case recommendationevidence.FieldRecommendationID:
		return m.OldRecommendationID(ctx)
	case recommendationevidence.FieldPosition:
		return m.OldPosition(ctx)
	case recommendationevidence.FieldEvidenceType:
		return m.OldEvidenceType(ctx)
	case recommendationevidence.FieldKey:
		return m.OldKey(ctx)
	case recommendationevidence.FieldValue:
		return m.OldValue(ctx)
	case recommendationevidence.FieldDescription:
		return m.OldDescription(ctx)
	}
	return nil, fmt.Errorf("unknown RecommendationEvidence field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecommendationEvidenceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case recommendationevidence.FieldRecommendationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendationID(v)
		return nil
	case recommendationevidence.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case recommendationevidence.FieldEvidenceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidenceType(v)
		return nil
	case recommendationevidence.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case recommendationevidence.FieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case recommendationevidence.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	}
	return fmt.Errorf("unknown RecommendationEvidence field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RecommendationEvidenceMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, recommendationevidence.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RecommendationEvidenceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case recommendationevidence.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecommendationEvidenceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case recommendationevidence.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown RecommendationEvidence numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RecommendationEvidenceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RecommendationEvidenceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RecommendationEvidenceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RecommendationEvidence nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RecommendationEvidenceMutation) ResetField(name string) error {
	switch name {
	case recommendationevidence.FieldRecommendationID:
		m.ResetRecommendationID()
		return nil
	case recommendationevidence.FieldPosition:
		m.ResetPosition()
		return nil
	case recommendationevidence.FieldEvidenceType:
		m.ResetEvidenceType()
		return nil
	case recommendationevidence.FieldKey:
		m.ResetKey()
		return nil
	case recommendationevidence.FieldValue:
		m.ResetValue()
		return nil
	case recommendationevidence.FieldDescription:
		m.ResetDescription()
		return nil
	}
	return fmt.Errorf("unknown RecommendationEvidence field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RecommendationEvidenceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RecommendationEvidenceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RecommendationEvidenceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RecommendationEvidenceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RecommendationEvidenceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RecommendationEvidenceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RecommendationEvidenceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RecommendationEvidence unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RecommendationEvidenceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RecommendationEvidence edge %s", name)
}

// RecommendationOutcomeMutation represents an operation that mutates the RecommendationOutcome nodes in the graph.
type RecommendationOutcomeMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	recommendation_id  *string
	window_start       *time.Time
	window_end         *time.Time
	success            *string
	delta_mastery      *float64
	adddelta_mastery   *float64
	delta_accuracy     *float64
	adddelta_accuracy  *float64
	delta_hint_rate    *float64
	adddelta_hint_rate *float64
	computed_at        *time.Time
	engine_version     *string
	ruleset_version    *string
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*RecommendationOutcome, error)
	predicates         []predicate.RecommendationOutcome
}

var _ ent.Mutation = (*RecommendationOutcomeMutation)(nil)

// recommendationoutcomeOption allows management of the mutation configuration using functional options.
type recommendationoutcomeOption func(*RecommendationOutcomeMutation)

// newRecommendationOutcomeMutation creates new mutation for the RecommendationOutcome entity.
func newRecommendationOutcomeMutation(c config, op Op, opts ...recommendationoutcomeOption) *RecommendationOutcomeMutation {
	m := &RecommendationOutcomeMutation{
		config:        c,
		op:            op,
		typ:           TypeRecommendationOutcome,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRecommendationOutcomeID sets the ID field of the mutation.
func withRecommendationOutcomeID(id string) recommendationoutcomeOption {
	return func(m *RecommendationOutcomeMutation) {
		var (
			err   error
			once  sync.Once
			value *RecommendationOutcome
		)
		m.oldValue = func(ctx context.Context) (*RecommendationOutcome, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RecommendationOutcome.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRecommendationOutcome sets the old RecommendationOutcome of the mutation.
func withRecommendationOutcome(node *RecommendationOutcome) recommendationoutcomeOption {
	return func(m *RecommendationOutcomeMutation) {
		m.oldValue = func(context.Context) (*RecommendationOutcome, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RecommendationOutcomeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RecommendationOutcomeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RecommendationOutcome entities.
func (m *RecommendationOutcomeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RecommendationOutcomeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RecommendationOutcomeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RecommendationOutcome.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRecommendationID sets the "recommendation_id" field.
func (m *RecommendationOutcomeMutation) SetRecommendationID(s string) {
	m.recommendation_id = &s
}

// RecommendationID returns the value of the "recommendation_id" field in the mutation.
func (m *RecommendationOutcomeMutation) RecommendationID() (r string, exists bool) {
	v := m.recommendation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendationID returns the old "recommendation_id" field's value of the RecommendationOutcome entity.
// If the RecommendationOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationOutcomeMutation) OldRecommendationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendationID: %w", err)
	}
	return oldValue.RecommendationID, nil
}

// ResetRecommendationID resets all changes to the "recommendation_id" field.
func (m *RecommendationOutcomeMutation) ResetRecommendationID() {
	m.recommendation_id = nil
}

// SetWindowStart sets the "window_start" field.
func (m *RecommendationOutcomeMutation) SetWindowStart(t time.Time) {
	m.window_start = &t
}

// WindowStart returns the value of the "window_start" field in the mutation.
func (m *RecommendationOutcomeMutation) WindowStart() (r time.Time, exists bool) {
	v := m.window_start
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowStart returns the old "window_start" field's value of the RecommendationOutcome entity.
// If the RecommendationOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationOutcomeMutation) OldWindowStart(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowStart: %w", err)
	}
	return oldValue.WindowStart, nil
}

// ResetWindowStart resets all changes to the "window_start" field.
func (m *RecommendationOutcomeMutation) ResetWindowStart() {
	m.window_start = nil
}

// SetWindowEnd sets the "window_end" field.
func (m *RecommendationOutcomeMutation) SetWindowEnd(t time.Time) {
	m.window_end = &t
}

// WindowEnd returns the value of the "window_end" field in the mutation.
func (m *RecommendationOutcomeMutation) WindowEnd() (r time.Time, exists bool) {
	v := m.window_end
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowEnd returns the old "window_end" field's value of the RecommendationOutcome entity.
// If the RecommendationOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationOutcomeMutation) OldWindowEnd(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowEnd: %w", err)
	}
	return oldValue.WindowEnd, nil
}

// ResetWindowEnd resets all changes to the "window_end" field.
func (m *RecommendationOutcomeMutation) ResetWindowEnd() {
	m.window_end = nil
}

// SetSuccess sets the "success" field.
func (m *RecommendationOutcomeMutation) SetSuccess(s string) {
	m.success = &s
}

// Success returns the value of the "success" field in the mutation.
func (m *RecommendationOutcomeMutation) Success() (r string, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the RecommendationOutcome entity.
// If the RecommendationOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationOutcomeMutation) OldSuccess(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *RecommendationOutcomeMutation) ResetSuccess() {
	m.success = nil
}

// SetDeltaMastery sets the "delta_mastery" field.
func (m *RecommendationOutcomeMutation) SetDeltaMastery(f float64) {
	m.delta_mastery = &f
	m.adddelta_mastery = nil
}

// DeltaMastery returns the value of the "delta_mastery" field in the mutation.
func (m *RecommendationOutcomeMutation) DeltaMastery() (r float64, exists bool) {
	v := m.delta_mastery
	if v == nil {
		return
	}
	return *v, true
}

// OldDeltaMastery returns the old "delta_mastery" field's value of the RecommendationOutcome entity.
// If the RecommendationOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationOutcomeMutation) OldDeltaMastery(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeltaMastery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeltaMastery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeltaMastery: %w", err)
	}
	return oldValue.DeltaMastery, nil
}

// AddDeltaMastery adds f to the "delta_mastery" field.
func (m *RecommendationOutcomeMutation) AddDeltaMastery(f float64) {
	if m.adddelta_mastery != nil {
		*m.adddelta_mastery += f
	} else {
		m.adddelta_mastery = &f
	}
}

// AddedDeltaMastery returns the value that was added to the "delta_mastery" field in this mutation.
func (m *RecommendationOutcomeMutation) AddedDeltaMastery() (r float64, exists bool) {
	v := m.adddelta_mastery
	if v == nil {
		return
	}
	return *v, true
}

// ClearDeltaMastery clears the value of the "delta_mastery" field.
func (m *RecommendationOutcomeMutation) ClearDeltaMastery() {
	m.delta_mastery = nil
	m.adddelta_mastery = nil
	m.clearedFields[recommendationoutcome.FieldDeltaMastery] = struct{}{}
}

// DeltaMasteryCleared returns if the "delta_mastery" field was cleared in this mutation.
func (m *RecommendationOutcomeMutation) DeltaMasteryCleared() bool {
	_, ok := m.clearedFields[recommendationoutcome.FieldDeltaMastery]
	return ok
}

// ResetDeltaMastery resets all changes to the "delta_mastery" field.
func (m *RecommendationOutcomeMutation) ResetDeltaMastery() {
	m.delta_mastery = nil
	m.adddelta_mastery = nil
	delete(m.clearedFields, recommendationoutcome.FieldDeltaMastery)
}

// SetDeltaAccuracy sets the "delta_accuracy" field.
func (m *RecommendationOutcomeMutation) SetDeltaAccuracy(f float64) {
	m.delta_accuracy = &f
	m.adddelta_accuracy = nil
}

// DeltaAccuracy returns the value of the "delta_accuracy" field in the mutation.
func (m *RecommendationOutcomeMutation) DeltaAccuracy() (r float64, exists bool) {
	v := m.delta_accuracy
	if v == nil {
		return
	}
	return *v, true
}

// OldDeltaAccuracy returns the old "delta_accuracy" field's value of the RecommendationOutcome entity.
// If the RecommendationOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationOutcomeMutation) OldDeltaAccuracy(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeltaAccuracy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeltaAccuracy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeltaAccuracy: %w", err)
	}
	return oldValue.DeltaAccuracy, nil
}

// AddDeltaAccuracy adds f to the "delta_accuracy" field.
func (m *RecommendationOutcomeMutation) AddDeltaAccuracy(f float64) {
	if m.adddelta_accuracy != nil {
		*m.adddelta_accuracy += f
	} else {
		m.adddelta_accuracy = &f
	}
}

// AddedDeltaAccuracy returns the value that was added to the "delta_accuracy" field in this mutation.
func (m *RecommendationOutcomeMutation) AddedDeltaAccuracy() (r float64, exists bool) {
	v := m.adddelta_accuracy
	if v == nil {
		return
	}
	return *v, true
}

// ClearDeltaAccuracy clears the value of the "delta_accuracy" field.
func (m *RecommendationOutcomeMutation) ClearDeltaAccuracy() {
	m.delta_accuracy = nil
	m.adddelta_accuracy = nil
	m.clearedFields[recommendationoutcome.FieldDeltaAccuracy] = struct{}{}
}

// DeltaAccuracyCleared returns if the "delta_accuracy" field was cleared in this mutation.
func (m *RecommendationOutcomeMutation) DeltaAccuracyCleared() bool {
	_, ok := m.clearedFields[recommendationoutcome.FieldDeltaAccuracy]
	return ok
}

// ResetDeltaAccuracy resets all changes to the "delta_accuracy" field.
func (m *RecommendationOutcomeMutation) ResetDeltaAccuracy() {
	m.delta_accuracy = nil
	m.adddelta_accuracy = nil
	delete(m.clearedFields, recommendationoutcome.FieldDeltaAccuracy)
}

// SetDeltaHintRate sets the "delta_hint_rate" field.
func (m *RecommendationOutcomeMutation) SetDeltaHintRate(f float64) {
	m.delta_hint_rate = &f
	m.adddelta_hint_rate = nil
}

// DeltaHintRate returns the value of the "delta_hint_rate" field in the mutation.
func (m *RecommendationOutcomeMutation) DeltaHintRate() (r float64, exists bool) {
	v := m.delta_hint_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldDeltaHintRate returns the old "delta_hint_rate" field's value of the RecommendationOutcome entity.
// If the RecommendationOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationOutcomeMutation) OldDeltaHintRate(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeltaHintRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeltaHintRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeltaHintRate: %w", err)
	}
	return oldValue.DeltaHintRate, nil
}

// AddDeltaHintRate adds f to the "delta_hint_rate" field.
func (m *RecommendationOutcomeMutation) AddDeltaHintRate(f float64) {
	if m.adddelta_hint_rate != nil {
		*m.adddelta_hint_rate += f
	} else {
		m.adddelta_hint_rate = &f
	}
}

// AddedDeltaHintRate returns the value that was added to the "delta_hint_rate" field in this mutation.
func (m *RecommendationOutcomeMutation) AddedDeltaHintRate() (r float64, exists bool) {
	v := m.adddelta_hint_rate
	if v == nil {
		return
	}
	return *v, true
}

// ClearDeltaHintRate clears the value of the "delta_hint_rate" field.
func (m *RecommendationOutcomeMutation) ClearDeltaHintRate() {
	m.delta_hint_rate = nil
	m.adddelta_hint_rate = nil
	m.clearedFields[recommendationoutcome.FieldDeltaHintRate] = struct{}{}
}

// DeltaHintRateCleared returns if the "delta_hint_rate" field was cleared in this mutation.
func (m *RecommendationOutcomeMutation) DeltaHintRateCleared() bool {
	_, ok := m.clearedFields[recommendationoutcome.FieldDeltaHintRate]
	return ok
}

// ResetDeltaHintRate resets all changes to the "delta_hint_rate" field.
func (m *RecommendationOutcomeMutation) ResetDeltaHintRate() {
	m.delta_hint_rate = nil
	m.adddelta_hint_rate = nil
	delete(m.clearedFields, recommendationoutcome.FieldDeltaHintRate)
}

// SetComputedAt sets the "computed_at" field.
func (m *RecommendationOutcomeMutation) SetComputedAt(t time.Time) {
	m.computed_at = &t
}

// ComputedAt returns the value of the "computed_at" field in the mutation.
func (m *RecommendationOutcomeMutation) ComputedAt() (r time.Time, exists bool) {
	v := m.computed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldComputedAt returns the old "computed_at" field's value of the RecommendationOutcome entity.
// If the RecommendationOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationOutcomeMutation) OldComputedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComputedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComputedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComputedAt: %w", err)
	}
	return oldValue.ComputedAt, nil
}

// ResetComputedAt resets all changes to the "computed_at" field.
func (m *RecommendationOutcomeMutation) ResetComputedAt() {
	m.computed_at = nil
}

// SetEngineVersion sets the "engine_version" field.
func (m *RecommendationOutcomeMutation) SetEngineVersion(s string) {
	m.engine_version = &s
}

// EngineVersion returns the value of the "engine_version" field in the mutation.
func (m *RecommendationOutcomeMutation) EngineVersion() (r string, exists bool) {
	v := m.engine_version
	if v == nil {
		return
	}
	return *v, true
}

// OldEngineVersion returns the old "engine_version" field's value of the RecommendationOutcome entity.
// If the RecommendationOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationOutcomeMutation) OldEngineVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngineVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngineVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngineVersion: %w", err)
	}
	return oldValue.EngineVersion, nil
}

// ResetEngineVersion resets all changes to the "engine_version" field.
func (m *RecommendationOutcomeMutation) ResetEngineVersion() {
	m.engine_version = nil
}

// SetRulesetVersion sets the "ruleset_version" field.
func (m *RecommendationOutcomeMutation) SetRulesetVersion(s string) {
	m.ruleset_version = &s
}

// RulesetVersion returns the value of the "ruleset_version" field in the mutation.
func (m *RecommendationOutcomeMutation) RulesetVersion() (r string, exists bool) {
	v := m.ruleset_version
	if v == nil {
		return
	}
	return *v, true
}

// OldRulesetVersion returns the old "ruleset_version" field's value of the RecommendationOutcome entity.
// If the RecommendationOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationOutcomeMutation) OldRulesetVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRulesetVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRulesetVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRulesetVersion: %w", err)
	}
	return oldValue.RulesetVersion, nil
}

// ResetRulesetVersion resets all changes to the "ruleset_version" field.
func (m *RecommendationOutcomeMutation) ResetRulesetVersion() {
	m.ruleset_version = nil
}

// Where appends a list predicates to the RecommendationOutcomeMutation builder.
func (m *RecommendationOutcomeMutation) Where(ps ...predicate.RecommendationOutcome) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RecommendationOutcomeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RecommendationOutcomeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RecommendationOutcome, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RecommendationOutcomeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RecommendationOutcomeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RecommendationOutcome).
func (m *RecommendationOutcomeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RecommendationOutcomeMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.recommendation_id != nil {
		fields = append(fields, recommendationoutcome.FieldRecommendationID)
	}
	if m.window_start != nil {
		fields = append(fields, recommendationoutcome.FieldWindowStart)
	}
	if m.window_end != nil {
		fields = append(fields, recommendationoutcome.FieldWindowEnd)
	}
	if m.success != nil {
		fields = append(fields, recommendationoutcome.FieldSuccess)
	}
	if m.delta_mastery != nil {
		fields = append(fields, recommendationoutcome.FieldDeltaMastery)
	}
	if m.delta_accuracy != nil {
		fields = append(fields, recommendationoutcome.FieldDeltaAccuracy)
	}
	if m.delta_hint_rate != nil {
		fields = append(fields, recommendationoutcome.FieldDeltaHintRate)
	}
	if m.computed_at != nil {
		fields = append(fields, recommendationoutcome.FieldComputedAt)
	}
	if m.engine_version != nil {
		fields = append(fields, recommendationoutcome.FieldEngineVersion)
	}
	if m.ruleset_version != nil {
		fields = append(fields, recommendationoutcome.FieldRulesetVersion)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RecommendationOutcomeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case recommendationoutcome.FieldRecommendationID:
		return m.RecommendationID()
	case recommendationoutcome.FieldWindowStart:
		return m.WindowStart()
	case recommendationoutcome.FieldWindowEnd:
		return m.WindowEnd()
	case recommendationoutcome.FieldSuccess:
		return m.Success()
	case recommendationoutcome.FieldDeltaMastery:
		return m.DeltaMastery()
	case recommendationoutcome.FieldDeltaAccuracy:
		return m.DeltaAccuracy()
	case recommendationoutcome.FieldDeltaHintRate:
		return m.DeltaHintRate()
	case recommendationoutcome.FieldComputedAt:
		return m.ComputedAt()
	case recommendationoutcome.FieldEngineVersion:
		return m.EngineVersion()
	case recommendationoutcome.FieldRulesetVersion:
		return m.RulesetVersion()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RecommendationOutcomeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case recommendationoutcome.FieldRecommendationID:
		return m.OldRecommendationID(ctx)
	case recommendationoutcome.FieldWindowStart:
		return m.OldWindowStart(ctx)
	case recommendationoutcome.FieldWindowEnd:
		return m.OldWindowEnd(ctx)
	case recommendationoutcome.FieldSuccess:
		return m.OldSuccess(ctx)
	case recommendationoutcome.FieldDeltaMastery:
		return m.OldDeltaMastery(ctx)
	case recommendationoutcome.FieldDeltaAccuracy:
		return m.OldDeltaAccuracy(ctx)
	case recommendationoutcome.FieldDeltaHintRate:
		return m.OldDeltaHintRate(ctx)
	case recommendationoutcome.FieldComputedAt:
		return m.OldComputedAt(ctx)
	case recommendationoutcome.FieldEngineVersion:
		return m.OldEngineVersion(ctx)
	case recommendationoutcome.FieldRulesetVersion:
		return m.OldRulesetVersion(ctx)
	}
	return nil, fmt.Errorf("unknown RecommendationOutcome field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecommendationOutcomeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case recommendationoutcome.FieldRecommendationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendationID(v)
		return nil
	case recommendationoutcome.FieldWindowStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowStart(v)
		return nil
	case recommendationoutcome.FieldWindowEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowEnd(v)
		return nil
	case recommendationoutcome.FieldSuccess:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case recommendationoutcome.FieldDeltaMastery:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeltaMastery(v)
		return nil
	case recommendationoutcome.FieldDeltaAccuracy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeltaAccuracy(v)
		return nil
	case recommendationoutcome.FieldDeltaHintRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeltaHintRate(v)
		return nil
	case recommendationoutcome.FieldComputedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComputedAt(v)
		return nil
	case recommendationoutcome.FieldEngineVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngineVersion(v)
		return nil
	case recommendationoutcome.FieldRulesetVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRulesetVersion(v)
		return nil
	}
	return fmt.Errorf("unknown RecommendationOutcome field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RecommendationOutcomeMutation) AddedFields() []string {
	var fields []string
	if m.adddelta_mastery != nil {
		fields = append(fields, recommendationoutcome.FieldDeltaMastery)
	}
	if m.adddelta_accuracy != nil {
		fields = append(fields, recommendationoutcome.FieldDeltaAccuracy)
	}
	if m.adddelta_hint_rate != nil {
		fields = append(fields, recommendationoutcome.FieldDeltaHintRate)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RecommendationOutcomeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case recommendationoutcome.FieldDeltaMastery:
		return m.AddedDeltaMastery()
	case recommendationoutcome.FieldDeltaAccuracy:
		return m.AddedDeltaAccuracy()
	case recommendationoutcome.FieldDeltaHintRate:
		return m.AddedDeltaHintRate()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecommendationOutcomeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case recommendationoutcome.FieldDeltaMastery:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDeltaMastery(v)
		return nil
	case recommendationoutcome.FieldDeltaAccuracy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDeltaAccuracy(v)
		return nil
	case recommendationoutcome.FieldDeltaHintRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDeltaHintRate(v)
		return nil
	}
	return fmt.Errorf("unknown RecommendationOutcome numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RecommendationOutcomeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(recommendationoutcome.FieldDeltaMastery) {
		fields = append(fields, recommendationoutcome.FieldDeltaMastery)
	}
	if m.FieldCleared(recommendationoutcome.FieldDeltaAccuracy) {
		fields = append(fields, recommendationoutcome.FieldDeltaAccuracy)
	}
	if m.FieldCleared(recommendationoutcome.FieldDeltaHintRate) {
		fields = append(fields, recommendationoutcome.FieldDeltaHintRate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RecommendationOutcomeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RecommendationOutcomeMutation) ClearField(name string) error {
	switch name {
	case recommendationoutcome.FieldDeltaMastery:
		m.ClearDeltaMastery()
		return nil
	case recommendationoutcome.FieldDeltaAccuracy:
		m.ClearDeltaAccuracy()
		return nil
	case recommendationoutcome.FieldDeltaHintRate:
		m.ClearDeltaHintRate()
		return nil
	}
	return fmt.Errorf("unknown RecommendationOutcome nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RecommendationOutcomeMutation) ResetField(name string) error {
	switch name {
	case recommendationoutcome.FieldRecommendationID:
		m.ResetRecommendationID()
		return nil
	case recommendationoutcome.FieldWindowStart:
		m.ResetWindowStart()
		return nil
	case recommendationoutcome.FieldWindowEnd:
		m.ResetWindowEnd()
		return nil
	case recommendationoutcome.FieldSuccess:
		m.ResetSuccess()
		return nil
	case recommendationoutcome.FieldDeltaMastery:
		m.ResetDeltaMastery()
		return nil
	case recommendationoutcome.FieldDeltaAccuracy:
		m.ResetDeltaAccuracy()
		return nil
	case recommendationoutcome.FieldDeltaHintRate:
		m.ResetDeltaHintRate()
		return nil
	case recommendationoutcome.FieldComputedAt:
		m.ResetComputedAt()
		return nil
	case recommendationoutcome.FieldEngineVersion:
		m.ResetEngineVersion()
		return nil
	case recommendationoutcome.FieldRulesetVersion:
		m.ResetRulesetVersion()
		return nil
	}
	return fmt.Errorf("unknown RecommendationOutcome field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RecommendationOutcomeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RecommendationOutcomeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RecommendationOutcomeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RecommendationOutcomeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RecommendationOutcomeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RecommendationOutcomeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RecommendationOutcomeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RecommendationOutcome unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RecommendationOutcomeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RecommendationOutcome edge %s", name)
}

// TutorDecisionMutation represents an operation that mutates the TutorDecision nodes in the graph.
type TutorDecisionMutation struct {
	config
	op                Op
	typ               string
	id                *string
	recommendation_id *string
	tutor_id          *string
	decision          *string
	notes             *string
	decided_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*TutorDecision, error)
	predicates        []predicate.TutorDecision
}

var _ ent.Mutation = (*TutorDecisionMutation)(nil)

// tutordecisionOption allows management of the mutation configuration using functional options.
type tutordecisionOption func(*TutorDecisionMutation)

// newTutorDecisionMutation creates new mutation for the TutorDecision entity.
func newTutorDecisionMutation(c config, op Op, opts ...tutordecisionOption) *TutorDecisionMutation {
	m := &TutorDecisionMutation{
		config:        c,
		op:            op,
		typ:           TypeTutorDecision,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTutorDecisionID sets the ID field of the mutation.
func withTutorDecisionID(id string) tutordecisionOption {
	return func(m *TutorDecisionMutation) {
		var (
			err   error
			once  sync.Once
			value *TutorDecision
		)
		m.oldValue = func(ctx context.Context) (*TutorDecision, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TutorDecision.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTutorDecision sets the old TutorDecision of the mutation.
func withTutorDecision(node *TutorDecision) tutordecisionOption {
	return func(m *TutorDecisionMutation) {
		m.oldValue = func(context.Context) (*TutorDecision, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TutorDecisionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TutorDecisionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TutorDecision entities.
func (m *TutorDecisionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TutorDecisionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TutorDecisionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TutorDecision.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRecommendationID sets the "recommendation_id" field.
func (m *TutorDecisionMutation) SetRecommendationID(s string) {
	m.recommendation_id = &s
}

// RecommendationID returns the value of the "recommendation_id" field in the mutation.
func (m *TutorDecisionMutation) RecommendationID() (r string, exists bool) {
	v := m.recommendation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendationID returns the old "recommendation_id" field's value of the TutorDecision entity.
// If the TutorDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TutorDecisionMutation) OldRecommendationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendationID: %w", err)
	}
	return oldValue.RecommendationID, nil
}

// ResetRecommendationID resets all changes to the "recommendation_id" field.
func (m *TutorDecisionMutation) ResetRecommendationID() {
	m.recommendation_id = nil
}

// SetTutorID sets the "tutor_id" field.
func (m *TutorDecisionMutation) SetTutorID(s string) {
	m.tutor_id = &s
}

// TutorID returns the value of the "tutor_id" field in the mutation.
func (m *TutorDecisionMutation) TutorID() (r string, exists bool) {
	v := m.tutor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTutorID returns the old "tutor_id" field's value of the TutorDecision entity.
// If the TutorDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TutorDecisionMutation) OldTutorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTutorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTutorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTutorID: %w", err)
	}
	return oldValue.TutorID, nil
}

// ResetTutorID resets all changes to the "tutor_id" field.
func (m *TutorDecisionMutation) ResetTutorID() {
	m.tutor_id = nil
}

// SetDecision sets the "decision" field.
func (m *TutorDecisionMutation) SetDecision(s string) {
	m.decision = &s
}

// Decision returns the value of the "decision" field in the mutation.
func (m *TutorDecisionMutation) Decision() (r string, exists bool) {
	v := m.decision
	if v == nil {
		return
	}
	return *v, true
}

// OldDecision returns the old "decision" field's value of the TutorDecision entity.
// If the TutorDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TutorDecisionMutation) OldDecision(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecision: %w", err)
	}
	return oldValue.Decision, nil
}

// ResetDecision resets all changes to the "decision" field.
func (m *TutorDecisionMutation) ResetDecision() {
	m.decision = nil
}

// SetNotes sets the "notes" field.
func (m *TutorDecisionMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *TutorDecisionMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the TutorDecision entity.
// If the TutorDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TutorDecisionMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *TutorDecisionMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[tutordecision.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *TutorDecisionMutation) NotesCleared() bool {
	_, ok := m.clearedFields[tutordecision.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *TutorDecisionMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, tutordecision.FieldNotes)
}

// SetDecidedAt sets the "decided_at" field.
func (m *TutorDecisionMutation) SetDecidedAt(t time.Time) {
	m.decided_at = &t
}

// DecidedAt returns the value of the "decided_at" field in the mutation.
func (m *TutorDecisionMutation) DecidedAt() (r time.Time, exists bool) {
	v := m.decided_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDecidedAt returns the old "decided_at" field's value of the TutorDecision entity.
// If the TutorDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TutorDecisionMutation) OldDecidedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecidedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecidedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecidedAt: %w", err)
	}
	return oldValue.DecidedAt, nil
}

// ResetDecidedAt resets all changes to the "decided_at" field.
func (m *TutorDecisionMutation) ResetDecidedAt() {
	m.decided_at = nil
}

// Where appends a list predicates to the TutorDecisionMutation builder.
func (m *TutorDecisionMutation) Where(ps ...predicate.TutorDecision) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TutorDecisionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TutorDecisionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TutorDecision, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TutorDecisionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TutorDecisionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TutorDecision).
func (m *TutorDecisionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TutorDecisionMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.recommendation_id != nil {
		fields = append(fields, tutordecision.FieldRecommendationID)
	}
	if m.tutor_id != nil {
		fields = append(fields, tutordecision.FieldTutorID)
	}
	if m.decision != nil {
		fields = append(fields, tutordecision.FieldDecision)
	}
	if m.notes != nil {
		fields = append(fields, tutordecision.FieldNotes)
	}
	if m.decided_at != nil {
		fields = append(fields, tutordecision.FieldDecidedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TutorDecisionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tutordecision.FieldRecommendationID:
		return m.RecommendationID()
	case tutordecision.FieldTutorID:
		return m.TutorID()
	case tutordecision.FieldDecision:
		return m.Decision()
	case tutordecision.FieldNotes:
		return m.Notes()
	case tutordecision.FieldDecidedAt:
		return m.DecidedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TutorDecisionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tutordecision.FieldRecommendationID:
		return m.OldRecommendationID(ctx)
	case tutordecision.FieldTutorID:
		return m.OldTutorID(ctx)
	case tutordecision.FieldDecision:
		return m.OldDecision(ctx)
	case tutordecision.FieldNotes:
		return m.OldNotes(ctx)
	case tutordecision.FieldDecidedAt:
		return m.OldDecidedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TutorDecision field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TutorDecisionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tutordecision.FieldRecommendationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendationID(v)
		return nil
	case tutordecision.FieldTutorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTutorID(v)
		return nil
	case tutordecision.FieldDecision:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecision(v)
		return nil
	case tutordecision.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case tutordecision.FieldDecidedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecidedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TutorDecision field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TutorDecisionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TutorDecisionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TutorDecisionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TutorDecision numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TutorDecisionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tutordecision.FieldNotes) {
		fields = append(fields, tutordecision.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TutorDecisionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TutorDecisionMutation) ClearField(name string) error {
	switch name {
	case tutordecision.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown TutorDecision nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TutorDecisionMutation) ResetField(name string) error {
	switch name {
	case tutordecision.FieldRecommendationID:
		m.ResetRecommendationID()
		return nil
	case tutordecision.FieldTutorID:
		m.ResetTutorID()
		return nil
	case tutordecision.FieldDecision:
		m.ResetDecision()
		return nil
	case tutordecision.FieldNotes:
		m.ResetNotes()
		return nil
	case tutordecision.FieldDecidedAt:
		m.ResetDecidedAt()
		return nil
	}
	return fmt.Errorf("unknown TutorDecision field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TutorDecisionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TutorDecisionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TutorDecisionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TutorDecisionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TutorDecisionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TutorDecisionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TutorDecisionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TutorDecision unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TutorDecisionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TutorDecision edge %s", name)
}
