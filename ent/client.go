// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/diversifica/decies-platform-sub000/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/diversifica/decies-platform-sub000/ent/activitysession"
	"github.com/diversifica/decies-platform-sub000/ent/masterystate"
	"github.com/diversifica/decies-platform-sub000/ent/metricaggregate"
	"github.com/diversifica/decies-platform-sub000/ent/microconcept"
	"github.com/diversifica/decies-platform-sub000/ent/practiceevent"
	"github.com/diversifica/decies-platform-sub000/ent/prerequisiteedge"
	"github.com/diversifica/decies-platform-sub000/ent/recommendation"
	"github.com/diversifica/decies-platform-sub000/ent/recommendationevidence"
	"github.com/diversifica/decies-platform-sub000/ent/recommendationoutcome"
	"github.com/diversifica/decies-platform-sub000/ent/tutordecision"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ActivitySession is the client for interacting with the ActivitySession builders.
	ActivitySession *ActivitySessionClient
	// MasteryState is the client for interacting with the MasteryState builders.
	MasteryState *MasteryStateClient
	// MetricAggregate is the client for interacting with the MetricAggregate builders.
	MetricAggregate *MetricAggregateClient
	// MicroConcept is the client for interacting with the MicroConcept builders.
	MicroConcept *MicroConceptClient
	// PracticeEvent is the client for interacting with the PracticeEvent builders.
	PracticeEvent *PracticeEventClient
	// PrerequisiteEdge is the client for interacting with the PrerequisiteEdge builders.
	PrerequisiteEdge *PrerequisiteEdgeClient
	// Recommendation is the client for interacting with the Recommendation builders.
	Recommendation *RecommendationClient
	// RecommendationEvidence is the client for interacting with the RecommendationEvidence builders.
	RecommendationEvidence *RecommendationEvidenceClient
	// RecommendationOutcome is the client for interacting with the RecommendationOutcome builders.
	RecommendationOutcome *RecommendationOutcomeClient
	// TutorDecision is the client for interacting with the TutorDecision builders.
	TutorDecision *TutorDecisionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ActivitySession = NewActivitySessionClient(c.config)
	c.MasteryState = NewMasteryStateClient(c.config)
	c.MetricAggregate = NewMetricAggregateClient(c.config)
	c.MicroConcept = NewMicroConceptClient(c.config)
	c.PracticeEvent = NewPracticeEventClient(c.config)
	c.PrerequisiteEdge = NewPrerequisiteEdgeClient(c.config)
	c.Recommendation = NewRecommendationClient(c.config)
	c.RecommendationEvidence = NewRecommendationEvidenceClient(c.config)
	c.RecommendationOutcome = NewRecommendationOutcomeClient(c.config)
	c.TutorDecision = NewTutorDecisionClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                    ctx,
		config:                 cfg,
		ActivitySession:        NewActivitySessionClient(cfg),
		MasteryState:           NewMasteryStateClient(cfg),
		MetricAggregate:        NewMetricAggregateClient(cfg),
		MicroConcept:           NewMicroConceptClient(cfg),
		PracticeEvent:          NewPracticeEventClient(cfg),
		PrerequisiteEdge:       NewPrerequisiteEdgeClient(cfg),
		Recommendation:         NewRecommendationClient(cfg),
		RecommendationEvidence: NewRecommendationEvidenceClient(cfg),
		RecommendationOutcome:  NewRecommendationOutcomeClient(cfg),
		TutorDecision:          NewTutorDecisionClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                    ctx,
		config:                 cfg,
		ActivitySession:        NewActivitySessionClient(cfg),
		MasteryState:           NewMasteryStateClient(cfg),
		MetricAggregate:        NewMetricAggregateClient(cfg),
		MicroConcept:           NewMicroConceptClient(cfg),
		PracticeEvent:          NewPracticeEventClient(cfg),
		PrerequisiteEdge:       NewPrerequisiteEdgeClient(cfg),
		Recommendation:         NewRecommendationClient(cfg),
		RecommendationEvidence: NewRecommendationEvidenceClient(cfg),
		RecommendationOutcome:  NewRecommendationOutcomeClient(cfg),
		TutorDecision:          NewTutorDecisionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ActivitySession.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.ActivitySession, c.MasteryState, c.MetricAggregate, c.MicroConcept,
		c.PracticeEvent, c.PrerequisiteEdge, c.Recommendation,
		c.RecommendationEvidence, c.RecommendationOutcome, c.TutorDecision,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ActivitySession, c.MasteryState, c.MetricAggregate, c.MicroConcept,
		c.PracticeEvent, c.PrerequisiteEdge, c.Recommendation,
		c.RecommendationEvidence, c.RecommendationOutcome, c.TutorDecision,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ActivitySessionMutation:
		return c.ActivitySession.mutate(ctx, m)
	case *MasteryStateMutation:
		return c.MasteryState.mutate(ctx, m)
	case *MetricAggregateMutation:
		return c.MetricAggregate.mutate(ctx, m)
	case *MicroConceptMutation:
		return c.MicroConcept.mutate(ctx, m)
	case *PracticeEventMutation:
		return c.PracticeEvent.mutate(ctx, m)
	case *PrerequisiteEdgeMutation:
		return c.PrerequisiteEdge.mutate(ctx, m)
	case *RecommendationMutation:
		return c.Recommendation.mutate(ctx, m)
	case *RecommendationEvidenceMutation:
		return c.RecommendationEvidence.mutate(ctx, m)
	case *RecommendationOutcomeMutation:
		return c.RecommendationOutcome.mutate(ctx, m)
	case *TutorDecisionMutation:
		return c.TutorDecision.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ActivitySessionClient is a client for the ActivitySession schema.
type ActivitySessionClient struct {
	config
}

// NewActivitySessionClient returns a client for the ActivitySession from the given config.
func NewActivitySessionClient(c config) *ActivitySessionClient {
	return &ActivitySessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `activitysession.Hooks(f(g(h())))`.
func (c *ActivitySessionClient) Use(hooks ...Hook) {
	c.hooks.ActivitySession = append(c.hooks.ActivitySession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `activitysession.Intercept(f(g(h())))`.
func (c *ActivitySessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ActivitySession = append(c.inters.ActivitySession, interceptors...)
}

// Create returns a builder for creating a ActivitySession entity.
func (c *ActivitySessionClient) Create() *ActivitySessionCreate {
	mutation := newActivitySessionMutation(c.config, OpCreate)
	return &ActivitySessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ActivitySession entities.
func (c *ActivitySessionClient) CreateBulk(builders ...*ActivitySessionCreate) *ActivitySessionCreateBulk {
	return &ActivitySessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ActivitySessionClient) MapCreateBulk(slice any, setFunc func(*ActivitySessionCreate, int)) *ActivitySessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ActivitySessionCreateBulk{err: fmt.Errorf("calling to ActivitySessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ActivitySessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ActivitySessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ActivitySession.
func (c *ActivitySessionClient) Update() *ActivitySessionUpdate {
	mutation := newActivitySessionMutation(c.config, OpUpdate)
	return &ActivitySessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ActivitySessionClient) UpdateOne(_m *ActivitySession) *ActivitySessionUpdateOne {
	mutation := newActivitySessionMutation(c.config, OpUpdateOne, withActivitySession(_m))
	return &ActivitySessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ActivitySessionClient) UpdateOneID(id int) *ActivitySessionUpdateOne {
	mutation := newActivitySessionMutation(c.config, OpUpdateOne, withActivitySessionID(id))
	return &ActivitySessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ActivitySession.
func (c *ActivitySessionClient) Delete() *ActivitySessionDelete {
	mutation := newActivitySessionMutation(c.config, OpDelete)
	return &ActivitySessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ActivitySessionClient) DeleteOne(_m *ActivitySession) *ActivitySessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ActivitySessionClient) DeleteOneID(id int) *ActivitySessionDeleteOne {
	builder := c.Delete().Where(activitysession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ActivitySessionDeleteOne{builder}
}

// Query returns a query builder for ActivitySession.
func (c *ActivitySessionClient) Query() *ActivitySessionQuery {
	return &ActivitySessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeActivitySession},
		inters: c.Interceptors(),
	}
}

// Get returns a ActivitySession entity by its id.
func (c *ActivitySessionClient) Get(ctx context.Context, id int) (*ActivitySession, error) {
	return c.Query().Where(activitysession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ActivitySessionClient) GetX(ctx context.Context, id int) *ActivitySession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ActivitySessionClient) Hooks() []Hook {
	return c.hooks.ActivitySession
}

// Interceptors returns the client interceptors.
func (c *ActivitySessionClient) Interceptors() []Interceptor {
	return c.inters.ActivitySession
}

func (c *ActivitySessionClient) mutate(ctx context.Context, m *ActivitySessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ActivitySessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ActivitySessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ActivitySessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ActivitySessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ActivitySession mutation op: %q", m.Op())
	}
}

// MasteryStateClient is a client for the MasteryState schema.
type MasteryStateClient struct {
	config
}

// NewMasteryStateClient returns a client for the MasteryState from the given config.
func NewMasteryStateClient(c config) *MasteryStateClient {
	return &MasteryStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `masterystate.Hooks(f(g(h())))`.
func (c *MasteryStateClient) Use(hooks ...Hook) {
	c.hooks.MasteryState = append(c.hooks.MasteryState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `masterystate.Intercept(f(g(h())))`.
func (c *MasteryStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.MasteryState = append(c.inters.MasteryState, interceptors...)
}

// Create returns a builder for creating a MasteryState entity.
func (c *MasteryStateClient) Create() *MasteryStateCreate {
	mutation := newMasteryStateMutation(c.config, OpCreate)
	return &MasteryStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MasteryState entities.
func (c *MasteryStateClient) CreateBulk(builders ...*MasteryStateCreate) *MasteryStateCreateBulk {
	return &MasteryStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MasteryStateClient) MapCreateBulk(slice any, setFunc func(*MasteryStateCreate, int)) *MasteryStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MasteryStateCreateBulk{err: fmt.Errorf("calling to MasteryStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MasteryStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MasteryStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MasteryState.
func (c *MasteryStateClient) Update() *MasteryStateUpdate {
	mutation := newMasteryStateMutation(c.config, OpUpdate)
	return &MasteryStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MasteryStateClient) UpdateOne(_m *MasteryState) *MasteryStateUpdateOne {
	mutation := newMasteryStateMutation(c.config, OpUpdateOne, withMasteryState(_m))
	return &MasteryStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MasteryStateClient) UpdateOneID(id int) *MasteryStateUpdateOne {
	mutation := newMasteryStateMutation(c.config, OpUpdateOne, withMasteryStateID(id))
	return &MasteryStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MasteryState.
func (c *MasteryStateClient) Delete() *MasteryStateDelete {
	mutation := newMasteryStateMutation(c.config, OpDelete)
	return &MasteryStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MasteryStateClient) DeleteOne(_m *MasteryState) *MasteryStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MasteryStateClient) DeleteOneID(id int) *MasteryStateDeleteOne {
	builder := c.Delete().Where(masterystate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MasteryStateDeleteOne{builder}
}

// Query returns a query builder for MasteryState.
func (c *MasteryStateClient) Query() *MasteryStateQuery {
	return &MasteryStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMasteryState},
		inters: c.Interceptors(),
	}
}

// Get returns a MasteryState entity by its id.
func (c *MasteryStateClient) Get(ctx context.Context, id int) (*MasteryState, error) {
	return c.Query().Where(masterystate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MasteryStateClient) GetX(ctx context.Context, id int) *MasteryState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MasteryStateClient) Hooks() []Hook {
	return c.hooks.MasteryState
}

// Interceptors returns the client interceptors.
func (c *MasteryStateClient) Interceptors() []Interceptor {
	return c.inters.MasteryState
}

func (c *MasteryStateClient) mutate(ctx context.Context, m *MasteryStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MasteryStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MasteryStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MasteryStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MasteryStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MasteryState mutation op: %q", m.Op())
	}
}

// MetricAggregateClient is a client for the MetricAggregate schema.
type MetricAggregateClient struct {
	config
}

// NewMetricAggregateClient returns a client for the MetricAggregate from the given config.
func NewMetricAggregateClient(c config) *MetricAggregateClient {
	return &MetricAggregateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `metricaggregate.Hooks(f(g(h())))`.
func (c *MetricAggregateClient) Use(hooks ...Hook) {
	c.hooks.MetricAggregate = append(c.hooks.MetricAggregate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `metricaggregate.Intercept(f(g(h())))`.
func (c *MetricAggregateClient) Intercept(interceptors ...Interceptor) {
	c.inters.MetricAggregate = append(c.inters.MetricAggregate, interceptors...)
}

// Create returns a builder for creating a MetricAggregate entity.
func (c *MetricAggregateClient) Create() *MetricAggregateCreate {
	mutation := newMetricAggregateMutation(c.config, OpCreate)
	return &MetricAggregateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MetricAggregate entities.
func (c *MetricAggregateClient) CreateBulk(builders ...*MetricAggregateCreate) *MetricAggregateCreateBulk {
	return &MetricAggregateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MetricAggregateClient) MapCreateBulk(slice any, setFunc func(*MetricAggregateCreate, int)) *MetricAggregateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MetricAggregateCreateBulk{err: fmt.Errorf("calling to MetricAggregateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MetricAggregateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MetricAggregateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MetricAggregate.
func (c *MetricAggregateClient) Update() *MetricAggregateUpdate {
	mutation := newMetricAggregateMutation(c.config, OpUpdate)
	return &MetricAggregateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MetricAggregateClient) UpdateOne(_m *MetricAggregate) *MetricAggregateUpdateOne {
	mutation := newMetricAggregateMutation(c.config, OpUpdateOne, withMetricAggregate(_m))
	return &MetricAggregateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MetricAggregateClient) UpdateOneID(id int) *MetricAggregateUpdateOne {
	mutation := newMetricAggregateMutation(c.config, OpUpdateOne, withMetricAggregateID(id))
	return &MetricAggregateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MetricAggregate.
func (c *MetricAggregateClient) Delete() *MetricAggregateDelete {
	mutation := newMetricAggregateMutation(c.config, OpDelete)
	return &MetricAggregateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MetricAggregateClient) DeleteOne(_m *MetricAggregate) *MetricAggregateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MetricAggregateClient) DeleteOneID(id int) *MetricAggregateDeleteOne {
	builder := c.Delete().Where(metricaggregate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MetricAggregateDeleteOne{builder}
}

// Query returns a query builder for MetricAggregate.
func (c *MetricAggregateClient) Query() *MetricAggregateQuery {
	return &MetricAggregateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMetricAggregate},
		inters: c.Interceptors(),
	}
}

// Get returns a MetricAggregate entity by its id.
func (c *MetricAggregateClient) Get(ctx context.Context, id int) (*MetricAggregate, error) {
	return c.Query().Where(metricaggregate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MetricAggregateClient) GetX(ctx context.Context, id int) *MetricAggregate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MetricAggregateClient) Hooks() []Hook {
	return c.hooks.MetricAggregate
}

// Interceptors returns the client interceptors.
func (c *MetricAggregateClient) Interceptors() []Interceptor {
	return c.inters.MetricAggregate
}

func (c *MetricAggregateClient) mutate(ctx context.Context, m *MetricAggregateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MetricAggregateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MetricAggregateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MetricAggregateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MetricAggregateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MetricAggregate mutation op: %q", m.Op())
	}
}

// MicroConceptClient is a client for the MicroConcept schema.
type MicroConceptClient struct {
	config
}

// NewMicroConceptClient returns a client for the MicroConcept from the given config.
func NewMicroConceptClient(c config) *MicroConceptClient {
	return &MicroConceptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `microconcept.Hooks(f(g(h())))`.
func (c *MicroConceptClient) Use(hooks ...Hook) {
	c.hooks.MicroConcept = append(c.hooks.MicroConcept, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `microconcept.Intercept(f(g(h())))`.
func (c *MicroConceptClient) Intercept(interceptors ...Interceptor) {
	c.inters.MicroConcept = append(c.inters.MicroConcept, interceptors...)
}

// Create returns a builder for creating a MicroConcept entity.
func (c *MicroConceptClient) Create() *MicroConceptCreate {
	mutation := newMicroConceptMutation(c.config, OpCreate)
	return &MicroConceptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MicroConcept entities.
func (c *MicroConceptClient) CreateBulk(builders ...*MicroConceptCreate) *MicroConceptCreateBulk {
	return &MicroConceptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MicroConceptClient) MapCreateBulk(slice any, setFunc func(*MicroConceptCreate, int)) *MicroConceptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MicroConceptCreateBulk{err: fmt.Errorf("calling to MicroConceptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MicroConceptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MicroConceptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MicroConcept.
func (c *MicroConceptClient) Update() *MicroConceptUpdate {
	mutation := newMicroConceptMutation(c.config, OpUpdate)
	return &MicroConceptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MicroConceptClient) UpdateOne(_m *MicroConcept) *MicroConceptUpdateOne {
	mutation := newMicroConceptMutation(c.config, OpUpdateOne, withMicroConcept(_m))
	return &MicroConceptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MicroConceptClient) UpdateOneID(id int) *MicroConceptUpdateOne {
	mutation := newMicroConceptMutation(c.config, OpUpdateOne, withMicroConceptID(id))
	return &MicroConceptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MicroConcept.
func (c *MicroConceptClient) Delete() *MicroConceptDelete {
	mutation := newMicroConceptMutation(c.config, OpDelete)
	return &MicroConceptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MicroConceptClient) DeleteOne(_m *MicroConcept) *MicroConceptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MicroConceptClient) DeleteOneID(id int) *MicroConceptDeleteOne {
	builder := c.Delete().Where(microconcept.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MicroConceptDeleteOne{builder}
}

// Query returns a query builder for MicroConcept.
func (c *MicroConceptClient) Query() *MicroConceptQuery {
	return &MicroConceptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMicroConcept},
		inters: c.Interceptors(),
	}
}

// Get returns a MicroConcept entity by its id.
func (c *MicroConceptClient) Get(ctx context.Context, id int) (*MicroConcept, error) {
	return c.Query().Where(microconcept.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MicroConceptClient) GetX(ctx context.Context, id int) *MicroConcept {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MicroConceptClient) Hooks() []Hook {
	return c.hooks.MicroConcept
}

// Interceptors returns the client interceptors.
func (c *MicroConceptClient) Interceptors() []Interceptor {
	return c.inters.MicroConcept
}

func (c *MicroConceptClient) mutate(ctx context.Context, m *MicroConceptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MicroConceptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MicroConceptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MicroConceptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MicroConceptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MicroConcept mutation op: %q", m.Op())
	}
}

// PracticeEventClient is a client for the PracticeEvent schema.
type PracticeEventClient struct {
	config
}

// NewPracticeEventClient returns a client for the PracticeEvent from the given config.
func NewPracticeEventClient(c config) *PracticeEventClient {
	return &PracticeEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `practiceevent.Hooks(f(g(h())))`.
func (c *PracticeEventClient) Use(hooks ...Hook) {
	c.hooks.PracticeEvent = append(c.hooks.PracticeEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `practiceevent.Intercept(f(g(h())))`.
func (c *PracticeEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.PracticeEvent = append(c.inters.PracticeEvent, interceptors...)
}

// Create returns a builder for creating a PracticeEvent entity.
func (c *PracticeEventClient) Create() *PracticeEventCreate {
	mutation := newPracticeEventMutation(c.config, OpCreate)
	return &PracticeEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PracticeEvent entities.
func (c *PracticeEventClient) CreateBulk(builders ...*PracticeEventCreate) *PracticeEventCreateBulk {
	return &PracticeEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PracticeEventClient) MapCreateBulk(slice any, setFunc func(*PracticeEventCreate, int)) *PracticeEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PracticeEventCreateBulk{err: fmt.Errorf("calling to PracticeEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PracticeEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PracticeEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PracticeEvent.
func (c *PracticeEventClient) Update() *PracticeEventUpdate {
	mutation := newPracticeEventMutation(c.config, OpUpdate)
	return &PracticeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PracticeEventClient) UpdateOne(_m *PracticeEvent) *PracticeEventUpdateOne {
	mutation := newPracticeEventMutation(c.config, OpUpdateOne, withPracticeEvent(_m))
	return &PracticeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PracticeEventClient) UpdateOneID(id int) *PracticeEventUpdateOne {
	mutation := newPracticeEventMutation(c.config, OpUpdateOne, withPracticeEventID(id))
	return &PracticeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PracticeEvent.
func (c *PracticeEventClient) Delete() *PracticeEventDelete {
	mutation := newPracticeEventMutation(c.config, OpDelete)
	return &PracticeEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PracticeEventClient) DeleteOne(_m *PracticeEvent) *PracticeEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PracticeEventClient) DeleteOneID(id int) *PracticeEventDeleteOne {
	builder := c.Delete().Where(practiceevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PracticeEventDeleteOne{builder}
}

// Query returns a query builder for PracticeEvent.
func (c *PracticeEventClient) Query() *PracticeEventQuery {
	return &PracticeEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePracticeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a PracticeEvent entity by its id.
func (c *PracticeEventClient) Get(ctx context.Context, id int) (*PracticeEvent, error) {
	return c.Query().Where(practiceevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PracticeEventClient) GetX(ctx context.Context, id int) *PracticeEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PracticeEventClient) Hooks() []Hook {
	return c.hooks.PracticeEvent
}

// Interceptors returns the client interceptors.
func (c *PracticeEventClient) Interceptors() []Interceptor {
	return c.inters.PracticeEvent
}

func (c *PracticeEventClient) mutate(ctx context.Context, m *PracticeEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PracticeEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PracticeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PracticeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PracticeEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PracticeEvent mutation op: %q", m.Op())
	}
}

// PrerequisiteEdgeClient is a client for the PrerequisiteEdge schema.
type PrerequisiteEdgeClient struct {
	config
}

// NewPrerequisiteEdgeClient returns a client for the PrerequisiteEdge from the given config.
func NewPrerequisiteEdgeClient(c config) *PrerequisiteEdgeClient {
	return &PrerequisiteEdgeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `prerequisiteedge.Hooks(f(g(h())))`.
func (c *PrerequisiteEdgeClient) Use(hooks ...Hook) {
	c.hooks.PrerequisiteEdge = append(c.hooks.PrerequisiteEdge, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `prerequisiteedge.Intercept(f(g(h())))`.
func (c *PrerequisiteEdgeClient) Intercept(interceptors ...Interceptor) {
	c.inters.PrerequisiteEdge = append(c.inters.PrerequisiteEdge, interceptors...)
}

// Create returns a builder for creating a PrerequisiteEdge entity.
func (c *PrerequisiteEdgeClient) Create() *PrerequisiteEdgeCreate {
	mutation := newPrerequisiteEdgeMutation(c.config, OpCreate)
	return &PrerequisiteEdgeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PrerequisiteEdge entities.
func (c *PrerequisiteEdgeClient) CreateBulk(builders ...*PrerequisiteEdgeCreate) *PrerequisiteEdgeCreateBulk {
	return &PrerequisiteEdgeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PrerequisiteEdgeClient) MapCreateBulk(slice any, setFunc func(*PrerequisiteEdgeCreate, int)) *PrerequisiteEdgeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PrerequisiteEdgeCreateBulk{err: fmt.Errorf("calling to PrerequisiteEdgeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PrerequisiteEdgeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PrerequisiteEdgeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PrerequisiteEdge.
func (c *PrerequisiteEdgeClient) Update() *PrerequisiteEdgeUpdate {
	mutation := newPrerequisiteEdgeMutation(c.config, OpUpdate)
	return &PrerequisiteEdgeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PrerequisiteEdgeClient) UpdateOne(_m *PrerequisiteEdge) *PrerequisiteEdgeUpdateOne {
	mutation := newPrerequisiteEdgeMutation(c.config, OpUpdateOne, withPrerequisiteEdge(_m))
	return &PrerequisiteEdgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PrerequisiteEdgeClient) UpdateOneID(id int) *PrerequisiteEdgeUpdateOne {
	mutation := newPrerequisiteEdgeMutation(c.config, OpUpdateOne, withPrerequisiteEdgeID(id))
	return &PrerequisiteEdgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PrerequisiteEdge.
func (c *PrerequisiteEdgeClient) Delete() *PrerequisiteEdgeDelete {
	mutation := newPrerequisiteEdgeMutation(c.config, OpDelete)
	return &PrerequisiteEdgeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PrerequisiteEdgeClient) DeleteOne(_m *PrerequisiteEdge) *PrerequisiteEdgeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PrerequisiteEdgeClient) DeleteOneID(id int) *PrerequisiteEdgeDeleteOne {
	builder := c.Delete().Where(prerequisiteedge.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PrerequisiteEdgeDeleteOne{builder}
}

// Query returns a query builder for PrerequisiteEdge.
func (c *PrerequisiteEdgeClient) Query() *PrerequisiteEdgeQuery {
	return &PrerequisiteEdgeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePrerequisiteEdge},
		inters: c.Interceptors(),
	}
}

// Get returns a PrerequisiteEdge entity by its id.
func (c *PrerequisiteEdgeClient) Get(ctx context.Context, id int) (*PrerequisiteEdge, error) {
	return c.Query().Where(prerequisiteedge.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PrerequisiteEdgeClient) GetX(ctx context.Context, id int) *PrerequisiteEdge {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PrerequisiteEdgeClient) Hooks() []Hook {
	return c.hooks.PrerequisiteEdge
}

// Interceptors returns the client interceptors.
func (c *PrerequisiteEdgeClient) Interceptors() []Interceptor {
	return c.inters.PrerequisiteEdge
}

func (c *PrerequisiteEdgeClient) mutate(ctx context.Context, m *PrerequisiteEdgeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PrerequisiteEdgeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PrerequisiteEdgeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PrerequisiteEdgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PrerequisiteEdgeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PrerequisiteEdge mutation op: %q", m.Op())
	}
}

// RecommendationClient is a client for the Recommendation schema.
type RecommendationClient struct {
	config
}

// NewRecommendationClient returns a client for the Recommendation from the given config.
func NewRecommendationClient(c config) *RecommendationClient {
	return &RecommendationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `recommendation.Hooks(f(g(h())))`.
func (c *RecommendationClient) Use(hooks ...Hook) {
	c.hooks.Recommendation = append(c.hooks.Recommendation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `recommendation.Intercept(f(g(h())))`.
func (c *RecommendationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Recommendation = append(c.inters.Recommendation, interceptors...)
}

// Create returns a builder for creating a Recommendation entity.
func (c *RecommendationClient) Create() *RecommendationCreate {
	mutation := newRecommendationMutation(c.config, OpCreate)
	return &RecommendationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Recommendation entities.
func (c *RecommendationClient) CreateBulk(builders ...*RecommendationCreate) *RecommendationCreateBulk {
	return &RecommendationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RecommendationClient) MapCreateBulk(slice any, setFunc func(*RecommendationCreate, int)) *RecommendationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RecommendationCreateBulk{err: fmt.Errorf("calling to RecommendationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RecommendationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RecommendationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Recommendation.
func (c *RecommendationClient) Update() *RecommendationUpdate {
	mutation := newRecommendationMutation(c.config, OpUpdate)
	return &RecommendationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RecommendationClient) UpdateOne(_m *Recommendation) *RecommendationUpdateOne {
	mutation := newRecommendationMutation(c.config, OpUpdateOne, withRecommendation(_m))
	return &RecommendationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RecommendationClient) UpdateOneID(id string) *RecommendationUpdateOne {
	mutation := newRecommendationMutation(c.config, OpUpdateOne, withRecommendationID(id))
	return &RecommendationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Recommendation.
func (c *RecommendationClient) Delete() *RecommendationDelete {
	mutation := newRecommendationMutation(c.config, OpDelete)
	return &RecommendationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RecommendationClient) DeleteOne(_m *Recommendation) *RecommendationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RecommendationClient) DeleteOneID(id string) *RecommendationDeleteOne {
	builder := c.Delete().Where(recommendation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RecommendationDeleteOne{builder}
}

// Query returns a query builder for Recommendation.
func (c *RecommendationClient) Query() *RecommendationQuery {
	return &RecommendationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRecommendation},
		inters: c.Interceptors(),
	}
}

// Get returns a Recommendation entity by its id.
func (c *RecommendationClient) Get(ctx context.Context, id string) (*Recommendation, error) {
	return c.Query().Where(recommendation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RecommendationClient) GetX(ctx context.Context, id string) *Recommendation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RecommendationClient) Hooks() []Hook {
	return c.hooks.Recommendation
}

// Interceptors returns the client interceptors.
func (c *RecommendationClient) Interceptors() []Interceptor {
	return c.inters.Recommendation
}

func (c *RecommendationClient) mutate(ctx context.Context, m *RecommendationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RecommendationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RecommendationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RecommendationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RecommendationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Recommendation mutation op: %q", m.Op())
	}
}

// RecommendationEvidenceClient is a client for the RecommendationEvidence schema.
type RecommendationEvidenceClient struct {
	config
}

// NewRecommendationEvidenceClient returns a client for the RecommendationEvidence from the given config.
func NewRecommendationEvidenceClient(c config) *RecommendationEvidenceClient {
	return &RecommendationEvidenceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `recommendationevidence.Hooks(f(g(h())))`.
func (c *RecommendationEvidenceClient) Use(hooks ...Hook) {
	c.hooks.RecommendationEvidence = append(c.hooks.RecommendationEvidence, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `recommendationevidence.Intercept(f(g(h())))`.
func (c *RecommendationEvidenceClient) Intercept(interceptors ...Interceptor) {
	c.inters.RecommendationEvidence = append(c.inters.RecommendationEvidence, interceptors...)
}

// Create returns a builder for creating a RecommendationEvidence entity.
func (c *RecommendationEvidenceClient) Create() *RecommendationEvidenceCreate {
	mutation := newRecommendationEvidenceMutation(c.config, OpCreate)
	return &RecommendationEvidenceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RecommendationEvidence entities.
func (c *RecommendationEvidenceClient) CreateBulk(builders ...*RecommendationEvidenceCreate) *RecommendationEvidenceCreateBulk {
	return &RecommendationEvidenceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RecommendationEvidenceClient) MapCreateBulk(slice any, setFunc func(*RecommendationEvidenceCreate, int)) *RecommendationEvidenceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RecommendationEvidenceCreateBulk{err: fmt.Errorf("calling to RecommendationEvidenceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RecommendationEvidenceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RecommendationEvidenceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RecommendationEvidence.
func (c *RecommendationEvidenceClient) Update() *RecommendationEvidenceUpdate {
	mutation := newRecommendationEvidenceMutation(c.config, OpUpdate)
	return &RecommendationEvidenceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RecommendationEvidenceClient) UpdateOne(_m *RecommendationEvidence) *RecommendationEvidenceUpdateOne {
	mutation := newRecommendationEvidenceMutation(c.config, OpUpdateOne, withRecommendationEvidence(_m))
	return &RecommendationEvidenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RecommendationEvidenceClient) UpdateOneID(id int) *RecommendationEvidenceUpdateOne {
	mutation := newRecommendationEvidenceMutation(c.config, OpUpdateOne, withRecommendationEvidenceID(id))
	return &RecommendationEvidenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RecommendationEvidence.
func (c *RecommendationEvidenceClient) Delete() *RecommendationEvidenceDelete {
	mutation := newRecommendationEvidenceMutation(c.config, OpDelete)
	return &RecommendationEvidenceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RecommendationEvidenceClient) DeleteOne(_m *RecommendationEvidence) *RecommendationEvidenceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RecommendationEvidenceClient) DeleteOneID(id int) *RecommendationEvidenceDeleteOne {
	builder := c.Delete().Where(recommendationevidence.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RecommendationEvidenceDeleteOne{builder}
}

// Query returns a query builder for RecommendationEvidence.
func (c *RecommendationEvidenceClient) Query() *RecommendationEvidenceQuery {
	return &RecommendationEvidenceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRecommendationEvidence},
		inters: c.Interceptors(),
	}
}

// Get returns a RecommendationEvidence entity by its id.
func (c *RecommendationEvidenceClient) Get(ctx context.Context, id int) (*RecommendationEvidence, error) {
	return c.Query().Where(recommendationevidence.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RecommendationEvidenceClient) GetX(ctx context.Context, id int) *RecommendationEvidence {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RecommendationEvidenceClient) Hooks() []Hook {
	return c.hooks.RecommendationEvidence
}

// Interceptors returns the client interceptors.
func (c *RecommendationEvidenceClient) Interceptors() []Interceptor {
	return c.inters.RecommendationEvidence
}

func (c *RecommendationEvidenceClient) mutate(ctx context.Context, m *RecommendationEvidenceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RecommendationEvidenceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RecommendationEvidenceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RecommendationEvidenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RecommendationEvidenceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RecommendationEvidence mutation op: %q", m.Op())
	}
}

// RecommendationOutcomeClient is a client for the RecommendationOutcome schema.
type RecommendationOutcomeClient struct {
	config
}

// NewRecommendationOutcomeClient returns a client for the RecommendationOutcome from the given config.
func NewRecommendationOutcomeClient(c config) *RecommendationOutcomeClient {
	return &RecommendationOutcomeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `recommendationoutcome.Hooks(f(g(h())))`.
func (c *RecommendationOutcomeClient) Use(hooks ...Hook) {
	c.hooks.RecommendationOutcome = append(c.hooks.RecommendationOutcome, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `recommendationoutcome.Intercept(f(g(h())))`.
func (c *RecommendationOutcomeClient) Intercept(interceptors ...Interceptor) {
	c.inters.RecommendationOutcome = append(c.inters.RecommendationOutcome, interceptors...)
}

// Create returns a builder for creating a RecommendationOutcome entity.
func (c *RecommendationOutcomeClient) Create() *RecommendationOutcomeCreate {
	mutation := newRecommendationOutcomeMutation(c.config, OpCreate)
	return &RecommendationOutcomeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RecommendationOutcome entities.
func (c *RecommendationOutcomeClient) CreateBulk(builders ...*RecommendationOutcomeCreate) *RecommendationOutcomeCreateBulk {
	return &RecommendationOutcomeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RecommendationOutcomeClient) MapCreateBulk(slice any, setFunc func(*RecommendationOutcomeCreate, int)) *RecommendationOutcomeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RecommendationOutcomeCreateBulk{err: fmt.Errorf("calling to RecommendationOutcomeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RecommendationOutcomeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RecommendationOutcomeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RecommendationOutcome.
func (c *RecommendationOutcomeClient) Update() *RecommendationOutcomeUpdate {
	mutation := newRecommendationOutcomeMutation(c.config, OpUpdate)
	return &RecommendationOutcomeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RecommendationOutcomeClient) UpdateOne(_m *RecommendationOutcome) *RecommendationOutcomeUpdateOne {
	mutation := newRecommendationOutcomeMutation(c.config, OpUpdateOne, withRecommendationOutcome(_m))
	return &RecommendationOutcomeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RecommendationOutcomeClient) UpdateOneID(id string) *RecommendationOutcomeUpdateOne {
	mutation := newRecommendationOutcomeMutation(c.config, OpUpdateOne, withRecommendationOutcomeID(id))
	return &RecommendationOutcomeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RecommendationOutcome.
func (c *RecommendationOutcomeClient) Delete() *RecommendationOutcomeDelete {
	mutation := newRecommendationOutcomeMutation(c.config, OpDelete)
	return &RecommendationOutcomeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RecommendationOutcomeClient) DeleteOne(_m *RecommendationOutcome) *RecommendationOutcomeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RecommendationOutcomeClient) DeleteOneID(id string) *RecommendationOutcomeDeleteOne {
	builder := c.Delete().Where(recommendationoutcome.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RecommendationOutcomeDeleteOne{builder}
}

// Query returns a query builder for RecommendationOutcome.
func (c *RecommendationOutcomeClient) Query() *RecommendationOutcomeQuery {
	return &RecommendationOutcomeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRecommendationOutcome},
		inters: c.Interceptors(),
	}
}

// Get returns a RecommendationOutcome entity by its id.
func (c *RecommendationOutcomeClient) Get(ctx context.Context, id string) (*RecommendationOutcome, error) {
	return c.Query().Where(recommendationoutcome.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RecommendationOutcomeClient) GetX(ctx context.Context, id string) *RecommendationOutcome {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RecommendationOutcomeClient) Hooks() []Hook {
	return c.hooks.RecommendationOutcome
}

// Interceptors returns the client interceptors.
func (c *RecommendationOutcomeClient) Interceptors() []Interceptor {
	return c.inters.RecommendationOutcome
}

func (c *RecommendationOutcomeClient) mutate(ctx context.Context, m *RecommendationOutcomeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RecommendationOutcomeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RecommendationOutcomeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RecommendationOutcomeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RecommendationOutcomeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RecommendationOutcome mutation op: %q", m.Op())
	}
}

// TutorDecisionClient is a client for the TutorDecision schema.
type TutorDecisionClient struct {
	config
}

// NewTutorDecisionClient returns a client for the TutorDecision from the given config.
func NewTutorDecisionClient(c config) *TutorDecisionClient {
	return &TutorDecisionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tutordecision.Hooks(f(g(h())))`.
func (c *TutorDecisionClient) Use(hooks ...Hook) {
	c.hooks.TutorDecision = append(c.hooks.TutorDecision, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tutordecision.Intercept(f(g(h())))`.
func (c *TutorDecisionClient) Intercept(interceptors ...Interceptor) {
	c.inters.TutorDecision = append(c.inters.TutorDecision, interceptors...)
}

// Create returns a builder for creating a TutorDecision entity.
func (c *TutorDecisionClient) Create() *TutorDecisionCreate {
	mutation := newTutorDecisionMutation(c.config, OpCreate)
	return &TutorDecisionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TutorDecision entities.
func (c *TutorDecisionClient) CreateBulk(builders ...*TutorDecisionCreate) *TutorDecisionCreateBulk {
	return &TutorDecisionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TutorDecisionClient) MapCreateBulk(slice any, setFunc func(*TutorDecisionCreate, int)) *TutorDecisionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TutorDecisionCreateBulk{err: fmt.Errorf("calling to TutorDecisionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TutorDecisionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TutorDecisionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TutorDecision.
func (c *TutorDecisionClient) Update() *TutorDecisionUpdate {
	mutation := newTutorDecisionMutation(c.config, OpUpdate)
	return &TutorDecisionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TutorDecisionClient) UpdateOne(_m *TutorDecision) *TutorDecisionUpdateOne {
	mutation := newTutorDecisionMutation(c.config, OpUpdateOne, withTutorDecision(_m))
	return &TutorDecisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TutorDecisionClient) UpdateOneID(id string) *TutorDecisionUpdateOne {
	mutation := newTutorDecisionMutation(c.config, OpUpdateOne, withTutorDecisionID(id))
	return &TutorDecisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TutorDecision.
func (c *TutorDecisionClient) Delete() *TutorDecisionDelete {
	mutation := newTutorDecisionMutation(c.config, OpDelete)
	return &TutorDecisionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TutorDecisionClient) DeleteOne(_m *TutorDecision) *TutorDecisionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TutorDecisionClient) DeleteOneID(id string) *TutorDecisionDeleteOne {
	builder := c.Delete().Where(tutordecision.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TutorDecisionDeleteOne{builder}
}

// Query returns a query builder for TutorDecision.
func (c *TutorDecisionClient) Query() *TutorDecisionQuery {
	return &TutorDecisionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTutorDecision},
		inters: c.Interceptors(),
	}
}

// Get returns a TutorDecision entity by its id.
func (c *TutorDecisionClient) Get(ctx context.Context, id string) (*TutorDecision, error) {
	return c.Query().Where(tutordecision.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TutorDecisionClient) GetX(ctx context.Context, id string) *TutorDecision {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TutorDecisionClient) Hooks() []Hook {
	return c.hooks.TutorDecision
}

// Interceptors returns the client interceptors.
func (c *TutorDecisionClient) Interceptors() []Interceptor {
	return c.inters.TutorDecision
}

func (c *TutorDecisionClient) mutate(ctx context.Context, m *TutorDecisionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TutorDecisionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TutorDecisionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TutorDecisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TutorDecisionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TutorDecision mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ActivitySession, MasteryState, MetricAggregate, MicroConcept, PracticeEvent,
		PrerequisiteEdge, Recommendation, RecommendationEvidence,
		RecommendationOutcome, TutorDecision []ent.Hook
	}
	inters struct {
		ActivitySession, MasteryState, MetricAggregate, MicroConcept, PracticeEvent,
		PrerequisiteEdge, Recommendation, RecommendationEvidence,
		RecommendationOutcome, TutorDecision []ent.Interceptor
	}
)
