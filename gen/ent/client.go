// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/gradepilot/gradepilot/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/gradepilot/gradepilot/gen/ent/graderesult"
	"github.com/gradepilot/gradepilot/gen/ent/gradingjob"
	"github.com/gradepilot/gradepilot/gen/ent/submission"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// GradeResult is the client for interacting with the GradeResult builders.
	GradeResult *GradeResultClient
	// GradingJob is the client for interacting with the GradingJob builders.
	GradingJob *GradingJobClient
	// Submission is the client for interacting with the Submission builders.
	Submission *SubmissionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.GradeResult = NewGradeResultClient(c.config)
	c.GradingJob = NewGradingJobClient(c.config)
	c.Submission = NewSubmissionClient(c.config)
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
		ctx:         ctx,
		config:      cfg,
		GradeResult: NewGradeResultClient(cfg),
		GradingJob:  NewGradingJobClient(cfg),
		Submission:  NewSubmissionClient(cfg),
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
		ctx:         ctx,
		config:      cfg,
		GradeResult: NewGradeResultClient(cfg),
		GradingJob:  NewGradingJobClient(cfg),
		Submission:  NewSubmissionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		GradeResult.
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
	c.GradeResult.Use(hooks...)
	c.GradingJob.Use(hooks...)
	c.Submission.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.GradeResult.Intercept(interceptors...)
	c.GradingJob.Intercept(interceptors...)
	c.Submission.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *GradeResultMutation:
		return c.GradeResult.mutate(ctx, m)
	case *GradingJobMutation:
		return c.GradingJob.mutate(ctx, m)
	case *SubmissionMutation:
		return c.Submission.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// GradeResultClient is a client for the GradeResult schema.
type GradeResultClient struct {
	config
}

// NewGradeResultClient returns a client for the GradeResult from the given config.
func NewGradeResultClient(c config) *GradeResultClient {
	return &GradeResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `graderesult.Hooks(f(g(h())))`.
func (c *GradeResultClient) Use(hooks ...Hook) {
	c.hooks.GradeResult = append(c.hooks.GradeResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `graderesult.Intercept(f(g(h())))`.
func (c *GradeResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.GradeResult = append(c.inters.GradeResult, interceptors...)
}

// Create returns a builder for creating a GradeResult entity.
func (c *GradeResultClient) Create() *GradeResultCreate {
	mutation := newGradeResultMutation(c.config, OpCreate)
	return &GradeResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GradeResult entities.
func (c *GradeResultClient) CreateBulk(builders ...*GradeResultCreate) *GradeResultCreateBulk {
	return &GradeResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GradeResultClient) MapCreateBulk(slice any, setFunc func(*GradeResultCreate, int)) *GradeResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GradeResultCreateBulk{err: fmt.Errorf("calling to GradeResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GradeResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GradeResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GradeResult.
func (c *GradeResultClient) Update() *GradeResultUpdate {
	mutation := newGradeResultMutation(c.config, OpUpdate)
	return &GradeResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GradeResultClient) UpdateOne(_m *GradeResult) *GradeResultUpdateOne {
	mutation := newGradeResultMutation(c.config, OpUpdateOne, withGradeResult(_m))
	return &GradeResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GradeResultClient) UpdateOneID(id uuid.UUID) *GradeResultUpdateOne {
	mutation := newGradeResultMutation(c.config, OpUpdateOne, withGradeResultID(id))
	return &GradeResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GradeResult.
func (c *GradeResultClient) Delete() *GradeResultDelete {
	mutation := newGradeResultMutation(c.config, OpDelete)
	return &GradeResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GradeResultClient) DeleteOne(_m *GradeResult) *GradeResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GradeResultClient) DeleteOneID(id uuid.UUID) *GradeResultDeleteOne {
	builder := c.Delete().Where(graderesult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GradeResultDeleteOne{builder}
}

// Query returns a query builder for GradeResult.
func (c *GradeResultClient) Query() *GradeResultQuery {
	return &GradeResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGradeResult},
		inters: c.Interceptors(),
	}
}

// Get returns a GradeResult entity by its id.
func (c *GradeResultClient) Get(ctx context.Context, id uuid.UUID) (*GradeResult, error) {
	return c.Query().Where(graderesult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GradeResultClient) GetX(ctx context.Context, id uuid.UUID) *GradeResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySubmission queries the submission edge of a GradeResult.
func (c *GradeResultClient) QuerySubmission(_m *GradeResult) *SubmissionQuery {
	query := (&SubmissionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(graderesult.Table, graderesult.FieldID, id),
			sqlgraph.To(submission.Table, submission.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, graderesult.SubmissionTable, graderesult.SubmissionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *GradeResultClient) Hooks() []Hook {
	return c.hooks.GradeResult
}

// Interceptors returns the client interceptors.
func (c *GradeResultClient) Interceptors() []Interceptor {
	return c.inters.GradeResult
}

func (c *GradeResultClient) mutate(ctx context.Context, m *GradeResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GradeResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GradeResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GradeResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GradeResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GradeResult mutation op: %q", m.Op())
	}
}

// GradingJobClient is a client for the GradingJob schema.
type GradingJobClient struct {
	config
}

// NewGradingJobClient returns a client for the GradingJob from the given config.
func NewGradingJobClient(c config) *GradingJobClient {
	return &GradingJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `gradingjob.Hooks(f(g(h())))`.
func (c *GradingJobClient) Use(hooks ...Hook) {
	c.hooks.GradingJob = append(c.hooks.GradingJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `gradingjob.Intercept(f(g(h())))`.
func (c *GradingJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.GradingJob = append(c.inters.GradingJob, interceptors...)
}

// Create returns a builder for creating a GradingJob entity.
func (c *GradingJobClient) Create() *GradingJobCreate {
	mutation := newGradingJobMutation(c.config, OpCreate)
	return &GradingJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GradingJob entities.
func (c *GradingJobClient) CreateBulk(builders ...*GradingJobCreate) *GradingJobCreateBulk {
	return &GradingJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GradingJobClient) MapCreateBulk(slice any, setFunc func(*GradingJobCreate, int)) *GradingJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GradingJobCreateBulk{err: fmt.Errorf("calling to GradingJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GradingJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GradingJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GradingJob.
func (c *GradingJobClient) Update() *GradingJobUpdate {
	mutation := newGradingJobMutation(c.config, OpUpdate)
	return &GradingJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GradingJobClient) UpdateOne(_m *GradingJob) *GradingJobUpdateOne {
	mutation := newGradingJobMutation(c.config, OpUpdateOne, withGradingJob(_m))
	return &GradingJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GradingJobClient) UpdateOneID(id uuid.UUID) *GradingJobUpdateOne {
	mutation := newGradingJobMutation(c.config, OpUpdateOne, withGradingJobID(id))
	return &GradingJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GradingJob.
func (c *GradingJobClient) Delete() *GradingJobDelete {
	mutation := newGradingJobMutation(c.config, OpDelete)
	return &GradingJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GradingJobClient) DeleteOne(_m *GradingJob) *GradingJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GradingJobClient) DeleteOneID(id uuid.UUID) *GradingJobDeleteOne {
	builder := c.Delete().Where(gradingjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GradingJobDeleteOne{builder}
}

// Query returns a query builder for GradingJob.
func (c *GradingJobClient) Query() *GradingJobQuery {
	return &GradingJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGradingJob},
		inters: c.Interceptors(),
	}
}

// Get returns a GradingJob entity by its id.
func (c *GradingJobClient) Get(ctx context.Context, id uuid.UUID) (*GradingJob, error) {
	return c.Query().Where(gradingjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GradingJobClient) GetX(ctx context.Context, id uuid.UUID) *GradingJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySubmissions queries the submissions edge of a GradingJob.
func (c *GradingJobClient) QuerySubmissions(_m *GradingJob) *SubmissionQuery {
	query := (&SubmissionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(gradingjob.Table, gradingjob.FieldID, id),
			sqlgraph.To(submission.Table, submission.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, gradingjob.SubmissionsTable, gradingjob.SubmissionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *GradingJobClient) Hooks() []Hook {
	return c.hooks.GradingJob
}

// Interceptors returns the client interceptors.
func (c *GradingJobClient) Interceptors() []Interceptor {
	return c.inters.GradingJob
}

func (c *GradingJobClient) mutate(ctx context.Context, m *GradingJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GradingJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GradingJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GradingJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GradingJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GradingJob mutation op: %q", m.Op())
	}
}

// SubmissionClient is a client for the Submission schema.
type SubmissionClient struct {
	config
}

// NewSubmissionClient returns a client for the Submission from the given config.
func NewSubmissionClient(c config) *SubmissionClient {
	return &SubmissionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `submission.Hooks(f(g(h())))`.
func (c *SubmissionClient) Use(hooks ...Hook) {
	c.hooks.Submission = append(c.hooks.Submission, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `submission.Intercept(f(g(h())))`.
func (c *SubmissionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Submission = append(c.inters.Submission, interceptors...)
}

// Create returns a builder for creating a Submission entity.
func (c *SubmissionClient) Create() *SubmissionCreate {
	mutation := newSubmissionMutation(c.config, OpCreate)
	return &SubmissionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Submission entities.
func (c *SubmissionClient) CreateBulk(builders ...*SubmissionCreate) *SubmissionCreateBulk {
	return &SubmissionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubmissionClient) MapCreateBulk(slice any, setFunc func(*SubmissionCreate, int)) *SubmissionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubmissionCreateBulk{err: fmt.Errorf("calling to SubmissionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubmissionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubmissionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Submission.
func (c *SubmissionClient) Update() *SubmissionUpdate {
	mutation := newSubmissionMutation(c.config, OpUpdate)
	return &SubmissionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubmissionClient) UpdateOne(_m *Submission) *SubmissionUpdateOne {
	mutation := newSubmissionMutation(c.config, OpUpdateOne, withSubmission(_m))
	return &SubmissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubmissionClient) UpdateOneID(id uuid.UUID) *SubmissionUpdateOne {
	mutation := newSubmissionMutation(c.config, OpUpdateOne, withSubmissionID(id))
	return &SubmissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Submission.
func (c *SubmissionClient) Delete() *SubmissionDelete {
	mutation := newSubmissionMutation(c.config, OpDelete)
	return &SubmissionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubmissionClient) DeleteOne(_m *Submission) *SubmissionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubmissionClient) DeleteOneID(id uuid.UUID) *SubmissionDeleteOne {
	builder := c.Delete().Where(submission.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubmissionDeleteOne{builder}
}

// Query returns a query builder for Submission.
func (c *SubmissionClient) Query() *SubmissionQuery {
	return &SubmissionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubmission},
		inters: c.Interceptors(),
	}
}

// Get returns a Submission entity by its id.
func (c *SubmissionClient) Get(ctx context.Context, id uuid.UUID) (*Submission, error) {
	return c.Query().Where(submission.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubmissionClient) GetX(ctx context.Context, id uuid.UUID) *Submission {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a Submission.
func (c *SubmissionClient) QueryJob(_m *Submission) *GradingJobQuery {
	query := (&GradingJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(submission.Table, submission.FieldID, id),
			sqlgraph.To(gradingjob.Table, gradingjob.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, submission.JobTable, submission.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryGradeResult queries the grade_result edge of a Submission.
func (c *SubmissionClient) QueryGradeResult(_m *Submission) *GradeResultQuery {
	query := (&GradeResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(submission.Table, submission.FieldID, id),
			sqlgraph.To(graderesult.Table, graderesult.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, submission.GradeResultTable, submission.GradeResultColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SubmissionClient) Hooks() []Hook {
	return c.hooks.Submission
}

// Interceptors returns the client interceptors.
func (c *SubmissionClient) Interceptors() []Interceptor {
	return c.inters.Submission
}

func (c *SubmissionClient) mutate(ctx context.Context, m *SubmissionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubmissionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubmissionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubmissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubmissionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Submission mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		GradeResult, GradingJob, Submission []ent.Hook
	}
	inters struct {
		GradeResult, GradingJob, Submission []ent.Interceptor
	}
)
