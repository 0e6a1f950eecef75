// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/labtrail/labtrail/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/labtrail/labtrail/ent/adminaction"
	"github.com/labtrail/labtrail/ent/analyte"
	"github.com/labtrail/labtrail/ent/analytealias"
	"github.com/labtrail/labtrail/ent/labresult"
	"github.com/labtrail/labtrail/ent/matchreview"
	"github.com/labtrail/labtrail/ent/patient"
	"github.com/labtrail/labtrail/ent/pendinganalyte"
	"github.com/labtrail/labtrail/ent/report"
	"github.com/labtrail/labtrail/ent/user"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AdminAction is the client for interacting with the AdminAction builders.
	AdminAction *AdminActionClient
	// Analyte is the client for interacting with the Analyte builders.
	Analyte *AnalyteClient
	// AnalyteAlias is the client for interacting with the AnalyteAlias builders.
	AnalyteAlias *AnalyteAliasClient
	// LabResult is the client for interacting with the LabResult builders.
	LabResult *LabResultClient
	// MatchReview is the client for interacting with the MatchReview builders.
	MatchReview *MatchReviewClient
	// Patient is the client for interacting with the Patient builders.
	Patient *PatientClient
	// PendingAnalyte is the client for interacting with the PendingAnalyte builders.
	PendingAnalyte *PendingAnalyteClient
	// Report is the client for interacting with the Report builders.
	Report *ReportClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AdminAction = NewAdminActionClient(c.config)
	c.Analyte = NewAnalyteClient(c.config)
	c.AnalyteAlias = NewAnalyteAliasClient(c.config)
	c.LabResult = NewLabResultClient(c.config)
	c.MatchReview = NewMatchReviewClient(c.config)
	c.Patient = NewPatientClient(c.config)
	c.PendingAnalyte = NewPendingAnalyteClient(c.config)
	c.Report = NewReportClient(c.config)
	c.User = NewUserClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		AdminAction:    NewAdminActionClient(cfg),
		Analyte:        NewAnalyteClient(cfg),
		AnalyteAlias:   NewAnalyteAliasClient(cfg),
		LabResult:      NewLabResultClient(cfg),
		MatchReview:    NewMatchReviewClient(cfg),
		Patient:        NewPatientClient(cfg),
		PendingAnalyte: NewPendingAnalyteClient(cfg),
		Report:         NewReportClient(cfg),
		User:           NewUserClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		AdminAction:    NewAdminActionClient(cfg),
		Analyte:        NewAnalyteClient(cfg),
		AnalyteAlias:   NewAnalyteAliasClient(cfg),
		LabResult:      NewLabResultClient(cfg),
		MatchReview:    NewMatchReviewClient(cfg),
		Patient:        NewPatientClient(cfg),
		PendingAnalyte: NewPendingAnalyteClient(cfg),
		Report:         NewReportClient(cfg),
		User:           NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AdminAction.
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
		c.AdminAction, c.Analyte, c.AnalyteAlias, c.LabResult, c.MatchReview, c.Patient,
		c.PendingAnalyte, c.Report, c.User,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AdminAction, c.Analyte, c.AnalyteAlias, c.LabResult, c.MatchReview, c.Patient,
		c.PendingAnalyte, c.Report, c.User,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AdminActionMutation:
		return c.AdminAction.mutate(ctx, m)
	case *AnalyteMutation:
		return c.Analyte.mutate(ctx, m)
	case *AnalyteAliasMutation:
		return c.AnalyteAlias.mutate(ctx, m)
	case *LabResultMutation:
		return c.LabResult.mutate(ctx, m)
	case *MatchReviewMutation:
		return c.MatchReview.mutate(ctx, m)
	case *PatientMutation:
		return c.Patient.mutate(ctx, m)
	case *PendingAnalyteMutation:
		return c.PendingAnalyte.mutate(ctx, m)
	case *ReportMutation:
		return c.Report.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AdminActionClient is a client for the AdminAction schema.
type AdminActionClient struct {
	config
}

// NewAdminActionClient returns a client for the AdminAction from the given config.
func NewAdminActionClient(c config) *AdminActionClient {
	return &AdminActionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `adminaction.Hooks(f(g(h())))`.
func (c *AdminActionClient) Use(hooks ...Hook) {
	c.hooks.AdminAction = append(c.hooks.AdminAction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `adminaction.Intercept(f(g(h())))`.
func (c *AdminActionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AdminAction = append(c.inters.AdminAction, interceptors...)
}

// Create returns a builder for creating a AdminAction entity.
func (c *AdminActionClient) Create() *AdminActionCreate {
	mutation := newAdminActionMutation(c.config, OpCreate)
	return &AdminActionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AdminAction entities.
func (c *AdminActionClient) CreateBulk(builders ...*AdminActionCreate) *AdminActionCreateBulk {
	return &AdminActionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AdminActionClient) MapCreateBulk(slice any, setFunc func(*AdminActionCreate, int)) *AdminActionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AdminActionCreateBulk{err: fmt.Errorf("calling to AdminActionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AdminActionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AdminActionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AdminAction.
func (c *AdminActionClient) Update() *AdminActionUpdate {
	mutation := newAdminActionMutation(c.config, OpUpdate)
	return &AdminActionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AdminActionClient) UpdateOne(_m *AdminAction) *AdminActionUpdateOne {
	mutation := newAdminActionMutation(c.config, OpUpdateOne, withAdminAction(_m))
	return &AdminActionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AdminActionClient) UpdateOneID(id uuid.UUID) *AdminActionUpdateOne {
	mutation := newAdminActionMutation(c.config, OpUpdateOne, withAdminActionID(id))
	return &AdminActionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AdminAction.
func (c *AdminActionClient) Delete() *AdminActionDelete {
	mutation := newAdminActionMutation(c.config, OpDelete)
	return &AdminActionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AdminActionClient) DeleteOne(_m *AdminAction) *AdminActionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AdminActionClient) DeleteOneID(id uuid.UUID) *AdminActionDeleteOne {
	builder := c.Delete().Where(adminaction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AdminActionDeleteOne{builder}
}

// Query returns a query builder for AdminAction.
func (c *AdminActionClient) Query() *AdminActionQuery {
	return &AdminActionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAdminAction},
		inters: c.Interceptors(),
	}
}

// Get returns a AdminAction entity by its id.
func (c *AdminActionClient) Get(ctx context.Context, id uuid.UUID) (*AdminAction, error) {
	return c.Query().Where(adminaction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AdminActionClient) GetX(ctx context.Context, id uuid.UUID) *AdminAction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AdminActionClient) Hooks() []Hook {
	return c.hooks.AdminAction
}

// Interceptors returns the client interceptors.
func (c *AdminActionClient) Interceptors() []Interceptor {
	return c.inters.AdminAction
}

func (c *AdminActionClient) mutate(ctx context.Context, m *AdminActionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AdminActionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AdminActionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AdminActionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AdminActionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AdminAction mutation op: %q", m.Op())
	}
}

// AnalyteClient is a client for the Analyte schema.
type AnalyteClient struct {
	config
}

// NewAnalyteClient returns a client for the Analyte from the given config.
func NewAnalyteClient(c config) *AnalyteClient {
	return &AnalyteClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `analyte.Hooks(f(g(h())))`.
func (c *AnalyteClient) Use(hooks ...Hook) {
	c.hooks.Analyte = append(c.hooks.Analyte, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `analyte.Intercept(f(g(h())))`.
func (c *AnalyteClient) Intercept(interceptors ...Interceptor) {
	c.inters.Analyte = append(c.inters.Analyte, interceptors...)
}

// Create returns a builder for creating a Analyte entity.
func (c *AnalyteClient) Create() *AnalyteCreate {
	mutation := newAnalyteMutation(c.config, OpCreate)
	return &AnalyteCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Analyte entities.
func (c *AnalyteClient) CreateBulk(builders ...*AnalyteCreate) *AnalyteCreateBulk {
	return &AnalyteCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnalyteClient) MapCreateBulk(slice any, setFunc func(*AnalyteCreate, int)) *AnalyteCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnalyteCreateBulk{err: fmt.Errorf("calling to AnalyteClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnalyteCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnalyteCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Analyte.
func (c *AnalyteClient) Update() *AnalyteUpdate {
	mutation := newAnalyteMutation(c.config, OpUpdate)
	return &AnalyteUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnalyteClient) UpdateOne(_m *Analyte) *AnalyteUpdateOne {
	mutation := newAnalyteMutation(c.config, OpUpdateOne, withAnalyte(_m))
	return &AnalyteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnalyteClient) UpdateOneID(id uuid.UUID) *AnalyteUpdateOne {
	mutation := newAnalyteMutation(c.config, OpUpdateOne, withAnalyteID(id))
	return &AnalyteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Analyte.
func (c *AnalyteClient) Delete() *AnalyteDelete {
	mutation := newAnalyteMutation(c.config, OpDelete)
	return &AnalyteDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnalyteClient) DeleteOne(_m *Analyte) *AnalyteDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnalyteClient) DeleteOneID(id uuid.UUID) *AnalyteDeleteOne {
	builder := c.Delete().Where(analyte.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnalyteDeleteOne{builder}
}

// Query returns a query builder for Analyte.
func (c *AnalyteClient) Query() *AnalyteQuery {
	return &AnalyteQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnalyte},
		inters: c.Interceptors(),
	}
}

// Get returns a Analyte entity by its id.
func (c *AnalyteClient) Get(ctx context.Context, id uuid.UUID) (*Analyte, error) {
	return c.Query().Where(analyte.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnalyteClient) GetX(ctx context.Context, id uuid.UUID) *Analyte {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAliases queries the aliases edge of a Analyte.
func (c *AnalyteClient) QueryAliases(_m *Analyte) *AnalyteAliasQuery {
	query := (&AnalyteAliasClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(analyte.Table, analyte.FieldID, id),
			sqlgraph.To(analytealias.Table, analytealias.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, analyte.AliasesTable, analyte.AliasesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryResults queries the results edge of a Analyte.
func (c *AnalyteClient) QueryResults(_m *Analyte) *LabResultQuery {
	query := (&LabResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(analyte.Table, analyte.FieldID, id),
			sqlgraph.To(labresult.Table, labresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, analyte.ResultsTable, analyte.ResultsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AnalyteClient) Hooks() []Hook {
	return c.hooks.Analyte
}

// Interceptors returns the client interceptors.
func (c *AnalyteClient) Interceptors() []Interceptor {
	return c.inters.Analyte
}

func (c *AnalyteClient) mutate(ctx context.Context, m *AnalyteMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnalyteCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnalyteUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnalyteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnalyteDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Analyte mutation op: %q", m.Op())
	}
}

// AnalyteAliasClient is a client for the AnalyteAlias schema.
type AnalyteAliasClient struct {
	config
}

// NewAnalyteAliasClient returns a client for the AnalyteAlias from the given config.
func NewAnalyteAliasClient(c config) *AnalyteAliasClient {
	return &AnalyteAliasClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `analytealias.Hooks(f(g(h())))`.
func (c *AnalyteAliasClient) Use(hooks ...Hook) {
	c.hooks.AnalyteAlias = append(c.hooks.AnalyteAlias, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `analytealias.Intercept(f(g(h())))`.
func (c *AnalyteAliasClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnalyteAlias = append(c.inters.AnalyteAlias, interceptors...)
}

// Create returns a builder for creating a AnalyteAlias entity.
func (c *AnalyteAliasClient) Create() *AnalyteAliasCreate {
	mutation := newAnalyteAliasMutation(c.config, OpCreate)
	return &AnalyteAliasCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnalyteAlias entities.
func (c *AnalyteAliasClient) CreateBulk(builders ...*AnalyteAliasCreate) *AnalyteAliasCreateBulk {
	return &AnalyteAliasCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnalyteAliasClient) MapCreateBulk(slice any, setFunc func(*AnalyteAliasCreate, int)) *AnalyteAliasCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnalyteAliasCreateBulk{err: fmt.Errorf("calling to AnalyteAliasClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnalyteAliasCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnalyteAliasCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnalyteAlias.
func (c *AnalyteAliasClient) Update() *AnalyteAliasUpdate {
	mutation := newAnalyteAliasMutation(c.config, OpUpdate)
	return &AnalyteAliasUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnalyteAliasClient) UpdateOne(_m *AnalyteAlias) *AnalyteAliasUpdateOne {
	mutation := newAnalyteAliasMutation(c.config, OpUpdateOne, withAnalyteAlias(_m))
	return &AnalyteAliasUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnalyteAliasClient) UpdateOneID(id uuid.UUID) *AnalyteAliasUpdateOne {
	mutation := newAnalyteAliasMutation(c.config, OpUpdateOne, withAnalyteAliasID(id))
	return &AnalyteAliasUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnalyteAlias.
func (c *AnalyteAliasClient) Delete() *AnalyteAliasDelete {
	mutation := newAnalyteAliasMutation(c.config, OpDelete)
	return &AnalyteAliasDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnalyteAliasClient) DeleteOne(_m *AnalyteAlias) *AnalyteAliasDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnalyteAliasClient) DeleteOneID(id uuid.UUID) *AnalyteAliasDeleteOne {
	builder := c.Delete().Where(analytealias.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnalyteAliasDeleteOne{builder}
}

// Query returns a query builder for AnalyteAlias.
func (c *AnalyteAliasClient) Query() *AnalyteAliasQuery {
	return &AnalyteAliasQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnalyteAlias},
		inters: c.Interceptors(),
	}
}

// Get returns a AnalyteAlias entity by its id.
func (c *AnalyteAliasClient) Get(ctx context.Context, id uuid.UUID) (*AnalyteAlias, error) {
	return c.Query().Where(analytealias.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnalyteAliasClient) GetX(ctx context.Context, id uuid.UUID) *AnalyteAlias {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAnalyte queries the analyte edge of a AnalyteAlias.
func (c *AnalyteAliasClient) QueryAnalyte(_m *AnalyteAlias) *AnalyteQuery {
	query := (&AnalyteClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(analytealias.Table, analytealias.FieldID, id),
			sqlgraph.To(analyte.Table, analyte.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, analytealias.AnalyteTable, analytealias.AnalyteColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AnalyteAliasClient) Hooks() []Hook {
	return c.hooks.AnalyteAlias
}

// Interceptors returns the client interceptors.
func (c *AnalyteAliasClient) Interceptors() []Interceptor {
	return c.inters.AnalyteAlias
}

func (c *AnalyteAliasClient) mutate(ctx context.Context, m *AnalyteAliasMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnalyteAliasCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnalyteAliasUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnalyteAliasUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnalyteAliasDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnalyteAlias mutation op: %q", m.Op())
	}
}

// LabResultClient is a client for the LabResult schema.
type LabResultClient struct {
	config
}

// NewLabResultClient returns a client for the LabResult from the given config.
func NewLabResultClient(c config) *LabResultClient {
	return &LabResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `labresult.Hooks(f(g(h())))`.
func (c *LabResultClient) Use(hooks ...Hook) {
	c.hooks.LabResult = append(c.hooks.LabResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `labresult.Intercept(f(g(h())))`.
func (c *LabResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.LabResult = append(c.inters.LabResult, interceptors...)
}

// Create returns a builder for creating a LabResult entity.
func (c *LabResultClient) Create() *LabResultCreate {
	mutation := newLabResultMutation(c.config, OpCreate)
	return &LabResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LabResult entities.
func (c *LabResultClient) CreateBulk(builders ...*LabResultCreate) *LabResultCreateBulk {
	return &LabResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LabResultClient) MapCreateBulk(slice any, setFunc func(*LabResultCreate, int)) *LabResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LabResultCreateBulk{err: fmt.Errorf("calling to LabResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LabResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LabResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LabResult.
func (c *LabResultClient) Update() *LabResultUpdate {
	mutation := newLabResultMutation(c.config, OpUpdate)
	return &LabResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LabResultClient) UpdateOne(_m *LabResult) *LabResultUpdateOne {
	mutation := newLabResultMutation(c.config, OpUpdateOne, withLabResult(_m))
	return &LabResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LabResultClient) UpdateOneID(id uuid.UUID) *LabResultUpdateOne {
	mutation := newLabResultMutation(c.config, OpUpdateOne, withLabResultID(id))
	return &LabResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LabResult.
func (c *LabResultClient) Delete() *LabResultDelete {
	mutation := newLabResultMutation(c.config, OpDelete)
	return &LabResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LabResultClient) DeleteOne(_m *LabResult) *LabResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LabResultClient) DeleteOneID(id uuid.UUID) *LabResultDeleteOne {
	builder := c.Delete().Where(labresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LabResultDeleteOne{builder}
}

// Query returns a query builder for LabResult.
func (c *LabResultClient) Query() *LabResultQuery {
	return &LabResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLabResult},
		inters: c.Interceptors(),
	}
}

// Get returns a LabResult entity by its id.
func (c *LabResultClient) Get(ctx context.Context, id uuid.UUID) (*LabResult, error) {
	return c.Query().Where(labresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LabResultClient) GetX(ctx context.Context, id uuid.UUID) *LabResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryReport queries the report edge of a LabResult.
func (c *LabResultClient) QueryReport(_m *LabResult) *ReportQuery {
	query := (&ReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(labresult.Table, labresult.FieldID, id),
			sqlgraph.To(report.Table, report.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, labresult.ReportTable, labresult.ReportColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAnalyte queries the analyte edge of a LabResult.
func (c *LabResultClient) QueryAnalyte(_m *LabResult) *AnalyteQuery {
	query := (&AnalyteClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(labresult.Table, labresult.FieldID, id),
			sqlgraph.To(analyte.Table, analyte.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, labresult.AnalyteTable, labresult.AnalyteColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LabResultClient) Hooks() []Hook {
	return c.hooks.LabResult
}

// Interceptors returns the client interceptors.
func (c *LabResultClient) Interceptors() []Interceptor {
	return c.inters.LabResult
}

func (c *LabResultClient) mutate(ctx context.Context, m *LabResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LabResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LabResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LabResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LabResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LabResult mutation op: %q", m.Op())
	}
}

// MatchReviewClient is a client for the MatchReview schema.
type MatchReviewClient struct {
	config
}

// NewMatchReviewClient returns a client for the MatchReview from the given config.
func NewMatchReviewClient(c config) *MatchReviewClient {
	return &MatchReviewClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `matchreview.Hooks(f(g(h())))`.
func (c *MatchReviewClient) Use(hooks ...Hook) {
	c.hooks.MatchReview = append(c.hooks.MatchReview, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `matchreview.Intercept(f(g(h())))`.
func (c *MatchReviewClient) Intercept(interceptors ...Interceptor) {
	c.inters.MatchReview = append(c.inters.MatchReview, interceptors...)
}

// Create returns a builder for creating a MatchReview entity.
func (c *MatchReviewClient) Create() *MatchReviewCreate {
	mutation := newMatchReviewMutation(c.config, OpCreate)
	return &MatchReviewCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MatchReview entities.
func (c *MatchReviewClient) CreateBulk(builders ...*MatchReviewCreate) *MatchReviewCreateBulk {
	return &MatchReviewCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MatchReviewClient) MapCreateBulk(slice any, setFunc func(*MatchReviewCreate, int)) *MatchReviewCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MatchReviewCreateBulk{err: fmt.Errorf("calling to MatchReviewClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MatchReviewCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MatchReviewCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MatchReview.
func (c *MatchReviewClient) Update() *MatchReviewUpdate {
	mutation := newMatchReviewMutation(c.config, OpUpdate)
	return &MatchReviewUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MatchReviewClient) UpdateOne(_m *MatchReview) *MatchReviewUpdateOne {
	mutation := newMatchReviewMutation(c.config, OpUpdateOne, withMatchReview(_m))
	return &MatchReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MatchReviewClient) UpdateOneID(id uuid.UUID) *MatchReviewUpdateOne {
	mutation := newMatchReviewMutation(c.config, OpUpdateOne, withMatchReviewID(id))
	return &MatchReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MatchReview.
func (c *MatchReviewClient) Delete() *MatchReviewDelete {
	mutation := newMatchReviewMutation(c.config, OpDelete)
	return &MatchReviewDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MatchReviewClient) DeleteOne(_m *MatchReview) *MatchReviewDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MatchReviewClient) DeleteOneID(id uuid.UUID) *MatchReviewDeleteOne {
	builder := c.Delete().Where(matchreview.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MatchReviewDeleteOne{builder}
}

// Query returns a query builder for MatchReview.
func (c *MatchReviewClient) Query() *MatchReviewQuery {
	return &MatchReviewQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMatchReview},
		inters: c.Interceptors(),
	}
}

// Get returns a MatchReview entity by its id.
func (c *MatchReviewClient) Get(ctx context.Context, id uuid.UUID) (*MatchReview, error) {
	return c.Query().Where(matchreview.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MatchReviewClient) GetX(ctx context.Context, id uuid.UUID) *MatchReview {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MatchReviewClient) Hooks() []Hook {
	return c.hooks.MatchReview
}

// Interceptors returns the client interceptors.
func (c *MatchReviewClient) Interceptors() []Interceptor {
	return c.inters.MatchReview
}

func (c *MatchReviewClient) mutate(ctx context.Context, m *MatchReviewMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MatchReviewCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MatchReviewUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MatchReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MatchReviewDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MatchReview mutation op: %q", m.Op())
	}
}

// PatientClient is a client for the Patient schema.
type PatientClient struct {
	config
}

// NewPatientClient returns a client for the Patient from the given config.
func NewPatientClient(c config) *PatientClient {
	return &PatientClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `patient.Hooks(f(g(h())))`.
func (c *PatientClient) Use(hooks ...Hook) {
	c.hooks.Patient = append(c.hooks.Patient, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `patient.Intercept(f(g(h())))`.
func (c *PatientClient) Intercept(interceptors ...Interceptor) {
	c.inters.Patient = append(c.inters.Patient, interceptors...)
}

// Create returns a builder for creating a Patient entity.
func (c *PatientClient) Create() *PatientCreate {
	mutation := newPatientMutation(c.config, OpCreate)
	return &PatientCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Patient entities.
func (c *PatientClient) CreateBulk(builders ...*PatientCreate) *PatientCreateBulk {
	return &PatientCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PatientClient) MapCreateBulk(slice any, setFunc func(*PatientCreate, int)) *PatientCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PatientCreateBulk{err: fmt.Errorf("calling to PatientClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PatientCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PatientCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Patient.
func (c *PatientClient) Update() *PatientUpdate {
	mutation := newPatientMutation(c.config, OpUpdate)
	return &PatientUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PatientClient) UpdateOne(_m *Patient) *PatientUpdateOne {
	mutation := newPatientMutation(c.config, OpUpdateOne, withPatient(_m))
	return &PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PatientClient) UpdateOneID(id uuid.UUID) *PatientUpdateOne {
	mutation := newPatientMutation(c.config, OpUpdateOne, withPatientID(id))
	return &PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Patient.
func (c *PatientClient) Delete() *PatientDelete {
	mutation := newPatientMutation(c.config, OpDelete)
	return &PatientDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PatientClient) DeleteOne(_m *Patient) *PatientDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PatientClient) DeleteOneID(id uuid.UUID) *PatientDeleteOne {
	builder := c.Delete().Where(patient.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PatientDeleteOne{builder}
}

// Query returns a query builder for Patient.
func (c *PatientClient) Query() *PatientQuery {
	return &PatientQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePatient},
		inters: c.Interceptors(),
	}
}

// Get returns a Patient entity by its id.
func (c *PatientClient) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return c.Query().Where(patient.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PatientClient) GetX(ctx context.Context, id uuid.UUID) *Patient {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOwner queries the owner edge of a Patient.
func (c *PatientClient) QueryOwner(_m *Patient) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, patient.OwnerTable, patient.OwnerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReports queries the reports edge of a Patient.
func (c *PatientClient) QueryReports(_m *Patient) *ReportQuery {
	query := (&ReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(report.Table, report.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, patient.ReportsTable, patient.ReportsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PatientClient) Hooks() []Hook {
	return c.hooks.Patient
}

// Interceptors returns the client interceptors.
func (c *PatientClient) Interceptors() []Interceptor {
	return c.inters.Patient
}

func (c *PatientClient) mutate(ctx context.Context, m *PatientMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PatientCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PatientUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PatientDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Patient mutation op: %q", m.Op())
	}
}

// PendingAnalyteClient is a client for the PendingAnalyte schema.
type PendingAnalyteClient struct {
	config
}

// NewPendingAnalyteClient returns a client for the PendingAnalyte from the given config.
func NewPendingAnalyteClient(c config) *PendingAnalyteClient {
	return &PendingAnalyteClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pendinganalyte.Hooks(f(g(h())))`.
func (c *PendingAnalyteClient) Use(hooks ...Hook) {
	c.hooks.PendingAnalyte = append(c.hooks.PendingAnalyte, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pendinganalyte.Intercept(f(g(h())))`.
func (c *PendingAnalyteClient) Intercept(interceptors ...Interceptor) {
	c.inters.PendingAnalyte = append(c.inters.PendingAnalyte, interceptors...)
}

// Create returns a builder for creating a PendingAnalyte entity.
func (c *PendingAnalyteClient) Create() *PendingAnalyteCreate {
	mutation := newPendingAnalyteMutation(c.config, OpCreate)
	return &PendingAnalyteCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PendingAnalyte entities.
func (c *PendingAnalyteClient) CreateBulk(builders ...*PendingAnalyteCreate) *PendingAnalyteCreateBulk {
	return &PendingAnalyteCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PendingAnalyteClient) MapCreateBulk(slice any, setFunc func(*PendingAnalyteCreate, int)) *PendingAnalyteCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PendingAnalyteCreateBulk{err: fmt.Errorf("calling to PendingAnalyteClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PendingAnalyteCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PendingAnalyteCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PendingAnalyte.
func (c *PendingAnalyteClient) Update() *PendingAnalyteUpdate {
	mutation := newPendingAnalyteMutation(c.config, OpUpdate)
	return &PendingAnalyteUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PendingAnalyteClient) UpdateOne(_m *PendingAnalyte) *PendingAnalyteUpdateOne {
	mutation := newPendingAnalyteMutation(c.config, OpUpdateOne, withPendingAnalyte(_m))
	return &PendingAnalyteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PendingAnalyteClient) UpdateOneID(id uuid.UUID) *PendingAnalyteUpdateOne {
	mutation := newPendingAnalyteMutation(c.config, OpUpdateOne, withPendingAnalyteID(id))
	return &PendingAnalyteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PendingAnalyte.
func (c *PendingAnalyteClient) Delete() *PendingAnalyteDelete {
	mutation := newPendingAnalyteMutation(c.config, OpDelete)
	return &PendingAnalyteDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PendingAnalyteClient) DeleteOne(_m *PendingAnalyte) *PendingAnalyteDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PendingAnalyteClient) DeleteOneID(id uuid.UUID) *PendingAnalyteDeleteOne {
	builder := c.Delete().Where(pendinganalyte.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PendingAnalyteDeleteOne{builder}
}

// Query returns a query builder for PendingAnalyte.
func (c *PendingAnalyteClient) Query() *PendingAnalyteQuery {
	return &PendingAnalyteQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePendingAnalyte},
		inters: c.Interceptors(),
	}
}

// Get returns a PendingAnalyte entity by its id.
func (c *PendingAnalyteClient) Get(ctx context.Context, id uuid.UUID) (*PendingAnalyte, error) {
	return c.Query().Where(pendinganalyte.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PendingAnalyteClient) GetX(ctx context.Context, id uuid.UUID) *PendingAnalyte {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PendingAnalyteClient) Hooks() []Hook {
	return c.hooks.PendingAnalyte
}

// Interceptors returns the client interceptors.
func (c *PendingAnalyteClient) Interceptors() []Interceptor {
	return c.inters.PendingAnalyte
}

func (c *PendingAnalyteClient) mutate(ctx context.Context, m *PendingAnalyteMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PendingAnalyteCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PendingAnalyteUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PendingAnalyteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PendingAnalyteDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PendingAnalyte mutation op: %q", m.Op())
	}
}

// ReportClient is a client for the Report schema.
type ReportClient struct {
	config
}

// NewReportClient returns a client for the Report from the given config.
func NewReportClient(c config) *ReportClient {
	return &ReportClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `report.Hooks(f(g(h())))`.
func (c *ReportClient) Use(hooks ...Hook) {
	c.hooks.Report = append(c.hooks.Report, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `report.Intercept(f(g(h())))`.
func (c *ReportClient) Intercept(interceptors ...Interceptor) {
	c.inters.Report = append(c.inters.Report, interceptors...)
}

// Create returns a builder for creating a Report entity.
func (c *ReportClient) Create() *ReportCreate {
	mutation := newReportMutation(c.config, OpCreate)
	return &ReportCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Report entities.
func (c *ReportClient) CreateBulk(builders ...*ReportCreate) *ReportCreateBulk {
	return &ReportCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReportClient) MapCreateBulk(slice any, setFunc func(*ReportCreate, int)) *ReportCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReportCreateBulk{err: fmt.Errorf("calling to ReportClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReportCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReportCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Report.
func (c *ReportClient) Update() *ReportUpdate {
	mutation := newReportMutation(c.config, OpUpdate)
	return &ReportUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReportClient) UpdateOne(_m *Report) *ReportUpdateOne {
	mutation := newReportMutation(c.config, OpUpdateOne, withReport(_m))
	return &ReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReportClient) UpdateOneID(id uuid.UUID) *ReportUpdateOne {
	mutation := newReportMutation(c.config, OpUpdateOne, withReportID(id))
	return &ReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Report.
func (c *ReportClient) Delete() *ReportDelete {
	mutation := newReportMutation(c.config, OpDelete)
	return &ReportDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReportClient) DeleteOne(_m *Report) *ReportDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReportClient) DeleteOneID(id uuid.UUID) *ReportDeleteOne {
	builder := c.Delete().Where(report.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReportDeleteOne{builder}
}

// Query returns a query builder for Report.
func (c *ReportClient) Query() *ReportQuery {
	return &ReportQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReport},
		inters: c.Interceptors(),
	}
}

// Get returns a Report entity by its id.
func (c *ReportClient) Get(ctx context.Context, id uuid.UUID) (*Report, error) {
	return c.Query().Where(report.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReportClient) GetX(ctx context.Context, id uuid.UUID) *Report {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOwner queries the owner edge of a Report.
func (c *ReportClient) QueryOwner(_m *Report) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(report.Table, report.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, report.OwnerTable, report.OwnerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPatient queries the patient edge of a Report.
func (c *ReportClient) QueryPatient(_m *Report) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(report.Table, report.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, report.PatientTable, report.PatientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryResults queries the results edge of a Report.
func (c *ReportClient) QueryResults(_m *Report) *LabResultQuery {
	query := (&LabResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(report.Table, report.FieldID, id),
			sqlgraph.To(labresult.Table, labresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, report.ResultsTable, report.ResultsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ReportClient) Hooks() []Hook {
	return c.hooks.Report
}

// Interceptors returns the client interceptors.
func (c *ReportClient) Interceptors() []Interceptor {
	return c.inters.Report
}

func (c *ReportClient) mutate(ctx context.Context, m *ReportMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReportCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReportUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReportDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Report mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id uuid.UUID) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id uuid.UUID) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uuid.UUID) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPatients queries the patients edge of a User.
func (c *UserClient) QueryPatients(_m *User) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.PatientsTable, user.PatientsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReports queries the reports edge of a User.
func (c *UserClient) QueryReports(_m *User) *ReportQuery {
	query := (&ReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(report.Table, report.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.ReportsTable, user.ReportsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AdminAction, Analyte, AnalyteAlias, LabResult, MatchReview, Patient,
		PendingAnalyte, Report, User []ent.Hook
	}
	inters struct {
		AdminAction, Analyte, AnalyteAlias, LabResult, MatchReview, Patient,
		PendingAnalyte, Report, User []ent.Interceptor
	}
)
