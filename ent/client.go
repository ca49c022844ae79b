// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/nirajyt2022-source/edTech-sub001/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/nirajyt2022-source/edTech-sub001/ent/llmrequestevent"
	"github.com/nirajyt2022-source/edTech-sub001/ent/masteryrecord"
	"github.com/nirajyt2022-source/edTech-sub001/ent/worksheetrecord"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// MasteryRecord is the client for interacting with the MasteryRecord builders.
	MasteryRecord *MasteryRecordClient
	// WorksheetRecord is the client for interacting with the WorksheetRecord builders.
	WorksheetRecord *WorksheetRecordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.MasteryRecord = NewMasteryRecordClient(c.config)
	c.WorksheetRecord = NewWorksheetRecordClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		MasteryRecord:   NewMasteryRecordClient(cfg),
		WorksheetRecord: NewWorksheetRecordClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		MasteryRecord:   NewMasteryRecordClient(cfg),
		WorksheetRecord: NewWorksheetRecordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		LLMRequestEvent.
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
	c.LLMRequestEvent.Use(hooks...)
	c.MasteryRecord.Use(hooks...)
	c.WorksheetRecord.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.LLMRequestEvent.Intercept(interceptors...)
	c.MasteryRecord.Intercept(interceptors...)
	c.WorksheetRecord.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *MasteryRecordMutation:
		return c.MasteryRecord.mutate(ctx, m)
	case *WorksheetRecordMutation:
		return c.WorksheetRecord.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// MasteryRecordClient is a client for the MasteryRecord schema.
type MasteryRecordClient struct {
	config
}

// NewMasteryRecordClient returns a client for the MasteryRecord from the given config.
func NewMasteryRecordClient(c config) *MasteryRecordClient {
	return &MasteryRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `masteryrecord.Hooks(f(g(h())))`.
func (c *MasteryRecordClient) Use(hooks ...Hook) {
	c.hooks.MasteryRecord = append(c.hooks.MasteryRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `masteryrecord.Intercept(f(g(h())))`.
func (c *MasteryRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.MasteryRecord = append(c.inters.MasteryRecord, interceptors...)
}

// Create returns a builder for creating a MasteryRecord entity.
func (c *MasteryRecordClient) Create() *MasteryRecordCreate {
	mutation := newMasteryRecordMutation(c.config, OpCreate)
	return &MasteryRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MasteryRecord entities.
func (c *MasteryRecordClient) CreateBulk(builders ...*MasteryRecordCreate) *MasteryRecordCreateBulk {
	return &MasteryRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MasteryRecordClient) MapCreateBulk(slice any, setFunc func(*MasteryRecordCreate, int)) *MasteryRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MasteryRecordCreateBulk{err: fmt.Errorf("calling to MasteryRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MasteryRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MasteryRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MasteryRecord.
func (c *MasteryRecordClient) Update() *MasteryRecordUpdate {
	mutation := newMasteryRecordMutation(c.config, OpUpdate)
	return &MasteryRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MasteryRecordClient) UpdateOne(_m *MasteryRecord) *MasteryRecordUpdateOne {
	mutation := newMasteryRecordMutation(c.config, OpUpdateOne, withMasteryRecord(_m))
	return &MasteryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MasteryRecordClient) UpdateOneID(id int) *MasteryRecordUpdateOne {
	mutation := newMasteryRecordMutation(c.config, OpUpdateOne, withMasteryRecordID(id))
	return &MasteryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MasteryRecord.
func (c *MasteryRecordClient) Delete() *MasteryRecordDelete {
	mutation := newMasteryRecordMutation(c.config, OpDelete)
	return &MasteryRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MasteryRecordClient) DeleteOne(_m *MasteryRecord) *MasteryRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MasteryRecordClient) DeleteOneID(id int) *MasteryRecordDeleteOne {
	builder := c.Delete().Where(masteryrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MasteryRecordDeleteOne{builder}
}

// Query returns a query builder for MasteryRecord.
func (c *MasteryRecordClient) Query() *MasteryRecordQuery {
	return &MasteryRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMasteryRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a MasteryRecord entity by its id.
func (c *MasteryRecordClient) Get(ctx context.Context, id int) (*MasteryRecord, error) {
	return c.Query().Where(masteryrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MasteryRecordClient) GetX(ctx context.Context, id int) *MasteryRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MasteryRecordClient) Hooks() []Hook {
	return c.hooks.MasteryRecord
}

// Interceptors returns the client interceptors.
func (c *MasteryRecordClient) Interceptors() []Interceptor {
	return c.inters.MasteryRecord
}

func (c *MasteryRecordClient) mutate(ctx context.Context, m *MasteryRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MasteryRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MasteryRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MasteryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MasteryRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MasteryRecord mutation op: %q", m.Op())
	}
}

// WorksheetRecordClient is a client for the WorksheetRecord schema.
type WorksheetRecordClient struct {
	config
}

// NewWorksheetRecordClient returns a client for the WorksheetRecord from the given config.
func NewWorksheetRecordClient(c config) *WorksheetRecordClient {
	return &WorksheetRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `worksheetrecord.Hooks(f(g(h())))`.
func (c *WorksheetRecordClient) Use(hooks ...Hook) {
	c.hooks.WorksheetRecord = append(c.hooks.WorksheetRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `worksheetrecord.Intercept(f(g(h())))`.
func (c *WorksheetRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorksheetRecord = append(c.inters.WorksheetRecord, interceptors...)
}

// Create returns a builder for creating a WorksheetRecord entity.
func (c *WorksheetRecordClient) Create() *WorksheetRecordCreate {
	mutation := newWorksheetRecordMutation(c.config, OpCreate)
	return &WorksheetRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorksheetRecord entities.
func (c *WorksheetRecordClient) CreateBulk(builders ...*WorksheetRecordCreate) *WorksheetRecordCreateBulk {
	return &WorksheetRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorksheetRecordClient) MapCreateBulk(slice any, setFunc func(*WorksheetRecordCreate, int)) *WorksheetRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorksheetRecordCreateBulk{err: fmt.Errorf("calling to WorksheetRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorksheetRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorksheetRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorksheetRecord.
func (c *WorksheetRecordClient) Update() *WorksheetRecordUpdate {
	mutation := newWorksheetRecordMutation(c.config, OpUpdate)
	return &WorksheetRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorksheetRecordClient) UpdateOne(_m *WorksheetRecord) *WorksheetRecordUpdateOne {
	mutation := newWorksheetRecordMutation(c.config, OpUpdateOne, withWorksheetRecord(_m))
	return &WorksheetRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorksheetRecordClient) UpdateOneID(id int) *WorksheetRecordUpdateOne {
	mutation := newWorksheetRecordMutation(c.config, OpUpdateOne, withWorksheetRecordID(id))
	return &WorksheetRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorksheetRecord.
func (c *WorksheetRecordClient) Delete() *WorksheetRecordDelete {
	mutation := newWorksheetRecordMutation(c.config, OpDelete)
	return &WorksheetRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorksheetRecordClient) DeleteOne(_m *WorksheetRecord) *WorksheetRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorksheetRecordClient) DeleteOneID(id int) *WorksheetRecordDeleteOne {
	builder := c.Delete().Where(worksheetrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorksheetRecordDeleteOne{builder}
}

// Query returns a query builder for WorksheetRecord.
func (c *WorksheetRecordClient) Query() *WorksheetRecordQuery {
	return &WorksheetRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorksheetRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a WorksheetRecord entity by its id.
func (c *WorksheetRecordClient) Get(ctx context.Context, id int) (*WorksheetRecord, error) {
	return c.Query().Where(worksheetrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorksheetRecordClient) GetX(ctx context.Context, id int) *WorksheetRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WorksheetRecordClient) Hooks() []Hook {
	return c.hooks.WorksheetRecord
}

// Interceptors returns the client interceptors.
func (c *WorksheetRecordClient) Interceptors() []Interceptor {
	return c.inters.WorksheetRecord
}

func (c *WorksheetRecordClient) mutate(ctx context.Context, m *WorksheetRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorksheetRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorksheetRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorksheetRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorksheetRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorksheetRecord mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		LLMRequestEvent, MasteryRecord, WorksheetRecord []ent.Hook
	}
	inters struct {
		LLMRequestEvent, MasteryRecord, WorksheetRecord []ent.Interceptor
	}
)
