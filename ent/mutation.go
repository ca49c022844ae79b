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
	"github.com/nirajyt2022-source/edTech-sub001/ent/llmrequestevent"
	"github.com/nirajyt2022-source/edTech-sub001/ent/masteryrecord"
	"github.com/nirajyt2022-source/edTech-sub001/ent/predicate"
	"github.com/nirajyt2022-source/edTech-sub001/ent/worksheetrecord"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeLLMRequestEvent = "LLMRequestEvent"
	TypeMasteryRecord   = "MasteryRecord"
	TypeWorksheetRecord = "WorksheetRecord"
)

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	request_body     *string
	response_body    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *LLMRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *LLMRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *LLMRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *LLMRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *LLMRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
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
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// SetRequestBody sets the "request_body" field.
func (m *LLMRequestEventMutation) SetRequestBody(s string) {
	m.request_body = &s
}

// RequestBody returns the value of the "request_body" field in the mutation.
func (m *LLMRequestEventMutation) RequestBody() (r string, exists bool) {
	v := m.request_body
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestBody returns the old "request_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldRequestBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestBody: %w", err)
	}
	return oldValue.RequestBody, nil
}

// ResetRequestBody resets all changes to the "request_body" field.
func (m *LLMRequestEventMutation) ResetRequestBody() {
	m.request_body = nil
}

// SetResponseBody sets the "response_body" field.
func (m *LLMRequestEventMutation) SetResponseBody(s string) {
	m.response_body = &s
}

// ResponseBody returns the value of the "response_body" field in the mutation.
func (m *LLMRequestEventMutation) ResponseBody() (r string, exists bool) {
	v := m.response_body
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseBody returns the old "response_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldResponseBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseBody: %w", err)
	}
	return oldValue.ResponseBody, nil
}

// ResetResponseBody resets all changes to the "response_body" field.
func (m *LLMRequestEventMutation) ResetResponseBody() {
	m.response_body = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.sequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	if m.request_body != nil {
		fields = append(fields, llmrequestevent.FieldRequestBody)
	}
	if m.response_body != nil {
		fields = append(fields, llmrequestevent.FieldResponseBody)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.Sequence()
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	case llmrequestevent.FieldRequestBody:
		return m.RequestBody()
	case llmrequestevent.FieldResponseBody:
		return m.ResponseBody()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.OldSequence(ctx)
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llmrequestevent.FieldRequestBody:
		return m.OldRequestBody(ctx)
	case llmrequestevent.FieldResponseBody:
		return m.OldResponseBody(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case llmrequestevent.FieldRequestBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestBody(v)
		return nil
	case llmrequestevent.FieldResponseBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseBody(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.AddedSequence()
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llmrequestevent.FieldRequestBody:
		m.ResetRequestBody()
		return nil
	case llmrequestevent.FieldResponseBody:
		m.ResetResponseBody()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// MasteryRecordMutation represents an operation that mutates the MasteryRecord nodes in the graph.
type MasteryRecordMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	student_id          *string
	skill_tag           *string
	level               *string
	streak              *int
	addstreak           *int
	total_attempts      *int
	addtotal_attempts   *int
	correct_attempts    *int
	addcorrect_attempts *int
	last_error_type     *string
	format_stats        *map[string]interface{}
	last_practiced_at   *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*MasteryRecord, error)
	predicates          []predicate.MasteryRecord
}

var _ ent.Mutation = (*MasteryRecordMutation)(nil)

// masteryrecordOption allows management of the mutation configuration using functional options.
type masteryrecordOption func(*MasteryRecordMutation)

// newMasteryRecordMutation creates new mutation for the MasteryRecord entity.
func newMasteryRecordMutation(c config, op Op, opts ...masteryrecordOption) *MasteryRecordMutation {
	m := &MasteryRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeMasteryRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMasteryRecordID sets the ID field of the mutation.
func withMasteryRecordID(id int) masteryrecordOption {
	return func(m *MasteryRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *MasteryRecord
		)
		m.oldValue = func(ctx context.Context) (*MasteryRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MasteryRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMasteryRecord sets the old MasteryRecord of the mutation.
func withMasteryRecord(node *MasteryRecord) masteryrecordOption {
	return func(m *MasteryRecordMutation) {
		m.oldValue = func(context.Context) (*MasteryRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MasteryRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MasteryRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MasteryRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MasteryRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MasteryRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudentID sets the "student_id" field.
func (m *MasteryRecordMutation) SetStudentID(s string) {
	m.student_id = &s
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *MasteryRecordMutation) StudentID() (r string, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldStudentID(ctx context.Context) (v string, err error) {
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
func (m *MasteryRecordMutation) ResetStudentID() {
	m.student_id = nil
}

// SetSkillTag sets the "skill_tag" field.
func (m *MasteryRecordMutation) SetSkillTag(s string) {
	m.skill_tag = &s
}

// SkillTag returns the value of the "skill_tag" field in the mutation.
func (m *MasteryRecordMutation) SkillTag() (r string, exists bool) {
	v := m.skill_tag
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillTag returns the old "skill_tag" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldSkillTag(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillTag is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillTag requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillTag: %w", err)
	}
	return oldValue.SkillTag, nil
}

// ResetSkillTag resets all changes to the "skill_tag" field.
func (m *MasteryRecordMutation) ResetSkillTag() {
	m.skill_tag = nil
}

// SetLevel sets the "level" field.
func (m *MasteryRecordMutation) SetLevel(s string) {
	m.level = &s
}

// Level returns the value of the "level" field in the mutation.
func (m *MasteryRecordMutation) Level() (r string, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *MasteryRecordMutation) ResetLevel() {
	m.level = nil
}

// SetStreak sets the "streak" field.
func (m *MasteryRecordMutation) SetStreak(i int) {
	m.streak = &i
	m.addstreak = nil
}

// Streak returns the value of the "streak" field in the mutation.
func (m *MasteryRecordMutation) Streak() (r int, exists bool) {
	v := m.streak
	if v == nil {
		return
	}
	return *v, true
}

// OldStreak returns the old "streak" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldStreak(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreak: %w", err)
	}
	return oldValue.Streak, nil
}

// AddStreak adds i to the "streak" field.
func (m *MasteryRecordMutation) AddStreak(i int) {
	if m.addstreak != nil {
		*m.addstreak += i
	} else {
		m.addstreak = &i
	}
}

// AddedStreak returns the value that was added to the "streak" field in this mutation.
func (m *MasteryRecordMutation) AddedStreak() (r int, exists bool) {
	v := m.addstreak
	if v == nil {
		return
	}
	return *v, true
}

// ResetStreak resets all changes to the "streak" field.
func (m *MasteryRecordMutation) ResetStreak() {
	m.streak = nil
	m.addstreak = nil
}

// SetTotalAttempts sets the "total_attempts" field.
func (m *MasteryRecordMutation) SetTotalAttempts(i int) {
	m.total_attempts = &i
	m.addtotal_attempts = nil
}

// TotalAttempts returns the value of the "total_attempts" field in the mutation.
func (m *MasteryRecordMutation) TotalAttempts() (r int, exists bool) {
	v := m.total_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAttempts returns the old "total_attempts" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldTotalAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAttempts: %w", err)
	}
	return oldValue.TotalAttempts, nil
}

// AddTotalAttempts adds i to the "total_attempts" field.
func (m *MasteryRecordMutation) AddTotalAttempts(i int) {
	if m.addtotal_attempts != nil {
		*m.addtotal_attempts += i
	} else {
		m.addtotal_attempts = &i
	}
}

// AddedTotalAttempts returns the value that was added to the "total_attempts" field in this mutation.
func (m *MasteryRecordMutation) AddedTotalAttempts() (r int, exists bool) {
	v := m.addtotal_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalAttempts resets all changes to the "total_attempts" field.
func (m *MasteryRecordMutation) ResetTotalAttempts() {
	m.total_attempts = nil
	m.addtotal_attempts = nil
}

// SetCorrectAttempts sets the "correct_attempts" field.
func (m *MasteryRecordMutation) SetCorrectAttempts(i int) {
	m.correct_attempts = &i
	m.addcorrect_attempts = nil
}

// CorrectAttempts returns the value of the "correct_attempts" field in the mutation.
func (m *MasteryRecordMutation) CorrectAttempts() (r int, exists bool) {
	v := m.correct_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAttempts returns the old "correct_attempts" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldCorrectAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAttempts: %w", err)
	}
	return oldValue.CorrectAttempts, nil
}

// AddCorrectAttempts adds i to the "correct_attempts" field.
func (m *MasteryRecordMutation) AddCorrectAttempts(i int) {
	if m.addcorrect_attempts != nil {
		*m.addcorrect_attempts += i
	} else {
		m.addcorrect_attempts = &i
	}
}

// AddedCorrectAttempts returns the value that was added to the "correct_attempts" field in this mutation.
func (m *MasteryRecordMutation) AddedCorrectAttempts() (r int, exists bool) {
	v := m.addcorrect_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectAttempts resets all changes to the "correct_attempts" field.
func (m *MasteryRecordMutation) ResetCorrectAttempts() {
	m.correct_attempts = nil
	m.addcorrect_attempts = nil
}

// SetLastErrorType sets the "last_error_type" field.
func (m *MasteryRecordMutation) SetLastErrorType(s string) {
	m.last_error_type = &s
}

// LastErrorType returns the value of the "last_error_type" field in the mutation.
func (m *MasteryRecordMutation) LastErrorType() (r string, exists bool) {
	v := m.last_error_type
	if v == nil {
		return
	}
	return *v, true
}

// OldLastErrorType returns the old "last_error_type" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldLastErrorType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastErrorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastErrorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastErrorType: %w", err)
	}
	return oldValue.LastErrorType, nil
}

// ResetLastErrorType resets all changes to the "last_error_type" field.
func (m *MasteryRecordMutation) ResetLastErrorType() {
	m.last_error_type = nil
}

// SetFormatStats sets the "format_stats" field.
func (m *MasteryRecordMutation) SetFormatStats(value map[string]interface{}) {
	m.format_stats = &value
}

// FormatStats returns the value of the "format_stats" field in the mutation.
func (m *MasteryRecordMutation) FormatStats() (r map[string]interface{}, exists bool) {
	v := m.format_stats
	if v == nil {
		return
	}
	return *v, true
}

// OldFormatStats returns the old "format_stats" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldFormatStats(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormatStats is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormatStats requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormatStats: %w", err)
	}
	return oldValue.FormatStats, nil
}

// ClearFormatStats clears the value of the "format_stats" field.
func (m *MasteryRecordMutation) ClearFormatStats() {
	m.format_stats = nil
	m.clearedFields[masteryrecord.FieldFormatStats] = struct{}{}
}

// FormatStatsCleared returns if the "format_stats" field was cleared in this mutation.
func (m *MasteryRecordMutation) FormatStatsCleared() bool {
	_, ok := m.clearedFields[masteryrecord.FieldFormatStats]
	return ok
}

// ResetFormatStats resets all changes to the "format_stats" field.
func (m *MasteryRecordMutation) ResetFormatStats() {
	m.format_stats = nil
	delete(m.clearedFields, masteryrecord.FieldFormatStats)
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (m *MasteryRecordMutation) SetLastPracticedAt(t time.Time) {
	m.last_practiced_at = &t
}

// LastPracticedAt returns the value of the "last_practiced_at" field in the mutation.
func (m *MasteryRecordMutation) LastPracticedAt() (r time.Time, exists bool) {
	v := m.last_practiced_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastPracticedAt returns the old "last_practiced_at" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldLastPracticedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastPracticedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastPracticedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastPracticedAt: %w", err)
	}
	return oldValue.LastPracticedAt, nil
}

// ClearLastPracticedAt clears the value of the "last_practiced_at" field.
func (m *MasteryRecordMutation) ClearLastPracticedAt() {
	m.last_practiced_at = nil
	m.clearedFields[masteryrecord.FieldLastPracticedAt] = struct{}{}
}

// LastPracticedAtCleared returns if the "last_practiced_at" field was cleared in this mutation.
func (m *MasteryRecordMutation) LastPracticedAtCleared() bool {
	_, ok := m.clearedFields[masteryrecord.FieldLastPracticedAt]
	return ok
}

// ResetLastPracticedAt resets all changes to the "last_practiced_at" field.
func (m *MasteryRecordMutation) ResetLastPracticedAt() {
	m.last_practiced_at = nil
	delete(m.clearedFields, masteryrecord.FieldLastPracticedAt)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MasteryRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MasteryRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *MasteryRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the MasteryRecordMutation builder.
func (m *MasteryRecordMutation) Where(ps ...predicate.MasteryRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MasteryRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MasteryRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MasteryRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MasteryRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MasteryRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MasteryRecord).
func (m *MasteryRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MasteryRecordMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.student_id != nil {
		fields = append(fields, masteryrecord.FieldStudentID)
	}
	if m.skill_tag != nil {
		fields = append(fields, masteryrecord.FieldSkillTag)
	}
	if m.level != nil {
		fields = append(fields, masteryrecord.FieldLevel)
	}
	if m.streak != nil {
		fields = append(fields, masteryrecord.FieldStreak)
	}
	if m.total_attempts != nil {
		fields = append(fields, masteryrecord.FieldTotalAttempts)
	}
	if m.correct_attempts != nil {
		fields = append(fields, masteryrecord.FieldCorrectAttempts)
	}
	if m.last_error_type != nil {
		fields = append(fields, masteryrecord.FieldLastErrorType)
	}
	if m.format_stats != nil {
		fields = append(fields, masteryrecord.FieldFormatStats)
	}
	if m.last_practiced_at != nil {
		fields = append(fields, masteryrecord.FieldLastPracticedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, masteryrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MasteryRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case masteryrecord.FieldStudentID:
		return m.StudentID()
	case masteryrecord.FieldSkillTag:
		return m.SkillTag()
	case masteryrecord.FieldLevel:
		return m.Level()
	case masteryrecord.FieldStreak:
		return m.Streak()
	case masteryrecord.FieldTotalAttempts:
		return m.TotalAttempts()
	case masteryrecord.FieldCorrectAttempts:
		return m.CorrectAttempts()
	case masteryrecord.FieldLastErrorType:
		return m.LastErrorType()
	case masteryrecord.FieldFormatStats:
		return m.FormatStats()
	case masteryrecord.FieldLastPracticedAt:
		return m.LastPracticedAt()
	case masteryrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MasteryRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case masteryrecord.FieldStudentID:
		return m.OldStudentID(ctx)
	case masteryrecord.FieldSkillTag:
		return m.OldSkillTag(ctx)
	case masteryrecord.FieldLevel:
		return m.OldLevel(ctx)
	case masteryrecord.FieldStreak:
		return m.OldStreak(ctx)
	case masteryrecord.FieldTotalAttempts:
		return m.OldTotalAttempts(ctx)
	case masteryrecord.FieldCorrectAttempts:
		return m.OldCorrectAttempts(ctx)
	case masteryrecord.FieldLastErrorType:
		return m.OldLastErrorType(ctx)
	case masteryrecord.FieldFormatStats:
		return m.OldFormatStats(ctx)
	case masteryrecord.FieldLastPracticedAt:
		return m.OldLastPracticedAt(ctx)
	case masteryrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MasteryRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MasteryRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case masteryrecord.FieldStudentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case masteryrecord.FieldSkillTag:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillTag(v)
		return nil
	case masteryrecord.FieldLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case masteryrecord.FieldStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreak(v)
		return nil
	case masteryrecord.FieldTotalAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAttempts(v)
		return nil
	case masteryrecord.FieldCorrectAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAttempts(v)
		return nil
	case masteryrecord.FieldLastErrorType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastErrorType(v)
		return nil
	case masteryrecord.FieldFormatStats:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormatStats(v)
		return nil
	case masteryrecord.FieldLastPracticedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastPracticedAt(v)
		return nil
	case masteryrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MasteryRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MasteryRecordMutation) AddedFields() []string {
	var fields []string
	if m.addstreak != nil {
		fields = append(fields, masteryrecord.FieldStreak)
	}
	if m.addtotal_attempts != nil {
		fields = append(fields, masteryrecord.FieldTotalAttempts)
	}
	if m.addcorrect_attempts != nil {
		fields = append(fields, masteryrecord.FieldCorrectAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MasteryRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case masteryrecord.FieldStreak:
		return m.AddedStreak()
	case masteryrecord.FieldTotalAttempts:
		return m.AddedTotalAttempts()
	case masteryrecord.FieldCorrectAttempts:
		return m.AddedCorrectAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MasteryRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case masteryrecord.FieldStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStreak(v)
		return nil
	case masteryrecord.FieldTotalAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAttempts(v)
		return nil
	case masteryrecord.FieldCorrectAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown MasteryRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MasteryRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(masteryrecord.FieldFormatStats) {
		fields = append(fields, masteryrecord.FieldFormatStats)
	}
	if m.FieldCleared(masteryrecord.FieldLastPracticedAt) {
		fields = append(fields, masteryrecord.FieldLastPracticedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MasteryRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MasteryRecordMutation) ClearField(name string) error {
	switch name {
	case masteryrecord.FieldFormatStats:
		m.ClearFormatStats()
		return nil
	case masteryrecord.FieldLastPracticedAt:
		m.ClearLastPracticedAt()
		return nil
	}
	return fmt.Errorf("unknown MasteryRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MasteryRecordMutation) ResetField(name string) error {
	switch name {
	case masteryrecord.FieldStudentID:
		m.ResetStudentID()
		return nil
	case masteryrecord.FieldSkillTag:
		m.ResetSkillTag()
		return nil
	case masteryrecord.FieldLevel:
		m.ResetLevel()
		return nil
	case masteryrecord.FieldStreak:
		m.ResetStreak()
		return nil
	case masteryrecord.FieldTotalAttempts:
		m.ResetTotalAttempts()
		return nil
	case masteryrecord.FieldCorrectAttempts:
		m.ResetCorrectAttempts()
		return nil
	case masteryrecord.FieldLastErrorType:
		m.ResetLastErrorType()
		return nil
	case masteryrecord.FieldFormatStats:
		m.ResetFormatStats()
		return nil
	case masteryrecord.FieldLastPracticedAt:
		m.ResetLastPracticedAt()
		return nil
	case masteryrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown MasteryRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MasteryRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MasteryRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MasteryRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MasteryRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MasteryRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MasteryRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MasteryRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MasteryRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MasteryRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MasteryRecord edge %s", name)
}

// WorksheetRecordMutation represents an operation that mutates the WorksheetRecord nodes in the graph.
type WorksheetRecordMutation struct {
	config
	op                         Op
	typ                        string
	id                         *int
	worksheet_id               *string
	grade                      *int
	addgrade                   *int
	topic                      *string
	used_contexts              *[]string
	appendused_contexts        []string
	used_error_ids             *[]string
	appendused_error_ids       []string
	used_thinking_styles       *[]string
	appendused_thinking_styles []string
	used_number_pairs          *[]string
	appendused_number_pairs    []string
	used_question_hashes       *[]string
	appendused_question_hashes []string
	created_at                 *time.Time
	clearedFields              map[string]struct{}
	done                       bool
	oldValue                   func(context.Context) (*WorksheetRecord, error)
	predicates                 []predicate.WorksheetRecord
}

var _ ent.Mutation = (*WorksheetRecordMutation)(nil)

// worksheetrecordOption allows management of the mutation configuration using functional options.
type worksheetrecordOption func(*WorksheetRecordMutation)

// newWorksheetRecordMutation creates new mutation for the WorksheetRecord entity.
func newWorksheetRecordMutation(c config, op Op, opts ...worksheetrecordOption) *WorksheetRecordMutation {
	m := &WorksheetRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeWorksheetRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorksheetRecordID sets the ID field of the mutation.
func withWorksheetRecordID(id int) worksheetrecordOption {
	return func(m *WorksheetRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *WorksheetRecord
		)
		m.oldValue = func(ctx context.Context) (*WorksheetRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorksheetRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorksheetRecord sets the old WorksheetRecord of the mutation.
func withWorksheetRecord(node *WorksheetRecord) worksheetrecordOption {
	return func(m *WorksheetRecordMutation) {
		m.oldValue = func(context.Context) (*WorksheetRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorksheetRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorksheetRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorksheetRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorksheetRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorksheetRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorksheetID sets the "worksheet_id" field.
func (m *WorksheetRecordMutation) SetWorksheetID(s string) {
	m.worksheet_id = &s
}

// WorksheetID returns the value of the "worksheet_id" field in the mutation.
func (m *WorksheetRecordMutation) WorksheetID() (r string, exists bool) {
	v := m.worksheet_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorksheetID returns the old "worksheet_id" field's value of the WorksheetRecord entity.
// If the WorksheetRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorksheetRecordMutation) OldWorksheetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorksheetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorksheetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorksheetID: %w", err)
	}
	return oldValue.WorksheetID, nil
}

// ResetWorksheetID resets all changes to the "worksheet_id" field.
func (m *WorksheetRecordMutation) ResetWorksheetID() {
	m.worksheet_id = nil
}

// SetGrade sets the "grade" field.
func (m *WorksheetRecordMutation) SetGrade(i int) {
	m.grade = &i
	m.addgrade = nil
}

// Grade returns the value of the "grade" field in the mutation.
func (m *WorksheetRecordMutation) Grade() (r int, exists bool) {
	v := m.grade
	if v == nil {
		return
	}
	return *v, true
}

// OldGrade returns the old "grade" field's value of the WorksheetRecord entity.
// If the WorksheetRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorksheetRecordMutation) OldGrade(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrade: %w", err)
	}
	return oldValue.Grade, nil
}

// AddGrade adds i to the "grade" field.
func (m *WorksheetRecordMutation) AddGrade(i int) {
	if m.addgrade != nil {
		*m.addgrade += i
	} else {
		m.addgrade = &i
	}
}

// AddedGrade returns the value that was added to the "grade" field in this mutation.
func (m *WorksheetRecordMutation) AddedGrade() (r int, exists bool) {
	v := m.addgrade
	if v == nil {
		return
	}
	return *v, true
}

// ResetGrade resets all changes to the "grade" field.
func (m *WorksheetRecordMutation) ResetGrade() {
	m.grade = nil
	m.addgrade = nil
}

// SetTopic sets the "topic" field.
func (m *WorksheetRecordMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *WorksheetRecordMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the WorksheetRecord entity.
// If the WorksheetRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorksheetRecordMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *WorksheetRecordMutation) ResetTopic() {
	m.topic = nil
}

// SetUsedContexts sets the "used_contexts" field.
func (m *WorksheetRecordMutation) SetUsedContexts(s []string) {
	m.used_contexts = &s
	m.appendused_contexts = nil
}

// UsedContexts returns the value of the "used_contexts" field in the mutation.
func (m *WorksheetRecordMutation) UsedContexts() (r []string, exists bool) {
	v := m.used_contexts
	if v == nil {
		return
	}
	return *v, true
}

// OldUsedContexts returns the old "used_contexts" field's value of the WorksheetRecord entity.
// If the WorksheetRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorksheetRecordMutation) OldUsedContexts(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsedContexts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsedContexts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsedContexts: %w", err)
	}
	return oldValue.UsedContexts, nil
}

// AppendUsedContexts adds s to the "used_contexts" field.
func (m *WorksheetRecordMutation) AppendUsedContexts(s []string) {
	m.appendused_contexts = append(m.appendused_contexts, s...)
}

// AppendedUsedContexts returns the list of values that were appended to the "used_contexts" field in this mutation.
func (m *WorksheetRecordMutation) AppendedUsedContexts() ([]string, bool) {
	if len(m.appendused_contexts) == 0 {
		return nil, false
	}
	return m.appendused_contexts, true
}

// ClearUsedContexts clears the value of the "used_contexts" field.
func (m *WorksheetRecordMutation) ClearUsedContexts() {
	m.used_contexts = nil
	m.appendused_contexts = nil
	m.clearedFields[worksheetrecord.FieldUsedContexts] = struct{}{}
}

// UsedContextsCleared returns if the "used_contexts" field was cleared in this mutation.
func (m *WorksheetRecordMutation) UsedContextsCleared() bool {
	_, ok := m.clearedFields[worksheetrecord.FieldUsedContexts]
	return ok
}

// ResetUsedContexts resets all changes to the "used_contexts" field.
func (m *WorksheetRecordMutation) ResetUsedContexts() {
	m.used_contexts = nil
	m.appendused_contexts = nil
	delete(m.clearedFields, worksheetrecord.FieldUsedContexts)
}

// SetUsedErrorIds sets the "used_error_ids" field.
func (m *WorksheetRecordMutation) SetUsedErrorIds(s []string) {
	m.used_error_ids = &s
	m.appendused_error_ids = nil
}

// UsedErrorIds returns the value of the "used_error_ids" field in the mutation.
func (m *WorksheetRecordMutation) UsedErrorIds() (r []string, exists bool) {
	v := m.used_error_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldUsedErrorIds returns the old "used_error_ids" field's value of the WorksheetRecord entity.
// If the WorksheetRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorksheetRecordMutation) OldUsedErrorIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsedErrorIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsedErrorIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsedErrorIds: %w", err)
	}
	return oldValue.UsedErrorIds, nil
}

// AppendUsedErrorIds adds s to the "used_error_ids" field.
func (m *WorksheetRecordMutation) AppendUsedErrorIds(s []string) {
	m.appendused_error_ids = append(m.appendused_error_ids, s...)
}

// AppendedUsedErrorIds returns the list of values that were appended to the "used_error_ids" field in this mutation.
func (m *WorksheetRecordMutation) AppendedUsedErrorIds() ([]string, bool) {
	if len(m.appendused_error_ids) == 0 {
		return nil, false
	}
	return m.appendused_error_ids, true
}

// ClearUsedErrorIds clears the value of the "used_error_ids" field.
func (m *WorksheetRecordMutation) ClearUsedErrorIds() {
	m.used_error_ids = nil
	m.appendused_error_ids = nil
	m.clearedFields[worksheetrecord.FieldUsedErrorIds] = struct{}{}
}

// UsedErrorIdsCleared returns if the "used_error_ids" field was cleared in this mutation.
func (m *WorksheetRecordMutation) UsedErrorIdsCleared() bool {
	_, ok := m.clearedFields[worksheetrecord.FieldUsedErrorIds]
	return ok
}

// ResetUsedErrorIds resets all changes to the "used_error_ids" field.
func (m *WorksheetRecordMutation) ResetUsedErrorIds() {
	m.used_error_ids = nil
	m.appendused_error_ids = nil
	delete(m.clearedFields, worksheetrecord.FieldUsedErrorIds)
}

// SetUsedThinkingStyles sets the "used_thinking_styles" field.
func (m *WorksheetRecordMutation) SetUsedThinkingStyles(s []string) {
	m.used_thinking_styles = &s
	m.appendused_thinking_styles = nil
}

// UsedThinkingStyles returns the value of the "used_thinking_styles" field in the mutation.
func (m *WorksheetRecordMutation) UsedThinkingStyles() (r []string, exists bool) {
	v := m.used_thinking_styles
	if v == nil {
		return
	}
	return *v, true
}

// OldUsedThinkingStyles returns the old "used_thinking_styles" field's value of the WorksheetRecord entity.
// If the WorksheetRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorksheetRecordMutation) OldUsedThinkingStyles(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsedThinkingStyles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsedThinkingStyles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsedThinkingStyles: %w", err)
	}
	return oldValue.UsedThinkingStyles, nil
}

// AppendUsedThinkingStyles adds s to the "used_thinking_styles" field.
func (m *WorksheetRecordMutation) AppendUsedThinkingStyles(s []string) {
	m.appendused_thinking_styles = append(m.appendused_thinking_styles, s...)
}

// AppendedUsedThinkingStyles returns the list of values that were appended to the "used_thinking_styles" field in this mutation.
func (m *WorksheetRecordMutation) AppendedUsedThinkingStyles() ([]string, bool) {
	if len(m.appendused_thinking_styles) == 0 {
		return nil, false
	}
	return m.appendused_thinking_styles, true
}

// ClearUsedThinkingStyles clears the value of the "used_thinking_styles" field.
func (m *WorksheetRecordMutation) ClearUsedThinkingStyles() {
	m.used_thinking_styles = nil
	m.appendused_thinking_styles = nil
	m.clearedFields[worksheetrecord.FieldUsedThinkingStyles] = struct{}{}
}

// UsedThinkingStylesCleared returns if the "used_thinking_styles" field was cleared in this mutation.
func (m *WorksheetRecordMutation) UsedThinkingStylesCleared() bool {
	_, ok := m.clearedFields[worksheetrecord.FieldUsedThinkingStyles]
	return ok
}

// ResetUsedThinkingStyles resets all changes to the "used_thinking_styles" field.
func (m *WorksheetRecordMutation) ResetUsedThinkingStyles() {
	m.used_thinking_styles = nil
	m.appendused_thinking_styles = nil
	delete(m.clearedFields, worksheetrecord.FieldUsedThinkingStyles)
}

// SetUsedNumberPairs sets the "used_number_pairs" field.
func (m *WorksheetRecordMutation) SetUsedNumberPairs(s []string) {
	m.used_number_pairs = &s
	m.appendused_number_pairs = nil
}

// UsedNumberPairs returns the value of the "used_number_pairs" field in the mutation.
func (m *WorksheetRecordMutation) UsedNumberPairs() (r []string, exists bool) {
	v := m.used_number_pairs
	if v == nil {
		return
	}
	return *v, true
}

// OldUsedNumberPairs returns the old "used_number_pairs" field's value of the WorksheetRecord entity.
// If the WorksheetRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorksheetRecordMutation) OldUsedNumberPairs(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsedNumberPairs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsedNumberPairs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsedNumberPairs: %w", err)
	}
	return oldValue.UsedNumberPairs, nil
}

// AppendUsedNumberPairs adds s to the "used_number_pairs" field.
func (m *WorksheetRecordMutation) AppendUsedNumberPairs(s []string) {
	m.appendused_number_pairs = append(m.appendused_number_pairs, s...)
}

// AppendedUsedNumberPairs returns the list of values that were appended to the "used_number_pairs" field in this mutation.
func (m *WorksheetRecordMutation) AppendedUsedNumberPairs() ([]string, bool) {
	if len(m.appendused_number_pairs) == 0 {
		return nil, false
	}
	return m.appendused_number_pairs, true
}

// ClearUsedNumberPairs clears the value of the "used_number_pairs" field.
func (m *WorksheetRecordMutation) ClearUsedNumberPairs() {
	m.used_number_pairs = nil
	m.appendused_number_pairs = nil
	m.clearedFields[worksheetrecord.FieldUsedNumberPairs] = struct{}{}
}

// UsedNumberPairsCleared returns if the "used_number_pairs" field was cleared in this mutation.
func (m *WorksheetRecordMutation) UsedNumberPairsCleared() bool {
	_, ok := m.clearedFields[worksheetrecord.FieldUsedNumberPairs]
	return ok
}

// ResetUsedNumberPairs resets all changes to the "used_number_pairs" field.
func (m *WorksheetRecordMutation) ResetUsedNumberPairs() {
	m.used_number_pairs = nil
	m.appendused_number_pairs = nil
	delete(m.clearedFields, worksheetrecord.FieldUsedNumberPairs)
}

// SetUsedQuestionHashes sets the "used_question_hashes" field.
func (m *WorksheetRecordMutation) SetUsedQuestionHashes(s []string) {
	m.used_question_hashes = &s
	m.appendused_question_hashes = nil
}

// UsedQuestionHashes returns the value of the "used_question_hashes" field in the mutation.
func (m *WorksheetRecordMutation) UsedQuestionHashes() (r []string, exists bool) {
	v := m.used_question_hashes
	if v == nil {
		return
	}
	return *v, true
}

// OldUsedQuestionHashes returns the old "used_question_hashes" field's value of the WorksheetRecord entity.
// If the WorksheetRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorksheetRecordMutation) OldUsedQuestionHashes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsedQuestionHashes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsedQuestionHashes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsedQuestionHashes: %w", err)
	}
	return oldValue.UsedQuestionHashes, nil
}

// AppendUsedQuestionHashes adds s to the "used_question_hashes" field.
func (m *WorksheetRecordMutation) AppendUsedQuestionHashes(s []string) {
	m.appendused_question_hashes = append(m.appendused_question_hashes, s...)
}

// AppendedUsedQuestionHashes returns the list of values that were appended to the "used_question_hashes" field in this mutation.
func (m *WorksheetRecordMutation) AppendedUsedQuestionHashes() ([]string, bool) {
	if len(m.appendused_question_hashes) == 0 {
		return nil, false
	}
	return m.appendused_question_hashes, true
}

// ClearUsedQuestionHashes clears the value of the "used_question_hashes" field.
func (m *WorksheetRecordMutation) ClearUsedQuestionHashes() {
	m.used_question_hashes = nil
	m.appendused_question_hashes = nil
	m.clearedFields[worksheetrecord.FieldUsedQuestionHashes] = struct{}{}
}

// UsedQuestionHashesCleared returns if the "used_question_hashes" field was cleared in this mutation.
func (m *WorksheetRecordMutation) UsedQuestionHashesCleared() bool {
	_, ok := m.clearedFields[worksheetrecord.FieldUsedQuestionHashes]
	return ok
}

// ResetUsedQuestionHashes resets all changes to the "used_question_hashes" field.
func (m *WorksheetRecordMutation) ResetUsedQuestionHashes() {
	m.used_question_hashes = nil
	m.appendused_question_hashes = nil
	delete(m.clearedFields, worksheetrecord.FieldUsedQuestionHashes)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorksheetRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorksheetRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorksheetRecord entity.
// If the WorksheetRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorksheetRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorksheetRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the WorksheetRecordMutation builder.
func (m *WorksheetRecordMutation) Where(ps ...predicate.WorksheetRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorksheetRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorksheetRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorksheetRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorksheetRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorksheetRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorksheetRecord).
func (m *WorksheetRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorksheetRecordMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.worksheet_id != nil {
		fields = append(fields, worksheetrecord.FieldWorksheetID)
	}
	if m.grade != nil {
		fields = append(fields, worksheetrecord.FieldGrade)
	}
	if m.topic != nil {
		fields = append(fields, worksheetrecord.FieldTopic)
	}
	if m.used_contexts != nil {
		fields = append(fields, worksheetrecord.FieldUsedContexts)
	}
	if m.used_error_ids != nil {
		fields = append(fields, worksheetrecord.FieldUsedErrorIds)
	}
	if m.used_thinking_styles != nil {
		fields = append(fields, worksheetrecord.FieldUsedThinkingStyles)
	}
	if m.used_number_pairs != nil {
		fields = append(fields, worksheetrecord.FieldUsedNumberPairs)
	}
	if m.used_question_hashes != nil {
		fields = append(fields, worksheetrecord.FieldUsedQuestionHashes)
	}
	if m.created_at != nil {
		fields = append(fields, worksheetrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorksheetRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case worksheetrecord.FieldWorksheetID:
		return m.WorksheetID()
	case worksheetrecord.FieldGrade:
		return m.Grade()
	case worksheetrecord.FieldTopic:
		return m.Topic()
	case worksheetrecord.FieldUsedContexts:
		return m.UsedContexts()
	case worksheetrecord.FieldUsedErrorIds:
		return m.UsedErrorIds()
	case worksheetrecord.FieldUsedThinkingStyles:
		return m.UsedThinkingStyles()
	case worksheetrecord.FieldUsedNumberPairs:
		return m.UsedNumberPairs()
	case worksheetrecord.FieldUsedQuestionHashes:
		return m.UsedQuestionHashes()
	case worksheetrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorksheetRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case worksheetrecord.FieldWorksheetID:
		return m.OldWorksheetID(ctx)
	case worksheetrecord.FieldGrade:
		return m.OldGrade(ctx)
	case worksheetrecord.FieldTopic:
		return m.OldTopic(ctx)
	case worksheetrecord.FieldUsedContexts:
		return m.OldUsedContexts(ctx)
	case worksheetrecord.FieldUsedErrorIds:
		return m.OldUsedErrorIds(ctx)
	case worksheetrecord.FieldUsedThinkingStyles:
		return m.OldUsedThinkingStyles(ctx)
	case worksheetrecord.FieldUsedNumberPairs:
		return m.OldUsedNumberPairs(ctx)
	case worksheetrecord.FieldUsedQuestionHashes:
		return m.OldUsedQuestionHashes(ctx)
	case worksheetrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorksheetRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorksheetRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case worksheetrecord.FieldWorksheetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorksheetID(v)
		return nil
	case worksheetrecord.FieldGrade:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrade(v)
		return nil
	case worksheetrecord.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case worksheetrecord.FieldUsedContexts:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsedContexts(v)
		return nil
	case worksheetrecord.FieldUsedErrorIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsedErrorIds(v)
		return nil
	case worksheetrecord.FieldUsedThinkingStyles:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsedThinkingStyles(v)
		return nil
	case worksheetrecord.FieldUsedNumberPairs:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsedNumberPairs(v)
		return nil
	case worksheetrecord.FieldUsedQuestionHashes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsedQuestionHashes(v)
		return nil
	case worksheetrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorksheetRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorksheetRecordMutation) AddedFields() []string {
	var fields []string
	if m.addgrade != nil {
		fields = append(fields, worksheetrecord.FieldGrade)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorksheetRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case worksheetrecord.FieldGrade:
		return m.AddedGrade()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorksheetRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case worksheetrecord.FieldGrade:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGrade(v)
		return nil
	}
	return fmt.Errorf("unknown WorksheetRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorksheetRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(worksheetrecord.FieldUsedContexts) {
		fields = append(fields, worksheetrecord.FieldUsedContexts)
	}
	if m.FieldCleared(worksheetrecord.FieldUsedErrorIds) {
		fields = append(fields, worksheetrecord.FieldUsedErrorIds)
	}
	if m.FieldCleared(worksheetrecord.FieldUsedThinkingStyles) {
		fields = append(fields, worksheetrecord.FieldUsedThinkingStyles)
	}
	if m.FieldCleared(worksheetrecord.FieldUsedNumberPairs) {
		fields = append(fields, worksheetrecord.FieldUsedNumberPairs)
	}
	if m.FieldCleared(worksheetrecord.FieldUsedQuestionHashes) {
		fields = append(fields, worksheetrecord.FieldUsedQuestionHashes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorksheetRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorksheetRecordMutation) ClearField(name string) error {
	switch name {
	case worksheetrecord.FieldUsedContexts:
		m.ClearUsedContexts()
		return nil
	case worksheetrecord.FieldUsedErrorIds:
		m.ClearUsedErrorIds()
		return nil
	case worksheetrecord.FieldUsedThinkingStyles:
		m.ClearUsedThinkingStyles()
		return nil
	case worksheetrecord.FieldUsedNumberPairs:
		m.ClearUsedNumberPairs()
		return nil
	case worksheetrecord.FieldUsedQuestionHashes:
		m.ClearUsedQuestionHashes()
		return nil
	}
	return fmt.Errorf("unknown WorksheetRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorksheetRecordMutation) ResetField(name string) error {
	switch name {
	case worksheetrecord.FieldWorksheetID:
		m.ResetWorksheetID()
		return nil
	case worksheetrecord.FieldGrade:
		m.ResetGrade()
		return nil
	case worksheetrecord.FieldTopic:
		m.ResetTopic()
		return nil
	case worksheetrecord.FieldUsedContexts:
		m.ResetUsedContexts()
		return nil
	case worksheetrecord.FieldUsedErrorIds:
		m.ResetUsedErrorIds()
		return nil
	case worksheetrecord.FieldUsedThinkingStyles:
		m.ResetUsedThinkingStyles()
		return nil
	case worksheetrecord.FieldUsedNumberPairs:
		m.ResetUsedNumberPairs()
		return nil
	case worksheetrecord.FieldUsedQuestionHashes:
		m.ResetUsedQuestionHashes()
		return nil
	case worksheetrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown WorksheetRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorksheetRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorksheetRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorksheetRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorksheetRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorksheetRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorksheetRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorksheetRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WorksheetRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorksheetRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WorksheetRecord edge %s", name)
}
