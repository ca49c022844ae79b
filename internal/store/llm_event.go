package store

import (
	"context"
	"fmt"

	"github.com/nirajyt2022-source/edTech-sub001/ent"
	"github.com/nirajyt2022-source/edTech-sub001/ent/llmrequestevent"
	"github.com/nirajyt2022-source/edTech-sub001/ent/predicate"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMRequestEvent, error) {
	var preds []predicate.LLMRequestEvent
	if opts.After > 0 {
		preds = append(preds, llmrequestevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		preds = append(preds, llmrequestevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		preds = append(preds, llmrequestevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		preds = append(preds, llmrequestevent.TimestampLTE(opts.To))
	}

	q := r.client.LLMRequestEvent.Query().
		Where(preds...).
		Order(ent.Desc(llmrequestevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}

	out := make([]*LLMRequestEvent, 0, len(events))
	for _, e := range events {
		out = append(out, entLLMEventToEvent(e))
	}
	return out, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, sequence int64) (*LLMRequestEvent, error) {
	e, err := r.client.LLMRequestEvent.Query().
		Where(llmrequestevent.Sequence(sequence)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get LLM request event: %w", err)
	}
	return entLLMEventToEvent(e), nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error) {
	events, err := r.client.LLMRequestEvent.Query().
		Order(ent.Asc(llmrequestevent.FieldPurpose)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}

	byPurpose := make(map[string]*LLMUsageStats)
	var order []string
	totalLatency := make(map[string]int64)
	for _, e := range events {
		st, ok := byPurpose[e.Purpose]
		if !ok {
			st = &LLMUsageStats{Purpose: e.Purpose}
			byPurpose[e.Purpose] = st
			order = append(order, e.Purpose)
		}
		st.Calls++
		st.InputTokens += e.InputTokens
		st.OutputTokens += e.OutputTokens
		totalLatency[e.Purpose] += e.LatencyMs
	}

	out := make([]LLMUsageStats, 0, len(order))
	for _, p := range order {
		st := byPurpose[p]
		if st.Calls > 0 {
			st.AvgLatencyMs = totalLatency[p] / int64(st.Calls)
		}
		out = append(out, *st)
	}
	return out, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	events, err := r.client.LLMRequestEvent.Query().
		Order(ent.Asc(llmrequestevent.FieldModel)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}

	byModel := make(map[string]*LLMModelUsage)
	var order []string
	for _, e := range events {
		mu, ok := byModel[e.Model]
		if !ok {
			mu = &LLMModelUsage{Model: e.Model}
			byModel[e.Model] = mu
			order = append(order, e.Model)
		}
		mu.Calls++
		mu.InputTokens += e.InputTokens
		mu.OutputTokens += e.OutputTokens
	}

	out := make([]LLMModelUsage, 0, len(order))
	for _, m := range order {
		out = append(out, *byModel[m])
	}
	return out, nil
}

// entLLMEventToEvent converts an ent LLMRequestEvent to repo data.
func entLLMEventToEvent(e *ent.LLMRequestEvent) *LLMRequestEvent {
	return &LLMRequestEvent{
		ID:        e.ID,
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp,
		LLMRequestEventData: LLMRequestEventData{
			Provider:     e.Provider,
			Model:        e.Model,
			Purpose:      e.Purpose,
			InputTokens:  e.InputTokens,
			OutputTokens: e.OutputTokens,
			LatencyMs:    e.LatencyMs,
			Success:      e.Success,
			ErrorMessage: e.ErrorMessage,
			RequestBody:  e.RequestBody,
			ResponseBody: e.ResponseBody,
		},
	}
}
