package history

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/nirajyt2022-source/edTech-sub001/internal/store"
)

// memRepo is an in-memory store.HistoryRepo keeping append order.
type memRepo struct {
	rows    []*store.WorksheetRecordData
	recErr  error
	readErr error
}

func (m *memRepo) Append(_ context.Context, d *store.WorksheetRecordData) error {
	if m.recErr != nil {
		return m.recErr
	}
	m.rows = append(m.rows, d)
	return nil
}

func (m *memRepo) Recent(_ context.Context, grade int, topic string, limit int) ([]*store.WorksheetRecordData, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	var out []*store.WorksheetRecordData
	for i := len(m.rows) - 1; i >= 0 && len(out) < limit; i-- {
		if m.rows[i].Grade == grade && m.rows[i].Topic == topic {
			out = append(out, m.rows[i])
		}
	}
	return out, nil
}

func (m *memRepo) Prune(_ context.Context, grade int, topic string, keep int) error {
	var kept []*store.WorksheetRecordData
	matched := 0
	for i := len(m.rows) - 1; i >= 0; i-- {
		r := m.rows[i]
		if r.Grade == grade && r.Topic == topic {
			matched++
			if matched > keep {
				continue
			}
		}
		kept = append([]*store.WorksheetRecordData{r}, kept...)
	}
	m.rows = kept
	return nil
}

func (m *memRepo) Reset(_ context.Context, grade int, topic string) error {
	var kept []*store.WorksheetRecordData
	for _, r := range m.rows {
		if r.Grade == grade && (topic == "" || r.Topic == topic) {
			continue
		}
		kept = append(kept, r)
	}
	m.rows = kept
	return nil
}

func TestRecordAndAvoidState(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo, nil)
	ctx := context.Background()

	rec := Record{
		WorksheetID:        "w1",
		Grade:              3,
		Topic:              "multiplication-tables",
		UsedContexts:       []string{"cricket", "mango orchard"},
		UsedNumberPairs:    []string{"3x4", "6x7"},
		UsedQuestionHashes: []string{QuestionHash("What is 3 x 4?")},
		CreatedAt:          time.Now(),
	}
	if err := svc.Record(ctx, rec); err != nil {
		t.Fatal(err)
	}

	state := svc.AvoidState(ctx, 3, "multiplication-tables")
	if len(state.UsedContexts) != 2 {
		t.Errorf("UsedContexts = %v", state.UsedContexts)
	}
	if len(state.UsedNumberPairs) != 2 {
		t.Errorf("UsedNumberPairs = %v", state.UsedNumberPairs)
	}
	if len(state.UsedQuestionHashes) != 1 {
		t.Errorf("UsedQuestionHashes = %v", state.UsedQuestionHashes)
	}
}

func TestAvoidState_UnionsAndDedups(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_ = svc.Record(ctx, Record{
			Grade: 2, Topic: "addition",
			UsedContexts: []string{"market", fmt.Sprintf("story-%d", i)},
		})
	}

	state := svc.AvoidState(ctx, 2, "addition")
	// "market" appears once despite three records.
	if len(state.UsedContexts) != 4 {
		t.Errorf("UsedContexts = %v, want 4 unique values", state.UsedContexts)
	}
}

func TestRecord_PrunesToWindow(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo, nil)
	ctx := context.Background()

	for i := 0; i < Window+10; i++ {
		_ = svc.Record(ctx, Record{
			Grade: 4, Topic: "fractions",
			UsedContexts: []string{fmt.Sprintf("ctx-%d", i)},
		})
	}

	if len(repo.rows) != Window {
		t.Fatalf("retained %d rows, want %d", len(repo.rows), Window)
	}

	state := svc.AvoidState(ctx, 4, "fractions")
	for _, c := range state.UsedContexts {
		if c == "ctx-0" || c == "ctx-9" {
			t.Errorf("pruned record %s still in avoid state", c)
		}
	}
	if len(state.UsedContexts) != Window {
		t.Errorf("UsedContexts = %d, want %d", len(state.UsedContexts), Window)
	}
}

func TestAvoidState_StreamsAreIndependent(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo, nil)
	ctx := context.Background()

	_ = svc.Record(ctx, Record{Grade: 3, Topic: "tables", UsedContexts: []string{"zoo"}})
	_ = svc.Record(ctx, Record{Grade: 4, Topic: "tables", UsedContexts: []string{"farm"}})

	state := svc.AvoidState(ctx, 3, "tables")
	if len(state.UsedContexts) != 1 || state.UsedContexts[0] != "zoo" {
		t.Errorf("UsedContexts = %v, want [zoo]", state.UsedContexts)
	}
}

func TestAvoidState_FailOpen(t *testing.T) {
	repo := &memRepo{readErr: fmt.Errorf("disk on fire")}
	svc := NewService(repo, nil)

	state := svc.AvoidState(context.Background(), 3, "tables")
	if len(state.UsedContexts) != 0 || len(state.UsedQuestionHashes) != 0 {
		t.Errorf("avoid state not empty on repo failure: %+v", state)
	}
}

func TestNilRepo(t *testing.T) {
	svc := NewService(nil, nil)
	ctx := context.Background()

	if err := svc.Record(ctx, Record{Grade: 1, Topic: "x"}); err != nil {
		t.Errorf("Record with nil repo: %v", err)
	}
	state := svc.AvoidState(ctx, 1, "x")
	if len(state.UsedContexts) != 0 {
		t.Errorf("state = %+v", state)
	}
}
