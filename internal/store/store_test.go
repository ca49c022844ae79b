package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"mastery_records", "worksheet_records", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestMasteryGetMissing(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()

	rec, err := repo.Get(context.Background(), "ria", "add-2digit")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil record when none exists")
	}
}

func TestMasteryUpsertAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	practiced := time.Now().UTC().Truncate(time.Second)
	err := repo.Upsert(ctx, &MasteryRecordData{
		StudentID:       "ria",
		SkillTag:        "add-2digit",
		Level:           "learning",
		Streak:          2,
		TotalAttempts:   4,
		CorrectAttempts: 3,
		FormatStats: map[string]FormatStatData{
			"mcq": {Correct: 2, Total: 3},
		},
		LastPracticedAt: &practiced,
	})
	if err != nil {
		t.Fatalf("upsert (insert): %v", err)
	}

	rec, err := repo.Get(ctx, "ria", "add-2digit")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec == nil {
		t.Fatal("expected record after upsert")
	}
	if rec.Level != "learning" || rec.Streak != 2 {
		t.Errorf("got level=%q streak=%d, want learning/2", rec.Level, rec.Streak)
	}
	if rec.FormatStats["mcq"].Total != 3 {
		t.Errorf("format stats mcq total = %d, want 3", rec.FormatStats["mcq"].Total)
	}
	if rec.LastPracticedAt == nil {
		t.Fatal("expected last practiced timestamp")
	}

	// Second upsert on the same key updates in place.
	err = repo.Upsert(ctx, &MasteryRecordData{
		StudentID: "ria",
		SkillTag:  "add-2digit",
		Level:     "improving",
		Streak:    3,
	})
	if err != nil {
		t.Fatalf("upsert (update): %v", err)
	}

	rec, err = repo.Get(ctx, "ria", "add-2digit")
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if rec.Level != "improving" || rec.Streak != 3 {
		t.Errorf("got level=%q streak=%d, want improving/3", rec.Level, rec.Streak)
	}

	count, err := s.Client().MasteryRecord.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("record count = %d, want 1 (upsert must not duplicate)", count)
	}
}

func TestMasteryListByStudentOrdered(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	for _, tag := range []string{"carry-over", "add-2digit", "missing-addend"} {
		if err := repo.Upsert(ctx, &MasteryRecordData{StudentID: "ria", SkillTag: tag, Level: "unknown"}); err != nil {
			t.Fatalf("upsert %s: %v", tag, err)
		}
	}
	if err := repo.Upsert(ctx, &MasteryRecordData{StudentID: "dev", SkillTag: "add-2digit", Level: "unknown"}); err != nil {
		t.Fatalf("upsert other student: %v", err)
	}

	recs, err := repo.ListByStudent(ctx, "ria")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("got %d records, want 3", len(recs))
	}
	want := []string{"add-2digit", "carry-over", "missing-addend"}
	for i, w := range want {
		if recs[i].SkillTag != w {
			t.Errorf("recs[%d].SkillTag = %q, want %q", i, recs[i].SkillTag, w)
		}
	}
}

func TestMasteryReset(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	for _, tag := range []string{"add-2digit", "carry-over"} {
		if err := repo.Upsert(ctx, &MasteryRecordData{StudentID: "ria", SkillTag: tag, Level: "learning"}); err != nil {
			t.Fatalf("upsert: %v", err)
		}
	}
	if err := repo.Upsert(ctx, &MasteryRecordData{StudentID: "dev", SkillTag: "add-2digit", Level: "learning"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if err := repo.Reset(ctx, "ria"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	recs, err := repo.ListByStudent(ctx, "ria")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("got %d records after reset, want 0", len(recs))
	}

	// Other students untouched.
	recs, err = repo.ListByStudent(ctx, "dev")
	if err != nil {
		t.Fatalf("list other: %v", err)
	}
	if len(recs) != 1 {
		t.Errorf("other student records = %d, want 1", len(recs))
	}
}

func appendWorksheet(t *testing.T, repo HistoryRepo, id string, grade int, topic string, at time.Time) {
	t.Helper()
	err := repo.Append(context.Background(), &WorksheetRecordData{
		WorksheetID:        id,
		Grade:              grade,
		Topic:              topic,
		UsedContexts:       []string{"fruit shop"},
		UsedQuestionHashes: []string{"h-" + id},
		CreatedAt:          at,
	})
	if err != nil {
		t.Fatalf("append %s: %v", id, err)
	}
}

func TestHistoryAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	appendWorksheet(t, repo, "w1", 2, "Addition within 100", base)
	appendWorksheet(t, repo, "w2", 2, "Addition within 100", base.Add(time.Minute))
	appendWorksheet(t, repo, "w3", 2, "Subtraction", base.Add(2*time.Minute))

	rows, err := repo.Recent(ctx, 2, "Addition within 100", 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	// Newest first.
	if rows[0].WorksheetID != "w2" || rows[1].WorksheetID != "w1" {
		t.Errorf("order = [%s %s], want [w2 w1]", rows[0].WorksheetID, rows[1].WorksheetID)
	}
	if rows[0].UsedContexts[0] != "fruit shop" {
		t.Errorf("used contexts = %v", rows[0].UsedContexts)
	}

	// Limit applies.
	rows, err = repo.Recent(ctx, 2, "Addition within 100", 1)
	if err != nil {
		t.Fatalf("recent limited: %v", err)
	}
	if len(rows) != 1 || rows[0].WorksheetID != "w2" {
		t.Errorf("limited rows = %v", rows)
	}
}

func TestHistoryPruneKeepsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		appendWorksheet(t, repo, "w"+string(rune('0'+i)), 3, "Fractions", base.Add(time.Duration(i)*time.Minute))
	}

	if err := repo.Prune(ctx, 3, "Fractions", 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	rows, err := repo.Recent(ctx, 3, "Fractions", 100)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("got %d rows after prune, want 5", len(rows))
	}
	if rows[0].WorksheetID != "w6" {
		t.Errorf("newest = %s, want w6", rows[0].WorksheetID)
	}

	// Prune with fewer rows than keep is a no-op.
	if err := repo.Prune(ctx, 3, "Fractions", 50); err != nil {
		t.Fatalf("prune no-op: %v", err)
	}
	rows, _ = repo.Recent(ctx, 3, "Fractions", 100)
	if len(rows) != 5 {
		t.Errorf("got %d rows, want 5", len(rows))
	}
}

func TestHistoryReset(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	appendWorksheet(t, repo, "w1", 2, "Addition within 100", base)
	appendWorksheet(t, repo, "w2", 2, "Subtraction", base)
	appendWorksheet(t, repo, "w3", 4, "Fractions", base)

	// Topic-scoped reset.
	if err := repo.Reset(ctx, 2, "Subtraction"); err != nil {
		t.Fatalf("reset topic: %v", err)
	}
	rows, _ := repo.Recent(ctx, 2, "Subtraction", 10)
	if len(rows) != 0 {
		t.Errorf("subtraction rows = %d, want 0", len(rows))
	}
	rows, _ = repo.Recent(ctx, 2, "Addition within 100", 10)
	if len(rows) != 1 {
		t.Errorf("addition rows = %d, want 1", len(rows))
	}

	// Grade-wide reset with empty topic.
	if err := repo.Reset(ctx, 2, ""); err != nil {
		t.Fatalf("reset grade: %v", err)
	}
	rows, _ = repo.Recent(ctx, 2, "Addition within 100", 10)
	if len(rows) != 0 {
		t.Errorf("grade 2 rows = %d, want 0", len(rows))
	}
	rows, _ = repo.Recent(ctx, 4, "Fractions", 10)
	if len(rows) != 1 {
		t.Errorf("grade 4 rows = %d, want 1", len(rows))
	}
}

func TestEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "anthropic",
			Model:        "claude-haiku",
			Purpose:      "slot-gen",
			InputTokens:  100,
			OutputTokens: 50,
			LatencyMs:    200,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	// Newest (highest sequence) first.
	if events[0].Sequence != 3 {
		t.Errorf("first sequence = %d, want 3", events[0].Sequence)
	}

	events, err = repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("limited events = %d, want 1", len(events))
	}

	events, err = repo.QueryLLMEvents(ctx, QueryOpts{After: 1})
	if err != nil {
		t.Fatalf("query after: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("events after seq 1 = %d, want 2", len(events))
	}

	e, err := repo.GetLLMEvent(ctx, 2)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil || e.Sequence != 2 {
		t.Fatalf("get sequence 2 = %+v", e)
	}

	e, err = repo.GetLLMEvent(ctx, 99)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if e != nil {
		t.Error("expected nil for missing sequence")
	}
}

func TestEventUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appendEvent := func(purpose, model string, in, out int, latency int64) {
		t.Helper()
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "anthropic",
			Model:        model,
			Purpose:      purpose,
			InputTokens:  in,
			OutputTokens: out,
			LatencyMs:    latency,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	appendEvent("slot-gen", "claude-haiku", 100, 50, 100)
	appendEvent("slot-gen", "claude-haiku", 200, 100, 300)
	appendEvent("bonus-question", "gpt-4o-mini", 80, 40, 150)

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("got %d purposes, want 2", len(byPurpose))
	}
	for _, st := range byPurpose {
		if st.Purpose != "slot-gen" {
			continue
		}
		if st.Calls != 2 || st.InputTokens != 300 || st.OutputTokens != 150 {
			t.Errorf("slot-gen usage = %+v", st)
		}
		if st.AvgLatencyMs != 200 {
			t.Errorf("slot-gen avg latency = %d, want 200", st.AvgLatencyMs)
		}
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("got %d models, want 2", len(byModel))
	}
	for _, mu := range byModel {
		if mu.Model == "gpt-4o-mini" && mu.Calls != 1 {
			t.Errorf("gpt-4o-mini calls = %d, want 1", mu.Calls)
		}
	}
}
