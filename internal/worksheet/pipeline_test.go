package worksheet

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/nirajyt2022-source/edTech-sub001/internal/curriculum"
	"github.com/nirajyt2022-source/edTech-sub001/internal/history"
	"github.com/nirajyt2022-source/edTech-sub001/internal/llm"
	"github.com/nirajyt2022-source/edTech-sub001/internal/store"
)

// memHistoryRepo is a minimal in-memory store.HistoryRepo for
// pipeline tests.
type memHistoryRepo struct {
	rows []*store.WorksheetRecordData
}

func (m *memHistoryRepo) Append(_ context.Context, d *store.WorksheetRecordData) error {
	m.rows = append(m.rows, d)
	return nil
}

func (m *memHistoryRepo) Recent(_ context.Context, grade int, topic string, limit int) ([]*store.WorksheetRecordData, error) {
	var out []*store.WorksheetRecordData
	for i := len(m.rows) - 1; i >= 0 && len(out) < limit; i-- {
		if m.rows[i].Grade == grade && m.rows[i].Topic == topic {
			out = append(out, m.rows[i])
		}
	}
	return out, nil
}

func (m *memHistoryRepo) Prune(_ context.Context, _ int, _ string, _ int) error { return nil }

func (m *memHistoryRepo) Reset(_ context.Context, _ int, _ string) error { return nil }

// mockQuestion builds a canned generator response.
func mockQuestion(t *testing.T, text, format, answer string, extra map[string]string) llm.MockResponse {
	t.Helper()
	out := map[string]any{
		"question_text":  text,
		"format":         format,
		"answer":         answer,
		"choices":        []string{},
		"hint":           "",
		"context":        "",
		"error_id":       "",
		"thinking_style": "",
	}
	if format == "mcq" {
		out["choices"] = []string{answer, "11", "12", "13"}
	}
	for k, v := range extra {
		out[k] = v
	}
	content, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("marshal mock question: %v", err)
	}
	return llm.MockResponse{Content: content}
}

func newTestPipeline(t *testing.T, mock *llm.MockProvider, hist *history.Service) *Pipeline {
	t.Helper()
	reg := loadRegistry(t)
	gen := NewSlotGenerator(mock, DefaultGenConfig())
	contexts := NewContextBuilder(reg, nil, hist, nil)
	return NewPipeline(reg, gen, contexts, hist, nil)
}

func TestGenerateWorksheet_HappyPath(t *testing.T) {
	mock := llm.NewMockProvider(
		mockQuestion(t, "What is 34 + 25?", "mcq", "59", map[string]string{"context": "plain sums"}),
		mockQuestion(t, "What is 18 + 71?", "mcq", "89", nil),
		mockQuestion(t, "Meena had 46 marbles and won 27 more at the fair. How many marbles does she have now?", "word_problem", "73", map[string]string{"context": "fair"}),
		mockQuestion(t, "Fill in the missing number: 35 + __ = 62", "fill_blank", "27", nil),
		mockQuestion(t, "Rohan estimates 48 + 33 is about 80. Is his estimate close? Work out the real sum.", "word_problem", "81", map[string]string{"thinking_style": "estimate-then-check"}),
	)
	p := newTestPipeline(t, mock, nil)

	ws, err := p.GenerateWorksheet(context.Background(), Request{
		Grade: 2, Subject: curriculum.SubjectMath, Topic: "addition", Count: 5,
	})
	if err != nil {
		t.Fatalf("GenerateWorksheet: %v", err)
	}

	if len(ws.Questions) != 5 {
		t.Fatalf("got %d questions, want 5", len(ws.Questions))
	}
	if ws.ID == "" {
		t.Error("worksheet has no id")
	}
	if ws.Topic != "Addition within 100" || ws.Grade != 2 {
		t.Errorf("topic resolved to %q grade %d", ws.Topic, ws.Grade)
	}
	for i, q := range ws.Questions {
		if q.IsFallback {
			t.Errorf("question %d is a fallback with a healthy provider", i+1)
		}
	}
	if !ws.Audit.Passed {
		t.Errorf("audit failures on a clean run: %v", ws.Audit.Failures)
	}
	// Default context scaffolds: ramp order plus two injected hints.
	hinted := 0
	for _, q := range ws.Questions {
		if strings.HasPrefix(q.Hint, "Think about: ") {
			hinted++
		}
	}
	if hinted != 2 {
		t.Errorf("injected hints = %d, want 2", hinted)
	}
}

func TestGenerateWorksheet_ProviderDownFillsFallbacks(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue: every call errors
	p := newTestPipeline(t, mock, nil)

	ws, err := p.GenerateWorksheet(context.Background(), Request{
		Grade: 2, Subject: curriculum.SubjectMath, Topic: "Addition within 100", Count: 5,
	})
	if err != nil {
		t.Fatalf("GenerateWorksheet: %v", err)
	}

	if len(ws.Questions) != 5 {
		t.Fatalf("got %d questions, want 5", len(ws.Questions))
	}
	for i, q := range ws.Questions {
		if !q.IsFallback {
			t.Errorf("question %d not flagged as fallback", i+1)
		}
	}
	if ws.Audit.Passed {
		t.Error("audit passed a worksheet full of fallback stubs")
	}
	// Each slot gets MaxAttempts tries before falling back.
	if got, want := mock.CallCount(), 5*DefaultGenConfig().MaxAttempts; got != want {
		t.Errorf("provider calls = %d, want %d", got, want)
	}
}

func TestGenerateWorksheet_ReviewerRejectionRetries(t *testing.T) {
	longAnswer := strings.Repeat("too many words in this answer ", 3)
	mock := llm.NewMockProvider(
		mockQuestion(t, "Estimate 29 + 52, then find the exact sum.", "word_problem", longAnswer, nil),
		mockQuestion(t, "Estimate 29 + 52, then find the exact sum.", "word_problem", "81", nil),
	)
	p := newTestPipeline(t, mock, nil)

	ws, err := p.GenerateWorksheet(context.Background(), Request{
		Grade: 2, Subject: curriculum.SubjectMath, Topic: "Addition within 100", Count: 1,
	})
	if err != nil {
		t.Fatalf("GenerateWorksheet: %v", err)
	}

	if len(ws.Questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(ws.Questions))
	}
	if ws.Questions[0].IsFallback {
		t.Error("retry after rejection still ended in a fallback")
	}
	if ws.Questions[0].Answer != "81" {
		t.Errorf("Answer = %q, want the retried question", ws.Questions[0].Answer)
	}
	if mock.CallCount() != 2 {
		t.Errorf("provider calls = %d, want 2", mock.CallCount())
	}
}

func TestGenerateWorksheet_FormatHintsFollowMix(t *testing.T) {
	responses := make([]llm.MockResponse, 5)
	for i := range responses {
		responses[i] = mockQuestion(t, "What is 34 + 25?", "mcq", "59", nil)
	}
	mock := llm.NewMockProvider(responses...)
	p := newTestPipeline(t, mock, nil)

	_, err := p.GenerateWorksheet(context.Background(), Request{
		Grade: 2, Subject: curriculum.SubjectMath, Topic: "Addition within 100", Count: 5,
	})
	if err != nil {
		t.Fatalf("GenerateWorksheet: %v", err)
	}

	// Default mix 40/30/30 over 5 slots: 2 mcq, 2 fill_blank, 1
	// word_problem (fill_blank wins the leftover on remainder).
	hinted := map[string]int{}
	for _, call := range mock.Calls {
		for _, msg := range call.Messages {
			for _, f := range []string{"mcq", "fill_blank", "word_problem"} {
				if strings.Contains(msg.Content, "Preferred format: "+f) {
					hinted[f]++
				}
			}
		}
	}
	want := map[string]int{"mcq": 2, "fill_blank": 2, "word_problem": 1}
	for f, n := range want {
		if hinted[f] != n {
			t.Errorf("prompts with %s hint = %d, want %d (got %v)", f, hinted[f], n, hinted)
		}
	}
}

func TestGenerateWorksheet_OffTopicKeywordRejected(t *testing.T) {
	// Addition topic disallows multiplication vocabulary; the first
	// candidate drifts, the retry stays on topic.
	mock := llm.NewMockProvider(
		mockQuestion(t, "Multiply 6 by 4 to find the total.", "fill_blank", "24", nil),
		mockQuestion(t, "What is 36 + 48?", "fill_blank", "84", nil),
	)
	p := newTestPipeline(t, mock, nil)

	ws, err := p.GenerateWorksheet(context.Background(), Request{
		Grade: 2, Subject: curriculum.SubjectMath, Topic: "Addition within 100", Count: 1,
	})
	if err != nil {
		t.Fatalf("GenerateWorksheet: %v", err)
	}

	if len(ws.Questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(ws.Questions))
	}
	if ws.Questions[0].IsFallback {
		t.Error("retry after keyword rejection still ended in a fallback")
	}
	if got := ws.Questions[0].Answer; got != "84" {
		t.Errorf("Answer = %q, want the on-topic retry", got)
	}
	if mock.CallCount() != 2 {
		t.Errorf("provider calls = %d, want 2", mock.CallCount())
	}
}

func TestGenerateWorksheet_UnresolvableTopicFails(t *testing.T) {
	p := newTestPipeline(t, llm.NewMockProvider(), nil)

	_, err := p.GenerateWorksheet(context.Background(), Request{
		Grade: 2, Subject: curriculum.SubjectMath, Topic: "Quantum Physics", Count: 5,
	})
	if err == nil {
		t.Fatal("expected error for an unknown topic")
	}
}

func TestGenerateWorksheet_RecordsHistory(t *testing.T) {
	repo := &memHistoryRepo{}
	hist := history.NewService(repo, nil)

	mock := llm.NewMockProvider(
		mockQuestion(t, "What is 34 + 25?", "mcq", "59", map[string]string{"context": "plain sums"}),
		mockQuestion(t, "What is 18 + 71?", "mcq", "89", nil),
		mockQuestion(t, "Meena had 46 marbles and won 27 more at the fair. How many marbles does she have now?", "word_problem", "73", map[string]string{"context": "fair"}),
		mockQuestion(t, "Fill in the missing number: 35 + __ = 62", "fill_blank", "27", nil),
		mockQuestion(t, "Rohan estimates 48 + 33 is about 80. Is his estimate close? Work out the real sum.", "word_problem", "81", map[string]string{"thinking_style": "estimate-then-check"}),
	)
	p := newTestPipeline(t, mock, hist)

	ws, err := p.GenerateWorksheet(context.Background(), Request{
		Grade: 2, Subject: curriculum.SubjectMath, Topic: "Addition within 100", Count: 5,
	})
	if err != nil {
		t.Fatalf("GenerateWorksheet: %v", err)
	}

	if len(repo.rows) != 1 {
		t.Fatalf("history rows = %d, want 1", len(repo.rows))
	}
	rec := repo.rows[0]
	if rec.WorksheetID != ws.ID || rec.Grade != 2 || rec.Topic != "Addition within 100" {
		t.Errorf("history record = %+v", rec)
	}
	if len(rec.UsedQuestionHashes) != 10 {
		t.Errorf("question hashes = %d, want exact+structural per question", len(rec.UsedQuestionHashes))
	}
	if len(rec.UsedContexts) != 2 {
		t.Errorf("UsedContexts = %v, want the two context labels", rec.UsedContexts)
	}
	if len(rec.UsedThinkingStyles) != 1 {
		t.Errorf("UsedThinkingStyles = %v", rec.UsedThinkingStyles)
	}
	if len(rec.UsedNumberPairs) == 0 {
		t.Error("no number pairs recorded")
	}
}
