package worksheet

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/nirajyt2022-source/edTech-sub001/internal/llm"
	"github.com/nirajyt2022-source/edTech-sub001/internal/planner"
)

func recallSlot() planner.SlotSpec {
	return planner.SlotSpec{Type: planner.SlotRecall, SkillTag: "add-2digit"}
}

func TestGenerate_DefensiveParsing(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed json", `{"question_text": `},
		{"empty question text", `{"question_text":"  ","format":"mcq","answer":"4","choices":["4","5","6","7"],"hint":"","context":"","error_id":"","thinking_style":""}`},
		{"unknown format", `{"question_text":"What is 2+2?","format":"essay","answer":"4","choices":[],"hint":"","context":"","error_id":"","thinking_style":""}`},
		{"mcq without four choices", `{"question_text":"What is 2+2?","format":"mcq","answer":"4","choices":["4","5"],"hint":"","context":"","error_id":"","thinking_style":""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tt.content)})
			g := NewSlotGenerator(mock, DefaultGenConfig())

			if _, err := g.Generate(context.Background(), recallSlot(), mathContext()); err == nil {
				t.Error("expected an error for a malformed response")
			}
		})
	}
}

func TestGenerate_PopulatesSlotFields(t *testing.T) {
	mock := llm.NewMockProvider(mockQuestion(t, "What is 12 + 34?", "fill_blank", "46", nil))
	g := NewSlotGenerator(mock, DefaultGenConfig())

	q, err := g.Generate(context.Background(), recallSlot(), mathContext())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if q.SkillTag != "add-2digit" || q.SlotType != "recall" {
		t.Errorf("slot fields = %q/%q", q.SkillTag, q.SlotType)
	}
	if q.IsFallback || q.IsBonus {
		t.Error("fresh question carries fallback or bonus flags")
	}
}

func TestGenerateBonus_FlagsAndReasoning(t *testing.T) {
	mock := llm.NewMockProvider(mockQuestion(t, "A number doubled and then halved gives 48. What was it?", "word_problem", "48", nil))
	g := NewSlotGenerator(mock, DefaultGenConfig())

	q, err := g.GenerateBonus(context.Background(), mathContext())
	if err != nil {
		t.Fatalf("GenerateBonus: %v", err)
	}
	if !q.IsBonus {
		t.Error("bonus question not flagged")
	}

	// The bonus instruction targets the reasoning bloom level even
	// when the context sits at recall.
	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d", len(mock.Calls))
	}
	sent := mock.Calls[0].Messages[0].Content
	if want := "Cognitive level: REASONING"; !strings.Contains(sent, want) {
		t.Errorf("bonus instruction missing %q", want)
	}
}

func TestFallback_Stub(t *testing.T) {
	q := Fallback(recallSlot(), mathContext())

	if !q.IsFallback {
		t.Error("fallback stub not flagged")
	}
	if q.SkillTag != "add-2digit" || q.SlotType != "recall" {
		t.Errorf("slot fields = %q/%q", q.SkillTag, q.SlotType)
	}
	if q.Text == "" {
		t.Error("fallback stub has no text")
	}
}
