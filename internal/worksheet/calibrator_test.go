package worksheet

import (
	"context"
	"errors"
	"testing"
)

func scaffoldingContext() GenerationContext {
	gc := mathContext()
	gc.Scaffolding = true
	gc.Challenge = false
	return gc
}

func TestCalibrate_ScaffoldRampIsNonDecreasing(t *testing.T) {
	c := NewCalibrator(nil, nil)
	qs := []Question{
		{Text: "A shopkeeper sold 23 apples in the morning and 45 in the evening. How many apples did he sell?", Format: "word_problem"},
		{Text: "What is 7 + 8?", Format: "mcq"},
		{Text: "Fill in: 30 + __ = 52", Format: "fill_blank"},
		{Text: "What is 20 + 30?", Format: "mcq"},
	}

	out := c.Calibrate(context.Background(), qs, scaffoldingContext())

	if len(out) != len(qs) {
		t.Fatalf("calibrate changed question count: %d -> %d", len(qs), len(out))
	}
	for i := 1; i < len(out); i++ {
		if out[i].WordCount() < out[i-1].WordCount() {
			t.Errorf("word count decreases at position %d: %d after %d",
				i, out[i].WordCount(), out[i-1].WordCount())
		}
	}
}

func TestCalibrate_HardFormatLastOnTies(t *testing.T) {
	c := NewCalibrator(nil, nil)
	qs := []Question{
		{Text: "one two three four five", Format: "word_problem"},
		{Text: "uno dos tres cuatro cinco", Format: "mcq"},
	}

	out := c.Calibrate(context.Background(), qs, scaffoldingContext())

	if out[0].Format != "mcq" || out[1].Format != "word_problem" {
		t.Errorf("tie-break order = [%s, %s], want word_problem last", out[0].Format, out[1].Format)
	}
}

func TestCalibrate_InjectsExactlyTwoHints(t *testing.T) {
	c := NewCalibrator(nil, nil)
	qs := []Question{
		{Text: "q one", Format: "mcq"},
		{Text: "q two", Format: "mcq", Hint: "already has one"},
		{Text: "q three", Format: "mcq"},
		{Text: "q four", Format: "mcq"},
	}

	out := c.Calibrate(context.Background(), qs, scaffoldingContext())

	want := "Think about: Addition"
	injected := 0
	for _, q := range out {
		if q.Hint == want {
			injected++
		}
	}
	if injected != 2 {
		t.Errorf("injected %d deterministic hints, want 2", injected)
	}
	// The pre-existing hint is untouched.
	for _, q := range out {
		if q.Text == "q two" && q.Hint != "already has one" {
			t.Error("existing hint was overwritten")
		}
	}
	// The first two hint-less questions in ramp order got the hint.
	seen := 0
	for _, q := range out {
		if q.Hint == "already has one" {
			continue
		}
		seen++
		if seen <= 2 && q.Hint != want {
			t.Errorf("hint-less question %d in order lacks the injected hint", seen)
		}
		if seen > 2 && q.Hint == want {
			t.Errorf("hint injected beyond the first two hint-less questions")
		}
	}
}

func TestCalibrate_NoScaffoldingNoSortNoHints(t *testing.T) {
	c := NewCalibrator(nil, nil)
	qs := []Question{
		{Text: "a very long question with many words in it for ordering", Format: "word_problem"},
		{Text: "short", Format: "mcq"},
	}

	gc := mathContext()
	gc.Scaffolding = false

	out := c.Calibrate(context.Background(), qs, gc)

	if out[0].Text != qs[0].Text {
		t.Error("question order changed with scaffolding off")
	}
	for _, q := range out {
		if q.Hint != "" {
			t.Error("hint injected with scaffolding off")
		}
	}
}

func TestCalibrate_ChallengeAppendsOneBonus(t *testing.T) {
	bonus := func(_ context.Context, _ GenerationContext) (*Question, error) {
		return &Question{Text: "Bonus: what is 99 + 99?", Format: "word_problem", Answer: "198"}, nil
	}
	c := NewCalibrator(nil, bonus)

	gc := mathContext()
	gc.Scaffolding = false
	gc.Challenge = true

	qs := []Question{{Text: "What is 2 + 2?", Format: "mcq", Answer: "4"}}
	out := c.Calibrate(context.Background(), qs, gc)

	if len(out) != 2 {
		t.Fatalf("got %d questions, want 2", len(out))
	}
	if !out[1].IsBonus {
		t.Error("appended question not flagged as bonus")
	}
}

func TestCalibrate_BonusFailureSkipsStep(t *testing.T) {
	bonus := func(_ context.Context, _ GenerationContext) (*Question, error) {
		return nil, errors.New("provider down")
	}
	c := NewCalibrator(nil, bonus)

	gc := mathContext()
	gc.Scaffolding = false
	gc.Challenge = true

	qs := []Question{{Text: "What is 2 + 2?", Format: "mcq", Answer: "4"}}
	out := c.Calibrate(context.Background(), qs, gc)

	if len(out) != 1 {
		t.Errorf("got %d questions after failed bonus, want 1", len(out))
	}
}

func TestCalibrate_DoesNotMutateInput(t *testing.T) {
	c := NewCalibrator(nil, nil)
	qs := []Question{
		{Text: "a much longer question with plenty of words", Format: "word_problem"},
		{Text: "short", Format: "mcq"},
	}

	_ = c.Calibrate(context.Background(), qs, scaffoldingContext())

	if qs[0].Text != "a much longer question with plenty of words" {
		t.Error("input slice was reordered")
	}
	if qs[0].Hint != "" || qs[1].Hint != "" {
		t.Error("input slice hints were mutated")
	}
}
