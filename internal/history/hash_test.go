package history

import "testing"

func TestQuestionHash_NormalizesCaseAndWhitespace(t *testing.T) {
	a := QuestionHash("What is 3 + 4?")
	b := QuestionHash("  what   is 3 + 4?  ")
	if a != b {
		t.Errorf("normalized variants hash differently: %s vs %s", a, b)
	}

	c := QuestionHash("What is 3 + 5?")
	if a == c {
		t.Error("different questions share an exact-text hash")
	}
}

func TestStructuralHash_IgnoresNumbers(t *testing.T) {
	a := StructuralHash("What is 3 + 4?")
	b := StructuralHash("What is 12 + 907?")
	if a != b {
		t.Errorf("same template hashes differently: %s vs %s", a, b)
	}

	c := StructuralHash("What is 3 - 4?")
	if a == c {
		t.Error("different templates share a structural hash")
	}
}

func TestHash_FixedWidth(t *testing.T) {
	for _, text := range []string{"", "a", "What is 345 + 278?"} {
		if got := len(QuestionHash(text)); got != digestLen {
			t.Errorf("QuestionHash(%q) length = %d, want %d", text, got, digestLen)
		}
		if got := len(StructuralHash(text)); got != digestLen {
			t.Errorf("StructuralHash(%q) length = %d, want %d", text, got, digestLen)
		}
	}
}

func TestExactAndStructuralDiffer(t *testing.T) {
	// The two strategies must not collapse into one: a question with
	// numbers gets distinct exact and structural digests.
	text := "Riya has 14 marbles and gives away 5. How many are left?"
	if QuestionHash(text) == StructuralHash(text) {
		t.Error("exact and structural hashes are identical for a numeric question")
	}
}
