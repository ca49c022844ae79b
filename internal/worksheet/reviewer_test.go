package worksheet

import (
	"strings"
	"testing"

	"github.com/nirajyt2022-source/edTech-sub001/internal/curriculum"
)

func TestReviewer_ErrorDetectionForbiddenBelowGrade3(t *testing.T) {
	r := NewReviewer()
	q := Question{
		Text:     "Riya wrote 23 + 9 = 31. Find her mistake.",
		Format:   "fill_blank",
		SlotType: "error_detection",
		Answer:   "32",
	}

	for _, grade := range []int{1, 2} {
		if reasons := r.ValidateOne(q, grade, curriculum.TopicProfile{}); len(reasons) == 0 {
			t.Errorf("grade %d: error_detection question accepted, want rejection", grade)
		}
	}
	for _, grade := range []int{3, 4, 5} {
		if reasons := r.ValidateOne(q, grade, curriculum.TopicProfile{}); len(reasons) != 0 {
			t.Errorf("grade %d: error_detection question rejected: %v", grade, reasons)
		}
	}
}

func TestReviewer_AnswerWordLimit(t *testing.T) {
	r := NewReviewer()
	longAnswer := strings.Repeat("word ", 20) // 20 words

	tests := []struct {
		grade  int
		reject bool
	}{
		{1, true},
		{2, true},
		{3, false},
		{5, false},
	}

	for _, tt := range tests {
		q := Question{Text: "Describe the shape.", Format: "word_problem", SlotType: "application", Answer: longAnswer}
		reasons := r.ValidateOne(q, tt.grade, curriculum.TopicProfile{})
		if tt.reject && len(reasons) == 0 {
			t.Errorf("grade %d: 20-word answer accepted, want rejection", tt.grade)
		}
		if !tt.reject && len(reasons) != 0 {
			t.Errorf("grade %d: 20-word answer rejected: %v", tt.grade, reasons)
		}
	}
}

func TestReviewer_ForbiddenPhrasing(t *testing.T) {
	r := NewReviewer()
	q := Question{
		Text:     "Explain why 3/4 is bigger than 2/3.",
		Format:   "word_problem",
		SlotType: "thinking",
		Answer:   "because quarters are bigger here",
	}

	if reasons := r.ValidateOne(q, 3, curriculum.TopicProfile{}); len(reasons) == 0 {
		t.Error("grade 3: 'explain why' question accepted, want rejection")
	}
	if reasons := r.ValidateOne(q, 4, curriculum.TopicProfile{}); len(reasons) != 0 {
		t.Errorf("grade 4: 'explain why' question rejected: %v", reasons)
	}
}

func TestReviewer_UnknownGradeIsPermissive(t *testing.T) {
	r := NewReviewer()
	qs := []Question{
		{Text: "Explain why and justify.", SlotType: "error_detection", Answer: strings.Repeat("w ", 200)},
		{Text: "Anything goes.", SlotType: "thinking", Answer: "yes"},
	}

	accepted, rejected := r.Validate(qs, 0, curriculum.TopicProfile{})
	if len(accepted) != 2 || len(rejected) != 0 {
		t.Errorf("unknown grade: accepted %d rejected %d, want all accepted", len(accepted), len(rejected))
	}

	accepted, rejected = r.Validate(qs, 9, curriculum.TopicProfile{})
	if len(accepted) != 2 || len(rejected) != 0 {
		t.Errorf("out-of-range grade: accepted %d rejected %d, want all accepted", len(accepted), len(rejected))
	}
}

func TestReviewer_DisallowedKeywordsReject(t *testing.T) {
	r := NewReviewer()
	topic := curriculum.TopicProfile{
		DisallowedKeywords: []string{"multiply", "fraction"},
	}

	contaminated := Question{
		Text:     "Multiply 3 by 4 to count the apples.",
		Format:   "fill_blank",
		SlotType: "application",
		Answer:   "12",
	}
	clean := Question{
		Text:     "Which number is more: 14 or 17?",
		Format:   "mcq",
		SlotType: "application",
		Answer:   "17",
		Choices:  []string{"14", "17", "11", "9"},
	}

	if reasons := r.ValidateOne(contaminated, 1, topic); len(reasons) == 0 {
		t.Error("off-topic keyword accepted, want rejection")
	}
	if reasons := r.ValidateOne(clean, 1, topic); len(reasons) != 0 {
		t.Errorf("clean question rejected: %v", reasons)
	}

	// Keyword checks hold even without a grade profile.
	if reasons := r.ValidateOne(contaminated, 0, topic); len(reasons) == 0 {
		t.Error("unknown grade skipped the keyword check")
	}

	// Contamination in a distractor is still contamination.
	dirty := clean
	dirty.Choices = []string{"14", "17", "one fraction", "9"}
	if reasons := r.ValidateOne(dirty, 1, topic); len(reasons) == 0 {
		t.Error("disallowed keyword in a choice accepted, want rejection")
	}
}

func TestReviewer_RejectedCarriesReasons(t *testing.T) {
	r := NewReviewer()
	qs := []Question{
		{Text: "What is 2 + 2?", Format: "mcq", SlotType: "recall", Answer: "4", Choices: []string{"3", "4", "5", "6"}},
		{Text: "Justify your answer to 5 - 2.", Format: "word_problem", SlotType: "error_detection", Answer: "3"},
	}

	accepted, rejected := r.Validate(qs, 2, curriculum.TopicProfile{})
	if len(accepted) != 1 {
		t.Fatalf("accepted %d questions, want 1", len(accepted))
	}
	if len(rejected) != 1 {
		t.Fatalf("rejected %d questions, want 1", len(rejected))
	}
	// Both the slot-type rule and the phrasing rule fire.
	if len(rejected[0].Reasons) < 2 {
		t.Errorf("rejection reasons = %v, want both rules reported", rejected[0].Reasons)
	}
}
