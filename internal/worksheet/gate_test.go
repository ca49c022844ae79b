package worksheet

import (
	"strings"
	"testing"
)

func auditOf(t *testing.T, questions []Question, grade, requested int) AuditResult {
	t.Helper()
	ws := &Worksheet{ID: "test", Grade: grade, Topic: "Fractions", Questions: questions}
	return Audit(ws, requested)
}

func hasFailure(res AuditResult, substr string) bool {
	for _, f := range res.Failures {
		if strings.Contains(f, substr) {
			return true
		}
	}
	return false
}

func TestAudit_CleanWorksheetPasses(t *testing.T) {
	qs := []Question{
		{Text: "What is 1/2 of 8?", Format: "mcq", Answer: "4", Choices: []string{"2", "3", "4", "6"}},
		{Text: "Shade three quarters of the circle.", Format: "fill_blank", Answer: "3/4"},
		{Text: "Ravi ate 2/8 of a pizza and Mina ate 3/8. How much pizza is left?", Format: "word_problem", Answer: "3/8"},
	}

	res := auditOf(t, qs, 4, 3)
	if !res.Passed {
		t.Errorf("clean worksheet failed audit: %v", res.Failures)
	}
}

func TestAudit_CountMismatch(t *testing.T) {
	qs := []Question{{Text: "What is 1/2 of 8?", Answer: "4"}}

	res := auditOf(t, qs, 4, 3)
	if !hasFailure(res, "does not match requested") {
		t.Errorf("count mismatch not reported: %v", res.Failures)
	}
}

func TestAudit_BonusExemptFromCount(t *testing.T) {
	qs := []Question{
		{Text: "What is 1/2 of 8?", Answer: "4"},
		{Text: "Bonus: what is 7/8 - 1/4?", Answer: "5/8", IsBonus: true},
	}

	res := auditOf(t, qs, 4, 1)
	if hasFailure(res, "does not match requested") {
		t.Errorf("bonus question counted against the plan: %v", res.Failures)
	}
}

func TestAudit_MCQAnswerNotInChoices(t *testing.T) {
	qs := []Question{
		{Text: "Which is bigger?", Format: "mcq", Answer: "1/2", Choices: []string{"1/3", "1/4", "1/5", "1/6"}},
	}

	res := auditOf(t, qs, 4, 1)
	if !hasFailure(res, "not among its choices") {
		t.Errorf("answer-key mismatch not reported: %v", res.Failures)
	}
}

func TestAudit_JaccardDuplicates(t *testing.T) {
	qs := []Question{
		{Text: "Ravi has 12 mangoes and gives 5 to his friend. How many are left?", Answer: "7"},
		{Text: "Ravi has 12 mangoes and gives 4 to his friend. How many are left?", Answer: "8"},
	}

	res := auditOf(t, qs, 4, 2)
	if !hasFailure(res, "near-duplicates") {
		t.Errorf("duplicate pair not reported: %v", res.Failures)
	}
}

func TestAudit_DistinctQuestionsNotDuplicates(t *testing.T) {
	qs := []Question{
		{Text: "What is 1/2 of 8?", Answer: "4"},
		{Text: "A ribbon is 60 cm long. Priya cuts off one third. How long is the piece she cut?", Answer: "20 cm"},
	}

	res := auditOf(t, qs, 4, 2)
	if hasFailure(res, "near-duplicates") {
		t.Errorf("distinct questions reported as duplicates: %v", res.Failures)
	}
}

func TestAudit_SharedTimeValues(t *testing.T) {
	qs := []Question{
		{Text: "The train leaves at 3:15 and arrives at 5:45. How long is the journey?", Answer: "2 hours 30 minutes"},
		{Text: "A movie starts at 3:15 and a cartoon at 5:45. Which begins first?", Answer: "the movie"},
	}

	res := auditOf(t, qs, 4, 2)
	if !hasFailure(res, "time values") {
		t.Errorf("shared time values not reported: %v", res.Failures)
	}
}

func TestAudit_InappropriatePhrasesYoungGrades(t *testing.T) {
	qs := []Question{
		{Text: "Analyze the pattern: 2, 4, 6, ...", Answer: "8"},
	}

	res := auditOf(t, qs, 1, 1)
	if !hasFailure(res, "inappropriate for grade") {
		t.Errorf("inappropriate phrase not reported for grade 1: %v", res.Failures)
	}

	res = auditOf(t, qs, 4, 1)
	if hasFailure(res, "inappropriate for grade") {
		t.Errorf("phrase check applied above grade 2: %v", res.Failures)
	}
}

func TestAudit_HintLeak(t *testing.T) {
	qs := []Question{
		{Text: "What is 25 + 25?", Answer: "fifty", Hint: "The answer is fifty."},
	}

	res := auditOf(t, qs, 3, 1)
	if !hasFailure(res, "hint contains the answer") {
		t.Errorf("hint leak not reported: %v", res.Failures)
	}
}

func TestAudit_ShortAnswersExemptFromHintLeak(t *testing.T) {
	qs := []Question{
		{Text: "What is 5 + 5?", Answer: "10", Hint: "Count up by 10s, then stop."},
	}

	res := auditOf(t, qs, 3, 1)
	if hasFailure(res, "hint contains the answer") {
		t.Errorf("two-character answer triggered hint leak: %v", res.Failures)
	}
}

func TestAudit_FallbackStubsFlagged(t *testing.T) {
	qs := []Question{
		{Text: "What is 1/2 of 8?", Answer: "4"},
		{Text: "Practice question: write one thing you know about Fractions.", IsFallback: true},
	}

	res := auditOf(t, qs, 4, 2)
	if !hasFailure(res, "fallback stub") {
		t.Errorf("fallback stub not reported: %v", res.Failures)
	}
}
