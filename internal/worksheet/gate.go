package worksheet

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nirajyt2022-source/edTech-sub001/internal/mastery"
)

// jaccardThreshold is the word-set similarity above which two
// questions are reported as duplicates.
const jaccardThreshold = 0.60

// inappropriatePhrases are too cognitively demanding for the two
// youngest grades.
var inappropriatePhrases = []string{
	"analyze",
	"evaluate",
	"hypothesize",
	"critique",
	"infer",
	"deduce",
}

// timeValueRe matches literal clock times like "3:15" or "10:05".
var timeValueRe = regexp.MustCompile(`\b\d{1,2}:\d{2}\b`)

// AuditResult is the quality gate's verdict on a finished worksheet.
type AuditResult struct {
	Passed   bool
	Failures []string
}

// Audit runs the final whole-worksheet checks and returns every
// failure found. Callers decide what to do with the result; in
// practice it is logged and the worksheet is returned anyway.
func Audit(ws *Worksheet, requestedCount int) AuditResult {
	var failures []string

	failures = append(failures, checkCount(ws.Questions, requestedCount)...)
	failures = append(failures, checkAnswerKey(ws.Questions)...)
	failures = append(failures, checkDuplicates(ws.Questions)...)
	failures = append(failures, checkGradeVocabulary(ws.Questions, ws.Grade)...)
	failures = append(failures, checkHintLeaks(ws.Questions)...)
	failures = append(failures, checkFallbacks(ws.Questions)...)

	return AuditResult{Passed: len(failures) == 0, Failures: failures}
}

// checkCount verifies the worksheet holds exactly the requested number
// of plan questions. Bonus questions are outside the plan.
func checkCount(questions []Question, requested int) []string {
	planned := 0
	for _, q := range questions {
		if !q.IsBonus {
			planned++
		}
	}
	if planned != requested {
		return []string{fmt.Sprintf("question count %d does not match requested %d", planned, requested)}
	}
	return nil
}

// checkAnswerKey cross-checks machine-checkable answers: an mcq answer
// must appear among its own choices.
func checkAnswerKey(questions []Question) []string {
	var failures []string
	for i, q := range questions {
		if q.Format != mastery.FormatMCQ || len(q.Choices) == 0 {
			continue
		}
		found := false
		for _, c := range q.Choices {
			if strings.EqualFold(strings.TrimSpace(c), strings.TrimSpace(q.Answer)) {
				found = true
				break
			}
		}
		if !found {
			failures = append(failures, fmt.Sprintf("question %d: answer %q not among its choices", i+1, q.Answer))
		}
	}
	return failures
}

// checkDuplicates reports pairs with word-set Jaccard similarity over
// the threshold, and pairs sharing two or more identical literal time
// values (catches near-identical clock questions the word overlap
// misses).
func checkDuplicates(questions []Question) []string {
	var failures []string
	for i := 0; i < len(questions); i++ {
		for j := i + 1; j < len(questions); j++ {
			sim := jaccard(wordSet(questions[i].Text), wordSet(questions[j].Text))
			if sim > jaccardThreshold {
				failures = append(failures, fmt.Sprintf("questions %d and %d are near-duplicates (%.0f%% word overlap)", i+1, j+1, sim*100))
				continue
			}
			if sharedTimeValues(questions[i].Text, questions[j].Text) >= 2 {
				failures = append(failures, fmt.Sprintf("questions %d and %d share repeated time values", i+1, j+1))
			}
		}
	}
	return failures
}

// checkGradeVocabulary rejects cognitively inappropriate phrasing for
// grades 1 and 2.
func checkGradeVocabulary(questions []Question, grade int) []string {
	if grade > 2 {
		return nil
	}
	var failures []string
	for i, q := range questions {
		lower := strings.ToLower(q.Text)
		for _, phrase := range inappropriatePhrases {
			if strings.Contains(lower, phrase) {
				failures = append(failures, fmt.Sprintf("question %d uses %q, inappropriate for grade %d", i+1, phrase, grade))
			}
		}
	}
	return failures
}

// checkHintLeaks flags hints that literally contain the answer.
// Answers of one or two characters are skipped: they collide with
// ordinary words too easily to be a signal.
func checkHintLeaks(questions []Question) []string {
	var failures []string
	for i, q := range questions {
		if q.Hint == "" || len(q.Answer) <= 2 {
			continue
		}
		if strings.Contains(strings.ToLower(q.Hint), strings.ToLower(q.Answer)) {
			failures = append(failures, fmt.Sprintf("question %d: hint contains the answer", i+1))
		}
	}
	return failures
}

// checkFallbacks flags every fallback stub that made it into the
// worksheet.
func checkFallbacks(questions []Question) []string {
	var failures []string
	for i, q := range questions {
		if q.IsFallback {
			failures = append(failures, fmt.Sprintf("question %d is a fallback stub", i+1))
		}
	}
	return failures
}

// wordSet returns the lowercased set of words in text, punctuation
// stripped.
func wordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		w = strings.Trim(w, ".,!?;:\"'()")
		if w != "" {
			set[w] = true
		}
	}
	return set
}

// jaccard computes set intersection over union. Empty sets are not
// similar to anything.
func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for w := range a {
		if b[w] {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

// sharedTimeValues counts distinct literal clock times present in both
// texts.
func sharedTimeValues(a, b string) int {
	inA := make(map[string]bool)
	for _, t := range timeValueRe.FindAllString(a, -1) {
		inA[t] = true
	}
	shared := make(map[string]bool)
	for _, t := range timeValueRe.FindAllString(b, -1) {
		if inA[t] {
			shared[t] = true
		}
	}
	return len(shared)
}
