package worksheet

import (
	"fmt"
	"strings"

	"github.com/nirajyt2022-source/edTech-sub001/internal/curriculum"
	"github.com/nirajyt2022-source/edTech-sub001/internal/planner"
)

// GradeProfile holds the per-grade appropriateness rules the reviewer
// enforces.
type GradeProfile struct {
	// ForbiddenSlotTypes are pedagogical roles this grade cannot
	// handle yet.
	ForbiddenSlotTypes []planner.SlotType

	// MaxAnswerWords caps the expected answer length.
	MaxAnswerWords int

	// ForbiddenPhrases are question phrasings too abstract for the
	// grade.
	ForbiddenPhrases []string
}

// gradeProfiles scales expectations from grade 1 to grade 5. Grades
// below 3 cannot do error detection; abstract justification phrasing
// is held back until grade 4.
var gradeProfiles = map[int]GradeProfile{
	1: {
		ForbiddenSlotTypes: []planner.SlotType{planner.SlotErrorDetection},
		MaxAnswerWords:     5,
		ForbiddenPhrases:   []string{"explain why", "justify", "prove that"},
	},
	2: {
		ForbiddenSlotTypes: []planner.SlotType{planner.SlotErrorDetection},
		MaxAnswerWords:     10,
		ForbiddenPhrases:   []string{"explain why", "justify", "prove that"},
	},
	3: {
		MaxAnswerWords:   30,
		ForbiddenPhrases: []string{"explain why", "justify", "prove that"},
	},
	4: {
		MaxAnswerWords: 60,
	},
	5: {
		MaxAnswerWords: 100,
	},
}

// Reviewer is the pre-acceptance grade-appropriateness gate. Unlike
// the quality gate it is a hard filter: rejected questions never reach
// the worksheet.
type Reviewer struct{}

// NewReviewer creates a Reviewer.
func NewReviewer() *Reviewer {
	return &Reviewer{}
}

// Validate splits questions into accepted and rejected for the grade
// and topic. Each rejected item carries its reasons. An unknown grade
// has no profile and skips the grade checks: configuration gaps fail
// open, they never silently discard content. The topic's disallowed
// keywords are enforced regardless of grade.
func (r *Reviewer) Validate(questions []Question, grade int, topic curriculum.TopicProfile) (accepted []Question, rejected []Rejected) {
	for _, q := range questions {
		reasons := r.ValidateOne(q, grade, topic)
		if len(reasons) == 0 {
			accepted = append(accepted, q)
		} else {
			rejected = append(rejected, Rejected{Question: q, Reasons: reasons})
		}
	}
	return accepted, rejected
}

// ValidateOne checks a single candidate against the grade profile and
// the topic's disallowed keywords. Returns the rejection reasons,
// empty when accepted.
func (r *Reviewer) ValidateOne(q Question, grade int, topic curriculum.TopicProfile) []string {
	reasons := checkKeywords(q, topic)
	if profile, ok := gradeProfiles[grade]; ok {
		reasons = append(reasons, r.check(q, profile)...)
	}
	return reasons
}

// checkKeywords rejects a candidate whose text, choices or answer
// contain vocabulary the topic disallows. Contaminated questions pull
// the learner off-topic, so this is a hard reject at every grade.
func checkKeywords(q Question, topic curriculum.TopicProfile) []string {
	if len(topic.DisallowedKeywords) == 0 {
		return nil
	}

	haystack := strings.ToLower(q.Text + " " + q.Answer + " " + strings.Join(q.Choices, " "))
	var reasons []string
	for _, kw := range topic.DisallowedKeywords {
		if strings.Contains(haystack, strings.ToLower(kw)) {
			reasons = append(reasons, fmt.Sprintf("question contains disallowed keyword %q for this topic", kw))
		}
	}
	return reasons
}

func (r *Reviewer) check(q Question, p GradeProfile) []string {
	var reasons []string

	for _, st := range p.ForbiddenSlotTypes {
		if q.SlotType == string(st) {
			reasons = append(reasons, fmt.Sprintf("slot type %q not allowed at this grade", q.SlotType))
		}
	}

	if p.MaxAnswerWords > 0 {
		if n := len(strings.Fields(q.Answer)); n > p.MaxAnswerWords {
			reasons = append(reasons, fmt.Sprintf("answer is %d words, grade limit is %d", n, p.MaxAnswerWords))
		}
	}

	lower := strings.ToLower(q.Text)
	for _, phrase := range p.ForbiddenPhrases {
		if strings.Contains(lower, phrase) {
			reasons = append(reasons, fmt.Sprintf("question uses phrasing %q, too abstract for this grade", phrase))
		}
	}

	return reasons
}
