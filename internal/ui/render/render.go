// Package render turns worksheets and mastery tables into styled
// terminal output.
package render

import (
	"fmt"
	"strings"

	"github.com/nirajyt2022-source/edTech-sub001/internal/mastery"
	"github.com/nirajyt2022-source/edTech-sub001/internal/ui/theme"
	"github.com/nirajyt2022-source/edTech-sub001/internal/worksheet"
)

// Worksheet renders a worksheet for the terminal. Answers and hints
// are included only when showAnswers is set, so the plain output can
// be handed straight to a learner.
func Worksheet(ws *worksheet.Worksheet, showAnswers bool) string {
	var b strings.Builder

	header := fmt.Sprintf("%s — Grade %d %s", ws.Topic, ws.Grade, ws.Subject)
	b.WriteString(theme.Title.Render(header))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Worksheet %s · %s",
		ws.ID, ws.CreatedAt.Local().Format("2006-01-02 15:04"))))
	b.WriteString("\n\n")

	for i, q := range ws.Questions {
		b.WriteString(renderQuestion(i+1, q, showAnswers))
		b.WriteString("\n")
	}

	if !ws.Audit.Passed {
		b.WriteString(theme.Warning.Render("Quality gate failures:"))
		b.WriteString("\n")
		for _, f := range ws.Audit.Failures {
			b.WriteString("  - " + f + "\n")
		}
	}

	return b.String()
}

func renderQuestion(num int, q worksheet.Question, showAnswers bool) string {
	var b strings.Builder

	label := fmt.Sprintf("Q%d", num)
	if q.IsBonus {
		label += " (bonus)"
	}
	badges := q.SlotType
	if q.IsFallback {
		badges += " · fallback"
	}

	b.WriteString(theme.Body.Render(fmt.Sprintf("%s. %s", label, q.Text)))
	b.WriteString("\n")

	if q.Format == mastery.FormatMCQ {
		for j, c := range q.Choices {
			b.WriteString(fmt.Sprintf("   %c) %s\n", 'a'+j, c))
		}
	}

	if q.Hint != "" {
		b.WriteString("   " + theme.Hint.Render("Hint: "+q.Hint) + "\n")
	}

	if showAnswers {
		b.WriteString("   " + theme.Answer.Render("Answer: "+q.Answer) + "\n")
		b.WriteString("   " + theme.Badge.Render(badges) + "\n")
	}

	return b.String()
}

// AnswerKey renders the answer key on its own, one line per question.
func AnswerKey(ws *worksheet.Worksheet) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Answer Key"))
	b.WriteString("\n")
	for i, ans := range ws.AnswerKey() {
		b.WriteString(fmt.Sprintf("Q%d: %s\n", i+1, theme.Answer.Render(ans)))
	}
	return b.String()
}

// MasteryTable renders one row per skill tag for a student.
func MasteryTable(records []*mastery.Record) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%-28s  %-10s  %6s  %8s  %8s  %s\n",
		"Skill Tag", "Level", "Streak", "Correct", "Total", "Last Practiced"))
	b.WriteString(strings.Repeat("─", 84))
	b.WriteString("\n")

	for _, rec := range records {
		last := "never"
		if rec.LastPracticedAt != nil {
			last = rec.LastPracticedAt.Local().Format("2006-01-02")
		}
		level := string(rec.Level)
		switch rec.Level {
		case mastery.LevelMastered:
			level = theme.Answer.Render(level)
		case mastery.LevelUnknown:
			level = theme.Subtitle.Render(level)
		}
		b.WriteString(fmt.Sprintf("%-28s  %-10s  %6d  %8d  %8d  %s\n",
			rec.SkillTag, level, rec.Streak, rec.CorrectAttempts,
			rec.TotalAttempts, last))
	}

	return b.String()
}
