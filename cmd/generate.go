package cmd

import (
	"fmt"
	"strings"

	"github.com/nirajyt2022-source/edTech-sub001/internal/curriculum"
	"github.com/nirajyt2022-source/edTech-sub001/internal/history"
	"github.com/nirajyt2022-source/edTech-sub001/internal/llm"
	"github.com/nirajyt2022-source/edTech-sub001/internal/mastery"
	"github.com/nirajyt2022-source/edTech-sub001/internal/store"
	"github.com/nirajyt2022-source/edTech-sub001/internal/ui/render"
	"github.com/nirajyt2022-source/edTech-sub001/internal/worksheet"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a worksheet for a topic",
	Long: `Generate a worksheet for a grade and topic.

With --student, question difficulty adapts to that student's tracked
mastery and the worksheet is recorded in the anti-repetition history.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().Int("grade", 0, "Grade level 1-5 (required)")
	generateCmd.Flags().String("subject", "math", "Subject: math, english, or hindi")
	generateCmd.Flags().String("topic", "", "Topic name or alias (required)")
	generateCmd.Flags().Int("count", 0, "Number of questions (default 10)")
	generateCmd.Flags().String("student", "", "Student ID for mastery-adaptive difficulty")
	generateCmd.Flags().Bool("answers", false, "Include answers and hints in the output")
	_ = generateCmd.MarkFlagRequired("grade")
	_ = generateCmd.MarkFlagRequired("topic")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	grade, _ := cmd.Flags().GetInt("grade")
	subjectVal, _ := cmd.Flags().GetString("subject")
	topic, _ := cmd.Flags().GetString("topic")
	count, _ := cmd.Flags().GetInt("count")
	studentID, _ := cmd.Flags().GetString("student")
	showAnswers, _ := cmd.Flags().GetBool("answers")

	subject, err := parseSubject(subjectVal)
	if err != nil {
		return err
	}

	logger := newLogger()
	ctx := cmd.Context()

	registry, err := curriculum.Load()
	if err != nil {
		return fmt.Errorf("load curriculum: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	masteryService := mastery.NewService(st.MasteryRepo(), logger)
	historyService := history.NewService(st.HistoryRepo(), logger)
	contexts := worksheet.NewContextBuilder(registry, masteryService, historyService, logger)
	generator := worksheet.NewSlotGenerator(provider, worksheet.DefaultGenConfig())
	pipeline := worksheet.NewPipeline(registry, generator, contexts, historyService, logger)

	ws, err := pipeline.GenerateWorksheet(ctx, worksheet.Request{
		Grade:     grade,
		Subject:   subject,
		Topic:     topic,
		Count:     count,
		StudentID: studentID,
	})
	if err != nil {
		return err
	}

	fmt.Print(render.Worksheet(ws, showAnswers))
	if !showAnswers {
		fmt.Println()
		fmt.Print(render.AnswerKey(ws))
	}
	return nil
}

// parseSubject maps a flag value to a known subject.
func parseSubject(val string) (curriculum.Subject, error) {
	v := strings.ToLower(strings.TrimSpace(val))
	for _, s := range curriculum.AllSubjects() {
		if v == string(s) {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown subject %q: must be math, english, or hindi", val)
}
