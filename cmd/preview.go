package cmd

import (
	"fmt"

	"github.com/nirajyt2022-source/edTech-sub001/internal/curriculum"
	"github.com/nirajyt2022-source/edTech-sub001/internal/llm"
	"github.com/nirajyt2022-source/edTech-sub001/internal/ui/render"
	"github.com/nirajyt2022-source/edTech-sub001/internal/worksheet"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview a generated worksheet (no database)",
	Long: `Generate a worksheet without touching the database.

This is a stateless developer tool — no mastery tracking, no history,
no event logging. Useful for evaluating question quality and testing
curriculum changes.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("grade", 0, "Grade level 1-5 (required)")
	previewCmd.Flags().String("subject", "math", "Subject: math, english, or hindi")
	previewCmd.Flags().String("topic", "", "Topic name or alias (required)")
	previewCmd.Flags().Int("count", 0, "Number of questions (default 10)")
	_ = previewCmd.MarkFlagRequired("grade")
	_ = previewCmd.MarkFlagRequired("topic")
}

func runPreview(cmd *cobra.Command, args []string) error {
	grade, _ := cmd.Flags().GetInt("grade")
	subjectVal, _ := cmd.Flags().GetString("subject")
	topic, _ := cmd.Flags().GetString("topic")
	count, _ := cmd.Flags().GetInt("count")

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

	// No EventRepo — event logging skipped.
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	contexts := worksheet.NewContextBuilder(registry, nil, nil, logger)
	generator := worksheet.NewSlotGenerator(provider, worksheet.DefaultGenConfig())
	pipeline := worksheet.NewPipeline(registry, generator, contexts, nil, logger)

	ws, err := pipeline.GenerateWorksheet(ctx, worksheet.Request{
		Grade:   grade,
		Subject: subject,
		Topic:   topic,
		Count:   count,
	})
	if err != nil {
		return err
	}

	fmt.Print(render.Worksheet(ws, true))
	return nil
}
