package cmd

import (
	"fmt"

	"github.com/nirajyt2022-source/edTech-sub001/internal/mastery"
	"github.com/nirajyt2022-source/edTech-sub001/internal/store"
	"github.com/nirajyt2022-source/edTech-sub001/internal/ui/render"
	"github.com/spf13/cobra"
)

var masteryCmd = &cobra.Command{
	Use:   "mastery",
	Short: "Inspect and update per-skill mastery",
}

var masteryShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a student's mastery table",
	RunE: func(cmd *cobra.Command, args []string) error {
		studentID, _ := cmd.Flags().GetString("student")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		service := mastery.NewService(st.MasteryRepo(), newLogger())
		records, err := service.ListByStudent(cmd.Context(), studentID)
		if err != nil {
			return fmt.Errorf("list mastery: %w", err)
		}

		if len(records) == 0 {
			fmt.Printf("No mastery records for student %q.\n", studentID)
			return nil
		}

		fmt.Print(render.MasteryTable(records))
		return nil
	},
}

var masteryRecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a scored attempt for a skill",
	Long: `Record one scored attempt (0-100) for a (student, skill tag) pair.

The mastery level advances on sustained passes (score >= 70), holds on
a middling score, and demotes one level when the score drops below 50.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		studentID, _ := cmd.Flags().GetString("student")
		skillTag, _ := cmd.Flags().GetString("skill")
		score, _ := cmd.Flags().GetInt("score")
		format, _ := cmd.Flags().GetString("format")
		errorType, _ := cmd.Flags().GetString("error-type")

		if score < 0 || score > 100 {
			return fmt.Errorf("score must be 0-100, got %d", score)
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

		service := mastery.NewService(st.MasteryRepo(), newLogger())
		rec, transitions, err := service.RecordAttempt(cmd.Context(), studentID, skillTag, mastery.Attempt{
			ScorePct:  score,
			Format:    format,
			ErrorType: errorType,
		})
		if err != nil {
			return fmt.Errorf("record attempt: %w", err)
		}

		for _, tr := range transitions {
			fmt.Printf("%s: %s -> %s (%s)\n", skillTag, tr.From, tr.To, tr.Trigger)
		}
		fmt.Printf("%s: level=%s streak=%d attempts=%d/%d\n",
			skillTag, rec.Level, rec.Streak, rec.CorrectAttempts, rec.TotalAttempts)
		return nil
	},
}

func init() {
	masteryShowCmd.Flags().String("student", "", "Student ID (required)")
	_ = masteryShowCmd.MarkFlagRequired("student")

	masteryRecordCmd.Flags().String("student", "", "Student ID (required)")
	masteryRecordCmd.Flags().String("skill", "", "Skill tag (required)")
	masteryRecordCmd.Flags().Int("score", -1, "Score percentage 0-100 (required)")
	masteryRecordCmd.Flags().String("format", "", "Question format practiced (mcq, fill_blank, word_problem)")
	masteryRecordCmd.Flags().String("error-type", "", "Error classifier label for a failed attempt")
	_ = masteryRecordCmd.MarkFlagRequired("student")
	_ = masteryRecordCmd.MarkFlagRequired("skill")
	_ = masteryRecordCmd.MarkFlagRequired("score")

	masteryCmd.AddCommand(masteryShowCmd)
	masteryCmd.AddCommand(masteryRecordCmd)
}
