package cmd

import (
	"fmt"

	"github.com/nirajyt2022-source/edTech-sub001/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset mastery or history data",
	Long: `Delete stored learner data.

This is the only way worksmith removes data: mastery records never
regress on their own and history streams only rotate. Use
"reset mastery" for a student's skill records and "reset history" for
a grade's anti-repetition streams.`,
}

var resetMasteryCmd = &cobra.Command{
	Use:   "mastery",
	Short: "Delete all mastery records for a student",
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

		if err := st.MasteryRepo().Reset(cmd.Context(), studentID); err != nil {
			return fmt.Errorf("reset mastery: %w", err)
		}
		fmt.Printf("Mastery records for student %q deleted.\n", studentID)
		return nil
	},
}

var resetHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Delete worksheet history for a grade (optionally one topic)",
	RunE: func(cmd *cobra.Command, args []string) error {
		grade, _ := cmd.Flags().GetInt("grade")
		topic, _ := cmd.Flags().GetString("topic")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.HistoryRepo().Reset(cmd.Context(), grade, topic); err != nil {
			return fmt.Errorf("reset history: %w", err)
		}
		if topic == "" {
			fmt.Printf("History for grade %d deleted.\n", grade)
		} else {
			fmt.Printf("History for grade %d topic %q deleted.\n", grade, topic)
		}
		return nil
	},
}

func init() {
	resetMasteryCmd.Flags().String("student", "", "Student ID (required)")
	_ = resetMasteryCmd.MarkFlagRequired("student")

	resetHistoryCmd.Flags().Int("grade", 0, "Grade level (required)")
	resetHistoryCmd.Flags().String("topic", "", "Topic name; empty resets the whole grade")
	_ = resetHistoryCmd.MarkFlagRequired("grade")

	resetCmd.AddCommand(resetMasteryCmd)
	resetCmd.AddCommand(resetHistoryCmd)
}
