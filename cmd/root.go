package cmd

import (
	"log/slog"
	"os"

	"github.com/nirajyt2022-source/edTech-sub001/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "worksmith",
	Short: "Adaptive worksheet generator for young learners",
	Long:  "Worksmith generates personalized practice worksheets (grades 1-5, math / english / hindi) and adapts question difficulty to each student's tracked mastery.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides WORKSMITH_DB env var)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(masteryCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then WORKSMITH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// newLogger builds the CLI logger. Structured output goes to stderr so
// worksheets on stdout stay clean.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if os.Getenv("WORKSMITH_DEBUG") != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
