package cmd

import (
	"github.com/spf13/cobra"

	"github.com/diversifica/decies-platform-sub000/internal/logger"
	"github.com/diversifica/decies-platform-sub000/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "decies",
	Short: "Mastery and recommendation engine for tutoring data",
	Long:  "Decies scores per-concept mastery from practice events, generates rule-based recommendations for tutors, and measures whether accepted recommendations helped.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DECIES_DB env var)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable verbose development logging")

	rootCmd.AddCommand(recalcCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(decideCmd)
	rootCmd.AddCommand(outcomesCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(conceptCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then DECIES_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	path, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(path)
}

func newLogger(cmd *cobra.Command) (*logger.Logger, error) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		return logger.New("development")
	}
	return logger.New("production")
}
