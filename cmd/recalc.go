package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/diversifica/decies-platform-sub000/internal/mastery"
)

var recalcCmd = &cobra.Command{
	Use:   "recalc",
	Short: "Recompute mastery states and scope metrics for a student",
	RunE: func(cmd *cobra.Command, args []string) error {
		student, _ := cmd.Flags().GetString("student")
		subject, _ := cmd.Flags().GetString("subject")
		term, _ := cmd.Flags().GetString("term")
		window, _ := cmd.Flags().GetInt("window")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		log, err := newLogger(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		svc, err := mastery.NewService(st, mastery.DefaultConfig(), log)
		if err != nil {
			return err
		}

		agg, states, err := svc.Recalculate(cmd.Context(), student, subject, term, window, time.Now())
		if err != nil {
			return err
		}

		fmt.Printf("Scope %s/%s for %s (window %dd):\n", subject, term, student, agg.WindowDays)
		fmt.Printf("  accuracy %.4f  first-attempt %.4f  error %.4f\n",
			agg.Accuracy, agg.FirstAttemptAccuracy, agg.ErrorRate)
		fmt.Printf("  hints %.4f  median %dms  attempts/item %.2f  abandon %.4f\n",
			agg.HintRate, agg.MedianResponseMs, agg.AttemptsPerItem, agg.AbandonRate)

		byStatus := map[string]int{}
		for _, s := range states {
			byStatus[s.Status]++
		}
		fmt.Printf("\n%d concepts: %d dominant, %d in progress, %d at risk\n",
			len(states),
			byStatus[string(mastery.StatusDominant)],
			byStatus[string(mastery.StatusInProgress)],
			byStatus[string(mastery.StatusAtRisk)])
		return nil
	},
}

func init() {
	recalcCmd.Flags().String("student", "", "Student id")
	recalcCmd.Flags().String("subject", "", "Subject code")
	recalcCmd.Flags().String("term", "", "Term code")
	recalcCmd.Flags().Int("window", mastery.DefaultMetricsWindowDays, "Trailing metrics window in days")
	_ = recalcCmd.MarkFlagRequired("student")
	_ = recalcCmd.MarkFlagRequired("subject")
	_ = recalcCmd.MarkFlagRequired("term")
}
