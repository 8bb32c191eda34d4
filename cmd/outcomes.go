package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/diversifica/decies-platform-sub000/internal/mastery"
	"github.com/diversifica/decies-platform-sub000/internal/outcome"
	"github.com/diversifica/decies-platform-sub000/internal/recommend"
)

var outcomesCmd = &cobra.Command{
	Use:   "outcomes",
	Short: "Settle accepted recommendations whose evaluation window elapsed",
	RunE: func(cmd *cobra.Command, args []string) error {
		tutor, _ := cmd.Flags().GetString("tutor")
		student, _ := cmd.Flags().GetString("student")
		subject, _ := cmd.Flags().GetString("subject")
		term, _ := cmd.Flags().GetString("term")
		force, _ := cmd.Flags().GetBool("force")

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

		masterySvc, err := mastery.NewService(st, mastery.DefaultConfig(), log)
		if err != nil {
			return err
		}
		eval, err := outcome.NewEvaluator(st, masterySvc, recommend.DefaultConfig(), log)
		if err != nil {
			return err
		}

		res, err := eval.ComputeOutcomes(cmd.Context(), tutor, student, subject, term, force, time.Now())
		if err != nil {
			return err
		}

		fmt.Printf("%d created, %d updated, %d pending\n", res.Created, res.Updated, res.Pending)
		for _, o := range res.Outcomes {
			fmt.Printf("\n%s: %s\n", o.RecommendationID, o.Success)
			fmt.Printf("  window %s .. %s\n",
				o.WindowStart.Format("2006-01-02"), o.WindowEnd.Format("2006-01-02"))
			fmt.Printf("  mastery %s  accuracy %s  hints %s\n",
				formatDelta(o.DeltaMastery), formatDelta(o.DeltaAccuracy), formatDelta(o.DeltaHintRate))
		}
		return nil
	},
}

func formatDelta(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%+.4f", *v)
}

func init() {
	outcomesCmd.Flags().String("tutor", "", "Tutor id")
	outcomesCmd.Flags().String("student", "", "Student id")
	outcomesCmd.Flags().String("subject", "", "Subject code")
	outcomesCmd.Flags().String("term", "", "Term code")
	outcomesCmd.Flags().Bool("force", false, "Recompute outcomes that are already settled")
	_ = outcomesCmd.MarkFlagRequired("tutor")
	_ = outcomesCmd.MarkFlagRequired("student")
	_ = outcomesCmd.MarkFlagRequired("subject")
	_ = outcomesCmd.MarkFlagRequired("term")
}
