package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/diversifica/decies-platform-sub000/internal/recommend"
)

var decideCmd = &cobra.Command{
	Use:   "decide",
	Short: "Record a tutor's accept or reject call on a recommendation",
	RunE: func(cmd *cobra.Command, args []string) error {
		recID, _ := cmd.Flags().GetString("rec")
		tutor, _ := cmd.Flags().GetString("tutor")
		decision, _ := cmd.Flags().GetString("decision")
		notes, _ := cmd.Flags().GetString("notes")

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

		engine, err := recommend.NewEngine(st, recommend.DefaultConfig(), log)
		if err != nil {
			return err
		}

		dec, err := engine.ApplyDecision(cmd.Context(), recID, tutor, decision, notes, time.Now())
		if err != nil {
			return err
		}

		fmt.Printf("Recommendation %s %s by %s at %s\n",
			dec.RecommendationID, dec.Decision, dec.TutorID,
			dec.DecidedAt.Format(time.RFC3339))
		return nil
	},
}

func init() {
	decideCmd.Flags().String("rec", "", "Recommendation id")
	decideCmd.Flags().String("tutor", "", "Tutor id")
	decideCmd.Flags().String("decision", "", "accepted or rejected")
	decideCmd.Flags().String("notes", "", "Optional decision notes")
	_ = decideCmd.MarkFlagRequired("rec")
	_ = decideCmd.MarkFlagRequired("tutor")
	_ = decideCmd.MarkFlagRequired("decision")
}
