package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/diversifica/decies-platform-sub000/internal/recommend"
	"github.com/diversifica/decies-platform-sub000/internal/store"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Evaluate the rule catalog and persist new recommendations",
	RunE: func(cmd *cobra.Command, args []string) error {
		student, _ := cmd.Flags().GetString("student")
		subject, _ := cmd.Flags().GetString("subject")
		term, _ := cmd.Flags().GetString("term")

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

		res, err := engine.Generate(cmd.Context(), student, subject, term, time.Now())
		if err != nil {
			return err
		}

		fmt.Printf("%d created, %d pending reused\n\n", len(res.Created), len(res.Reused))
		for _, priority := range []string{"high", "medium", "low"} {
			printPriorityGroup(priority, res.Touched())
		}
		return nil
	},
}

func printPriorityGroup(priority string, recs []store.RecommendationRecord) {
	printed := false
	for _, r := range recs {
		if r.Priority != priority {
			continue
		}
		if !printed {
			fmt.Printf("[%s]\n", priority)
			printed = true
		}
		target := r.ConceptID
		if target == "" {
			target = "scope"
		}
		fmt.Printf("  %s %s  %s (%s)\n", r.RuleCode, r.ID, r.Title, target)
	}
	if printed {
		fmt.Println()
	}
}

func init() {
	recommendCmd.Flags().String("student", "", "Student id")
	recommendCmd.Flags().String("subject", "", "Subject code")
	recommendCmd.Flags().String("term", "", "Term code")
	_ = recommendCmd.MarkFlagRequired("student")
	_ = recommendCmd.MarkFlagRequired("subject")
	_ = recommendCmd.MarkFlagRequired("term")
}
