package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all derived state (mastery, metrics, recommendations)",
	Long:  "Deletes mastery states, metric aggregates, recommendations, decisions and outcomes. Practice events and sessions are never touched; rerunning recalc rebuilds everything from them.",
	RunE: func(cmd *cobra.Command, args []string) error {
		confirm, _ := cmd.Flags().GetBool("confirm")
		if !confirm {
			return fmt.Errorf("refusing to reset without --confirm")
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.ResetDerived(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Derived state deleted")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("confirm", false, "Actually perform the reset")
}
