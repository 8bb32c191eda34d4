package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var conceptCmd = &cobra.Command{
	Use:   "concept",
	Short: "Browse the concept catalog",
}

var conceptListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active concepts, optionally filtered by subject and term",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		term, _ := cmd.Flags().GetString("term")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		concepts, err := st.Repos().Concepts.ActiveConcepts(cmd.Context(), subject, term)
		if err != nil {
			return err
		}

		fmt.Printf("%-20s  %-40s  %-12s  %s\n", "Code", "Name", "Subject", "Term")
		fmt.Println(strings.Repeat("─", 85))
		for _, c := range concepts {
			name := c.Name
			if len(name) > 40 {
				name = name[:37] + "..."
			}
			fmt.Printf("%-20s  %-40s  %-12s  %s\n", c.Code, name, c.Subject, c.Term)
		}
		fmt.Printf("\n%d concepts\n", len(concepts))
		return nil
	},
}

func init() {
	conceptListCmd.Flags().String("subject", "", "Subject code")
	conceptListCmd.Flags().String("term", "", "Term code")
	conceptCmd.AddCommand(conceptListCmd)
}
