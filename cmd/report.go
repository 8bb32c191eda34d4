package cmd

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/diversifica/decies-platform-sub000/internal/mastery"
	"github.com/diversifica/decies-platform-sub000/internal/recommend"
)

var (
	reportTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8B5CF6"))

	reportSection = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#14B8A6"))

	reportDim = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))

	statusStyles = map[mastery.Status]lipgloss.Style{
		mastery.StatusDominant:   lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E")),
		mastery.StatusInProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316")),
		mastery.StatusAtRisk:     lipgloss.NewStyle().Foreground(lipgloss.Color("#F43F5E")),
	}
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show a mastery, metrics and recommendation summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		student, _ := cmd.Flags().GetString("student")
		subject, _ := cmd.Flags().GetString("subject")
		term, _ := cmd.Flags().GetString("term")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		engine, err := recommend.NewEngine(st, recommend.DefaultConfig(), nil)
		if err != nil {
			return err
		}
		snap, err := engine.BuildSnapshot(cmd.Context(), student, subject, term, time.Now())
		if err != nil {
			return err
		}
		pending, err := st.Repos().Recommendations.ListRecommendations(cmd.Context(), student, recommend.StatusPending)
		if err != nil {
			return err
		}

		fmt.Println(reportTitle.Render(fmt.Sprintf("%s — %s/%s", student, subject, term)))
		fmt.Println()

		fmt.Println(reportSection.Render("Metrics"))
		if snap.Metrics == nil {
			fmt.Println(reportDim.Render("  no aggregate yet, run recalc first"))
		} else {
			m := snap.Metrics
			fmt.Printf("  accuracy %.4f  first-attempt %.4f  hints %.4f\n",
				m.Accuracy, m.FirstAttemptAccuracy, m.HintRate)
			fmt.Printf("  median %dms  attempts/item %.2f  abandon %.4f\n",
				m.MedianResponseMs, m.AttemptsPerItem, m.AbandonRate)
			fmt.Println(reportDim.Render(fmt.Sprintf("  computed %s over %dd",
				m.ComputedAt.Format("2006-01-02"), m.WindowDays)))
		}
		fmt.Println()

		fmt.Println(reportSection.Render("Mastery"))
		if len(snap.States) == 0 {
			fmt.Println(reportDim.Render("  no tracked concepts"))
		}
		for _, s := range snap.States {
			style := statusStyles[s.Status]
			name := snap.Graph.Name(s.ConceptID)
			if len(name) > 40 {
				name = name[:37] + "..."
			}
			fmt.Printf("  %-40s  %.4f  %s\n", name, s.Score, style.Render(string(s.Status)))
		}
		fmt.Println()

		fmt.Println(reportSection.Render("Pending recommendations"))
		if len(pending) == 0 {
			fmt.Println(reportDim.Render("  none"))
		}
		for _, r := range pending {
			fmt.Printf("  %s [%s] %s\n", r.RuleCode, r.Priority, r.Title)
			if len(r.Evidence) > 0 {
				parts := make([]string, 0, len(r.Evidence))
				for _, e := range r.Evidence {
					parts = append(parts, fmt.Sprintf("%s=%s", e.Key, e.Value))
				}
				fmt.Println(reportDim.Render("      " + strings.Join(parts, "  ")))
			}
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().String("student", "", "Student id")
	reportCmd.Flags().String("subject", "", "Subject code")
	reportCmd.Flags().String("term", "", "Term code")
	_ = reportCmd.MarkFlagRequired("student")
	_ = reportCmd.MarkFlagRequired("subject")
	_ = reportCmd.MarkFlagRequired("term")
}
