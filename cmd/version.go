package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diversifica/decies-platform-sub000/internal/mastery"
	"github.com/diversifica/decies-platform-sub000/internal/recommend"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("decies", version)
		fmt.Println("engine", mastery.EngineVersion, "ruleset", recommend.RulesetVersion)
	},
}
