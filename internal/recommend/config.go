package recommend

import (
	"fmt"

	"golang.org/x/mod/semver"

	"github.com/diversifica/decies-platform-sub000/internal/mastery"
)

// RulesetVersion is the current rule-catalog version, stamped onto every
// recommendation this process writes.
const RulesetVersion = "v1.2.0"

// DefaultWindowDays is the outcome observation window a recommendation
// gets unless its rule requests another.
const DefaultWindowDays = 14

// Config carries the version tags and the default observation window.
type Config struct {
	EngineVersion  string
	RulesetVersion string
	WindowDays     int
}

// DefaultConfig returns the process-wide default configuration.
func DefaultConfig() Config {
	return Config{
		EngineVersion:  mastery.EngineVersion,
		RulesetVersion: RulesetVersion,
		WindowDays:     DefaultWindowDays,
	}
}

// Validate checks the version tags and window.
func (c Config) Validate() error {
	if !semver.IsValid(c.EngineVersion) {
		return fmt.Errorf("invalid engine version %q", c.EngineVersion)
	}
	if !semver.IsValid(c.RulesetVersion) {
		return fmt.Errorf("invalid ruleset version %q", c.RulesetVersion)
	}
	if c.WindowDays <= 0 {
		return fmt.Errorf("window days must be positive, got %d", c.WindowDays)
	}
	return nil
}
