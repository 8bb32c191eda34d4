package mastery

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// EngineVersion is the current mastery-engine version, stamped onto every
// state and aggregate row this process writes.
const EngineVersion = "v1.4.0"

// DefaultMetricsWindowDays is the trailing window for scope metrics.
const DefaultMetricsWindowDays = 30

// Config carries the version tag written to persisted rows. It is explicit
// construction-time configuration, not ambient state, so tests can run
// multiple versions side by side.
type Config struct {
	EngineVersion string
}

// DefaultConfig returns the process-wide default configuration.
func DefaultConfig() Config {
	return Config{EngineVersion: EngineVersion}
}

// Validate checks that the version tag is a well-formed semver string.
func (c Config) Validate() error {
	if !semver.IsValid(c.EngineVersion) {
		return fmt.Errorf("invalid engine version %q", c.EngineVersion)
	}
	return nil
}
