package recommend

import "errors"

var (
	// ErrInvalidDecision is returned when the decision value is neither
	// accepted nor rejected.
	ErrInvalidDecision = errors.New("decision must be accepted or rejected")

	// ErrAlreadyDecided is returned when the recommendation is no longer
	// pending.
	ErrAlreadyDecided = errors.New("recommendation already decided")
)
