package profit

import (
	"errors"

	"github.com/dstapl/osrs-gph/internal/domain/economy"
)

// Per-recipe errors: the recipe is skipped and the batch continues
var (
	// ErrIncompleteData is returned when an item is missing from the catalogue or unpriced
	ErrIncompleteData = errors.New("incomplete item data")

	// ErrNoTimeData is returned when neither a tick time nor a throughput override exists
	ErrNoTimeData = errors.New("no time data")

	// ErrUnexecutable is returned when the quantity solver yields zero executions
	ErrUnexecutable = errors.New("recipe cannot be executed")
)

// Batch errors: the computation aborts
var (
	// ErrNothingToRank is returned when no recipe produced an overview
	ErrNothingToRank = errors.New("no recipe could be evaluated")

	// ErrInvalidConfig is returned when engine settings are malformed
	ErrInvalidConfig = errors.New("invalid engine configuration")
)

// IsSkippable reports whether err only disqualifies a single recipe
func IsSkippable(err error) bool {
	return errors.Is(err, ErrIncompleteData) ||
		errors.Is(err, ErrNoTimeData) ||
		errors.Is(err, ErrUnexecutable)
}

// SkipReason returns a short label for a per-recipe error, for logs and metrics
func SkipReason(err error) string {
	switch {
	case errors.Is(err, ErrIncompleteData):
		return "incomplete_data"
	case errors.Is(err, ErrNoTimeData):
		return "no_time_data"
	case errors.Is(err, ErrUnexecutable):
		return "unexecutable"
	case errors.Is(err, economy.ErrNegativeCost), errors.Is(err, economy.ErrNegativeCapital):
		return "invalid_numbers"
	default:
		return "error"
	}
}
