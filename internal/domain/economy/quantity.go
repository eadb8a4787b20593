package economy

import (
	"fmt"
	"strings"
)

// TimeMode selects what a recipe's execution count is budgeted against
type TimeMode int

const (
	// SingleHour answers "how much can I make in one hour"
	SingleHour TimeMode = iota
	// MaxHours answers "how much can I make before the capital runs out"
	MaxHours
)

func (m TimeMode) String() string {
	switch m {
	case SingleHour:
		return "single_hour"
	case MaxHours:
		return "max_hours"
	default:
		return fmt.Sprintf("TimeMode(%d)", int(m))
	}
}

// ParseTimeMode converts a configuration value into a TimeMode
func ParseTimeMode(s string) (TimeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single_hour", "singlehour", "single":
		return SingleHour, nil
	case "max_hours", "maxhours", "max":
		return MaxHours, nil
	default:
		return SingleHour, fmt.Errorf("%w: %q", ErrInvalidTimeMode, s)
	}
}

// UpdateRecipeNumber decides how many times a recipe should be executed.
// perHour is the achievable executions per hour; zero or less means unknown.
// A result of 0 means the recipe cannot be executed under this model and must be
// excluded; every other result is at least 1.
// The buy-limit and session ceilings are applied by the caller.
func UpdateRecipeNumber(perHour, capital, cost int64, mode TimeMode) (int64, error) {
	if capital < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeCapital, capital)
	}
	if cost < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeCost, cost)
	}

	rateKnown := perHour > 0

	if cost == 0 {
		if !rateKnown {
			return 0, nil
		}
		return perHour, nil
	}

	capitalBound := capital / cost

	if mode == SingleHour || !rateKnown {
		number := capitalBound
		if rateKnown && perHour < number {
			number = perHour
		}
		return atLeastOne(number), nil
	}

	hourCost := cost * perHour
	fullHours := capital / hourCost
	number := fullHours * perHour
	number += (capital - fullHours*hourCost) / cost

	if number > capitalBound {
		number = capitalBound
	}
	return atLeastOne(number), nil
}

func atLeastOne(n int64) int64 {
	if n < 1 {
		return 1
	}
	return n
}
