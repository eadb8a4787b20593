package profit

import (
	"fmt"

	"github.com/dstapl/osrs-gph/internal/domain/economy"
)

// Settings are the inputs every overview and breakdown computation shares
type Settings struct {
	Capital       int64
	PercentMargin float64
	TimeMode      economy.TimeMode
	Rules         economy.Rules
	Ranking       RankOptions
}

// DefaultSettings returns the stock configuration for the given capital
func DefaultSettings(capital int64) Settings {
	return Settings{
		Capital:       capital,
		PercentMargin: 2.5,
		TimeMode:      economy.SingleHour,
		Rules:         economy.DefaultRules(),
		Ranking: RankOptions{
			MustProfit: true,
			Reverse:    true,
			Membership: MembershipBoth,
			SortBy:     SortByCustom,
		},
	}
}

// Validate rejects settings that indicate malformed upstream input
func (s Settings) Validate() error {
	if s.Capital < 0 {
		return fmt.Errorf("%w: %w: %d", ErrInvalidConfig, economy.ErrNegativeCapital, s.Capital)
	}
	if s.PercentMargin < 0 || s.PercentMargin >= 100 {
		return fmt.Errorf("%w: percent margin %v", ErrInvalidConfig, s.PercentMargin)
	}
	if err := s.Rules.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
