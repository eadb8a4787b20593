package config

import (
	"github.com/dstapl/osrs-gph/internal/domain/economy"
	"github.com/dstapl/osrs-gph/internal/domain/market"
	"github.com/dstapl/osrs-gph/internal/domain/profit"
)

// EconomyRules converts the economy section into domain rules
func (c *Config) EconomyRules() economy.Rules {
	return economy.Rules{
		Tax: economy.TaxPolicy{
			Percent:   c.Economy.TaxPercent,
			FeeCap:    c.Economy.FeeCap,
			Threshold: c.Economy.TaxThreshold,
		},
		SecondsPerTick:  c.Economy.SecondsPerTick,
		SessionCapHours: c.Economy.SessionCapHours,
		BuyLimitDivisor: c.Economy.BuyLimitDivisor,
	}
}

// ProfitSettings converts the profit and display sections into engine settings
func (c *Config) ProfitSettings() (profit.Settings, error) {
	timeMode, err := economy.ParseTimeMode(c.Profit.TimeMode)
	if err != nil {
		return profit.Settings{}, err
	}
	membership, err := profit.ParseMembership(c.Display.Membership)
	if err != nil {
		return profit.Settings{}, err
	}
	sortBy, err := profit.ParseSortMode(c.Display.SortBy)
	if err != nil {
		return profit.Settings{}, err
	}

	var weights profit.Weights
	if sortBy == profit.SortByCustom {
		weights, err = profit.ComputeWeights(c.Profit.Coins, profit.Preference{
			Margin: c.Profit.Weights.Margin,
			Time:   c.Profit.Weights.Time,
			GPH:    c.Profit.Weights.GPH,
		})
		if err != nil {
			return profit.Settings{}, err
		}
	}

	settings := profit.Settings{
		Capital:       c.Profit.Coins,
		PercentMargin: c.Profit.PercentMargin,
		TimeMode:      timeMode,
		Rules:         c.EconomyRules(),
		Ranking: profit.RankOptions{
			MustProfit: c.Display.MustProfit,
			ShowHidden: c.Display.ShowHidden,
			Reverse:    c.Display.Reverse,
			Membership: membership,
			SortBy:     sortBy,
			Weights:    weights,
		},
	}
	return settings, settings.Validate()
}

// Timespan returns the configured price aggregation window
func (c *Config) Timespan() (market.Timespan, error) {
	return market.ParseTimespan(c.API.Timespan)
}
