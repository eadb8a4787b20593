package profit

import (
	"fmt"

	"github.com/dstapl/osrs-gph/internal/domain/economy"
	"github.com/dstapl/osrs-gph/internal/domain/market"
	"github.com/dstapl/osrs-gph/internal/domain/recipe"
)

// PricedLine is one itemized ingredient or product under a scenario
type PricedLine struct {
	Name      string
	UnitPrice int64
	Quantity  float64 // Per execution
}

// Total is the floored line value of one execution
func (l PricedLine) Total() int64 {
	return economy.LineItem{Price: l.UnitPrice, Quantity: l.Quantity}.Total()
}

// Costing is a recipe priced under one scenario: the itemized lines and the
// resulting overview row
type Costing struct {
	Scenario string
	Row      OverviewRow
	Inputs   []PricedLine
	PayOnce  []PricedLine
	Outputs  []PricedLine
}

// OverviewCalculator turns recipes into overview rows against one price snapshot.
// It holds no mutable state and is safe for concurrent use.
type OverviewCalculator struct {
	items    market.ItemLookup
	settings Settings
}

// NewOverviewCalculator validates settings and creates a calculator
func NewOverviewCalculator(items market.ItemLookup, settings Settings) (*OverviewCalculator, error) {
	if items == nil {
		return nil, fmt.Errorf("%w: item lookup is nil", ErrInvalidConfig)
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &OverviewCalculator{items: items, settings: settings}, nil
}

func (c *OverviewCalculator) Settings() Settings { return c.settings }

// Overview computes the recipe's row at quoted prices
func (c *OverviewCalculator) Overview(r *recipe.Recipe) (OverviewRow, error) {
	costing, err := c.Cost(r, BaseScenario())
	if err != nil {
		return OverviewRow{}, err
	}
	return costing.Row, nil
}

// Cost prices the recipe under the scenario and resolves how many executions
// the capital, buy limits and session length allow
func (c *OverviewCalculator) Cost(r *recipe.Recipe, scenario Scenario) (*Costing, error) {
	rules := c.settings.Rules

	// Resolve every item before any arithmetic
	inputs, limits, err := c.resolveBuys(r.Name(), r.Inputs(), scenario)
	if err != nil {
		return nil, err
	}
	payOnce, _, err := c.resolveBuys(r.Name(), r.PayOnceInputs(), scenario)
	if err != nil {
		return nil, err
	}
	outputs, err := c.resolveSells(r.Name(), r.Outputs(), scenario)
	if err != nil {
		return nil, err
	}

	cost := economy.TotalLinePrice(toLineItems(inputs), nil)
	revenue := economy.TotalLinePrice(toLineItems(outputs), rules.Tax)
	profit := revenue - cost

	var payOnceTotal *int64
	var upfront int64
	if len(payOnce) > 0 {
		total := economy.TotalLinePrice(toLineItems(payOnce), nil)
		payOnceTotal = &total
		upfront = total
	}

	timeSec, err := c.effectiveTime(r)
	if err != nil {
		return nil, err
	}

	capital := c.settings.Capital - upfront
	if capital < 0 {
		capital = 0
	}

	number, err := economy.UpdateRecipeNumber(c.perHour(r, timeSec), capital, cost, c.settings.TimeMode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.Name(), err)
	}
	if number == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnexecutable, r.Name())
	}

	if ceiling, ok := economy.BuyLimitCeiling(limits, rules.BuyLimitDivisor); ok && ceiling < number {
		number = ceiling
	}

	number = economy.SessionCap(number, timeSec, rules.SessionCapSeconds())

	row := NewOverviewRow(RowParams{
		Name:         r.Name(),
		Members:      r.RequiresMembership(),
		PayOnceTotal: payOnceTotal,
		Cost:         cost,
		Revenue:      revenue,
		Profit:       profit,
		TimeSec:      &timeSec,
		Number:       number,
		TimeMode:     c.settings.TimeMode,
	})

	return &Costing{
		Scenario: scenario.Label(),
		Row:      row,
		Inputs:   inputs,
		PayOnce:  payOnce,
		Outputs:  outputs,
	}, nil
}

// effectiveTime picks the per-execution seconds. When both a tick time and a
// number-per-hour override exist, the longer per-execution time wins.
func (c *OverviewCalculator) effectiveTime(r *recipe.Recipe) (float64, error) {
	tickSec, hasTicks := r.Time().Seconds(c.settings.Rules.SecondsPerTick)
	perHour, hasOverride := r.NumberPerHour()

	switch {
	case hasTicks && hasOverride:
		overrideSec := economy.SecondsPerExecution(perHour)
		if overrideSec > tickSec {
			return overrideSec, nil
		}
		return tickSec, nil
	case hasTicks:
		return tickSec, nil
	case hasOverride:
		return economy.SecondsPerExecution(perHour), nil
	default:
		return 0, fmt.Errorf("%w: %s has neither ticks nor number_per_hour", ErrNoTimeData, r.Name())
	}
}

// perHour derives the solver's rate: from the effective time in SingleHour mode,
// the raw override in MaxHours mode
func (c *OverviewCalculator) perHour(r *recipe.Recipe, timeSec float64) int64 {
	if c.settings.TimeMode == economy.MaxHours {
		if override, ok := r.NumberPerHour(); ok {
			if rate := economy.Floor(override); rate >= 1 {
				return rate
			}
		}
	}
	return economy.ExecutionsPerHour(timeSec)
}

func (c *OverviewCalculator) resolveBuys(recipeName string, ingredients []recipe.Ingredient, scenario Scenario) ([]PricedLine, []economy.LimitedInput, error) {
	lines := make([]PricedLine, 0, len(ingredients))
	limits := make([]economy.LimitedInput, 0, len(ingredients))

	for _, ing := range ingredients {
		item, ok := c.items.LookupItem(ing.Name)
		if !ok {
			return nil, nil, fmt.Errorf("%w: %s: %q not in catalogue", ErrIncompleteData, recipeName, ing.Name)
		}
		price, ok := item.BuyPrice()
		if !ok {
			return nil, nil, fmt.Errorf("%w: %s: %q has no buy price", ErrIncompleteData, recipeName, ing.Name)
		}

		lines = append(lines, PricedLine{
			Name:      item.Name(),
			UnitPrice: scenario.BuyPrice(int64(price)),
			Quantity:  ing.Quantity,
		})

		limit, hasLimit := item.PurchaseLimit()
		limits = append(limits, economy.LimitedInput{
			Quantity: ing.Quantity,
			Limit:    int64(limit),
			HasLimit: hasLimit,
		})
	}

	return lines, limits, nil
}

func (c *OverviewCalculator) resolveSells(recipeName string, ingredients []recipe.Ingredient, scenario Scenario) ([]PricedLine, error) {
	lines := make([]PricedLine, 0, len(ingredients))

	for _, ing := range ingredients {
		item, ok := c.items.LookupItem(ing.Name)
		if !ok {
			return nil, fmt.Errorf("%w: %s: %q not in catalogue", ErrIncompleteData, recipeName, ing.Name)
		}
		price, ok := item.SellPrice()
		if !ok {
			return nil, fmt.Errorf("%w: %s: %q has no sell price", ErrIncompleteData, recipeName, ing.Name)
		}

		lines = append(lines, PricedLine{
			Name:      item.Name(),
			UnitPrice: scenario.SellPrice(int64(price)),
			Quantity:  ing.Quantity,
		})
	}

	return lines, nil
}

func toLineItems(lines []PricedLine) []economy.LineItem {
	out := make([]economy.LineItem, len(lines))
	for i, l := range lines {
		out[i] = economy.LineItem{Price: l.UnitPrice, Quantity: l.Quantity}
	}
	return out
}
