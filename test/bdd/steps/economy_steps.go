package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/dstapl/osrs-gph/internal/domain/economy"
	"github.com/dstapl/osrs-gph/internal/domain/profit"
)

type economyContext struct {
	policy economy.TaxPolicy
	tax    int64
	net    int64

	capital int64
	cost    int64
	perHour int64
	number  int64
	err     error

	row        profit.OverviewRow
	mustProfit bool
	showHidden bool
}

func (ec *economyContext) reset() {
	ec.policy = economy.DefaultTaxPolicy()
	ec.tax = 0
	ec.net = 0
	ec.capital = 0
	ec.cost = 0
	ec.perHour = 0
	ec.number = 0
	ec.err = nil
	ec.row = profit.OverviewRow{}
	ec.mustProfit = false
	ec.showHidden = false
}

// Tax steps

func (ec *economyContext) aSalesTaxCappedAtAbove(percent float64, feeCap, threshold int64) error {
	ec.policy = economy.TaxPolicy{Percent: percent, FeeCap: feeCap, Threshold: threshold}
	return ec.policy.Validate()
}

func (ec *economyContext) iSellGoodsWorth(amount int64) error {
	ec.tax = ec.policy.Tax(amount)
	ec.net = ec.policy.Apply(amount)
	return nil
}

func (ec *economyContext) theTaxShouldBe(expected int64) error {
	if ec.tax != expected {
		return fmt.Errorf("expected tax %d but got %d", expected, ec.tax)
	}
	return nil
}

func (ec *economyContext) theSellerShouldReceive(expected int64) error {
	if ec.net != expected {
		return fmt.Errorf("expected seller to receive %d but got %d", expected, ec.net)
	}
	return nil
}

// Quantity solver steps

func (ec *economyContext) aCapitalOf(capital int64) error {
	ec.capital = capital
	return nil
}

func (ec *economyContext) aRecipeCostingPerExecutionAtPerHour(cost, perHour int64) error {
	ec.cost = cost
	ec.perHour = perHour
	return nil
}

func (ec *economyContext) aRecipeCostingWithUnknownTime(cost int64) error {
	ec.cost = cost
	ec.perHour = 0
	return nil
}

func (ec *economyContext) iSolveTheQuantityInMode(mode string) error {
	timeMode, err := economy.ParseTimeMode(mode)
	if err != nil {
		return err
	}
	ec.number, ec.err = economy.UpdateRecipeNumber(ec.perHour, ec.capital, ec.cost, timeMode)
	return nil
}

func (ec *economyContext) theRecipeShouldBeExecutedTimes(expected int64) error {
	if ec.err != nil {
		return fmt.Errorf("unexpected error: %w", ec.err)
	}
	if ec.number != expected {
		return fmt.Errorf("expected %d executions but got %d", expected, ec.number)
	}
	return nil
}

func (ec *economyContext) theQuantityShouldBeRejected() error {
	if ec.err == nil {
		return fmt.Errorf("expected an error but got %d executions", ec.number)
	}
	return nil
}

// Visibility steps

func (ec *economyContext) aRowWithUpfrontCostAndProfit(cost, gain int64) error {
	timeSec := 3.6
	ec.row = profit.NewOverviewRow(profit.RowParams{
		Name:    "Test recipe",
		Cost:    cost,
		Revenue: cost + gain,
		Profit:  gain,
		TimeSec: &timeSec,
		Number:  1,
	})
	return nil
}

func (ec *economyContext) mustProfitAndShowHiddenAre(mustProfit, showHidden string) error {
	ec.mustProfit = mustProfit == "true"
	ec.showHidden = showHidden == "true"
	return nil
}

func (ec *economyContext) theRowShouldBe(expected string) error {
	got := profit.Classify(ec.row, ec.capital, ec.mustProfit, ec.showHidden)
	if got.String() != expected {
		return fmt.Errorf("expected row to be %s but it was %s", expected, got)
	}
	return nil
}

// InitializeEconomyScenario registers the tax, quantity and visibility steps
func InitializeEconomyScenario(ctx *godog.ScenarioContext) {
	ec := &economyContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		ec.reset()
		return ctx, nil
	})

	ctx.Step(`^a sales tax of ([0-9.]+)% capped at (\d+) coins for sales of (\d+) coins or more$`, ec.aSalesTaxCappedAtAbove)
	ctx.Step(`^I sell goods worth (\d+) coins$`, ec.iSellGoodsWorth)
	ctx.Step(`^the tax should be (\d+) coins$`, ec.theTaxShouldBe)
	ctx.Step(`^the seller should receive (\d+) coins$`, ec.theSellerShouldReceive)

	ctx.Step(`^a capital of (-?\d+) coins$`, ec.aCapitalOf)
	ctx.Step(`^a recipe costing (-?\d+) coins per execution at (\d+) executions per hour$`, ec.aRecipeCostingPerExecutionAtPerHour)
	ctx.Step(`^a recipe costing (-?\d+) coins per execution with unknown time$`, ec.aRecipeCostingWithUnknownTime)
	ctx.Step(`^I solve the quantity in "([^"]*)" mode$`, ec.iSolveTheQuantityInMode)
	ctx.Step(`^the recipe should be executed (\d+) times?$`, ec.theRecipeShouldBeExecutedTimes)
	ctx.Step(`^the quantity should be rejected$`, ec.theQuantityShouldBeRejected)

	ctx.Step(`^a row with upfront cost (\d+) and profit (-?\d+)$`, ec.aRowWithUpfrontCostAndProfit)
	ctx.Step(`^must_profit is (true|false) and show_hidden is (true|false)$`, ec.mustProfitAndShowHiddenAre)
	ctx.Step(`^the row should be (visible|hidden|annotated)$`, ec.theRowShouldBe)
}
