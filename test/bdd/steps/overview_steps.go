package steps

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"github.com/dstapl/osrs-gph/internal/application/mediator"
	"github.com/dstapl/osrs-gph/internal/application/profit/queries"
	"github.com/dstapl/osrs-gph/internal/application/profit/services"
	"github.com/dstapl/osrs-gph/internal/domain/economy"
	"github.com/dstapl/osrs-gph/internal/domain/market"
	"github.com/dstapl/osrs-gph/internal/domain/profit"
	"github.com/dstapl/osrs-gph/internal/domain/recipe"
)

type overviewContext struct {
	mediator mediator.Mediator
	items    []*market.Item
	recipes  []*recipe.Recipe
	settings profit.Settings

	response  *queries.ComputeOverviewsResponse
	breakdown *queries.Breakdown
	err       error
}

func (oc *overviewContext) reset() {
	oc.mediator = mediator.NewMediator()
	service := services.NewOverviewService(2)
	_ = mediator.RegisterHandler[*queries.ComputeOverviewsQuery](oc.mediator, queries.NewComputeOverviewsHandler(service))
	_ = mediator.RegisterHandler[*queries.ComputeBreakdownQuery](oc.mediator, queries.NewComputeBreakdownHandler(service))

	oc.items = nil
	oc.recipes = nil
	oc.settings = profit.DefaultSettings(0)
	oc.response = nil
	oc.breakdown = nil
	oc.err = nil
}

func optionalPrice(cell string) (*int32, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" || cell == "-" {
		return nil, nil
	}
	v, err := strconv.ParseInt(strings.ReplaceAll(cell, ",", ""), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", cell, err)
	}
	p := int32(v)
	return &p, nil
}

func (oc *overviewContext) theGrandExchangeQuotes(table *godog.Table) error {
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}

		name := row.Cells[0].Value
		buy, err := optionalPrice(row.Cells[1].Value)
		if err != nil {
			return err
		}
		sell, err := optionalPrice(row.Cells[2].Value)
		if err != nil {
			return err
		}
		var limit *int32
		if len(row.Cells) > 3 {
			if limit, err = optionalPrice(row.Cells[3].Value); err != nil {
				return err
			}
		}

		item, err := market.NewItem(1000+i, name, false, buy, sell, limit)
		if err != nil {
			return err
		}
		oc.items = append(oc.items, item)
	}
	return nil
}

// recipeFromTable reads rows of "role | item | quantity" where role is input, pay_once or output
func (oc *overviewContext) recipeFromTable(name string, t recipe.Time, members bool, table *godog.Table) error {
	def := recipe.Definition{
		Name:    name,
		Members: members,
		Inputs:  map[string]float64{},
		PayOnce: map[string]float64{},
		Outputs: map[string]float64{},
		Time:    t,
	}

	for i, row := range table.Rows {
		if i == 0 {
			continue
		}
		qty, err := strconv.ParseFloat(row.Cells[2].Value, 64)
		if err != nil {
			return fmt.Errorf("invalid quantity %q: %w", row.Cells[2].Value, err)
		}
		switch row.Cells[0].Value {
		case "input":
			def.Inputs[row.Cells[1].Value] = qty
		case "pay_once":
			def.PayOnce[row.Cells[1].Value] = qty
		case "output":
			def.Outputs[row.Cells[1].Value] = qty
		default:
			return fmt.Errorf("unknown role %q", row.Cells[0].Value)
		}
	}

	r, err := recipe.NewRecipe(def)
	if err != nil {
		return err
	}
	oc.recipes = append(oc.recipes, r)
	return nil
}

func (oc *overviewContext) theRecipeTakingTicks(name string, ticks float64, table *godog.Table) error {
	return oc.recipeFromTable(name, recipe.KnownTicks(ticks), false, table)
}

func (oc *overviewContext) theMembersRecipeTakingTicks(name string, ticks float64, table *godog.Table) error {
	return oc.recipeFromTable(name, recipe.KnownTicks(ticks), true, table)
}

func (oc *overviewContext) theRecipeWithUnknownTime(name string, table *godog.Table) error {
	return oc.recipeFromTable(name, recipe.UnknownTime(), false, table)
}

func (oc *overviewContext) thePlayerHasCoinsToSpend(capital int64) error {
	oc.settings.Capital = capital
	return nil
}

func (oc *overviewContext) theTimeModeIs(mode string) error {
	timeMode, err := economy.ParseTimeMode(mode)
	if err != nil {
		return err
	}
	oc.settings.TimeMode = timeMode
	return nil
}

func (oc *overviewContext) recipesAreSortedBy(mode string) error {
	sortBy, err := profit.ParseSortMode(mode)
	if err != nil {
		return err
	}
	oc.settings.Ranking.SortBy = sortBy
	oc.settings.Ranking.Reverse = false
	return nil
}

func (oc *overviewContext) onlyRecipesAreShown(membership string) error {
	m, err := profit.ParseMembership(membership)
	if err != nil {
		return err
	}
	oc.settings.Ranking.Membership = m
	return nil
}

func (oc *overviewContext) hiddenRecipesAreShown() error {
	oc.settings.Ranking.ShowHidden = true
	return nil
}

func (oc *overviewContext) iComputeTheOverviews() error {
	catalogue, err := market.NewCatalogue(oc.items, nil)
	if err != nil {
		return err
	}
	book, err := recipe.NewBook(oc.recipes, nil)
	if err != nil {
		return err
	}

	resp, err := oc.mediator.Send(context.Background(), &queries.ComputeOverviewsQuery{
		Recipes:  book,
		Items:    catalogue,
		Settings: oc.settings,
	})
	oc.err = err
	if err == nil {
		oc.response = resp.(*queries.ComputeOverviewsResponse)
	}
	return nil
}

func (oc *overviewContext) iRequestTheBreakdownOf(name string) error {
	catalogue, err := market.NewCatalogue(oc.items, nil)
	if err != nil {
		return err
	}
	book, err := recipe.NewBook(oc.recipes, nil)
	if err != nil {
		return err
	}

	resp, err := oc.mediator.Send(context.Background(), &queries.ComputeBreakdownQuery{
		RecipeNames: []string{name},
		Recipes:     book,
		Items:       catalogue,
		Settings:    oc.settings,
	})
	oc.err = err
	if err != nil {
		return nil
	}
	breakdowns := resp.(*queries.ComputeBreakdownResponse).Breakdowns
	if len(breakdowns) != 1 {
		return fmt.Errorf("expected 1 breakdown but got %d", len(breakdowns))
	}
	oc.breakdown = &breakdowns[0]
	return nil
}

func (oc *overviewContext) findRow(label string) (profit.OverviewRow, error) {
	if oc.response == nil {
		return profit.OverviewRow{}, fmt.Errorf("no overview computed (error: %v)", oc.err)
	}
	for _, row := range oc.response.Rows {
		if row.Label() == label {
			return row, nil
		}
	}
	return profit.OverviewRow{}, fmt.Errorf("recipe %q not in ranking", label)
}

func (oc *overviewContext) theOverviewShouldShow(name string, gain, number, gph int64) error {
	row, err := oc.findRow(name)
	if err != nil {
		return err
	}
	if row.Profit() != gain {
		return fmt.Errorf("expected profit %d but got %d", gain, row.Profit())
	}
	if row.Number() != number {
		return fmt.Errorf("expected %d executions but got %d", number, row.Number())
	}
	if row.GPH() != gph {
		return fmt.Errorf("expected %d gp/h but got %d", gph, row.GPH())
	}
	return nil
}

func (oc *overviewContext) theTotalGainShouldBe(name string, total int64) error {
	row, err := oc.findRow(name)
	if err != nil {
		return err
	}
	if row.TotalGP() != total {
		return fmt.Errorf("expected total gain %d but got %d", total, row.TotalGP())
	}
	return nil
}

func (oc *overviewContext) theTotalTimeShouldBeHours(name string, hours float64) error {
	row, err := oc.findRow(name)
	if err != nil {
		return err
	}
	if row.TotalTimeHours() != hours {
		return fmt.Errorf("expected %v hours but got %v", hours, row.TotalTimeHours())
	}
	return nil
}

func (oc *overviewContext) shouldBeSkippedAs(name, reason string) error {
	if oc.response == nil {
		return fmt.Errorf("no overview computed (error: %v)", oc.err)
	}
	for _, skipped := range oc.response.Skipped {
		if skipped.Name == name {
			if skipped.Reason != reason {
				return fmt.Errorf("expected %q to be skipped as %s but got %s", name, reason, skipped.Reason)
			}
			return nil
		}
	}
	return fmt.Errorf("recipe %q was not skipped", name)
}

func (oc *overviewContext) theRankingShouldBe(expected string) error {
	if oc.response == nil {
		return fmt.Errorf("no overview computed (error: %v)", oc.err)
	}
	var got []string
	for _, row := range oc.response.Rows {
		got = append(got, row.Label())
	}
	want := strings.Split(expected, ", ")
	if strings.Join(got, ", ") != strings.Join(want, ", ") {
		return fmt.Errorf("expected ranking [%s] but got [%s]", expected, strings.Join(got, ", "))
	}
	return nil
}

func (oc *overviewContext) theRankingShouldBeEmpty() error {
	if oc.response == nil {
		return fmt.Errorf("no overview computed (error: %v)", oc.err)
	}
	if len(oc.response.Rows) != 0 {
		return fmt.Errorf("expected no ranked recipes but got %d", len(oc.response.Rows))
	}
	return nil
}

func (oc *overviewContext) theComputationShouldFailBecauseNothingCouldBeRanked() error {
	if !errors.Is(oc.err, profit.ErrNothingToRank) {
		return fmt.Errorf("expected ErrNothingToRank but got %v", oc.err)
	}
	return nil
}

func (oc *overviewContext) theBreakdownRowShouldRead(label string, table *godog.Table) error {
	if oc.breakdown == nil || !oc.breakdown.Found() {
		return fmt.Errorf("no breakdown available (error: %v)", oc.err)
	}

	for _, cells := range oc.breakdown.Table.Merge(nil) {
		if len(cells) == 0 || cells[0] != label {
			continue
		}
		for i, expected := range table.Rows[0].Cells {
			if i+1 >= len(cells) {
				return fmt.Errorf("row %q has only %d cells", label, len(cells))
			}
			if cells[i+1] != expected.Value {
				return fmt.Errorf("row %q column %d: expected %q but got %q", label, i+1, expected.Value, cells[i+1])
			}
		}
		return nil
	}
	return fmt.Errorf("breakdown has no %q row", label)
}

// InitializeOverviewScenario registers the overview, ranking and breakdown steps
func InitializeOverviewScenario(ctx *godog.ScenarioContext) {
	oc := &overviewContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		oc.reset()
		return ctx, nil
	})

	ctx.Step(`^the grand exchange quotes:$`, oc.theGrandExchangeQuotes)
	ctx.Step(`^the recipe "([^"]*)" taking ([0-9.]+) ticks:$`, oc.theRecipeTakingTicks)
	ctx.Step(`^the members recipe "([^"]*)" taking ([0-9.]+) ticks:$`, oc.theMembersRecipeTakingTicks)
	ctx.Step(`^the recipe "([^"]*)" with unknown time:$`, oc.theRecipeWithUnknownTime)
	ctx.Step(`^the player has (\d+) coins to spend$`, oc.thePlayerHasCoinsToSpend)
	ctx.Step(`^the time mode is "([^"]*)"$`, oc.theTimeModeIs)
	ctx.Step(`^recipes are sorted by "([^"]*)"$`, oc.recipesAreSortedBy)
	ctx.Step(`^only "([^"]*)" recipes are shown$`, oc.onlyRecipesAreShown)
	ctx.Step(`^hidden recipes are shown$`, oc.hiddenRecipesAreShown)

	ctx.Step(`^I compute the overviews$`, oc.iComputeTheOverviews)
	ctx.Step(`^I request the breakdown of "([^"]*)"$`, oc.iRequestTheBreakdownOf)

	ctx.Step(`^the overview of "([^"]*)" should show a profit of (-?\d+) over (\d+) executions at (\d+) gp per hour$`, oc.theOverviewShouldShow)
	ctx.Step(`^the total gain of "([^"]*)" should be (-?\d+)$`, oc.theTotalGainShouldBe)
	ctx.Step(`^the total time of "([^"]*)" should be ([0-9.]+) hours$`, oc.theTotalTimeShouldBeHours)
	ctx.Step(`^"([^"]*)" should be skipped as "([^"]*)"$`, oc.shouldBeSkippedAs)
	ctx.Step(`^the ranking should be "([^"]*)"$`, oc.theRankingShouldBe)
	ctx.Step(`^no recipe should be ranked$`, oc.theRankingShouldBeEmpty)
	ctx.Step(`^the computation should fail because nothing could be ranked$`, oc.theComputationShouldFailBecauseNothingCouldBeRanked)
	ctx.Step(`^the breakdown row "([^"]*)" should read:$`, oc.theBreakdownRowShouldRead)
}
