package steps

import (
	"context"
	"errors"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/dstapl/osrs-gph/internal/adapters/persistence"
	"github.com/dstapl/osrs-gph/internal/application/mediator"
	"github.com/dstapl/osrs-gph/internal/application/prices/commands"
	"github.com/dstapl/osrs-gph/internal/application/prices/queries"
	"github.com/dstapl/osrs-gph/internal/domain/market"
	"github.com/dstapl/osrs-gph/test/helpers"
)

type pricesContext struct {
	mediator mediator.Mediator
	source   *helpers.MockPriceSource
	repo     *persistence.PriceRepositoryGORM

	refreshed *commands.RefreshPricesResponse
	lookup    *queries.GetItemPricesResponse
	err       error
}

func (pc *pricesContext) reset() error {
	if err := helpers.TruncateAllTables(); err != nil {
		return err
	}

	pc.source = helpers.NewMockPriceSource()
	pc.repo = persistence.NewPriceRepository(helpers.SharedTestDB)

	pc.mediator = mediator.NewMediator()
	if err := mediator.RegisterHandler[*commands.RefreshPricesCommand](pc.mediator,
		commands.NewRefreshPricesHandler(pc.source, pc.repo)); err != nil {
		return err
	}
	if err := mediator.RegisterHandler[*queries.GetItemPricesQuery](pc.mediator,
		queries.NewGetItemPricesHandler(pc.repo)); err != nil {
		return err
	}

	pc.refreshed = nil
	pc.lookup = nil
	pc.err = nil
	return nil
}

func (pc *pricesContext) thePriceAPIOffers(table *godog.Table) error {
	var items []*market.Item
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}
		buy, err := optionalPrice(cellByHeader(table, row, "buy"))
		if err != nil {
			return err
		}
		sell, err := optionalPrice(cellByHeader(table, row, "sell"))
		if err != nil {
			return err
		}
		limit, err := optionalPrice(cellByHeader(table, row, "limit"))
		if err != nil {
			return err
		}
		item, err := market.NewItem(i, cellByHeader(table, row, "item"), false, buy, sell, limit)
		if err != nil {
			return err
		}
		items = append(items, item)
	}
	pc.source.SetItems(items...)
	return nil
}

func (pc *pricesContext) thePriceAPIIsUnavailable() error {
	pc.source.SetError(errors.New("price API unavailable"))
	return nil
}

func (pc *pricesContext) iRefreshPricesUsingTheTimespan(timespan string) error {
	resp, err := pc.mediator.Send(context.Background(), &commands.RefreshPricesCommand{
		Timespan: market.Timespan(timespan),
	})
	pc.err = err
	if err == nil {
		pc.refreshed = resp.(*commands.RefreshPricesResponse)
	}
	return nil
}

func (pc *pricesContext) theRefreshShouldStoreItemsOfWhichArePriced(items, priced int) error {
	if pc.err != nil {
		return fmt.Errorf("refresh failed: %w", pc.err)
	}
	if pc.refreshed.Items != items {
		return fmt.Errorf("expected %d items but got %d", items, pc.refreshed.Items)
	}
	if pc.refreshed.Priced != priced {
		return fmt.Errorf("expected %d priced items but got %d", priced, pc.refreshed.Priced)
	}
	return nil
}

func (pc *pricesContext) theRefreshShouldFail() error {
	if pc.err == nil {
		return fmt.Errorf("expected the refresh to fail")
	}
	return nil
}

func (pc *pricesContext) iLookUpThePriceOf(name string) error {
	resp, err := pc.mediator.Send(context.Background(), &queries.GetItemPricesQuery{Names: []string{name}})
	pc.err = err
	if err == nil {
		pc.lookup = resp.(*queries.GetItemPricesResponse)
	}
	return nil
}

func (pc *pricesContext) theItemShouldCostToBuyAndSellFor(buy, sell int32) error {
	if pc.err != nil {
		return fmt.Errorf("lookup failed: %w", pc.err)
	}
	item := pc.lookup.Prices[0].Item
	if item == nil {
		return fmt.Errorf("item %q not found", pc.lookup.Prices[0].Name)
	}
	gotBuy, _ := item.BuyPrice()
	gotSell, _ := item.SellPrice()
	if gotBuy != buy || gotSell != sell {
		return fmt.Errorf("expected %d/%d but got %d/%d", buy, sell, gotBuy, gotSell)
	}
	return nil
}

func (pc *pricesContext) theItemShouldBeUnknown() error {
	if pc.err != nil {
		return fmt.Errorf("lookup failed: %w", pc.err)
	}
	if pc.lookup.Prices[0].Item != nil {
		return fmt.Errorf("expected %q to be unknown", pc.lookup.Prices[0].Name)
	}
	return nil
}

func (pc *pricesContext) theLookupShouldFailBecauseNoPricesAreStored() error {
	if !errors.Is(pc.err, market.ErrEmptyCatalogue) {
		return fmt.Errorf("expected ErrEmptyCatalogue but got %v", pc.err)
	}
	return nil
}

// InitializePricesScenario registers the price refresh and lookup steps.
// Scenarios run against the shared SQLite database.
func InitializePricesScenario(ctx *godog.ScenarioContext) {
	pc := &pricesContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, pc.reset()
	})

	ctx.Step(`^the price API offers:$`, pc.thePriceAPIOffers)
	ctx.Step(`^the price API is unavailable$`, pc.thePriceAPIIsUnavailable)
	ctx.Step(`^I refresh prices using the "([^"]*)" timespan$`, pc.iRefreshPricesUsingTheTimespan)
	ctx.Step(`^the refresh should store (\d+) items of which (\d+) are priced$`, pc.theRefreshShouldStoreItemsOfWhichArePriced)
	ctx.Step(`^the refresh should fail$`, pc.theRefreshShouldFail)
	ctx.Step(`^I look up the price of "([^"]*)"$`, pc.iLookUpThePriceOf)
	ctx.Step(`^it should cost (\d+) to buy and sell for (\d+)$`, pc.theItemShouldCostToBuyAndSellFor)
	ctx.Step(`^the item should be unknown$`, pc.theItemShouldBeUnknown)
	ctx.Step(`^the lookup should fail because no prices are stored$`, pc.theLookupShouldFailBecauseNoPricesAreStored)
}
