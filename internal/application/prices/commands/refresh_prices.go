package commands

import (
	"context"
	"fmt"

	"github.com/dstapl/osrs-gph/internal/application/common"
	"github.com/dstapl/osrs-gph/internal/application/mediator"
	"github.com/dstapl/osrs-gph/internal/domain/market"
)

// RefreshPricesCommand fetches a fresh snapshot and replaces the stored one
type RefreshPricesCommand struct {
	Timespan market.Timespan
}

// RefreshPricesResponse describes the stored snapshot
type RefreshPricesResponse struct {
	Items     int
	Priced    int // Items with both a buy and a sell price
	Timespan  market.Timespan
	FetchedAt string
}

// RefreshPricesHandler handles the RefreshPrices command
type RefreshPricesHandler struct {
	source market.PriceSource
	repo   market.SnapshotRepository
}

// NewRefreshPricesHandler creates a new RefreshPricesHandler
func NewRefreshPricesHandler(source market.PriceSource, repo market.SnapshotRepository) *RefreshPricesHandler {
	return &RefreshPricesHandler{
		source: source,
		repo:   repo,
	}
}

// Handle executes the RefreshPrices command
func (h *RefreshPricesHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*RefreshPricesCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *RefreshPricesCommand")
	}

	timespan := cmd.Timespan
	if timespan == "" {
		timespan = market.TimespanLatest
	}

	logger := common.LoggerFromContext(ctx)
	logger.Info("fetching prices", "timespan", timespan)

	snapshot, err := h.source.FetchSnapshot(ctx, timespan)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch prices: %w", err)
	}

	if err := h.repo.ReplaceSnapshot(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("failed to store prices: %w", err)
	}

	items := snapshot.Items()
	priced := 0
	for _, item := range items {
		_, hasBuy := item.BuyPrice()
		_, hasSell := item.SellPrice()
		if hasBuy && hasSell {
			priced++
		}
	}

	logger.Info("stored price snapshot", "items", len(items), "priced", priced, "timespan", timespan)

	return &RefreshPricesResponse{
		Items:     len(items),
		Priced:    priced,
		Timespan:  snapshot.Timespan(),
		FetchedAt: snapshot.FetchedAt().Format("2006-01-02 15:04:05 MST"),
	}, nil
}
