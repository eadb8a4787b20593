package queries

import (
	"context"
	"fmt"
	"strings"

	"github.com/dstapl/osrs-gph/internal/application/mediator"
	"github.com/dstapl/osrs-gph/internal/domain/market"
)

// GetItemPricesQuery looks up items in the stored snapshot
type GetItemPricesQuery struct {
	Names  []string
	Ignore []string
}

// ItemPrice is one looked-up item; Item is nil when the name is unknown
type ItemPrice struct {
	Name string
	Item *market.Item
}

// GetItemPricesResponse lists results in request order
type GetItemPricesResponse struct {
	Prices   []ItemPrice
	Timespan market.Timespan
}

// GetItemPricesHandler handles the GetItemPrices query
type GetItemPricesHandler struct {
	repo market.SnapshotRepository
}

// NewGetItemPricesHandler creates a new GetItemPricesHandler
func NewGetItemPricesHandler(repo market.SnapshotRepository) *GetItemPricesHandler {
	return &GetItemPricesHandler{repo: repo}
}

// Handle executes the GetItemPrices query
func (h *GetItemPricesHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetItemPricesQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetItemPricesQuery")
	}
	if len(query.Names) == 0 {
		return nil, fmt.Errorf("at least one item name is required")
	}

	snapshot, err := h.repo.LoadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load prices: %w", err)
	}
	catalogue, err := snapshot.Catalogue(query.Ignore)
	if err != nil {
		return nil, err
	}

	response := &GetItemPricesResponse{Timespan: snapshot.Timespan()}
	for _, name := range query.Names {
		name = strings.TrimSpace(name)
		item, _ := catalogue.LookupItem(name)
		response.Prices = append(response.Prices, ItemPrice{Name: name, Item: item})
	}
	return response, nil
}
