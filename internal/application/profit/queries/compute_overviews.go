package queries

import (
	"context"
	"fmt"

	"github.com/dstapl/osrs-gph/internal/application/mediator"
	"github.com/dstapl/osrs-gph/internal/application/profit/services"
	"github.com/dstapl/osrs-gph/internal/domain/market"
	"github.com/dstapl/osrs-gph/internal/domain/profit"
	"github.com/dstapl/osrs-gph/internal/domain/recipe"
)

// ComputeOverviewsQuery requests the ranked overview of every recipe
type ComputeOverviewsQuery struct {
	Recipes  recipe.Lookup
	Items    market.ItemLookup
	Settings profit.Settings
	Limit    int // Maximum rows to return (0 = all)
}

// ComputeOverviewsResponse contains the ranked rows
type ComputeOverviewsResponse struct {
	Rows      []profit.OverviewRow
	Total     int // Rows that passed the filters before Limit was applied
	Evaluated int
	Skipped   []services.SkippedRecipe
	Excluded  []profit.Exclusion
}

// ComputeOverviewsHandler handles overview queries
type ComputeOverviewsHandler struct {
	overviewService *services.OverviewService
}

// NewComputeOverviewsHandler creates a new handler
func NewComputeOverviewsHandler(overviewService *services.OverviewService) *ComputeOverviewsHandler {
	return &ComputeOverviewsHandler{
		overviewService: overviewService,
	}
}

// Handle executes the query
func (h *ComputeOverviewsHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*ComputeOverviewsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}
	if query.Recipes == nil || query.Items == nil {
		return nil, fmt.Errorf("%w: recipes and items are required", profit.ErrInvalidConfig)
	}

	result, err := h.overviewService.ComputeAllOverviews(ctx, query.Recipes, query.Items, query.Settings)
	if err != nil {
		return nil, fmt.Errorf("failed to compute overviews: %w", err)
	}

	rows := result.Rows
	if query.Limit > 0 && len(rows) > query.Limit {
		rows = rows[:query.Limit]
	}

	return &ComputeOverviewsResponse{
		Rows:      rows,
		Total:     len(result.Rows),
		Evaluated: result.Evaluated,
		Skipped:   result.Skipped,
		Excluded:  result.Excluded,
	}, nil
}
