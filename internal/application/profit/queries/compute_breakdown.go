package queries

import (
	"context"
	"errors"
	"fmt"

	"github.com/dstapl/osrs-gph/internal/application/mediator"
	"github.com/dstapl/osrs-gph/internal/application/profit/services"
	"github.com/dstapl/osrs-gph/internal/domain/market"
	"github.com/dstapl/osrs-gph/internal/domain/profit"
	"github.com/dstapl/osrs-gph/internal/domain/recipe"
)

// ComputeBreakdownQuery requests the two-scenario breakdown of named recipes
type ComputeBreakdownQuery struct {
	RecipeNames []string
	Recipes     recipe.Lookup
	Items       market.ItemLookup
	Settings    profit.Settings
}

// Breakdown is one recipe's result; Table is nil when the recipe could not be priced
type Breakdown struct {
	Recipe string
	Table  *profit.DetailedTable
	Reason string
}

// Found reports whether a table was produced
func (b Breakdown) Found() bool { return b.Table != nil }

// ComputeBreakdownResponse contains one entry per requested recipe, in request order
type ComputeBreakdownResponse struct {
	Breakdowns []Breakdown
}

// ComputeBreakdownHandler handles breakdown queries
type ComputeBreakdownHandler struct {
	overviewService *services.OverviewService
}

// NewComputeBreakdownHandler creates a new handler
func NewComputeBreakdownHandler(overviewService *services.OverviewService) *ComputeBreakdownHandler {
	return &ComputeBreakdownHandler{
		overviewService: overviewService,
	}
}

// Handle executes the query. Unknown or unpriceable recipes yield an entry
// without a table; only configuration errors fail the whole query.
func (h *ComputeBreakdownHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*ComputeBreakdownQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}
	if query.Recipes == nil || query.Items == nil {
		return nil, fmt.Errorf("%w: recipes and items are required", profit.ErrInvalidConfig)
	}

	response := &ComputeBreakdownResponse{
		Breakdowns: make([]Breakdown, 0, len(query.RecipeNames)),
	}

	seen := make(map[string]bool, len(query.RecipeNames))
	for _, name := range query.RecipeNames {
		if seen[name] {
			continue
		}
		seen[name] = true

		r, ok := query.Recipes.GetRecipe(name)
		if !ok {
			response.Breakdowns = append(response.Breakdowns, Breakdown{
				Recipe: name,
				Reason: recipe.ErrRecipeNotFound.Error(),
			})
			continue
		}

		table, err := h.overviewService.ComputeDetailedBreakdown(ctx, r, query.Items, query.Settings)
		if err != nil {
			if !profit.IsSkippable(err) && !errors.Is(err, recipe.ErrRecipeNotFound) {
				return nil, fmt.Errorf("failed to compute breakdown for %s: %w", name, err)
			}
			response.Breakdowns = append(response.Breakdowns, Breakdown{
				Recipe: name,
				Reason: profit.SkipReason(err),
			})
			continue
		}

		response.Breakdowns = append(response.Breakdowns, Breakdown{Recipe: name, Table: table})
	}

	return response, nil
}
