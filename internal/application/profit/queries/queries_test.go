package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dstapl/osrs-gph/internal/application/profit/queries"
	"github.com/dstapl/osrs-gph/internal/application/profit/services"
	"github.com/dstapl/osrs-gph/internal/domain/profit"
	"github.com/dstapl/osrs-gph/internal/domain/recipe"
	"github.com/dstapl/osrs-gph/test/helpers"
)

func testBook(t *testing.T) *recipe.Book {
	t.Helper()
	return helpers.MustBook(t,
		helpers.HumidifyClay(t),
		helpers.MustRecipe(t, recipe.Definition{
			Name:    "Soften one clay",
			Inputs:  map[string]float64{"Clay": 1},
			Outputs: map[string]float64{"Soft clay": 1},
			Time:    recipe.KnownTicks(2),
		}),
		helpers.MustRecipe(t, recipe.Definition{
			Name:    "Fill bucket",
			Inputs:  map[string]float64{"Bucket": 1},
			Outputs: map[string]float64{"Bucket of water": 1},
			Time:    recipe.KnownTicks(1),
		}),
	)
}

func TestComputeOverviewsHandler_Limit(t *testing.T) {
	// Arrange
	handler := queries.NewComputeOverviewsHandler(services.NewOverviewService(1))
	settings := profit.DefaultSettings(10_000_000)
	settings.Ranking.SortBy = profit.SortByProfit
	settings.Ranking.Reverse = false

	// Act
	resp, err := handler.Handle(context.Background(), &queries.ComputeOverviewsQuery{
		Recipes:  testBook(t),
		Items:    helpers.MustCatalogue(t, helpers.HumidifyClayItems(t)...),
		Settings: settings,
		Limit:    1,
	})

	// Assert
	require.NoError(t, err)
	result := resp.(*queries.ComputeOverviewsResponse)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "Humidify Clay", result.Rows[0].Name())
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 2, result.Evaluated)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "Fill bucket", result.Skipped[0].Name)
}

func TestComputeOverviewsHandler_Errors(t *testing.T) {
	handler := queries.NewComputeOverviewsHandler(services.NewOverviewService(1))

	_, err := handler.Handle(context.Background(), &queries.ComputeBreakdownQuery{})
	assert.Error(t, err)

	_, err = handler.Handle(context.Background(), &queries.ComputeOverviewsQuery{Settings: profit.DefaultSettings(1)})
	assert.ErrorIs(t, err, profit.ErrInvalidConfig)
}

func TestComputeBreakdownHandler(t *testing.T) {
	// Arrange
	handler := queries.NewComputeBreakdownHandler(services.NewOverviewService(1))

	// Act
	resp, err := handler.Handle(context.Background(), &queries.ComputeBreakdownQuery{
		RecipeNames: []string{"Humidify Clay", "Fill bucket", "Plank Make", "Humidify Clay"},
		Recipes:     testBook(t),
		Items:       helpers.MustCatalogue(t, helpers.HumidifyClayItems(t)...),
		Settings:    profit.DefaultSettings(10_000_000),
	})

	// Assert
	require.NoError(t, err)
	result := resp.(*queries.ComputeBreakdownResponse)
	require.Len(t, result.Breakdowns, 3)

	assert.True(t, result.Breakdowns[0].Found())
	assert.Equal(t, int64(375), result.Breakdowns[0].Table.Row().Profit())

	assert.False(t, result.Breakdowns[1].Found())
	assert.Equal(t, "incomplete_data", result.Breakdowns[1].Reason)

	assert.False(t, result.Breakdowns[2].Found())
	assert.Equal(t, "Plank Make", result.Breakdowns[2].Recipe)
	assert.Equal(t, recipe.ErrRecipeNotFound.Error(), result.Breakdowns[2].Reason)
}

func TestComputeBreakdownHandler_InvalidSettingsFail(t *testing.T) {
	handler := queries.NewComputeBreakdownHandler(services.NewOverviewService(1))

	_, err := handler.Handle(context.Background(), &queries.ComputeBreakdownQuery{
		RecipeNames: []string{"Humidify Clay"},
		Recipes:     testBook(t),
		Items:       helpers.MustCatalogue(t, helpers.HumidifyClayItems(t)...),
		Settings:    profit.DefaultSettings(-1),
	})

	assert.ErrorIs(t, err, profit.ErrInvalidConfig)
}
