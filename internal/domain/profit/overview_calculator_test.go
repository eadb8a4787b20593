package profit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dstapl/osrs-gph/internal/domain/economy"
	"github.com/dstapl/osrs-gph/internal/domain/market"
	"github.com/dstapl/osrs-gph/internal/domain/profit"
	"github.com/dstapl/osrs-gph/internal/domain/recipe"
	"github.com/dstapl/osrs-gph/test/helpers"
)

func newCalculator(t *testing.T, items []*market.Item, settings profit.Settings) *profit.OverviewCalculator {
	t.Helper()
	calc, err := profit.NewOverviewCalculator(helpers.MustCatalogue(t, items...), settings)
	require.NoError(t, err)
	return calc
}

func TestOverview_HumidifyClayMaxHours(t *testing.T) {
	// Arrange
	settings := profit.DefaultSettings(helpers.HumidifyClayCapital)
	settings.TimeMode = economy.MaxHours
	calc := newCalculator(t, helpers.HumidifyClayItems(t), settings)

	// Act
	row, err := calc.Overview(helpers.HumidifyClay(t))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Humidify Clay", row.Name())
	assert.Equal(t, int64(4256), row.Cost())
	assert.Equal(t, int64(4631), row.Revenue())
	assert.Equal(t, int64(375), row.Profit())
	assert.Equal(t, int64(1571), row.Number())
	assert.Equal(t, 1.57, row.TotalTimeHours())
	assert.Equal(t, int64(589_125), row.TotalGP())
	assert.Equal(t, int64(375_000), row.GPH())

	secs, ok := row.TimeSec()
	require.True(t, ok)
	assert.InDelta(t, 3.6, secs, 1e-9)
}

func TestOverview_SingleHourCapsAtHourlyRate(t *testing.T) {
	calc := newCalculator(t, helpers.HumidifyClayItems(t), profit.DefaultSettings(10_000_000))

	row, err := calc.Overview(helpers.HumidifyClay(t))

	require.NoError(t, err)
	assert.Equal(t, int64(1000), row.Number())
	assert.Equal(t, economy.SingleHour, row.TimeMode())
}

func TestOverview_BuyLimitCeiling(t *testing.T) {
	items := []*market.Item{
		helpers.CreateLimitedItem(t, 434, "Clay", 150, 148, 13000),
		helpers.CreateTestItem(t, 1761, "Soft clay", 178, 175),
		helpers.CreateTestItem(t, 9075, "Astral rune", 206, 200),
	}
	calc := newCalculator(t, items, profit.DefaultSettings(10_000_000))

	row, err := calc.Overview(helpers.HumidifyClay(t))

	require.NoError(t, err)
	// floor(13000 / 27) / 4
	assert.Equal(t, int64(120), row.Number())
}

func TestOverview_PayOnceInputs(t *testing.T) {
	items := append(helpers.HumidifyClayItems(t), helpers.CreateTestItem(t, 9084, "Lunar staff", 5000, 4800))
	calc := newCalculator(t, items, profit.DefaultSettings(10_000_000))

	r := helpers.MustRecipe(t, recipe.Definition{
		Name:    "Humidify Clay",
		Inputs:  map[string]float64{"Clay": 27, "Astral rune": 1},
		PayOnce: map[string]float64{"Lunar staff": 1},
		Outputs: map[string]float64{"Soft clay": 27},
		Time:    recipe.KnownTicks(6),
	})

	row, err := calc.Overview(r)

	require.NoError(t, err)
	payOnce, ok := row.PayOnceTotal()
	require.True(t, ok)
	assert.Equal(t, int64(5000), payOnce)
	assert.Equal(t, int64(4256), row.Cost())
	assert.Equal(t, int64(9256), row.UpfrontCost())
	assert.Equal(t, int64(1000), row.Number())
	assert.Equal(t, int64(375_000), row.TotalGP())
	assert.Equal(t, int64(370_000), row.NetGP())
}

func TestOverview_PayOnceReducesSolverCapital(t *testing.T) {
	items := append(helpers.HumidifyClayItems(t), helpers.CreateTestItem(t, 9084, "Lunar staff", 5000, 4800))
	// Exactly enough for the staff and ten casts
	calc := newCalculator(t, items, profit.DefaultSettings(5000+10*4256))

	r := helpers.MustRecipe(t, recipe.Definition{
		Name:    "Humidify Clay",
		Inputs:  map[string]float64{"Clay": 27, "Astral rune": 1},
		PayOnce: map[string]float64{"Lunar staff": 1},
		Outputs: map[string]float64{"Soft clay": 27},
		Time:    recipe.KnownTicks(6),
	})

	row, err := calc.Overview(r)

	require.NoError(t, err)
	assert.Equal(t, int64(10), row.Number())
}

func TestOverview_TimeResolution(t *testing.T) {
	perHour := func(n float64) *float64 { return &n }

	tests := []struct {
		name          string
		time          recipe.Time
		numberPerHour *float64
		mode          economy.TimeMode
		expectedSec   float64
		expectedNum   int64
	}{
		{name: "ticks only", time: recipe.KnownTicks(6), expectedSec: 3.6, expectedNum: 1000},
		{name: "override only", time: recipe.UnknownTime(), numberPerHour: perHour(500), expectedSec: 7.2, expectedNum: 500},
		{name: "slower override wins", time: recipe.KnownTicks(6), numberPerHour: perHour(500), expectedSec: 7.2, expectedNum: 500},
		{name: "slower ticks win", time: recipe.KnownTicks(12), numberPerHour: perHour(1000), expectedSec: 7.2, expectedNum: 500},
		{name: "max hours uses the override rate", time: recipe.KnownTicks(6), numberPerHour: perHour(500), mode: economy.MaxHours, expectedSec: 7.2, expectedNum: 2349},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := profit.DefaultSettings(10_000_000)
			settings.TimeMode = tt.mode
			calc := newCalculator(t, helpers.HumidifyClayItems(t), settings)

			r := helpers.MustRecipe(t, recipe.Definition{
				Name:          "Humidify Clay",
				Inputs:        map[string]float64{"Clay": 27, "Astral rune": 1},
				Outputs:       map[string]float64{"Soft clay": 27},
				Time:          tt.time,
				NumberPerHour: tt.numberPerHour,
			})

			row, err := calc.Overview(r)

			require.NoError(t, err)
			secs, _ := row.TimeSec()
			assert.InDelta(t, tt.expectedSec, secs, 1e-9)
			assert.Equal(t, tt.expectedNum, row.Number())
		})
	}
}

func TestOverview_NoTimeData(t *testing.T) {
	calc := newCalculator(t, helpers.HumidifyClayItems(t), profit.DefaultSettings(10_000_000))

	r := helpers.MustRecipe(t, recipe.Definition{
		Name:    "Mystery",
		Inputs:  map[string]float64{"Clay": 1},
		Outputs: map[string]float64{"Soft clay": 1},
		Time:    recipe.UnknownTime(),
	})

	_, err := calc.Overview(r)

	assert.ErrorIs(t, err, profit.ErrNoTimeData)
	assert.True(t, profit.IsSkippable(err))
	assert.Equal(t, "no_time_data", profit.SkipReason(err))
}

func TestOverview_UnresolvableIngredient(t *testing.T) {
	calc := newCalculator(t, helpers.HumidifyClayItems(t), profit.DefaultSettings(10_000_000))

	r := helpers.MustRecipe(t, recipe.Definition{
		Name:    "Wet clay",
		Inputs:  map[string]float64{"Clay": 1, "Bucket of water": 1},
		Outputs: map[string]float64{"Soft clay": 1},
		Time:    recipe.KnownTicks(3),
	})

	_, err := calc.Overview(r)
	assert.ErrorIs(t, err, profit.ErrIncompleteData)

	_, err = calc.Breakdown(r)
	assert.ErrorIs(t, err, profit.ErrIncompleteData)
}

func TestOverview_UnpricedOutput(t *testing.T) {
	unsold, err := market.NewItem(1761, "Soft clay", false, helpers.Price(178), nil, nil)
	require.NoError(t, err)
	items := []*market.Item{
		helpers.CreateTestItem(t, 434, "Clay", 150, 148),
		helpers.CreateTestItem(t, 9075, "Astral rune", 206, 200),
		unsold,
	}
	calc := newCalculator(t, items, profit.DefaultSettings(10_000_000))

	_, err = calc.Overview(helpers.HumidifyClay(t))

	assert.ErrorIs(t, err, profit.ErrIncompleteData)
	assert.Equal(t, "incomplete_data", profit.SkipReason(err))
}

func TestOverview_CoinsOutput(t *testing.T) {
	calc := newCalculator(t, helpers.HumidifyClayItems(t), profit.DefaultSettings(10_000_000))

	r := helpers.MustRecipe(t, recipe.Definition{
		Name:    "Sell clay",
		Inputs:  map[string]float64{"Clay": 1},
		Outputs: map[string]float64{"Coins": 160},
		Time:    recipe.KnownTicks(1),
	})

	row, err := calc.Overview(r)

	require.NoError(t, err)
	// 160 coins is taxed like any other sale
	assert.Equal(t, int64(157), row.Revenue())
	assert.Equal(t, int64(7), row.Profit())
}

func TestNewOverviewCalculator_RejectsBadSettings(t *testing.T) {
	catalogue := helpers.MustCatalogue(t, helpers.HumidifyClayItems(t)...)

	_, err := profit.NewOverviewCalculator(catalogue, profit.DefaultSettings(-1))
	assert.ErrorIs(t, err, profit.ErrInvalidConfig)

	settings := profit.DefaultSettings(100)
	settings.PercentMargin = 100
	_, err = profit.NewOverviewCalculator(catalogue, settings)
	assert.ErrorIs(t, err, profit.ErrInvalidConfig)

	_, err = profit.NewOverviewCalculator(nil, profit.DefaultSettings(100))
	assert.ErrorIs(t, err, profit.ErrInvalidConfig)
}
