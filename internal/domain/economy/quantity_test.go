package economy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dstapl/osrs-gph/internal/domain/economy"
)

func TestUpdateRecipeNumber(t *testing.T) {
	tests := []struct {
		name     string
		perHour  int64
		capital  int64
		cost     int64
		mode     economy.TimeMode
		expected int64
	}{
		{name: "single hour limited by rate", perHour: 1000, capital: 10_000_000, cost: 4256, mode: economy.SingleHour, expected: 1000},
		{name: "single hour limited by capital", perHour: 1000, capital: 425_600, cost: 4256, mode: economy.SingleHour, expected: 100},
		{name: "single hour unknown rate", perHour: 0, capital: 10_000, cost: 100, mode: economy.SingleHour, expected: 100},
		{name: "unaffordable is still one", perHour: 1000, capital: 10, cost: 4256, mode: economy.SingleHour, expected: 1},
		{name: "max hours spans full hours", perHour: 1000, capital: 1571 * 4256, cost: 4256, mode: economy.MaxHours, expected: 1571},
		{name: "max hours partial hour", perHour: 100, capital: 25_000, cost: 100, mode: economy.MaxHours, expected: 250},
		{name: "max hours unknown rate", perHour: 0, capital: 1000, cost: 10, mode: economy.MaxHours, expected: 100},
		{name: "free recipe runs at rate", perHour: 1200, capital: 0, cost: 0, mode: economy.SingleHour, expected: 1200},
		{name: "free recipe without rate cannot run", perHour: 0, capital: 1000, cost: 0, mode: economy.MaxHours, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			number, err := economy.UpdateRecipeNumber(tt.perHour, tt.capital, tt.cost, tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, number)
		})
	}
}

func TestUpdateRecipeNumber_MaxHoursNeverExceedsCapital(t *testing.T) {
	for _, capital := range []int64{1, 99, 1000, 123_456, 9_999_999} {
		number, err := economy.UpdateRecipeNumber(37, capital, 100, economy.MaxHours)
		require.NoError(t, err)
		if capital >= 100 {
			assert.LessOrEqual(t, number*100, capital)
		}
		assert.GreaterOrEqual(t, number, int64(1))
	}
}

func TestUpdateRecipeNumber_RejectsNegatives(t *testing.T) {
	_, err := economy.UpdateRecipeNumber(10, -1, 10, economy.SingleHour)
	assert.ErrorIs(t, err, economy.ErrNegativeCapital)

	_, err = economy.UpdateRecipeNumber(10, 100, -5, economy.SingleHour)
	assert.ErrorIs(t, err, economy.ErrNegativeCost)
}

func TestParseTimeMode(t *testing.T) {
	mode, err := economy.ParseTimeMode("max_hours")
	require.NoError(t, err)
	assert.Equal(t, economy.MaxHours, mode)

	mode, err = economy.ParseTimeMode(" Single_Hour ")
	require.NoError(t, err)
	assert.Equal(t, economy.SingleHour, mode)
	assert.Equal(t, "single_hour", mode.String())

	_, err = economy.ParseTimeMode("fortnight")
	assert.ErrorIs(t, err, economy.ErrInvalidTimeMode)
}
