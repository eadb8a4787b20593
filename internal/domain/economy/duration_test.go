package economy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dstapl/osrs-gph/internal/domain/economy"
)

func TestRecipeTimeHours(t *testing.T) {
	t.Run("per execution profit", func(t *testing.T) {
		hours, gph := economy.RecipeTimeHours(3.6, 1571, 375, false)
		assert.Equal(t, 1.57, hours)
		assert.Equal(t, int64(375_000), gph)
	})

	t.Run("batch profit over batch hours", func(t *testing.T) {
		hours, gph := economy.RecipeTimeHours(3.6, 1000, 375_000, true)
		assert.Equal(t, 1.0, hours)
		assert.Equal(t, int64(375_000), gph)
	})

	t.Run("rounding to zero hours yields zero gph", func(t *testing.T) {
		hours, gph := economy.RecipeTimeHours(1.8, 1, 100, true)
		assert.Equal(t, 0.0, hours)
		assert.Equal(t, int64(0), gph)
	})
}

func TestExecutionsPerHour(t *testing.T) {
	// 6 ticks of 0.6 s is 3.5999999999999996 in binary
	assert.Equal(t, int64(1000), economy.ExecutionsPerHour(6*economy.DefaultSecondsPerTick))
	assert.Equal(t, int64(1000), economy.ExecutionsPerHour(3.6))
	assert.Equal(t, int64(1029), economy.ExecutionsPerHour(3.5))
	assert.Equal(t, int64(0), economy.ExecutionsPerHour(0))
}

func TestSecondsPerExecution(t *testing.T) {
	assert.Equal(t, 3.6, economy.SecondsPerExecution(1000))
	assert.Equal(t, 0.0, economy.SecondsPerExecution(0))
}

func TestFloor(t *testing.T) {
	assert.Equal(t, int64(29), economy.Floor(0.29*100))
	assert.Equal(t, int64(2), economy.Floor(2.9))
	assert.Equal(t, int64(-3), economy.Floor(-2.5))
}
