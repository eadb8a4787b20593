package api_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dstapl/osrs-gph/internal/adapters/api"
)

func i64(v int64) *int64 { return &v }

func TestToItems(t *testing.T) {
	mapping := []api.MappingEntry{
		{ID: 1761, Name: "Soft clay", Limit: i64(13000)},
		{ID: 434, Name: "Clay", Limit: i64(13000)},
		{ID: 5000, Name: "clay"},
		{ID: 6000, Name: "  "},
		{ID: 7000, Name: "Overpriced", Limit: i64(1)},
		{ID: 8000, Name: "Unpriced", Members: true},
	}
	prices := map[int]api.PricePoint{
		434:  {High: i64(150), Low: i64(148)},
		1761: {High: i64(178), Low: i64(175)},
		5000: {High: i64(1), Low: i64(1)},
		7000: {High: i64(math.MaxInt32 + 1), Low: i64(5)},
	}

	items, dropped := api.ToItems(mapping, prices)

	assert.Equal(t, 3, dropped)
	require.Len(t, items, 3)
	assert.Equal(t, "Clay", items[0].Name())
	assert.Equal(t, 434, items[0].ID())
	assert.Equal(t, "Soft clay", items[1].Name())

	unpriced := items[2]
	assert.Equal(t, "Unpriced", unpriced.Name())
	assert.True(t, unpriced.Members())
	_, ok := unpriced.SellPrice()
	assert.False(t, ok)
}
