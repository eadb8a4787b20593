package market_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dstapl/osrs-gph/internal/domain/market"
)

func price(p int32) *int32 { return &p }

func TestNewItem(t *testing.T) {
	item, err := market.NewItem(434, "Clay", false, price(150), price(148), price(13000))
	require.NoError(t, err)

	buy, ok := item.BuyPrice()
	assert.True(t, ok)
	assert.Equal(t, int32(150), buy)

	sell, ok := item.SellPrice()
	assert.True(t, ok)
	assert.Equal(t, int32(148), sell)

	limit, ok := item.PurchaseLimit()
	assert.True(t, ok)
	assert.Equal(t, int32(13000), limit)
}

func TestNewItem_UnpricedSides(t *testing.T) {
	item, err := market.NewItem(1, "Rare thing", true, nil, price(10), nil)
	require.NoError(t, err)

	_, ok := item.BuyPrice()
	assert.False(t, ok)
	_, ok = item.PurchaseLimit()
	assert.False(t, ok)
	assert.True(t, item.Members())
}

func TestNewItem_Validation(t *testing.T) {
	_, err := market.NewItem(1, "  ", false, nil, nil, nil)
	assert.ErrorIs(t, err, market.ErrInvalidItemName)

	_, err = market.NewItem(1, "Clay", false, price(-1), nil, nil)
	assert.ErrorIs(t, err, market.ErrInvalidPrice)

	_, err = market.NewItem(1, "Clay", false, nil, nil, price(-5))
	assert.ErrorIs(t, err, market.ErrInvalidPurchaseLimit)
}

func TestItem_DoesNotAliasCallerPrices(t *testing.T) {
	buy := int32(100)
	item, err := market.NewItem(1, "Clay", false, &buy, nil, nil)
	require.NoError(t, err)

	buy = 999
	got, _ := item.BuyPrice()
	assert.Equal(t, int32(100), got)
}

func TestItem_WithPrices(t *testing.T) {
	item, err := market.NewItem(1, "Clay", false, price(100), price(90), price(50))
	require.NoError(t, err)

	repriced := item.WithPrices(price(120), nil)

	buy, _ := repriced.BuyPrice()
	assert.Equal(t, int32(120), buy)
	_, ok := repriced.SellPrice()
	assert.False(t, ok)
	limit, _ := repriced.PurchaseLimit()
	assert.Equal(t, int32(50), limit)

	original, _ := item.BuyPrice()
	assert.Equal(t, int32(100), original)
}

func TestNewCoinsItem(t *testing.T) {
	coins := market.NewCoinsItem()

	assert.Equal(t, market.CoinsName, coins.Name())
	assert.Equal(t, market.CoinsID, coins.ID())
	buy, _ := coins.BuyPrice()
	sell, _ := coins.SellPrice()
	assert.Equal(t, int32(1), buy)
	assert.Equal(t, int32(1), sell)
}
