package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dstapl/osrs-gph/internal/application/prices/queries"
	"github.com/dstapl/osrs-gph/internal/domain/market"
	"github.com/dstapl/osrs-gph/test/helpers"
)

func TestGetItemPricesHandler(t *testing.T) {
	// Arrange
	snapshot := market.NewSnapshot(helpers.HumidifyClayItems(t), market.TimespanFiveMinute, helpers.FixedTime)
	handler := queries.NewGetItemPricesHandler(helpers.NewMockSnapshotRepository(snapshot))

	// Act
	resp, err := handler.Handle(context.Background(), &queries.GetItemPricesQuery{
		Names:  []string{"soft clay", " Coins ", "Dragon bones", "Clay"},
		Ignore: []string{"Clay"},
	})

	// Assert
	require.NoError(t, err)
	result := resp.(*queries.GetItemPricesResponse)
	assert.Equal(t, market.TimespanFiveMinute, result.Timespan)
	require.Len(t, result.Prices, 4)

	require.NotNil(t, result.Prices[0].Item)
	assert.Equal(t, "Soft clay", result.Prices[0].Item.Name())
	assert.Equal(t, "Coins", result.Prices[1].Name)
	require.NotNil(t, result.Prices[1].Item)
	assert.Nil(t, result.Prices[2].Item)
	assert.Nil(t, result.Prices[3].Item)
}

func TestGetItemPricesHandler_Errors(t *testing.T) {
	handler := queries.NewGetItemPricesHandler(helpers.NewMockSnapshotRepository(nil))

	_, err := handler.Handle(context.Background(), &queries.GetItemPricesQuery{})
	assert.Error(t, err)

	_, err = handler.Handle(context.Background(), &queries.GetItemPricesQuery{Names: []string{"Clay"}})
	assert.ErrorIs(t, err, market.ErrEmptyCatalogue)
}
