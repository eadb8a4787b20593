package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dstapl/osrs-gph/internal/application/mediator"
	profitQueries "github.com/dstapl/osrs-gph/internal/application/profit/queries"
	"github.com/dstapl/osrs-gph/internal/domain/profit"
	"github.com/dstapl/osrs-gph/internal/infrastructure/config"
	"github.com/dstapl/osrs-gph/test/helpers"
)

func rankedRow(name string) profit.OverviewRow {
	timeSec := 3.6
	return profit.NewOverviewRow(profit.RowParams{
		Name:    name,
		Cost:    100,
		Revenue: 200,
		Profit:  100,
		TimeSec: &timeSec,
		Number:  1000,
	})
}

func TestLookupTargets_TopThenSpecific(t *testing.T) {
	mock := helpers.NewMockMediator()
	var sentLimit int
	mock.SetSendFunc(func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		query, ok := request.(*profitQueries.ComputeOverviewsQuery)
		require.True(t, ok)
		sentLimit = query.Limit
		return &profitQueries.ComputeOverviewsResponse{
			Rows:  []profit.OverviewRow{rankedRow("Humidify Clay"), rankedRow("Spin Flax")},
			Total: 2,
		}, nil
	})

	cfg := config.DefaultConfig()
	cfg.Display.Lookup.Top = 2
	cfg.Display.Lookup.Specific = []string{"Superheat Gold"}

	a := &app{cfg: cfg, mediator: mock}
	settings, err := cfg.ProfitSettings()
	require.NoError(t, err)

	names, err := a.lookupTargets(context.Background(), nil, nil, settings)
	require.NoError(t, err)

	assert.Equal(t, []string{"Humidify Clay", "Spin Flax", "Superheat Gold"}, names)
	assert.Equal(t, 2, sentLimit)
	assert.Len(t, mock.GetCallLog(), 1)
}

func TestLookupTargets_NoTopSkipsRanking(t *testing.T) {
	mock := helpers.NewMockMediator()

	cfg := config.DefaultConfig()
	cfg.Display.Lookup.Top = 0
	cfg.Display.Lookup.Specific = []string{"Spin Flax"}

	a := &app{cfg: cfg, mediator: mock}
	settings, err := cfg.ProfitSettings()
	require.NoError(t, err)

	names, err := a.lookupTargets(context.Background(), nil, nil, settings)
	require.NoError(t, err)

	assert.Equal(t, []string{"Spin Flax"}, names)
	assert.Empty(t, mock.GetCallLog())
}

func TestLookupTargets_MediatorError(t *testing.T) {
	mock := helpers.NewMockMediator()

	cfg := config.DefaultConfig()
	cfg.Display.Lookup.Top = 3

	a := &app{cfg: cfg, mediator: mock}
	settings, err := cfg.ProfitSettings()
	require.NoError(t, err)

	_, err = a.lookupTargets(context.Background(), nil, nil, settings)
	assert.ErrorContains(t, err, "unsupported request type")
}

func TestOutputTarget(t *testing.T) {
	cmd := &cobra.Command{}
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	t.Run("dash writes to stdout", func(t *testing.T) {
		w, closeOut, err := outputTarget(cmd, "-")
		require.NoError(t, err)
		assert.Same(t, &buf, w)
		assert.NoError(t, closeOut())
	})

	t.Run("file path creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "results", "overview.md")

		w, closeOut, err := outputTarget(cmd, path)
		require.NoError(t, err)
		_, err = w.Write([]byte("| Method |\n"))
		require.NoError(t, err)
		require.NoError(t, closeOut())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "| Method |\n", string(data))
	})
}
