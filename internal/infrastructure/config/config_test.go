package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dstapl/osrs-gph/internal/domain/economy"
	"github.com/dstapl/osrs-gph/internal/domain/market"
	"github.com/dstapl/osrs-gph/internal/domain/profit"
	"github.com/dstapl/osrs-gph/internal/infrastructure/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfig_IsValid(t *testing.T) {
	assert.NoError(t, config.ValidateConfig(config.DefaultConfig()))
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := writeConfig(t, `
profit:
  coins: 10_000_000
  percent_margin: 0
  time_mode: max_hours
  ignore_items: [Clay]
display:
  number: 10
  must_profit: false
  membership: f2p
  sort_by: gph
api:
  timespan: 1h
  retry:
    backoff_base: 250ms
database:
  type: sqlite
  path: ":memory:"
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, int64(10_000_000), cfg.Profit.Coins)
	assert.Equal(t, 0.0, cfg.Profit.PercentMargin)
	assert.Equal(t, "max_hours", cfg.Profit.TimeMode)
	assert.Equal(t, []string{"Clay"}, cfg.Profit.IgnoreItems)
	assert.Equal(t, 10, cfg.Display.Number)
	assert.False(t, cfg.Display.MustProfit)
	assert.Equal(t, "f2p", cfg.Display.Membership)
	assert.Equal(t, 250*time.Millisecond, cfg.API.Retry.BackoffBase)
	assert.Equal(t, ":memory:", cfg.Database.Path)

	// Untouched keys keep their defaults
	assert.True(t, cfg.Display.Reverse)
	assert.Equal(t, int64(economy.DefaultFeeCap), cfg.Economy.FeeCap)
	assert.Equal(t, "data/recipes.yaml", cfg.Filepaths.Recipes)

	timespan, err := cfg.Timespan()
	require.NoError(t, err)
	assert.Equal(t, market.TimespanOneHour, timespan)
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "profit:\n  coins: 1000\n")
	t.Setenv("OSRS_PROFIT_COINS", "5_000_000")
	t.Setenv("OSRS_DISPLAY_SORT_BY", "profit")

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, int64(5_000_000), cfg.Profit.Coins)
	assert.Equal(t, "profit", cfg.Display.SortBy)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		contains string
	}{
		{
			name:     "unknown membership",
			body:     "display:\n  membership: gold\n",
			contains: "Membership",
		},
		{
			name:     "unknown time mode",
			body:     "profit:\n  time_mode: forever\n",
			contains: "TimeMode",
		},
		{
			name:     "margin of 100 percent",
			body:     "profit:\n  percent_margin: 100\n",
			contains: "PercentMargin",
		},
		{
			name:     "custom sort without capital",
			body:     "profit:\n  coins: 0\ndisplay:\n  sort_by: custom\n",
			contains: "Coins",
		},
		{
			name:     "file logging without a path",
			body:     "logging:\n  output: file\n",
			contains: "FilePath",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadConfig(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigOrDefault(t *testing.T) {
	cfg := config.LoadConfigOrDefault(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestSetDefaults_FillsZeroValues(t *testing.T) {
	cfg := &config.Config{}
	config.SetDefaults(cfg)

	assert.Equal(t, "single_hour", cfg.Profit.TimeMode)
	assert.Equal(t, 40, cfg.Display.Number)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.Equal(t, int64(4), cfg.Economy.BuyLimitDivisor)
}

func TestConfig_ProfitSettings(t *testing.T) {
	cfg := config.DefaultConfig()

	settings, err := cfg.ProfitSettings()
	require.NoError(t, err)

	assert.Equal(t, int64(2_000_000), settings.Capital)
	assert.Equal(t, 2.5, settings.PercentMargin)
	assert.Equal(t, economy.SingleHour, settings.TimeMode)
	assert.Equal(t, profit.SortByCustom, settings.Ranking.SortBy)
	assert.Equal(t, profit.MembershipBoth, settings.Ranking.Membership)
	assert.True(t, settings.Ranking.MustProfit)
	assert.True(t, settings.Ranking.Reverse)

	want, err := profit.ComputeWeights(2_000_000, profit.DefaultPreference())
	require.NoError(t, err)
	assert.Equal(t, want, settings.Ranking.Weights)

	assert.Equal(t, int64(economy.DefaultFeeCap), settings.Rules.Tax.FeeCap)
	assert.Equal(t, economy.DefaultSecondsPerTick, settings.Rules.SecondsPerTick)
}

func TestConfig_ProfitSettingsNonCustomSortSkipsWeights(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Profit.Coins = 0
	cfg.Display.SortBy = "name"

	settings, err := cfg.ProfitSettings()
	require.NoError(t, err)

	assert.Equal(t, profit.Weights{}, settings.Ranking.Weights)
	assert.Equal(t, profit.SortByName, settings.Ranking.SortBy)
}
