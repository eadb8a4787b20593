package config

import (
	"time"

	"github.com/spf13/viper"

	"github.com/dstapl/osrs-gph/internal/domain/economy"
	"github.com/dstapl/osrs-gph/internal/domain/profit"
)

const (
	defaultBaseURL   = "https://prices.runescape.wiki/api/v1/osrs"
	defaultUserAgent = "osrs-gph/1.0 (profit calculator)"
)

// DefaultConfig returns a fully populated configuration
func DefaultConfig() *Config {
	pref := profit.DefaultPreference()

	return &Config{
		Profit: ProfitConfig{
			Coins:         2_000_000,
			PercentMargin: 2.5,
			TimeMode:      economy.SingleHour.String(),
			Weights: WeightsConfig{
				Margin: pref.Margin,
				Time:   pref.Time,
				GPH:    pref.GPH,
			},
		},
		Display: DisplayConfig{
			Number:     40,
			Lookup:     LookupConfig{Top: 3},
			MustProfit: true,
			ShowHidden: false,
			Reverse:    true,
			Membership: "both",
			SortBy:     "custom",
		},
		Economy: EconomyConfig{
			TaxPercent:      economy.DefaultTaxPercent,
			FeeCap:          economy.DefaultFeeCap,
			TaxThreshold:    economy.DefaultTaxThreshold,
			SessionCapHours: economy.DefaultSessionCapHours,
			BuyLimitDivisor: economy.DefaultBuyLimitDivisor,
			SecondsPerTick:  economy.DefaultSecondsPerTick,
		},
		API: APIConfig{
			BaseURL:   defaultBaseURL,
			Timespan:  "latest",
			UserAgent: defaultUserAgent,
			Timeout:   30 * time.Second,
			RateLimit: RateLimitConfig{Requests: 1, Burst: 2},
			Retry:     RetryConfig{MaxAttempts: 3, BackoffBase: time.Second},
			CircuitBreaker: CircuitBreakerConfig{
				MaxFailures: 5,
				Timeout:     time.Minute,
			},
		},
		Database: DatabaseConfig{
			Type:    "sqlite",
			Path:    "data/osrs-gph.db",
			Host:    "localhost",
			Port:    5432,
			User:    "osrs",
			Name:    "osrs_gph",
			SSLMode: "disable",
			Pool: PoolConfig{
				MaxOpen:     10,
				MaxIdle:     2,
				MaxLifetime: 5 * time.Minute,
			},
		},
		Filepaths: FilepathsConfig{
			Recipes: "data/recipes.yaml",
			Results: ResultsConfig{
				Overview: "results/overview.md",
				Lookup:   "results/lookup.md",
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
			Rotation: RotationConfig{
				MaxSize:    100, // MB
				MaxBackups: 3,
				MaxAge:     28, // days
			},
		},
		Metrics: MetricsConfig{
			Enabled:  false,
			Textfile: "results/osrs_gph.prom",
		},
	}
}

// SetDefaults fills values that cannot meaningfully be zero or empty.
// Zero-valid settings such as percent_margin come from registerDefaults instead.
func SetDefaults(cfg *Config) {
	d := DefaultConfig()

	if cfg.Profit.TimeMode == "" {
		cfg.Profit.TimeMode = d.Profit.TimeMode
	}

	if cfg.Display.Number == 0 {
		cfg.Display.Number = d.Display.Number
	}
	if cfg.Display.Membership == "" {
		cfg.Display.Membership = d.Display.Membership
	}
	if cfg.Display.SortBy == "" {
		cfg.Display.SortBy = d.Display.SortBy
	}

	if cfg.Economy.SessionCapHours == 0 {
		cfg.Economy.SessionCapHours = d.Economy.SessionCapHours
	}
	if cfg.Economy.BuyLimitDivisor == 0 {
		cfg.Economy.BuyLimitDivisor = d.Economy.BuyLimitDivisor
	}
	if cfg.Economy.SecondsPerTick == 0 {
		cfg.Economy.SecondsPerTick = d.Economy.SecondsPerTick
	}

	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = d.API.BaseURL
	}
	if cfg.API.Timespan == "" {
		cfg.API.Timespan = d.API.Timespan
	}
	if cfg.API.UserAgent == "" {
		cfg.API.UserAgent = d.API.UserAgent
	}
	if cfg.API.Timeout == 0 {
		cfg.API.Timeout = d.API.Timeout
	}
	if cfg.API.RateLimit.Requests == 0 {
		cfg.API.RateLimit.Requests = d.API.RateLimit.Requests
	}
	if cfg.API.RateLimit.Burst == 0 {
		cfg.API.RateLimit.Burst = d.API.RateLimit.Burst
	}
	if cfg.API.Retry.BackoffBase == 0 {
		cfg.API.Retry.BackoffBase = d.API.Retry.BackoffBase
	}
	if cfg.API.CircuitBreaker.MaxFailures == 0 {
		cfg.API.CircuitBreaker.MaxFailures = d.API.CircuitBreaker.MaxFailures
	}
	if cfg.API.CircuitBreaker.Timeout == 0 {
		cfg.API.CircuitBreaker.Timeout = d.API.CircuitBreaker.Timeout
	}

	if cfg.Database.Type == "" {
		cfg.Database.Type = d.Database.Type
	}
	if cfg.Database.Type == "sqlite" && cfg.Database.Path == "" {
		cfg.Database.Path = d.Database.Path
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = d.Database.Pool.MaxOpen
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = d.Database.Pool.MaxIdle
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = d.Database.Pool.MaxLifetime
	}

	if cfg.Filepaths.Recipes == "" {
		cfg.Filepaths.Recipes = d.Filepaths.Recipes
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = d.Logging.Level
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = d.Logging.Format
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = d.Logging.Output
	}
	if cfg.Logging.Rotation.MaxSize == 0 {
		cfg.Logging.Rotation.MaxSize = d.Logging.Rotation.MaxSize
	}

	if cfg.Metrics.Enabled && cfg.Metrics.Textfile == "" {
		cfg.Metrics.Textfile = d.Metrics.Textfile
	}
}

func registerDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("profit.coins", d.Profit.Coins)
	v.SetDefault("profit.percent_margin", d.Profit.PercentMargin)
	v.SetDefault("profit.time_mode", d.Profit.TimeMode)
	v.SetDefault("profit.weights.margin", d.Profit.Weights.Margin)
	v.SetDefault("profit.weights.time", d.Profit.Weights.Time)
	v.SetDefault("profit.weights.gph", d.Profit.Weights.GPH)
	v.SetDefault("profit.ignore_items", []string{})
	v.SetDefault("profit.ignore_recipes", []string{})

	v.SetDefault("display.number", d.Display.Number)
	v.SetDefault("display.lookup.top", d.Display.Lookup.Top)
	v.SetDefault("display.lookup.specific", []string{})
	v.SetDefault("display.must_profit", d.Display.MustProfit)
	v.SetDefault("display.show_hidden", d.Display.ShowHidden)
	v.SetDefault("display.reverse", d.Display.Reverse)
	v.SetDefault("display.membership", d.Display.Membership)
	v.SetDefault("display.sort_by", d.Display.SortBy)

	v.SetDefault("economy.tax_percent", d.Economy.TaxPercent)
	v.SetDefault("economy.fee_cap", d.Economy.FeeCap)
	v.SetDefault("economy.tax_threshold", d.Economy.TaxThreshold)
	v.SetDefault("economy.session_cap_hours", d.Economy.SessionCapHours)
	v.SetDefault("economy.buy_limit_divisor", d.Economy.BuyLimitDivisor)
	v.SetDefault("economy.seconds_per_tick", d.Economy.SecondsPerTick)

	v.SetDefault("api.base_url", d.API.BaseURL)
	v.SetDefault("api.timespan", d.API.Timespan)
	v.SetDefault("api.user_agent", d.API.UserAgent)
	v.SetDefault("api.timeout", d.API.Timeout)
	v.SetDefault("api.rate_limit.requests", d.API.RateLimit.Requests)
	v.SetDefault("api.rate_limit.burst", d.API.RateLimit.Burst)
	v.SetDefault("api.retry.max_attempts", d.API.Retry.MaxAttempts)
	v.SetDefault("api.retry.backoff_base", d.API.Retry.BackoffBase)
	v.SetDefault("api.circuit_breaker.max_failures", d.API.CircuitBreaker.MaxFailures)
	v.SetDefault("api.circuit_breaker.timeout", d.API.CircuitBreaker.Timeout)

	v.SetDefault("database.type", d.Database.Type)
	v.SetDefault("database.path", d.Database.Path)
	v.SetDefault("database.url", "")
	v.SetDefault("database.host", d.Database.Host)
	v.SetDefault("database.port", d.Database.Port)
	v.SetDefault("database.user", d.Database.User)
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", d.Database.Name)
	v.SetDefault("database.sslmode", d.Database.SSLMode)
	v.SetDefault("database.pool.max_open", d.Database.Pool.MaxOpen)
	v.SetDefault("database.pool.max_idle", d.Database.Pool.MaxIdle)
	v.SetDefault("database.pool.max_lifetime", d.Database.Pool.MaxLifetime)

	v.SetDefault("filepaths.recipes", d.Filepaths.Recipes)
	v.SetDefault("filepaths.results.overview", d.Filepaths.Results.Overview)
	v.SetDefault("filepaths.results.lookup", d.Filepaths.Results.Lookup)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.output", d.Logging.Output)
	v.SetDefault("logging.file_path", "")
	v.SetDefault("logging.include_caller", false)
	v.SetDefault("logging.rotation.enabled", false)
	v.SetDefault("logging.rotation.max_size", d.Logging.Rotation.MaxSize)
	v.SetDefault("logging.rotation.max_backups", d.Logging.Rotation.MaxBackups)
	v.SetDefault("logging.rotation.max_age", d.Logging.Rotation.MaxAge)
	v.SetDefault("logging.rotation.compress", false)

	v.SetDefault("metrics.enabled", d.Metrics.Enabled)
	v.SetDefault("metrics.textfile", d.Metrics.Textfile)
}
