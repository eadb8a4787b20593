package config

// EconomyConfig holds the game's economy constants
type EconomyConfig struct {
	TaxPercent      float64 `mapstructure:"tax_percent" validate:"gte=0,lte=100"`
	FeeCap          int64   `mapstructure:"fee_cap" validate:"min=0"`
	TaxThreshold    int64   `mapstructure:"tax_threshold" validate:"min=0"`
	SessionCapHours float64 `mapstructure:"session_cap_hours" validate:"gt=0"`
	BuyLimitDivisor int64   `mapstructure:"buy_limit_divisor" validate:"min=1"`
	SecondsPerTick  float64 `mapstructure:"seconds_per_tick" validate:"gt=0"`
}
