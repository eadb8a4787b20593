package config

// ProfitConfig holds the money side of the calculation
type ProfitConfig struct {
	// Capital available to spend, in coins
	Coins int64 `mapstructure:"coins" validate:"min=0"`

	// How far above/below market the margin scenario buys/sells
	PercentMargin float64 `mapstructure:"percent_margin" validate:"gte=0,lt=100"`

	// single_hour or max_hours
	TimeMode string `mapstructure:"time_mode" validate:"required,time_mode"`

	Weights WeightsConfig `mapstructure:"weights"`

	// Items dropped from the catalogue; recipes using them are skipped
	IgnoreItems []string `mapstructure:"ignore_items"`

	// Recipes dropped from the book
	IgnoreRecipes []string `mapstructure:"ignore_recipes"`
}

// WeightsConfig is the custom sort preference before normalisation by capital
type WeightsConfig struct {
	Margin float64 `mapstructure:"margin"`
	Time   float64 `mapstructure:"time"`
	GPH    float64 `mapstructure:"gph"`
}

// DisplayConfig controls filtering, ordering and report size
type DisplayConfig struct {
	// Rows shown in the overview report
	Number int `mapstructure:"number" validate:"min=1"`

	Lookup LookupConfig `mapstructure:"lookup"`

	MustProfit bool   `mapstructure:"must_profit"`
	ShowHidden bool   `mapstructure:"show_hidden"`
	Reverse    bool   `mapstructure:"reverse"`
	Membership string `mapstructure:"membership" validate:"required,oneof=f2p p2p both"`
	SortBy     string `mapstructure:"sort_by" validate:"required,oneof=name profit time gph custom"`
}

// LookupConfig picks the recipes given a detailed breakdown
type LookupConfig struct {
	// Best N recipes of the ranking
	Top int `mapstructure:"top" validate:"min=0"`

	// Recipes always looked up, ranked or not
	Specific []string `mapstructure:"specific"`
}
