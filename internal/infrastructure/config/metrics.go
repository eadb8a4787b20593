package config

// MetricsConfig holds metrics collection and export configuration
type MetricsConfig struct {
	// Enabled controls whether metrics collection is active
	Enabled bool `mapstructure:"enabled"`

	// Textfile receives the Prometheus text exposition at the end of a run
	Textfile string `mapstructure:"textfile" validate:"required_if=Enabled true"`
}
