package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	// Namespace for all metrics
	namespace = "osrs_gph"
)

var (
	// Registry is the global Prometheus registry for all metrics
	Registry *prometheus.Registry

	// globalEngineCollector is the singleton engine metrics collector
	// Set by SetGlobalEngineCollector() when metrics are enabled
	globalEngineCollector EngineMetricsRecorder

	// globalAPICollector is the singleton price API metrics collector
	globalAPICollector APIMetricsRecorder
)

// EngineMetricsRecorder defines the interface for recording recipe engine events
type EngineMetricsRecorder interface {
	RecordRecipeEvaluated(outcome string)
	RecordRecipeSkipped(reason string)
	RecordRowExcluded(reason string)
	RecordRanking(rows int, durationSeconds float64)
	RecordBreakdown(found bool)
}

// APIMetricsRecorder defines the interface for recording price API requests
type APIMetricsRecorder interface {
	RecordAPIRequest(endpoint string, statusCode int, duration float64)
	RecordAPIRetry(endpoint string, reason string)
}

// InitRegistry initializes the Prometheus registry
// Should be called once at startup if metrics are enabled
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// Reset drops the registry and collectors (used by tests and at shutdown)
func Reset() {
	Registry = nil
	globalEngineCollector = nil
	globalAPICollector = nil
}

// Setup initializes the registry and registers every collector.
// The returned request collector feeds PrometheusMiddleware.
func Setup() (*RequestMetricsCollector, error) {
	InitRegistry()

	engine := NewEngineMetricsCollector()
	if err := engine.Register(); err != nil {
		return nil, fmt.Errorf("failed to register engine metrics: %w", err)
	}
	SetGlobalEngineCollector(engine)

	api := NewAPIMetricsCollector()
	if err := api.Register(); err != nil {
		return nil, fmt.Errorf("failed to register api metrics: %w", err)
	}
	SetGlobalAPICollector(api)

	requests := NewRequestMetricsCollector()
	if err := requests.Register(); err != nil {
		return nil, fmt.Errorf("failed to register request metrics: %w", err)
	}

	return requests, nil
}

// WriteTextfile writes the registry in text exposition format for a textfile collector
func WriteTextfile(path string) error {
	if Registry == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, Registry)
}

// SetGlobalEngineCollector sets the global engine metrics collector
func SetGlobalEngineCollector(collector EngineMetricsRecorder) {
	globalEngineCollector = collector
}

// SetGlobalAPICollector sets the global API metrics collector
func SetGlobalAPICollector(collector APIMetricsRecorder) {
	globalAPICollector = collector
}

// RecordRecipeEvaluated records one recipe passing through the overview computer
func RecordRecipeEvaluated(outcome string) {
	if globalEngineCollector != nil {
		globalEngineCollector.RecordRecipeEvaluated(outcome)
	}
}

// RecordRecipeSkipped records a recipe skipped for data problems
func RecordRecipeSkipped(reason string) {
	if globalEngineCollector != nil {
		globalEngineCollector.RecordRecipeSkipped(reason)
	}
}

// RecordRowExcluded records a row dropped by the ranking filters
func RecordRowExcluded(reason string) {
	if globalEngineCollector != nil {
		globalEngineCollector.RecordRowExcluded(reason)
	}
}

// RecordRanking records the size and duration of a ranking run
func RecordRanking(rows int, durationSeconds float64) {
	if globalEngineCollector != nil {
		globalEngineCollector.RecordRanking(rows, durationSeconds)
	}
}

// RecordBreakdown records a detailed breakdown request
func RecordBreakdown(found bool) {
	if globalEngineCollector != nil {
		globalEngineCollector.RecordBreakdown(found)
	}
}

// RecordAPIRequest records a price API request globally
func RecordAPIRequest(endpoint string, statusCode int, duration float64) {
	if globalAPICollector != nil {
		globalAPICollector.RecordAPIRequest(endpoint, statusCode, duration)
	}
}

// RecordAPIRetry records a price API retry globally
func RecordAPIRetry(endpoint string, reason string) {
	if globalAPICollector != nil {
		globalAPICollector.RecordAPIRetry(endpoint, reason)
	}
}
