package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const engineSubsystem = "engine"

// EngineMetricsCollector handles recipe engine metrics
type EngineMetricsCollector struct {
	recipesEvaluated *prometheus.CounterVec
	recipesSkipped   *prometheus.CounterVec
	rowsExcluded     *prometheus.CounterVec
	rowsRanked       prometheus.Gauge
	rankingDuration  prometheus.Histogram
	breakdowns       *prometheus.CounterVec
}

// NewEngineMetricsCollector creates a new engine metrics collector
func NewEngineMetricsCollector() *EngineMetricsCollector {
	return &EngineMetricsCollector{
		recipesEvaluated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: engineSubsystem,
				Name:      "recipes_evaluated_total",
				Help:      "Recipes passed through the overview computer by outcome",
			},
			[]string{"outcome"},
		),

		recipesSkipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: engineSubsystem,
				Name:      "recipes_skipped_total",
				Help:      "Recipes skipped because of missing item, price or time data",
			},
			[]string{"reason"},
		),

		rowsExcluded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: engineSubsystem,
				Name:      "rows_excluded_total",
				Help:      "Overview rows dropped by the ranking filters",
			},
			[]string{"reason"},
		),

		rowsRanked: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: engineSubsystem,
				Name:      "rows_ranked",
				Help:      "Rows in the most recent ranking",
			},
		),

		rankingDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: engineSubsystem,
				Name:      "overview_duration_seconds",
				Help:      "Time to compute and rank all overviews",
				Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
			},
		),

		breakdowns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: engineSubsystem,
				Name:      "breakdowns_total",
				Help:      "Detailed breakdowns requested, by whether the recipe could be priced",
			},
			[]string{"found"},
		),
	}
}

// Register registers all engine metrics with the Prometheus registry
func (c *EngineMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	for _, metric := range []prometheus.Collector{
		c.recipesEvaluated,
		c.recipesSkipped,
		c.rowsExcluded,
		c.rowsRanked,
		c.rankingDuration,
		c.breakdowns,
	} {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}
	return nil
}

func (c *EngineMetricsCollector) RecordRecipeEvaluated(outcome string) {
	c.recipesEvaluated.WithLabelValues(outcome).Inc()
}

func (c *EngineMetricsCollector) RecordRecipeSkipped(reason string) {
	c.recipesSkipped.WithLabelValues(reason).Inc()
}

func (c *EngineMetricsCollector) RecordRowExcluded(reason string) {
	c.rowsExcluded.WithLabelValues(reason).Inc()
}

func (c *EngineMetricsCollector) RecordRanking(rows int, durationSeconds float64) {
	c.rowsRanked.Set(float64(rows))
	c.rankingDuration.Observe(durationSeconds)
}

func (c *EngineMetricsCollector) RecordBreakdown(found bool) {
	c.breakdowns.WithLabelValues(strconv.FormatBool(found)).Inc()
}
