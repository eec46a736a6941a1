package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	plansGeneratedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "nutrition_service",
		Subsystem: "planner",
		Name:      "plans_generated_total",
		Help:      "Number of weekly plans generated (persisted and preview).",
	})
	planDaysHistogram = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "nutrition_service",
		Subsystem: "planner",
		Name:      "plan_days",
		Help:      "Number of days covered per generated plan.",
		Buckets:   prometheus.LinearBuckets(1, 4, 8),
	})
	planDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "nutrition_service",
		Subsystem: "planner",
		Name:      "generation_duration_seconds",
		Help:      "Wall time spent inside the planning core per request.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
	})
	planPersistGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "nutrition_service",
		Subsystem: "persistence",
		Name:      "last_plan_persisted_timestamp_seconds",
		Help:      "Unix timestamp of the most recent plan persisted to Postgres.",
	})
)

func init() {
	prometheus.MustRegister(plansGeneratedCounter, planDaysHistogram, planDuration, planPersistGauge)
}

// RecordPlanGenerated tracks one planning-core run.
func RecordPlanGenerated(days int, elapsed time.Duration) {
	plansGeneratedCounter.Inc()
	planDaysHistogram.Observe(float64(days))
	planDuration.Observe(elapsed.Seconds())
}

// RecordPlanPersisted updates the persistence watermark gauge.
func RecordPlanPersisted(ts time.Time) {
	if ts.IsZero() {
		return
	}
	planPersistGauge.Set(float64(ts.Unix()))
}
