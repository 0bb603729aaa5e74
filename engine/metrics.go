package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Run-level metrics. Registered once on the default registry; hosts that
// scrape the engine in-process get these for free.
var (
	runsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "semshape_validation_runs_total",
		Help: "Validation runs started.",
	})

	unitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "semshape_validation_units_total",
		Help: "Individual (shape, focus node) validation units executed.",
	})

	unitPanicsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "semshape_validation_unit_panics_total",
		Help: "Validation units recovered from a runtime failure.",
	})

	resultsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "semshape_validation_results_total",
		Help: "Validation results produced, by severity.",
	}, []string{"severity"})

	runDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "semshape_validation_run_duration_seconds",
		Help:    "Wall-clock duration of validation runs.",
		Buckets: prometheus.DefBuckets,
	})
)
