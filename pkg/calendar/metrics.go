package calendar

import "github.com/prometheus/client_golang/prometheus"

// Outcomes of a month fetch.
const (
	fetchHit    = "hit"
	fetchShared = "shared"
	fetchMiss   = "miss"
	fetchError  = "error"
)

var fetchCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "calendar_fetches_total",
		Help: "How many calendar months were requested, partitioned by cache outcome.",
	},
	[]string{"outcome"},
)

var transformDuration = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "calendar_transform_duration_seconds",
		Help:    "The time it takes to derive the events and days of a month in seconds.",
		Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1},
	},
)

// Collectors returns the Prometheus collectors of the calendar.
//
// They are not registered by the package. Whoever serves the metrics
// registers them.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		fetchCount,
		transformDuration,
	}
}
