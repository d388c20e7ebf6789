package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all Prometheus metrics for the towerboard service.
type Registry struct {
	// HTTP metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Upstream (adsb.lol) metrics
	UpstreamFetchesTotal prometheus.CounterVec
	UpstreamFetchSeconds prometheus.Histogram

	// Cache metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec

	// Strip board metrics
	StripEventsTotal prometheus.CounterVec
	StripsOnBoard    prometheus.Gauge

	// Websocket metrics
	WSClientsConnected prometheus.Gauge
}

// NewRegistry initializes and returns a Registry with all metrics
// registered on the default gatherer.
func NewRegistry() *Registry {
	return &Registry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "towerboard_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "towerboard_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "towerboard_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		UpstreamFetchesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "towerboard_upstream_fetches_total",
				Help: "Aircraft position fetches against the upstream API by outcome",
			},
			[]string{"outcome"},
		),
		UpstreamFetchSeconds: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "towerboard_upstream_fetch_duration_seconds",
				Help:    "Upstream fetch latency in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
		),

		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "towerboard_cache_hits_total",
				Help: "Cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "towerboard_cache_misses_total",
				Help: "Cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		StripEventsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "towerboard_strip_events_total",
				Help: "Applied flight-strip board mutations by event type",
			},
			[]string{"event_type"},
		),
		StripsOnBoard: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "towerboard_strips_on_board",
				Help: "Current number of strips across all stations",
			},
		),

		WSClientsConnected: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "towerboard_ws_clients_connected",
				Help: "Currently connected websocket dashboard clients",
			},
		),
	}
}
