package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPLatencyBuckets defines the histogram buckets for request duration in
// seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: HTTPLatencyBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)
)

// Business metrics
var (
	CardSearchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "card_searches_total",
			Help: "Total number of catalog card searches",
		},
	)

	CollectionAddsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "collection_adds_total",
			Help: "Total number of cards added to collections",
		},
	)

	CollectionRemovesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "collection_removes_total",
			Help: "Total number of cards removed from collections",
		},
	)

	CatalogCardsPerSet = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_cards_per_set",
			Help: "Number of catalog cards per set",
		},
		[]string{"set_id"},
	)

	CollectionRowsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "collection_rows_total",
			Help: "Total number of collection membership rows",
		},
	)
)
