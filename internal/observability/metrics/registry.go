package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registration metrics track entity creation
var (
	// AuthorsCreatedTotal counts authors constructed through the catalog
	AuthorsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_authors_created_total",
			Help: "Total number of authors created",
		},
	)

	// MagazinesRegisteredTotal counts magazines added to a magazine registry
	MagazinesRegisteredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_magazines_registered_total",
			Help: "Total number of magazines registered",
		},
	)

	// ArticlesRegisteredTotal counts articles appended to an article registry
	ArticlesRegisteredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_articles_registered_total",
			Help: "Total number of articles registered",
		},
	)

	// ArticlesTotal tracks the size of the most recently updated article registry
	ArticlesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_articles",
			Help: "Current number of articles in the registry",
		},
	)
)

// Validation metrics track rejected input
var (
	// ValidationFailuresTotal counts validation failures by entity and field
	ValidationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_validation_failures_total",
			Help: "Total number of validation failures",
		},
		[]string{"entity", "field"},
	)
)

// Query metrics track read operations over the registries
var (
	// QueryDuration measures derived query duration in seconds
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_query_duration_seconds",
			Help:    "Catalog query duration in seconds",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		},
		[]string{"operation"},
	)
)
