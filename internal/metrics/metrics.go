// Package metrics registers the Prometheus instruments for the recipe service.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipes_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recipes_api_request_duration_seconds",
			Help:    "API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	RateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipes_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
		[]string{"route"},
	)

	// Catalog
	CatalogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recipes_catalog_size",
			Help: "Current number of recipes in the catalog",
		},
	)

	RecipesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipes_created_total",
			Help: "Recipes created through the API",
		},
	)

	FilterResultSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recipes_filter_result_size",
			Help:    "Number of recipes returned by a filter query",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100, 250},
		},
	)

	// Recommendations
	SurveysSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipes_surveys_submitted_total",
			Help: "Surveys accepted",
		},
	)

	RecommendationsServed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipes_recommendations_served_total",
			Help: "Total recipes returned as recommendations",
		},
	)
)

// RecordAPIRequest records one completed HTTP request.
func RecordAPIRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordRateLimited counts a rejected request.
func RecordRateLimited(route string) {
	RateLimitedTotal.WithLabelValues(route).Inc()
}

// RecordFilter observes the size of a filter result.
func RecordFilter(results int) {
	FilterResultSize.Observe(float64(results))
}

// RecordRecipeCreated counts a creation and updates the catalog gauge.
func RecordRecipeCreated(catalogSize int) {
	RecipesCreated.Inc()
	CatalogSize.Set(float64(catalogSize))
}

// RecordSurvey counts an accepted survey and the recommendations returned for it.
func RecordSurvey(recommendations int) {
	SurveysSubmitted.Inc()
	RecommendationsServed.Add(float64(recommendations))
}

// SetCatalogSize sets the catalog gauge, e.g. after seeding.
func SetCatalogSize(n int) {
	CatalogSize.Set(float64(n))
}
