// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes the catalog's metrics:
//   - Registrations (authors, magazines, articles)
//   - Validation failures by entity and field
//   - Query durations by operation
//   - Current registry size
//
// All metrics are registered with the Prometheus default registry.
//
// Example usage:
//
//	import "magazine-catalog/internal/observability/metrics"
//
//	func register(ctx context.Context) {
//	    start := time.Now()
//	    // ... append article ...
//	    metrics.RecordArticleRegistered()
//	    metrics.RecordQueryDuration("magazine_contributors", time.Since(start))
//	}
package metrics
