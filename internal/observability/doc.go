// Package observability provides the catalog's observability infrastructure
// including structured logging, Prometheus metrics, and OpenTelemetry tracing.
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - metrics: Prometheus metrics registry and recorders
//   - tracing: OpenTelemetry tracer and provider
//
// Track ties the latter two together for service operations.
//
// Example usage:
//
//	func (s *Service) Contributors(ctx context.Context, m *entity.Magazine) (_ []*entity.Author, err error) {
//	    ctx, done := observability.Track(ctx, "magazine.contributors")
//	    defer func() { done(err) }()
//	    // ...
//	}
package observability
