// Package tracing provides OpenTelemetry tracing integration.
//
// Every catalog service operation opens a span through StartSpan and closes it
// with EndSpan. NewProvider installs either a no-op provider or an SDK provider
// exporting to a writer (stderr by default).
//
// Example usage:
//
//	import "magazine-catalog/internal/observability/tracing"
//
//	func main() {
//	    p, err := tracing.NewProvider(tracing.Config{Enabled: true, Exporter: "stdout"})
//	    if err != nil { ... }
//	    defer p.Shutdown(context.Background())
//	}
//
//	func query(ctx context.Context) (err error) {
//	    ctx, span := tracing.StartSpan(ctx, "magazine.contributors")
//	    defer func() { tracing.EndSpan(span, err) }()
//	    // ...
//	}
package tracing
