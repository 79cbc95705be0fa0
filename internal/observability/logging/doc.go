// Package logging provides structured logging utilities with context propagation.
//
// This package wraps the standard library's log/slog package with helper functions
// for common logging patterns used throughout the application.
//
// Key features:
//   - JSON and text output formats
//   - Configurable log levels and writers
//   - Context-aware logging
//
// Example usage:
//
//	import "magazine-catalog/internal/observability/logging"
//
//	func main() {
//	    logger, err := logging.New(logging.Options{Writer: os.Stderr, Format: "text", Level: "debug"})
//	    if err != nil { ... }
//	    logger.Info("catalog ready", slog.Int("magazines", 2))
//	}
//
//	func handle(ctx context.Context) {
//	    logging.FromContext(ctx).Debug("processing")
//	}
package logging
