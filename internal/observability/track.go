package observability

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"magazine-catalog/internal/observability/metrics"
	"magazine-catalog/internal/observability/tracing"
)

// Track starts a span named op and returns a function that ends it and
// records the operation duration. The duration metric label is op with
// dots replaced by underscores ("magazine.contributors" -> "magazine_contributors").
func Track(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, op, attrs...)
	label := strings.ReplaceAll(op, ".", "_")
	return ctx, func(err error) {
		metrics.RecordQueryDuration(label, time.Since(start))
		tracing.EndSpan(span, err)
	}
}
