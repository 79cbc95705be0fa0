package metrics

import (
	"errors"
	"time"

	"magazine-catalog/internal/domain/entity"
)

// RecordAuthorCreated records a successfully constructed author.
func RecordAuthorCreated() {
	AuthorsCreatedTotal.Inc()
}

// RecordMagazineRegistered records a magazine added to a registry.
func RecordMagazineRegistered() {
	MagazinesRegisteredTotal.Inc()
}

// RecordArticleRegistered records an article appended to a registry.
func RecordArticleRegistered() {
	ArticlesRegisteredTotal.Inc()
}

// UpdateArticlesTotal updates the gauge with the current registry size.
func UpdateArticlesTotal(count int) {
	ArticlesTotal.Set(float64(count))
}

// RecordValidationFailure records a rejected construction or assignment.
// The field label is taken from the error when it is a *entity.ValidationError
// or *entity.ImmutableFieldError, and is "unknown" otherwise.
func RecordValidationFailure(entityName string, err error) {
	field := "unknown"
	var validationErr *entity.ValidationError
	var immutableErr *entity.ImmutableFieldError
	switch {
	case errors.As(err, &validationErr):
		field = validationErr.Field
	case errors.As(err, &immutableErr):
		field = immutableErr.Field
	}
	ValidationFailuresTotal.WithLabelValues(entityName, field).Inc()
}

// RecordQueryDuration records the time taken by a derived query.
// Operation should name the query (e.g., "author_articles", "magazine_most_popular").
func RecordQueryDuration(operation string, duration time.Duration) {
	QueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
