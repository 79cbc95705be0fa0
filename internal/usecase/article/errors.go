// Package article provides use cases for registering and updating articles.
// It validates articles through the entity package and appends them to the
// article registry; failed constructions never reach the registry.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrArticleRequired indicates that an update was requested without an article.
	ErrArticleRequired = errors.New("article is required")

	// ErrMagazineNotRegistered indicates that the magazine an article refers to
	// was not registered in the same catalog. Articles may only point at
	// registered magazines so that popularity queries see every article.
	ErrMagazineNotRegistered = errors.New("magazine is not registered in this catalog")
)
