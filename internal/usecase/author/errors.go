// Package author provides use cases for authors: creation, the articles and
// magazines they are linked to, and writing new articles.
package author

import "errors"

// ErrWriterNotConfigured is returned by WriteArticle when the service has no
// article writer.
var ErrWriterNotConfigured = errors.New("article writer not configured")
