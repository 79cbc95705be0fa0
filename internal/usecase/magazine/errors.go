// Package magazine provides use cases for magazines: registration, renaming and
// recategorising, and the queries that aggregate articles per magazine.
package magazine

import "errors"

// Sentinel errors for magazine use case operations.
var (
	// ErrMagazineRequired indicates that an update was requested without a magazine.
	ErrMagazineRequired = errors.New("magazine is required")
)
