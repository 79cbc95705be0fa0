// Package repository declares the registries the catalog reads and appends to.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"magazine-catalog/internal/domain/entity"
)

// ErrDuplicate is returned when an entity that is already registered is registered again.
var ErrDuplicate = errors.New("entity already registered")

// ArticleRepository is the append-only registry of every article created in a catalog.
// Implementations preserve insertion order and never remove entries.
type ArticleRepository interface {
	// Append registers article at the end of the registry.
	// Returns ErrDuplicate if an article with the same ID is already registered.
	Append(ctx context.Context, article *entity.Article) error
	// List returns every registered article in insertion order.
	// Returns an empty slice (not nil) when nothing is registered.
	List(ctx context.Context) ([]*entity.Article, error)
	// ListByAuthor returns, in insertion order, the articles whose current author has the given ID.
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Article, error)
	// ListByMagazine returns, in insertion order, the articles whose current magazine has the given ID.
	ListByMagazine(ctx context.Context, magazineID uuid.UUID) ([]*entity.Article, error)
	Count(ctx context.Context) (int, error)
}
