package repository

import (
	"context"

	"github.com/google/uuid"

	"magazine-catalog/internal/domain/entity"
)

// MagazineRepository is the registry of every magazine created in a catalog,
// in registration order.
type MagazineRepository interface {
	// Add registers magazine. Returns ErrDuplicate if it is already registered.
	Add(ctx context.Context, magazine *entity.Magazine) error
	List(ctx context.Context) ([]*entity.Magazine, error)
	// Get returns (nil, nil) if no magazine with the ID is registered.
	Get(ctx context.Context, id uuid.UUID) (*entity.Magazine, error)
	Count(ctx context.Context) (int, error)
}
