package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/repository"
)

// MagazineRepo implements the MagazineRepository interface on top of a DB.
type MagazineRepo struct{ db *DB }

// NewMagazineRepo creates a new DB-backed magazine repository.
func NewMagazineRepo(db *DB) repository.MagazineRepository {
	return &MagazineRepo{db: db}
}

// Add registers magazine after the ones already present.
func (repo *MagazineRepo) Add(ctx context.Context, magazine *entity.Magazine) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("Add: %w", err)
	}
	if magazine == nil {
		return fmt.Errorf("Add: %w", entity.ErrInvalidReference)
	}

	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if _, exists := repo.db.magazineIDs[magazine.ID]; exists {
		return fmt.Errorf("Add: magazine %s: %w", magazine.ID, repository.ErrDuplicate)
	}
	repo.db.magazineIDs[magazine.ID] = len(repo.db.magazines)
	repo.db.magazines = append(repo.db.magazines, magazine)
	return nil
}

// List returns all magazines in registration order.
func (repo *MagazineRepo) List(ctx context.Context) ([]*entity.Magazine, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	out := make([]*entity.Magazine, len(repo.db.magazines))
	copy(out, repo.db.magazines)
	return out, nil
}

// Get returns the magazine with id, or nil if it is not registered.
func (repo *MagazineRepo) Get(ctx context.Context, id uuid.UUID) (*entity.Magazine, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	idx, ok := repo.db.magazineIDs[id]
	if !ok {
		return nil, nil
	}
	return repo.db.magazines[idx], nil
}

// Count returns the number of registered magazines.
func (repo *MagazineRepo) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()
	return len(repo.db.magazines), nil
}
