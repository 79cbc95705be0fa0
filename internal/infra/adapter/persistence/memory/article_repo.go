package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/repository"
)

// ArticleRepo implements the ArticleRepository interface on top of a DB.
type ArticleRepo struct{ db *DB }

// NewArticleRepo creates a new DB-backed article repository.
func NewArticleRepo(db *DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

// Append adds article to the end of the registry.
func (repo *ArticleRepo) Append(ctx context.Context, article *entity.Article) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("Append: %w", err)
	}
	if article == nil {
		return fmt.Errorf("Append: %w", entity.ErrInvalidReference)
	}

	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if _, exists := repo.db.articleIDs[article.ID]; exists {
		return fmt.Errorf("Append: article %s: %w", article.ID, repository.ErrDuplicate)
	}
	repo.db.articles = append(repo.db.articles, article)
	repo.db.articleIDs[article.ID] = struct{}{}
	return nil
}

// List returns all articles in insertion order.
func (repo *ArticleRepo) List(ctx context.Context) ([]*entity.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return repo.db.snapshotArticles(nil), nil
}

// ListByAuthor returns the articles currently attributed to the author with authorID.
func (repo *ArticleRepo) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("ListByAuthor: %w", err)
	}
	return repo.db.snapshotArticles(func(a *entity.Article) bool {
		return a.WrittenBy(authorID)
	}), nil
}

// ListByMagazine returns the articles currently published in the magazine with magazineID.
func (repo *ArticleRepo) ListByMagazine(ctx context.Context, magazineID uuid.UUID) ([]*entity.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("ListByMagazine: %w", err)
	}
	return repo.db.snapshotArticles(func(a *entity.Article) bool {
		return a.PublishedIn(magazineID)
	}), nil
}

// Count returns the number of registered articles.
func (repo *ArticleRepo) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()
	return len(repo.db.articles), nil
}
