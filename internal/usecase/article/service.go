package article

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/observability"
	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/observability/metrics"
	"magazine-catalog/internal/repository"
)

// UpdateInput represents the changes requested for a registered article.
// Fields with nil values will not be updated. Title exists so that callers
// get an explicit immutability error; it is never applied.
type UpdateInput struct {
	Article  *entity.Article
	Author   *entity.Author
	Magazine *entity.Magazine
	Title    *string
}

// Service provides article use cases.
type Service struct {
	Repo      repository.ArticleRepository
	Magazines repository.MagazineRepository
	Logger    *slog.Logger
	// Now stamps CreatedAt on registered articles. Defaults to time.Now.
	Now func() time.Time
}

func (s *Service) logger(ctx context.Context) *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return logging.FromContext(ctx)
}

// Create validates a new article and appends it to the registry.
// Returns a *entity.ValidationError if any field is invalid, and
// ErrMagazineNotRegistered if magazine belongs to no registry of this catalog.
func (s *Service) Create(ctx context.Context, author *entity.Author, magazine *entity.Magazine, title string) (_ *entity.Article, err error) {
	ctx, done := observability.Track(ctx, "article.create", attribute.String("article.title", title))
	defer func() { done(err) }()

	art, err := entity.NewArticle(author, magazine, title)
	if err != nil {
		metrics.RecordValidationFailure("article", err)
		s.logger(ctx).Warn("article rejected", slog.Any("error", err))
		return nil, fmt.Errorf("create article: %w", err)
	}

	if err := s.requireRegistered(ctx, magazine); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	if s.Now != nil {
		art.CreatedAt = s.Now()
	}
	if err := s.Repo.Append(ctx, art); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	metrics.RecordArticleRegistered()
	if n, err := s.Repo.Count(ctx); err == nil {
		metrics.UpdateArticlesTotal(n)
	}
	s.logger(ctx).Debug("article registered",
		slog.String("id", art.ID.String()),
		slog.String("title", art.Title()),
		slog.String("author", author.Name()),
		slog.String("magazine", magazine.Name()))
	return art, nil
}

// Update applies in to a registered article.
// A non-nil Title always fails with *entity.ImmutableFieldError. The update is
// all-or-nothing: nothing is changed unless every requested change is valid.
func (s *Service) Update(ctx context.Context, in UpdateInput) (err error) {
	ctx, done := observability.Track(ctx, "article.update")
	defer func() { done(err) }()

	if in.Article == nil {
		return ErrArticleRequired
	}
	if in.Title != nil {
		err := &entity.ImmutableFieldError{Entity: "article", Field: "title"}
		metrics.RecordValidationFailure("article", err)
		return fmt.Errorf("update article: %w", err)
	}
	if in.Magazine != nil {
		if err := s.requireRegistered(ctx, in.Magazine); err != nil {
			return fmt.Errorf("update article: %w", err)
		}
	}

	if in.Author != nil {
		if err := in.Article.SetAuthor(in.Author); err != nil {
			return fmt.Errorf("update article: %w", err)
		}
	}
	if in.Magazine != nil {
		if err := in.Article.SetMagazine(in.Magazine); err != nil {
			return fmt.Errorf("update article: %w", err)
		}
	}
	return nil
}

// List returns every registered article in creation order.
func (s *Service) List(ctx context.Context) ([]*entity.Article, error) {
	articles, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// Count returns the number of registered articles.
func (s *Service) Count(ctx context.Context) (int, error) {
	n, err := s.Repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return n, nil
}

func (s *Service) requireRegistered(ctx context.Context, magazine *entity.Magazine) error {
	if s.Magazines == nil {
		return nil
	}
	found, err := s.Magazines.Get(ctx, magazine.ID)
	if err != nil {
		return fmt.Errorf("get magazine: %w", err)
	}
	if found == nil {
		return fmt.Errorf("magazine %q: %w", magazine.Name(), ErrMagazineNotRegistered)
	}
	return nil
}
