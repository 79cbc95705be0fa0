package author

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/observability"
	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/observability/metrics"
	"magazine-catalog/internal/repository"
)

// ArticleWriter registers a new article. The article use case service
// satisfies it.
type ArticleWriter interface {
	Create(ctx context.Context, author *entity.Author, magazine *entity.Magazine, title string) (*entity.Article, error)
}

// Service provides author use cases.
// Authors are not kept in a registry; everything about an author is derived
// from the article registry.
type Service struct {
	Repo   repository.ArticleRepository
	Writer ArticleWriter
	Logger *slog.Logger
}

func (s *Service) logger(ctx context.Context) *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return logging.FromContext(ctx)
}

// Create validates name and returns a new author.
func (s *Service) Create(ctx context.Context, name string) (*entity.Author, error) {
	a, err := entity.NewAuthor(name)
	if err != nil {
		metrics.RecordValidationFailure("author", err)
		s.logger(ctx).Warn("author rejected", slog.Any("error", err))
		return nil, fmt.Errorf("create author: %w", err)
	}
	metrics.RecordAuthorCreated()
	s.logger(ctx).Debug("author created", slog.String("id", a.ID.String()), slog.String("name", a.Name()))
	return a, nil
}

// Articles returns the articles currently attributed to a, in registry order.
func (s *Service) Articles(ctx context.Context, a *entity.Author) (_ []*entity.Article, err error) {
	ctx, done := observability.Track(ctx, "author.articles")
	defer func() { done(err) }()

	if a == nil {
		return []*entity.Article{}, nil
	}
	articles, err := s.Repo.ListByAuthor(ctx, a.ID)
	if err != nil {
		return nil, fmt.Errorf("list articles by author: %w", err)
	}
	return articles, nil
}

// Magazines returns the distinct magazines a has written for, in the order
// they first appear in the article registry.
func (s *Service) Magazines(ctx context.Context, a *entity.Author) (_ []*entity.Magazine, err error) {
	ctx, done := observability.Track(ctx, "author.magazines")
	defer func() { done(err) }()

	articles, err := s.Articles(ctx, a)
	if err != nil {
		return nil, err
	}
	return distinctMagazines(articles), nil
}

// WriteArticle creates and registers an article by a in m.
// Validation errors from the article service are returned unchanged in the chain.
func (s *Service) WriteArticle(ctx context.Context, a *entity.Author, m *entity.Magazine, title string) (*entity.Article, error) {
	if s.Writer == nil {
		return nil, ErrWriterNotConfigured
	}
	art, err := s.Writer.Create(ctx, a, m, title)
	if err != nil {
		return nil, fmt.Errorf("write article: %w", err)
	}
	return art, nil
}

// Topics returns the distinct categories of the magazines a has written for.
// The result is empty, never nil, when a has no articles.
func (s *Service) Topics(ctx context.Context, a *entity.Author) (_ []string, err error) {
	ctx, done := observability.Track(ctx, "author.topics")
	defer func() { done(err) }()

	mags, err := s.Magazines(ctx, a)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(mags))
	topics := make([]string, 0, len(mags))
	for _, m := range mags {
		if _, ok := seen[m.Category()]; ok {
			continue
		}
		seen[m.Category()] = struct{}{}
		topics = append(topics, m.Category())
	}
	return topics, nil
}

func distinctMagazines(articles []*entity.Article) []*entity.Magazine {
	seen := make(map[uuid.UUID]struct{}, len(articles))
	out := make([]*entity.Magazine, 0, len(articles))
	for _, art := range articles {
		m := art.Magazine()
		if _, ok := seen[m.ID]; ok {
			continue
		}
		seen[m.ID] = struct{}{}
		out = append(out, m)
	}
	return out
}
