package magazine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/observability"
	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/observability/metrics"
	"magazine-catalog/internal/repository"
)

// FrequentAuthorThreshold is the article count an author must exceed in a
// magazine to be listed by FrequentAuthors.
const FrequentAuthorThreshold = 2

// UpdateInput represents the changes requested for a registered magazine.
// Fields with nil values will not be updated.
type UpdateInput struct {
	Magazine *entity.Magazine
	Name     *string
	Category *string
}

// Service provides magazine use cases.
// It registers magazines in Repo and answers queries from ArticleRepo.
type Service struct {
	Repo        repository.MagazineRepository
	ArticleRepo repository.ArticleRepository
	Logger      *slog.Logger
}

func (s *Service) logger(ctx context.Context) *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return logging.FromContext(ctx)
}

// Create validates name and category and registers the new magazine.
// Returns a *entity.ValidationError if either field is invalid.
func (s *Service) Create(ctx context.Context, name, category string) (_ *entity.Magazine, err error) {
	ctx, done := observability.Track(ctx, "magazine.create", attribute.String("magazine.name", name))
	defer func() { done(err) }()

	m, err := entity.NewMagazine(name, category)
	if err != nil {
		metrics.RecordValidationFailure("magazine", err)
		s.logger(ctx).Warn("magazine rejected", slog.Any("error", err))
		return nil, fmt.Errorf("create magazine: %w", err)
	}
	if err := s.Repo.Add(ctx, m); err != nil {
		return nil, fmt.Errorf("create magazine: %w", err)
	}

	metrics.RecordMagazineRegistered()
	s.logger(ctx).Debug("magazine registered",
		slog.String("id", m.ID.String()),
		slog.String("name", m.Name()),
		slog.String("category", m.Category()))
	return m, nil
}

// Update applies in to a magazine. Every provided field is validated before
// any is applied, so an invalid field leaves the magazine unchanged.
func (s *Service) Update(ctx context.Context, in UpdateInput) (err error) {
	ctx, done := observability.Track(ctx, "magazine.update")
	defer func() { done(err) }()

	if in.Magazine == nil {
		return ErrMagazineRequired
	}
	if in.Name != nil {
		if err := entity.ValidateLength("name", *in.Name, entity.MagazineNameMinLength, entity.MagazineNameMaxLength); err != nil {
			metrics.RecordValidationFailure("magazine", err)
			return fmt.Errorf("update magazine: %w", err)
		}
	}
	if in.Category != nil {
		if err := entity.ValidateNotBlank("category", *in.Category); err != nil {
			metrics.RecordValidationFailure("magazine", err)
			return fmt.Errorf("update magazine: %w", err)
		}
	}

	if in.Name != nil {
		if err := in.Magazine.SetName(*in.Name); err != nil {
			return fmt.Errorf("update magazine: %w", err)
		}
	}
	if in.Category != nil {
		if err := in.Magazine.SetCategory(*in.Category); err != nil {
			return fmt.Errorf("update magazine: %w", err)
		}
	}
	return nil
}

// List returns every registered magazine in registration order.
func (s *Service) List(ctx context.Context) ([]*entity.Magazine, error) {
	mags, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list magazines: %w", err)
	}
	return mags, nil
}

// Articles returns the articles currently published in m, in registry order.
func (s *Service) Articles(ctx context.Context, m *entity.Magazine) (_ []*entity.Article, err error) {
	ctx, done := observability.Track(ctx, "magazine.articles")
	defer func() { done(err) }()

	if m == nil {
		return []*entity.Article{}, nil
	}
	articles, err := s.ArticleRepo.ListByMagazine(ctx, m.ID)
	if err != nil {
		return nil, fmt.Errorf("list articles by magazine: %w", err)
	}
	return articles, nil
}

// Contributors returns the distinct authors of m's articles in first-appearance order.
func (s *Service) Contributors(ctx context.Context, m *entity.Magazine) (_ []*entity.Author, err error) {
	ctx, done := observability.Track(ctx, "magazine.contributors")
	defer func() { done(err) }()

	articles, err := s.Articles(ctx, m)
	if err != nil {
		return nil, err
	}
	authors, _ := tallyAuthors(articles)
	return authors, nil
}

// ArticleTitles returns the titles of m's articles in registry order.
// The result is empty, never nil, when m has no articles.
func (s *Service) ArticleTitles(ctx context.Context, m *entity.Magazine) (_ []string, err error) {
	ctx, done := observability.Track(ctx, "magazine.article_titles")
	defer func() { done(err) }()

	articles, err := s.Articles(ctx, m)
	if err != nil {
		return nil, err
	}
	titles := make([]string, 0, len(articles))
	for _, art := range articles {
		titles = append(titles, art.Title())
	}
	return titles, nil
}

// FrequentAuthors returns the authors with more than FrequentAuthorThreshold
// articles in m, in first-appearance order.
func (s *Service) FrequentAuthors(ctx context.Context, m *entity.Magazine) (_ []*entity.Author, err error) {
	ctx, done := observability.Track(ctx, "magazine.frequent_authors")
	defer func() { done(err) }()

	articles, err := s.Articles(ctx, m)
	if err != nil {
		return nil, err
	}
	authors, counts := tallyAuthors(articles)
	frequent := make([]*entity.Author, 0, len(authors))
	for _, a := range authors {
		if counts[a.ID] > FrequentAuthorThreshold {
			frequent = append(frequent, a)
		}
	}
	return frequent, nil
}

// MostPopular returns the registered magazine with the most articles.
// It returns (nil, nil) when no article is registered. Ties go to the magazine
// registered first.
func (s *Service) MostPopular(ctx context.Context) (_ *entity.Magazine, err error) {
	ctx, done := observability.Track(ctx, "magazine.most_popular")
	defer func() { done(err) }()

	articles, err := s.ArticleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	if len(articles) == 0 {
		return nil, nil
	}

	counts := make(map[uuid.UUID]int)
	for _, art := range articles {
		counts[art.Magazine().ID]++
	}

	mags, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list magazines: %w", err)
	}
	var best *entity.Magazine
	bestCount := 0
	for _, m := range mags {
		if c := counts[m.ID]; best == nil || c > bestCount {
			best, bestCount = m, c
		}
	}
	return best, nil
}

// tallyAuthors returns the distinct authors of articles in first-appearance
// order together with the number of articles each wrote.
func tallyAuthors(articles []*entity.Article) ([]*entity.Author, map[uuid.UUID]int) {
	counts := make(map[uuid.UUID]int, len(articles))
	authors := make([]*entity.Author, 0, len(articles))
	for _, art := range articles {
		a := art.Author()
		if counts[a.ID] == 0 {
			authors = append(authors, a)
		}
		counts[a.ID]++
	}
	return authors, counts
}
