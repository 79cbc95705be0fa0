// Package catalog wires the registries and use case services into a single
// Catalog. Every Catalog owns its own registries, so independent catalogs
// never observe each other's magazines or articles.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/infra/adapter/persistence/memory"
	"magazine-catalog/internal/observability/logging"
	artUC "magazine-catalog/internal/usecase/article"
	authorUC "magazine-catalog/internal/usecase/author"
	magUC "magazine-catalog/internal/usecase/magazine"
)

// Catalog holds the magazine and article registries and the services that
// operate on them.
type Catalog struct {
	Authors   *authorUC.Service
	Magazines *magUC.Service
	Articles  *artUC.Service

	logger *slog.Logger
}

// Option configures a Catalog.
type Option func(*options)

type options struct {
	logger *slog.Logger
	now    func() time.Time
}

// WithLogger sets the logger used by every service. Defaults to a discarding logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithClock sets the clock used to stamp article creation times.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// New returns an empty Catalog.
func New(opts ...Option) *Catalog {
	o := options{logger: logging.Discard(), now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	db := memory.NewDB()
	magazineRepo := memory.NewMagazineRepo(db)
	articleRepo := memory.NewArticleRepo(db)

	articles := &artUC.Service{
		Repo:      articleRepo,
		Magazines: magazineRepo,
		Logger:    serviceLogger(o.logger, "article"),
		Now:       o.now,
	}
	return &Catalog{
		Authors: &authorUC.Service{
			Repo:   articleRepo,
			Writer: articles,
			Logger: serviceLogger(o.logger, "author"),
		},
		Magazines: &magUC.Service{
			Repo:        magazineRepo,
			ArticleRepo: articleRepo,
			Logger:      serviceLogger(o.logger, "magazine"),
		},
		Articles: articles,
		logger:   o.logger,
	}
}

func serviceLogger(logger *slog.Logger, service string) *slog.Logger {
	return logging.WithFields(logger, map[string]any{"component": "catalog", "service": service})
}

// Report is the result of the demonstration queries for one author and one magazine.
type Report struct {
	Author          string   `json:"author"`
	AuthorArticles  []string `json:"author_articles"`
	Magazine        string   `json:"magazine"`
	Contributors    []string `json:"contributors"`
	Titles          []string `json:"titles"`
	FrequentAuthors []string `json:"frequent_authors"`
	// MostPopular is empty when no article is registered.
	MostPopular string `json:"most_popular,omitempty"`
}

// Report runs the demonstration queries for author and magazine.
func (c *Catalog) Report(ctx context.Context, author *entity.Author, magazine *entity.Magazine) (*Report, error) {
	if author == nil || magazine == nil {
		return nil, fmt.Errorf("build report: %w", entity.ErrInvalidReference)
	}

	articles, err := c.Authors.Articles(ctx, author)
	if err != nil {
		return nil, fmt.Errorf("build report: %w", err)
	}
	contributors, err := c.Magazines.Contributors(ctx, magazine)
	if err != nil {
		return nil, fmt.Errorf("build report: %w", err)
	}
	titles, err := c.Magazines.ArticleTitles(ctx, magazine)
	if err != nil {
		return nil, fmt.Errorf("build report: %w", err)
	}
	frequent, err := c.Magazines.FrequentAuthors(ctx, magazine)
	if err != nil {
		return nil, fmt.Errorf("build report: %w", err)
	}
	popular, err := c.Magazines.MostPopular(ctx)
	if err != nil {
		return nil, fmt.Errorf("build report: %w", err)
	}

	r := &Report{
		Author:          author.Name(),
		AuthorArticles:  articleTitles(articles),
		Magazine:        magazine.Name(),
		Contributors:    authorNames(contributors),
		Titles:          titles,
		FrequentAuthors: authorNames(frequent),
	}
	if popular != nil {
		r.MostPopular = popular.Name()
	}
	c.logger.Debug("report built",
		slog.String("author", r.Author),
		slog.String("magazine", r.Magazine),
		slog.Int("author_articles", len(r.AuthorArticles)))
	return r, nil
}

func articleTitles(articles []*entity.Article) []string {
	out := make([]string, 0, len(articles))
	for _, a := range articles {
		out = append(out, a.Title())
	}
	return out
}

func authorNames(authors []*entity.Author) []string {
	out := make([]string, 0, len(authors))
	for _, a := range authors {
		out = append(out, a.Name())
	}
	return out
}
