// Package fixtures provides reusable test data for the catalog test suites.
// Builders fail the calling test instead of returning errors so that table
// tests stay short.
package fixtures

import (
	"testing"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/utils/text"
)

// Boundary titles and names around the entity length limits.
var (
	TitleTooShort = text.OfLength("t", entity.ArticleTitleMinLength-1)
	TitleShortest = text.OfLength("t", entity.ArticleTitleMinLength)
	TitleLongest  = text.OfLength("t", entity.ArticleTitleMaxLength)
	TitleTooLong  = text.OfLength("t", entity.ArticleTitleMaxLength+1)

	NameTooShort = text.OfLength("n", entity.MagazineNameMinLength-1)
	NameShortest = text.OfLength("n", entity.MagazineNameMinLength)
	NameLongest  = text.OfLength("n", entity.MagazineNameMaxLength)
	NameTooLong  = text.OfLength("n", entity.MagazineNameMaxLength+1)
)

// Title returns an article title of exactly n characters.
func Title(n int) string {
	return text.OfLength("Title ", n)
}

// MustAuthor creates an author or fails the test.
func MustAuthor(tb testing.TB, name string) *entity.Author {
	tb.Helper()
	a, err := entity.NewAuthor(name)
	if err != nil {
		tb.Fatalf("NewAuthor(%q): %v", name, err)
	}
	return a
}

// MustMagazine creates a magazine or fails the test.
func MustMagazine(tb testing.TB, name, category string) *entity.Magazine {
	tb.Helper()
	m, err := entity.NewMagazine(name, category)
	if err != nil {
		tb.Fatalf("NewMagazine(%q, %q): %v", name, category, err)
	}
	return m
}

// MustArticle creates an article or fails the test. The article is not
// registered anywhere.
func MustArticle(tb testing.TB, author *entity.Author, magazine *entity.Magazine, title string) *entity.Article {
	tb.Helper()
	art, err := entity.NewArticle(author, magazine, title)
	if err != nil {
		tb.Fatalf("NewArticle(%q): %v", title, err)
	}
	return art
}

// Titles returns the titles of articles in order.
func Titles(articles []*entity.Article) []string {
	out := make([]string, 0, len(articles))
	for _, a := range articles {
		out = append(out, a.Title())
	}
	return out
}

// AuthorNames returns the names of authors in order.
func AuthorNames(authors []*entity.Author) []string {
	out := make([]string, 0, len(authors))
	for _, a := range authors {
		out = append(out, a.Name())
	}
	return out
}

// MagazineNames returns the names of magazines in order.
func MagazineNames(magazines []*entity.Magazine) []string {
	out := make([]string, 0, len(magazines))
	for _, m := range magazines {
		out = append(out, m.Name())
	}
	return out
}
