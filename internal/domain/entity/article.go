// Package entity defines the core domain entities and validation logic for the catalog.
// It contains Author, Magazine and Article, the rules each field must satisfy,
// and the domain errors returned when a rule is violated.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Article links one Author and one Magazine under a title.
// The title is written once by NewArticle and never changes afterwards;
// author and magazine may be reassigned.
type Article struct {
	ID        uuid.UUID
	CreatedAt time.Time

	author   *Author
	magazine *Magazine
	title    string
}

// NewArticle validates its arguments and returns a new Article.
// It does not register the article anywhere; see the article use case for that.
func NewArticle(author *Author, magazine *Magazine, title string) (*Article, error) {
	if err := validateReference("author", author == nil); err != nil {
		return nil, err
	}
	if err := validateReference("magazine", magazine == nil); err != nil {
		return nil, err
	}
	if err := ValidateLength("title", title, ArticleTitleMinLength, ArticleTitleMaxLength); err != nil {
		return nil, err
	}

	return &Article{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		author:    author,
		magazine:  magazine,
		title:     title,
	}, nil
}

// Author returns the article's author.
func (a *Article) Author() *Author {
	return a.author
}

// Magazine returns the magazine the article appears in.
func (a *Article) Magazine() *Magazine {
	return a.magazine
}

// Title returns the article's title.
func (a *Article) Title() string {
	return a.title
}

// SetAuthor reassigns the article to another author.
func (a *Article) SetAuthor(author *Author) error {
	if err := validateReference("author", author == nil); err != nil {
		return err
	}
	a.author = author
	return nil
}

// SetMagazine moves the article to another magazine.
// Only the nil check happens here. Registration of magazine in a catalog is
// enforced by the article use case's Update, not by the entity; an article
// moved to an unregistered magazine is not counted by most-popular queries.
func (a *Article) SetMagazine(magazine *Magazine) error {
	if err := validateReference("magazine", magazine == nil); err != nil {
		return err
	}
	a.magazine = magazine
	return nil
}

// WrittenBy reports whether the article's current author has authorID.
func (a *Article) WrittenBy(authorID uuid.UUID) bool {
	return a.author != nil && a.author.ID == authorID
}

// PublishedIn reports whether the article's current magazine has magazineID.
func (a *Article) PublishedIn(magazineID uuid.UUID) bool {
	return a.magazine != nil && a.magazine.ID == magazineID
}
