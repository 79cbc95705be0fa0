// Package seed loads magazines, authors and articles described in YAML into a
// catalog. Articles refer to their author and magazine by name.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"magazine-catalog/internal/catalog"
	"magazine-catalog/internal/domain/entity"
)

//go:embed default.yaml
var defaultSeed []byte

// Sentinel errors for seed loading.
var (
	// ErrUnknownReference indicates an article naming an author or magazine
	// that the document does not declare.
	ErrUnknownReference = errors.New("unknown reference")

	// ErrDuplicateName indicates two authors or two magazines sharing a name.
	ErrDuplicateName = errors.New("duplicate name")
)

// Document is a seed file.
type Document struct {
	Magazines []MagazineSeed `yaml:"magazines"`
	Authors   []AuthorSeed   `yaml:"authors"`
	Articles  []ArticleSeed  `yaml:"articles"`
}

// MagazineSeed declares a magazine.
type MagazineSeed struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

// AuthorSeed declares an author.
type AuthorSeed struct {
	Name string `yaml:"name"`
}

// ArticleSeed declares an article by author and magazine name.
type ArticleSeed struct {
	Author   string `yaml:"author"`
	Magazine string `yaml:"magazine"`
	Title    string `yaml:"title"`
}

// Result holds the entities created by Load, in document order.
type Result struct {
	Magazines []*entity.Magazine
	Authors   []*entity.Author
	Articles  []*entity.Article
}

// Author returns the loaded author named name, or nil.
func (r *Result) Author(name string) *entity.Author {
	for _, a := range r.Authors {
		if a.Name() == name {
			return a
		}
	}
	return nil
}

// Magazine returns the loaded magazine named name, or nil.
func (r *Result) Magazine(name string) *entity.Magazine {
	for _, m := range r.Magazines {
		if m.Name() == name {
			return m
		}
	}
	return nil
}

// Parse decodes a seed document. Unknown fields are rejected.
func Parse(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	return &doc, nil
}

// ParseFile reads and decodes the seed document at path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Parse(f)
}

// Default returns the embedded demonstration seed.
func Default() *Document {
	doc, err := Parse(bytes.NewReader(defaultSeed))
	if err != nil {
		panic(fmt.Sprintf("embedded seed is invalid: %v", err))
	}
	return doc
}

// Load creates every entity of doc in cat: magazines first, then authors,
// then articles. It stops at the first error; entities created before the
// error stay registered.
func Load(ctx context.Context, cat *catalog.Catalog, doc *Document) (*Result, error) {
	if err := checkNames(doc); err != nil {
		return nil, err
	}

	res := &Result{}
	magazines := make(map[string]*entity.Magazine, len(doc.Magazines))
	for i, ms := range doc.Magazines {
		m, err := cat.Magazines.Create(ctx, ms.Name, ms.Category)
		if err != nil {
			return nil, fmt.Errorf("magazines[%d]: %w", i, err)
		}
		magazines[ms.Name] = m
		res.Magazines = append(res.Magazines, m)
	}

	authors := make(map[string]*entity.Author, len(doc.Authors))
	for i, as := range doc.Authors {
		a, err := cat.Authors.Create(ctx, as.Name)
		if err != nil {
			return nil, fmt.Errorf("authors[%d]: %w", i, err)
		}
		authors[as.Name] = a
		res.Authors = append(res.Authors, a)
	}

	for i, arts := range doc.Articles {
		a, ok := authors[arts.Author]
		if !ok {
			return nil, fmt.Errorf("articles[%d]: author %q: %w", i, arts.Author, ErrUnknownReference)
		}
		m, ok := magazines[arts.Magazine]
		if !ok {
			return nil, fmt.Errorf("articles[%d]: magazine %q: %w", i, arts.Magazine, ErrUnknownReference)
		}
		art, err := cat.Authors.WriteArticle(ctx, a, m, arts.Title)
		if err != nil {
			return nil, fmt.Errorf("articles[%d]: %w", i, err)
		}
		res.Articles = append(res.Articles, art)
	}
	return res, nil
}

func checkNames(doc *Document) error {
	seen := make(map[string]struct{}, len(doc.Magazines))
	for i, m := range doc.Magazines {
		if _, ok := seen[m.Name]; ok {
			return fmt.Errorf("magazines[%d]: %q: %w", i, m.Name, ErrDuplicateName)
		}
		seen[m.Name] = struct{}{}
	}
	seen = make(map[string]struct{}, len(doc.Authors))
	for i, a := range doc.Authors {
		if _, ok := seen[a.Name]; ok {
			return fmt.Errorf("authors[%d]: %q: %w", i, a.Name, ErrDuplicateName)
		}
		seen[a.Name] = struct{}{}
	}
	return nil
}
