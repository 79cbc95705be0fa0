package catalog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"magazine-catalog/internal/catalog"
	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/observability/logging"
	artUC "magazine-catalog/internal/usecase/article"
)

var _ = Describe("Catalog", func() {
	var (
		ctx context.Context
		cat *catalog.Catalog
	)

	BeforeEach(func() {
		ctx = context.Background()
		cat = catalog.New()
	})

	Context("with the demonstration data", func() {
		var (
			abdullah, hana *entity.Author
			globalVoices   *entity.Magazine
			inspire        *entity.Magazine
		)

		BeforeEach(func() {
			var err error
			globalVoices, err = cat.Magazines.Create(ctx, "Global Voices", "World Affairs")
			Expect(err).NotTo(HaveOccurred())
			inspire, err = cat.Magazines.Create(ctx, "Inspire", "Art and Culture")
			Expect(err).NotTo(HaveOccurred())

			abdullah, err = cat.Authors.Create(ctx, "Abdullah Khan")
			Expect(err).NotTo(HaveOccurred())
			hana, err = cat.Authors.Create(ctx, "Hana Ali")
			Expect(err).NotTo(HaveOccurred())

			_, err = cat.Authors.WriteArticle(ctx, abdullah, globalVoices, "The Future of AI")
			Expect(err).NotTo(HaveOccurred())
			_, err = cat.Authors.WriteArticle(ctx, hana, globalVoices, "Navigating the World of Remote Learning")
			Expect(err).NotTo(HaveOccurred())
			_, err = cat.Authors.WriteArticle(ctx, abdullah, inspire, "The Rat of Digital Painting")
			Expect(err).NotTo(HaveOccurred())
		})

		It("lists the author's articles", func() {
			articles, err := cat.Authors.Articles(ctx, abdullah)
			Expect(err).NotTo(HaveOccurred())
			Expect(articles).To(HaveLen(2))
			Expect(articles[0].Title()).To(Equal("The Future of AI"))
			Expect(articles[1].Title()).To(Equal("The Rat of Digital Painting"))
		})

		It("lists the magazine's contributors", func() {
			contributors, err := cat.Magazines.Contributors(ctx, globalVoices)
			Expect(err).NotTo(HaveOccurred())
			Expect(contributors).To(ConsistOf(abdullah, hana))
		})

		It("lists the magazine's titles in creation order", func() {
			titles, err := cat.Magazines.ArticleTitles(ctx, globalVoices)
			Expect(err).NotTo(HaveOccurred())
			Expect(titles).To(Equal([]string{"The Future of AI", "Navigating the World of Remote Learning"}))
		})

		It("has no frequent authors", func() {
			frequent, err := cat.Magazines.FrequentAuthors(ctx, globalVoices)
			Expect(err).NotTo(HaveOccurred())
			Expect(frequent).To(BeEmpty())
		})

		It("picks the magazine with the most articles", func() {
			popular, err := cat.Magazines.MostPopular(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(popular).To(BeIdenticalTo(globalVoices))
		})

		It("derives topics and magazines for an author", func() {
			topics, err := cat.Authors.Topics(ctx, abdullah)
			Expect(err).NotTo(HaveOccurred())
			Expect(topics).To(Equal([]string{"World Affairs", "Art and Culture"}))

			mags, err := cat.Authors.Magazines(ctx, hana)
			Expect(err).NotTo(HaveOccurred())
			Expect(mags).To(ConsistOf(globalVoices))
		})

		It("refuses to retitle an article", func() {
			articles, err := cat.Authors.Articles(ctx, hana)
			Expect(err).NotTo(HaveOccurred())
			title := "Valid Title"
			err = cat.Articles.Update(ctx, artUC.UpdateInput{Article: articles[0], Title: &title})
			Expect(err).To(MatchError(entity.ErrImmutableField))
			Expect(articles[0].Title()).To(Equal("Navigating the World of Remote Learning"))
		})

		Describe("Report", func() {
			It("collects the five demonstration answers", func() {
				r, err := cat.Report(ctx, abdullah, globalVoices)
				Expect(err).NotTo(HaveOccurred())
				Expect(r).To(Equal(&catalog.Report{
					Author:          "Abdullah Khan",
					AuthorArticles:  []string{"The Future of AI", "The Rat of Digital Painting"},
					Magazine:        "Global Voices",
					Contributors:    []string{"Abdullah Khan", "Hana Ali"},
					Titles:          []string{"The Future of AI", "Navigating the World of Remote Learning"},
					FrequentAuthors: []string{},
					MostPopular:     "Global Voices",
				}))
			})

			It("renders as text", func() {
				r, err := cat.Report(ctx, abdullah, globalVoices)
				Expect(err).NotTo(HaveOccurred())

				var buf bytes.Buffer
				Expect(r.WriteText(&buf)).To(Succeed())
				Expect(buf.String()).To(Equal(
					"Articles by Abdullah: ['The Future of AI', 'The Rat of Digital Painting']\n" +
						"Contributors to Global Voices: ['Abdullah Khan', 'Hana Ali']\n" +
						"Titles in Global Voices: ['The Future of AI', 'Navigating the World of Remote Learning']\n" +
						"Frequent authors in Global Voices: []\n" +
						"Most popular magazine: Global Voices\n"))
			})

			It("renders as JSON", func() {
				r, err := cat.Report(ctx, abdullah, globalVoices)
				Expect(err).NotTo(HaveOccurred())

				var buf bytes.Buffer
				Expect(r.WriteJSON(&buf)).To(Succeed())
				var decoded map[string]any
				Expect(json.Unmarshal(buf.Bytes(), &decoded)).To(Succeed())
				Expect(decoded).To(HaveKeyWithValue("most_popular", "Global Voices"))
				Expect(decoded).To(HaveKeyWithValue("frequent_authors", BeEmpty()))
			})
		})
	})

	Context("when nothing is registered", func() {
		It("reports no most popular magazine", func() {
			popular, err := cat.Magazines.MostPopular(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(popular).To(BeNil())
		})

		It("prints None in the report", func() {
			a, err := cat.Authors.Create(ctx, "Hana Ali")
			Expect(err).NotTo(HaveOccurred())
			m, err := cat.Magazines.Create(ctx, "Inspire", "Art and Culture")
			Expect(err).NotTo(HaveOccurred())

			r, err := cat.Report(ctx, a, m)
			Expect(err).NotTo(HaveOccurred())
			var buf bytes.Buffer
			Expect(r.WriteText(&buf)).To(Succeed())
			Expect(buf.String()).To(HaveSuffix("Most popular magazine: None\n"))
		})

		It("rejects a report without an author", func() {
			m, err := cat.Magazines.Create(ctx, "Inspire", "Art and Culture")
			Expect(err).NotTo(HaveOccurred())
			_, err = cat.Report(ctx, nil, m)
			Expect(err).To(MatchError(entity.ErrInvalidReference))
		})
	})

	Context("with two catalogs", func() {
		It("keeps their registries apart", func() {
			other := catalog.New()
			m, err := cat.Magazines.Create(ctx, "Global Voices", "World Affairs")
			Expect(err).NotTo(HaveOccurred())
			a, err := cat.Authors.Create(ctx, "Abdullah Khan")
			Expect(err).NotTo(HaveOccurred())
			_, err = cat.Authors.WriteArticle(ctx, a, m, "The Future of AI")
			Expect(err).NotTo(HaveOccurred())

			n, err := other.Articles.Count(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(BeZero())

			_, err = other.Authors.WriteArticle(ctx, a, m, "Borrowed magazine")
			Expect(err).To(MatchError(artUC.ErrMagazineNotRegistered))
		})
	})

	Context("with a fixed clock", func() {
		It("stamps articles with it", func() {
			fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
			cat = catalog.New(catalog.WithClock(func() time.Time { return fixed }))
			m, err := cat.Magazines.Create(ctx, "Inspire", "Art and Culture")
			Expect(err).NotTo(HaveOccurred())
			a, err := cat.Authors.Create(ctx, "Hana Ali")
			Expect(err).NotTo(HaveOccurred())

			art, err := cat.Authors.WriteArticle(ctx, a, m, "Painting with light")
			Expect(err).NotTo(HaveOccurred())
			Expect(art.CreatedAt).To(Equal(fixed))
		})
	})

	Context("with quotes in titles", func() {
		It("prints items the way a Python list would", func() {
			r := &catalog.Report{
				Author:         "Hana Ali",
				AuthorArticles: []string{"Hana's Notes", `The "Best" Of`, `Both ' and "`, `Back\slash`},
				Magazine:       "Inspire",
			}
			var buf bytes.Buffer
			Expect(r.WriteText(&buf)).To(Succeed())
			Expect(buf.String()).To(HavePrefix(
				`Articles by Hana: ["Hana's Notes", 'The "Best" Of', 'Both \' and "', 'Back\\slash']` + "\n"))
		})
	})

	Context("with a logger", func() {
		It("tags records with the emitting service", func() {
			var buf bytes.Buffer
			logger, err := logging.New(logging.Options{Writer: &buf, Format: logging.FormatJSON, Level: "debug"})
			Expect(err).NotTo(HaveOccurred())
			cat = catalog.New(catalog.WithLogger(logger))

			_, err = cat.Magazines.Create(ctx, "Inspire", "Art and Culture")
			Expect(err).NotTo(HaveOccurred())

			var entry map[string]any
			Expect(json.Unmarshal(bytes.SplitN(buf.Bytes(), []byte("\n"), 2)[0], &entry)).To(Succeed())
			Expect(entry).To(HaveKeyWithValue("msg", "magazine registered"))
			Expect(entry).To(HaveKeyWithValue("service", "magazine"))
			Expect(entry).To(HaveKeyWithValue("component", "catalog"))
		})
	})

	Context("with invalid input", func() {
		It("propagates validation errors and registers nothing", func() {
			m, err := cat.Magazines.Create(ctx, "Inspire", "Art and Culture")
			Expect(err).NotTo(HaveOccurred())
			a, err := cat.Authors.Create(ctx, "Hana Ali")
			Expect(err).NotTo(HaveOccurred())

			_, err = cat.Authors.WriteArticle(ctx, a, m, "Tiny")
			Expect(err).To(MatchError(entity.ErrInvalidLength))
			_, err = cat.Magazines.Create(ctx, "X", "Art")
			Expect(err).To(MatchError(entity.ErrValidationFailed))

			n, err := cat.Articles.Count(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(BeZero())
			mags, err := cat.Magazines.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(mags).To(HaveLen(1))
		})
	})
})
