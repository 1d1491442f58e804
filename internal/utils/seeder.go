package utils

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"techblog/internal/models"
	"techblog/internal/repository"
)

const DefaultNumArticles = 10

var seedTitles = []string{
	"Exploring the Future of AI and Cryptocurrencies",
	"Why Large Language Models Change Everything",
	"A Practical Look at Vector Databases",
	"The State of Edge Computing in 2025",
	"Understanding Retrieval Augmented Generation",
	"Decentralized Identity, Explained",
	"What Quantum Computing Means for Security",
	"Building Resilient Microservices",
	"The Rise of On-Device Machine Learning",
	"Open Source AI Models Worth Watching",
}

// SeedArticles inserts count sample articles, cycling through the seed
// titles with numeric suffixes to keep slugs unique.
func SeedArticles(ctx context.Context, repo repository.ArticleRepository, count int) error {
	created := 0
	for i := 0; i < count; i++ {
		title := seedTitles[i%len(seedTitles)]
		if i >= len(seedTitles) {
			title = fmt.Sprintf("%s, Part %d", title, i/len(seedTitles)+1)
		}

		article := &models.Article{
			Title:     title,
			Content:   seedContent(title),
			Slug:      Slugify(title),
			CreatedAt: time.Now().UTC().Add(-time.Duration(count-i) * time.Hour),
		}

		exists, err := repo.SlugExists(ctx, article.Slug)
		if err != nil {
			return fmt.Errorf("failed to check slug %q: %w", article.Slug, err)
		}
		if exists {
			log.Printf("Skipping %q, slug already present", article.Slug)
			continue
		}

		if err := repo.Create(ctx, article); err != nil {
			return fmt.Errorf("failed to create article %q: %w", title, err)
		}
		created++
	}

	log.Printf("Seeded %d articles", created)
	return nil
}

func seedContent(title string) string {
	paragraph := title + " is one of the most discussed topics in technology today. " +
		"This article walks through the current landscape, the trade-offs teams run into " +
		"in practice, and where the ecosystem is likely heading over the next few years."
	return strings.Repeat(paragraph+"\n\n", 3)
}
