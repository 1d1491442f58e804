package main

import (
	"context"
	"flag"
	"log"
	"time"

	"techblog/database"
	"techblog/internal/repository"
	"techblog/internal/utils"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file from project root
	if err := godotenv.Load(); err != nil {
		// Try loading from parent directory (in case running from cmd/seed/)
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	count := flag.Int("count", utils.DefaultNumArticles, "Number of sample articles to create")
	flag.Parse()

	database.ConnectDatabase()
	defer database.Disconnect()

	repo := repository.NewArticleRepository(database.DB)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	if err := utils.SeedArticles(ctx, repo, *count); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
