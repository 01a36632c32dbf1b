// Package fixtures generates fake blog posts and seeds them into a store.
package fixtures

import (
	"fmt"
	"log/slog"
	"time"

	"blogapi/app/models"
	"blogapi/app/repositories"

	"github.com/Pallinder/go-randomdata"
)

// DefaultSeedCount is the number of posts seeded before each integration test.
const DefaultSeedCount = 10

// GenerateBlogPost returns a post filled with random but well-formed values.
// The ID is left empty for the store to assign and Created lies between one
// and 365 days in the past.
func GenerateBlogPost() *models.BlogPost {
	age := time.Duration(randomdata.Number(24, 24*365)) * time.Hour
	return &models.BlogPost{
		Author: models.Author{
			FirstName: randomdata.FirstName(randomdata.RandomGender),
			LastName:  randomdata.LastName(),
		},
		Title:   fmt.Sprintf("%s and the %s %s", randomdata.SillyName(), randomdata.Adjective(), randomdata.Noun()),
		Content: randomdata.Paragraph(),
		Created: time.Now().UTC().Add(-age).Truncate(time.Second),
	}
}

// SeedBlogData inserts n generated posts with a single bulk insert and returns
// them with their assigned IDs.
func SeedBlogData(repo repositories.PostRepository, n int, logger *slog.Logger) ([]*models.BlogPost, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("seeding blog data", "count", n)

	posts := make([]*models.BlogPost, 0, n)
	for i := 0; i < n; i++ {
		posts = append(posts, GenerateBlogPost())
	}

	if err := repo.InsertMany(posts); err != nil {
		return nil, fmt.Errorf("seed blog data: %w", err)
	}
	return posts, nil
}
