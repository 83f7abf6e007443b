// Seed inserts a sample post with one tracked item and a backfilled
// price history, for trying the API and the frontend chart locally.
package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"pricetracker/internal/config"
	"pricetracker/internal/database"
	"pricetracker/internal/tracker"
)

type sample struct {
	price float64
	at    string
}

var sampleHistory = []sample{
	{100.00, "2024-01-01T10:00:00Z"},
	{95.50, "2024-01-05T14:30:00Z"},
	{102.20, "2024-01-10T09:15:00Z"},
	{98.00, "2024-01-15T11:00:00Z"},
	{105.75, "2024-01-20T16:45:00Z"},
	{103.00, "2024-01-25T08:00:00Z"},
	{110.50, "2024-02-01T12:00:00Z"},
	{108.20, "2024-02-05T10:00:00Z"},
	{115.00, "2024-02-10T14:00:00Z"},
	{112.50, "2024-02-15T09:00:00Z"},
}

const (
	samplePostURL  = "https://www.example.com/sample_product_post"
	sampleItemName = "Sample Tracked Item"
)

func main() {
	_ = godotenv.Load()

	log := logrus.New()
	cfg := config.Load()
	ctx := context.Background()

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	defer pool.Close()

	repo := tracker.NewRepository(pool)

	post, err := repo.FindOrCreatePost(ctx, samplePostURL)
	if err != nil {
		log.WithError(err).Fatal("failed to resolve sample post")
	}

	// Current price snapshot is the most recent sample, matching what
	// an ingest at that point would have recorded.
	last := sampleHistory[len(sampleHistory)-1]
	item, err := repo.CreateItem(ctx, post.ID, sampleItemName, last.price)
	if err != nil {
		log.WithError(err).Fatal("failed to create sample item")
	}

	for _, s := range sampleHistory {
		at, err := time.Parse(time.RFC3339, s.at)
		if err != nil {
			log.WithError(err).Fatalf("bad sample timestamp %q", s.at)
		}
		if err := repo.InsertPriceEntry(ctx, item.ID, s.price, at); err != nil {
			log.WithError(err).Fatal("failed to insert sample price")
		}
	}

	log.WithFields(logrus.Fields{
		"item_id": item.ID,
		"entries": len(sampleHistory),
	}).Infof("inserted sample data for %q", sampleItemName)
}
