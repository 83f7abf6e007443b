package tracker

import (
	"encoding/json"
	"time"
)

// Post is one external listing; tracked items hang off it. A post is
// created lazily the first time its url is seen and never deleted.
type Post struct {
	ID  int
	URL string
}

// TrackedItem is one monitored item within a post. CurrentPrice is the
// snapshot taken at creation; only the history table grows afterwards.
// It never goes on the wire; the list endpoint serializes ItemWithPost.
type TrackedItem struct {
	ID           int
	ItemName     string
	CurrentPrice float64
	PostID       int
	CreatedAt    time.Time
}

// ItemWithPost is the list-endpoint row: an item annotated with its
// owning post's url.
type ItemWithPost struct {
	ID           int       `json:"id"`
	ItemName     string    `json:"itemName"`
	CurrentPrice float64   `json:"currentPrice"`
	PostURL      string    `json:"postUrl"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PricePoint is one observed price for an item.
type PricePoint struct {
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

// ItemInput is a single descriptor in an ingest payload. Price is a
// pointer so an absent field is distinguishable from zero.
type ItemInput struct {
	Name  string   `json:"name"`
	Price *float64 `json:"price"`
}

// UnmarshalJSON decodes a descriptor leniently: a price that is absent,
// null, or not a JSON number leaves Price nil so the descriptor is
// skipped on its own, instead of failing the whole payload.
func (i *ItemInput) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name  string          `json:"name"`
		Price json.RawMessage `json:"price"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	i.Name = raw.Name
	i.Price = nil
	var price *float64
	if len(raw.Price) > 0 && json.Unmarshal(raw.Price, &price) == nil {
		i.Price = price
	}
	return nil
}

// IngestRequest is the POST /api/items payload.
type IngestRequest struct {
	PostURL string      `json:"postUrl"`
	Items   []ItemInput `json:"items"`
}
