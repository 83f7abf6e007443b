package tracker

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Store is the persistence surface the service needs. *Repository
// implements it.
type Store interface {
	FindOrCreatePost(ctx context.Context, url string) (*Post, error)
	CreateItemWithInitialPrice(ctx context.Context, postID int, name string, price float64) (*TrackedItem, error)
	GetItem(ctx context.Context, id int) (*TrackedItem, error)
	ListItems(ctx context.Context) ([]ItemWithPost, error)
	ListHistory(ctx context.Context, itemID int) ([]PricePoint, error)
	DeleteItem(ctx context.Context, id int) (bool, error)
}

type Service struct {
	store Store
	log   *logrus.Logger
}

func NewService(store Store, log *logrus.Logger) *Service {
	return &Service{store: store, log: log}
}

// TrackItems resolves the post for url, then creates one tracked item
// plus its initial observation per valid descriptor. Invalid descriptors
// (empty name, absent or non-positive price) are logged and skipped;
// the call fails with ErrNoValidItems only when nothing survived.
func (s *Service) TrackItems(ctx context.Context, url string, items []ItemInput) ([]int, error) {
	post, err := s.store.FindOrCreatePost(ctx, url)
	if err != nil {
		return nil, err
	}

	ids := []int{}
	for _, in := range items {
		if in.Name == "" || in.Price == nil || *in.Price <= 0 {
			s.log.WithFields(logrus.Fields{
				"post_url": url,
				"name":     in.Name,
			}).Warn("skipping invalid item descriptor")
			continue
		}
		item, err := s.store.CreateItemWithInitialPrice(ctx, post.ID, in.Name, *in.Price)
		if err != nil {
			return nil, err
		}
		ids = append(ids, item.ID)
	}

	if len(ids) == 0 {
		return nil, ErrNoValidItems
	}
	return ids, nil
}

func (s *Service) ListItems(ctx context.Context) ([]ItemWithPost, error) {
	return s.store.ListItems(ctx)
}

// ItemHistory returns an item's observations oldest first. An existing
// item with no history yields an empty slice, not an error.
func (s *Service) ItemHistory(ctx context.Context, id int) ([]PricePoint, error) {
	if _, err := s.store.GetItem(ctx, id); err != nil {
		return nil, err
	}
	return s.store.ListHistory(ctx, id)
}

func (s *Service) DeleteItem(ctx context.Context, id int) error {
	deleted, err := s.store.DeleteItem(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrItemNotFound
	}
	return nil
}
