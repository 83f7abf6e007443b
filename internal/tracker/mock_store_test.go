package tracker

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) FindOrCreatePost(ctx context.Context, url string) (*Post, error) {
	args := m.Called(ctx, url)
	post, _ := args.Get(0).(*Post)
	return post, args.Error(1)
}

func (m *mockStore) CreateItemWithInitialPrice(ctx context.Context, postID int, name string, price float64) (*TrackedItem, error) {
	args := m.Called(ctx, postID, name, price)
	item, _ := args.Get(0).(*TrackedItem)
	return item, args.Error(1)
}

func (m *mockStore) GetItem(ctx context.Context, id int) (*TrackedItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*TrackedItem)
	return item, args.Error(1)
}

func (m *mockStore) ListItems(ctx context.Context) ([]ItemWithPost, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]ItemWithPost)
	return items, args.Error(1)
}

func (m *mockStore) ListHistory(ctx context.Context, itemID int) ([]PricePoint, error) {
	args := m.Called(ctx, itemID)
	points, _ := args.Get(0).([]PricePoint)
	return points, args.Error(1)
}

func (m *mockStore) DeleteItem(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
