// file: service/item_service_test.go

package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-auth-api/model"
	"go-auth-api/repository"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// mockCacheClient is a mock implementation of ICacheClient for testing
// the cache-aside behaviour without a live Redis.
type mockCacheClient struct{ mock.Mock }

func (m *mockCacheClient) Get(ctx context.Context, key string) *redis.StringCmd {
	args := m.Called(ctx, key)
	return args.Get(0).(*redis.StringCmd)
}

func (m *mockCacheClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	args := m.Called(ctx, key, value, expiration)
	return args.Get(0).(*redis.StatusCmd)
}

func (m *mockCacheClient) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	args := m.Called(ctx, keys)
	return args.Get(0).(*redis.IntCmd)
}

func TestItemService_ListItems_CacheMiss(t *testing.T) {
	mockCache := new(mockCacheClient)
	itemService := NewItemService(repository.NewItemRepository(), mockCache)

	mockCache.On("Get", mock.Anything, itemListCacheKey).
		Return(redis.NewStringResult("", redis.Nil)).Once()
	mockCache.On("Set", mock.Anything, itemListCacheKey, mock.Anything, 10*time.Minute).
		Return(redis.NewStatusResult("OK", nil)).Once()

	items, err := itemService.ListItems()

	assert.NoError(t, err)
	assert.Empty(t, items)
	mockCache.AssertExpectations(t)
}

func TestItemService_ListItems_CacheHit(t *testing.T) {
	mockCache := new(mockCacheClient)
	itemService := NewItemService(repository.NewItemRepository(), mockCache)

	cached := []*model.Item{{ID: 1, Name: "Widget", Price: 29.99}}
	data, err := json.Marshal(cached)
	assert.NoError(t, err)

	mockCache.On("Get", mock.Anything, itemListCacheKey).
		Return(redis.NewStringResult(string(data), nil)).Once()

	items, err := itemService.ListItems()

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "Widget", items[0].Name)
	// The store must not be consulted on a cache hit, so no Set either.
	mockCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockCache.AssertExpectations(t)
}

func TestItemService_CreateItem_InvalidatesCache(t *testing.T) {
	mockCache := new(mockCacheClient)
	itemService := NewItemService(repository.NewItemRepository(), mockCache)

	mockCache.On("Del", mock.Anything, []string{itemListCacheKey}).
		Return(redis.NewIntResult(1, nil)).Once()

	item, err := itemService.CreateItem(&model.ItemRequest{Name: "Widget", Price: 29.99})

	assert.NoError(t, err)
	assert.Equal(t, 1, item.ID)
	mockCache.AssertExpectations(t)
}

func TestItemService_WithoutCache(t *testing.T) {
	itemService := NewItemService(repository.NewItemRepository(), nil)

	created, err := itemService.CreateItem(&model.ItemRequest{Name: "Widget", Description: "A widget", Price: 29.99})
	assert.NoError(t, err)

	fetched, err := itemService.GetItem(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Widget", fetched.Name)

	updated, err := itemService.UpdateItem(created.ID, &model.ItemRequest{Name: "Gadget", Price: 49.99})
	assert.NoError(t, err)
	assert.Equal(t, "Gadget", updated.Name)

	assert.NoError(t, itemService.DeleteItem(created.ID))

	_, err = itemService.GetItem(created.ID)
	assert.ErrorIs(t, err, repository.ErrItemNotFound)
}
