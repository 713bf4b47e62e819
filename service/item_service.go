// file: service/item_service.go

package service

import (
	"context"
	"encoding/json"
	"time"

	"go-auth-api/logger"
	"go-auth-api/model"
	"go-auth-api/repository"

	"github.com/redis/go-redis/v9"
)

const itemListCacheKey = "items:all"

// ItemService handles item business logic with a cache-aside strategy
// over the item list. The cache client may be nil, in which case every
// read goes straight to the store.
type ItemService struct {
	repo  repository.IItemRepository
	cache ICacheClient
}

// NewItemService creates an ItemService. Pass a nil cache to disable
// caching.
func NewItemService(repo repository.IItemRepository, cache ICacheClient) *ItemService {
	return &ItemService{repo: repo, cache: cache}
}

// CreateItem stores a new item and invalidates the cached list.
func (s *ItemService) CreateItem(req *model.ItemRequest) (*model.Item, error) {
	item := &model.Item{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}

	if err := s.repo.Insert(item); err != nil {
		return nil, err
	}

	s.invalidateListCache()
	return item, nil
}

// ListItems returns all items, serving from the cache when possible.
func (s *ItemService) ListItems() ([]*model.Item, error) {
	ctx := context.Background()

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, itemListCacheKey).Result()
		if err == nil {
			var items []*model.Item
			if err := json.Unmarshal([]byte(cached), &items); err == nil {
				return items, nil
			}
		} else if err != redis.Nil {
			logger.Log.WithError(err).Warn("Item list cache read failed, falling back to store")
		}
	}

	items, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(items); err == nil {
			s.cache.Set(ctx, itemListCacheKey, data, 10*time.Minute)
		}
	}

	return items, nil
}

// GetItem returns a single item by id.
func (s *ItemService) GetItem(id int) (*model.Item, error) {
	return s.repo.GetByID(id)
}

// UpdateItem replaces an item's fields and invalidates the cached list.
func (s *ItemService) UpdateItem(id int, req *model.ItemRequest) (*model.Item, error) {
	item := &model.Item{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}

	if err := s.repo.Update(item); err != nil {
		return nil, err
	}

	s.invalidateListCache()
	return item, nil
}

// DeleteItem removes an item and invalidates the cached list.
func (s *ItemService) DeleteItem(id int) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.invalidateListCache()
	return nil
}

func (s *ItemService) invalidateListCache() {
	if s.cache != nil {
		s.cache.Del(context.Background(), itemListCacheKey)
	}
}
