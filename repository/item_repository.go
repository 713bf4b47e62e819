package repository

import (
	"errors"
	"sync"

	"go-auth-api/model"
)

var ErrItemNotFound = errors.New("item not found")

// IItemRepository defines the contract for item storage.
type IItemRepository interface {
	Insert(item *model.Item) error
	GetByID(id int) (*model.Item, error)
	GetAll() ([]*model.Item, error)
	Update(item *model.Item) error
	Delete(id int) error
}

// ItemRepository is an in-memory item store keyed by id.
type ItemRepository struct {
	mu     sync.RWMutex
	items  map[int]*model.Item
	nextID int
}

// NewItemRepository creates an empty ItemRepository.
func NewItemRepository() *ItemRepository {
	return &ItemRepository{items: make(map[int]*model.Item)}
}

// Insert stores a new item and assigns its id.
func (r *ItemRepository) Insert(item *model.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	item.ID = r.nextID

	stored := *item
	r.items[item.ID] = &stored
	return nil
}

// GetByID returns a copy of the stored item.
func (r *ItemRepository) GetByID(id int) (*model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[id]
	if !exists {
		return nil, ErrItemNotFound
	}

	found := *item
	return &found, nil
}

// GetAll returns copies of all stored items ordered by id.
func (r *ItemRepository) GetAll() ([]*model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*model.Item, 0, len(r.items))
	for id := 1; id <= r.nextID; id++ {
		if item, exists := r.items[id]; exists {
			found := *item
			items = append(items, &found)
		}
	}
	return items, nil
}

// Update replaces a stored item in full.
func (r *ItemRepository) Update(item *model.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		return ErrItemNotFound
	}

	stored := *item
	r.items[item.ID] = &stored
	return nil
}

// Delete removes an item. Ids are never reused.
func (r *ItemRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[id]; !exists {
		return ErrItemNotFound
	}

	delete(r.items, id)
	return nil
}
