package store

import (
	"fmt"
	"slices"
	"sync"

	"github.com/abgdnv/inventory/internal/inventory/errors"
	"github.com/google/uuid"
)

// DefaultCapacity is the number of items storage is pre-sized for.
const DefaultCapacity = 30

// inMemory implements Inventory using an ordered id list and a map.
type inMemory struct {
	mu    sync.RWMutex
	order []uuid.UUID
	items map[uuid.UUID]*Item
}

// NewInMemoryStore creates a new instance of Inventory pre-sized for capacity items.
// The capacity is a hint, not a limit.
func NewInMemoryStore(capacity int) Inventory {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &inMemory{
		order: make([]uuid.UUID, 0, capacity),
		items: make(map[uuid.UUID]*Item, capacity),
	}
}

// Add appends the item and assigns it a fresh identifier.
func (s *inMemory) Add(item Item) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = uuid.New()
	s.order = append(s.order, item.ID)
	s.items[item.ID] = &item

	return Handle{id: item.ID}
}

// Remove deletes the referenced item.
func (s *inMemory) Remove(h Handle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[h.id]; !exists {
		return fmt.Errorf("remove %s: %w", h, errors.ErrInvalidHandle)
	}
	delete(s.items, h.id)
	s.order = slices.DeleteFunc(s.order, func(id uuid.UUID) bool { return id == h.id })
	return nil
}

// Find scans items in insertion order and stops at the first match.
func (s *inMemory) Find(pred Predicate) (Handle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		if pred(*s.items[id]) {
			return Handle{id: id}, true
		}
	}
	return Handle{}, false
}

// Get retrieves the referenced item.
func (s *inMemory) Get(h Handle) (Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[h.id]
	if !ok {
		return Item{}, fmt.Errorf("get %s: %w", h, errors.ErrInvalidHandle)
	}
	return *item, nil
}

// Update writes the edit through to the referenced item in place.
func (s *inMemory) Update(h Handle, edit Edit) (Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[h.id]
	if !ok {
		return Item{}, fmt.Errorf("update %s: %w", h, errors.ErrInvalidHandle)
	}
	item.Name = edit.Name
	item.BestBeforeDate = edit.BestBeforeDate
	item.Price = edit.Price
	item.Quantity = edit.Quantity
	return *item, nil
}

// List retrieves all items.
func (s *inMemory) List() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Item, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, *s.items[id])
	}
	return list
}

func (s *inMemory) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.order)
}
