// Package store provides the inventory record store.
package store

import (
	"github.com/abgdnv/inventory/internal/inventory/category"
	"github.com/google/uuid"
)

// Inventory is an ordered collection of items.
// Items are kept in insertion order and are never deduplicated.
type Inventory interface {
	// Add appends an item to the end of the inventory and returns its handle.
	Add(item Item) Handle

	// Remove erases the item referenced by h.
	// Returns ErrInvalidHandle if h is empty or its item was already removed.
	Remove(h Handle) error

	// Find returns the handle of the first item, in insertion order, that matches pred.
	// The second result is false if no item matches.
	Find(pred Predicate) (Handle, bool)

	// Get returns a copy of the item referenced by h.
	// Returns ErrInvalidHandle if h is empty or its item was already removed.
	Get(h Handle) (Item, error)

	// Update overwrites the editable fields of the item referenced by h.
	// Barcode and category are preserved.
	// Returns ErrInvalidHandle if h is empty or its item was already removed.
	Update(h Handle, edit Edit) (Item, error)

	// List returns a copy of all items in insertion order.
	// Returns an empty slice if the inventory is empty.
	List() []Item

	// Len returns the number of items.
	Len() int
}

// Item represents a single stock record.
type Item struct {
	ID             uuid.UUID
	Name           string
	Barcode        string
	BestBeforeDate string
	Price          float64
	Quantity       int
	Category       category.Category
}

// Edit carries the fields that may change after an item was added.
type Edit struct {
	Name           string
	BestBeforeDate string
	Price          float64
	Quantity       int
}

// Predicate reports whether an item matches a search.
type Predicate func(item Item) bool

// Handle refers to an item found in an Inventory.
// A handle stays valid until its own item is removed; adding or removing
// other items does not affect it.
type Handle struct {
	id uuid.UUID
}

// ID returns the identifier of the referenced item.
func (h Handle) ID() uuid.UUID {
	return h.id
}

// IsZero reports whether h refers to no item.
func (h Handle) IsZero() bool {
	return h.id == uuid.Nil
}

func (h Handle) String() string {
	return h.id.String()
}
