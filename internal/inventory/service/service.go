// Package service provides the implementation of inventory business logic.
package service

import (
	goerrors "errors"
	"fmt"
	"log/slog"

	"github.com/abgdnv/inventory/internal/inventory/category"
	"github.com/abgdnv/inventory/internal/inventory/errors"
	"github.com/abgdnv/inventory/internal/inventory/query"
	"github.com/abgdnv/inventory/internal/inventory/store"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// InventoryService defines the operations an operator session performs on the inventory.
type InventoryService interface {
	// Add stores a new item.
	// Returns ErrInvalidCategory if the category index is out of range.
	Add(item ItemDto) (*ItemDto, error)

	// FindAll returns every item in insertion order.
	FindAll() []ItemDto

	// Find runs a search and returns the first match.
	// Returns ErrItemNotFound if nothing matches, ErrUnknownSearchMode for an unknown mode
	// and ErrInvalidExpression for an expression that does not compile.
	Find(mode query.Mode, term string) (*Match, error)

	// Edit overwrites name, best before date, price and quantity of the matched item.
	// Returns ErrInvalidHandle if the handle no longer refers to an item.
	Edit(h store.Handle, edit EditDto) (*ItemDto, error)

	// Remove deletes the matched item.
	// Returns ErrInvalidHandle if the handle no longer refers to an item.
	Remove(h store.Handle) error

	// Valuation summarizes the stock currently held.
	Valuation() Valuation
}

// ItemDto represents the data transfer object for an item.
type ItemDto struct {
	ID             uuid.UUID
	Barcode        string
	Name           string
	BestBeforeDate string
	Price          float64
	Quantity       int
	Category       int `validate:"category"`
}

// CategoryName returns the display name of the item's category.
func (d ItemDto) CategoryName() string {
	return category.DisplayName(d.Category)
}

// EditDto carries the new values for an edited item.
type EditDto struct {
	Name           string
	BestBeforeDate string
	Price          float64
	Quantity       int
}

// Match is a found item together with the handle it was found under.
type Match struct {
	Handle store.Handle
	Item   ItemDto
}

// service implements InventoryService.
type service struct {
	inventory store.Inventory
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewService creates a new instance of InventoryService backed by inventory.
func NewService(inventory store.Inventory, logger *slog.Logger) InventoryService {
	return &service{
		inventory: inventory,
		validate:  newValidator(),
		logger:    logger.With("component", "service"),
	}
}

func newValidator() *validator.Validate {
	v := validator.New()
	// registration only fails for an empty tag or a nil function
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return category.IsValid(int(fl.Field().Int()))
	})
	return v
}

// Add validates the item and appends it to the inventory.
func (s *service) Add(item ItemDto) (*ItemDto, error) {
	if err := s.validate.Struct(item); err != nil {
		var validationErrors validator.ValidationErrors
		if goerrors.As(err, &validationErrors) {
			s.logger.Warn("Rejected item", "barcode", item.Barcode, "category", item.Category)
			return nil, fmt.Errorf("category %d: %w", item.Category, errors.ErrInvalidCategory)
		}
		return nil, fmt.Errorf("failed to validate item: %w", err)
	}

	h := s.inventory.Add(fromDto(item))
	added, err := s.inventory.Get(h)
	if err != nil {
		return nil, fmt.Errorf("failed to read added item: %w", err)
	}
	s.logger.Info("Item added", "ID", added.ID, "barcode", added.Barcode, "name", added.Name)
	return toDto(added), nil
}

// FindAll retrieves all items as ItemDtos.
func (s *service) FindAll() []ItemDto {
	items := s.inventory.List()
	list := make([]ItemDto, len(items))
	for i, item := range items {
		list[i] = *toDto(item)
	}
	s.logger.Debug("Listed items", "count", len(list))
	return list
}

// Find builds the predicate for mode and returns the first matching item.
func (s *service) Find(mode query.Mode, term string) (*Match, error) {
	pred, err := query.For(mode, term)
	if err != nil {
		s.logger.Warn("Search rejected", "mode", mode, "term", term, "error", err)
		return nil, err
	}
	h, ok := s.inventory.Find(pred)
	if !ok {
		s.logger.Debug("No item matched", "mode", mode, "term", term)
		return nil, fmt.Errorf("%s %q: %w", mode, term, errors.ErrItemNotFound)
	}
	item, err := s.inventory.Get(h)
	if err != nil {
		return nil, fmt.Errorf("failed to read found item: %w", err)
	}
	s.logger.Debug("Item found", "mode", mode, "term", term, "ID", item.ID)
	return &Match{Handle: h, Item: *toDto(item)}, nil
}

// Edit writes the new values through the handle.
func (s *service) Edit(h store.Handle, edit EditDto) (*ItemDto, error) {
	updated, err := s.inventory.Update(h, store.Edit{
		Name:           edit.Name,
		BestBeforeDate: edit.BestBeforeDate,
		Price:          edit.Price,
		Quantity:       edit.Quantity,
	})
	if err != nil {
		s.logger.Error("Error editing item", "handle", h, "error", err)
		return nil, fmt.Errorf("failed to edit item: %w", err)
	}
	s.logger.Info("Item updated", "ID", updated.ID, "barcode", updated.Barcode, "name", updated.Name)
	return toDto(updated), nil
}

// Remove deletes the item referenced by the handle.
func (s *service) Remove(h store.Handle) error {
	if err := s.inventory.Remove(h); err != nil {
		s.logger.Error("Error removing item", "handle", h, "error", err)
		return fmt.Errorf("failed to remove item: %w", err)
	}
	s.logger.Info("Item removed", "ID", h.ID())
	return nil
}

func (s *service) Valuation() Valuation {
	return valuate(s.inventory.List())
}

func fromDto(item ItemDto) store.Item {
	return store.Item{
		Barcode:        item.Barcode,
		Name:           item.Name,
		BestBeforeDate: item.BestBeforeDate,
		Price:          item.Price,
		Quantity:       item.Quantity,
		Category:       category.Category(item.Category),
	}
}

// toDto converts a store.Item to an ItemDto.
func toDto(item store.Item) *ItemDto {
	return &ItemDto{
		ID:             item.ID,
		Barcode:        item.Barcode,
		Name:           item.Name,
		BestBeforeDate: item.BestBeforeDate,
		Price:          item.Price,
		Quantity:       item.Quantity,
		Category:       int(item.Category),
	}
}
