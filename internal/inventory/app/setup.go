// Package app contains the application setup for the inventory manager.
package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/abgdnv/inventory/internal/config"
	"github.com/abgdnv/inventory/internal/inventory/category"
	"github.com/abgdnv/inventory/internal/inventory/console"
	"github.com/abgdnv/inventory/internal/inventory/service"
	"github.com/abgdnv/inventory/internal/inventory/store"
)

type Dependencies struct {
	InventoryService service.InventoryService
	Logger           *slog.Logger
	ClearScreen      bool
}

// SeedItems are the demo items a fresh session starts with when seeding is enabled.
func SeedItems() []service.ItemDto {
	return []service.ItemDto{
		{Barcode: "Coco", Name: "Coconut", BestBeforeDate: "14-10-2023", Price: 1.25, Quantity: 5, Category: int(category.Fruit)},
		{Barcode: "sham", Name: "Shampoo", BestBeforeDate: "66-99-2223", Price: 9.25, Quantity: 10, Category: int(category.Other)},
	}
}

// SetupDependencies builds the in-memory inventory and the service on top of it.
func SetupDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	svc := service.NewService(store.NewInMemoryStore(cfg.Inventory.Capacity), logger)

	if cfg.Inventory.Seed {
		for _, item := range SeedItems() {
			if _, err := svc.Add(item); err != nil {
				return nil, fmt.Errorf("failed to seed inventory: %w", err)
			}
		}
		logger.Debug("Inventory seeded", "count", len(SeedItems()))
	}

	return &Dependencies{
		InventoryService: svc,
		Logger:           logger,
		ClearScreen:      cfg.Console.Clear,
	}, nil
}

// NewSession creates the operator session reading from in and writing to out.
func NewSession(deps *Dependencies, in io.Reader, out io.Writer) *console.Session {
	return console.NewSession(deps.InventoryService, in, out, console.Options{ClearScreen: deps.ClearScreen}, deps.Logger)
}
