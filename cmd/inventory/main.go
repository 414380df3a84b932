// Package main runs the interactive store inventory manager on the terminal.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/abgdnv/inventory/internal/bootstrap"
	"github.com/abgdnv/inventory/internal/config"
	"github.com/abgdnv/inventory/internal/inventory/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Printf("inventory manager failed: %v", err)
		os.Exit(1)
	}
}

// run loads the configuration, sets up logging and the inventory, and runs the operator session.
func run(ctx context.Context) error {
	cfg, err := config.Load(config.DefaultSources())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logOut, closeLog, err := bootstrap.OpenLogOutput(cfg.Log.File)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	logger := bootstrap.NewLogger(logOut, cfg.Log.Level, cfg.Log.Format)
	logger.Info("Inventory manager starting", "config", cfg.String())

	deps, err := app.SetupDependencies(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to set up application: %w", err)
	}

	if err := app.NewSession(deps, os.Stdin, os.Stdout).Run(ctx); err != nil {
		return fmt.Errorf("session failed: %w", err)
	}
	return nil
}
