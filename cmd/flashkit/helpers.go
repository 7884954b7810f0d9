package main

import (
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"

	"github.com/flashkit-cli/flashkit/internal/config"
	"github.com/flashkit-cli/flashkit/internal/database"
	"github.com/flashkit-cli/flashkit/internal/deck"
	"github.com/flashkit-cli/flashkit/internal/history"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// newDeckRepository opens the configured deck directory, creating it when it
// does not exist yet.
func newDeckRepository(cfg *config.Config) (deck.Repository, error) {
	if err := os.MkdirAll(cfg.Decks.Directory, 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll(%s) > %w", cfg.Decks.Directory, err)
	}
	return deck.NewYamlRepository(cfg.Decks.Directory)
}

// newHistoryRepository returns a review log repository when a database is
// configured, and nil otherwise. The caller closes the returned connection.
func newHistoryRepository(cfg *config.Config) (history.Repository, *sqlx.DB, error) {
	if !cfg.Database.Enabled() {
		return nil, nil, nil
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("database.Open() > %w", err)
	}
	return history.NewDBReviewRepository(db), db, nil
}
