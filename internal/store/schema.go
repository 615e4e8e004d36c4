package store

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// one statement per entry; lib/pq and modernc differ on multi-statement Exec
var schema = []string{
	`CREATE TABLE IF NOT EXISTS decks (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    is_limited BOOLEAN NOT NULL DEFAULT FALSE,
    ui_preferences TEXT,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_decks_user_id ON decks(user_id)`,
	`CREATE TABLE IF NOT EXISTS deck_cards (
    id TEXT PRIMARY KEY,
    deck_id TEXT NOT NULL REFERENCES decks(id) ON DELETE CASCADE,
    card_type TEXT NOT NULL,
    card_id TEXT NOT NULL,
    quantity INTEGER NOT NULL CHECK (quantity > 0),
    selected_alternate_image TEXT NOT NULL DEFAULT '',
    exclude_from_draw BOOLEAN NOT NULL DEFAULT FALSE,
    position BIGINT NOT NULL,
    UNIQUE (deck_id, card_type, card_id)
)`,
	`CREATE INDEX IF NOT EXISTS idx_deck_cards_deck_id ON deck_cards(deck_id)`,
}
