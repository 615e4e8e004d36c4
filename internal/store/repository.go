// Package store persists decks and their entries in a relational database.
// SQLite (modernc.org/sqlite) and PostgreSQL (lib/pq) are supported through
// the same queries.
package store

import (
	"context"
	"encoding/json"

	"github.com/youruser/opdeck/internal/deck"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=storemock github.com/youruser/opdeck/internal/store Repository

// Repository defines deck storage operations. Every deck read includes its
// entries in insertion order.
type Repository interface {
	// CreateDeck inserts d and its entries in one transaction. ID, UserID
	// and Name must be set; entry ids are assigned.
	CreateDeck(ctx context.Context, d *deck.Deck) error

	GetDeck(ctx context.Context, id string) (*deck.Deck, error)

	// ListDecks returns the user's decks, most recently updated first.
	ListDecks(ctx context.Context, userID string) ([]*deck.Deck, error)

	// UpdateDeck saves name, description and is_limited.
	UpdateDeck(ctx context.Context, d *deck.Deck) error

	DeleteDeck(ctx context.Context, id string) error

	// AddCard adds en.Quantity copies, merging into an existing entry of the
	// same type and card id. It returns the stored entry.
	AddCard(ctx context.Context, deckID string, en deck.Entry) (deck.Entry, error)

	// RemoveCard takes qty copies away and deletes the row at zero.
	RemoveCard(ctx context.Context, deckID, cardType, cardID string, qty int) (removed bool, err error)

	ClearCards(ctx context.Context, deckID string) error

	SetExcludeFromDraw(ctx context.Context, deckID, cardType, cardID string, exclude bool) error

	GetUIPreferences(ctx context.Context, deckID string) (json.RawMessage, error)
	UpdateUIPreferences(ctx context.Context, deckID string, prefs json.RawMessage) error

	UserOwnsDeck(ctx context.Context, deckID, userID string) (bool, error)
}
