// Package handsession keeps the most recently drawn hand of each deck and
// user so it survives a page refresh and can be reordered. Hands expire;
// they are never written to the deck store.
package handsession

import (
	"context"
	"strings"
	"time"

	"github.com/youruser/opdeck/internal/deck"
	"github.com/youruser/opdeck/internal/errors"
)

const (
	// Key pattern: draw_hand:{deck_id}:{user_id}
	keyPrefix  = "draw_hand:"
	defaultTTL = 30 * time.Minute

	errDeckIDEmpty = "deck ID cannot be empty"
	errDeckIDColon = "deck ID cannot contain ':'"
	errUserIDEmpty = "user ID cannot be empty"
)

// Hand is a drawn hand as shown to one user.
type Hand struct {
	DeckID    string           `json:"deck_id"`
	UserID    string           `json:"user_id"`
	Cards     []deck.DrawnCard `json:"cards"`
	DrawnAt   time.Time        `json:"drawn_at"`
	ExpiresAt time.Time        `json:"expires_at"`
}

// Swap exchanges the cards at positions i and j and renumbers positions.
func (h *Hand) Swap(i, j int) error {
	if i < 0 || j < 0 || i >= len(h.Cards) || j >= len(h.Cards) {
		return errors.InvalidArgumentf("positions %d and %d must be within a hand of %d cards", i, j, len(h.Cards))
	}
	h.Cards[i], h.Cards[j] = h.Cards[j], h.Cards[i]
	for pos := range h.Cards {
		h.Cards[pos].Position = pos
	}
	return nil
}

// Repository stores hands keyed by deck and user.
type Repository interface {
	// Save replaces the stored hand. A zero ttl uses the default.
	Save(ctx context.Context, hand *Hand, ttl time.Duration) error

	// Get returns a NotFound error when no unexpired hand exists.
	Get(ctx context.Context, deckID, userID string) (*Hand, error)

	Delete(ctx context.Context, deckID, userID string) error

	// DeleteDeck drops the hands of every user for deckID.
	DeleteDeck(ctx context.Context, deckID string) error
}

func validateDeckID(deckID string) error {
	if deckID == "" {
		return errors.InvalidArgument(errDeckIDEmpty)
	}
	if strings.Contains(deckID, ":") {
		return errors.InvalidArgument(errDeckIDColon)
	}
	return nil
}

func validateKey(deckID, userID string) error {
	if err := validateDeckID(deckID); err != nil {
		return err
	}
	if userID == "" {
		return errors.InvalidArgument(errUserIDEmpty)
	}
	return nil
}

func buildKey(deckID, userID string) string {
	return deckKeyPrefix(deckID) + userID
}

func deckKeyPrefix(deckID string) string {
	return keyPrefix + deckID + ":"
}
