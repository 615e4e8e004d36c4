// Package deck holds the deck model and the rules that operate on a deck's
// entry list: drawing a random hand, pre-placing cards out of the draw,
// editing quantities, statistics, validation and text export.
package deck

import (
	"encoding/json"
	"time"

	"github.com/youruser/opdeck/internal/cards"
)

// Deck is a named list of entries owned by one user.
type Deck struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	IsLimited     bool            `json:"is_limited"`
	UIPreferences json.RawMessage `json:"ui_preferences,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Entries       []Entry         `json:"cards"`
}

// Entry is one line item of a deck. Quantity is always >= 1; an entry that
// drops to zero copies is removed from the list.
type Entry struct {
	ID                     string `json:"id,omitempty"`
	CardID                 string `json:"cardId"`
	Type                   string `json:"type"`
	Quantity               int    `json:"quantity"`
	ExcludeFromDraw        bool   `json:"exclude_from_draw"`
	SelectedAlternateImage string `json:"selectedAlternateImage,omitempty"`
}

// Drawable reports whether the entry contributes copies to the draw pile.
func (e Entry) Drawable() bool {
	return IsDrawableType(e.Type) && !e.ExcludeFromDraw && e.Quantity > 0
}

// DrawnCard is one card of a drawn hand. It only lives as long as the hand
// is on screen.
type DrawnCard struct {
	Position int    `json:"position"`
	CardID   string `json:"cardId"`
	Type     string `json:"type"`
	Name     string `json:"name"`
}

// IsDrawableType reports whether cards of type t may be drawn. Characters
// and locations start in play and never enter the draw pile.
func IsDrawableType(t string) bool {
	return t != cards.TypeCharacter && t != cards.TypeLocation
}

// NameResolver labels drawn cards for display.
type NameResolver interface {
	DisplayName(cardType, cardID string) string
}

// CardLookup resolves entries against the card catalog.
type CardLookup interface {
	Lookup(cardType, id string) (cards.Card, bool)
}

func indexOf(entries []Entry, cardID string) int {
	for i := range entries {
		if entries[i].CardID == cardID {
			return i
		}
	}
	return -1
}

func indexOfTyped(entries []Entry, cardType, cardID string) int {
	for i := range entries {
		if entries[i].Type == cardType && entries[i].CardID == cardID {
			return i
		}
	}
	return -1
}
