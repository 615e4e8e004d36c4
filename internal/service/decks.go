package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/youruser/opdeck/internal/cards"
	"github.com/youruser/opdeck/internal/deck"
	"github.com/youruser/opdeck/internal/errors"
)

// CreateDeckInput describes a new deck. Cards are optional.
type CreateDeckInput struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	IsLimited   bool         `json:"is_limited"`
	Cards       []deck.Entry `json:"cards"`
}

// UpdateDeckInput changes only the fields that are set.
type UpdateDeckInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsLimited   *bool   `json:"is_limited"`
}

type AddCardInput struct {
	Type                   string `json:"cardType"`
	CardID                 string `json:"cardId"`
	Quantity               int    `json:"quantity"`
	SelectedAlternateImage string `json:"selectedAlternateImage"`
}

// ClearAll as both card type and card id removes every card of a deck.
const ClearAll = "all"

func (s *DeckService) CreateDeck(ctx context.Context, userID string, in CreateDeckInput) (*deck.Deck, error) {
	if userID == "" {
		return nil, errors.PermissionDenied("a user id is required to create a deck")
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, errors.InvalidArgument("deck name is required")
	}
	// duplicates merge and quantities are bounded before anything is stored
	state := deck.NewEditorState("", nil, s.engine)
	for _, en := range in.Cards {
		if err := s.checkCard(en.Type, en.CardID); err != nil {
			return nil, err
		}
		qty := en.Quantity
		if qty == 0 {
			qty = 1
		}
		if _, err := state.Add(en.Type, en.CardID, qty, en.SelectedAlternateImage); err != nil {
			return nil, err
		}
	}
	entries := state.Entries()
	for _, src := range in.Cards {
		if !src.ExcludeFromDraw {
			continue
		}
		for i := range entries {
			if entries[i].Type == src.Type && entries[i].CardID == src.CardID {
				entries[i].ExcludeFromDraw = true
			}
		}
	}

	d := &deck.Deck{
		ID:          s.idGen.Generate(),
		UserID:      userID,
		Name:        name,
		Description: in.Description,
		IsLimited:   in.IsLimited,
		CreatedAt:   s.clock.Now().UTC(),
		Entries:     entries,
	}
	if err := s.repo.CreateDeck(ctx, d); err != nil {
		return nil, err
	}
	s.logger.Info("deck created", "deck_id", d.ID, "user_id", userID, "cards", len(d.Entries))
	return d, nil
}

func (s *DeckService) GetDeck(ctx context.Context, deckID string) (*deck.Deck, error) {
	return s.repo.GetDeck(ctx, deckID)
}

func (s *DeckService) ListDecks(ctx context.Context, userID string) ([]*deck.Deck, error) {
	if userID == "" {
		return []*deck.Deck{}, nil
	}
	return s.repo.ListDecks(ctx, userID)
}

func (s *DeckService) UpdateDeck(ctx context.Context, userID, deckID string, in UpdateDeckInput) (*deck.Deck, error) {
	if err := s.requireOwner(ctx, deckID, userID); err != nil {
		return nil, err
	}
	d, err := s.repo.GetDeck(ctx, deckID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		d.Name = strings.TrimSpace(*in.Name)
		if d.Name == "" {
			return nil, errors.InvalidArgument("deck name cannot be empty")
		}
	}
	if in.Description != nil {
		d.Description = *in.Description
	}
	if in.IsLimited != nil {
		d.IsLimited = *in.IsLimited
	}
	if err := s.repo.UpdateDeck(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DeckService) DeleteDeck(ctx context.Context, userID, deckID string) error {
	if err := s.requireOwner(ctx, deckID, userID); err != nil {
		return err
	}
	if err := s.repo.DeleteDeck(ctx, deckID); err != nil {
		return err
	}
	if err := s.hands.DeleteDeck(ctx, deckID); err != nil {
		s.logger.Warn("failed to drop drawn hands of deleted deck", "deck_id", deckID, "error", err)
	}
	s.logger.Info("deck deleted", "deck_id", deckID, "user_id", userID)
	return nil
}

// AddCard adds copies of a catalog card. Quantity defaults to 1.
func (s *DeckService) AddCard(ctx context.Context, userID, deckID string, in AddCardInput) (deck.Entry, error) {
	if in.Quantity == 0 {
		in.Quantity = 1
	}
	if err := s.checkCard(in.Type, in.CardID); err != nil {
		return deck.Entry{}, err
	}
	if err := s.requireOwner(ctx, deckID, userID); err != nil {
		return deck.Entry{}, err
	}
	state, err := s.editorState(ctx, deckID)
	if err != nil {
		return deck.Entry{}, err
	}
	if _, err := state.Add(in.Type, in.CardID, in.Quantity, in.SelectedAlternateImage); err != nil {
		return deck.Entry{}, err
	}
	return s.repo.AddCard(ctx, deckID, deck.Entry{
		CardID:                 in.CardID,
		Type:                   in.Type,
		Quantity:               in.Quantity,
		SelectedAlternateImage: in.SelectedAlternateImage,
	})
}

// RemoveCard removes qty copies, or every card when type and id are ClearAll.
func (s *DeckService) RemoveCard(ctx context.Context, userID, deckID, cardType, cardID string, qty int) (bool, error) {
	if err := s.requireOwner(ctx, deckID, userID); err != nil {
		return false, err
	}
	if cardType == ClearAll && cardID == ClearAll {
		if err := s.repo.ClearCards(ctx, deckID); err != nil {
			return false, err
		}
		return true, nil
	}
	if qty == 0 {
		qty = 1
	}
	state, err := s.editorState(ctx, deckID)
	if err != nil {
		return false, err
	}
	if _, _, err := state.Remove(cardType, cardID, qty); err != nil {
		return false, err
	}
	return s.repo.RemoveCard(ctx, deckID, cardType, cardID, qty)
}

func (s *DeckService) GetUIPreferences(ctx context.Context, deckID string) (json.RawMessage, error) {
	return s.repo.GetUIPreferences(ctx, deckID)
}

func (s *DeckService) UpdateUIPreferences(ctx context.Context, userID, deckID string, prefs json.RawMessage) error {
	if err := s.requireOwner(ctx, deckID, userID); err != nil {
		return err
	}
	return s.repo.UpdateUIPreferences(ctx, deckID, prefs)
}

func (s *DeckService) ExportText(ctx context.Context, deckID string) (string, error) {
	d, err := s.repo.GetDeck(ctx, deckID)
	if err != nil {
		return "", err
	}
	return deck.ExportText(*d, s.catalog), nil
}

// checkCard rejects unknown types, and unknown cards once a catalog is loaded.
func (s *DeckService) checkCard(cardType, cardID string) error {
	if cardID == "" {
		return errors.InvalidArgument("card id is required")
	}
	if !cards.IsKnownType(cardType) {
		return errors.InvalidArgumentf("unknown card type %q", cardType)
	}
	if s.catalog.Len() == 0 {
		return nil
	}
	if _, ok := s.catalog.Lookup(cardType, cardID); !ok {
		return errors.NotFoundf("%s card %q is not in the catalog", cardType, cardID)
	}
	return nil
}
