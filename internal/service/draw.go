package service

import (
	"context"

	"github.com/youruser/opdeck/internal/deck"
	"github.com/youruser/opdeck/internal/errors"
	"github.com/youruser/opdeck/internal/handsession"
)

// DrawHand draws a fresh hand from the deck and keeps it as the user's
// current hand. Any caller may draw from any deck.
func (s *DeckService) DrawHand(ctx context.Context, userID, deckID string) (*handsession.Hand, error) {
	state, err := s.editorState(ctx, deckID)
	if err != nil {
		return nil, err
	}
	var cards []deck.DrawnCard
	if s.bonus {
		cards = state.DrawOpeningHand(s.handSize)
	} else {
		cards = state.DrawHand(s.handSize)
	}

	hand := &handsession.Hand{
		DeckID:  deckID,
		UserID:  handOwner(userID),
		Cards:   cards,
		DrawnAt: s.clock.Now(),
	}
	if err := s.hands.Save(ctx, hand, s.handTTL); err != nil {
		// the hand is still usable without a session
		s.logger.Warn("failed to keep drawn hand", "deck_id", deckID, "error", err)
	}
	s.logger.Debug("hand drawn", "deck_id", deckID, "cards", len(cards))
	return hand, nil
}

// GetHand returns the user's current hand for the deck.
func (s *DeckService) GetHand(ctx context.Context, userID, deckID string) (*handsession.Hand, error) {
	return s.hands.Get(ctx, deckID, handOwner(userID))
}

// ReorderHand swaps two cards of the current hand and keeps the remaining
// lifetime of the hand.
func (s *DeckService) ReorderHand(ctx context.Context, userID, deckID string, from, to int) (*handsession.Hand, error) {
	hand, err := s.hands.Get(ctx, deckID, handOwner(userID))
	if err != nil {
		return nil, err
	}
	if err := hand.Swap(from, to); err != nil {
		return nil, err
	}
	ttl := hand.ExpiresAt.Sub(s.clock.Now())
	if ttl <= 0 {
		return nil, errors.NotFound("drawn hand has expired")
	}
	if err := s.hands.Save(ctx, hand, ttl); err != nil {
		return nil, err
	}
	return hand, nil
}

// ToggleExclusion flips whether a card is held out of the draw and saves
// the new flag. The in-memory state is discarded if the save fails.
func (s *DeckService) ToggleExclusion(ctx context.Context, userID, deckID, cardID string) (deck.Entry, error) {
	if err := s.requireOwner(ctx, deckID, userID); err != nil {
		return deck.Entry{}, err
	}
	state, err := s.editorState(ctx, deckID)
	if err != nil {
		return deck.Entry{}, err
	}
	en, err := state.ToggleExclusion(cardID)
	if err != nil {
		return deck.Entry{}, err
	}
	return en, s.saveExclusion(ctx, deckID, en)
}

// SetExclusion sets the draw exclusion flag of a card.
func (s *DeckService) SetExclusion(ctx context.Context, userID, deckID, cardID string, exclude bool) (deck.Entry, error) {
	if err := s.requireOwner(ctx, deckID, userID); err != nil {
		return deck.Entry{}, err
	}
	state, err := s.editorState(ctx, deckID)
	if err != nil {
		return deck.Entry{}, err
	}
	en, err := state.SetExclusion(cardID, exclude)
	if err != nil {
		return deck.Entry{}, err
	}
	return en, s.saveExclusion(ctx, deckID, en)
}

func (s *DeckService) saveExclusion(ctx context.Context, deckID string, en deck.Entry) error {
	if err := s.repo.SetExcludeFromDraw(ctx, deckID, en.Type, en.CardID, en.ExcludeFromDraw); err != nil {
		return errors.Wrap(err, "failed to save draw exclusion")
	}
	s.logger.Info("draw exclusion saved", "deck_id", deckID, "card_id", en.CardID, "exclude_from_draw", en.ExcludeFromDraw)
	return nil
}

// handOwner keys hands of anonymous callers under a shared guest id.
func handOwner(userID string) string {
	if userID == "" {
		return "guest"
	}
	return userID
}
