package service

import (
	"context"

	"github.com/youruser/opdeck/internal/deck"
)

// UserStats summarizes every deck of one user.
type UserStats struct {
	TotalDecks   int `json:"total_decks"`
	TotalCards   int `json:"total_cards"`
	LimitedDecks int `json:"limited_decks"`
	LegalDecks   int `json:"legal_decks"`
}

func (s *DeckService) Stats(ctx context.Context, deckID string) (deck.Stats, error) {
	d, err := s.repo.GetDeck(ctx, deckID)
	if err != nil {
		return deck.Stats{}, err
	}
	return deck.ComputeStats(d.Entries, s.handSize), nil
}

func (s *DeckService) UserStats(ctx context.Context, userID string) (UserStats, error) {
	decks, err := s.ListDecks(ctx, userID)
	if err != nil {
		return UserStats{}, err
	}
	var st UserStats
	for _, d := range decks {
		st.TotalDecks++
		if d.IsLimited {
			st.LimitedDecks++
		}
		for _, en := range d.Entries {
			st.TotalCards += en.Quantity
		}
		if len(deck.Validate(d.Entries, s.catalog)) == 0 {
			st.LegalDecks++
		}
	}
	return st, nil
}

func (s *DeckService) ValidateDeck(ctx context.Context, deckID string) ([]deck.ValidationError, error) {
	d, err := s.repo.GetDeck(ctx, deckID)
	if err != nil {
		return nil, err
	}
	return s.ValidateEntries(d.Entries), nil
}

// ValidateEntries checks an unsaved entry list.
func (s *DeckService) ValidateEntries(entries []deck.Entry) []deck.ValidationError {
	return deck.Validate(entries, s.catalog)
}
