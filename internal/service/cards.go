package service

import (
	"github.com/youruser/opdeck/internal/cards"
	"github.com/youruser/opdeck/internal/errors"
)

// Cards lists the catalog, or one type of it when cardType is set.
func (s *DeckService) Cards(cardType string) ([]cards.Card, error) {
	if cardType == "" {
		return s.catalog.All(), nil
	}
	if !cards.IsKnownType(cardType) {
		return nil, errors.InvalidArgumentf("unknown card type %q", cardType)
	}
	return s.catalog.ByType(cardType), nil
}

func (s *DeckService) FilterCards(opt cards.FilterOptions) []cards.Card {
	return cards.Filter(s.catalog.All(), opt)
}
