package deck

import (
	"github.com/youruser/opdeck/internal/errors"
)

const (
	// MaxEntryQuantity is the most copies of one card a deck may hold.
	MaxEntryQuantity = 10
	// MaxDeckCards caps the total number of copies in a deck.
	MaxDeckCards = 500
)

// EditorState owns the entry list of one deck while it is being edited.
// Not safe for concurrent use.
type EditorState struct {
	DeckID  string
	engine  *Engine
	entries []Entry
}

// NewEditorState copies entries into a new state driven by engine.
func NewEditorState(deckID string, entries []Entry, engine *Engine) *EditorState {
	if engine == nil {
		engine = NewEngine()
	}
	s := &EditorState{DeckID: deckID, engine: engine}
	s.entries = append(make([]Entry, 0, len(entries)), entries...)
	return s
}

// Entries returns a copy of the current entry list.
func (s *EditorState) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}

func (s *EditorState) Entry(cardID string) (Entry, bool) {
	i := indexOf(s.entries, cardID)
	if i < 0 {
		return Entry{}, false
	}
	return s.entries[i], true
}

// Add adds qty copies of a card, merging into an existing entry.
func (s *EditorState) Add(cardType, cardID string, qty int, altImage string) (Entry, error) {
	if cardType == "" || cardID == "" {
		return Entry{}, errors.InvalidArgument("card type and card id are required")
	}
	if qty < 1 || qty > MaxEntryQuantity {
		return Entry{}, errors.InvalidArgumentf("quantity must be between 1 and %d, got %d", MaxEntryQuantity, qty)
	}
	if total := s.totalCards(); total+qty > MaxDeckCards {
		return Entry{}, errors.InvalidArgumentf("a deck holds at most %d cards, has %d", MaxDeckCards, total)
	}
	if i := indexOfTyped(s.entries, cardType, cardID); i >= 0 {
		if s.entries[i].Quantity+qty > MaxEntryQuantity {
			return Entry{}, errors.InvalidArgumentf("a deck holds at most %d copies of %s card %q, has %d",
				MaxEntryQuantity, cardType, cardID, s.entries[i].Quantity).WithMeta("card_id", cardID)
		}
		s.entries[i].Quantity += qty
		if altImage != "" {
			s.entries[i].SelectedAlternateImage = altImage
		}
		return s.entries[i], nil
	}
	en := Entry{CardID: cardID, Type: cardType, Quantity: qty, SelectedAlternateImage: altImage}
	s.entries = append(s.entries, en)
	return en, nil
}

// Remove takes qty copies away. The entry is deleted once no copies are
// left; removed reports that case.
func (s *EditorState) Remove(cardType, cardID string, qty int) (en Entry, removed bool, err error) {
	if qty < 1 {
		return Entry{}, false, errors.InvalidArgumentf("quantity must be positive, got %d", qty)
	}
	i := indexOfTyped(s.entries, cardType, cardID)
	if i < 0 {
		return Entry{}, false, errors.NotFoundf("%s card %q is not in the deck", cardType, cardID)
	}
	s.entries[i].Quantity -= qty
	en = s.entries[i]
	if en.Quantity <= 0 {
		en.Quantity = 0
		s.entries = append(s.entries[:i], s.entries[i+1:]...)
		return en, true, nil
	}
	return en, false, nil
}

func (s *EditorState) totalCards() int {
	total := 0
	for _, en := range s.entries {
		total += en.Quantity
	}
	return total
}

func (s *EditorState) Clear() {
	s.entries = s.entries[:0]
}

func (s *EditorState) DrawHand(handSize int) []DrawnCard {
	return s.engine.DrawHand(s.entries, handSize)
}

func (s *EditorState) DrawOpeningHand(handSize int) []DrawnCard {
	return s.engine.DrawOpeningHand(s.entries, handSize)
}

func (s *EditorState) ToggleExclusion(cardID string) (Entry, error) {
	return s.engine.ToggleExclusion(s.entries, cardID)
}

func (s *EditorState) SetExclusion(cardID string, exclude bool) (Entry, error) {
	return s.engine.SetExclusion(s.entries, cardID, exclude)
}
