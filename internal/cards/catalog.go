package cards

import "sort"

// Catalog is an immutable in-memory index over the loaded cards.
type Catalog struct {
	cards  []Card
	byKey  map[string]int
	byType map[string][]int
}

func key(cardType, id string) string {
	return cardType + "\x00" + id
}

// NewCatalog indexes cards by (type, id). Later duplicates replace earlier ones.
func NewCatalog(cards []Card) *Catalog {
	c := &Catalog{
		byKey:  make(map[string]int, len(cards)),
		byType: make(map[string][]int),
	}
	for _, card := range cards {
		k := key(card.Type, card.ID)
		if i, ok := c.byKey[k]; ok {
			c.cards[i] = card
			continue
		}
		c.byKey[k] = len(c.cards)
		c.byType[card.Type] = append(c.byType[card.Type], len(c.cards))
		c.cards = append(c.cards, card)
	}
	return c
}

// Lookup returns the card of the given type and id.
func (c *Catalog) Lookup(cardType, id string) (Card, bool) {
	if c == nil {
		return Card{}, false
	}
	i, ok := c.byKey[key(cardType, id)]
	if !ok {
		return Card{}, false
	}
	return c.cards[i], true
}

// DisplayName resolves a human-readable name, falling back to the id.
func (c *Catalog) DisplayName(cardType, id string) string {
	if card, ok := c.Lookup(cardType, id); ok && card.Name != "" {
		return card.Name
	}
	return id
}

// ByType returns the cards of one type sorted by name.
func (c *Catalog) ByType(cardType string) []Card {
	out := make([]Card, 0, len(c.byType[cardType]))
	for _, i := range c.byType[cardType] {
		out = append(out, c.cards[i])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (c *Catalog) All() []Card {
	out := make([]Card, len(c.cards))
	copy(out, c.cards)
	return out
}

func (c *Catalog) Len() int {
	return len(c.cards)
}
