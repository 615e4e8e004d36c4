package deck

import (
	"sort"

	"github.com/youruser/opdeck/internal/cards"
)

type Stats struct {
	TotalCards    int            `json:"total_cards"`
	PlayableCards int            `json:"playable_cards"`
	DrawPileCards int            `json:"draw_pile_cards"`
	ExcludedCards int            `json:"excluded_cards"`
	CanDrawHand   bool           `json:"can_draw_hand"`
	UniqueTypes   []string       `json:"unique_types"`
	TypeBreakdown map[string]int `json:"type_breakdown"`
}

// isPlayable matches the deck-size count: everything but the cards that
// start in play.
func isPlayable(t string) bool {
	return t != cards.TypeCharacter && t != cards.TypeLocation && t != cards.TypeMission
}

// ComputeStats summarizes entries. A hand can be drawn once the deck holds
// at least handSize playable cards.
func ComputeStats(entries []Entry, handSize int) Stats {
	st := Stats{TypeBreakdown: map[string]int{}, UniqueTypes: []string{}}
	for _, en := range entries {
		st.TotalCards += en.Quantity
		if _, ok := st.TypeBreakdown[en.Type]; !ok {
			st.UniqueTypes = append(st.UniqueTypes, en.Type)
		}
		st.TypeBreakdown[en.Type] += en.Quantity
		if isPlayable(en.Type) {
			st.PlayableCards += en.Quantity
		}
		if en.Drawable() {
			st.DrawPileCards += en.Quantity
		} else if en.ExcludeFromDraw && IsDrawableType(en.Type) {
			st.ExcludedCards += en.Quantity
		}
	}
	sort.Strings(st.UniqueTypes)
	st.CanDrawHand = handSize > 0 && st.PlayableCards >= handSize
	return st
}
