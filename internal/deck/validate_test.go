package deck

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/youruser/opdeck/internal/cards"
)

func testCatalog() *cards.Catalog {
	list := []cards.Card{
		{ID: "leo", Type: cards.TypeCharacter, Name: "Leonidas", Threat: 18, Energy: 3, Combat: 7, BruteForce: 6, Intelligence: 3},
		{ID: "zeus", Type: cards.TypeCharacter, Name: "Zeus", Threat: 19, Energy: 8, Combat: 5, BruteForce: 5, Intelligence: 6},
		{ID: "holmes", Type: cards.TypeCharacter, Name: "Sherlock Holmes", Threat: 17, Energy: 2, Combat: 4, BruteForce: 2, Intelligence: 8},
		{ID: "tesla", Type: cards.TypeCharacter, Name: "Nikola Tesla", Threat: 18, Energy: 7, Combat: 1, BruteForce: 1, Intelligence: 8},
		{ID: "mob1", Type: cards.TypeCharacter, Name: "Angry Mob (Middle Ages)", Threat: 17},
		{ID: "mob2", Type: cards.TypeCharacter, Name: "Angry Mob (Industrial Age)", Threat: 17},
		{ID: "big", Type: cards.TypeCharacter, Name: "Big", Threat: 30},
		{ID: "loc1", Type: cards.TypeLocation, Name: "Sherwood", Threat: 2},
		{ID: "loc2", Type: cards.TypeLocation, Name: "Asclepieion", Threat: 3},
		{ID: "p8i", Type: cards.TypePower, Name: "8 - Intelligence", PowerType: "Intelligence", Value: 8},
		{ID: "p8c", Type: cards.TypePower, Name: "8 - Combat", PowerType: "Combat", Value: 8},
		{ID: "p8a", Type: cards.TypePower, Name: "8 - Any-Power", PowerType: "Any-Power", Value: 8},
		{ID: "sp-leo", Type: cards.TypeSpecial, Name: "Shield Wall", CharacterName: "Leonidas"},
		{ID: "sp-kong", Type: cards.TypeSpecial, Name: "Eighth Wonder", CharacterName: "King Kong"},
		{ID: "sp-any", Type: cards.TypeSpecial, Name: "Bait", CharacterName: "Any Character", OnePerDeck: true},
		{ID: "sp-mob", Type: cards.TypeSpecial, Name: "Pitchforks", CharacterName: "Angry Mob"},
		{ID: "ev-odin", Type: cards.TypeEvent, Name: "Ragnarok", MissionSet: "The Call of Cthulhu"},
		{ID: "ev-any", Type: cards.TypeEvent, Name: "Surprise", MissionSet: "Any-Mission"},
		{ID: "ev-once", Type: cards.TypeEvent, Name: "Eclipse", MissionSet: "Any-Mission", OnePerDeck: true},
		{ID: "sp-free", Type: cards.TypeSpecial, Name: "Second Wind", OnePerDeck: true},
		{ID: "tr-once", Type: cards.TypeTraining, Name: "Boot Camp", OnePerDeck: true},
	}
	for i := 1; i <= 7; i++ {
		list = append(list,
			cards.Card{ID: fmt.Sprintf("kc%d", i), Type: cards.TypeMission, Name: fmt.Sprintf("King Arthur %d", i), MissionSet: "King of the Jungle"},
			cards.Card{ID: fmt.Sprintf("cc%d", i), Type: cards.TypeMission, Name: fmt.Sprintf("Cthulhu %d", i), MissionSet: "The Call of Cthulhu"},
		)
	}
	return cards.NewCatalog(list)
}

// legalEntries is a 51 card deck that passes every rule.
func legalEntries() []Entry {
	out := []Entry{
		{CardID: "leo", Type: cards.TypeCharacter, Quantity: 1},
		{CardID: "zeus", Type: cards.TypeCharacter, Quantity: 1},
		{CardID: "holmes", Type: cards.TypeCharacter, Quantity: 1},
		{CardID: "tesla", Type: cards.TypeCharacter, Quantity: 1},
		{CardID: "loc1", Type: cards.TypeLocation, Quantity: 1},
		{CardID: "p8i", Type: cards.TypePower, Quantity: 20},
		{CardID: "sp-leo", Type: cards.TypeSpecial, Quantity: 10},
		{CardID: "sp-any", Type: cards.TypeSpecial, Quantity: 1},
	}
	for i := 1; i <= 7; i++ {
		out = append(out, Entry{CardID: fmt.Sprintf("cc%d", i), Type: cards.TypeMission, Quantity: 1})
	}
	// fill with a training card to reach 51
	out = append(out, Entry{CardID: "tr", Type: cards.TypeTraining, Quantity: 8})
	return out
}

func rules(errs []ValidationError) []string {
	out := []string{}
	for _, e := range errs {
		out = append(out, e.Rule)
	}
	return out
}

func replace(entries []Entry, cardID string, en Entry) []Entry {
	out := append([]Entry(nil), entries...)
	for i := range out {
		if out[i].CardID == cardID {
			out[i] = en
			return out
		}
	}
	return append(out, en)
}

func TestValidate_LegalDeck(t *testing.T) {
	assert.Empty(t, Validate(legalEntries(), testCatalog()))
}

func TestValidate(t *testing.T) {
	cat := testCatalog()

	tests := []struct {
		name    string
		entries []Entry
		want    string
	}{
		{
			name:    "too few characters",
			entries: replace(legalEntries(), "tesla", Entry{CardID: "tr2", Type: cards.TypeTraining, Quantity: 1}),
			want:    "character_count",
		},
		{
			name:    "missions from two sets",
			entries: replace(legalEntries(), "cc7", Entry{CardID: "kc7", Type: cards.TypeMission, Quantity: 1}),
			want:    "mission_set",
		},
		{
			name:    "six missions",
			entries: replace(legalEntries(), "cc7", Entry{CardID: "tr2", Type: cards.TypeTraining, Quantity: 1}),
			want:    "mission_count",
		},
		{
			name:    "two locations",
			entries: append(legalEntries(), Entry{CardID: "loc2", Type: cards.TypeLocation, Quantity: 1}),
			want:    "location_count",
		},
		{
			name:    "threat over limit",
			entries: replace(legalEntries(), "holmes", Entry{CardID: "big", Type: cards.TypeCharacter, Quantity: 1}),
			want:    "threat_level",
		},
		{
			name:    "deck too small",
			entries: replace(legalEntries(), "tr", Entry{CardID: "tr", Type: cards.TypeTraining, Quantity: 7}),
			want:    "deck_size",
		},
		{
			name:    "events raise minimum size",
			entries: append(legalEntries(), Entry{CardID: "ev-any", Type: cards.TypeEvent, Quantity: 1}),
			want:    "deck_size",
		},
		{
			name:    "special for missing character",
			entries: append(legalEntries(), Entry{CardID: "sp-kong", Type: cards.TypeSpecial, Quantity: 1}),
			want:    "unusable_special",
		},
		{
			name:    "one per deck",
			entries: replace(legalEntries(), "sp-any", Entry{CardID: "sp-any", Type: cards.TypeSpecial, Quantity: 2}),
			want:    "one_per_deck_violation",
		},
		{
			name:    "power no character can use",
			entries: append(legalEntries(), Entry{CardID: "p8c", Type: cards.TypePower, Quantity: 1}),
			want:    "unusable_power",
		},
		{
			name: "two angry mobs",
			entries: replace(replace(legalEntries(),
				"holmes", Entry{CardID: "mob1", Type: cards.TypeCharacter, Quantity: 1}),
				"tesla", Entry{CardID: "mob2", Type: cards.TypeCharacter, Quantity: 1}),
			want: "angry_mob_limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, rules(Validate(tt.entries, cat)), tt.want)
		})
	}
}

func TestValidate_EventMissionSet(t *testing.T) {
	cat := testCatalog()
	// 55 cards plus the event reaches the event minimum
	base := replace(legalEntries(), "tr", Entry{CardID: "tr", Type: cards.TypeTraining, Quantity: 12})

	ok := append(base, Entry{CardID: "ev-odin", Type: cards.TypeEvent, Quantity: 1})
	assert.Empty(t, Validate(ok, cat))

	withKingMissions := []Entry{}
	for _, en := range ok {
		if en.Type == cards.TypeMission {
			en.CardID = "k" + en.CardID[1:]
		}
		withKingMissions = append(withKingMissions, en)
	}
	assert.Contains(t, rules(Validate(withKingMissions, cat)), "unusable_event")
}

func TestValidate_AnyPowerAndAngryMobSpecial(t *testing.T) {
	cat := testCatalog()
	entries := append(legalEntries(), Entry{CardID: "p8a", Type: cards.TypePower, Quantity: 1})
	assert.Empty(t, Validate(entries, cat), "Zeus has 8 energy")

	mob := replace(legalEntries(), "holmes", Entry{CardID: "mob1", Type: cards.TypeCharacter, Quantity: 1})
	mob = replace(mob, "tr", Entry{CardID: "sp-mob", Type: cards.TypeSpecial, Quantity: 8})
	assert.NotContains(t, rules(Validate(mob, cat)), "unusable_special")
}

func TestValidate_OnePerDeckAppliesToEveryType(t *testing.T) {
	cat := testCatalog()
	tests := []Entry{
		{CardID: "ev-once", Type: cards.TypeEvent, Quantity: 3},
		{CardID: "sp-free", Type: cards.TypeSpecial, Quantity: 3},
		{CardID: "tr-once", Type: cards.TypeTraining, Quantity: 3},
	}
	for _, en := range tests {
		t.Run(en.CardID, func(t *testing.T) {
			entries := append(legalEntries(), en)
			assert.Contains(t, rules(Validate(entries, cat)), "one_per_deck_violation")
		})
	}

	// events are checked even when no mission set resolves
	noMissions := []Entry{{CardID: "ev-once", Type: cards.TypeEvent, Quantity: 2}}
	assert.Contains(t, rules(Validate(noMissions, cat)), "one_per_deck_violation")
}

func TestValidate_UnresolvedCards(t *testing.T) {
	errs := Validate([]Entry{{CardID: "x", Type: cards.TypePower, Quantity: 1}}, nil)
	assert.ElementsMatch(t, []string{"character_count", "mission_count", "deck_size"}, rules(errs))
}
