package deck

import (
	"fmt"
	"sort"
	"strings"

	"github.com/youruser/opdeck/internal/cards"
)

// Deck construction limits.
const (
	RequiredCharacters    = 4
	RequiredMissions      = 7
	MaxLocations          = 1
	MaxThreat             = 76
	MinDeckSize           = 51
	MinDeckSizeWithEvents = 56
)

type ValidationError struct {
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Validate checks entries against the deck construction rules. Entries the
// lookup cannot resolve only take part in the count-based rules.
func Validate(entries []Entry, lookup CardLookup) []ValidationError {
	errs := []ValidationError{}
	add := func(rule, format string, args ...any) {
		errs = append(errs, ValidationError{Rule: rule, Message: fmt.Sprintf(format, args...)})
	}
	resolve := func(en Entry) (cards.Card, bool) {
		if lookup == nil {
			return cards.Card{}, false
		}
		return lookup.Lookup(en.Type, en.CardID)
	}

	counts := map[string]int{}
	total := 0
	for _, en := range entries {
		counts[en.Type] += en.Quantity
		total += en.Quantity
	}

	if n := counts[cards.TypeCharacter]; n != RequiredCharacters {
		add("character_count", "Deck must have exactly %d characters (found %d)", RequiredCharacters, n)
	}

	missionSets := map[string]bool{}
	for _, en := range entries {
		if en.Type != cards.TypeMission {
			continue
		}
		if c, ok := resolve(en); ok && c.MissionSet != "" {
			missionSets[c.MissionSet] = true
		}
	}
	if n := counts[cards.TypeMission]; n != RequiredMissions {
		add("mission_count", "Deck must have exactly %d mission cards (found %d)", RequiredMissions, n)
	} else if len(missionSets) > 1 {
		add("mission_set", "All mission cards must be from the same mission set (found: %s)", strings.Join(sortedKeys(missionSets), ", "))
	}

	if n := counts[cards.TypeLocation]; n > MaxLocations {
		add("location_count", "Deck may have at most %d location (found %d)", MaxLocations, n)
	}

	var characters []cards.Card
	threat := 0
	for _, en := range entries {
		if en.Type != cards.TypeCharacter {
			continue
		}
		if c, ok := resolve(en); ok {
			characters = append(characters, c)
			threat += c.Threat * en.Quantity
		}
	}
	if threat > MaxThreat {
		add("threat_level", "Deck threat level must be %d or less (found %d)", MaxThreat, threat)
	}

	required := MinDeckSize
	if counts[cards.TypeEvent] > 0 {
		required = MinDeckSizeWithEvents
	}
	if total < required {
		add("deck_size", "Deck must have at least %d cards (found %d)", required, total)
	}

	mobs := 0
	for _, c := range characters {
		if strings.HasPrefix(c.Name, "Angry Mob") {
			mobs++
		}
	}
	if mobs > 1 {
		add("angry_mob_limit", `Only one "Angry Mob" character is allowed per deck`)
	}

	for _, en := range entries {
		c, ok := resolve(en)
		if !ok {
			continue
		}
		switch en.Type {
		case cards.TypeSpecial:
			anyone := c.CharacterName == "" || c.CharacterName == "Any Character"
			if !anyone && !hasCharacter(characters, c.CharacterName) {
				add("unusable_special", "%q requires character %q in your team", c.Name, c.CharacterName)
			}
		case cards.TypeEvent:
			anyMission := c.MissionSet == "" || c.MissionSet == "Any-Mission"
			if !anyMission && len(missionSets) > 0 && !missionSets[c.MissionSet] {
				add("unusable_event", "%q requires mission set %q in your deck", c.Name, c.MissionSet)
			}
		case cards.TypePower:
			if len(characters) > 0 && !canUsePower(characters, c) {
				add("unusable_power", "%q (Power Card) requires a character with %d+ %s", c.Name, c.Value, c.PowerType)
			}
		}
		if c.OnePerDeck && en.Quantity > 1 {
			add("one_per_deck_violation", "%q is limited to one per deck (found %d)", c.Name, en.Quantity)
		}
	}

	return errs
}

// hasCharacter matches exact names; "Angry Mob" requirements match any
// character whose name starts with the requirement.
func hasCharacter(characters []cards.Card, name string) bool {
	for _, c := range characters {
		if c.Name == name {
			return true
		}
		if strings.HasPrefix(name, "Angry Mob") && strings.HasPrefix(c.Name, name) {
			return true
		}
	}
	return false
}

func canUsePower(characters []cards.Card, power cards.Card) bool {
	for _, ch := range characters {
		switch power.PowerType {
		case "Energy", "Combat", "Brute Force", "Intelligence":
			if ch.Stat(power.PowerType) >= power.Value {
				return true
			}
		case "Any-Power":
			if ch.MaxStat() >= power.Value {
				return true
			}
		default:
			// multi-power and untyped cards are not checked
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
