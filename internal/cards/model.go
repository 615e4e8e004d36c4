package cards

// Card types as they appear in deck entries and catalog files.
const (
	TypeCharacter        = "character"
	TypeLocation         = "location"
	TypeMission          = "mission"
	TypeEvent            = "event"
	TypeSpecial          = "special"
	TypePower            = "power"
	TypeAspect           = "aspect"
	TypeTraining         = "training"
	TypeBasicUniverse    = "basic-universe"
	TypeAdvancedUniverse = "advanced-universe"
	TypeTeamwork         = "teamwork"
	TypeAllyUniverse     = "ally-universe"
)

// Types lists every known card type in catalog order.
var Types = []string{
	TypeCharacter,
	TypeLocation,
	TypeMission,
	TypeEvent,
	TypeSpecial,
	TypePower,
	TypeAspect,
	TypeAdvancedUniverse,
	TypeTeamwork,
	TypeAllyUniverse,
	TypeTraining,
	TypeBasicUniverse,
}

// IsKnownType reports whether t is one of Types.
func IsKnownType(t string) bool {
	for _, k := range Types {
		if k == t {
			return true
		}
	}
	return false
}

type Card struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	Name          string `json:"name"`
	Universe      string `json:"universe,omitempty"`
	PowerType     string `json:"power_type,omitempty"`
	Value         int    `json:"value,omitempty"`
	Energy        int    `json:"energy,omitempty"`
	Combat        int    `json:"combat,omitempty"`
	BruteForce    int    `json:"brute_force,omitempty"`
	Intelligence  int    `json:"intelligence,omitempty"`
	Threat        int    `json:"threat,omitempty"`
	MissionSet    string `json:"mission_set,omitempty"`
	CharacterName string `json:"character,omitempty"` // special cards: owning character or "Any Character"
	OnePerDeck    bool   `json:"one_per_deck"`
	Set           string `json:"set,omitempty"`
	SetNumber     string `json:"set_number,omitempty"`
	ImageURL      string `json:"image_url,omitempty"`
	Text          string `json:"text,omitempty"`
}

// Stat returns the character stat matching a power type, or 0.
func (c Card) Stat(powerType string) int {
	switch powerType {
	case "Energy":
		return c.Energy
	case "Combat":
		return c.Combat
	case "Brute Force":
		return c.BruteForce
	case "Intelligence":
		return c.Intelligence
	}
	return 0
}

// MaxStat is the highest of the four character stats.
func (c Card) MaxStat() int {
	m := c.Energy
	for _, v := range []int{c.Combat, c.BruteForce, c.Intelligence} {
		if v > m {
			m = v
		}
	}
	return m
}
