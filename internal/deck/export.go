package deck

import (
	"sort"
	"strconv"
	"strings"

	"github.com/youruser/opdeck/internal/cards"
)

func typeRank(t string) int {
	for i, k := range cards.Types {
		if k == t {
			return i
		}
	}
	return len(cards.Types)
}

// ExportText renders the deck as "Nx Name" lines grouped by type.
func ExportText(d Deck, names NameResolver) string {
	type line struct {
		rank int
		name string
		text string
	}
	var lines []line
	for _, en := range d.Entries {
		name := en.CardID
		if names != nil {
			name = names.DisplayName(en.Type, en.CardID)
		}
		text := strconv.Itoa(en.Quantity) + "x " + name + " [" + en.Type + "]"
		if en.ExcludeFromDraw {
			text += " (pre-placed)"
		}
		lines = append(lines, line{rank: typeRank(en.Type), name: name, text: text})
	}
	// simple deterministic order
	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].rank != lines[j].rank {
			return lines[i].rank < lines[j].rank
		}
		return lines[i].name < lines[j].name
	})

	out := []string{}
	if d.Name != "" {
		out = append(out, "# "+d.Name)
	}
	for _, l := range lines {
		out = append(out, l.text)
	}
	return strings.Join(out, "\n")
}
