package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/youruser/opdeck/internal/cards"
)

func TestExportText(t *testing.T) {
	d := Deck{
		Name: "Test Deck",
		Entries: []Entry{
			{CardID: "p5", Type: cards.TypePower, Quantity: 3},
			{CardID: "hero", Type: cards.TypeCharacter, Quantity: 1},
			{CardID: "t1", Type: cards.TypeTraining, Quantity: 1, ExcludeFromDraw: true},
		},
	}
	names := nameMap{"p5": "5 - Energy", "hero": "Leonidas", "t1": "Spartan Training"}

	want := "# Test Deck\n" +
		"1x Leonidas [character]\n" +
		"3x 5 - Energy [power]\n" +
		"1x Spartan Training [training] (pre-placed)"
	assert.Equal(t, want, ExportText(d, names))
}

func TestExportText_NoResolver(t *testing.T) {
	d := Deck{Entries: []Entry{{CardID: "ev", Type: cards.TypeEvent, Quantity: 2}}}
	assert.Equal(t, "2x ev [event]", ExportText(d, nil))
}
