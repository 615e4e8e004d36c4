package cards

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// typeFiles maps each card type to the CSV it is loaded from.
var typeFiles = []struct {
	Type string
	File string
}{
	{TypeCharacter, "characters.csv"},
	{TypeLocation, "locations.csv"},
	{TypeMission, "missions.csv"},
	{TypeEvent, "events.csv"},
	{TypeSpecial, "special-cards.csv"},
	{TypePower, "power-cards.csv"},
	{TypeAspect, "aspects.csv"},
	{TypeAdvancedUniverse, "advanced-universe.csv"},
	{TypeTeamwork, "teamwork.csv"},
	{TypeAllyUniverse, "ally-universe.csv"},
	{TypeTraining, "training.csv"},
	{TypeBasicUniverse, "basic-universe.csv"},
}

// LoadCardsFromDataDir loads one CSV per card type from dataDir (best-effort).
// Missing files are skipped; it fails only when none are present.
func LoadCardsFromDataDir(dataDir string) ([]Card, error) {
	var all []Card
	var found bool
	for _, tf := range typeFiles {
		f := filepath.Join(dataDir, tf.File)
		if _, err := os.Stat(f); err != nil {
			// skip missing files
			continue
		}
		found = true
		cs, err := loadSingleCSV(f, tf.Type)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
		all = append(all, cs...)
	}
	if !found {
		return nil, fmt.Errorf("no card CSVs found in %s", dataDir)
	}
	return all, nil
}

func loadSingleCSV(path, cardType string) ([]Card, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	r := csv.NewReader(fp)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("csv %s has no header", path)
	}
	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := cols["id"]; !ok {
		return nil, fmt.Errorf("csv %s has no id column", path)
	}

	get := func(row []string, name string) string {
		if idx, ok := cols[name]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	out := []Card{}
	for _, row := range rows[1:] {
		id := get(row, "id")
		if id == "" {
			continue
		}
		c := Card{
			ID:            id,
			Type:          cardType,
			Name:          get(row, "name"),
			Universe:      get(row, "universe"),
			PowerType:     get(row, "power_type"),
			Value:         atoi(get(row, "value")),
			Energy:        atoi(get(row, "energy")),
			Combat:        atoi(get(row, "combat")),
			BruteForce:    atoi(get(row, "brute_force")),
			Intelligence:  atoi(get(row, "intelligence")),
			Threat:        atoi(get(row, "threat")),
			MissionSet:    get(row, "mission_set"),
			CharacterName: get(row, "character"),
			OnePerDeck:    parseBool(get(row, "one_per_deck")),
			Set:           get(row, "set"),
			SetNumber:     get(row, "set_number"),
			ImageURL:      get(row, "image"),
			Text:          get(row, "text"),
		}
		if c.Name == "" {
			c.Name = id
		}
		out = append(out, c)
	}
	return out, nil
}

// "-" and blanks count as zero
func atoi(s string) int {
	if s == "" || s == "-" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1", "yes", "y":
		return true
	}
	return false
}
