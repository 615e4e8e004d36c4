package cards

import "strings"

type FilterOptions struct {
	Types       []string `json:"types"`
	PowerTypes  []string `json:"power_types"`
	MinValue    int      `json:"min_value"`
	MaxValue    int      `json:"max_value"`
	MissionSets []string `json:"mission_sets"`
	Sets        []string `json:"sets"`
	OnePerDeck  bool     `json:"one_per_deck"`
	FreeWords   string   `json:"free_words"`
}

func containsFold(hay []string, needle string) bool {
	for _, h := range hay {
		if strings.EqualFold(h, needle) {
			return true
		}
	}
	return false
}

func Filter(cards []Card, opt FilterOptions) []Card {
	out := []Card{}
	var kw []string
	for _, k := range strings.Fields(opt.FreeWords) {
		kw = append(kw, strings.ToLower(k))
	}
	for _, c := range cards {
		if len(opt.Types) > 0 && !containsFold(opt.Types, c.Type) {
			continue
		}
		if len(opt.PowerTypes) > 0 && !containsFold(opt.PowerTypes, c.PowerType) {
			continue
		}
		// value bounds only apply to cards that carry a value
		if opt.MinValue > 0 && c.Value < opt.MinValue {
			continue
		}
		if opt.MaxValue > 0 && c.Value > opt.MaxValue {
			continue
		}
		if len(opt.MissionSets) > 0 && !containsFold(opt.MissionSets, c.MissionSet) {
			continue
		}
		if len(opt.Sets) > 0 && !containsFold(opt.Sets, c.Set) {
			continue
		}
		if opt.OnePerDeck && !c.OnePerDeck {
			continue
		}
		if len(kw) > 0 {
			hay := strings.ToLower(c.Name + " " + c.Text + " " + c.CharacterName)
			ok := true
			for _, k := range kw {
				if !strings.Contains(hay, k) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}
