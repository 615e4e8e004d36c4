package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/youruser/opdeck/internal/deck"
)

var (
	drawSize int
	drawSeed uint64
)

var drawCmd = &cobra.Command{
	Use:   "draw <deck-id>",
	Short: "Draw a random hand from a saved deck",
	Args:  cobra.ExactArgs(1),
	RunE:  runDraw,
}

func init() {
	drawCmd.Flags().IntVar(&drawSize, "size", 0, "hand size (default from config)")
	drawCmd.Flags().Uint64Var(&drawSeed, "seed", 0, "seed for a reproducible draw (0 draws randomly)")
}

func runDraw(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	ctx := commandContext(cmd)
	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	d, err := a.svc.GetDeck(ctx, args[0])
	if err != nil {
		return err
	}
	size := drawSize
	if size <= 0 {
		size = cfg.HandSize
	}
	opts := []deck.Option{deck.WithNames(a.catalog), deck.WithLogger(a.logger)}
	if drawSeed != 0 {
		opts = append(opts, deck.WithSeed(drawSeed))
	}
	state := deck.NewEditorState(d.ID, d.Entries, deck.NewEngine(opts...))

	var hand []deck.DrawnCard
	if cfg.EventBonus {
		hand = state.DrawOpeningHand(size)
	} else {
		hand = state.DrawHand(size)
	}
	printHand(cmd.OutOrStdout(), d, hand, deck.ComputeStats(d.Entries, size))
	return nil
}

func printHand(w io.Writer, d *deck.Deck, hand []deck.DrawnCard, st deck.Stats) {
	fmt.Fprintf(w, "%s: %d cards in draw pile, %d pre-placed\n", d.Name, st.DrawPileCards, st.ExcludedCards)
	if len(hand) == 0 {
		fmt.Fprintln(w, "no drawable cards")
		return
	}
	for _, c := range hand {
		fmt.Fprintf(w, "%2d. %s [%s]\n", c.Position+1, c.Name, c.Type)
	}
}
