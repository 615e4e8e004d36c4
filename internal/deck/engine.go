package deck

import (
	crand "crypto/rand"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/youruser/opdeck/internal/cards"
	"github.com/youruser/opdeck/internal/errors"
)

// DefaultHandSize is the opening hand size of a game.
const DefaultHandSize = 8

var (
	// ErrEntryNotFound is wrapped by toggles whose target is missing from
	// the entry list.
	ErrEntryNotFound = errors.NotFound("deck entry not found")
	// ErrNotDrawable is wrapped by toggles whose target never enters the
	// draw pile.
	ErrNotDrawable = errors.InvalidArgument("card type is not drawable")
)

// Engine draws hands and flips draw exclusion. It never performs I/O.
// The zero value is not usable; use NewEngine.
type Engine struct {
	mu     sync.Mutex // guards rng
	rng    *rand.Rand
	names  NameResolver
	logger *slog.Logger
}

type Option func(*Engine)

// WithRand uses r as the randomness source.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithSeed makes draws reproducible.
func WithSeed(seed uint64) Option {
	return func(e *Engine) { e.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// WithNames resolves display names for drawn cards.
func WithNames(n NameResolver) Option {
	return func(e *Engine) { e.names = n }
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{logger: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		var seed [32]byte
		_, _ = crand.Read(seed[:])
		e.rng = rand.New(rand.NewChaCha8(seed))
	}
	return e
}

// drawPile counts the undrawn copies of every drawable entry, by entry index.
func drawPile(entries []Entry) (remaining []int, total int) {
	remaining = make([]int, len(entries))
	for i, en := range entries {
		if !en.Drawable() || en.Quantity < 1 {
			continue
		}
		remaining[i] = en.Quantity
		total += en.Quantity
	}
	return remaining, total
}

// DrawHand draws min(handSize, pile size) copies without replacement,
// uniformly over every copy in the draw pile. entries is not modified.
func (e *Engine) DrawHand(entries []Entry, handSize int) []DrawnCard {
	return e.draw(entries, handSize, false)
}

// DrawOpeningHand draws like DrawHand, then draws one extra card when the
// hand holds an event and the pile has more than handSize copies.
func (e *Engine) DrawOpeningHand(entries []Entry, handSize int) []DrawnCard {
	return e.draw(entries, handSize, true)
}

func (e *Engine) draw(entries []Entry, handSize int, eventBonus bool) []DrawnCard {
	remaining, total := drawPile(entries)
	n := min(max(handSize, 0), total)

	picks := make([]int, 0, n+1)
	e.mu.Lock()
	for len(picks) < n {
		picks = append(picks, e.pick(remaining, total-len(picks)))
	}
	if eventBonus && total > n && hasType(entries, picks, cards.TypeEvent) {
		picks = append(picks, e.pick(remaining, total-n))
	}
	e.mu.Unlock()

	hand := make([]DrawnCard, 0, len(picks))
	for pos, idx := range picks {
		en := entries[idx]
		hand = append(hand, DrawnCard{
			Position: pos,
			CardID:   en.CardID,
			Type:     en.Type,
			Name:     e.displayName(en),
		})
	}
	return hand
}

// pick takes one copy out of remaining, each undrawn copy equally likely,
// and returns its entry index. left is the sum of remaining and must be > 0.
func (e *Engine) pick(remaining []int, left int) int {
	r := e.rng.IntN(left)
	last := -1
	for i, q := range remaining {
		if q == 0 {
			continue
		}
		if r < q {
			remaining[i]--
			return i
		}
		r -= q
		last = i
	}
	remaining[last]--
	return last
}

func hasType(entries []Entry, picks []int, t string) bool {
	for _, idx := range picks {
		if entries[idx].Type == t {
			return true
		}
	}
	return false
}

func (e *Engine) displayName(en Entry) string {
	if e.names == nil {
		return en.CardID
	}
	return e.names.DisplayName(en.Type, en.CardID)
}

// ToggleExclusion flips ExcludeFromDraw on the first entry for cardID,
// writing through to entries, and returns the updated entry. Missing or
// undrawable targets leave entries untouched and are logged at warn level.
func (e *Engine) ToggleExclusion(entries []Entry, cardID string) (Entry, error) {
	i, err := e.exclusionTarget(entries, cardID)
	if err != nil {
		return Entry{}, err
	}
	entries[i].ExcludeFromDraw = !entries[i].ExcludeFromDraw
	return entries[i], nil
}

// SetExclusion sets ExcludeFromDraw to exclude under the same rules as
// ToggleExclusion.
func (e *Engine) SetExclusion(entries []Entry, cardID string, exclude bool) (Entry, error) {
	i, err := e.exclusionTarget(entries, cardID)
	if err != nil {
		return Entry{}, err
	}
	entries[i].ExcludeFromDraw = exclude
	return entries[i], nil
}

func (e *Engine) exclusionTarget(entries []Entry, cardID string) (int, error) {
	i := indexOf(entries, cardID)
	if i < 0 {
		e.logger.Warn("draw exclusion: card not in deck", "card_id", cardID)
		return -1, errors.Wrapf(ErrEntryNotFound, "card %q is not in the deck", cardID).WithMeta("card_id", cardID)
	}
	if !IsDrawableType(entries[i].Type) {
		e.logger.Warn("draw exclusion: card type is never drawn", "card_id", cardID, "type", entries[i].Type)
		return -1, errors.Wrapf(ErrNotDrawable, "%s cards cannot be excluded from the draw", entries[i].Type).
			WithMeta("card_id", cardID)
	}
	return i, nil
}
