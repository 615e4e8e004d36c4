package handsession

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/youruser/opdeck/internal/deck"
	"github.com/youruser/opdeck/internal/errors"
	"github.com/youruser/opdeck/internal/pkg/clock"
)

// memoryRepository keeps hands in process. Used when no Redis address is
// configured.
type memoryRepository struct {
	mu    sync.Mutex
	clock clock.Clock
	hands map[string]Hand
}

// NewMemory creates an in-process hand repository
func NewMemory(c clock.Clock) Repository {
	if c == nil {
		c = clock.New()
	}
	return &memoryRepository{clock: c, hands: map[string]Hand{}}
}

var _ Repository = (*memoryRepository)(nil)

func (m *memoryRepository) Save(_ context.Context, hand *Hand, ttl time.Duration) error {
	if hand == nil {
		return errors.InvalidArgument("hand cannot be nil")
	}
	if err := validateKey(hand.DeckID, hand.UserID); err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	now := m.clock.Now()
	if hand.DrawnAt.IsZero() {
		hand.DrawnAt = now
	}
	hand.ExpiresAt = now.Add(ttl)

	stored := *hand
	stored.Cards = append([]deck.DrawnCard(nil), hand.Cards...)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.hands[buildKey(hand.DeckID, hand.UserID)] = stored
	return nil
}

func (m *memoryRepository) Get(_ context.Context, deckID, userID string) (*Hand, error) {
	if err := validateKey(deckID, userID); err != nil {
		return nil, err
	}
	key := buildKey(deckID, userID)

	m.mu.Lock()
	defer m.mu.Unlock()
	hand, ok := m.hands[key]
	if !ok {
		return nil, errors.NotFound("no drawn hand for this deck")
	}
	if m.clock.Now().After(hand.ExpiresAt) {
		delete(m.hands, key)
		return nil, errors.NotFound("drawn hand has expired")
	}
	hand.Cards = append([]deck.DrawnCard(nil), hand.Cards...)
	return &hand, nil
}

func (m *memoryRepository) Delete(_ context.Context, deckID, userID string) error {
	if err := validateKey(deckID, userID); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.hands, buildKey(deckID, userID))
	return nil
}

func (m *memoryRepository) DeleteDeck(_ context.Context, deckID string) error {
	if err := validateDeckID(deckID); err != nil {
		return err
	}
	prefix := deckKeyPrefix(deckID)
	m.mu.Lock()
	defer m.mu.Unlock()
	for key := range m.hands {
		if strings.HasPrefix(key, prefix) {
			delete(m.hands, key)
		}
	}
	return nil
}
