package handsession

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/youruser/opdeck/internal/errors"
	"github.com/youruser/opdeck/internal/pkg/clock"
	redisclient "github.com/youruser/opdeck/internal/redis"
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedis creates a Redis-backed hand repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &redisRepository{client: cfg.Client, clock: cfg.Clock}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Save(ctx context.Context, hand *Hand, ttl time.Duration) error {
	if hand == nil {
		return errors.InvalidArgument("hand cannot be nil")
	}
	if err := validateKey(hand.DeckID, hand.UserID); err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if hand.DrawnAt.IsZero() {
		hand.DrawnAt = r.clock.Now()
	}
	hand.ExpiresAt = r.clock.Now().Add(ttl)

	data, err := json.Marshal(hand)
	if err != nil {
		return errors.Wrap(err, "failed to marshal hand")
	}
	if err := r.client.Set(ctx, buildKey(hand.DeckID, hand.UserID), data, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to store hand in Redis")
	}
	return nil
}

func (r *redisRepository) Get(ctx context.Context, deckID, userID string) (*Hand, error) {
	if err := validateKey(deckID, userID); err != nil {
		return nil, err
	}
	key := buildKey(deckID, userID)

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("no drawn hand for this deck")
		}
		return nil, errors.Wrap(err, "failed to get hand from Redis")
	}

	var hand Hand
	if err := json.Unmarshal(data, &hand); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal hand")
	}
	if r.clock.Now().After(hand.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFound("drawn hand has expired")
	}
	return &hand, nil
}

func (r *redisRepository) Delete(ctx context.Context, deckID, userID string) error {
	if err := validateKey(deckID, userID); err != nil {
		return err
	}
	if err := r.client.Del(ctx, buildKey(deckID, userID)).Err(); err != nil {
		return errors.Wrap(err, "failed to delete hand from Redis")
	}
	return nil
}

// scanBatch is the COUNT hint for SCAN when dropping a deck's hands.
const scanBatch = 100

func (r *redisRepository) DeleteDeck(ctx context.Context, deckID string) error {
	if err := validateDeckID(deckID); err != nil {
		return err
	}
	var keys []string
	iter := r.client.Scan(ctx, 0, escapeGlob(deckKeyPrefix(deckID))+"*", scanBatch).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return errors.Wrap(err, "failed to scan hands in Redis")
	}
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return errors.Wrap(err, "failed to delete hands from Redis")
	}
	return nil
}

// escapeGlob quotes the characters SCAN MATCH treats as patterns.
func escapeGlob(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
