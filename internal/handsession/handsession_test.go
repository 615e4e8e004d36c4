package handsession_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/youruser/opdeck/internal/deck"
	"github.com/youruser/opdeck/internal/errors"
	"github.com/youruser/opdeck/internal/handsession"
	"github.com/youruser/opdeck/internal/pkg/clock"
)

// RepositoryTestSuite runs the same behaviour against every implementation.
type RepositoryTestSuite struct {
	suite.Suite
	ctx   context.Context
	clock *clock.Fixed
	repo  handsession.Repository

	newRepo func(s *RepositoryTestSuite) handsession.Repository
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = &clock.Fixed{T: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	s.repo = s.newRepo(s)
}

func testHand() *handsession.Hand {
	return &handsession.Hand{
		DeckID: "deck_1",
		UserID: "user_1",
		Cards: []deck.DrawnCard{
			{Position: 0, CardID: "p5", Type: "power", Name: "5 - Energy"},
			{Position: 1, CardID: "ev", Type: "event", Name: "Ragnarok"},
			{Position: 2, CardID: "sp", Type: "special", Name: "Shield Wall"},
		},
	}
}

func (s *RepositoryTestSuite) TestSaveAndGet() {
	s.Require().NoError(s.repo.Save(s.ctx, testHand(), time.Minute))

	got, err := s.repo.Get(s.ctx, "deck_1", "user_1")
	s.Require().NoError(err)
	s.Equal(testHand().Cards, got.Cards)
	s.True(got.DrawnAt.Equal(s.clock.T))
	s.True(got.ExpiresAt.Equal(s.clock.T.Add(time.Minute)))

	_, err = s.repo.Get(s.ctx, "deck_1", "user_2")
	s.True(errors.IsNotFound(err), "hands are per user")
}

func (s *RepositoryTestSuite) TestSaveReplaces() {
	s.Require().NoError(s.repo.Save(s.ctx, testHand(), 0))

	h := testHand()
	h.Cards = h.Cards[:1]
	s.Require().NoError(s.repo.Save(s.ctx, h, 0))

	got, err := s.repo.Get(s.ctx, "deck_1", "user_1")
	s.Require().NoError(err)
	s.Len(got.Cards, 1)
}

func (s *RepositoryTestSuite) TestExpiry() {
	s.Require().NoError(s.repo.Save(s.ctx, testHand(), time.Minute))
	s.clock.Advance(2 * time.Minute)

	_, err := s.repo.Get(s.ctx, "deck_1", "user_1")
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestDelete() {
	s.Require().NoError(s.repo.Save(s.ctx, testHand(), 0))
	s.Require().NoError(s.repo.Delete(s.ctx, "deck_1", "user_1"))

	_, err := s.repo.Get(s.ctx, "deck_1", "user_1")
	s.True(errors.IsNotFound(err))
	s.NoError(s.repo.Delete(s.ctx, "deck_1", "user_1"), "deleting twice is fine")
}

func (s *RepositoryTestSuite) TestDeleteDeck() {
	for _, user := range []string{"user_1", "user_2", "guest"} {
		h := testHand()
		h.UserID = user
		s.Require().NoError(s.repo.Save(s.ctx, h, 0))
	}
	for _, deckID := range []string{"deck_10", "deck_*"} {
		h := testHand()
		h.DeckID = deckID
		s.Require().NoError(s.repo.Save(s.ctx, h, 0))
	}

	s.Require().NoError(s.repo.DeleteDeck(s.ctx, "deck_1"))
	for _, user := range []string{"user_1", "user_2", "guest"} {
		_, err := s.repo.Get(s.ctx, "deck_1", user)
		s.True(errors.IsNotFound(err), user)
	}
	_, err := s.repo.Get(s.ctx, "deck_10", "user_1")
	s.NoError(err, "only exact deck ids match")

	s.Require().NoError(s.repo.DeleteDeck(s.ctx, "deck_*"))
	_, err = s.repo.Get(s.ctx, "deck_10", "user_1")
	s.NoError(err, "pattern characters in ids are literal")
	_, err = s.repo.Get(s.ctx, "deck_*", "user_1")
	s.True(errors.IsNotFound(err))

	s.NoError(s.repo.DeleteDeck(s.ctx, "deck_1"), "nothing left to delete")
	s.True(errors.IsInvalidArgument(s.repo.DeleteDeck(s.ctx, "")))
	s.True(errors.IsInvalidArgument(s.repo.DeleteDeck(s.ctx, "deck:1")))
}

func (s *RepositoryTestSuite) TestValidation() {
	s.True(errors.IsInvalidArgument(s.repo.Save(s.ctx, nil, 0)))
	s.True(errors.IsInvalidArgument(s.repo.Save(s.ctx, &handsession.Hand{UserID: "u"}, 0)))
	_, err := s.repo.Get(s.ctx, "deck_1", "")
	s.True(errors.IsInvalidArgument(err))
}

func TestMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(s *RepositoryTestSuite) handsession.Repository {
			return handsession.NewMemory(s.clock)
		},
	})
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(s *RepositoryTestSuite) handsession.Repository {
			mr := miniredis.RunT(s.T())
			client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
			repo, err := handsession.NewRedis(&handsession.RedisConfig{Client: client, Clock: s.clock})
			s.Require().NoError(err)
			return repo
		},
	})
}

func TestRedisRepository_KeyAndTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo, err := handsession.NewRedis(&handsession.RedisConfig{Client: client, Clock: clock.New()})
	assert.NoError(t, err)

	assert.NoError(t, repo.Save(context.Background(), testHand(), 10*time.Minute))
	assert.True(t, mr.Exists("draw_hand:deck_1:user_1"))
	assert.Equal(t, 10*time.Minute, mr.TTL("draw_hand:deck_1:user_1"))

	mr.FastForward(11 * time.Minute)
	_, err = repo.Get(context.Background(), "deck_1", "user_1")
	assert.True(t, errors.IsNotFound(err))
}

func TestNewRedis_Validates(t *testing.T) {
	_, err := handsession.NewRedis(&handsession.RedisConfig{})
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestHandSwap(t *testing.T) {
	h := testHand()
	assert.NoError(t, h.Swap(0, 2))
	assert.Equal(t, "sp", h.Cards[0].CardID)
	assert.Equal(t, "p5", h.Cards[2].CardID)
	for i, c := range h.Cards {
		assert.Equal(t, i, c.Position)
	}

	assert.True(t, errors.IsInvalidArgument(h.Swap(0, 3)))
	assert.True(t, errors.IsInvalidArgument(h.Swap(-1, 0)))
}
