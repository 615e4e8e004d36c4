package service_test

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/youruser/opdeck/internal/cards"
	"github.com/youruser/opdeck/internal/deck"
	"github.com/youruser/opdeck/internal/errors"
	"github.com/youruser/opdeck/internal/handsession"
	"github.com/youruser/opdeck/internal/pkg/clock"
	"github.com/youruser/opdeck/internal/pkg/idgen"
	"github.com/youruser/opdeck/internal/service"
	storemock "github.com/youruser/opdeck/internal/store/mock"
)

const (
	testUser  = "user_1"
	otherUser = "user_2"
	testDeck  = "deck_1"
)

type DeckServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *storemock.MockRepository
	hands    handsession.Repository
	clock    *clock.Fixed
	svc      *service.DeckService
	ctx      context.Context
}

func (s *DeckServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = storemock.NewMockRepository(s.ctrl)
	s.clock = &clock.Fixed{T: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	s.hands = handsession.NewMemory(s.clock)
	s.ctx = context.Background()

	catalog := cards.NewCatalog([]cards.Card{
		{ID: "leo", Type: cards.TypeCharacter, Name: "Leonidas"},
		{ID: "p5", Type: cards.TypePower, Name: "5 - Energy", PowerType: "Energy", Value: 5},
		{ID: "t1", Type: cards.TypeTraining, Name: "Spartan Training"},
		{ID: "sp", Type: cards.TypeSpecial, Name: "Shield Wall", CharacterName: "Leonidas"},
	})

	var err error
	s.svc, err = service.New(&service.Config{
		Repo:          s.mockRepo,
		Catalog:       catalog,
		Engine:        deck.NewEngine(deck.WithSeed(7), deck.WithNames(catalog)),
		Hands:         s.hands,
		Clock:         s.clock,
		IDGen:         idgen.NewSequential("deck"),
		HandSize:      3,
		HandTTL:       time.Minute,
		PublicBaseURL: "https://decks.example.com/",
	})
	s.Require().NoError(err)
}

func (s *DeckServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func testEntries() []deck.Entry {
	return []deck.Entry{
		{ID: "e1", CardID: "leo", Type: cards.TypeCharacter, Quantity: 1},
		{ID: "e2", CardID: "p5", Type: cards.TypePower, Quantity: 3},
		{ID: "e3", CardID: "t1", Type: cards.TypeTraining, Quantity: 2},
		{ID: "e4", CardID: "sp", Type: cards.TypeSpecial, Quantity: 1},
	}
}

func (s *DeckServiceTestSuite) expectDeck(entries []deck.Entry) {
	s.mockRepo.EXPECT().GetDeck(gomock.Any(), testDeck).Return(&deck.Deck{
		ID: testDeck, UserID: testUser, Name: "Spartans", Entries: entries,
	}, nil)
}

func (s *DeckServiceTestSuite) expectOwner(ok bool) {
	s.mockRepo.EXPECT().UserOwnsDeck(gomock.Any(), testDeck, gomock.Any()).Return(ok, nil)
}

func (s *DeckServiceTestSuite) TestNew_Validates() {
	_, err := service.New(&service.Config{})
	s.True(errors.IsInvalidArgument(err))

	_, err = service.New(&service.Config{Repo: s.mockRepo, Hands: s.hands})
	s.True(errors.IsInvalidArgument(err), "hand size is required")
}

func (s *DeckServiceTestSuite) TestCreateDeck() {
	s.mockRepo.EXPECT().CreateDeck(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d *deck.Deck) error {
			s.Equal("deck_1", d.ID)
			s.Equal(testUser, d.UserID)
			s.Equal("Spartans", d.Name)
			s.Equal([]deck.Entry{
				{CardID: "p5", Type: cards.TypePower, Quantity: 3},
				{CardID: "t1", Type: cards.TypeTraining, Quantity: 1, ExcludeFromDraw: true},
			}, d.Entries, "one store call carries the merged entries")
			return nil
		})

	d, err := s.svc.CreateDeck(s.ctx, testUser, service.CreateDeckInput{
		Name: "  Spartans ",
		Cards: []deck.Entry{
			{CardID: "p5", Type: cards.TypePower},
			{CardID: "t1", Type: cards.TypeTraining, Quantity: 1, ExcludeFromDraw: true},
			{CardID: "p5", Type: cards.TypePower, Quantity: 2},
		},
	})
	s.Require().NoError(err)
	s.Equal("deck_1", d.ID)
	s.Len(d.Entries, 2)
}

func (s *DeckServiceTestSuite) TestCreateDeck_StoreFailureReturnsError() {
	s.mockRepo.EXPECT().CreateDeck(gomock.Any(), gomock.Any()).Return(errors.Internal("disk full"))

	_, err := s.svc.CreateDeck(s.ctx, testUser, service.CreateDeckInput{
		Name:  "Spartans",
		Cards: []deck.Entry{{CardID: "p5", Type: cards.TypePower, Quantity: 1}},
	})
	s.Error(err)
}

func (s *DeckServiceTestSuite) TestCreateDeck_RejectsOversizedQuantity() {
	_, err := s.svc.CreateDeck(s.ctx, testUser, service.CreateDeckInput{
		Name:  "Bulk",
		Cards: []deck.Entry{{CardID: "p5", Type: cards.TypePower, Quantity: deck.MaxEntryQuantity + 1}},
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.svc.CreateDeck(s.ctx, testUser, service.CreateDeckInput{
		Name: "Bulk",
		Cards: []deck.Entry{
			{CardID: "p5", Type: cards.TypePower, Quantity: deck.MaxEntryQuantity},
			{CardID: "p5", Type: cards.TypePower, Quantity: 1},
		},
	})
	s.True(errors.IsInvalidArgument(err), "duplicates merge before the limit is checked")
}

func (s *DeckServiceTestSuite) TestCreateDeck_Rejects() {
	_, err := s.svc.CreateDeck(s.ctx, "", service.CreateDeckInput{Name: "x"})
	s.True(errors.IsPermissionDenied(err))

	_, err = s.svc.CreateDeck(s.ctx, testUser, service.CreateDeckInput{Name: " "})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.svc.CreateDeck(s.ctx, testUser, service.CreateDeckInput{
		Name:  "x",
		Cards: []deck.Entry{{CardID: "nope", Type: cards.TypePower, Quantity: 1}},
	})
	s.True(errors.IsNotFound(err))
}

func (s *DeckServiceTestSuite) TestUpdateDeck() {
	s.Run("owner renames", func() {
		s.expectOwner(true)
		s.expectDeck(testEntries())
		s.mockRepo.EXPECT().UpdateDeck(gomock.Any(), gomock.Any()).Return(nil)

		name := "Renamed"
		d, err := s.svc.UpdateDeck(s.ctx, testUser, testDeck, service.UpdateDeckInput{Name: &name})
		s.Require().NoError(err)
		s.Equal("Renamed", d.Name)
	})

	s.Run("other users are denied", func() {
		s.expectOwner(false)
		name := "Mine now"
		_, err := s.svc.UpdateDeck(s.ctx, otherUser, testDeck, service.UpdateDeckInput{Name: &name})
		s.True(errors.IsPermissionDenied(err))
	})
}

func (s *DeckServiceTestSuite) TestDeleteDeck_DropsEveryHand() {
	for _, user := range []string{testUser, otherUser, "guest"} {
		s.Require().NoError(s.hands.Save(s.ctx, &handsession.Hand{DeckID: testDeck, UserID: user}, 0))
	}
	s.Require().NoError(s.hands.Save(s.ctx, &handsession.Hand{DeckID: "deck_2", UserID: otherUser}, 0))
	s.expectOwner(true)
	s.mockRepo.EXPECT().DeleteDeck(gomock.Any(), testDeck).Return(nil)

	s.Require().NoError(s.svc.DeleteDeck(s.ctx, testUser, testDeck))
	for _, user := range []string{testUser, otherUser, "guest"} {
		_, err := s.hands.Get(s.ctx, testDeck, user)
		s.True(errors.IsNotFound(err), user)
	}
	_, err := s.hands.Get(s.ctx, "deck_2", otherUser)
	s.NoError(err, "other decks keep their hands")
}

func (s *DeckServiceTestSuite) TestAddCard() {
	s.expectOwner(true)
	s.expectDeck(testEntries())
	s.mockRepo.EXPECT().AddCard(gomock.Any(), testDeck, deck.Entry{CardID: "p5", Type: cards.TypePower, Quantity: 2}).
		Return(deck.Entry{ID: "e2", CardID: "p5", Type: cards.TypePower, Quantity: 5}, nil)

	en, err := s.svc.AddCard(s.ctx, testUser, testDeck, service.AddCardInput{Type: cards.TypePower, CardID: "p5", Quantity: 2})
	s.Require().NoError(err)
	s.Equal(5, en.Quantity)

	_, err = s.svc.AddCard(s.ctx, testUser, testDeck, service.AddCardInput{Type: "relic", CardID: "p5"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *DeckServiceTestSuite) TestAddCard_CapsQuantity() {
	s.expectOwner(true)
	s.expectDeck(testEntries())

	_, err := s.svc.AddCard(s.ctx, testUser, testDeck, service.AddCardInput{Type: cards.TypePower, CardID: "p5", Quantity: deck.MaxEntryQuantity})
	s.True(errors.IsInvalidArgument(err), "p5 already has 3 copies")
}

func (s *DeckServiceTestSuite) TestRemoveCard() {
	s.Run("single copy", func() {
		s.expectOwner(true)
		s.expectDeck(testEntries())
		s.mockRepo.EXPECT().RemoveCard(gomock.Any(), testDeck, cards.TypeSpecial, "sp", 1).Return(true, nil)

		removed, err := s.svc.RemoveCard(s.ctx, testUser, testDeck, cards.TypeSpecial, "sp", 0)
		s.Require().NoError(err)
		s.True(removed)
	})

	s.Run("missing card", func() {
		s.expectOwner(true)
		s.expectDeck(testEntries())
		_, err := s.svc.RemoveCard(s.ctx, testUser, testDeck, cards.TypeEvent, "ev", 1)
		s.True(errors.IsNotFound(err))
	})

	s.Run("clear all", func() {
		s.expectOwner(true)
		s.mockRepo.EXPECT().ClearCards(gomock.Any(), testDeck).Return(nil)
		removed, err := s.svc.RemoveCard(s.ctx, testUser, testDeck, service.ClearAll, service.ClearAll, 0)
		s.Require().NoError(err)
		s.True(removed)
	})
}

func (s *DeckServiceTestSuite) TestToggleExclusion_Persists() {
	s.expectOwner(true)
	s.expectDeck(testEntries())
	s.mockRepo.EXPECT().SetExcludeFromDraw(gomock.Any(), testDeck, cards.TypeTraining, "t1", true).Return(nil)

	en, err := s.svc.ToggleExclusion(s.ctx, testUser, testDeck, "t1")
	s.Require().NoError(err)
	s.True(en.ExcludeFromDraw)
}

func (s *DeckServiceTestSuite) TestToggleExclusion_CharacterIsNoOp() {
	s.expectOwner(true)
	s.expectDeck(testEntries())
	// no SetExcludeFromDraw call is expected

	_, err := s.svc.ToggleExclusion(s.ctx, testUser, testDeck, "leo")
	s.ErrorIs(err, deck.ErrNotDrawable)
}

func (s *DeckServiceTestSuite) TestToggleExclusion_MissingCard() {
	s.expectOwner(true)
	s.expectDeck(testEntries())

	_, err := s.svc.ToggleExclusion(s.ctx, testUser, testDeck, "nope")
	s.ErrorIs(err, deck.ErrEntryNotFound)
}

func (s *DeckServiceTestSuite) TestToggleExclusion_SaveFails() {
	s.expectOwner(true)
	s.expectDeck(testEntries())
	s.mockRepo.EXPECT().SetExcludeFromDraw(gomock.Any(), testDeck, cards.TypeTraining, "t1", true).
		Return(errors.Unavailable("database is down"))

	_, err := s.svc.ToggleExclusion(s.ctx, testUser, testDeck, "t1")
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}

func (s *DeckServiceTestSuite) TestSetExclusion_NotOwner() {
	s.expectOwner(false)
	_, err := s.svc.SetExclusion(s.ctx, otherUser, testDeck, "t1", true)
	s.True(errors.IsPermissionDenied(err))
}

func (s *DeckServiceTestSuite) TestDrawHand() {
	entries := testEntries()
	entries[2].ExcludeFromDraw = true
	s.expectDeck(entries)

	hand, err := s.svc.DrawHand(s.ctx, otherUser, testDeck)
	s.Require().NoError(err)
	s.Require().Len(hand.Cards, 3)
	for _, c := range hand.Cards {
		s.NotEqual("leo", c.CardID)
		s.NotEqual("t1", c.CardID)
		s.NotEmpty(c.Name)
	}

	stored, err := s.svc.GetHand(s.ctx, otherUser, testDeck)
	s.Require().NoError(err)
	s.Equal(hand.Cards, stored.Cards)

	_, err = s.svc.GetHand(s.ctx, testUser, testDeck)
	s.True(errors.IsNotFound(err), "hands are kept per user")
}

func (s *DeckServiceTestSuite) TestReorderHand() {
	s.expectDeck(testEntries())
	hand, err := s.svc.DrawHand(s.ctx, testUser, testDeck)
	s.Require().NoError(err)
	first, last := hand.Cards[0], hand.Cards[2]

	s.clock.Advance(10 * time.Second)
	got, err := s.svc.ReorderHand(s.ctx, testUser, testDeck, 0, 2)
	s.Require().NoError(err)
	s.Equal(first.CardID, got.Cards[2].CardID)
	s.Equal(last.CardID, got.Cards[0].CardID)
	s.True(got.ExpiresAt.Equal(hand.ExpiresAt), "reorder keeps the expiry")

	_, err = s.svc.ReorderHand(s.ctx, testUser, testDeck, 0, 9)
	s.True(errors.IsInvalidArgument(err))

	s.clock.Advance(time.Hour)
	_, err = s.svc.ReorderHand(s.ctx, testUser, testDeck, 0, 1)
	s.True(errors.IsNotFound(err))
}

func (s *DeckServiceTestSuite) TestStats() {
	s.expectDeck(testEntries())
	st, err := s.svc.Stats(s.ctx, testDeck)
	s.Require().NoError(err)
	s.Equal(7, st.TotalCards)
	s.Equal(6, st.PlayableCards)
	s.True(st.CanDrawHand)
}

func (s *DeckServiceTestSuite) TestUserStats() {
	s.mockRepo.EXPECT().ListDecks(gomock.Any(), testUser).Return([]*deck.Deck{
		{ID: "a", IsLimited: true, Entries: testEntries()},
		{ID: "b", Entries: []deck.Entry{}},
	}, nil)

	st, err := s.svc.UserStats(s.ctx, testUser)
	s.Require().NoError(err)
	s.Equal(service.UserStats{TotalDecks: 2, TotalCards: 7, LimitedDecks: 1}, st)
}

func (s *DeckServiceTestSuite) TestValidateDeck() {
	s.expectDeck(testEntries())
	errs, err := s.svc.ValidateDeck(s.ctx, testDeck)
	s.Require().NoError(err)
	s.NotEmpty(errs)
}

func (s *DeckServiceTestSuite) TestExportText() {
	s.expectDeck(testEntries())
	text, err := s.svc.ExportText(s.ctx, testDeck)
	s.Require().NoError(err)
	s.Contains(text, "# Spartans")
	s.Contains(text, "3x 5 - Energy [power]")
}

func (s *DeckServiceTestSuite) TestUIPreferences() {
	prefs := json.RawMessage(`{"dividers":true}`)
	s.expectOwner(true)
	s.mockRepo.EXPECT().UpdateUIPreferences(gomock.Any(), testDeck, prefs).Return(nil)
	s.Require().NoError(s.svc.UpdateUIPreferences(s.ctx, testUser, testDeck, prefs))

	s.mockRepo.EXPECT().GetUIPreferences(gomock.Any(), testDeck).Return(prefs, nil)
	got, err := s.svc.GetUIPreferences(s.ctx, testDeck)
	s.Require().NoError(err)
	s.JSONEq(string(prefs), string(got))
}

func (s *DeckServiceTestSuite) TestDeckQR() {
	s.Equal("https://decks.example.com/decks/deck_1", s.svc.DeckURL(testDeck))

	s.mockRepo.EXPECT().GetDeck(gomock.Any(), testDeck).Return(&deck.Deck{ID: testDeck}, nil)
	b, err := s.svc.DeckQR(s.ctx, testDeck, 256)
	s.Require().NoError(err)
	img, err := png.Decode(bytes.NewReader(b))
	s.Require().NoError(err)
	s.Equal(256, img.Bounds().Dx())

	_, err = s.svc.DeckQR(s.ctx, testDeck, 10)
	s.True(errors.IsInvalidArgument(err))
}

func (s *DeckServiceTestSuite) TestHandImage() {
	_, err := s.svc.HandImage(s.ctx, testUser, testDeck)
	s.True(errors.IsNotFound(err), "an image needs a drawn hand")

	s.expectDeck(testEntries())
	_, err = s.svc.DrawHand(s.ctx, testUser, testDeck)
	s.Require().NoError(err)

	b, err := s.svc.HandImage(s.ctx, testUser, testDeck)
	s.Require().NoError(err)
	_, err = png.Decode(bytes.NewReader(b))
	s.NoError(err)
}

func (s *DeckServiceTestSuite) TestCards() {
	all, err := s.svc.Cards("")
	s.Require().NoError(err)
	s.Len(all, 4)

	powers, err := s.svc.Cards(cards.TypePower)
	s.Require().NoError(err)
	s.Len(powers, 1)

	_, err = s.svc.Cards("relic")
	s.True(errors.IsInvalidArgument(err))

	s.Len(s.svc.FilterCards(cards.FilterOptions{FreeWords: "shield"}), 1)
}

func TestDeckServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DeckServiceTestSuite))
}
