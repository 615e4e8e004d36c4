// Package service orchestrates the deck store, the card catalog, the draw
// engine and hand sessions behind the operations the HTTP API exposes.
// Reads are open to any caller; changes require the deck owner.
package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/youruser/opdeck/internal/cards"
	"github.com/youruser/opdeck/internal/deck"
	"github.com/youruser/opdeck/internal/errors"
	"github.com/youruser/opdeck/internal/handsession"
	"github.com/youruser/opdeck/internal/pkg/clock"
	"github.com/youruser/opdeck/internal/pkg/idgen"
	"github.com/youruser/opdeck/internal/store"
)

// Config holds the dependencies and settings of DeckService.
type Config struct {
	Repo    store.Repository
	Catalog *cards.Catalog
	Engine  *deck.Engine
	Hands   handsession.Repository
	Clock   clock.Clock
	IDGen   idgen.Generator
	Logger  *slog.Logger

	HandSize      int
	HandTTL       time.Duration
	EventBonus    bool
	PublicBaseURL string
	// ImageDir resolves catalog image paths that are not URLs.
	ImageDir string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Repo == nil {
		return errors.InvalidArgument("repository is required")
	}
	if c.Hands == nil {
		return errors.InvalidArgument("hand repository is required")
	}
	if c.HandSize < 1 {
		return errors.InvalidArgumentf("hand size must be at least 1, got %d", c.HandSize)
	}
	return nil
}

type DeckService struct {
	repo     store.Repository
	catalog  *cards.Catalog
	engine   *deck.Engine
	hands    handsession.Repository
	clock    clock.Clock
	idGen    idgen.Generator
	logger   *slog.Logger
	handSize int
	handTTL  time.Duration
	bonus    bool
	baseURL  string
	imageDir string
}

func New(cfg *Config) (*DeckService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	s := &DeckService{
		repo:     cfg.Repo,
		catalog:  cfg.Catalog,
		engine:   cfg.Engine,
		hands:    cfg.Hands,
		clock:    cfg.Clock,
		idGen:    cfg.IDGen,
		logger:   cfg.Logger,
		handSize: cfg.HandSize,
		handTTL:  cfg.HandTTL,
		bonus:    cfg.EventBonus,
		baseURL:  strings.TrimRight(cfg.PublicBaseURL, "/"),
		imageDir: cfg.ImageDir,
	}
	if s.catalog == nil {
		s.catalog = cards.NewCatalog(nil)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.engine == nil {
		s.engine = deck.NewEngine(deck.WithNames(s.catalog), deck.WithLogger(s.logger))
	}
	if s.clock == nil {
		s.clock = clock.New()
	}
	if s.idGen == nil {
		s.idGen = idgen.NewUUID("deck")
	}
	return s, nil
}

// HandSize is the configured opening hand size.
func (s *DeckService) HandSize() int {
	return s.handSize
}

func (s *DeckService) requireOwner(ctx context.Context, deckID, userID string) error {
	if userID == "" {
		return errors.PermissionDenied("a user id is required to change a deck")
	}
	ok, err := s.repo.UserOwnsDeck(ctx, deckID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return errors.PermissionDenied("only the deck owner can change this deck").WithMeta("deck_id", deckID)
	}
	return nil
}

func (s *DeckService) editorState(ctx context.Context, deckID string) (*deck.EditorState, error) {
	d, err := s.repo.GetDeck(ctx, deckID)
	if err != nil {
		return nil, err
	}
	return deck.NewEditorState(d.ID, d.Entries, s.engine), nil
}
