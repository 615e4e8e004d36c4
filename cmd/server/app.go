package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/youruser/opdeck/internal/cards"
	"github.com/youruser/opdeck/internal/deck"
	"github.com/youruser/opdeck/internal/handsession"
	"github.com/youruser/opdeck/internal/pkg/clock"
	"github.com/youruser/opdeck/internal/pkg/idgen"
	redisclient "github.com/youruser/opdeck/internal/redis"
	"github.com/youruser/opdeck/internal/service"
	"github.com/youruser/opdeck/internal/store"
)

// app holds the wired dependencies shared by the commands.
type app struct {
	cfg     appConfig
	logger  *slog.Logger
	db      *sql.DB
	redis   redisclient.Client
	catalog *cards.Catalog
	repo    store.Repository
	svc     *service.DeckService
}

func newApp(ctx context.Context, cfg appConfig) (*app, error) {
	logger, err := newLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	a := &app{cfg: cfg, logger: logger}

	list, err := cards.LoadCardsFromDataDir(cfg.DataDir)
	if err != nil {
		logger.Warn("card catalog not loaded", "data_dir", cfg.DataDir, "error", err)
	}
	a.catalog = cards.NewCatalog(list)
	logger.Info("card catalog loaded", "cards", a.catalog.Len())

	a.db, err = store.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := store.CreateSchema(ctx, a.db); err != nil {
		a.Close()
		return nil, err
	}

	clk := clock.New()
	a.repo, err = store.NewSQLRepository(&store.Config{
		DB:     a.db,
		Driver: cfg.DatabaseType,
		Clock:  clk,
		IDGen:  idgen.NewUUID("card"),
	})
	if err != nil {
		a.Close()
		return nil, err
	}

	hands, err := a.newHandRepository(ctx, clk)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.svc, err = service.New(&service.Config{
		Repo:          a.repo,
		Catalog:       a.catalog,
		Engine:        deck.NewEngine(deck.WithNames(a.catalog), deck.WithLogger(logger)),
		Hands:         hands,
		Clock:         clk,
		IDGen:         idgen.NewUUID("deck"),
		Logger:        logger,
		HandSize:      cfg.HandSize,
		HandTTL:       cfg.HandTTL,
		EventBonus:    cfg.EventBonus,
		PublicBaseURL: cfg.PublicBaseURL,
		ImageDir:      filepath.Join(cfg.DataDir, "images"),
	})
	if err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

// newHandRepository uses Redis when an address is configured and keeps
// hands in process otherwise.
func (a *app) newHandRepository(ctx context.Context, clk clock.Clock) (handsession.Repository, error) {
	if a.cfg.RedisAddr == "" {
		a.logger.Info("drawn hands kept in memory")
		return handsession.NewMemory(clk), nil
	}
	client, err := redisclient.NewClient(a.cfg.RedisAddr, &redisclient.Options{Password: a.cfg.RedisPassword})
	if err != nil {
		return nil, err
	}
	if err := redisclient.Ping(ctx, client); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", a.cfg.RedisAddr, err)
	}
	a.redis = client
	a.logger.Info("drawn hands kept in redis", "addr", a.cfg.RedisAddr)
	return handsession.NewRedis(&handsession.RedisConfig{Client: client, Clock: clk})
}

func (a *app) Close() {
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}
