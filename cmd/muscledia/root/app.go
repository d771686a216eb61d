package root

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/EgemenErin/Muscledia/internal/config"
	"github.com/EgemenErin/Muscledia/internal/engine"
	"github.com/EgemenErin/Muscledia/internal/storage"
)

// App bundles the engines wired at process start. Engines are explicit
// service objects; nothing here is a package-level singleton.
type App struct {
	Config      config.Config
	Store       *storage.SQLiteStore
	Writer      *storage.Writer
	Clock       engine.Clock
	Progression *engine.Progression
	League      *engine.League
	Raid        *engine.Raid
	Routines    *engine.Routines
}

func openApp(ctx context.Context) (*App, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.EnsureDataDir(); err != nil {
		return nil, nil, err
	}

	store, err := storage.Open(ctx, cfg.DBPath())
	if err != nil {
		return nil, nil, err
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	writer := storage.NewWriter(store, log)
	clock := engine.RealClock{}

	progression := engine.NewProgression(store, writer, clock, log)
	league := engine.NewLeague(store, writer, clock, progression, log)
	raid := engine.NewRaid(store, writer, clock, log)
	routines := engine.NewRoutines(store, writer, clock, progression, raid, log)

	cleanup := func() {
		writer.Flush()
		_ = store.Close()
	}

	// A first run has no character blob yet; detect it before Load
	// persists the regen timestamp.
	_, getErr := store.Get(ctx, engine.CharacterKey)
	firstRun := errors.Is(getErr, storage.ErrNotFound)

	if err := progression.Load(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}
	if firstRun && cfg.CharacterName != "" {
		progression.UpdateProfile(ctx, engine.ProfileUpdate{Name: &cfg.CharacterName})
	}
	if err := league.Load(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}
	if err := raid.Load(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}
	if err := routines.Load(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}

	app := &App{
		Config:      cfg,
		Store:       store,
		Writer:      writer,
		Clock:       clock,
		Progression: progression,
		League:      league,
		Raid:        raid,
		Routines:    routines,
	}
	return app, cleanup, nil
}
