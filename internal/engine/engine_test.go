package engine

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/EgemenErin/Muscledia/internal/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// harness wires the engines over an in-memory store with a fake clock.
type harness struct {
	store       *storage.MemoryStore
	writer      *storage.Writer
	clock       *FakeClock
	progression *Progression
	league      *League
	raid        *Raid
	routines    *Routines
}

func newHarness(t *testing.T, start time.Time) *harness {
	t.Helper()

	store := storage.NewMemoryStore()
	log := testLogger()
	writer := storage.NewWriter(store, log)
	clock := NewFakeClock(start)

	progression := NewProgression(store, writer, clock, log)
	league := NewLeague(store, writer, clock, progression, log)
	raid := NewRaid(store, writer, clock, log)
	routines := NewRoutines(store, writer, clock, progression, raid, log)

	return &harness{
		store:       store,
		writer:      writer,
		clock:       clock,
		progression: progression,
		league:      league,
		raid:        raid,
		routines:    routines,
	}
}

func (h *harness) loadAll(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	if err := h.progression.Load(ctx); err != nil {
		t.Fatalf("load progression: %v", err)
	}
	if err := h.league.Load(ctx); err != nil {
		t.Fatalf("load league: %v", err)
	}
	if err := h.raid.Load(ctx); err != nil {
		t.Fatalf("load raid: %v", err)
	}
	if err := h.routines.Load(ctx); err != nil {
		t.Fatalf("load routines: %v", err)
	}
}

// seed stores v under key before Load runs, simulating a previous session.
func (h *harness) seed(t *testing.T, key string, v any) {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal seed %s: %v", key, err)
	}
	if err := h.store.Set(context.Background(), key, raw); err != nil {
		t.Fatalf("seed %s: %v", key, err)
	}
}

func utc(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func TestWipeAfterFlushStaysEmpty(t *testing.T) {
	h := newHarness(t, utc(2025, time.March, 10, 9, 0))
	h.loadAll(t)

	// Loading dispatches saves (the raid record always, the character's
	// regen timestamp); they must be drained before a wipe or a late
	// write resurrects the blob.
	h.writer.Flush()

	ctx := context.Background()
	keys := []string{CharacterKey, LeaguesKey, RaidKey, RoutinesKey}
	for _, key := range keys {
		if err := h.store.Remove(ctx, key); err != nil {
			t.Fatalf("remove %s: %v", key, err)
		}
	}

	h.writer.Flush()
	for _, key := range keys {
		if _, err := h.store.Get(ctx, key); !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("key %s reappeared after wipe: err=%v", key, err)
		}
	}
}
