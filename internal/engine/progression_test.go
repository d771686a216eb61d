package engine

import (
	"context"
	"testing"
	"time"
)

func TestAwardXPLevelBoundary(t *testing.T) {
	h := newHarness(t, utc(2025, time.March, 10, 9, 0))
	h.loadAll(t)
	ctx := context.Background()

	h.progression.AwardXP(ctx, 95)
	res := h.progression.AwardXP(ctx, 10)

	if !res.LevelUp || res.LevelBefore != 1 || res.LevelAfter != 2 {
		t.Fatalf("expected level 1 → 2, got %+v", res)
	}
	c := h.progression.Character()
	if c.XP != 5 {
		t.Errorf("xp=%d, want 5 (overflow carried)", c.XP)
	}
	if c.XPToNext != 120 {
		t.Errorf("xpToNext=%d, want 120", c.XPToNext)
	}
	if c.TotalXP != 105 {
		t.Errorf("totalXP=%d, want 105", c.TotalXP)
	}
}

func TestAwardXPExactThresholdLevels(t *testing.T) {
	h := newHarness(t, utc(2025, time.March, 10, 9, 0))
	h.loadAll(t)

	res := h.progression.AwardXP(context.Background(), 100)
	if !res.LevelUp {
		t.Fatalf("award of exactly xpToNext should level up, got %+v", res)
	}
	if c := h.progression.Character(); c.XP != 0 {
		t.Errorf("xp=%d, want 0", c.XP)
	}
}

func TestAwardXPSingleLevelCheckPerGrant(t *testing.T) {
	h := newHarness(t, utc(2025, time.March, 10, 9, 0))
	h.loadAll(t)

	// 500 XP spans several thresholds but one grant advances one level;
	// the surplus stays until the next grant re-checks.
	res := h.progression.AwardXP(context.Background(), 500)
	if res.LevelAfter != 2 {
		t.Fatalf("levelAfter=%d, want 2", res.LevelAfter)
	}
	c := h.progression.Character()
	if c.XP != 400 {
		t.Errorf("xp=%d, want 400", c.XP)
	}

	res = h.progression.AwardXP(context.Background(), 0)
	if res.LevelAfter != 3 {
		t.Fatalf("follow-up grant should catch the pending level, got %+v", res)
	}
}

func TestAwardXPNegativeClampedToZero(t *testing.T) {
	h := newHarness(t, utc(2025, time.March, 10, 9, 0))
	h.loadAll(t)

	res := h.progression.AwardXP(context.Background(), -40)
	if res.XPAwarded != 0 || res.LevelUp {
		t.Fatalf("negative award should be a zero grant, got %+v", res)
	}
	if c := h.progression.Character(); c.TotalXP != 0 {
		t.Errorf("totalXP=%d, want 0", c.TotalXP)
	}
}

func TestCompleteQuestStreaks(t *testing.T) {
	h := newHarness(t, utc(2025, time.March, 10, 9, 0))
	h.loadAll(t)
	ctx := context.Background()

	h.progression.CompleteQuest(ctx, "daily-cardio", 30)
	if c := h.progression.Character(); c.Streak != 1 || c.QuestsCompleted != 1 {
		t.Fatalf("first completion: streak=%d quests=%d, want 1/1", c.Streak, c.QuestsCompleted)
	}

	// Same day: streak holds, counter still advances.
	h.progression.CompleteQuest(ctx, "daily-stretch", 20)
	if c := h.progression.Character(); c.Streak != 1 || c.QuestsCompleted != 2 {
		t.Fatalf("same-day completion: streak=%d quests=%d, want 1/2", c.Streak, c.QuestsCompleted)
	}

	// Next day extends.
	h.clock.Advance(24 * time.Hour)
	h.progression.CompleteQuest(ctx, "daily-cardio", 30)
	if c := h.progression.Character(); c.Streak != 2 {
		t.Fatalf("next-day completion: streak=%d, want 2", c.Streak)
	}

	// A multi-day gap restarts at one, not zero.
	h.clock.Advance(3 * 24 * time.Hour)
	h.progression.CompleteQuest(ctx, "daily-cardio", 30)
	if c := h.progression.Character(); c.Streak != 1 {
		t.Fatalf("post-gap completion: streak=%d, want 1", c.Streak)
	}
}

func TestLoadReconcilesStreakPassively(t *testing.T) {
	h := newHarness(t, utc(2025, time.March, 10, 9, 0))
	seeded := DefaultCharacter()
	seeded.Streak = 5
	seeded.LastWorkout = "2025-03-09"
	h.seed(t, CharacterKey, seeded)

	// One-day gap advances without any new action.
	h.loadAll(t)
	c := h.progression.Character()
	if c.Streak != 6 {
		t.Fatalf("streak=%d, want 6", c.Streak)
	}
	if c.LastWorkout != "2025-03-10" {
		t.Fatalf("lastWorkout=%q, want 2025-03-10", c.LastWorkout)
	}
}

func TestLoadResetsBrokenStreakToZero(t *testing.T) {
	h := newHarness(t, utc(2025, time.March, 10, 9, 0))
	seeded := DefaultCharacter()
	seeded.Streak = 5
	seeded.LastWorkout = "2025-03-06"
	h.seed(t, CharacterKey, seeded)

	h.loadAll(t)
	if c := h.progression.Character(); c.Streak != 0 {
		t.Fatalf("streak=%d, want 0 after passive break", c.Streak)
	}
}

func TestHealthRegenWholeUnits(t *testing.T) {
	h := newHarness(t, utc(2025, time.March, 10, 9, 0))
	h.loadAll(t)
	ctx := context.Background()

	// Spend down, then wait 65 minutes: two whole 30-minute units.
	h.progression.ConsumeHealth(ctx, 20)
	h.clock.Advance(65 * time.Minute)
	h.progression.ApplyHealthRegen(ctx)
	if c := h.progression.Character(); c.CurrentHealth != 32 {
		t.Fatalf("health=%d, want 32 (+2 from 30)", c.CurrentHealth)
	}
}

func TestHealthRegenDiscardsRemainders(t *testing.T) {
	h := newHarness(t, utc(2025, time.March, 10, 9, 0))
	h.loadAll(t)
	ctx := context.Background()

	h.progression.ConsumeHealth(ctx, 20)

	// Two 20-minute observations never add up to a unit because each
	// observation refreshes the anchor timestamp.
	h.clock.Advance(20 * time.Minute)
	h.progression.ApplyHealthRegen(ctx)
	h.clock.Advance(20 * time.Minute)
	h.progression.ApplyHealthRegen(ctx)

	if c := h.progression.Character(); c.CurrentHealth != 30 {
		t.Fatalf("health=%d, want 30 (remainders discarded)", c.CurrentHealth)
	}
}

func TestHealthRegenCapsAtMax(t *testing.T) {
	h := newHarness(t, utc(2025, time.March, 10, 9, 0))
	h.loadAll(t)
	ctx := context.Background()

	h.progression.ConsumeHealth(ctx, 5)
	h.clock.Advance(24 * time.Hour)
	h.progression.ApplyHealthRegen(ctx)
	if c := h.progression.Character(); c.CurrentHealth != c.MaxHealth {
		t.Fatalf("health=%d, want max %d", c.CurrentHealth, c.MaxHealth)
	}
}

func TestConsumeHealth(t *testing.T) {
	h := newHarness(t, utc(2025, time.March, 10, 9, 0))
	h.loadAll(t)
	ctx := context.Background()

	if ok := h.progression.ConsumeHealth(ctx, 10); !ok {
		t.Fatal("consuming 10 of 50 should succeed")
	}
	if c := h.progression.Character(); c.CurrentHealth != 40 {
		t.Fatalf("health=%d, want 40", c.CurrentHealth)
	}

	// Draining past zero floors at zero and reports depletion.
	if ok := h.progression.ConsumeHealth(ctx, 100); ok {
		t.Fatal("draining the pool should report false")
	}
	if c := h.progression.Character(); c.CurrentHealth != 0 {
		t.Fatalf("health=%d, want 0", c.CurrentHealth)
	}

	// Empty pool rejects before deducting.
	if ok := h.progression.ConsumeHealth(ctx, 1); ok {
		t.Fatal("consuming from an empty pool should report false")
	}
}

func TestDailyRoutineQuota(t *testing.T) {
	h := newHarness(t, utc(2025, time.March, 10, 9, 0))
	h.loadAll(t)
	ctx := context.Background()

	for _, id := range []string{"r1", "r2", "r3"} {
		if !h.progression.CanStartRoutineToday(id) {
			t.Fatalf("routine %s should be within quota", id)
		}
		h.progression.RegisterRoutineStart(ctx, id)
	}

	if h.progression.CanStartRoutineToday("r4") {
		t.Fatal("fourth distinct routine should be rejected")
	}
	// Re-entering an already-started routine is always allowed.
	if !h.progression.CanStartRoutineToday("r2") {
		t.Fatal("re-entry into a started routine should be allowed")
	}

	// The quota is per calendar day.
	h.clock.Advance(24 * time.Hour)
	if !h.progression.CanStartRoutineToday("r4") {
		t.Fatal("quota should reset on the next day")
	}
}

func TestRoutineQuotaTreatsStaleSetAsEmpty(t *testing.T) {
	h := newHarness(t, utc(2025, time.March, 10, 9, 0))
	seeded := DefaultCharacter()
	seeded.RoutinesDate = "2025-03-08"
	seeded.RoutinesDoneToday = []string{"r1", "r2", "r3"}
	h.seed(t, CharacterKey, seeded)
	h.loadAll(t)

	if !h.progression.CanStartRoutineToday("r4") {
		t.Fatal("a stale routine set should not count against today")
	}
}

func TestLoadRepairsCorruptBlob(t *testing.T) {
	h := newHarness(t, utc(2025, time.March, 10, 9, 0))
	if err := h.store.Set(context.Background(), CharacterKey, []byte("{not json")); err != nil {
		t.Fatalf("seed: %v", err)
	}
	h.loadAll(t)

	c := h.progression.Character()
	if c.Level != 1 || c.MaxHealth != DefaultMaxHealth {
		t.Fatalf("corrupt blob should fall back to defaults, got %+v", c)
	}
}

func TestLoadRepairsInvalidFields(t *testing.T) {
	h := newHarness(t, utc(2025, time.March, 10, 9, 0))
	seeded := DefaultCharacter()
	seeded.Level = 0
	seeded.XPToNext = -10
	seeded.CurrentHealth = 999
	h.seed(t, CharacterKey, seeded)
	h.loadAll(t)

	c := h.progression.Character()
	if c.Level != 1 {
		t.Errorf("level=%d, want 1", c.Level)
	}
	if c.XPToNext != 100 {
		t.Errorf("xpToNext=%d, want 100", c.XPToNext)
	}
	if c.CurrentHealth != c.MaxHealth {
		t.Errorf("health=%d, want clamped to max %d", c.CurrentHealth, c.MaxHealth)
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	h := newHarness(t, utc(2025, time.March, 10, 9, 0))
	h.loadAll(t)

	name := "Egemen"
	weight := 82.5
	h.progression.UpdateProfile(context.Background(), ProfileUpdate{Name: &name, Weight: &weight})

	c := h.progression.Character()
	if c.Name != "Egemen" || c.Weight != 82.5 {
		t.Fatalf("profile not applied: %+v", c)
	}
	if c.Gender != "male" {
		t.Fatalf("untouched field changed: gender=%q", c.Gender)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	h := newHarness(t, utc(2025, time.March, 10, 9, 0))
	h.loadAll(t)
	ctx := context.Background()

	h.progression.AwardXP(ctx, 300)
	h.progression.Reset(ctx)

	c := h.progression.Character()
	if c.TotalXP != 0 || c.Level != 1 {
		t.Fatalf("reset should restore defaults, got %+v", c)
	}
}

func TestPersistedCharacterRoundTrips(t *testing.T) {
	h := newHarness(t, utc(2025, time.March, 10, 9, 0))
	h.loadAll(t)
	ctx := context.Background()

	h.progression.AwardXP(ctx, 150)
	h.writer.Flush()

	// A second session over the same store sees the same record.
	h2 := &harness{
		store:  h.store,
		writer: h.writer,
		clock:  h.clock,
	}
	h2.progression = NewProgression(h.store, h.writer, h.clock, testLogger())
	if err := h2.progression.Load(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}
	c := h2.progression.Character()
	if c.TotalXP != 150 || c.Level != 2 {
		t.Fatalf("reloaded character mismatch: %+v", c)
	}
}
