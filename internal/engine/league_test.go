package engine

import (
	"context"
	"testing"
	"time"
)

func TestDivisionForPoints(t *testing.T) {
	cases := []struct {
		points int
		want   string
	}{
		{0, "bronze"},
		{49, "bronze"},
		{50, "silver"},
		{160, "gold"},
		{1200, "challenger"},
		{5000, "challenger"},
	}
	for _, c := range cases {
		if got := DivisionForPoints(c.points); got.ID != c.want {
			t.Errorf("DivisionForPoints(%d)=%s, want %s", c.points, got.ID, c.want)
		}
	}
}

func TestAddPointsTracksBestDivision(t *testing.T) {
	h := newHarness(t, utc(2025, time.January, 5, 12, 0))
	h.loadAll(t)
	ctx := context.Background()

	h.league.AddPoints(ctx, 60)
	if s := h.league.State(); s.Points != 60 || s.BestDivisionID != "silver" {
		t.Fatalf("state=%+v, want 60 points in silver", s)
	}

	// Zero and negative amounts are ignored.
	h.league.AddPoints(ctx, 0)
	h.league.AddPoints(ctx, -10)
	if s := h.league.State(); s.Points != 60 {
		t.Fatalf("points=%d, want 60", s.Points)
	}
}

func TestMonthRolloverBanksReward(t *testing.T) {
	h := newHarness(t, utc(2025, time.February, 1, 0, 30))
	h.seed(t, LeaguesKey, LeagueState{
		MonthKey:       "2025-01",
		Points:         160,
		BestDivisionID: "gold",
	})
	h.loadAll(t)

	s := h.league.State()
	if s.MonthKey != "2025-02" {
		t.Fatalf("monthKey=%q, want 2025-02", s.MonthKey)
	}
	if s.Points != 0 {
		t.Errorf("points=%d, want 0 after rollover", s.Points)
	}
	if s.BestDivisionID != "bronze" {
		t.Errorf("bestDivision=%q, want bronze", s.BestDivisionID)
	}
	// 160 points finished in gold; its reward is banked, not granted.
	if s.PendingRewardXP != 200 {
		t.Errorf("pendingRewardXp=%d, want 200", s.PendingRewardXP)
	}
	if s.LastMonthKey != "2025-01" || s.LastDivisionID != "gold" {
		t.Errorf("last month record = %q/%q, want 2025-01/gold", s.LastMonthKey, s.LastDivisionID)
	}
	if c := h.progression.Character(); c.TotalXP != 0 {
		t.Errorf("rollover granted XP eagerly: totalXP=%d", c.TotalXP)
	}
}

func TestRolloverAppliesMidSessionOnAddPoints(t *testing.T) {
	h := newHarness(t, utc(2025, time.January, 31, 23, 0))
	h.loadAll(t)
	ctx := context.Background()

	h.league.AddPoints(ctx, 160)

	// The process stays resident across midnight into February.
	h.clock.Advance(2 * time.Hour)
	h.league.AddPoints(ctx, 10)

	s := h.league.State()
	if s.MonthKey != "2025-02" || s.Points != 10 {
		t.Fatalf("state=%+v, want 10 points in 2025-02", s)
	}
	if s.PendingRewardXP != 200 {
		t.Errorf("pendingRewardXp=%d, want 200 banked from January's gold finish", s.PendingRewardXP)
	}
}

func TestPendingRewardsAccumulateAcrossMonths(t *testing.T) {
	h := newHarness(t, utc(2025, time.March, 1, 12, 0))
	h.seed(t, LeaguesKey, LeagueState{
		MonthKey:        "2025-02",
		Points:          60,
		BestDivisionID:  "silver",
		PendingRewardXP: 200,
	})
	h.loadAll(t)

	// 60 points finished February in silver (100 XP) on top of the
	// unclaimed 200 from before.
	if s := h.league.State(); s.PendingRewardXP != 300 {
		t.Fatalf("pendingRewardXp=%d, want 300", s.PendingRewardXP)
	}
}

func TestClaimPendingReward(t *testing.T) {
	h := newHarness(t, utc(2025, time.February, 2, 10, 0))
	h.seed(t, LeaguesKey, LeagueState{
		MonthKey:        "2025-02",
		BestDivisionID:  "bronze",
		PendingRewardXP: 200,
	})
	h.loadAll(t)
	ctx := context.Background()

	if got := h.league.ClaimPendingReward(ctx); got != 200 {
		t.Fatalf("claimed %d, want 200", got)
	}
	if c := h.progression.Character(); c.TotalXP != 200 {
		t.Fatalf("totalXP=%d, want 200", c.TotalXP)
	}

	// Second claim is a no-op.
	if got := h.league.ClaimPendingReward(ctx); got != 0 {
		t.Fatalf("second claim returned %d, want 0", got)
	}
	if c := h.progression.Character(); c.TotalXP != 200 {
		t.Fatalf("totalXP=%d after second claim, want 200", c.TotalXP)
	}
}

func TestSnapshotProgress(t *testing.T) {
	h := newHarness(t, utc(2025, time.January, 20, 12, 0))
	h.loadAll(t)
	ctx := context.Background()

	h.league.AddPoints(ctx, 75)
	snap := h.league.Snapshot()
	if snap.Current.ID != "silver" || !snap.HasNext || snap.Next.ID != "gold" {
		t.Fatalf("snapshot = %s → %s, want silver → gold", snap.Current.ID, snap.Next.ID)
	}
	// 75 points is a quarter of the way from 50 to 150.
	if snap.ProgressToNext != 0.25 {
		t.Errorf("progress=%v, want 0.25", snap.ProgressToNext)
	}
}

func TestSnapshotAtTopDivision(t *testing.T) {
	h := newHarness(t, utc(2025, time.January, 20, 12, 0))
	h.loadAll(t)

	h.league.AddPoints(context.Background(), 1500)
	snap := h.league.Snapshot()
	if snap.HasNext {
		t.Fatal("challenger should have no next division")
	}
	if snap.ProgressToNext != 0 {
		t.Errorf("progress=%v, want 0 at the top", snap.ProgressToNext)
	}
}
