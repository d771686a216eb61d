package engine

import "testing"

func TestQuestCatalogIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, q := range AllQuests() {
		if seen[q.ID] {
			t.Errorf("duplicate quest id %q", q.ID)
		}
		seen[q.ID] = true
		if q.XP <= 0 {
			t.Errorf("quest %q has non-positive XP", q.ID)
		}
	}
}

func TestFindQuest(t *testing.T) {
	q, ok := FindQuest("daily-cardio")
	if !ok {
		t.Fatal("daily-cardio should exist")
	}
	if q.XP != 30 {
		t.Fatalf("daily-cardio xp=%d, want 30", q.XP)
	}

	if _, ok := FindQuest("nope"); ok {
		t.Fatal("unknown quest id should not resolve")
	}
}

func TestLeaguePointsForQuest(t *testing.T) {
	q, _ := FindQuest("weekly-volume")
	if got := LeaguePointsForQuest(q); got != q.XP/10 {
		t.Fatalf("points=%d, want %d", got, q.XP/10)
	}
}

func TestBadgeThresholds(t *testing.T) {
	c := DefaultCharacter()
	if got := CountEarnedBadges(c); got != 0 {
		t.Fatalf("fresh character earned %d badges, want 0", got)
	}

	c.TotalXP = 1000
	c.Streak = 7
	c.QuestsCompleted = 10
	c.Level = 5

	earned := map[string]bool{}
	for _, b := range BadgesFor(c) {
		earned[b.ID] = b.Earned
	}
	for _, id := range []string{"first-workout", "streak-master", "xp-collector", "quest-hunter", "level-up"} {
		if !earned[id] {
			t.Errorf("badge %q should be earned", id)
		}
	}
	if earned["dedication"] {
		t.Error("dedication needs a 30-day streak")
	}
}
