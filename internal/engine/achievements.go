package engine

// Badge represents an achievement derived from character progress.
type Badge struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Earned      bool
}

// BadgesFor evaluates every badge against the character. Badges are pure
// derivations; nothing is persisted.
func BadgesFor(c Character) []Badge {
	return []Badge{
		{ID: "first-workout", Name: "First Workout", Description: "Earn your first XP", Icon: "🏋️", Earned: c.TotalXP > 0},
		{ID: "streak-master", Name: "Streak Master", Description: "Reach a 7-day streak", Icon: "🔥", Earned: c.Streak >= 7},
		{ID: "xp-collector", Name: "XP Collector", Description: "Accumulate 1000 total XP", Icon: "⚡", Earned: c.TotalXP >= 1000},
		{ID: "quest-hunter", Name: "Quest Hunter", Description: "Complete 10 quests", Icon: "🗺️", Earned: c.QuestsCompleted >= 10},
		{ID: "level-up", Name: "Level Up", Description: "Reach level 5", Icon: "⭐", Earned: c.Level >= 5},
		{ID: "dedication", Name: "Dedication", Description: "Reach a 30-day streak", Icon: "👑", Earned: c.Streak >= 30},
	}
}

// CountEarnedBadges returns how many badges the character has unlocked.
func CountEarnedBadges(c Character) int {
	count := 0
	for _, b := range BadgesFor(c) {
		if b.Earned {
			count++
		}
	}
	return count
}
