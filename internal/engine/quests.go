package engine

// Quest is static catalog content; completion state lives on the
// character (questsCompleted) and in the caller's session, not here.
type Quest struct {
	ID          string
	Title       string
	Description string
	XP          int
}

var DailyQuests = []Quest{
	{ID: "daily-first-set", Title: "Warm Up", Description: "Complete your first set of the day", XP: 20},
	{ID: "daily-full-circuit", Title: "Full Circuit", Description: "Finish three different exercises", XP: 40},
	{ID: "daily-cardio", Title: "Heart Starter", Description: "Do 15 minutes of cardio", XP: 30},
	{ID: "daily-stretch", Title: "Loose Ends", Description: "Stretch for 10 minutes after training", XP: 20},
}

var WeeklyQuests = []Quest{
	{ID: "weekly-four-workouts", Title: "Consistency", Description: "Train on four different days this week", XP: 150},
	{ID: "weekly-volume", Title: "Volume King", Description: "Complete 100 sets this week", XP: 200},
	{ID: "weekly-leg-day", Title: "Never Skip Leg Day", Description: "Finish a full lower-body routine", XP: 120},
}

var SpecialQuests = []Quest{
	{ID: "special-first-routine", Title: "Architect", Description: "Create your first routine", XP: 100},
	{ID: "special-streak-14", Title: "Unbreakable", Description: "Hold a 14-day workout streak", XP: 300},
}

// AllQuests returns the full catalog in display order.
func AllQuests() []Quest {
	out := make([]Quest, 0, len(DailyQuests)+len(WeeklyQuests)+len(SpecialQuests))
	out = append(out, DailyQuests...)
	out = append(out, WeeklyQuests...)
	out = append(out, SpecialQuests...)
	return out
}

// FindQuest looks a quest up by id across all catalogs.
func FindQuest(id string) (Quest, bool) {
	for _, q := range AllQuests() {
		if q.ID == id {
			return q, true
		}
	}
	return Quest{}, false
}

// LeaguePointsForQuest converts a quest's XP reward into league points.
func LeaguePointsForQuest(q Quest) int {
	return q.XP / 10
}
