package engine

// Character is the single persisted hero record. Field names round-trip
// the JSON blob stored under the "character" key.
type Character struct {
	Name   string  `json:"name"`
	Gender string  `json:"gender"`
	Height float64 `json:"height,omitempty"`
	Weight float64 `json:"weight,omitempty"`
	Goal   string  `json:"goal,omitempty"`

	Level           int    `json:"level"`
	XP              int    `json:"xp"`
	XPToNext        int    `json:"xpToNextLevel"`
	TotalXP         int    `json:"totalXP"`
	Streak          int    `json:"streak"`
	LastWorkout     string `json:"lastWorkout"` // day key, "" when never
	QuestsCompleted int    `json:"questsCompleted"`

	MaxHealth        int    `json:"maxHealth"`
	CurrentHealth    int    `json:"currentHealth"`
	LastHealthUpdate string `json:"lastHealthUpdate"` // RFC 3339, "" when never observed

	RoutinesDate      string   `json:"routinesDate"` // day key the set below belongs to
	RoutinesDoneToday []string `json:"routinesDoneToday"`

	BackgroundURL string `json:"characterBackgroundUrl,omitempty"`
}

const (
	DefaultCharacterName = "Adventurer"
	DefaultMaxHealth     = 50
)

func DefaultCharacter() Character {
	return Character{
		Name:              DefaultCharacterName,
		Gender:            "male",
		Level:             1,
		XP:                0,
		XPToNext:          XPToNextLevel(1),
		TotalXP:           0,
		Streak:            0,
		QuestsCompleted:   0,
		MaxHealth:         DefaultMaxHealth,
		CurrentHealth:     DefaultMaxHealth,
		RoutinesDoneToday: []string{},
	}
}

// repairCharacter restores the record's invariants after loading a
// partial or corrupted blob. Missing fields have already been filled by
// unmarshalling over the defaults; this fixes values that violate bounds.
func repairCharacter(c *Character) {
	if c.Level < 1 {
		c.Level = 1
	}
	if c.XPToNext <= 0 {
		c.XPToNext = XPToNextLevel(c.Level)
	}
	if c.XP < 0 {
		c.XP = 0
	}
	if c.TotalXP < 0 {
		c.TotalXP = 0
	}
	if c.Streak < 0 {
		c.Streak = 0
	}
	if c.QuestsCompleted < 0 {
		c.QuestsCompleted = 0
	}
	if c.MaxHealth <= 0 {
		c.MaxHealth = DefaultMaxHealth
	}
	if c.CurrentHealth < 0 {
		c.CurrentHealth = 0
	}
	if c.CurrentHealth > c.MaxHealth {
		c.CurrentHealth = c.MaxHealth
	}
	if c.RoutinesDoneToday == nil {
		c.RoutinesDoneToday = []string{}
	}
}
