package engine

import "math"

const (
	// BaseXPToLevel and XPGrowthRate define the leveling curve:
	// XPToNextLevel(level) = floor(100 * 1.2^(level-1)).
	BaseXPToLevel = 100.0
	XPGrowthRate  = 1.2

	// SetXP is awarded for each completed set during a workout.
	SetXP = 10

	// ExerciseXP is awarded for adding an exercise to a routine.
	ExerciseXP = 50

	// RegenMinutesPerPoint is the health regeneration quantum: one point
	// per 30 elapsed minutes, evaluated lazily.
	RegenMinutesPerPoint = 30

	// MaxDailyRoutines caps distinct routine starts per calendar day.
	MaxDailyRoutines = 3
)

// XPToNextLevel returns the XP threshold to advance past the given level.
func XPToNextLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return int(math.Floor(BaseXPToLevel * math.Pow(XPGrowthRate, float64(level-1))))
}
