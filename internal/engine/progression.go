package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/EgemenErin/Muscledia/internal/storage"
)

// CharacterKey is the storage key for the hero record.
const CharacterKey = "character"

// Progression owns the character: XP and leveling, health pool and lazy
// regeneration, workout streaks, and the daily routine-start quota.
// Construct once at startup, Load, and pass by reference.
type Progression struct {
	store  storage.Store
	writer *storage.Writer
	clock  Clock
	log    *slog.Logger

	c Character
}

// AwardResult reports the outcome of an XP grant.
type AwardResult struct {
	XPAwarded   int
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
}

func NewProgression(store storage.Store, writer *storage.Writer, clock Clock, log *slog.Logger) *Progression {
	if log == nil {
		log = slog.Default()
	}
	return &Progression{
		store:  store,
		writer: writer,
		clock:  clock,
		log:    log,
		c:      DefaultCharacter(),
	}
}

// Load reads the stored character (merging over defaults and repairing
// invariants) and immediately reconciles it against the current time.
func (p *Progression) Load(ctx context.Context) error {
	c := DefaultCharacter()

	raw, err := p.store.Get(ctx, CharacterKey)
	switch {
	case err == nil:
		if uerr := json.Unmarshal(raw, &c); uerr != nil {
			p.log.Warn("character blob corrupt, starting from defaults", "err", uerr)
			c = DefaultCharacter()
		}
	case errors.Is(err, storage.ErrNotFound):
		// first run
	default:
		return fmt.Errorf("load character: %w", err)
	}

	repairCharacter(&c)
	p.c = c

	p.ApplyHealthRegen(ctx)
	p.reconcileStreak(ctx)
	return nil
}

// Character returns a snapshot of the current in-memory state.
func (p *Progression) Character() Character {
	c := p.c
	c.RoutinesDoneToday = append([]string(nil), p.c.RoutinesDoneToday...)
	return c
}

// AwardXP adds amount to both xp and totalXP and applies the level-up
// check once. Negative amounts are clamped to zero; totalXP never
// decreases and level never regresses.
func (p *Progression) AwardXP(ctx context.Context, amount int) AwardResult {
	res := p.applyAward(amount)
	p.persist()
	return res
}

func (p *Progression) applyAward(amount int) AwardResult {
	if amount < 0 {
		amount = 0
	}
	before := p.c.Level

	p.c.XP += amount
	p.c.TotalXP += amount
	if p.c.XP >= p.c.XPToNext {
		p.c.XP -= p.c.XPToNext
		p.c.Level++
		p.c.XPToNext = XPToNextLevel(p.c.Level)
	}

	return AwardResult{
		XPAwarded:   amount,
		LevelBefore: before,
		LevelAfter:  p.c.Level,
		LevelUp:     p.c.Level > before,
	}
}

// CompleteQuest records a qualifying completion: advances the streak,
// marks today as the last workout day, bumps the quest counter, and
// awards the XP reward.
func (p *Progression) CompleteQuest(ctx context.Context, questID string, xpReward int) AwardResult {
	today := DayKey(p.clock.Now())

	if p.c.LastWorkout != today {
		if p.c.LastWorkout == "" {
			p.c.Streak = 1
		} else {
			days, err := daysBetween(p.c.LastWorkout, today)
			switch {
			case err != nil:
				p.log.Warn("unreadable lastWorkout, restarting streak", "value", p.c.LastWorkout)
				p.c.Streak = 1
			case days == 1:
				p.c.Streak++
			case days > 1:
				p.c.Streak = 1
			}
		}
	}

	res := p.applyAward(xpReward)
	p.c.QuestsCompleted++
	p.c.LastWorkout = today

	p.log.Info("quest completed", "quest", questID, "xp", res.XPAwarded, "streak", p.c.Streak)
	p.persist()
	return res
}

// ApplyHealthRegen lazily credits health for elapsed wall-clock time:
// one point per whole 30-minute unit since lastHealthUpdate. The
// timestamp is refreshed even when zero units elapsed or health is
// already full, so sub-unit remainders are deliberately discarded.
func (p *Progression) ApplyHealthRegen(ctx context.Context) {
	now := p.clock.Now()

	if p.c.LastHealthUpdate == "" {
		// Nothing to measure elapsed time against.
		p.c.LastHealthUpdate = now.UTC().Format(time.RFC3339)
		p.persist()
		return
	}

	last, err := time.Parse(time.RFC3339, p.c.LastHealthUpdate)
	if err != nil {
		p.log.Warn("unreadable lastHealthUpdate, resetting", "value", p.c.LastHealthUpdate)
		p.c.LastHealthUpdate = now.UTC().Format(time.RFC3339)
		p.persist()
		return
	}

	elapsedMinutes := int(now.Sub(last).Minutes())
	if elapsedMinutes <= 0 {
		return
	}

	if p.c.CurrentHealth < p.c.MaxHealth {
		if units := elapsedMinutes / RegenMinutesPerPoint; units > 0 {
			p.c.CurrentHealth += units
			if p.c.CurrentHealth > p.c.MaxHealth {
				p.c.CurrentHealth = p.c.MaxHealth
			}
		}
	}
	p.c.LastHealthUpdate = now.UTC().Format(time.RFC3339)
	p.persist()
}

// ConsumeHealth spends health on an action. It reports false when no
// health was available before the call, or when the deduction empties the
// pool; pending regeneration is applied first.
func (p *Progression) ConsumeHealth(ctx context.Context, amount int) bool {
	p.ApplyHealthRegen(ctx)

	if p.c.CurrentHealth <= 0 {
		return false
	}
	if amount < 0 {
		amount = 0
	}

	remaining := p.c.CurrentHealth - amount
	if remaining < 0 {
		remaining = 0
	}
	p.c.CurrentHealth = remaining
	p.persist()
	return remaining > 0
}

// CanStartRoutineToday reports whether starting the routine is within the
// daily quota: at most MaxDailyRoutines distinct routines per calendar
// day, with re-entry into an already-started routine always allowed.
func (p *Progression) CanStartRoutineToday(routineID string) bool {
	done := p.routinesDoneOn(DayKey(p.clock.Now()))
	if !containsID(done, routineID) && len(done) >= MaxDailyRoutines {
		return false
	}
	return true
}

// RegisterRoutineStart records a routine start against today's quota.
// The engine does not enforce the quota itself; callers must gate on
// CanStartRoutineToday first.
func (p *Progression) RegisterRoutineStart(ctx context.Context, routineID string) {
	today := DayKey(p.clock.Now())
	done := p.routinesDoneOn(today)
	if containsID(done, routineID) {
		return
	}
	p.c.RoutinesDate = today
	p.c.RoutinesDoneToday = append(done, routineID)
	p.persist()
}

// routinesDoneOn scopes the stored set to its date: a stale set counts as
// empty without being physically cleared until the next write.
func (p *Progression) routinesDoneOn(day string) []string {
	if p.c.RoutinesDate != day {
		return nil
	}
	return append([]string(nil), p.c.RoutinesDoneToday...)
}

// ProfileUpdate carries optional cosmetic/profile field changes.
type ProfileUpdate struct {
	Name          *string
	Gender        *string
	Height        *float64
	Weight        *float64
	Goal          *string
	BackgroundURL *string
}

func (p *Progression) UpdateProfile(ctx context.Context, u ProfileUpdate) {
	if u.Name != nil {
		p.c.Name = *u.Name
	}
	if u.Gender != nil {
		p.c.Gender = *u.Gender
	}
	if u.Height != nil {
		p.c.Height = *u.Height
	}
	if u.Weight != nil {
		p.c.Weight = *u.Weight
	}
	if u.Goal != nil {
		p.c.Goal = *u.Goal
	}
	if u.BackgroundURL != nil {
		p.c.BackgroundURL = *u.BackgroundURL
	}
	p.persist()
}

// Reset returns the character to defaults in memory and persists them.
func (p *Progression) Reset(ctx context.Context) {
	p.c = DefaultCharacter()
	p.persist()
}

// reconcileStreak is the passive (no new action) streak check run on
// load. A one-day gap still advances the streak; a longer gap resets it
// to zero rather than one (explicit completions reset to one).
func (p *Progression) reconcileStreak(ctx context.Context) {
	if p.c.LastWorkout == "" {
		return
	}
	today := DayKey(p.clock.Now())
	days, err := daysBetween(p.c.LastWorkout, today)
	if err != nil {
		return
	}
	switch {
	case days == 1:
		p.c.Streak++
		p.c.LastWorkout = today
		p.persist()
	case days > 1:
		p.c.Streak = 0
		p.c.LastWorkout = today
		p.persist()
	}
}

func (p *Progression) persist() {
	p.writer.Save(CharacterKey, p.c)
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
