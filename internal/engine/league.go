package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/EgemenErin/Muscledia/internal/storage"
)

// LeaguesKey is the storage key for the monthly league record.
const LeaguesKey = "leagues"

// LeagueState is the persisted month-scoped competitive record. Points
// reset on rollover; the finalized month's division reward is banked in
// PendingRewardXP until claimed.
type LeagueState struct {
	MonthKey        string `json:"monthKey"`
	Points          int    `json:"points"`
	BestDivisionID  string `json:"bestDivisionId"`
	PendingRewardXP int    `json:"pendingRewardXp"`
	LastMonthKey    string `json:"lastMonthKey,omitempty"`
	LastDivisionID  string `json:"lastDivisionId,omitempty"`
}

// XPAwarder is the slice of the Progression engine the league needs to
// grant claimed rewards.
type XPAwarder interface {
	AwardXP(ctx context.Context, amount int) AwardResult
}

// League owns the monthly points ladder. Month rollover is re-checked
// before every points mutation, not only at load, because the process may
// stay resident across a month boundary.
type League struct {
	store  storage.Store
	writer *storage.Writer
	clock  Clock
	xp     XPAwarder
	log    *slog.Logger

	s LeagueState
}

// LeagueSnapshot bundles the state with its derived values for display.
type LeagueSnapshot struct {
	State          LeagueState
	Current        Division
	Next           Division
	HasNext        bool
	ProgressToNext float64
	DaysUntilReset int
}

func NewLeague(store storage.Store, writer *storage.Writer, clock Clock, xp XPAwarder, log *slog.Logger) *League {
	if log == nil {
		log = slog.Default()
	}
	return &League{
		store:  store,
		writer: writer,
		clock:  clock,
		xp:     xp,
		log:    log,
		s: LeagueState{
			MonthKey:       MonthKey(clock.Now()),
			BestDivisionID: Divisions[0].ID,
		},
	}
}

// Load reads the stored league record and finalizes the previous month if
// a rollover happened while the app was closed.
func (l *League) Load(ctx context.Context) error {
	s := LeagueState{
		MonthKey:       MonthKey(l.clock.Now()),
		BestDivisionID: Divisions[0].ID,
	}

	raw, err := l.store.Get(ctx, LeaguesKey)
	switch {
	case err == nil:
		if uerr := json.Unmarshal(raw, &s); uerr != nil {
			l.log.Warn("league blob corrupt, starting from defaults", "err", uerr)
			s = LeagueState{MonthKey: MonthKey(l.clock.Now()), BestDivisionID: Divisions[0].ID}
		}
	case errors.Is(err, storage.ErrNotFound):
		// first run
	default:
		return fmt.Errorf("load leagues: %w", err)
	}

	repairLeagueState(&s)
	l.s = s

	if l.ensureCurrentMonth() {
		l.persist()
	}
	return nil
}

// State returns the current in-memory record.
func (l *League) State() LeagueState { return l.s }

// AddPoints credits league points earned by a workout action. Amounts
// that are not positive are ignored. The month is reconciled first, so a
// rollover is never missed even mid-process.
func (l *League) AddPoints(ctx context.Context, amount int) {
	if amount <= 0 {
		return
	}
	l.ensureCurrentMonth()

	l.s.Points += amount
	div := DivisionForPoints(l.s.Points)
	if divisionRank(div.ID) > divisionRank(l.s.BestDivisionID) {
		l.s.BestDivisionID = div.ID
	}
	l.persist()
}

// ClaimPendingReward grants the banked reward XP through the Progression
// engine and zeroes the bank. Claiming with nothing pending is a no-op.
func (l *League) ClaimPendingReward(ctx context.Context) int {
	claimed := l.s.PendingRewardXP
	if claimed <= 0 {
		return 0
	}
	l.xp.AwardXP(ctx, claimed)
	l.s.PendingRewardXP = 0
	l.log.Info("league reward claimed", "xp", claimed)
	l.persist()
	return claimed
}

// Snapshot derives the display values for the current month.
func (l *League) Snapshot() LeagueSnapshot {
	current := DivisionForPoints(l.s.Points)
	next, hasNext := NextDivision(current)

	progress := 0.0
	if hasNext {
		span := next.MinPoints - current.MinPoints
		if span > 0 {
			progress = float64(l.s.Points-current.MinPoints) / float64(span)
			if progress < 0 {
				progress = 0
			}
			if progress > 1 {
				progress = 1
			}
		}
	}

	return LeagueSnapshot{
		State:          l.s,
		Current:        current,
		Next:           next,
		HasNext:        hasNext,
		ProgressToNext: progress,
		DaysUntilReset: DaysUntilMonthEnd(l.clock.Now()),
	}
}

// ensureCurrentMonth finalizes the stored month when the calendar has
// moved on: the division reached by the stored points banks its reward,
// and a fresh month starts at zero points in the lowest division.
// Reports whether a rollover happened.
func (l *League) ensureCurrentMonth() bool {
	currentKey := MonthKey(l.clock.Now())
	if l.s.MonthKey == currentKey {
		return false
	}

	final := DivisionForPoints(l.s.Points)
	l.log.Info("league month finalized", "month", l.s.MonthKey, "division", final.ID, "rewardXP", final.RewardXP)
	l.s = LeagueState{
		MonthKey:        currentKey,
		Points:          0,
		BestDivisionID:  Divisions[0].ID,
		PendingRewardXP: l.s.PendingRewardXP + final.RewardXP,
		LastMonthKey:    l.s.MonthKey,
		LastDivisionID:  final.ID,
	}
	return true
}

func repairLeagueState(s *LeagueState) {
	if s.Points < 0 {
		s.Points = 0
	}
	if s.PendingRewardXP < 0 {
		s.PendingRewardXP = 0
	}
	if divisionRank(s.BestDivisionID) < 0 {
		s.BestDivisionID = Divisions[0].ID
	}
}

func (l *League) persist() {
	l.writer.Save(LeaguesKey, l.s)
}
