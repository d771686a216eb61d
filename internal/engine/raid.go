package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/EgemenErin/Muscledia/internal/storage"
)

// RaidKey is the storage key for the weekly raid record.
const RaidKey = "raid_state"

// RaidBoss is static reference data describing the weekly target.
type RaidBoss struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	WeeklyTargetSets int    `json:"weeklyTargetSets"`
	RewardXP         int    `json:"rewardXP"`
}

var DefaultBoss = RaidBoss{
	ID:               "champion-titan",
	Name:             "Titan of Iron",
	Description:      "Your weekly Muscle Champion. Complete sets to clear your challenge!",
	WeeklyTargetSets: 60,
	RewardXP:         500,
}

// RaidState is the persisted week-scoped contribution counter. Sets reset
// on week rollover; no reward is banked (the claim step does not exist).
type RaidState struct {
	Boss      RaidBoss `json:"boss"`
	WeekKey   string   `json:"weekKey"`
	TotalSets int      `json:"totalSets"`
}

// Raid owns the weekly cooperative-contribution counter. Week identity
// follows ISO-8601 week numbering.
type Raid struct {
	store  storage.Store
	writer *storage.Writer
	clock  Clock
	log    *slog.Logger

	s RaidState
}

func NewRaid(store storage.Store, writer *storage.Writer, clock Clock, log *slog.Logger) *Raid {
	if log == nil {
		log = slog.Default()
	}
	return &Raid{
		store:  store,
		writer: writer,
		clock:  clock,
		log:    log,
		s:      RaidState{Boss: DefaultBoss, WeekKey: WeekKey(clock.Now())},
	}
}

// Load reads the stored raid record, resetting it if the ISO week has
// changed since it was written. The boss is always the current static
// descriptor regardless of what was stored.
func (r *Raid) Load(ctx context.Context) error {
	currentKey := WeekKey(r.clock.Now())
	s := RaidState{Boss: DefaultBoss, WeekKey: currentKey}

	raw, err := r.store.Get(ctx, RaidKey)
	switch {
	case err == nil:
		var stored RaidState
		if uerr := json.Unmarshal(raw, &stored); uerr != nil {
			r.log.Warn("raid blob corrupt, starting from defaults", "err", uerr)
			break
		}
		if stored.WeekKey == currentKey {
			s.TotalSets = stored.TotalSets
			if s.TotalSets < 0 {
				s.TotalSets = 0
			}
		}
	case errors.Is(err, storage.ErrNotFound):
		// first run
	default:
		return fmt.Errorf("load raid: %w", err)
	}

	r.s = s
	r.persist()
	return nil
}

// State returns the current in-memory record.
func (r *Raid) State() RaidState { return r.s }

// ContributeSets adds completed sets to this week's total. Amounts that
// are not positive are ignored. The week key is re-derived inside the
// write path: if the week rolled over since the last observation, the
// contribution proceeds under the new key on a fresh zero base.
func (r *Raid) ContributeSets(ctx context.Context, n int) {
	if n <= 0 {
		return
	}

	currentKey := WeekKey(r.clock.Now())
	if currentKey != r.s.WeekKey {
		r.log.Info("raid week rolled over", "from", r.s.WeekKey, "to", currentKey)
		r.s = RaidState{Boss: DefaultBoss, WeekKey: currentKey}
	}
	r.s.TotalSets += n
	r.persist()
}

func (r *Raid) persist() {
	r.writer.Save(RaidKey, r.s)
}
