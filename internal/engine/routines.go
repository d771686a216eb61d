package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/EgemenErin/Muscledia/internal/storage"
)

// RoutinesKey is the storage key for the routine collection.
const RoutinesKey = "routines"

type RoutineSet struct {
	ID        string  `json:"id"`
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight"`
	Completed bool    `json:"completed"`
}

type RoutineExercise struct {
	ID   string       `json:"id"`
	Name string       `json:"name"`
	Sets []RoutineSet `json:"sets"`
}

// Routine is a user-defined sequence of exercises with sets, subject to
// the daily distinct-start quota owned by the Progression engine.
type Routine struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Exercises []RoutineExercise `json:"exercises"`
	CreatedAt string            `json:"createdAt"`
}

// DailyLimitError is returned when starting a routine would exceed the
// distinct-starts-per-day quota.
type DailyLimitError struct {
	Limit int
}

func (e DailyLimitError) Error() string {
	return fmt.Sprintf("daily routine limit reached (%d distinct routines per day)", e.Limit)
}

var ErrRoutineNotFound = errors.New("routine not found")

// Routines manages the routine collection and feeds set completions into
// the Progression and Raid engines.
type Routines struct {
	store       storage.Store
	writer      *storage.Writer
	clock       Clock
	progression *Progression
	raid        *Raid
	log         *slog.Logger

	list []Routine
}

// CompleteSetResult reports the progression effects of finishing a set.
type CompleteSetResult struct {
	Exercise    RoutineExercise
	Set         RoutineSet
	Award       AwardResult
	AlreadyDone bool
}

func NewRoutines(store storage.Store, writer *storage.Writer, clock Clock, progression *Progression, raid *Raid, log *slog.Logger) *Routines {
	if log == nil {
		log = slog.Default()
	}
	return &Routines{
		store:       store,
		writer:      writer,
		clock:       clock,
		progression: progression,
		raid:        raid,
		log:         log,
	}
}

func (r *Routines) Load(ctx context.Context) error {
	raw, err := r.store.Get(ctx, RoutinesKey)
	switch {
	case err == nil:
		var list []Routine
		if uerr := json.Unmarshal(raw, &list); uerr != nil {
			r.log.Warn("routines blob corrupt, starting empty", "err", uerr)
			list = nil
		}
		r.list = list
	case errors.Is(err, storage.ErrNotFound):
		r.list = nil
	default:
		return fmt.Errorf("load routines: %w", err)
	}
	return nil
}

func (r *Routines) List() []Routine {
	return append([]Routine(nil), r.list...)
}

// Get resolves a routine by id or unique id prefix.
func (r *Routines) Get(id string) (Routine, error) {
	idx, err := r.indexOf(id)
	if err != nil {
		return Routine{}, err
	}
	return r.list[idx], nil
}

func (r *Routines) indexOf(id string) (int, error) {
	match := -1
	for i := range r.list {
		if r.list[i].ID == id {
			return i, nil
		}
		if strings.HasPrefix(r.list[i].ID, id) {
			if match >= 0 {
				return -1, fmt.Errorf("routine id %q is ambiguous", id)
			}
			match = i
		}
	}
	if match < 0 {
		return -1, fmt.Errorf("%w: %s", ErrRoutineNotFound, id)
	}
	return match, nil
}

func (r *Routines) Create(ctx context.Context, name string) (Routine, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Routine{}, errors.New("routine name is required")
	}

	routine := Routine{
		ID:        uuid.NewString(),
		Name:      name,
		Exercises: []RoutineExercise{},
		CreatedAt: r.clock.Now().UTC().Format(time.RFC3339),
	}
	r.list = append(r.list, routine)
	r.persist()
	return routine, nil
}

// AddExercise appends an exercise with the given number of identical
// sets and awards the exercise XP bonus.
func (r *Routines) AddExercise(ctx context.Context, routineID, name string, sets, reps int, weight float64) (RoutineExercise, AwardResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return RoutineExercise{}, AwardResult{}, errors.New("exercise name is required")
	}
	if sets < 1 {
		sets = 1
	}
	if reps < 1 {
		reps = 1
	}
	if weight < 0 {
		weight = 0
	}

	idx, err := r.indexOf(routineID)
	if err != nil {
		return RoutineExercise{}, AwardResult{}, err
	}

	ex := RoutineExercise{
		ID:   uuid.NewString(),
		Name: name,
	}
	for i := 0; i < sets; i++ {
		ex.Sets = append(ex.Sets, RoutineSet{ID: uuid.NewString(), Reps: reps, Weight: weight})
	}
	r.list[idx].Exercises = append(r.list[idx].Exercises, ex)
	r.persist()

	award := r.progression.AwardXP(ctx, ExerciseXP)
	return ex, award, nil
}

// Start registers a routine start against the daily quota, rejecting a
// fourth distinct routine for the day.
func (r *Routines) Start(ctx context.Context, routineID string) (Routine, error) {
	idx, err := r.indexOf(routineID)
	if err != nil {
		return Routine{}, err
	}
	routine := r.list[idx]

	if !r.progression.CanStartRoutineToday(routine.ID) {
		return Routine{}, DailyLimitError{Limit: MaxDailyRoutines}
	}
	r.progression.RegisterRoutineStart(ctx, routine.ID)
	return routine, nil
}

// CompleteSet marks one set done, awards the set XP, and contributes one
// set to this week's raid. Re-completing a set has no effect.
func (r *Routines) CompleteSet(ctx context.Context, routineID string, exercise, set int) (CompleteSetResult, error) {
	idx, err := r.indexOf(routineID)
	if err != nil {
		return CompleteSetResult{}, err
	}
	routine := &r.list[idx]

	if exercise < 0 || exercise >= len(routine.Exercises) {
		return CompleteSetResult{}, fmt.Errorf("exercise %d out of range (routine has %d)", exercise, len(routine.Exercises))
	}
	ex := &routine.Exercises[exercise]
	if set < 0 || set >= len(ex.Sets) {
		return CompleteSetResult{}, fmt.Errorf("set %d out of range (exercise has %d)", set, len(ex.Sets))
	}

	target := &ex.Sets[set]
	if target.Completed {
		return CompleteSetResult{Exercise: *ex, Set: *target, AlreadyDone: true}, nil
	}

	target.Completed = true
	r.persist()

	award := r.progression.AwardXP(ctx, SetXP)
	r.raid.ContributeSets(ctx, 1)

	return CompleteSetResult{Exercise: *ex, Set: *target, Award: award}, nil
}

func (r *Routines) Delete(ctx context.Context, routineID string) error {
	idx, err := r.indexOf(routineID)
	if err != nil {
		return err
	}
	r.list = append(r.list[:idx], r.list[idx+1:]...)
	r.persist()
	return nil
}

func (r *Routines) persist() {
	r.writer.Save(RoutinesKey, r.list)
}
