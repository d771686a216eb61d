package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/EgemenErin/Muscledia/internal/ui"
)

func newRoutineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routine",
		Short: "Manage and run workout routines",
	}
	cmd.AddCommand(
		newRoutineAddCmd(),
		newRoutineListCmd(),
		newRoutineExerciseCmd(),
		newRoutineStartCmd(),
		newRoutineSetCmd(),
		newRoutineRmCmd(),
	)
	return cmd
}

func newRoutineAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Create a routine",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			routine, err := app.Routines.Create(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render(ui.IconBarbell+" Created"), routine.Name, ui.Muted.Render(routine.ID[:8]))
			return nil
		},
	}
}

func newRoutineListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List routines",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			routines := app.Routines.List()
			if len(routines) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(no routines — `muscledia routine add <name>`)"))
				return nil
			}
			for _, r := range routines {
				total, done := 0, 0
				for _, ex := range r.Exercises {
					for _, s := range ex.Sets {
						total++
						if s.Completed {
							done++
						}
					}
				}
				fmt.Fprintf(out, "%s %s %s\n", ui.Key.Render(r.ID[:8]), r.Name, ui.Muted.Render(fmt.Sprintf("%d exercises, %d/%d sets", len(r.Exercises), done, total)))
				for i, ex := range r.Exercises {
					doneSets := 0
					for _, s := range ex.Sets {
						if s.Completed {
							doneSets++
						}
					}
					fmt.Fprintf(out, "  %d. %s %s\n", i, ex.Name, ui.Muted.Render(fmt.Sprintf("%d/%d sets", doneSets, len(ex.Sets))))
				}
			}
			return nil
		},
	}
}

func newRoutineExerciseCmd() *cobra.Command {
	var sets, reps int
	var weight float64

	cmd := &cobra.Command{
		Use:   "exercise <routine_id> <name>",
		Short: "Add an exercise to a routine",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("routine_id and name are required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			ex, award, err := app.Routines.AddExercise(ctx, args[0], args[1], sets, reps, weight)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s %s %s\n", ui.Good.Render(ui.IconBarbell+" Added"), ex.Name, ui.Muted.Render(fmt.Sprintf("%d sets × %d reps @ %.1fkg", len(ex.Sets), reps, weight)), ui.Gold.Render(fmt.Sprintf("+%d XP", award.XPAwarded)))
			if award.LevelUp {
				fmt.Fprintf(out, "%s level %d → %d\n", ui.BadgeLevelUp, award.LevelBefore, award.LevelAfter)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&sets, "sets", 3, "Number of sets")
	cmd.Flags().IntVar(&reps, "reps", 12, "Reps per set")
	cmd.Flags().Float64Var(&weight, "weight", 0, "Weight in kg")
	return cmd
}

func newRoutineStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <routine_id>",
		Short: "Start a routine (max 3 distinct per day)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("routine_id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			routine, err := app.Routines.Start(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s — log sets with `muscledia routine set %s <exercise#> <set#>`\n", ui.Good.Render(ui.IconMuscle+" Started"), routine.Name, routine.ID[:8])
			return nil
		},
	}
}

func newRoutineSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <routine_id> <exercise#> <set#>",
		Short: "Mark a set completed (+10 XP, +1 raid set)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				return errors.New("routine_id, exercise# and set# are required")
			}
			for _, a := range args[1:] {
				if _, err := strconv.Atoi(a); err != nil {
					return fmt.Errorf("%q must be an integer", a)
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			exercise, _ := strconv.Atoi(args[1])
			set, _ := strconv.Atoi(args[2])

			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := app.Routines.CompleteSet(ctx, args[0], exercise, set)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if res.AlreadyDone {
				fmt.Fprintln(out, ui.Muted.Render("set already completed"))
				return nil
			}
			fmt.Fprintf(out, "%s %s set %d %s\n", ui.Good.Render(ui.IconDone+" Logged"), res.Exercise.Name, set+1, ui.Gold.Render(fmt.Sprintf("+%d XP", res.Award.XPAwarded)))
			if res.Award.LevelUp {
				fmt.Fprintf(out, "%s level %d → %d\n", ui.BadgeLevelUp, res.Award.LevelBefore, res.Award.LevelAfter)
			}
			raid := app.Raid.State()
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("raid: %d/%d sets this week", raid.TotalSets, raid.Boss.WeeklyTargetSets)))
			return nil
		},
	}
}

func newRoutineRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <routine_id>",
		Short: "Delete a routine",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("routine_id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := app.Routines.Delete(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Deleted."))
			return nil
		},
	}
}
