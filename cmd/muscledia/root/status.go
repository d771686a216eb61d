package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EgemenErin/Muscledia/internal/engine"
	"github.com/EgemenErin/Muscledia/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show your character, league, and raid progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			c := app.Progression.Character()

			fmt.Fprintln(out, ui.Heading(ui.IconMuscle, c.Name))
			fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%d  %s %d/%d XP", c.Level, ui.Bar(c.XP, c.XPToNext, 24), c.XP, c.XPToNext)))
			fmt.Fprintln(out, ui.LabelValue("Total XP", c.TotalXP))
			fmt.Fprintln(out, ui.LabelValue("Health", fmt.Sprintf("%s %d/%d %s", ui.IconHeart, c.CurrentHealth, c.MaxHealth, ui.Bar(c.CurrentHealth, c.MaxHealth, 24))))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d days", ui.IconFlame, c.Streak)))
			fmt.Fprintln(out, ui.LabelValue("Quests done", c.QuestsCompleted))
			fmt.Fprintln(out, ui.LabelValue("Badges", fmt.Sprintf("%d/%d", engine.CountEarnedBadges(c), len(engine.BadgesFor(c)))))
			fmt.Fprintln(out, "")

			snap := app.League.Snapshot()
			fmt.Fprintln(out, ui.H2.Render(ui.IconTrophy+" League — "+snap.State.MonthKey))
			fmt.Fprintln(out, ui.LabelValue("Division", snap.Current.Name))
			if snap.HasNext {
				fmt.Fprintln(out, ui.LabelValue("Points", fmt.Sprintf("%d  %s next: %s at %d", snap.State.Points, ui.Bar(snap.State.Points-snap.Current.MinPoints, snap.Next.MinPoints-snap.Current.MinPoints, 20), snap.Next.Name, snap.Next.MinPoints)))
			} else {
				fmt.Fprintln(out, ui.LabelValue("Points", fmt.Sprintf("%d  %s", snap.State.Points, ui.Gold.Render("top division"))))
			}
			fmt.Fprintln(out, ui.LabelValue("Resets in", fmt.Sprintf("%d days", snap.DaysUntilReset)))
			if snap.State.PendingRewardXP > 0 {
				fmt.Fprintln(out, ui.Gold.Render(fmt.Sprintf("%s %d XP waiting — run `muscledia league claim`", ui.IconSparkle, snap.State.PendingRewardXP)))
			}
			fmt.Fprintln(out, "")

			raid := app.Raid.State()
			fmt.Fprintln(out, ui.H2.Render(ui.IconShield+" Raid — "+raid.WeekKey))
			fmt.Fprintln(out, ui.LabelValue("Boss", raid.Boss.Name))
			fmt.Fprintln(out, ui.LabelValue("Sets", fmt.Sprintf("%d/%d %s", raid.TotalSets, raid.Boss.WeeklyTargetSets, ui.Bar(raid.TotalSets, raid.Boss.WeeklyTargetSets, 20))))

			return nil
		},
	}

	return cmd
}
