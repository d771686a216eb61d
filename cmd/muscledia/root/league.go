package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EgemenErin/Muscledia/internal/engine"
	"github.com/EgemenErin/Muscledia/internal/ui"
)

func newLeagueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "league",
		Short: "Monthly league standings and rewards",
	}
	cmd.AddCommand(newLeagueShowCmd(), newLeagueClaimCmd())
	return cmd
}

func newLeagueShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the division ladder and your standing",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			snap := app.League.Snapshot()

			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "League — "+snap.State.MonthKey))
			for _, d := range engine.Divisions {
				marker := "  "
				name := d.Name
				if d.ID == snap.Current.ID {
					marker = ui.Gold.Render(ui.IconCrown + " ")
					name = ui.Gold.Render(d.Name)
				}
				fmt.Fprintf(out, "%s%-11s %s\n", marker, name, ui.Muted.Render(fmt.Sprintf("%4d pts, reward %d XP", d.MinPoints, d.RewardXP)))
			}
			fmt.Fprintln(out, "")

			if snap.HasNext {
				fmt.Fprintln(out, ui.LabelValue("Points", fmt.Sprintf("%d  %s %s at %d", snap.State.Points, ui.Bar(snap.State.Points-snap.Current.MinPoints, snap.Next.MinPoints-snap.Current.MinPoints, 24), snap.Next.Name, snap.Next.MinPoints)))
			} else {
				fmt.Fprintln(out, ui.LabelValue("Points", fmt.Sprintf("%d  %s", snap.State.Points, ui.Gold.Render("top division"))))
			}
			fmt.Fprintln(out, ui.LabelValue("Best this month", bestDivisionName(snap.State.BestDivisionID)))
			fmt.Fprintln(out, ui.LabelValue("Resets in", fmt.Sprintf("%d days", snap.DaysUntilReset)))
			if snap.State.LastMonthKey != "" {
				fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("last month (%s): %s", snap.State.LastMonthKey, bestDivisionName(snap.State.LastDivisionID))))
			}
			if snap.State.PendingRewardXP > 0 {
				fmt.Fprintln(out, ui.Gold.Render(fmt.Sprintf("%s %d XP waiting — run `muscledia league claim`", ui.IconSparkle, snap.State.PendingRewardXP)))
			}
			return nil
		},
	}
}

func newLeagueClaimCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "claim",
		Short: "Claim banked reward XP from finished months",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			claimed := app.League.ClaimPendingReward(ctx)
			if claimed == 0 {
				fmt.Fprintln(out, ui.Muted.Render("nothing to claim"))
				return nil
			}
			fmt.Fprintf(out, "%s claimed %s\n", ui.Good.Render(ui.IconSparkle+" Reward"), ui.Gold.Render(fmt.Sprintf("+%d XP", claimed)))
			c := app.Progression.Character()
			fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%d  %d/%d XP", c.Level, c.XP, c.XPToNext)))
			return nil
		},
	}
}

func bestDivisionName(id string) string {
	for _, d := range engine.Divisions {
		if d.ID == id {
			return d.Name
		}
	}
	return id
}
