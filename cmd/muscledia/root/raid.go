package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/EgemenErin/Muscledia/internal/ui"
)

func newRaidCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "raid",
		Short: "Weekly raid boss progress",
	}
	cmd.AddCommand(newRaidShowCmd(), newRaidContributeCmd())
	return cmd
}

func newRaidShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show this week's boss and contributed sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			raid := app.Raid.State()

			fmt.Fprintln(out, ui.Heading(ui.IconShield, raid.Boss.Name+" — "+raid.WeekKey))
			fmt.Fprintln(out, ui.Muted.Render(raid.Boss.Description))
			fmt.Fprintln(out, ui.LabelValue("Sets", fmt.Sprintf("%d/%d %s", raid.TotalSets, raid.Boss.WeeklyTargetSets, ui.Bar(raid.TotalSets, raid.Boss.WeeklyTargetSets, 24))))
			if raid.TotalSets >= raid.Boss.WeeklyTargetSets {
				fmt.Fprintln(out, ui.Gold.Render(ui.IconTrophy+" target reached"))
			} else {
				fmt.Fprintln(out, ui.LabelValue("Remaining", raid.Boss.WeeklyTargetSets-raid.TotalSets))
			}
			return nil
		},
	}
}

func newRaidContributeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contribute <sets>",
		Short: "Contribute completed sets to the weekly raid",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("set count is required")
			}
			n, err := strconv.Atoi(args[0])
			if err != nil || n <= 0 {
				return fmt.Errorf("%q is not a positive integer", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			n, _ := strconv.Atoi(args[0])

			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			app.Raid.ContributeSets(ctx, n)
			raid := app.Raid.State()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d/%d sets %s\n", ui.Good.Render(ui.IconShield+" Contributed"), raid.TotalSets, raid.Boss.WeeklyTargetSets, ui.Bar(raid.TotalSets, raid.Boss.WeeklyTargetSets, 20))
			return nil
		},
	}
}
