package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EgemenErin/Muscledia/internal/engine"
	"github.com/EgemenErin/Muscledia/internal/ui"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and edit your profile",
	}
	cmd.AddCommand(newProfileShowCmd(), newProfileSetCmd())
	return cmd
}

func newProfileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show profile details",
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
			fmt.Fprintln(out, ui.LabelValue("Gender", c.Gender))
			if c.Height > 0 {
				fmt.Fprintln(out, ui.LabelValue("Height", fmt.Sprintf("%.1f cm", c.Height)))
			}
			if c.Weight > 0 {
				fmt.Fprintln(out, ui.LabelValue("Weight", fmt.Sprintf("%.1f kg", c.Weight)))
			}
			if c.Goal != "" {
				fmt.Fprintln(out, ui.LabelValue("Goal", c.Goal))
			}
			fmt.Fprintln(out, ui.LabelValue("Level", c.Level))
			fmt.Fprintln(out, ui.LabelValue("Total XP", c.TotalXP))
			if c.BackgroundURL != "" {
				fmt.Fprintln(out, ui.LabelValue("Background", c.BackgroundURL))
			}
			return nil
		},
	}
}

func newProfileSetCmd() *cobra.Command {
	var (
		name, gender, goal, background string
		height, weight                 float64
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update profile fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			var u engine.ProfileUpdate
			flags := cmd.Flags()
			if flags.Changed("name") {
				u.Name = &name
			}
			if flags.Changed("gender") {
				u.Gender = &gender
			}
			if flags.Changed("height") {
				u.Height = &height
			}
			if flags.Changed("weight") {
				u.Weight = &weight
			}
			if flags.Changed("goal") {
				u.Goal = &goal
			}
			if flags.Changed("background") {
				u.BackgroundURL = &background
			}

			app.Progression.UpdateProfile(ctx, u)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Profile updated."))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Character name")
	cmd.Flags().StringVar(&gender, "gender", "", "Gender")
	cmd.Flags().Float64Var(&height, "height", 0, "Height in cm")
	cmd.Flags().Float64Var(&weight, "weight", 0, "Weight in kg")
	cmd.Flags().StringVar(&goal, "goal", "", "Training goal")
	cmd.Flags().StringVar(&background, "background", "", "Background image URL")
	return cmd
}
