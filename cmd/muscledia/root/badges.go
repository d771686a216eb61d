package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EgemenErin/Muscledia/internal/engine"
	"github.com/EgemenErin/Muscledia/internal/ui"
)

func newBadgesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "badges",
		Short: "Show earned and locked badges",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			c := app.Progression.Character()
			badges := engine.BadgesFor(c)

			fmt.Fprintln(out, ui.Heading(ui.IconCrown, fmt.Sprintf("Badges %d/%d", engine.CountEarnedBadges(c), len(badges))))
			for _, b := range badges {
				if b.Earned {
					fmt.Fprintf(out, "%s %s %s\n", ui.Good.Render(ui.IconDone), b.Name, ui.Muted.Render(b.Description))
				} else {
					fmt.Fprintf(out, "%s\n", ui.Muted.Render("· "+b.Name+" — "+b.Description))
				}
			}
			return nil
		},
	}
}
