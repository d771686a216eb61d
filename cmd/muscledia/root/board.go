package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/EgemenErin/Muscledia/internal/tui"
)

func newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Interactive dashboard (quests, routines, league, raid)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(ctx, tui.Board{
				Progression: app.Progression,
				League:      app.League,
				Raid:        app.Raid,
				Routines:    app.Routines,
				Clock:       app.Clock,
			}, cmd.OutOrStdout())
		},
	}
}
