package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EgemenErin/Muscledia/internal/engine"
	"github.com/EgemenErin/Muscledia/internal/storage"
	"github.com/EgemenErin/Muscledia/internal/ui"
)

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all progress and start over",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("this erases everything; re-run with --yes to confirm")
			}

			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			// The engine Loads above dispatch async saves; drain them so a
			// late write cannot resurrect a just-wiped blob.
			app.Writer.Flush()

			keys := []string{engine.CharacterKey, engine.LeaguesKey, engine.RaidKey, engine.RoutinesKey}
			for _, key := range keys {
				if err := app.Store.Remove(ctx, key); err != nil && !errors.Is(err, storage.ErrNotFound) {
					return fmt.Errorf("remove %s: %w", key, err)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("All progress erased. A fresh character awaits."))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the wipe")
	return cmd
}
