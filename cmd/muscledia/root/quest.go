package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EgemenErin/Muscledia/internal/engine"
	"github.com/EgemenErin/Muscledia/internal/ui"
)

func newQuestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quest",
		Short: "List and complete quests",
	}
	cmd.AddCommand(newQuestListCmd(), newQuestDoneCmd())
	return cmd
}

func newQuestListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the quest catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			sections := []struct {
				title  string
				quests []engine.Quest
			}{
				{"Daily Challenges", engine.DailyQuests},
				{"Weekly Challenges", engine.WeeklyQuests},
				{"Special Quests", engine.SpecialQuests},
			}
			for _, s := range sections {
				fmt.Fprintln(out, ui.H2.Render(ui.IconQuest+" "+s.title))
				for _, q := range s.quests {
					fmt.Fprintf(out, "- %s %s %s %s\n",
						ui.Key.Render(q.ID),
						q.Title,
						ui.Muted.Render("— "+q.Description),
						ui.Gold.Render(fmt.Sprintf("+%d XP", q.XP)))
				}
				fmt.Fprintln(out, "")
			}
			return nil
		},
	}
}

func newQuestDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <quest_id>",
		Short: "Complete a quest and collect its XP",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("quest_id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			q, ok := engine.FindQuest(args[0])
			if !ok {
				return fmt.Errorf("unknown quest: %s", args[0])
			}

			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res := app.Progression.CompleteQuest(ctx, q.ID, q.XP)
			app.League.AddPoints(ctx, engine.LeaguePointsForQuest(q))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s %s\n", ui.Good.Render(ui.IconDone+" Completed"), q.Title, ui.Gold.Render(fmt.Sprintf("+%d XP", res.XPAwarded)))
			if res.LevelUp {
				fmt.Fprintf(out, "%s level %d → %d\n", ui.BadgeLevelUp, res.LevelBefore, res.LevelAfter)
			}
			c := app.Progression.Character()
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("streak %d · league +%d pts", c.Streak, engine.LeaguePointsForQuest(q))))
			return nil
		},
	}
}
