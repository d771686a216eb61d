package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/EgemenErin/Muscledia/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "muscledia",
	Short:         "Muscledia — gamified fitness tracker",
	Long:          "Muscledia is a local-first fitness tracker with RPG progression: log workouts, complete quests, level your character, and climb the monthly league.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newStatusCmd(),
		newQuestCmd(),
		newRoutineCmd(),
		newLeagueCmd(),
		newRaidCmd(),
		newBadgesCmd(),
		newProfileCmd(),
		newBoardCmd(),
		newResetCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
