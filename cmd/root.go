package cmd

import (
	"github.com/spf13/cobra"

	"wordventure/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "wordventure",
	Short: "Vocabulary adventure game for kids",
	Long:  "Wordventure — a terminal word-learning game where children (ages 4-9) explore themed adventures, earn stars, and collect stickers.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(appOptions(cmd))
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("data", "", "Path to the progress data file (overrides WORDVENTURE_DATA env var)")
	rootCmd.PersistentFlags().String("storage", "file", "Storage backend: file or sqlite")
	rootCmd.PersistentFlags().Bool("unlock-all", false, "Unlock every theme and level for this run (not saved)")

	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(versionCmd)
}

// appOptions collects the persistent flags into app options.
func appOptions(cmd *cobra.Command) app.Options {
	dataPath, _ := cmd.Flags().GetString("data")
	backend, _ := cmd.Flags().GetString("storage")
	unlockAll, _ := cmd.Flags().GetBool("unlock-all")
	return app.Options{
		DataPath:  dataPath,
		Backend:   backend,
		UnlockAll: unlockAll,
	}
}
