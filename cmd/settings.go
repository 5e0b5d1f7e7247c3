package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"wordventure/internal/app"
	"wordventure/internal/progress"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change game settings",
	Long:  "With no flags, prints the stored settings. Flags change individual settings and persist them.",
	RunE: func(cmd *cobra.Command, args []string) error {
		blob, err := app.OpenBlob(appOptions(cmd))
		if err != nil {
			return err
		}
		defer func() { _ = blob.Close() }()

		store, err := progress.Open(blob)
		if err != nil {
			return err
		}

		var update progress.SettingsUpdate
		changed := false
		if cmd.Flags().Changed("sound") {
			v, _ := cmd.Flags().GetBool("sound")
			update.SoundEffects = &v
			changed = true
		}
		if cmd.Flags().Changed("narration") {
			v, _ := cmd.Flags().GetBool("narration")
			update.Narration = &v
			changed = true
		}
		if cmd.Flags().Changed("speech-rate") {
			v, _ := cmd.Flags().GetFloat64("speech-rate")
			update.SpeechRate = &v
			changed = true
		}
		if cmd.Flags().Changed("language") {
			v, _ := cmd.Flags().GetString("language")
			update.Language = &v
			changed = true
		}
		if cmd.Flags().Changed("unlock-everything") {
			v, _ := cmd.Flags().GetBool("unlock-everything")
			update.UnlockAll = &v
			changed = true
		}

		if changed {
			if err := store.UpdateSettings(update); err != nil {
				return err
			}
		}

		s := store.Settings()
		fmt.Printf("Sound effects: %v\n", s.SoundEffects)
		fmt.Printf("Narration:     %v\n", s.Narration)
		fmt.Printf("Speech rate:   %.2f\n", s.SpeechRate)
		fmt.Printf("Language:      %s\n", s.Language)
		fmt.Printf("Unlock all:    %v\n", s.UnlockAll)
		return nil
	},
}

func init() {
	settingsCmd.Flags().Bool("sound", true, "Enable sound effects")
	settingsCmd.Flags().Bool("narration", true, "Enable spoken narration")
	settingsCmd.Flags().Float64("speech-rate", 0.9, "Narration speech rate")
	settingsCmd.Flags().String("language", "en", "Interface language")
	settingsCmd.Flags().Bool("unlock-everything", false, "Persistently unlock every theme and level")
}
