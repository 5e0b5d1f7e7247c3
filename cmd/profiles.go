package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"wordventure/internal/app"
	"wordventure/internal/progress"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List player profiles",
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

		profiles := store.Profiles("")
		if len(profiles) == 0 {
			fmt.Println("No profiles yet. Run wordventure to create one.")
			return nil
		}

		current, _ := store.CurrentProfile()
		for _, p := range profiles {
			marker := " "
			if current != nil && current.ID == p.ID {
				marker = "*"
			}
			fmt.Printf("%s %s %-12s %-22s ★ %-4d 🎖 %-3d %s\n",
				marker, p.Avatar, p.Name, p.Tier.DisplayName(),
				p.TotalStars, len(p.Stickers), p.CreatedAt.Format("2006-01-02"))
		}
		return nil
	},
}
