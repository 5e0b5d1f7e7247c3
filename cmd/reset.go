package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"wordventure/internal/app"
	"wordventure/internal/progress"
)

var resetCmd = &cobra.Command{
	Use:   "reset [profile-name]",
	Short: "Reset player data",
	Long:  "Clears one profile's progress, or with --all deletes every profile and setting. Requires --force.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		force, _ := cmd.Flags().GetBool("force")

		if !all && len(args) == 0 {
			return fmt.Errorf("pass a profile name or --all")
		}
		if !force {
			return fmt.Errorf("this permanently deletes progress; re-run with --force")
		}

		blob, err := app.OpenBlob(appOptions(cmd))
		if err != nil {
			return err
		}
		defer func() { _ = blob.Close() }()

		store, err := progress.Open(blob)
		if err != nil {
			return err
		}

		if all {
			if err := store.ResetAll(); err != nil {
				return err
			}
			fmt.Println("All player data deleted.")
			return nil
		}

		p, err := resolveProfile(store, args)
		if err != nil {
			return err
		}
		if err := store.ResetProfile(p.ID); err != nil {
			return err
		}
		fmt.Printf("Progress for %s reset.\n", p.Name)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("all", false, "Delete every profile and setting")
	resetCmd.Flags().Bool("force", false, "Skip the safety check")
}
