package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"wordventure/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("wordventure", version.Version)

		check, _ := cmd.Flags().GetBool("check")
		if !check {
			return nil
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		checker := version.NewChecker()
		result, err := checker.Check(ctx, &version.CheckInput{Version: version.Version})
		if errors.Is(err, version.ErrDevBuild) {
			fmt.Println("Development build; release check skipped.")
			return nil
		}
		if err != nil {
			return err
		}

		if result.UpdateAvailable {
			fmt.Printf("New version available: %s\n%s\n", result.LatestVersion, result.ReleaseURL)
		} else {
			fmt.Println("You're on the latest version.")
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().Bool("check", false, "Check GitHub for a newer release")
}
