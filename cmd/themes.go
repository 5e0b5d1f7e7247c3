package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"wordventure/internal/catalog"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the available adventures",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load()
		if err != nil {
			return err
		}

		for i, th := range cat.Themes() {
			fmt.Printf("%2d. %s %-16s %s\n", i+1, th.Glyph, th.Name, th.Description)
			for _, tier := range catalog.AllTiers() {
				maxLevel := cat.MaxLevel(th.ID, tier)
				total := 0
				for level := 1; level <= maxLevel; level++ {
					total += len(cat.ActivitiesFor(th.ID, tier, level))
				}
				fmt.Printf("      %-22s %d levels, %d activities\n", tier.DisplayName(), maxLevel, total)
			}
		}
		return nil
	},
}
