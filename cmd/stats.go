package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wordventure/internal/app"
	"wordventure/internal/catalog"
	"wordventure/internal/progress"
)

var statsCmd = &cobra.Command{
	Use:   "stats [profile-name]",
	Short: "Show learning statistics",
	Long:  "Prints per-theme progress, stars, accuracy, and words learned. Defaults to the current profile.",
	Args:  cobra.MaximumNArgs(1),
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

		p, err := resolveProfile(store, args)
		if err != nil {
			return err
		}

		cat, err := catalog.Load()
		if err != nil {
			return err
		}

		fmt.Printf("%s %s — %s\n", p.Avatar, p.Name, p.Tier.DisplayName())
		fmt.Printf("Total stars: %d   Stickers: %d   Themes completed: %d\n\n",
			p.TotalStars, len(p.Stickers), len(p.CompletedThemes))

		played := false
		for _, th := range cat.Themes() {
			tp := store.ThemeProgressFor(p.ID, th.ID)
			if tp == nil || len(tp.Levels) == 0 {
				continue
			}
			played = true

			fmt.Printf("%s %s\n", th.Glyph, th.Name)
			for level := 1; level <= cat.MaxLevel(th.ID, p.Tier); level++ {
				lp := tp.Levels[level]
				if lp == nil || !lp.Completed {
					continue
				}
				fmt.Printf("  Level %d: %s (%d/%d correct)\n",
					level, starBar(lp.Stars), lp.CorrectAnswers, lp.TotalQuestions)
			}
			if tp.TotalQuestions > 0 {
				acc := float64(tp.TotalCorrectAnswers) / float64(tp.TotalQuestions) * 100
				fmt.Printf("  Accuracy: %.0f%%   Words learned: %s\n",
					acc, strings.Join(tp.WordsLearned, ", "))
			}
			fmt.Println()
		}

		if !played {
			fmt.Println("No adventures played yet.")
		}
		return nil
	},
}

// resolveProfile picks the named profile, or the current one when no
// name is given.
func resolveProfile(store *progress.Store, args []string) (*progress.UserProfile, error) {
	if len(args) == 0 {
		p, err := store.CurrentProfile()
		if err != nil {
			return nil, fmt.Errorf("no current profile; pass a profile name")
		}
		return p, nil
	}

	for _, p := range store.Profiles("") {
		if strings.EqualFold(p.Name, args[0]) || p.ID == args[0] {
			return p, nil
		}
	}
	return nil, fmt.Errorf("profile %q not found", args[0])
}

func starBar(stars int) string {
	return strings.Repeat("★", stars) + strings.Repeat("☆", 3-stars)
}
