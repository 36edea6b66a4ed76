package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/recipe-finder/internal/observability"
	"github.com/jonathan/recipe-finder/internal/ranking"
	"github.com/jonathan/recipe-finder/internal/types"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend recipes from survey answers",
	Long:  "Scores every catalog recipe against automation goals, tools and experience level, and prints the best matches with a score breakdown.",
	RunE:  runRecommend,
}

var (
	recommendGoals []string
	recommendTools []string
	recommendLevel string
	recommendTop   int
	recommendSeed  string
	recommendJSON  bool
)

func init() {
	recommendCmd.Flags().StringSliceVarP(&recommendGoals, "goals", "g", nil, "Automation goals, e.g. code-generation,sales-automation (required)")
	recommendCmd.Flags().StringSliceVar(&recommendTools, "tools", nil, "Tools you use, e.g. Slack,GitHub (required)")
	recommendCmd.Flags().StringVarP(&recommendLevel, "level", "l", "", "Experience level: Beginner, Intermediate or Advanced (required)")
	recommendCmd.Flags().IntVarP(&recommendTop, "top", "n", 0, "Number of recipes to return (defaults to recommend.top_n)")
	recommendCmd.Flags().StringVar(&recommendSeed, "seed", "", "Seed catalog YAML (overrides catalog.seed_file)")
	recommendCmd.Flags().BoolVar(&recommendJSON, "json", false, "Print JSON instead of a table")

	for _, name := range []string{"goals", "tools", "level"} {
		if err := recommendCmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	answers := types.SurveyAnswers{
		AutomationGoals: recommendGoals,
		ToolsUsed:       recommendTools,
		ExperienceLevel: types.Difficulty(recommendLevel),
	}
	if err := answers.Validate(); err != nil {
		return fmt.Errorf("invalid survey answers: %w", err)
	}
	answers.Normalize()

	cfg, catalog, err := loadCatalog(recommendSeed)
	if err != nil {
		return err
	}

	top := recommendTop
	if top <= 0 {
		top = cfg.Recommend.TopN
	}
	scored := ranking.Top(ranking.RankRecipes(catalog, answers), top)

	if recommendJSON {
		return writeJSON(cmd.OutOrStdout(), scored)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintRecommendations(scored)
	return nil
}
