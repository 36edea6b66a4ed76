package ranking

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/recipe-finder/internal/types"
)

// DefaultTopN is the number of recommendations returned when no limit is given.
const DefaultTopN = 20

// ScoreRecipe computes the affinity of one recipe to the survey answers.
func ScoreRecipe(recipe types.Recipe, answers types.SurveyAnswers) types.ScoredRecipe {
	goalScore, matchedGoals := computeGoalScore(&recipe, answers.AutomationGoals)
	toolScore, matchedTools := computeToolScore(&recipe, answers.ToolsUsed)
	experienceScore := computeExperienceScore(&recipe, answers.ExperienceLevel)
	featuredScore := computeFeaturedScore(&recipe)

	return types.ScoredRecipe{
		Recipe:          recipe,
		Score:           goalScore + toolScore + experienceScore + featuredScore,
		GoalScore:       goalScore,
		ToolScore:       toolScore,
		ExperienceScore: experienceScore,
		FeaturedScore:   featuredScore,
		MatchedGoals:    matchedGoals,
		MatchedTools:    matchedTools,
		Notes:           generateNotes(matchedGoals, matchedTools, experienceScore > 0, featuredScore > 0),
	}
}

// RankRecipes scores every recipe in the catalog and returns them by descending
// score. Recipes with equal scores keep their catalog order.
func RankRecipes(catalog []types.Recipe, answers types.SurveyAnswers) []types.ScoredRecipe {
	scored := make([]types.ScoredRecipe, 0, len(catalog))
	for _, recipe := range catalog {
		scored = append(scored, ScoreRecipe(recipe, answers))
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

// Recommend returns at most topN recipes from the catalog, best match first.
// A non-positive topN means DefaultTopN.
func Recommend(catalog []types.Recipe, answers types.SurveyAnswers, topN int) []types.Recipe {
	return Recipes(Top(RankRecipes(catalog, answers), topN))
}

// Top truncates a ranking to its first topN entries. A non-positive topN means DefaultTopN.
func Top(scored []types.ScoredRecipe, topN int) []types.ScoredRecipe {
	if topN <= 0 {
		topN = DefaultTopN
	}
	if len(scored) > topN {
		return scored[:topN]
	}
	return scored
}

// Recipes strips scores from a ranking.
func Recipes(scored []types.ScoredRecipe) []types.Recipe {
	recipes := make([]types.Recipe, len(scored))
	for i := range scored {
		recipes[i] = scored[i].Recipe
	}
	return recipes
}

// generateNotes creates a brief explanation of the score.
func generateNotes(matchedGoals, matchedTools []string, experienceMatch, featured bool) string {
	var parts []string

	if len(matchedGoals) > 0 {
		parts = append(parts, fmt.Sprintf("Matches goals (%s)", strings.Join(matchedGoals, ", ")))
	} else {
		parts = append(parts, "No goal matches")
	}

	if len(matchedTools) > 0 {
		parts = append(parts, fmt.Sprintf("Uses your tools (%s)", strings.Join(matchedTools, ", ")))
	}

	if experienceMatch {
		parts = append(parts, "Fits your experience level")
	}

	if featured {
		parts = append(parts, "Featured")
	}

	return strings.Join(parts, ". ")
}
