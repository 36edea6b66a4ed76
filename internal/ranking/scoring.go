// Package ranking provides functionality to rank catalog recipes against survey answers.
package ranking

import (
	"strings"

	"github.com/jonathan/recipe-finder/internal/types"
)

// Points awarded by each scoring step.
const (
	goalMatchPoints       = 3
	toolMatchPoints       = 2
	experienceMatchPoints = 1
	featuredPoints        = 1
)

// computeGoalScore awards points for every goal found in a recipe tag or in its
// category. A goal counts at most once. Returns the score and the matched goals.
func computeGoalScore(recipe *types.Recipe, goals []string) (int, []string) {
	score := 0
	matched := make([]string, 0)
	category := strings.ToLower(recipe.Category)

	for _, goal := range goals {
		goalLower := strings.ToLower(goal)
		if containsInAny(recipe.Tags, goalLower) || strings.Contains(category, goalLower) {
			score += goalMatchPoints
			matched = append(matched, goal)
		}
	}

	return score, matched
}

// computeToolScore awards points for every tool the user already has that
// appears in the recipe toolstack. Returns the score and the matched tools.
func computeToolScore(recipe *types.Recipe, tools []string) (int, []string) {
	score := 0
	matched := make([]string, 0)

	for _, tool := range tools {
		if containsInAny(recipe.Toolstack, strings.ToLower(tool)) {
			score += toolMatchPoints
			matched = append(matched, tool)
		}
	}

	return score, matched
}

// computeExperienceScore awards a point when the recipe difficulty equals the
// user's experience level.
func computeExperienceScore(recipe *types.Recipe, level types.Difficulty) int {
	if strings.EqualFold(string(recipe.Difficulty), string(level)) {
		return experienceMatchPoints
	}
	return 0
}

// computeFeaturedScore boosts featured recipes.
func computeFeaturedScore(recipe *types.Recipe) int {
	if recipe.Featured {
		return featuredPoints
	}
	return 0
}

// containsInAny reports whether needle (already lowercased) is a substring of any value.
func containsInAny(values []string, needle string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}
