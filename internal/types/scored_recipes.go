package types

// ScoredRecipe is a recipe with its affinity score against a set of survey answers.
type ScoredRecipe struct {
	Recipe Recipe `json:"recipe"`
	Score  int    `json:"score"`
	// Per-step contributions; they sum to Score.
	GoalScore       int      `json:"goal_score"`
	ToolScore       int      `json:"tool_score"`
	ExperienceScore int      `json:"experience_score"`
	FeaturedScore   int      `json:"featured_score"`
	MatchedGoals    []string `json:"matched_goals"`
	MatchedTools    []string `json:"matched_tools"`
	Notes           string   `json:"notes"`
}

// FacetCount is the number of recipes carrying one facet value.
type FacetCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// FacetCounts summarizes the catalog for the filter sidebar.
type FacetCounts struct {
	Categories   []FacetCount `json:"categories"`
	Tools        []FacetCount `json:"tools"`
	Tags         []FacetCount `json:"tags"`
	Difficulties []FacetCount `json:"difficulties"`
}
