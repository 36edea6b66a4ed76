package filtering

import (
	"sort"

	"github.com/jonathan/recipe-finder/internal/types"
)

// Facets counts how many recipes carry each category, tool, tag and difficulty.
// Each list is ordered by count descending, then by name.
func Facets(catalog []types.Recipe) types.FacetCounts {
	categories := make(map[string]int)
	tools := make(map[string]int)
	tags := make(map[string]int)
	difficulties := make(map[string]int)

	for i := range catalog {
		r := &catalog[i]
		categories[r.Category]++
		difficulties[string(r.Difficulty)]++
		// A recipe listing the same tool twice still counts once.
		for _, tool := range dedupe(r.Toolstack) {
			tools[tool]++
		}
		for _, tag := range dedupe(r.Tags) {
			tags[tag]++
		}
	}

	return types.FacetCounts{
		Categories:   sortedCounts(categories),
		Tools:        sortedCounts(tools),
		Tags:         sortedCounts(tags),
		Difficulties: sortedCounts(difficulties),
	}
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func sortedCounts(counts map[string]int) []types.FacetCount {
	out := make([]types.FacetCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, types.FacetCount{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}
