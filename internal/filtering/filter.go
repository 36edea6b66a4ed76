// Package filtering selects and orders catalog recipes by user-supplied criteria.
package filtering

import (
	"sort"
	"strings"

	"github.com/jonathan/recipe-finder/internal/types"
)

// Filter returns the recipes that satisfy every supplied criterion, in catalog
// order. The catalog is not modified.
func Filter(catalog []types.Recipe, criteria types.Criteria) []types.Recipe {
	m := newMatcher(criteria)

	result := make([]types.Recipe, 0, len(catalog))
	for i := range catalog {
		if m.matches(&catalog[i]) {
			result = append(result, catalog[i])
		}
	}
	return result
}

// Apply filters the catalog and then orders the result by criteria.SortBy.
func Apply(catalog []types.Recipe, criteria types.Criteria) []types.Recipe {
	return Sort(Filter(catalog, criteria), criteria.SortBy)
}

// Sort returns a copy of recipes ordered by the given key. Ties keep their
// relative order; an empty or unknown key leaves the order unchanged.
func Sort(recipes []types.Recipe, by types.SortBy) []types.Recipe {
	result := make([]types.Recipe, len(recipes))
	copy(result, recipes)

	var less func(a, b *types.Recipe) bool
	switch by {
	case types.SortPopularity:
		less = func(a, b *types.Recipe) bool { return a.Downloads > b.Downloads }
	case types.SortRating:
		less = func(a, b *types.Recipe) bool { return a.Rating > b.Rating }
	case types.SortDifficulty:
		less = func(a, b *types.Recipe) bool { return a.Difficulty.Rank() < b.Difficulty.Rank() }
	default:
		return result
	}

	sort.SliceStable(result, func(i, j int) bool {
		return less(&result[i], &result[j])
	})
	return result
}

// matcher holds the lowercased criteria so each recipe is checked without
// re-normalizing the query.
type matcher struct {
	search     string
	category   string
	categories []string
	toolstack  []string
	difficulty string
	tags       []string
}

func newMatcher(c types.Criteria) matcher {
	return matcher{
		search:     strings.ToLower(c.Search),
		category:   strings.ToLower(c.Category),
		categories: lowerAll(c.Categories),
		toolstack:  lowerAll(c.Toolstack),
		difficulty: strings.ToLower(string(c.Difficulty)),
		tags:       lowerAll(c.Tags),
	}
}

func (m matcher) matches(r *types.Recipe) bool {
	if m.search != "" &&
		!strings.Contains(strings.ToLower(r.Title), m.search) &&
		!strings.Contains(strings.ToLower(r.Description), m.search) {
		return false
	}
	if m.category != "" && strings.ToLower(r.Category) != m.category {
		return false
	}
	if len(m.categories) > 0 && !anyContainedIn(m.categories, r.Category) {
		return false
	}
	if len(m.toolstack) > 0 && !anyContainedInAny(m.toolstack, r.Toolstack) {
		return false
	}
	if m.difficulty != "" && strings.ToLower(string(r.Difficulty)) != m.difficulty {
		return false
	}
	if len(m.tags) > 0 && !anyContainedInAny(m.tags, r.Tags) {
		return false
	}
	return true
}

// anyContainedIn reports whether any lowercased needle is a substring of value.
func anyContainedIn(needles []string, value string) bool {
	value = strings.ToLower(value)
	for _, n := range needles {
		if strings.Contains(value, n) {
			return true
		}
	}
	return false
}

// anyContainedInAny reports whether any lowercased needle is a substring of any value.
func anyContainedInAny(needles []string, values []string) bool {
	for _, v := range values {
		if anyContainedIn(needles, v) {
			return true
		}
	}
	return false
}

func lowerAll(labels []string) []string {
	if len(labels) == 0 {
		return nil
	}
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = strings.ToLower(l)
	}
	return out
}
