package server

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jonathan/recipe-finder/internal/filtering"
	"github.com/jonathan/recipe-finder/internal/metrics"
	"github.com/jonathan/recipe-finder/internal/schemas"
	"github.com/jonathan/recipe-finder/internal/store"
	"github.com/jonathan/recipe-finder/internal/types"
)

// handleListRecipes returns the catalog, optionally filtered and sorted by query parameters.
func (s *Server) handleListRecipes(w http.ResponseWriter, r *http.Request) {
	criteria, err := criteriaFromQuery(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err, "Failed to fetch recipes")
		return
	}

	recipes, err := s.store.All(r.Context())
	if err != nil {
		s.writeError(w, r, err, "Failed to fetch recipes")
		return
	}

	if !criteria.IsEmpty() || criteria.SortBy != types.SortNone {
		recipes = filtering.Apply(recipes, criteria)
		metrics.RecordFilter(len(recipes))
	}

	s.jsonResponse(w, http.StatusOK, recipes)
}

// handleGetRecipe returns one recipe by numeric id.
func (s *Server) handleGetRecipe(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		s.writeError(w, r, &ErrInvalidID{Raw: raw}, "Failed to fetch recipe")
		return
	}

	recipe, err := s.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		err = &ErrRecipeNotFound{ID: id}
	}
	if err != nil {
		s.writeError(w, r, err, "Failed to fetch recipe")
		return
	}

	s.jsonResponse(w, http.StatusOK, recipe)
}

// handleSearchRecipes matches the query against title, description, tags and tools.
func (s *Server) handleSearchRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := s.store.Search(r.Context(), chi.URLParam(r, "query"))
	if err != nil {
		s.writeError(w, r, err, "Failed to search recipes")
		return
	}
	s.jsonResponse(w, http.StatusOK, recipes)
}

// handleRecipesByCategory returns recipes whose category equals the path value.
func (s *Server) handleRecipesByCategory(w http.ResponseWriter, r *http.Request) {
	recipes, err := s.store.ByCategory(r.Context(), chi.URLParam(r, "category"))
	if err != nil {
		s.writeError(w, r, err, "Failed to fetch recipes by category")
		return
	}
	s.jsonResponse(w, http.StatusOK, recipes)
}

// handleRecipesByTags returns recipes with a tag containing any of the
// comma-separated path values.
func (s *Server) handleRecipesByTags(w http.ResponseWriter, r *http.Request) {
	tags := splitList([]string{chi.URLParam(r, "tags")})
	recipes, err := s.store.ByTags(r.Context(), tags)
	if err != nil {
		s.writeError(w, r, err, "Failed to fetch recipes by tags")
		return
	}
	s.jsonResponse(w, http.StatusOK, recipes)
}

// handleFilterRecipes applies criteria from the JSON body.
func (s *Server) handleFilterRecipes(w http.ResponseWriter, r *http.Request) {
	const invalid = "Invalid filter criteria"

	body, err := readBody(r)
	if err != nil {
		s.writeError(w, r, err, "Failed to filter recipes")
		return
	}
	if err := schemas.Validate(schemas.CriteriaSchema, body); err != nil {
		s.writeError(w, r, newValidationError(invalid, err), "Failed to filter recipes")
		return
	}

	var criteria types.Criteria
	if err := decodeJSON(body, &criteria, invalid); err != nil {
		s.writeError(w, r, err, "Failed to filter recipes")
		return
	}
	if err := criteria.Validate(); err != nil {
		s.writeError(w, r, newValidationError(invalid, err), "Failed to filter recipes")
		return
	}

	recipes, err := s.store.All(r.Context())
	if err != nil {
		s.writeError(w, r, err, "Failed to filter recipes")
		return
	}

	result := filtering.Apply(recipes, criteria)
	metrics.RecordFilter(len(result))
	s.jsonResponse(w, http.StatusOK, result)
}

// handleCreateRecipe validates and stores a new recipe.
func (s *Server) handleCreateRecipe(w http.ResponseWriter, r *http.Request) {
	const invalid = "Invalid recipe data"

	body, err := readBody(r)
	if err != nil {
		s.writeError(w, r, err, "Failed to create recipe")
		return
	}
	if err := schemas.Validate(schemas.NewRecipeSchema, body); err != nil {
		s.writeError(w, r, newValidationError(invalid, err), "Failed to create recipe")
		return
	}

	var in types.NewRecipe
	if err := decodeJSON(body, &in, invalid); err != nil {
		s.writeError(w, r, err, "Failed to create recipe")
		return
	}
	if err := in.Validate(); err != nil {
		s.writeError(w, r, newValidationError(invalid, err), "Failed to create recipe")
		return
	}

	recipe, err := s.store.CreateRecipe(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err, "Failed to create recipe")
		return
	}
	metrics.RecordRecipeCreated(s.store.Len())

	s.jsonResponse(w, http.StatusCreated, recipe)
}

// handleFacets returns sidebar counts for the current catalog.
func (s *Server) handleFacets(w http.ResponseWriter, r *http.Request) {
	recipes, err := s.store.All(r.Context())
	if err != nil {
		s.writeError(w, r, err, "Failed to compute facets")
		return
	}
	s.jsonResponse(w, http.StatusOK, filtering.Facets(recipes))
}

// criteriaFromQuery reads filter criteria from query parameters. List values
// may be repeated or comma separated.
func criteriaFromQuery(q url.Values) (types.Criteria, error) {
	criteria := types.Criteria{
		Search:     q.Get("search"),
		Category:   q.Get("category"),
		Categories: splitList(q["categories"]),
		Toolstack:  splitList(q["toolstack"]),
		Difficulty: types.Difficulty(q.Get("difficulty")),
		Tags:       splitList(q["tags"]),
		SortBy:     types.SortBy(q.Get("sort")),
	}
	if err := criteria.Validate(); err != nil {
		return types.Criteria{}, newValidationError("Invalid filter criteria", err)
	}
	return criteria, nil
}

func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, item := range strings.Split(v, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}
