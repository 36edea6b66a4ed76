// Package store keeps the recipe catalog and survey submissions in memory.
package store

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/jonathan/recipe-finder/internal/types"
	"go.uber.org/zap"
)

// ErrNotFound is returned when a recipe id is not in the catalog.
var ErrNotFound = errors.New("recipe not found")

// Store is an in-memory catalog. Reads return copies taken under a read lock,
// so a caller sees the catalog either before or after a concurrent write.
type Store struct {
	mu      sync.RWMutex
	recipes []types.Recipe // ascending id
	index   map[int]int    // id -> position in recipes
	surveys map[int]types.Survey

	recipeIDs Sequence
	surveyIDs Sequence

	now    func() time.Time
	logger *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used to stamp surveys.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger. The default discards output.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		index:   make(map[int]int),
		surveys: make(map[int]types.Survey),
		now:     time.Now,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed adds recipes to the catalog, assigning fresh ids in order. Ids, if any,
// on the input are ignored; rating, downloads and featured are kept.
func (s *Store) Seed(recipes []types.Recipe) []types.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := make([]types.Recipe, 0, len(recipes))
	for _, r := range recipes {
		r = cloneRecipe(r)
		r.ID = s.recipeIDs.Next()
		s.insertLocked(r)
		added = append(added, cloneRecipe(r))
	}

	s.logger.Debug("seeded catalog", zap.Int("added", len(added)), zap.Int("total", len(s.recipes)))
	return added
}

// All returns a snapshot of the whole catalog in id order.
func (s *Store) All(ctx context.Context) ([]types.Recipe, error) {
	return s.selectWhere(ctx, func(*types.Recipe) bool { return true })
}

// Get returns the recipe with the given id, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id int) (types.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return types.Recipe{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.index[id]
	if !ok {
		return types.Recipe{}, ErrNotFound
	}
	return cloneRecipe(s.recipes[pos]), nil
}

// ByCategory returns recipes whose category equals category, ignoring case.
func (s *Store) ByCategory(ctx context.Context, category string) ([]types.Recipe, error) {
	return s.selectWhere(ctx, func(r *types.Recipe) bool {
		return strings.EqualFold(r.Category, category)
	})
}

// ByTags returns recipes with at least one tag containing any of tags, ignoring case.
func (s *Store) ByTags(ctx context.Context, tags []string) ([]types.Recipe, error) {
	return s.selectWhere(ctx, func(r *types.Recipe) bool {
		for _, tag := range tags {
			if containsFold(r.Tags, tag) {
				return true
			}
		}
		return false
	})
}

// Search returns recipes whose title, description, tags or toolstack contain query, ignoring case.
func (s *Store) Search(ctx context.Context, query string) ([]types.Recipe, error) {
	q := strings.ToLower(query)
	return s.selectWhere(ctx, func(r *types.Recipe) bool {
		return strings.Contains(strings.ToLower(r.Title), q) ||
			strings.Contains(strings.ToLower(r.Description), q) ||
			containsFold(r.Tags, q) ||
			containsFold(r.Toolstack, q)
	})
}

// CreateRecipe adds a submitted recipe. Rating and downloads start at zero.
func (s *Store) CreateRecipe(ctx context.Context, in types.NewRecipe) (types.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return types.Recipe{}, err
	}

	in.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()

	r := in.Recipe(s.recipeIDs.Next())
	s.insertLocked(r)

	s.logger.Info("recipe created", zap.Int("id", r.ID), zap.String("title", r.Title))
	return cloneRecipe(r), nil
}

// CreateSurvey records a survey submission and stamps it with an id and time.
func (s *Store) CreateSurvey(ctx context.Context, answers types.SurveyAnswers) (types.Survey, error) {
	if err := ctx.Err(); err != nil {
		return types.Survey{}, err
	}

	answers.Normalize()
	survey := types.Survey{
		ID: s.surveyIDs.Next(),
		SurveyAnswers: types.SurveyAnswers{
			AutomationGoals: append([]string{}, answers.AutomationGoals...),
			ToolsUsed:       append([]string{}, answers.ToolsUsed...),
			ExperienceLevel: answers.ExperienceLevel,
		},
		CreatedAt: s.now().UTC(),
	}

	s.mu.Lock()
	s.surveys[survey.ID] = survey
	s.mu.Unlock()

	s.logger.Debug("survey recorded", zap.Int("id", survey.ID))
	return survey, nil
}

// Len returns the number of recipes in the catalog.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.recipes)
}

// SurveyCount returns the number of recorded surveys.
func (s *Store) SurveyCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.surveys)
}

func (s *Store) insertLocked(r types.Recipe) {
	s.index[r.ID] = len(s.recipes)
	s.recipes = append(s.recipes, r)
}

func (s *Store) selectWhere(ctx context.Context, keep func(*types.Recipe) bool) ([]types.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]types.Recipe, 0, len(s.recipes))
	for i := range s.recipes {
		if keep(&s.recipes[i]) {
			result = append(result, cloneRecipe(s.recipes[i]))
		}
	}
	return result, nil
}

func containsFold(values []string, needle string) bool {
	needle = strings.ToLower(needle)
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}

func cloneRecipe(r types.Recipe) types.Recipe {
	r.Tags = cloneStrings(r.Tags)
	r.Prerequisites = cloneStrings(r.Prerequisites)
	r.Toolstack = cloneStrings(r.Toolstack)
	return r
}

func cloneStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return append(make([]string, 0, len(s)), s...)
}
