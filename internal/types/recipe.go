// Package types provides type definitions for structured data used throughout the recipe-finder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"
)

// Difficulty is the skill level a recipe expects from the person setting it up.
type Difficulty string

// Known difficulty levels, in ascending order.
const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
)

// Difficulties lists the known difficulty levels in ascending order.
var Difficulties = []Difficulty{Beginner, Intermediate, Advanced}

// ParseDifficulty maps s onto a known difficulty, ignoring case and surrounding space.
func ParseDifficulty(s string) (Difficulty, bool) {
	s = strings.TrimSpace(s)
	for _, d := range Difficulties {
		if strings.EqualFold(s, string(d)) {
			return d, true
		}
	}
	return "", false
}

// Rank returns the position of d in the Beginner < Intermediate < Advanced ordering
// (1-based). Unknown values rank after Advanced.
func (d Difficulty) Rank() int {
	for i, known := range Difficulties {
		if strings.EqualFold(string(d), string(known)) {
			return i + 1
		}
	}
	return len(Difficulties) + 1
}

// Recipe is one AI workflow template in the catalog.
type Recipe struct {
	ID            int        `json:"id" yaml:"id"`
	Title         string     `json:"title" yaml:"title"`
	Description   string     `json:"description" yaml:"description"`
	Tags          []string   `json:"tags" yaml:"tags"`
	GithubURL     string     `json:"github_url" yaml:"github_url"`
	DemoLink      string     `json:"demo_link,omitempty" yaml:"demo_link,omitempty"`
	Prerequisites []string   `json:"prerequisites" yaml:"prerequisites"`
	Toolstack     []string   `json:"toolstack" yaml:"toolstack"`
	Thumbnail     string     `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	Rating        int        `json:"rating" yaml:"rating"` // tenths: 48 is 4.8
	Downloads     int        `json:"downloads" yaml:"downloads"`
	Difficulty    Difficulty `json:"difficulty" yaml:"difficulty"`
	Category      string     `json:"category" yaml:"category"`
	Featured      bool       `json:"featured" yaml:"featured"`
}

// NewRecipe is the payload for submitting a recipe. Rating and downloads are
// not accepted from clients; the store starts them at zero.
type NewRecipe struct {
	Title         string     `json:"title" validate:"required"`
	Description   string     `json:"description" validate:"required"`
	Tags          []string   `json:"tags"`
	GithubURL     string     `json:"github_url" validate:"required,url"`
	DemoLink      string     `json:"demo_link,omitempty" validate:"omitempty,url"`
	Prerequisites []string   `json:"prerequisites"`
	Toolstack     []string   `json:"toolstack"`
	Thumbnail     string     `json:"thumbnail,omitempty" validate:"omitempty,url"`
	Difficulty    Difficulty `json:"difficulty" validate:"omitempty,difficulty"`
	Category      string     `json:"category" validate:"required"`
	Featured      bool       `json:"featured"`
}

// Validate validates the NewRecipe using the validator.
func (r *NewRecipe) Validate() error {
	return validate.Struct(r)
}

// Normalize fills defaults: Beginner difficulty, canonical difficulty casing and
// empty (non-nil) lists.
func (r *NewRecipe) Normalize() {
	if d, ok := ParseDifficulty(string(r.Difficulty)); ok {
		r.Difficulty = d
	} else if r.Difficulty == "" {
		r.Difficulty = Beginner
	}
	r.Tags = nonNil(r.Tags)
	r.Prerequisites = nonNil(r.Prerequisites)
	r.Toolstack = nonNil(r.Toolstack)
}

// Recipe builds the catalog entry for this submission with the given id.
func (r *NewRecipe) Recipe(id int) Recipe {
	return Recipe{
		ID:            id,
		Title:         r.Title,
		Description:   r.Description,
		Tags:          append([]string{}, r.Tags...),
		GithubURL:     r.GithubURL,
		DemoLink:      r.DemoLink,
		Prerequisites: append([]string{}, r.Prerequisites...),
		Toolstack:     append([]string{}, r.Toolstack...),
		Thumbnail:     r.Thumbnail,
		Difficulty:    r.Difficulty,
		Category:      r.Category,
		Featured:      r.Featured,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
