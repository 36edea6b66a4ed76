// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/recipe-finder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in facet lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRecipes outputs one entry per recipe with its rating, downloads and
// color-labelled difficulty and tags.
func (p *Printer) PrintRecipes(title string, recipes []types.Recipe) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Recipes: %d\n", len(recipes)))

	for i := range recipes {
		r := &recipes[i]
		sb.WriteString("\n")
		sb.WriteString(recipeHeader(r))
		sb.WriteString(fmt.Sprintf("    %s · %s (%s) · ★ %s · ⬇ %s\n",
			r.Category, r.Difficulty, DifficultyColor(r.Difficulty),
			FormatRating(r.Rating), FormatDownloads(r.Downloads)))
		if len(r.Tags) > 0 {
			sb.WriteString("    Tags:\n")
			for _, tag := range r.Tags {
				sb.WriteString(fmt.Sprintf("      #%s (%s)\n", tag, TagColor(tag)))
			}
		}
	}

	p.printBox(strings.ToUpper(title), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs scored recipes with their score breakdown.
func (p *Printer) PrintRecommendations(scored []types.ScoredRecipe) {
	if len(scored) == 0 {
		p.printBox("RECOMMENDATIONS", "No recipes in catalog")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total recipes ranked: %d\n", len(scored)))

	for i := range scored {
		s := &scored[i]
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("#%d  %s", i+1, recipeHeader(&s.Recipe)))
		sb.WriteString(fmt.Sprintf("    Score: %d (goals %d, tools %d, level %d, featured %d)\n",
			s.Score, s.GoalScore, s.ToolScore, s.ExperienceScore, s.FeaturedScore))
		if s.Notes != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", s.Notes))
		}
	}

	p.printBox("RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFacets outputs the most common categories, tools, tags and difficulties.
func (p *Printer) PrintFacets(facets types.FacetCounts) {
	var sb strings.Builder
	writeFacet(&sb, "Categories", facets.Categories)
	writeFacet(&sb, "Tools", facets.Tools)
	writeFacet(&sb, "Tags", facets.Tags)
	writeFacet(&sb, "Difficulty", facets.Difficulties)

	p.printBox("CATALOG FACETS", strings.TrimSuffix(sb.String(), "\n"))
}

func writeFacet(sb *strings.Builder, label string, counts []types.FacetCount) {
	if len(counts) == 0 {
		return
	}
	if sb.Len() > 0 {
		sb.WriteString("\n")
	}
	sb.WriteString(label + ":\n")
	count := min(len(counts), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s (%d)\n", counts[i].Name, counts[i].Count))
	}
	if len(counts) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(counts)-maxItemsToShow))
	}
}

func recipeHeader(r *types.Recipe) string {
	header := fmt.Sprintf("[%d] %s", r.ID, r.Title)
	if r.Featured {
		header += " (featured)"
	}
	return header + "\n"
}

// truncate shortens s to at most width runes, marking the cut with "...".
func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}
