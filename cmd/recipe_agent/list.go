package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/recipe-finder/internal/filtering"
	"github.com/jonathan/recipe-finder/internal/observability"
	"github.com/jonathan/recipe-finder/internal/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog recipes, optionally filtered and sorted",
	Long:  "Filters the catalog with the same rules as the API (all given criteria must match) and prints the result.",
	RunE:  runList,
}

var (
	listSearch     string
	listCategory   string
	listCategories []string
	listToolstack  []string
	listDifficulty string
	listTags       []string
	listSort       string
	listSeed       string
	listJSON       bool
)

func init() {
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Text contained in title or description")
	listCmd.Flags().StringVar(&listCategory, "category", "", "Exact category (case-insensitive)")
	listCmd.Flags().StringSliceVar(&listCategories, "categories", nil, "Category substrings, any may match")
	listCmd.Flags().StringSliceVar(&listToolstack, "toolstack", nil, "Tool substrings, any may match")
	listCmd.Flags().StringVarP(&listDifficulty, "difficulty", "d", "", "Beginner, Intermediate or Advanced")
	listCmd.Flags().StringSliceVarP(&listTags, "tags", "t", nil, "Tag substrings, any may match")
	listCmd.Flags().StringVar(&listSort, "sort", "", "popularity, rating or difficulty")
	listCmd.Flags().StringVar(&listSeed, "seed", "", "Seed catalog YAML (overrides catalog.seed_file)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print JSON instead of a table")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	criteria := types.Criteria{
		Search:     listSearch,
		Category:   listCategory,
		Categories: listCategories,
		Toolstack:  listToolstack,
		Difficulty: types.Difficulty(listDifficulty),
		Tags:       listTags,
		SortBy:     types.SortBy(listSort),
	}
	if err := criteria.Validate(); err != nil {
		return fmt.Errorf("invalid filter criteria: %w", err)
	}

	_, catalog, err := loadCatalog(listSeed)
	if err != nil {
		return err
	}

	result := filtering.Apply(catalog, criteria)

	if listJSON {
		return writeJSON(cmd.OutOrStdout(), result)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintRecipes("recipes", result)
	return nil
}
