// Package main provides the entry point for the recipe_agent CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "recipe_agent",
	Short: "AI agent recipe catalog and recommendation server",
	Long: "recipe_agent serves a catalog of AI automation recipes over a REST API, " +
		"filters it from the command line, and recommends recipes from survey answers.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to YAML config file (defaults and RECIPES_* environment variables otherwise)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
