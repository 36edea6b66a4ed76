// Package testutil provides shared test helpers for recipe-finder packages.
package testutil

import (
	"github.com/jonathan/recipe-finder/internal/types"
)

// SampleRecipes returns a fresh copy of the six-recipe sample catalog, with ids 1..6.
func SampleRecipes() []types.Recipe {
	return []types.Recipe{
		{
			ID:            1,
			Title:         "AI Task Scheduler",
			Description:   "Automatically prioritize and schedule tasks using GPT-4 and calendar integration.",
			Tags:          []string{"personal-productivity", "gpt-4", "calendar"},
			GithubURL:     "https://github.com/example/ai-task-scheduler",
			Prerequisites: []string{"OpenAI API Key", "Google Calendar API"},
			Toolstack:     []string{"GPT-4", "Google Calendar API", "Python"},
			Rating:        48,
			Downloads:     1200,
			Difficulty:    types.Beginner,
			Category:      "Productivity",
			Featured:      true,
		},
		{
			ID:            2,
			Title:         "Smart Lead Qualifier",
			Description:   "AI-powered lead scoring and qualification system that integrates with your CRM.",
			Tags:          []string{"sales-automation", "crm-integration", "langchain"},
			GithubURL:     "https://github.com/example/smart-lead-qualifier",
			Prerequisites: []string{"CRM API Access", "OpenAI API Key"},
			Toolstack:     []string{"LangChain", "CRM APIs", "OpenAI"},
			Rating:        49,
			Downloads:     890,
			Difficulty:    types.Intermediate,
			Category:      "Sales",
			Featured:      true,
		},
		{
			ID:            3,
			Title:         "Code Review Assistant",
			Description:   "Automated code review agent that provides feedback on pull requests using GPT-4.",
			Tags:          []string{"code-generation", "github-api", "gpt-4"},
			GithubURL:     "https://github.com/example/code-review-assistant",
			Prerequisites: []string{"GitHub API Token", "OpenAI API Key"},
			Toolstack:     []string{"GPT-4", "GitHub API", "Node.js"},
			Rating:        47,
			Downloads:     2100,
			Difficulty:    types.Advanced,
			Category:      "Development",
			Featured:      true,
		},
		{
			ID:            4,
			Title:         "Content Calendar AI",
			Description:   "Generate and schedule social media content across platforms.",
			Tags:          []string{"content-creation", "social-media", "zapier"},
			GithubURL:     "https://github.com/example/content-calendar-ai",
			Prerequisites: []string{"Social Media API Keys", "OpenAI API Key"},
			Toolstack:     []string{"OpenAI", "Zapier", "Social APIs"},
			Rating:        46,
			Downloads:     756,
			Difficulty:    types.Beginner,
			Category:      "Content",
		},
		{
			ID:            5,
			Title:         "Data Analysis Agent",
			Description:   "Automated data analysis and insight generation from CSV files.",
			Tags:          []string{"data-analysis", "python", "pandas"},
			GithubURL:     "https://github.com/example/data-analysis-agent",
			Prerequisites: []string{"Python Environment", "Pandas", "Matplotlib"},
			Toolstack:     []string{"Python", "Pandas", "GPT-4", "Matplotlib"},
			Rating:        48,
			Downloads:     1500,
			Difficulty:    types.Intermediate,
			Category:      "Analytics",
		},
		{
			ID:            6,
			Title:         "Customer Support Bot",
			Description:   "Intelligent customer support agent that handles common queries.",
			Tags:          []string{"customer-support", "chatbot", "nlp"},
			GithubURL:     "https://github.com/example/customer-support-bot",
			Prerequisites: []string{"Help Desk API", "OpenAI API Key"},
			Toolstack:     []string{"OpenAI", "LangChain", "Help Desk APIs"},
			Rating:        45,
			Downloads:     643,
			Difficulty:    types.Intermediate,
			Category:      "Support",
		},
	}
}

// IDs returns the ids of recipes in order.
func IDs(recipes []types.Recipe) []int {
	ids := make([]int, len(recipes))
	for i := range recipes {
		ids[i] = recipes[i].ID
	}
	return ids
}
