package types

import (
	"time"
)

// SurveyAnswers are a user's answers to the recommendation survey.
type SurveyAnswers struct {
	AutomationGoals []string   `json:"automation_goals" validate:"required,min=1,dive,required"`
	ToolsUsed       []string   `json:"tools_used" validate:"required,min=1,dive,required"`
	ExperienceLevel Difficulty `json:"experience_level" validate:"required,difficulty"`
}

// Validate validates the SurveyAnswers using the validator.
func (a *SurveyAnswers) Validate() error {
	return validate.Struct(a)
}

// Normalize rewrites the experience level into its canonical casing.
func (a *SurveyAnswers) Normalize() {
	if d, ok := ParseDifficulty(string(a.ExperienceLevel)); ok {
		a.ExperienceLevel = d
	}
}

// Survey is a persisted survey submission.
type Survey struct {
	ID int `json:"id"`
	SurveyAnswers
	CreatedAt time.Time `json:"created_at"`
}
