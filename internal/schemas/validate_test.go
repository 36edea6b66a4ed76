package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_NewRecipe(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
		field   string
	}{
		{
			name: "valid",
			body: `{"title":"T","description":"D","github_url":"https://github.com/x/y","category":"Sales","tags":["a"],"demo_link":null}`,
		},
		{
			name:    "missing title",
			body:    `{"description":"D","github_url":"https://github.com/x/y","category":"Sales"}`,
			wantErr: true,
			field:   "(root)",
		},
		{
			name:    "tags must be strings",
			body:    `{"title":"T","description":"D","github_url":"u","category":"Sales","tags":[1]}`,
			wantErr: true,
			field:   "tags.0",
		},
		{
			name:    "featured must be boolean",
			body:    `{"title":"T","description":"D","github_url":"u","category":"Sales","featured":"yes"}`,
			wantErr: true,
			field:   "featured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(NewRecipeSchema, []byte(tt.body))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr), "error should be ValidationError type")
			require.NotEmpty(t, validationErr.Errors)
			assert.Equal(t, tt.field, validationErr.Errors[0].Field)
		})
	}
}

func TestValidate_Survey(t *testing.T) {
	assert.NoError(t, Validate(SurveySchema, []byte(
		`{"automation_goals":["code-generation"],"tools_used":["GitHub"],"experience_level":"Advanced"}`)))

	err := Validate(SurveySchema, []byte(`{"automation_goals":[],"tools_used":["GitHub"],"experience_level":"Advanced"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "automation_goals")

	err = Validate(SurveySchema, []byte(`{"tools_used":["GitHub"]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "automation_goals is required")
	assert.Contains(t, err.Error(), "experience_level is required")
}

func TestValidate_Criteria(t *testing.T) {
	assert.NoError(t, Validate(CriteriaSchema, []byte(`{}`)))
	assert.NoError(t, Validate(CriteriaSchema, []byte(`{"tags":null,"search":"gpt","sort":"rating"}`)))
	assert.Error(t, Validate(CriteriaSchema, []byte(`{"tags":"gpt"}`)))
}

func TestValidate_MalformedDocument(t *testing.T) {
	err := Validate(SurveySchema, []byte(`{ invalid json }`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("missing.schema.json", []byte(`{}`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, err.Error(), "missing.schema.json")
	assert.NotNil(t, errors.Unwrap(err))
}

func TestValidateValue_Catalog(t *testing.T) {
	type entry struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		GithubURL   string `json:"github_url"`
		Category    string `json:"category"`
		Difficulty  string `json:"difficulty"`
		Rating      int    `json:"rating"`
	}
	type catalog struct {
		Recipes []entry `json:"recipes"`
	}

	valid := catalog{Recipes: []entry{{"T", "D", "u", "Sales", "Beginner", 48}}}
	assert.NoError(t, ValidateValue(CatalogSchema, valid))

	badDifficulty := catalog{Recipes: []entry{{"T", "D", "u", "Sales", "Expert", 48}}}
	err := ValidateValue(CatalogSchema, badDifficulty)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recipes.0.difficulty")

	badRating := catalog{Recipes: []entry{{"T", "D", "u", "Sales", "Advanced", 51}}}
	assert.Error(t, ValidateValue(CatalogSchema, badRating))
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "title", Message: "is required"},
		{Field: "tags.0", Message: "Invalid type"},
	}}
	assert.Equal(t, "validation failed:\n  1. title: is required\n  2. tags.0: Invalid type\n", err.Error())
}
