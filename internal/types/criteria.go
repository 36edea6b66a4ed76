package types

// SortBy names an ordering applied after filtering.
type SortBy string

// Supported orderings. SortNone keeps catalog order.
const (
	SortNone       SortBy = ""
	SortPopularity SortBy = "popularity"
	SortRating     SortBy = "rating"
	SortDifficulty SortBy = "difficulty"
)

// Criteria selects recipes from the catalog. Every field is optional and an
// empty field matches everything; supplied fields combine with AND.
type Criteria struct {
	// Search matches title or description.
	Search string `json:"search,omitempty"`
	// Category must equal the recipe category.
	Category string `json:"category,omitempty"`
	// Categories match when any label is contained in the recipe category.
	Categories []string   `json:"categories,omitempty"`
	Toolstack  []string   `json:"toolstack,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty" validate:"omitempty,difficulty"`
	Tags       []string   `json:"tags,omitempty"`
	SortBy     SortBy     `json:"sort,omitempty" validate:"omitempty,oneof=popularity rating difficulty"`
}

// Validate validates the Criteria using the validator.
func (c *Criteria) Validate() error {
	return validate.Struct(c)
}

// IsEmpty reports whether no filter field is set. SortBy is not a filter.
func (c *Criteria) IsEmpty() bool {
	return c.Search == "" &&
		c.Category == "" &&
		len(c.Categories) == 0 &&
		len(c.Toolstack) == 0 &&
		c.Difficulty == "" &&
		len(c.Tags) == 0
}
