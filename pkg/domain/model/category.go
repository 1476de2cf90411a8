package model

import "github.com/m-mizutani/goerr/v2"

// Category represents an incident category offered to reporters.
// Article categories on the wire are "<base>/<severity>"; ID here is the
// base part.
type Category struct {
	ID          string `yaml:"id"`          // Unique identifier (e.g., "autonomous_vehicle")
	Name        string `yaml:"name"`        // Display name
	Description string `yaml:"description"` // Description for selection help
}

// Validate validates the category
func (c *Category) Validate() error {
	if c.ID == "" {
		return goerr.New("category ID is required")
	}
	if c.Name == "" {
		return goerr.New("category name is required")
	}
	// Description is optional
	return nil
}

// CategoriesConfig represents the categories configuration
type CategoriesConfig struct {
	Categories []Category `yaml:"categories"`
}

// Validate validates the categories configuration
func (c *CategoriesConfig) Validate() error {
	if len(c.Categories) == 0 {
		return goerr.New("at least one category is required")
	}

	idMap := make(map[string]bool)
	for i, cat := range c.Categories {
		if err := cat.Validate(); err != nil {
			return goerr.Wrap(err, "invalid category at index",
				goerr.V("index", i),
				goerr.V("id", cat.ID))
		}

		if idMap[cat.ID] {
			return goerr.New("duplicate category ID",
				goerr.V("id", cat.ID))
		}
		idMap[cat.ID] = true
	}

	return nil
}

// FindCategoryByID finds a category by its ID
func (c *CategoriesConfig) FindCategoryByID(id string) *Category {
	for _, cat := range c.Categories {
		if cat.ID == id {
			result := cat
			return &result
		}
	}
	return nil
}

// IsValidCategoryID checks if the given category ID exists
func (c *CategoriesConfig) IsValidCategoryID(id string) bool {
	return c.FindCategoryByID(id) != nil
}

// Accepts reports whether a submitted category label matches a configured
// category by ID or display name.
func (c *CategoriesConfig) Accepts(label string) bool {
	for _, cat := range c.Categories {
		if cat.ID == label || cat.Name == label {
			return true
		}
	}
	return false
}
