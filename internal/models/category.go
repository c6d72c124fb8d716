package models

import "strings"

// Category represents a category of transactions.
type Category struct {
	DefaultModel
	Name      string          `json:"name" example:"Alimentação" default:""`
	Type      TransactionType `json:"type" example:"expense"`
	Icon      string          `json:"icon" example:"food" default:""`
	Color     string          `json:"color" example:"#FF5722" default:""`
	IsDefault bool            `json:"isDefault,omitempty" example:"false" default:"false"` // Default categories are seeded on first load and cannot be deleted
}

func (c Category) Self() string {
	return "Category"
}

// Validate normalizes the name and verifies the category invariants.
func (c *Category) Validate() error {
	c.Name = strings.TrimSpace(c.Name)

	if c.Name == "" {
		return ErrNameRequired
	}

	return nil
}
