package models

import (
	"strings"

	"gorm.io/gorm"
)

// Category groups transactions, e.g. "Housing" or "Salary".
type Category struct {
	DefaultModel
	Name     string `gorm:"uniqueIndex"`
	Note     string
	Archived bool
}

// BeforeSave trims whitespace from string fields.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Note = strings.TrimSpace(c.Note)
	return nil
}
