package models

import (
	"strings"

	"gorm.io/gorm"
)

// Account is where money is paid from or into, e.g. a bank account.
type Account struct {
	DefaultModel
	Name     string `gorm:"uniqueIndex"`
	Note     string
	Archived bool
}

// BeforeSave trims whitespace from string fields.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Note = strings.TrimSpace(a.Note)
	return nil
}
