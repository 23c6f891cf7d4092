package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// MatchRule assigns a category to new transactions whose description
// matches a glob pattern.
type MatchRule struct {
	DefaultModel
	Priority   uint
	Match      string
	CategoryID uuid.UUID
	Category   Category
}

// BeforeSave trims whitespace and verifies that the match is not empty.
func (r *MatchRule) BeforeSave(_ *gorm.DB) error {
	r.Match = strings.TrimSpace(r.Match)
	if r.Match == "" {
		return ErrMatchRuleEmpty
	}

	return nil
}

// Matches reports whether the rule applies to a description.
func (r MatchRule) Matches(description string) bool {
	return glob.Glob(r.Match, description)
}

// matchCategory returns the category of the first rule matching the description.
//
// Rules are evaluated in order of descending priority. For rules with the same
// priority, the older rule wins.
func matchCategory(tx *gorm.DB, description string) (*uuid.UUID, error) {
	var rules []MatchRule
	err := tx.Session(&gorm.Session{NewDB: true}).Order("priority DESC, created_at ASC").Find(&rules).Error
	if err != nil {
		return nil, err
	}

	for _, rule := range rules {
		if rule.Matches(description) {
			id := rule.CategoryID
			return &id, nil
		}
	}

	return nil, nil
}
