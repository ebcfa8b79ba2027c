// Package models contains the domain entities of the niche configurator
package models

import "strings"

// Category is one of the "Big 3" niche categories.
// The zero value means no category has been chosen yet.
type Category string

const (
	CategoryUnset        Category = ""
	CategoryHealth       Category = "Health"
	CategoryWealth       Category = "Wealth"
	CategoryRelationship Category = "Relationship"
)

// Categories lists the selectable categories in display order
var Categories = []Category{CategoryHealth, CategoryWealth, CategoryRelationship}

// ParseCategory resolves a category name case-insensitively.
// An empty name resolves to CategoryUnset.
func ParseCategory(name string) (Category, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return CategoryUnset, true
	}
	for _, c := range Categories {
		if strings.EqualFold(string(c), name) {
			return c, true
		}
	}
	return CategoryUnset, false
}

// IsValid reports whether c is one of the three selectable categories
func (c Category) IsValid() bool {
	switch c {
	case CategoryHealth, CategoryWealth, CategoryRelationship:
		return true
	}
	return false
}

func (c Category) IsSet() bool {
	return c != CategoryUnset
}

func (c Category) String() string {
	return string(c)
}
