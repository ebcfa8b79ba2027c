package models

import "strings"

// FilterDimension is an axis of audience targeting, identified by its display label
type FilterDimension string

const (
	DimensionCountry        FilterDimension = "Country"
	DimensionLanguage       FilterDimension = "Language"
	DimensionReligion       FilterDimension = "Religion"
	DimensionProfession     FilterDimension = "Profession"
	DimensionAgeGroup       FilterDimension = "Age Group"
	DimensionGender         FilterDimension = "Gender"
	DimensionRace           FilterDimension = "Race"
	DimensionMaritalStatus  FilterDimension = "Marital Status"
	DimensionParentType     FilterDimension = "Parent Type"
	DimensionEducationLevel FilterDimension = "Education Level"
)

// Dimensions lists the known dimensions in display order
var Dimensions = []FilterDimension{
	DimensionCountry,
	DimensionLanguage,
	DimensionReligion,
	DimensionProfession,
	DimensionAgeGroup,
	DimensionGender,
	DimensionRace,
	DimensionMaritalStatus,
	DimensionParentType,
	DimensionEducationLevel,
}

// Neutral option labels. A selection carrying one of these never narrows the audience.
const (
	OptionAll                  = "All"
	OptionNoSpecific           = "No Specific"
	OptionNoReligion           = "No Religion"
	OptionNoSpecificProfession = "No Specific Profession"
)

var neutralOptions = map[string]struct{}{
	OptionAll:                  {},
	OptionNoSpecific:           {},
	OptionNoReligion:           {},
	OptionNoSpecificProfession: {},
}

// NeutralOptions returns the neutral labels in a stable order
func NeutralOptions() []string {
	return []string{OptionAll, OptionNoSpecific, OptionNoReligion, OptionNoSpecificProfession}
}

// IsNeutralOption reports whether option is a "no preference" label
func IsNeutralOption(option string) bool {
	_, ok := neutralOptions[option]
	return ok
}

// HasExternalOptions reports whether the dimension's options come from the country directory
func (d FilterDimension) HasExternalOptions() bool {
	return d == DimensionCountry || d == DimensionLanguage
}

// IsKnown reports whether d is one of the declared dimensions
func (d FilterDimension) IsKnown() bool {
	for _, known := range Dimensions {
		if d == known {
			return true
		}
	}
	return false
}

// ParseDimension maps a label onto a declared dimension case-insensitively.
// Unknown labels are returned trimmed but otherwise untouched; free selection is allowed.
func ParseDimension(label string) FilterDimension {
	label = strings.TrimSpace(label)
	for _, known := range Dimensions {
		if strings.EqualFold(string(known), label) {
			return known
		}
	}
	return FilterDimension(label)
}

func (d FilterDimension) String() string {
	return string(d)
}
