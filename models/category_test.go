package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input    string
		expected Category
		ok       bool
	}{
		{"Health", CategoryHealth, true},
		{"wealth", CategoryWealth, true},
		{" RELATIONSHIP ", CategoryRelationship, true},
		{"", CategoryUnset, true},
		{"Travel", CategoryUnset, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseCategory(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestCategory_IsValid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.IsValid())
		assert.True(t, c.IsSet())
	}
	assert.False(t, CategoryUnset.IsValid())
	assert.False(t, CategoryUnset.IsSet())
	assert.False(t, Category("Travel").IsValid())
}

func TestParseDimension(t *testing.T) {
	assert.Equal(t, DimensionAgeGroup, ParseDimension("age group"))
	assert.Equal(t, DimensionCountry, ParseDimension(" Country "))
	assert.Equal(t, FilterDimension("Hobby"), ParseDimension(" Hobby"))
	assert.True(t, DimensionEducationLevel.IsKnown())
	assert.False(t, FilterDimension("Hobby").IsKnown())
	assert.True(t, DimensionLanguage.HasExternalOptions())
	assert.False(t, DimensionGender.HasExternalOptions())
}
