package scoring

import (
	"testing"

	"github.com/amirphl/super-niche-selector/models"
	"github.com/stretchr/testify/assert"
)

func TestSentence(t *testing.T) {
	tests := []struct {
		name     string
		state    models.SelectionState
		expected string
	}{
		{
			name:     "empty state",
			state:    models.NewSelectionState(),
			expected: "",
		},
		{
			name:     "niche without category",
			state:    models.NewSelectionState().WithNichePhrase("Yoga").WithOption(models.DimensionCountry, "USA"),
			expected: "",
		},
		{
			name:     "category without niche",
			state:    stateWith(models.CategoryHealth, sel(models.DimensionCountry, "USA")),
			expected: "",
		},
		{
			name:     "niche phrase is used verbatim",
			state:    stateWith(models.CategoryHealth, sel(models.DimensionGender, "Female")).WithNichePhrase(" Yoga "),
			expected: " Yoga  for Female in the Health niche",
		},
		{
			name:     "no selections omits the for clause",
			state:    stateWith(models.CategoryWealth).WithNichePhrase("Crypto Trading"),
			expected: "Crypto Trading in the Wealth niche",
		},
		{
			name: "options in selection order with neutral kept",
			state: stateWith(models.CategoryHealth,
				sel(models.DimensionCountry, "USA"),
				sel(models.DimensionGender, "Female"),
				sel(models.DimensionReligion, models.OptionNoReligion),
			).WithNichePhrase("Yoga"),
			expected: "Yoga for USA, Female, No Religion in the Health niche",
		},
		{
			name: "replaced option keeps its position",
			state: stateWith(models.CategoryRelationship,
				sel(models.DimensionCountry, "USA"),
				sel(models.DimensionAgeGroup, "18-25"),
				sel(models.DimensionCountry, "Canada"),
			).WithNichePhrase("Dating Coaching"),
			expected: "Dating Coaching for Canada, 18-25 in the Relationship niche",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sentence(tt.state))
		})
	}
}
