package businessflow

import (
	"testing"

	"github.com/amirphl/super-niche-selector/models"
	"github.com/amirphl/super-niche-selector/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observedStep struct {
	state    models.SelectionState
	cpl      float64
	sentence string
}

func newObservedConfigurator() (*Configurator, *[]observedStep) {
	var steps []observedStep
	cfg := NewConfigurator(nil, func(state models.SelectionState, est scoring.Estimate, sentence string) {
		steps = append(steps, observedStep{state: state, cpl: est.CPL, sentence: sentence})
	})
	return cfg, &steps
}

func TestConfigurator_InitialState(t *testing.T) {
	cfg, steps := newObservedConfigurator()

	assert.Equal(t, 15.00, cfg.Estimate().CPL)
	assert.Empty(t, cfg.Sentence())
	assert.Zero(t, cfg.State().Len())
	assert.Empty(t, *steps, "construction is not a mutation")
}

func TestConfigurator_ObserverRunsOncePerMutationWithNewState(t *testing.T) {
	cfg, steps := newObservedConfigurator()

	require.NoError(t, cfg.SelectCategory(models.CategoryWealth))
	require.NoError(t, cfg.SelectOption(models.DimensionProfession, "Entrepreneur"))
	cfg.SetNichePhrase("Crypto Trading")

	require.Len(t, *steps, 3)

	assert.Equal(t, models.CategoryWealth, (*steps)[0].state.Category())
	assert.Equal(t, 19.50, (*steps)[0].cpl)

	assert.Equal(t, 1, (*steps)[1].state.Len())
	assert.Equal(t, 9.56, (*steps)[1].cpl)
	assert.Empty(t, (*steps)[1].sentence)

	assert.Equal(t, "Crypto Trading for Entrepreneur in the Wealth niche", (*steps)[2].sentence)
	assert.Equal(t, cfg.Sentence(), (*steps)[2].sentence)
	assert.Equal(t, cfg.Estimate().CPL, (*steps)[2].cpl)
}

func TestConfigurator_SelectCategoryClearsSelections(t *testing.T) {
	cfg, _ := newObservedConfigurator()

	require.NoError(t, cfg.SelectCategory(models.CategoryHealth))
	require.NoError(t, cfg.SelectOption(models.DimensionCountry, "USA"))
	require.NoError(t, cfg.SelectOption(models.DimensionGender, "Female"))
	cfg.SetNichePhrase("Yoga")

	require.NoError(t, cfg.SelectCategory(models.CategoryRelationship))
	assert.Zero(t, cfg.State().Len())
	assert.Equal(t, "Yoga", cfg.State().NichePhrase())
	assert.Equal(t, "Yoga in the Relationship niche", cfg.Sentence())
	assert.Equal(t, 16.50, cfg.Estimate().CPL)
}

func TestConfigurator_SelectOptionIsIdempotent(t *testing.T) {
	cfg, _ := newObservedConfigurator()

	require.NoError(t, cfg.SelectOption(models.DimensionLanguage, "Spanish"))
	once := cfg.Estimate()
	require.NoError(t, cfg.SelectOption(models.DimensionLanguage, "Spanish"))

	assert.Equal(t, once, cfg.Estimate())
	assert.Equal(t, 1, cfg.State().Len())
}

func TestConfigurator_Errors(t *testing.T) {
	cfg, steps := newObservedConfigurator()

	err := cfg.SelectCategory(models.Category("Travel"))
	assert.True(t, IsUnknownCategory(err))
	assert.Equal(t, "UNKNOWN_CATEGORY", ErrorCode(err))

	err = cfg.SelectCategory(models.CategoryUnset)
	assert.True(t, IsUnknownCategory(err))

	err = cfg.SelectOption(models.FilterDimension("  "), "USA")
	assert.True(t, IsDimensionRequired(err))

	err = cfg.SelectOption(models.DimensionCountry, "")
	assert.True(t, IsOptionRequired(err))
	assert.Equal(t, "OPTION_REQUIRED", ErrorCode(err))

	err = cfg.SelectOption(models.DimensionCountry, " \t")
	assert.True(t, IsOptionRequired(err))
	assert.Zero(t, cfg.State().Len())

	assert.Empty(t, *steps)
	assert.Equal(t, 15.00, cfg.Estimate().CPL)
}

func TestConfigurator_AcceptsUnlistedOptions(t *testing.T) {
	cfg, _ := newObservedConfigurator()

	require.NoError(t, cfg.SelectOption(models.FilterDimension("Hobby"), "Chess"))
	assert.Equal(t, 9.45, cfg.Estimate().CPL)
}
