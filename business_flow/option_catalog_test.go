package businessflow

import (
	"errors"
	"sync"
	"testing"

	"github.com/amirphl/super-niche-selector/app/services"
	"github.com/amirphl/super-niche-selector/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labelsOf(d CatalogDimension) []string {
	out := make([]string, 0, len(d.Options))
	for _, o := range d.Options {
		out = append(out, o.Label)
	}
	return out
}

func findDimension(t *testing.T, snap CatalogSnapshot, dim models.FilterDimension) CatalogDimension {
	t.Helper()
	for _, d := range snap.Dimensions {
		if d.Dimension == dim {
			return d
		}
	}
	require.Failf(t, "dimension missing", "%s", dim)
	return CatalogDimension{}
}

func TestOptionCatalog_PendingSnapshot(t *testing.T) {
	catalog := NewOptionCatalog(nil)
	snap := catalog.Snapshot()

	assert.Equal(t, DirectoryStatusPending, snap.CountryStatus)
	assert.Equal(t, DirectoryStatusPending, snap.LanguageStatus)
	require.Len(t, snap.Dimensions, len(models.Dimensions))

	country := findDimension(t, snap, models.DimensionCountry)
	assert.Equal(t, []string{"USA", "UK", "Australia", "Canada", "All", "Other"}, labelsOf(country))
	assert.Equal(t, CountryQuickPicks, country.QuickPicks)
	assert.True(t, country.External)

	religion := findDimension(t, snap, models.DimensionReligion)
	assert.Equal(t, models.OptionNoReligion, religion.Options[0].Label)
	assert.True(t, religion.Options[0].Neutral)
	assert.False(t, religion.External)

	assert.Equal(t, []string{
		"Social Media Marketing", "Content Marketing", "SEO", "Email Marketing", "Affiliate Marketing",
		"Digital Photography", "Web Development", "Graphic Design", "Data Science", "Cryptocurrency Trading",
		"Personal Finance", "Fitness and Nutrition", "Language Learning", "Mindfulness and Meditation",
		"Business Leadership",
	}, snap.PopularNiches)
	assert.Equal(t, models.Categories, snap.CategoryOptions)
}

func TestOptionCatalog_SetExternal(t *testing.T) {
	catalog := NewOptionCatalog(nil)
	catalog.SetExternal(services.DirectoryLists{
		Countries: []string{"Canada", "Germany", "United States"},
		Languages: []string{"English", "German", "Swahili"},
	})

	snap := catalog.Snapshot()
	assert.Equal(t, DirectoryStatusLoaded, snap.CountryStatus)
	assert.Equal(t, 3, snap.CountryCount)

	country := findDimension(t, snap, models.DimensionCountry)
	assert.Equal(t, []string{"USA", "UK", "Australia", "Canada", "All", "Other", "Germany", "United States"}, labelsOf(country))

	language := findDimension(t, snap, models.DimensionLanguage)
	labels := labelsOf(language)
	assert.Equal(t, "All", labels[0])
	assert.Contains(t, labels, "Swahili")
	assert.Equal(t, 1, countOf(labels, "English"))

	for _, o := range language.Options {
		if o.Label == "Swahili" {
			assert.False(t, o.Declared)
			assert.Equal(t, 0.9, o.Weight)
		}
		if o.Label == "French" {
			assert.True(t, o.Declared)
			assert.Equal(t, 0.8, o.Weight)
		}
	}
}

func TestOptionCatalog_FailedList(t *testing.T) {
	catalog := NewOptionCatalog(nil)
	catalog.SetExternal(services.DirectoryLists{
		Countries:    []string{},
		CountriesErr: errors.New("timeout"),
		Languages:    []string{"English"},
	})

	countries, languages := catalog.DirectoryStatus()
	assert.Equal(t, DirectoryStatusFailed, countries)
	assert.Equal(t, DirectoryStatusLoaded, languages)

	country := findDimension(t, catalog.Snapshot(), models.DimensionCountry)
	assert.Contains(t, labelsOf(country), "USA")
}

func TestOptionCatalog_DisableExternal(t *testing.T) {
	catalog := NewOptionCatalog(nil)
	catalog.DisableExternal()

	countries, languages := catalog.DirectoryStatus()
	assert.Equal(t, DirectoryStatusDisabled, countries)
	assert.Equal(t, DirectoryStatusDisabled, languages)
}

func TestOptionCatalog_ConcurrentAccess(t *testing.T) {
	catalog := NewOptionCatalog(nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			catalog.SetExternal(services.DirectoryLists{Countries: []string{"Chile"}, Languages: []string{"Spanish"}})
		}()
		go func() {
			defer wg.Done()
			_ = catalog.Snapshot()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, catalog.Snapshot().CountryCount)
}

func countOf(values []string, v string) int {
	n := 0
	for _, candidate := range values {
		if candidate == v {
			n++
		}
	}
	return n
}
