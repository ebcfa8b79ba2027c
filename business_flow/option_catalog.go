package businessflow

import (
	"sync"

	"github.com/amirphl/super-niche-selector/app/services"
	"github.com/amirphl/super-niche-selector/models"
	"github.com/amirphl/super-niche-selector/scoring"
)

// Directory list states reported by the catalog
const (
	DirectoryStatusPending  = "pending"
	DirectoryStatusLoaded   = "loaded"
	DirectoryStatusFailed   = "failed"
	DirectoryStatusDisabled = "disabled"
)

// CountryQuickPicks are offered as one-click Country choices
var CountryQuickPicks = []string{"USA", "UK", "Australia", "Canada"}

// PopularNiches seeds the niche phrase input
var PopularNiches = []string{
	"Social Media Marketing",
	"Content Marketing",
	"SEO",
	"Email Marketing",
	"Affiliate Marketing",
	"Digital Photography",
	"Web Development",
	"Graphic Design",
	"Data Science",
	"Cryptocurrency Trading",
	"Personal Finance",
	"Fitness and Nutrition",
	"Language Learning",
	"Mindfulness and Meditation",
	"Business Leadership",
}

// CatalogOption is an option label with its scoring weight
type CatalogOption struct {
	Label    string
	Weight   float64
	Neutral  bool
	Declared bool
}

// CatalogDimension holds the offered options of one dimension
type CatalogDimension struct {
	Dimension  models.FilterDimension
	Neutral    string
	External   bool
	QuickPicks []string
	Options    []CatalogOption
}

// CatalogSnapshot is an immutable copy of the catalog
type CatalogSnapshot struct {
	Dimensions      []CatalogDimension
	CountryStatus   string
	LanguageStatus  string
	CountryCount    int
	LanguageCount   int
	NeutralOptions  []string
	PopularNiches   []string
	CategoryOptions []models.Category
}

// OptionCatalog combines the rarity table with the external country and language lists.
// Readers never block the directory callback for longer than a copy.
type OptionCatalog struct {
	table *scoring.RarityTable

	mu             sync.RWMutex
	countries      []string
	languages      []string
	countryStatus  string
	languageStatus string
}

// NewOptionCatalog creates a catalog whose external lists are still pending
func NewOptionCatalog(table *scoring.RarityTable) *OptionCatalog {
	if table == nil {
		table = scoring.DefaultRarityTable()
	}
	return &OptionCatalog{
		table:          table,
		countryStatus:  DirectoryStatusPending,
		languageStatus: DirectoryStatusPending,
	}
}

// SetExternal installs the directory result. It is the loader's completion callback.
func (c *OptionCatalog) SetExternal(lists services.DirectoryLists) {
	countries := append([]string(nil), lists.Countries...)
	languages := append([]string(nil), lists.Languages...)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.countries = countries
	c.languages = languages
	c.countryStatus = listStatus(lists.CountriesErr)
	c.languageStatus = listStatus(lists.LanguagesErr)
}

// DisableExternal marks both lists as intentionally absent
func (c *OptionCatalog) DisableExternal() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.countries, c.languages = nil, nil
	c.countryStatus = DirectoryStatusDisabled
	c.languageStatus = DirectoryStatusDisabled
}

// DirectoryStatus returns the country and language list states
func (c *OptionCatalog) DirectoryStatus() (countries, languages string) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.countryStatus, c.languageStatus
}

// Snapshot returns a copy of every dimension's options
func (c *OptionCatalog) Snapshot() CatalogSnapshot {
	c.mu.RLock()
	countries := c.countries
	languages := c.languages
	snap := CatalogSnapshot{
		CountryStatus:  c.countryStatus,
		LanguageStatus: c.languageStatus,
		CountryCount:   len(c.countries),
		LanguageCount:  len(c.languages),
	}
	c.mu.RUnlock()

	snap.NeutralOptions = models.NeutralOptions()
	snap.PopularNiches = append([]string(nil), PopularNiches...)
	snap.CategoryOptions = append([]models.Category(nil), models.Categories...)

	for _, dim := range models.Dimensions {
		snap.Dimensions = append(snap.Dimensions, c.buildDimension(dim, countries, languages))
	}
	return snap
}

func (c *OptionCatalog) buildDimension(dim models.FilterDimension, countries, languages []string) CatalogDimension {
	table, ok := c.table.Table(dim)
	if !ok {
		table = scoring.DimensionTable{Dimension: dim, Neutral: models.OptionAll}
	}

	out := CatalogDimension{
		Dimension: dim,
		Neutral:   table.Neutral,
		External:  dim.HasExternalOptions(),
	}

	seen := make(map[string]struct{})
	add := func(label string) {
		if label == "" {
			return
		}
		if _, dup := seen[label]; dup {
			return
		}
		seen[label] = struct{}{}

		opt := CatalogOption{Label: label, Neutral: models.IsNeutralOption(label)}
		if opt.Neutral {
			opt.Weight = 1.0
		} else if w, declared := c.table.Lookup(dim, label); declared {
			opt.Weight = w
			opt.Declared = true
		} else {
			opt.Weight = scoring.FallbackWeight
		}
		out.Options = append(out.Options, opt)
	}

	if dim == models.DimensionCountry {
		out.QuickPicks = append([]string(nil), CountryQuickPicks...)
		for _, label := range CountryQuickPicks {
			add(label)
		}
	}
	add(table.Neutral)
	for _, label := range table.Labels() {
		add(label)
	}

	switch dim {
	case models.DimensionCountry:
		for _, name := range countries {
			add(name)
		}
	case models.DimensionLanguage:
		for _, name := range languages {
			add(name)
		}
	}

	return out
}

func listStatus(err error) string {
	if err != nil {
		return DirectoryStatusFailed
	}
	return DirectoryStatusLoaded
}
