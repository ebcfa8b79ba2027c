package scoring

import (
	"fmt"
	"math"

	"github.com/amirphl/super-niche-selector/models"
)

const (
	// BaseCPL is the unadjusted Cost Per Lead in dollars
	BaseCPL = 15.00
	// MinCPL is the floor applied after all multipliers
	MinCPL = 0.50
	// NarrowingRate is the per-element decay; each counted element takes 30% off
	NarrowingRate = 0.7
	// FallbackWeight scores options that no rarity table declares
	FallbackWeight = 0.9
)

var categoryMultipliers = map[models.Category]float64{
	models.CategoryWealth:       1.3,
	models.CategoryHealth:       1.2,
	models.CategoryRelationship: 1.1,
}

// CategoryMultiplier returns the base multiplier of a category; 1.0 when unset
func CategoryMultiplier(category models.Category) float64 {
	if m, ok := categoryMultipliers[category]; ok {
		return m
	}
	return 1.0
}

// Contribution explains how one selection entered the estimate
type Contribution struct {
	Selection models.Selection `json:"selection"`
	Neutral   bool             `json:"neutral"`
	Weight    float64          `json:"weight"`
	Fallback  bool             `json:"fallback"`
}

// Estimate is the outcome of one scoring pass. CPL is already floored and rounded to cents.
type Estimate struct {
	Category           models.Category `json:"category"`
	BaseCPL            float64         `json:"base_cpl"`
	CategoryMultiplier float64         `json:"category_multiplier"`
	ElementCount       int             `json:"element_count"`
	NicheFactor        float64         `json:"niche_factor"`
	NarrowingFactor    float64         `json:"narrowing_factor"`
	CPL                float64         `json:"cpl"`
	Floored            bool            `json:"floored"`
	Contributions      []Contribution  `json:"contributions"`
}

// Display renders the CPL with exactly two decimals
func (e Estimate) Display() string {
	return fmt.Sprintf("%.2f", e.CPL)
}

// Engine scores selection states against a rarity table
type Engine struct {
	table *RarityTable
}

// NewEngine creates an engine. A nil table selects DefaultRarityTable.
func NewEngine(table *RarityTable) *Engine {
	if table == nil {
		table = DefaultRarityTable()
	}
	return &Engine{table: table}
}

// Table returns the rarity table the engine scores with
func (e *Engine) Table() *RarityTable {
	return e.table
}

// Estimate is a pure function of state and the engine's table
func (e *Engine) Estimate(state models.SelectionState) Estimate {
	return Calculate(state, e.table)
}

// Calculate computes the Cost Per Lead for state.
//
//	final = BaseCPL * categoryMultiplier * Π(weight of non-neutral selections) * NarrowingRate^count
//
// then floored at MinCPL and rounded half-up to cents.
func Calculate(state models.SelectionState, table *RarityTable) Estimate {
	if table == nil {
		table = DefaultRarityTable()
	}

	multiplier := CategoryMultiplier(state.Category())
	selections := state.Selections()

	est := Estimate{
		Category:           state.Category(),
		BaseCPL:            BaseCPL,
		CategoryMultiplier: multiplier,
		NicheFactor:        1.0,
		Contributions:      make([]Contribution, 0, len(selections)),
	}

	for _, sel := range selections {
		c := Contribution{Selection: sel}
		if sel.IsNeutral() {
			c.Neutral = true
			c.Weight = 1.0
			est.Contributions = append(est.Contributions, c)
			continue
		}

		w, ok := table.Lookup(sel.Dimension, sel.Option)
		if !ok {
			w = FallbackWeight
			c.Fallback = true
		}
		c.Weight = w

		est.ElementCount++
		est.NicheFactor *= w
		est.Contributions = append(est.Contributions, c)
	}

	est.NarrowingFactor = math.Pow(NarrowingRate, float64(est.ElementCount))

	final := BaseCPL * multiplier * est.NicheFactor * est.NarrowingFactor
	if final < MinCPL {
		final = MinCPL
		est.Floored = true
	}
	est.CPL = RoundCents(final)

	return est
}

// RoundCents rounds half-up to two decimals.
// The value is first snapped to 1e-6 so that float noise such as 9.554999999 rounds as 9.555.
func RoundCents(v float64) float64 {
	snapped := math.Round(v*1e6) / 1e4
	return math.Round(snapped) / 100
}
