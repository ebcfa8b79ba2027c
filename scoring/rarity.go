// Package scoring implements the Cost Per Lead heuristic and the super niche sentence
package scoring

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/amirphl/super-niche-selector/models"
	"gopkg.in/yaml.v3"
)

//go:embed rarity_tables.yml
var defaultRarityTables []byte

// OptionWeight is the rarity weight of a single option label
type OptionWeight struct {
	Label  string  `yaml:"label" json:"label"`
	Weight float64 `yaml:"weight" json:"weight"`
}

// DimensionTable holds the declared options of one dimension and their weights
type DimensionTable struct {
	Dimension models.FilterDimension `yaml:"dimension" json:"dimension"`
	Neutral   string                 `yaml:"neutral" json:"neutral"`
	Options   []OptionWeight         `yaml:"options" json:"options"`
}

type rarityFile struct {
	Dimensions []DimensionTable `yaml:"dimensions"`
}

// RarityTable maps dimension -> option -> weight. It is immutable once loaded.
type RarityTable struct {
	dimensions []DimensionTable
	index      map[models.FilterDimension]map[string]float64
}

var (
	ErrEmptyRarityTable     = errors.New("rarity table declares no dimensions")
	ErrInvalidRarityWeight  = errors.New("rarity weight must be in (0, 1]")
	ErrDuplicateRarityEntry = errors.New("duplicate rarity table entry")
	ErrInvalidNeutralOption = errors.New("neutral option must be a recognised no-preference label")
)

var defaultTable = sync.OnceValue(func() *RarityTable {
	t, err := LoadRarityTable(bytes.NewReader(defaultRarityTables))
	if err != nil {
		panic(fmt.Sprintf("embedded rarity table is invalid: %v", err))
	}
	return t
})

// DefaultRarityTable returns the table compiled into the binary
func DefaultRarityTable() *RarityTable {
	return defaultTable()
}

// LoadRarityTableFile reads a replacement table from disk
func LoadRarityTableFile(path string) (*RarityTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open rarity table %s: %w", path, err)
	}
	defer f.Close()

	t, err := LoadRarityTable(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load rarity table %s: %w", path, err)
	}
	return t, nil
}

// LoadRarityTable decodes and validates a YAML rarity table
func LoadRarityTable(r io.Reader) (*RarityTable, error) {
	var file rarityFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode rarity table: %w", err)
	}
	if len(file.Dimensions) == 0 {
		return nil, ErrEmptyRarityTable
	}

	t := &RarityTable{
		dimensions: make([]DimensionTable, 0, len(file.Dimensions)),
		index:      make(map[models.FilterDimension]map[string]float64, len(file.Dimensions)),
	}

	for i, d := range file.Dimensions {
		d.Dimension = models.FilterDimension(strings.TrimSpace(string(d.Dimension)))
		if d.Dimension == "" {
			return nil, fmt.Errorf("dimensions[%d].dimension is required", i)
		}
		if _, dup := t.index[d.Dimension]; dup {
			return nil, fmt.Errorf("%w: dimension %q", ErrDuplicateRarityEntry, d.Dimension)
		}
		if !models.IsNeutralOption(d.Neutral) {
			return nil, fmt.Errorf("%w: dimension %q has %q", ErrInvalidNeutralOption, d.Dimension, d.Neutral)
		}

		weights := make(map[string]float64, len(d.Options))
		for j, o := range d.Options {
			if strings.TrimSpace(o.Label) == "" {
				return nil, fmt.Errorf("dimensions[%d].options[%d].label is required", i, j)
			}
			if o.Weight <= 0 || o.Weight > 1 {
				return nil, fmt.Errorf("%w: %s/%s=%v", ErrInvalidRarityWeight, d.Dimension, o.Label, o.Weight)
			}
			if _, dup := weights[o.Label]; dup {
				return nil, fmt.Errorf("%w: %s/%s", ErrDuplicateRarityEntry, d.Dimension, o.Label)
			}
			weights[o.Label] = o.Weight
		}

		opts := make([]OptionWeight, len(d.Options))
		copy(opts, d.Options)
		d.Options = opts

		t.dimensions = append(t.dimensions, d)
		t.index[d.Dimension] = weights
	}

	return t, nil
}

// Lookup returns the declared weight for (dimension, option)
func (t *RarityTable) Lookup(dimension models.FilterDimension, option string) (float64, bool) {
	w, ok := t.index[dimension][option]
	return w, ok
}

// Weight returns the declared weight or FallbackWeight for undeclared pairs
func (t *RarityTable) Weight(dimension models.FilterDimension, option string) float64 {
	if w, ok := t.Lookup(dimension, option); ok {
		return w
	}
	return FallbackWeight
}

// Dimensions returns a copy of the declared tables in file order
func (t *RarityTable) Dimensions() []DimensionTable {
	out := make([]DimensionTable, len(t.dimensions))
	for i, d := range t.dimensions {
		out[i] = d
		out[i].Options = append([]OptionWeight(nil), d.Options...)
	}
	return out
}

// Table returns the declared table of one dimension
func (t *RarityTable) Table(dimension models.FilterDimension) (DimensionTable, bool) {
	for _, d := range t.dimensions {
		if d.Dimension == dimension {
			d.Options = append([]OptionWeight(nil), d.Options...)
			return d, true
		}
	}
	return DimensionTable{}, false
}

// Labels returns the declared option labels of a dimension in file order
func (d DimensionTable) Labels() []string {
	out := make([]string, 0, len(d.Options))
	for _, o := range d.Options {
		out = append(out, o.Label)
	}
	return out
}
