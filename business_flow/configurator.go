package businessflow

import (
	"strings"

	"github.com/amirphl/super-niche-selector/models"
	"github.com/amirphl/super-niche-selector/scoring"
)

// StateObserver is called once per successful mutation, after the new state is installed
type StateObserver func(state models.SelectionState, estimate scoring.Estimate, sentence string)

// Configurator owns one selection session. Every mutation replaces the state and
// re-derives the estimate and sentence before the observer runs.
// It is not safe for concurrent use; each request builds its own.
type Configurator struct {
	engine   *scoring.Engine
	observer StateObserver

	state    models.SelectionState
	estimate scoring.Estimate
	sentence string
}

// NewConfigurator starts a session at the empty state. observer may be nil.
func NewConfigurator(engine *scoring.Engine, observer StateObserver) *Configurator {
	if engine == nil {
		engine = scoring.NewEngine(nil)
	}
	c := &Configurator{
		engine:   engine,
		observer: observer,
	}
	c.derive(models.NewSelectionState())
	return c
}

// SelectCategory sets the category and clears every selection
func (c *Configurator) SelectCategory(category models.Category) error {
	if !category.IsValid() {
		return NewBusinessErrorf("UNKNOWN_CATEGORY", "Category %q is not one of Health, Wealth, Relationship", ErrUnknownCategory, category)
	}
	c.commit(c.state.WithCategory(category))
	return nil
}

// SelectOption records option for dimension, replacing any previous choice.
// Options are not checked against the catalog, but a blank one is rejected.
func (c *Configurator) SelectOption(dimension models.FilterDimension, option string) error {
	if strings.TrimSpace(dimension.String()) == "" {
		return NewBusinessError("DIMENSION_REQUIRED", "Dimension is required", ErrDimensionRequired)
	}
	if strings.TrimSpace(option) == "" {
		return NewBusinessErrorf("OPTION_REQUIRED", "Option is required for dimension %q", ErrOptionRequired, dimension)
	}
	c.commit(c.state.WithOption(dimension, option))
	return nil
}

// SetNichePhrase stores the free-text niche, empty included
func (c *Configurator) SetNichePhrase(text string) {
	c.commit(c.state.WithNichePhrase(text))
}

func (c *Configurator) State() models.SelectionState {
	return c.state
}

func (c *Configurator) Estimate() scoring.Estimate {
	return c.estimate
}

func (c *Configurator) Sentence() string {
	return c.sentence
}

func (c *Configurator) commit(next models.SelectionState) {
	c.derive(next)
	if c.observer != nil {
		c.observer(c.state, c.estimate, c.sentence)
	}
}

func (c *Configurator) derive(state models.SelectionState) {
	c.state = state
	c.estimate = c.engine.Estimate(state)
	c.sentence = scoring.Sentence(state)
}
