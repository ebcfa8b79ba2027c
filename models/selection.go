package models

// Selection is a single (dimension, option) choice
type Selection struct {
	Dimension FilterDimension `json:"dimension"`
	Option    string          `json:"option"`
}

// IsNeutral reports whether the selection carries a "no preference" option
func (s Selection) IsNeutral() bool {
	return IsNeutralOption(s.Option)
}

// SelectionState is the user's current configuration.
// It is a value type: every mutator returns a new state and never touches the receiver's selections.
type SelectionState struct {
	category   Category
	niche      string
	selections []Selection
}

// NewSelectionState returns the empty start-of-session state
func NewSelectionState() SelectionState {
	return SelectionState{}
}

func (s SelectionState) Category() Category {
	return s.category
}

func (s SelectionState) NichePhrase() string {
	return s.niche
}

// Selections returns a copy of the selections in the order they were first made
func (s SelectionState) Selections() []Selection {
	out := make([]Selection, len(s.selections))
	copy(out, s.selections)
	return out
}

// Len returns the number of selections
func (s SelectionState) Len() int {
	return len(s.selections)
}

// Option returns the option chosen for dimension, if any
func (s SelectionState) Option(dimension FilterDimension) (string, bool) {
	for _, sel := range s.selections {
		if sel.Dimension == dimension {
			return sel.Option, true
		}
	}
	return "", false
}

// WithCategory sets the category and clears every selection.
// Callers validate the category; see Category.IsValid.
func (s SelectionState) WithCategory(category Category) SelectionState {
	return SelectionState{
		category: category,
		niche:    s.niche,
	}
}

// WithOption upserts the selection for dimension.
// An existing selection keeps its position and only its option is replaced.
func (s SelectionState) WithOption(dimension FilterDimension, option string) SelectionState {
	next := make([]Selection, len(s.selections), len(s.selections)+1)
	copy(next, s.selections)

	replaced := false
	for i := range next {
		if next[i].Dimension == dimension {
			next[i].Option = option
			replaced = true
			break
		}
	}
	if !replaced {
		next = append(next, Selection{Dimension: dimension, Option: option})
	}

	return SelectionState{
		category:   s.category,
		niche:      s.niche,
		selections: next,
	}
}

// WithNichePhrase stores the free-text niche, empty included
func (s SelectionState) WithNichePhrase(text string) SelectionState {
	return SelectionState{
		category:   s.category,
		niche:      text,
		selections: s.selections,
	}
}
