package scoring

import (
	"fmt"
	"strings"

	"github.com/amirphl/super-niche-selector/models"
)

// Sentence builds the "super niche" summary:
//
//	<niche> for <option>, <option> in the <Category> niche
//
// Options appear in selection order, neutral ones included. The result is empty
// until both a category and a non-empty niche phrase are present; the phrase is
// used verbatim. Without any selection the "for" clause is omitted.
func Sentence(state models.SelectionState) string {
	niche := state.NichePhrase()
	if !state.Category().IsSet() || niche == "" {
		return ""
	}

	selections := state.Selections()
	if len(selections) == 0 {
		return fmt.Sprintf("%s in the %s niche", niche, state.Category())
	}

	opts := make([]string, 0, len(selections))
	for _, sel := range selections {
		opts = append(opts, sel.Option)
	}

	return fmt.Sprintf("%s for %s in the %s niche", niche, strings.Join(opts, ", "), state.Category())
}
