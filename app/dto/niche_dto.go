package dto

// NicheSelectionItem is one (dimension, option) pair sent by the client
type NicheSelectionItem struct {
	Dimension string `json:"dimension" validate:"required,max=64"`
	Option    string `json:"option" validate:"required,max=128"`
}

// NicheEstimateRequest carries a complete configuration.
// Category is applied before the selections, so it never clears them.
type NicheEstimateRequest struct {
	Category   string               `json:"category,omitempty" validate:"max=32"`
	Niche      string               `json:"niche,omitempty" validate:"max=200"`
	Selections []NicheSelectionItem `json:"selections" validate:"dive"`
}

// NicheSelectionBreakdown explains how a selection entered the estimate
type NicheSelectionBreakdown struct {
	Dimension string  `json:"dimension"`
	Option    string  `json:"option"`
	Neutral   bool    `json:"neutral"`
	Weight    float64 `json:"weight"`
	Fallback  bool    `json:"fallback"`
}

// NicheEstimateResponse is the derived view of one configuration
type NicheEstimateResponse struct {
	Message            string                    `json:"message"`
	Category           string                    `json:"category"`
	Niche              string                    `json:"niche"`
	Sentence           string                    `json:"sentence"`
	CPL                float64                   `json:"cpl"`
	CPLDisplay         string                    `json:"cpl_display"`
	BaseCPL            float64                   `json:"base_cpl"`
	CategoryMultiplier float64                   `json:"category_multiplier"`
	ElementCount       int                       `json:"element_count"`
	NicheFactor        float64                   `json:"niche_factor"`
	NarrowingFactor    float64                   `json:"narrowing_factor"`
	Floored            bool                      `json:"floored"`
	Selections         []NicheSelectionBreakdown `json:"selections"`
}

// Event types accepted by the events endpoint
const (
	NicheEventSelectCategory = "select_category"
	NicheEventSelectOption   = "select_option"
	NicheEventSetNiche       = "set_niche"
)

// NicheEventItem is one user interaction to replay
type NicheEventItem struct {
	Type      string `json:"type" validate:"required,max=32"`
	Category  string `json:"category,omitempty" validate:"max=32"`
	Dimension string `json:"dimension,omitempty" validate:"max=64"`
	Option    string `json:"option,omitempty" validate:"max=128"`
	Niche     string `json:"niche,omitempty" validate:"max=200"`
}

// NicheEventsRequest replays interactions from the empty state
type NicheEventsRequest struct {
	Events []NicheEventItem `json:"events" validate:"required,min=1,max=200,dive"`
}

// NicheEventStep is the derived view after one event
type NicheEventStep struct {
	Index      int     `json:"index"`
	Type       string  `json:"type"`
	CPL        float64 `json:"cpl"`
	CPLDisplay string  `json:"cpl_display"`
	Sentence   string  `json:"sentence"`
}

// NicheEventsResponse holds the final view and one step per event
type NicheEventsResponse struct {
	Message string                `json:"message"`
	Final   NicheEstimateResponse `json:"final"`
	Steps   []NicheEventStep      `json:"steps"`
}

// NicheCategoryItem describes a selectable category
type NicheCategoryItem struct {
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
}

// NicheOptionItem is one option of a dimension
type NicheOptionItem struct {
	Label    string  `json:"label"`
	Weight   float64 `json:"weight"`
	Neutral  bool    `json:"neutral"`
	Declared bool    `json:"declared"`
}

// NicheDimensionItem lists the options of a dimension
type NicheDimensionItem struct {
	Name       string            `json:"name"`
	Neutral    string            `json:"neutral"`
	External   bool              `json:"external"`
	QuickPicks []string          `json:"quick_picks,omitempty"`
	Options    []NicheOptionItem `json:"options"`
}

// NicheDirectoryStatus reports the state of the country/language lookup
type NicheDirectoryStatus struct {
	Countries     string `json:"countries"`
	Languages     string `json:"languages"`
	CountryCount  int    `json:"country_count"`
	LanguageCount int    `json:"language_count"`
}

// NicheOptionsResponse feeds the configurator form
type NicheOptionsResponse struct {
	Message        string               `json:"message"`
	BaseCPL        float64              `json:"base_cpl"`
	MinimumCPL     float64              `json:"minimum_cpl"`
	Categories     []NicheCategoryItem  `json:"categories"`
	Dimensions     []NicheDimensionItem `json:"dimensions"`
	NeutralOptions []string             `json:"neutral_options"`
	PopularNiches  []string             `json:"popular_niches"`
	Directory      NicheDirectoryStatus `json:"directory"`
}

// NicheExportFile is a rendered download
type NicheExportFile struct {
	FileName    string
	ContentType string
	Content     []byte
}
