package businessflow

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/amirphl/super-niche-selector/app/dto"
	"github.com/amirphl/super-niche-selector/app/services"
	"github.com/amirphl/super-niche-selector/models"
	"github.com/amirphl/super-niche-selector/scoring"
	"github.com/amirphl/super-niche-selector/utils"
	"github.com/google/uuid"
)

// MaxSelections bounds the selections accepted in one request
const MaxSelections = 64

// EstimateRecorder observes every estimate served
type EstimateRecorder interface {
	ObserveEstimate(category string, cpl float64)
}

// NicheFlow defines the configurator use cases.
type NicheFlow interface {
	Estimate(ctx context.Context, req *dto.NicheEstimateRequest) (*dto.NicheEstimateResponse, error)
	ApplyEvents(ctx context.Context, req *dto.NicheEventsRequest) (*dto.NicheEventsResponse, error)
	ListOptions(ctx context.Context) (*dto.NicheOptionsResponse, error)
	ExportPNG(ctx context.Context, req *dto.NicheEstimateRequest) (*dto.NicheExportFile, error)
	ExportXLSX(ctx context.Context, req *dto.NicheEstimateRequest) (*dto.NicheExportFile, error)
	ExportPDF(ctx context.Context, req *dto.NicheEstimateRequest) (*dto.NicheExportFile, error)
}

type NicheFlowImpl struct {
	engine   *scoring.Engine
	catalog  *OptionCatalog
	exporter services.ExportService
	recorder EstimateRecorder
}

// NewNicheFlow wires the flow. exporter and recorder may be nil.
func NewNicheFlow(engine *scoring.Engine, catalog *OptionCatalog, exporter services.ExportService, recorder EstimateRecorder) NicheFlow {
	if engine == nil {
		engine = scoring.NewEngine(nil)
	}
	if catalog == nil {
		catalog = NewOptionCatalog(engine.Table())
	}
	return &NicheFlowImpl{
		engine:   engine,
		catalog:  catalog,
		exporter: exporter,
		recorder: recorder,
	}
}

// Estimate scores a complete configuration
func (f *NicheFlowImpl) Estimate(ctx context.Context, req *dto.NicheEstimateRequest) (*dto.NicheEstimateResponse, error) {
	cfg, err := f.configure(req)
	if err != nil {
		return nil, err
	}

	res := toEstimateResponse(cfg)
	res.Message = "Estimate calculated successfully"
	f.observe(cfg)

	return res, nil
}

// ApplyEvents replays interactions from the empty state and reports the view after each one
func (f *NicheFlowImpl) ApplyEvents(ctx context.Context, req *dto.NicheEventsRequest) (*dto.NicheEventsResponse, error) {
	steps := make([]dto.NicheEventStep, 0, len(req.Events))
	var current dto.NicheEventItem
	cfg := NewConfigurator(f.engine, func(_ models.SelectionState, est scoring.Estimate, sentence string) {
		steps = append(steps, dto.NicheEventStep{
			Index:      len(steps),
			Type:       current.Type,
			CPL:        est.CPL,
			CPLDisplay: est.Display(),
			Sentence:   sentence,
		})
	})

	for i, ev := range req.Events {
		current = ev
		if err := applyEvent(cfg, ev); err != nil {
			var be *BusinessError
			if errors.As(err, &be) {
				return nil, NewBusinessErrorf(be.Code, "Event %d: %s", be.Err, i, be.Message)
			}
			return nil, err
		}
	}

	final := toEstimateResponse(cfg)
	final.Message = "Estimate calculated successfully"
	f.observe(cfg)

	return &dto.NicheEventsResponse{
		Message: "Events applied successfully",
		Final:   *final,
		Steps:   steps,
	}, nil
}

// ListOptions returns everything the configurator form offers
func (f *NicheFlowImpl) ListOptions(ctx context.Context) (*dto.NicheOptionsResponse, error) {
	snap := f.catalog.Snapshot()

	res := &dto.NicheOptionsResponse{
		Message:        "Options retrieved successfully",
		BaseCPL:        scoring.BaseCPL,
		MinimumCPL:     scoring.MinCPL,
		NeutralOptions: snap.NeutralOptions,
		PopularNiches:  snap.PopularNiches,
		Directory: dto.NicheDirectoryStatus{
			Countries:     snap.CountryStatus,
			Languages:     snap.LanguageStatus,
			CountryCount:  snap.CountryCount,
			LanguageCount: snap.LanguageCount,
		},
	}

	for _, c := range snap.CategoryOptions {
		res.Categories = append(res.Categories, dto.NicheCategoryItem{
			Name:       c.String(),
			Multiplier: scoring.CategoryMultiplier(c),
		})
	}

	for _, d := range snap.Dimensions {
		item := dto.NicheDimensionItem{
			Name:       d.Dimension.String(),
			Neutral:    d.Neutral,
			External:   d.External,
			QuickPicks: d.QuickPicks,
			Options:    make([]dto.NicheOptionItem, 0, len(d.Options)),
		}
		for _, o := range d.Options {
			item.Options = append(item.Options, dto.NicheOptionItem{
				Label:    o.Label,
				Weight:   o.Weight,
				Neutral:  o.Neutral,
				Declared: o.Declared,
			})
		}
		res.Dimensions = append(res.Dimensions, item)
	}

	return res, nil
}

// ExportPNG renders the configuration as a summary card
func (f *NicheFlowImpl) ExportPNG(ctx context.Context, req *dto.NicheEstimateRequest) (*dto.NicheExportFile, error) {
	return f.export(ctx, req, "png", "image/png", func(view *dto.NicheEstimateResponse) ([]byte, error) {
		return f.exporter.RenderPNG(ctx, view)
	})
}

// ExportXLSX renders the configuration as a workbook
func (f *NicheFlowImpl) ExportXLSX(ctx context.Context, req *dto.NicheEstimateRequest) (*dto.NicheExportFile, error) {
	return f.export(ctx, req, "xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", func(view *dto.NicheEstimateResponse) ([]byte, error) {
		return f.exporter.RenderXLSX(ctx, view)
	})
}

// ExportPDF renders the summary card as a one-page document
func (f *NicheFlowImpl) ExportPDF(ctx context.Context, req *dto.NicheEstimateRequest) (*dto.NicheExportFile, error) {
	return f.export(ctx, req, "pdf", "application/pdf", func(view *dto.NicheEstimateResponse) ([]byte, error) {
		return f.exporter.RenderPDF(ctx, view)
	})
}

func (f *NicheFlowImpl) export(ctx context.Context, req *dto.NicheEstimateRequest, ext, contentType string, render func(*dto.NicheEstimateResponse) ([]byte, error)) (*dto.NicheExportFile, error) {
	if f.exporter == nil {
		return nil, NewBusinessError("EXPORT_UNAVAILABLE", "Export is not configured", ErrExportUnavailable)
	}

	cfg, err := f.configure(req)
	if err != nil {
		return nil, err
	}
	view := toEstimateResponse(cfg)

	content, err := render(view)
	if err != nil {
		log.Printf(`{"level":"error","msg":"export failed","format":%q,"request_id":%q,"endpoint":%q,"error":%q}`,
			ext, contextString(ctx, utils.RequestIDKey), contextString(ctx, utils.EndpointKey), err.Error())
		return nil, NewBusinessError("EXPORT_FAILED", fmt.Sprintf("Failed to render %s export", strings.ToUpper(ext)), fmt.Errorf("%w: %v", ErrExportFailed, err))
	}
	f.observe(cfg)

	return &dto.NicheExportFile{
		FileName:    fmt.Sprintf("super-niche-%s.%s", uuid.NewString(), ext),
		ContentType: contentType,
		Content:     content,
	}, nil
}

// configure applies a complete request to a fresh configurator: category first, then
// selections in order, then the niche phrase.
func (f *NicheFlowImpl) configure(req *dto.NicheEstimateRequest) (*Configurator, error) {
	if len(req.Selections) > MaxSelections {
		return nil, NewBusinessErrorf("TOO_MANY_SELECTIONS", "At most %d selections are allowed", ErrTooManySelections, MaxSelections)
	}

	cfg := NewConfigurator(f.engine, nil)

	if strings.TrimSpace(req.Category) != "" {
		category, ok := models.ParseCategory(req.Category)
		if !ok {
			return nil, NewBusinessErrorf("UNKNOWN_CATEGORY", "Category %q is not one of Health, Wealth, Relationship", ErrUnknownCategory, req.Category)
		}
		if err := cfg.SelectCategory(category); err != nil {
			return nil, err
		}
	}

	for _, s := range req.Selections {
		if err := cfg.SelectOption(models.ParseDimension(s.Dimension), strings.TrimSpace(s.Option)); err != nil {
			return nil, err
		}
	}

	cfg.SetNichePhrase(strings.TrimSpace(req.Niche))
	return cfg, nil
}

func (f *NicheFlowImpl) observe(cfg *Configurator) {
	if f.recorder == nil {
		return
	}
	category := cfg.State().Category().String()
	if category == "" {
		category = "none"
	}
	f.recorder.ObserveEstimate(category, cfg.Estimate().CPL)
}

func applyEvent(cfg *Configurator, ev dto.NicheEventItem) error {
	switch strings.TrimSpace(ev.Type) {
	case dto.NicheEventSelectCategory:
		category, ok := models.ParseCategory(ev.Category)
		if !ok || !category.IsSet() {
			return NewBusinessErrorf("UNKNOWN_CATEGORY", "Category %q is not one of Health, Wealth, Relationship", ErrUnknownCategory, ev.Category)
		}
		return cfg.SelectCategory(category)
	case dto.NicheEventSelectOption:
		return cfg.SelectOption(models.ParseDimension(ev.Dimension), strings.TrimSpace(ev.Option))
	case dto.NicheEventSetNiche:
		cfg.SetNichePhrase(strings.TrimSpace(ev.Niche))
		return nil
	default:
		return NewBusinessErrorf("UNKNOWN_EVENT_TYPE", "Event type %q is not supported", ErrUnknownEventType, ev.Type)
	}
}

func toEstimateResponse(cfg *Configurator) *dto.NicheEstimateResponse {
	state := cfg.State()
	est := cfg.Estimate()

	res := &dto.NicheEstimateResponse{
		Category:           state.Category().String(),
		Niche:              state.NichePhrase(),
		Sentence:           cfg.Sentence(),
		CPL:                est.CPL,
		CPLDisplay:         est.Display(),
		BaseCPL:            est.BaseCPL,
		CategoryMultiplier: est.CategoryMultiplier,
		ElementCount:       est.ElementCount,
		NicheFactor:        est.NicheFactor,
		NarrowingFactor:    est.NarrowingFactor,
		Floored:            est.Floored,
		Selections:         make([]dto.NicheSelectionBreakdown, 0, len(est.Contributions)),
	}
	for _, c := range est.Contributions {
		res.Selections = append(res.Selections, dto.NicheSelectionBreakdown{
			Dimension: c.Selection.Dimension.String(),
			Option:    c.Selection.Option,
			Neutral:   c.Neutral,
			Weight:    c.Weight,
			Fallback:  c.Fallback,
		})
	}
	return res
}

func contextString(ctx context.Context, key utils.ContextKey) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(key).(string); ok {
		return v
	}
	return ""
}
