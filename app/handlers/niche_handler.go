package handlers

import (
	"context"
	"errors"
	"log"

	"github.com/amirphl/super-niche-selector/app/dto"
	businessflow "github.com/amirphl/super-niche-selector/business_flow"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"
)

type NicheHandlerInterface interface {
	Options(c fiber.Ctx) error
	Estimate(c fiber.Ctx) error
	Events(c fiber.Ctx) error
	ExportPNG(c fiber.Ctx) error
	ExportXLSX(c fiber.Ctx) error
	ExportPDF(c fiber.Ctx) error
}

type NicheHandler struct {
	flow      businessflow.NicheFlow
	validator *validator.Validate
}

func NewNicheHandler(flow businessflow.NicheFlow) NicheHandlerInterface {
	return &NicheHandler{
		flow:      flow,
		validator: validator.New(),
	}
}

func (h *NicheHandler) ErrorResponse(c fiber.Ctx, status int, message, code string, details any) error {
	return c.Status(status).JSON(dto.APIResponse{Success: false, Message: message, Error: dto.ErrorDetail{Code: code, Details: details}})
}

func (h *NicheHandler) SuccessResponse(c fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(dto.APIResponse{Success: true, Message: message, Data: data})
}

// Options returns the categories, dimensions and options of the configurator
// @Summary List Niche Options
// @Description Categories with multipliers, dimensions with options and weights, neutral labels, popular niches and directory status
// @Tags Niche
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.NicheOptionsResponse}
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/niche/options [get]
func (h *NicheHandler) Options(c fiber.Ctx) error {
	ctx, cancel := createRequestContext(c, "/api/v1/niche/options")
	defer cancel()

	res, err := h.flow.ListOptions(ctx)
	if err != nil {
		log.Println("List niche options failed:", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "List niche options failed", "NICHE_OPTIONS_FAILED", nil)
	}
	return h.SuccessResponse(c, fiber.StatusOK, res.Message, res)
}

// Estimate scores a complete configuration
// @Summary Estimate Cost Per Lead
// @Description Apply the category, then the selections in order, then the niche phrase; return the estimate and super niche sentence
// @Tags Niche
// @Accept json
// @Produce json
// @Param request body dto.NicheEstimateRequest true "Configuration"
// @Success 200 {object} dto.APIResponse{data=dto.NicheEstimateResponse}
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/niche/estimate [post]
func (h *NicheHandler) Estimate(c fiber.Ctx) error {
	var req dto.NicheEstimateRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if err := h.validator.Struct(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationMessages(err))
	}

	ctx, cancel := createRequestContext(c, "/api/v1/niche/estimate")
	defer cancel()

	res, err := h.flow.Estimate(ctx, &req)
	if err != nil {
		return h.handleFlowError(c, "Estimate failed", "ESTIMATE_FAILED", err)
	}
	return h.SuccessResponse(c, fiber.StatusOK, res.Message, res)
}

// Events replays configurator interactions
// @Summary Replay Configurator Events
// @Description Apply select_category, select_option and set_niche events from the empty state; return the final view and the view after each event
// @Tags Niche
// @Accept json
// @Produce json
// @Param request body dto.NicheEventsRequest true "Events"
// @Success 200 {object} dto.APIResponse{data=dto.NicheEventsResponse}
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/niche/events [post]
func (h *NicheHandler) Events(c fiber.Ctx) error {
	var req dto.NicheEventsRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if err := h.validator.Struct(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationMessages(err))
	}

	ctx, cancel := createRequestContext(c, "/api/v1/niche/events")
	defer cancel()

	res, err := h.flow.ApplyEvents(ctx, &req)
	if err != nil {
		return h.handleFlowError(c, "Applying events failed", "EVENTS_FAILED", err)
	}
	return h.SuccessResponse(c, fiber.StatusOK, res.Message, res)
}

// ExportPNG downloads the configuration as an image
// @Summary Export Niche as PNG
// @Tags Niche
// @Accept json
// @Produce png
// @Param request body dto.NicheEstimateRequest true "Configuration"
// @Success 200 {file} binary
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 500 {object} dto.APIResponse "Export failed"
// @Router /api/v1/niche/export/png [post]
func (h *NicheHandler) ExportPNG(c fiber.Ctx) error {
	return h.export(c, "/api/v1/niche/export/png", h.flow.ExportPNG)
}

// ExportXLSX downloads the configuration as a workbook
// @Summary Export Niche as XLSX
// @Tags Niche
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param request body dto.NicheEstimateRequest true "Configuration"
// @Success 200 {file} binary
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 500 {object} dto.APIResponse "Export failed"
// @Router /api/v1/niche/export/xlsx [post]
func (h *NicheHandler) ExportXLSX(c fiber.Ctx) error {
	return h.export(c, "/api/v1/niche/export/xlsx", h.flow.ExportXLSX)
}

// ExportPDF downloads the configuration as a one-page document
// @Summary Export Niche as PDF
// @Tags Niche
// @Accept json
// @Produce application/pdf
// @Param request body dto.NicheEstimateRequest true "Configuration"
// @Success 200 {file} binary
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 500 {object} dto.APIResponse "Export failed"
// @Router /api/v1/niche/export/pdf [post]
func (h *NicheHandler) ExportPDF(c fiber.Ctx) error {
	return h.export(c, "/api/v1/niche/export/pdf", h.flow.ExportPDF)
}

type exportFunc func(ctx context.Context, req *dto.NicheEstimateRequest) (*dto.NicheExportFile, error)

func (h *NicheHandler) export(c fiber.Ctx, endpoint string, run exportFunc) error {
	var req dto.NicheEstimateRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if err := h.validator.Struct(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationMessages(err))
	}

	ctx, cancel := createRequestContext(c, endpoint)
	defer cancel()

	file, err := run(ctx, &req)
	if err != nil {
		return h.handleFlowError(c, "Export failed", "EXPORT_FAILED", err)
	}

	c.Set("Content-Type", file.ContentType)
	c.Set("Content-Disposition", "attachment; filename="+file.FileName)
	return c.Send(file.Content)
}

// handleFlowError maps configuration errors to 400 and everything else to 500
func (h *NicheHandler) handleFlowError(c fiber.Ctx, message, fallbackCode string, err error) error {
	code := businessflow.ErrorCode(err)
	if code == "" {
		code = fallbackCode
	}

	var be *businessflow.BusinessError
	if errors.As(err, &be) {
		message = be.Message
	}

	switch {
	case businessflow.IsUnknownCategory(err),
		businessflow.IsDimensionRequired(err),
		businessflow.IsOptionRequired(err),
		businessflow.IsUnknownEventType(err),
		businessflow.IsTooManySelections(err):
		return h.ErrorResponse(c, fiber.StatusBadRequest, message, code, nil)
	case businessflow.IsExportUnavailable(err):
		return h.ErrorResponse(c, fiber.StatusServiceUnavailable, message, code, nil)
	default:
		log.Printf(`{"level":"error","msg":%q,"request_id":%q,"error":%q}`, message, requestid.FromContext(c), err.Error())
		return h.ErrorResponse(c, fiber.StatusInternalServerError, message, code, nil)
	}
}
