package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/amirphl/super-niche-selector/app/dto"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/xuri/excelize/v2"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Workbook sheet names
const (
	EstimateSheetName   = "Estimate"
	SelectionsSheetName = "Selections"
)

const (
	cardWidth      = 480
	cardMargin     = 16
	cardLineHeight = 18
	glyphWidth     = 7
)

var (
	cardBackground = color.RGBA{R: 0xf7, G: 0xf9, B: 0xfc, A: 0xff}
	cardText       = color.RGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff}
	cardAccent     = color.RGBA{R: 0x1d, G: 0x4e, B: 0xd8, A: 0xff}
)

// ExportService renders an estimate view into downloadable files
type ExportService interface {
	RenderPNG(ctx context.Context, view *dto.NicheEstimateResponse) ([]byte, error)
	RenderXLSX(ctx context.Context, view *dto.NicheEstimateResponse) ([]byte, error)
	RenderPDF(ctx context.Context, view *dto.NicheEstimateResponse) ([]byte, error)
}

// pdfcpu writes a config directory under the user's home unless told otherwise
var disablePDFConfigDir sync.Once

type ExportServiceImpl struct {
	title string
	scale int
}

// NewExportService creates the renderer. scale upsamples the PNG card; values below 1 mean 1.
func NewExportService(title string, scale int) ExportService {
	if strings.TrimSpace(title) == "" {
		title = "Super Niche Selector"
	}
	if scale < 1 {
		scale = 1
	}
	return &ExportServiceImpl{title: title, scale: scale}
}

// RenderPDF places the summary card on a single page
func (s *ExportServiceImpl) RenderPDF(ctx context.Context, view *dto.NicheEstimateResponse) ([]byte, error) {
	card, err := s.RenderPNG(ctx, view)
	if err != nil {
		return nil, err
	}

	disablePDFConfigDir.Do(api.DisableConfigDir)

	var buf bytes.Buffer
	imp := pdfcpu.DefaultImportConfig()
	if err := api.ImportImages(nil, &buf, []io.Reader{bytes.NewReader(card)}, imp, model.NewDefaultConfiguration()); err != nil {
		return nil, fmt.Errorf("pdf import: %w", err)
	}
	return buf.Bytes(), nil
}

type cardLine struct {
	text   string
	accent bool
}

// RenderPNG draws a summary card
func (s *ExportServiceImpl) RenderPNG(ctx context.Context, view *dto.NicheEstimateResponse) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if view == nil {
		return nil, fmt.Errorf("nil estimate view")
	}

	lines := s.cardLines(view)
	height := cardMargin*2 + len(lines)*cardLineHeight

	src := image.NewRGBA(image.Rect(0, 0, cardWidth, height))
	draw.Draw(src, src.Bounds(), image.NewUniform(cardBackground), image.Point{}, draw.Src)

	d := &font.Drawer{Dst: src, Face: basicfont.Face7x13}
	for i, line := range lines {
		d.Src = image.NewUniform(cardText)
		if line.accent {
			d.Src = image.NewUniform(cardAccent)
		}
		d.Dot = fixed.P(cardMargin, cardMargin+(i+1)*cardLineHeight-5)
		d.DrawString(line.text)
	}

	out := image.Image(src)
	if s.scale > 1 {
		dst := image.NewRGBA(image.Rect(0, 0, cardWidth*s.scale, height*s.scale))
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
		out = dst
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *ExportServiceImpl) cardLines(view *dto.NicheEstimateResponse) []cardLine {
	maxChars := (cardWidth - 2*cardMargin) / glyphWidth

	lines := []cardLine{{text: s.title, accent: true}, {}}

	sentence := view.Sentence
	if sentence == "" {
		sentence = "(choose a category and a niche)"
	}
	for _, l := range wrapText("Super niche: "+sentence, maxChars) {
		lines = append(lines, cardLine{text: l})
	}

	category := view.Category
	if category == "" {
		category = "-"
	}
	lines = append(lines,
		cardLine{text: "Category: " + category},
		cardLine{text: "Estimated Cost Per Lead: $" + view.CPLDisplay, accent: true},
		cardLine{},
		cardLine{text: "Selections:"},
	)

	if len(view.Selections) == 0 {
		lines = append(lines, cardLine{text: "- none"})
	}
	for _, sel := range view.Selections {
		text := fmt.Sprintf("- %s: %s", sel.Dimension, sel.Option)
		if sel.Neutral {
			text += " (any)"
		} else {
			text += " x" + strconv.FormatFloat(sel.Weight, 'f', 2, 64)
		}
		for _, l := range wrapText(text, maxChars) {
			lines = append(lines, cardLine{text: l})
		}
	}
	return lines
}

// RenderXLSX builds a two-sheet workbook
func (s *ExportServiceImpl) RenderXLSX(ctx context.Context, view *dto.NicheEstimateResponse) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if view == nil {
		return nil, fmt.Errorf("nil estimate view")
	}

	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	if err := xl.SetSheetName(xl.GetSheetName(0), EstimateSheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	summary := [][]string{
		{"Field", "Value"},
		{"Category", view.Category},
		{"Niche", view.Niche},
		{"Super Niche", view.Sentence},
		{"Estimated CPL", view.CPLDisplay},
		{"Base CPL", formatFactor(view.BaseCPL)},
		{"Category Multiplier", formatFactor(view.CategoryMultiplier)},
		{"Counted Elements", strconv.Itoa(view.ElementCount)},
		{"Niche Factor", formatFactor(view.NicheFactor)},
		{"Narrowing Factor", formatFactor(view.NarrowingFactor)},
		{"Floored", strconv.FormatBool(view.Floored)},
	}
	for ri, record := range summary {
		cellRef, _ := excelize.CoordinatesToCellName(1, ri+1)
		if err := xl.SetSheetRow(EstimateSheetName, cellRef, &record); err != nil {
			return nil, fmt.Errorf("failed to write estimate row: %w", err)
		}
	}

	if _, err := xl.NewSheet(SelectionsSheetName); err != nil {
		return nil, fmt.Errorf("failed to create selections sheet: %w", err)
	}
	header := []string{"dimension", "option", "neutral", "weight", "fallback"}
	if err := xl.SetSheetRow(SelectionsSheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write selections header: %w", err)
	}
	for ri, sel := range view.Selections {
		record := []string{
			sel.Dimension,
			sel.Option,
			strconv.FormatBool(sel.Neutral),
			formatFactor(sel.Weight),
			strconv.FormatBool(sel.Fallback),
		}
		cellRef, _ := excelize.CoordinatesToCellName(1, ri+2)
		if err := xl.SetSheetRow(SelectionsSheetName, cellRef, &record); err != nil {
			return nil, fmt.Errorf("failed to write selection row: %w", err)
		}
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func formatFactor(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// wrapText splits on spaces so that no line exceeds width, except single long words
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var (
		lines []string
		cur   strings.Builder
	)
	for _, w := range words {
		if cur.Len() > 0 && cur.Len()+1+len(w) > width {
			lines = append(lines, cur.String())
			cur.Reset()
			cur.WriteString("  ")
		}
		if cur.Len() > 0 && strings.TrimSpace(cur.String()) != "" {
			cur.WriteByte(' ')
		}
		cur.WriteString(w)
	}
	lines = append(lines, cur.String())
	return lines
}
