package services

import (
	"bytes"
	"context"
	"image/png"
	"testing"

	"github.com/amirphl/super-niche-selector/app/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleView() *dto.NicheEstimateResponse {
	return &dto.NicheEstimateResponse{
		Category:           "Wealth",
		Niche:              "Crypto Trading",
		Sentence:           "Crypto Trading for Entrepreneur, All in the Wealth niche",
		CPL:                9.56,
		CPLDisplay:         "9.56",
		BaseCPL:            15,
		CategoryMultiplier: 1.3,
		ElementCount:       1,
		NicheFactor:        0.7,
		NarrowingFactor:    0.7,
		Selections: []dto.NicheSelectionBreakdown{
			{Dimension: "Profession", Option: "Entrepreneur", Weight: 0.7},
			{Dimension: "Country", Option: "All", Neutral: true, Weight: 1},
		},
	}
}

func TestExportService_RenderPNG(t *testing.T) {
	svc := NewExportService("", 2)

	content, err := svc.RenderPNG(context.Background(), sampleView())
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, cardWidth*2, img.Bounds().Dx())
	assert.Greater(t, img.Bounds().Dy(), cardMargin*2)
}

func TestExportService_RenderPNG_NoScale(t *testing.T) {
	svc := NewExportService("Card", 0)

	content, err := svc.RenderPNG(context.Background(), &dto.NicheEstimateResponse{CPLDisplay: "15.00"})
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, cardWidth, img.Bounds().Dx())
}

func TestExportService_RenderXLSX(t *testing.T) {
	svc := NewExportService("", 1)

	content, err := svc.RenderXLSX(context.Background(), sampleView())
	require.NoError(t, err)

	xl, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer func() { _ = xl.Close() }()

	assert.Equal(t, []string{EstimateSheetName, SelectionsSheetName}, xl.GetSheetList())

	v, err := xl.GetCellValue(EstimateSheetName, "B5")
	require.NoError(t, err)
	assert.Equal(t, "9.56", v)

	v, err = xl.GetCellValue(EstimateSheetName, "B4")
	require.NoError(t, err)
	assert.Equal(t, "Crypto Trading for Entrepreneur, All in the Wealth niche", v)

	v, err = xl.GetCellValue(SelectionsSheetName, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Entrepreneur", v)

	v, err = xl.GetCellValue(SelectionsSheetName, "C3")
	require.NoError(t, err)
	assert.Equal(t, "true", v)
}

func TestExportService_RenderPDF(t *testing.T) {
	svc := NewExportService("", 1)

	content, err := svc.RenderPDF(context.Background(), sampleView())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(content, []byte("%PDF-")))
	assert.Contains(t, string(content), "/Image")
	assert.True(t, bytes.Contains(content, []byte("%%EOF")))
}

func TestExportService_CanceledContext(t *testing.T) {
	svc := NewExportService("", 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.RenderPNG(ctx, sampleView())
	assert.ErrorIs(t, err, context.Canceled)
	_, err = svc.RenderXLSX(ctx, sampleView())
	assert.ErrorIs(t, err, context.Canceled)
	_, err = svc.RenderPDF(ctx, sampleView())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five", 9)
	for _, l := range lines {
		assert.LessOrEqual(t, len(l), 11)
	}
	assert.Equal(t, "one two", lines[0])
	assert.Equal(t, []string{""}, wrapText("   ", 10))
}
