package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"car-price-assistant/internal/adapters/secondary/memdom"
	"car-price-assistant/internal/core/domain"
	"car-price-assistant/internal/testutil"
)

func TestFeatureImportanceChart(t *testing.T) {
	cfg := FeatureImportanceChart()

	assert.Equal(t, "bar", cfg.Type)
	assert.Equal(t, []string{"Year", "Mileage", "Brand", "Horsepower", "Engine Size", "Fuel Type", "Model", "Transmission"}, cfg.Data.Labels)
	assert.Len(t, cfg.Data.Datasets, 1)

	ds := cfg.Data.Datasets[0]
	assert.Equal(t, "Feature Importance", ds.Label)
	assert.Equal(t, []float64{0.25, 0.20, 0.15, 0.12, 0.10, 0.08, 0.06, 0.04}, ds.Data)
	assert.Len(t, ds.BackgroundColor, 8)

	sum := 0.0
	for _, v := range ds.Data {
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-9)

	assert.Equal(t, "Feature Importance in Price Prediction", cfg.Options.Plugins.Title.Text)
	assert.False(t, cfg.Options.Plugins.Legend.Display)
	assert.True(t, cfg.Options.Scales.Y.BeginAtZero)
	assert.Equal(t, "Importance Score", cfg.Options.Scales.Y.Title.Text)
}

func TestChartService_RendersWhenCanvasAndLibraryPresent(t *testing.T) {
	renderer := new(testutil.MockChartRenderer)
	renderer.On("Available").Return(true)
	renderer.On("Render", domain.ChartElementID, mock.AnythingOfType("domain.ChartConfig")).Return(nil)

	doc := memdom.NewDocument("")
	doc.AddElement(domain.ChartElementID)

	assert.True(t, NewChartService(renderer).Setup(doc))
	renderer.AssertExpectations(t)
}

func TestChartService_NoCanvas(t *testing.T) {
	renderer := new(testutil.MockChartRenderer)

	assert.False(t, NewChartService(renderer).Setup(memdom.NewDocument("")))
	renderer.AssertNotCalled(t, "Available")
	renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything)
}

func TestChartService_NoLibrary(t *testing.T) {
	renderer := new(testutil.MockChartRenderer)
	renderer.On("Available").Return(false)

	doc := memdom.NewDocument("")
	doc.AddElement(domain.ChartElementID)

	assert.False(t, NewChartService(renderer).Setup(doc))
	assert.False(t, NewChartService(nil).Setup(doc))
	renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything)
}

func TestChartService_RenderError(t *testing.T) {
	renderer := new(testutil.MockChartRenderer)
	renderer.On("Available").Return(true)
	renderer.On("Render", mock.Anything, mock.Anything).Return(errors.New("canvas lost"))

	doc := memdom.NewDocument("")
	doc.AddElement(domain.ChartElementID)

	assert.False(t, NewChartService(renderer).Setup(doc))
}
