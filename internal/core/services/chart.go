package services

import (
	log "github.com/sirupsen/logrus"

	"car-price-assistant/internal/core/domain"
	ports "car-price-assistant/internal/core/ports/output"
)

// Placeholder importances until the dashboard serves computed values.
var featureImportance = []struct {
	label string
	score float64
	color string
}{
	{"Year", 0.25, "#FF6384"},
	{"Mileage", 0.20, "#36A2EB"},
	{"Brand", 0.15, "#FFCE56"},
	{"Horsepower", 0.12, "#4BC0C0"},
	{"Engine Size", 0.10, "#9966FF"},
	{"Fuel Type", 0.08, "#FF9F40"},
	{"Model", 0.06, "#FF6384"},
	{"Transmission", 0.04, "#C9CBCF"},
}

// FeatureImportanceChart returns the bar chart configuration for the dashboard.
func FeatureImportanceChart() domain.ChartConfig {
	labels := make([]string, 0, len(featureImportance))
	scores := make([]float64, 0, len(featureImportance))
	colors := make([]string, 0, len(featureImportance))
	for _, f := range featureImportance {
		labels = append(labels, f.label)
		scores = append(scores, f.score)
		colors = append(colors, f.color)
	}

	return domain.ChartConfig{
		Type: "bar",
		Data: domain.ChartData{
			Labels: labels,
			Datasets: []domain.ChartDataset{{
				Label:           "Feature Importance",
				Data:            scores,
				BackgroundColor: colors,
				BorderWidth:     1,
			}},
		},
		Options: domain.ChartOptions{
			Responsive: true,
			Plugins: domain.ChartPlugins{
				Title:  domain.ChartTitle{Display: true, Text: "Feature Importance in Price Prediction"},
				Legend: domain.ChartLegend{Display: false},
			},
			Scales: domain.ChartScales{
				Y: domain.ChartAxis{
					BeginAtZero: true,
					Title:       domain.ChartTitle{Display: true, Text: "Importance Score"},
				},
			},
		},
	}
}

type ChartService struct {
	renderer ports.ChartRenderer
}

func NewChartService(renderer ports.ChartRenderer) *ChartService {
	return &ChartService{renderer: renderer}
}

// Setup renders the feature importance chart when the page has a chart
// canvas and a charting library. It reports whether a chart was drawn.
func (s *ChartService) Setup(doc ports.Document) bool {
	if !doc.HasElement(domain.ChartElementID) {
		return false
	}
	if s.renderer == nil || !s.renderer.Available() {
		log.Debug("chart library not loaded, skipping feature importance chart")
		return false
	}

	if err := s.renderer.Render(domain.ChartElementID, FeatureImportanceChart()); err != nil {
		log.WithError(err).Warn("render feature importance chart")
		return false
	}
	return true
}
