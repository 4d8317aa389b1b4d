package domain

// ChartElementID is the canvas that hosts the feature importance chart.
const ChartElementID = "featureImportanceChart"

// ChartConfig mirrors the Chart.js configuration object.
type ChartConfig struct {
	Type    string       `json:"type"`
	Data    ChartData    `json:"data"`
	Options ChartOptions `json:"options"`
}

type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

type ChartDataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BackgroundColor []string  `json:"backgroundColor"`
	BorderWidth     int       `json:"borderWidth"`
}

type ChartOptions struct {
	Responsive bool         `json:"responsive"`
	Plugins    ChartPlugins `json:"plugins"`
	Scales     ChartScales  `json:"scales"`
}

type ChartPlugins struct {
	Title  ChartTitle  `json:"title"`
	Legend ChartLegend `json:"legend"`
}

type ChartTitle struct {
	Display bool   `json:"display"`
	Text    string `json:"text"`
}

type ChartLegend struct {
	Display bool `json:"display"`
}

type ChartScales struct {
	Y ChartAxis `json:"y"`
}

type ChartAxis struct {
	BeginAtZero bool       `json:"beginAtZero"`
	Title       ChartTitle `json:"title"`
}
