package services

import (
	"car-price-assistant/internal/core/domain"
	ports "car-price-assistant/internal/core/ports/output"
)

// Assistant runs the page start-up sequence: auto-fill, validation
// binding, then the optional chart.
type Assistant struct {
	autoFill *AutoFill
	binder   *EventBinder
	chart    *ChartService
}

func NewAssistant(autoFill *AutoFill, binder *EventBinder, chart *ChartService) *Assistant {
	return &Assistant{autoFill: autoFill, binder: binder, chart: chart}
}

// NewDefaultAssistant wires the car form rules, suggestions and chart renderer.
func NewDefaultAssistant(renderer ports.ChartRenderer) *Assistant {
	binder := NewEventBinder(
		NewValidator(DefaultRuleRegistry()),
		NewAnnotator(),
		DefaultSuggestionTable(),
		NewLoadingState(),
	)
	return NewAssistant(NewAutoFill(domain.CarFields()), binder, NewChartService(renderer))
}

// Page is what Init did to the document.
type Page struct {
	Filled     []string
	Fields     []*Field
	ChartDrawn bool
}

func (a *Assistant) Init(doc ports.Document) Page {
	return Page{
		Filled:     a.autoFill.Apply(doc),
		Fields:     a.binder.Bind(doc),
		ChartDrawn: a.chart.Setup(doc),
	}
}
