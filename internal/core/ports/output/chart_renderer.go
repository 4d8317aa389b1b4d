package ports

import "car-price-assistant/internal/core/domain"

// ChartRenderer draws charts through a charting library loaded in the page.
type ChartRenderer interface {
	// Available reports whether the charting library is present.
	Available() bool
	Render(elementID string, cfg domain.ChartConfig) error
}
