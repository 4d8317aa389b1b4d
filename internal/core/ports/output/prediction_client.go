package ports

import (
	"context"

	"car-price-assistant/internal/core/domain"
)

// PredictionClient requests a price estimate for a car.
type PredictionClient interface {
	Predict(ctx context.Context, car domain.CarAttributes) (*domain.Prediction, error)
}
