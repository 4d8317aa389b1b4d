package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"car-price-assistant/internal/core/domain"
)

// MockPredictionClient is a mock of PredictionClient.
type MockPredictionClient struct {
	mock.Mock
}

func (m *MockPredictionClient) Predict(ctx context.Context, car domain.CarAttributes) (*domain.Prediction, error) {
	args := m.Called(ctx, car)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prediction), args.Error(1)
}

// MockChartRenderer is a mock of ChartRenderer.
type MockChartRenderer struct {
	mock.Mock
}

func (m *MockChartRenderer) Available() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockChartRenderer) Render(elementID string, cfg domain.ChartConfig) error {
	args := m.Called(elementID, cfg)
	return args.Error(0)
}
