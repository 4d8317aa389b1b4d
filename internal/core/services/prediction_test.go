package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"car-price-assistant/internal/core/domain"
	"car-price-assistant/internal/testutil"
)

func sampleCar() domain.CarAttributes {
	return domain.CarAttributes{
		Brand:        "Toyota",
		Model:        "Corolla",
		Year:         2020,
		Mileage:      45000,
		FuelType:     "Petrol",
		Transmission: "Manual",
		EngineSize:   1.8,
		Horsepower:   140,
	}
}

func TestPredictionService_PredictPrice(t *testing.T) {
	client := new(testutil.MockPredictionClient)
	client.On("Predict", mock.Anything, sampleCar()).Return(&domain.Prediction{PredictedPrice: 850000}, nil)

	price, err := NewPredictionService(client).PredictPrice(context.Background(), sampleCar())

	require.NoError(t, err)
	assert.Equal(t, 850000.0, price)
	client.AssertExpectations(t)
}

func TestPredictionService_SurfacesServerError(t *testing.T) {
	client := new(testutil.MockPredictionClient)
	serverErr := &domain.PredictionError{StatusCode: 400, Message: "model unavailable"}
	client.On("Predict", mock.Anything, mock.Anything).Return(nil, serverErr)

	_, err := NewPredictionService(client).PredictPrice(context.Background(), sampleCar())

	require.Error(t, err)
	assert.Equal(t, "model unavailable", err.Error())
	assert.ErrorIs(t, err, domain.ErrPredictionFailed)

	var predErr *domain.PredictionError
	require.True(t, errors.As(err, &predErr))
	assert.Equal(t, 400, predErr.StatusCode)
}

func TestAttributesFromValues(t *testing.T) {
	car, err := AttributesFromValues(map[string]string{
		"brand":        " Toyota ",
		"model":        "Corolla",
		"year":         "2020",
		"mileage":      "45000",
		"fuel_type":    "Petrol",
		"transmission": "Manual",
		"engine_size":  "1.8",
		"horsepower":   "140",
	})

	require.NoError(t, err)
	assert.Equal(t, sampleCar(), car)
}

func TestAttributesFromValues_Errors(t *testing.T) {
	complete := map[string]string{
		"brand": "Toyota", "model": "Corolla", "year": "2020", "mileage": "45000",
		"fuel_type": "Petrol", "transmission": "Manual", "engine_size": "1.8", "horsepower": "140",
	}

	missing := cloneValues(complete)
	delete(missing, "transmission")
	_, err := AttributesFromValues(missing)
	assert.ErrorIs(t, err, domain.ErrMissingCarField)
	assert.Contains(t, err.Error(), "transmission")

	blank := cloneValues(complete)
	blank["brand"] = "  "
	_, err = AttributesFromValues(blank)
	assert.ErrorIs(t, err, domain.ErrMissingCarField)

	bad := cloneValues(complete)
	bad["engine_size"] = "big"
	_, err = AttributesFromValues(bad)
	assert.ErrorIs(t, err, domain.ErrInvalidCarField)
	assert.Contains(t, err.Error(), "engine_size")
}

func TestAttributesFromValues_RejectsNonIntegers(t *testing.T) {
	complete := map[string]string{
		"brand": "Toyota", "model": "Corolla", "year": "2020", "mileage": "45000",
		"fuel_type": "Petrol", "transmission": "Manual", "engine_size": "1.8", "horsepower": "140",
	}

	tests := []struct {
		name  string
		field string
		value string
	}{
		{"fractional year", "year", "2020.7"},
		{"huge mileage", "mileage", "1e300"},
		{"negative overflow", "horsepower", "-1e12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := cloneValues(complete)
			values[tt.field] = tt.value

			_, err := AttributesFromValues(values)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidCarField)
			assert.Contains(t, err.Error(), tt.value)
		})
	}

	values := cloneValues(complete)
	values["year"] = "2.02e3"
	car, err := AttributesFromValues(values)
	require.NoError(t, err)
	assert.Equal(t, 2020, car.Year)
}

func cloneValues(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
