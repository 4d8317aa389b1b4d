package services

import (
	"context"
	"math"
	"strings"

	log "github.com/sirupsen/logrus"

	"car-price-assistant/internal/core/domain"
	ports "car-price-assistant/internal/core/ports/output"
)

type PredictionService struct {
	client ports.PredictionClient
}

func NewPredictionService(client ports.PredictionClient) *PredictionService {
	return &PredictionService{client: client}
}

// PredictPrice requests an estimate and returns the predicted price.
// Failures are logged and returned to the caller unchanged.
func (s *PredictionService) PredictPrice(ctx context.Context, car domain.CarAttributes) (float64, error) {
	prediction, err := s.client.Predict(ctx, car)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"brand": car.Brand,
			"model": car.Model,
		}).Error("API Error")
		return 0, err
	}
	return prediction.PredictedPrice, nil
}

// AttributesFromValues converts raw form values into a prediction request.
// Every car field is required.
func AttributesFromValues(values map[string]string) (domain.CarAttributes, error) {
	var car domain.CarAttributes

	get := func(field string) (string, error) {
		v, ok := values[field]
		v = strings.TrimSpace(v)
		if !ok || v == "" {
			return "", domain.MissingFieldError(field)
		}
		return v, nil
	}
	getFloat := func(field string) (float64, error) {
		v, err := get(field)
		if err != nil {
			return 0, err
		}
		n, ok := domain.ParseNumber(v)
		if !ok {
			return 0, domain.InvalidFieldError(field, v)
		}
		return n, nil
	}
	getInt := func(field string) (int, error) {
		v, err := get(field)
		if err != nil {
			return 0, err
		}
		n, ok := domain.ParseNumber(v)
		if !ok || n != math.Trunc(n) || n < math.MinInt32 || n > math.MaxInt32 {
			return 0, domain.InvalidFieldError(field, v)
		}
		return int(n), nil
	}

	var err error
	if car.Brand, err = get(domain.FieldBrand); err != nil {
		return car, err
	}
	if car.Model, err = get(domain.FieldModel); err != nil {
		return car, err
	}
	if car.Year, err = getInt(domain.FieldYear); err != nil {
		return car, err
	}
	if car.Mileage, err = getInt(domain.FieldMileage); err != nil {
		return car, err
	}
	if car.FuelType, err = get(domain.FieldFuelType); err != nil {
		return car, err
	}
	if car.Transmission, err = get(domain.FieldTransmission); err != nil {
		return car, err
	}
	if car.EngineSize, err = getFloat(domain.FieldEngineSize); err != nil {
		return car, err
	}
	if car.Horsepower, err = getInt(domain.FieldHorsepower); err != nil {
		return car, err
	}

	return car, nil
}
