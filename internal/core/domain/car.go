package domain

import "fmt"

// Form field names understood by the price prediction endpoint.
const (
	FieldBrand        = "brand"
	FieldModel        = "model"
	FieldYear         = "year"
	FieldMileage      = "mileage"
	FieldFuelType     = "fuel_type"
	FieldTransmission = "transmission"
	FieldEngineSize   = "engine_size"
	FieldHorsepower   = "horsepower"
)

// CarFields lists every car attribute in form order.
func CarFields() []string {
	return []string{
		FieldBrand,
		FieldModel,
		FieldYear,
		FieldMileage,
		FieldFuelType,
		FieldTransmission,
		FieldEngineSize,
		FieldHorsepower,
	}
}

// CarAttributes is the record posted to the prediction endpoint
type CarAttributes struct {
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	Year         int     `json:"year"`
	Mileage      int     `json:"mileage"`
	FuelType     string  `json:"fuel_type"`
	Transmission string  `json:"transmission"`
	EngineSize   float64 `json:"engine_size"`
	Horsepower   int     `json:"horsepower"`
}

// Prediction is the successful response of the prediction endpoint
type Prediction struct {
	PredictedPrice  float64        `json:"predicted_price"`
	GoogleSearchURL string         `json:"google_search_url,omitempty"`
	CarFeatures     *CarAttributes `json:"car_features,omitempty"`
}

// MissingFieldError reports which car attribute was absent.
func MissingFieldError(field string) error {
	return fmt.Errorf("%w: %s", ErrMissingCarField, field)
}

// InvalidFieldError reports a car attribute whose text could not be converted.
func InvalidFieldError(field, value string) error {
	return fmt.Errorf("%w: %s=%q", ErrInvalidCarField, field, value)
}
