package predictapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"car-price-assistant/internal/config"
	"car-price-assistant/internal/core/domain"
	ports "car-price-assistant/internal/core/ports/output"
)

const defaultPath = "/api/predict"

type predictClient struct {
	url    string
	client *http.Client
}

// NewPredictClient creates a client for the price prediction endpoint.
// A zero timeout leaves requests unbounded except by the caller's context.
func NewPredictClient(cfg *config.PredictionConfig) ports.PredictionClient {
	path := cfg.Path
	if path == "" {
		path = defaultPath
	}

	return &predictClient{
		url:    strings.TrimRight(cfg.BaseURL, "/") + path,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// predictResponse is either a prediction or an error body.
type predictResponse struct {
	domain.Prediction
	Error string `json:"error"`
}

func (c *predictClient) Predict(ctx context.Context, car domain.CarAttributes) (*domain.Prediction, error) {
	body, err := json.Marshal(car)
	if err != nil {
		return nil, fmt.Errorf("encode car attributes: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	log.WithFields(log.Fields{
		"url":   c.url,
		"brand": car.Brand,
		"model": car.Model,
	}).Debug("requesting price prediction")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("predict request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read predict response: %w", err)
	}

	var result predictResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("%w: status %d: %v", domain.ErrInvalidPredictionResponse, resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.PredictionError{StatusCode: resp.StatusCode, Message: result.Error}
	}

	return &result.Prediction, nil
}
