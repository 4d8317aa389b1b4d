package domain

import (
	"errors"
	"fmt"
)

// ============================================================================
// Rule Registry Errors
// ============================================================================

var (
	ErrInvalidFieldID    = errors.New("field ID is required")
	ErrInvalidRuleKind   = errors.New("unknown rule kind")
	ErrInvalidRuleBounds = errors.New("rule bounds are invalid")
	ErrDuplicateRule     = errors.New("field already has a rule")
)

// ============================================================================
// Prediction Errors
// ============================================================================

var (
	ErrPredictionFailed          = errors.New("prediction request failed")
	ErrInvalidPredictionResponse = errors.New("prediction response could not be parsed")
	ErrMissingCarField           = errors.New("missing car field")
	ErrInvalidCarField           = errors.New("invalid car field")
	ErrUpstreamUnavailable       = errors.New("prediction service unavailable")
)

// PredictionError carries the error string returned by the prediction endpoint.
type PredictionError struct {
	StatusCode int
	Message    string
}

func (e *PredictionError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("prediction failed with status %d", e.StatusCode)
	}
	return e.Message
}

// Is lets errors.Is(err, ErrPredictionFailed) match any server-side failure.
func (e *PredictionError) Is(target error) bool {
	return target == ErrPredictionFailed
}
