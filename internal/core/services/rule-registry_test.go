package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"car-price-assistant/internal/core/domain"
)

func TestRuleRegistry_Default(t *testing.T) {
	r := DefaultRuleRegistry()

	assert.Equal(t, []string{"year", "mileage", "engine_size", "horsepower", "brand", "model"}, r.FieldIDs())

	year, ok := r.Lookup("year")
	require.True(t, ok)
	assert.Equal(t, domain.RuleKindNumericRange, year.Kind)
	assert.Equal(t, 1990.0, year.Min)
	assert.Equal(t, 2024.0, year.Max)

	brand, ok := r.Lookup("brand")
	require.True(t, ok)
	assert.Equal(t, domain.RuleKindTextMinLength, brand.Kind)
	assert.Equal(t, 2, brand.MinLength)

	_, ok = r.Lookup("transmission")
	assert.False(t, ok)
}

func TestRuleRegistry_FieldIDsIsACopy(t *testing.T) {
	r := DefaultRuleRegistry()

	ids := r.FieldIDs()
	ids[0] = "changed"

	assert.Equal(t, "year", r.FieldIDs()[0])
}

func TestNewRuleRegistry_Rejects(t *testing.T) {
	year := numericRule("year", 1990, 2024, "bad year")

	tests := []struct {
		name  string
		rules []domain.FieldRule
		err   error
	}{
		{"duplicate", []domain.FieldRule{year, year}, domain.ErrDuplicateRule},
		{"empty id", []domain.FieldRule{numericRule("", 0, 1, "")}, domain.ErrInvalidFieldID},
		{"inverted range", []domain.FieldRule{numericRule("x", 2, 1, "")}, domain.ErrInvalidRuleBounds},
		{"zero length", []domain.FieldRule{textRule("x", 0)}, domain.ErrInvalidRuleBounds},
		{"unknown kind", []domain.FieldRule{{FieldID: "x", Kind: "REGEX"}}, domain.ErrInvalidRuleKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRuleRegistry(tt.rules...)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestNewRuleRegistry_Empty(t *testing.T) {
	r, err := NewRuleRegistry()
	require.NoError(t, err)
	assert.Empty(t, r.FieldIDs())

	verdict := NewValidator(r).Validate("year", "1")
	assert.True(t, verdict.Valid)
}
