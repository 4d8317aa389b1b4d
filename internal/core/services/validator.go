package services

import (
	"strings"

	"car-price-assistant/internal/core/domain"
)

type Validator struct {
	registry *RuleRegistry
}

func NewValidator(registry *RuleRegistry) *Validator {
	return &Validator{registry: registry}
}

// Validate checks the raw control text against the field's rule.
func (v *Validator) Validate(fieldID, rawValue string) domain.Verdict {
	rule, ok := v.registry.Lookup(fieldID)
	if !ok {
		return domain.ValidVerdict(fieldID)
	}

	if !rule.Accepts(strings.TrimSpace(rawValue)) {
		return domain.InvalidVerdict(fieldID, rule.Message())
	}
	return domain.ValidVerdict(fieldID)
}

// ValidateAll validates every registered field in registry order.
// Fields missing from values are validated as empty text.
func (v *Validator) ValidateAll(values map[string]string) []domain.Verdict {
	ids := v.registry.FieldIDs()
	verdicts := make([]domain.Verdict, 0, len(ids))
	for _, id := range ids {
		verdicts = append(verdicts, v.Validate(id, values[id]))
	}
	return verdicts
}
