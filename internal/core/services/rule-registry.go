package services

import (
	"fmt"

	"car-price-assistant/internal/core/domain"
)

// RuleRegistry maps field identifiers to their validation rule.
// It is read-only once constructed.
type RuleRegistry struct {
	rules map[string]domain.FieldRule
	order []string
}

// NewRuleRegistry builds a registry from the given rules, rejecting
// duplicates and malformed rules.
func NewRuleRegistry(rules ...domain.FieldRule) (*RuleRegistry, error) {
	r := &RuleRegistry{
		rules: make(map[string]domain.FieldRule, len(rules)),
		order: make([]string, 0, len(rules)),
	}

	for _, rule := range rules {
		if rule.FieldID == "" {
			return nil, domain.ErrInvalidFieldID
		}
		if !rule.Kind.IsValid() {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidRuleKind, rule.Kind)
		}
		if rule.Kind == domain.RuleKindNumericRange && rule.Min > rule.Max {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidRuleBounds, rule.FieldID)
		}
		if rule.Kind == domain.RuleKindTextMinLength && rule.MinLength <= 0 {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidRuleBounds, rule.FieldID)
		}
		if _, exists := r.rules[rule.FieldID]; exists {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateRule, rule.FieldID)
		}
		r.rules[rule.FieldID] = rule
		r.order = append(r.order, rule.FieldID)
	}

	return r, nil
}

// DefaultRules returns the car form rules.
func DefaultRules() []domain.FieldRule {
	return []domain.FieldRule{
		numericRule(domain.FieldYear, 1990, 2024, "Year must be between 1990 and 2024"),
		numericRule(domain.FieldMileage, 0, 500000, "Mileage must be between 0 and 500,000 km"),
		numericRule(domain.FieldEngineSize, 0.5, 5.0, "Engine size must be between 0.5L and 5.0L"),
		numericRule(domain.FieldHorsepower, 50, 1000, "Horsepower must be between 50 and 1000"),
		textRule(domain.FieldBrand, 2),
		textRule(domain.FieldModel, 2),
	}
}

// DefaultRuleRegistry returns a registry holding DefaultRules.
func DefaultRuleRegistry() *RuleRegistry {
	r, err := NewRuleRegistry(DefaultRules()...)
	if err != nil {
		panic(fmt.Sprintf("default rules: %v", err))
	}
	return r
}

const textMinLengthMessage = domain.PlaceholderField + " must be at least " + domain.PlaceholderMinLength + " characters"

func numericRule(fieldID string, min, max float64, message string) domain.FieldRule {
	return domain.FieldRule{
		FieldID:         fieldID,
		Kind:            domain.RuleKindNumericRange,
		Min:             min,
		Max:             max,
		MessageTemplate: message,
	}
}

func textRule(fieldID string, minLength int) domain.FieldRule {
	return domain.FieldRule{
		FieldID:         fieldID,
		Kind:            domain.RuleKindTextMinLength,
		MinLength:       minLength,
		MessageTemplate: textMinLengthMessage,
	}
}

// Lookup returns the rule for fieldID. A field without a rule is unvalidated.
func (r *RuleRegistry) Lookup(fieldID string) (domain.FieldRule, bool) {
	rule, ok := r.rules[fieldID]
	return rule, ok
}

// FieldIDs returns the registered fields in declaration order.
func (r *RuleRegistry) FieldIDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
