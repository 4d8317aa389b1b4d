package domain

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ============================================================================
// Value Objects
// ============================================================================

// RuleKind identifies how a field rule checks a value
type RuleKind string

const (
	RuleKindNumericRange  RuleKind = "NUMERIC_RANGE"
	RuleKindTextMinLength RuleKind = "TEXT_MIN_LENGTH"
)

// IsValid checks if the kind is known
func (k RuleKind) IsValid() bool {
	return k == RuleKindNumericRange || k == RuleKindTextMinLength
}

// Message template placeholders, expanded by FieldRule.Message.
const (
	PlaceholderField     = "{field}"
	PlaceholderMinLength = "{min_length}"
)

// ============================================================================
// Entities
// ============================================================================

// FieldRule is the constraint attached to one form field identifier.
// Bounds are inclusive. Rules are built once and never mutated.
type FieldRule struct {
	FieldID         string
	Kind            RuleKind
	Min             float64
	Max             float64
	MinLength       int
	MessageTemplate string
}

// NewNumericRangeRule creates a rule accepting numbers in [min, max]
func NewNumericRangeRule(fieldID string, min, max float64, message string) (FieldRule, error) {
	if fieldID == "" {
		return FieldRule{}, ErrInvalidFieldID
	}
	if min > max {
		return FieldRule{}, ErrInvalidRuleBounds
	}
	return FieldRule{
		FieldID:         fieldID,
		Kind:            RuleKindNumericRange,
		Min:             min,
		Max:             max,
		MessageTemplate: message,
	}, nil
}

// NewTextMinLengthRule creates a rule accepting text of at least minLength characters
func NewTextMinLengthRule(fieldID string, minLength int, message string) (FieldRule, error) {
	if fieldID == "" {
		return FieldRule{}, ErrInvalidFieldID
	}
	if minLength <= 0 {
		return FieldRule{}, ErrInvalidRuleBounds
	}
	return FieldRule{
		FieldID:         fieldID,
		Kind:            RuleKindTextMinLength,
		MinLength:       minLength,
		MessageTemplate: message,
	}, nil
}

// Accepts reports whether the already-trimmed value satisfies the rule.
// Numeric values that do not parse, including NaN and infinities, are rejected.
func (r FieldRule) Accepts(value string) bool {
	switch r.Kind {
	case RuleKindNumericRange:
		n, ok := ParseNumber(value)
		if !ok {
			return false
		}
		return n >= r.Min && n <= r.Max
	case RuleKindTextMinLength:
		return utf8.RuneCountInString(value) >= r.MinLength
	default:
		return true
	}
}

// Message expands the rule's message template.
func (r FieldRule) Message() string {
	return strings.NewReplacer(
		PlaceholderField, Capitalize(r.FieldID),
		PlaceholderMinLength, strconv.Itoa(r.MinLength),
	).Replace(r.MessageTemplate)
}

// ParseNumber converts form text into a finite number.
func ParseNumber(value string) (float64, bool) {
	if value == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// Capitalize upper-cases the first character of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
