package services

import "car-price-assistant/internal/core/domain"

// SuggestionTable holds the typical-value hints shown as control tooltips.
type SuggestionTable struct {
	hints map[string]string
}

func NewSuggestionTable(hints map[string]string) *SuggestionTable {
	t := &SuggestionTable{hints: make(map[string]string, len(hints))}
	for k, v := range hints {
		t.hints[k] = v
	}
	return t
}

func DefaultSuggestionTable() *SuggestionTable {
	return NewSuggestionTable(map[string]string{
		domain.FieldYear:       "Typically 1990-2024",
		domain.FieldMileage:    "Average: 10,000-100,000 km",
		domain.FieldEngineSize: "Common: 1.0L - 3.0L",
		domain.FieldHorsepower: "Range: 70-300 HP",
	})
}

// Suggestion returns the hint for a field, or "" when there is none.
func (t *SuggestionTable) Suggestion(fieldID string) string {
	return t.hints[fieldID]
}
