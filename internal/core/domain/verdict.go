package domain

// Verdict is the result of applying a field's rule to its current value.
// Message is empty when Valid is true.
type Verdict struct {
	FieldID string
	Valid   bool
	Message string
}

// ValidVerdict returns a passing verdict for the field
func ValidVerdict(fieldID string) Verdict {
	return Verdict{FieldID: fieldID, Valid: true}
}

// InvalidVerdict returns a failing verdict carrying the message
func InvalidVerdict(fieldID, message string) Verdict {
	return Verdict{FieldID: fieldID, Valid: false, Message: message}
}

// FieldErrorState is the annotation currently visible on a field.
type FieldErrorState struct {
	HasError bool
	Message  string
}
