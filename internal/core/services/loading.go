package services

import ports "car-price-assistant/internal/core/ports/output"

const loadingHTML = `<span class="spinner-border spinner-border-sm" role="status" aria-hidden="true"></span> Predicting...`

// LoadingState toggles the submit button while a prediction is pending.
type LoadingState struct{}

func NewLoadingState() *LoadingState {
	return &LoadingState{}
}

// Show disables the button and replaces its content with a spinner.
func (l *LoadingState) Show(btn ports.Button) {
	btn.SetDisabled(true)
	btn.SetHTML(loadingHTML)
}

// Hide re-enables the button and restores the text given by the caller.
func (l *LoadingState) Hide(btn ports.Button, originalText string) {
	btn.SetDisabled(false)
	btn.SetText(originalText)
}
