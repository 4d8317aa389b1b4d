package services

import (
	"car-price-assistant/internal/core/domain"
	ports "car-price-assistant/internal/core/ports/output"
)

// CSS classes shared with the page stylesheet.
const (
	InvalidClass  = "is-invalid"
	FeedbackClass = "invalid-feedback"
)

// Field is the per-control handle created at bind time. It owns the
// control's error state and its single feedback element.
type Field struct {
	control  ports.Control
	feedback ports.Feedback
	state    domain.FieldErrorState
}

// NewField wraps a control, adopting a feedback element already rendered next to it.
func NewField(control ports.Control) *Field {
	f := &Field{control: control}
	if fb, ok := control.Feedback(FeedbackClass); ok {
		f.feedback = fb
	}
	return f
}

func (f *Field) Name() string {
	return f.control.Name()
}

func (f *Field) Control() ports.Control {
	return f.control
}

func (f *Field) State() domain.FieldErrorState {
	return f.state
}

// Annotator renders and clears inline error annotations.
type Annotator struct{}

func NewAnnotator() *Annotator {
	return &Annotator{}
}

// Annotate marks the field invalid and shows message in its feedback
// element, creating the element on first use.
func (a *Annotator) Annotate(f *Field, message string) {
	f.control.AddClass(InvalidClass)
	if f.feedback == nil {
		f.feedback = f.control.NewFeedback(FeedbackClass)
	}
	f.feedback.SetText(message)
	f.state = domain.FieldErrorState{HasError: true, Message: message}
}

// Clear removes the invalid marking and blanks the feedback text.
// The feedback element is kept for reuse.
func (a *Annotator) Clear(f *Field) {
	f.control.RemoveClass(InvalidClass)
	if f.feedback != nil {
		f.feedback.SetText("")
	}
	f.state = domain.FieldErrorState{}
}
