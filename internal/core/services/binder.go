package services

import (
	log "github.com/sirupsen/logrus"

	ports "car-price-assistant/internal/core/ports/output"
)

// EventBinder wires form controls to validation and annotation at page start.
type EventBinder struct {
	validator   *Validator
	annotator   *Annotator
	suggestions *SuggestionTable
	loading     *LoadingState
}

func NewEventBinder(validator *Validator, annotator *Annotator, suggestions *SuggestionTable, loading *LoadingState) *EventBinder {
	return &EventBinder{
		validator:   validator,
		annotator:   annotator,
		suggestions: suggestions,
		loading:     loading,
	}
}

// Bind registers handlers on every control of every form in doc and
// returns the field handles it created, in document order.
func (b *EventBinder) Bind(doc ports.Document) []*Field {
	var fields []*Field

	forms := doc.Forms()
	for _, form := range forms {
		for _, control := range form.Controls() {
			fields = append(fields, b.bindControl(control))
		}
		b.bindSubmit(form)
	}

	log.WithFields(log.Fields{
		"forms":  len(forms),
		"fields": len(fields),
	}).Debug("form validation bound")

	return fields
}

func (b *EventBinder) bindControl(control ports.Control) *Field {
	field := NewField(control)

	control.AddEventListener(ports.EventBlur, func() {
		b.onBlur(field)
	})
	control.AddEventListener(ports.EventInput, func() {
		b.annotator.Clear(field)
	})

	if control.Type() == "number" {
		control.AddEventListener(ports.EventFocus, func() {
			control.SetTitle(b.suggestions.Suggestion(control.Name()))
		})
	}

	return field
}

func (b *EventBinder) onBlur(field *Field) {
	b.annotator.Clear(field)

	verdict := b.validator.Validate(field.Name(), field.control.Value())
	if !verdict.Valid {
		b.annotator.Annotate(field, verdict.Message)
	}
}

func (b *EventBinder) bindSubmit(form ports.Form) {
	form.AddEventListener(ports.EventSubmit, func() {
		if btn, ok := form.SubmitButton(); ok {
			b.loading.Show(btn)
		}
	})
}
