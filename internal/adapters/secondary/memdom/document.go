// Package memdom is an in-memory Document used by tests and the form checker.
package memdom

import (
	"strings"

	ports "car-price-assistant/internal/core/ports/output"
)

type listeners map[string][]func()

func (l listeners) add(event string, handler func()) {
	l[event] = append(l[event], handler)
}

func (l listeners) dispatch(event string) {
	for _, h := range l[event] {
		h()
	}
}

// Document holds forms and stand-alone elements in insertion order.
type Document struct {
	search   string
	forms    []*Form
	controls []*Control
	ids      map[string]bool
}

// NewDocument creates an empty page whose location has the given query string.
func NewDocument(search string) *Document {
	return &Document{search: search, ids: make(map[string]bool)}
}

func (d *Document) Search() string {
	return d.search
}

func (d *Document) Forms() []ports.Form {
	out := make([]ports.Form, len(d.forms))
	for i, f := range d.forms {
		out[i] = f
	}
	return out
}

func (d *Document) ControlByName(name string) (ports.Control, bool) {
	for _, c := range d.controls {
		if c.name == name {
			return c, true
		}
	}
	return nil, false
}

func (d *Document) HasElement(id string) bool {
	return d.ids[id]
}

// AddElement registers an element id, e.g. a chart canvas.
func (d *Document) AddElement(id string) {
	d.ids[id] = true
}

// AddForm appends an empty form.
func (d *Document) AddForm() *Form {
	f := &Form{doc: d, listeners: listeners{}}
	d.forms = append(d.forms, f)
	return f
}

// AddControl appends a control outside any form.
func (d *Document) AddControl(name, typ, value string) *Control {
	c := newControl(name, typ, value)
	d.controls = append(d.controls, c)
	return c
}

// Values returns the current value of every control, first control wins per name.
func (d *Document) Values() map[string]string {
	out := make(map[string]string, len(d.controls))
	for _, c := range d.controls {
		if _, seen := out[c.name]; !seen {
			out[c.name] = c.value
		}
	}
	return out
}

// Form is an in-memory <form>.
type Form struct {
	doc       *Document
	controls  []*Control
	buttons   []*Button
	listeners listeners
}

// AddInput appends an <input> wrapped in its own container.
func (f *Form) AddInput(name, typ, value string) *Control {
	c := newControl(name, typ, value)
	f.controls = append(f.controls, c)
	f.doc.controls = append(f.doc.controls, c)
	return c
}

// AddSelect appends a <select> with the given selected value.
func (f *Form) AddSelect(name, value string) *Control {
	return f.AddInput(name, "select", value)
}

// AddButton appends a <button> of the given type.
func (f *Form) AddButton(typ, text string) *Button {
	b := &Button{typ: typ, text: text, html: text}
	f.buttons = append(f.buttons, b)
	return b
}

func (f *Form) Controls() []ports.Control {
	out := make([]ports.Control, len(f.controls))
	for i, c := range f.controls {
		out[i] = c
	}
	return out
}

func (f *Form) SubmitButton() (ports.Button, bool) {
	for _, b := range f.buttons {
		if strings.EqualFold(b.typ, "submit") {
			return b, true
		}
	}
	return nil, false
}

func (f *Form) AddEventListener(event string, handler func()) {
	f.listeners.add(event, handler)
}

// Submit dispatches a submit event.
func (f *Form) Submit() {
	f.listeners.dispatch(ports.EventSubmit)
}
