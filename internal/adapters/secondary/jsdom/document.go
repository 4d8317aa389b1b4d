//go:build js && wasm

// Package jsdom adapts the browser DOM, reached through syscall/js, to the
// document ports.
package jsdom

import (
	"strings"
	"syscall/js"

	ports "car-price-assistant/internal/core/ports/output"
)

type Document struct {
	doc      js.Value
	location js.Value
}

// NewDocument wraps the global document.
func NewDocument() *Document {
	return &Document{
		doc:      js.Global().Get("document"),
		location: js.Global().Get("location"),
	}
}

func (d *Document) Search() string {
	return d.location.Get("search").String()
}

// Origin is the scheme and host of the page, used to build absolute API URLs.
func (d *Document) Origin() string {
	return d.location.Get("origin").String()
}

func (d *Document) Forms() []ports.Form {
	nodes := d.doc.Call("querySelectorAll", "form")
	out := make([]ports.Form, 0, nodes.Length())
	for i := 0; i < nodes.Length(); i++ {
		out = append(out, &Form{el: nodes.Index(i)})
	}
	return out
}

func (d *Document) ControlByName(name string) (ports.Control, bool) {
	el := d.doc.Call("querySelector", `[name="`+cssEscape(name)+`"]`)
	if el.IsNull() {
		return nil, false
	}
	return &Control{el: el}, true
}

func (d *Document) HasElement(id string) bool {
	return !d.doc.Call("getElementById", id).IsNull()
}

func cssEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}

// listen registers handler for event on el. The callback is kept for the
// page lifetime.
func listen(el js.Value, event string, handler func()) {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		handler()
		return nil
	})
	el.Call("addEventListener", event, cb)
}

type Form struct {
	el js.Value
}

func (f *Form) Controls() []ports.Control {
	nodes := f.el.Call("querySelectorAll", "input, select")
	out := make([]ports.Control, 0, nodes.Length())
	for i := 0; i < nodes.Length(); i++ {
		out = append(out, &Control{el: nodes.Index(i)})
	}
	return out
}

func (f *Form) SubmitButton() (ports.Button, bool) {
	el := f.el.Call("querySelector", `button[type="submit"]`)
	if el.IsNull() {
		return nil, false
	}
	return &Button{el: el}, true
}

func (f *Form) AddEventListener(event string, handler func()) {
	listen(f.el, event, handler)
}
