//go:build js && wasm

package jsdom

import (
	"strings"
	"syscall/js"

	ports "car-price-assistant/internal/core/ports/output"
)

type Control struct {
	el js.Value
}

func (c *Control) Name() string {
	name := c.el.Call("getAttribute", "name")
	if name.IsNull() {
		return ""
	}
	return name.String()
}

func (c *Control) Type() string {
	if strings.EqualFold(c.el.Get("tagName").String(), "select") {
		return "select"
	}
	return c.el.Get("type").String()
}

func (c *Control) Value() string {
	return c.el.Get("value").String()
}

func (c *Control) SetValue(value string) {
	c.el.Set("value", value)
}

func (c *Control) SetTitle(title string) {
	c.el.Set("title", title)
}

func (c *Control) AddClass(class string) {
	c.el.Get("classList").Call("add", class)
}

func (c *Control) RemoveClass(class string) {
	c.el.Get("classList").Call("remove", class)
}

func (c *Control) HasClass(class string) bool {
	return c.el.Get("classList").Call("contains", class).Bool()
}

func (c *Control) Feedback(class string) (ports.Feedback, bool) {
	parent := c.el.Get("parentNode")
	if parent.IsNull() {
		return nil, false
	}
	el := parent.Call("querySelector", "."+class)
	if el.IsNull() {
		return nil, false
	}
	return &Feedback{el: el}, true
}

func (c *Control) NewFeedback(class string) ports.Feedback {
	el := js.Global().Get("document").Call("createElement", "div")
	el.Set("className", class)
	if parent := c.el.Get("parentNode"); !parent.IsNull() {
		parent.Call("appendChild", el)
	}
	return &Feedback{el: el}
}

func (c *Control) AddEventListener(event string, handler func()) {
	listen(c.el, event, handler)
}

type Feedback struct {
	el js.Value
}

func (f *Feedback) Text() string {
	return f.el.Get("textContent").String()
}

func (f *Feedback) SetText(text string) {
	f.el.Set("textContent", text)
}

type Button struct {
	el js.Value
}

// WrapButton adapts a button element handed over from page scripts.
func WrapButton(el js.Value) *Button {
	return &Button{el: el}
}

func (b *Button) Disabled() bool {
	return b.el.Get("disabled").Bool()
}

func (b *Button) SetDisabled(disabled bool) {
	b.el.Set("disabled", disabled)
}

func (b *Button) Text() string {
	return b.el.Get("textContent").String()
}

func (b *Button) SetText(text string) {
	b.el.Set("textContent", text)
}

func (b *Button) SetHTML(html string) {
	b.el.Set("innerHTML", html)
}
