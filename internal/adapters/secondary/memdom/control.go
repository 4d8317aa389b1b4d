package memdom

import (
	"slices"

	ports "car-price-assistant/internal/core/ports/output"
)

// Control is an in-memory <input> or <select>. Its container models the
// parent element that feedback siblings are appended to.
type Control struct {
	name      string
	typ       string
	value     string
	title     string
	classes   []string
	container *Container
	listeners listeners
}

func newControl(name, typ, value string) *Control {
	return &Control{
		name:      name,
		typ:       typ,
		value:     value,
		container: &Container{},
		listeners: listeners{},
	}
}

func (c *Control) Name() string {
	return c.name
}

func (c *Control) Type() string {
	return c.typ
}

func (c *Control) Value() string {
	return c.value
}

func (c *Control) SetValue(v string) {
	c.value = v
}

func (c *Control) Title() string {
	return c.title
}

func (c *Control) SetTitle(t string) {
	c.title = t
}

func (c *Control) Container() *Container {
	return c.container
}

func (c *Control) AddClass(class string) {
	if !c.HasClass(class) {
		c.classes = append(c.classes, class)
	}
}

func (c *Control) RemoveClass(class string) {
	c.classes = slices.DeleteFunc(c.classes, func(s string) bool { return s == class })
}

func (c *Control) HasClass(class string) bool {
	return slices.Contains(c.classes, class)
}

func (c *Control) Feedback(class string) (ports.Feedback, bool) {
	for _, el := range c.container.elements {
		if el.HasClass(class) {
			return el, true
		}
	}
	return nil, false
}

func (c *Control) NewFeedback(class string) ports.Feedback {
	return c.container.Append(class, "")
}

func (c *Control) AddEventListener(event string, handler func()) {
	c.listeners.add(event, handler)
}

// Focus dispatches a focus event.
func (c *Control) Focus() {
	c.listeners.dispatch(ports.EventFocus)
}

// Blur dispatches a blur event.
func (c *Control) Blur() {
	c.listeners.dispatch(ports.EventBlur)
}

// Input replaces the value and dispatches an input event, as typing would.
func (c *Control) Input(value string) {
	c.value = value
	c.listeners.dispatch(ports.EventInput)
}

// Container is the parent element of a control.
type Container struct {
	elements []*Element
}

// Append adds a child element carrying class and text.
func (p *Container) Append(class, text string) *Element {
	el := &Element{class: class, text: text}
	p.elements = append(p.elements, el)
	return el
}

// Elements returns the children other than the control itself.
func (p *Container) Elements() []*Element {
	return slices.Clone(p.elements)
}

// Element is a plain <div>.
type Element struct {
	class string
	text  string
}

func (e *Element) HasClass(class string) bool {
	return e.class == class
}

func (e *Element) Text() string {
	return e.text
}

func (e *Element) SetText(text string) {
	e.text = text
}
