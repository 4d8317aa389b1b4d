package ports

// ============================================================================
// Document Object Model
// ============================================================================

// DOM event names bound by the assistant.
const (
	EventBlur   = "blur"
	EventInput  = "input"
	EventFocus  = "focus"
	EventSubmit = "submit"
)

// Document is the page the assistant runs against
type Document interface {
	// Search returns the query string of the page location, with or without the leading "?".
	Search() string
	Forms() []Form
	// ControlByName returns the first control in the document with the given name attribute.
	ControlByName(name string) (Control, bool)
	HasElement(id string) bool
}

// Form is a <form> element
type Form interface {
	// Controls returns every input and select element inside the form, in document order.
	Controls() []Control
	// SubmitButton returns the first button[type="submit"] inside the form.
	SubmitButton() (Button, bool)
	AddEventListener(event string, handler func())
}

// Control is an <input> or <select> element
type Control interface {
	Name() string
	// Type is the input type attribute ("text", "number", ...); selects report "select".
	Type() string
	Value() string
	SetValue(value string)
	SetTitle(title string)
	AddClass(class string)
	RemoveClass(class string)
	HasClass(class string) bool
	// Feedback returns an existing sibling element carrying the class, if any.
	Feedback(class string) (Feedback, bool)
	// NewFeedback appends an element carrying the class to the control's parent.
	NewFeedback(class string) Feedback
	AddEventListener(event string, handler func())
}

// Feedback is the message element rendered next to a control
type Feedback interface {
	Text() string
	SetText(text string)
}

// Button is a submit button
type Button interface {
	Disabled() bool
	SetDisabled(disabled bool)
	Text() string
	SetText(text string)
	SetHTML(html string)
}
