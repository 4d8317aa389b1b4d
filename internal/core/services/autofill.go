package services

import (
	"net/url"
	"strings"

	log "github.com/sirupsen/logrus"

	ports "car-price-assistant/internal/core/ports/output"
)

// AutoFill copies query parameters into the form controls of the same name.
type AutoFill struct {
	fields []string
}

func NewAutoFill(fields []string) *AutoFill {
	f := make([]string, len(fields))
	copy(f, fields)
	return &AutoFill{fields: f}
}

// Apply fills controls from the document's query string and returns the
// names of the controls it wrote. Absent parameters leave controls untouched.
func (a *AutoFill) Apply(doc ports.Document) []string {
	params := parseSearch(doc.Search())

	var filled []string
	for _, name := range a.fields {
		value, ok := params[name]
		if !ok {
			continue
		}
		control, ok := doc.ControlByName(name)
		if !ok {
			continue
		}
		control.SetValue(value)
		filled = append(filled, name)
	}

	if len(filled) > 0 {
		log.WithField("fields", filled).Debug("auto-fill applied")
	}
	return filled
}

// parseSearch splits a query string into its first value per key.
// No pair is ever rejected: ';' is ordinary text and bad escapes are kept as written.
func parseSearch(search string) map[string]string {
	params := map[string]string{}
	for _, pair := range strings.Split(strings.TrimPrefix(search, "?"), "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		key = decodeComponent(key)
		if _, seen := params[key]; seen {
			continue
		}
		params[key] = decodeComponent(value)
	}
	return params
}

func decodeComponent(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return strings.ReplaceAll(s, "+", " ")
	}
	return decoded
}
