package memdom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Button is an in-memory <button>.
type Button struct {
	typ      string
	text     string
	html     string
	disabled bool
}

func (b *Button) Disabled() bool {
	return b.disabled
}

func (b *Button) SetDisabled(d bool) {
	b.disabled = d
}

func (b *Button) Text() string {
	return b.text
}

func (b *Button) HTML() string {
	return b.html
}

func (b *Button) SetText(text string) {
	b.text = text
	b.html = html.EscapeString(text)
}

// SetHTML replaces the button content; Text then reports its text content.
func (b *Button) SetHTML(markup string) {
	b.html = markup
	b.text = textContent(markup)
}

func textContent(markup string) string {
	nodes, err := html.ParseFragment(strings.NewReader(markup), &html.Node{
		Type:     html.ElementNode,
		Data:     "button",
		DataAtom: atom.Button,
	})
	if err != nil {
		return markup
	}

	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return sb.String()
}
