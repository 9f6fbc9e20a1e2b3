package notes

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

var editorPolicy = newEditorPolicy()

func newEditorPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("strong", "b", "em", "i", "u", "mark", "span", "br", "div", "p")
	p.AllowAttrs("class").
		Matching(regexp.MustCompile(`^(yellow|pink|green|blue|purple)$`)).
		OnElements("mark")
	return p
}

// Sanitize drops everything the editor cannot produce: scripts, styles,
// links, event handlers and unknown highlight classes.
func Sanitize(doc string) string {
	if doc == "" {
		return ""
	}
	return editorPolicy.Sanitize(doc)
}
