package notes

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// textRun is one text node and where its runes sit in the visible text.
type textRun struct {
	node  *html.Node
	start int
	end   int
}

// visibleText walks a fragment and produces the text a reader sees, the
// same way PlainText does, remembering each text node's rune span so
// selections can be mapped back onto the tree.
type visibleText struct {
	b    strings.Builder
	pos  int
	last rune
	runs []textRun
	// pending is set after a block closes; the next content starts a new line.
	pending bool
}

func (v *visibleText) newline() {
	v.b.WriteByte('\n')
	v.pos++
	v.last = '\n'
}

func (v *visibleText) lineBreak() {
	v.pending = false
	if v.pos > 0 && v.last != '\n' {
		v.newline()
	}
}

func (v *visibleText) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		r := []rune(n.Data)
		if len(r) == 0 {
			return
		}
		if v.pending {
			v.lineBreak()
		}
		v.runs = append(v.runs, textRun{node: n, start: v.pos, end: v.pos + len(r)})
		v.b.WriteString(n.Data)
		v.pos += len(r)
		v.last = r[len(r)-1]
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Br:
			if v.pending {
				v.lineBreak()
			}
			v.newline()
			return
		case atom.Script, atom.Style:
			return
		}
		block := isBlock(n)
		if block {
			v.lineBreak()
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			v.walk(c)
		}
		if block {
			v.pending = true
		}
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			v.walk(c)
		}
	}
}

func isBlock(n *html.Node) bool {
	switch n.DataAtom {
	case atom.Div, atom.P, atom.Li, atom.Ul, atom.Ol, atom.Blockquote, atom.Pre,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return true
	}
	return false
}

func scan(root *html.Node) *visibleText {
	v := &visibleText{}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		v.walk(c)
	}
	return v
}

// parseFragment parses editor HTML as the children of a <body>.
func parseFragment(doc string) (*html.Node, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(doc), body)
	if err != nil {
		return nil, err
	}
	root := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return root, nil
}

func renderFragment(root *html.Node) (string, error) {
	var b strings.Builder
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

// PlainText strips markup from editor HTML. <br> and block elements become
// line breaks.
func PlainText(doc string) string {
	if doc == "" {
		return ""
	}
	root, err := parseFragment(doc)
	if err != nil {
		return ""
	}
	return scan(root).b.String()
}

// TextToHTML turns plain text into editor HTML, escaping it and turning
// newlines into <br>.
func TextToHTML(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = html.EscapeString(line)
	}
	return strings.Join(lines, "<br/>")
}
