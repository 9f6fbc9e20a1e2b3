package notes

import (
	"errors"
	"fmt"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	ErrEmptySelection      = errors.New("selection is empty")
	ErrSelectionOutOfRange = errors.New("selection out of range")
	ErrUnknownFormat       = errors.New("unknown format")
	ErrUnknownColor        = errors.New("unknown highlight color")
)

type Format string

const (
	FormatNone      Format = "none"
	FormatBold      Format = "bold"
	FormatItalic    Format = "italic"
	FormatUnderline Format = "underline"
	FormatHighlight Format = "highlight"
)

func ParseFormat(raw string) (Format, error) {
	switch f := Format(raw); f {
	case FormatNone, FormatBold, FormatItalic, FormatUnderline, FormatHighlight:
		return f, nil
	case "":
		return FormatNone, nil
	default:
		return FormatNone, fmt.Errorf("%w: %q", ErrUnknownFormat, raw)
	}
}

type HighlightColor string

const (
	ColorYellow HighlightColor = "yellow"
	ColorPink   HighlightColor = "pink"
	ColorGreen  HighlightColor = "green"
	ColorBlue   HighlightColor = "blue"
	ColorPurple HighlightColor = "purple"
)

// Colors lists the highlight palette in toolbar order.
var Colors = []HighlightColor{ColorYellow, ColorPink, ColorGreen, ColorBlue, ColorPurple}

// Hex is the swatch color used on screen and in printed exports.
func (c HighlightColor) Hex() string {
	switch c {
	case ColorPink:
		return "#f8bbd0"
	case ColorGreen:
		return "#c8e6c9"
	case ColorBlue:
		return "#bbdefb"
	case ColorPurple:
		return "#e1bee7"
	default:
		return "#fff9c4"
	}
}

func ParseHighlightColor(raw string) (HighlightColor, error) {
	if raw == "" {
		return ColorYellow, nil
	}
	for _, c := range Colors {
		if string(c) == raw {
			return c, nil
		}
	}
	return ColorYellow, fmt.Errorf("%w: %q", ErrUnknownColor, raw)
}

// Selection is a half-open span of rune offsets into the note's plain text.
type Selection struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (s Selection) Collapsed() bool { return s.Start == s.End }

// Result is the outcome of a markup transformation. Caret is the collapsed
// selection after the edit: just past the inserted content.
type Result struct {
	HTML      string `json:"html"`
	PlainText string `json:"plain_text"`
	Caret     int    `json:"caret"`
	Changed   bool   `json:"changed"`
}

func formatElement(f Format, color HighlightColor) (*html.Node, error) {
	el := &html.Node{Type: html.ElementNode}
	switch f {
	case FormatBold:
		el.Data, el.DataAtom = "strong", atom.Strong
	case FormatItalic:
		el.Data, el.DataAtom = "em", atom.Em
	case FormatUnderline:
		el.Data, el.DataAtom = "u", atom.U
	case FormatHighlight:
		el.Data, el.DataAtom = "mark", atom.Mark
		el.Attr = []html.Attribute{{Key: "class", Val: string(color)}}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	return el, nil
}

func checkSelection(sel Selection, total int) error {
	switch {
	case sel.Start < 0 || sel.End < 0 || sel.Start > total || sel.End > total:
		return fmt.Errorf("%w: [%d,%d) of %d", ErrSelectionOutOfRange, sel.Start, sel.End, total)
	case sel.Collapsed():
		return ErrEmptySelection
	case sel.Start > sel.End:
		return fmt.Errorf("%w: start after end", ErrSelectionOutOfRange)
	}
	return nil
}

// isolate splits the text nodes overlapping sel so that the selected part of
// each one is its own node, and returns those nodes in document order.
func isolate(runs []textRun, sel Selection) []*html.Node {
	var selected []*html.Node
	for _, run := range runs {
		if run.end <= sel.Start || run.start >= sel.End {
			continue
		}
		text := []rune(run.node.Data)
		from := max(run.start, sel.Start) - run.start
		to := min(run.end, sel.End) - run.start

		node := run.node
		parent := node.Parent
		if from > 0 {
			parent.InsertBefore(&html.Node{Type: html.TextNode, Data: string(text[:from])}, node)
		}
		if to < len(text) {
			after := &html.Node{Type: html.TextNode, Data: string(text[to:])}
			if node.NextSibling != nil {
				parent.InsertBefore(after, node.NextSibling)
			} else {
				parent.AppendChild(after)
			}
		}
		node.Data = string(text[from:to])
		selected = append(selected, node)
	}
	return selected
}

// ApplyFormat wraps the selected text in the markup for f. Selections that
// cross element boundaries get one wrapper per text node so the result is
// always well formed.
func ApplyFormat(doc string, sel Selection, f Format, color HighlightColor) (Result, error) {
	if f == FormatNone {
		return Result{HTML: doc, PlainText: PlainText(doc), Caret: sel.End}, nil
	}
	if _, err := formatElement(f, color); err != nil {
		return Result{}, err
	}
	if f == FormatHighlight && color == "" {
		color = ColorYellow
	}
	root, err := parseFragment(doc)
	if err != nil {
		return Result{}, fmt.Errorf("parse note html: %w", err)
	}
	v := scan(root)
	if err := checkSelection(sel, v.pos); err != nil {
		return Result{}, err
	}

	selected := isolate(v.runs, sel)
	if len(selected) == 0 {
		return Result{}, ErrEmptySelection
	}
	for _, node := range selected {
		el, _ := formatElement(f, color)
		node.Parent.InsertBefore(el, node)
		node.Parent.RemoveChild(node)
		el.AppendChild(node)
	}

	out, err := renderFragment(root)
	if err != nil {
		return Result{}, fmt.Errorf("render note html: %w", err)
	}
	return Result{HTML: out, PlainText: PlainText(out), Caret: sel.End, Changed: true}, nil
}

func isInlineFormat(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	switch n.DataAtom {
	case atom.Strong, atom.B, atom.Em, atom.I, atom.U, atom.Mark, atom.Span, atom.Font:
		return true
	}
	return false
}

// hoist lifts node out of every inline formatting ancestor, splitting each
// ancestor into the parts before and after node.
func hoist(node *html.Node) {
	for p := node.Parent; isInlineFormat(p); p = node.Parent {
		grand := p.Parent
		left := &html.Node{Type: html.ElementNode, Data: p.Data, DataAtom: p.DataAtom, Attr: append([]html.Attribute(nil), p.Attr...)}
		right := &html.Node{Type: html.ElementNode, Data: p.Data, DataAtom: p.DataAtom, Attr: append([]html.Attribute(nil), p.Attr...)}

		for c := p.FirstChild; c != node; c = p.FirstChild {
			p.RemoveChild(c)
			left.AppendChild(c)
		}
		for c := node.NextSibling; c != nil; c = node.NextSibling {
			p.RemoveChild(c)
			right.AppendChild(c)
		}
		p.RemoveChild(node)

		if left.FirstChild != nil {
			grand.InsertBefore(left, p)
		}
		grand.InsertBefore(node, p)
		if right.FirstChild != nil {
			grand.InsertBefore(right, p)
		}
		grand.RemoveChild(p)
	}
}

// RemoveFormatting replaces the selected rich content with plain text,
// keeping only what is visible.
func RemoveFormatting(doc string, sel Selection) (Result, error) {
	root, err := parseFragment(doc)
	if err != nil {
		return Result{}, fmt.Errorf("parse note html: %w", err)
	}
	v := scan(root)
	if err := checkSelection(sel, v.pos); err != nil {
		return Result{}, err
	}
	selected := isolate(v.runs, sel)
	if len(selected) == 0 {
		return Result{}, ErrEmptySelection
	}
	for _, node := range selected {
		hoist(node)
	}
	// Selected runs that ended up side by side collapse into one node.
	for i := 1; i < len(selected); i++ {
		prev, cur := selected[i-1], selected[i]
		if prev.Parent != nil && prev.NextSibling == cur {
			prev.Data += cur.Data
			cur.Parent.RemoveChild(cur)
			selected[i] = prev
		}
	}

	out, err := renderFragment(root)
	if err != nil {
		return Result{}, fmt.Errorf("render note html: %w", err)
	}
	return Result{HTML: out, PlainText: PlainText(out), Caret: sel.End, Changed: out != doc}, nil
}
