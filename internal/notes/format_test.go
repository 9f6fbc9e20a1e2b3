package notes

import (
	"errors"
	"strings"
	"testing"
)

func TestPlainText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"inline", "Hello <strong>big</strong> world", "Hello big world"},
		{"entities", "x &amp; y &lt;z&gt;", "x & y <z>"},
		{"br", "a<br>b<br/>c", "a\nb\nc"},
		{"blocks", "<div>a</div><div>b</div>", "a\nb"},
		{"leading block", "<p>a</p>b", "a\nb"},
		{"mark", `<mark class="pink">hi</mark>`, "hi"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PlainText(tc.in); got != tc.want {
				t.Fatalf("PlainText(%q): got=%q want=%q", tc.in, got, tc.want)
			}
		})
	}
}

func TestTextToHTMLRoundTrip(t *testing.T) {
	in := "line <one>\r\nline & two"
	html := TextToHTML(in)
	if strings.Contains(html, "<one>") {
		t.Fatalf("text not escaped: %q", html)
	}
	if got := PlainText(html); got != "line <one>\nline & two" {
		t.Fatalf("round trip: got=%q", got)
	}
}

func TestApplyFormatSingleNode(t *testing.T) {
	res, err := ApplyFormat("Hello world", Selection{Start: 6, End: 11}, FormatBold, "")
	if err != nil {
		t.Fatalf("ApplyFormat: %v", err)
	}
	if res.HTML != "Hello <strong>world</strong>" {
		t.Fatalf("html: got=%q", res.HTML)
	}
	if res.PlainText != "Hello world" || res.Caret != 11 || !res.Changed {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestApplyFormatAcrossElements(t *testing.T) {
	res, err := ApplyFormat("Hello <em>big</em> world", Selection{Start: 4, End: 12}, FormatUnderline, "")
	if err != nil {
		t.Fatalf("ApplyFormat: %v", err)
	}
	want := "Hell<u>o </u><em><u>big</u></em><u> wo</u>rld"
	if res.HTML != want {
		t.Fatalf("html:\n got=%q\nwant=%q", res.HTML, want)
	}
	if res.PlainText != "Hello big world" {
		t.Fatalf("visible text changed: %q", res.PlainText)
	}
}

func TestApplyFormatHighlight(t *testing.T) {
	res, err := ApplyFormat("note", Selection{Start: 0, End: 4}, FormatHighlight, ColorPink)
	if err != nil {
		t.Fatalf("ApplyFormat: %v", err)
	}
	if res.HTML != `<mark class="pink">note</mark>` {
		t.Fatalf("html: got=%q", res.HTML)
	}
	res, _ = ApplyFormat("note", Selection{Start: 0, End: 2}, FormatHighlight, "")
	if res.HTML != `<mark class="yellow">no</mark>te` {
		t.Fatalf("default color: got=%q", res.HTML)
	}
}

func TestApplyFormatRejectsBadSelections(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		sel  Selection
		want error
	}{
		{"collapsed", "abc", Selection{1, 1}, ErrEmptySelection},
		{"past end", "abc", Selection{1, 9}, ErrSelectionOutOfRange},
		{"negative", "abc", Selection{-1, 2}, ErrSelectionOutOfRange},
		{"reversed", "abc", Selection{2, 1}, ErrSelectionOutOfRange},
		{"only line break", "a<br>b", Selection{1, 2}, ErrEmptySelection},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ApplyFormat(tc.doc, tc.sel, FormatItalic, "")
			if !errors.Is(err, tc.want) {
				t.Fatalf("err: got=%v want=%v", err, tc.want)
			}
		})
	}
	if _, err := ApplyFormat("abc", Selection{0, 1}, Format("strike"), ""); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("unknown format: got=%v", err)
	}
}

func TestApplyFormatNoneLeavesDocument(t *testing.T) {
	res, err := ApplyFormat("<em>x</em>", Selection{0, 1}, FormatNone, "")
	if err != nil || res.Changed || res.HTML != "<em>x</em>" {
		t.Fatalf("none format: res=%+v err=%v", res, err)
	}
}

func TestRemoveFormatting(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		sel  Selection
		want string
	}{
		{"prefix of bold", "<strong>Hello world</strong>", Selection{0, 5}, "Hello<strong> world</strong>"},
		{"nested middle", "<strong><em>abc</em></strong>", Selection{1, 2}, "<strong><em>a</em></strong>b<strong><em>c</em></strong>"},
		{"across siblings", "<strong>ab</strong><em>cd</em>", Selection{1, 3}, "<strong>a</strong>bc<em>d</em>"},
		{"whole highlight", `x<mark class="green">yz</mark>`, Selection{1, 3}, "xyz"},
		{"plain stays plain", "plain", Selection{0, 5}, "plain"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := RemoveFormatting(tc.doc, tc.sel)
			if err != nil {
				t.Fatalf("RemoveFormatting: %v", err)
			}
			if res.HTML != tc.want {
				t.Fatalf("html:\n got=%q\nwant=%q", res.HTML, tc.want)
			}
			if res.PlainText != PlainText(tc.doc) {
				t.Fatalf("visible text changed: got=%q want=%q", res.PlainText, PlainText(tc.doc))
			}
		})
	}
}

func TestRemoveFormattingKeepsBlocks(t *testing.T) {
	res, err := RemoveFormatting("<div><b>one</b></div><div>two</div>", Selection{0, 7})
	if err != nil {
		t.Fatalf("RemoveFormatting: %v", err)
	}
	if res.HTML != "<div>one</div><div>two</div>" {
		t.Fatalf("html: got=%q", res.HTML)
	}
}

func TestSanitize(t *testing.T) {
	in := `<strong onclick="x()">ok</strong><script>alert(1)</script><mark class="yellow">y</mark><mark class="evil">z</mark><a href="http://x">link</a>`
	got := Sanitize(in)
	for _, bad := range []string{"onclick", "<script", "alert", "evil", "<a "} {
		if strings.Contains(got, bad) {
			t.Fatalf("sanitized html still contains %q: %q", bad, got)
		}
	}
	for _, good := range []string{"<strong>ok</strong>", `<mark class="yellow">y</mark>`, "link"} {
		if !strings.Contains(got, good) {
			t.Fatalf("sanitized html lost %q: %q", good, got)
		}
	}
}

func TestParseHelpers(t *testing.T) {
	if f, err := ParseFormat(""); err != nil || f != FormatNone {
		t.Fatalf("ParseFormat empty: %v %v", f, err)
	}
	if _, err := ParseFormat("blink"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("ParseFormat unknown: %v", err)
	}
	if c, err := ParseHighlightColor("blue"); err != nil || c.Hex() != "#bbdefb" {
		t.Fatalf("ParseHighlightColor: %v %v", c, err)
	}
	if _, err := ParseHighlightColor("orange"); !errors.Is(err, ErrUnknownColor) {
		t.Fatalf("ParseHighlightColor unknown: %v", err)
	}
}
