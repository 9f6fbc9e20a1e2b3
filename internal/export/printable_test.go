package export

import (
	"errors"
	"strings"
	"testing"

	"github.com/yungbote/startpage-backend/internal/domain"
)

func TestPrintableSingleColumn(t *testing.T) {
	out, err := Printable(`Hello <mark class="pink">world</mark><script>alert(1)</script>`, domain.OneColumn)
	if err != nil {
		t.Fatalf("Printable: %v", err)
	}
	if !strings.Contains(out, `Hello <mark class="pink">world</mark>`) {
		t.Fatalf("note body missing:\n%s", out)
	}
	if strings.Contains(out, "alert(1)") {
		t.Fatalf("script survived sanitizing")
	}
	if strings.Contains(out, "column-count") {
		t.Fatalf("single column page should not set column-count")
	}
	if !strings.Contains(out, "mark.pink { background-color: #f8bbd0; }") {
		t.Fatalf("highlight palette missing:\n%s", out)
	}
	if !strings.Contains(out, "<title>My Notes</title>") {
		t.Fatalf("title missing")
	}
}

func TestPrintableColumns(t *testing.T) {
	out, err := Printable("a<br/>b", domain.ThreeColumns)
	if err != nil {
		t.Fatalf("Printable: %v", err)
	}
	if !strings.Contains(out, "column-count: 3;") {
		t.Fatalf("column layout missing:\n%s", out)
	}
}

func TestPrintableRejectsBadColumns(t *testing.T) {
	if _, err := Printable("x", domain.ColumnCount("5")); !errors.Is(err, domain.ErrInvalidColumnCount) {
		t.Fatalf("expected ErrInvalidColumnCount, got %v", err)
	}
}
