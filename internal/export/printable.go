package export

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yungbote/startpage-backend/internal/domain"
	"github.com/yungbote/startpage-backend/internal/notes"
)

var printableTmpl = template.Must(template.New("printable").Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <title>{{.Title}}</title>
    <style>
      body { font-family: Arial, sans-serif; line-height: 1.6; margin: 40px; white-space: pre-wrap; }
      h1 { color: #333; margin-bottom: 20px; }
      .notes-content {
        border: 1px solid #ddd; padding: 20px; background-color: #f9f9f9; border-radius: 5px;
        {{- if gt .Columns 1}}
        column-count: {{.Columns}}; column-gap: 40px; column-rule: 1px solid #ddd;
        {{- end}}
      }
      mark { display: inline-block; border-radius: 2px; padding: 0 2px; color: #000; }
      {{- range .Colors}}
      mark.{{.Name}} { background-color: {{.Hex}}; }
      {{- end}}
      strong { font-weight: bold; }
      em { font-style: italic; }
      u { text-decoration: underline; }
      @media print {
        body, mark { -webkit-print-color-adjust: exact; print-color-adjust: exact; color-adjust: exact; }
      }
    </style>
  </head>
  <body>
    <h1>{{.Title}}</h1>
    <div class="notes-content" id="notes-content">{{.Body}}</div>
  </body>
</html>
`))

type colorRule struct {
	Name string
	Hex  template.CSS
}

type printableView struct {
	Title   string
	Columns int
	Colors  []colorRule
	Body    template.HTML
}

// Printable renders the note as a standalone page ready for the browser's
// print to PDF. The note markup is sanitized before it is trusted.
func Printable(doc string, columns domain.ColumnCount) (string, error) {
	if !columns.Valid() {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidColumnCount, columns)
	}
	view := printableView{
		Title:   "My Notes",
		Columns: columns.Int(),
		Body:    template.HTML(notes.Sanitize(doc)),
	}
	for _, c := range notes.Colors {
		view.Colors = append(view.Colors, colorRule{Name: string(c), Hex: template.CSS(c.Hex())})
	}

	var buf bytes.Buffer
	if err := printableTmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render printable notes: %w", err)
	}
	return buf.String(), nil
}
