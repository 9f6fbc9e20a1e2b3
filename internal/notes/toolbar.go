package notes

// Toolbar is the editor's active format toggle and highlight color.
type Toolbar struct {
	Active Format         `json:"active"`
	Color  HighlightColor `json:"color"`
}

func NewToolbar() Toolbar {
	return Toolbar{Active: FormatNone, Color: ColorYellow}
}

// Toggle makes f the active format, or turns formatting off when f is
// already active.
func (t *Toolbar) Toggle(f Format) Format {
	if f == t.Active {
		t.Active = FormatNone
	} else {
		t.Active = f
	}
	return t.Active
}
