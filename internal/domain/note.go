package domain

import "errors"

// Note is the notes panel content. PlainText is always the markup-stripped
// form of FormattedHTML.
type Note struct {
	PlainText     string `json:"plain_text"`
	FormattedHTML string `json:"formatted_html"`
}

// ColumnCount is the notes layout preference.
type ColumnCount string

const (
	OneColumn    ColumnCount = "1"
	TwoColumns   ColumnCount = "2"
	ThreeColumns ColumnCount = "3"
)

func (c ColumnCount) Valid() bool {
	switch c {
	case OneColumn, TwoColumns, ThreeColumns:
		return true
	default:
		return false
	}
}

// Int returns the number of columns, treating invalid values as one column.
func (c ColumnCount) Int() int {
	switch c {
	case TwoColumns:
		return 2
	case ThreeColumns:
		return 3
	default:
		return 1
	}
}

// ParseColumnCount falls back to OneColumn for anything unrecognized.
func ParseColumnCount(raw string) ColumnCount {
	c := ColumnCount(raw)
	if !c.Valid() {
		return OneColumn
	}
	return c
}

var ErrInvalidColumnCount = errors.New("column count must be 1, 2 or 3")
