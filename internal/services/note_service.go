package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yungbote/startpage-backend/internal/domain"
	"github.com/yungbote/startpage-backend/internal/notes"
	"github.com/yungbote/startpage-backend/internal/observability"
	"github.com/yungbote/startpage-backend/internal/platform/apierr"
	"github.com/yungbote/startpage-backend/internal/platform/logger"
)

type FormatRequest struct {
	Start  int
	End    int
	Format string // empty applies the toolbar's active format
	Color  string
}

type UndoResult struct {
	Changed bool        `json:"changed"`
	Message string      `json:"message,omitempty"`
	State   notes.State `json:"state"`
}

type NoteService interface {
	State(ctx context.Context) notes.State
	Edit(ctx context.Context, html string) notes.State
	Format(ctx context.Context, req FormatRequest) (notes.State, error)
	ClearFormatting(ctx context.Context, start, end int) (notes.State, error)
	UpdateToolbar(ctx context.Context, format, color *string) (notes.Toolbar, error)
	Undo(ctx context.Context) (UndoResult, error)
	Columns(ctx context.Context) domain.ColumnCount
	SetColumns(ctx context.Context, raw string) (domain.ColumnCount, error)
	Note(ctx context.Context) domain.Note
}

type noteService struct {
	log    *logger.Logger
	editor *notes.Editor
}

// NewNoteService loads the stored note into a fresh editor.
func NewNoteService(ctx context.Context, store notes.Store, historyLimit int, baseLog *logger.Logger) (NoteService, error) {
	log := baseLog.With("service", "NoteService")
	ed := notes.NewEditor(store, historyLimit, baseLog)
	if err := ed.Load(ctx); err != nil {
		return nil, fmt.Errorf("load notes: %w", err)
	}
	return &noteService{log: log, editor: ed}, nil
}

func (s *noteService) State(ctx context.Context) notes.State {
	return s.editor.State()
}

func (s *noteService) Note(ctx context.Context) domain.Note {
	return s.editor.Note()
}

func (s *noteService) Edit(ctx context.Context, html string) notes.State {
	observability.Current().IncNoteOp("edit", nil)
	return s.editor.Edit(ctx, html)
}

func (s *noteService) Format(ctx context.Context, req FormatRequest) (notes.State, error) {
	sel := notes.Selection{Start: req.Start, End: req.End}
	if req.Format == "" {
		st, err := s.editor.ApplySelection(ctx, sel)
		return st, mapNotesErr(err)
	}
	f, err := notes.ParseFormat(req.Format)
	if err != nil {
		return notes.State{}, mapNotesErr(err)
	}
	c, err := notes.ParseHighlightColor(req.Color)
	if err != nil {
		return notes.State{}, mapNotesErr(err)
	}
	st, err := s.editor.Format(ctx, sel, f, c)
	observability.Current().IncNoteOp("format", err)
	return st, mapNotesErr(err)
}

func (s *noteService) ClearFormatting(ctx context.Context, start, end int) (notes.State, error) {
	st, err := s.editor.RemoveFormatting(ctx, notes.Selection{Start: start, End: end})
	observability.Current().IncNoteOp("clear_formatting", err)
	return st, mapNotesErr(err)
}

// UpdateToolbar toggles format when given and sets the highlight color when
// given. The color is validated before anything changes.
func (s *noteService) UpdateToolbar(ctx context.Context, format, color *string) (notes.Toolbar, error) {
	var (
		f   notes.Format
		c   notes.HighlightColor
		err error
	)
	if format != nil {
		if f, err = notes.ParseFormat(*format); err != nil {
			return notes.Toolbar{}, mapNotesErr(err)
		}
	}
	if color != nil {
		if c, err = notes.ParseHighlightColor(*color); err != nil {
			return notes.Toolbar{}, mapNotesErr(err)
		}
	}

	tb := s.editor.State().Toolbar
	if format != nil {
		tb = s.editor.ToggleFormat(f)
	}
	if color != nil {
		tb = s.editor.SetHighlightColor(c)
	}
	return tb, nil
}

func (s *noteService) Undo(ctx context.Context) (UndoResult, error) {
	st, err := s.editor.Undo(ctx)
	observability.Current().IncNoteOp("undo", err)
	switch {
	case errors.Is(err, notes.ErrNothingToUndo):
		return UndoResult{Changed: false, Message: err.Error(), State: st}, nil
	case err != nil:
		return UndoResult{}, err
	}
	return UndoResult{Changed: true, State: st}, nil
}

func (s *noteService) Columns(ctx context.Context) domain.ColumnCount {
	return s.editor.Columns()
}

func (s *noteService) SetColumns(ctx context.Context, raw string) (domain.ColumnCount, error) {
	c := domain.ColumnCount(raw)
	if err := s.editor.SetColumns(ctx, c); err != nil {
		return s.editor.Columns(), apierr.BadRequest("invalid_columns", err)
	}
	s.log.Debug("Column layout changed", "columns", string(c))
	return c, nil
}

func mapNotesErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, notes.ErrEmptySelection):
		return apierr.Unprocessable("empty_selection", err)
	case errors.Is(err, notes.ErrSelectionOutOfRange):
		return apierr.BadRequest("selection_out_of_range", err)
	case errors.Is(err, notes.ErrUnknownFormat):
		return apierr.BadRequest("unknown_format", err)
	case errors.Is(err, notes.ErrUnknownColor):
		return apierr.BadRequest("unknown_color", err)
	}
	return err
}
