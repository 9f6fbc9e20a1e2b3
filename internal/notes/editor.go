package notes

import (
	"context"
	"errors"
	"sync"

	"github.com/yungbote/startpage-backend/internal/domain"
	"github.com/yungbote/startpage-backend/internal/observability"
	"github.com/yungbote/startpage-backend/internal/platform/logger"
)

var ErrNothingToUndo = errors.New("nothing to undo")

// Store is the durable side of the editor.
type Store interface {
	LoadNote(ctx context.Context) (domain.Note, error)
	SaveNote(ctx context.Context, note domain.Note) error
	GetColumnCount(ctx context.Context) (domain.ColumnCount, error)
	SetColumnCount(ctx context.Context, c domain.ColumnCount) error
}

// State is a copy of everything a client needs to render the notes panel.
type State struct {
	Note            domain.Note        `json:"note"`
	Columns         domain.ColumnCount `json:"columns"`
	Toolbar         Toolbar            `json:"toolbar"`
	HistoryLength   int                `json:"history_length"`
	HistoryPosition int                `json:"history_position"`
	Caret           *int               `json:"caret,omitempty"`
}

// Editor owns the live note buffer and its undo history. Every committed
// change is written through to the Store; write failures are logged only.
type Editor struct {
	mu      sync.Mutex
	log     *logger.Logger
	store   Store
	note    domain.Note
	columns domain.ColumnCount
	history *HistoryStack
	toolbar Toolbar
}

func NewEditor(store Store, historyLimit int, baseLog *logger.Logger) *Editor {
	return &Editor{
		log:     baseLog.With("component", "NotesEditor"),
		store:   store,
		columns: domain.OneColumn,
		history: NewHistoryStack(historyLimit),
		toolbar: NewToolbar(),
	}
}

// Load reads the stored note and seeds the history with it. Notes saved
// before formatting existed only have plain text; they are converted.
func (e *Editor) Load(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	note, err := e.store.LoadNote(ctx)
	if err != nil {
		return err
	}
	if note.FormattedHTML == "" && note.PlainText != "" {
		note.FormattedHTML = TextToHTML(note.PlainText)
	}
	note.FormattedHTML = Sanitize(note.FormattedHTML)
	note.PlainText = PlainText(note.FormattedHTML)

	cols, err := e.store.GetColumnCount(ctx)
	if err != nil {
		e.log.Warn("Failed to load column preference", "error", err)
		cols = domain.OneColumn
	}

	e.note = note
	e.columns = cols
	e.history = NewHistoryStack(e.history.Limit())
	e.history.Record(note.FormattedHTML)
	e.log.Debug("Notes loaded", "html_length", len(note.FormattedHTML))
	return nil
}

func (e *Editor) stateLocked() State {
	return State{
		Note:            e.note,
		Columns:         e.columns,
		Toolbar:         e.toolbar,
		HistoryLength:   e.history.Len(),
		HistoryPosition: e.history.Position(),
	}
}

func (e *Editor) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stateLocked()
}

func (e *Editor) Note() domain.Note {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.note
}

// commitLocked makes doc the live note, records it for undo and persists it.
func (e *Editor) commitLocked(ctx context.Context, doc string, record bool) {
	e.note = domain.Note{PlainText: PlainText(doc), FormattedHTML: doc}
	if record {
		e.history.Record(doc)
	}
	if err := e.store.SaveNote(ctx, e.note); err != nil {
		e.log.Warn("Failed to persist notes", "error", err)
		observability.Current().IncStorageFailure("notes")
	}
}

// Edit replaces the note with freeform editor content.
func (e *Editor) Edit(ctx context.Context, doc string) State {
	e.mu.Lock()
	defer e.mu.Unlock()

	clean := Sanitize(doc)
	if clean == e.note.FormattedHTML {
		return e.stateLocked()
	}
	e.commitLocked(ctx, clean, true)
	return e.stateLocked()
}

func (e *Editor) ToggleFormat(f Format) Toolbar {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.toolbar.Toggle(f)
	return e.toolbar
}

func (e *Editor) SetHighlightColor(c HighlightColor) Toolbar {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.toolbar.Color = c
	return e.toolbar
}

// ApplySelection applies the toolbar's active format to sel. With no active
// format the note is left alone.
func (e *Editor) ApplySelection(ctx context.Context, sel Selection) (State, error) {
	e.mu.Lock()
	f, c := e.toolbar.Active, e.toolbar.Color
	e.mu.Unlock()
	return e.Format(ctx, sel, f, c)
}

// Format applies f to sel regardless of the toolbar state.
func (e *Editor) Format(ctx context.Context, sel Selection, f Format, color HighlightColor) (State, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	res, err := ApplyFormat(e.note.FormattedHTML, sel, f, color)
	if err != nil {
		return e.stateLocked(), err
	}
	if res.Changed {
		e.commitLocked(ctx, res.HTML, true)
	}
	st := e.stateLocked()
	st.Caret = &res.Caret
	return st, nil
}

func (e *Editor) RemoveFormatting(ctx context.Context, sel Selection) (State, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	res, err := RemoveFormatting(e.note.FormattedHTML, sel)
	if err != nil {
		return e.stateLocked(), err
	}
	if res.Changed {
		e.commitLocked(ctx, res.HTML, true)
	}
	st := e.stateLocked()
	st.Caret = &res.Caret
	return st, nil
}

// Undo restores the previous snapshot. It returns ErrNothingToUndo, with the
// state unchanged, when the history is at its oldest entry.
func (e *Editor) Undo(ctx context.Context) (State, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	snapshot, ok := e.history.Undo()
	if !ok {
		return e.stateLocked(), ErrNothingToUndo
	}
	e.commitLocked(ctx, snapshot, false)
	return e.stateLocked(), nil
}

func (e *Editor) Columns() domain.ColumnCount {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.columns
}

func (e *Editor) SetColumns(ctx context.Context, c domain.ColumnCount) error {
	if !c.Valid() {
		return domain.ErrInvalidColumnCount
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.columns = c
	if err := e.store.SetColumnCount(ctx, c); err != nil {
		e.log.Warn("Failed to persist column preference", "error", err)
		observability.Current().IncStorageFailure("columns")
	}
	return nil
}
