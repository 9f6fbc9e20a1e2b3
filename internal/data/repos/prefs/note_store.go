// Package prefs is the single access point for the notes storage keys.
package prefs

import (
	"context"
	"fmt"

	"github.com/yungbote/startpage-backend/internal/data/kv"
	"github.com/yungbote/startpage-backend/internal/domain"
	"github.com/yungbote/startpage-backend/internal/platform/logger"
)

const (
	KeyNotes          = "quicklinks-notes"
	KeyFormattedNotes = "quicklinks-formatted-notes"
	KeyColumns        = "quicklinks-notes-columns"
)

type NoteStore interface {
	GetNotes(ctx context.Context) (string, error)
	SetNotes(ctx context.Context, plain string) error
	GetFormattedNotes(ctx context.Context) (string, error)
	SetFormattedNotes(ctx context.Context, html string) error
	GetColumnCount(ctx context.Context) (domain.ColumnCount, error)
	SetColumnCount(ctx context.Context, c domain.ColumnCount) error

	LoadNote(ctx context.Context) (domain.Note, error)
	SaveNote(ctx context.Context, note domain.Note) error
}

type noteStore struct {
	kv  kv.Store
	log *logger.Logger
}

func NewNoteStore(store kv.Store, baseLog *logger.Logger) NoteStore {
	return &noteStore{kv: store, log: baseLog.With("repo", "NoteStore")}
}

func (s *noteStore) getString(ctx context.Context, key string) (string, error) {
	v, _, err := s.kv.Get(ctx, key)
	if err != nil {
		return "", err
	}
	return v, nil
}

func (s *noteStore) GetNotes(ctx context.Context) (string, error) {
	return s.getString(ctx, KeyNotes)
}

func (s *noteStore) SetNotes(ctx context.Context, plain string) error {
	return s.kv.Set(ctx, KeyNotes, plain)
}

func (s *noteStore) GetFormattedNotes(ctx context.Context) (string, error) {
	return s.getString(ctx, KeyFormattedNotes)
}

func (s *noteStore) SetFormattedNotes(ctx context.Context, html string) error {
	return s.kv.Set(ctx, KeyFormattedNotes, html)
}

func (s *noteStore) GetColumnCount(ctx context.Context) (domain.ColumnCount, error) {
	raw, err := s.getString(ctx, KeyColumns)
	if err != nil {
		return domain.OneColumn, err
	}
	return domain.ParseColumnCount(raw), nil
}

func (s *noteStore) SetColumnCount(ctx context.Context, c domain.ColumnCount) error {
	if !c.Valid() {
		return fmt.Errorf("invalid column count %q", c)
	}
	return s.kv.Set(ctx, KeyColumns, string(c))
}

func (s *noteStore) LoadNote(ctx context.Context) (domain.Note, error) {
	plain, err := s.GetNotes(ctx)
	if err != nil {
		return domain.Note{}, fmt.Errorf("load notes: %w", err)
	}
	formatted, err := s.GetFormattedNotes(ctx)
	if err != nil {
		return domain.Note{}, fmt.Errorf("load formatted notes: %w", err)
	}
	return domain.Note{PlainText: plain, FormattedHTML: formatted}, nil
}

// SaveNote writes both representations, attempting the second even when
// the first fails so a partial write loses as little as possible.
func (s *noteStore) SaveNote(ctx context.Context, note domain.Note) error {
	errPlain := s.SetNotes(ctx, note.PlainText)
	errHTML := s.SetFormattedNotes(ctx, note.FormattedHTML)
	switch {
	case errPlain != nil:
		return fmt.Errorf("save notes: %w", errPlain)
	case errHTML != nil:
		return fmt.Errorf("save formatted notes: %w", errHTML)
	}
	return nil
}
