package prefs

import (
	"context"
	"errors"
	"testing"

	"github.com/yungbote/startpage-backend/internal/data/kv"
	"github.com/yungbote/startpage-backend/internal/data/repos/testutil"
	"github.com/yungbote/startpage-backend/internal/domain"
)

func TestNoteStoreRoundTripOverGorm(t *testing.T) {
	ctx := context.Background()
	store := NewNoteStore(kv.NewGormStore(testutil.DB(t), testutil.Logger(t)), testutil.Logger(t))

	empty, err := store.LoadNote(ctx)
	if err != nil {
		t.Fatalf("LoadNote empty: %v", err)
	}
	if empty.PlainText != "" || empty.FormattedHTML != "" {
		t.Fatalf("expected empty note, got %+v", empty)
	}

	note := domain.Note{PlainText: "hello world", FormattedHTML: "hello <strong>world</strong>"}
	if err := store.SaveNote(ctx, note); err != nil {
		t.Fatalf("SaveNote: %v", err)
	}
	got, err := store.LoadNote(ctx)
	if err != nil {
		t.Fatalf("LoadNote: %v", err)
	}
	if got != note {
		t.Fatalf("round trip mismatch: got=%+v want=%+v", got, note)
	}
}

func TestNoteStoreColumns(t *testing.T) {
	ctx := context.Background()
	backing := kv.NewMemoryStore()
	store := NewNoteStore(backing, testutil.Logger(t))

	if c, err := store.GetColumnCount(ctx); err != nil || c != domain.OneColumn {
		t.Fatalf("default columns: c=%q err=%v", c, err)
	}
	if err := store.SetColumnCount(ctx, domain.ThreeColumns); err != nil {
		t.Fatalf("SetColumnCount: %v", err)
	}
	if c, _ := store.GetColumnCount(ctx); c != domain.ThreeColumns {
		t.Fatalf("columns: got=%q", c)
	}
	if err := store.SetColumnCount(ctx, domain.ColumnCount("7")); err == nil {
		t.Fatalf("expected invalid column count error")
	}

	// A value written by something else is read back as the default.
	_ = backing.Set(ctx, KeyColumns, "9")
	if c, _ := store.GetColumnCount(ctx); c != domain.OneColumn {
		t.Fatalf("invalid stored columns: got=%q", c)
	}
}

type failingStore struct{ kv.Store }

func (failingStore) Set(context.Context, string, string) error { return errors.New("disk full") }

func TestSaveNoteReportsWriteFailure(t *testing.T) {
	store := NewNoteStore(failingStore{kv.NewMemoryStore()}, testutil.Logger(t))
	if err := store.SaveNote(context.Background(), domain.Note{PlainText: "x"}); err == nil {
		t.Fatalf("expected save error")
	}
}
