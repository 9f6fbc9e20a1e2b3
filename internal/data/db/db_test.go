package db

import (
	"path/filepath"
	"testing"

	"github.com/yungbote/startpage-backend/internal/domain"
)

func TestOpenSQLiteAndMigrate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "startpage.db")
	theDB, err := Open(Config{Driver: DriverSQLite, SQLitePath: path}, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := AutoMigrateAll(theDB); err != nil {
		t.Fatalf("AutoMigrateAll: %v", err)
	}
	if !theDB.Migrator().HasTable(&domain.Preference{}) {
		t.Fatalf("preference table missing")
	}
	if !theDB.Migrator().HasTable(&domain.ReviewAttempt{}) {
		t.Fatalf("review_attempt table missing")
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := Open(Config{Driver: "oracle"}, nil); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}
