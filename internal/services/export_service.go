package services

import (
	"context"

	"github.com/yungbote/startpage-backend/internal/export"
	"github.com/yungbote/startpage-backend/internal/platform/logger"
)

type ExportService interface {
	PrintableNotes(ctx context.Context) (string, error)
}

type exportService struct {
	log   *logger.Logger
	notes NoteService
}

func NewExportService(baseLog *logger.Logger, notes NoteService) ExportService {
	return &exportService{log: baseLog.With("service", "ExportService"), notes: notes}
}

func (s *exportService) PrintableNotes(ctx context.Context) (string, error) {
	page, err := export.Printable(s.notes.Note(ctx).FormattedHTML, s.notes.Columns(ctx))
	if err != nil {
		s.log.Error("Printable export failed", "error", err)
		return "", err
	}
	return page, nil
}
