package app

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/startpage-backend/internal/data/repos/prefs"
	"github.com/yungbote/startpage-backend/internal/data/repos/study"
	"github.com/yungbote/startpage-backend/internal/flashcards"
	"github.com/yungbote/startpage-backend/internal/platform/logger"
	"github.com/yungbote/startpage-backend/internal/services"
)

type Repos struct {
	Notes          prefs.NoteStore
	ReviewAttempts study.ReviewAttemptRepo
}

func wireRepos(theDB *gorm.DB, storage Storage, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Notes:          prefs.NewNoteStore(storage.KV, log),
		ReviewAttempts: study.NewReviewAttemptRepo(theDB, log),
	}
}

type Services struct {
	Notes      services.NoteService
	FlashCards services.FlashCardService
	Export     services.ExportService
}

func wireServices(ctx context.Context, log *logger.Logger, cfg Config, repos Repos, clients Clients) (Services, error) {
	log.Info("Wiring services...")
	notes, err := services.NewNoteService(ctx, repos.Notes, cfg.HistoryLimit, log)
	if err != nil {
		return Services{}, fmt.Errorf("init note service: %w", err)
	}

	var textGen flashcards.TextGenerator
	if clients.OpenAI != nil {
		textGen = clients.OpenAI
	}
	gen := flashcards.NewGenerator(flashcards.LoadConfig(log), nil)
	cards := services.NewFlashCardService(
		log,
		notes,
		gen,
		flashcards.NewAIGenerator(textGen, log),
		repos.ReviewAttempts,
		cfg.SessionTTL,
	)

	return Services{
		Notes:      notes,
		FlashCards: cards,
		Export:     services.NewExportService(log, notes),
	}, nil
}
