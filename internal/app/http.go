package app

import (
	"github.com/yungbote/startpage-backend/internal/http"
	httpH "github.com/yungbote/startpage-backend/internal/http/handlers"
	"github.com/yungbote/startpage-backend/internal/observability"
	"github.com/yungbote/startpage-backend/internal/platform/logger"
)

type Handlers struct {
	Health     *httpH.HealthHandler
	Notes      *httpH.NotesHandler
	FlashCards *httpH.FlashCardHandler
}

func wireHandlers(log *logger.Logger, services Services, storage Storage) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:     httpH.NewHealthHandler(storage.Checks),
		Notes:      httpH.NewNotesHandler(services.Notes, services.Export),
		FlashCards: httpH.NewFlashCardHandler(services.FlashCards),
	}
}

func wireServer(log *logger.Logger, cfg Config, handlers Handlers, metrics *observability.Metrics) *http.Server {
	return http.NewServer(http.RouterConfig{
		Log:              log,
		ServiceName:      serviceName,
		CORSOrigins:      cfg.CORSOrigins,
		Metrics:          metrics,
		HealthHandler:    handlers.Health,
		NotesHandler:     handlers.Notes,
		FlashCardHandler: handlers.FlashCards,
	})
}
