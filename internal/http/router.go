package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/startpage-backend/internal/http/handlers"
	httpMW "github.com/yungbote/startpage-backend/internal/http/middleware"
	"github.com/yungbote/startpage-backend/internal/observability"
	"github.com/yungbote/startpage-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	ServiceName string
	CORSOrigins []string
	Metrics     *observability.Metrics

	NotesHandler     *httpH.NotesHandler
	FlashCardHandler *httpH.FlashCardHandler
	HealthHandler    *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	log := cfg.Log
	if log == nil {
		log = logger.Nop()
	}
	service := cfg.ServiceName
	if service == "" {
		service = "startpage"
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(service))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapF(cfg.Metrics.WriteHTTP))
	}

	api := r.Group("/api")
	{
		// Notes
		if cfg.NotesHandler != nil {
			api.GET("/notes", cfg.NotesHandler.GetNotes)
			api.PUT("/notes", cfg.NotesHandler.EditNotes)
			api.POST("/notes/format", cfg.NotesHandler.ApplyFormat)
			api.POST("/notes/format/clear", cfg.NotesHandler.ClearFormat)
			api.POST("/notes/toolbar", cfg.NotesHandler.UpdateToolbar)
			api.POST("/notes/undo", cfg.NotesHandler.Undo)
			api.GET("/notes/columns", cfg.NotesHandler.GetColumns)
			api.PUT("/notes/columns", cfg.NotesHandler.SetColumns)
			api.GET("/notes/export", cfg.NotesHandler.Export)
		}

		// Flash cards
		if cfg.FlashCardHandler != nil {
			api.POST("/flashcards/sessions", cfg.FlashCardHandler.StartSession)
			api.GET("/flashcards/sessions/:id", cfg.FlashCardHandler.GetSession)
			api.POST("/flashcards/sessions/:id/next", cfg.FlashCardHandler.Next)
			api.POST("/flashcards/sessions/:id/previous", cfg.FlashCardHandler.Previous)
			api.POST("/flashcards/sessions/:id/flip", cfg.FlashCardHandler.Flip)
			api.POST("/flashcards/sessions/:id/answer", cfg.FlashCardHandler.Answer)
			api.GET("/flashcards/sessions/:id/attempts", cfg.FlashCardHandler.ListAttempts)
			api.DELETE("/flashcards/sessions/:id", cfg.FlashCardHandler.CloseSession)
		}
	}

	return r
}
