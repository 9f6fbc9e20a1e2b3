package app

import (
	"context"
	"errors"
	"fmt"
	"net"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yungbote/startpage-backend/internal/data/db"
	"github.com/yungbote/startpage-backend/internal/http"
	"github.com/yungbote/startpage-backend/internal/observability"
	"github.com/yungbote/startpage-backend/internal/platform/envutil"
	"github.com/yungbote/startpage-backend/internal/platform/logger"
)

const serviceName = "startpage"

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Cfg      Config
	Storage  Storage
	Repos    Repos
	Services Services
	Server   *http.Server

	otelShutdown func(context.Context) error
}

func New(ctx context.Context) (*App, error) {
	log, err := logger.New(envutil.String("LOG_MODE", "development"))
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	otelShutdown := observability.InitOTel(ctx, log, observability.OtelConfig{
		ServiceName: serviceName,
		Environment: cfg.Environment,
		Version:     cfg.Version,
	})
	metrics := observability.Init(log)

	theDB, err := db.Open(cfg.DB, log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init database: %w", err)
	}
	if err := db.AutoMigrateAll(theDB); err != nil {
		log.Sync()
		return nil, fmt.Errorf("automigrate: %w", err)
	}

	storage, err := wireStorage(ctx, log, cfg, theDB)
	if err != nil {
		log.Sync()
		return nil, err
	}
	reposet := wireRepos(theDB, storage, log)
	clients := wireClients(log, cfg)
	serviceset, err := wireServices(ctx, log, cfg, reposet, clients)
	if err != nil {
		storage.Close()
		log.Sync()
		return nil, err
	}
	handlerset := wireHandlers(log, serviceset, storage)

	return &App{
		Log:          log,
		DB:           theDB,
		Cfg:          cfg,
		Storage:      storage,
		Repos:        reposet,
		Services:     serviceset,
		Server:       wireServer(log, cfg, handlerset, metrics),
		otelShutdown: otelShutdown,
	}, nil
}

// Run serves HTTP until ctx is cancelled or the listener fails, then flushes
// pending spans.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return errors.New("app not initialized")
	}
	addr := net.JoinHostPort("", a.Cfg.Port)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Log.Info("HTTP server listening", "addr", addr)
		return a.Server.Run(gctx, addr, a.Cfg.ShutdownTimeout)
	})
	g.Go(func() error {
		<-gctx.Done()
		if a.otelShutdown == nil {
			return nil
		}
		flushCtx, cancel := context.WithTimeout(context.Background(), a.Cfg.ShutdownTimeout)
		defer cancel()
		if err := a.otelShutdown(flushCtx); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
		return nil
	})

	err := g.Wait()
	a.Log.Info("HTTP server stopped")
	return err
}

func (a *App) Close() {
	if a == nil {
		return
	}
	a.Storage.Close()
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
