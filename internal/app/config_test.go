package app

import (
	"testing"
	"time"

	"github.com/yungbote/startpage-backend/internal/platform/logger"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORE_BACKEND", "HISTORY_LIMIT", "DB_DRIVER", "CORS_ORIGINS", "OPENAI_MODEL"} {
		t.Setenv(k, "")
	}
	cfg := LoadConfig(logger.Nop())

	if cfg.Port != "8080" || cfg.StoreBackend != StoreBackendDB || cfg.HistoryLimit != 50 {
		t.Fatalf("defaults: %+v", cfg)
	}
	if cfg.DB.Driver != "sqlite" || cfg.DB.SQLitePath != "startpage.db" {
		t.Fatalf("db defaults: %+v", cfg.DB)
	}
	if cfg.OpenAI.Model != "gpt-3.5-turbo" || cfg.OpenAI.Temperature != 0.7 {
		t.Fatalf("openai defaults: %+v", cfg.OpenAI)
	}
	if len(cfg.CORSOrigins) == 0 {
		t.Fatalf("expected default CORS origins")
	}
}

func TestLoadConfigFallbacks(t *testing.T) {
	t.Setenv("STORE_BACKEND", "Mongo")
	t.Setenv("HISTORY_LIMIT", "-3")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "0")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	cfg := LoadConfig(logger.Nop())

	if cfg.StoreBackend != StoreBackendDB {
		t.Fatalf("store backend: got=%q", cfg.StoreBackend)
	}
	if cfg.HistoryLimit != 50 {
		t.Fatalf("history limit: got=%d", cfg.HistoryLimit)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("shutdown timeout: got=%v", cfg.ShutdownTimeout)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example" {
		t.Fatalf("cors: got=%v", cfg.CORSOrigins)
	}
}

func TestLoadConfigRedisBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "REDIS")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	cfg := LoadConfig(logger.Nop())
	if cfg.StoreBackend != StoreBackendRedis || cfg.Redis.Addr != "localhost:6379" || cfg.Redis.Prefix != "startpage:" {
		t.Fatalf("redis config: %+v", cfg)
	}
}
