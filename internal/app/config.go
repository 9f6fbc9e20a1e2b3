package app

import (
	"strings"
	"time"

	"github.com/yungbote/startpage-backend/internal/data/db"
	"github.com/yungbote/startpage-backend/internal/data/kv"
	"github.com/yungbote/startpage-backend/internal/http/middleware"
	"github.com/yungbote/startpage-backend/internal/platform/envutil"
	"github.com/yungbote/startpage-backend/internal/platform/logger"
	"github.com/yungbote/startpage-backend/internal/platform/openai"
)

const (
	StoreBackendDB     = "db"
	StoreBackendRedis  = "redis"
	StoreBackendMemory = "memory"
)

type Config struct {
	Port            string
	LogMode         string
	Environment     string
	Version         string
	ShutdownTimeout time.Duration

	DB           db.Config
	StoreBackend string
	Redis        kv.RedisConfig
	OpenAI       openai.Config

	HistoryLimit int
	SessionTTL   time.Duration
	CORSOrigins  []string
}

// LoadConfig reads the process environment once. Unusable values are
// logged and replaced by their defaults.
func LoadConfig(log *logger.Logger) Config {
	cfg := Config{
		Port:            envutil.String("PORT", "8080"),
		LogMode:         envutil.String("LOG_MODE", "development"),
		Environment:     envutil.String("APP_ENV", "local"),
		Version:         envutil.String("APP_VERSION", "dev"),
		ShutdownTimeout: time.Duration(envutil.Int("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
		DB: db.Config{
			Driver:           envutil.String("DB_DRIVER", db.DriverSQLite),
			SQLitePath:       envutil.String("SQLITE_PATH", "startpage.db"),
			PostgresHost:     envutil.String("POSTGRES_HOST", "localhost"),
			PostgresPort:     envutil.String("POSTGRES_PORT", "5432"),
			PostgresUser:     envutil.String("POSTGRES_USER", "postgres"),
			PostgresPassword: envutil.String("POSTGRES_PASSWORD", ""),
			PostgresName:     envutil.String("POSTGRES_NAME", "startpage"),
		},
		StoreBackend: strings.ToLower(envutil.String("STORE_BACKEND", StoreBackendDB)),
		Redis: kv.RedisConfig{
			Addr:     envutil.String("REDIS_ADDR", ""),
			Password: envutil.String("REDIS_PASSWORD", ""),
			DB:       envutil.Int("REDIS_DB", 0),
			Prefix:   envutil.String("REDIS_PREFIX", "startpage:"),
		},
		OpenAI:       openai.ConfigFromEnv(),
		HistoryLimit: envutil.Int("HISTORY_LIMIT", 50),
		SessionTTL:   time.Duration(envutil.Int("FLASHCARD_SESSION_TTL_MINUTES", 120)) * time.Minute,
		CORSOrigins:  envutil.List("CORS_ORIGINS", middleware.DefaultOrigins),
	}

	switch cfg.StoreBackend {
	case StoreBackendDB, StoreBackendRedis, StoreBackendMemory:
	default:
		log.Warn("Unknown STORE_BACKEND, using db", "value", cfg.StoreBackend)
		cfg.StoreBackend = StoreBackendDB
	}
	if cfg.HistoryLimit < 1 {
		log.Warn("HISTORY_LIMIT must be positive, using 50", "value", cfg.HistoryLimit)
		cfg.HistoryLimit = 50
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	return cfg
}
