package app

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/startpage-backend/internal/data/kv"
	httpH "github.com/yungbote/startpage-backend/internal/http/handlers"
	"github.com/yungbote/startpage-backend/internal/platform/logger"
)

// Storage is the key/value backend for notes plus the health probes for
// every store the process depends on.
type Storage struct {
	KV     kv.Store
	Checks map[string]httpH.Pinger
	redis  *kv.RedisStore
}

func wireStorage(ctx context.Context, log *logger.Logger, cfg Config, theDB *gorm.DB) (Storage, error) {
	log.Info("Wiring storage...", "backend", cfg.StoreBackend)
	dbStore := kv.NewGormStore(theDB, log)
	st := Storage{Checks: map[string]httpH.Pinger{"db": dbStore}}

	switch cfg.StoreBackend {
	case StoreBackendRedis:
		rs, err := kv.NewRedisStore(ctx, cfg.Redis, log)
		if err != nil {
			return Storage{}, fmt.Errorf("init redis store: %w", err)
		}
		st.KV, st.redis = rs, rs
		st.Checks["redis"] = rs
	case StoreBackendMemory:
		log.Warn("Notes are kept in memory only and are lost on restart")
		st.KV = kv.NewMemoryStore()
	default:
		st.KV = dbStore
	}
	return st, nil
}

func (s *Storage) Close() {
	if s == nil || s.redis == nil {
		return
	}
	_ = s.redis.Close()
}
