package app

import (
	"context"
	"testing"

	"github.com/yungbote/startpage-backend/internal/data/kv"
	"github.com/yungbote/startpage-backend/internal/data/repos/testutil"
	"github.com/yungbote/startpage-backend/internal/platform/logger"
)

func TestWireStorageBackends(t *testing.T) {
	ctx := context.Background()
	theDB := testutil.DB(t)

	st, err := wireStorage(ctx, logger.Nop(), Config{StoreBackend: StoreBackendDB}, theDB)
	if err != nil {
		t.Fatalf("db backend: %v", err)
	}
	if _, ok := st.KV.(*kv.GormStore); !ok {
		t.Fatalf("db backend store: %T", st.KV)
	}
	if err := st.Checks["db"].Ping(ctx); err != nil {
		t.Fatalf("db ping: %v", err)
	}

	st, err = wireStorage(ctx, logger.Nop(), Config{StoreBackend: StoreBackendMemory}, theDB)
	if err != nil {
		t.Fatalf("memory backend: %v", err)
	}
	if _, ok := st.KV.(*kv.MemoryStore); !ok {
		t.Fatalf("memory backend store: %T", st.KV)
	}

	if _, err := wireStorage(ctx, logger.Nop(), Config{StoreBackend: StoreBackendRedis}, theDB); err == nil {
		t.Fatalf("redis backend without address should fail")
	}
}

func TestWireServicesWithoutAI(t *testing.T) {
	ctx := context.Background()
	log := logger.Nop()
	theDB := testutil.DB(t)
	st, err := wireStorage(ctx, log, Config{StoreBackend: StoreBackendMemory}, theDB)
	if err != nil {
		t.Fatalf("wireStorage: %v", err)
	}
	svc, err := wireServices(ctx, log, Config{HistoryLimit: 50}, wireRepos(theDB, st, log), wireClients(log, Config{}))
	if err != nil {
		t.Fatalf("wireServices: %v", err)
	}
	svc.Notes.Edit(ctx, "Paris is the capital of France. It has a population of over two million.")
	if _, err := svc.FlashCards.StartSession(ctx, "ai", 3); err == nil {
		t.Fatalf("ai mode without a client should fail")
	}
	if _, err := svc.FlashCards.StartSession(ctx, "heuristic", 3); err != nil {
		t.Fatalf("heuristic session: %v", err)
	}
}
