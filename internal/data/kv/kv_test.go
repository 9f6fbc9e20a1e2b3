package kv

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/startpage-backend/internal/data/repos/testutil"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, found, err := s.Get(ctx, "missing"); err != nil || found {
		t.Fatalf("Get(missing): found=%v err=%v", found, err)
	}
	if err := s.Set(ctx, "quicklinks-notes", "first"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(ctx, "quicklinks-notes", "second"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	v, found, err := s.Get(ctx, "quicklinks-notes")
	if err != nil || !found || v != "second" {
		t.Fatalf("Get: v=%q found=%v err=%v", v, found, err)
	}
	if err := s.Set(ctx, "empty", ""); err != nil {
		t.Fatalf("Set empty: %v", err)
	}
	if v, found, err := s.Get(ctx, "empty"); err != nil || !found || v != "" {
		t.Fatalf("Get empty: v=%q found=%v err=%v", v, found, err)
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestGormStore(t *testing.T) {
	theDB := testutil.DB(t)
	exerciseStore(t, NewGormStore(theDB, testutil.Logger(t)))
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("set TEST_REDIS_ADDR to run redis integration tests")
	}
	s, err := NewRedisStore(context.Background(), RedisConfig{
		Addr:   addr,
		Prefix: "startpage-test:" + uuid.NewString() + ":",
	}, testutil.Logger(t))
	if err != nil {
		t.Fatalf("NewRedisStore: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	exerciseStore(t, s)
}

func TestNewRedisStoreRequiresAddr(t *testing.T) {
	if _, err := NewRedisStore(context.Background(), RedisConfig{}, testutil.Logger(t)); err == nil {
		t.Fatalf("expected error without address")
	}
}
