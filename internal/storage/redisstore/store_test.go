package redisstore

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
)

func TestKeyPrefixing(t *testing.T) {
	if got := key("DC1-250901120000-A1B2"); got != "simorder:DC1-250901120000-A1B2" {
		t.Fatalf("unexpected key %q", got)
	}
}

func TestNewWithClientDefaultsTTL(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	store := NewWithClient(redis.NewClient(&redis.Options{Addr: "localhost:0"}), 0, logger)
	t.Cleanup(func() { _ = store.Close() })

	if store.ttl != 24*time.Hour {
		t.Fatalf("expected default ttl, got %v", store.ttl)
	}
}

func TestNewRejectsBadURI(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	if _, err := New(context.Background(), "not-a-uri", time.Hour, logger); err == nil {
		t.Fatal("expected error for malformed redis uri")
	}
}
