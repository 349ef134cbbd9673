package remote

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// The endpoint below is a TEST-NET-1 address; dialing it fails fast with a
// classified transport error without depending on a live SFTP server.
func TestSFTPChannelOperationsReturnClassifiedErrors(t *testing.T) {
	ch, err := NewSFTPChannel(Config{
		Address:     "192.0.2.1:22",
		User:        "exchange",
		Password:    "secret",
		DialTimeout: 50 * time.Millisecond,
	}, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := context.Background()

	if _, err := ch.List(ctx, "/out"); !isChannelError(err) {
		t.Fatalf("expected classified error from List, got %v", err)
	}
	if _, err := ch.Exists(ctx, "/out/x.csv"); !isChannelError(err) {
		t.Fatalf("expected classified error from Exists, got %v", err)
	}
	if err := ch.Rename(ctx, "/a", "/b"); !isChannelError(err) {
		t.Fatalf("expected classified error from Rename, got %v", err)
	}
}

func TestSFTPChannelHonorsCancelledContext(t *testing.T) {
	ch, err := NewSFTPChannel(Config{
		Address:     "192.0.2.1:22",
		User:        "exchange",
		DialTimeout: 50 * time.Millisecond,
	}, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := ch.Mkdir(ctx, "/processed/stores", true); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func isChannelError(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(*Error)
	if ok {
		return true
	}
	// context errors surface unwrapped from the pre-dial check
	return err == context.Canceled
}
