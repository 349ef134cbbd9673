package exchange

import (
	"context"
	"errors"
	"testing"

	"github.com/grocermart/partnersync/internal/metrics"
	"github.com/grocermart/partnersync/internal/test"
)

func TestArchiveMovesFileToProcessed(t *testing.T) {
	channel := test.NewChannelFake()
	channel.Put("/out/products/products_20250901100000.csv", []byte("ean,ref\n"))
	archiver := NewArchiver(channel, testLogger(), metrics.NewRegistry())

	err := archiver.Archive(context.Background(), "products", "/out/products/products_20250901100000.csv")
	if err != nil {
		t.Fatalf("archive: %v", err)
	}

	if _, ok := channel.Content("/out/products/products_20250901100000.csv"); ok {
		t.Fatal("source file should be gone")
	}
	data, ok := channel.Content("/processed/products/products_20250901100000.csv")
	if !ok {
		t.Fatal("archived file missing from processed directory")
	}
	if string(data) != "ean,ref\n" {
		t.Fatalf("content changed during archive: %q", data)
	}
}

func TestArchiveMissingSourceNoOp(t *testing.T) {
	channel := test.NewChannelFake()
	archiver := NewArchiver(channel, testLogger(), metrics.NewRegistry())

	err := archiver.Archive(context.Background(), "products", "/out/products/gone.csv")
	if err != nil {
		t.Fatalf("missing source must be a no-op: %v", err)
	}
	if len(channel.Renames) != 0 {
		t.Fatalf("no rename expected: %v", channel.Renames)
	}
}

func TestArchiveMkdirFailure(t *testing.T) {
	channel := test.NewChannelFake()
	channel.Put("/out/users/users.csv", []byte("email,name\n"))
	channel.FailOn = map[string]error{"mkdir": errors.New("permission denied")}
	archiver := NewArchiver(channel, testLogger(), metrics.NewRegistry())

	if err := archiver.Archive(context.Background(), "users", "/out/users/users.csv"); err == nil {
		t.Fatal("expected mkdir failure to surface")
	}
}
