package exchange

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/grocermart/partnersync/internal/flatfile"
	"github.com/grocermart/partnersync/internal/metrics"
	"github.com/grocermart/partnersync/internal/remote"
)

// Merger maintains the consolidated merge-by-key files: one remote file
// per entity type holding exactly one row per natural-key value. This is
// the authoritative feed for partner consumption; timestamped snapshots
// (see Exporter) are a backfill artifact on top of it.
//
// Merges against the same remote path are serialized within this process.
// Across processes the remote side offers no locking, so concurrent
// writers can still lose updates; single-writer discipline is on the
// operator.
type Merger struct {
	channel remote.Channel
	codec   *flatfile.Codec
	logger  *slog.Logger
	metrics *metrics.Registry

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewMerger constructs a merger on top of the remote channel.
func NewMerger(channel remote.Channel, logger *slog.Logger, registry *metrics.Registry) *Merger {
	return &Merger{
		channel: channel,
		codec:   flatfile.NewCodec(),
		logger:  logger,
		metrics: registry,
		locks:   make(map[string]*sync.Mutex),
	}
}

func (m *Merger) pathLock(remotePath string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	lock, ok := m.locks[remotePath]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[remotePath] = lock
	}
	return lock
}

// Upsert downloads the consolidated file of the layout (an absent remote
// file starts an empty one), replaces or appends the record by its
// natural key, and uploads the whole file back. The local temp file is
// released on every exit path.
func (m *Merger) Upsert(ctx context.Context, layout flatfile.Layout, record flatfile.Record) (err error) {
	start := time.Now()
	defer func() {
		m.metrics.RemoteOpSeconds.Observe(time.Since(start).Seconds())
		if err != nil {
			m.metrics.ExchangeFailures.Inc()
		}
	}()

	key := record.Key(layout)
	if key == "" {
		return fmt.Errorf("record has no %s key for %s", layout.KeyField, layout.Entity)
	}

	remotePath := ConsolidatedPath(layout)

	lock := m.pathLock(remotePath)
	lock.Lock()
	defer lock.Unlock()

	localPath := tempFilePath("consolidated")
	defer removeTemp(m.logger, localPath)

	records := []flatfile.Record{}
	if err := m.channel.Download(ctx, remotePath, localPath); err != nil {
		if !remote.IsNotFound(err) {
			return err
		}
		m.logger.Info("consolidated file absent, starting empty",
			slog.String("path", remotePath))
	} else {
		records, err = m.decodeFile(localPath, layout)
		if err != nil {
			return err
		}
	}

	records = upsertByKey(records, layout, record, key)

	if err := m.encodeFile(localPath, layout, records); err != nil {
		return err
	}
	if err := m.channel.Upload(ctx, localPath, remotePath); err != nil {
		return err
	}

	m.metrics.RecordsMerged.Inc()
	m.logger.Info("consolidated record merged",
		slog.String("entity", layout.Entity),
		slog.String("key", key),
		slog.Int("rows", len(records)))
	return nil
}

func upsertByKey(records []flatfile.Record, layout flatfile.Layout, record flatfile.Record, key string) []flatfile.Record {
	for i, existing := range records {
		if existing.Key(layout) == key {
			records[i] = record
			return records
		}
	}
	return append(records, record)
}

func (m *Merger) decodeFile(localPath string, layout flatfile.Layout) ([]flatfile.Record, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return nil, fmt.Errorf("open temp file: %w", err)
	}
	defer f.Close()
	return m.codec.Decode(f, layout)
}

func (m *Merger) encodeFile(localPath string, layout flatfile.Layout, records []flatfile.Record) error {
	f, err := os.Create(localPath)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if err := m.codec.Encode(f, layout, records); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func tempFilePath(prefix string) string {
	return filepath.Join(os.TempDir(), fmt.Sprintf("%s-%s.csv", prefix, uuid.NewString()))
}

// removeTemp deletes a scoped temp file. Cleanup failures are logged and
// swallowed so they never mask the primary outcome.
func removeTemp(logger *slog.Logger, localPath string) {
	if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
		logger.Warn("remove temp file", slog.String("path", localPath), slog.String("error", err.Error()))
	}
}
