package exchange

import (
	"context"
	"log/slog"
	"path"

	"github.com/grocermart/partnersync/internal/metrics"
	"github.com/grocermart/partnersync/internal/remote"
)

// Archiver moves consumed import files into the processed area so a file
// is never picked up twice.
type Archiver struct {
	channel remote.Channel
	logger  *slog.Logger
	metrics *metrics.Registry
}

// NewArchiver constructs an archiver.
func NewArchiver(channel remote.Channel, logger *slog.Logger, registry *metrics.Registry) *Archiver {
	return &Archiver{
		channel: channel,
		logger:  logger,
		metrics: registry,
	}
}

// Archive moves the file at remotePath under the processed directory of
// entity, keeping its base name. A source that no longer exists is a
// no-op: a concurrent run may have archived it already.
func (a *Archiver) Archive(ctx context.Context, entity, remotePath string) (err error) {
	defer func() {
		if err != nil {
			a.metrics.ExchangeFailures.Inc()
		}
	}()

	if err := a.channel.Mkdir(ctx, ProcessedDir(entity), true); err != nil {
		return err
	}

	exists, err := a.channel.Exists(ctx, remotePath)
	if err != nil {
		return err
	}
	if !exists {
		a.logger.Warn("archive skipped, source file missing",
			slog.String("entity", entity),
			slog.String("path", remotePath))
		return nil
	}

	dst := ProcessedPath(entity, path.Base(remotePath))
	if err := a.channel.Rename(ctx, remotePath, dst); err != nil {
		return err
	}

	a.metrics.FilesArchived.Inc()
	a.logger.Info("import file archived",
		slog.String("from", remotePath),
		slog.String("to", dst))
	return nil
}
