package exchange

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	domainErrors "github.com/grocermart/partnersync/internal/domain/errors"
	"github.com/grocermart/partnersync/internal/domain/repository"
	"github.com/grocermart/partnersync/internal/flatfile"
	"github.com/grocermart/partnersync/internal/metrics"
	"github.com/grocermart/partnersync/internal/remote"
)

// Exporter produces outbound partner files: timestamped full snapshots of
// catalog collections, per-order detail files, and single-row
// consolidated upserts through the merger.
type Exporter struct {
	channel remote.Channel
	codec   *flatfile.Codec
	merger  *Merger
	logger  *slog.Logger
	metrics *metrics.Registry

	orders   repository.OrderRepository
	products repository.ProductRepository
	stores   repository.StoreRepository
	centers  repository.DeliveryCenterRepository
	users    repository.UserRepository
	taxes    repository.TaxRepository

	now func() time.Time
}

// ExporterParams groups the exporter dependencies.
type ExporterParams struct {
	Channel remote.Channel
	Merger  *Merger
	Logger  *slog.Logger
	Metrics *metrics.Registry

	Orders   repository.OrderRepository
	Products repository.ProductRepository
	Stores   repository.StoreRepository
	Centers  repository.DeliveryCenterRepository
	Users    repository.UserRepository
	Taxes    repository.TaxRepository
}

// NewExporter constructs an exporter.
func NewExporter(p ExporterParams) *Exporter {
	return &Exporter{
		channel:  p.Channel,
		codec:    flatfile.NewCodec(),
		merger:   p.Merger,
		logger:   p.Logger,
		metrics:  p.Metrics,
		orders:   p.Orders,
		products: p.Products,
		stores:   p.Stores,
		centers:  p.Centers,
		users:    p.Users,
		taxes:    p.Taxes,
		now:      time.Now,
	}
}

// ExportSnapshot uploads a full snapshot of one entity collection to a
// freshly timestamped remote path. Snapshots are never merged with prior
// exports: every run adds another full file. An empty collection is a
// no-op, not an error.
func (e *Exporter) ExportSnapshot(ctx context.Context, entity string) (err error) {
	defer func() {
		if err != nil {
			e.metrics.ExchangeFailures.Inc()
		}
	}()

	layout, ok := flatfile.ByEntity(entity)
	if !ok {
		return fmt.Errorf("%w: %s", domainErrors.ErrUnknownEntity, entity)
	}

	records, err := e.collect(ctx, layout)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		e.logger.Info("snapshot skipped, collection empty", slog.String("entity", entity))
		return nil
	}

	remotePath := SnapshotPath(layout, e.now())
	if err := e.uploadRecords(ctx, layout, records, remotePath); err != nil {
		return err
	}

	e.metrics.SnapshotsExported.Inc()
	e.logger.Info("snapshot exported",
		slog.String("entity", entity),
		slog.String("path", remotePath),
		slog.Int("rows", len(records)))
	return nil
}

// SendOrder uploads the order detail file, stamps the order as sent, and
// upserts the order's user and store into their consolidated files so the
// partner can resolve the references.
func (e *Exporter) SendOrder(ctx context.Context, orderID string) (err error) {
	defer func() {
		if err != nil && !errors.Is(err, domainErrors.ErrNotFound) {
			e.metrics.ExchangeFailures.Inc()
		}
	}()

	order, err := e.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	items, err := e.orders.GetItems(ctx, orderID)
	if err != nil {
		return err
	}

	sentAt := e.now()
	records := OrderDetailRecords(order, items, sentAt)
	if err := e.uploadRecords(ctx, flatfile.PurchaseOrderDetail, records, OrderDetailPath(order.ID)); err != nil {
		return err
	}

	if err := e.orders.MarkSentToPartner(ctx, order.ID, sentAt); err != nil {
		return err
	}

	if user, err := e.users.GetByEmail(ctx, order.UserEmail); err == nil {
		if err := e.merger.Upsert(ctx, flatfile.Users, UserRecord(*user)); err != nil {
			return err
		}
	} else if !errors.Is(err, domainErrors.ErrNotFound) {
		return err
	}

	if store, err := e.stores.GetByCode(ctx, order.StoreCode); err == nil {
		if err := e.merger.Upsert(ctx, flatfile.Stores, StoreRecord(*store)); err != nil {
			return err
		}
	} else if !errors.Is(err, domainErrors.ErrNotFound) {
		return err
	}

	e.metrics.OrdersSent.Inc()
	e.logger.Info("purchase order sent to partner",
		slog.String("order", order.ID),
		slog.Int("items", len(items)))
	return nil
}

// SyncEntity upserts a single entity row, fetched from the catalog store
// by its natural key, into the consolidated file. Products have no
// consolidated file; they are exchanged through snapshots only.
func (e *Exporter) SyncEntity(ctx context.Context, entity, key string) error {
	switch entity {
	case flatfile.DeliveryCenters.Entity:
		dc, err := e.centers.GetByCode(ctx, key)
		if err != nil {
			return err
		}
		return e.merger.Upsert(ctx, flatfile.DeliveryCenters, DeliveryCenterRecord(*dc))
	case flatfile.Stores.Entity:
		store, err := e.stores.GetByCode(ctx, key)
		if err != nil {
			return err
		}
		return e.merger.Upsert(ctx, flatfile.Stores, StoreRecord(*store))
	case flatfile.Users.Entity:
		user, err := e.users.GetByEmail(ctx, key)
		if err != nil {
			return err
		}
		return e.merger.Upsert(ctx, flatfile.Users, UserRecord(*user))
	case flatfile.Taxes.Entity:
		tax, err := e.taxes.GetByCode(ctx, key)
		if err != nil {
			return err
		}
		return e.merger.Upsert(ctx, flatfile.Taxes, TaxRecord(*tax))
	default:
		return fmt.Errorf("%w: %s", domainErrors.ErrUnknownEntity, entity)
	}
}

func (e *Exporter) collect(ctx context.Context, layout flatfile.Layout) ([]flatfile.Record, error) {
	switch layout.Entity {
	case flatfile.DeliveryCenters.Entity:
		centers, err := e.centers.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		records := make([]flatfile.Record, 0, len(centers))
		for _, dc := range centers {
			records = append(records, DeliveryCenterRecord(dc))
		}
		return records, nil
	case flatfile.Stores.Entity:
		stores, err := e.stores.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		records := make([]flatfile.Record, 0, len(stores))
		for _, s := range stores {
			records = append(records, StoreRecord(s))
		}
		return records, nil
	case flatfile.Users.Entity:
		users, err := e.users.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		records := make([]flatfile.Record, 0, len(users))
		for _, u := range users {
			records = append(records, UserRecord(u))
		}
		return records, nil
	case flatfile.Taxes.Entity:
		taxes, err := e.taxes.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		records := make([]flatfile.Record, 0, len(taxes))
		for _, t := range taxes {
			records = append(records, TaxRecord(t))
		}
		return records, nil
	case flatfile.Products.Entity:
		products, err := e.products.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		records := make([]flatfile.Record, 0, len(products))
		for _, p := range products {
			records = append(records, ProductRecord(p))
		}
		return records, nil
	default:
		return nil, fmt.Errorf("%w: %s", domainErrors.ErrUnknownEntity, layout.Entity)
	}
}

// uploadRecords encodes records into a scoped temp file and uploads it.
func (e *Exporter) uploadRecords(ctx context.Context, layout flatfile.Layout, records []flatfile.Record, remotePath string) error {
	localPath := tempFilePath(layout.Entity)
	defer removeTemp(e.logger, localPath)

	f, err := os.Create(localPath)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if err := e.codec.Encode(f, layout, records); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return e.channel.Upload(ctx, localPath, remotePath)
}
