package exchange

import (
	"path"
	"time"

	"github.com/grocermart/partnersync/internal/flatfile"
)

// Remote directory layout agreed with the partner. The paths are contract,
// not configuration.
const (
	inboundOrdersDir = "/in/purchase_orders"
	outboundDir      = "/out"
	processedDir     = "/processed"

	snapshotTimeFormat = "20060102150405"
)

// ConsolidatedPath is the single merge-by-key file of an entity type.
func ConsolidatedPath(layout flatfile.Layout) string {
	return path.Join(outboundDir, layout.Entity, layout.Entity+".csv")
}

// SnapshotPath is a fresh timestamped full-snapshot file of an entity type.
func SnapshotPath(layout flatfile.Layout, at time.Time) string {
	return path.Join(outboundDir, layout.Entity, layout.Entity+"_"+at.Format(snapshotTimeFormat)+".csv")
}

// OrderDetailPath is the outbound per-order detail file.
func OrderDetailPath(orderID string) string {
	return path.Join(inboundOrdersDir, orderID+".csv")
}

// ProcessedDir is the archive directory of consumed inbound files.
func ProcessedDir(entity string) string {
	return path.Join(processedDir, entity)
}

// ProcessedPath is the archive destination of one consumed inbound file.
func ProcessedPath(entity, filename string) string {
	return path.Join(processedDir, entity, filename)
}
