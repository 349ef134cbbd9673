package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles the service counters around simulation and the partner
// file exchange.
type Registry struct {
	reg *prometheus.Registry

	SimulationsRun     prometheus.Counter
	SimulationsCleaned prometheus.Counter
	OrdersSent         prometheus.Counter
	SnapshotsExported  prometheus.Counter
	RecordsMerged      prometheus.Counter
	FilesArchived      prometheus.Counter
	ExchangeFailures   prometheus.Counter
	RemoteOpSeconds    prometheus.Histogram
}

// NewRegistry builds an isolated registry with all collectors registered.
func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	simulationsRun := prometheus.NewCounter(prometheus.CounterOpts{Name: "partnersync_simulations_run_total", Help: "Fulfillment simulations executed."})
	simulationsCleaned := prometheus.NewCounter(prometheus.CounterOpts{Name: "partnersync_simulations_cleaned_total", Help: "Simulated order cleanup operations."})
	ordersSent := prometheus.NewCounter(prometheus.CounterOpts{Name: "partnersync_orders_sent_total", Help: "Purchase orders exported to the partner."})
	snapshotsExported := prometheus.NewCounter(prometheus.CounterOpts{Name: "partnersync_snapshots_exported_total", Help: "Bulk snapshot files uploaded."})
	recordsMerged := prometheus.NewCounter(prometheus.CounterOpts{Name: "partnersync_records_merged_total", Help: "Rows upserted into consolidated files."})
	filesArchived := prometheus.NewCounter(prometheus.CounterOpts{Name: "partnersync_files_archived_total", Help: "Consumed import files moved to processed."})
	exchangeFailures := prometheus.NewCounter(prometheus.CounterOpts{Name: "partnersync_exchange_failures_total", Help: "Failed partner exchange operations."})
	remoteOpSeconds := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "partnersync_remote_op_seconds",
		Help:    "Latency of remote channel operations.",
		Buckets: prometheus.DefBuckets,
	})

	r.MustRegister(simulationsRun, simulationsCleaned, ordersSent, snapshotsExported,
		recordsMerged, filesArchived, exchangeFailures, remoteOpSeconds)

	return &Registry{
		reg:                r,
		SimulationsRun:     simulationsRun,
		SimulationsCleaned: simulationsCleaned,
		OrdersSent:         ordersSent,
		SnapshotsExported:  snapshotsExported,
		RecordsMerged:      recordsMerged,
		FilesArchived:      filesArchived,
		ExchangeFailures:   exchangeFailures,
		RemoteOpSeconds:    remoteOpSeconds,
	}
}

// Handler exposes the registry in Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
