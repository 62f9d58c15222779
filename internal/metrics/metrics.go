package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Metrics holds the Prometheus collectors for the API. The exposition
// endpoint runs on its own listener so it never shares a port with the
// public API.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	LedgerEntriesTotal  *prometheus.CounterVec
	BetsPlacedTotal     *prometheus.CounterVec
	CacheHitsTotal      prometheus.Counter
	CacheMissesTotal    prometheus.Counter
	WebsocketClients    prometheus.Gauge
}

func New() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "artegallera_http_requests_total",
			Help: "Total HTTP requests handled, by method, path and status.",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "artegallera_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		LedgerEntriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "artegallera_ledger_entries_total",
			Help: "Ledger entries appended, by transaction type.",
		}, []string{"type"}),
		BetsPlacedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "artegallera_bets_placed_total",
			Help: "Bets placed, by team.",
		}, []string{"team"}),
		CacheHitsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "artegallera_message_cache_hits_total",
			Help: "Chat message list reads served from Redis.",
		}),
		CacheMissesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "artegallera_message_cache_misses_total",
			Help: "Chat message list reads that fell through to the database.",
		}),
		WebsocketClients: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "artegallera_websocket_clients",
			Help: "Currently connected chat websocket clients.",
		}),
	}
}

func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (m *Metrics) RecordLedgerEntry(txType string) {
	m.LedgerEntriesTotal.WithLabelValues(txType).Inc()
}

func (m *Metrics) RecordBetPlaced(team string) {
	m.BetsPlacedTotal.WithLabelValues(team).Inc()
}

func (m *Metrics) RecordCacheHit()  { m.CacheHitsTotal.Inc() }
func (m *Metrics) RecordCacheMiss() { m.CacheMissesTotal.Inc() }

// Serve exposes /metrics on its own port. Errors other than a clean
// shutdown are logged, not fatal; metrics are best-effort.
func Serve(port string, logger *zap.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: port, Handler: mux}
	go func() {
		logger.Info("Metrics server listening", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Metrics server stopped", zap.Error(err))
		}
	}()

	return srv
}
