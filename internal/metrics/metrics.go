// Package metrics is the engine's optional observability sidecar.
// cmd/txnengine creates a Registry, and so records counters/gauges and
// starts the HTTP exposer, only when a metrics address is configured;
// without one nothing is recorded. This is a read-only
// sidecar, not a coordination channel between processes, so it does not
// conflict with spec.md §1's non-goal against networked coordination of
// the transaction core.
//
// Grounded on fandangolas-core-banking-lab/internal/metrics/metrics.go
// and metrics/prometheus.go for counter/gauge naming and registration,
// and internal/api/middleware/metrics.go for the gin-handler shape.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"txnengine/internal/pkg/logging"
)

// Registry bundles every metric the engine exports.
type Registry struct {
	EventsProcessed prometheus.Counter
	EventsDropped   *prometheus.CounterVec
	AccountsLocked  prometheus.Counter
	InFlightEvents  prometheus.Gauge

	registry *prometheus.Registry
	server   *http.Server
}

// NewRegistry constructs and registers every metric on a fresh registry
// (not the global default — this keeps the engine safe to construct more
// than once, e.g. in tests).
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		EventsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "txnengine_events_processed_total",
			Help: "Total events successfully applied to a client's balances.",
		}),
		EventsDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "txnengine_events_dropped_total",
			Help: "Total events dropped, labeled by reason.",
		}, []string{"reason"}),
		AccountsLocked: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "txnengine_accounts_locked_total",
			Help: "Total accounts locked by a successful chargeback.",
		}),
		InFlightEvents: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "txnengine_inflight_events",
			Help: "Events dispatched but not yet applied by their client actor.",
		}),
		registry: reg,
	}

	reg.MustRegister(r.EventsProcessed, r.EventsDropped, r.AccountsLocked, r.InFlightEvents)
	return r
}

// EventProcessed satisfies internal/actor.Sink.
func (r *Registry) EventProcessed() { r.EventsProcessed.Inc() }

// EventDropped satisfies internal/actor.Sink.
func (r *Registry) EventDropped(reason string) { r.EventsDropped.WithLabelValues(reason).Inc() }

// AccountLocked satisfies internal/actor.Sink.
func (r *Registry) AccountLocked() { r.AccountsLocked.Inc() }

// SetInFlight reports the dispatch fabric's current in-flight count.
func (r *Registry) SetInFlight(n int64) { r.InFlightEvents.Set(float64(n)) }

// Serve starts the /metrics and /healthz HTTP sidecar on addr. It runs
// until ctx is canceled, at which point it shuts down gracefully. Serve
// blocks; callers run it in its own goroutine.
func (r *Registry) Serve(ctx context.Context, addr string) error {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})))

	r.server = &http.Server{
		Addr:    addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := r.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := r.server.Shutdown(shutdownCtx); err != nil {
			logging.Error("metrics server shutdown failed", err, nil)
			return err
		}
		return nil
	case err := <-errCh:
		return err
	}
}
