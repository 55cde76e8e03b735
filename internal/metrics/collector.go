// Package metrics exposes generation counters for Prometheus.
package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/jangyunsu11/UniversityPrepApp/internal/generation"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const namespace = "uniprep"

// Collector holds the generation metrics on a private registry.
type Collector struct {
	registry *prometheus.Registry

	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
	Records  *prometheus.HistogramVec
}

// NewCollector creates a Collector with its own registry.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_requests_total",
			Help:      "Total number of generation calls by view and outcome",
		},
		[]string{"view", "status"},
	)
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Generation call latency in seconds",
			// Model calls for 100 ideas routinely take tens of seconds.
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80},
		},
		[]string{"view"},
	)
	records := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_records",
			Help:      "Number of records returned per generation call",
			Buckets:   []float64{0, 1, 5, 12, 25, 50, 100},
		},
		[]string{"view"},
	)

	registry.MustRegister(requests, duration, records)

	return &Collector{
		registry: registry,
		Requests: requests,
		Duration: duration,
		Records:  records,
	}
}

// OnRun implements generation.RunObserver.
func (c *Collector) OnRun(run generation.Run) {
	view := string(run.View)
	c.Requests.WithLabelValues(view, string(run.Status)).Inc()
	c.Duration.WithLabelValues(view).Observe(float64(run.LatencyMs) / 1000)
	if run.Status == generation.RunOK {
		c.Records.WithLabelValues(view).Observe(float64(run.Records))
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Serve listens on addr and serves /metrics until ctx is done. It returns
// the bound address once listening.
func (c *Collector) Serve(ctx context.Context, addr string, log *zap.Logger) (string, error) {
	if log == nil {
		log = zap.NewNop()
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return "", err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn("metrics server stopped", zap.Error(err))
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("metrics server listening", zap.String("addr", ln.Addr().String()))
	return ln.Addr().String(), nil
}
