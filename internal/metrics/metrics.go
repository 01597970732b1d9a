// Package metrics exposes tracker totals in Prometheus format.
package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/Byambaa0325/claude-carbon-tracker/internal/carbon"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/ingest"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/milestone"
)

// Source is read on every scrape.
type Source interface {
	Stats() carbon.Stats
	Table() *milestone.Table
	ScannerStatus() ingest.Status
}

// Metrics holds the collectors for one Source in a private registry.
type Metrics struct {
	Registry *prometheus.Registry

	MilestonesTotal *prometheus.CounterVec
}

// New registers gauges over src.
func New(src Source) *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		Registry: reg,
		MilestonesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "claude_carbon_milestones_total",
				Help: "Milestone events dispatched",
			},
			[]string{"kind"},
		),
	}

	reg.MustRegister(
		m.MilestonesTotal,
		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "claude_carbon_co2_kg",
				Help: "Estimated CO2 emitted since tracking started, in kg",
			},
			func() float64 { return src.Stats().TotalCO2Kg },
		),
		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name:        "claude_carbon_tokens",
				Help:        "Tokens counted since tracking started",
				ConstLabels: prometheus.Labels{"direction": "input"},
			},
			func() float64 { return float64(src.Stats().InputTokens) },
		),
		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name:        "claude_carbon_tokens",
				Help:        "Tokens counted since tracking started",
				ConstLabels: prometheus.Labels{"direction": "output"},
			},
			func() float64 { return float64(src.Stats().OutputTokens) },
		),
		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "claude_carbon_requests",
				Help: "Requests counted since tracking started",
			},
			func() float64 { return float64(src.Stats().RequestCount) },
		),
		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "claude_carbon_tier_index",
				Help: "Zero-based index of the current milestone tier",
			},
			func() float64 { return float64(tierIndex(src)) },
		),
		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "claude_carbon_monitoring_active",
				Help: "1 while transcripts are being polled",
			},
			func() float64 {
				if src.ScannerStatus().Monitoring {
					return 1
				}
				return 0
			},
		),
		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "claude_carbon_data_paths",
				Help: "Claude data directories found",
			},
			func() float64 { return float64(src.ScannerStatus().PathsFound) },
		),
		prometheus.NewCounterFunc(
			prometheus.CounterOpts{
				Name: "claude_carbon_scans_total",
				Help: "Transcript scans completed",
			},
			func() float64 { return float64(src.ScannerStatus().Scans) },
		),
	)

	return m
}

// ObserveEvent counts a milestone event. It fits tracker.WithObserver.
func (m *Metrics) ObserveEvent(ev milestone.Event) {
	m.MilestonesTotal.WithLabelValues(ev.Kind.String()).Inc()
}

func tierIndex(src Source) int {
	table := src.Table()
	current := table.CurrentTier(src.Stats().TotalCO2Kg)
	for i, t := range table.Tiers() {
		if t.ID == current.ID {
			return i
		}
	}
	return 0
}

// Server is the metrics HTTP server.
type Server struct {
	server *http.Server
	logger zerolog.Logger
}

// NewServer serves m on /metrics and a liveness probe on /health.
func NewServer(addr string, m *Metrics, logger zerolog.Logger) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return &Server{
		server: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger.With().Str("component", "metrics").Logger(),
	}
}

// Handler returns the server mux.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.logger.Info().Str("addr", ln.Addr().String()).Msg("Starting metrics server")

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		s.logger.Error().Err(err).Msg("Metrics server error")
		return err
	case <-ctx.Done():
		s.logger.Info().Msg("Stopping metrics server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return s.server.Shutdown(shutdownCtx)
	}
}
