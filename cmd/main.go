package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/decile/internal/config"
	"github.com/okian/decile/internal/simulation"
	"github.com/okian/decile/pkg/logger"
	"github.com/okian/decile/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Expose health and metrics while the simulation runs.
	mux := http.NewServeMux()
	mux.Handle("/healthz", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting metrics server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("metrics server failed: " + err.Error() + "\n")
		}
	}()

	runner := simulation.NewRunner(
		simulation.WithLogger(log.Named("simulation")),
		simulation.WithRosterSize(cfg.RosterSize),
		simulation.WithReportingInterval(cfg.ReportingInterval),
		simulation.WithQueueSize(cfg.QueueSize),
		simulation.WithGeneratorWorkers(cfg.GeneratorWorkers),
	)

	report, err := runner.Run(ctx)
	if err != nil {
		log.Error(ctx, "simulation failed", logger.Error(err))
	} else {
		log.Info(ctx, "simulation completed",
			logger.Int("roster", report.RosterSize),
			logger.Int("top", report.TopSize),
			logger.Int("checkpoints", report.Checkpoints),
			logger.Duration("heap", report.HeapElapsed),
			logger.Duration("quickselect", report.QuickSelectElapsed),
			logger.Duration("online", report.OnlineElapsed),
		)
	}

	// Graceful shutdown of the metrics endpoint.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "metrics server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "done")
}
