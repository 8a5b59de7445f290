package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"fincode/internal/bankdir"
	"fincode/internal/platform/config"
	"fincode/internal/platform/httpserver"
	"fincode/internal/platform/logger"
	"fincode/internal/platform/metrics"
	platformredis "fincode/internal/platform/redis"
	httptransport "fincode/internal/transport/http"
	"fincode/pkg/bic"
)

// main wires dependencies and keeps the server lifecycle small. Validation
// semantics live in pkg/iban and pkg/bic; directory backends in
// internal/bankdir.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)
	m := metrics.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	directory, cleanup, err := buildDirectory(ctx, cfg, log, m)
	if err != nil {
		log.Error("bank directory setup failed", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	handler := httptransport.New(log, m, directory)
	srv := httpserver.New(cfg.Addr, httptransport.NewRouter(handler))

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting fincode", "addr", cfg.Addr, "bankdir", cfg.BankDirBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		log.Error("server error", "error", err)
		os.Exit(1)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	if err := httpserver.Shutdown(srv, 10*time.Second); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}

// buildDirectory assembles the configured bank directory backend, optionally
// wrapped in the Redis read-through cache. Every layer reports lookup
// latency under its own backend label. The cleanup closes whatever was
// opened.
func buildDirectory(ctx context.Context, cfg config.Server, log *slog.Logger, m *metrics.Metrics) (bic.Directory, func(), error) {
	var (
		directory bic.Directory
		closers   []func()
	)

	switch cfg.BankDirBackend {
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		directory = bankdir.NewInstrumented(bankdir.NewPostgres(pool), "postgres", m)
		closers = append(closers, pool.Close)
	default:
		directory = bankdir.NewInstrumented(bankdir.NewMemory(bankdir.Seed()), "memory", m)
	}

	client, err := platformredis.New(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	if client != nil {
		cache := bankdir.NewCache(directory, client, cfg.Redis.CacheTTL, log)
		directory = bankdir.NewInstrumented(cache, "redis", m)
		closers = append(closers, func() { _ = client.Close() })
	}

	cleanup := func() {
		for _, c := range closers {
			c()
		}
	}
	return directory, cleanup, nil
}
