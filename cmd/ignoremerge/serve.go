package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dusk-indust/ignoremerge/internal/api"
	"github.com/dusk-indust/ignoremerge/internal/config"
	"github.com/dusk-indust/ignoremerge/internal/ignorefile"
)

const shutdownTimeout = 10 * time.Second

// serveHTTP runs the HTTP API until ctx is cancelled, then shuts down
// gracefully.
func serveHTTP(ctx context.Context, addr string, opts ignorefile.Options, log *slog.Logger) error {
	cfg := config.LoadServer(addr)

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.NewServer(opts, log, cfg),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", "addr", cfg.Addr, "max_body_bytes", cfg.MaxBodyBytes)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}
