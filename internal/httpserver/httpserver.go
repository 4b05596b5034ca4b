package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const (
	readHeaderTimeout = 10 * time.Second
	writeTimeout      = 90 * time.Second
	shutdownTimeout   = 10 * time.Second
	drainTimeout      = 30 * time.Second
)

// Run serves until ctx is cancelled, then shuts down gracefully.
func (srv *HTTPServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", srv.port),
		Handler:           srv.gin,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "HTTP server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("httpserver: listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	srv.l.Info(ctx, "Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("httpserver: shutdown: %w", err)
	}

	drainCtx, cancelDrain := context.WithTimeout(context.Background(), drainTimeout)
	defer cancelDrain()
	srv.drain(drainCtx)
	return nil
}

// drain waits for webhook updates still being processed after the
// listener has closed. Updates that outlive ctx are dropped.
func (srv *HTTPServer) drain(ctx context.Context) {
	if srv.telegramHandler == nil {
		return
	}
	srv.l.Info(ctx, "Waiting for in-flight Telegram updates...")
	if err := srv.telegramHandler.Wait(ctx); err != nil {
		srv.l.Warnf(ctx, "httpserver: dropped in-flight Telegram updates: %v", err)
	}
}
