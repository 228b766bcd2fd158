package http

import (
	"context"
	"errors"
	"fmt"
	"fxwidget/internal/config"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	readHeaderTimeout      = 5 * time.Second
	writeTimeout           = 30 * time.Second
	idleTimeout            = 2 * time.Minute
	defaultShutdownTimeout = 10 * time.Second
)

// Start listens on the configured port and serves until ctx is canceled.
func Start(ctx context.Context, cfg config.HTTPServer, handler http.Handler) error {
	listener, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", cfg.Port, err)
	}
	logrus.Infof("✅ HTTP server listening on %s", listener.Addr())

	shutdownTimeout := cfg.ShutdownTimeout()
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}
	return Serve(ctx, listener, handler, shutdownTimeout)
}

// Serve runs handler on listener and shuts the server down gracefully once
// ctx is canceled, waiting at most shutdownTimeout for in-flight requests.
func Serve(ctx context.Context, listener net.Listener, handler http.Handler, shutdownTimeout time.Duration) error {
	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		logrus.Infof("Shutting down HTTP server (timeout %s)", shutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case serveErr := <-errCh:
		return serveErr
	}
}
