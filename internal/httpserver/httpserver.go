package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
)

// Run maps the routes, starts serving and blocks until SIGINT or SIGTERM,
// then drains in-flight requests within the shutdown timeout.
func (srv *HTTPServer) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return srv.RunContext(ctx)
}

// RunContext is Run with the stop signal given as ctx cancellation.
func (srv *HTTPServer) RunContext(ctx context.Context) error {
	srv.mapHandlers()

	ln, err := net.Listen("tcp", net.JoinHostPort(srv.host, strconv.Itoa(srv.port)))
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return srv.serve(ctx, ln)
}

func (srv *HTTPServer) serve(ctx context.Context, ln net.Listener) error {
	httpSrv := &http.Server{
		Handler:      srv.gin,
		ReadTimeout:  srv.readTimeout,
		WriteTimeout: srv.writeTimeout,
		IdleTimeout:  srv.idleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	srv.l.Infof(ctx, "HTTP server started on %s", ln.Addr())

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	srv.l.Info(context.Background(), "Stopping HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), srv.shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	if srv.discord != nil {
		if err := srv.discord.Close(); err != nil {
			srv.l.Warnf(shutdownCtx, "Discord close error: %v", err)
		}
	}

	srv.l.Info(context.Background(), "HTTP server stopped")
	return nil
}
