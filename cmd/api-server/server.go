package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"
)

const (
	_defaultIdleTimeout       = time.Minute
	_defaultReadHeaderTimeout = 2 * time.Second
	_defaultReadTimeout       = 5 * time.Second
	_defaultWriteTimeout      = 15 * time.Second
	_defaultShutdownPeriod    = 30 * time.Second
)

func (app *application) serveHTTP() error {
	srv := &http.Server{
		Addr:              fmtHTTPAddr(app.config.httpHost, app.config.httpPort),
		Handler:           app.routes(),
		ErrorLog:          slog.NewLogLogger(app.logger.Handler(), slog.LevelWarn),
		IdleTimeout:       _defaultIdleTimeout,
		ReadHeaderTimeout: _defaultReadHeaderTimeout,
		ReadTimeout:       _defaultReadTimeout,
		WriteTimeout:      _defaultWriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownErrorChan := make(chan error, 1)

	go func() {
		<-ctx.Done()
		app.serverLogger().Info("shutting down server", "period", _defaultShutdownPeriod.String())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), _defaultShutdownPeriod)
		defer cancel()

		shutdownErrorChan <- srv.Shutdown(shutdownCtx)
	}()

	app.serverLogger().Info("starting server", slog.Group("server", "addr", srv.Addr))

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownErrorChan
	if err != nil {
		return err
	}

	app.serverLogger().Info("stopped server", slog.Group("server", "addr", srv.Addr))

	return nil
}

func (app *application) serverLogger(args ...any) *slog.Logger {
	args = append(args, "module", "server")
	return app.logger.With(args...)
}

func fmtHTTPAddr(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}
