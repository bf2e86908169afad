package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"StockSense/pkg/config"
	xhttp "StockSense/pkg/http"
	applogger "StockSense/pkg/logger"
)

// App encapsulates the application lifecycle: HTTP server startup, signal
// handling and graceful shutdown.
type App struct {
	cfg        *config.Config
	handler    xhttp.Handler
	log        *applogger.Logger
	httpServer *xhttp.Server
}

// New creates the App with its wired dependencies.
func New(cfg *config.Config, handler xhttp.Handler, log *applogger.Logger) *App {
	return &App{cfg: cfg, handler: handler, log: log}
}

// Run starts the HTTP server and blocks until an interrupt or TERM signal.
func (a *App) Run() error {
	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
	)

	if err := a.httpServer.Start(); err != nil {
		a.log.Error("http server start error", applogger.Error(err))
		return err
	}
	a.log.Info("server started",
		applogger.Int("port", a.cfg.Server.Port),
		applogger.String("environment", a.cfg.Environment))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.log.Info("shutdown signal received")
	return a.shutdown()
}

func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(ctx); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
		return err
	}
	a.log.Info("shutdown complete")
	return nil
}
