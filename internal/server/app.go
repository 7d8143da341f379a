// Package server initializes and runs the media server: it wires the object
// storage backend to the HTTP API and handles graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/digislides/mediup/internal/logging"
	"github.com/digislides/mediup/internal/server/config"
	"github.com/digislides/mediup/internal/server/httpapi"
	"github.com/digislides/mediup/internal/server/storage"
)

type App struct {
	config *config.Config
	logger logging.Logger
	api    *httpapi.Server
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout)

	store, err := storage.NewS3Store(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	api := httpapi.NewServer(store, c, logger)

	return &App{config: c, logger: logger, api: api}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	srv := &http.Server{
		Addr:    app.config.EndpointAddr,
		Handler: app.api.NewRouter(),
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "starting media server", "addr", app.config.EndpointAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
