// Package server initializes and runs the application: it wires the logger,
// the persistence gateway, the user repository and service, and the HTTP
// server, and handles graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/akarpovs/useradmin/internal/logging"
	"github.com/akarpovs/useradmin/internal/server/config"
	"github.com/akarpovs/useradmin/internal/server/httpapi"
	"github.com/akarpovs/useradmin/internal/server/storage"
	"github.com/akarpovs/useradmin/internal/server/users"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	gateway *storage.Gateway
	server  *httpapi.Server
}

func NewApp(c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	gateway, err := storage.Open(c.DatabaseDSN, logger)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	// A failed schema run is logged, not fatal: operations degrade to
	// per-request connection failures instead of taking the process down.
	if err := gateway.EnsureSchema(context.Background()); err != nil {
		logger.Error(context.Background(), "failed to create users table", "error", err.Error())
	}

	us := users.NewService(users.NewSQLiteRepository(gateway), logger)
	srv := httpapi.NewServer(c.EndpointAddrHTTP, c.ReadTimeout, c.ShutdownTimeout, logger, us)

	return &App{config: c, logger: logger, gateway: gateway, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.gateway.Close(); err != nil {
		app.logger.Error(ctx, "error closing database", "error", err.Error())
	}
}
