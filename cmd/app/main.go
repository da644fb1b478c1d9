package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"logistics/cmd"
	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres"

	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("logistics: %v", err)
	}
}

func run() error {
	configs, err := cmd.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := cmd.NewLogger(configs)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := postgres.Open(configs.DSN())
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn("failed to close event publisher", zap.Error(err))
		}
	}()

	if err = app.BootstrapAdmin(ctx); err != nil {
		return fmt.Errorf("bootstrap administrator: %w", err)
	}

	api, err := httpin.LoadAPIDocument(ctx)
	if err != nil {
		return fmt.Errorf("load openapi document: %w", err)
	}

	return startWebServer(ctx, app, api, configs, logger)
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, api *httpin.APIDocument, configs cmd.Config, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort),
		Handler:      app.NewRouter(api),
		ReadTimeout:  configs.HTTPReadTimeout,
		WriteTimeout: configs.HTTPWriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.HTTPShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
