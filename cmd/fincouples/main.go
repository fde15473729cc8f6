package main

import (
	"context"
	"net/http"
	"os"

	"golang.org/x/sync/errgroup"

	"fincouples/internal/backend"
	"fincouples/internal/cli"
	apphttp "fincouples/internal/http"
	applog "fincouples/internal/log"
	"fincouples/internal/repository"
	"fincouples/internal/state"
)

func main() {
	logger := cli.SetupLogger()
	cli.LoadEnvFile()
	cfg := cli.LoadAndValidateConfig(logger)

	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Invalid backend configuration", "error", err)
		os.Exit(1)
	}

	factory := backend.NewFactory(logger)
	result, err := factory.CreateStore(context.Background(), backendCfg)
	if err != nil {
		logger.Error("Failed to initialize storage backend", "error", err, "backend", backendCfg.Type)
		os.Exit(1)
	}
	logger.Info("Initialized storage backend", "backend", backendCfg.Type)

	contas := state.NewContas(repository.NewContas(result.Store))
	categorias := state.NewCategorias(repository.NewCategorias(result.Store))

	// Warm both states concurrently so the first request sees seeded data.
	warm, warmCtx := errgroup.WithContext(context.Background())
	warm.Go(func() error {
		contas.Start(warmCtx)
		return nil
	})
	warm.Go(func() error {
		categorias.Start(warmCtx)
		return nil
	})
	_ = warm.Wait()

	appLogger := applog.New(applog.Config{Handler: logger.Handler(), Component: applog.ComponentApp})
	srv := apphttp.NewServer(":"+cfg.Port, contas, categorias, appLogger)

	cleanup := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		if result.Cleanup != nil {
			if err := result.Cleanup(); err != nil {
				logger.Error("Backend cleanup error", "error", err)
			}
		}
	}

	ctx, done := cli.GracefulShutdown(logger, cfg.ShutdownTimeout, cleanup)

	logger.Info("Starting fincouples server", "port", cfg.Port, "backend", cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	cli.WaitForShutdown(ctx, done)
	logger.Info("Server stopped gracefully")
}
