package host

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/helios-keeper/internal/config"
	"github.com/MKhiriev/helios-keeper/internal/handler"
	"github.com/MKhiriev/helios-keeper/internal/logger"
	"github.com/MKhiriev/helios-keeper/internal/server"
	"github.com/MKhiriev/helios-keeper/internal/service"
	"github.com/MKhiriev/helios-keeper/internal/store"
	"github.com/MKhiriev/helios-keeper/internal/workers"
)

type App struct {
	cfg *config.StructuredConfig

	runtime  *workers.Runtime
	storages *store.Storages
	services *service.Services
	server   server.Server

	logger *logger.Logger
}

// AppDir resolves the application directory for cfg. main uses it to place
// log files before the App exists.
func AppDir(cfg config.App) (string, error) {
	return newDataDirResolver(cfg).AppDir()
}

func NewApp(ctx context.Context, cfg *config.StructuredConfig, logger *logger.Logger) (*App, error) {
	resolver := newDataDirResolver(cfg.App)
	appDir, err := resolver.AppDir()
	if err != nil {
		return nil, fmt.Errorf("resolve app dir: %w", err)
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, appDir, logger)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	runtime := workers.NewRuntime(cfg.Workers.RuntimeSize, logger)

	services, err := service.NewServices(storages, service.NewSessionRegistry(), runtime, resolver, *cfg, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create server: %w", err)
	}

	return &App{
		cfg:      cfg,
		runtime:  runtime,
		storages: storages,
		services: services,
		server:   srv,
		logger:   logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Str("address", a.cfg.Server.HTTPAddress).Msg("helios-keeper host started")

	runErr := a.server.RunServer(ctx)
	if runErr != nil {
		a.logger.Error().Err(runErr).Msg("server stopped with error")
	}

	return errors.Join(runErr, a.shutdown(ctx))
}

// shutdown stops the running session first, so its client can still use the
// runtime and checkpoint store, then closes those.
func (a *App) shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	var errs []error
	if err := a.services.HeliosService.Close(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("close session: %w", err))
	}
	if err := a.runtime.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, err)
	}
	if err := a.storages.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close storages: %w", err))
	}

	a.logger.Info().Msg("helios-keeper host stopped")
	return errors.Join(errs...)
}
