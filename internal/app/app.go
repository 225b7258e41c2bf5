package app

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/academics-backend/internal/config"
	"github.com/yungbote/academics-backend/internal/data/db"
	"github.com/yungbote/academics-backend/internal/data/store"
	httpserver "github.com/yungbote/academics-backend/internal/http"
	"github.com/yungbote/academics-backend/internal/observability"
	"github.com/yungbote/academics-backend/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	Cfg      *config.Config
	DB       *gorm.DB
	Store    *store.Store
	Metrics  *observability.Metrics
	Services Services
	Server   *httpserver.Server

	shutdownOtel func(context.Context) error
}

// NewLogger builds the process logger from the log section of cfg.
func NewLogger(cfg *config.Config) (*logger.Logger, error) {
	log, err := logger.NewWithOptions(logger.Options{
		Mode:       cfg.Env,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return log, nil
}

func New(ctx context.Context, cfg *config.Config, log *logger.Logger, version string) (*App, error) {
	shutdownOtel := observability.InitOTel(ctx, log, observability.OtelConfig{
		Telemetry:   cfg.Telemetry,
		Environment: cfg.Env,
		Version:     version,
	})

	gdb, err := db.Open(cfg.Database, log)
	if err != nil {
		_ = shutdownOtel(ctx)
		return nil, fmt.Errorf("open database: %w", err)
	}
	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrateAll(gdb); err != nil {
			_ = db.Close(gdb)
			_ = shutdownOtel(ctx)
			return nil, fmt.Errorf("automigrate: %w", err)
		}
	}

	metrics := observability.Init(cfg.Telemetry.MetricsEnabled)
	st := store.New(gdb, log, wireRepos(gdb, log), metrics)

	serviceset, err := wireServices(log, cfg, st, metrics)
	if err != nil {
		_ = db.Close(gdb)
		_ = shutdownOtel(ctx)
		return nil, err
	}
	handlerset := wireHandlers(log, serviceset, st)
	server := httpserver.NewServer(cfg.HTTP.Addr, cfg.HTTP.ReadHeaderTimeout, wireRouter(log, cfg, metrics, handlerset))

	return &App{
		Log:          log,
		Cfg:          cfg,
		DB:           gdb,
		Store:        st,
		Metrics:      metrics,
		Services:     serviceset,
		Server:       server,
		shutdownOtel: shutdownOtel,
	}, nil
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests
// within the configured shutdown timeout.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	errCh := make(chan error, 1)
	go func() {
		a.Log.Info("HTTP server listening", "addr", a.Cfg.HTTP.Addr)
		errCh <- a.Server.Run()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.Log.Info("Shutting down HTTP server", "timeout", a.Cfg.HTTP.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return <-errCh
}

func (a *App) Close() error {
	if a == nil {
		return nil
	}
	var errs []error
	if a.shutdownOtel != nil {
		ctx, cancel := context.WithTimeout(context.Background(), a.Cfg.HTTP.ShutdownTimeout)
		errs = append(errs, a.shutdownOtel(ctx))
		cancel()
	}
	if a.DB != nil {
		errs = append(errs, db.Close(a.DB))
	}
	if a.Log != nil {
		a.Log.Sync()
	}
	return errors.Join(errs...)
}
