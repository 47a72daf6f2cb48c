// Package server assembles and runs the chronicle content server: database,
// migrations, blob storage, services, and the HTTP API, with graceful
// shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/dalesbridge/chronicle/internal/logging"
	"github.com/dalesbridge/chronicle/internal/server/blob"
	"github.com/dalesbridge/chronicle/internal/server/config"
	"github.com/dalesbridge/chronicle/internal/server/httpapi"
	"github.com/dalesbridge/chronicle/internal/server/repositories/repomanager"
	"github.com/dalesbridge/chronicle/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	api    *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := openDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	storage, err := blob.NewS3Storage(ctx, cfg.BlobConfig())
	if err != nil {
		return nil, fmt.Errorf("blob storage init error: %w", err)
	}

	api := httpapi.NewServer(cfg.EndpointAddr, logger, httpapi.Services{
		Users:         services.NewUserService(db, rm, cfg),
		Pages:         services.NewPageService(db, rm),
		Townships:     services.NewTownshipService(db, rm),
		People:        services.NewPersonService(db, rm),
		Buildings:     services.NewBuildingService(db, rm),
		Events:        services.NewEventService(db, rm),
		Photographs:   services.NewPhotographService(db, rm, storage),
		Maps:          services.NewMapService(db, rm, storage),
		Media:         services.NewMediaService(db, rm, storage),
		Contributions: services.NewContributionService(db, rm),
	})

	return &App{config: cfg, logger: logger, db: db, api: api}, nil
}

// openDB opens the pool and pings it with backoff, so the server survives a
// database that comes up slightly later (compose, fresh deploys).
func openDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	backoff := retry.WithMaxRetries(5, retry.NewExponential(time.Second))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		return retry.RetryableError(db.PingContext(ctx))
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.api.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "closing database", "error", err.Error())
	}
}
