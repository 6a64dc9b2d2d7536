package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/hmhbrian/QuanLyDaoTaoNoiBo-NextJs-DotNet-sub002/internal/adapter/nats"
	"github.com/hmhbrian/QuanLyDaoTaoNoiBo-NextJs-DotNet-sub002/internal/adapter/postgres"
	"github.com/hmhbrian/QuanLyDaoTaoNoiBo-NextJs-DotNet-sub002/internal/adapter/postgres/changerecord"
	pglookup "github.com/hmhbrian/QuanLyDaoTaoNoiBo-NextJs-DotNet-sub002/internal/adapter/postgres/lookup"
	"github.com/hmhbrian/QuanLyDaoTaoNoiBo-NextJs-DotNet-sub002/internal/adapter/redis"
	"github.com/hmhbrian/QuanLyDaoTaoNoiBo-NextJs-DotNet-sub002/internal/config"
	"github.com/hmhbrian/QuanLyDaoTaoNoiBo-NextJs-DotNet-sub002/internal/service/capture"
	"github.com/hmhbrian/QuanLyDaoTaoNoiBo-NextJs-DotNet-sub002/internal/service/lookup"
	"github.com/hmhbrian/QuanLyDaoTaoNoiBo-NextJs-DotNet-sub002/internal/service/trail"
	"github.com/hmhbrian/QuanLyDaoTaoNoiBo-NextJs-DotNet-sub002/internal/transport/middleware"
	"github.com/hmhbrian/QuanLyDaoTaoNoiBo-NextJs-DotNet-sub002/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// postgres and the optional redis/nats adapters, assembles the capture and
// trail services, and serves the read API until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting audit server",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(cfg.Database.DSN); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()

	recordRepo := changerecord.New(pool)
	lookupRepo := pglookup.New(pool)

	var labelCache *redis.LabelCache
	if cfg.Redis.Addr != "" {
		labelCache, err = redis.NewLabelCache(ctx, cfg.Redis, logger)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer labelCache.Close()
	}

	var publisher *nats.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = nats.NewPublisher(cfg.NATS, logger)
		if err != nil {
			return fmt.Errorf("connect to nats: %w", err)
		}
		defer publisher.Close()
	}

	captureSvc := newCaptureService(logger, recordRepo, publisher, postgres.NewTxManager(pool))
	resolver := newResolver(logger, lookupRepo, recordRepo, labelCache, cfg.Audit.FallbackScanLimit)

	registry := trail.DefaultRegistry(logger, recordRepo, resolver)
	trailSvc := trail.NewService(logger, recordRepo, registry, cfg.Audit.HistoryLimit, cfg.Audit.ReconstructTimeout)

	auditHandler := rest.NewAuditHandler(logger, trailSvc)
	healthHandler := rest.NewHealthHandler(pool, BuildVersion())
	commitHandler := rest.NewCommitHandler(logger, captureSvc)

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.ActorID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(rest.NewRouter(auditHandler, healthHandler, commitHandler))

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

func newCaptureService(logger *slog.Logger, records *changerecord.Repo, publisher *nats.Publisher, tx *postgres.TxManager) *capture.Service {
	if publisher == nil {
		return capture.NewService(logger, records, nil, tx)
	}
	return capture.NewService(logger, records, publisher, tx)
}

func newResolver(logger *slog.Logger, live *pglookup.Repo, records *changerecord.Repo, cache *redis.LabelCache, scanLimit int) *lookup.Resolver {
	if cache == nil {
		return lookup.NewResolver(logger, live, records, nil, scanLimit)
	}
	return lookup.NewResolver(logger, live, records, cache, scanLimit)
}
