package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"yokeair/internal/account"
	"yokeair/internal/api"
	"yokeair/internal/api/handler/v1handler"
	"yokeair/internal/application"
	"yokeair/internal/config"
	"yokeair/internal/images"
	"yokeair/internal/listing"
	"yokeair/internal/search"
	"yokeair/internal/worker"
	"yokeair/pkg/assets/s3store"
	"yokeair/pkg/cache"
	"yokeair/pkg/logger"
	"yokeair/pkg/notifier"
	"yokeair/pkg/notifier/mailjet"
	"yokeair/pkg/storage/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// getSearchCache connects to Redis. The returned Cache is nil when caching is
// disabled.
func getSearchCache(ctx context.Context, cfg *config.Config) (search.Cache, func()) {
	if cfg.Cache.TTL <= 0 {
		logger.Info(ctx, "search cache disabled")

		return nil, func() {}
	}

	rds, err := cache.New(ctx, cache.Options{
		Addr:     cfg.Cache.Addr,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
		Prefix:   "yokeair:",
		TTL:      cfg.Cache.TTL,
	})
	if err != nil {
		logger.Fatal(ctx, "could not connect to redis", zap.Error(err))
	}

	return rds, func() {
		logger.Info(ctx, "closing redis client...")
		if err := rds.Close(); err != nil {
			logger.Warn(ctx, "could not close redis client", zap.Error(err))
		}
	}
}

func getNotifier(cfg *config.Config) notifier.Notifier {
	templates := make(map[notifier.Template]int64, len(cfg.Notifications.Templates))
	for name, id := range cfg.Notifications.Templates {
		templates[notifier.Template(name)] = id
	}

	return mailjet.New(mailjet.Options{
		PublicKey:   cfg.Notifications.PublicKey,
		PrivateKey:  cfg.Notifications.PrivateKey,
		SenderEmail: cfg.Notifications.SenderEmail,
		SenderName:  cfg.Notifications.SenderName,
		Templates:   templates,
	})
}

// getServices builds every domain service on top of the shared storage.
func getServices(ctx context.Context, cfg *config.Config, pg *postgres.PgSQL, searchCache search.Cache) v1handler.Deps {
	store, err := s3store.New(ctx, s3store.Options{
		Bucket:          cfg.Assets.Bucket,
		Region:          cfg.Assets.Region,
		Endpoint:        cfg.Assets.Endpoint,
		AccessKeyID:     cfg.Assets.AccessKeyID,
		SecretAccessKey: cfg.Assets.SecretAccessKey,
		PublicBaseURL:   cfg.Assets.PublicBaseURL,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create asset store", zap.Error(err))
	}

	engine := search.New(pg, searchCache)
	imgs := images.New(pg, store, engine)
	listings := listing.New(pg, imgs, engine)

	return v1handler.Deps{
		Accounts:     account.New(pg, store, listings),
		Listing:      listings,
		Images:       imgs,
		Search:       engine,
		Applications: application.New(pg, store, getNotifier(cfg), application.NewOptions(cfg)),
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and notification workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			pg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			searchCache, closeCache := getSearchCache(ctx, cfg)
			defer closeCache()

			deps := getServices(ctx, cfg, pg, searchCache)

			riverClient, err := worker.Start(ctx, pg.Pool, deps.Applications, worker.Options{
				MaxWorkers:      cfg.Worker.MaxWorkers,
				RateLimitSnooze: cfg.Worker.RateLimitSnooze,
			})
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{Deps: deps, Health: pg})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers gracefully", zap.Error(err))
			}
		},
	}

	return cmd
}
