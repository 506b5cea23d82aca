package worker

import (
	"context"
	"fmt"
	"time"

	"yokeair/internal/application"
	"yokeair/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

// Options configure the job queue client.
type Options struct {
	// MaxWorkers is the number of jobs of the default queue worked concurrently.
	MaxWorkers int
	// RateLimitSnooze delays a notification refused by the provider due to rate limiting.
	RateLimitSnooze time.Duration
}

// Workers registers every worker of the service.
func Workers(applications application.Service, opts Options) *river.Workers {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewNotificationWorker(applications, opts.RateLimitSnooze))

	return workers
}

func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	applications application.Service,
	opts Options) (*river.Client[pgx.Tx], error) {
	maxWorkers := opts.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: Workers(applications, opts),
		Logger:  logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
