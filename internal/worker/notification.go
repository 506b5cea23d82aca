package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"yokeair/internal/application"
	"yokeair/pkg/logger"
	"yokeair/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// NotificationWorker is a River worker delivering application notifications
// through application.Service.Deliver.
//
// Error handling: a BAD_REQUEST (no template, no recipient, rejected by the
// provider) or NOT_FOUND (application or applicant deleted meanwhile) can
// never succeed, so the job is canceled. RATE_LIMITED snoozes the job for
// rateLimitSnooze without spending an attempt. Any other error is returned
// and River retries the job until its MaxAttempts run out.
type NotificationWorker struct {
	river.WorkerDefaults[application.NotificationJobArgs]

	applications    application.Service
	rateLimitSnooze time.Duration
}

// NewNotificationWorker constructs a NotificationWorker.
func NewNotificationWorker(applications application.Service, rateLimitSnooze time.Duration) *NotificationWorker {
	return &NotificationWorker{
		applications:    applications,
		rateLimitSnooze: rateLimitSnooze,
	}
}

func (n *NotificationWorker) Work(ctx context.Context, job *river.Job[application.NotificationJobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Int("attempt", job.Attempt),
		zap.String("applicationID", job.Args.ApplicationID.String()),
		zap.String("template", string(job.Args.Template)))

	err := n.applications.Deliver(ctx, job.Args.ApplicationID, job.Args.Template)
	if err != nil {
		if errors.Is(err, serrors.ErrBadRequest) || errors.Is(err, serrors.ErrNotFound) {
			logger.Warn(ctx, "dropping undeliverable notification", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in delivering notification", zap.Error(err))

		if errors.Is(err, serrors.ErrRateLimited) {
			return river.JobSnooze(n.rateLimitSnooze) //nolint: wrapcheck
		}

		return fmt.Errorf("could not deliver notification: %w", err)
	}

	logger.Info(ctx, "notification delivered")

	return nil
}
