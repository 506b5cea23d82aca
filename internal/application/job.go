package application

import (
	"yokeair/pkg/domain"
	"yokeair/pkg/notifier"

	"github.com/riverqueue/river"
)

// NotificationJobArgs asks the worker to deliver one application
// notification. The message content is built at delivery time from the
// current state of the application.
type NotificationJobArgs struct {
	ApplicationID domain.ApplicationID `json:"applicationId"`
	Template      notifier.Template    `json:"template"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the notification worker.
func (args NotificationJobArgs) Kind() string { return "ApplicationNotificationJob" }

// InsertOpts returns the River options used when the job is enqueued.
func (args NotificationJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{MaxAttempts: args.maxAttempts}
}
