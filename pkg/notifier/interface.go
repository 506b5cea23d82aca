// Package notifier delivers templated transactional messages to users.
package notifier

import "context"

// Template names a message template known to the delivery provider.
type Template string

// Templates used by the application workflow.
const (
	TemplateApplicationSubmitted   Template = "application_submitted"
	TemplateApplicationUnderReview Template = "application_under_review"
	TemplateApplicationApproved    Template = "application_approved"
	TemplateApplicationRejected    Template = "application_rejected"
)

// Recipient is the addressee of a message.
type Recipient struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Payload holds the template variables.
type Payload map[string]any

// Notifier sends a single message. Implementations return an error carrying
// serrors.ErrBadRequest for permanent failures (unknown template, invalid
// recipient) and serrors.ErrRateLimited when the provider throttles.
//
//go:generate mockgen -package mocknotifier -source=interface.go -destination=mock/mocknotifier.go *
type Notifier interface {
	Send(ctx context.Context, tmpl Template, to Recipient, payload Payload) error
}
