package application

import (
	"context"

	"yokeair/pkg/assets"
	"yokeair/pkg/domain"
	"yokeair/pkg/notifier"
)

// Details is the applicant supplied part of an application.
type Details struct {
	// Type defaults to rental.
	Type          domain.ApplicationType
	MonthlyIncome float64
	Employment    domain.Employment
	Notes         string
}

//go:generate mockgen -package mockapplication -source=interface.go -destination=mock/mockapplication.go *
type Service interface {
	Submit(ctx context.Context,
		actor domain.Actor,
		propertyID domain.PropertyID,
		details Details) (*domain.Application, error)
	ListForApplicant(ctx context.Context, actor domain.Actor) ([]domain.Application, error)
	// ListForBroker returns applications on units inside the broker's buildings.
	ListForBroker(ctx context.Context, actor domain.Actor) ([]domain.Application, error)
	Get(ctx context.Context, actor domain.Actor, ID domain.ApplicationID) (*domain.Application, error)
	SetStatus(ctx context.Context,
		actor domain.Actor,
		ID domain.ApplicationID,
		status domain.ApplicationStatus) (*domain.Application, error)
	AttachDocument(ctx context.Context,
		actor domain.Actor,
		ID domain.ApplicationID,
		docType string,
		file assets.File) (*domain.Application, error)
	// Deliver sends the notification described by a queued job.
	Deliver(ctx context.Context, ID domain.ApplicationID, tmpl notifier.Template) error
}
