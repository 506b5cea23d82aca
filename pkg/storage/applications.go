package storage

import (
	"context"

	"yokeair/pkg/domain"
)

// ApplicationStorage persists applications.
type ApplicationStorage interface {
	// StoreApplication inserts an application. A second pending application
	// of the same applicant for the same property yields ErrDuplicate.
	StoreApplication(ctx context.Context, application domain.Application) (*domain.Application, error)
	// ApplicationByID returns nil when the application does not exist.
	ApplicationByID(ctx context.Context, ID domain.ApplicationID) (*domain.Application, error)
	// ApplicationsByApplicant returns the applicant's applications, newest first.
	ApplicationsByApplicant(ctx context.Context, applicantID domain.UserID) ([]domain.Application, error)
	// ApplicationsByProperties returns every application against the given
	// properties, newest first.
	ApplicationsByProperties(ctx context.Context, propertyIDs ...domain.PropertyID) ([]domain.Application, error)
	// PendingApplicationExists reports whether the applicant has a pending
	// application for the property.
	PendingApplicationExists(ctx context.Context, applicantID domain.UserID, propertyID domain.PropertyID) (bool, error)
	// UpdateApplicationStatus writes status (even when unchanged) and returns
	// the updated row, or nil.
	UpdateApplicationStatus(ctx context.Context,
		ID domain.ApplicationID,
		status domain.ApplicationStatus) (*domain.Application, error)
	// AppendApplicationDocument appends doc to the document list and returns
	// the updated row, or nil.
	AppendApplicationDocument(ctx context.Context,
		ID domain.ApplicationID,
		doc domain.Document) (*domain.Application, error)
}
