// Package application implements the rental and purchase application
// workflow: submission, review by the owning broker, supporting documents
// and the notifications each step triggers.
package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"yokeair/internal/config"
	"yokeair/pkg/assets"
	"yokeair/pkg/domain"
	"yokeair/pkg/logger"
	"yokeair/pkg/notifier"
	"yokeair/pkg/serrors"
	"yokeair/pkg/storage"

	"go.uber.org/zap"
)

const documentsFolder = "documents"

// Options configure notification jobs.
type Options struct {
	// MaxAttempts is the maximum number of delivery attempts of a notification.
	MaxAttempts int
	// Now is the clock used for document timestamps. Defaults to time.Now.
	Now func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{MaxAttempts: cfg.Worker.MaxAttempts}
}

type service struct {
	options  Options
	storage  storage.Storage
	assets   assets.Store
	notifier notifier.Notifier
}

var statusTemplates = map[domain.ApplicationStatus]notifier.Template{
	domain.ApplicationStatusUnderReview: notifier.TemplateApplicationUnderReview,
	domain.ApplicationStatusApproved:    notifier.TemplateApplicationApproved,
	domain.ApplicationStatusRejected:    notifier.TemplateApplicationRejected,
}

// templateStatus is the status a notification announces. It is fixed when the
// job is enqueued, so a later change does not leak into an older message.
func templateStatus(tmpl notifier.Template, current domain.ApplicationStatus) domain.ApplicationStatus {
	if tmpl == notifier.TemplateApplicationSubmitted {
		return domain.ApplicationStatusPending
	}
	for status, t := range statusTemplates {
		if t == tmpl {
			return status
		}
	}

	return current
}

func (s service) Submit(ctx context.Context,
	actor domain.Actor,
	propertyID domain.PropertyID,
	details Details) (*domain.Application, error) {
	if actor.Role != domain.RoleClient {
		return nil, serrors.With(serrors.ErrForbidden, "only clients can apply for properties")
	}
	if details.Type == "" {
		details.Type = domain.ApplicationTypeRental
	}

	var v serrors.Validator
	v.Check(details.Type.Valid(), "applicationType", "unknown application type %q", details.Type)
	v.Check(details.MonthlyIncome >= 0, "monthlyIncome", "must not be negative")
	v.Check(details.Employment.YearsEmployed >= 0, "employment.yearsEmployed", "must not be negative")
	if err := v.Err(); err != nil {
		return nil, err
	}

	property, err := s.storage.PropertyByID(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("could not get property: %w", err)
	}
	if property == nil {
		return nil, serrors.With(serrors.ErrNotFound, "property not found")
	}
	if property.Status != domain.PropertyStatusAvailable {
		return nil, serrors.With(serrors.ErrConflict, "this property is not available")
	}

	pending, err := s.storage.PendingApplicationExists(ctx, actor.ID, propertyID)
	if err != nil {
		return nil, fmt.Errorf("could not check pending applications: %w", err)
	}
	if pending {
		return nil, serrors.With(serrors.ErrConflict, "you already have a pending application for this property")
	}

	app, err := s.storage.StoreApplication(ctx, domain.Application{
		ApplicantID:   actor.ID,
		PropertyID:    propertyID,
		Status:        domain.ApplicationStatusPending,
		Type:          details.Type,
		MonthlyIncome: details.MonthlyIncome,
		Employment:    details.Employment,
		Notes:         strings.TrimSpace(details.Notes),
	})
	if errors.Is(err, storage.ErrDuplicate) {
		return nil, serrors.Wrap(serrors.ErrConflict, err, "you already have a pending application for this property")
	}
	if err != nil {
		return nil, fmt.Errorf("could not store application: %w", err)
	}

	s.enqueue(ctx, app.ID, notifier.TemplateApplicationSubmitted)

	return app, nil
}

// enqueue schedules a notification. The mutation it reports on is already
// committed, so failures are only logged.
func (s service) enqueue(ctx context.Context, id domain.ApplicationID, tmpl notifier.Template) {
	if _, err := s.storage.AddJob(ctx, NotificationJobArgs{
		ApplicationID: id,
		Template:      tmpl,
		maxAttempts:   s.options.MaxAttempts,
	}, nil); err != nil {
		logger.Error(ctx, "could not enqueue application notification",
			zap.String("applicationID", id.String()),
			zap.String("template", string(tmpl)),
			zap.Error(err))
	}
}

func (s service) ListForApplicant(ctx context.Context, actor domain.Actor) ([]domain.Application, error) {
	apps, err := s.storage.ApplicationsByApplicant(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("could not get applications: %w", err)
	}

	return apps, nil
}

func (s service) ListForBroker(ctx context.Context, actor domain.Actor) ([]domain.Application, error) {
	if actor.Role != domain.RoleBroker {
		return nil, serrors.With(serrors.ErrForbidden, "only brokers can review applications")
	}

	buildings, err := s.storage.BuildingsByBroker(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("could not get broker buildings: %w", err)
	}
	if len(buildings) == 0 {
		return []domain.Application{}, nil
	}
	buildingIDs := make([]domain.BuildingID, 0, len(buildings))
	for _, b := range buildings {
		buildingIDs = append(buildingIDs, b.ID)
	}

	props, err := s.storage.PropertiesByBuildings(ctx, buildingIDs...)
	if err != nil {
		return nil, fmt.Errorf("could not get broker properties: %w", err)
	}
	if len(props) == 0 {
		return []domain.Application{}, nil
	}
	propertyIDs := make([]domain.PropertyID, 0, len(props))
	for _, p := range props {
		propertyIDs = append(propertyIDs, p.ID)
	}

	apps, err := s.storage.ApplicationsByProperties(ctx, propertyIDs...)
	if err != nil {
		return nil, fmt.Errorf("could not get applications: %w", err)
	}

	return apps, nil
}

func (s service) application(ctx context.Context, id domain.ApplicationID) (*domain.Application, error) {
	app, err := s.storage.ApplicationByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get application: %w", err)
	}
	if app == nil {
		return nil, serrors.With(serrors.ErrNotFound, "application not found")
	}

	return app, nil
}

// reviews reports whether actor owns the building of the application's unit.
func (s service) reviews(ctx context.Context, actor domain.Actor, app *domain.Application) (bool, error) {
	if actor.Role != domain.RoleBroker {
		return false, nil
	}

	property, err := s.storage.PropertyByID(ctx, app.PropertyID)
	if err != nil {
		return false, fmt.Errorf("could not get property: %w", err)
	}
	if property == nil {
		return false, nil
	}
	building, err := s.storage.BuildingByID(ctx, property.BuildingID)
	if err != nil {
		return false, fmt.Errorf("could not get building: %w", err)
	}

	return building != nil && building.BrokerID == actor.ID, nil
}

func (s service) Get(ctx context.Context, actor domain.Actor, id domain.ApplicationID) (*domain.Application, error) {
	app, err := s.application(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Is(app.ApplicantID) {
		return app, nil
	}

	ok, err := s.reviews(ctx, actor, app)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, serrors.With(serrors.ErrForbidden, "you cannot view this application")
	}

	return app, nil
}

// SetStatus always writes status; a notification is enqueued only when the
// status actually changed.
func (s service) SetStatus(ctx context.Context,
	actor domain.Actor,
	id domain.ApplicationID,
	status domain.ApplicationStatus) (*domain.Application, error) {
	if !status.Valid() {
		return nil, serrors.Invalid(serrors.FieldError{Field: "status", Message: fmt.Sprintf("unknown status %q", status)})
	}

	app, err := s.application(ctx, id)
	if err != nil {
		return nil, err
	}
	ok, err := s.reviews(ctx, actor, app)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, serrors.With(serrors.ErrForbidden, "only the broker of this property can review the application")
	}

	updated, err := s.storage.UpdateApplicationStatus(ctx, id, status)
	if errors.Is(err, storage.ErrDuplicate) {
		return nil, serrors.Wrap(serrors.ErrConflict, err, "the applicant already has a pending application for this property")
	}
	if err != nil {
		return nil, fmt.Errorf("could not update application status: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "application not found")
	}

	if app.Status != status {
		if tmpl, ok := statusTemplates[status]; ok {
			s.enqueue(ctx, id, tmpl)
		}
	}

	return updated, nil
}

// AttachDocument uploads file and appends it to the application. Nothing is
// written when the upload fails; the uploaded asset is destroyed when the
// append fails.
func (s service) AttachDocument(ctx context.Context,
	actor domain.Actor,
	id domain.ApplicationID,
	docType string,
	file assets.File) (*domain.Application, error) {
	var v serrors.Validator
	v.Required("type", docType)
	v.Check(len(file.Data) > 0, "file", "is required")
	if err := v.Err(); err != nil {
		return nil, err
	}

	app, err := s.application(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.Is(app.ApplicantID) {
		return nil, serrors.With(serrors.ErrForbidden, "only the applicant can attach documents")
	}

	file.Folder = documentsFolder
	asset, err := s.assets.Upload(ctx, file)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrDependency, err, "could not upload document")
	}

	updated, err := s.storage.AppendApplicationDocument(ctx, id, domain.Document{
		Type:       strings.TrimSpace(docType),
		URL:        asset.URL,
		AssetID:    asset.ExternalID,
		UploadedAt: s.options.Now().UTC(),
	})
	if err == nil && updated == nil {
		err = serrors.With(serrors.ErrNotFound, "application not found")
	}
	if err != nil {
		if derr := s.assets.Destroy(ctx, asset.ExternalID); derr != nil {
			logger.Warn(ctx, "could not destroy orphaned document",
				zap.String("assetID", asset.ExternalID),
				zap.Error(derr))
		}

		return nil, fmt.Errorf("could not attach document: %w", err)
	}

	return updated, nil
}

// Deliver builds and sends the notification to the applicant. The announced
// status comes from tmpl; the rest is read from the current application. A
// missing application or applicant is reported as NOT_FOUND so the job can be
// dropped.
func (s service) Deliver(ctx context.Context, id domain.ApplicationID, tmpl notifier.Template) error {
	app, err := s.application(ctx, id)
	if err != nil {
		return err
	}

	applicant, err := s.storage.UserByID(ctx, app.ApplicantID)
	if err != nil {
		return fmt.Errorf("could not get applicant: %w", err)
	}
	if applicant == nil {
		return serrors.With(serrors.ErrNotFound, "applicant not found")
	}

	property, err := s.storage.PropertyByID(ctx, app.PropertyID)
	if err != nil {
		return fmt.Errorf("could not get property: %w", err)
	}
	if property == nil {
		return serrors.With(serrors.ErrNotFound, "property not found")
	}
	hydrated, err := s.storage.Hydrate(ctx, *property)
	if err != nil {
		return fmt.Errorf("could not hydrate property: %w", err)
	}

	payload := notifier.Payload{
		"applicationId":   app.ID.String(),
		"applicationType": string(app.Type),
		"status":          string(templateStatus(tmpl, app.Status)),
		"firstName":       applicant.FirstName,
		"unitNumber":      property.UnitNumber,
	}
	if b := hydrated[0].Building; b != nil {
		payload["street"] = b.Street
		payload["borough"] = b.Borough
	}

	to := notifier.Recipient{
		Email: applicant.Email,
		Name:  strings.TrimSpace(applicant.FirstName + " " + applicant.LastName),
	}
	if err := s.notifier.Send(ctx, tmpl, to, payload); err != nil {
		return fmt.Errorf("could not send notification: %w", err)
	}

	return nil
}

// New creates an application workflow Service.
func New(storage storage.Storage,
	assets assets.Store,
	notifier notifier.Notifier,
	options Options) Service {
	if options.Now == nil {
		options.Now = time.Now
	}

	return &service{
		options:  options,
		storage:  storage,
		assets:   assets,
		notifier: notifier,
	}
}
