package v1handler

import (
	"net/http"

	"yokeair/internal/application"
	"yokeair/pkg/domain"

	"github.com/google/uuid"
)

type applicationRequest struct {
	PropertyID    uuid.UUID              `json:"propertyId"`
	Type          domain.ApplicationType `json:"applicationType"`
	MonthlyIncome float64                `json:"monthlyIncome"`
	Employment    domain.Employment      `json:"employment"`
	Notes         string                 `json:"notes"`
}

func pathApplicationID(r *http.Request) (domain.ApplicationID, error) {
	id, err := uuid.Parse(r.PathValue("applicationId"))
	if err != nil {
		return domain.ApplicationID{}, badParam("applicationId", err)
	}

	return domain.ApplicationID(id), nil
}

func (h Handler) SubmitApplication(w http.ResponseWriter, r *http.Request) error {
	var req applicationRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	app, err := h.deps.Applications.Submit(r.Context(),
		GetActorFromContext(r.Context()),
		domain.PropertyID(req.PropertyID),
		application.Details{
			Type:          req.Type,
			MonthlyIncome: req.MonthlyIncome,
			Employment:    req.Employment,
			Notes:         req.Notes,
		})
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusCreated, app)

	return nil
}

// ListApplications returns the broker's incoming applications or the
// client's own ones depending on the caller's role.
func (h Handler) ListApplications(w http.ResponseWriter, r *http.Request) error {
	actor := GetActorFromContext(r.Context())

	var (
		apps []domain.Application
		err  error
	)
	if actor.Role == domain.RoleBroker {
		apps, err = h.deps.Applications.ListForBroker(r.Context(), actor)
	} else {
		apps, err = h.deps.Applications.ListForApplicant(r.Context(), actor)
	}
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, apps)

	return nil
}

func (h Handler) GetApplication(w http.ResponseWriter, r *http.Request) error {
	id, err := pathApplicationID(r)
	if err != nil {
		return err
	}

	app, err := h.deps.Applications.Get(r.Context(), GetActorFromContext(r.Context()), id)
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, app)

	return nil
}

func (h Handler) SetApplicationStatus(w http.ResponseWriter, r *http.Request) error {
	id, err := pathApplicationID(r)
	if err != nil {
		return err
	}
	status, err := decodeStatus(r)
	if err != nil {
		return err
	}

	app, err := h.deps.Applications.SetStatus(r.Context(),
		GetActorFromContext(r.Context()),
		id,
		domain.ApplicationStatus(status))
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, app)

	return nil
}

// AttachDocument expects a multipart body with the file under "file" and
// its kind under "type".
func (h Handler) AttachDocument(w http.ResponseWriter, r *http.Request) error {
	id, err := pathApplicationID(r)
	if err != nil {
		return err
	}
	file, err := h.readFile(w, r, "file")
	if err != nil {
		return err
	}

	app, err := h.deps.Applications.AttachDocument(r.Context(),
		GetActorFromContext(r.Context()),
		id,
		r.FormValue("type"),
		file)
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusCreated, app)

	return nil
}
