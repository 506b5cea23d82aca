package v1handler

import (
	"net/http"

	"yokeair/internal/account"
	"yokeair/pkg/domain"
)

type registerRequest struct {
	Role      domain.Role `json:"role"`
	Email     string      `json:"email"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Phone     string      `json:"phone"`
}

type profileRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
}

// RegisterUser creates an account. It is the only unauthenticated route.
func (h Handler) RegisterUser(w http.ResponseWriter, r *http.Request) error {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	u, err := h.deps.Accounts.Register(r.Context(), account.Registration(req))
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusCreated, u)

	return nil
}

func (h Handler) GetProfile(w http.ResponseWriter, r *http.Request) error {
	u, err := h.deps.Accounts.Profile(r.Context(), GetActorFromContext(r.Context()))
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, u)

	return nil
}

func (h Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) error {
	var req profileRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	u, err := h.deps.Accounts.UpdateProfile(r.Context(), GetActorFromContext(r.Context()), account.ProfileUpdate(req))
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, u)

	return nil
}

func (h Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) error {
	if err := h.deps.Accounts.Delete(r.Context(), GetActorFromContext(r.Context())); err != nil {
		return err //nolint: wrapcheck
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}

// SetAvatar expects a multipart body with the image under "file".
func (h Handler) SetAvatar(w http.ResponseWriter, r *http.Request) error {
	file, err := h.readFile(w, r, "file")
	if err != nil {
		return err
	}

	u, err := h.deps.Accounts.SetAvatar(r.Context(), GetActorFromContext(r.Context()), file)
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, u)

	return nil
}

func (h Handler) SavedListings(w http.ResponseWriter, r *http.Request) error {
	props, err := h.deps.Accounts.SavedListings(r.Context(), GetActorFromContext(r.Context()))
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, props)

	return nil
}

func (h Handler) ToggleSavedListing(w http.ResponseWriter, r *http.Request) error {
	id, err := pathPropertyID(r)
	if err != nil {
		return err
	}

	saved, err := h.deps.Accounts.ToggleSavedListing(r.Context(), GetActorFromContext(r.Context()), id)
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, map[string]bool{"saved": saved})

	return nil
}
