package v1handler

import "net/http"

// Register mounts every v1 route on mux. All routes but user registration
// require a bearer token.
func (h *Handler) Register(mux *http.ServeMux, sec *SecHandler) {
	public := func(pattern string, fn func(w http.ResponseWriter, r *http.Request) error) {
		mux.HandleFunc(pattern, h.handle(fn))
	}
	private := func(pattern string, fn func(w http.ResponseWriter, r *http.Request) error) {
		mux.HandleFunc(pattern, sec.Authenticated(h, h.handle(fn)))
	}

	public("POST /v1/users", h.RegisterUser)
	private("GET /v1/me", h.GetProfile)
	private("PATCH /v1/me", h.UpdateProfile)
	private("DELETE /v1/me", h.DeleteAccount)
	private("PUT /v1/me/avatar", h.SetAvatar)
	private("GET /v1/me/saved", h.SavedListings)
	private("POST /v1/me/saved/{propertyId}", h.ToggleSavedListing)

	private("POST /v1/properties", h.CreateProperty)
	private("POST /v1/properties/bulk-delete", h.BulkDeleteProperties)
	private("GET /v1/properties/{propertyId}", h.GetProperty)
	private("PATCH /v1/properties/{propertyId}", h.UpdateProperty)
	private("DELETE /v1/properties/{propertyId}", h.DeleteProperty)
	private("PUT /v1/properties/{propertyId}/status", h.UpdatePropertyStatus)
	private("POST /v1/properties/{propertyId}/images", h.AddImages)
	private("PUT /v1/properties/{propertyId}/images/order", h.ReorderImages)
	private("DELETE /v1/properties/{propertyId}/images/{assetId...}", h.RemoveImage)
	private("GET /v1/broker/properties", h.BrokerProperties)
	private("GET /v1/tags", h.ListTags)
	private("GET /v1/search", h.Search)

	private("POST /v1/applications", h.SubmitApplication)
	private("GET /v1/applications", h.ListApplications)
	private("GET /v1/applications/{applicationId}", h.GetApplication)
	private("PUT /v1/applications/{applicationId}/status", h.SetApplicationStatus)
	private("POST /v1/applications/{applicationId}/documents", h.AttachDocument)
}
