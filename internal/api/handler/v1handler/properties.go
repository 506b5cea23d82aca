package v1handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"yokeair/internal/listing"
	"yokeair/pkg/domain"
	"yokeair/pkg/serrors"

	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

// price accepts both JSON numbers and free-form strings such as "$3,200".
type price string

func (p *price) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err //nolint: wrapcheck
		}
		*p = price(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err //nolint: wrapcheck
	}
	*p = price(n.String())

	return nil
}

type propertyRequest struct {
	Address       string                `json:"address"`
	Borough       string                `json:"borough"`
	Neighborhood  string                `json:"neighborhood"`
	City          string                `json:"city"`
	UnitNumber    string                `json:"unitNumber"`
	Bedrooms      *int                  `json:"bedrooms"`
	Bathrooms     *int                  `json:"bathrooms"`
	Price         price                 `json:"price"`
	SquareFootage *int                  `json:"squareFootage"`
	Status        domain.PropertyStatus `json:"status"`
	Amenities     []domain.TagRef       `json:"amenities"`
	Features      []domain.TagRef       `json:"features"`
}

type propertyPatchRequest struct {
	Price         *price           `json:"price"`
	SquareFootage *int             `json:"squareFootage"`
	Features      *[]domain.TagRef `json:"features"`
	Amenities     *[]domain.TagRef `json:"amenities"`
	Images        *[]domain.Asset  `json:"images"`
}

type bulkDeleteRequest struct {
	PropertyIDs []uuid.UUID `json:"propertyIds"`
}

type imageOrderRequest struct {
	Order []string `json:"order"`
}

func pathPropertyID(r *http.Request) (domain.PropertyID, error) {
	id, err := uuid.Parse(r.PathValue("propertyId"))
	if err != nil {
		return domain.PropertyID{}, badParam("propertyId", err)
	}

	return domain.PropertyID(id), nil
}

// decodeStatus reads a {"status": "..."} body.
func decodeStatus(r *http.Request) (string, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrBadRequest, err, "could not read body")
	}

	var status string
	if err := jx.DecodeBytes(body).ObjBytes(func(d *jx.Decoder, key []byte) error {
		if string(key) != "status" {
			return d.Skip()
		}
		status, err = d.Str()

		return err
	}); err != nil {
		return "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid JSON body: %s", err.Error())
	}
	if status == "" {
		return "", serrors.Invalid(serrors.FieldError{Field: "status", Message: "is required"})
	}

	return status, nil
}

func (h Handler) CreateProperty(w http.ResponseWriter, r *http.Request) error {
	var req propertyRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	p, err := h.deps.Listing.CreateProperty(r.Context(), GetActorFromContext(r.Context()), listing.PropertyRequest{
		Address:       req.Address,
		Borough:       req.Borough,
		Neighborhood:  req.Neighborhood,
		City:          req.City,
		UnitNumber:    req.UnitNumber,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		Price:         string(req.Price),
		SquareFootage: req.SquareFootage,
		Status:        req.Status,
		Amenities:     req.Amenities,
		Features:      req.Features,
	})
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusCreated, p)

	return nil
}

func (h Handler) GetProperty(w http.ResponseWriter, r *http.Request) error {
	id, err := pathPropertyID(r)
	if err != nil {
		return err
	}

	p, err := h.deps.Listing.Property(r.Context(), id)
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, p)

	return nil
}

func (h Handler) UpdateProperty(w http.ResponseWriter, r *http.Request) error {
	id, err := pathPropertyID(r)
	if err != nil {
		return err
	}
	var req propertyPatchRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	patch := listing.PropertyPatch{
		SquareFootage: req.SquareFootage,
		Features:      req.Features,
		Amenities:     req.Amenities,
		Images:        req.Images,
	}
	if req.Price != nil {
		s := string(*req.Price)
		patch.Price = &s
	}

	p, err := h.deps.Listing.UpdateProperty(r.Context(), GetActorFromContext(r.Context()), id, patch)
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, p)

	return nil
}

func (h Handler) UpdatePropertyStatus(w http.ResponseWriter, r *http.Request) error {
	id, err := pathPropertyID(r)
	if err != nil {
		return err
	}
	status, err := decodeStatus(r)
	if err != nil {
		return err
	}

	p, err := h.deps.Listing.UpdateStatus(r.Context(), GetActorFromContext(r.Context()), id, domain.PropertyStatus(status))
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, p)

	return nil
}

func (h Handler) DeleteProperty(w http.ResponseWriter, r *http.Request) error {
	id, err := pathPropertyID(r)
	if err != nil {
		return err
	}

	p, err := h.deps.Listing.DeleteProperty(r.Context(), GetActorFromContext(r.Context()), id)
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, p)

	return nil
}

func (h Handler) BulkDeleteProperties(w http.ResponseWriter, r *http.Request) error {
	var req bulkDeleteRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	ids := make([]domain.PropertyID, 0, len(req.PropertyIDs))
	for _, id := range req.PropertyIDs {
		ids = append(ids, domain.PropertyID(id))
	}

	deleted, err := h.deps.Listing.BulkDelete(r.Context(), GetActorFromContext(r.Context()), ids)
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, deleted)

	return nil
}

func (h Handler) BrokerProperties(w http.ResponseWriter, r *http.Request) error {
	props, err := h.deps.Listing.BrokerProperties(r.Context(), GetActorFromContext(r.Context()))
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, props)

	return nil
}

func (h Handler) ListTags(w http.ResponseWriter, r *http.Request) error {
	tags, err := h.deps.Listing.Tags(r.Context(), domain.TagType(r.URL.Query().Get("type")))
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, tags)

	return nil
}

// AddImages expects a multipart body with one or more files under "images".
func (h Handler) AddImages(w http.ResponseWriter, r *http.Request) error {
	id, err := pathPropertyID(r)
	if err != nil {
		return err
	}
	files, err := h.readFiles(w, r, "images")
	if err != nil {
		return err
	}

	p, err := h.deps.Images.AddImages(r.Context(), GetActorFromContext(r.Context()), id, files)
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, p)

	return nil
}

func (h Handler) RemoveImage(w http.ResponseWriter, r *http.Request) error {
	id, err := pathPropertyID(r)
	if err != nil {
		return err
	}

	p, err := h.deps.Images.RemoveImage(r.Context(), GetActorFromContext(r.Context()), id, r.PathValue("assetId"))
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, p)

	return nil
}

func (h Handler) ReorderImages(w http.ResponseWriter, r *http.Request) error {
	id, err := pathPropertyID(r)
	if err != nil {
		return err
	}
	var req imageOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	p, err := h.deps.Images.Reorder(r.Context(), GetActorFromContext(r.Context()), id, req.Order)
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, p)

	return nil
}
