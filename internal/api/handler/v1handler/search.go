package v1handler

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"yokeair/internal/search"
	"yokeair/pkg/domain"
	"yokeair/pkg/serrors"

	"github.com/google/uuid"
)

// list returns the values of a query parameter that may be repeated or
// comma separated.
func list(q url.Values, name string) []string {
	var out []string
	for _, v := range q[name] {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}

	return out
}

// ParseSearchQuery builds a search.Query from URL query parameters. Every
// malformed parameter is reported.
func ParseSearchQuery(q url.Values) (search.Query, error) {
	var (
		query  search.Query
		fields []serrors.FieldError
	)
	bad := func(name, msg string) {
		fields = append(fields, serrors.FieldError{Field: name, Message: msg})
	}
	float := func(name string) *float64 {
		raw := strings.TrimSpace(q.Get(name))
		if raw == "" {
			return nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			bad(name, "must be a number")

			return nil
		}

		return &v
	}
	integer := func(name string) *int {
		raw := strings.TrimSpace(q.Get(name))
		if raw == "" {
			return nil
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			bad(name, "must be an integer")

			return nil
		}

		return &v
	}
	tags := func(name string) []domain.TagID {
		var ids []domain.TagID
		for _, raw := range list(q, name) {
			id, err := uuid.Parse(raw)
			if err != nil {
				bad(name, "must be a list of tag ids")

				return nil
			}
			ids = append(ids, domain.TagID(id))
		}

		return ids
	}

	query.Boroughs = list(q, "borough")
	query.Neighborhoods = list(q, "neighborhood")
	query.MinPrice = float("minPrice")
	query.MaxPrice = float("maxPrice")
	query.Bedrooms = integer("bedrooms")
	query.Bathrooms = integer("bathrooms")
	query.Amenities = tags("amenities")
	query.Features = tags("features")
	query.Text = strings.TrimSpace(q.Get("q"))
	query.Status = domain.PropertyStatus(q.Get("status"))
	if limit := integer("limit"); limit != nil {
		if *limit < 0 {
			bad("limit", "must not be negative")
		} else {
			query.Limit = uint(*limit)
		}
	}

	if len(fields) > 0 {
		return search.Query{}, serrors.Invalid(fields...)
	}

	return query, nil
}

func (h Handler) Search(w http.ResponseWriter, r *http.Request) error {
	query, err := ParseSearchQuery(r.URL.Query())
	if err != nil {
		return err
	}

	props, err := h.deps.Search.Search(r.Context(), query)
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, props)

	return nil
}
