package v1handler_test

import (
	"net/url"
	"testing"

	"yokeair/internal/api/handler/v1handler"
	"yokeair/pkg/domain"
	"yokeair/pkg/serrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestParseSearchQuery(t *testing.T) {
	amenity := uuid.New()

	q, err := v1handler.ParseSearchQuery(url.Values{
		"borough":      {"Manhattan", " Queens , "},
		"neighborhood": {"Astoria"},
		"maxPrice":     {"4500.50"},
		"bathrooms":    {"1"},
		"amenities":    {amenity.String()},
		"status":       {"available"},
		"limit":        {"10"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"Manhattan", "Queens"}, q.Boroughs)
	require.Equal(t, []string{"Astoria"}, q.Neighborhoods)
	require.Nil(t, q.MinPrice)
	require.InDelta(t, 4500.5, *q.MaxPrice, 0)
	require.Equal(t, 1, *q.Bathrooms)
	require.Nil(t, q.Bedrooms)
	require.Equal(t, []domain.TagID{domain.TagID(amenity)}, q.Amenities)
	require.Equal(t, domain.PropertyStatusAvailable, q.Status)
	require.Equal(t, uint(10), q.Limit)
}

func TestParseSearchQuery_Malformed(t *testing.T) {
	_, err := v1handler.ParseSearchQuery(url.Values{
		"minPrice": {"cheap"},
		"bedrooms": {"two"},
		"features": {"balcony"},
		"limit":    {"-1"},
	})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	var ve *serrors.ValidationError
	require.ErrorAs(t, err, &ve)
	fields := make([]string, 0, len(ve.Fields))
	for _, f := range ve.Fields {
		fields = append(fields, f.Field)
	}
	require.Equal(t, []string{"minPrice", "bedrooms", "features", "limit"}, fields)
}
