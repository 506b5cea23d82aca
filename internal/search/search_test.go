package search_test

import (
	"context"
	"errors"
	"testing"

	"yokeair/internal/search"
	mocksearch "yokeair/internal/search/mock"
	"yokeair/pkg/domain"
	"yokeair/pkg/serrors"
	"yokeair/pkg/storage"
	mockstorage "yokeair/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T { return &v }

func TestFilter_Validation(t *testing.T) {
	tests := []struct {
		name   string
		q      search.Query
		fields []string
	}{
		{name: "min above max", q: search.Query{MinPrice: ptr(3000.0), MaxPrice: ptr(2000.0)}, fields: []string{"minPrice"}},
		{name: "negative counts", q: search.Query{Bedrooms: ptr(-1), Bathrooms: ptr(-2)}, fields: []string{"bedrooms", "bathrooms"}},
		{name: "unknown status", q: search.Query{Status: "sold"}, fields: []string{"status"}},
		{name: "limit too large", q: search.Query{Limit: search.MaxLimit + 1}, fields: []string{"limit"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := search.Filter(tt.q)
			require.ErrorIs(t, err, serrors.ErrBadRequest)

			var ve *serrors.ValidationError
			require.ErrorAs(t, err, &ve)
			var got []string
			for _, f := range ve.Fields {
				got = append(got, f.Field)
			}
			require.Equal(t, tt.fields, got)
		})
	}
}

func TestFilter_Normalizes(t *testing.T) {
	a := domain.TagID(uuid.MustParse("00000000-0000-0000-0000-00000000000a"))
	b := domain.TagID(uuid.MustParse("00000000-0000-0000-0000-00000000000b"))

	f, err := search.Filter(search.Query{
		Boroughs:  []string{" Manhattan", "Brooklyn", "Manhattan ", ""},
		Amenities: []domain.TagID{b, a, b},
		Text:      "  loft ",
		MinPrice:  ptr(1000.0),
		MaxPrice:  ptr(1000.0),
	})
	require.NoError(t, err)
	require.Equal(t, []string{"Brooklyn", "Manhattan"}, f.Boroughs)
	require.Equal(t, []domain.TagID{a, b}, f.AmenityIDs)
	require.Equal(t, "loft", f.Text)
	require.Equal(t, uint(search.MaxLimit), f.Limit)
}

func TestEngine_Search_NoCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	e := search.New(st, nil)

	p := domain.Property{ID: domain.PropertyID(uuid.New()), UnitNumber: "1A"}
	hydrated := p
	hydrated.Building = &domain.Building{Street: "123 Main St"}

	st.EXPECT().SearchProperties(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f storage.PropertyFilter) ([]domain.Property, error) {
			require.Equal(t, []string{"Queens"}, f.Boroughs)
			require.Equal(t, 2, *f.Bedrooms)

			return []domain.Property{p}, nil
		})
	st.EXPECT().Hydrate(gomock.Any(), p).Return([]domain.Property{hydrated}, nil)

	res, err := e.Search(context.Background(), search.Query{Boroughs: []string{"Queens"}, Bedrooms: ptr(2)})
	require.NoError(t, err)
	require.Equal(t, []domain.Property{hydrated}, res)

	// no cache configured: invalidation is a no-op
	e.Invalidate(context.Background())
}

func TestEngine_Search_InvalidQueryHitsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	c := mocksearch.NewMockCache(ctrl)
	e := search.New(st, c)

	_, err := e.Search(context.Background(), search.Query{Bathrooms: ptr(-1)})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestEngine_Search_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	c := mocksearch.NewMockCache(ctrl)
	e := search.New(st, c)

	cached := []domain.Property{{UnitNumber: "cached"}}
	c.EXPECT().Generation(gomock.Any(), "search").Return(int64(4), nil)
	c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, key string, dst any) (bool, error) {
			require.Regexp(t, `^search:4:[0-9a-f]{32}$`, key)
			*(dst.(*[]domain.Property)) = cached

			return true, nil
		})

	res, err := e.Search(context.Background(), search.Query{Text: "loft"})
	require.NoError(t, err)
	require.Equal(t, cached, res)
}

func TestEngine_Search_CacheMissStores(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	c := mocksearch.NewMockCache(ctrl)
	e := search.New(st, c)

	var storedKey string
	c.EXPECT().Generation(gomock.Any(), "search").Return(int64(0), nil).Times(2)
	c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, key string, _ any) (bool, error) {
			if storedKey != "" {
				require.Equal(t, storedKey, key, "equivalent queries share a key")
			}

			return false, nil
		}).Times(2)
	c.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, key string, v any) error {
			storedKey = key
			require.Equal(t, []domain.Property{}, v)

			return nil
		}).Times(2)
	st.EXPECT().SearchProperties(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	st.EXPECT().Hydrate(gomock.Any()).Return(nil, nil).Times(2)

	_, err := e.Search(context.Background(), search.Query{Boroughs: []string{"Bronx", "Queens"}})
	require.NoError(t, err)
	_, err = e.Search(context.Background(), search.Query{Boroughs: []string{"Queens", " Bronx"}})
	require.NoError(t, err)
}

func TestEngine_Search_CacheDownFallsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	c := mocksearch.NewMockCache(ctrl)
	e := search.New(st, c)

	c.EXPECT().Generation(gomock.Any(), "search").Return(int64(0), errors.New("connection refused"))
	st.EXPECT().SearchProperties(gomock.Any(), gomock.Any()).Return([]domain.Property{{UnitNumber: "2B"}}, nil)
	st.EXPECT().Hydrate(gomock.Any(), gomock.Any()).Return([]domain.Property{{UnitNumber: "2B"}}, nil)

	res, err := e.Search(context.Background(), search.Query{})
	require.NoError(t, err)
	require.Len(t, res, 1)
}

func TestEngine_Invalidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mocksearch.NewMockCache(ctrl)
	e := search.New(mockstorage.NewMockStorage(ctrl), c)

	c.EXPECT().Bump(gomock.Any(), "search").Return(int64(1), nil)
	e.Invalidate(context.Background())

	c.EXPECT().Bump(gomock.Any(), "search").Return(int64(0), errors.New("down"))
	e.Invalidate(context.Background())
}
