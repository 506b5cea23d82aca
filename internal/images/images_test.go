package images_test

import (
	"context"
	"errors"
	"testing"

	"yokeair/internal/images"
	mocksearch "yokeair/internal/search/mock"
	"yokeair/pkg/assets"
	mockassets "yokeair/pkg/assets/mock"
	"yokeair/pkg/domain"
	"yokeair/pkg/serrors"
	"yokeair/pkg/storage"
	mockstorage "yokeair/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	ctrl   *gomock.Controller
	st     *mockstorage.MockStorage
	assets *mockassets.MockStore
	index  *mocksearch.MockInvalidator
	m      images.Manager
}

func newTestManager(t *testing.T) testDeps {
	t.Helper()

	ctrl := gomock.NewController(t)
	d := testDeps{
		ctrl:   ctrl,
		st:     mockstorage.NewMockStorage(ctrl),
		assets: mockassets.NewMockStore(ctrl),
		index:  mocksearch.NewMockInvalidator(ctrl),
	}
	d.m = images.New(d.st, d.assets, d.index)

	return d
}

func newOwnedProperty(gallery ...string) (domain.Actor, domain.Property) {
	broker := domain.Actor{ID: domain.UserID(uuid.New()), Role: domain.RoleBroker}
	p := domain.Property{ID: domain.PropertyID(uuid.New()), BrokerID: broker.ID}
	for _, id := range gallery {
		p.Images = append(p.Images, domain.Asset{URL: "https://cdn/" + id, ExternalID: id})
	}

	return broker, p
}

func expectHydrate(st *mockstorage.MockStorage) {
	st.EXPECT().Hydrate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, props ...domain.Property) ([]domain.Property, error) {
			return props, nil
		})
}

// expectWithTx runs the transaction callback against a fresh tx mock set up by fn.
func expectWithTx(d testDeps, fn func(tx *mockstorage.MockAllStorage)) {
	d.st.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(d.ctrl)
			fn(tx)

			return cb(tx)
		})
}

func TestManager_AddImages(t *testing.T) {
	d := newTestManager(t)
	broker, p := newOwnedProperty("old")
	files := []assets.File{{Name: "a.jpg", Data: []byte("a")}, {Name: "b.jpg", Data: []byte("b")}}

	d.st.EXPECT().PropertyByID(gomock.Any(), p.ID).Return(&p, nil)
	gomock.InOrder(
		d.assets.EXPECT().Upload(gomock.Any(), assets.File{Folder: "properties", Name: "a.jpg", Data: []byte("a")}).
			Return(domain.Asset{URL: "u-a", ExternalID: "properties/a"}, nil),
		d.assets.EXPECT().Upload(gomock.Any(), gomock.Any()).
			Return(domain.Asset{URL: "u-b", ExternalID: "properties/b"}, nil),
	)
	d.st.EXPECT().AppendPropertyImages(gomock.Any(), p.ID,
		domain.Asset{URL: "u-a", ExternalID: "properties/a"},
		domain.Asset{URL: "u-b", ExternalID: "properties/b"},
	).DoAndReturn(func(_ context.Context, _ domain.PropertyID, imgs ...domain.Asset) (*domain.Property, error) {
		updated := p
		updated.Images = append(append([]domain.Asset{}, p.Images...), imgs...)

		return &updated, nil
	})
	d.index.EXPECT().Invalidate(gomock.Any())
	expectHydrate(d.st)

	res, err := d.m.AddImages(context.Background(), broker, p.ID, files)
	require.NoError(t, err)
	require.Equal(t, []string{"old", "properties/a", "properties/b"}, domain.AssetIDs(res.Images))
}

func TestManager_AddImages_UploadFailureRollsBackAssets(t *testing.T) {
	d := newTestManager(t)
	broker, p := newOwnedProperty()
	files := []assets.File{{Name: "a.jpg", Data: []byte("a")}, {Name: "b.jpg", Data: []byte("b")}}

	d.st.EXPECT().PropertyByID(gomock.Any(), p.ID).Return(&p, nil)
	gomock.InOrder(
		d.assets.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(domain.Asset{ExternalID: "properties/a"}, nil),
		d.assets.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(domain.Asset{}, errors.New("s3 down")),
		d.assets.EXPECT().Destroy(gomock.Any(), "properties/a").Return(nil),
	)

	_, err := d.m.AddImages(context.Background(), broker, p.ID, files)
	require.ErrorIs(t, err, serrors.ErrDependency)
}

func TestManager_AddImages_AppendFailureDestroysUploads(t *testing.T) {
	d := newTestManager(t)
	broker, p := newOwnedProperty()

	d.st.EXPECT().PropertyByID(gomock.Any(), p.ID).Return(&p, nil)
	d.assets.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(domain.Asset{ExternalID: "properties/a"}, nil)
	d.st.EXPECT().AppendPropertyImages(gomock.Any(), p.ID, gomock.Any()).Return(nil, nil)
	d.assets.EXPECT().Destroy(gomock.Any(), "properties/a").Return(errors.New("ignored"))

	_, err := d.m.AddImages(context.Background(), broker, p.ID, []assets.File{{Name: "a", Data: []byte("a")}})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestManager_AddImages_Guards(t *testing.T) {
	d := newTestManager(t)
	_, p := newOwnedProperty()
	stranger := domain.Actor{ID: domain.UserID(uuid.New()), Role: domain.RoleBroker}

	_, err := d.m.AddImages(context.Background(), stranger, p.ID, nil)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	d.st.EXPECT().PropertyByID(gomock.Any(), p.ID).Return(&p, nil)
	_, err = d.m.AddImages(context.Background(), stranger, p.ID, []assets.File{{Name: "a", Data: []byte("a")}})
	require.ErrorIs(t, err, serrors.ErrForbidden)

	d.st.EXPECT().PropertyByID(gomock.Any(), p.ID).Return(nil, nil)
	_, err = d.m.AddImages(context.Background(), stranger, p.ID, []assets.File{{Name: "a", Data: []byte("a")}})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestManager_RemoveImage(t *testing.T) {
	d := newTestManager(t)
	broker, p := newOwnedProperty("a", "b", "c")

	d.st.EXPECT().PropertyByID(gomock.Any(), p.ID).Return(&p, nil)
	updated := p
	updated.Images = []domain.Asset{p.Images[0], p.Images[2]}
	gomock.InOrder(
		d.st.EXPECT().RemovePropertyImage(gomock.Any(), p.ID, "b").Return(&updated, nil),
		d.assets.EXPECT().Destroy(gomock.Any(), "b").Return(errors.New("destroy failures are only logged")),
	)
	d.index.EXPECT().Invalidate(gomock.Any())
	expectHydrate(d.st)

	res, err := d.m.RemoveImage(context.Background(), broker, p.ID, "b")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "c"}, domain.AssetIDs(res.Images))
}

func TestManager_RemoveImage_Missing(t *testing.T) {
	d := newTestManager(t)
	broker, p := newOwnedProperty("a")

	d.st.EXPECT().PropertyByID(gomock.Any(), p.ID).Return(&p, nil)

	_, err := d.m.RemoveImage(context.Background(), broker, p.ID, "zzz")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestManager_Reorder(t *testing.T) {
	d := newTestManager(t)
	broker, p := newOwnedProperty("a", "b", "c")

	expectWithTx(d, func(tx *mockstorage.MockAllStorage) {
		gomock.InOrder(
			tx.EXPECT().LockPropertyByID(gomock.Any(), p.ID).Return(&p, nil),
			tx.EXPECT().UpdateProperty(gomock.Any(), p.ID, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ domain.PropertyID, u storage.PropertyUpdates) (*domain.Property, error) {
					require.Nil(t, u.Price)
					updated := p
					updated.Images = *u.Images

					return &updated, nil
				}),
		)
	})
	d.index.EXPECT().Invalidate(gomock.Any())
	expectHydrate(d.st)

	res, err := d.m.Reorder(context.Background(), broker, p.ID, []string{"c", "a", "b"})
	require.NoError(t, err)
	require.Equal(t, []string{"c", "a", "b"}, domain.AssetIDs(res.Images))
	require.Equal(t, "https://cdn/c", res.Images[0].URL)
}

func TestManager_Reorder_StaleOrder(t *testing.T) {
	d := newTestManager(t)
	broker, p := newOwnedProperty("a", "b", "c")

	// the locked read sees an image appended after the client built its order
	expectWithTx(d, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().LockPropertyByID(gomock.Any(), p.ID).Return(&p, nil)
	})

	_, err := d.m.Reorder(context.Background(), broker, p.ID, []string{"b", "a"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestManager_Reorder_NotOwner(t *testing.T) {
	d := newTestManager(t)
	_, p := newOwnedProperty("a")
	other := domain.Actor{ID: domain.UserID(uuid.New()), Role: domain.RoleBroker}

	expectWithTx(d, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().LockPropertyByID(gomock.Any(), p.ID).Return(&p, nil)
	})

	_, err := d.m.Reorder(context.Background(), other, p.ID, []string{"a"})
	require.ErrorIs(t, err, serrors.ErrForbidden)
}

func TestPermute(t *testing.T) {
	_, p := newOwnedProperty("a", "b")

	tests := []struct {
		name  string
		order []string
	}{
		{name: "missing id", order: []string{"a"}},
		{name: "unknown id", order: []string{"a", "x"}},
		{name: "duplicate id", order: []string{"a", "a"}},
		{name: "extra id", order: []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := images.Permute(p.Images, tt.order)
			require.ErrorIs(t, err, serrors.ErrBadRequest)
		})
	}

	res, err := images.Permute(p.Images, []string{"b", "a"})
	require.NoError(t, err)
	require.Equal(t, []string{"b", "a"}, domain.AssetIDs(res))
}

func TestManager_DestroyAll(t *testing.T) {
	d := newTestManager(t)

	d.assets.EXPECT().Destroy(gomock.Any(), "a").Return(errors.New("keeps going"))
	d.assets.EXPECT().Destroy(gomock.Any(), "b").Return(nil)

	d.m.DestroyAll(context.Background(), []domain.Asset{{ExternalID: "a"}, {URL: "no-id"}, {ExternalID: "b"}})
}
