// Package images manages property galleries. Uploads happen before the
// gallery is touched and asset destruction happens after the gallery change
// is persisted, so a failing asset store never leaves a gallery entry
// pointing at a missing file.
package images

import (
	"context"
	"fmt"

	"yokeair/internal/search"
	"yokeair/pkg/assets"
	"yokeair/pkg/domain"
	"yokeair/pkg/logger"
	"yokeair/pkg/serrors"
	"yokeair/pkg/storage"

	"go.uber.org/zap"
)

const folder = "properties"

type manager struct {
	storage storage.Storage
	assets  assets.Store
	index   search.Invalidator
}

// ownedProperty loads the property through load and checks that actor owns it.
func ownedProperty(ctx context.Context,
	load func(context.Context, domain.PropertyID) (*domain.Property, error),
	actor domain.Actor,
	id domain.PropertyID) (*domain.Property, error) {
	p, err := load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get property: %w", err)
	}
	if p == nil {
		return nil, serrors.With(serrors.ErrNotFound, "property not found")
	}
	if !p.OwnedBy(actor) {
		return nil, serrors.With(serrors.ErrForbidden, "you can only manage images of your own listings")
	}

	return p, nil
}

func (m manager) AddImages(ctx context.Context,
	actor domain.Actor,
	propertyID domain.PropertyID,
	files []assets.File) (*domain.Property, error) {
	var v serrors.Validator
	v.Check(len(files) > 0, "images", "at least one image is required")
	for i, f := range files {
		v.Check(len(f.Data) > 0, fmt.Sprintf("images[%d]", i), "is empty")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	if _, err := ownedProperty(ctx, m.storage.PropertyByID, actor, propertyID); err != nil {
		return nil, err
	}

	uploaded := make([]domain.Asset, 0, len(files))
	for _, f := range files {
		f.Folder = folder
		asset, err := m.assets.Upload(ctx, f)
		if err != nil {
			m.DestroyAll(ctx, uploaded)

			return nil, serrors.Wrap(serrors.ErrDependency, err, "could not upload image %q", f.Name)
		}
		uploaded = append(uploaded, asset)
	}

	updated, err := m.storage.AppendPropertyImages(ctx, propertyID, uploaded...)
	if err == nil && updated == nil {
		err = serrors.With(serrors.ErrNotFound, "property not found")
	}
	if err != nil {
		m.DestroyAll(ctx, uploaded)

		return nil, fmt.Errorf("could not append images: %w", err)
	}
	m.index.Invalidate(ctx)

	return m.hydrate(ctx, *updated)
}

func (m manager) RemoveImage(ctx context.Context,
	actor domain.Actor,
	propertyID domain.PropertyID,
	assetID string) (*domain.Property, error) {
	p, err := ownedProperty(ctx, m.storage.PropertyByID, actor, propertyID)
	if err != nil {
		return nil, err
	}

	found := false
	for _, img := range p.Images {
		if img.ExternalID == assetID {
			found = true

			break
		}
	}
	if !found {
		return nil, serrors.With(serrors.ErrNotFound, "image not found")
	}

	updated, err := m.storage.RemovePropertyImage(ctx, propertyID, assetID)
	if err != nil {
		return nil, fmt.Errorf("could not remove image: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "property not found")
	}
	m.index.Invalidate(ctx)

	if err := m.assets.Destroy(ctx, assetID); err != nil {
		logger.Warn(ctx, "could not destroy removed image",
			zap.String("propertyID", propertyID.String()),
			zap.String("assetID", assetID),
			zap.Error(err))
	}

	return m.hydrate(ctx, *updated)
}

func (m manager) Reorder(ctx context.Context,
	actor domain.Actor,
	propertyID domain.PropertyID,
	order []string) (*domain.Property, error) {
	var updated *domain.Property
	if err := m.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		p, err := ownedProperty(ctx, tx.LockPropertyByID, actor, propertyID)
		if err != nil {
			return err
		}

		reordered, err := Permute(p.Images, order)
		if err != nil {
			return err
		}

		updated, err = tx.UpdateProperty(ctx, propertyID, storage.PropertyUpdates{Images: &reordered})
		if err != nil {
			return fmt.Errorf("could not reorder images: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrNotFound, "property not found")
		}

		return nil
	}); err != nil {
		return nil, err
	}
	m.index.Invalidate(ctx)

	return m.hydrate(ctx, *updated)
}

// Permute returns images arranged by order, which must list every current
// asset id exactly once.
func Permute(images []domain.Asset, order []string) ([]domain.Asset, error) {
	byID := make(map[string]domain.Asset, len(images))
	for _, img := range images {
		byID[img.ExternalID] = img
	}

	invalid := serrors.Invalid(serrors.FieldError{
		Field:   "order",
		Message: "must list every current image exactly once",
	})
	if len(order) != len(images) {
		return nil, invalid
	}
	res := make([]domain.Asset, 0, len(order))
	for _, id := range order {
		img, ok := byID[id]
		if !ok {
			return nil, invalid
		}
		delete(byID, id)
		res = append(res, img)
	}

	return res, nil
}

func (m manager) DestroyAll(ctx context.Context, images []domain.Asset) {
	for _, img := range images {
		if img.ExternalID == "" {
			continue
		}
		if err := m.assets.Destroy(ctx, img.ExternalID); err != nil {
			logger.Warn(ctx, "could not destroy image",
				zap.String("assetID", img.ExternalID),
				zap.Error(err))
		}
	}
}

func (m manager) hydrate(ctx context.Context, p domain.Property) (*domain.Property, error) {
	res, err := m.storage.Hydrate(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("could not hydrate property: %w", err)
	}

	return &res[0], nil
}

// New creates an image Manager.
func New(storage storage.Storage, assets assets.Store, index search.Invalidator) Manager {
	return &manager{storage: storage, assets: assets, index: index}
}
