package images

import (
	"context"

	"yokeair/pkg/assets"
	"yokeair/pkg/domain"
)

// Manager keeps a unit's gallery and the asset store in step.
//
//go:generate mockgen -package mockimages -source=interface.go -destination=mock/mockimages.go *
type Manager interface {
	// AddImages uploads files and appends them to the gallery.
	AddImages(ctx context.Context,
		actor domain.Actor,
		propertyID domain.PropertyID,
		files []assets.File) (*domain.Property, error)
	// RemoveImage drops one gallery entry and destroys its asset.
	RemoveImage(ctx context.Context,
		actor domain.Actor,
		propertyID domain.PropertyID,
		assetID string) (*domain.Property, error)
	// Reorder replaces the gallery order. order must be a permutation of the
	// current asset ids.
	Reorder(ctx context.Context,
		actor domain.Actor,
		propertyID domain.PropertyID,
		order []string) (*domain.Property, error)
	// DestroyAll destroys the given assets, logging failures.
	DestroyAll(ctx context.Context, images []domain.Asset)
}
