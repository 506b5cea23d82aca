// Package assets defines the external media store used for listing images,
// user avatars and application documents.
package assets

import (
	"context"

	"yokeair/pkg/domain"
)

// File is an upload as received at the boundary.
type File struct {
	// Folder groups assets by purpose, e.g. "properties" or "documents".
	Folder      string
	Name        string
	ContentType string
	Data        []byte
}

// Store uploads and destroys assets held by an external provider.
//
//go:generate mockgen -package mockassets -source=interface.go -destination=mock/mockassets.go *
type Store interface {
	// Upload persists the file and returns its public URL together with the
	// provider id needed to destroy it later.
	Upload(ctx context.Context, file File) (domain.Asset, error)
	// Destroy removes the asset identified by assetID. Destroying an asset
	// that no longer exists is not an error.
	Destroy(ctx context.Context, assetID string) error
}
