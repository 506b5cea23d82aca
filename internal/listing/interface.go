package listing

import (
	"context"

	"yokeair/pkg/domain"
)

// PropertyRequest describes a unit to list. The building is resolved from
// (Address, Borough) and created on first use.
type PropertyRequest struct {
	Address      string
	Borough      string
	Neighborhood string
	City         string

	UnitNumber    string
	Bedrooms      *int
	Bathrooms     *int
	Price         string
	SquareFootage *int
	// Status defaults to available.
	Status domain.PropertyStatus

	// Amenities apply to the building, Features to the unit. Refs are tag ids
	// or names; unknown names are created.
	Amenities []domain.TagRef
	Features  []domain.TagRef
}

// PropertyPatch lists the fields UpdateProperty may change. Nil fields are
// left untouched; non-nil slices replace the current set.
type PropertyPatch struct {
	Price         *string
	SquareFootage *int
	Features      *[]domain.TagRef
	Amenities     *[]domain.TagRef
	// Images may only drop or reorder current gallery entries; dropped assets
	// are destroyed.
	Images *[]domain.Asset
}

//go:generate mockgen -package mocklisting -source=interface.go -destination=mock/mocklisting.go *
type Service interface {
	CreateProperty(ctx context.Context, actor domain.Actor, req PropertyRequest) (*domain.Property, error)
	UpdateProperty(ctx context.Context,
		actor domain.Actor,
		ID domain.PropertyID,
		patch PropertyPatch) (*domain.Property, error)
	UpdateStatus(ctx context.Context,
		actor domain.Actor,
		ID domain.PropertyID,
		status domain.PropertyStatus) (*domain.Property, error)
	// DeleteProperty returns the deleted unit as it was before deletion.
	DeleteProperty(ctx context.Context, actor domain.Actor, ID domain.PropertyID) (*domain.Property, error)
	// BulkDelete deletes nothing unless actor owns every id.
	BulkDelete(ctx context.Context, actor domain.Actor, IDs []domain.PropertyID) ([]domain.Property, error)
	BrokerProperties(ctx context.Context, actor domain.Actor) ([]domain.Property, error)
	Property(ctx context.Context, ID domain.PropertyID) (*domain.Property, error)
	Tags(ctx context.Context, tagType domain.TagType) ([]domain.Tag, error)
}
