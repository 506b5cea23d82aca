package storage

import (
	"context"

	"yokeair/pkg/domain"
)

// PropertyFilter is the predicate set used by SearchProperties. Zero-valued
// fields are inactive; active fields are AND-combined.
type PropertyFilter struct {
	Boroughs      []string
	Neighborhoods []string
	MinPrice      *float64
	MaxPrice      *float64
	Bedrooms      *int
	Bathrooms     *int
	// AmenityIDs and FeatureIDs are ALL-match: a result carries every id.
	AmenityIDs []domain.TagID
	FeatureIDs []domain.TagID
	// Text matches unit number or the building's street, borough,
	// neighborhood or city, case-insensitively. It narrows the other filters.
	Text   string
	Status domain.PropertyStatus
	// Limit caps the result size; 0 means unlimited.
	Limit uint
}

// PropertyUpdates lists optional property fields to change. Only non-nil
// fields are written; Images replaces the gallery wholesale.
type PropertyUpdates struct {
	Price         *float64
	SquareFootage *int
	Status        *domain.PropertyStatus
	Images        *[]domain.Asset
}

// PropertyStorage persists units. Read methods return properties without
// Building and Features; callers hydrate joins through Hydrate.
type PropertyStorage interface {
	// StoreProperty inserts a property. A unit number already used in the same
	// building yields ErrDuplicate.
	StoreProperty(ctx context.Context, property domain.Property) (*domain.Property, error)
	// PropertyByID returns nil when the property does not exist.
	PropertyByID(ctx context.Context, ID domain.PropertyID) (*domain.Property, error)
	// LockPropertyByID is PropertyByID holding a row lock until the surrounding
	// transaction ends. Gallery rewrites read through it so a concurrent change
	// waits instead of being overwritten.
	LockPropertyByID(ctx context.Context, ID domain.PropertyID) (*domain.Property, error)
	// PropertiesByID returns the existing properties among ids.
	PropertiesByID(ctx context.Context, IDs ...domain.PropertyID) ([]domain.Property, error)
	// PropertyByUnit returns the property with unitNumber in the building, or nil.
	PropertyByUnit(ctx context.Context, buildingID domain.BuildingID, unitNumber string) (*domain.Property, error)
	// PropertiesByBroker returns the broker's properties, newest first.
	PropertiesByBroker(ctx context.Context, brokerID domain.UserID) ([]domain.Property, error)
	// PropertiesByBuildings returns every property inside the given buildings.
	PropertiesByBuildings(ctx context.Context, buildingIDs ...domain.BuildingID) ([]domain.Property, error)
	// SearchProperties returns properties matching every active predicate of
	// filter, newest first.
	SearchProperties(ctx context.Context, filter PropertyFilter) ([]domain.Property, error)
	// UpdateProperty applies updates and returns the updated row, or nil when
	// the property does not exist.
	UpdateProperty(ctx context.Context, ID domain.PropertyID, updates PropertyUpdates) (*domain.Property, error)
	// AppendPropertyImages appends images to the end of the gallery in a single
	// statement and returns the updated row, or nil.
	AppendPropertyImages(ctx context.Context, ID domain.PropertyID, images ...domain.Asset) (*domain.Property, error)
	// RemovePropertyImage drops the gallery entry with assetID in a single
	// statement, keeping the order of the others. It returns nil when the
	// property does not exist.
	RemovePropertyImage(ctx context.Context, ID domain.PropertyID, assetID string) (*domain.Property, error)
	// SetPropertyFeatures replaces the unit's feature set.
	SetPropertyFeatures(ctx context.Context, ID domain.PropertyID, tagIDs ...domain.TagID) error
	// CountOwnedProperties counts how many of ids belong to the broker.
	CountOwnedProperties(ctx context.Context, brokerID domain.UserID, IDs ...domain.PropertyID) (int64, error)
	// DeleteProperties deletes the given properties and returns the deleted rows.
	DeleteProperties(ctx context.Context, IDs ...domain.PropertyID) ([]domain.Property, error)
	// Hydrate loads Building (with amenities) and Features for each property.
	Hydrate(ctx context.Context, properties ...domain.Property) ([]domain.Property, error)
}
