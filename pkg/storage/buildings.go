package storage

import (
	"context"

	"yokeair/pkg/domain"
)

// BuildingStorage persists buildings and their amenity sets.
type BuildingStorage interface {
	// EnsureBuilding returns the building at (street, borough), inserting the
	// given one when none exists. created reports whether the insert happened.
	// Concurrent callers for the same address observe the same row.
	EnsureBuilding(ctx context.Context, building domain.Building) (b *domain.Building, created bool, err error)
	// BuildingByID returns nil when the building does not exist.
	BuildingByID(ctx context.Context, ID domain.BuildingID) (*domain.Building, error)
	// BuildingsByID returns the existing buildings among ids with amenities loaded.
	BuildingsByID(ctx context.Context, IDs ...domain.BuildingID) ([]domain.Building, error)
	// BuildingsByBroker returns every building owned by the broker.
	BuildingsByBroker(ctx context.Context, brokerID domain.UserID) ([]domain.Building, error)
	// AddBuildingAmenities attaches tags to the building, ignoring ones already attached.
	AddBuildingAmenities(ctx context.Context, ID domain.BuildingID, tagIDs ...domain.TagID) error
	// SetBuildingAmenities replaces the building's amenity set.
	SetBuildingAmenities(ctx context.Context, ID domain.BuildingID, tagIDs ...domain.TagID) error
	// DeleteEmptyBuildings deletes those of the given buildings that no
	// property references anymore and returns their ids.
	DeleteEmptyBuildings(ctx context.Context, IDs ...domain.BuildingID) ([]domain.BuildingID, error)
}
