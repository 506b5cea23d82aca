package search

import (
	"context"

	"yokeair/pkg/domain"
)

// Query is a multi-criteria property search. Zero-valued fields are inactive
// and active ones are AND-combined. Text always narrows the other criteria.
type Query struct {
	Boroughs      []string
	Neighborhoods []string
	MinPrice      *float64
	MaxPrice      *float64
	Bedrooms      *int
	Bathrooms     *int
	// Amenities and Features are ALL-match.
	Amenities []domain.TagID
	Features  []domain.TagID
	Text      string
	Status    domain.PropertyStatus
	Limit     uint
}

//go:generate mockgen -package mocksearch -source=interface.go -destination=mock/mocksearch.go *
type Engine interface {
	// Search returns joined properties matching q, newest first.
	Search(ctx context.Context, q Query) ([]domain.Property, error)
	Invalidator
}

// Invalidator drops cached search results. Listing mutations call it after
// they commit.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

// Cache stores search results under generation-scoped keys.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any) error
	Generation(ctx context.Context, namespace string) (int64, error)
	Bump(ctx context.Context, namespace string) (int64, error)
}
