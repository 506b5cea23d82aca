package storage

import (
	"context"

	"yokeair/pkg/domain"
)

// TagStorage persists amenities and features.
type TagStorage interface {
	// UpsertTags returns the tags with the given names and type, creating the
	// missing ones. It is idempotent and never duplicates a (type, name) pair.
	UpsertTags(ctx context.Context, tagType domain.TagType, names ...string) ([]domain.Tag, error)
	// TagsByID returns the existing tags among ids.
	TagsByID(ctx context.Context, IDs ...domain.TagID) ([]domain.Tag, error)
	// Tags lists every tag of the given type ordered by name.
	Tags(ctx context.Context, tagType domain.TagType) ([]domain.Tag, error)
}
