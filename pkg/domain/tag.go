package domain

import "github.com/google/uuid"

// TagType tells building amenities apart from unit features.
type TagType string

const (
	// TagTypeBuilding marks a shared-facility amenity (e.g. elevator).
	TagTypeBuilding TagType = "building"
	// TagTypeUnit marks a unit feature (e.g. balcony).
	TagTypeUnit TagType = "unit"
)

// Tag is an amenity or feature. Names are unique per type.
type Tag struct {
	ID   TagID   `json:"id"`
	Name string  `json:"name"`
	Type TagType `json:"type"`
}

// TagRef references a tag either by id or by name. Names are resolved with
// get-or-create semantics.
type TagRef string

// ID returns the referenced tag id when the ref is a UUID.
func (r TagRef) ID() (TagID, bool) {
	parsed, err := uuid.Parse(string(r))
	if err != nil {
		return TagID{}, false
	}

	return TagID(parsed), true
}

// TagIDs returns the ids of the given tags.
func TagIDs(tags []Tag) []TagID {
	ids := make([]TagID, 0, len(tags))
	for _, t := range tags {
		ids = append(ids, t.ID)
	}

	return ids
}
