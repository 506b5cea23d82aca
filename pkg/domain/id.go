package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// BuildingID uniquely identifies a building.
type BuildingID uuid.UUID

// PropertyID uniquely identifies a property (unit).
type PropertyID uuid.UUID

// TagID uniquely identifies an amenity or feature tag.
type TagID uuid.UUID

// ApplicationID uniquely identifies an application.
type ApplicationID uuid.UUID

func (id UserID) String() string        { return uuid.UUID(id).String() }
func (id BuildingID) String() string    { return uuid.UUID(id).String() }
func (id PropertyID) String() string    { return uuid.UUID(id).String() }
func (id TagID) String() string         { return uuid.UUID(id).String() }
func (id ApplicationID) String() string { return uuid.UUID(id).String() }

func (id UserID) MarshalText() ([]byte, error)        { return uuid.UUID(id).MarshalText() }
func (id BuildingID) MarshalText() ([]byte, error)    { return uuid.UUID(id).MarshalText() }
func (id PropertyID) MarshalText() ([]byte, error)    { return uuid.UUID(id).MarshalText() }
func (id TagID) MarshalText() ([]byte, error)         { return uuid.UUID(id).MarshalText() }
func (id ApplicationID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *UserID) UnmarshalText(b []byte) error        { return unmarshalID((*uuid.UUID)(id), b) }
func (id *BuildingID) UnmarshalText(b []byte) error    { return unmarshalID((*uuid.UUID)(id), b) }
func (id *PropertyID) UnmarshalText(b []byte) error    { return unmarshalID((*uuid.UUID)(id), b) }
func (id *TagID) UnmarshalText(b []byte) error         { return unmarshalID((*uuid.UUID)(id), b) }
func (id *ApplicationID) UnmarshalText(b []byte) error { return unmarshalID((*uuid.UUID)(id), b) }

func unmarshalID(dst *uuid.UUID, b []byte) error {
	parsed, err := uuid.ParseBytes(b)
	if err != nil {
		return fmt.Errorf("invalid id %q: %w", b, err)
	}
	*dst = parsed

	return nil
}

// ParseID parses s into any of the typed ids.
func ParseID[T ~[16]byte](s string) (T, error) {
	parsed, err := uuid.Parse(s)
	if err != nil {
		return T{}, fmt.Errorf("invalid id %q: %w", s, err)
	}

	return T(parsed), nil
}
