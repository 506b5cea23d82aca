package account

import (
	"context"

	"yokeair/pkg/assets"
	"yokeair/pkg/domain"
)

// Registration is the input of Register.
type Registration struct {
	Role      domain.Role
	Email     string
	FirstName string
	LastName  string
	Phone     string
}

// ProfileUpdate lists profile fields to change. Nil fields are left untouched.
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Phone     *string
}

//go:generate mockgen -package mockaccount -source=interface.go -destination=mock/mockaccount.go *
type Service interface {
	Register(ctx context.Context, reg Registration) (*domain.User, error)
	Profile(ctx context.Context, actor domain.Actor) (*domain.User, error)
	// UpdateProfile rejects fields the actor's role may not edit, see EditableFields.
	UpdateProfile(ctx context.Context, actor domain.Actor, update ProfileUpdate) (*domain.User, error)
	// SetAvatar uploads file as the new avatar and destroys the previous one.
	SetAvatar(ctx context.Context, actor domain.Actor, file assets.File) (*domain.User, error)
	// ToggleSavedListing saves the property, or unsaves it when already saved,
	// and reports whether it is saved afterwards.
	ToggleSavedListing(ctx context.Context, actor domain.Actor, propertyID domain.PropertyID) (bool, error)
	SavedListings(ctx context.Context, actor domain.Actor) ([]domain.Property, error)
	// Delete removes the actor's listings and buildings, then the avatar, then
	// the user record.
	Delete(ctx context.Context, actor domain.Actor) error
}
