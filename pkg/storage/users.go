package storage

import (
	"context"

	"yokeair/pkg/domain"
)

// UserUpdates lists the optional profile fields to change. Only non-nil
// fields are written.
type UserUpdates struct {
	FirstName *string
	LastName  *string
	Phone     *string
	// Avatar replaces the stored avatar. ClearAvatar removes it.
	Avatar      *domain.Asset
	ClearAvatar bool
}

// UserStorage persists users and their saved listings.
type UserStorage interface {
	// StoreUser inserts a user and returns the stored row. A duplicate email
	// yields ErrDuplicate.
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByID returns nil when the user does not exist.
	UserByID(ctx context.Context, ID domain.UserID) (*domain.User, error)
	// UsersByID returns the existing users among ids, in no particular order.
	UsersByID(ctx context.Context, IDs ...domain.UserID) ([]domain.User, error)
	// UpdateUser applies updates and returns the updated row, or nil when the
	// user does not exist.
	UpdateUser(ctx context.Context, ID domain.UserID, updates UserUpdates) (*domain.User, error)
	// DeleteUser removes the user and returns the deleted row, or nil.
	DeleteUser(ctx context.Context, ID domain.UserID) (*domain.User, error)

	// AddSavedListing bookmarks a property. Saving twice is a no-op. It returns
	// false when nothing was inserted.
	AddSavedListing(ctx context.Context, userID domain.UserID, propertyID domain.PropertyID) (bool, error)
	// RemoveSavedListing removes a bookmark and reports whether one existed.
	RemoveSavedListing(ctx context.Context, userID domain.UserID, propertyID domain.PropertyID) (bool, error)
	// RemoveSavedListingsByProperty strips the given properties from every
	// user's saved set and returns the number of removed bookmarks.
	RemoveSavedListingsByProperty(ctx context.Context, propertyIDs ...domain.PropertyID) (int64, error)
	// SavedPropertyIDs returns the user's bookmarks, newest first.
	SavedPropertyIDs(ctx context.Context, userID domain.UserID) ([]domain.PropertyID, error)
}
