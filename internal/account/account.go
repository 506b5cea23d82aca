// Package account manages marketplace users: registration, profiles, saved
// listings and account removal.
package account

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"slices"
	"strings"

	"yokeair/internal/listing"
	"yokeair/pkg/assets"
	"yokeair/pkg/domain"
	"yokeair/pkg/logger"
	"yokeair/pkg/serrors"
	"yokeair/pkg/storage"

	"go.uber.org/zap"
)

const avatarsFolder = "avatars"

// Profile field names as exposed to clients.
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldPhone     = "phone"
)

// EditableFields lists the profile fields each role may change. Broker names
// are fixed at registration since they appear on every listing.
var EditableFields = map[domain.Role][]string{
	domain.RoleClient: {FieldFirstName, FieldLastName, FieldPhone},
	domain.RoleBroker: {FieldPhone},
}

type service struct {
	storage storage.Storage
	assets  assets.Store
	listing listing.Service
}

func (s service) Register(ctx context.Context, reg Registration) (*domain.User, error) {
	reg.Email = strings.TrimSpace(reg.Email)

	var v serrors.Validator
	v.Check(reg.Role.Valid(), "role", "unknown role %q", reg.Role)
	v.Required("email", reg.Email)
	if reg.Email != "" {
		_, err := mail.ParseAddress(reg.Email)
		v.Check(err == nil, "email", "is not a valid address")
	}
	v.Required("firstName", reg.FirstName)
	v.Required("lastName", reg.LastName)
	if err := v.Err(); err != nil {
		return nil, err
	}

	user, err := s.storage.StoreUser(ctx, domain.User{
		Role:      reg.Role,
		Email:     reg.Email,
		FirstName: strings.TrimSpace(reg.FirstName),
		LastName:  strings.TrimSpace(reg.LastName),
		Phone:     strings.TrimSpace(reg.Phone),
	})
	if errors.Is(err, storage.ErrDuplicate) {
		return nil, serrors.Wrap(serrors.ErrConflict, err, "this email is already registered")
	}
	if err != nil {
		return nil, fmt.Errorf("could not store user: %w", err)
	}

	return user, nil
}

func (s service) Profile(ctx context.Context, actor domain.Actor) (*domain.User, error) {
	user, err := s.storage.UserByID(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user, nil
}

func (s service) UpdateProfile(ctx context.Context, actor domain.Actor, update ProfileUpdate) (*domain.User, error) {
	editable := EditableFields[actor.Role]

	var (
		v       serrors.Validator
		updates storage.UserUpdates
	)
	check := func(field string, value *string, required bool) *string {
		if value == nil {
			return nil
		}
		v.Check(slices.Contains(editable, field), field, "cannot be changed by a %s", actor.Role)
		trimmed := strings.TrimSpace(*value)
		if required {
			v.Required(field, trimmed)
		}

		return &trimmed
	}
	updates.FirstName = check(FieldFirstName, update.FirstName, true)
	updates.LastName = check(FieldLastName, update.LastName, true)
	updates.Phone = check(FieldPhone, update.Phone, false)
	if err := v.Err(); err != nil {
		return nil, err
	}

	user, err := s.storage.UpdateUser(ctx, actor.ID, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user, nil
}

func (s service) SetAvatar(ctx context.Context, actor domain.Actor, file assets.File) (*domain.User, error) {
	if len(file.Data) == 0 {
		return nil, serrors.Invalid(serrors.FieldError{Field: "file", Message: "is required"})
	}

	current, err := s.Profile(ctx, actor)
	if err != nil {
		return nil, err
	}

	file.Folder = avatarsFolder
	avatar, err := s.assets.Upload(ctx, file)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrDependency, err, "could not upload avatar")
	}

	user, err := s.storage.UpdateUser(ctx, actor.ID, storage.UserUpdates{Avatar: &avatar})
	if err == nil && user == nil {
		err = serrors.With(serrors.ErrNotFound, "user not found")
	}
	if err != nil {
		s.destroy(ctx, avatar.ExternalID)

		return nil, fmt.Errorf("could not set avatar: %w", err)
	}

	if current.Avatar != nil {
		s.destroy(ctx, current.Avatar.ExternalID)
	}

	return user, nil
}

func (s service) destroy(ctx context.Context, assetID string) {
	if assetID == "" {
		return
	}
	if err := s.assets.Destroy(ctx, assetID); err != nil {
		logger.Warn(ctx, "could not destroy avatar", zap.String("assetID", assetID), zap.Error(err))
	}
}

func (s service) ToggleSavedListing(ctx context.Context, actor domain.Actor, propertyID domain.PropertyID) (bool, error) {
	if actor.Role != domain.RoleClient {
		return false, serrors.With(serrors.ErrForbidden, "only clients can save listings")
	}

	removed, err := s.storage.RemoveSavedListing(ctx, actor.ID, propertyID)
	if err != nil {
		return false, fmt.Errorf("could not remove saved listing: %w", err)
	}
	if removed {
		return false, nil
	}

	property, err := s.storage.PropertyByID(ctx, propertyID)
	if err != nil {
		return false, fmt.Errorf("could not get property: %w", err)
	}
	if property == nil {
		return false, serrors.With(serrors.ErrNotFound, "property not found")
	}

	if _, err := s.storage.AddSavedListing(ctx, actor.ID, propertyID); err != nil {
		return false, fmt.Errorf("could not save listing: %w", err)
	}

	return true, nil
}

func (s service) SavedListings(ctx context.Context, actor domain.Actor) ([]domain.Property, error) {
	ids, err := s.storage.SavedPropertyIDs(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("could not get saved listings: %w", err)
	}
	if len(ids) == 0 {
		return []domain.Property{}, nil
	}

	props, err := s.storage.PropertiesByID(ctx, ids...)
	if err != nil {
		return nil, fmt.Errorf("could not get saved properties: %w", err)
	}
	hydrated, err := s.storage.Hydrate(ctx, props...)
	if err != nil {
		return nil, fmt.Errorf("could not hydrate saved properties: %w", err)
	}

	// keep the newest-saved-first order of ids
	byID := make(map[domain.PropertyID]domain.Property, len(hydrated))
	for _, p := range hydrated {
		byID[p.ID] = p
	}
	res := make([]domain.Property, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			res = append(res, p)
		}
	}

	return res, nil
}

func (s service) Delete(ctx context.Context, actor domain.Actor) error {
	user, err := s.Profile(ctx, actor)
	if err != nil {
		return err
	}

	if user.Role == domain.RoleBroker {
		if err := s.deleteListings(ctx, actor); err != nil {
			return err
		}
	}

	if user.Avatar != nil {
		s.destroy(ctx, user.Avatar.ExternalID)
	}

	deleted, err := s.storage.DeleteUser(ctx, actor.ID)
	if err != nil {
		return fmt.Errorf("could not delete user: %w", err)
	}
	if deleted == nil {
		return serrors.With(serrors.ErrNotFound, "user not found")
	}

	logger.Info(ctx, "user deleted", zap.String("userID", actor.ID.String()), zap.String("role", string(user.Role)))

	return nil
}

// deleteListings removes every unit of the broker through the listing
// service, then the buildings left without units.
func (s service) deleteListings(ctx context.Context, actor domain.Actor) error {
	props, err := s.storage.PropertiesByBroker(ctx, actor.ID)
	if err != nil {
		return fmt.Errorf("could not get broker properties: %w", err)
	}
	if len(props) > 0 {
		ids := make([]domain.PropertyID, 0, len(props))
		for _, p := range props {
			ids = append(ids, p.ID)
		}
		if _, err := s.listing.BulkDelete(ctx, actor, ids); err != nil {
			return fmt.Errorf("could not delete broker properties: %w", err)
		}
	}

	buildings, err := s.storage.BuildingsByBroker(ctx, actor.ID)
	if err != nil {
		return fmt.Errorf("could not get broker buildings: %w", err)
	}
	if len(buildings) == 0 {
		return nil
	}
	ids := make([]domain.BuildingID, 0, len(buildings))
	for _, b := range buildings {
		ids = append(ids, b.ID)
	}
	removed, err := s.storage.DeleteEmptyBuildings(ctx, ids...)
	if err != nil {
		return fmt.Errorf("could not delete broker buildings: %w", err)
	}
	if len(removed) != len(ids) {
		return serrors.With(serrors.ErrConflict, "some of your buildings still have units listed by other brokers")
	}

	return nil
}

// New creates an account Service.
func New(storage storage.Storage, assets assets.Store, listing listing.Service) Service {
	return &service{storage: storage, assets: assets, listing: listing}
}
