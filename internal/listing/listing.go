// Package listing implements the broker facing listing management: creating
// units (and their buildings), updating, changing market status and deleting
// them with every dependent record.
package listing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"yokeair/internal/images"
	"yokeair/internal/search"
	"yokeair/pkg/domain"
	"yokeair/pkg/logger"
	"yokeair/pkg/serrors"
	"yokeair/pkg/storage"

	"go.uber.org/zap"
)

const defaultCity = "New York"

type service struct {
	storage storage.Storage
	images  images.Manager
	index   search.Invalidator
}

func requireBroker(actor domain.Actor) error {
	if actor.Role != domain.RoleBroker {
		return serrors.With(serrors.ErrForbidden, "only brokers can manage listings")
	}

	return nil
}

// ownedProperty loads the property and checks that actor owns it.
func ownedProperty(ctx context.Context,
	load func(context.Context, domain.PropertyID) (*domain.Property, error),
	actor domain.Actor,
	id domain.PropertyID) (*domain.Property, error) {
	if err := requireBroker(actor); err != nil {
		return nil, err
	}

	p, err := load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get property: %w", err)
	}
	if p == nil {
		return nil, serrors.With(serrors.ErrNotFound, "property not found")
	}
	if !p.OwnedBy(actor) {
		return nil, serrors.With(serrors.ErrForbidden, "you do not own this property")
	}

	return p, nil
}

// resolveTags turns refs into tag ids. Ids must name existing tags of
// tagType; names are get-or-created.
func resolveTags(ctx context.Context,
	st storage.AllStorage,
	tagType domain.TagType,
	field string,
	refs []domain.TagRef) ([]domain.TagID, error) {
	var (
		ids   []domain.TagID
		names []string
		seen  = make(map[domain.TagID]struct{}, len(refs))
	)
	add := func(id domain.TagID) {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	for _, ref := range refs {
		if id, ok := ref.ID(); ok {
			add(id)

			continue
		}
		if name := strings.TrimSpace(string(ref)); name != "" {
			names = append(names, name)
		}
	}

	if len(ids) > 0 {
		known, err := st.TagsByID(ctx, ids...)
		if err != nil {
			return nil, fmt.Errorf("could not get tags: %w", err)
		}
		valid := make(map[domain.TagID]bool, len(known))
		for _, t := range known {
			valid[t.ID] = t.Type == tagType
		}
		for _, id := range ids {
			if !valid[id] {
				return nil, serrors.Invalid(serrors.FieldError{
					Field:   field,
					Message: fmt.Sprintf("unknown %s tag %s", tagType, id),
				})
			}
		}
	}

	if len(names) > 0 {
		tags, err := st.UpsertTags(ctx, tagType, names...)
		if err != nil {
			return nil, fmt.Errorf("could not upsert tags: %w", err)
		}
		for _, t := range tags {
			add(t.ID)
		}
	}

	return ids, nil
}

func validateRequest(req PropertyRequest) (float64, error) {
	var v serrors.Validator
	v.Required("address", req.Address)
	v.Required("borough", req.Borough)
	v.Required("neighborhood", req.Neighborhood)
	v.Required("unitNumber", req.UnitNumber)
	v.Check(req.Bedrooms != nil, "bedrooms", "is required")
	v.Check(req.Bedrooms == nil || *req.Bedrooms >= 0, "bedrooms", "must not be negative")
	v.Check(req.Bathrooms != nil, "bathrooms", "is required")
	v.Check(req.Bathrooms == nil || *req.Bathrooms >= 0, "bathrooms", "must not be negative")
	v.Check(req.SquareFootage == nil || *req.SquareFootage >= 0, "squareFootage", "must not be negative")
	v.Check(req.Status == "" || req.Status.Valid(), "status", "unknown status %q", req.Status)

	var price float64
	if strings.TrimSpace(req.Price) == "" {
		v.Check(false, "price", "is required")
	} else {
		p, err := ParsePrice(req.Price)
		v.Check(err == nil, "price", "must be a non-negative amount")
		price = p
	}

	return price, v.Err()
}

// CreateProperty lists a new unit. The unit number check runs against the
// resolved building; the unique index on (building, unit) stays the final
// word for concurrent creations.
func (s service) CreateProperty(ctx context.Context, actor domain.Actor, req PropertyRequest) (*domain.Property, error) {
	if err := requireBroker(actor); err != nil {
		return nil, err
	}
	price, err := validateRequest(req)
	if err != nil {
		return nil, err
	}

	city := strings.TrimSpace(req.City)
	if city == "" {
		city = defaultCity
	}
	status := req.Status
	if status == "" {
		status = domain.PropertyStatusAvailable
	}
	unit := strings.TrimSpace(req.UnitNumber)

	var created *domain.Property
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		building, _, err := tx.EnsureBuilding(ctx, domain.Building{
			BrokerID:     actor.ID,
			Street:       strings.TrimSpace(req.Address),
			Borough:      strings.TrimSpace(req.Borough),
			Neighborhood: strings.TrimSpace(req.Neighborhood),
			City:         city,
		})
		if err != nil {
			return fmt.Errorf("could not ensure building: %w", err)
		}

		existing, err := tx.PropertyByUnit(ctx, building.ID, unit)
		if err != nil {
			return fmt.Errorf("could not check unit: %w", err)
		}
		if existing != nil {
			if existing.BrokerID == actor.ID {
				return serrors.With(serrors.ErrConflict, "you have already listed this unit")
			}

			return serrors.With(serrors.ErrConflict, "this unit is already listed by another broker")
		}

		amenities, err := resolveTags(ctx, tx, domain.TagTypeBuilding, "amenities", req.Amenities)
		if err != nil {
			return err
		}
		if err := tx.AddBuildingAmenities(ctx, building.ID, amenities...); err != nil {
			return fmt.Errorf("could not add amenities: %w", err)
		}

		stored, err := tx.StoreProperty(ctx, domain.Property{
			BuildingID:    building.ID,
			BrokerID:      actor.ID,
			UnitNumber:    unit,
			Bedrooms:      *req.Bedrooms,
			BedroomType:   BedroomType(*req.Bedrooms),
			Bathrooms:     *req.Bathrooms,
			Price:         price,
			SquareFootage: req.SquareFootage,
			Status:        status,
		})
		if errors.Is(err, storage.ErrDuplicate) {
			return serrors.Wrap(serrors.ErrConflict, err, "this unit is already listed")
		}
		if err != nil {
			return fmt.Errorf("could not store property: %w", err)
		}

		features, err := resolveTags(ctx, tx, domain.TagTypeUnit, "features", req.Features)
		if err != nil {
			return err
		}
		if err := tx.SetPropertyFeatures(ctx, stored.ID, features...); err != nil {
			return fmt.Errorf("could not set features: %w", err)
		}

		hydrated, err := tx.Hydrate(ctx, *stored)
		if err != nil {
			return fmt.Errorf("could not hydrate property: %w", err)
		}
		created = &hydrated[0]

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not create property: %w", err)
	}
	s.index.Invalidate(ctx)

	return created, nil
}

// UpdateProperty applies patch in a single transaction that holds the unit's
// row lock, so a concurrent gallery change is never overwritten. Amenities are
// written to the unit's building.
func (s service) UpdateProperty(ctx context.Context,
	actor domain.Actor,
	id domain.PropertyID,
	patch PropertyPatch) (*domain.Property, error) {
	var (
		v       serrors.Validator
		updates storage.PropertyUpdates
	)
	if patch.Price != nil {
		price, err := ParsePrice(*patch.Price)
		v.Check(err == nil, "price", "must be a non-negative amount")
		updates.Price = &price
	}
	if patch.SquareFootage != nil {
		v.Check(*patch.SquareFootage >= 0, "squareFootage", "must not be negative")
		updates.SquareFootage = patch.SquareFootage
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	var (
		updated *domain.Property
		dropped []domain.Asset
	)
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		current, err := ownedProperty(ctx, tx.LockPropertyByID, actor, id)
		if err != nil {
			return err
		}

		if patch.Images != nil {
			kept, removed, err := keepImages(current.Images, *patch.Images)
			if err != nil {
				return err
			}
			updates.Images = &kept
			dropped = removed
		}

		res, err := tx.UpdateProperty(ctx, id, updates)
		if err != nil {
			return fmt.Errorf("could not update property: %w", err)
		}
		if res == nil {
			return serrors.With(serrors.ErrNotFound, "property not found")
		}

		if patch.Features != nil {
			features, err := resolveTags(ctx, tx, domain.TagTypeUnit, "features", *patch.Features)
			if err != nil {
				return err
			}
			if err := tx.SetPropertyFeatures(ctx, id, features...); err != nil {
				return fmt.Errorf("could not set features: %w", err)
			}
		}
		if patch.Amenities != nil {
			amenities, err := resolveTags(ctx, tx, domain.TagTypeBuilding, "amenities", *patch.Amenities)
			if err != nil {
				return err
			}
			if err := tx.SetBuildingAmenities(ctx, current.BuildingID, amenities...); err != nil {
				return fmt.Errorf("could not set amenities: %w", err)
			}
		}

		hydrated, err := tx.Hydrate(ctx, *res)
		if err != nil {
			return fmt.Errorf("could not hydrate property: %w", err)
		}
		updated = &hydrated[0]

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not update property: %w", err)
	}

	s.images.DestroyAll(ctx, dropped)
	s.index.Invalidate(ctx)

	return updated, nil
}

// keepImages validates that next only drops or reorders entries of current
// and returns the new gallery together with the dropped entries.
func keepImages(current, next []domain.Asset) ([]domain.Asset, []domain.Asset, error) {
	byID := make(map[string]domain.Asset, len(current))
	for _, img := range current {
		byID[img.ExternalID] = img
	}

	kept := make([]domain.Asset, 0, len(next))
	for _, img := range next {
		stored, ok := byID[img.ExternalID]
		if !ok {
			return nil, nil, serrors.Invalid(serrors.FieldError{
				Field:   "images",
				Message: fmt.Sprintf("unknown or repeated image %q; upload new images separately", img.ExternalID),
			})
		}
		delete(byID, img.ExternalID)
		kept = append(kept, stored)
	}

	dropped := make([]domain.Asset, 0, len(byID))
	for _, img := range current {
		if _, ok := byID[img.ExternalID]; ok {
			dropped = append(dropped, img)
		}
	}

	return kept, dropped, nil
}

func (s service) UpdateStatus(ctx context.Context,
	actor domain.Actor,
	id domain.PropertyID,
	status domain.PropertyStatus) (*domain.Property, error) {
	if !status.Valid() {
		return nil, serrors.Invalid(serrors.FieldError{Field: "status", Message: fmt.Sprintf("unknown status %q", status)})
	}
	if _, err := ownedProperty(ctx, s.storage.PropertyByID, actor, id); err != nil {
		return nil, err
	}

	res, err := s.storage.UpdateProperty(ctx, id, storage.PropertyUpdates{Status: &status})
	if err != nil {
		return nil, fmt.Errorf("could not update status: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "property not found")
	}
	s.index.Invalidate(ctx)

	return s.hydrateOne(ctx, *res)
}

func (s service) DeleteProperty(ctx context.Context, actor domain.Actor, id domain.PropertyID) (*domain.Property, error) {
	p, err := ownedProperty(ctx, s.storage.PropertyByID, actor, id)
	if err != nil {
		return nil, err
	}
	snapshot, err := s.hydrateOne(ctx, *p)
	if err != nil {
		return nil, err
	}

	deleted, err := s.remove(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(deleted) == 0 {
		return nil, serrors.With(serrors.ErrNotFound, "property not found")
	}
	// the gallery may have changed since the snapshot was taken
	snapshot.Images = deleted[0].Images

	return snapshot, nil
}

func (s service) BulkDelete(ctx context.Context, actor domain.Actor, ids []domain.PropertyID) ([]domain.Property, error) {
	if err := requireBroker(actor); err != nil {
		return nil, err
	}

	unique := make([]domain.PropertyID, 0, len(ids))
	seen := make(map[domain.PropertyID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			unique = append(unique, id)
		}
	}
	if len(unique) == 0 {
		return nil, serrors.Invalid(serrors.FieldError{Field: "propertyIds", Message: "at least one id is required"})
	}

	owned, err := s.storage.CountOwnedProperties(ctx, actor.ID, unique...)
	if err != nil {
		return nil, fmt.Errorf("could not count owned properties: %w", err)
	}
	if owned != int64(len(unique)) {
		return nil, serrors.With(serrors.ErrForbidden, "you can only delete your own properties")
	}

	return s.remove(ctx, unique...)
}

// remove deletes properties with their saved-listing entries and emptied
// buildings in one transaction, then destroys their images.
func (s service) remove(ctx context.Context, ids ...domain.PropertyID) ([]domain.Property, error) {
	var deleted []domain.Property
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		pruned, err := tx.RemoveSavedListingsByProperty(ctx, ids...)
		if err != nil {
			return fmt.Errorf("could not prune saved listings: %w", err)
		}

		deleted, err = tx.DeleteProperties(ctx, ids...)
		if err != nil {
			return fmt.Errorf("could not delete properties: %w", err)
		}

		buildings := make([]domain.BuildingID, 0, len(deleted))
		for _, p := range deleted {
			buildings = append(buildings, p.BuildingID)
		}
		removed, err := tx.DeleteEmptyBuildings(ctx, buildings...)
		if err != nil {
			return fmt.Errorf("could not delete empty buildings: %w", err)
		}

		logger.Debug(ctx, "properties deleted",
			zap.Int("properties", len(deleted)),
			zap.Int64("savedListings", pruned),
			zap.Int("buildings", len(removed)))

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not delete properties: %w", err)
	}

	for _, p := range deleted {
		s.images.DestroyAll(ctx, p.Images)
	}
	s.index.Invalidate(ctx)

	return deleted, nil
}

func (s service) BrokerProperties(ctx context.Context, actor domain.Actor) ([]domain.Property, error) {
	if err := requireBroker(actor); err != nil {
		return nil, err
	}

	props, err := s.storage.PropertiesByBroker(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("could not get broker properties: %w", err)
	}
	res, err := s.storage.Hydrate(ctx, props...)
	if err != nil {
		return nil, fmt.Errorf("could not hydrate properties: %w", err)
	}

	return res, nil
}

func (s service) Property(ctx context.Context, id domain.PropertyID) (*domain.Property, error) {
	p, err := s.storage.PropertyByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get property: %w", err)
	}
	if p == nil {
		return nil, serrors.With(serrors.ErrNotFound, "property not found")
	}

	return s.hydrateOne(ctx, *p)
}

func (s service) Tags(ctx context.Context, tagType domain.TagType) ([]domain.Tag, error) {
	if tagType != domain.TagTypeBuilding && tagType != domain.TagTypeUnit {
		return nil, serrors.Invalid(serrors.FieldError{Field: "type", Message: fmt.Sprintf("unknown tag type %q", tagType)})
	}

	tags, err := s.storage.Tags(ctx, tagType)
	if err != nil {
		return nil, fmt.Errorf("could not get tags: %w", err)
	}

	return tags, nil
}

func (s service) hydrateOne(ctx context.Context, p domain.Property) (*domain.Property, error) {
	res, err := s.storage.Hydrate(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("could not hydrate property: %w", err)
	}

	return &res[0], nil
}

// New creates a listing Service.
func New(storage storage.Storage, images images.Manager, index search.Invalidator) Service {
	return &service{storage: storage, images: images, index: index}
}
