package postgres

import (
	"context"
	"fmt"
	"strings"

	"yokeair/pkg/domain"
	"yokeair/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	propertiesTable       = "properties"
	propertyFeaturesTable = "property_features"
)

func (p *PgSQL) StoreProperty(ctx context.Context, property domain.Property) (*domain.Property, error) {
	var row PgProperty
	if err := row.FromDomain(property); err != nil {
		return nil, err
	}

	var stored PgProperty
	if _, err := p.Builder.Insert(propertiesTable).
		Rows(row).
		Returning(&PgProperty{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, wrapErr(err, "could not store property into pg")
	}

	return stored.ToDomain()
}

func (p *PgSQL) PropertyByID(ctx context.Context, id domain.PropertyID) (*domain.Property, error) {
	return p.findProperty(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) LockPropertyByID(ctx context.Context, id domain.PropertyID) (*domain.Property, error) {
	return p.scanProperty(ctx, p.Builder.From(propertiesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		ForUpdate(exp.Wait))
}

func (p *PgSQL) PropertyByUnit(ctx context.Context,
	buildingID domain.BuildingID,
	unitNumber string) (*domain.Property, error) {
	return p.findProperty(ctx,
		goqu.I("building_id").Eq(uuid.UUID(buildingID)),
		goqu.I("unit_number").Eq(unitNumber),
	)
}

func (p *PgSQL) PropertiesByID(ctx context.Context, ids ...domain.PropertyID) ([]domain.Property, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	return p.findProperties(ctx, 0, goqu.I("id").In(uuids(ids)))
}

func (p *PgSQL) PropertiesByBroker(ctx context.Context, brokerID domain.UserID) ([]domain.Property, error) {
	return p.findProperties(ctx, 0, goqu.I("broker_id").Eq(uuid.UUID(brokerID)))
}

func (p *PgSQL) PropertiesByBuildings(ctx context.Context, buildingIDs ...domain.BuildingID) ([]domain.Property, error) {
	if len(buildingIDs) == 0 {
		return nil, nil
	}

	return p.findProperties(ctx, 0, goqu.I("building_id").In(uuids(buildingIDs)))
}

// SearchProperties translates the filter into predicates on the properties
// table only: building and tag criteria become IN sub-selects so every
// category narrows the same row set.
func (p *PgSQL) SearchProperties(ctx context.Context, filter storage.PropertyFilter) ([]domain.Property, error) {
	var w []exp.Expression

	var location []exp.Expression
	if len(filter.Boroughs) > 0 {
		location = append(location, goqu.I("borough").In(filter.Boroughs))
	}
	if len(filter.Neighborhoods) > 0 {
		location = append(location, goqu.I("neighborhood").In(filter.Neighborhoods))
	}
	if len(location) > 0 {
		w = append(w, goqu.I("building_id").Eq(
			p.Builder.From(buildingsTable).Select("id").Where(location...),
		))
	}

	if filter.MinPrice != nil {
		w = append(w, goqu.I("price").Gte(*filter.MinPrice))
	}
	if filter.MaxPrice != nil {
		w = append(w, goqu.I("price").Lte(*filter.MaxPrice))
	}
	if filter.Bedrooms != nil {
		w = append(w, goqu.I("bedrooms").Eq(*filter.Bedrooms))
	}
	if filter.Bathrooms != nil {
		w = append(w, goqu.I("bathrooms").Eq(*filter.Bathrooms))
	}
	if filter.Status != "" {
		w = append(w, goqu.I("status").Eq(string(filter.Status)))
	}

	if ids := uuids(filter.AmenityIDs); len(ids) > 0 {
		w = append(w, goqu.I("building_id").Eq(p.carryingAll(buildingAmenitiesTable, "building_id", ids)))
	}
	if ids := uuids(filter.FeatureIDs); len(ids) > 0 {
		w = append(w, goqu.I("id").Eq(p.carryingAll(propertyFeaturesTable, "property_id", ids)))
	}

	if text := strings.TrimSpace(filter.Text); text != "" {
		pattern := "%" + escapeLike(text) + "%"
		w = append(w, goqu.Or(
			goqu.I("unit_number").ILike(pattern),
			goqu.I("building_id").Eq(
				p.Builder.From(buildingsTable).Select("id").Where(goqu.Or(
					goqu.I("street").ILike(pattern),
					goqu.I("borough").ILike(pattern),
					goqu.I("neighborhood").ILike(pattern),
					goqu.I("city").ILike(pattern),
				)),
			),
		))
	}

	return p.findProperties(ctx, filter.Limit, w...)
}

// carryingAll selects the owners in a join table linked to every one of tagIDs.
func (p *PgSQL) carryingAll(table, ownerColumn string, tagIDs []uuid.UUID) *goqu.SelectDataset {
	return p.Builder.From(table).
		Select(ownerColumn).
		Where(goqu.I("tag_id").In(tagIDs)).
		GroupBy(ownerColumn).
		Having(goqu.COUNT(goqu.DISTINCT("tag_id")).Eq(len(tagIDs)))
}

func (p *PgSQL) UpdateProperty(ctx context.Context,
	id domain.PropertyID,
	updates storage.PropertyUpdates) (*domain.Property, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Price != nil {
		rec["price"] = *updates.Price
	}
	if updates.SquareFootage != nil {
		rec["square_footage"] = *updates.SquareFootage
	}
	if updates.Status != nil {
		rec["status"] = string(*updates.Status)
	}
	if updates.Images != nil {
		images, err := marshalAssets(*updates.Images)
		if err != nil {
			return nil, err
		}
		rec["images"] = images
	}

	return p.updateProperty(ctx, id, rec)
}

// AppendPropertyImages concatenates to the stored jsonb array so concurrent
// appends never overwrite each other.
func (p *PgSQL) AppendPropertyImages(ctx context.Context,
	id domain.PropertyID,
	images ...domain.Asset) (*domain.Property, error) {
	b, err := marshalAssets(images)
	if err != nil {
		return nil, err
	}

	return p.updateProperty(ctx, id, goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		"images":     goqu.L("images || ?::jsonb", string(b)),
	})
}

func (p *PgSQL) RemovePropertyImage(ctx context.Context,
	id domain.PropertyID,
	assetID string) (*domain.Property, error) {
	return p.updateProperty(ctx, id, goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		"images": goqu.L(`(SELECT COALESCE(jsonb_agg(e ORDER BY i), '[]'::jsonb)
			FROM jsonb_array_elements(images) WITH ORDINALITY AS t(e, i)
			WHERE e->>'externalAssetId' <> ?)`, assetID),
	})
}

func (p *PgSQL) SetPropertyFeatures(ctx context.Context, id domain.PropertyID, tagIDs ...domain.TagID) error {
	if _, err := p.Builder.Delete(propertyFeaturesTable).
		Where(goqu.I("property_id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not clear property features: %w", err)
	}

	return p.attachTags(ctx, propertyFeaturesTable, "property_id", uuid.UUID(id), tagIDs)
}

func (p *PgSQL) CountOwnedProperties(ctx context.Context,
	brokerID domain.UserID,
	ids ...domain.PropertyID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	count, err := p.Builder.From(propertiesTable).
		Where(
			goqu.I("id").In(uuids(ids)),
			goqu.I("broker_id").Eq(uuid.UUID(brokerID)),
		).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count owned properties: %w", err)
	}

	return count, nil
}

func (p *PgSQL) DeleteProperties(ctx context.Context, ids ...domain.PropertyID) ([]domain.Property, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []PgProperty
	if err := p.Builder.Delete(propertiesTable).
		Where(goqu.I("id").In(uuids(ids))).
		Returning(&PgProperty{}).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not delete properties in pg: %w", err)
	}

	return pgPropertiesToDomain(rows)
}

// Hydrate joins buildings (with amenities) and features onto properties using
// two batched lookups regardless of the number of properties.
func (p *PgSQL) Hydrate(ctx context.Context, properties ...domain.Property) ([]domain.Property, error) {
	if len(properties) == 0 {
		return properties, nil
	}

	buildingIDs := make([]domain.BuildingID, 0, len(properties))
	propertyIDs := make([]uuid.UUID, 0, len(properties))
	for _, prop := range properties {
		buildingIDs = append(buildingIDs, prop.BuildingID)
		propertyIDs = append(propertyIDs, uuid.UUID(prop.ID))
	}

	buildings, err := p.BuildingsByID(ctx, buildingIDs...)
	if err != nil {
		return nil, err
	}
	byID := make(map[domain.BuildingID]domain.Building, len(buildings))
	for _, b := range buildings {
		byID[b.ID] = b
	}

	features, err := p.ownedTags(ctx, propertyFeaturesTable, "property_id", propertyIDs)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Property, len(properties))
	for i, prop := range properties {
		if b, ok := byID[prop.BuildingID]; ok {
			prop.Building = &b
		}
		prop.Features = features[uuid.UUID(prop.ID)]
		if prop.Features == nil {
			prop.Features = []domain.Tag{}
		}
		out[i] = prop
	}

	return out, nil
}

func (p *PgSQL) updateProperty(ctx context.Context, id domain.PropertyID, rec goqu.Record) (*domain.Property, error) {
	var row PgProperty
	found, err := p.Builder.Update(propertiesTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgProperty{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update property in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) findProperty(ctx context.Context, where ...exp.Expression) (*domain.Property, error) {
	return p.scanProperty(ctx, p.Builder.From(propertiesTable).Where(where...))
}

func (p *PgSQL) scanProperty(ctx context.Context, ds *goqu.SelectDataset) (*domain.Property, error) {
	var row PgProperty
	found, err := ds.Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch property: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// findProperties returns matching properties newest first.
func (p *PgSQL) findProperties(ctx context.Context, limit uint, where ...exp.Expression) ([]domain.Property, error) {
	ds := p.Builder.From(propertiesTable).
		Where(where...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc())
	if limit > 0 {
		ds = ds.Limit(limit)
	}

	var rows []PgProperty
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch properties from pg: %w", err)
	}

	return pgPropertiesToDomain(rows)
}

// escapeLike escapes LIKE wildcards so free text is matched literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
