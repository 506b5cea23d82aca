package postgres

import (
	"context"
	"fmt"

	"yokeair/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	buildingsTable         = "buildings"
	buildingAmenitiesTable = "building_amenities"
)

// EnsureBuilding inserts the building unless (street, borough) is already
// taken, in which case the existing row is returned. The unique constraint
// makes concurrent calls converge on one row.
func (p *PgSQL) EnsureBuilding(ctx context.Context, building domain.Building) (*domain.Building, bool, error) {
	var row PgBuilding
	row.FromDomain(building)

	var stored PgBuilding
	created, err := p.Builder.Insert(buildingsTable).
		Rows(row).
		OnConflict(goqu.DoNothing()).
		Returning(&PgBuilding{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, false, wrapErr(err, "could not store building into pg")
	}

	if !created {
		found, err := p.Builder.From(buildingsTable).
			Where(
				goqu.I("street").Eq(building.Street),
				goqu.I("borough").Eq(building.Borough),
			).
			Executor().ScanStructContext(ctx, &stored)
		if err != nil {
			return nil, false, fmt.Errorf("could not fetch building by address: %w", err)
		}
		if !found {
			// the conflicting row was deleted in between
			return nil, false, fmt.Errorf("building at %q, %q vanished during insert", building.Street, building.Borough)
		}
	}

	buildings, err := p.withAmenities(ctx, []PgBuilding{stored})
	if err != nil {
		return nil, false, err
	}

	return &buildings[0], created, nil
}

func (p *PgSQL) BuildingByID(ctx context.Context, id domain.BuildingID) (*domain.Building, error) {
	buildings, err := p.BuildingsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(buildings) == 0 {
		return nil, nil
	}

	return &buildings[0], nil
}

func (p *PgSQL) BuildingsByID(ctx context.Context, ids ...domain.BuildingID) ([]domain.Building, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []PgBuilding
	if err := p.Builder.From(buildingsTable).
		Where(goqu.I("id").In(uuids(ids))).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch buildings by id: %w", err)
	}

	return p.withAmenities(ctx, rows)
}

func (p *PgSQL) BuildingsByBroker(ctx context.Context, brokerID domain.UserID) ([]domain.Building, error) {
	var rows []PgBuilding
	if err := p.Builder.From(buildingsTable).
		Where(goqu.I("broker_id").Eq(uuid.UUID(brokerID))).
		Order(goqu.I("created_at").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch broker buildings: %w", err)
	}

	return p.withAmenities(ctx, rows)
}

func (p *PgSQL) AddBuildingAmenities(ctx context.Context, id domain.BuildingID, tagIDs ...domain.TagID) error {
	return p.attachTags(ctx, buildingAmenitiesTable, "building_id", uuid.UUID(id), tagIDs)
}

func (p *PgSQL) SetBuildingAmenities(ctx context.Context, id domain.BuildingID, tagIDs ...domain.TagID) error {
	if _, err := p.Builder.Delete(buildingAmenitiesTable).
		Where(goqu.I("building_id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not clear building amenities: %w", err)
	}

	return p.attachTags(ctx, buildingAmenitiesTable, "building_id", uuid.UUID(id), tagIDs)
}

// DeleteEmptyBuildings removes the given buildings that have no property left
// in a single conditional statement.
func (p *PgSQL) DeleteEmptyBuildings(ctx context.Context, ids ...domain.BuildingID) ([]domain.BuildingID, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	inUse := p.Builder.From(propertiesTable).
		Select(goqu.L("1")).
		Where(goqu.I(propertiesTable + ".building_id").Eq(goqu.I(buildingsTable + ".id")))

	var deleted []uuid.UUID
	if err := p.Builder.Delete(buildingsTable).
		Where(
			goqu.I("id").In(uuids(ids)),
			goqu.L("NOT EXISTS ?", inUse),
		).
		Returning("id").
		Executor().ScanValsContext(ctx, &deleted); err != nil {
		return nil, fmt.Errorf("could not delete empty buildings: %w", err)
	}

	out := make([]domain.BuildingID, 0, len(deleted))
	for _, id := range deleted {
		out = append(out, domain.BuildingID(id))
	}

	return out, nil
}

// attachTags links tags to an owner row in one of the join tables.
func (p *PgSQL) attachTags(ctx context.Context,
	table, ownerColumn string,
	ownerID uuid.UUID,
	tagIDs []domain.TagID) error {
	ids := uuids(tagIDs)
	if len(ids) == 0 {
		return nil
	}

	rows := make([]interface{}, 0, len(ids))
	for _, tagID := range ids {
		rows = append(rows, goqu.Record{ownerColumn: ownerID, "tag_id": tagID})
	}

	if _, err := p.Builder.Insert(table).
		Rows(rows...).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx); err != nil {
		return wrapErr(err, "could not attach tags in "+table)
	}

	return nil
}

// ownedTags loads the tags linked to the given owners through a join table,
// grouped by owner id.
func (p *PgSQL) ownedTags(ctx context.Context,
	table, ownerColumn string,
	ownerIDs []uuid.UUID) (map[uuid.UUID][]domain.Tag, error) {
	out := make(map[uuid.UUID][]domain.Tag, len(ownerIDs))
	if len(ownerIDs) == 0 {
		return out, nil
	}

	var rows []pgOwnedTag
	if err := p.Builder.From(goqu.T(table).As("j")).
		Join(goqu.T(tagsTable).As("t"), goqu.On(goqu.I("t.id").Eq(goqu.I("j.tag_id")))).
		Select(
			goqu.I("j."+ownerColumn).As("owner_id"),
			goqu.I("t.id"),
			goqu.I("t.name"),
			goqu.I("t.type"),
		).
		Where(goqu.I("j." + ownerColumn).In(ownerIDs)).
		Order(goqu.I("t.name").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch tags from %s: %w", table, err)
	}

	for _, row := range rows {
		out[row.OwnerID] = append(out[row.OwnerID], domain.Tag{
			ID:   domain.TagID(row.ID),
			Name: row.Name,
			Type: domain.TagType(row.Type),
		})
	}

	return out, nil
}

func (p *PgSQL) withAmenities(ctx context.Context, rows []PgBuilding) ([]domain.Building, error) {
	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	amenities, err := p.ownedTags(ctx, buildingAmenitiesTable, "building_id", ids)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Building, 0, len(rows))
	for i := range rows {
		b := rows[i].ToDomain()
		b.Amenities = amenities[rows[i].ID]
		if b.Amenities == nil {
			b.Amenities = []domain.Tag{}
		}
		out = append(out, *b)
	}

	return out, nil
}
