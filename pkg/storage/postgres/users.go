package postgres

import (
	"context"
	"fmt"

	"yokeair/pkg/domain"
	"yokeair/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	usersTable         = "users"
	savedListingsTable = "saved_listings"
)

func (p *PgSQL) StoreUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var row PgUser
	row.FromDomain(user)

	var stored PgUser
	if _, err := p.Builder.Insert(usersTable).
		Rows(row).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, wrapErr(err, "could not store user into pg")
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UsersByID(ctx context.Context, ids ...domain.UserID) ([]domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []PgUser
	if err := p.Builder.From(usersTable).
		Where(goqu.I("id").In(uuids(ids))).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch users by id: %w", err)
	}

	out := make([]domain.User, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

// UpdateUser sets the provided profile fields and updated_at.
func (p *PgSQL) UpdateUser(ctx context.Context, id domain.UserID, updates storage.UserUpdates) (*domain.User, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.FirstName != nil {
		rec["first_name"] = *updates.FirstName
	}
	if updates.LastName != nil {
		rec["last_name"] = *updates.LastName
	}
	if updates.Phone != nil {
		rec["phone"] = *updates.Phone
	}
	switch {
	case updates.Avatar != nil:
		rec["avatar_url"] = updates.Avatar.URL
		rec["avatar_asset_id"] = updates.Avatar.ExternalID
	case updates.ClearAvatar:
		rec["avatar_url"] = goqu.L("NULL")
		rec["avatar_asset_id"] = goqu.L("NULL")
	}

	var row PgUser
	found, err := p.Builder.Update(usersTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update user in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteUser(ctx context.Context, id domain.UserID) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.Delete(usersTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete user in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) AddSavedListing(ctx context.Context, userID domain.UserID, propertyID domain.PropertyID) (bool, error) {
	res, err := p.Builder.Insert(savedListingsTable).
		Rows(goqu.Record{
			"user_id":     uuid.UUID(userID),
			"property_id": uuid.UUID(propertyID),
		}).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not add saved listing: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n > 0, nil
}

func (p *PgSQL) RemoveSavedListing(ctx context.Context,
	userID domain.UserID,
	propertyID domain.PropertyID) (bool, error) {
	res, err := p.Builder.Delete(savedListingsTable).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("property_id").Eq(uuid.UUID(propertyID)),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not remove saved listing: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n > 0, nil
}

func (p *PgSQL) RemoveSavedListingsByProperty(ctx context.Context, propertyIDs ...domain.PropertyID) (int64, error) {
	if len(propertyIDs) == 0 {
		return 0, nil
	}

	res, err := p.Builder.Delete(savedListingsTable).
		Where(goqu.I("property_id").In(uuids(propertyIDs))).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not prune saved listings: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n, nil
}

func (p *PgSQL) SavedPropertyIDs(ctx context.Context, userID domain.UserID) ([]domain.PropertyID, error) {
	var ids []uuid.UUID
	if err := p.Builder.From(savedListingsTable).
		Select("property_id").
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		Order(goqu.I("created_at").Desc()).
		Executor().ScanValsContext(ctx, &ids); err != nil {
		return nil, fmt.Errorf("could not fetch saved listings: %w", err)
	}

	out := make([]domain.PropertyID, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.PropertyID(id))
	}

	return out, nil
}
