package postgres_test

import (
	"context"
	"testing"

	"yokeair/pkg/domain"
	"yokeair/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Users(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	t.Run("store and fetch", func(t *testing.T) {
		u, err := pg.StoreUser(ctx, domain.User{
			Role:      domain.RoleClient,
			Email:     "  Jane@Example.com ",
			FirstName: "Jane",
			LastName:  "Doe",
		})
		require.NoError(t, err)
		require.Equal(t, "jane@example.com", u.Email)
		require.Nil(t, u.Avatar)

		got, err := pg.UserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, u.ID, got.ID)
		require.Equal(t, domain.RoleClient, got.Role)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := pg.StoreUser(ctx, domain.User{Role: domain.RoleBroker, Email: "dup@example.com"})
		require.NoError(t, err)

		_, err = pg.StoreUser(ctx, domain.User{Role: domain.RoleClient, Email: "DUP@example.com"})
		require.ErrorIs(t, err, storage.ErrDuplicate)
	})

	t.Run("missing user", func(t *testing.T) {
		got, err := pg.UserByID(ctx, domain.UserID(uuid.New()))
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("update avatar and clear", func(t *testing.T) {
		u := newUser(t, pg, domain.RoleBroker)
		phone := "+1 555 0100"

		updated, err := pg.UpdateUser(ctx, u.ID, storage.UserUpdates{
			Phone:  &phone,
			Avatar: &domain.Asset{URL: "https://cdn/a.png", ExternalID: "avatars/a.png"},
		})
		require.NoError(t, err)
		require.Equal(t, phone, updated.Phone)
		require.Equal(t, "avatars/a.png", updated.Avatar.ExternalID)
		require.False(t, updated.UpdatedAt.IsZero())

		cleared, err := pg.UpdateUser(ctx, u.ID, storage.UserUpdates{ClearAvatar: true})
		require.NoError(t, err)
		require.Nil(t, cleared.Avatar)
		require.Equal(t, phone, cleared.Phone)
	})

	t.Run("delete", func(t *testing.T) {
		u := newUser(t, pg, domain.RoleClient)

		deleted, err := pg.DeleteUser(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, u.ID, deleted.ID)

		again, err := pg.DeleteUser(ctx, u.ID)
		require.NoError(t, err)
		require.Nil(t, again)
	})
}

func TestPgSQL_SavedListings(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	broker := newUser(t, pg, domain.RoleBroker)
	alice := newUser(t, pg, domain.RoleClient)
	bob := newUser(t, pg, domain.RoleClient)
	b := newBuilding(t, pg, broker.ID, "1 Saved St", "Brooklyn")
	p1 := newProperty(t, pg, b, "1A", 1, 1, 2000)
	p2 := newProperty(t, pg, b, "2A", 2, 1, 3000)

	added, err := pg.AddSavedListing(ctx, alice.ID, p1.ID)
	require.NoError(t, err)
	require.True(t, added)

	added, err = pg.AddSavedListing(ctx, alice.ID, p1.ID)
	require.NoError(t, err)
	require.False(t, added, "saving twice is a no-op")

	_, err = pg.AddSavedListing(ctx, alice.ID, p2.ID)
	require.NoError(t, err)
	_, err = pg.AddSavedListing(ctx, bob.ID, p1.ID)
	require.NoError(t, err)

	saved, err := pg.SavedPropertyIDs(ctx, alice.ID)
	require.NoError(t, err)
	require.ElementsMatch(t, []domain.PropertyID{p1.ID, p2.ID}, saved)

	removed, err := pg.RemoveSavedListingsByProperty(ctx, p1.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), removed)

	saved, err = pg.SavedPropertyIDs(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, []domain.PropertyID{p2.ID}, saved)

	saved, err = pg.SavedPropertyIDs(ctx, bob.ID)
	require.NoError(t, err)
	require.Empty(t, saved)

	ok, err := pg.RemoveSavedListing(ctx, alice.ID, p2.ID)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = pg.RemoveSavedListing(ctx, alice.ID, p2.ID)
	require.NoError(t, err)
	require.False(t, ok)
}
