package postgres_test

import (
	"context"
	"fmt"
	"testing"

	"yokeair/pkg/domain"
	"yokeair/pkg/storage/postgres"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newUser(t *testing.T, pg *postgres.PgSQL, role domain.Role) domain.User {
	t.Helper()

	u, err := pg.StoreUser(context.Background(), domain.User{
		Role:      role,
		Email:     fmt.Sprintf("%s@example.com", uuid.NewString()),
		FirstName: "Test",
		LastName:  string(role),
	})
	require.NoError(t, err)

	return *u
}

func newBuilding(t *testing.T, pg *postgres.PgSQL, broker domain.UserID, street, borough string) domain.Building {
	t.Helper()

	b, _, err := pg.EnsureBuilding(context.Background(), domain.Building{
		BrokerID:     broker,
		Street:       street,
		Borough:      borough,
		Neighborhood: "Midtown",
		City:         "New York",
	})
	require.NoError(t, err)

	return *b
}

func newProperty(t *testing.T,
	pg *postgres.PgSQL,
	building domain.Building,
	unit string,
	bedrooms, bathrooms int,
	price float64) domain.Property {
	t.Helper()

	p, err := pg.StoreProperty(context.Background(), domain.Property{
		BuildingID:  building.ID,
		BrokerID:    building.BrokerID,
		UnitNumber:  unit,
		Bedrooms:    bedrooms,
		BedroomType: fmt.Sprintf("%dBR", bedrooms),
		Bathrooms:   bathrooms,
		Price:       price,
		Status:      domain.PropertyStatusAvailable,
	})
	require.NoError(t, err)

	return *p
}

func propertyIDs(props []domain.Property) []domain.PropertyID {
	ids := make([]domain.PropertyID, 0, len(props))
	for _, p := range props {
		ids = append(ids, p.ID)
	}

	return ids
}
