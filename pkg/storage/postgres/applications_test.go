package postgres_test

import (
	"context"
	"testing"
	"time"

	"yokeair/pkg/domain"
	"yokeair/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Applications(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	broker := newUser(t, pg, domain.RoleBroker)
	client := newUser(t, pg, domain.RoleClient)
	b := newBuilding(t, pg, broker.ID, "7 Apply Rd", "Queens")
	p := newProperty(t, pg, b, "5E", 2, 1, 2800)

	submit := func() (*domain.Application, error) {
		return pg.StoreApplication(ctx, domain.Application{
			ApplicantID:   client.ID,
			PropertyID:    p.ID,
			Status:        domain.ApplicationStatusPending,
			Type:          domain.ApplicationTypeRental,
			MonthlyIncome: 9000,
			Employment:    domain.Employment{Employer: "Acme", Position: "Engineer", YearsEmployed: 3},
			Notes:         "quiet tenant",
		})
	}

	first, err := submit()
	require.NoError(t, err)
	require.Equal(t, domain.ApplicationStatusPending, first.Status)
	require.Equal(t, "Acme", first.Employment.Employer)
	require.Empty(t, first.Documents)

	exists, err := pg.PendingApplicationExists(ctx, client.ID, p.ID)
	require.NoError(t, err)
	require.True(t, exists)

	_, err = submit()
	require.ErrorIs(t, err, storage.ErrDuplicate, "second pending application must be rejected by the store")

	rejected, err := pg.UpdateApplicationStatus(ctx, first.ID, domain.ApplicationStatusRejected)
	require.NoError(t, err)
	require.Equal(t, domain.ApplicationStatusRejected, rejected.Status)

	second, err := submit()
	require.NoError(t, err, "a new application is allowed once the previous one is decided")

	uploadedAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	withDoc, err := pg.AppendApplicationDocument(ctx, second.ID, domain.Document{
		Type: "paystub", URL: "https://cdn/doc1.pdf", AssetID: "docs/doc1.pdf", UploadedAt: uploadedAt,
	})
	require.NoError(t, err)
	withDoc, err = pg.AppendApplicationDocument(ctx, second.ID, domain.Document{
		Type: "id", URL: "https://cdn/doc2.pdf", UploadedAt: uploadedAt,
	})
	require.NoError(t, err)
	require.Len(t, withDoc.Documents, 2)
	require.Equal(t, "paystub", withDoc.Documents[0].Type)
	require.True(t, uploadedAt.Equal(withDoc.Documents[0].UploadedAt))
	require.Equal(t, "id", withDoc.Documents[1].Type)

	byApplicant, err := pg.ApplicationsByApplicant(ctx, client.ID)
	require.NoError(t, err)
	require.Len(t, byApplicant, 2)
	require.Equal(t, second.ID, byApplicant[0].ID)

	byProperty, err := pg.ApplicationsByProperties(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, byProperty, 2)

	missing, err := pg.UpdateApplicationStatus(ctx, domain.ApplicationID(uuid.New()), domain.ApplicationStatusApproved)
	require.NoError(t, err)
	require.Nil(t, missing)

	// deleting the property cascades to its applications
	_, err = pg.DeleteProperties(ctx, p.ID)
	require.NoError(t, err)
	gone, err := pg.ApplicationByID(ctx, second.ID)
	require.NoError(t, err)
	require.Nil(t, gone)
}
