package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"yokeair/internal/application"
	"yokeair/pkg/domain"
	"yokeair/pkg/notifier"
	"yokeair/pkg/storage"
	"yokeair/pkg/storage/postgres"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/riverqueue/river/rivertest"
	"github.com/stretchr/testify/require"
)

func notificationJob(tmpl notifier.Template) application.NotificationJobArgs {
	return application.NotificationJobArgs{
		ApplicationID: domain.ApplicationID(uuid.New()),
		Template:      tmpl,
	}
}

// setupQueueDB is setupTestDB plus the river tables.
func setupQueueDB(t *testing.T) (*postgres.PgSQL, *riverdatabasesql.Driver) {
	t.Helper()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	driver := riverdatabasesql.New(pg.DB.(*sql.DB))
	migrator, err := rivermigrate.New(driver, nil)
	require.NoError(t, err)
	_, err = migrator.Migrate(t.Context(), rivermigrate.DirectionUp, nil)
	require.NoError(t, err)

	return pg, driver
}

func TestPgSQL_AddJob(t *testing.T) {
	t.Parallel()

	t.Run("outside a transaction", func(t *testing.T) {
		t.Parallel()
		pg, driver := setupQueueDB(t)
		ctx := context.Background()

		inserted, err := pg.AddJob(ctx, notificationJob(notifier.TemplateApplicationApproved), nil)
		require.NoError(t, err)
		require.True(t, inserted)

		job := rivertest.RequireInserted[*riverdatabasesql.Driver](ctx, t, driver, &application.NotificationJobArgs{},
			&rivertest.RequireInsertedOpts{Queue: river.QueueDefault})
		require.Equal(t, notifier.TemplateApplicationApproved, job.Args.Template)
	})

	t.Run("visible only after commit", func(t *testing.T) {
		t.Parallel()
		pg, driver := setupQueueDB(t)
		ctx := context.Background()

		err := pg.WithTx(ctx, func(s storage.AllStorage) error {
			inserted, err := s.AddJob(ctx, notificationJob(notifier.TemplateApplicationSubmitted), nil)
			require.NoError(t, err)
			require.True(t, inserted)

			rivertest.RequireInsertedTx[*riverdatabasesql.Driver](ctx, t,
				s.(*postgres.PgSQL).DB.(*sql.Tx), &application.NotificationJobArgs{}, nil)
			rivertest.RequireNotInserted[*riverdatabasesql.Driver](ctx, t, driver, &application.NotificationJobArgs{}, nil)

			return nil
		})
		require.NoError(t, err)

		rivertest.RequireInserted[*riverdatabasesql.Driver](ctx, t, driver, &application.NotificationJobArgs{}, nil)
	})

	t.Run("discarded on rollback", func(t *testing.T) {
		t.Parallel()
		pg, driver := setupQueueDB(t)
		ctx := context.Background()

		tx, err := pg.Begin(ctx)
		require.NoError(t, err)
		_, err = tx.AddJob(ctx, notificationJob(notifier.TemplateApplicationRejected), nil)
		require.NoError(t, err)
		require.NoError(t, tx.Rollback())

		rivertest.RequireNotInserted[*riverdatabasesql.Driver](ctx, t, driver, &application.NotificationJobArgs{}, nil)
	})

	t.Run("unique by args", func(t *testing.T) {
		t.Parallel()
		pg, _ := setupQueueDB(t)
		ctx := context.Background()

		opts := &river.InsertOpts{UniqueOpts: river.UniqueOpts{ByArgs: true}}
		job := notificationJob(notifier.TemplateApplicationRejected)

		inserted, err := pg.AddJob(ctx, job, opts)
		require.NoError(t, err)
		require.True(t, inserted)

		inserted, err = pg.AddJob(ctx, job, opts)
		require.NoError(t, err)
		require.False(t, inserted, "same args are skipped as a duplicate")
	})
}
