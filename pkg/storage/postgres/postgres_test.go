package postgres_test

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	root "yokeair"
	"yokeair/pkg/logger"
	"yokeair/pkg/storage/postgres"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "postgres"
	testPassword = "postgres"
	testDB       = "postgres"
)

// every test gets its own database inside one shared container
var (
	containerOnce sync.Once
	container     testcontainers.Container
	containerHost string
	containerPort int
	containerErr  error
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment, "")

	code := m.Run()

	if container != nil {
		_ = container.Terminate(context.Background())
	}
	os.Exit(code)
}

func startPostgresContainer(ctx context.Context) error {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(time.Minute),
	}
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return fmt.Errorf("could not start container: %w", err)
	}
	container = c

	if containerHost, err = c.Host(ctx); err != nil {
		return fmt.Errorf("could not get container host: %w", err)
	}
	mappedPort, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return fmt.Errorf("could not get mapped port: %w", err)
	}
	containerPort = mappedPort.Int()

	return nil
}

func connect(ctx context.Context, database string) (*postgres.PgSQL, error) {
	return postgres.New(ctx, postgres.Options{ //nolint: wrapcheck
		Username:           testUser,
		Password:           testPassword,
		Host:               containerHost,
		Port:               containerPort,
		Database:           database,
		SslMode:            "disable",
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 5,
		MaxIdleConnections: 1,
		ApplicationName:    "yokeair-test",
	})
}

// runMigrations applies the embedded goose migrations.
func runMigrations(ctx context.Context, db *sql.DB) error {
	migrations, err := fs.Sub(root.Migrations, "migrations")
	if err != nil {
		return fmt.Errorf("could not open migrations: %w", err)
	}
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations)
	if err != nil {
		return fmt.Errorf("could not create goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

// setupTestDB creates a fresh, migrated database and returns a store bound to
// it. The cleanup drops the database.
func setupTestDB(t *testing.T) (*postgres.PgSQL, func()) {
	t.Helper()
	ctx := context.Background()

	containerOnce.Do(func() { containerErr = startPostgresContainer(ctx) })
	require.NoError(t, containerErr)

	admin, err := connect(ctx, testDB)
	require.NoError(t, err)

	name := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	_, err = admin.DB.ExecContext(ctx, "CREATE DATABASE "+name)
	require.NoError(t, err)

	pgSQL, err := connect(ctx, name)
	require.NoError(t, err)
	require.NoError(t, runMigrations(ctx, pgSQL.DB.(*sql.DB)))

	return pgSQL, func() {
		_ = pgSQL.Close()
		_, _ = admin.DB.ExecContext(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)")
		_ = admin.Close()
	}
}

func TestNew_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := postgres.New(ctx, postgres.Options{
		Username: testUser,
		Password: testPassword,
		Host:     "127.0.0.1",
		Port:     1,
		Database: testDB,
		SslMode:  "disable",
	})
	require.ErrorContains(t, err, "could not ping postgres")
}

func TestNew_SessionSettings(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	var appName string
	require.NoError(t, pg.DB.QueryRowContext(context.Background(), "SHOW application_name").Scan(&appName))
	require.Equal(t, "yokeair-test", appName)
}

func TestPgSQL_PingAndTxClose(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	require.NoError(t, pg.Ping(ctx))

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.(*postgres.PgSQL).Close(), "closing a tx value leaves the pool alone")
	require.NoError(t, tx.Rollback())

	require.NoError(t, pg.Ping(ctx))
}
