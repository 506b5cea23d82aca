package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"yokeair/pkg/logger"
	"yokeair/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
)

const (
	// uniqueViolation is the SQLSTATE raised when a unique index rejects a write.
	uniqueViolation = "23505"

	defaultApplicationName = "yokeair"
)

// Options configure the connection pool.
type Options struct {
	Username string
	Password string
	Host     string
	Port     int
	Database string
	// SslMode is passed through as the libpq sslmode, e.g. "disable" or "require".
	SslMode string

	ConnMaxLifetime    time.Duration
	ConnMaxIdleTime    time.Duration
	MaxOpenConnections int
	// MaxIdleConnections is the number of connections the pool keeps open.
	MaxIdleConnections int

	// ApplicationName is reported in pg_stat_activity. Defaults to "yokeair".
	ApplicationName string
	// StatementTimeout aborts statements running longer than this. Zero keeps
	// the server default.
	StatementTimeout time.Duration
}

// DB is what the queries run on: *sql.DB outside a transaction, *sql.Tx inside.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Builder is the goqu handle bound to DB (*goqu.Database or *goqu.TxDatabase).
type Builder interface {
	From(table ...any) *goqu.SelectDataset
	Insert(table any) *goqu.InsertDataset
	Update(table any) *goqu.UpdateDataset
	Delete(table any) *goqu.DeleteDataset
}

// PgSQL is the PostgreSQL Domain Store. The value returned by New owns the
// pool; values returned by Begin share it and run on a single *sql.Tx.
type PgSQL struct {
	DB      DB
	Builder Builder
	Pool    *pgxpool.Pool
}

// Close releases the database/sql handle and then the pool beneath it. It is
// a no-op on values returned by Begin.
func (p *PgSQL) Close() error {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return nil
	}

	err := db.Close()
	if p.Pool != nil {
		p.Pool.Close()
	}
	if err != nil {
		return fmt.Errorf("could not close database handle: %w", err)
	}

	return nil
}

// Ping checks the pool can reach the server.
func (p *PgSQL) Ping(ctx context.Context) error {
	if err := p.Pool.Ping(ctx); err != nil {
		return fmt.Errorf("could not ping postgres: %w", err)
	}

	return nil
}

func (p *PgSQL) endTx(op string, end func(*sql.Tx) error) error {
	tx, ok := p.DB.(*sql.Tx)
	if !ok {
		return storage.ErrNotInTx
	}
	if err := end(tx); err != nil {
		return fmt.Errorf("could not %s tx: %w", op, err)
	}

	return nil
}

// Commit commits a PgSQL returned by Begin.
func (p *PgSQL) Commit() error { return p.endTx("commit", (*sql.Tx).Commit) }

// Rollback aborts a PgSQL returned by Begin.
func (p *PgSQL) Rollback() error { return p.endTx("rollback", (*sql.Tx).Rollback) }

// Begin opens a transaction. Nested transactions are not supported and
// return storage.ErrAlreadyInTx.
func (p *PgSQL) Begin(ctx context.Context) (storage.TxStorage, error) {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return nil, storage.ErrAlreadyInTx
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin tx: %w", err)
	}

	return &PgSQL{
		DB:      tx,
		Builder: goqu.NewTx("postgres", tx),
		Pool:    p.Pool,
	}, nil
}

// WithTx runs cb in a transaction. It commits when cb returns nil and rolls
// back when cb fails or panics; a panic is re-raised after the rollback.
func (p *PgSQL) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := p.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			rollback(ctx, tx)

			panic(r)
		}
	}()

	if err := cb(tx); err != nil {
		rollback(ctx, tx)

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

func rollback(ctx context.Context, tx storage.TxStorage) {
	if err := tx.Rollback(); err != nil {
		logger.Warn(ctx, "could not rollback tx", zap.Error(err))
	}
}

// New opens a pgx pool, verifies it with a ping and wraps it in a
// database/sql handle for goqu, goose and River's database/sql driver.
func New(ctx context.Context, options Options) (*PgSQL, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s dbname=%s password=%s sslmode=%s",
		options.Host,
		options.Port,
		options.Username,
		options.Database,
		options.Password,
		options.SslMode)
	cfg, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("could not parse pgxpool config: %w", err)
	}
	if options.MaxOpenConnections > 0 {
		cfg.MaxConns = int32(options.MaxOpenConnections) //nolint: gosec
	}
	if options.MaxIdleConnections > 0 {
		cfg.MinConns = min(int32(options.MaxIdleConnections), cfg.MaxConns) //nolint: gosec
	}
	if options.ConnMaxLifetime > 0 {
		cfg.MaxConnLifetime = options.ConnMaxLifetime
	}
	if options.ConnMaxIdleTime > 0 {
		cfg.MaxConnIdleTime = options.ConnMaxIdleTime
	}

	appName := options.ApplicationName
	if appName == "" {
		appName = defaultApplicationName
	}
	cfg.ConnConfig.RuntimeParams["application_name"] = appName
	if options.StatementTimeout > 0 {
		cfg.ConnConfig.RuntimeParams["statement_timeout"] = strconv.FormatInt(options.StatementTimeout.Milliseconds(), 10)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create pgx Pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()

		return nil, fmt.Errorf("could not ping postgres at %s:%d: %w", options.Host, options.Port, err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	return &PgSQL{
		DB:      sqlDB,
		Builder: goqu.Dialect("postgres").DB(sqlDB),
		Pool:    pool,
	}, nil
}

// wrapErr wraps err with msg, translating unique violations into
// storage.ErrDuplicate so callers can tell them apart from failures.
func wrapErr(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w (%s)", msg, storage.ErrDuplicate, pgErr.ConstraintName)
	}

	return fmt.Errorf("%s: %w", msg, err)
}
