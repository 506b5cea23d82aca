package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"yokeair/pkg/storage"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
)

// AddJob enqueues a River job.
//
// Inside a transaction the job is inserted with InsertTx and only becomes
// visible to workers once the surrounding transaction commits. Outside of one
// the insert runs in its own short transaction, so the job is visible as soon
// as AddJob returns. The returned bool is false when River skipped the insert
// as a duplicate of a unique job.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	tx, ok := p.DB.(*sql.Tx)
	if !ok {
		var inserted bool
		err := p.WithTx(ctx, func(s storage.AllStorage) error {
			var err error
			inserted, err = s.AddJob(ctx, args, opts)

			return err
		})

		return inserted, err
	}

	// the driver is only used for InsertTx, so it needs no pool of its own
	client, err := river.NewClient[*sql.Tx](riverdatabasesql.New(nil), &river.Config{})
	if err != nil {
		return false, fmt.Errorf("could not create river queue client: %w", err)
	}

	res, err := client.InsertTx(ctx, tx, args, opts)
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}
