package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs (notification deliveries) into the
// River queue backing the store. When called on a TxStorage the job becomes
// visible only once the transaction commits.
type JobStorage interface {
	// AddJob enqueues a job and reports whether it was actually inserted. A
	// unique job that already exists is skipped and reported as false.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
