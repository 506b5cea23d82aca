// Package storage is the Domain Store contract: users, buildings, properties,
// tags, applications, saved listings and queued jobs, plus the transaction
// boundary that keeps multi-row changes (a property with its building, tags
// and images) consistent.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage is everything a service may read or write, in or out of a
// transaction.
type AllStorage interface {
	UserStorage
	BuildingStorage
	PropertyStorage
	TagStorage
	ApplicationStorage
	JobStorage
}

// TxStorage runs every call on one transaction. It must not be used after
// Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the root handle. Jobs added through a TxStorage are only visible
// to workers once that transaction commits.
type Storage interface {
	AllStorage

	Close() error

	// Begin fails with ErrAlreadyInTx when called on a transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx commits when cb returns nil and rolls back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
